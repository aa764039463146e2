package main

import (
	"context"
	"log"
	"net/http"

	"pms/internal/app/server"
	"pms/internal/platform/config"
)

func main() {
	cfg := config.Load()

	ctx := context.Background()
	app, err := server.New(ctx, cfg)
	if err != nil {
		log.Fatalf("startup failed: %v", err)
	}
	defer app.Close()

	log.Printf("assessment server listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, app.Router); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
