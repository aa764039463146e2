// Package server wires the stores, services, and HTTP surface together.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"pms/internal/domain/access"
	"pms/internal/domain/assessment"
	"pms/internal/domain/auth"
	"pms/internal/domain/goals"
	"pms/internal/domain/process"
	"pms/internal/domain/reports"
	"pms/internal/platform/config"
	"pms/internal/platform/db"
	"pms/internal/platform/metrics"
	"pms/internal/transport/http/api"
	assessmenthandler "pms/internal/transport/http/handlers/assessment"
	authhandler "pms/internal/transport/http/handlers/auth"
	goalshandler "pms/internal/transport/http/handlers/goals"
	processhandler "pms/internal/transport/http/handlers/process"
	reportshandler "pms/internal/transport/http/handlers/reports"
	usershandler "pms/internal/transport/http/handlers/users"
	"pms/internal/transport/http/middleware"
)

type App struct {
	Config  config.Config
	DB      *pgxpool.Pool
	Router  http.Handler
	Metrics *metrics.Collector
}

// New connects to the database, runs migrations and seeding when enabled,
// and assembles the router.
func New(ctx context.Context, cfg config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("db connect: %w", err)
	}

	if cfg.RunMigrations {
		if err := db.Migrate(ctx, pool, "migrations"); err != nil {
			pool.Close()
			return nil, fmt.Errorf("migrate: %w", err)
		}
	}
	if cfg.RunSeed {
		if err := db.Seed(ctx, pool, cfg); err != nil {
			pool.Close()
			return nil, fmt.Errorf("seed: %w", err)
		}
	}

	app := &App{Config: cfg, DB: pool, Metrics: metrics.New()}
	app.Router = app.buildRouter()
	return app, nil
}

func (a *App) buildRouter() http.Handler {
	authStore := auth.NewStore(a.DB)
	authService := auth.NewService(authStore)
	policy := access.NewPolicy(authStore)

	processService := process.NewService(process.NewStore(a.DB))
	goalsService := goals.NewService(goals.NewStore(a.DB), policy)
	assessmentService := assessment.NewService(assessment.NewStore(a.DB), policy)
	reportsService := reports.NewService(reports.NewStore(a.DB))

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.SecureHeaders(a.Config.Environment == "production"))
	router.Use(middleware.BodyLimit(a.Config.MaxBodyBytes))
	router.Use(middleware.Auth(a.Config.JWTSecret))
	if a.Config.MetricsEnabled {
		router.Use(middleware.Metrics(a.Metrics))
	}

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := a.DB.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	if a.Config.MetricsEnabled {
		router.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
			api.Success(w, a.Metrics.Snapshot(), middleware.GetRequestID(r.Context()))
		})
	}

	authHandler := authhandler.NewHandler(authService, a.Config.JWTSecret)

	router.Route("/api/v1", func(r chi.Router) {
		r.With(middleware.LoginRateLimit(max(a.Config.RateLimitPerMinute/4, 1), time.Minute)).
			Post("/auth/login", authHandler.HandleLogin)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Use(middleware.RateLimit(a.Config.RateLimitPerMinute, time.Minute))

			authHandler.RegisterRoutes(r)
			usershandler.NewHandler(authService).RegisterRoutes(r)
			processhandler.NewHandler(processService, a.Metrics).RegisterRoutes(r)
			goalshandler.NewHandler(goalsService).RegisterRoutes(r)
			assessmenthandler.NewHandler(assessmentService).RegisterRoutes(r)
			reportshandler.NewHandler(reportsService).RegisterRoutes(r)
		})
	})

	return router
}

func (a *App) Close() {
	if a.DB != nil {
		a.DB.Close()
	}
}
