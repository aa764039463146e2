package auth

import (
	"testing"
	"time"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if err := CheckPassword(hash, "s3cret-pass"); err != nil {
		t.Fatalf("expected password to verify: %v", err)
	}
	if err := CheckPassword(hash, "wrong-pass"); err == nil {
		t.Fatal("expected wrong password to fail")
	}
}

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("test-secret", Claims{UserID: "user-1", Email: "a@b.c"}, time.Hour)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	claims, err := ParseToken("test-secret", token)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if claims.UserID != "user-1" || claims.Email != "a@b.c" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestTokenRejectsWrongSecret(t *testing.T) {
	token, err := GenerateToken("test-secret", Claims{UserID: "user-1"}, time.Hour)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if _, err := ParseToken("other-secret", token); err == nil {
		t.Fatal("expected parse with wrong secret to fail")
	}
}

func TestTokenRejectsExpired(t *testing.T) {
	token, err := GenerateToken("test-secret", Claims{UserID: "user-1"}, -time.Minute)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if _, err := ParseToken("test-secret", token); err == nil {
		t.Fatal("expected expired token to fail")
	}
}
