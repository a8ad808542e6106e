package security

import (
	"StorySphere/internal/api/config"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	Setup(config.JWTConfig{Secret: "unit-test-secret", ExpirationHours: 168})

	token, err := GenerateToken(42, "alice@example.com", "user")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != 42 || claims.Email != "alice@example.com" || claims.Role != "user" {
		t.Fatalf("unexpected claims: %+v", claims)
	}

	ttl := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	if ttl != 7*24*time.Hour {
		t.Fatalf("expected 7 day validity, got %v", ttl)
	}
}

func TestValidateTokenRejectsTampered(t *testing.T) {
	Setup(config.JWTConfig{Secret: "unit-test-secret"})

	token, err := GenerateToken(1, "a@b.c", "user")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if _, err = ValidateToken(token + "x"); err == nil {
		t.Fatalf("expected tampered token to fail")
	}
}

func TestExtractSignature(t *testing.T) {
	sig, err := ExtractSignature("a.b.c")
	if err != nil || sig != "c" {
		t.Fatalf("got %q, %v", sig, err)
	}
	if _, err = ExtractSignature("not-a-token"); err == nil {
		t.Fatalf("expected error for malformed token")
	}
}

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("s3cret!")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if strings.Contains(hash, "s3cret!") {
		t.Fatalf("hash leaks password")
	}
	if err = CheckPasswordHash("s3cret!", hash); err != nil {
		t.Fatalf("expected match: %v", err)
	}
	if err = CheckPasswordHash("wrong", hash); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
