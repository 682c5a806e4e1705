package service

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/storemgmt/store-api/internal/core/domain"
)

func TestTokenService_RoundTrip(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	token, err := svc.Issue("alice", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}

	claims, err := svc.Validate(token)
	if err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	if claims.Subject != "alice" {
		t.Fatalf("expected subject alice, got %q", claims.Subject)
	}
	if claims.Role != domain.RoleAdmin {
		t.Fatalf("expected role admin, got %q", claims.Role)
	}
}

func TestTokenService_Expired(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)
	// Build a token whose expiry is already in the past; Issue always uses
	// the configured TTL, so sign one directly with the same secret.
	claims := jwt.MapClaims{
		"sub":  "alice",
		"role": domain.RoleUser,
		"iat":  time.Now().Add(-2 * time.Hour).Unix(),
		"exp":  time.Now().Add(-time.Hour).Unix(),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := svc.Validate(expired); !errors.Is(err, domain.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestTokenService_BadSignature(t *testing.T) {
	issuer := NewTokenService("secret-a", time.Hour)
	validator := NewTokenService("secret-b", time.Hour)

	token, err := issuer.Issue("alice", domain.RoleUser)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, err := validator.Validate(token); !errors.Is(err, domain.ErrTokenSignatureInvalid) {
		t.Fatalf("expected ErrTokenSignatureInvalid, got %v", err)
	}
}

func TestTokenService_Malformed(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	for _, token := range []string{"", "not-a-token", "a.b"} {
		if _, err := svc.Validate(token); !errors.Is(err, domain.ErrTokenMalformed) {
			t.Fatalf("token %q: expected ErrTokenMalformed, got %v", token, err)
		}
	}
}

func TestTokenService_MissingSubject(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	claims := jwt.MapClaims{
		"role": domain.RoleUser,
		"exp":  time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := svc.Validate(token); !errors.Is(err, domain.ErrTokenMalformed) {
		t.Fatalf("expected ErrTokenMalformed, got %v", err)
	}
}
