package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestNewAccessTokenRoundTrip(t *testing.T) {
	secret := "test-secret"
	at, err := NewAccessToken(secret, 42, "admin", 15)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	if at.Token == "" {
		t.Fatal("empty token")
	}
	if remaining := time.Until(at.Exp); remaining < 14*time.Minute || remaining > 16*time.Minute {
		t.Errorf("unexpected expiry window: %v", remaining)
	}

	tok, err := jwt.Parse(at.Token, func(tok *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		t.Fatalf("parse token: %v", err)
	}
	claims := tok.Claims.(jwt.MapClaims)
	if sub, _ := claims["sub"].(float64); int(sub) != 42 {
		t.Errorf("expected sub 42, got %v", claims["sub"])
	}
	if role, _ := claims["role"].(string); role != "admin" {
		t.Errorf("expected role admin, got %v", claims["role"])
	}

	if _, err := jwt.Parse(at.Token, func(tok *jwt.Token) (interface{}, error) {
		return []byte("wrong-secret"), nil
	}); err == nil {
		t.Error("expected parse failure with wrong secret")
	}
}

func TestRefreshTokenHashAndUniqueness(t *testing.T) {
	a, err := NewRefreshToken(7)
	if err != nil {
		t.Fatalf("issue refresh: %v", err)
	}
	b, _ := NewRefreshToken(7)
	if a.Raw == b.Raw {
		t.Error("refresh tokens must be unique")
	}
	if len(a.Raw) != 96 {
		t.Errorf("expected 96 hex chars, got %d", len(a.Raw))
	}
	if HashRefreshRaw(a.Raw) != HashRefreshRaw(a.Raw) {
		t.Error("hash must be deterministic")
	}
	if HashRefreshRaw(a.Raw) == HashRefreshRaw(b.Raw) {
		t.Error("distinct tokens must hash differently")
	}
}
