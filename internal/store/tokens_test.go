package store

import (
	"errors"
	"testing"
	"time"

	"github.com/emsinv/ems-inventory/internal/model"
)

func TestRefreshTokenLifecycle(t *testing.T) {
	s := New()
	if _, err := s.CreateUser("tester", "hash", "Test User", model.RoleUser); err != nil {
		t.Fatalf("create user: %v", err)
	}

	if err := s.StoreRefresh(99, "hash-a", time.Now().Add(time.Hour)); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound for unknown user, got %v", err)
	}

	if err := s.StoreRefresh(1, "hash-a", time.Now().Add(time.Hour)); err != nil {
		t.Fatalf("store refresh: %v", err)
	}
	got, err := s.GetRefresh("hash-a")
	if err != nil {
		t.Fatalf("get refresh: %v", err)
	}
	if got.UserID != 1 {
		t.Errorf("expected user 1, got %d", got.UserID)
	}

	if err := s.RevokeRefresh("hash-a"); err != nil {
		t.Fatalf("revoke: %v", err)
	}
	if _, err := s.GetRefresh("hash-a"); !errors.Is(err, ErrTokenNotFound) {
		t.Errorf("expected revoked token to behave as absent, got %v", err)
	}
	if err := s.RevokeRefresh("hash-a"); !errors.Is(err, ErrTokenNotFound) {
		t.Errorf("expected double revoke to fail, got %v", err)
	}
}

func TestRefreshTokenExpiry(t *testing.T) {
	s := New()
	if _, err := s.CreateUser("tester", "hash", "Test User", model.RoleUser); err != nil {
		t.Fatalf("create user: %v", err)
	}
	if err := s.StoreRefresh(1, "hash-old", time.Now().Add(-time.Minute)); err != nil {
		t.Fatalf("store refresh: %v", err)
	}
	if _, err := s.GetRefresh("hash-old"); !errors.Is(err, ErrTokenNotFound) {
		t.Errorf("expected expired token to behave as absent, got %v", err)
	}
}
