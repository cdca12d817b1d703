package store

import (
	"time"

	"github.com/emsinv/ems-inventory/internal/model"
)

// StoreRefresh records a refresh token hash for a user session.
func (s *Store) StoreRefresh(userID int, tokenHash string, expiresAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[userID]; !ok {
		return ErrUserNotFound
	}
	s.tokens[tokenHash] = model.RefreshToken{
		ID:        s.nextTokenID,
		UserID:    userID,
		TokenHash: tokenHash,
		ExpiresAt: expiresAt,
		CreatedAt: now(),
	}
	s.nextTokenID++
	return nil
}

// GetRefresh returns the active session for a token hash. Expired and
// revoked tokens behave as if absent.
func (s *Store) GetRefresh(tokenHash string) (model.RefreshToken, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.tokens[tokenHash]
	if !ok || t.RevokedAt != nil || t.ExpiresAt.Before(now()) {
		return model.RefreshToken{}, ErrTokenNotFound
	}
	return t, nil
}

// RevokeRefresh marks a session token as revoked. Revoking an unknown or
// already revoked token is an error so logout can report a bad token.
func (s *Store) RevokeRefresh(tokenHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tokens[tokenHash]
	if !ok || t.RevokedAt != nil {
		return ErrTokenNotFound
	}
	ts := now()
	t.RevokedAt = &ts
	s.tokens[tokenHash] = t
	return nil
}
