package store

import (
	"strings"

	"github.com/emsinv/ems-inventory/internal/model"
)

// CreateUser registers a user with an already-hashed password. The login
// name must be unique; roles other than admin fall back to "user",
// matching the schema default.
func (s *Store) CreateUser(username, passwordHash, fullName, role string) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	username = strings.TrimSpace(username)
	for _, u := range s.users {
		if u.Username == username {
			return model.User{}, ErrUsernameExists
		}
	}
	if role != model.RoleAdmin {
		role = model.RoleUser
	}
	u := model.User{
		ID:           s.nextUserID,
		Username:     username,
		PasswordHash: passwordHash,
		FullName:     fullName,
		Role:         role,
	}
	s.nextUserID++
	s.users[u.ID] = u
	return u, nil
}

// GetUser looks a user up by id.
func (s *Store) GetUser(id int) (model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return model.User{}, ErrUserNotFound
	}
	return u, nil
}

// GetUserByUsername looks a user up by login name.
func (s *Store) GetUserByUsername(username string) (model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Username == username {
			return u, nil
		}
	}
	return model.User{}, ErrUserNotFound
}
