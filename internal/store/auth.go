package store

import (
	"context"
	"sync"

	"github.com/restoservice/repair-admin/internal/models"
)

// CredentialChecker validates a credential pair and returns the
// matching user. Implementations must return ErrInvalidCredentials for
// any non-matching pair so login failures stay indistinguishable.
type CredentialChecker interface {
	Check(ctx context.Context, email, password string) (*models.User, error)
}

// AuthStore holds the current session identity. Unlike the other
// stores, Login raises for the caller to handle.
type AuthStore struct {
	checker CredentialChecker

	mu   sync.Mutex
	user *models.User
}

func NewAuthStore(checker CredentialChecker) *AuthStore {
	return &AuthStore{checker: checker}
}

// Login validates the pair; on success the session user is set. On
// failure the session is left unchanged.
func (s *AuthStore) Login(ctx context.Context, email, password string) error {
	user, err := s.checker.Check(ctx, email, password)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.user = user
	s.mu.Unlock()
	return nil
}

// Logout clears the session unconditionally.
func (s *AuthStore) Logout() {
	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()
}

func (s *AuthStore) User() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// IsAuthenticated is derived from the presence of a session user.
func (s *AuthStore) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user != nil
}
