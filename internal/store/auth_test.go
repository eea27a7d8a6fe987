package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	infraRepo "github.com/restoservice/repair-admin/internal/infra/repository"
	"github.com/restoservice/repair-admin/internal/store"
)

func newAuthStore(t *testing.T) *store.AuthStore {
	t.Helper()
	return store.NewAuthStore(infraRepo.NewGormCredentialChecker(newSeededDB(t)))
}

func TestLoginWithValidCredentials(t *testing.T) {
	s := newAuthStore(t)

	err := s.Login(context.Background(), "admin@example.com", "password")
	require.NoError(t, err)

	assert.True(t, s.IsAuthenticated())

	user := s.User()
	require.NotNil(t, user)
	assert.Equal(t, "admin@example.com", user.Email)
	assert.Equal(t, "admin", user.Role)
	assert.Equal(t, "1", user.BranchID)
}

func TestLoginWithWrongPassword(t *testing.T) {
	s := newAuthStore(t)

	err := s.Login(context.Background(), "admin@example.com", "wrong")
	require.ErrorIs(t, err, store.ErrInvalidCredentials)

	assert.False(t, s.IsAuthenticated())
	assert.Nil(t, s.User())
}

func TestLoginWithUnknownEmail(t *testing.T) {
	s := newAuthStore(t)

	err := s.Login(context.Background(), "nobody@example.com", "password")
	require.ErrorIs(t, err, store.ErrInvalidCredentials)

	assert.False(t, s.IsAuthenticated())
}

func TestLoginFailureKeepsExistingSession(t *testing.T) {
	s := newAuthStore(t)

	require.NoError(t, s.Login(context.Background(), "admin@example.com", "password"))
	require.True(t, s.IsAuthenticated())

	err := s.Login(context.Background(), "admin@example.com", "wrong")
	require.ErrorIs(t, err, store.ErrInvalidCredentials)

	// The previous session survives a failed attempt.
	assert.True(t, s.IsAuthenticated())
	assert.Equal(t, "admin@example.com", s.User().Email)
}

func TestLogout(t *testing.T) {
	s := newAuthStore(t)

	require.NoError(t, s.Login(context.Background(), "admin@example.com", "password"))
	s.Logout()

	assert.False(t, s.IsAuthenticated())
	assert.Nil(t, s.User())

	// Logging out twice is harmless.
	s.Logout()
	assert.False(t, s.IsAuthenticated())
}
