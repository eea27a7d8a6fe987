package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	rig := newTestRig(t)

	w := rig.do(t, http.MethodPost, "/api/auth/login", map[string]any{
		"email":    "admin@example.com",
		"password": "password",
	})
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.NotEmpty(t, body["token"])

	user := body["user"].(map[string]any)
	assert.Equal(t, "admin@example.com", user["email"])
	assert.Equal(t, "admin", user["role"])
	assert.Equal(t, "1", user["branch_id"])

	branch := body["branch"].(map[string]any)
	assert.Equal(t, "1", branch["id"])
}

func TestLoginNormalizesEmail(t *testing.T) {
	rig := newTestRig(t)

	w := rig.do(t, http.MethodPost, "/api/auth/login", map[string]any{
		"email":    "Admin@Example.com",
		"password": "password",
	})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLoginWrongPassword(t *testing.T) {
	rig := newTestRig(t)

	w := rig.do(t, http.MethodPost, "/api/auth/login", map[string]any{
		"email":    "admin@example.com",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "invalid_credentials", decode(t, w)["error"])
}

func TestLoginUnknownUser(t *testing.T) {
	rig := newTestRig(t)

	w := rig.do(t, http.MethodPost, "/api/auth/login", map[string]any{
		"email":    "nobody@example.com",
		"password": "password",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginValidation(t *testing.T) {
	rig := newTestRig(t)

	w := rig.do(t, http.MethodPost, "/api/auth/login", map[string]any{
		"email": "admin@example.com",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
