package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardStats(t *testing.T) {
	rig := newTestRig(t)

	w := rig.do(t, http.MethodGet, "/api/dashboard/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)

	// Seed data: two completed, two in repair, one diagnosed; one of
	// them is high priority.
	body := decode(t, w)
	assert.EqualValues(t, 0, body["pending"])
	assert.EqualValues(t, 3, body["in_progress"])
	assert.EqualValues(t, 2, body["completed"])
	assert.EqualValues(t, 1, body["urgent"])
}

func TestDashboardStatsReflectNewOrders(t *testing.T) {
	rig := newTestRig(t)

	w := rig.do(t, http.MethodPost, "/api/orders", map[string]any{
		"client_name":    "Carmen López",
		"client_phone":   "555-0201",
		"appliance_type": "stove",
		"brand":          "Mabe",
		"problem":        "Quemador no enciende",
		"priority":       "high",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = rig.do(t, http.MethodGet, "/api/dashboard/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.EqualValues(t, 1, body["pending"])
	assert.EqualValues(t, 2, body["urgent"])
}
