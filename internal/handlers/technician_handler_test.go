package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListTechnicians(t *testing.T) {
	rig := newTestRig(t)

	w := rig.do(t, http.MethodGet, "/api/technicians", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	require.EqualValues(t, 3, body["total"])

	first := body["data"].([]any)[0].(map[string]any)
	assert.Equal(t, "Carlos Rodríguez", first["name"])
	assert.Equal(t, "available", first["status"])
}

func TestCreateTechnicianValidation(t *testing.T) {
	rig := newTestRig(t)

	tests := []struct {
		name string
		body map[string]any
	}{
		{"missing specialties", map[string]any{
			"name":  "Lucía Fernández",
			"email": "lucia@restoservice.mx",
			"phone": "555-0104",
		}},
		{"empty specialties", map[string]any{
			"name":        "Lucía Fernández",
			"email":       "lucia@restoservice.mx",
			"phone":       "555-0104",
			"specialties": []string{},
		}},
		{"unknown specialty", map[string]any{
			"name":        "Lucía Fernández",
			"email":       "lucia@restoservice.mx",
			"phone":       "555-0104",
			"specialties": []string{"plumbing"},
		}},
		{"malformed email", map[string]any{
			"name":        "Lucía Fernández",
			"email":       "not-an-email",
			"phone":       "555-0104",
			"specialties": []string{"general"},
		}},
		{"bad schedule", map[string]any{
			"name":        "Lucía Fernández",
			"email":       "lucia@restoservice.mx",
			"phone":       "555-0104",
			"specialties": []string{"general"},
			"schedule":    map[string]any{"start": "18:00", "end": "08:00"},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := rig.do(t, http.MethodPost, "/api/technicians", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestUpdateTechnician(t *testing.T) {
	rig := newTestRig(t)

	// Load the roster snapshot first.
	rig.do(t, http.MethodGet, "/api/technicians", nil)

	w := rig.do(t, http.MethodPatch, "/api/technicians/1", map[string]any{
		"status": "busy",
	})
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.Equal(t, "busy", body["status"])
	assert.Equal(t, "Carlos Rodríguez", body["name"])
}

func TestUpdateTechnicianMissingID(t *testing.T) {
	rig := newTestRig(t)

	w := rig.do(t, http.MethodPatch, "/api/technicians/does-not-exist", map[string]any{
		"status": "busy",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "technician_not_found", decode(t, w)["error_code"])
}

func TestUpdateTechnicianRejectsInvalidStatus(t *testing.T) {
	rig := newTestRig(t)

	w := rig.do(t, http.MethodPatch, "/api/technicians/1", map[string]any{
		"status": "vacationing",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteTechnician(t *testing.T) {
	rig := newTestRig(t)

	rig.do(t, http.MethodGet, "/api/technicians", nil)

	w := rig.do(t, http.MethodDelete, "/api/technicians/3", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = rig.do(t, http.MethodGet, "/api/technicians", nil)
	assert.EqualValues(t, 2, decode(t, w)["total"])

	// The orders assigned to the removed technician keep their
	// reference; assignment cleanup is an explicit follow-up action.
	w = rig.do(t, http.MethodGet, "/api/orders?technician_id=3", nil)
	assert.EqualValues(t, 1, decode(t, w)["total"])
}
