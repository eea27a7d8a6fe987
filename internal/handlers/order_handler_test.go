package handlers_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListOrders(t *testing.T) {
	rig := newTestRig(t)

	w := rig.do(t, http.MethodGet, "/api/orders", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.EqualValues(t, 5, body["total"])
	assert.Equal(t, false, body["loading"])

	data := body["data"].([]any)
	first := data[0].(map[string]any)
	assert.Equal(t, "REP-2024-001", first["order_number"])
}

func TestListOrdersWithFilters(t *testing.T) {
	rig := newTestRig(t)

	w := rig.do(t, http.MethodGet, "/api/orders?status=completed", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 2, decode(t, w)["total"])

	w = rig.do(t, http.MethodGet, "/api/orders?search=laura", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	require.EqualValues(t, 1, body["total"])
	order := body["data"].([]any)[0].(map[string]any)
	assert.Equal(t, "REP-2024-004", order["order_number"])
}

func TestCreateOrder(t *testing.T) {
	rig := newTestRig(t)

	w := rig.do(t, http.MethodPost, "/api/orders", map[string]any{
		"client_name":    "Carmen López",
		"client_phone":   "555-0201",
		"appliance_type": "refrigerator",
		"brand":          "Samsung",
		"problem":        "Hace mucho ruido",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	body := decode(t, w)
	assert.Equal(t, fmt.Sprintf("REP-%04d-001", time.Now().Year()), body["order_number"])
	assert.Equal(t, "pending", body["status"])
	assert.Equal(t, "medium", body["priority"])
	assert.Equal(t, "workshop", body["service_type"])
	assert.NotEmpty(t, body["id"])
}

func TestCreateOrderValidation(t *testing.T) {
	rig := newTestRig(t)

	tests := []struct {
		name string
		body map[string]any
	}{
		{"missing client name", map[string]any{
			"client_phone":   "555-0201",
			"appliance_type": "oven",
			"brand":          "Mabe",
			"problem":        "No enciende",
		}},
		{"unknown appliance type", map[string]any{
			"client_name":    "Carmen López",
			"client_phone":   "555-0201",
			"appliance_type": "toaster",
			"brand":          "Mabe",
			"problem":        "No enciende",
		}},
		{"unknown priority", map[string]any{
			"client_name":    "Carmen López",
			"client_phone":   "555-0201",
			"appliance_type": "oven",
			"brand":          "Mabe",
			"problem":        "No enciende",
			"priority":       "urgent",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := rig.do(t, http.MethodPost, "/api/orders", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestUpdateOrder(t *testing.T) {
	rig := newTestRig(t)

	w := rig.do(t, http.MethodPatch, "/api/orders/4", map[string]any{
		"status":          "approved",
		"diagnosis_notes": "Resistencia dañada, pieza pedida",
	})
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.Equal(t, "approved", body["status"])
	assert.Equal(t, "Resistencia dañada, pieza pedida", body["diagnosis_notes"])

	// Untouched fields survive the patch.
	assert.Equal(t, "Laura Torres", body["client_name"])
}

func TestUpdateOrderMissingID(t *testing.T) {
	rig := newTestRig(t)

	w := rig.do(t, http.MethodPatch, "/api/orders/does-not-exist", map[string]any{
		"status": "cancelled",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "order_not_found", decode(t, w)["error_code"])
}

func TestTechnicianOrders(t *testing.T) {
	rig := newTestRig(t)

	w := rig.do(t, http.MethodGet, "/api/technicians/1/orders", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	require.EqualValues(t, 2, body["total"])

	data := body["data"].([]any)
	assert.Equal(t, "REP-2024-001", data[0].(map[string]any)["order_number"])
	assert.Equal(t, "REP-2024-003", data[1].(map[string]any)["order_number"])
}

func TestTechnicianOrdersUnknownTechnician(t *testing.T) {
	rig := newTestRig(t)

	w := rig.do(t, http.MethodGet, "/api/technicians/nobody/orders", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 0, decode(t, w)["total"])
}

// ======================================================
// BUDGET LIFECYCLE
// ======================================================

func TestBudgetLifecycle(t *testing.T) {
	rig := newTestRig(t)

	// Order 2 has no budget yet.
	w := rig.do(t, http.MethodPost, "/api/orders/2/budget", map[string]any{
		"amount":  1200,
		"details": "Reemplazo de bomba de drenaje",
	})
	require.Equal(t, http.StatusOK, w.Code)

	budget := decode(t, w)["budget"].(map[string]any)
	assert.Equal(t, 1200.0, budget["amount"])
	assert.Nil(t, budget["approved_at"])

	w = rig.do(t, http.MethodPatch, "/api/orders/2/budget/approve", nil)
	require.Equal(t, http.StatusOK, w.Code)

	order := decode(t, w)["order"].(map[string]any)
	approved := order["budget"].(map[string]any)
	assert.NotNil(t, approved["approved_at"])

	// Approval is final; rejecting afterwards conflicts.
	w = rig.do(t, http.MethodPatch, "/api/orders/2/budget/reject", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "budget_already_approved", decode(t, w)["error_code"])

	// And so does a second approval.
	w = rig.do(t, http.MethodPatch, "/api/orders/2/budget/approve", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "budget_already_approved", decode(t, w)["error_code"])
}

func TestApproveBudgetWithoutOne(t *testing.T) {
	rig := newTestRig(t)

	w := rig.do(t, http.MethodPatch, "/api/orders/2/budget/approve", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "no_budget", decode(t, w)["error_code"])
}

func TestSetBudgetOnMissingOrder(t *testing.T) {
	rig := newTestRig(t)

	w := rig.do(t, http.MethodPost, "/api/orders/does-not-exist/budget", map[string]any{
		"amount":  100,
		"details": "N/A",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}
