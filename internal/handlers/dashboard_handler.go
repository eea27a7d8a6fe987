package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/restoservice/repair-admin/internal/domain/order"
	"github.com/restoservice/repair-admin/internal/httperr"
	"github.com/restoservice/repair-admin/internal/httpresp"
	"github.com/restoservice/repair-admin/internal/store"
)

type DashboardHandler struct {
	orders *store.OrderStore
}

func NewDashboardHandler(orders *store.OrderStore) *DashboardHandler {
	return &DashboardHandler{orders: orders}
}

type DashboardStats struct {
	Pending    int `json:"pending"`
	InProgress int `json:"in_progress"`
	Completed  int `json:"completed"`
	Urgent     int `json:"urgent"`
}

// Stats aggregates the order snapshot into the admin dashboard
// counters. In-progress covers diagnosed, in_repair and waiting_parts;
// urgent counts high-priority orders across every status.
func (h *DashboardHandler) Stats(c *gin.Context) {
	h.orders.FetchOrders(c.Request.Context())

	if msg := h.orders.Err(); msg != "" {
		httperr.Internal(c, "failed_to_load_stats", msg)
		return
	}

	var stats DashboardStats
	for _, o := range h.orders.Orders() {
		status := domain.Status(o.Status)

		switch {
		case status == domain.StatusPending:
			stats.Pending++
		case status.InProgress():
			stats.InProgress++
		case status == domain.StatusCompleted:
			stats.Completed++
		}

		if o.Priority == string(domain.PriorityHigh) {
			stats.Urgent++
		}
	}

	httpresp.OK(c, stats)
}
