package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/restoservice/repair-admin/internal/cache"
	domain "github.com/restoservice/repair-admin/internal/domain/order"
	"github.com/restoservice/repair-admin/internal/httperr"
	"github.com/restoservice/repair-admin/internal/httpresp"
	"github.com/restoservice/repair-admin/internal/models"
	"github.com/restoservice/repair-admin/internal/store"
)

// PublicHandler serves the unauthenticated client-facing endpoints:
// order tracking by number and the post-repair review form.
type PublicHandler struct {
	orders   *store.OrderStore
	tracking *cache.TrackingCache
}

func NewPublicHandler(orders *store.OrderStore, tracking *cache.TrackingCache) *PublicHandler {
	return &PublicHandler{orders: orders, tracking: tracking}
}

// TrackingInfo is the client-safe projection of an order. Internal
// notes, budgets under negotiation and technician details stay out.
type TrackingInfo struct {
	OrderNumber   string  `json:"order_number"`
	ClientName    string  `json:"client_name"`
	ApplianceType string  `json:"appliance_type"`
	Brand         string  `json:"brand"`
	Model         string  `json:"model"`
	Status        string  `json:"status"`
	ScheduledDate *string `json:"scheduled_date,omitempty"`
	CompletedAt   *string `json:"completed_at,omitempty"`
}

func trackingInfo(o *models.RepairOrder) TrackingInfo {
	info := TrackingInfo{
		OrderNumber:   o.OrderNumber,
		ClientName:    o.ClientName,
		ApplianceType: o.ApplianceType,
		Brand:         o.Brand,
		Model:         o.Model,
		Status:        o.Status,
	}

	if o.ScheduledDate != nil {
		s := o.ScheduledDate.Format("2006-01-02")
		info.ScheduledDate = &s
	}
	if o.CompletedAt != nil {
		s := o.CompletedAt.Format("2006-01-02")
		info.CompletedAt = &s
	}

	return info
}

// Track looks an order up by its public number. Unknown numbers are a
// plain 404, never an error state.
func (h *PublicHandler) Track(c *gin.Context) {
	number := c.Param("orderNumber")

	if o, ok := h.tracking.Get(c.Request.Context(), number); ok {
		httpresp.OK(c, trackingInfo(o))
		return
	}

	o, ok := h.orders.GetOrderByNumber(c.Request.Context(), number)
	if !ok {
		httperr.NotFound(c, "order_not_found", "No order matches that number.")
		return
	}

	h.tracking.Set(c.Request.Context(), o)

	httpresp.OK(c, trackingInfo(o))
}

type ReviewRequest struct {
	Rating float64 `json:"rating" binding:"min=0,max=5"`
	Review string  `json:"review"`
}

// SubmitReview records the client's rating once the repair is
// completed or delivered.
func (h *PublicHandler) SubmitReview(c *gin.Context) {
	number := c.Param("orderNumber")

	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	o, ok := h.orders.GetOrderByNumber(c.Request.Context(), number)
	if !ok {
		httperr.NotFound(c, "order_not_found", "No order matches that number.")
		return
	}

	updated, found, err := h.orders.Mutate(c.Request.Context(), o.ID, func(o *models.RepairOrder) error {
		return domain.AddReview(o, req.Rating, req.Review)
	})
	if !found {
		httperr.NotFound(c, "order_not_found", "No order matches that number.")
		return
	}
	if err != nil {
		if code := httperr.BusinessCode(err); code != "" {
			httperr.Conflict(c, code, "The review cannot be recorded.")
			return
		}
		httperr.Internal(c, "failed_to_save_review", "Could not save the review.")
		return
	}

	h.tracking.Invalidate(c.Request.Context(), updated.OrderNumber)

	httpresp.OK(c, gin.H{"rating": updated.Rating, "review": updated.Review})
}
