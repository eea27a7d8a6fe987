package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/restoservice/repair-admin/internal/audit"
	"github.com/restoservice/repair-admin/internal/cache"
	domain "github.com/restoservice/repair-admin/internal/domain/order"
	"github.com/restoservice/repair-admin/internal/httperr"
	"github.com/restoservice/repair-admin/internal/httpresp"
	"github.com/restoservice/repair-admin/internal/middleware"
	"github.com/restoservice/repair-admin/internal/models"
	"github.com/restoservice/repair-admin/internal/payments"
	"github.com/restoservice/repair-admin/internal/store"
	"github.com/restoservice/repair-admin/internal/timezone"
)

// ======================================================
// HANDLER
// ======================================================

type OrderHandler struct {
	db       *gorm.DB
	orders   *store.OrderStore
	audit    *audit.Dispatcher
	tracking *cache.TrackingCache
	payments payments.Provider
}

func NewOrderHandler(
	db *gorm.DB,
	orders *store.OrderStore,
	dispatcher *audit.Dispatcher,
	tracking *cache.TrackingCache,
	provider payments.Provider,
) *OrderHandler {
	return &OrderHandler{
		db:       db,
		orders:   orders,
		audit:    dispatcher,
		tracking: tracking,
		payments: provider,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateOrderRequest struct {
	ClientName  string `json:"client_name" binding:"required"`
	ClientPhone string `json:"client_phone" binding:"required"`
	ClientEmail string `json:"client_email" binding:"omitempty,email"`
	Address     string `json:"address"`

	ApplianceType string `json:"appliance_type" binding:"required,oneof=refrigerator washer dryer dishwasher oven microwave stove air_conditioner other"`
	Brand         string `json:"brand" binding:"required"`
	Model         string `json:"model"`
	SerialNumber  string `json:"serial_number"`

	Problem     string `json:"problem" binding:"required"`
	Status      string `json:"status" binding:"omitempty,oneof=pending diagnosed budgeted approved in_repair waiting_parts completed delivered cancelled"`
	Priority    string `json:"priority" binding:"omitempty,oneof=low medium high"`
	ServiceType string `json:"service_type" binding:"omitempty,oneof=workshop home"`

	TechnicianID  string `json:"technician_id"`
	ScheduledDate string `json:"scheduled_date"` // YYYY-MM-DD, branch-local
}

type BudgetRequest struct {
	Amount  float64 `json:"amount" binding:"required,min=0"`
	Details string  `json:"details" binding:"required"`
}

// ======================================================
// LIST
// ======================================================

// List refreshes the collection, stores the requested filters and
// returns the filtered snapshot with the store's loading/error state.
func (h *OrderHandler) List(c *gin.Context) {
	var filters domain.Filters
	if err := c.ShouldBindQuery(&filters); err != nil {
		httperr.BadRequest(c, "invalid_filters", "Invalid filter parameters.")
		return
	}

	h.orders.SetFilters(filters)
	h.orders.FetchOrders(c.Request.Context())

	if msg := h.orders.Err(); msg != "" {
		httperr.Internal(c, "failed_to_list_orders", msg)
		return
	}

	httpresp.List(c, h.orders.FilteredOrders(), h.orders.Loading(), h.orders.Err())
}

// ======================================================
// CREATE
// ======================================================

func (h *OrderHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)
	branchID := c.MustGet(middleware.ContextBranchID).(string)

	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	in := store.CreateOrderInput{
		ClientName:  req.ClientName,
		ClientPhone: req.ClientPhone,
		ClientEmail: req.ClientEmail,
		Address:     req.Address,

		ApplianceType: req.ApplianceType,
		Brand:         req.Brand,
		Model:         req.Model,
		SerialNumber:  req.SerialNumber,

		Problem:     req.Problem,
		Status:      req.Status,
		Priority:    req.Priority,
		ServiceType: req.ServiceType,

		TechnicianID: req.TechnicianID,
	}

	if req.ScheduledDate != "" {
		var branch models.Branch
		if err := h.db.Where("id = ?", branchID).First(&branch).Error; err != nil {
			httperr.Internal(c, "branch_not_found", "Branch not found.")
			return
		}

		scheduled, err := parseDateInBranch(&branch, req.ScheduledDate)
		if err != nil {
			httperr.BadRequest(c, "invalid_scheduled_date", "Invalid scheduled date.")
			return
		}
		in.ScheduledDate = &scheduled
	}

	o, err := h.orders.CreateOrder(c.Request.Context(), in)
	if err != nil {
		httperr.Internal(c, "failed_to_create_order", "Could not create the order.")
		return
	}

	h.audit.Dispatch(audit.Event{
		BranchID: branchID,
		UserID:   &userID,
		Action:   "order_created",
		Entity:   "order",
		EntityID: &o.ID,
		Metadata: map[string]any{"order_number": o.OrderNumber},
	})

	httpresp.Created(c, o)
}

// ======================================================
// UPDATE (partial patch)
// ======================================================

func (h *OrderHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)
	branchID := c.MustGet(middleware.ContextBranchID).(string)
	id := c.Param("id")

	var patch domain.Patch
	if err := c.ShouldBindJSON(&patch); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	o, err := h.orders.UpdateOrder(c.Request.Context(), id, patch)
	if err != nil {
		httperr.Internal(c, "failed_to_update_order", "Could not update the order.")
		return
	}

	// The store treats a missing id as a no-op; at the HTTP boundary
	// that surfaces as 404 so clients are not left guessing.
	if o == nil {
		httperr.NotFound(c, "order_not_found", "Order not found.")
		return
	}

	h.tracking.Invalidate(c.Request.Context(), o.OrderNumber)

	h.audit.Dispatch(audit.Event{
		BranchID: branchID,
		UserID:   &userID,
		Action:   "order_updated",
		Entity:   "order",
		EntityID: &o.ID,
	})

	httpresp.OK(c, o)
}

// ======================================================
// TECHNICIAN ORDERS (read-only side query)
// ======================================================

func (h *OrderHandler) TechnicianOrders(c *gin.Context) {
	technicianID := c.Param("id")

	orders := h.orders.FetchTechnicianOrders(c.Request.Context(), technicianID)
	httpresp.List(c, orders, false, "")
}

// ======================================================
// BUDGET
// ======================================================

func (h *OrderHandler) SetBudget(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)
	branchID := c.MustGet(middleware.ContextBranchID).(string)
	id := c.Param("id")

	var req BudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	o, found, err := h.orders.Mutate(c.Request.Context(), id, func(o *models.RepairOrder) error {
		return domain.SetBudget(o, req.Amount, req.Details, timezone.Now())
	})
	if !found {
		httperr.NotFound(c, "order_not_found", "Order not found.")
		return
	}
	if err != nil {
		if code := httperr.BusinessCode(err); code != "" {
			httperr.BadRequest(c, code, "Invalid budget.")
			return
		}
		httperr.Internal(c, "failed_to_set_budget", "Could not save the budget.")
		return
	}

	h.tracking.Invalidate(c.Request.Context(), o.OrderNumber)

	h.audit.Dispatch(audit.Event{
		BranchID: branchID,
		UserID:   &userID,
		Action:   "budget_set",
		Entity:   "order",
		EntityID: &o.ID,
		Metadata: map[string]any{"amount": req.Amount},
	})

	httpresp.OK(c, o)
}

func (h *OrderHandler) ApproveBudget(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)
	branchID := c.MustGet(middleware.ContextBranchID).(string)
	id := c.Param("id")

	o, found, err := h.orders.Mutate(c.Request.Context(), id, func(o *models.RepairOrder) error {
		return domain.ApproveBudget(o, timezone.Now())
	})
	if !found {
		httperr.NotFound(c, "order_not_found", "Order not found.")
		return
	}
	if err != nil {
		if code := httperr.BusinessCode(err); code != "" {
			httperr.Conflict(c, code, "Budget cannot be approved.")
			return
		}
		httperr.Internal(c, "failed_to_approve_budget", "Could not approve the budget.")
		return
	}

	h.tracking.Invalidate(c.Request.Context(), o.OrderNumber)

	h.audit.Dispatch(audit.Event{
		BranchID: branchID,
		UserID:   &userID,
		Action:   "budget_approved",
		Entity:   "order",
		EntityID: &o.ID,
	})

	resp := gin.H{"order": o}

	if h.payments != nil {
		link, err := h.payments.BudgetPaymentLink(c.Request.Context(), o)
		if err == nil {
			resp["payment_url"] = link
		}
	}

	httpresp.OK(c, resp)
}

func (h *OrderHandler) RejectBudget(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)
	branchID := c.MustGet(middleware.ContextBranchID).(string)
	id := c.Param("id")

	o, found, err := h.orders.Mutate(c.Request.Context(), id, func(o *models.RepairOrder) error {
		return domain.RejectBudget(o, timezone.Now())
	})
	if !found {
		httperr.NotFound(c, "order_not_found", "Order not found.")
		return
	}
	if err != nil {
		if code := httperr.BusinessCode(err); code != "" {
			httperr.Conflict(c, code, "Budget cannot be rejected.")
			return
		}
		httperr.Internal(c, "failed_to_reject_budget", "Could not reject the budget.")
		return
	}

	h.tracking.Invalidate(c.Request.Context(), o.OrderNumber)

	h.audit.Dispatch(audit.Event{
		BranchID: branchID,
		UserID:   &userID,
		Action:   "budget_rejected",
		Entity:   "order",
		EntityID: &o.ID,
	})

	httpresp.OK(c, o)
}
