package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/restoservice/repair-admin/internal/audit"
	domain "github.com/restoservice/repair-admin/internal/domain/technician"
	"github.com/restoservice/repair-admin/internal/httperr"
	"github.com/restoservice/repair-admin/internal/httpresp"
	"github.com/restoservice/repair-admin/internal/middleware"
	"github.com/restoservice/repair-admin/internal/models"
	"github.com/restoservice/repair-admin/internal/store"
	"github.com/restoservice/repair-admin/internal/timezone"
	"github.com/restoservice/repair-admin/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

type TechnicianHandler struct {
	technicians *store.TechnicianStore
	audit       *audit.Dispatcher
}

func NewTechnicianHandler(
	technicians *store.TechnicianStore,
	dispatcher *audit.Dispatcher,
) *TechnicianHandler {
	return &TechnicianHandler{technicians: technicians, audit: dispatcher}
}

// ======================================================
// REQUESTS
// ======================================================

type AddTechnicianRequest struct {
	Name        string           `json:"name" binding:"required"`
	Email       string           `json:"email" binding:"required,email"`
	Phone       string           `json:"phone" binding:"required"`
	Status      string           `json:"status" binding:"omitempty,oneof=available busy off_duty"`
	Specialties []string         `json:"specialties" binding:"required,min=1,dive,oneof=refrigeration washing cooking air_conditioning general"`
	Schedule    *models.Schedule `json:"schedule,omitempty"`
}

// ======================================================
// LIST
// ======================================================

// List refreshes the roster. ?available=true narrows the response to
// technicians marked available and currently on shift.
func (h *TechnicianHandler) List(c *gin.Context) {
	h.technicians.FetchTechnicians(c.Request.Context())

	if msg := h.technicians.Err(); msg != "" {
		httperr.Internal(c, "failed_to_list_technicians", msg)
		return
	}

	technicians := h.technicians.Technicians()

	if c.Query("available") == "true" {
		now := timezone.Now()
		filtered := make([]models.Technician, 0, len(technicians))
		for _, t := range technicians {
			if t.Status == string(domain.StatusAvailable) && domain.OnShift(&t, now) {
				filtered = append(filtered, t)
			}
		}
		technicians = filtered
	}

	httpresp.List(c, technicians, h.technicians.Loading(), h.technicians.Err())
}

// ======================================================
// CREATE
// ======================================================

func (h *TechnicianHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)
	branchID := c.MustGet(middleware.ContextBranchID).(string)

	var req AddTechnicianRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !validators.IsEmailDomainValid(email) {
		httperr.BadRequest(c, "invalid_email_domain", "The email domain does not exist.")
		return
	}

	if req.Schedule != nil {
		if err := domain.ValidateSchedule(req.Schedule); err != nil {
			httperr.BadRequest(c, httperr.BusinessCode(err), "Invalid schedule.")
			return
		}
	}

	t, err := h.technicians.AddTechnician(c.Request.Context(), store.AddTechnicianInput{
		Name:        req.Name,
		Email:       email,
		Phone:       req.Phone,
		Status:      req.Status,
		Specialties: req.Specialties,
		Schedule:    req.Schedule,
	})
	if err != nil {
		httperr.Internal(c, "failed_to_add_technician", "Could not add the technician.")
		return
	}

	h.audit.Dispatch(audit.Event{
		BranchID: branchID,
		UserID:   &userID,
		Action:   "technician_added",
		Entity:   "technician",
		EntityID: &t.ID,
	})

	httpresp.Created(c, t)
}

// ======================================================
// UPDATE (partial patch)
// ======================================================

func (h *TechnicianHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)
	branchID := c.MustGet(middleware.ContextBranchID).(string)
	id := c.Param("id")

	var patch domain.Patch
	if err := c.ShouldBindJSON(&patch); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if patch.Schedule != nil {
		if err := domain.ValidateSchedule(patch.Schedule); err != nil {
			httperr.BadRequest(c, httperr.BusinessCode(err), "Invalid schedule.")
			return
		}
	}

	t, err := h.technicians.UpdateTechnician(c.Request.Context(), id, patch)
	if err != nil {
		httperr.Internal(c, "failed_to_update_technician", "Could not update the technician.")
		return
	}
	if t == nil {
		httperr.NotFound(c, "technician_not_found", "Technician not found.")
		return
	}

	h.audit.Dispatch(audit.Event{
		BranchID: branchID,
		UserID:   &userID,
		Action:   "technician_updated",
		Entity:   "technician",
		EntityID: &t.ID,
	})

	httpresp.OK(c, t)
}

// ======================================================
// DELETE
// ======================================================

func (h *TechnicianHandler) Delete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)
	branchID := c.MustGet(middleware.ContextBranchID).(string)
	id := c.Param("id")

	if err := h.technicians.DeleteTechnician(c.Request.Context(), id); err != nil {
		httperr.Internal(c, "failed_to_delete_technician", "Could not delete the technician.")
		return
	}

	h.audit.Dispatch(audit.Event{
		BranchID: branchID,
		UserID:   &userID,
		Action:   "technician_deleted",
		Entity:   "technician",
		EntityID: &id,
	})

	httpresp.OK(c, gin.H{"deleted": true})
}

// ======================================================
// SELECTION (shared edit-mode state)
// ======================================================

func (h *TechnicianHandler) Select(c *gin.Context) {
	id := c.Param("id")

	for _, t := range h.technicians.Technicians() {
		if t.ID == id {
			h.technicians.SelectTechnician(&t)
			httpresp.OK(c, t)
			return
		}
	}

	httperr.NotFound(c, "technician_not_found", "Technician not found.")
}

func (h *TechnicianHandler) ClearSelection(c *gin.Context) {
	h.technicians.SelectTechnician(nil)
	httpresp.OK(c, gin.H{"selected": nil})
}

func (h *TechnicianHandler) Selected(c *gin.Context) {
	httpresp.OK(c, gin.H{"selected": h.technicians.Selected()})
}

// ======================================================
// SCHEDULE
// ======================================================

func (h *TechnicianHandler) GetSchedule(c *gin.Context) {
	id := c.Param("id")

	for _, t := range h.technicians.Technicians() {
		if t.ID == id {
			httpresp.OK(c, gin.H{"schedule": t.Schedule})
			return
		}
	}

	httperr.NotFound(c, "technician_not_found", "Technician not found.")
}

func (h *TechnicianHandler) UpdateSchedule(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)
	branchID := c.MustGet(middleware.ContextBranchID).(string)
	id := c.Param("id")

	var schedule models.Schedule
	if err := c.ShouldBindJSON(&schedule); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if err := domain.ValidateSchedule(&schedule); err != nil {
		httperr.BadRequest(c, httperr.BusinessCode(err), "Invalid schedule.")
		return
	}

	t, err := h.technicians.UpdateTechnician(c.Request.Context(), id, domain.Patch{
		Schedule: &schedule,
	})
	if err != nil {
		httperr.Internal(c, "failed_to_update_schedule", "Could not update the schedule.")
		return
	}
	if t == nil {
		httperr.NotFound(c, "technician_not_found", "Technician not found.")
		return
	}

	h.audit.Dispatch(audit.Event{
		BranchID: branchID,
		UserID:   &userID,
		Action:   "technician_schedule_updated",
		Entity:   "technician",
		EntityID: &t.ID,
	})

	httpresp.OK(c, gin.H{"schedule": t.Schedule})
}
