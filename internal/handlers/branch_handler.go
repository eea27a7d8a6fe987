package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/restoservice/repair-admin/internal/httperr"
	"github.com/restoservice/repair-admin/internal/middleware"
	"github.com/restoservice/repair-admin/internal/models"
	"github.com/restoservice/repair-admin/internal/timezone"
)

type BranchHandler struct {
	db *gorm.DB
}

func NewBranchHandler(db *gorm.DB) *BranchHandler {
	return &BranchHandler{db: db}
}

type UpdateBranchRequest struct {
	Name     *string `json:"name,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Address  *string `json:"address,omitempty"`
	Timezone *string `json:"timezone,omitempty"`
}

func (h *BranchHandler) GetMeBranch(c *gin.Context) {
	branchID := c.MustGet(middleware.ContextBranchID).(string)

	var branch models.Branch
	if err := h.db.Where("id = ?", branchID).First(&branch).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "branch_not_found", "Branch not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_branch", "Could not load branch data.")
		return
	}

	c.JSON(http.StatusOK, branch)
}

func (h *BranchHandler) UpdateMeBranch(c *gin.Context) {
	branchID := c.MustGet(middleware.ContextBranchID).(string)

	var branch models.Branch
	if err := h.db.Where("id = ?", branchID).First(&branch).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "branch_not_found", "Branch not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_branch", "Could not load branch data.")
		return
	}

	var req UpdateBranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	if req.Name != nil {
		branch.Name = *req.Name
	}
	if req.Phone != nil {
		branch.Phone = *req.Phone
	}
	if req.Address != nil {
		branch.Address = *req.Address
	}
	if req.Timezone != nil {
		if !timezone.IsValid(*req.Timezone) {
			httperr.BadRequest(c, "invalid_timezone", "Unknown timezone.")
			return
		}
		branch.Timezone = *req.Timezone
	}

	if err := h.db.Save(&branch).Error; err != nil {
		httperr.Internal(c, "failed_to_update_branch", "Could not save branch settings.")
		return
	}

	c.JSON(http.StatusOK, branch)
}
