package order

import (
	"time"

	"github.com/restoservice/repair-admin/internal/httperr"
	"github.com/restoservice/repair-admin/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// SetBudget attaches or replaces the cost estimate. Replacing a budget
// clears any previous approval or rejection.
func SetBudget(o *models.RepairOrder, amount float64, details string, now time.Time) error {
	if amount < 0 {
		return httperr.ErrBusiness("invalid_budget_amount")
	}

	o.Budget = &models.Budget{
		Amount:    amount,
		Details:   details,
		CreatedAt: now,
	}
	return nil
}

// ApproveBudget marks the pending budget as approved. A budget that was
// already rejected stays rejected; approval and rejection are exclusive.
func ApproveBudget(o *models.RepairOrder, now time.Time) error {
	if o.Budget == nil {
		return httperr.ErrBusiness("no_budget")
	}
	if o.Budget.RejectedAt != nil {
		return httperr.ErrBusiness("budget_already_rejected")
	}
	if o.Budget.ApprovedAt != nil {
		return httperr.ErrBusiness("budget_already_approved")
	}

	o.Budget.ApprovedAt = &now
	return nil
}

func RejectBudget(o *models.RepairOrder, now time.Time) error {
	if o.Budget == nil {
		return httperr.ErrBusiness("no_budget")
	}
	if o.Budget.ApprovedAt != nil {
		return httperr.ErrBusiness("budget_already_approved")
	}
	if o.Budget.RejectedAt != nil {
		return httperr.ErrBusiness("budget_already_rejected")
	}

	o.Budget.RejectedAt = &now
	return nil
}

// AddReview records the client's post-completion rating and review.
func AddReview(o *models.RepairOrder, rating float64, review string) error {
	switch Status(o.Status) {
	case StatusCompleted, StatusDelivered:
	default:
		return httperr.ErrBusiness("order_not_completed")
	}

	if rating < 0 || rating > 5 {
		return httperr.ErrBusiness("invalid_rating")
	}

	o.Rating = &rating
	o.Review = review
	return nil
}
