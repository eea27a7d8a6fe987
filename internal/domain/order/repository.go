package order

import (
	"context"

	"github.com/restoservice/repair-admin/internal/models"
)

type Repository interface {
	// -------- Reads --------
	ListOrders(
		ctx context.Context,
	) ([]models.RepairOrder, error)

	ListOrdersByTechnician(
		ctx context.Context,
		technicianID string,
	) ([]models.RepairOrder, error)

	GetOrderByID(
		ctx context.Context,
		id string,
	) (*models.RepairOrder, error)

	GetOrderByNumber(
		ctx context.Context,
		orderNumber string,
	) (*models.RepairOrder, error)

	// -------- Writes --------
	CreateOrder(
		ctx context.Context,
		o *models.RepairOrder,
	) error

	SaveOrder(
		ctx context.Context,
		o *models.RepairOrder,
	) error

	// -------- Numbering --------
	// MaxSequence reports the highest sequence already issued for the
	// given year, 0 when none.
	MaxSequence(
		ctx context.Context,
		year int,
	) (int, error)
}
