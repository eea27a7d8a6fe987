package technician

import (
	"context"

	"github.com/restoservice/repair-admin/internal/models"
)

type Repository interface {
	ListTechnicians(
		ctx context.Context,
	) ([]models.Technician, error)

	GetTechnicianByID(
		ctx context.Context,
		id string,
	) (*models.Technician, error)

	CreateTechnician(
		ctx context.Context,
		t *models.Technician,
	) error

	SaveTechnician(
		ctx context.Context,
		t *models.Technician,
	) error

	// DeleteTechnician removes the row; missing ids are not an error.
	DeleteTechnician(
		ctx context.Context,
		id string,
	) error
}
