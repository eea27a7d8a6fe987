package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/restoservice/repair-admin/internal/domain/technician"
	"github.com/restoservice/repair-admin/internal/models"
)

type TechnicianGormRepository struct {
	db *gorm.DB
}

func NewTechnicianGormRepository(db *gorm.DB) *TechnicianGormRepository {
	return &TechnicianGormRepository{db: db}
}

func (r *TechnicianGormRepository) ListTechnicians(
	ctx context.Context,
) ([]models.Technician, error) {

	var techs []models.Technician
	if err := r.db.WithContext(ctx).
		Order("joined_at ASC, id ASC").
		Find(&techs).Error; err != nil {
		return nil, err
	}
	return techs, nil
}

func (r *TechnicianGormRepository) GetTechnicianByID(
	ctx context.Context,
	id string,
) (*models.Technician, error) {

	var t models.Technician
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TechnicianGormRepository) CreateTechnician(
	ctx context.Context,
	t *models.Technician,
) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *TechnicianGormRepository) SaveTechnician(
	ctx context.Context,
	t *models.Technician,
) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *TechnicianGormRepository) DeleteTechnician(
	ctx context.Context,
	id string,
) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.Technician{}).Error
}

// Compile-time check
var _ domain.Repository = (*TechnicianGormRepository)(nil)
