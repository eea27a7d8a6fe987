package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	domain "github.com/restoservice/repair-admin/internal/domain/order"
	"github.com/restoservice/repair-admin/internal/models"
)

type OrderGormRepository struct {
	db *gorm.DB
}

func NewOrderGormRepository(db *gorm.DB) *OrderGormRepository {
	return &OrderGormRepository{db: db}
}

// --------------------------------------------------
// Reads
// --------------------------------------------------

func (r *OrderGormRepository) ListOrders(
	ctx context.Context,
) ([]models.RepairOrder, error) {

	var orders []models.RepairOrder
	if err := r.db.WithContext(ctx).
		Order("created_at ASC, order_number ASC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *OrderGormRepository) ListOrdersByTechnician(
	ctx context.Context,
	technicianID string,
) ([]models.RepairOrder, error) {

	var orders []models.RepairOrder
	if err := r.db.WithContext(ctx).
		Where("technician_id = ?", technicianID).
		Order("created_at ASC, order_number ASC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *OrderGormRepository) GetOrderByID(
	ctx context.Context,
	id string,
) (*models.RepairOrder, error) {

	var o models.RepairOrder
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderGormRepository) GetOrderByNumber(
	ctx context.Context,
	orderNumber string,
) (*models.RepairOrder, error) {

	var o models.RepairOrder
	if err := r.db.WithContext(ctx).
		Where("order_number = ?", orderNumber).
		First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// --------------------------------------------------
// Writes
// --------------------------------------------------

func (r *OrderGormRepository) CreateOrder(
	ctx context.Context,
	o *models.RepairOrder,
) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *OrderGormRepository) SaveOrder(
	ctx context.Context,
	o *models.RepairOrder,
) error {
	return r.db.WithContext(ctx).Save(o).Error
}

// --------------------------------------------------
// Numbering
// --------------------------------------------------

// MaxSequence scans the issued numbers for the year. The store
// serializes creations, so a plain read is enough here; the unique
// index on order_number backstops a racing writer.
func (r *OrderGormRepository) MaxSequence(
	ctx context.Context,
	year int,
) (int, error) {

	prefix := fmt.Sprintf("REP-%04d-", year)

	var numbers []string
	if err := r.db.WithContext(ctx).
		Model(&models.RepairOrder{}).
		Where("order_number LIKE ?", prefix+"%").
		Pluck("order_number", &numbers).Error; err != nil {
		return 0, err
	}

	max := 0
	for _, n := range numbers {
		_, seq, err := domain.ParseNumber(n)
		if err != nil {
			continue
		}
		if seq > max {
			max = seq
		}
	}

	return max, nil
}

func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// Compile-time check
var _ domain.Repository = (*OrderGormRepository)(nil)
