package repository

import (
	"context"

	"fleetflow/internal/model"

	"gorm.io/gorm"
)

type FuelPurchaseRepository interface {
	Append(ctx context.Context, p *model.FuelPurchase) error
	Query(ctx context.Context, tenantID string, rng DateRange) ([]model.FuelPurchase, error)
	List(ctx context.Context, tenantID string, rng DateRange, page, limit int) ([]model.FuelPurchase, int64, error)
}

type fuelPurchaseRepository struct {
	db *gorm.DB
}

func NewFuelPurchaseRepository(db *gorm.DB) FuelPurchaseRepository {
	return &fuelPurchaseRepository{db: db}
}

func (r *fuelPurchaseRepository) Append(ctx context.Context, p *model.FuelPurchase) error {
	return GetDB(ctx, r.db).Create(p).Error
}

// Query returns a tenant's purchases in the range, oldest first.
func (r *fuelPurchaseRepository) Query(ctx context.Context, tenantID string, rng DateRange) ([]model.FuelPurchase, error) {
	var purchases []model.FuelPurchase
	db := applyRange(GetDB(ctx, r.db).Where("tenant_id = ?", tenantID), "purchase_date", rng)
	if err := db.Order("purchase_date ASC, created_at ASC, id ASC").Find(&purchases).Error; err != nil {
		return nil, err
	}
	return purchases, nil
}

func (r *fuelPurchaseRepository) List(ctx context.Context, tenantID string, rng DateRange, page, limit int) ([]model.FuelPurchase, int64, error) {
	var purchases []model.FuelPurchase
	var total int64

	db := applyRange(GetDB(ctx, r.db).Model(&model.FuelPurchase{}).Where("tenant_id = ?", tenantID), "purchase_date", rng).Session(&gorm.Session{})
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := db.Order("purchase_date DESC, created_at DESC").Offset(offset).Limit(limit).Find(&purchases).Error; err != nil {
		return nil, 0, err
	}

	return purchases, total, nil
}
