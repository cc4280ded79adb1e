package repository

import (
	"context"

	"fleetflow/internal/model"

	"gorm.io/gorm"
)

type MileageRepository interface {
	Append(ctx context.Context, m *model.MileageRecord) error
	Query(ctx context.Context, tenantID string, rng DateRange) ([]model.MileageRecord, error)
	List(ctx context.Context, tenantID string, rng DateRange, page, limit int) ([]model.MileageRecord, int64, error)
	ExistsBySourceRef(ctx context.Context, tenantID, sourceRef string) (bool, error)
}

type mileageRepository struct {
	db *gorm.DB
}

func NewMileageRepository(db *gorm.DB) MileageRepository {
	return &mileageRepository{db: db}
}

func (r *mileageRepository) Append(ctx context.Context, m *model.MileageRecord) error {
	return GetDB(ctx, r.db).Create(m).Error
}

func (r *mileageRepository) Query(ctx context.Context, tenantID string, rng DateRange) ([]model.MileageRecord, error) {
	var records []model.MileageRecord
	db := applyRange(GetDB(ctx, r.db).Where("tenant_id = ?", tenantID), "travel_date", rng)
	if err := db.Order("travel_date ASC, created_at ASC, id ASC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *mileageRepository) List(ctx context.Context, tenantID string, rng DateRange, page, limit int) ([]model.MileageRecord, int64, error) {
	var records []model.MileageRecord
	var total int64

	db := applyRange(GetDB(ctx, r.db).Model(&model.MileageRecord{}).Where("tenant_id = ?", tenantID), "travel_date", rng).Session(&gorm.Session{})
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := db.Order("travel_date DESC, created_at DESC").Offset(offset).Limit(limit).Find(&records).Error; err != nil {
		return nil, 0, err
	}

	return records, total, nil
}

// ExistsBySourceRef reports whether an ELD record was already imported for the tenant.
func (r *mileageRepository) ExistsBySourceRef(ctx context.Context, tenantID, sourceRef string) (bool, error) {
	var count int64
	err := GetDB(ctx, r.db).Model(&model.MileageRecord{}).
		Where("tenant_id = ? AND source_ref = ?", tenantID, sourceRef).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
