package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fleetflow/internal/ifta"
	"fleetflow/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReturnRepository interface {
	// Save inserts the return or replaces an existing one with the same id, lines included.
	Save(ctx context.Context, r *model.QuarterlyReturn) error
	FindByPeriod(ctx context.Context, tenantID string, year, quarter int) (*model.QuarterlyReturn, error)
	ListByTenant(ctx context.Context, tenantID string) ([]model.QuarterlyReturn, error)
	UpdateStatus(ctx context.Context, tenantID string, id uuid.UUID, status string, filedAt *time.Time) error
}

type returnRepository struct {
	db *gorm.DB
}

func NewReturnRepository(db *gorm.DB) ReturnRepository {
	return &returnRepository{db: db}
}

var returnUpdateColumns = []string{
	"due_date", "reminder_date", "fleet_mpg", "total_miles", "total_gallons_consumed",
	"total_gallons_purchased", "total_tax_due", "total_refund_due", "net_amount",
	"filing_status", "filed_at", "updated_at",
}

func (r *returnRepository) Save(ctx context.Context, ret *model.QuarterlyReturn) error {
	db := GetDB(ctx, r.db)

	if err := db.Where("return_id = ?", ret.ID).Delete(&model.ReturnJurisdiction{}).Error; err != nil {
		return err
	}

	err := db.Omit(clause.Associations).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns(returnUpdateColumns),
	}).Create(ret).Error
	if err != nil {
		return err
	}

	if len(ret.Jurisdictions) == 0 {
		return nil
	}
	return db.Create(&ret.Jurisdictions).Error
}

func (r *returnRepository) FindByPeriod(ctx context.Context, tenantID string, year, quarter int) (*model.QuarterlyReturn, error) {
	var ret model.QuarterlyReturn
	err := GetDB(ctx, r.db).
		Preload("Jurisdictions", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Where("tenant_id = ? AND year = ? AND quarter = ?", tenantID, year, quarter).
		First(&ret).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("return %dQ%d: %w", year, quarter, ifta.ErrNotFound)
		}
		return nil, err
	}
	return &ret, nil
}

// ListByTenant returns every stored return of the tenant, newest period first.
func (r *returnRepository) ListByTenant(ctx context.Context, tenantID string) ([]model.QuarterlyReturn, error) {
	var returns []model.QuarterlyReturn
	err := GetDB(ctx, r.db).
		Preload("Jurisdictions", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Where("tenant_id = ?", tenantID).
		Order("year DESC, quarter DESC").
		Find(&returns).Error
	if err != nil {
		return nil, err
	}
	return returns, nil
}

func (r *returnRepository) UpdateStatus(ctx context.Context, tenantID string, id uuid.UUID, status string, filedAt *time.Time) error {
	res := GetDB(ctx, r.db).Model(&model.QuarterlyReturn{}).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		Updates(map[string]interface{}{"filing_status": status, "filed_at": filedAt})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("return %s: %w", id, ifta.ErrNotFound)
	}
	return nil
}
