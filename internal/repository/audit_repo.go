package repository

import (
	"context"
	"fmt"

	"fleetflow/internal/model"

	"gorm.io/gorm"
)

// AuditRepository stores the tenant's trail of IFTA writes.
type AuditRepository interface {
	Log(ctx context.Context, entry *model.AuditLog) error
	// List pages newest first. A limit below 1 returns every entry.
	List(ctx context.Context, tenantID string, page, limit int) ([]model.AuditLog, int64, error)
}

type gormAudit struct {
	db *gorm.DB
}

func NewAuditRepository(db *gorm.DB) AuditRepository {
	return &gormAudit{db: db}
}

func (r *gormAudit) Log(ctx context.Context, entry *model.AuditLog) error {
	if err := GetDB(ctx, r.db).Create(entry).Error; err != nil {
		return fmt.Errorf("write audit entry %s: %w", entry.Action, err)
	}
	return nil
}

func (r *gormAudit) List(ctx context.Context, tenantID string, page, limit int) ([]model.AuditLog, int64, error) {
	scoped := GetDB(ctx, r.db).Model(&model.AuditLog{}).
		Where("tenant_id = ?", tenantID).
		Session(&gorm.Session{})

	var total int64
	if err := scoped.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count audit entries: %w", err)
	}

	entries := make([]model.AuditLog, 0)
	q := scoped.Order("created_at DESC").Order("id DESC")
	if limit > 0 {
		if page < 1 {
			page = 1
		}
		q = q.Offset((page - 1) * limit).Limit(limit)
	}
	if err := q.Find(&entries).Error; err != nil {
		return nil, 0, fmt.Errorf("list audit entries: %w", err)
	}
	return entries, total, nil
}
