package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ActionRecordFuelPurchase = "RECORD_FUEL_PURCHASE"
	ActionRecordMileage      = "RECORD_MILEAGE"
	ActionGenerateReturn     = "GENERATE_IFTA_RETURN"
	ActionFileReturn         = "FILE_IFTA_RETURN"
	ActionSyncELDMileage     = "SYNC_ELD_MILEAGE"
)

// AuditLog tracks Who, What, and When for tax-relevant changes of one tenant
type AuditLog struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	TenantID   string    `gorm:"type:varchar(64);not null;index" json:"tenant_id"`
	UserID     string    `gorm:"type:varchar(64);index" json:"user_id"` // empty for automated syncs
	Action     string    `gorm:"type:varchar(50);not null;index" json:"action"`
	EntityID   string    `gorm:"type:varchar(50);index" json:"entity_id"`
	EntityName string    `gorm:"type:varchar(255)" json:"entity_name,omitempty"`
	Details    string    `gorm:"type:text" json:"details"` // Serialized JSON payload of the action
	CreatedAt  time.Time `gorm:"index" json:"created_at"`
}

func (AuditLog) TableName() string { return "ifta_audit_logs" }

func (a *AuditLog) BeforeCreate(_ *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
