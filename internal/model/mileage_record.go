package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MileageRecord holds the miles one vehicle drove in one jurisdiction on one date.
type MileageRecord struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	TenantID         string          `gorm:"type:varchar(64);not null;index:idx_mileage_tenant_date,priority:1;index:idx_mileage_source,priority:1" json:"tenant_id"`
	VehicleID        string          `gorm:"type:varchar(64);not null" json:"vehicle_id"`
	TravelDate       time.Time       `gorm:"type:date;not null;index:idx_mileage_tenant_date,priority:2" json:"travel_date"`
	JurisdictionCode string          `gorm:"type:varchar(2);not null" json:"jurisdiction_code"`
	Miles            decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"miles"`
	RouteDetails     string          `gorm:"type:text" json:"route_details,omitempty"`
	SourceRef        string          `gorm:"type:varchar(128);index:idx_mileage_source,priority:2" json:"source_ref,omitempty"` // ELD record id, empty for manual entries
	CreatedAt        time.Time       `json:"created_at"`
}

func (MileageRecord) TableName() string { return "ifta_mileage_records" }

func (m *MileageRecord) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
