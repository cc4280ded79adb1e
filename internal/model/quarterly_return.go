package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FilingStatus enum constants
const (
	FilingStatusDraft   = "draft"
	FilingStatusFiled   = "filed"
	FilingStatusOverdue = "overdue"
)

// QuarterlyReturn is the computed IFTA filing for one tenant and quarter.
type QuarterlyReturn struct {
	ID                    uuid.UUID            `gorm:"type:uuid;primaryKey" json:"id"`
	TenantID              string               `gorm:"type:varchar(64);not null;uniqueIndex:idx_return_period,priority:1" json:"tenant_id"`
	Year                  int                  `gorm:"not null;uniqueIndex:idx_return_period,priority:2" json:"year"`
	Quarter               int                  `gorm:"not null;uniqueIndex:idx_return_period,priority:3" json:"quarter"`
	DueDate               time.Time            `gorm:"type:date;not null" json:"due_date"`      // legal deadline
	ReminderDate          time.Time            `gorm:"type:date;not null" json:"reminder_date"` // due date minus alert buffer
	FleetMPG              decimal.Decimal      `gorm:"type:decimal(8,3);not null" json:"fleet_mpg"`
	TotalMiles            decimal.Decimal      `gorm:"type:decimal(14,2);not null" json:"total_miles"`
	TotalGallonsConsumed  decimal.Decimal      `gorm:"type:decimal(14,3);not null" json:"total_gallons_consumed"`
	TotalGallonsPurchased decimal.Decimal      `gorm:"type:decimal(14,3);not null" json:"total_gallons_purchased"`
	TotalTaxDue           decimal.Decimal      `gorm:"type:decimal(14,2);not null" json:"total_tax_due"`
	TotalRefundDue        decimal.Decimal      `gorm:"type:decimal(14,2);not null" json:"total_refund_due"`
	NetAmount             decimal.Decimal      `gorm:"type:decimal(14,2);not null" json:"net_amount"`
	FilingStatus          string               `gorm:"type:varchar(20);not null;default:'draft'" json:"filing_status"`
	FiledAt               *time.Time           `json:"filed_at"`
	Jurisdictions         []ReturnJurisdiction `gorm:"foreignKey:ReturnID;constraint:OnDelete:CASCADE" json:"jurisdictions"`
	CreatedAt             time.Time            `json:"created_at"`
	UpdatedAt             time.Time            `json:"updated_at"`
}

func (QuarterlyReturn) TableName() string { return "ifta_quarterly_returns" }

// ReturnJurisdiction is one line of a return's per-jurisdiction breakdown.
type ReturnJurisdiction struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey" json:"-"`
	ReturnID         uuid.UUID       `gorm:"type:uuid;not null;index" json:"-"`
	Position         int             `gorm:"not null" json:"-"`
	JurisdictionCode string          `gorm:"type:varchar(2);not null" json:"code"`
	TaxRatePerGallon decimal.Decimal `gorm:"type:decimal(10,4);not null" json:"tax_rate_per_gallon"`
	MilesDriven      decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"miles_driven"`
	GallonsConsumed  decimal.Decimal `gorm:"type:decimal(14,3);not null" json:"gallons_consumed"`
	GallonsPurchased decimal.Decimal `gorm:"type:decimal(14,3);not null" json:"gallons_purchased"`
	TaxOwed          decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"tax_owed"`
	TaxPaidAtPump    decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"tax_paid_at_pump"`
	NetTaxDue        decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"net_tax_due"`
}

func (ReturnJurisdiction) TableName() string { return "ifta_return_jurisdictions" }
