package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// FuelType enum constants
const (
	FuelTypeDiesel   = "diesel"
	FuelTypeGasoline = "gasoline"
	FuelTypeOther    = "other"
)

// FuelTypes lists every recognized fuel type.
var FuelTypes = []string{FuelTypeDiesel, FuelTypeGasoline, FuelTypeOther}

// IsFuelType reports whether s is a recognized fuel type.
func IsFuelType(s string) bool {
	for _, t := range FuelTypes {
		if s == t {
			return true
		}
	}
	return false
}

// FuelPurchase records one fuel-buying event. Rows are append-only.
type FuelPurchase struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	TenantID         string          `gorm:"type:varchar(64);not null;index:idx_fuel_tenant_date,priority:1" json:"tenant_id"`
	VehicleID        string          `gorm:"type:varchar(64)" json:"vehicle_id,omitempty"`
	PurchaseDate     time.Time       `gorm:"type:date;not null;index:idx_fuel_tenant_date,priority:2" json:"purchase_date"`
	JurisdictionCode string          `gorm:"type:varchar(2);not null" json:"jurisdiction_code"`
	Gallons          decimal.Decimal `gorm:"type:decimal(12,3);not null" json:"gallons"`
	PricePerGallon   decimal.Decimal `gorm:"type:decimal(10,4)" json:"price_per_gallon"`
	TotalAmount      decimal.Decimal `gorm:"type:decimal(12,2)" json:"total_amount"`
	VendorName       string          `gorm:"type:varchar(255)" json:"vendor_name"`
	ReceiptNumber    string          `gorm:"type:varchar(100)" json:"receipt_number"`
	FuelType         string          `gorm:"type:varchar(20);not null" json:"fuel_type"`
	CreatedAt        time.Time       `json:"created_at"`
}

func (FuelPurchase) TableName() string { return "ifta_fuel_purchases" }

// BeforeCreate assigns an id when the caller did not.
func (p *FuelPurchase) BeforeCreate(_ *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
