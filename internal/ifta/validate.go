package ifta

import (
	"fmt"
	"strings"
	"time"

	"fleetflow/internal/jurisdiction"
	"fleetflow/internal/model"

	"github.com/shopspring/decimal"
)

var (
	priceTolerance    = decimal.NewFromInt(1)
	priceToleranceRel = decimal.RequireFromString("0.02")
)

// FuelPurchaseInput is a fuel receipt as submitted, before validation.
type FuelPurchaseInput struct {
	VehicleID        string              `json:"vehicle_id"`
	PurchaseDate     string              `json:"purchase_date"`
	JurisdictionCode string              `json:"jurisdiction_code"`
	Gallons          decimal.Decimal     `json:"gallons"`
	PricePerGallon   decimal.NullDecimal `json:"price_per_gallon"`
	TotalAmount      decimal.NullDecimal `json:"total_amount"`
	VendorName       string              `json:"vendor_name"`
	ReceiptNumber    string              `json:"receipt_number"`
	FuelType         string              `json:"fuel_type"`
}

// Normalize trims identifiers, upper-cases the jurisdiction and applies the default fuel type.
func (in *FuelPurchaseInput) Normalize(defaultFuelType string) {
	in.VehicleID = strings.TrimSpace(in.VehicleID)
	in.PurchaseDate = strings.TrimSpace(in.PurchaseDate)
	in.JurisdictionCode = strings.ToUpper(strings.TrimSpace(in.JurisdictionCode))
	in.FuelType = strings.ToLower(strings.TrimSpace(in.FuelType))
	if in.FuelType == "" {
		in.FuelType = defaultFuelType
	}
}

// MileageInput is a mileage record as submitted, before validation.
type MileageInput struct {
	VehicleID        string          `json:"vehicle_id"`
	TravelDate       string          `json:"travel_date"`
	JurisdictionCode string          `json:"jurisdiction_code"`
	Miles            decimal.Decimal `json:"miles"`
	RouteDetails     string          `json:"route_details"`
	SourceRef        string          `json:"source_ref,omitempty"`
}

func (in *MileageInput) Normalize() {
	in.VehicleID = strings.TrimSpace(in.VehicleID)
	in.TravelDate = strings.TrimSpace(in.TravelDate)
	in.JurisdictionCode = strings.ToUpper(strings.TrimSpace(in.JurisdictionCode))
}

// Result is the outcome of validating one record. Errors is never nil.
type Result struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

// Err returns a *ValidationError for an invalid result and nil otherwise.
func (r Result) Err() error {
	if r.Valid {
		return nil
	}
	return NewValidationError(r.Errors...)
}

func newResult(errs []string) Result {
	if errs == nil {
		errs = []string{}
	}
	return Result{Valid: len(errs) == 0, Errors: errs}
}

// Validator checks fuel purchases and mileage records. Every rule is checked
// independently so one call reports all violations.
type Validator struct {
	registry *jurisdiction.Registry
	now      func() time.Time
}

func NewValidator(registry *jurisdiction.Registry, now func() time.Time) *Validator {
	if now == nil {
		now = time.Now
	}
	return &Validator{registry: registry, now: now}
}

func (v *Validator) ValidateFuelPurchase(in FuelPurchaseInput) Result {
	var errs []string

	errs = v.checkDate(errs, "purchase_date", in.PurchaseDate)
	errs = v.checkJurisdiction(errs, in.JurisdictionCode)

	if !in.Gallons.Round(gallonsPlaces).IsPositive() {
		errs = append(errs, "gallons must be greater than 0")
	}

	if !model.IsFuelType(in.FuelType) {
		errs = append(errs, fmt.Sprintf("fuel_type %q is not one of %s", in.FuelType, strings.Join(model.FuelTypes, ", ")))
	}

	// Price and total are optional, but a reported amount must be positive.
	if in.PricePerGallon.Valid && !in.PricePerGallon.Decimal.IsPositive() {
		errs = append(errs, "price_per_gallon must be greater than 0")
	}
	if in.TotalAmount.Valid && !in.TotalAmount.Decimal.Round(2).IsPositive() {
		errs = append(errs, "total_amount must be greater than 0")
	}

	if in.Gallons.Round(gallonsPlaces).IsPositive() && in.PricePerGallon.Valid && in.TotalAmount.Valid &&
		in.PricePerGallon.Decimal.IsPositive() && in.TotalAmount.Decimal.IsPositive() {
		expected := in.Gallons.Mul(in.PricePerGallon.Decimal)
		tolerance := decimal.Max(priceTolerance, expected.Mul(priceToleranceRel))
		if in.TotalAmount.Decimal.Sub(expected).Abs().GreaterThan(tolerance) {
			errs = append(errs, fmt.Sprintf("total_amount %s does not match gallons x price_per_gallon (%s)",
				in.TotalAmount.Decimal.StringFixed(2), expected.StringFixed(2)))
		}
	}

	return newResult(errs)
}

func (v *Validator) ValidateMileage(in MileageInput) Result {
	var errs []string

	errs = v.checkDate(errs, "travel_date", in.TravelDate)
	errs = v.checkJurisdiction(errs, in.JurisdictionCode)

	if !in.Miles.Round(milesPlaces).IsPositive() {
		errs = append(errs, "miles must be greater than 0")
	}
	if in.VehicleID == "" {
		errs = append(errs, "vehicle_id is required")
	}

	return newResult(errs)
}

func (v *Validator) checkDate(errs []string, field, value string) []string {
	d, err := ParseDate(value)
	if err != nil {
		return append(errs, fmt.Sprintf("%s must be a valid date (YYYY-MM-DD)", field))
	}
	if d.After(DateOnly(v.now())) {
		return append(errs, fmt.Sprintf("%s %s is in the future", field, d.Format("2006-01-02")))
	}
	return errs
}

func (v *Validator) checkJurisdiction(errs []string, code string) []string {
	if !v.registry.Has(code) {
		return append(errs, fmt.Sprintf("jurisdiction_code %q is not a participating IFTA jurisdiction", code))
	}
	return errs
}
