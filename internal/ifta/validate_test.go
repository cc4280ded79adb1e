package ifta

import (
	"testing"
	"time"

	"fleetflow/internal/jurisdiction"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func fixedNow() time.Time { return time.Date(2024, 10, 16, 12, 0, 0, 0, time.UTC) }

func newTestValidator() *Validator {
	return NewValidator(jurisdiction.Default(), fixedNow)
}

func validFuel() FuelPurchaseInput {
	return FuelPurchaseInput{
		VehicleID:        "TRK-101",
		PurchaseDate:     "2024-07-15",
		JurisdictionCode: "GA",
		Gallons:          decimal.RequireFromString("150.5"),
		PricePerGallon:   decimal.NewNullDecimal(decimal.RequireFromString("3.899")),
		TotalAmount:      decimal.NewNullDecimal(decimal.RequireFromString("586.80")),
		VendorName:       "Pilot #412",
		ReceiptNumber:    "R-88812",
		FuelType:         "diesel",
	}
}

func TestValidateFuelPurchase(t *testing.T) {
	v := newTestValidator()

	tests := []struct {
		name       string
		mutate     func(in *FuelPurchaseInput)
		wantErrors int
	}{
		{"valid", func(in *FuelPurchaseInput) {}, 0},
		{"unknown jurisdiction", func(in *FuelPurchaseInput) { in.JurisdictionCode = "XX" }, 1},
		{"zero gallons", func(in *FuelPurchaseInput) { in.Gallons = decimal.Zero }, 1},
		{"gallons round to zero", func(in *FuelPurchaseInput) {
			in.Gallons = decimal.RequireFromString("0.0004")
			in.PricePerGallon = decimal.NullDecimal{}
			in.TotalAmount = decimal.NullDecimal{}
		}, 1},
		{"smallest stored gallons", func(in *FuelPurchaseInput) {
			in.Gallons = decimal.RequireFromString("0.0005")
			in.PricePerGallon = decimal.NullDecimal{}
			in.TotalAmount = decimal.NullDecimal{}
		}, 0},
		{"bad fuel type", func(in *FuelPurchaseInput) { in.FuelType = "kerosene" }, 1},
		{"future date", func(in *FuelPurchaseInput) { in.PurchaseDate = "2024-10-17" }, 1},
		{"today is allowed", func(in *FuelPurchaseInput) { in.PurchaseDate = "2024-10-16" }, 0},
		{"negative price", func(in *FuelPurchaseInput) {
			in.PricePerGallon = decimal.NewNullDecimal(decimal.NewFromInt(-1))
		}, 1},
		{"negative total", func(in *FuelPurchaseInput) {
			in.TotalAmount = decimal.NewNullDecimal(decimal.NewFromInt(-1))
		}, 1},
		{"zero price", func(in *FuelPurchaseInput) {
			in.PricePerGallon = decimal.NewNullDecimal(decimal.Zero)
		}, 1},
		{"zero total", func(in *FuelPurchaseInput) {
			in.TotalAmount = decimal.NewNullDecimal(decimal.Zero)
		}, 1},
		{"total rounds to zero cents", func(in *FuelPurchaseInput) {
			in.PricePerGallon = decimal.NullDecimal{}
			in.TotalAmount = decimal.NewNullDecimal(decimal.RequireFromString("0.004"))
		}, 1},
		{"gross price mismatch", func(in *FuelPurchaseInput) {
			in.TotalAmount = decimal.NewNullDecimal(decimal.NewFromInt(100))
		}, 1},
		{"small rounding difference tolerated", func(in *FuelPurchaseInput) {
			in.TotalAmount = decimal.NewNullDecimal(decimal.RequireFromString("587.50"))
		}, 0},
		{"price and total optional", func(in *FuelPurchaseInput) {
			in.PricePerGallon = decimal.NullDecimal{}
			in.TotalAmount = decimal.NullDecimal{}
		}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validFuel()
			tt.mutate(&in)
			res := v.ValidateFuelPurchase(in)
			assert.Len(t, res.Errors, tt.wantErrors, res.Errors)
			assert.Equal(t, tt.wantErrors == 0, res.Valid)
			assert.NotNil(t, res.Errors)
		})
	}
}

func TestValidateFuelPurchaseReportsEveryViolation(t *testing.T) {
	v := newTestValidator()

	res := v.ValidateFuelPurchase(FuelPurchaseInput{
		Gallons:          decimal.NewFromInt(-10),
		JurisdictionCode: "XX",
		FuelType:         "rocket_fuel",
		PurchaseDate:     "not-a-date",
	})

	assert.False(t, res.Valid)
	assert.Len(t, res.Errors, 4)
	assert.Contains(t, res.Errors, "purchase_date must be a valid date (YYYY-MM-DD)")
	assert.Contains(t, res.Errors, "gallons must be greater than 0")
	assert.Error(t, res.Err())
}

func TestValidateMileage(t *testing.T) {
	v := newTestValidator()

	ok := v.ValidateMileage(MileageInput{
		VehicleID:        "TRK-101",
		TravelDate:       "2024-07-15",
		JurisdictionCode: "GA",
		Miles:            decimal.RequireFromString("285.7"),
	})
	assert.True(t, ok.Valid)
	assert.Empty(t, ok.Errors)
	assert.NoError(t, ok.Err())

	bad := v.ValidateMileage(MileageInput{
		TravelDate:       "2024-13-01",
		JurisdictionCode: "AK",
		Miles:            decimal.Zero,
	})
	assert.False(t, bad.Valid)
	assert.Len(t, bad.Errors, 4)
}

func TestValidateMileageChecksStoredPrecision(t *testing.T) {
	v := newTestValidator()

	tests := []struct {
		miles string
		valid bool
	}{
		{"0.004", false},
		{"0.005", true},
		{"0.01", true},
		{"-0.01", false},
	}

	for _, tt := range tests {
		t.Run(tt.miles, func(t *testing.T) {
			res := v.ValidateMileage(MileageInput{
				VehicleID:        "TRK-101",
				TravelDate:       "2024-07-15",
				JurisdictionCode: "OH",
				Miles:            decimal.RequireFromString(tt.miles),
			})
			assert.Equal(t, tt.valid, res.Valid, res.Errors)
			if !tt.valid {
				assert.Equal(t, []string{"miles must be greater than 0"}, res.Errors)
			} else {
				assert.True(t, MileageInput{Miles: decimal.RequireFromString(tt.miles)}.Record("T1").Miles.IsPositive())
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	in := FuelPurchaseInput{JurisdictionCode: " ga ", FuelType: ""}
	in.Normalize("diesel")
	assert.Equal(t, "GA", in.JurisdictionCode)
	assert.Equal(t, "diesel", in.FuelType)

	in = FuelPurchaseInput{FuelType: "Gasoline"}
	in.Normalize("diesel")
	assert.Equal(t, "gasoline", in.FuelType)

	m := MileageInput{VehicleID: " TRK-1 ", JurisdictionCode: "tx"}
	m.Normalize()
	assert.Equal(t, "TRK-1", m.VehicleID)
	assert.Equal(t, "TX", m.JurisdictionCode)
}

func TestFuelPurchaseRecordDerivesMissingAmounts(t *testing.T) {
	in := validFuel()
	in.TotalAmount = decimal.NullDecimal{}
	rec := in.Record("T1")
	assert.Equal(t, "586.80", rec.TotalAmount.StringFixed(2))
	assert.Equal(t, date(2024, 7, 15), rec.PurchaseDate)
	assert.Equal(t, "T1", rec.TenantID)

	in = validFuel()
	in.PricePerGallon = decimal.NullDecimal{}
	rec = in.Record("T1")
	assert.Equal(t, "3.8990", rec.PricePerGallon.StringFixed(4))
}
