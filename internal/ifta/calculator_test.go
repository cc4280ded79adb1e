package ifta

import (
	"encoding/json"
	"testing"

	"fleetflow/internal/jurisdiction"
	"fleetflow/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRegistry(t *testing.T) *jurisdiction.Registry {
	t.Helper()
	r, err := jurisdiction.Default().WithOverrides(jurisdiction.Overrides{
		Rates: map[string]decimal.Decimal{
			"GA": decimal.RequireFromString("0.184"),
			"TN": decimal.RequireFromString("0.27"),
			"FL": decimal.RequireFromString("0.3755"),
		},
	})
	require.NoError(t, err)
	return r
}

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func mileage(tenant, code, miles string, on string) model.MileageRecord {
	dt, _ := ParseDate(on)
	return model.MileageRecord{TenantID: tenant, VehicleID: "TRK-101", JurisdictionCode: code, Miles: d(miles), TravelDate: dt}
}

func purchase(tenant, code, gallons string, on string) model.FuelPurchase {
	dt, _ := ParseDate(on)
	return model.FuelPurchase{TenantID: tenant, JurisdictionCode: code, Gallons: d(gallons), PurchaseDate: dt, FuelType: model.FuelTypeDiesel}
}

func TestCalculateSingleJurisdictionRefund(t *testing.T) {
	calc := NewCalculator(testRegistry(t))

	ret, err := calc.Calculate(CalculationInput{
		TenantID:           "T1",
		Period:             Period{Year: 2024, Quarter: 3},
		FleetMPG:           d("6.5"),
		ReminderBufferDays: 7,
		Mileage:            []model.MileageRecord{mileage("T1", "GA", "285.7", "2024-07-15")},
		Purchases:          []model.FuelPurchase{purchase("T1", "GA", "150.5", "2024-07-15")},
	})
	require.NoError(t, err)
	require.Len(t, ret.Jurisdictions, 1)

	ga := ret.Jurisdictions[0]
	assert.Equal(t, "GA", ga.JurisdictionCode)
	assert.Equal(t, "43.954", ga.GallonsConsumed.StringFixed(3))
	assert.Equal(t, "8.09", ga.TaxOwed.StringFixed(2))
	assert.Equal(t, "27.69", ga.TaxPaidAtPump.StringFixed(2))
	assert.Equal(t, "-19.60", ga.NetTaxDue.StringFixed(2))

	assert.True(t, ret.TotalTaxDue.IsZero())
	assert.Equal(t, "19.60", ret.TotalRefundDue.StringFixed(2))
	assert.Equal(t, "-19.60", ret.NetAmount.StringFixed(2))
	assert.Equal(t, date(2024, 10, 31), ret.DueDate)
	assert.Equal(t, date(2024, 10, 24), ret.ReminderDate)
	assert.Equal(t, model.FilingStatusDraft, ret.FilingStatus)
}

func TestCalculateMultiJurisdiction(t *testing.T) {
	calc := NewCalculator(testRegistry(t))

	ret, err := calc.Calculate(CalculationInput{
		TenantID: "T1",
		Period:   Period{Year: 2024, Quarter: 3},
		FleetMPG: d("6.5"),
		Mileage: []model.MileageRecord{
			mileage("T1", "TN", "650", "2024-08-01"),
			mileage("T1", "TN", "650", "2024-08-02"),
			mileage("T1", "GA", "130", "2024-08-03"),
		},
		Purchases: []model.FuelPurchase{
			purchase("T1", "GA", "100", "2024-08-03"),
			purchase("T1", "FL", "40", "2024-09-30"),
		},
	})
	require.NoError(t, err)

	codes := make([]string, 0, len(ret.Jurisdictions))
	for _, j := range ret.Jurisdictions {
		codes = append(codes, j.JurisdictionCode)
	}
	assert.Equal(t, []string{"FL", "GA", "TN"}, codes)

	// TN: 1300 mi / 6.5 = 200 gal * 0.27 = 54.00 owed, nothing purchased.
	tn := ret.Jurisdictions[2]
	assert.Equal(t, "200.000", tn.GallonsConsumed.StringFixed(3))
	assert.Equal(t, "54.00", tn.NetTaxDue.StringFixed(2))

	// GA: 20 gal * 0.184 = 3.68 owed, 100 * 0.184 = 18.40 paid.
	assert.Equal(t, "-14.72", ret.Jurisdictions[1].NetTaxDue.StringFixed(2))

	// FL: purchases only, 40 * 0.3755 = 15.02 refund.
	fl := ret.Jurisdictions[0]
	assert.True(t, fl.MilesDriven.IsZero())
	assert.Equal(t, "-15.02", fl.NetTaxDue.StringFixed(2))

	assert.Equal(t, "54.00", ret.TotalTaxDue.StringFixed(2))
	assert.Equal(t, "29.74", ret.TotalRefundDue.StringFixed(2))
	assert.Equal(t, "24.26", ret.NetAmount.StringFixed(2))
	assert.Equal(t, "1430.00", ret.TotalMiles.StringFixed(2))
	assert.Equal(t, "140.000", ret.TotalGallonsPurchased.StringFixed(3))
	assert.NoError(t, Reconcile(ret))
}

func TestCalculateIgnoresOtherTenantsAndQuarters(t *testing.T) {
	calc := NewCalculator(testRegistry(t))

	ret, err := calc.Calculate(CalculationInput{
		TenantID: "T1",
		Period:   Period{Year: 2024, Quarter: 3},
		FleetMPG: d("6.5"),
		Mileage: []model.MileageRecord{
			mileage("T2", "GA", "100", "2024-07-15"),
			mileage("T1", "GA", "100", "2024-06-30"),
			mileage("T1", "GA", "100", "2024-10-01"),
		},
		Purchases: []model.FuelPurchase{purchase("T2", "TN", "50", "2024-07-15")},
	})
	require.NoError(t, err)

	assert.Empty(t, ret.Jurisdictions)
	assert.True(t, ret.TotalTaxDue.IsZero())
	assert.True(t, ret.TotalRefundDue.IsZero())
	assert.True(t, ret.NetAmount.IsZero())
}

func TestCalculateIsDeterministic(t *testing.T) {
	calc := NewCalculator(testRegistry(t))
	in := CalculationInput{
		TenantID: "T1",
		Period:   Period{Year: 2024, Quarter: 3},
		FleetMPG: d("6.5"),
		Mileage: []model.MileageRecord{
			mileage("T1", "TN", "412.3", "2024-08-01"),
			mileage("T1", "GA", "285.7", "2024-07-15"),
		},
		Purchases: []model.FuelPurchase{purchase("T1", "GA", "150.5", "2024-07-15")},
	}

	first, err := calc.Calculate(in)
	require.NoError(t, err)

	// Reversed input order must not change the output.
	in.Mileage[0], in.Mileage[1] = in.Mileage[1], in.Mileage[0]
	second, err := calc.Calculate(in)
	require.NoError(t, err)

	a, err := json.Marshal(first)
	require.NoError(t, err)
	b, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b))
	assert.Equal(t, ReturnID("T1", Period{2024, 3}), first.ID)
	assert.NotEqual(t, ReturnID("T2", Period{2024, 3}), first.ID)
}

func TestCalculateJurisdictionClosure(t *testing.T) {
	reg := testRegistry(t)
	calc := NewCalculator(reg)

	ret, err := calc.Calculate(CalculationInput{
		TenantID: "T1",
		Period:   Period{Year: 2024, Quarter: 3},
		FleetMPG: d("6.5"),
		Mileage:  []model.MileageRecord{mileage("T1", "TN", "1", "2024-08-01"), mileage("T1", "GA", "2", "2024-08-01")},
	})
	require.NoError(t, err)
	for _, j := range ret.Jurisdictions {
		assert.True(t, reg.Has(j.JurisdictionCode))
	}

	_, err = calc.Calculate(CalculationInput{
		TenantID: "T1",
		Period:   Period{Year: 2024, Quarter: 3},
		FleetMPG: d("6.5"),
		Mileage:  []model.MileageRecord{mileage("T1", "HI", "10", "2024-08-01")},
	})
	assert.ErrorIs(t, err, ErrInvariant)
}

func TestCalculateRejectsNonPositiveMPG(t *testing.T) {
	calc := NewCalculator(testRegistry(t))
	_, err := calc.Calculate(CalculationInput{TenantID: "T1", Period: Period{2024, 1}, FleetMPG: decimal.Zero})
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestReconcileDetectsTampering(t *testing.T) {
	calc := NewCalculator(testRegistry(t))
	ret, err := calc.Calculate(CalculationInput{
		TenantID: "T1",
		Period:   Period{Year: 2024, Quarter: 3},
		FleetMPG: d("6.5"),
		Mileage:  []model.MileageRecord{mileage("T1", "TN", "650", "2024-08-01")},
	})
	require.NoError(t, err)

	ret.NetAmount = ret.NetAmount.Add(decimal.NewFromInt(1))
	assert.ErrorIs(t, Reconcile(ret), ErrInvariant)
}
