package ifta

import (
	"fmt"
	"sort"

	"fleetflow/internal/jurisdiction"
	"fleetflow/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// returnNamespace seeds name-based return ids so a recompute keeps its id.
var returnNamespace = uuid.MustParse("6f1c8a52-3d0e-4b7a-9a55-2c4f0e7b91d3")

// ReturnID is the stable id of a tenant's return for a period.
func ReturnID(tenantID string, p Period) uuid.UUID {
	return uuid.NewSHA1(returnNamespace, []byte(tenantID+"/"+p.String()))
}

// CalculationInput is everything a quarterly return is computed from.
type CalculationInput struct {
	TenantID           string
	Period             Period
	FleetMPG           decimal.Decimal
	ReminderBufferDays int
	Purchases          []model.FuelPurchase
	Mileage            []model.MileageRecord
}

// Calculator turns a quarter of fuel and mileage records into a return.
type Calculator struct {
	registry *jurisdiction.Registry
}

func NewCalculator(registry *jurisdiction.Registry) *Calculator {
	return &Calculator{registry: registry}
}

type jurisdictionTotals struct {
	miles   decimal.Decimal
	gallons decimal.Decimal
}

// Calculate computes a draft return. The result depends only on the input:
// records outside the period or for another tenant are ignored, and
// jurisdictions are ordered by code.
//
// Per jurisdiction: consumed gallons = miles / fleet MPG (3 places), tax owed =
// consumed gallons x rate, tax paid = purchased gallons x rate (cents), net =
// owed - paid. Positive nets sum to the tax due, negative nets to the refund.
func (c *Calculator) Calculate(in CalculationInput) (*model.QuarterlyReturn, error) {
	if !in.FleetMPG.IsPositive() {
		return nil, NewValidationError("fleet MPG must be greater than 0")
	}

	start, end := in.Period.Start(), in.Period.End()

	totals := make(map[string]*jurisdictionTotals)
	bucket := func(code string) *jurisdictionTotals {
		t, ok := totals[code]
		if !ok {
			t = &jurisdictionTotals{}
			totals[code] = t
		}
		return t
	}

	for _, m := range in.Mileage {
		if m.TenantID != in.TenantID || m.TravelDate.Before(start) || !m.TravelDate.Before(end) {
			continue
		}
		t := bucket(m.JurisdictionCode)
		t.miles = t.miles.Add(m.Miles)
	}
	for _, p := range in.Purchases {
		if p.TenantID != in.TenantID || p.PurchaseDate.Before(start) || !p.PurchaseDate.Before(end) {
			continue
		}
		t := bucket(p.JurisdictionCode)
		t.gallons = t.gallons.Add(p.Gallons)
	}

	codes := make([]string, 0, len(totals))
	for code := range totals {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	ret := &model.QuarterlyReturn{
		ID:                    ReturnID(in.TenantID, in.Period),
		TenantID:              in.TenantID,
		Year:                  in.Period.Year,
		Quarter:               in.Period.Quarter,
		DueDate:               in.Period.DueDate(),
		ReminderDate:          in.Period.ReminderDate(in.ReminderBufferDays),
		FleetMPG:              in.FleetMPG,
		TotalMiles:            decimal.Zero,
		TotalGallonsConsumed:  decimal.Zero,
		TotalGallonsPurchased: decimal.Zero,
		TotalTaxDue:           decimal.Zero,
		TotalRefundDue:        decimal.Zero,
		NetAmount:             decimal.Zero,
		FilingStatus:          model.FilingStatusDraft,
		Jurisdictions:         make([]model.ReturnJurisdiction, 0, len(codes)),
	}

	for i, code := range codes {
		j, err := c.registry.Lookup(code)
		if err != nil {
			return nil, fmt.Errorf("%w: stored record references %s: %v", ErrInvariant, code, err)
		}
		t := totals[code]

		consumed := t.miles.DivRound(in.FleetMPG, 3)
		owed := consumed.Mul(j.TaxRatePerGallon).Round(2)
		paid := t.gallons.Mul(j.TaxRatePerGallon).Round(2)
		net := owed.Sub(paid)

		ret.Jurisdictions = append(ret.Jurisdictions, model.ReturnJurisdiction{
			ID:               uuid.NewSHA1(ret.ID, []byte(code)),
			ReturnID:         ret.ID,
			Position:         i,
			JurisdictionCode: code,
			TaxRatePerGallon: j.TaxRatePerGallon,
			MilesDriven:      t.miles,
			GallonsConsumed:  consumed,
			GallonsPurchased: t.gallons,
			TaxOwed:          owed,
			TaxPaidAtPump:    paid,
			NetTaxDue:        net,
		})

		ret.TotalMiles = ret.TotalMiles.Add(t.miles)
		ret.TotalGallonsConsumed = ret.TotalGallonsConsumed.Add(consumed)
		ret.TotalGallonsPurchased = ret.TotalGallonsPurchased.Add(t.gallons)
		if net.IsPositive() {
			ret.TotalTaxDue = ret.TotalTaxDue.Add(net)
		} else {
			ret.TotalRefundDue = ret.TotalRefundDue.Add(net.Neg())
		}
	}

	ret.NetAmount = ret.TotalTaxDue.Sub(ret.TotalRefundDue)

	if err := Reconcile(ret); err != nil {
		return nil, err
	}
	return ret, nil
}

// Reconcile checks the totals of a return against its breakdown.
func Reconcile(r *model.QuarterlyReturn) error {
	due, refund := decimal.Zero, decimal.Zero
	for _, j := range r.Jurisdictions {
		if j.NetTaxDue.IsPositive() {
			due = due.Add(j.NetTaxDue)
		} else {
			refund = refund.Add(j.NetTaxDue.Neg())
		}
	}

	switch {
	case !due.Equal(r.TotalTaxDue):
		return fmt.Errorf("%w: total tax due %s != sum of positive nets %s", ErrInvariant, r.TotalTaxDue, due)
	case !refund.Equal(r.TotalRefundDue):
		return fmt.Errorf("%w: total refund %s != sum of negative nets %s", ErrInvariant, r.TotalRefundDue, refund)
	case !r.NetAmount.Equal(r.TotalTaxDue.Sub(r.TotalRefundDue)):
		return fmt.Errorf("%w: net amount %s != %s - %s", ErrInvariant, r.NetAmount, r.TotalTaxDue, r.TotalRefundDue)
	}
	return nil
}
