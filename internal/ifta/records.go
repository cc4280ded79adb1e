package ifta

import "fleetflow/internal/model"

// Stored precision. Validation checks quantities at this precision so a
// record never rounds to zero on the way into the store.
const (
	gallonsPlaces = 3
	milesPlaces   = 2
)

// Record converts a validated input into a storable purchase. A missing
// total or unit price is derived from the other.
func (in FuelPurchaseInput) Record(tenantID string) model.FuelPurchase {
	date, _ := ParseDate(in.PurchaseDate)

	price := in.PricePerGallon.Decimal
	total := in.TotalAmount.Decimal
	switch {
	case in.TotalAmount.Valid && !in.PricePerGallon.Valid && in.Gallons.IsPositive():
		price = total.DivRound(in.Gallons, 4)
	case in.PricePerGallon.Valid && !in.TotalAmount.Valid:
		total = in.Gallons.Mul(price).Round(2)
	}

	return model.FuelPurchase{
		TenantID:         tenantID,
		VehicleID:        in.VehicleID,
		PurchaseDate:     date,
		JurisdictionCode: in.JurisdictionCode,
		Gallons:          in.Gallons.Round(gallonsPlaces),
		PricePerGallon:   price,
		TotalAmount:      total,
		VendorName:       in.VendorName,
		ReceiptNumber:    in.ReceiptNumber,
		FuelType:         in.FuelType,
	}
}

// Record converts a validated input into a storable mileage record.
func (in MileageInput) Record(tenantID string) model.MileageRecord {
	date, _ := ParseDate(in.TravelDate)
	return model.MileageRecord{
		TenantID:         tenantID,
		VehicleID:        in.VehicleID,
		TravelDate:       date,
		JurisdictionCode: in.JurisdictionCode,
		Miles:            in.Miles.Round(milesPlaces),
		RouteDetails:     in.RouteDetails,
		SourceRef:        in.SourceRef,
	}
}
