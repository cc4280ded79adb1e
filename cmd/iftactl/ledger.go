package main

import (
	"fmt"
	"os"

	"fleetflow/internal/ifta"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// ledger is a YAML file of fuel purchases and mileage records. Quantities
// are strings so they stay exact.
type ledger struct {
	Tenant        string          `yaml:"tenant"`
	FuelPurchases []ledgerFuel    `yaml:"fuel_purchases"`
	Mileage       []ledgerMileage `yaml:"mileage"`
}

type ledgerFuel struct {
	VehicleID        string `yaml:"vehicle_id"`
	PurchaseDate     string `yaml:"purchase_date"`
	JurisdictionCode string `yaml:"jurisdiction_code"`
	Gallons          string `yaml:"gallons"`
	PricePerGallon   string `yaml:"price_per_gallon"`
	TotalAmount      string `yaml:"total_amount"`
	VendorName       string `yaml:"vendor_name"`
	ReceiptNumber    string `yaml:"receipt_number"`
	FuelType         string `yaml:"fuel_type"`
}

type ledgerMileage struct {
	VehicleID        string `yaml:"vehicle_id"`
	TravelDate       string `yaml:"travel_date"`
	JurisdictionCode string `yaml:"jurisdiction_code"`
	Miles            string `yaml:"miles"`
	RouteDetails     string `yaml:"route_details"`
	SourceRef        string `yaml:"source_ref"`
}

func readLedger(path string) (*ledger, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read ledger: %w", err)
	}
	var l ledger
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("parse ledger %s: %w", path, err)
	}
	return &l, nil
}

// input converts the entry; malformed numbers are returned as messages.
func (f ledgerFuel) input() (ifta.FuelPurchaseInput, []string) {
	var errs []string
	in := ifta.FuelPurchaseInput{
		VehicleID:        f.VehicleID,
		PurchaseDate:     f.PurchaseDate,
		JurisdictionCode: f.JurisdictionCode,
		VendorName:       f.VendorName,
		ReceiptNumber:    f.ReceiptNumber,
		FuelType:         f.FuelType,
	}

	if f.Gallons != "" {
		g, err := decimal.NewFromString(f.Gallons)
		if err != nil {
			errs = append(errs, fmt.Sprintf("gallons %q is not a number", f.Gallons))
		}
		in.Gallons = g
	}
	var err error
	if in.PricePerGallon, err = optionalDecimal(f.PricePerGallon); err != nil {
		errs = append(errs, fmt.Sprintf("price_per_gallon %q is not a number", f.PricePerGallon))
	}
	if in.TotalAmount, err = optionalDecimal(f.TotalAmount); err != nil {
		errs = append(errs, fmt.Sprintf("total_amount %q is not a number", f.TotalAmount))
	}
	return in, errs
}

func (m ledgerMileage) input() (ifta.MileageInput, []string) {
	var errs []string
	in := ifta.MileageInput{
		VehicleID:        m.VehicleID,
		TravelDate:       m.TravelDate,
		JurisdictionCode: m.JurisdictionCode,
		RouteDetails:     m.RouteDetails,
		SourceRef:        m.SourceRef,
	}
	if m.Miles != "" {
		miles, err := decimal.NewFromString(m.Miles)
		if err != nil {
			errs = append(errs, fmt.Sprintf("miles %q is not a number", m.Miles))
		}
		in.Miles = miles
	}
	return in, errs
}

func optionalDecimal(s string) (decimal.NullDecimal, error) {
	if s == "" {
		return decimal.NullDecimal{}, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.NullDecimal{}, err
	}
	return decimal.NewNullDecimal(d), nil
}
