package service

import (
	"time"

	"fleetflow/internal/ifta"
	"fleetflow/internal/jurisdiction"
	"fleetflow/internal/model"

	"github.com/shopspring/decimal"
)

// --- DTOs ---
// Quantities are rendered as fixed-point strings so a regenerated return
// serializes byte-for-byte the same.

const dateLayout = "2006-01-02"

type PeriodRequest struct {
	Year    int `json:"year" binding:"required"`
	Quarter int `json:"quarter" binding:"required"`
}

type RecordFilter struct {
	From  string
	To    string
	Page  int
	Limit int
}

type JurisdictionResponse struct {
	Code                   string `json:"code"`
	Name                   string `json:"name"`
	TaxRatePerGallon       string `json:"tax_rate_per_gallon"`
	HasElectronicFilingAPI bool   `json:"has_electronic_filing_api"`
}

type FuelPurchaseResponse struct {
	ID               string `json:"id"`
	TenantID         string `json:"tenant_id"`
	VehicleID        string `json:"vehicle_id"`
	PurchaseDate     string `json:"purchase_date"`
	JurisdictionCode string `json:"jurisdiction_code"`
	Gallons          string `json:"gallons"`
	PricePerGallon   string `json:"price_per_gallon"`
	TotalAmount      string `json:"total_amount"`
	VendorName       string `json:"vendor_name"`
	ReceiptNumber    string `json:"receipt_number"`
	FuelType         string `json:"fuel_type"`
	CreatedAt        string `json:"created_at"`
}

type MileageResponse struct {
	ID               string `json:"id"`
	TenantID         string `json:"tenant_id"`
	VehicleID        string `json:"vehicle_id"`
	TravelDate       string `json:"travel_date"`
	JurisdictionCode string `json:"jurisdiction_code"`
	Miles            string `json:"miles"`
	RouteDetails     string `json:"route_details"`
	SourceRef        string `json:"source_ref,omitempty"`
	CreatedAt        string `json:"created_at"`
}

type ReturnJurisdictionResponse struct {
	Code             string `json:"code"`
	TaxRatePerGallon string `json:"tax_rate_per_gallon"`
	MilesDriven      string `json:"miles_driven"`
	GallonsConsumed  string `json:"gallons_consumed"`
	GallonsPurchased string `json:"gallons_purchased"`
	TaxOwed          string `json:"tax_owed"`
	TaxPaidAtPump    string `json:"tax_paid_at_pump"`
	NetTaxDue        string `json:"net_tax_due"`
}

type QuarterlyReturnResponse struct {
	ID                    string                       `json:"id"`
	TenantID              string                       `json:"tenant_id"`
	Year                  int                          `json:"year"`
	Quarter               int                          `json:"quarter"`
	Period                string                       `json:"period"`
	DueDate               string                       `json:"due_date"`
	ReminderDate          string                       `json:"reminder_date"`
	FleetMPG              string                       `json:"fleet_mpg"`
	Jurisdictions         []ReturnJurisdictionResponse `json:"jurisdictions"`
	TotalMiles            string                       `json:"total_miles"`
	TotalGallonsConsumed  string                       `json:"total_gallons_consumed"`
	TotalGallonsPurchased string                       `json:"total_gallons_purchased"`
	TotalTaxDue           string                       `json:"total_tax_due"`
	TotalRefundDue        string                       `json:"total_refund_due"`
	NetAmount             string                       `json:"net_amount"`
	FilingStatus          string                       `json:"filing_status"`
	FiledAt               *string                      `json:"filed_at"`
}

type DeadlineResponse struct {
	Year         int    `json:"year"`
	Quarter      int    `json:"quarter"`
	Period       string `json:"period"`
	DueDate      string `json:"due_date"`
	ReminderDate string `json:"reminder_date"`
	DaysUntilDue int    `json:"days_until_due"`
	Filed        bool   `json:"filed"`
}

type ComplianceStatusResponse struct {
	AsOf              string                    `json:"as_of"`
	CurrentQuarter    string                    `json:"current_quarter"`
	UpcomingDeadlines []DeadlineResponse        `json:"upcoming_deadlines"`
	OverdueReturns    []QuarterlyReturnResponse `json:"overdue_returns"`
}

type RejectedRecord struct {
	Index     int      `json:"index"`
	SourceRef string   `json:"source_ref"`
	Errors    []string `json:"errors"`
}

type SyncReport struct {
	Period   string           `json:"period"`
	Fetched  int              `json:"fetched"`
	Imported int              `json:"imported"`
	Skipped  int              `json:"skipped"`
	Rejected []RejectedRecord `json:"rejected"`
}

type HealthResponse struct {
	Status                   string `json:"status"`
	Service                  string `json:"service"`
	JurisdictionCount        int    `json:"jurisdiction_count"`
	RatesEffectiveQuarter    string `json:"rates_effective_quarter"`
	BaseFleetMPG             string `json:"base_fleet_mpg"`
	DefaultFuelType          string `json:"default_fuel_type"`
	FilingDeadlineBufferDays int    `json:"filing_deadline_buffer_days"`
	ELDSyncEnabled           bool   `json:"eld_sync_enabled"`
}

// --- Mappers ---

func toJurisdictionResponse(j jurisdiction.Jurisdiction) JurisdictionResponse {
	return JurisdictionResponse{
		Code:                   j.Code,
		Name:                   j.Name,
		TaxRatePerGallon:       j.TaxRatePerGallon.StringFixed(4),
		HasElectronicFilingAPI: j.HasElectronicFilingAPI,
	}
}

func toFuelPurchaseResponse(p model.FuelPurchase) FuelPurchaseResponse {
	return FuelPurchaseResponse{
		ID:               p.ID.String(),
		TenantID:         p.TenantID,
		VehicleID:        p.VehicleID,
		PurchaseDate:     p.PurchaseDate.Format(dateLayout),
		JurisdictionCode: p.JurisdictionCode,
		Gallons:          gallons(p.Gallons),
		PricePerGallon:   p.PricePerGallon.StringFixed(4),
		TotalAmount:      money(p.TotalAmount),
		VendorName:       p.VendorName,
		ReceiptNumber:    p.ReceiptNumber,
		FuelType:         p.FuelType,
		CreatedAt:        p.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func toMileageResponse(m model.MileageRecord) MileageResponse {
	return MileageResponse{
		ID:               m.ID.String(),
		TenantID:         m.TenantID,
		VehicleID:        m.VehicleID,
		TravelDate:       m.TravelDate.Format(dateLayout),
		JurisdictionCode: m.JurisdictionCode,
		Miles:            m.Miles.StringFixed(2),
		RouteDetails:     m.RouteDetails,
		SourceRef:        m.SourceRef,
		CreatedAt:        m.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func toReturnResponse(r model.QuarterlyReturn) QuarterlyReturnResponse {
	lines := make([]ReturnJurisdictionResponse, 0, len(r.Jurisdictions))
	for _, j := range r.Jurisdictions {
		lines = append(lines, ReturnJurisdictionResponse{
			Code:             j.JurisdictionCode,
			TaxRatePerGallon: j.TaxRatePerGallon.StringFixed(4),
			MilesDriven:      j.MilesDriven.StringFixed(2),
			GallonsConsumed:  gallons(j.GallonsConsumed),
			GallonsPurchased: gallons(j.GallonsPurchased),
			TaxOwed:          money(j.TaxOwed),
			TaxPaidAtPump:    money(j.TaxPaidAtPump),
			NetTaxDue:        money(j.NetTaxDue),
		})
	}

	var filedAt *string
	if r.FiledAt != nil {
		s := r.FiledAt.UTC().Format(time.RFC3339)
		filedAt = &s
	}

	return QuarterlyReturnResponse{
		ID:                    r.ID.String(),
		TenantID:              r.TenantID,
		Year:                  r.Year,
		Quarter:               r.Quarter,
		Period:                ifta.Period{Year: r.Year, Quarter: r.Quarter}.String(),
		DueDate:               r.DueDate.Format(dateLayout),
		ReminderDate:          r.ReminderDate.Format(dateLayout),
		FleetMPG:              r.FleetMPG.StringFixed(3),
		Jurisdictions:         lines,
		TotalMiles:            r.TotalMiles.StringFixed(2),
		TotalGallonsConsumed:  gallons(r.TotalGallonsConsumed),
		TotalGallonsPurchased: gallons(r.TotalGallonsPurchased),
		TotalTaxDue:           money(r.TotalTaxDue),
		TotalRefundDue:        money(r.TotalRefundDue),
		NetAmount:             money(r.NetAmount),
		FilingStatus:          r.FilingStatus,
		FiledAt:               filedAt,
	}
}

func toComplianceResponse(s ifta.ComplianceStatus) ComplianceStatusResponse {
	res := ComplianceStatusResponse{
		AsOf:              s.AsOf.Format(dateLayout),
		CurrentQuarter:    s.CurrentQuarter.String(),
		UpcomingDeadlines: make([]DeadlineResponse, 0, len(s.UpcomingDeadlines)),
		OverdueReturns:    make([]QuarterlyReturnResponse, 0, len(s.OverdueReturns)),
	}
	for _, d := range s.UpcomingDeadlines {
		res.UpcomingDeadlines = append(res.UpcomingDeadlines, DeadlineResponse{
			Year:         d.Year,
			Quarter:      d.Quarter,
			Period:       d.Period.String(),
			DueDate:      d.DueDate.Format(dateLayout),
			ReminderDate: d.ReminderDate.Format(dateLayout),
			DaysUntilDue: d.DaysUntilDue,
			Filed:        d.Filed,
		})
	}
	for _, r := range s.OverdueReturns {
		res.OverdueReturns = append(res.OverdueReturns, toReturnResponse(r))
	}
	return res
}

func money(d decimal.Decimal) string   { return d.StringFixed(2) }
func gallons(d decimal.Decimal) string { return d.StringFixed(3) }
