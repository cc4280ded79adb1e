package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"fleetflow/internal/eld"
	"fleetflow/internal/ifta"
	"fleetflow/internal/jurisdiction"
	"fleetflow/internal/model"
	"fleetflow/internal/repository"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ErrELDNotConfigured is returned by SyncELDMileage when no mileage source is wired.
var ErrELDNotConfigured = errors.New("eld mileage source not configured")

// Websocket event names.
const (
	EventFuelPurchaseRecorded = "ifta.fuel_purchase_recorded"
	EventMileageRecorded      = "ifta.mileage_recorded"
	EventReturnGenerated      = "ifta.return_generated"
	EventReturnFiled          = "ifta.return_filed"
)

// EventPublisher pushes tenant-scoped events to connected clients.
type EventPublisher interface {
	Publish(tenantID, event string, data interface{})
}

type noopPublisher struct{}

func (noopPublisher) Publish(string, string, interface{}) {}

// IFTASettings are the tunables of the IFTA service.
type IFTASettings struct {
	FleetMPG         decimal.Decimal
	DefaultFuelType  string
	FilingBufferDays int
	// Now is the clock; nil means time.Now.
	Now func() time.Time
}

// --- Interface ---

type IFTAService interface {
	RecordFuelPurchase(ctx context.Context, tenantID, userID string, in ifta.FuelPurchaseInput) (FuelPurchaseResponse, error)
	RecordMileage(ctx context.Context, tenantID, userID string, in ifta.MileageInput) (MileageResponse, error)
	ValidateFuelPurchase(in ifta.FuelPurchaseInput) ifta.Result
	ValidateMileage(in ifta.MileageInput) ifta.Result
	ListFuelPurchases(ctx context.Context, tenantID string, filter RecordFilter) ([]FuelPurchaseResponse, int64, error)
	ListMileage(ctx context.Context, tenantID string, filter RecordFilter) ([]MileageResponse, int64, error)

	GenerateReturn(ctx context.Context, tenantID, userID string, year, quarter int) (QuarterlyReturnResponse, error)
	GetReturn(ctx context.Context, tenantID string, year, quarter int) (QuarterlyReturnResponse, error)
	ListReturns(ctx context.Context, tenantID string) ([]QuarterlyReturnResponse, error)
	FileReturn(ctx context.Context, tenantID, userID string, year, quarter int) (QuarterlyReturnResponse, error)
	ComplianceStatus(ctx context.Context, tenantID string, asOf time.Time) (ComplianceStatusResponse, error)

	SyncELDMileage(ctx context.Context, tenantID, userID string, year, quarter int) (SyncReport, error)

	Jurisdictions() []JurisdictionResponse
	Jurisdiction(code string) (JurisdictionResponse, error)
	Health() HealthResponse
}

type iftaService struct {
	store      *repository.Store
	registry   *jurisdiction.Registry
	validator  *ifta.Validator
	calculator *ifta.Calculator
	settings   IFTASettings
	source     eld.MileageSource
	events     EventPublisher
	log        *zap.Logger
}

// NewIFTAService wires the IFTA service. source and events may be nil.
func NewIFTAService(
	store *repository.Store,
	registry *jurisdiction.Registry,
	settings IFTASettings,
	source eld.MileageSource,
	events EventPublisher,
	log *zap.Logger,
) IFTAService {
	if settings.Now == nil {
		settings.Now = time.Now
	}
	if settings.DefaultFuelType == "" {
		settings.DefaultFuelType = model.FuelTypeDiesel
	}
	if events == nil {
		events = noopPublisher{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &iftaService{
		store:      store,
		registry:   registry,
		validator:  ifta.NewValidator(registry, settings.Now),
		calculator: ifta.NewCalculator(registry),
		settings:   settings,
		source:     source,
		events:     events,
		log:        log.Named("ifta"),
	}
}

// --- Records ---

func (s *iftaService) ValidateFuelPurchase(in ifta.FuelPurchaseInput) ifta.Result {
	in.Normalize(s.settings.DefaultFuelType)
	return s.validator.ValidateFuelPurchase(in)
}

func (s *iftaService) ValidateMileage(in ifta.MileageInput) ifta.Result {
	in.Normalize()
	return s.validator.ValidateMileage(in)
}

func (s *iftaService) RecordFuelPurchase(ctx context.Context, tenantID, userID string, in ifta.FuelPurchaseInput) (FuelPurchaseResponse, error) {
	in.Normalize(s.settings.DefaultFuelType)
	if err := s.validator.ValidateFuelPurchase(in).Err(); err != nil {
		return FuelPurchaseResponse{}, err
	}

	purchase := in.Record(tenantID)
	if err := s.store.FuelPurchases.Append(ctx, &purchase); err != nil {
		return FuelPurchaseResponse{}, fmt.Errorf("failed to store fuel purchase: %w", err)
	}

	res := toFuelPurchaseResponse(purchase)
	s.writeAuditLog(ctx, tenantID, userID, model.ActionRecordFuelPurchase, res.ID,
		purchase.JurisdictionCode+" "+res.Gallons+" gal", res)
	s.events.Publish(tenantID, EventFuelPurchaseRecorded, res)

	return res, nil
}

func (s *iftaService) RecordMileage(ctx context.Context, tenantID, userID string, in ifta.MileageInput) (MileageResponse, error) {
	in.Normalize()
	if err := s.validator.ValidateMileage(in).Err(); err != nil {
		return MileageResponse{}, err
	}

	record := in.Record(tenantID)
	if err := s.store.Mileage.Append(ctx, &record); err != nil {
		return MileageResponse{}, fmt.Errorf("failed to store mileage record: %w", err)
	}

	res := toMileageResponse(record)
	s.writeAuditLog(ctx, tenantID, userID, model.ActionRecordMileage, res.ID,
		record.JurisdictionCode+" "+res.Miles+" mi", res)
	s.events.Publish(tenantID, EventMileageRecorded, res)

	return res, nil
}

func (s *iftaService) ListFuelPurchases(ctx context.Context, tenantID string, filter RecordFilter) ([]FuelPurchaseResponse, int64, error) {
	rng, err := parseRange(filter)
	if err != nil {
		return nil, 0, err
	}
	rows, total, err := s.store.FuelPurchases.List(ctx, tenantID, rng, filter.Page, filter.Limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch fuel purchases: %w", err)
	}

	res := make([]FuelPurchaseResponse, 0, len(rows))
	for _, p := range rows {
		res = append(res, toFuelPurchaseResponse(p))
	}
	return res, total, nil
}

func (s *iftaService) ListMileage(ctx context.Context, tenantID string, filter RecordFilter) ([]MileageResponse, int64, error) {
	rng, err := parseRange(filter)
	if err != nil {
		return nil, 0, err
	}
	rows, total, err := s.store.Mileage.List(ctx, tenantID, rng, filter.Page, filter.Limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch mileage records: %w", err)
	}

	res := make([]MileageResponse, 0, len(rows))
	for _, m := range rows {
		res = append(res, toMileageResponse(m))
	}
	return res, total, nil
}

// parseRange turns the inclusive from/to query dates into a half-open range.
func parseRange(filter RecordFilter) (repository.DateRange, error) {
	var rng repository.DateRange
	var errs []string
	if filter.From != "" {
		d, err := ifta.ParseDate(filter.From)
		if err != nil {
			errs = append(errs, "from must be a valid date (YYYY-MM-DD)")
		}
		rng.From = d
	}
	if filter.To != "" {
		d, err := ifta.ParseDate(filter.To)
		if err != nil {
			errs = append(errs, "to must be a valid date (YYYY-MM-DD)")
		} else {
			rng.To = d.AddDate(0, 0, 1)
		}
	}
	if len(errs) > 0 {
		return rng, ifta.NewValidationError(errs...)
	}
	return rng, nil
}

// --- Returns ---

// GenerateReturn recomputes the tenant's return for a quarter from the stored
// records and persists it as a draft. Filed returns are immutable.
func (s *iftaService) GenerateReturn(ctx context.Context, tenantID, userID string, year, quarter int) (QuarterlyReturnResponse, error) {
	period, err := ifta.NewPeriod(year, quarter)
	if err != nil {
		return QuarterlyReturnResponse{}, err
	}

	var ret *model.QuarterlyReturn
	err = s.store.Tx.RunInTx(ctx, func(txCtx context.Context) error {
		existing, err := s.store.Returns.FindByPeriod(txCtx, tenantID, year, quarter)
		switch {
		case err == nil && existing.FilingStatus == model.FilingStatusFiled:
			return fmt.Errorf("return %s: %w", period, ifta.ErrReturnFiled)
		case err != nil && !errors.Is(err, ifta.ErrNotFound):
			return fmt.Errorf("failed to load return: %w", err)
		}

		rng := repository.DateRange{From: period.Start(), To: period.End()}
		purchases, err := s.store.FuelPurchases.Query(txCtx, tenantID, rng)
		if err != nil {
			return fmt.Errorf("failed to fetch fuel purchases: %w", err)
		}
		mileage, err := s.store.Mileage.Query(txCtx, tenantID, rng)
		if err != nil {
			return fmt.Errorf("failed to fetch mileage records: %w", err)
		}

		ret, err = s.calculator.Calculate(ifta.CalculationInput{
			TenantID:           tenantID,
			Period:             period,
			FleetMPG:           s.settings.FleetMPG,
			ReminderBufferDays: s.settings.FilingBufferDays,
			Purchases:          purchases,
			Mileage:            mileage,
		})
		if err != nil {
			return err
		}

		if err := s.store.Returns.Save(txCtx, ret); err != nil {
			return fmt.Errorf("failed to save return: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ifta.ErrInvariant) {
			s.log.Error("return failed reconciliation",
				zap.String("tenant_id", tenantID), zap.Stringer("period", period), zap.Error(err))
		}
		return QuarterlyReturnResponse{}, err
	}

	res := toReturnResponse(*ret)
	s.writeAuditLog(ctx, tenantID, userID, model.ActionGenerateReturn, res.ID, res.Period, map[string]interface{}{
		"jurisdictions":    len(res.Jurisdictions),
		"total_tax_due":    res.TotalTaxDue,
		"total_refund_due": res.TotalRefundDue,
		"net_amount":       res.NetAmount,
	})
	s.events.Publish(tenantID, EventReturnGenerated, res)
	s.log.Info("return generated",
		zap.String("tenant_id", tenantID),
		zap.Stringer("period", period),
		zap.Int("jurisdictions", len(res.Jurisdictions)),
		zap.String("net_amount", res.NetAmount),
	)

	return res, nil
}

func (s *iftaService) GetReturn(ctx context.Context, tenantID string, year, quarter int) (QuarterlyReturnResponse, error) {
	if _, err := ifta.NewPeriod(year, quarter); err != nil {
		return QuarterlyReturnResponse{}, err
	}
	ret, err := s.store.Returns.FindByPeriod(ctx, tenantID, year, quarter)
	if err != nil {
		return QuarterlyReturnResponse{}, err
	}
	return toReturnResponse(*ret), nil
}

func (s *iftaService) ListReturns(ctx context.Context, tenantID string) ([]QuarterlyReturnResponse, error) {
	rows, err := s.store.Returns.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch returns: %w", err)
	}
	res := make([]QuarterlyReturnResponse, 0, len(rows))
	for _, r := range rows {
		res = append(res, toReturnResponse(r))
	}
	return res, nil
}

// FileReturn marks a generated return as filed. Filing is one-way.
func (s *iftaService) FileReturn(ctx context.Context, tenantID, userID string, year, quarter int) (QuarterlyReturnResponse, error) {
	period, err := ifta.NewPeriod(year, quarter)
	if err != nil {
		return QuarterlyReturnResponse{}, err
	}

	ret, err := s.store.Returns.FindByPeriod(ctx, tenantID, year, quarter)
	if err != nil {
		return QuarterlyReturnResponse{}, err
	}
	if ret.FilingStatus == model.FilingStatusFiled {
		return QuarterlyReturnResponse{}, fmt.Errorf("return %s: %w", period, ifta.ErrReturnFiled)
	}

	filedAt := s.settings.Now().UTC().Truncate(time.Second)
	if err := s.store.Returns.UpdateStatus(ctx, tenantID, ret.ID, model.FilingStatusFiled, &filedAt); err != nil {
		return QuarterlyReturnResponse{}, err
	}
	ret.FilingStatus = model.FilingStatusFiled
	ret.FiledAt = &filedAt

	res := toReturnResponse(*ret)
	s.writeAuditLog(ctx, tenantID, userID, model.ActionFileReturn, res.ID, res.Period, map[string]string{
		"filed_at":   *res.FiledAt,
		"net_amount": res.NetAmount,
	})
	s.events.Publish(tenantID, EventReturnFiled, res)

	return res, nil
}

// ComplianceStatus reports deadlines and overdue returns as of asOf. A zero
// asOf means today.
func (s *iftaService) ComplianceStatus(ctx context.Context, tenantID string, asOf time.Time) (ComplianceStatusResponse, error) {
	if asOf.IsZero() {
		asOf = s.settings.Now()
	}
	history, err := s.store.Returns.ListByTenant(ctx, tenantID)
	if err != nil {
		return ComplianceStatusResponse{}, fmt.Errorf("failed to fetch returns: %w", err)
	}
	return toComplianceResponse(ifta.Compliance(asOf, s.settings.FilingBufferDays, history)), nil
}

// --- ELD ---

// SyncELDMileage imports a quarter of mileage from the ELD vendor. Invalid
// records are reported, not stored; records whose source_ref was already
// imported are skipped.
func (s *iftaService) SyncELDMileage(ctx context.Context, tenantID, userID string, year, quarter int) (SyncReport, error) {
	period, err := ifta.NewPeriod(year, quarter)
	if err != nil {
		return SyncReport{}, err
	}
	if s.source == nil {
		return SyncReport{}, ErrELDNotConfigured
	}

	inputs, err := s.source.FetchMileage(ctx, tenantID, period.Start(), period.End())
	if err != nil {
		s.log.Warn("eld fetch failed", zap.String("tenant_id", tenantID), zap.Error(err))
		var depErr *ifta.DependencyError
		if !errors.As(err, &depErr) {
			err = &ifta.DependencyError{Dependency: "eld", Err: err}
		}
		return SyncReport{}, err
	}

	report := SyncReport{Period: period.String(), Fetched: len(inputs), Rejected: []RejectedRecord{}}
	seen := make(map[string]bool)

	for i, in := range inputs {
		in.Normalize()
		result := s.validator.ValidateMileage(in)
		if !result.Valid {
			report.Rejected = append(report.Rejected, RejectedRecord{Index: i, SourceRef: in.SourceRef, Errors: result.Errors})
			continue
		}

		if in.SourceRef != "" {
			if seen[in.SourceRef] {
				report.Skipped++
				continue
			}
			exists, err := s.store.Mileage.ExistsBySourceRef(ctx, tenantID, in.SourceRef)
			if err != nil {
				return report, fmt.Errorf("failed to check source_ref: %w", err)
			}
			seen[in.SourceRef] = true
			if exists {
				report.Skipped++
				continue
			}
		}

		record := in.Record(tenantID)
		if err := s.store.Mileage.Append(ctx, &record); err != nil {
			return report, fmt.Errorf("failed to store mileage record: %w", err)
		}
		report.Imported++
		s.events.Publish(tenantID, EventMileageRecorded, toMileageResponse(record))
	}

	s.writeAuditLog(ctx, tenantID, userID, model.ActionSyncELDMileage, report.Period, "ELD "+report.Period, report)
	s.log.Info("eld mileage synced",
		zap.String("tenant_id", tenantID),
		zap.String("period", report.Period),
		zap.Int("fetched", report.Fetched),
		zap.Int("imported", report.Imported),
		zap.Int("skipped", report.Skipped),
		zap.Int("rejected", len(report.Rejected)),
	)
	return report, nil
}

// --- Registry ---

func (s *iftaService) Jurisdictions() []JurisdictionResponse {
	all := s.registry.All()
	res := make([]JurisdictionResponse, 0, len(all))
	for _, j := range all {
		res = append(res, toJurisdictionResponse(j))
	}
	return res
}

func (s *iftaService) Jurisdiction(code string) (JurisdictionResponse, error) {
	j, err := s.registry.Lookup(code)
	if err != nil {
		return JurisdictionResponse{}, fmt.Errorf("jurisdiction %q: %w", code, ifta.ErrNotFound)
	}
	return toJurisdictionResponse(j), nil
}

func (s *iftaService) Health() HealthResponse {
	return HealthResponse{
		Status:                   "ok",
		Service:                  "ifta",
		JurisdictionCount:        s.registry.Len(),
		RatesEffectiveQuarter:    s.registry.EffectiveQuarter(),
		BaseFleetMPG:             s.settings.FleetMPG.String(),
		DefaultFuelType:          s.settings.DefaultFuelType,
		FilingDeadlineBufferDays: s.settings.FilingBufferDays,
		ELDSyncEnabled:           s.source != nil,
	}
}

// writeAuditLog is best effort: a failed audit write never fails the operation.
func (s *iftaService) writeAuditLog(ctx context.Context, tenantID, userID, action, entityID, entityName string, details interface{}) {
	payload, _ := json.Marshal(details)
	entry := &model.AuditLog{
		TenantID:   tenantID,
		UserID:     userID,
		Action:     action,
		EntityID:   entityID,
		EntityName: entityName,
		Details:    string(payload),
	}
	if err := s.store.Audit.Log(ctx, entry); err != nil {
		s.log.Warn("audit log write failed", zap.String("action", action), zap.Error(err))
	}
}
