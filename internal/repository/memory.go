package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"fleetflow/internal/ifta"
	"fleetflow/internal/model"

	"github.com/google/uuid"
)

// The in-memory repositories partition rows by tenant id. Records are
// copied on the way in and out so callers never share backing arrays.

type memoryFuelPurchases struct {
	mu   sync.RWMutex
	rows map[string][]model.FuelPurchase
}

func newMemoryFuelPurchases() *memoryFuelPurchases {
	return &memoryFuelPurchases{rows: make(map[string][]model.FuelPurchase)}
}

func (m *memoryFuelPurchases) Append(_ context.Context, p *model.FuelPurchase) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	m.rows[p.TenantID] = append(m.rows[p.TenantID], *p)
	return nil
}

func (m *memoryFuelPurchases) Query(_ context.Context, tenantID string, rng DateRange) ([]model.FuelPurchase, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]model.FuelPurchase, 0)
	for _, p := range m.rows[tenantID] {
		if rng.Contains(p.PurchaseDate) {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(a, b int) bool { return out[a].PurchaseDate.Before(out[b].PurchaseDate) })
	return out, nil
}

func (m *memoryFuelPurchases) List(ctx context.Context, tenantID string, rng DateRange, page, limit int) ([]model.FuelPurchase, int64, error) {
	all, _ := m.Query(ctx, tenantID, rng)
	reverse(all)
	return paginate(all, page, limit), int64(len(all)), nil
}

type memoryMileage struct {
	mu   sync.RWMutex
	rows map[string][]model.MileageRecord
}

func newMemoryMileage() *memoryMileage {
	return &memoryMileage{rows: make(map[string][]model.MileageRecord)}
}

func (m *memoryMileage) Append(_ context.Context, r *model.MileageRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}
	m.rows[r.TenantID] = append(m.rows[r.TenantID], *r)
	return nil
}

func (m *memoryMileage) Query(_ context.Context, tenantID string, rng DateRange) ([]model.MileageRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]model.MileageRecord, 0)
	for _, r := range m.rows[tenantID] {
		if rng.Contains(r.TravelDate) {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(a, b int) bool { return out[a].TravelDate.Before(out[b].TravelDate) })
	return out, nil
}

func (m *memoryMileage) List(ctx context.Context, tenantID string, rng DateRange, page, limit int) ([]model.MileageRecord, int64, error) {
	all, _ := m.Query(ctx, tenantID, rng)
	reverse(all)
	return paginate(all, page, limit), int64(len(all)), nil
}

func (m *memoryMileage) ExistsBySourceRef(_ context.Context, tenantID, sourceRef string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, r := range m.rows[tenantID] {
		if r.SourceRef == sourceRef {
			return true, nil
		}
	}
	return false, nil
}

type memoryReturns struct {
	mu   sync.RWMutex
	rows map[string]map[uuid.UUID]model.QuarterlyReturn
}

func newMemoryReturns() *memoryReturns {
	return &memoryReturns{rows: make(map[string]map[uuid.UUID]model.QuarterlyReturn)}
}

func cloneReturn(r model.QuarterlyReturn) model.QuarterlyReturn {
	lines := make([]model.ReturnJurisdiction, len(r.Jurisdictions))
	copy(lines, r.Jurisdictions)
	r.Jurisdictions = lines
	if r.FiledAt != nil {
		t := *r.FiledAt
		r.FiledAt = &t
	}
	return r
}

func (m *memoryReturns) Save(_ context.Context, r *model.QuarterlyReturn) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	byID, ok := m.rows[r.TenantID]
	if !ok {
		byID = make(map[uuid.UUID]model.QuarterlyReturn)
		m.rows[r.TenantID] = byID
	}

	now := time.Now()
	if existing, ok := byID[r.ID]; ok {
		r.CreatedAt = existing.CreatedAt
	} else if r.CreatedAt.IsZero() {
		r.CreatedAt = now
	}
	r.UpdatedAt = now
	byID[r.ID] = cloneReturn(*r)
	return nil
}

func (m *memoryReturns) FindByPeriod(_ context.Context, tenantID string, year, quarter int) (*model.QuarterlyReturn, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, r := range m.rows[tenantID] {
		if r.Year == year && r.Quarter == quarter {
			c := cloneReturn(r)
			return &c, nil
		}
	}
	return nil, fmt.Errorf("return %dQ%d: %w", year, quarter, ifta.ErrNotFound)
}

func (m *memoryReturns) ListByTenant(_ context.Context, tenantID string) ([]model.QuarterlyReturn, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]model.QuarterlyReturn, 0, len(m.rows[tenantID]))
	for _, r := range m.rows[tenantID] {
		out = append(out, cloneReturn(r))
	}
	sort.Slice(out, func(a, b int) bool {
		if out[a].Year != out[b].Year {
			return out[a].Year > out[b].Year
		}
		return out[a].Quarter > out[b].Quarter
	})
	return out, nil
}

func (m *memoryReturns) UpdateStatus(_ context.Context, tenantID string, id uuid.UUID, status string, filedAt *time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	r, ok := m.rows[tenantID][id]
	if !ok {
		return fmt.Errorf("return %s: %w", id, ifta.ErrNotFound)
	}
	r.FilingStatus = status
	r.FiledAt = filedAt
	r.UpdatedAt = time.Now()
	m.rows[tenantID][id] = cloneReturn(r)
	return nil
}

type memoryAudit struct {
	mu   sync.RWMutex
	rows map[string][]model.AuditLog
}

func newMemoryAudit() *memoryAudit {
	return &memoryAudit{rows: make(map[string][]model.AuditLog)}
}

func (m *memoryAudit) Log(_ context.Context, entry *model.AuditLog) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	m.rows[entry.TenantID] = append(m.rows[entry.TenantID], *entry)
	return nil
}

func (m *memoryAudit) List(_ context.Context, tenantID string, page, limit int) ([]model.AuditLog, int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	all := make([]model.AuditLog, len(m.rows[tenantID]))
	copy(all, m.rows[tenantID])
	reverse(all)
	return paginate(all, page, limit), int64(len(all)), nil
}

func reverse[T any](s []T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

func paginate[T any](s []T, page, limit int) []T {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		return s
	}
	start := (page - 1) * limit
	if start >= len(s) {
		return []T{}
	}
	end := start + limit
	if end > len(s) {
		end = len(s)
	}
	return s[start:end]
}
