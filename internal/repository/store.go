package repository

import (
	"time"

	"gorm.io/gorm"
)

// DateRange is a half-open [From, To) window over record dates. A zero
// bound is unbounded.
type DateRange struct {
	From time.Time
	To   time.Time
}

// Contains reports whether t falls inside the range.
func (r DateRange) Contains(t time.Time) bool {
	if !r.From.IsZero() && t.Before(r.From) {
		return false
	}
	if !r.To.IsZero() && !t.Before(r.To) {
		return false
	}
	return true
}

// Store bundles the tenant-scoped repositories the IFTA service needs.
// Every read and write is keyed by tenant id; no method crosses tenants.
type Store struct {
	FuelPurchases FuelPurchaseRepository
	Mileage       MileageRepository
	Returns       ReturnRepository
	Audit         AuditRepository
	Tx            TransactionManager
}

// NewGormStore backs the store with a database.
func NewGormStore(db *gorm.DB) *Store {
	return &Store{
		FuelPurchases: NewFuelPurchaseRepository(db),
		Mileage:       NewMileageRepository(db),
		Returns:       NewReturnRepository(db),
		Audit:         NewAuditRepository(db),
		Tx:            NewTransactionManager(db),
	}
}

// NewMemoryStore keeps everything in process memory. Used by the CLI and tests.
func NewMemoryStore() *Store {
	return &Store{
		FuelPurchases: newMemoryFuelPurchases(),
		Mileage:       newMemoryMileage(),
		Returns:       newMemoryReturns(),
		Audit:         newMemoryAudit(),
		Tx:            inlineTx{},
	}
}

func applyRange(db *gorm.DB, column string, rng DateRange) *gorm.DB {
	if !rng.From.IsZero() {
		db = db.Where(column+" >= ?", rng.From)
	}
	if !rng.To.IsZero() {
		db = db.Where(column+" < ?", rng.To)
	}
	return db
}
