package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"fleetflow/internal/database"
	"fleetflow/internal/ifta"
	"fleetflow/internal/jurisdiction"
	"fleetflow/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newSQLiteStore(t *testing.T) *Store {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "ifta.db")), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return NewGormStore(db)
}

// forEachStore runs the same contract against every store implementation.
func forEachStore(t *testing.T, fn func(t *testing.T, s *Store)) {
	t.Run("memory", func(t *testing.T) { fn(t, NewMemoryStore()) })
	t.Run("gorm_sqlite", func(t *testing.T) { fn(t, newSQLiteStore(t)) })
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func fuel(tenant string, on time.Time, code, gallons string) *model.FuelPurchase {
	return &model.FuelPurchase{
		TenantID:         tenant,
		PurchaseDate:     on,
		JurisdictionCode: code,
		Gallons:          decimal.RequireFromString(gallons),
		PricePerGallon:   decimal.RequireFromString("3.899"),
		TotalAmount:      decimal.RequireFromString("100.00"),
		FuelType:         model.FuelTypeDiesel,
	}
}

func miles(tenant string, on time.Time, code, miles, ref string) *model.MileageRecord {
	return &model.MileageRecord{
		TenantID:         tenant,
		VehicleID:        "TRK-101",
		TravelDate:       on,
		JurisdictionCode: code,
		Miles:            decimal.RequireFromString(miles),
		SourceRef:        ref,
	}
}

func TestFuelPurchaseTenantIsolation(t *testing.T) {
	forEachStore(t, func(t *testing.T, s *Store) {
		ctx := context.Background()
		a := fuel("A", day(2024, 7, 15), "GA", "150.5")
		require.NoError(t, s.FuelPurchases.Append(ctx, a))
		assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", a.ID.String())

		for _, rng := range []DateRange{{}, {From: day(2024, 7, 1), To: day(2024, 10, 1)}} {
			got, err := s.FuelPurchases.Query(ctx, "B", rng)
			require.NoError(t, err)
			assert.Empty(t, got)
		}

		got, err := s.FuelPurchases.Query(ctx, "A", DateRange{})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, a.ID, got[0].ID)
		assert.True(t, decimal.RequireFromString("150.5").Equal(got[0].Gallons))
	})
}

func TestFuelPurchaseQueryRange(t *testing.T) {
	forEachStore(t, func(t *testing.T, s *Store) {
		ctx := context.Background()
		for _, d := range []time.Time{day(2024, 6, 30), day(2024, 7, 1), day(2024, 9, 30), day(2024, 10, 1)} {
			require.NoError(t, s.FuelPurchases.Append(ctx, fuel("A", d, "GA", "10")))
		}

		got, err := s.FuelPurchases.Query(ctx, "A", DateRange{From: day(2024, 7, 1), To: day(2024, 10, 1)})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.True(t, got[0].PurchaseDate.Equal(day(2024, 7, 1)))
		assert.True(t, got[1].PurchaseDate.Equal(day(2024, 9, 30)))

		page, total, err := s.FuelPurchases.List(ctx, "A", DateRange{}, 1, 3)
		require.NoError(t, err)
		assert.Equal(t, int64(4), total)
		require.Len(t, page, 3)
		assert.True(t, page[0].PurchaseDate.Equal(day(2024, 10, 1)), "list is newest first")

		page, _, err = s.FuelPurchases.List(ctx, "A", DateRange{}, 2, 3)
		require.NoError(t, err)
		assert.Len(t, page, 1)
	})
}

func TestMileageQueryAndSourceRef(t *testing.T) {
	forEachStore(t, func(t *testing.T, s *Store) {
		ctx := context.Background()
		require.NoError(t, s.Mileage.Append(ctx, miles("A", day(2024, 7, 15), "GA", "285.7", "eld-1")))
		require.NoError(t, s.Mileage.Append(ctx, miles("A", day(2024, 8, 2), "TN", "100", "")))
		require.NoError(t, s.Mileage.Append(ctx, miles("B", day(2024, 7, 15), "GA", "50", "eld-1")))

		got, err := s.Mileage.Query(ctx, "A", DateRange{From: day(2024, 7, 1), To: day(2024, 10, 1)})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "GA", got[0].JurisdictionCode)

		exists, err := s.Mileage.ExistsBySourceRef(ctx, "A", "eld-1")
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = s.Mileage.ExistsBySourceRef(ctx, "C", "eld-1")
		require.NoError(t, err)
		assert.False(t, exists)

		_, total, err := s.Mileage.List(ctx, "B", DateRange{}, 1, 20)
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
	})
}

func sampleReturn(t *testing.T, tenant string) *model.QuarterlyReturn {
	t.Helper()
	calc := ifta.NewCalculator(jurisdiction.Default())
	ret, err := calc.Calculate(ifta.CalculationInput{
		TenantID: tenant,
		Period:   ifta.Period{Year: 2024, Quarter: 3},
		FleetMPG: decimal.RequireFromString("6.5"),
		Mileage: []model.MileageRecord{
			*miles(tenant, day(2024, 7, 15), "GA", "285.7", ""),
			*miles(tenant, day(2024, 7, 16), "TN", "650", ""),
		},
		Purchases: []model.FuelPurchase{*fuel(tenant, day(2024, 7, 15), "GA", "150.5")},
	})
	require.NoError(t, err)
	return ret
}

func TestReturnSaveAndReplace(t *testing.T) {
	forEachStore(t, func(t *testing.T, s *Store) {
		ctx := context.Background()
		ret := sampleReturn(t, "A")
		require.NoError(t, s.Returns.Save(ctx, ret))

		got, err := s.Returns.FindByPeriod(ctx, "A", 2024, 3)
		require.NoError(t, err)
		assert.Equal(t, ret.ID, got.ID)
		require.Len(t, got.Jurisdictions, 2)
		assert.Equal(t, "GA", got.Jurisdictions[0].JurisdictionCode)
		assert.Equal(t, "TN", got.Jurisdictions[1].JurisdictionCode)
		assert.True(t, ret.NetAmount.Equal(got.NetAmount))

		// Regenerating with fewer jurisdictions replaces the lines.
		ret.Jurisdictions = ret.Jurisdictions[:1]
		ret.TotalTaxDue = decimal.Zero
		ret.NetAmount = ret.TotalRefundDue.Neg()
		require.NoError(t, s.Returns.Save(ctx, ret))

		got, err = s.Returns.FindByPeriod(ctx, "A", 2024, 3)
		require.NoError(t, err)
		assert.Len(t, got.Jurisdictions, 1)

		all, err := s.Returns.ListByTenant(ctx, "A")
		require.NoError(t, err)
		assert.Len(t, all, 1)

		_, err = s.Returns.FindByPeriod(ctx, "B", 2024, 3)
		assert.ErrorIs(t, err, ifta.ErrNotFound)
	})
}

func TestReturnUpdateStatus(t *testing.T) {
	forEachStore(t, func(t *testing.T, s *Store) {
		ctx := context.Background()
		ret := sampleReturn(t, "A")
		require.NoError(t, s.Returns.Save(ctx, ret))

		filedAt := day(2024, 10, 20)
		err := s.Returns.UpdateStatus(ctx, "B", ret.ID, model.FilingStatusFiled, &filedAt)
		assert.ErrorIs(t, err, ifta.ErrNotFound, "another tenant cannot file this return")

		require.NoError(t, s.Returns.UpdateStatus(ctx, "A", ret.ID, model.FilingStatusFiled, &filedAt))

		got, err := s.Returns.FindByPeriod(ctx, "A", 2024, 3)
		require.NoError(t, err)
		assert.Equal(t, model.FilingStatusFiled, got.FilingStatus)
		require.NotNil(t, got.FiledAt)
		assert.True(t, got.FiledAt.Equal(filedAt))
	})
}

func TestAuditLogIsTenantScoped(t *testing.T) {
	forEachStore(t, func(t *testing.T, s *Store) {
		ctx := context.Background()
		require.NoError(t, s.Audit.Log(ctx, &model.AuditLog{TenantID: "A", Action: model.ActionRecordMileage}))
		require.NoError(t, s.Audit.Log(ctx, &model.AuditLog{TenantID: "B", Action: model.ActionRecordMileage}))

		logs, total, err := s.Audit.List(ctx, "A", 1, 20)
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, logs, 1)
		assert.Equal(t, "A", logs[0].TenantID)
	})
}

func TestRunInTxRollsBackOnError(t *testing.T) {
	s := newSQLiteStore(t)
	ctx := context.Background()

	err := s.Tx.RunInTx(ctx, func(txCtx context.Context) error {
		require.NoError(t, s.Audit.Log(txCtx, &model.AuditLog{TenantID: "A", Action: model.ActionRecordMileage}))
		return assert.AnError
	})
	assert.ErrorIs(t, err, assert.AnError)

	_, total, err := s.Audit.List(ctx, "A", 1, 20)
	require.NoError(t, err)
	assert.Zero(t, total)

	require.NoError(t, s.Tx.RunInTx(ctx, func(txCtx context.Context) error {
		return s.Audit.Log(txCtx, &model.AuditLog{TenantID: "A", Action: model.ActionRecordMileage})
	}))
	all, total, err := s.Audit.List(ctx, "A", 1, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, all, 1)
}

func TestDateRangeContains(t *testing.T) {
	rng := DateRange{From: day(2024, 7, 1), To: day(2024, 10, 1)}
	assert.True(t, rng.Contains(day(2024, 7, 1)))
	assert.True(t, rng.Contains(day(2024, 9, 30)))
	assert.False(t, rng.Contains(day(2024, 10, 1)))
	assert.False(t, rng.Contains(day(2024, 6, 30)))
	assert.True(t, DateRange{}.Contains(day(1999, 1, 1)))
}
