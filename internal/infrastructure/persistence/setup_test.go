package persistence

import (
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Renagang21/o4o-platform-sub111/internal/domain/commission"
	"github.com/Renagang21/o4o-platform-sub111/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

// newSQLiteDB opens a migrated in-memory database. A single connection keeps every
// statement on the same in-memory schema.
func newSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(models.All()...))
	return db
}

// newMockDB creates a postgres-dialect gorm DB over sqlmock
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})
	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	return gormDB, mock, mockDB
}

type commissionSeed struct {
	tenantID      uuid.UUID
	beneficiaryID uuid.UUID
	conversionID  string
	orderAmount   string
	holdDays      int
	currency      string
	createdAt     time.Time
}

func newTestCommission(t *testing.T, seed commissionSeed) *commission.Commission {
	t.Helper()
	if seed.conversionID == "" {
		seed.conversionID = uuid.NewString()
	}
	if seed.orderAmount == "" {
		seed.orderAmount = "10000"
	}
	if seed.createdAt.IsZero() {
		seed.createdAt = testNow
	}
	if seed.currency == "" {
		seed.currency = "KRW"
	}
	rate := decimal.NewFromInt(10)
	c, err := commission.NewCommission(commission.Conversion{
		ConversionID:    seed.conversionID,
		TenantID:        seed.tenantID,
		BeneficiaryID:   seed.beneficiaryID,
		BeneficiaryType: commission.BeneficiaryPartner,
		ProductID:       uuid.New(),
		OrderID:         uuid.New(),
		OrderAmount:     decimal.RequireFromString(seed.orderAmount),
		Currency:        seed.currency,
	}, commission.PolicySnapshot{
		PolicyID:        uuid.New(),
		PolicyType:      "standard",
		CalculationType: commission.CalculationRate,
		RatePercent:     &rate,
		HoldDays:        seed.holdDays,
		CapturedAt:      seed.createdAt,
	}, nil, seed.createdAt)
	require.NoError(t, err)
	return c
}
