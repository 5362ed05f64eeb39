package persistence

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	appcommission "github.com/Renagang21/o4o-platform-sub111/internal/application/commission"
	"github.com/Renagang21/o4o-platform-sub111/internal/domain/commission"
	"github.com/Renagang21/o4o-platform-sub111/internal/domain/shared"
	"github.com/Renagang21/o4o-platform-sub111/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newPostgresDB starts a throwaway PostgreSQL container and migrates it
func newPostgresDB(t *testing.T) *gorm.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping postgres integration test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("ledger_test"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err, "failed to start postgres container")
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(models.All()...))
	return db
}

func TestPostgres_ConcurrentDuplicateConversion(t *testing.T) {
	db := newPostgresDB(t)
	repo := NewGormCommissionRepository(db)
	ctx := context.Background()
	tenantID := uuid.New()

	const writers = 8
	var (
		wg         sync.WaitGroup
		mu         sync.Mutex
		created    int
		duplicates int
	)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c := newTestCommission(t, commissionSeed{tenantID: tenantID, beneficiaryID: uuid.New(), conversionID: "conv-race"})
			err := repo.Create(ctx, c)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				created++
			case errors.Is(err, shared.ErrDuplicateConversion):
				duplicates++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, created)
	assert.Equal(t, writers-1, duplicates)
}

func TestPostgres_ConcurrentConfirm(t *testing.T) {
	db := newPostgresDB(t)
	repo := NewGormCommissionRepository(db)
	ctx := context.Background()
	tenantID := uuid.New()

	c := newTestCommission(t, commissionSeed{tenantID: tenantID, beneficiaryID: uuid.New()})
	require.NoError(t, repo.Create(ctx, c))

	const workers = 4
	errs := make([]error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		loaded, err := repo.FindByID(ctx, tenantID, c.ID)
		require.NoError(t, err)
		require.NoError(t, loaded.Confirm(testNow))

		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = repo.SaveWithLock(ctx, loaded)
		}(i)
	}
	wg.Wait()

	var saved, conflicts int
	for _, err := range errs {
		switch {
		case err == nil:
			saved++
		case errors.Is(err, shared.ErrConcurrencyConflict):
			conflicts++
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, saved)
	assert.Equal(t, workers-1, conflicts)

	found, err := repo.FindByID(ctx, tenantID, c.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, found.Version)
}

func TestPostgres_ConcurrentFirstCommissionOfPeriod(t *testing.T) {
	db := newPostgresDB(t)
	txm := NewGormTxManager(db)
	commissions := NewGormCommissionRepository(db)
	batches := NewGormBatchRepository(db)
	assigner := appcommission.NewBatchAssigner(batches)
	ctx := context.Background()
	tenantID := uuid.New()
	beneficiaryID := uuid.New()

	const writers = 2
	attached := make([]*commission.Commission, writers)
	errs := make([]error, writers)
	start := make(chan struct{})
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		attached[i] = newTestCommission(t, commissionSeed{tenantID: tenantID, beneficiaryID: beneficiaryID})
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			errs[i] = txm.InTransaction(ctx, func(ctx context.Context) error {
				if _, err := assigner.Assign(ctx, attached[i], testNow); err != nil {
					return err
				}
				return commissions.Create(ctx, attached[i])
			})
		}(i)
	}
	close(start)
	wg.Wait()

	for i, err := range errs {
		require.NoError(t, err, "writer %d", i)
	}
	require.NotNil(t, attached[0].BatchID)
	require.NotNil(t, attached[1].BatchID)
	assert.Equal(t, *attached[0].BatchID, *attached[1].BatchID)

	stored, err := commissions.FindByBatch(ctx, tenantID, *attached[0].BatchID)
	require.NoError(t, err)
	assert.Len(t, stored, writers)
}

func TestPostgres_DuplicateConversionInsideOuterTransaction(t *testing.T) {
	db := newPostgresDB(t)
	txm := NewGormTxManager(db)
	repo := NewGormCommissionRepository(db)
	ctx := context.Background()
	tenantID := uuid.New()

	existing := newTestCommission(t, commissionSeed{tenantID: tenantID, beneficiaryID: uuid.New(), conversionID: "conv-paid"})
	require.NoError(t, repo.Create(ctx, existing))

	dup := newTestCommission(t, commissionSeed{tenantID: tenantID, beneficiaryID: uuid.New(), conversionID: "conv-paid"})
	other := newTestCommission(t, commissionSeed{tenantID: tenantID, beneficiaryID: uuid.New()})
	err := txm.InTransaction(ctx, func(ctx context.Context) error {
		if err := repo.Create(ctx, other); err != nil {
			return err
		}
		nested := txm.InTransaction(ctx, func(ctx context.Context) error {
			return repo.Create(ctx, dup)
		})
		if !errors.Is(nested, shared.ErrDuplicateConversion) {
			return nested
		}
		return nil
	})
	require.NoError(t, err)

	_, err = repo.FindByID(ctx, tenantID, other.ID)
	assert.NoError(t, err)
}
