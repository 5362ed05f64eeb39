package settlement

import (
	"context"
	"sync"
	"testing"
	"time"

	appcommission "github.com/Renagang21/o4o-platform-sub111/internal/application/commission"
	"github.com/Renagang21/o4o-platform-sub111/internal/application/transition"
	"github.com/Renagang21/o4o-platform-sub111/internal/domain/commission"
	"github.com/Renagang21/o4o-platform-sub111/internal/domain/shared"
	"github.com/Renagang21/o4o-platform-sub111/internal/infrastructure/persistence"
	"github.com/Renagang21/o4o-platform-sub111/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []shared.DomainEvent
}

func (p *recordingPublisher) Publish(ctx context.Context, events ...shared.DomainEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, events...)
	return nil
}

func (p *recordingPublisher) ofType(eventType string) []shared.DomainEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []shared.DomainEvent
	for _, e := range p.events {
		if e.EventType() == eventType {
			out = append(out, e)
		}
	}
	return out
}

type testEnv struct {
	db          *gorm.DB
	clock       *fakeClock
	publisher   *recordingPublisher
	commissions *appcommission.Service
	service     *Service
	tenantID    uuid.UUID
	beneficiary uuid.UUID
	quickPolicy uuid.UUID
	heldPolicy  uuid.UUID
}

func newTestEnv(t *testing.T) *testEnv {
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

	clock := &fakeClock{now: time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)}
	publisher := &recordingPublisher{}
	txManager := persistence.NewGormTxManager(db)
	commissionRepo := persistence.NewGormCommissionRepository(db)
	batchRepo := persistence.NewGormBatchRepository(db)
	policyRepo := persistence.NewGormPolicyRepository(db)
	engine := transition.NewEngine(txManager, persistence.NewGormAuditLogRepository(db), zap.NewNop(),
		transition.WithClock(clock.Now))

	env := &testEnv{
		db:          db,
		clock:       clock,
		publisher:   publisher,
		tenantID:    uuid.New(),
		beneficiary: uuid.New(),
	}
	env.commissions = appcommission.NewService(txManager, commissionRepo, policyRepo,
		appcommission.NewBatchAssigner(batchRepo), engine, publisher, commission.RateCaps{}, zap.NewNop(),
		appcommission.WithClock(clock.Now))
	env.service = NewService(batchRepo, commissionRepo, persistence.NewGormSummaryReader(db), engine,
		publisher, zap.NewNop(), WithClock(clock.Now))

	env.quickPolicy = env.seedPolicy(t, policyRepo, 0)
	env.heldPolicy = env.seedPolicy(t, policyRepo, 3)
	return env
}

func (e *testEnv) seedPolicy(t *testing.T, repo commission.PolicyRepository, holdDays int) uuid.UUID {
	t.Helper()
	rate := decimal.NewFromInt(10)
	p := &commission.Policy{
		ID:              uuid.New(),
		TenantID:        e.tenantID,
		Name:            "referral",
		PolicyType:      "standard",
		CalculationType: commission.CalculationRate,
		RatePercent:     &rate,
		HoldDays:        holdDays,
		Active:          true,
		CreatedAt:       e.clock.Now(),
		UpdatedAt:       e.clock.Now(),
	}
	require.NoError(t, repo.Save(context.Background(), p))
	return p.ID
}

// createCommission creates a commission for the env beneficiary and returns it
func (e *testEnv) createCommission(t *testing.T, conversionID, amount string, policyID uuid.UUID) *commission.Commission {
	t.Helper()
	c, err := e.commissions.CreateFromConversion(context.Background(), appcommission.CreateInput{
		Conversion: commission.Conversion{
			ConversionID:    conversionID,
			TenantID:        e.tenantID,
			BeneficiaryID:   e.beneficiary,
			BeneficiaryType: commission.BeneficiaryPartner,
			ProductID:       uuid.New(),
			OrderID:         uuid.New(),
			OrderAmount:     decimal.RequireFromString(amount),
			Currency:        "KRW",
		},
		PolicyID: policyID,
		Actor:    "system",
	})
	require.NoError(t, err)
	return c
}

// confirmedCommission creates a commission without hold and confirms it
func (e *testEnv) confirmedCommission(t *testing.T, conversionID, amount string) *commission.Commission {
	t.Helper()
	c := e.createCommission(t, conversionID, amount, e.quickPolicy)
	c, err := e.commissions.Confirm(context.Background(), e.tenantID, c.ID, "admin")
	require.NoError(t, err)
	return c
}
