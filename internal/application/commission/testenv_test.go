package commission

import (
	"context"
	"sync"
	"testing"
	"time"

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

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.EventType())
	}
	return out
}

type testEnv struct {
	db        *gorm.DB
	clock     *fakeClock
	publisher *recordingPublisher
	repo      *persistence.GormCommissionRepository
	batches   *persistence.GormBatchRepository
	policies  *persistence.GormPolicyRepository
	engine    *transition.Engine
	service   *Service
	tenantID  uuid.UUID
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
	env := &testEnv{
		db:        db,
		clock:     clock,
		publisher: &recordingPublisher{},
		repo:      persistence.NewGormCommissionRepository(db),
		batches:   persistence.NewGormBatchRepository(db),
		policies:  persistence.NewGormPolicyRepository(db),
		tenantID:  uuid.New(),
	}
	txManager := persistence.NewGormTxManager(db)
	env.engine = transition.NewEngine(txManager, persistence.NewGormAuditLogRepository(db), zap.NewNop(),
		transition.WithClock(clock.Now))
	env.service = NewService(txManager, env.repo, env.policies, NewBatchAssigner(env.batches), env.engine,
		env.publisher, commission.RateCaps{"dropshipping": decimal.NewFromInt(2)}, zap.NewNop(),
		WithClock(clock.Now))
	return env
}

func (e *testEnv) seedPolicy(t *testing.T, rate int64, holdDays int) *commission.Policy {
	t.Helper()
	r := decimal.NewFromInt(rate)
	p := &commission.Policy{
		ID:              uuid.New(),
		TenantID:        e.tenantID,
		Name:            "standard referral",
		PolicyType:      "standard",
		CalculationType: commission.CalculationRate,
		RatePercent:     &r,
		HoldDays:        holdDays,
		Active:          true,
		CreatedAt:       e.clock.Now(),
		UpdatedAt:       e.clock.Now(),
	}
	require.NoError(t, e.policies.Save(context.Background(), p))
	return p
}

func (e *testEnv) conversion(beneficiaryID uuid.UUID, conversionID, amount string) commission.Conversion {
	return commission.Conversion{
		ConversionID:    conversionID,
		TenantID:        e.tenantID,
		BeneficiaryID:   beneficiaryID,
		BeneficiaryType: commission.BeneficiaryPartner,
		ProductID:       uuid.New(),
		OrderID:         uuid.New(),
		OrderAmount:     decimal.RequireFromString(amount),
		Currency:        "KRW",
	}
}
