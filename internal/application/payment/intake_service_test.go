package payment

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	appcommission "github.com/Renagang21/o4o-platform-sub111/internal/application/commission"
	"github.com/Renagang21/o4o-platform-sub111/internal/application/transition"
	"github.com/Renagang21/o4o-platform-sub111/internal/domain/commission"
	"github.com/Renagang21/o4o-platform-sub111/internal/domain/eventlog"
	"github.com/Renagang21/o4o-platform-sub111/internal/domain/payment"
	"github.com/Renagang21/o4o-platform-sub111/internal/domain/shared"
	"github.com/Renagang21/o4o-platform-sub111/internal/infrastructure/cache"
	infraevent "github.com/Renagang21/o4o-platform-sub111/internal/infrastructure/event"
	"github.com/Renagang21/o4o-platform-sub111/internal/infrastructure/persistence"
	"github.com/Renagang21/o4o-platform-sub111/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const testScope = "ledger"

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

type testEnv struct {
	clock       *fakeClock
	store       *cache.LRUIdempotencyStore
	bus         *infraevent.InMemoryEventBus
	handler     *EventHandler
	idempotent  *infraevent.IdempotentHandler
	orders      *OrderPaymentService
	commissions *appcommission.Service
	intake      *IntakeService
	logs        *observer.ObservedLogs
	tenantID    uuid.UUID
	policyID    uuid.UUID
	beneficiary uuid.UUID
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
	core, logs := observer.New(zap.InfoLevel)
	log := zap.New(core)

	txManager := persistence.NewGormTxManager(db)
	engine := transition.NewEngine(txManager, persistence.NewGormAuditLogRepository(db), zap.NewNop(),
		transition.WithClock(clock.Now))
	orderRepo := persistence.NewGormOrderPaymentRepository(db)
	policyRepo := persistence.NewGormPolicyRepository(db)
	batchRepo := persistence.NewGormBatchRepository(db)

	env := &testEnv{
		clock:       clock,
		logs:        logs,
		tenantID:    uuid.New(),
		beneficiary: uuid.New(),
	}
	env.commissions = appcommission.NewService(txManager, persistence.NewGormCommissionRepository(db), policyRepo,
		appcommission.NewBatchAssigner(batchRepo), engine, nil, commission.RateCaps{}, zap.NewNop(),
		appcommission.WithClock(clock.Now))
	env.orders = NewOrderPaymentService(orderRepo, engine, zap.NewNop(), clock.Now)
	env.handler = NewEventHandler(txManager, orderRepo, engine, env.commissions, log, clock.Now)

	env.store = cache.NewLRUIdempotencyStore(100, time.Hour)
	env.idempotent = infraevent.NewIdempotentHandler(env.handler, env.store, log)
	env.bus = infraevent.NewInMemoryEventBus(zap.NewNop())
	env.bus.SubscribeScoped(testScope, env.idempotent)

	serializer := infraevent.NewEventSerializer()
	infraevent.RegisterLedgerEvents(serializer)
	env.intake = NewIntakeService(persistence.NewGormEventLogRepository(db), env.bus, serializer, env.store, log, clock.Now)

	rate := decimal.NewFromInt(10)
	policy := &commission.Policy{
		ID:              uuid.New(),
		TenantID:        env.tenantID,
		Name:            "referral",
		PolicyType:      "standard",
		CalculationType: commission.CalculationRate,
		RatePercent:     &rate,
		HoldDays:        7,
		Active:          true,
		CreatedAt:       clock.Now(),
		UpdatedAt:       clock.Now(),
	}
	require.NoError(t, policyRepo.Save(context.Background(), policy))
	env.policyID = policy.ID
	return env
}

func (e *testEnv) registerOrder(t *testing.T, amount string) uuid.UUID {
	t.Helper()
	orderID := uuid.New()
	_, err := e.orders.Register(context.Background(), RegisterOrderInput{
		TenantID: e.tenantID,
		OrderID:  orderID,
		Amount:   decimal.RequireFromString(amount),
		Currency: "krw",
		Actor:    "checkout",
	})
	require.NoError(t, err)
	return orderID
}

func (e *testEnv) completed(orderID uuid.UUID, paymentID, amount string, attributed bool) *payment.PaymentCompletedEvent {
	var meta map[string]string
	if attributed {
		meta = map[string]string{
			payment.MetaConversionID:    "conv-" + paymentID,
			payment.MetaBeneficiaryID:   e.beneficiary.String(),
			payment.MetaBeneficiaryType: string(commission.BeneficiaryPartner),
			payment.MetaPolicyID:        e.policyID.String(),
		}
	}
	return payment.NewPaymentCompletedEvent("", e.tenantID, testScope, paymentID, "tx-"+paymentID, orderID,
		decimal.RequireFromString(amount), "card", e.clock.Now(), meta)
}

func (e *testEnv) commissionCount(t *testing.T) int64 {
	t.Helper()
	page, err := e.commissions.List(context.Background(), e.tenantID, commission.ListFilter{})
	require.NoError(t, err)
	return page.Total
}

func TestIntakeService_RedeliveryAppliesOnce(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	orderID := env.registerOrder(t, "10000")
	evt := env.completed(orderID, "pay-1", "10000", true)

	const deliveries = 5
	var processed, skipped int
	for i := 0; i < deliveries; i++ {
		res, err := env.intake.Receive(ctx, evt)
		require.NoError(t, err)
		require.Len(t, res.Results, 1)
		assert.Equal(t, eventlog.StatusPublished, res.Status)
		switch res.Results[0].Outcome {
		case shared.OutcomeProcessed:
			processed++
		case shared.OutcomeSkipped:
			skipped++
			assert.True(t, res.Duplicate)
		}
	}
	assert.Equal(t, 1, processed)
	assert.Equal(t, deliveries-1, skipped)
	assert.Equal(t, deliveries-1, env.logs.FilterMessage("duplicate event skipped").Len())

	op, err := env.orders.Get(ctx, env.tenantID, orderID)
	require.NoError(t, err)
	assert.Equal(t, payment.OrderPaymentPaid, op.Status)
	assert.Equal(t, "KRW", op.Currency)
	assert.Equal(t, int64(1), env.commissionCount(t))

	history, err := env.orders.History(ctx, env.tenantID, orderID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "register", history[0].Action)
	assert.Equal(t, "mark_paid", history[1].Action)

	stats, err := env.intake.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats[eventlog.StatusPublished])
}

func TestIdempotentHandler_SkipsInsideWindowAndAfterColdStart(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	orderID := env.registerOrder(t, "5000")
	evt := env.completed(orderID, "pay-2", "5000", true)

	first, err := env.idempotent.Process(ctx, evt)
	require.NoError(t, err)
	assert.Equal(t, shared.OutcomeProcessed, first.Outcome)

	second, err := env.idempotent.Process(ctx, evt)
	require.NoError(t, err)
	assert.Equal(t, shared.OutcomeSkipped, second.Outcome)
	assert.True(t, strings.HasPrefix(second.Reason, "duplicate delivery"))

	coldStart := infraevent.NewIdempotentHandler(env.handler, cache.NewLRUIdempotencyStore(100, time.Hour), zap.NewNop())
	third, err := coldStart.Process(ctx, evt)
	require.NoError(t, err)
	assert.Equal(t, shared.OutcomeSkipped, third.Outcome)
	assert.Contains(t, third.Reason, "already PAID")

	assert.Equal(t, int64(1), env.commissionCount(t))
}

func TestEventHandler_PaymentFailed(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	orderID := env.registerOrder(t, "3000")

	failed := payment.NewPaymentFailedEvent("", env.tenantID, testScope, "pay-3", orderID, "CARD_DECLINED", "insufficient funds")
	res, err := env.intake.Receive(ctx, failed)
	require.NoError(t, err)
	assert.Equal(t, eventlog.StatusPublished, res.Status)
	assert.Equal(t, shared.OutcomeProcessed, res.Results[0].Outcome)

	op, err := env.orders.Get(ctx, env.tenantID, orderID)
	require.NoError(t, err)
	assert.Equal(t, payment.OrderPaymentPending, op.Status)
	assert.True(t, op.LastAttemptFailed)
	assert.Equal(t, 1, op.FailedAttempts)
	assert.Equal(t, "CARD_DECLINED", op.LastFailureCode)

	res, err = env.intake.Receive(ctx, env.completed(orderID, "pay-4", "3000", false))
	require.NoError(t, err)
	assert.Equal(t, shared.OutcomeProcessed, res.Results[0].Outcome)

	late := payment.NewPaymentFailedEvent("", env.tenantID, testScope, "pay-5", orderID, "TIMEOUT", "gateway timeout")
	res, err = env.intake.Receive(ctx, late)
	require.NoError(t, err)
	assert.Equal(t, shared.OutcomeSkipped, res.Results[0].Outcome)

	op, err = env.orders.Get(ctx, env.tenantID, orderID)
	require.NoError(t, err)
	assert.Equal(t, payment.OrderPaymentPaid, op.Status)
	assert.False(t, op.LastAttemptFailed)
	assert.Equal(t, 1, op.FailedAttempts)
}

func TestEventHandler_NonPayableOrders(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	t.Run("cancelled order fails with the reason", func(t *testing.T) {
		orderID := env.registerOrder(t, "1000")
		_, err := env.orders.Cancel(ctx, env.tenantID, orderID, "customer request", "support")
		require.NoError(t, err)

		res, err := env.intake.Receive(ctx, env.completed(orderID, "pay-6", "1000", false))
		require.NoError(t, err)
		assert.Equal(t, eventlog.StatusFailed, res.Status)
		assert.Equal(t, shared.OutcomeFailed, res.Results[0].Outcome)
		assert.Contains(t, res.Results[0].Reason, "CANCELLED")
	})

	t.Run("amount mismatch fails without paying", func(t *testing.T) {
		orderID := env.registerOrder(t, "1000")

		res, err := env.intake.Receive(ctx, env.completed(orderID, "pay-7", "999", false))
		require.NoError(t, err)
		assert.Equal(t, shared.OutcomeFailed, res.Results[0].Outcome)
		assert.Contains(t, res.Results[0].Reason, "does not match")

		op, err := env.orders.Get(ctx, env.tenantID, orderID)
		require.NoError(t, err)
		assert.Equal(t, payment.OrderPaymentPending, op.Status)
	})
}

func TestIntakeService_ReplayAfterOrderRegistered(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	orderID := uuid.New()
	evt := env.completed(orderID, "pay-8", "2500", false)

	res, err := env.intake.Receive(ctx, evt)
	require.NoError(t, err)
	assert.Equal(t, eventlog.StatusFailed, res.Status)
	assert.Contains(t, res.Results[0].Reason, "not registered")

	_, err = env.orders.Register(ctx, RegisterOrderInput{
		TenantID: env.tenantID, OrderID: orderID, Amount: decimal.NewFromInt(2500), Currency: "KRW", Actor: "checkout",
	})
	require.NoError(t, err)

	// the Failed outcome keeps the key in the dedup window, so a plain redelivery is skipped
	res, err = env.intake.Receive(ctx, evt)
	require.NoError(t, err)
	assert.Equal(t, shared.OutcomeSkipped, res.Results[0].Outcome)
	assert.Equal(t, eventlog.StatusFailed, res.Status)

	replay, err := env.intake.Replay(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, ReplayResult{Replayed: 1, Published: 1}, replay)

	op, err := env.orders.Get(ctx, env.tenantID, orderID)
	require.NoError(t, err)
	assert.Equal(t, payment.OrderPaymentPaid, op.Status)

	replay, err = env.intake.Replay(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, ReplayResult{}, replay)
}

func TestIntakeService_UnknownScope(t *testing.T) {
	env := newTestEnv(t)
	orderID := env.registerOrder(t, "1000")
	evt := payment.NewPaymentCompletedEvent("up-1", env.tenantID, "marketplace", "pay-9", "tx-9", orderID,
		decimal.NewFromInt(1000), "card", env.clock.Now(), nil)

	res, err := env.intake.Receive(context.Background(), evt)
	require.NoError(t, err)
	assert.Equal(t, eventlog.StatusFailed, res.Status)
	assert.Equal(t, "up-1:"+orderID.String(), res.DedupKey)

	op, err := env.orders.Get(context.Background(), env.tenantID, orderID)
	require.NoError(t, err)
	assert.Equal(t, payment.OrderPaymentPending, op.Status)
}
