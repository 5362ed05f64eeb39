package approval

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Renagang21/o4o-platform-sub111/internal/application/transition"
	"github.com/Renagang21/o4o-platform-sub111/internal/domain/approval"
	"github.com/Renagang21/o4o-platform-sub111/internal/domain/shared"
	"github.com/Renagang21/o4o-platform-sub111/internal/infrastructure/persistence"
	"github.com/Renagang21/o4o-platform-sub111/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
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

type testEnv struct {
	clock          *fakeClock
	engine         *transition.Engine
	authorizations *AuthorizationService
	catalog        *CatalogService
	tenantID       uuid.UUID
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

	clock := &fakeClock{now: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
	engine := transition.NewEngine(persistence.NewGormTxManager(db), persistence.NewGormAuditLogRepository(db), zap.NewNop(),
		transition.WithClock(clock.Now))
	return &testEnv{
		clock:  clock,
		engine: engine,
		authorizations: NewAuthorizationService(persistence.NewGormAuthorizationRepository(db), engine, 30, zap.NewNop(),
			WithClock(clock.Now)),
		catalog:  NewCatalogService(persistence.NewGormCatalogItemRepository(db), engine, zap.NewNop(), WithClock(clock.Now)),
		tenantID: uuid.New(),
	}
}

func TestAuthorizationService_CooldownScenario(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	in := RequestInput{TenantID: env.tenantID, SellerID: uuid.New(), ProductID: uuid.New(), Actor: "seller-1"}

	a, err := env.authorizations.Request(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, approval.AuthorizationRequested, a.Status)

	_, err = env.authorizations.Reject(ctx, env.tenantID, a.ID, "quota", nil, "supplier-1")
	require.NoError(t, err)

	env.clock.Advance(10 * 24 * time.Hour)
	_, err = env.authorizations.Request(ctx, in)
	require.ErrorIs(t, err, shared.ErrCooldownActive)
	var domainErr *shared.DomainError
	require.True(t, errors.As(err, &domainErr))
	days, ok := domainErr.Detail("days_remaining")
	require.True(t, ok)
	assert.Equal(t, 20, days)

	stored, err := env.authorizations.Get(ctx, env.tenantID, a.ID)
	require.NoError(t, err)
	assert.Equal(t, approval.AuthorizationRejected, stored.Status)

	env.clock.Advance(21 * 24 * time.Hour)
	again, err := env.authorizations.ReRequest(ctx, env.tenantID, a.ID, "seller-1")
	require.NoError(t, err)
	assert.Equal(t, approval.AuthorizationRequested, again.Status)
	assert.Equal(t, 2, again.RequestCount)

	history, err := env.authorizations.History(ctx, env.tenantID, a.ID)
	require.NoError(t, err)
	actions := make([]string, 0, len(history))
	for _, h := range history {
		actions = append(actions, h.Action)
	}
	assert.Equal(t, []string{"request", "reject", "re_request"}, actions)
	assert.Equal(t, "quota", history[1].Reason)
}

func TestAuthorizationService_RevokeIsTerminal(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	in := RequestInput{TenantID: env.tenantID, SellerID: uuid.New(), ProductID: uuid.New(), Actor: "seller-1"}

	a, err := env.authorizations.Request(ctx, in)
	require.NoError(t, err)

	_, err = env.authorizations.Revoke(ctx, env.tenantID, a.ID, "abuse", "admin")
	require.ErrorIs(t, err, shared.ErrInvalidTransition)

	_, err = env.authorizations.Approve(ctx, env.tenantID, a.ID, approval.ApproverSupplier, "supplier-1")
	require.NoError(t, err)
	_, err = env.authorizations.Revoke(ctx, env.tenantID, a.ID, "abuse", "admin")
	require.ErrorIs(t, err, shared.ErrInvalidTransition, "a half-approved request cannot be revoked")
	_, err = env.authorizations.Approve(ctx, env.tenantID, a.ID, approval.ApproverPlatform, "admin")
	require.NoError(t, err)
	_, err = env.authorizations.Revoke(ctx, env.tenantID, a.ID, "", "admin")
	require.ErrorIs(t, err, shared.ErrValidation)
	revoked, err := env.authorizations.Revoke(ctx, env.tenantID, a.ID, "abuse", "admin")
	require.NoError(t, err)
	assert.Equal(t, approval.AuthorizationRevoked, revoked.Status)

	env.clock.Advance(365 * 24 * time.Hour)
	_, err = env.authorizations.Request(ctx, in)
	require.ErrorIs(t, err, shared.ErrInvalidTransition)
	var domainErr *shared.DomainError
	require.True(t, errors.As(err, &domainErr))
	allowed, ok := domainErr.Detail("allowed")
	require.True(t, ok)
	assert.Empty(t, allowed)
}

func TestAuthorizationService_ApprovalNeedsSupplierAndPlatform(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	a, err := env.authorizations.Request(ctx, RequestInput{TenantID: env.tenantID, SellerID: uuid.New(), ProductID: uuid.New(), Actor: "seller-1"})
	require.NoError(t, err)

	first, err := env.authorizations.Approve(ctx, env.tenantID, a.ID, approval.ApproverSupplier, "supplier-1")
	require.NoError(t, err)
	assert.Equal(t, approval.AuthorizationRequested, first.Status)

	stored, err := env.authorizations.Get(ctx, env.tenantID, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "supplier-1", stored.SupplierApprovedBy)
	assert.Equal(t, []approval.ApproverRole{approval.ApproverPlatform}, stored.PendingApprovals())

	_, err = env.authorizations.Approve(ctx, env.tenantID, a.ID, approval.ApproverPlatform, "supplier-1")
	require.ErrorIs(t, err, shared.ErrValidation)
	_, err = env.authorizations.Approve(ctx, env.tenantID, a.ID, approval.ApproverSupplier, "supplier-2")
	require.ErrorIs(t, err, shared.ErrInvalidState)

	approved, err := env.authorizations.Approve(ctx, env.tenantID, a.ID, approval.ApproverPlatform, "admin")
	require.NoError(t, err)
	assert.Equal(t, approval.AuthorizationApproved, approved.Status)

	stored, err = env.authorizations.Get(ctx, env.tenantID, a.ID)
	require.NoError(t, err)
	assert.Equal(t, approval.AuthorizationApproved, stored.Status)
	assert.Equal(t, "supplier-1", stored.SupplierApprovedBy)
	assert.Equal(t, "admin", stored.PlatformApprovedBy)

	history, err := env.authorizations.History(ctx, env.tenantID, a.ID)
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, "approve_supplier", history[1].Action)
	assert.Equal(t, "supplier-1", history[1].Actor)
	assert.Equal(t, "REQUESTED", history[1].ToStatus)
	assert.Equal(t, "approve_platform", history[2].Action)
	assert.Equal(t, "admin", history[2].Actor)
	assert.Equal(t, "REQUESTED", history[2].FromStatus)
	assert.Equal(t, "APPROVED", history[2].ToStatus)
}

func TestAuthorizationService_RejectWithExplicitCooldown(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	a, err := env.authorizations.Request(ctx, RequestInput{TenantID: env.tenantID, SellerID: uuid.New(), ProductID: uuid.New()})
	require.NoError(t, err)

	none := 0
	rejected, err := env.authorizations.Reject(ctx, env.tenantID, a.ID, "incomplete profile", &none, "supplier-1")
	require.NoError(t, err)
	require.NotNil(t, rejected.CooldownUntil)
	assert.Equal(t, env.clock.Now(), *rejected.CooldownUntil)

	_, err = env.authorizations.ReRequest(ctx, env.tenantID, a.ID, "seller-1")
	assert.NoError(t, err)
}

func TestAuthorizationService_FindBySellerAndProduct(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	seller, product := uuid.New(), uuid.New()

	_, err := env.authorizations.FindBySellerAndProduct(ctx, env.tenantID, seller, product)
	require.ErrorIs(t, err, shared.ErrNotFound)

	a, err := env.authorizations.Request(ctx, RequestInput{TenantID: env.tenantID, SellerID: seller, ProductID: product})
	require.NoError(t, err)

	found, err := env.authorizations.FindBySellerAndProduct(ctx, env.tenantID, seller, product)
	require.NoError(t, err)
	assert.Equal(t, a.ID, found.ID)
}

func TestCatalogService_Lifecycle(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	item, err := env.catalog.Create(ctx, CreateCatalogItemInput{
		TenantID:   env.tenantID,
		SupplierID: uuid.New(),
		ProductID:  uuid.New(),
		Name:       "Organic green tea 500g",
		Actor:      "supplier-1",
	})
	require.NoError(t, err)
	assert.Equal(t, approval.CatalogDraft, item.Status)

	_, err = env.catalog.Approve(ctx, env.tenantID, item.ID, "reviewer")
	require.ErrorIs(t, err, shared.ErrInvalidTransition)

	steps := []struct {
		name string
		run  func() (*approval.CatalogItem, error)
		want approval.CatalogItemStatus
	}{
		{"submit", func() (*approval.CatalogItem, error) {
			return env.catalog.Submit(ctx, env.tenantID, item.ID, "supplier-1")
		}, approval.CatalogPending},
		{"reject", func() (*approval.CatalogItem, error) {
			return env.catalog.Reject(ctx, env.tenantID, item.ID, "missing label photo", "reviewer")
		}, approval.CatalogRejected},
		{"return to draft", func() (*approval.CatalogItem, error) {
			return env.catalog.ReturnToDraft(ctx, env.tenantID, item.ID, "supplier-1")
		}, approval.CatalogDraft},
		{"resubmit", func() (*approval.CatalogItem, error) {
			return env.catalog.Submit(ctx, env.tenantID, item.ID, "supplier-1")
		}, approval.CatalogPending},
		{"approve", func() (*approval.CatalogItem, error) {
			return env.catalog.Approve(ctx, env.tenantID, item.ID, "reviewer")
		}, approval.CatalogApproved},
		{"retire", func() (*approval.CatalogItem, error) {
			return env.catalog.Retire(ctx, env.tenantID, item.ID, "discontinued", "supplier-1")
		}, approval.CatalogRetired},
	}
	for _, step := range steps {
		got, err := step.run()
		require.NoError(t, err, step.name)
		assert.Equal(t, step.want, got.Status, step.name)
	}

	_, err = env.catalog.Submit(ctx, env.tenantID, item.ID, "supplier-1")
	assert.ErrorIs(t, err, shared.ErrInvalidTransition)

	history, err := env.catalog.History(ctx, env.tenantID, item.ID)
	require.NoError(t, err)
	assert.Len(t, history, 7)
	assert.Equal(t, "create", history[0].Action)
	assert.Equal(t, "retire", history[6].Action)
	assert.Equal(t, "APPROVED", history[6].FromStatus)
}

func TestEngine_IntrospectsApprovalTables(t *testing.T) {
	env := newTestEnv(t)

	allowed, err := env.engine.AllowedTransitions(approval.EntityTypeAuthorization, "REJECTED")
	require.NoError(t, err)
	assert.Equal(t, []string{"REQUESTED"}, allowed)

	allowed, err = env.engine.AllowedTransitions(approval.EntityTypeCatalogItem, "retired")
	require.NoError(t, err)
	assert.Empty(t, allowed)
}
