package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	appapproval "github.com/Renagang21/o4o-platform-sub111/internal/application/approval"
	appcommission "github.com/Renagang21/o4o-platform-sub111/internal/application/commission"
	apppayment "github.com/Renagang21/o4o-platform-sub111/internal/application/payment"
	appsettlement "github.com/Renagang21/o4o-platform-sub111/internal/application/settlement"
	"github.com/Renagang21/o4o-platform-sub111/internal/application/transition"
	"github.com/Renagang21/o4o-platform-sub111/internal/domain/commission"
	"github.com/Renagang21/o4o-platform-sub111/internal/infrastructure/cache"
	infraevent "github.com/Renagang21/o4o-platform-sub111/internal/infrastructure/event"
	"github.com/Renagang21/o4o-platform-sub111/internal/infrastructure/persistence"
	"github.com/Renagang21/o4o-platform-sub111/internal/infrastructure/persistence/models"
	"github.com/Renagang21/o4o-platform-sub111/internal/interfaces/http/dto"
	"github.com/Renagang21/o4o-platform-sub111/internal/interfaces/http/middleware"
	"github.com/Renagang21/o4o-platform-sub111/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const testScope = "ledger"

var setupValidatorOnce sync.Once

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// envelope mirrors dto.Response with the payload left raw for typed decoding
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *dto.ErrorInfo  `json:"error"`
	Meta    *dto.Meta       `json:"meta"`
}

type apiResponse struct {
	Code int
	Body envelope
}

func (r apiResponse) decode(t *testing.T, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(r.Body.Data, out))
}

type testAPI struct {
	engine   *gin.Engine
	clock    *testClock
	tenantID uuid.UUID
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)
	setupValidatorOnce.Do(middleware.SetupValidator)

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

	clock := &testClock{now: time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)}
	nop := zap.NewNop()

	txManager := persistence.NewGormTxManager(db)
	engine := transition.NewEngine(txManager, persistence.NewGormAuditLogRepository(db), nop, transition.WithClock(clock.Now))
	commissionRepo := persistence.NewGormCommissionRepository(db)
	policyRepo := persistence.NewGormPolicyRepository(db)
	batchRepo := persistence.NewGormBatchRepository(db)
	orderRepo := persistence.NewGormOrderPaymentRepository(db)

	commissions := appcommission.NewService(txManager, commissionRepo, policyRepo, appcommission.NewBatchAssigner(batchRepo),
		engine, nil, commission.RateCaps{}, nop, appcommission.WithClock(clock.Now))
	policies := appcommission.NewPolicyService(policyRepo, commission.RateCaps{}, 7, nop)
	settlements := appsettlement.NewService(batchRepo, commissionRepo, persistence.NewGormSummaryReader(db), engine, nil, nop,
		appsettlement.WithClock(clock.Now))
	authorizations := appapproval.NewAuthorizationService(persistence.NewGormAuthorizationRepository(db), engine, 30, nop,
		appapproval.WithClock(clock.Now))
	catalog := appapproval.NewCatalogService(persistence.NewGormCatalogItemRepository(db), engine, nop,
		appapproval.WithClock(clock.Now))
	orders := apppayment.NewOrderPaymentService(orderRepo, engine, nop, clock.Now)

	store := cache.NewLRUIdempotencyStore(100, time.Hour)
	bus := infraevent.NewInMemoryEventBus(nop)
	bus.SubscribeScoped(testScope, infraevent.NewIdempotentHandler(
		apppayment.NewEventHandler(txManager, orderRepo, engine, commissions, nop, clock.Now), store, nop))
	serializer := infraevent.NewEventSerializer()
	infraevent.RegisterLedgerEvents(serializer)
	intake := apppayment.NewIntakeService(persistence.NewGormEventLogRepository(db), bus, serializer, store, nop, clock.Now)

	paymentHandler := NewPaymentHandler(orders, intake, testScope)
	paymentHandler.now = clock.Now

	ginEngine := gin.New()
	r := router.NewRouter(ginEngine,
		router.WithAPIMiddleware(middleware.Tenant(middleware.DefaultTenantConfig())),
		router.WithRoute(http.MethodGet, "/health", NewSystemHandler("ledger", "test", sqlDB).Health),
	)
	r.Register(NewCommissionHandler(commissions, policies).Routes()...)
	r.Register(NewSettlementHandler(settlements, nil).Routes()...)
	r.Register(NewApprovalHandler(authorizations, catalog).Routes()...)
	r.Register(paymentHandler.Routes()...)
	r.Register(NewTransitionHandler(engine).Routes()...)
	r.Setup()

	return &testAPI{engine: ginEngine, clock: clock, tenantID: uuid.New()}
}

func (a *testAPI) do(t *testing.T, method, path string, body any) apiResponse {
	t.Helper()
	return a.doAs(t, a.tenantID, method, path, body)
}

func (a *testAPI) doAs(t *testing.T, tenantID uuid.UUID, method, path string, body any) apiResponse {
	t.Helper()
	return a.doAsActor(t, tenantID, "ops@example.com", method, path, body)
}

func (a *testAPI) doAsActor(t *testing.T, tenantID uuid.UUID, actor, method, path string, body any) apiResponse {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, "/api/v1"+path, reader)
	req.Header.Set("Content-Type", "application/json")
	if tenantID != uuid.Nil {
		req.Header.Set(middleware.TenantHeaderKey, tenantID.String())
	}
	req.Header.Set(middleware.ActorHeaderKey, actor)

	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)

	resp := apiResponse{Code: w.Code}
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp.Body), w.Body.String())
	}
	return resp
}

func (a *testAPI) createPolicy(t *testing.T) uuid.UUID {
	t.Helper()
	resp := a.do(t, http.MethodPost, "/policies", map[string]any{
		"name":             "referral",
		"policy_type":      "standard",
		"calculation_type": "RATE",
		"rate_percent":     "10",
		"hold_days":        7,
	})
	require.Equal(t, http.StatusCreated, resp.Code)
	var policy dto.PolicyResponse
	resp.decode(t, &policy)
	return policy.ID
}

func (a *testAPI) createCommission(t *testing.T, policyID, beneficiaryID uuid.UUID, conversionID string) dto.CommissionResponse {
	t.Helper()
	resp := a.do(t, http.MethodPost, "/commissions", map[string]any{
		"conversion_id":    conversionID,
		"beneficiary_id":   beneficiaryID.String(),
		"beneficiary_type": "PARTNER",
		"order_id":         uuid.New().String(),
		"order_amount":     "1000",
		"currency":         "krw",
		"policy_id":        policyID.String(),
	})
	require.Equal(t, http.StatusCreated, resp.Code)
	var created dto.CommissionResponse
	resp.decode(t, &created)
	return created
}
