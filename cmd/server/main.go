package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/Renagang21/o4o-platform-sub111/docs"
	appapproval "github.com/Renagang21/o4o-platform-sub111/internal/application/approval"
	appcommission "github.com/Renagang21/o4o-platform-sub111/internal/application/commission"
	apppayment "github.com/Renagang21/o4o-platform-sub111/internal/application/payment"
	appsettlement "github.com/Renagang21/o4o-platform-sub111/internal/application/settlement"
	"github.com/Renagang21/o4o-platform-sub111/internal/application/transition"
	"github.com/Renagang21/o4o-platform-sub111/internal/domain/commission"
	"github.com/Renagang21/o4o-platform-sub111/internal/domain/settlement"
	"github.com/Renagang21/o4o-platform-sub111/internal/infrastructure/cache"
	"github.com/Renagang21/o4o-platform-sub111/internal/infrastructure/config"
	"github.com/Renagang21/o4o-platform-sub111/internal/infrastructure/event"
	"github.com/Renagang21/o4o-platform-sub111/internal/infrastructure/logger"
	"github.com/Renagang21/o4o-platform-sub111/internal/infrastructure/persistence"
	"github.com/Renagang21/o4o-platform-sub111/internal/infrastructure/scheduler"
	"github.com/Renagang21/o4o-platform-sub111/internal/infrastructure/sink"
	"github.com/Renagang21/o4o-platform-sub111/internal/infrastructure/telemetry"
	"github.com/Renagang21/o4o-platform-sub111/internal/interfaces/http/handler"
	"github.com/Renagang21/o4o-platform-sub111/internal/interfaces/http/middleware"
	"github.com/Renagang21/o4o-platform-sub111/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const version = "1.0.0"

//	@title			Commission & Settlement Ledger API
//	@version		1.0
//	@description	Commission ledger, settlement batches, payment event intake and guarded approval workflows.

//	@contact.name	Platform Team
//	@contact.url	https://github.com/Renagang21/o4o-platform-sub111

//	@BasePath	/api/v1

//	@securityDefinitions.apikey	TenantHeader
//	@in							header
//	@name						X-Tenant-ID
//	@description				Tenant UUID; every /api/v1 route requires it. X-Actor names the caller in audit rows.

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	if err := run(cfg, log); err != nil {
		log.Fatal("Ledger service stopped with error", zap.Error(err))
	}
}

func run(cfg *config.Config, baseLog *zap.Logger) error {
	ctx := context.Background()

	telemetryCfg := telemetry.Config{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		SamplingRatio:     cfg.Telemetry.SamplingRatio,
		ServiceName:       cfg.Telemetry.ServiceName,
		ServiceVersion:    version,
		Insecure:          cfg.Telemetry.Insecure,
	}

	// Log records are mirrored to the collector when telemetry is on
	logProvider, err := telemetry.NewLoggerProvider(ctx, telemetryCfg)
	if err != nil {
		return err
	}
	log := logProvider.Bridge(baseLog, logger.ParseLevel(cfg.Log.Level))

	tracerProvider, err := telemetry.NewTracerProvider(ctx, telemetryCfg, log)
	if err != nil {
		return err
	}

	log.Info("Starting ledger service",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.Bool("telemetry", cfg.Telemetry.Enabled),
	)

	db, err := persistence.NewDatabase(&cfg.Database, persistence.Options{
		Logger: logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level), cfg.Telemetry.DBSlowQueryThresh),
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	if err := telemetry.RegisterDBTracing(db.DB, telemetry.DBTracingConfig{
		Enabled:    cfg.Telemetry.Enabled && cfg.Telemetry.DBTraceEnabled,
		DBName:     cfg.Database.DBName,
		LogFullSQL: cfg.Telemetry.DBLogFullSQL,
	}); err != nil {
		return err
	}
	metrics := telemetry.NewLedgerMetrics(cfg.Metrics.Namespace)
	if err := telemetry.RegisterDBMetrics(db.DB, metrics, cfg.Metrics.Namespace, telemetry.DBMetricsConfig{
		Enabled:            cfg.Metrics.Enabled,
		DBName:             cfg.Database.DBName,
		SlowQueryThreshold: cfg.Telemetry.DBSlowQueryThresh,
	}); err != nil {
		return err
	}
	if cfg.Database.AutoMigrate {
		if err := db.AutoMigrate(); err != nil {
			return err
		}
		log.Info("Database schema migrated")
	}
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	log.Info("Database connected successfully")

	// Repositories
	txManager := persistence.NewGormTxManager(db.DB)
	auditRepo := persistence.NewGormAuditLogRepository(db.DB)
	commissionRepo := persistence.NewGormCommissionRepository(db.DB)
	policyRepo := persistence.NewGormPolicyRepository(db.DB)
	batchRepo := persistence.NewGormBatchRepository(db.DB)
	orderRepo := persistence.NewGormOrderPaymentRepository(db.DB)
	eventLogRepo := persistence.NewGormEventLogRepository(db.DB)

	// Event bus and serialization
	bus := event.NewInMemoryEventBus(log)
	serializer := event.NewEventSerializer()
	event.RegisterLedgerEvents(serializer)

	dedupStore, err := cache.NewIdempotencyStoreFactory(cfg.Redis, cfg.Ledger,
		cache.WithLogger(log),
		cache.WithInMemoryFallback(cfg.App.Env != "production"),
	).CreateStore(ctx)
	if err != nil {
		return err
	}

	// Application services
	engine := transition.NewEngine(txManager, auditRepo, log, transition.WithMetrics(metrics))
	rateCaps := commission.RateCaps(cfg.Policy.RateCaps)
	commissionService := appcommission.NewService(txManager, commissionRepo, policyRepo,
		appcommission.NewBatchAssigner(batchRepo), engine, bus, rateCaps, log,
		appcommission.WithConfirmMetrics(metrics))
	policyService := appcommission.NewPolicyService(policyRepo, rateCaps, cfg.Ledger.DefaultHoldDays, log)
	settlementService := appsettlement.NewService(batchRepo, commissionRepo, persistence.NewGormSummaryReader(db.DB),
		engine, bus, log)
	authorizationService := appapproval.NewAuthorizationService(persistence.NewGormAuthorizationRepository(db.DB),
		engine, cfg.Approval.CooldownDays, log)
	catalogService := appapproval.NewCatalogService(persistence.NewGormCatalogItemRepository(db.DB), engine, log)
	orderService := apppayment.NewOrderPaymentService(orderRepo, engine, log, time.Now)
	intakeService := apppayment.NewIntakeService(eventLogRepo, bus, serializer, dedupStore, log, time.Now)

	// Payment events of this service's scope are processed once per dedup key
	bus.SubscribeScoped(cfg.Ledger.EventScope, event.NewIdempotentHandler(
		apppayment.NewEventHandler(txManager, orderRepo, engine, commissionService, log, time.Now),
		dedupStore, log,
		event.WithOutcomeRecorder(metrics),
	))

	var sinkHandler *appsettlement.SinkHandler
	if cfg.Sink.Enabled {
		adapter, err := sink.NewHTTPAdapter(cfg.Sink)
		if err != nil {
			return err
		}
		sinkHandler = appsettlement.NewSinkHandler(adapter, persistence.NewGormSinkRecordRepository(db.DB),
			settlement.VoucherAccounts{
				PurchaseAccount: cfg.Sink.PurchaseAccount,
				PaymentAccount:  cfg.Sink.PaymentAccount,
			}, log, appsettlement.WithSinkMetrics(metrics),
			appsettlement.WithPendingStaleAfter(cfg.Sink.PendingStaleAfter))
		bus.Subscribe(sinkHandler)
		log.Info("External accounting sink enabled", zap.String("base_url", cfg.Sink.BaseURL))
	}

	if cfg.Kafka.Enabled {
		forwarder := event.NewKafkaForwarder(event.NewKafkaWriter(cfg.Kafka, log), serializer, cfg.Kafka.WriteTimeout, log)
		defer func() {
			if err := forwarder.Close(); err != nil {
				log.Error("Error closing kafka writer", zap.Error(err))
			}
		}()
		bus.Subscribe(forwarder)
		log.Info("Settlement events forwarded to kafka",
			zap.Strings("brokers", cfg.Kafka.Brokers),
			zap.String("topic", cfg.Kafka.Topic),
		)
	}

	if err := bus.Start(ctx); err != nil {
		return err
	}

	// Background jobs
	var triggers []*scheduler.IntervalTrigger
	if cfg.Ledger.ConfirmEnabled {
		trigger, err := scheduler.NewIntervalTrigger(scheduler.IntervalTriggerConfig{
			Name:       "commission-confirm",
			Interval:   cfg.Ledger.ConfirmInterval,
			RunOnStart: true,
		}, scheduler.TaskFunc(func(ctx context.Context) error {
			_, err := commissionService.ConfirmEligible(ctx, cfg.Ledger.ConfirmBatchSize)
			return err
		}), log)
		if err != nil {
			return err
		}
		triggers = append(triggers, trigger)
	}
	if sinkHandler != nil {
		trigger, err := scheduler.NewIntervalTrigger(scheduler.IntervalTriggerConfig{
			Name:     "sink-retry",
			Interval: cfg.Sink.RetryInterval,
		}, scheduler.TaskFunc(func(ctx context.Context) error {
			_, err := sinkHandler.RetryFailed(ctx, cfg.Ledger.ConfirmBatchSize)
			return err
		}), log)
		if err != nil {
			return err
		}
		triggers = append(triggers, trigger)
	}
	for _, trigger := range triggers {
		if err := trigger.Start(ctx); err != nil {
			return err
		}
	}

	// HTTP
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()

	ginEngine := gin.New()
	if err := ginEngine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
		return err
	}

	corsCfg := middleware.DefaultCORSConfig()
	corsCfg.AllowOrigins = cfg.HTTP.CORSOrigins
	ginEngine.Use(
		logger.Recovery(log),
		middleware.Tracing(middleware.TracingConfig{
			ServiceName: cfg.Telemetry.ServiceName,
			Enabled:     cfg.Telemetry.Enabled,
		}),
		logger.GinMiddleware(log),
		middleware.SpanAttributes(),
		middleware.HTTPMetrics(metrics),
		middleware.CORS(corsCfg),
		middleware.Secure(),
		middleware.BodyLimit(cfg.HTTP.MaxBodySize),
	)

	var limiter *middleware.RateLimiter
	if cfg.HTTP.RateLimit > 0 {
		limiter = middleware.NewRateLimiter(cfg.HTTP.RateLimit, cfg.HTTP.RateLimitWindow)
	}

	systemHandler := handler.NewSystemHandler(cfg.App.Name, version, sqlDB)
	opts := []router.RouterOption{
		router.WithAPIMiddleware(
			middleware.Tenant(middleware.DefaultTenantConfig()),
			middleware.RateLimit(limiter),
		),
		router.WithRoute(http.MethodGet, "/health", systemHandler.Health),
		router.WithRoute(http.MethodGet, "/info", systemHandler.GetSystemInfo),
	}
	if cfg.Metrics.Enabled {
		opts = append(opts, router.WithHandler(http.MethodGet, cfg.Metrics.Path, metrics.Handler()))
	}
	opts = append(opts, router.WithRoute(http.MethodGet, "/swagger/*any",
		middleware.SwaggerProtection(middleware.SwaggerConfig{
			Enabled:    cfg.Swagger.Enabled,
			AllowedIPs: cfg.Swagger.AllowedIPs,
		}),
		ginSwagger.WrapHandler(swaggerFiles.Handler),
	))

	r := router.NewRouter(ginEngine, opts...)
	r.Register(handler.NewCommissionHandler(commissionService, policyService).Routes()...)
	r.Register(handler.NewSettlementHandler(settlementService, sinkHandler).Routes()...)
	r.Register(handler.NewApprovalHandler(authorizationService, catalogService).Routes()...)
	r.Register(handler.NewPaymentHandler(orderService, intakeService, cfg.Ledger.EventScope).Routes()...)
	r.Register(handler.NewTransitionHandler(engine).Routes()...)
	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        ginEngine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-quit:
		log.Info("Shutting down server...", zap.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("Server failed", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}
	for _, trigger := range triggers {
		if err := trigger.Stop(shutdownCtx); err != nil {
			log.Warn("Background job did not stop cleanly", zap.Error(err))
		}
	}
	if err := bus.Stop(shutdownCtx); err != nil {
		log.Warn("Event bus did not stop cleanly", zap.Error(err))
	}
	if err := dedupStore.Close(); err != nil {
		log.Warn("Error closing dedup store", zap.Error(err))
	}
	if err := tracerProvider.Shutdown(shutdownCtx); err != nil {
		log.Warn("Error flushing traces", zap.Error(err))
	}
	if err := logProvider.Shutdown(shutdownCtx); err != nil {
		log.Warn("Error flushing logs", zap.Error(err))
	}

	log.Info("Server exited gracefully")
	return nil
}
