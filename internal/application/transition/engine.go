package transition

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/Renagang21/o4o-platform-sub111/internal/domain/shared"
	"github.com/Renagang21/o4o-platform-sub111/internal/infrastructure/logger"
	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
)

// Metrics receives transition outcomes
type Metrics interface {
	RecordTransition(entityType, action string)
	RecordRejection(entityType, action, code string)
}

// Change describes one attempted guarded transition
type Change struct {
	EntityType string
	Action     string
	Actor      string
	Reason     string
}

// Engine applies guarded transitions: it runs the entity's own check-and-mutate,
// persists the result and appends the audit row as one atomic unit.
type Engine struct {
	txManager shared.TransactionManager
	auditRepo shared.AuditLogRepository
	metrics   Metrics
	logger    *zap.Logger
	now       func() time.Time

	mu     sync.RWMutex
	tables map[string]shared.TransitionIntrospector
}

// Option configures an Engine
type Option func(*Engine)

// WithClock overrides the clock used for audit timestamps
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// WithMetrics sets the metrics sink
func WithMetrics(m Metrics) Option {
	return func(e *Engine) {
		e.metrics = m
	}
}

// NewEngine creates a transition engine
func NewEngine(txManager shared.TransactionManager, auditRepo shared.AuditLogRepository, logger *zap.Logger, opts ...Option) *Engine {
	e := &Engine{
		txManager: txManager,
		auditRepo: auditRepo,
		logger:    logger,
		now:       time.Now,
		tables:    make(map[string]shared.TransitionIntrospector),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Register exposes a transition table for introspection
func (e *Engine) Register(tables ...shared.TransitionIntrospector) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, t := range tables {
		e.tables[t.EntityType()] = t
	}
}

// EntityTypes lists the registered guarded entity types
func (e *Engine) EntityTypes() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make([]string, 0, len(e.tables))
	for k := range e.tables {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// AllowedTransitions returns the statuses reachable from status for entityType
func (e *Engine) AllowedTransitions(entityType, status string) ([]string, error) {
	table, err := e.table(entityType)
	if err != nil {
		return nil, err
	}
	return table.AllowedFrom(status)
}

// States lists every status of entityType
func (e *Engine) States(entityType string) ([]string, error) {
	table, err := e.table(entityType)
	if err != nil {
		return nil, err
	}
	return table.States(), nil
}

func (e *Engine) table(entityType string) (shared.TransitionIntrospector, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	table, ok := e.tables[entityType]
	if !ok {
		return nil, shared.NewValidationError("entity_type", fmt.Sprintf("unknown guarded entity type %q", entityType))
	}
	return table, nil
}

// History lists every recorded transition of one entity, oldest first
func (e *Engine) History(ctx context.Context, entityType string, entityID uuid.UUID) ([]shared.AuditEntry, error) {
	if _, err := e.table(entityType); err != nil {
		return nil, err
	}
	return e.auditRepo.ListByEntity(ctx, entityType, entityID)
}

// Execute runs mutate against entity, then persist and the audit append inside one
// transaction. A rejected mutate is logged and counted; nothing is written for it.
func Execute[T shared.Guarded](ctx context.Context, e *Engine, entity T, change Change, mutate func(T) error, persist func(context.Context, T) error) error {
	log := logger.For(ctx, e.logger)
	before := entity.Snapshot()
	from := entity.StatusString()

	if err := mutate(entity); err != nil {
		e.reject(log, entity, change, from, err)
		return err
	}
	return e.commit(ctx, log, entity, change, from, before, func(ctx context.Context) error {
		return persist(ctx, entity)
	})
}

// Record persists a newly created entity and writes its creation audit row.
// The row has an empty from-status and no before snapshot.
func Record[T shared.Guarded](ctx context.Context, e *Engine, entity T, change Change, persist func(context.Context, T) error) error {
	log := logger.For(ctx, e.logger)
	return e.commit(ctx, log, entity, change, "", nil, func(ctx context.Context) error {
		return persist(ctx, entity)
	})
}

func (e *Engine) commit(ctx context.Context, log *zap.Logger, entity shared.Guarded, change Change, from string, before map[string]any, persist func(context.Context) error) error {
	entry := e.auditEntry(ctx, entity, change, from, before)
	err := e.txManager.InTransaction(ctx, func(ctx context.Context) error {
		if err := persist(ctx); err != nil {
			return err
		}
		return e.auditRepo.Append(ctx, entry)
	})
	if err != nil {
		e.reject(log, entity, change, from, err)
		return err
	}

	if e.metrics != nil {
		e.metrics.RecordTransition(change.EntityType, change.Action)
	}
	log.Info("guarded transition applied",
		zap.String("entity_type", change.EntityType),
		zap.String("entity_id", entity.GetID().String()),
		zap.String("action", change.Action),
		zap.String("from", from),
		zap.String("to", entity.StatusString()),
		zap.String("actor", change.Actor),
	)
	return nil
}

func (e *Engine) auditEntry(ctx context.Context, entity shared.Guarded, change Change, from string, before map[string]any) *shared.AuditEntry {
	meta := shared.RequestMetaFrom(ctx)
	correlationID := meta.RequestID
	if correlationID == "" {
		correlationID = ulid.Make().String()
	}
	return &shared.AuditEntry{
		ID:            uuid.New(),
		TenantID:      entity.GetTenantID(),
		EntityType:    change.EntityType,
		EntityID:      entity.GetID(),
		Action:        change.Action,
		FromStatus:    from,
		ToStatus:      entity.StatusString(),
		EntityVersion: entity.GetVersion(),
		Actor:         change.Actor,
		Reason:        change.Reason,
		Before:        before,
		After:         entity.Snapshot(),
		IPAddress:     meta.IPAddress,
		UserAgent:     meta.UserAgent,
		CorrelationID: correlationID,
		OccurredAt:    e.now(),
	}
}

func (e *Engine) reject(log *zap.Logger, entity shared.Guarded, change Change, from string, err error) {
	code := "INTERNAL"
	fields := []zap.Field{
		zap.String("entity_type", change.EntityType),
		zap.String("entity_id", entity.GetID().String()),
		zap.String("action", change.Action),
		zap.String("current", from),
		zap.String("actor", change.Actor),
	}
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		code = domainErr.Code
		if v, ok := domainErr.Detail("attempted"); ok {
			fields = append(fields, zap.Any("attempted", v))
		}
		if v, ok := domainErr.Detail("allowed"); ok {
			fields = append(fields, zap.Any("allowed", v))
		}
	}
	fields = append(fields, zap.String("code", code), zap.Error(err))

	if e.metrics != nil {
		e.metrics.RecordRejection(change.EntityType, change.Action, code)
	}
	if code == "INTERNAL" {
		log.Error("guarded transition failed", fields...)
		return
	}
	log.Warn("guarded transition rejected", fields...)
}
