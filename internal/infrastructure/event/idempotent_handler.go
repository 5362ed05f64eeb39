package event

import (
	"context"
	"sync/atomic"

	"github.com/Renagang21/o4o-platform-sub111/internal/domain/shared"
	"go.uber.org/zap"
)

// IdempotencyMetrics tracks idempotency-related statistics
type IdempotencyMetrics struct {
	// EventsProcessed is the total number of events processed (first time)
	EventsProcessed atomic.Int64

	// EventsDuplicate is the total number of duplicate events detected
	EventsDuplicate atomic.Int64

	// EventsFailed is the total number of events whose handler returned an error
	EventsFailed atomic.Int64
}

// Stats returns a snapshot of the current metrics
func (m *IdempotencyMetrics) Stats() IdempotencyStats {
	return IdempotencyStats{
		EventsProcessed: m.EventsProcessed.Load(),
		EventsDuplicate: m.EventsDuplicate.Load(),
		EventsFailed:    m.EventsFailed.Load(),
	}
}

// IdempotencyStats is a snapshot of idempotency metrics
type IdempotencyStats struct {
	EventsProcessed int64 `json:"events_processed"`
	EventsDuplicate int64 `json:"events_duplicate"`
	EventsFailed    int64 `json:"events_failed"`
}

// OutcomeRecorder receives handling outcomes, e.g. the Prometheus ledger metrics
type OutcomeRecorder interface {
	RecordEvent(eventType, outcome string)
	RecordDedupSkip(eventType string)
}

// IdempotentHandler wraps an EventHandler so each dedup key is applied once.
// The key comes from shared.Deduplicatable when the event implements it, else the event id.
type IdempotentHandler struct {
	handler  shared.EventHandler
	store    shared.IdempotencyStore
	config   shared.IdempotencyConfig
	logger   *zap.Logger
	metrics  *IdempotencyMetrics
	recorder OutcomeRecorder
}

// IdempotentHandlerOption is a functional option for IdempotentHandler
type IdempotentHandlerOption func(*IdempotentHandler)

// WithIdempotencyConfig sets the idempotency configuration
func WithIdempotencyConfig(config shared.IdempotencyConfig) IdempotentHandlerOption {
	return func(h *IdempotentHandler) {
		h.config = config
	}
}

// WithIdempotencyMetrics sets the metrics collector
func WithIdempotencyMetrics(metrics *IdempotencyMetrics) IdempotentHandlerOption {
	return func(h *IdempotentHandler) {
		h.metrics = metrics
	}
}

// WithOutcomeRecorder reports every outcome to recorder
func WithOutcomeRecorder(recorder OutcomeRecorder) IdempotentHandlerOption {
	return func(h *IdempotentHandler) {
		h.recorder = recorder
	}
}

// NewIdempotentHandler creates a new idempotent handler wrapper
func NewIdempotentHandler(
	handler shared.EventHandler,
	store shared.IdempotencyStore,
	logger *zap.Logger,
	opts ...IdempotentHandlerOption,
) *IdempotentHandler {
	h := &IdempotentHandler{
		handler: handler,
		store:   store,
		config:  shared.DefaultIdempotencyConfig(),
		logger:  logger,
		metrics: &IdempotencyMetrics{},
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// EventTypes returns the event types this handler is interested in
func (h *IdempotentHandler) EventTypes() []string {
	return h.handler.EventTypes()
}

// Handle processes the event with idempotency checking
func (h *IdempotentHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	_, err := h.Process(ctx, event)
	return err
}

// Process applies the event unless its dedup key is inside the retention window.
// A redelivery is logged and reported as Skipped. When the wrapped handler errors
// the key is released so the next delivery retries; a Failed outcome keeps it.
func (h *IdempotentHandler) Process(ctx context.Context, event shared.DomainEvent) (shared.HandleResult, error) {
	if !h.config.Enabled {
		return h.process(ctx, event)
	}

	key := DedupKeyOf(event)

	isNew, err := h.store.MarkProcessed(ctx, key, h.config.TTL)
	if err != nil {
		// The durable event log and state checks still guard the ledger
		h.logger.Warn("failed to check idempotency, processing anyway",
			zap.String("dedup_key", key),
			zap.String("event_type", event.EventType()),
			zap.Error(err),
		)
	} else if !isNew {
		h.metrics.EventsDuplicate.Add(1)
		h.record(event.EventType(), shared.OutcomeSkipped)
		if h.recorder != nil {
			h.recorder.RecordDedupSkip(event.EventType())
		}
		h.logger.Info("duplicate event skipped",
			zap.String("dedup_key", key),
			zap.String("event_id", event.EventID().String()),
			zap.String("event_type", event.EventType()),
		)
		return shared.Skipped("duplicate delivery of " + key), nil
	}

	result, err := h.process(ctx, event)
	if err != nil {
		h.metrics.EventsFailed.Add(1)
		if ferr := h.store.Forget(ctx, key); ferr != nil {
			h.logger.Warn("failed to release dedup key",
				zap.String("dedup_key", key),
				zap.Error(ferr),
			)
		}
		h.logger.Error("event handler failed",
			zap.String("dedup_key", key),
			zap.String("event_type", event.EventType()),
			zap.Error(err),
		)
		return shared.HandleResult{}, err
	}

	h.metrics.EventsProcessed.Add(1)
	h.record(event.EventType(), result.Outcome)
	h.logger.Debug("event handled",
		zap.String("dedup_key", key),
		zap.String("event_type", event.EventType()),
		zap.String("outcome", string(result.Outcome)),
		zap.String("reason", result.Reason),
	)
	return result, nil
}

func (h *IdempotentHandler) process(ctx context.Context, event shared.DomainEvent) (shared.HandleResult, error) {
	if rh, ok := h.handler.(shared.ResultHandler); ok {
		return rh.Process(ctx, event)
	}
	if err := h.handler.Handle(ctx, event); err != nil {
		return shared.HandleResult{}, err
	}
	return shared.Processed(), nil
}

func (h *IdempotentHandler) record(eventType string, outcome shared.HandleOutcome) {
	if h.recorder != nil {
		h.recorder.RecordEvent(eventType, string(outcome))
	}
}

// GetMetrics returns the metrics for this handler
func (h *IdempotentHandler) GetMetrics() *IdempotencyMetrics {
	return h.metrics
}

// GetWrappedHandler returns the underlying handler (useful for testing)
func (h *IdempotentHandler) GetWrappedHandler() shared.EventHandler {
	return h.handler
}

// DedupKeyOf returns the redelivery identity of event
func DedupKeyOf(event shared.DomainEvent) string {
	if d, ok := event.(shared.Deduplicatable); ok {
		if key := d.DedupKey(); key != "" {
			return key
		}
	}
	return event.EventID().String()
}

var _ shared.ResultHandler = (*IdempotentHandler)(nil)
