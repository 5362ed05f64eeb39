package payment

import (
	"context"
	"errors"
	"time"

	"github.com/Renagang21/o4o-platform-sub111/internal/domain/eventlog"
	"github.com/Renagang21/o4o-platform-sub111/internal/domain/payment"
	"github.com/Renagang21/o4o-platform-sub111/internal/domain/shared"
	"github.com/Renagang21/o4o-platform-sub111/internal/infrastructure/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Dispatcher routes one event to the handlers of its scope and reports their outcomes
type Dispatcher interface {
	Dispatch(ctx context.Context, event shared.DomainEvent) ([]shared.HandleResult, error)
}

// EventCodec turns events into stored payloads and back
type EventCodec interface {
	Serialize(event shared.DomainEvent) ([]byte, error)
	Deserialize(eventType string, data []byte) (shared.DomainEvent, error)
}

// ReceiveResult reports what happened to one received event
type ReceiveResult struct {
	EntryID   uuid.UUID             `json:"entry_id"`
	DedupKey  string                `json:"dedup_key"`
	Status    eventlog.Status       `json:"status"`
	Duplicate bool                  `json:"duplicate"`
	Results   []shared.HandleResult `json:"results"`
}

// ReplayResult summarizes one replay pass over failed entries
type ReplayResult struct {
	Replayed  int `json:"replayed"`
	Published int `json:"published"`
	Failed    int `json:"failed"`
}

// IntakeService records every inbound payment event in the event log before
// dispatching it, and replays the entries whose dispatch failed.
type IntakeService struct {
	entries    eventlog.Repository
	dispatcher Dispatcher
	codec      EventCodec
	dedup      shared.IdempotencyStore
	logger     *zap.Logger
	now        func() time.Time
}

// NewIntakeService creates a new IntakeService
func NewIntakeService(entries eventlog.Repository, dispatcher Dispatcher, codec EventCodec, dedup shared.IdempotencyStore, logger *zap.Logger, now func() time.Time) *IntakeService {
	if now == nil {
		now = time.Now
	}
	return &IntakeService{
		entries:    entries,
		dispatcher: dispatcher,
		codec:      codec,
		dedup:      dedup,
		logger:     logger,
		now:        now,
	}
}

// Receive logs the event and dispatches it. An event whose entry was already
// published is a redelivery: it is logged and reported Skipped without dispatch.
// An entry left pending or failed by an earlier delivery is dispatched again.
func (s *IntakeService) Receive(ctx context.Context, event shared.DomainEvent) (*ReceiveResult, error) {
	log := logger.For(ctx, s.logger)

	entry, err := s.newEntry(event)
	if err != nil {
		return nil, err
	}

	err = s.entries.Create(ctx, entry)
	if errors.Is(err, shared.ErrAlreadyExists) {
		existing, ferr := s.entries.FindByDedupKey(ctx, entry.DedupKey)
		if ferr != nil {
			return nil, ferr
		}
		if existing == nil {
			return nil, err
		}
		if existing.IsPublished() {
			log.Info("duplicate event skipped",
				zap.String("dedup_key", existing.DedupKey),
				zap.String("event_type", event.EventType()),
				zap.String("entry_id", existing.ID.String()),
			)
			return &ReceiveResult{
				EntryID:   existing.ID,
				DedupKey:  existing.DedupKey,
				Status:    existing.Status,
				Duplicate: true,
				Results:   []shared.HandleResult{shared.Skipped("event " + existing.DedupKey + " already published")},
			}, nil
		}
		result, derr := s.dispatch(ctx, log, existing, event)
		if result != nil {
			result.Duplicate = true
		}
		return result, derr
	}
	if err != nil {
		return nil, err
	}

	return s.dispatch(ctx, log, entry, event)
}

// Replay dispatches up to limit failed entries again, oldest first. The dedup key of
// each entry is released first; the handlers still check state before changing it.
func (s *IntakeService) Replay(ctx context.Context, limit int) (ReplayResult, error) {
	log := logger.For(ctx, s.logger)

	filter := eventlog.ListFilter{
		Filter: shared.Filter{Page: 1, PageSize: limit, OrderBy: "received_at", OrderDir: "asc"},
		Status: eventlog.StatusFailed,
	}
	entries, _, err := s.entries.List(ctx, filter)
	if err != nil {
		return ReplayResult{}, err
	}

	var result ReplayResult
	for _, entry := range entries {
		event, err := s.codec.Deserialize(entry.EventType, entry.Payload)
		if err != nil {
			log.Error("cannot decode event log payload",
				zap.String("entry_id", entry.ID.String()),
				zap.String("event_type", entry.EventType),
				zap.Error(err),
			)
			result.Failed++
			continue
		}
		if s.dedup != nil {
			if err := s.dedup.Forget(ctx, entry.DedupKey); err != nil {
				log.Warn("failed to release dedup key before replay",
					zap.String("dedup_key", entry.DedupKey),
					zap.Error(err),
				)
			}
		}

		result.Replayed++
		out, err := s.dispatch(ctx, log, entry, event)
		if err != nil {
			return result, err
		}
		if out.Status == eventlog.StatusPublished {
			result.Published++
		} else {
			result.Failed++
		}
	}

	log.Info("event log replay finished",
		zap.Int("replayed", result.Replayed),
		zap.Int("published", result.Published),
		zap.Int("failed", result.Failed),
	)
	return result, nil
}

// Stats counts event log entries per status
func (s *IntakeService) Stats(ctx context.Context) (map[eventlog.Status]int64, error) {
	return s.entries.CountByStatus(ctx)
}

// List returns a page of event log entries
func (s *IntakeService) List(ctx context.Context, filter eventlog.ListFilter) (shared.Paginated[*eventlog.Entry], error) {
	filter.Filter = filter.Filter.Normalize()
	items, total, err := s.entries.List(ctx, filter)
	if err != nil {
		return shared.Paginated[*eventlog.Entry]{}, err
	}
	return shared.NewPaginated(items, total, filter.Page, filter.PageSize), nil
}

// dispatch delivers the event and stores the outcome on its entry.
// Handler errors and Failed outcomes leave the entry failed for replay.
// A delivery every handler skipped leaves an already decided entry as it was.
func (s *IntakeService) dispatch(ctx context.Context, log *zap.Logger, entry *eventlog.Entry, event shared.DomainEvent) (*ReceiveResult, error) {
	entry.BeginAttempt(s.now())
	results, err := s.dispatcher.Dispatch(ctx, event)
	now := s.now()

	switch {
	case err != nil:
		entry.MarkFailed(err.Error(), now)
	case len(results) == 0:
		entry.MarkFailed("no handler registered for scope "+event.Scope(), now)
	case failedReason(results) != "":
		entry.MarkFailed(failedReason(results), now)
	case allSkipped(results) && entry.Status != eventlog.StatusPending:
		// a pure redelivery keeps the earlier decision
	default:
		entry.MarkPublished(now)
	}

	if uerr := s.entries.Update(ctx, entry); uerr != nil {
		return nil, uerr
	}

	fields := []zap.Field{
		zap.String("entry_id", entry.ID.String()),
		zap.String("dedup_key", entry.DedupKey),
		zap.String("event_type", entry.EventType),
		zap.String("status", string(entry.Status)),
		zap.Int("attempts", entry.Attempts),
	}
	if entry.Status == eventlog.StatusFailed {
		log.Warn("payment event not applied", append(fields, zap.String("error", entry.LastError))...)
	} else {
		log.Info("payment event dispatched", fields...)
	}

	return &ReceiveResult{
		EntryID:  entry.ID,
		DedupKey: entry.DedupKey,
		Status:   entry.Status,
		Results:  results,
	}, nil
}

func (s *IntakeService) newEntry(event shared.DomainEvent) (*eventlog.Entry, error) {
	var (
		paymentID, transactionID string
		orderID                  uuid.UUID
	)
	switch e := event.(type) {
	case *payment.PaymentCompletedEvent:
		paymentID, transactionID, orderID = e.PaymentID, e.TransactionID, e.OrderID
	case *payment.PaymentFailedEvent:
		paymentID, orderID = e.PaymentID, e.OrderID
	default:
		return nil, shared.NewValidationError("event_type", "unsupported event type "+event.EventType())
	}

	payload, err := s.codec.Serialize(event)
	if err != nil {
		return nil, err
	}
	return eventlog.NewEntry(event, dedupKeyOf(event), paymentID, transactionID, orderID, payload, s.now())
}

func dedupKeyOf(event shared.DomainEvent) string {
	if d, ok := event.(shared.Deduplicatable); ok {
		if key := d.DedupKey(); key != "" {
			return key
		}
	}
	return event.EventID().String()
}

func failedReason(results []shared.HandleResult) string {
	for _, r := range results {
		if r.Outcome == shared.OutcomeFailed {
			return r.Reason
		}
	}
	return ""
}

func allSkipped(results []shared.HandleResult) bool {
	for _, r := range results {
		if r.Outcome != shared.OutcomeSkipped {
			return false
		}
	}
	return true
}
