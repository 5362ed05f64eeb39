package settlement

import (
	"context"
	"errors"
	"time"

	"github.com/Renagang21/o4o-platform-sub111/internal/domain/settlement"
	"github.com/Renagang21/o4o-platform-sub111/internal/domain/shared"
	"github.com/Renagang21/o4o-platform-sub111/internal/infrastructure/logger"
	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
)

// SinkMetrics counts voucher submissions by kind and recorded status
type SinkMetrics interface {
	RecordSinkSubmission(kind, status string)
}

const defaultPendingStaleAfter = 5 * time.Minute

// RetryResult summarizes one pass over failed voucher submissions
type RetryResult struct {
	Retried   int `json:"retried"`
	Succeeded int `json:"succeeded"`
	Failed    int `json:"failed"`
}

// SinkHandler submits the purchase and payment vouchers of every closed batch to the
// external accounting sink. Each voucher outcome is recorded on its own; a failed
// submission is logged and kept for retry, and never reaches the close call.
type SinkHandler struct {
	adapter  settlement.SinkAdapter
	records  settlement.SinkRecordRepository
	accounts settlement.VoucherAccounts
	metrics  SinkMetrics
	logger   *zap.Logger
	now      func() time.Time
	newRef   func() string
	// staleAfter is how long a pending record may go without an outcome
	staleAfter time.Duration
}

// SinkOption configures a SinkHandler
type SinkOption func(*SinkHandler)

// WithSinkClock overrides the wall clock
func WithSinkClock(now func() time.Time) SinkOption {
	return func(h *SinkHandler) {
		h.now = now
	}
}

// WithPendingStaleAfter sets how long a claimed voucher may stay pending before
// RetryFailed picks it up
func WithPendingStaleAfter(d time.Duration) SinkOption {
	return func(h *SinkHandler) {
		h.staleAfter = d
	}
}

// WithSinkMetrics sets the submission counter
func WithSinkMetrics(m SinkMetrics) SinkOption {
	return func(h *SinkHandler) {
		h.metrics = m
	}
}

// NewSinkHandler creates a new SinkHandler
func NewSinkHandler(adapter settlement.SinkAdapter, records settlement.SinkRecordRepository, accounts settlement.VoucherAccounts, logger *zap.Logger, opts ...SinkOption) *SinkHandler {
	h := &SinkHandler{
		adapter:  adapter,
		records:  records,
		accounts: accounts,
		logger:   logger,
		now:      time.Now,
		newRef:   func() string { return ulid.Make().String() },

		staleAfter: defaultPendingStaleAfter,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// EventTypes returns the event types this handler is interested in
func (h *SinkHandler) EventTypes() []string {
	return []string{settlement.EventTypeSettlementClosed}
}

// Handle builds both vouchers for a closed batch, claims them as pending records
// and then submits them independently. A redelivered event loses the claim and
// submits nothing.
func (h *SinkHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	log := logger.For(ctx, h.logger)

	evt, ok := event.(*settlement.SettlementClosedEvent)
	if !ok {
		log.Warn("unexpected event for settlement sink", zap.String("event_type", event.EventType()))
		return nil
	}

	now := h.now()
	vouchers := settlement.BuildVouchers(evt, h.accounts, h.newRef, now)
	records := make([]*settlement.SinkRecord, 0, len(vouchers))
	for _, v := range vouchers {
		records = append(records, settlement.NewSinkRecord(v, now))
	}

	if err := h.records.Claim(ctx, records); err != nil {
		if errors.Is(err, shared.ErrAlreadyExists) {
			log.Info("vouchers already submitted for batch, skipping",
				zap.String("batch_id", evt.BatchID.String()),
				zap.String("event_id", evt.EventID().String()),
			)
			return nil
		}
		log.Error("failed to claim vouchers for batch",
			zap.String("batch_id", evt.BatchID.String()),
			zap.Error(err),
		)
		return err
	}

	for _, rec := range records {
		h.submit(ctx, log, rec)
	}
	return nil
}

// Retry resubmits the failed vouchers of one batch. Vouchers the sink already
// accepted are left alone.
func (h *SinkHandler) Retry(ctx context.Context, tenantID, batchID uuid.UUID) ([]*settlement.SinkRecord, error) {
	log := logger.For(ctx, h.logger)

	records, err := h.records.FindByBatch(ctx, tenantID, batchID)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, shared.NewNotFoundError("sink_record", batchID.String())
	}
	for _, rec := range records {
		if rec.IsSucceeded() {
			continue
		}
		h.submit(ctx, log, rec)
	}
	return records, nil
}

// RetryFailed resubmits up to limit vouchers across all batches: failed ones, and
// pending ones whose outcome was never stored. A resubmission carries the
// reference of the claim, so the sink can drop a voucher it already booked.
func (h *SinkHandler) RetryFailed(ctx context.Context, limit int) (RetryResult, error) {
	log := logger.For(ctx, h.logger)

	records, err := h.records.FindRetryable(ctx, h.now().Add(-h.staleAfter), limit)
	if err != nil {
		return RetryResult{}, err
	}

	var result RetryResult
	for _, rec := range records {
		result.Retried++
		if h.submit(ctx, log, rec) {
			result.Succeeded++
		} else {
			result.Failed++
		}
	}
	if result.Retried > 0 {
		log.Info("sink retry finished",
			zap.Int("retried", result.Retried),
			zap.Int("succeeded", result.Succeeded),
			zap.Int("failed", result.Failed),
		)
	}
	return result, nil
}

// submit sends one voucher and records the outcome. It reports whether the sink accepted it.
func (h *SinkHandler) submit(ctx context.Context, log *zap.Logger, rec *settlement.SinkRecord) bool {
	fields := []zap.Field{
		zap.String("batch_id", rec.BatchID.String()),
		zap.String("kind", string(rec.Kind)),
		zap.String("reference", rec.Reference),
	}

	resp, err := h.adapter.SubmitVoucher(ctx, rec.Payload)
	now := h.now()
	if err != nil {
		rec.RecordFailure(err, now)
		log.Error("external sink submission failed", append(fields,
			zap.Int("attempts", rec.Attempts),
			zap.Int("status_code", rec.StatusCode),
			zap.Error(err),
		)...)
	} else {
		rec.RecordSuccess(resp, now)
		log.Info("external sink accepted voucher", append(fields,
			zap.String("external_id", rec.ExternalID),
		)...)
	}
	if h.metrics != nil {
		h.metrics.RecordSinkSubmission(string(rec.Kind), string(rec.Status))
	}

	if err := h.records.Update(ctx, rec); err != nil {
		log.Error("failed to record sink outcome", append(fields, zap.Error(err))...)
	}
	return rec.IsSucceeded()
}

var _ shared.EventHandler = (*SinkHandler)(nil)
