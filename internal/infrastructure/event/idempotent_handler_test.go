package event

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Renagang21/o4o-platform-sub111/internal/domain/shared"
	"github.com/Renagang21/o4o-platform-sub111/internal/infrastructure/cache"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// MockIdempotencyStore is a mock implementation of shared.IdempotencyStore
type MockIdempotencyStore struct {
	mock.Mock
}

func (m *MockIdempotencyStore) MarkProcessed(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	args := m.Called(ctx, key, ttl)
	return args.Bool(0), args.Error(1)
}

func (m *MockIdempotencyStore) IsProcessed(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func (m *MockIdempotencyStore) Forget(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockIdempotencyStore) Close() error {
	args := m.Called()
	return args.Error(0)
}

// dedupEvent carries its own dedup key like the payment events do
type dedupEvent struct {
	shared.BaseDomainEvent
	key string
}

func (e *dedupEvent) DedupKey() string { return e.key }

func newDedupEvent(key string) *dedupEvent {
	return &dedupEvent{
		BaseDomainEvent: shared.NewScopedDomainEvent("payment.completed", "OrderPayment", "ledger", uuid.New(), uuid.New()),
		key:             key,
	}
}

type recordingRecorder struct {
	mu       sync.Mutex
	outcomes []string
	skipped  int
}

func (r *recordingRecorder) RecordEvent(eventType, outcome string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.outcomes = append(r.outcomes, outcome)
}

func (r *recordingRecorder) RecordDedupSkip(eventType string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.skipped++
}

func TestIdempotentHandler_RedeliveryAppliesOnce(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	store := cache.NewLRUIdempotencyStore(100, time.Hour)
	defer store.Close()

	inner := newTestHandler("payment.completed")
	recorder := &recordingRecorder{}
	h := NewIdempotentHandler(inner, store, zap.New(core), WithOutcomeRecorder(recorder))

	const deliveries = 5
	var processed, skipped int
	for i := 0; i < deliveries; i++ {
		// Every redelivery gets a fresh event id; the dedup key stays the same
		result, err := h.Process(context.Background(), newDedupEvent("pay-1:order-1"))
		require.NoError(t, err)
		switch result.Outcome {
		case shared.OutcomeProcessed:
			processed++
		case shared.OutcomeSkipped:
			skipped++
		}
	}

	assert.Equal(t, 1, processed)
	assert.Equal(t, deliveries-1, skipped)
	assert.Len(t, inner.getHandled(), 1)
	assert.Equal(t, int64(deliveries-1), h.GetMetrics().Stats().EventsDuplicate)
	assert.Equal(t, deliveries-1, recorder.skipped)
	assert.Equal(t, deliveries-1, logs.FilterMessage("duplicate event skipped").Len(), "every skip is logged")
}

func TestIdempotentHandler_FallsBackToEventID(t *testing.T) {
	store := cache.NewLRUIdempotencyStore(100, time.Hour)
	defer store.Close()
	inner := newTestHandler()
	h := NewIdempotentHandler(inner, store, zap.NewNop())

	event := newTestEvent("commission.created", uuid.New())
	require.NoError(t, h.Handle(context.Background(), event))
	require.NoError(t, h.Handle(context.Background(), event))
	require.NoError(t, h.Handle(context.Background(), newTestEvent("commission.created", uuid.New())))

	assert.Len(t, inner.getHandled(), 2)
	assert.Equal(t, event.EventID().String(), DedupKeyOf(event))
}

func TestIdempotentHandler_ErrorReleasesKey(t *testing.T) {
	store := cache.NewLRUIdempotencyStore(100, time.Hour)
	defer store.Close()
	inner := newTestHandler()
	inner.setError(errors.New("database down"))
	h := NewIdempotentHandler(inner, store, zap.NewNop())

	_, err := h.Process(context.Background(), newDedupEvent("pay-2:order-2"))
	require.Error(t, err)

	processed, err := store.IsProcessed(context.Background(), "pay-2:order-2")
	require.NoError(t, err)
	assert.False(t, processed, "a failed attempt must not block the retry")

	inner.setError(nil)
	result, err := h.Process(context.Background(), newDedupEvent("pay-2:order-2"))
	require.NoError(t, err)
	assert.Equal(t, shared.OutcomeProcessed, result.Outcome)
	assert.Equal(t, int64(1), h.GetMetrics().Stats().EventsFailed)
}

func TestIdempotentHandler_FailedOutcomeKeepsKey(t *testing.T) {
	store := cache.NewLRUIdempotencyStore(100, time.Hour)
	defer store.Close()
	inner := &resultHandler{result: shared.Failed("order cancelled")}
	h := NewIdempotentHandler(inner, store, zap.NewNop())

	result, err := h.Process(context.Background(), newDedupEvent("pay-3:order-3"))
	require.NoError(t, err)
	assert.Equal(t, shared.OutcomeFailed, result.Outcome)

	result, err = h.Process(context.Background(), newDedupEvent("pay-3:order-3"))
	require.NoError(t, err)
	assert.Equal(t, shared.OutcomeSkipped, result.Outcome)
}

func TestIdempotentHandler_StoreErrorStillProcesses(t *testing.T) {
	store := new(MockIdempotencyStore)
	store.On("MarkProcessed", mock.Anything, "pay-4:order-4", time.Hour).Return(false, errors.New("redis timeout"))

	inner := newTestHandler()
	h := NewIdempotentHandler(inner, store, zap.NewNop())

	result, err := h.Process(context.Background(), newDedupEvent("pay-4:order-4"))
	require.NoError(t, err)
	assert.Equal(t, shared.OutcomeProcessed, result.Outcome)
	assert.Len(t, inner.getHandled(), 1)
	store.AssertExpectations(t)
}

func TestIdempotentHandler_Disabled(t *testing.T) {
	store := new(MockIdempotencyStore)
	inner := newTestHandler()
	h := NewIdempotentHandler(inner, store, zap.NewNop(),
		WithIdempotencyConfig(shared.IdempotencyConfig{Enabled: false}))

	event := newDedupEvent("pay-5:order-5")
	require.NoError(t, h.Handle(context.Background(), event))
	require.NoError(t, h.Handle(context.Background(), event))

	assert.Len(t, inner.getHandled(), 2)
	store.AssertNotCalled(t, "MarkProcessed", mock.Anything, mock.Anything, mock.Anything)
}

func TestIdempotentHandler_ConcurrentRedelivery(t *testing.T) {
	store := cache.NewLRUIdempotencyStore(100, time.Hour)
	defer store.Close()
	inner := newTestHandler()
	h := NewIdempotentHandler(inner, store, zap.NewNop())

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = h.Process(context.Background(), newDedupEvent("pay-6:order-6"))
		}()
	}
	wg.Wait()

	assert.Len(t, inner.getHandled(), 1)
}
