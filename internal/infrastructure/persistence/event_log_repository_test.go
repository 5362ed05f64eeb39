package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Renagang21/o4o-platform-sub111/internal/domain/eventlog"
	"github.com/Renagang21/o4o-platform-sub111/internal/domain/payment"
	"github.com/Renagang21/o4o-platform-sub111/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEntry(t *testing.T, paymentID string, orderID uuid.UUID, receivedAt time.Time) *eventlog.Entry {
	t.Helper()
	evt := payment.NewPaymentCompletedEvent("", uuid.New(), "ledger", paymentID, "tx-"+paymentID, orderID,
		decimal.NewFromInt(5000), "card", receivedAt, nil)
	entry, err := eventlog.NewEntry(evt, evt.DedupKey(), paymentID, "tx-"+paymentID, orderID, []byte(`{"payment_id":"`+paymentID+`"}`), receivedAt)
	require.NoError(t, err)
	return entry
}

func TestGormEventLogRepository(t *testing.T) {
	db := newSQLiteDB(t)
	repo := NewGormEventLogRepository(db)
	ctx := context.Background()
	orderID := uuid.New()

	entry := newTestEntry(t, "pay-1", orderID, testNow)
	require.NoError(t, repo.Create(ctx, entry))

	t.Run("the dedup key is recorded once", func(t *testing.T) {
		dup := newTestEntry(t, "pay-1", orderID, testNow.Add(time.Minute))
		err := repo.Create(ctx, dup)
		require.Error(t, err)
		assert.True(t, errors.Is(err, shared.ErrAlreadyExists))
	})

	t.Run("finds by dedup key with the payload snapshot", func(t *testing.T) {
		found, err := repo.FindByDedupKey(ctx, entry.DedupKey)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, entry.ID, found.ID)
		assert.Equal(t, eventlog.StatusPending, found.Status)
		assert.Equal(t, payment.EventTypePaymentCompleted, found.EventType)
		assert.JSONEq(t, `{"payment_id":"pay-1"}`, string(found.Payload))

		missing, err := repo.FindByDedupKey(ctx, "unknown:key")
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("update stores the processing status", func(t *testing.T) {
		entry.BeginAttempt(testNow.Add(time.Second))
		entry.MarkPublished(testNow.Add(time.Second))
		require.NoError(t, repo.Update(ctx, entry))

		found, err := repo.FindByDedupKey(ctx, entry.DedupKey)
		require.NoError(t, err)
		assert.True(t, found.IsPublished())
		assert.Equal(t, 1, found.Attempts)
		require.NotNil(t, found.PublishedAt)
	})

	t.Run("update of an unknown entry is not found", func(t *testing.T) {
		ghost := newTestEntry(t, "pay-ghost", uuid.New(), testNow)
		err := repo.Update(ctx, ghost)
		assert.True(t, errors.Is(err, shared.ErrNotFound))
	})

	failed := newTestEntry(t, "pay-2", uuid.New(), testNow.Add(time.Hour))
	require.NoError(t, repo.Create(ctx, failed))
	failed.BeginAttempt(testNow.Add(time.Hour))
	failed.MarkFailed("handler exploded", testNow.Add(time.Hour))
	require.NoError(t, repo.Update(ctx, failed))

	pending := newTestEntry(t, "pay-3", orderID, testNow.Add(2*time.Hour))
	require.NoError(t, repo.Create(ctx, pending))

	t.Run("counts entries per status", func(t *testing.T) {
		counts, err := repo.CountByStatus(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), counts[eventlog.StatusPublished])
		assert.Equal(t, int64(1), counts[eventlog.StatusFailed])
		assert.Equal(t, int64(1), counts[eventlog.StatusPending])
	})

	t.Run("lists with filters newest first", func(t *testing.T) {
		all, total, err := repo.List(ctx, eventlog.ListFilter{Filter: shared.DefaultFilter()})
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		require.Len(t, all, 3)
		assert.Equal(t, pending.ID, all[0].ID)

		byStatus, total, err := repo.List(ctx, eventlog.ListFilter{Filter: shared.DefaultFilter(), Status: eventlog.StatusFailed})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		assert.Equal(t, "handler exploded", byStatus[0].LastError)

		byOrder, total, err := repo.List(ctx, eventlog.ListFilter{Filter: shared.DefaultFilter(), OrderID: &orderID})
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		assert.Len(t, byOrder, 2)
	})
}
