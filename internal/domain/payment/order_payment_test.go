package payment

import (
	"errors"
	"testing"
	"time"

	"github.com/Renagang21/o4o-platform-sub111/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var paidAt = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newPending(t *testing.T) *OrderPayment {
	t.Helper()
	op, err := NewOrderPayment(uuid.New(), uuid.New(), decimal.NewFromInt(50000), "KRW", paidAt.Add(-time.Hour))
	require.NoError(t, err)
	return op
}

func TestNewOrderPayment(t *testing.T) {
	t.Run("uses order id as identity", func(t *testing.T) {
		orderID := uuid.New()
		op, err := NewOrderPayment(uuid.New(), orderID, decimal.NewFromInt(1000), "KRW", paidAt)
		require.NoError(t, err)
		assert.Equal(t, orderID, op.ID)
		assert.Equal(t, OrderPaymentPending, op.Status)
		assert.True(t, op.IsPayable())
		assert.False(t, op.IsPaid())
	})

	t.Run("rejects non-positive amount", func(t *testing.T) {
		_, err := NewOrderPayment(uuid.New(), uuid.New(), decimal.Zero, "KRW", paidAt)
		require.Error(t, err)
		assert.True(t, errors.Is(err, shared.ErrValidation))
	})
}

func TestOrderPayment_MarkPaid(t *testing.T) {
	t.Run("pending order becomes paid", func(t *testing.T) {
		op := newPending(t)
		require.NoError(t, op.MarkPaid("pay-1", "tx-1", "card", decimal.NewFromInt(50000), paidAt))
		assert.Equal(t, OrderPaymentPaid, op.Status)
		assert.True(t, op.IsPaid())
		assert.Equal(t, 2, op.Version)
		require.NotNil(t, op.PaidAt)
		assert.Equal(t, paidAt, *op.PaidAt)
	})

	t.Run("second completion is an invalid transition", func(t *testing.T) {
		op := newPending(t)
		require.NoError(t, op.MarkPaid("pay-1", "tx-1", "card", decimal.NewFromInt(50000), paidAt))
		err := op.MarkPaid("pay-1", "tx-1", "card", decimal.NewFromInt(50000), paidAt)
		assert.True(t, errors.Is(err, shared.ErrInvalidTransition))
	})

	t.Run("cancelled order is not payable", func(t *testing.T) {
		op := newPending(t)
		require.NoError(t, op.Cancel(paidAt))
		assert.False(t, op.IsPayable())
		assert.False(t, op.IsPaid())
		err := op.MarkPaid("pay-1", "tx-1", "card", decimal.NewFromInt(50000), paidAt)
		assert.True(t, errors.Is(err, shared.ErrInvalidTransition))
		assert.Equal(t, OrderPaymentCancelled, op.Status)
	})

	t.Run("amount mismatch is rejected", func(t *testing.T) {
		op := newPending(t)
		err := op.MarkPaid("pay-1", "tx-1", "card", decimal.NewFromInt(49000), paidAt)
		assert.True(t, errors.Is(err, shared.ErrValidation))
		assert.Equal(t, OrderPaymentPending, op.Status)
	})
}

func TestOrderPayment_RecordFailedAttempt(t *testing.T) {
	op := newPending(t)

	assert.True(t, op.RecordFailedAttempt("CARD_DECLINED", "declined", paidAt))
	assert.True(t, op.RecordFailedAttempt("CARD_DECLINED", "declined again", paidAt))
	assert.Equal(t, OrderPaymentPending, op.Status)
	assert.True(t, op.LastAttemptFailed)
	assert.Equal(t, 2, op.FailedAttempts)
	assert.Equal(t, "declined again", op.LastFailureMessage)

	require.NoError(t, op.MarkPaid("pay-2", "tx-2", "card", decimal.NewFromInt(50000), paidAt))
	assert.False(t, op.LastAttemptFailed)
	assert.False(t, op.RecordFailedAttempt("LATE", "late failure", paidAt))
	assert.Equal(t, OrderPaymentPaid, op.Status)
}

func TestDedupKey(t *testing.T) {
	orderID := uuid.MustParse("11111111-1111-1111-1111-111111111111")

	assert.Equal(t, "evt-9:"+orderID.String(), DedupKey("evt-9", "pay-1", orderID))
	assert.Equal(t, "pay-1:"+orderID.String(), DedupKey("", "pay-1", orderID))

	evt := NewPaymentCompletedEvent("", uuid.New(), "", "pay-1", "tx-1", orderID, decimal.NewFromInt(1), "card", paidAt, nil)
	assert.Equal(t, "pay-1:"+orderID.String(), evt.DedupKey())
	assert.NotEqual(t, uuid.Nil, evt.EventID())
	assert.Equal(t, EventTypePaymentCompleted, evt.EventType())
}
