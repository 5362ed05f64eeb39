package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Renagang21/o4o-platform-sub111/internal/domain/payment"
	"github.com/Renagang21/o4o-platform-sub111/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormOrderPaymentRepository(t *testing.T) {
	db := newSQLiteDB(t)
	repo := NewGormOrderPaymentRepository(db)
	ctx := context.Background()
	tenantID := uuid.New()
	orderID := uuid.New()

	op, err := payment.NewOrderPayment(tenantID, orderID, decimal.NewFromInt(25000), "KRW", testNow)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, op))

	t.Run("an order is registered once", func(t *testing.T) {
		dup, err := payment.NewOrderPayment(tenantID, orderID, decimal.NewFromInt(25000), "KRW", testNow)
		require.NoError(t, err)
		assert.True(t, errors.Is(repo.Create(ctx, dup), shared.ErrAlreadyExists))
	})

	t.Run("unknown orders are not found", func(t *testing.T) {
		_, err := repo.FindByOrderID(ctx, tenantID, uuid.New())
		assert.True(t, errors.Is(err, shared.ErrNotFound))
	})

	t.Run("failed attempt then payment", func(t *testing.T) {
		loaded, err := repo.FindByOrderID(ctx, tenantID, orderID)
		require.NoError(t, err)
		require.True(t, loaded.RecordFailedAttempt("CARD_DECLINED", "declined", testNow))
		require.NoError(t, repo.SaveWithLock(ctx, loaded))

		loaded, err = repo.FindByOrderID(ctx, tenantID, orderID)
		require.NoError(t, err)
		assert.True(t, loaded.LastAttemptFailed)
		assert.Equal(t, 1, loaded.FailedAttempts)
		assert.Equal(t, "CARD_DECLINED", loaded.LastFailureCode)

		require.NoError(t, loaded.MarkPaid("pay-1", "tx-1", "card", decimal.NewFromInt(25000), testNow.Add(time.Minute)))
		require.NoError(t, repo.SaveWithLock(ctx, loaded))

		found, err := repo.FindByOrderID(ctx, tenantID, orderID)
		require.NoError(t, err)
		assert.True(t, found.IsPaid())
		assert.False(t, found.LastAttemptFailed)
		assert.True(t, found.PaidAmount.Equal(decimal.NewFromInt(25000)))
		assert.Equal(t, "pay-1", found.PaymentID)
		assert.Equal(t, 3, found.StoredVersion())
	})

	t.Run("a stale copy conflicts", func(t *testing.T) {
		stale := *op
		require.NoError(t, stale.Cancel(testNow))
		err := repo.SaveWithLock(ctx, &stale)
		assert.True(t, errors.Is(err, shared.ErrConcurrencyConflict))
	})
}
