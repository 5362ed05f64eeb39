package settlement

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Renagang21/o4o-platform-sub111/internal/domain/commission"
	"github.com/Renagang21/o4o-platform-sub111/internal/domain/settlement"
	"github.com/Renagang21/o4o-platform-sub111/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_Close(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	c1 := env.confirmedCommission(t, "C1", "1000")
	c2 := env.confirmedCommission(t, "C2", "2000")
	pending := env.createCommission(t, "C3", "5000", env.heldPolicy)
	require.NotNil(t, c1.BatchID)
	batchID := *c1.BatchID
	assert.Equal(t, batchID, *c2.BatchID)
	assert.Equal(t, batchID, *pending.BatchID)

	t.Run("pending commission blocks the close", func(t *testing.T) {
		_, err := env.service.Close(ctx, env.tenantID, batchID, "admin")
		require.ErrorIs(t, err, shared.ErrOpenCommissionsRemaining)

		var domainErr *shared.DomainError
		require.True(t, errors.As(err, &domainErr))
		count, ok := domainErr.Detail("pending_count")
		require.True(t, ok)
		assert.EqualValues(t, 1, count)

		b, err := env.service.Get(ctx, env.tenantID, batchID)
		require.NoError(t, err)
		assert.Equal(t, settlement.BatchStatusOpen, b.Status)
		assert.Empty(t, env.publisher.ofType(settlement.EventTypeSettlementClosed))
	})

	t.Run("sums are recomputed from the attached commissions", func(t *testing.T) {
		_, err := env.commissions.Cancel(ctx, env.tenantID, pending.ID, "order refunded", "admin")
		require.NoError(t, err)

		b, err := env.service.Close(ctx, env.tenantID, batchID, "admin")
		require.NoError(t, err)
		assert.Equal(t, settlement.BatchStatusClosed, b.Status)
		assert.True(t, decimal.NewFromInt(3000).Equal(b.TotalAmount), b.TotalAmount.String())
		assert.True(t, decimal.NewFromInt(300).Equal(b.CommissionAmount), b.CommissionAmount.String())
		assert.True(t, decimal.NewFromInt(300).Equal(b.NetAmount), b.NetAmount.String())
		assert.Equal(t, 2, b.CommissionCount)
		assert.Equal(t, "admin", b.ClosedBy)

		closed := env.publisher.ofType(settlement.EventTypeSettlementClosed)
		require.Len(t, closed, 1)
		evt, ok := closed[0].(*settlement.SettlementClosedEvent)
		require.True(t, ok)
		assert.Equal(t, batchID, evt.BatchID)
		assert.True(t, decimal.NewFromInt(300).Equal(evt.NetAmount))

		history, err := env.service.History(ctx, env.tenantID, batchID)
		require.NoError(t, err)
		require.Len(t, history, 1)
		assert.Equal(t, "close", history[0].Action)
		assert.Equal(t, "OPEN", history[0].FromStatus)
		assert.Equal(t, "CLOSED", history[0].ToStatus)
	})

	t.Run("a closed batch cannot close again", func(t *testing.T) {
		_, err := env.service.Close(ctx, env.tenantID, batchID, "admin")
		assert.ErrorIs(t, err, shared.ErrInvalidTransition)
	})

	t.Run("commissions of a closed batch are frozen", func(t *testing.T) {
		_, err := env.commissions.Cancel(ctx, env.tenantID, c1.ID, "late refund", "admin")
		assert.ErrorIs(t, err, shared.ErrInvalidState)
	})

	t.Run("late commissions roll into the next period", func(t *testing.T) {
		late := env.createCommission(t, "C4", "500", env.quickPolicy)
		require.NotNil(t, late.BatchID)
		assert.NotEqual(t, batchID, *late.BatchID)

		next, err := env.service.Get(ctx, env.tenantID, *late.BatchID)
		require.NoError(t, err)
		assert.Equal(t, settlement.BatchStatusOpen, next.Status)
		assert.Equal(t, time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), next.PeriodStart.UTC())
	})
}

func TestService_Close_NotFound(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.service.Close(context.Background(), env.tenantID, uuid.New(), "admin")
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestService_MarkPaid(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	c1 := env.confirmedCommission(t, "C1", "1000")
	env.confirmedCommission(t, "C2", "2000")
	cancelled := env.createCommission(t, "C3", "700", env.heldPolicy)
	_, err := env.commissions.Cancel(ctx, env.tenantID, cancelled.ID, "fraud", "admin")
	require.NoError(t, err)
	batchID := *c1.BatchID

	_, err = env.service.MarkPaid(ctx, env.tenantID, batchID, "finance")
	require.ErrorIs(t, err, shared.ErrInvalidTransition)

	_, err = env.service.Close(ctx, env.tenantID, batchID, "admin")
	require.NoError(t, err)

	env.clock.Advance(24 * time.Hour)
	b, err := env.service.MarkPaid(ctx, env.tenantID, batchID, "finance")
	require.NoError(t, err)
	assert.Equal(t, settlement.BatchStatusPaid, b.Status)
	require.NotNil(t, b.PaidAt)
	assert.Equal(t, env.clock.Now(), *b.PaidAt)

	attached, err := env.service.Commissions(ctx, env.tenantID, batchID)
	require.NoError(t, err)
	require.Len(t, attached, 3)
	paid := 0
	for _, c := range attached {
		if c.ID == cancelled.ID {
			assert.Equal(t, commission.StatusCancelled, c.Status)
			continue
		}
		assert.Equal(t, commission.StatusPaid, c.Status)
		assert.Equal(t, PaymentMethodSettlement, c.PaymentMethod)
		assert.Equal(t, batchID.String(), c.PaymentReference)
		paid++
	}
	assert.Equal(t, 2, paid)

	assert.Len(t, env.publisher.ofType(settlement.EventTypeSettlementPaid), 1)
	assert.Len(t, env.publisher.ofType(commission.EventTypeCommissionPaid), 2)

	_, err = env.service.MarkPaid(ctx, env.tenantID, batchID, "finance")
	assert.ErrorIs(t, err, shared.ErrInvalidTransition)
}

func TestService_Close_LeavesOutCommissionsPaidIndividually(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	c1 := env.confirmedCommission(t, "C1", "1000")
	c2 := env.confirmedCommission(t, "C2", "2000")
	batchID := *c1.BatchID

	paid, err := env.commissions.MarkPaid(ctx, env.tenantID, c2.ID, "bank_transfer", "REF-1", "finance")
	require.NoError(t, err)
	assert.Equal(t, commission.StatusPaid, paid.Status)

	b, err := env.service.Close(ctx, env.tenantID, batchID, "admin")
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(1000).Equal(b.TotalAmount), b.TotalAmount.String())
	assert.True(t, decimal.NewFromInt(100).Equal(b.NetAmount), b.NetAmount.String())
	assert.Equal(t, 1, b.CommissionCount)

	closed := env.publisher.ofType(settlement.EventTypeSettlementClosed)
	require.Len(t, closed, 1)
	evt, ok := closed[0].(*settlement.SettlementClosedEvent)
	require.True(t, ok)
	assert.True(t, decimal.NewFromInt(100).Equal(evt.NetAmount), evt.NetAmount.String())

	_, err = env.service.MarkPaid(ctx, env.tenantID, batchID, "finance")
	require.NoError(t, err)

	attached, err := env.service.Commissions(ctx, env.tenantID, batchID)
	require.NoError(t, err)
	for _, c := range attached {
		require.Equal(t, commission.StatusPaid, c.Status)
		if c.ID == c2.ID {
			assert.Equal(t, "bank_transfer", c.PaymentMethod)
			assert.Equal(t, "REF-1", c.PaymentReference)
		} else {
			assert.Equal(t, PaymentMethodSettlement, c.PaymentMethod)
		}
	}
}

func TestService_IndividualPayoutRefusedOnceBatchClosed(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	c1 := env.confirmedCommission(t, "C1", "1000")
	_, err := env.service.Close(ctx, env.tenantID, *c1.BatchID, "admin")
	require.NoError(t, err)

	_, err = env.commissions.MarkPaid(ctx, env.tenantID, c1.ID, "bank_transfer", "REF-2", "finance")
	require.ErrorIs(t, err, shared.ErrInvalidState)

	stored, err := env.commissions.GetByID(ctx, env.tenantID, c1.ID)
	require.NoError(t, err)
	assert.Equal(t, commission.StatusConfirmed, stored.Status)
}

func TestService_Summary(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	in := SummaryInput{
		TenantID:       env.tenantID,
		BeneficiaryID:  env.beneficiary,
		SettlementType: settlement.SettlementPartnerCommission,
		Currency:       "KRW",
	}

	c1 := env.confirmedCommission(t, "C1", "1000")
	env.confirmedCommission(t, "C2", "2000")
	refunded := env.createCommission(t, "C3", "5000", env.heldPolicy)
	_, err := env.commissions.Cancel(ctx, env.tenantID, refunded.ID, "refund", "admin")
	require.NoError(t, err)
	_, err = env.service.Close(ctx, env.tenantID, *c1.BatchID, "admin")
	require.NoError(t, err)
	env.confirmedCommission(t, "C4", "500")

	summary, err := env.service.Summary(ctx, in)
	require.NoError(t, err)
	assert.True(t, decimal.Zero.Equal(summary.TotalSettled), summary.TotalSettled.String())
	assert.True(t, decimal.NewFromInt(350).Equal(summary.PendingSettlement), summary.PendingSettlement.String())
	assert.True(t, decimal.NewFromInt(3500).Equal(summary.CurrentPeriodSales), summary.CurrentPeriodSales.String())
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), summary.PeriodStart)

	_, err = env.service.MarkPaid(ctx, env.tenantID, *c1.BatchID, "finance")
	require.NoError(t, err)

	summary, err = env.service.Summary(ctx, in)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(300).Equal(summary.TotalSettled), summary.TotalSettled.String())
	assert.True(t, decimal.NewFromInt(50).Equal(summary.PendingSettlement), summary.PendingSettlement.String())

	t.Run("other beneficiaries see nothing", func(t *testing.T) {
		other := in
		other.BeneficiaryID = uuid.New()
		s, err := env.service.Summary(ctx, other)
		require.NoError(t, err)
		assert.True(t, s.TotalSettled.IsZero())
		assert.True(t, s.PendingSettlement.IsZero())
		assert.True(t, s.CurrentPeriodSales.IsZero())
	})

	t.Run("currency code is case insensitive", func(t *testing.T) {
		lower := in
		lower.Currency = "krw"
		s, err := env.service.Summary(ctx, lower)
		require.NoError(t, err)
		assert.Equal(t, "KRW", s.Currency)
		assert.True(t, decimal.NewFromInt(300).Equal(s.TotalSettled), s.TotalSettled.String())
	})

	t.Run("other currencies see nothing", func(t *testing.T) {
		usd := in
		usd.Currency = "USD"
		s, err := env.service.Summary(ctx, usd)
		require.NoError(t, err)
		assert.True(t, s.TotalSettled.IsZero())
		assert.True(t, s.PendingSettlement.IsZero())
		assert.True(t, s.CurrentPeriodSales.IsZero())
	})

	t.Run("rejects an unknown settlement type", func(t *testing.T) {
		bad := in
		bad.SettlementType = "BONUS"
		_, err := env.service.Summary(ctx, bad)
		assert.ErrorIs(t, err, shared.ErrValidation)
	})

	t.Run("rejects a malformed currency", func(t *testing.T) {
		bad := in
		bad.Currency = "WON1"
		_, err := env.service.Summary(ctx, bad)
		assert.ErrorIs(t, err, shared.ErrValidation)
	})
}

func TestService_List(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	c1 := env.confirmedCommission(t, "C1", "1000")
	_, err := env.service.Close(ctx, env.tenantID, *c1.BatchID, "admin")
	require.NoError(t, err)
	env.confirmedCommission(t, "C2", "2000")

	all, err := env.service.List(ctx, env.tenantID, settlement.BatchFilter{})
	require.NoError(t, err)
	assert.EqualValues(t, 2, all.Total)

	closed, err := env.service.List(ctx, env.tenantID, settlement.BatchFilter{Status: settlement.BatchStatusClosed})
	require.NoError(t, err)
	require.Len(t, closed.Items, 1)
	assert.Equal(t, *c1.BatchID, closed.Items[0].ID)
}
