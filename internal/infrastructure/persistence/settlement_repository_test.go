package persistence

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

func newTestBatch(t *testing.T, tenantID, beneficiaryID uuid.UUID, at time.Time) *settlement.Batch {
	t.Helper()
	b, err := settlement.NewBatch(tenantID, beneficiaryID, settlement.SettlementPartnerCommission, settlement.MonthlyPeriod(at), "KRW", at)
	require.NoError(t, err)
	return b
}

func TestGormBatchRepository(t *testing.T) {
	db := newSQLiteDB(t)
	repo := NewGormBatchRepository(db)
	ctx := context.Background()
	tenantID := uuid.New()
	beneficiaryID := uuid.New()

	b := newTestBatch(t, tenantID, beneficiaryID, testNow)
	require.NoError(t, repo.Create(ctx, b))

	t.Run("one batch per beneficiary, type, period and currency", func(t *testing.T) {
		err := repo.Create(ctx, newTestBatch(t, tenantID, beneficiaryID, testNow.Add(24*time.Hour)))
		assert.True(t, errors.Is(err, shared.ErrAlreadyExists))

		next := newTestBatch(t, tenantID, beneficiaryID, testNow.AddDate(0, 1, 0))
		assert.NoError(t, repo.Create(ctx, next))
	})

	t.Run("finds by period", func(t *testing.T) {
		found, err := repo.FindByPeriod(ctx, tenantID, beneficiaryID, settlement.SettlementPartnerCommission, "KRW", b.PeriodStart)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, b.ID, found.ID)

		missing, err := repo.FindByPeriod(ctx, tenantID, beneficiaryID, settlement.SettlementSellerPayout, "KRW", b.PeriodStart)
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("close persists sums and status with version check", func(t *testing.T) {
		loaded, err := repo.FindByID(ctx, tenantID, b.ID)
		require.NoError(t, err)
		stale, err := repo.FindByID(ctx, tenantID, b.ID)
		require.NoError(t, err)

		c := newTestCommission(t, commissionSeed{tenantID: tenantID, beneficiaryID: beneficiaryID, orderAmount: "3000"})
		require.NoError(t, c.Confirm(testNow))
		require.NoError(t, loaded.Close([]*commission.Commission{c}, "ops", testNow))
		require.NoError(t, repo.SaveWithLock(ctx, loaded))

		stale.NoteMembershipChange(testNow)
		assert.True(t, errors.Is(repo.SaveWithLock(ctx, stale), shared.ErrConcurrencyConflict))

		reloaded, err := repo.FindByID(ctx, tenantID, b.ID)
		require.NoError(t, err)
		assert.Equal(t, settlement.BatchStatusClosed, reloaded.Status)
		assert.True(t, reloaded.TotalAmount.Equal(decimal.NewFromInt(3000)))
		assert.True(t, reloaded.NetAmount.Equal(decimal.NewFromInt(300)))
		assert.Equal(t, 1, reloaded.CommissionCount)
	})

	t.Run("list filters by status", func(t *testing.T) {
		items, total, err := repo.List(ctx, tenantID, settlement.BatchFilter{Status: settlement.BatchStatusOpen})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, items, 1)
		assert.NotEqual(t, b.ID, items[0].ID)
	})
}

func TestGormSummaryReader(t *testing.T) {
	db := newSQLiteDB(t)
	ctx := context.Background()
	batches := NewGormBatchRepository(db)
	commissions := NewGormCommissionRepository(db)
	reader := NewGormSummaryReader(db)

	tenantID := uuid.New()
	beneficiaryID := uuid.New()
	key := settlement.SummaryKey{
		TenantID:       tenantID,
		BeneficiaryID:  beneficiaryID,
		SettlementType: settlement.SettlementPartnerCommission,
		Currency:       "KRW",
	}

	paid := newTestBatch(t, tenantID, beneficiaryID, testNow.AddDate(0, -2, 0))
	paid.NetAmount = decimal.NewFromInt(700)
	paid.Status = settlement.BatchStatusPaid
	closed := newTestBatch(t, tenantID, beneficiaryID, testNow.AddDate(0, -1, 0))
	closed.NetAmount = decimal.NewFromInt(400)
	closed.Status = settlement.BatchStatusClosed
	open := newTestBatch(t, tenantID, beneficiaryID, testNow)
	paidUSD := newTestBatch(t, tenantID, beneficiaryID, testNow.AddDate(0, -2, 0))
	paidUSD.Currency = "USD"
	paidUSD.NetAmount = decimal.NewFromInt(55)
	paidUSD.Status = settlement.BatchStatusPaid
	for _, b := range []*settlement.Batch{paid, closed, open, paidUSD} {
		require.NoError(t, batches.Create(ctx, b))
	}

	confirmedInOpen := newTestCommission(t, commissionSeed{tenantID: tenantID, beneficiaryID: beneficiaryID, orderAmount: "2000"})
	require.NoError(t, confirmedInOpen.AttachToBatch(open.ID, testNow))
	require.NoError(t, confirmedInOpen.Confirm(testNow))
	confirmedUnbatched := newTestCommission(t, commissionSeed{tenantID: tenantID, beneficiaryID: beneficiaryID, orderAmount: "1000"})
	require.NoError(t, confirmedUnbatched.Confirm(testNow))
	pending := newTestCommission(t, commissionSeed{tenantID: tenantID, beneficiaryID: beneficiaryID, orderAmount: "5000", holdDays: 7})
	cancelled := newTestCommission(t, commissionSeed{tenantID: tenantID, beneficiaryID: beneficiaryID, orderAmount: "9000"})
	require.NoError(t, cancelled.Cancel("refund", "ops", testNow))
	foreign := newTestCommission(t, commissionSeed{tenantID: uuid.New(), beneficiaryID: beneficiaryID, orderAmount: "8000"})
	require.NoError(t, foreign.Confirm(testNow))
	confirmedUSD := newTestCommission(t, commissionSeed{tenantID: tenantID, beneficiaryID: beneficiaryID, orderAmount: "90", currency: "USD"})
	require.NoError(t, confirmedUSD.Confirm(testNow))
	for _, c := range []*commission.Commission{confirmedInOpen, confirmedUnbatched, pending, cancelled, foreign, confirmedUSD} {
		require.NoError(t, commissions.Create(ctx, c))
	}

	t.Run("sums batch net by status", func(t *testing.T) {
		settled, err := reader.SumBatchNet(ctx, key, settlement.BatchStatusPaid)
		require.NoError(t, err)
		assert.True(t, settled.Equal(decimal.NewFromInt(700)), settled.String())

		closedNet, err := reader.SumBatchNet(ctx, key, settlement.BatchStatusClosed)
		require.NoError(t, err)
		assert.True(t, closedNet.Equal(decimal.NewFromInt(400)), closedNet.String())
	})

	t.Run("unsettled commissions exclude other tenants", func(t *testing.T) {
		total, commissionSum, err := reader.SumUnsettledCommissions(ctx, key)
		require.NoError(t, err)
		assert.True(t, total.Equal(decimal.NewFromInt(3000)), total.String())
		assert.True(t, commissionSum.Equal(decimal.NewFromInt(300)), commissionSum.String())
	})

	t.Run("period sales skip cancelled commissions", func(t *testing.T) {
		sales, err := reader.SumSales(ctx, key, settlement.MonthlyPeriod(testNow))
		require.NoError(t, err)
		assert.True(t, sales.Equal(decimal.NewFromInt(8000)), sales.String())
	})

	t.Run("each currency is summed on its own", func(t *testing.T) {
		usdKey := key
		usdKey.Currency = "USD"

		settled, err := reader.SumBatchNet(ctx, usdKey, settlement.BatchStatusPaid)
		require.NoError(t, err)
		assert.True(t, settled.Equal(decimal.NewFromInt(55)), settled.String())

		total, commissionSum, err := reader.SumUnsettledCommissions(ctx, usdKey)
		require.NoError(t, err)
		assert.True(t, total.Equal(decimal.NewFromInt(90)), total.String())
		assert.True(t, commissionSum.Equal(decimal.NewFromInt(9)), commissionSum.String())

		sales, err := reader.SumSales(ctx, usdKey, settlement.MonthlyPeriod(testNow))
		require.NoError(t, err)
		assert.True(t, sales.Equal(decimal.NewFromInt(90)), sales.String())

		none, err := reader.SumSales(ctx, settlement.SummaryKey{
			TenantID:       tenantID,
			BeneficiaryID:  beneficiaryID,
			SettlementType: settlement.SettlementPartnerCommission,
			Currency:       "EUR",
		}, settlement.MonthlyPeriod(testNow))
		require.NoError(t, err)
		assert.True(t, none.IsZero())
	})

	t.Run("other settlement types see nothing", func(t *testing.T) {
		sellerKey := key
		sellerKey.SettlementType = settlement.SettlementSellerPayout
		sales, err := reader.SumSales(ctx, sellerKey, settlement.MonthlyPeriod(testNow))
		require.NoError(t, err)
		assert.True(t, sales.IsZero())
	})
}

func TestGormSinkRecordRepository(t *testing.T) {
	db := newSQLiteDB(t)
	repo := NewGormSinkRecordRepository(db)
	ctx := context.Background()
	tenantID := uuid.New()
	batchID := uuid.New()

	voucher := settlement.Voucher{
		Reference: "01HZXJ5Q7K3V9M2N4P6R8T0W1Y",
		Kind:      settlement.VoucherPurchase,
		TenantID:  tenantID,
		BatchID:   batchID,
		Amount:    decimal.NewFromInt(300),
		Currency:  "KRW",
	}
	payment := voucher
	payment.Reference = "01HZXJ5Q7K3V9M2N4P6R8T0W1Z"
	payment.Kind = settlement.VoucherPayment

	rec := settlement.NewSinkRecord(voucher, testNow)
	pending := settlement.NewSinkRecord(payment, testNow)
	require.NoError(t, repo.Claim(ctx, []*settlement.SinkRecord{rec, pending}))

	t.Run("a second claim for the batch is refused whole", func(t *testing.T) {
		again := settlement.NewSinkRecord(voucher, testNow)
		again.Reference = "01HZXJ5Q7K3V9M2N4P6R8T0W20"
		err := repo.Claim(ctx, []*settlement.SinkRecord{again})
		assert.ErrorIs(t, err, shared.ErrAlreadyExists)

		records, err := repo.FindByBatch(ctx, tenantID, batchID)
		require.NoError(t, err)
		require.Len(t, records, 2)
		for _, r := range records {
			assert.Equal(t, settlement.SinkRecordPending, r.Status)
		}
	})

	rec.RecordFailure(&settlement.ExternalSinkError{Kind: settlement.VoucherPurchase, StatusCode: 503, Body: "down"}, testNow)
	require.NoError(t, repo.Update(ctx, rec))

	t.Run("fresh pending records are not retryable", func(t *testing.T) {
		retryable, err := repo.FindRetryable(ctx, testNow, 10)
		require.NoError(t, err)
		require.Len(t, retryable, 1)
		assert.Equal(t, 503, retryable[0].StatusCode)
		assert.Equal(t, voucher.Reference, retryable[0].Payload.Reference)
	})

	t.Run("stale pending records are retryable", func(t *testing.T) {
		retryable, err := repo.FindRetryable(ctx, testNow.Add(time.Minute), 10)
		require.NoError(t, err)
		require.Len(t, retryable, 2)
		byKind := map[settlement.VoucherKind]*settlement.SinkRecord{}
		for _, r := range retryable {
			byKind[r.Kind] = r
		}
		assert.Equal(t, settlement.SinkRecordPending, byKind[settlement.VoucherPayment].Status)
		assert.Equal(t, payment.Reference, byKind[settlement.VoucherPayment].Reference)
	})

	retried := settlement.NewSinkRecord(voucher, testNow)
	retried.ID = rec.ID
	retried.Attempts = rec.Attempts
	retried.RecordSuccess(&settlement.SinkResponse{StatusCode: 201, Body: "ok", ExternalID: "ext-1"}, testNow.Add(time.Minute))
	require.NoError(t, repo.Update(ctx, retried))

	records, err := repo.FindByBatch(ctx, tenantID, batchID)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, settlement.VoucherPayment, records[0].Kind)
	assert.Equal(t, settlement.SinkRecordSucceeded, records[1].Status)
	assert.Equal(t, 2, records[1].Attempts)
	assert.Equal(t, "ext-1", records[1].ExternalID)

	retryable, err := repo.FindRetryable(ctx, testNow, 10)
	require.NoError(t, err)
	assert.Empty(t, retryable)

	t.Run("updating an unknown record reports not found", func(t *testing.T) {
		err := repo.Update(ctx, settlement.NewSinkRecord(voucher, testNow))
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}
