package settlement

import (
	"context"
	"time"

	"github.com/Renagang21/o4o-platform-sub111/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BatchFilter narrows batch list queries
type BatchFilter struct {
	shared.Filter
	BeneficiaryID  *uuid.UUID
	SettlementType SettlementType
	Status         BatchStatus
}

// BatchRepository persists settlement batches
type BatchRepository interface {
	// Create inserts a batch; a second batch for the same beneficiary, type, period and
	// currency fails with ErrAlreadyExists
	Create(ctx context.Context, b *Batch) error
	// FindByID returns ErrNotFound when the batch does not exist for the tenant
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*Batch, error)
	// FindByPeriod returns the batch of any status for the key, or nil, nil
	FindByPeriod(ctx context.Context, tenantID, beneficiaryID uuid.UUID, settlementType SettlementType, currency string, periodStart time.Time) (*Batch, error)
	// SaveWithLock updates the batch only if the stored version is the one it was loaded with
	SaveWithLock(ctx context.Context, b *Batch) error
	List(ctx context.Context, tenantID uuid.UUID, filter BatchFilter) ([]*Batch, int64, error)
}

// SummaryKey scopes every summary query to one beneficiary, settlement type and
// currency. Amounts in different currencies are never added together.
type SummaryKey struct {
	TenantID       uuid.UUID
	BeneficiaryID  uuid.UUID
	SettlementType SettlementType
	Currency       string
}

// Summary is the read-side aggregation for one beneficiary and settlement type
type Summary struct {
	BeneficiaryID      uuid.UUID       `json:"beneficiary_id"`
	SettlementType     SettlementType  `json:"settlement_type"`
	Currency           string          `json:"currency"`
	TotalSettled       decimal.Decimal `json:"total_settled"`
	PendingSettlement  decimal.Decimal `json:"pending_settlement"`
	CurrentPeriodSales decimal.Decimal `json:"current_period_sales"`
	PeriodStart        time.Time       `json:"period_start"`
	PeriodEnd          time.Time       `json:"period_end"`
}

// SummaryReader runs read-only aggregations. Implementations must never write.
type SummaryReader interface {
	// SumBatchNet sums net amounts of batches in the given status
	SumBatchNet(ctx context.Context, key SummaryKey, status BatchStatus) (decimal.Decimal, error)
	// SumUnsettledCommissions sums what confirmed commissions will contribute once closed,
	// including those attached to OPEN batches
	SumUnsettledCommissions(ctx context.Context, key SummaryKey) (total, commissionAmount decimal.Decimal, err error)
	// SumSales sums order amounts of non-cancelled commissions created in the period
	SumSales(ctx context.Context, key SummaryKey, period Period) (decimal.Decimal, error)
}
