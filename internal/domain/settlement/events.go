package settlement

import (
	"time"

	"github.com/Renagang21/o4o-platform-sub111/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Event type constants
const (
	EventTypeSettlementClosed = "settlement.closed"
	EventTypeSettlementPaid   = "settlement.paid"
)

// SettlementClosedEvent is the outbound event consumed by the external sink
type SettlementClosedEvent struct {
	shared.BaseDomainEvent
	BatchID          uuid.UUID       `json:"batch_id"`
	BeneficiaryID    uuid.UUID       `json:"beneficiary_id"`
	SettlementType   SettlementType  `json:"settlement_type"`
	PeriodStart      time.Time       `json:"period_start"`
	PeriodEnd        time.Time       `json:"period_end"`
	Currency         string          `json:"currency"`
	NetAmount        decimal.Decimal `json:"net_amount"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
	CommissionAmount decimal.Decimal `json:"commission_amount"`
}

// NewSettlementClosedEvent creates a new SettlementClosedEvent
func NewSettlementClosedEvent(b *Batch) *SettlementClosedEvent {
	return &SettlementClosedEvent{
		BaseDomainEvent:  shared.NewBaseDomainEvent(EventTypeSettlementClosed, AggregateTypeBatch, b.ID, b.TenantID),
		BatchID:          b.ID,
		BeneficiaryID:    b.BeneficiaryID,
		SettlementType:   b.SettlementType,
		PeriodStart:      b.PeriodStart,
		PeriodEnd:        b.PeriodEnd,
		Currency:         b.Currency,
		NetAmount:        b.NetAmount,
		TotalAmount:      b.TotalAmount,
		CommissionAmount: b.CommissionAmount,
	}
}

// SettlementPaidEvent is raised when a closed batch was paid out
type SettlementPaidEvent struct {
	shared.BaseDomainEvent
	BatchID       uuid.UUID       `json:"batch_id"`
	BeneficiaryID uuid.UUID       `json:"beneficiary_id"`
	NetAmount     decimal.Decimal `json:"net_amount"`
	PaidAt        time.Time       `json:"paid_at"`
}

// NewSettlementPaidEvent creates a new SettlementPaidEvent
func NewSettlementPaidEvent(b *Batch) *SettlementPaidEvent {
	var paidAt time.Time
	if b.PaidAt != nil {
		paidAt = *b.PaidAt
	}
	return &SettlementPaidEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeSettlementPaid, AggregateTypeBatch, b.ID, b.TenantID),
		BatchID:         b.ID,
		BeneficiaryID:   b.BeneficiaryID,
		NetAmount:       b.NetAmount,
		PaidAt:          paidAt,
	}
}
