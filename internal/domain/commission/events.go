package commission

import (
	"time"

	"github.com/Renagang21/o4o-platform-sub111/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Event type constants
const (
	EventTypeCommissionCreated   = "commission.created"
	EventTypeCommissionConfirmed = "commission.confirmed"
	EventTypeCommissionPaid      = "commission.paid"
	EventTypeCommissionCancelled = "commission.cancelled"
	EventTypeCommissionAdjusted  = "commission.adjusted"
)

// CommissionCreatedEvent is raised when a conversion produces a commission
type CommissionCreatedEvent struct {
	shared.BaseDomainEvent
	CommissionID     uuid.UUID       `json:"commission_id"`
	ConversionID     string          `json:"conversion_id"`
	BeneficiaryID    uuid.UUID       `json:"beneficiary_id"`
	OrderID          uuid.UUID       `json:"order_id"`
	CommissionAmount decimal.Decimal `json:"commission_amount"`
	HoldUntil        time.Time       `json:"hold_until"`
}

// NewCommissionCreatedEvent creates a new CommissionCreatedEvent
func NewCommissionCreatedEvent(c *Commission) *CommissionCreatedEvent {
	return &CommissionCreatedEvent{
		BaseDomainEvent:  shared.NewBaseDomainEvent(EventTypeCommissionCreated, AggregateTypeCommission, c.ID, c.TenantID),
		CommissionID:     c.ID,
		ConversionID:     c.ConversionID,
		BeneficiaryID:    c.BeneficiaryID,
		OrderID:          c.OrderID,
		CommissionAmount: c.CommissionAmount,
		HoldUntil:        c.HoldUntil,
	}
}

// CommissionConfirmedEvent is raised when the hold period passed and the commission was confirmed
type CommissionConfirmedEvent struct {
	shared.BaseDomainEvent
	CommissionID    uuid.UUID       `json:"commission_id"`
	BeneficiaryID   uuid.UUID       `json:"beneficiary_id"`
	BeneficiaryType BeneficiaryType `json:"beneficiary_type"`
	ConfirmedAt     time.Time       `json:"confirmed_at"`
}

// NewCommissionConfirmedEvent creates a new CommissionConfirmedEvent
func NewCommissionConfirmedEvent(c *Commission) *CommissionConfirmedEvent {
	var confirmedAt time.Time
	if c.ConfirmedAt != nil {
		confirmedAt = *c.ConfirmedAt
	}
	return &CommissionConfirmedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCommissionConfirmed, AggregateTypeCommission, c.ID, c.TenantID),
		CommissionID:    c.ID,
		BeneficiaryID:   c.BeneficiaryID,
		BeneficiaryType: c.BeneficiaryType,
		ConfirmedAt:     confirmedAt,
	}
}

// CommissionPaidEvent is raised when a commission was paid out
type CommissionPaidEvent struct {
	shared.BaseDomainEvent
	CommissionID     uuid.UUID       `json:"commission_id"`
	CommissionAmount decimal.Decimal `json:"commission_amount"`
	PaymentMethod    string          `json:"payment_method"`
	PaymentReference string          `json:"payment_reference"`
}

// NewCommissionPaidEvent creates a new CommissionPaidEvent
func NewCommissionPaidEvent(c *Commission) *CommissionPaidEvent {
	return &CommissionPaidEvent{
		BaseDomainEvent:  shared.NewBaseDomainEvent(EventTypeCommissionPaid, AggregateTypeCommission, c.ID, c.TenantID),
		CommissionID:     c.ID,
		CommissionAmount: c.CommissionAmount,
		PaymentMethod:    c.PaymentMethod,
		PaymentReference: c.PaymentReference,
	}
}

// CommissionCancelledEvent is raised when a commission was cancelled
type CommissionCancelledEvent struct {
	shared.BaseDomainEvent
	CommissionID uuid.UUID `json:"commission_id"`
	Reason       string    `json:"reason"`
	CancelledBy  string    `json:"cancelled_by"`
}

// NewCommissionCancelledEvent creates a new CommissionCancelledEvent
func NewCommissionCancelledEvent(c *Commission) *CommissionCancelledEvent {
	return &CommissionCancelledEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCommissionCancelled, AggregateTypeCommission, c.ID, c.TenantID),
		CommissionID:    c.ID,
		Reason:          c.CancelReason,
		CancelledBy:     c.CancelledBy,
	}
}

// CommissionAdjustedEvent is raised when the amount of a commission was changed
type CommissionAdjustedEvent struct {
	shared.BaseDomainEvent
	CommissionID uuid.UUID  `json:"commission_id"`
	Adjustment   Adjustment `json:"adjustment"`
}

// NewCommissionAdjustedEvent creates a new CommissionAdjustedEvent
func NewCommissionAdjustedEvent(c *Commission, adj Adjustment) *CommissionAdjustedEvent {
	return &CommissionAdjustedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCommissionAdjusted, AggregateTypeCommission, c.ID, c.TenantID),
		CommissionID:    c.ID,
		Adjustment:      adj,
	}
}
