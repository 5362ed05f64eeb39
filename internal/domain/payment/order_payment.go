package payment

import (
	"context"
	"fmt"
	"time"

	"github.com/Renagang21/o4o-platform-sub111/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EntityTypeOrderPayment names order payments in audit rows
const EntityTypeOrderPayment = "order_payment"

// OrderPaymentStatus is the payment state of an order
type OrderPaymentStatus string

const (
	OrderPaymentPending   OrderPaymentStatus = "PENDING"
	OrderPaymentPaid      OrderPaymentStatus = "PAID"
	OrderPaymentCancelled OrderPaymentStatus = "CANCELLED"
	OrderPaymentRefunded  OrderPaymentStatus = "REFUNDED"
)

// OrderPaymentTransitions is the allowed-transition table for order payments
var OrderPaymentTransitions = shared.NewTransitionTable(EntityTypeOrderPayment, map[OrderPaymentStatus][]OrderPaymentStatus{
	OrderPaymentPending:   {OrderPaymentPaid, OrderPaymentCancelled},
	OrderPaymentPaid:      {OrderPaymentRefunded},
	OrderPaymentCancelled: nil,
	OrderPaymentRefunded:  nil,
})

// OrderPayment tracks whether an order has been paid
type OrderPayment struct {
	shared.TenantAggregateRoot
	OrderID            uuid.UUID
	Status             OrderPaymentStatus
	Amount             decimal.Decimal
	Currency           string
	PaidAmount         decimal.Decimal
	PaymentID          string
	TransactionID      string
	PaymentMethod      string
	PaidAt             *time.Time
	LastAttemptFailed  bool
	FailedAttempts     int
	LastFailureCode    string
	LastFailureMessage string
	LastFailedAt       *time.Time
}

// NewOrderPayment registers an order awaiting payment
func NewOrderPayment(tenantID, orderID uuid.UUID, amount decimal.Decimal, currency string, now time.Time) (*OrderPayment, error) {
	if orderID == uuid.Nil {
		return nil, shared.NewValidationError("order_id", "is required")
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewValidationError("amount", "must be greater than 0")
	}
	if len(currency) != 3 {
		return nil, shared.NewValidationError("currency", "must be a 3-letter ISO code")
	}
	op := &OrderPayment{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID, now),
		OrderID:             orderID,
		Status:              OrderPaymentPending,
		Amount:              amount,
		Currency:            currency,
		PaidAmount:          decimal.Zero,
	}
	op.ID = orderID
	return op, nil
}

// IsPaid reports the terminal-equivalent state for a completion event
func (o *OrderPayment) IsPaid() bool {
	return o.Status == OrderPaymentPaid || o.Status == OrderPaymentRefunded
}

// IsPayable reports whether a completion may still be applied
func (o *OrderPayment) IsPayable() bool {
	return OrderPaymentTransitions.CanTransition(o.Status, OrderPaymentPaid)
}

// MarkPaid applies a completed payment. Callers check IsPaid first so a redelivery is a no-op.
func (o *OrderPayment) MarkPaid(paymentID, transactionID, method string, amount decimal.Decimal, paidAt time.Time) error {
	if err := OrderPaymentTransitions.Check(o.Status, OrderPaymentPaid); err != nil {
		return err
	}
	if amount.IsNegative() {
		return shared.NewValidationError("paid_amount", "must not be negative")
	}
	if !amount.Equal(o.Amount) {
		return shared.NewValidationError("paid_amount",
			fmt.Sprintf("paid %s does not match order amount %s", amount.String(), o.Amount.String()))
	}
	o.Status = OrderPaymentPaid
	o.PaymentID = paymentID
	o.TransactionID = transactionID
	o.PaymentMethod = method
	o.PaidAmount = amount
	o.PaidAt = &paidAt
	o.LastAttemptFailed = false
	o.Touch(paidAt)
	o.IncrementVersion()
	return nil
}

// RecordFailedAttempt flags a failed attempt on a still-payable order without cancelling it.
// It returns false when the order is no longer pre-payment and nothing was recorded.
func (o *OrderPayment) RecordFailedAttempt(code, message string, now time.Time) bool {
	if o.Status != OrderPaymentPending {
		return false
	}
	o.LastAttemptFailed = true
	o.FailedAttempts++
	o.LastFailureCode = code
	o.LastFailureMessage = message
	o.LastFailedAt = &now
	o.Touch(now)
	o.IncrementVersion()
	return true
}

// Cancel cancels an unpaid order
func (o *OrderPayment) Cancel(now time.Time) error {
	if err := OrderPaymentTransitions.Check(o.Status, OrderPaymentCancelled); err != nil {
		return err
	}
	o.Status = OrderPaymentCancelled
	o.Touch(now)
	o.IncrementVersion()
	return nil
}

// GetTenantID returns the owning tenant
func (o *OrderPayment) GetTenantID() uuid.UUID {
	return o.TenantID
}

// StatusString returns the status for audit rows
func (o *OrderPayment) StatusString() string {
	return string(o.Status)
}

// Snapshot returns the audit view of the order payment
func (o *OrderPayment) Snapshot() map[string]any {
	return map[string]any{
		"status":              string(o.Status),
		"paid_amount":         o.PaidAmount.String(),
		"payment_id":          o.PaymentID,
		"last_attempt_failed": o.LastAttemptFailed,
		"failed_attempts":     o.FailedAttempts,
		"version":             o.Version,
	}
}

var _ shared.Guarded = (*OrderPayment)(nil)

// OrderPaymentRepository persists order payment state
type OrderPaymentRepository interface {
	Create(ctx context.Context, o *OrderPayment) error
	// FindByOrderID returns ErrNotFound when the order is unknown
	FindByOrderID(ctx context.Context, tenantID, orderID uuid.UUID) (*OrderPayment, error)
	SaveWithLock(ctx context.Context, o *OrderPayment) error
}
