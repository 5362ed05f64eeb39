package payment

import (
	"time"

	"github.com/Renagang21/o4o-platform-sub111/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Inbound event types published by the external payment subsystem
const (
	EventTypePaymentCompleted = "payment.completed"
	EventTypePaymentFailed    = "payment.failed"
)

// AggregateTypeOrderPayment is the aggregate type payment events refer to
const AggregateTypeOrderPayment = "OrderPayment"

// Attribution metadata keys carried by payment.completed when the sale was referred
const (
	MetaConversionID    = "conversion_id"
	MetaBeneficiaryID   = "beneficiary_id"
	MetaBeneficiaryType = "beneficiary_type"
	MetaProductID       = "product_id"
	MetaPolicyID        = "policy_id"
)

// DedupKey builds the identity used to recognize a redelivered event.
// The upstream event id wins when present, otherwise the payment id is used.
func DedupKey(upstreamID, paymentID string, orderID uuid.UUID) string {
	id := paymentID
	if upstreamID != "" {
		id = upstreamID
	}
	return id + ":" + orderID.String()
}

// PaymentCompletedEvent reports a successful payment for an order
type PaymentCompletedEvent struct {
	shared.BaseDomainEvent
	UpstreamEventID string            `json:"event_id,omitempty"`
	PaymentID       string            `json:"payment_id"`
	TransactionID   string            `json:"transaction_id"`
	OrderID         uuid.UUID         `json:"order_id"`
	PaidAmount      decimal.Decimal   `json:"paid_amount"`
	PaymentMethod   string            `json:"payment_method"`
	ApprovedAt      time.Time         `json:"approved_at"`
	Metadata        map[string]string `json:"metadata,omitempty"`
}

// NewPaymentCompletedEvent creates a payment.completed event routed to scope.
// An empty upstream event id leaves dedup to the payment id.
func NewPaymentCompletedEvent(upstreamID string, tenantID uuid.UUID, scope string, paymentID, transactionID string, orderID uuid.UUID, amount decimal.Decimal, method string, approvedAt time.Time, metadata map[string]string) *PaymentCompletedEvent {
	base := shared.NewScopedDomainEvent(EventTypePaymentCompleted, AggregateTypeOrderPayment, scope, orderID, tenantID)
	return &PaymentCompletedEvent{
		BaseDomainEvent: base,
		UpstreamEventID: upstreamID,
		PaymentID:       paymentID,
		TransactionID:   transactionID,
		OrderID:         orderID,
		PaidAmount:      amount,
		PaymentMethod:   method,
		ApprovedAt:      approvedAt,
		Metadata:        metadata,
	}
}

// DedupKey returns the redelivery identity of the event
func (e *PaymentCompletedEvent) DedupKey() string {
	return DedupKey(e.UpstreamEventID, e.PaymentID, e.OrderID)
}

// PaymentFailedEvent reports a failed payment attempt for an order
type PaymentFailedEvent struct {
	shared.BaseDomainEvent
	UpstreamEventID string    `json:"event_id,omitempty"`
	PaymentID       string    `json:"payment_id"`
	OrderID         uuid.UUID `json:"order_id"`
	ErrorCode       string    `json:"error_code"`
	ErrorMessage    string    `json:"error_message"`
}

// NewPaymentFailedEvent creates a payment.failed event routed to scope
func NewPaymentFailedEvent(upstreamID string, tenantID uuid.UUID, scope string, paymentID string, orderID uuid.UUID, code, message string) *PaymentFailedEvent {
	base := shared.NewScopedDomainEvent(EventTypePaymentFailed, AggregateTypeOrderPayment, scope, orderID, tenantID)
	return &PaymentFailedEvent{
		BaseDomainEvent: base,
		UpstreamEventID: upstreamID,
		PaymentID:       paymentID,
		OrderID:         orderID,
		ErrorCode:       code,
		ErrorMessage:    message,
	}
}

// DedupKey returns the redelivery identity of the event
func (e *PaymentFailedEvent) DedupKey() string {
	return DedupKey(e.UpstreamEventID, e.PaymentID, e.OrderID)
}
