package event

import (
	"github.com/Renagang21/o4o-platform-sub111/internal/domain/commission"
	"github.com/Renagang21/o4o-platform-sub111/internal/domain/payment"
	"github.com/Renagang21/o4o-platform-sub111/internal/domain/settlement"
)

// RegisterLedgerEvents registers every event type the ledger stores or forwards,
// so event log payloads can be replayed and forwarded messages decoded.
func RegisterLedgerEvents(serializer *EventSerializer) {
	// Inbound payment events
	serializer.Register(payment.EventTypePaymentCompleted, &payment.PaymentCompletedEvent{})
	serializer.Register(payment.EventTypePaymentFailed, &payment.PaymentFailedEvent{})

	// Commission ledger
	serializer.Register(commission.EventTypeCommissionCreated, &commission.CommissionCreatedEvent{})
	serializer.Register(commission.EventTypeCommissionConfirmed, &commission.CommissionConfirmedEvent{})
	serializer.Register(commission.EventTypeCommissionPaid, &commission.CommissionPaidEvent{})
	serializer.Register(commission.EventTypeCommissionCancelled, &commission.CommissionCancelledEvent{})
	serializer.Register(commission.EventTypeCommissionAdjusted, &commission.CommissionAdjustedEvent{})

	// Settlement
	serializer.Register(settlement.EventTypeSettlementClosed, &settlement.SettlementClosedEvent{})
	serializer.Register(settlement.EventTypeSettlementPaid, &settlement.SettlementPaidEvent{})
}
