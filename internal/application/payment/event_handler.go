package payment

import (
	"context"
	"errors"
	"fmt"
	"time"

	appcommission "github.com/Renagang21/o4o-platform-sub111/internal/application/commission"
	"github.com/Renagang21/o4o-platform-sub111/internal/application/transition"
	"github.com/Renagang21/o4o-platform-sub111/internal/domain/commission"
	"github.com/Renagang21/o4o-platform-sub111/internal/domain/payment"
	"github.com/Renagang21/o4o-platform-sub111/internal/domain/shared"
	"github.com/Renagang21/o4o-platform-sub111/internal/infrastructure/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// eventActor is recorded on audit rows written for inbound payment events
const eventActor = "system:payment-event"

// CommissionCreator creates the commission of an attributed sale
type CommissionCreator interface {
	CreateFromConversion(ctx context.Context, in appcommission.CreateInput) (*commission.Commission, error)
}

// EventHandler applies payment.completed and payment.failed to order payments.
// Every step checks the current state first, so applying the same event twice
// changes nothing even when the dedup window no longer remembers it.
type EventHandler struct {
	txManager   shared.TransactionManager
	payments    payment.OrderPaymentRepository
	engine      *transition.Engine
	commissions CommissionCreator
	logger      *zap.Logger
	now         func() time.Time
}

// NewEventHandler creates a new EventHandler. commissions may be nil when
// attribution is handled elsewhere.
func NewEventHandler(txManager shared.TransactionManager, payments payment.OrderPaymentRepository, engine *transition.Engine, commissions CommissionCreator, logger *zap.Logger, now func() time.Time) *EventHandler {
	if now == nil {
		now = time.Now
	}
	return &EventHandler{
		txManager:   txManager,
		payments:    payments,
		engine:      engine,
		commissions: commissions,
		logger:      logger,
		now:         now,
	}
}

// EventTypes returns the event types this handler is interested in
func (h *EventHandler) EventTypes() []string {
	return []string{payment.EventTypePaymentCompleted, payment.EventTypePaymentFailed}
}

// Handle processes the event and drops the outcome
func (h *EventHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	_, err := h.Process(ctx, event)
	return err
}

// Process applies one payment event and reports what happened
func (h *EventHandler) Process(ctx context.Context, event shared.DomainEvent) (shared.HandleResult, error) {
	switch e := event.(type) {
	case *payment.PaymentCompletedEvent:
		return h.complete(ctx, e)
	case *payment.PaymentFailedEvent:
		return h.fail(ctx, e)
	default:
		return shared.Failed("unsupported event type " + event.EventType()), nil
	}
}

// complete marks the order paid and creates the commission of an attributed sale in
// the same transaction. An order that is already paid is Skipped; an order that can
// no longer be paid is Failed with the reason.
func (h *EventHandler) complete(ctx context.Context, e *payment.PaymentCompletedEvent) (shared.HandleResult, error) {
	log := logger.For(ctx, h.logger).With(
		zap.String("order_id", e.OrderID.String()),
		zap.String("payment_id", e.PaymentID),
	)
	paidAt := e.ApprovedAt
	if paidAt.IsZero() {
		paidAt = h.now()
	}

	var result shared.HandleResult
	err := h.txManager.InTransaction(ctx, func(ctx context.Context) error {
		op, err := h.payments.FindByOrderID(ctx, e.TenantID(), e.OrderID)
		if errors.Is(err, shared.ErrNotFound) {
			result = shared.Failed(fmt.Sprintf("order %s is not registered", e.OrderID))
			return nil
		}
		if err != nil {
			return err
		}
		if op.IsPaid() {
			result = shared.Skipped(fmt.Sprintf("order %s is already %s", op.OrderID, op.Status))
			return nil
		}
		if !op.IsPayable() {
			result = shared.Failed(fmt.Sprintf("order %s is %s and cannot be paid", op.OrderID, op.Status))
			return nil
		}

		change := transition.Change{EntityType: payment.EntityTypeOrderPayment, Action: "mark_paid", Actor: eventActor, Reason: e.TransactionID}
		err = transition.Execute(ctx, h.engine, op, change,
			func(op *payment.OrderPayment) error {
				return op.MarkPaid(e.PaymentID, e.TransactionID, e.PaymentMethod, e.PaidAmount, paidAt)
			},
			func(ctx context.Context, op *payment.OrderPayment) error { return h.payments.SaveWithLock(ctx, op) },
		)
		if errors.Is(err, shared.ErrValidation) {
			result = shared.Failed(err.Error())
			return nil
		}
		if err != nil {
			return err
		}

		if err := h.attribute(ctx, log, e, op); err != nil {
			return err
		}
		result = shared.Processed()
		return nil
	})
	if err != nil {
		return shared.HandleResult{}, err
	}

	if result.Outcome != shared.OutcomeProcessed {
		log.Info("payment completion not applied",
			zap.String("outcome", string(result.Outcome)),
			zap.String("reason", result.Reason),
		)
	}
	return result, nil
}

// attribute creates the commission for a referred sale. Broken attribution never blocks
// the payment itself: it is logged and the order stays paid.
func (h *EventHandler) attribute(ctx context.Context, log *zap.Logger, e *payment.PaymentCompletedEvent, op *payment.OrderPayment) error {
	if h.commissions == nil {
		return nil
	}
	in, ok, err := conversionFrom(e, op)
	if err != nil {
		log.Warn("ignoring invalid attribution metadata", zap.Error(err))
		return nil
	}
	if !ok {
		return nil
	}

	c, err := h.commissions.CreateFromConversion(ctx, in)
	switch {
	case err == nil:
		log.Info("commission created for payment", zap.String("commission_id", c.ID.String()))
		return nil
	case errors.Is(err, shared.ErrDuplicateConversion):
		log.Info("conversion already has a commission", zap.String("conversion_id", in.Conversion.ConversionID))
		return nil
	case errors.Is(err, shared.ErrValidation), errors.Is(err, shared.ErrNotFound):
		log.Warn("commission not created for payment",
			zap.String("conversion_id", in.Conversion.ConversionID),
			zap.Error(err),
		)
		return nil
	default:
		return err
	}
}

// fail records a failed attempt on an order that is still awaiting payment.
// The order is never cancelled by a failed attempt.
func (h *EventHandler) fail(ctx context.Context, e *payment.PaymentFailedEvent) (shared.HandleResult, error) {
	log := logger.For(ctx, h.logger).With(
		zap.String("order_id", e.OrderID.String()),
		zap.String("payment_id", e.PaymentID),
	)
	now := h.now()

	var result shared.HandleResult
	err := h.txManager.InTransaction(ctx, func(ctx context.Context) error {
		op, err := h.payments.FindByOrderID(ctx, e.TenantID(), e.OrderID)
		if errors.Is(err, shared.ErrNotFound) {
			result = shared.Failed(fmt.Sprintf("order %s is not registered", e.OrderID))
			return nil
		}
		if err != nil {
			return err
		}
		if op.Status != payment.OrderPaymentPending {
			result = shared.Skipped(fmt.Sprintf("order %s is %s, failed attempt ignored", op.OrderID, op.Status))
			return nil
		}

		change := transition.Change{EntityType: payment.EntityTypeOrderPayment, Action: "payment_failed", Actor: eventActor, Reason: e.ErrorCode}
		err = transition.Execute(ctx, h.engine, op, change,
			func(op *payment.OrderPayment) error {
				if !op.RecordFailedAttempt(e.ErrorCode, e.ErrorMessage, now) {
					return shared.NewDomainError(shared.CodeInvalidState, "order is no longer awaiting payment")
				}
				return nil
			},
			func(ctx context.Context, op *payment.OrderPayment) error { return h.payments.SaveWithLock(ctx, op) },
		)
		if err != nil {
			return err
		}
		result = shared.Processed()
		return nil
	})
	if err != nil {
		return shared.HandleResult{}, err
	}

	log.Info("payment failure handled",
		zap.String("error_code", e.ErrorCode),
		zap.String("outcome", string(result.Outcome)),
		zap.String("reason", result.Reason),
	)
	return result, nil
}

// conversionFrom reads the attribution carried in the event metadata. It reports
// false when the sale was not referred.
func conversionFrom(e *payment.PaymentCompletedEvent, op *payment.OrderPayment) (appcommission.CreateInput, bool, error) {
	conversionID := e.Metadata[payment.MetaConversionID]
	if conversionID == "" {
		return appcommission.CreateInput{}, false, nil
	}

	beneficiaryID, err := uuid.Parse(e.Metadata[payment.MetaBeneficiaryID])
	if err != nil {
		return appcommission.CreateInput{}, false, fmt.Errorf("beneficiary_id: %w", err)
	}
	policyID, err := uuid.Parse(e.Metadata[payment.MetaPolicyID])
	if err != nil {
		return appcommission.CreateInput{}, false, fmt.Errorf("policy_id: %w", err)
	}
	var productID uuid.UUID
	if raw := e.Metadata[payment.MetaProductID]; raw != "" {
		if productID, err = uuid.Parse(raw); err != nil {
			return appcommission.CreateInput{}, false, fmt.Errorf("product_id: %w", err)
		}
	}
	beneficiaryType := commission.BeneficiaryType(e.Metadata[payment.MetaBeneficiaryType])
	if beneficiaryType == "" {
		beneficiaryType = commission.BeneficiaryPartner
	}
	if !beneficiaryType.IsValid() {
		return appcommission.CreateInput{}, false, fmt.Errorf("beneficiary_type: unknown value %q", beneficiaryType)
	}

	return appcommission.CreateInput{
		Conversion: commission.Conversion{
			ConversionID:    conversionID,
			TenantID:        op.TenantID,
			BeneficiaryID:   beneficiaryID,
			BeneficiaryType: beneficiaryType,
			ProductID:       productID,
			OrderID:         op.OrderID,
			OrderAmount:     op.PaidAmount,
			Currency:        op.Currency,
		},
		PolicyID: policyID,
		Actor:    eventActor,
	}, true, nil
}

var _ shared.ResultHandler = (*EventHandler)(nil)
