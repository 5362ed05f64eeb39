package payment

import (
	"context"
	"strings"
	"time"

	"github.com/Renagang21/o4o-platform-sub111/internal/application/transition"
	"github.com/Renagang21/o4o-platform-sub111/internal/domain/payment"
	"github.com/Renagang21/o4o-platform-sub111/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// RegisterOrderInput registers an order that awaits payment
type RegisterOrderInput struct {
	TenantID uuid.UUID
	OrderID  uuid.UUID
	Amount   decimal.Decimal
	Currency string
	Actor    string
}

// OrderPaymentService registers orders and exposes their payment state
type OrderPaymentService struct {
	repo   payment.OrderPaymentRepository
	engine *transition.Engine
	logger *zap.Logger
	now    func() time.Time
}

// NewOrderPaymentService creates a new OrderPaymentService
func NewOrderPaymentService(repo payment.OrderPaymentRepository, engine *transition.Engine, logger *zap.Logger, now func() time.Time) *OrderPaymentService {
	if now == nil {
		now = time.Now
	}
	engine.Register(payment.OrderPaymentTransitions)
	return &OrderPaymentService{repo: repo, engine: engine, logger: logger, now: now}
}

// Register creates the PENDING payment record of an order
func (s *OrderPaymentService) Register(ctx context.Context, in RegisterOrderInput) (*payment.OrderPayment, error) {
	op, err := payment.NewOrderPayment(in.TenantID, in.OrderID, in.Amount, strings.ToUpper(in.Currency), s.now())
	if err != nil {
		return nil, err
	}
	change := transition.Change{EntityType: payment.EntityTypeOrderPayment, Action: "register", Actor: in.Actor}
	err = transition.Record(ctx, s.engine, op, change, func(ctx context.Context, op *payment.OrderPayment) error {
		return s.repo.Create(ctx, op)
	})
	if err != nil {
		return nil, err
	}
	return op, nil
}

// Cancel cancels an order that was never paid
func (s *OrderPaymentService) Cancel(ctx context.Context, tenantID, orderID uuid.UUID, reason, actor string) (*payment.OrderPayment, error) {
	op, err := s.repo.FindByOrderID(ctx, tenantID, orderID)
	if err != nil {
		return nil, err
	}
	now := s.now()
	change := transition.Change{EntityType: payment.EntityTypeOrderPayment, Action: "cancel", Actor: actor, Reason: reason}
	err = transition.Execute(ctx, s.engine, op, change,
		func(op *payment.OrderPayment) error { return op.Cancel(now) },
		func(ctx context.Context, op *payment.OrderPayment) error { return s.repo.SaveWithLock(ctx, op) },
	)
	if err != nil {
		return nil, err
	}
	return op, nil
}

// Get returns the payment state of an order
func (s *OrderPaymentService) Get(ctx context.Context, tenantID, orderID uuid.UUID) (*payment.OrderPayment, error) {
	return s.repo.FindByOrderID(ctx, tenantID, orderID)
}

// History returns the audit trail of an order payment, oldest first
func (s *OrderPaymentService) History(ctx context.Context, tenantID, orderID uuid.UUID) ([]shared.AuditEntry, error) {
	if _, err := s.repo.FindByOrderID(ctx, tenantID, orderID); err != nil {
		return nil, err
	}
	return s.engine.History(ctx, payment.EntityTypeOrderPayment, orderID)
}
