package settlement

import (
	"context"
	"strings"
	"time"

	"github.com/Renagang21/o4o-platform-sub111/internal/application/transition"
	"github.com/Renagang21/o4o-platform-sub111/internal/domain/commission"
	"github.com/Renagang21/o4o-platform-sub111/internal/domain/settlement"
	"github.com/Renagang21/o4o-platform-sub111/internal/domain/shared"
	"github.com/Renagang21/o4o-platform-sub111/internal/infrastructure/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PaymentMethodSettlement is the payment method stamped on commissions paid with their batch
const PaymentMethodSettlement = "settlement"

// SummaryInput selects the beneficiary, settlement type and currency to summarize
type SummaryInput struct {
	TenantID       uuid.UUID
	BeneficiaryID  uuid.UUID
	SettlementType settlement.SettlementType
	Currency       string
}

// Service closes and pays settlement batches and serves their read side
type Service struct {
	batchRepo      settlement.BatchRepository
	commissionRepo commission.Repository
	summary        settlement.SummaryReader
	engine         *transition.Engine
	publisher      shared.EventPublisher
	logger         *zap.Logger
	now            func() time.Time
}

// Option configures a Service
type Option func(*Service)

// WithClock overrides the wall clock
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// NewService creates a new settlement service
func NewService(
	batchRepo settlement.BatchRepository,
	commissionRepo commission.Repository,
	summary settlement.SummaryReader,
	engine *transition.Engine,
	publisher shared.EventPublisher,
	logger *zap.Logger,
	opts ...Option,
) *Service {
	s := &Service{
		batchRepo:      batchRepo,
		commissionRepo: commissionRepo,
		summary:        summary,
		engine:         engine,
		publisher:      publisher,
		logger:         logger,
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	engine.Register(settlement.BatchTransitions)
	return s
}

// Close recomputes the batch sums from its attached commissions and moves it to CLOSED.
// The pending check is repeated inside the transaction that flips the status, and the
// version check fails the close if any attached commission changed since it was loaded.
// settlement.closed is published only after commit; what the sink does with it never
// affects the batch.
func (s *Service) Close(ctx context.Context, tenantID, batchID uuid.UUID, actor string) (*settlement.Batch, error) {
	log := logger.For(ctx, s.logger)

	b, err := s.batchRepo.FindByID(ctx, tenantID, batchID)
	if err != nil {
		return nil, err
	}
	attached, err := s.commissionRepo.FindByBatch(ctx, tenantID, batchID)
	if err != nil {
		return nil, err
	}
	now := s.now()

	change := transition.Change{EntityType: settlement.EntityType, Action: "close", Actor: actor}
	err = transition.Execute(ctx, s.engine, b, change,
		func(b *settlement.Batch) error { return b.Close(attached, actor, now) },
		func(ctx context.Context, b *settlement.Batch) error {
			pending, err := s.commissionRepo.CountByBatchAndStatus(ctx, b.ID, commission.StatusPending)
			if err != nil {
				return err
			}
			if pending > 0 {
				return shared.NewOpenCommissionsRemainingError(b.ID.String(), pending)
			}
			return s.batchRepo.SaveWithLock(ctx, b)
		},
	)
	if err != nil {
		return nil, err
	}

	log.Info("settlement batch closed",
		zap.String("batch_id", b.ID.String()),
		zap.String("beneficiary_id", b.BeneficiaryID.String()),
		zap.Int("commission_count", b.CommissionCount),
		zap.String("net_amount", b.NetAmount.String()),
	)
	transition.Flush(ctx, s.publisher, log, b)
	return b, nil
}

// MarkPaid moves a CLOSED batch to PAID and pays every CONFIRMED commission attached to it
// with method "settlement" and the batch id as reference, all in one transaction.
func (s *Service) MarkPaid(ctx context.Context, tenantID, batchID uuid.UUID, actor string) (*settlement.Batch, error) {
	log := logger.For(ctx, s.logger)

	b, err := s.batchRepo.FindByID(ctx, tenantID, batchID)
	if err != nil {
		return nil, err
	}
	attached, err := s.commissionRepo.FindByBatch(ctx, tenantID, batchID)
	if err != nil {
		return nil, err
	}
	now := s.now()
	paid := make([]shared.AggregateRoot, 0, len(attached)+1)

	change := transition.Change{EntityType: settlement.EntityType, Action: "mark_paid", Actor: actor}
	err = transition.Execute(ctx, s.engine, b, change,
		func(b *settlement.Batch) error { return b.MarkPaid(actor, now) },
		func(ctx context.Context, b *settlement.Batch) error {
			if err := s.batchRepo.SaveWithLock(ctx, b); err != nil {
				return err
			}
			for _, c := range attached {
				if c.Status != commission.StatusConfirmed {
					continue
				}
				payChange := transition.Change{EntityType: commission.EntityType, Action: "mark_paid", Actor: actor, Reason: b.ID.String()}
				err := transition.Execute(ctx, s.engine, c, payChange,
					func(c *commission.Commission) error {
						return c.MarkPaid(PaymentMethodSettlement, b.ID.String(), now)
					},
					func(ctx context.Context, c *commission.Commission) error {
						return s.commissionRepo.SaveWithLock(ctx, c)
					},
				)
				if err != nil {
					return err
				}
				paid = append(paid, c)
			}
			return nil
		},
	)
	if err != nil {
		return nil, err
	}

	log.Info("settlement batch paid",
		zap.String("batch_id", b.ID.String()),
		zap.Int("commissions_paid", len(paid)),
	)
	transition.Flush(ctx, s.publisher, log, append([]shared.AggregateRoot{b}, paid...)...)
	return b, nil
}

// Summary aggregates settled, pending and current-period figures for one beneficiary,
// settlement type and currency. It only reads.
func (s *Service) Summary(ctx context.Context, in SummaryInput) (*settlement.Summary, error) {
	if in.TenantID == uuid.Nil {
		return nil, shared.NewValidationError("tenant_id", "is required")
	}
	if in.BeneficiaryID == uuid.Nil {
		return nil, shared.NewValidationError("beneficiary_id", "is required")
	}
	if !in.SettlementType.IsValid() {
		return nil, shared.NewValidationError("settlement_type", "unknown settlement type")
	}
	currency := strings.ToUpper(strings.TrimSpace(in.Currency))
	if len(currency) != 3 {
		return nil, shared.NewValidationError("currency", "must be a 3-letter currency code")
	}

	key := settlement.SummaryKey{
		TenantID:       in.TenantID,
		BeneficiaryID:  in.BeneficiaryID,
		SettlementType: in.SettlementType,
		Currency:       currency,
	}
	period := settlement.MonthlyPeriod(s.now())

	settled, err := s.summary.SumBatchNet(ctx, key, settlement.BatchStatusPaid)
	if err != nil {
		return nil, err
	}
	closed, err := s.summary.SumBatchNet(ctx, key, settlement.BatchStatusClosed)
	if err != nil {
		return nil, err
	}
	unsettledTotal, unsettledCommission, err := s.summary.SumUnsettledCommissions(ctx, key)
	if err != nil {
		return nil, err
	}
	sales, err := s.summary.SumSales(ctx, key, period)
	if err != nil {
		return nil, err
	}

	return &settlement.Summary{
		BeneficiaryID:      in.BeneficiaryID,
		SettlementType:     in.SettlementType,
		Currency:           currency,
		TotalSettled:       settled,
		PendingSettlement:  closed.Add(in.SettlementType.Net(unsettledTotal, unsettledCommission)),
		CurrentPeriodSales: sales,
		PeriodStart:        period.Start,
		PeriodEnd:          period.End,
	}, nil
}

// Get returns one batch of a tenant
func (s *Service) Get(ctx context.Context, tenantID, batchID uuid.UUID) (*settlement.Batch, error) {
	return s.batchRepo.FindByID(ctx, tenantID, batchID)
}

// List returns a page of batches
func (s *Service) List(ctx context.Context, tenantID uuid.UUID, filter settlement.BatchFilter) (shared.Paginated[*settlement.Batch], error) {
	filter.Filter = filter.Filter.Normalize()
	items, total, err := s.batchRepo.List(ctx, tenantID, filter)
	if err != nil {
		return shared.Paginated[*settlement.Batch]{}, err
	}
	return shared.NewPaginated(items, total, filter.Page, filter.PageSize), nil
}

// Commissions lists the commissions attached to a batch
func (s *Service) Commissions(ctx context.Context, tenantID, batchID uuid.UUID) ([]*commission.Commission, error) {
	if _, err := s.batchRepo.FindByID(ctx, tenantID, batchID); err != nil {
		return nil, err
	}
	return s.commissionRepo.FindByBatch(ctx, tenantID, batchID)
}

// History returns the audit trail of a batch, oldest first
func (s *Service) History(ctx context.Context, tenantID, batchID uuid.UUID) ([]shared.AuditEntry, error) {
	if _, err := s.batchRepo.FindByID(ctx, tenantID, batchID); err != nil {
		return nil, err
	}
	return s.engine.History(ctx, settlement.EntityType, batchID)
}
