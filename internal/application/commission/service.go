package commission

import (
	"context"
	"errors"
	"time"

	"github.com/Renagang21/o4o-platform-sub111/internal/application/transition"
	"github.com/Renagang21/o4o-platform-sub111/internal/domain/commission"
	"github.com/Renagang21/o4o-platform-sub111/internal/domain/shared"
	"github.com/Renagang21/o4o-platform-sub111/internal/infrastructure/logger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ConfirmMetrics receives the outcome of each confirm sweep
type ConfirmMetrics interface {
	ObserveConfirmRun(elapsed time.Duration, confirmed, notYetEligible, failed int)
}

// CreateInput is a conversion attributed to a beneficiary under a policy
type CreateInput struct {
	Conversion commission.Conversion
	PolicyID   uuid.UUID
	Actor      string
}

// ConfirmRunResult summarizes one confirm sweep
type ConfirmRunResult struct {
	Scanned        int `json:"scanned"`
	Confirmed      int `json:"confirmed"`
	NotYetEligible int `json:"not_yet_eligible"`
	Failed         int `json:"failed"`
}

// Service drives commissions through their lifecycle
type Service struct {
	txManager      shared.TransactionManager
	commissionRepo commission.Repository
	policyRepo     commission.PolicyRepository
	assigner       *BatchAssigner
	engine         *transition.Engine
	publisher      shared.EventPublisher
	rateCaps       commission.RateCaps
	metrics        ConfirmMetrics
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

// WithConfirmMetrics sets the sink for confirm sweep metrics
func WithConfirmMetrics(m ConfirmMetrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// NewService creates a new commission service
func NewService(
	txManager shared.TransactionManager,
	commissionRepo commission.Repository,
	policyRepo commission.PolicyRepository,
	assigner *BatchAssigner,
	engine *transition.Engine,
	publisher shared.EventPublisher,
	rateCaps commission.RateCaps,
	logger *zap.Logger,
	opts ...Option,
) *Service {
	s := &Service{
		txManager:      txManager,
		commissionRepo: commissionRepo,
		policyRepo:     policyRepo,
		assigner:       assigner,
		engine:         engine,
		publisher:      publisher,
		rateCaps:       rateCaps,
		logger:         logger,
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	engine.Register(commission.Transitions)
	return s
}

// CreateFromConversion creates the PENDING commission for a conversion and attaches it
// to the beneficiary's open batch. A second call for the same conversion fails with
// DuplicateConversion, enforced by the storage uniqueness constraint.
func (s *Service) CreateFromConversion(ctx context.Context, in CreateInput) (*commission.Commission, error) {
	log := logger.For(ctx, s.logger)
	now := s.now()

	policy, err := s.policyRepo.FindByID(ctx, in.Conversion.TenantID, in.PolicyID)
	if err != nil {
		return nil, err
	}
	if !policy.Active {
		return nil, shared.NewValidationError("policy_id", "policy is not active")
	}

	existing, err := s.commissionRepo.FindByConversionID(ctx, in.Conversion.TenantID, in.Conversion.ConversionID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		log.Info("conversion already has a commission",
			zap.String("conversion_id", in.Conversion.ConversionID),
			zap.String("commission_id", existing.ID.String()),
		)
		return nil, shared.NewDuplicateConversionError(in.Conversion.ConversionID)
	}

	c, err := commission.NewCommission(in.Conversion, policy.Snapshot(now), s.rateCaps, now)
	if err != nil {
		return nil, err
	}

	change := transition.Change{EntityType: commission.EntityType, Action: "create", Actor: in.Actor}
	err = transition.Record(ctx, s.engine, c, change, func(ctx context.Context, c *commission.Commission) error {
		if _, err := s.assigner.Assign(ctx, c, now); err != nil {
			return err
		}
		return s.commissionRepo.Create(ctx, c)
	})
	if err != nil {
		return nil, err
	}

	transition.Flush(ctx, s.publisher, log, c)
	return c, nil
}

// Confirm confirms a commission whose hold period has elapsed
func (s *Service) Confirm(ctx context.Context, tenantID, id uuid.UUID, actor string) (*commission.Commission, error) {
	return s.transition(ctx, tenantID, id, transition.Change{EntityType: commission.EntityType, Action: "confirm", Actor: actor},
		func(c *commission.Commission, now time.Time) error { return c.Confirm(now) },
	)
}

// MarkPaid records the payout of a confirmed commission outside its batch. The batch
// must still be OPEN; its close then leaves the paid commission out of the sums.
func (s *Service) MarkPaid(ctx context.Context, tenantID, id uuid.UUID, method, reference, actor string) (*commission.Commission, error) {
	return s.transition(ctx, tenantID, id, transition.Change{EntityType: commission.EntityType, Action: "mark_paid", Actor: actor, Reason: reference},
		func(c *commission.Commission, now time.Time) error { return c.MarkPaid(method, reference, now) },
	)
}

// Cancel irreversibly cancels a pending or confirmed commission
func (s *Service) Cancel(ctx context.Context, tenantID, id uuid.UUID, reason, actor string) (*commission.Commission, error) {
	return s.transition(ctx, tenantID, id, transition.Change{EntityType: commission.EntityType, Action: "cancel", Actor: actor, Reason: reason},
		func(c *commission.Commission, now time.Time) error { return c.Cancel(reason, actor, now) },
	)
}

// AdjustAmount replaces the commission amount, appending to its adjustment history
func (s *Service) AdjustAmount(ctx context.Context, tenantID, id uuid.UUID, newAmount decimal.Decimal, reason, actor string) (*commission.Commission, error) {
	return s.transition(ctx, tenantID, id, transition.Change{EntityType: commission.EntityType, Action: "adjust", Actor: actor, Reason: reason},
		func(c *commission.Commission, now time.Time) error {
			return c.AdjustAmount(newAmount, reason, actor, now)
		},
	)
}

// Enrich sets a metadata key on a commission of any status
func (s *Service) Enrich(ctx context.Context, tenantID, id uuid.UUID, key, value string) (*commission.Commission, error) {
	c, err := s.commissionRepo.FindByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if err := c.Enrich(key, value, s.now()); err != nil {
		return nil, err
	}
	if err := s.commissionRepo.SaveWithLock(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// transition loads the commission and applies mutate through the guarded engine.
// Touching the batch serializes the change against a close of the commission's batch.
func (s *Service) transition(ctx context.Context, tenantID, id uuid.UUID, change transition.Change, mutate func(*commission.Commission, time.Time) error) (*commission.Commission, error) {
	c, err := s.commissionRepo.FindByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	now := s.now()

	err = transition.Execute(ctx, s.engine, c, change,
		func(c *commission.Commission) error { return mutate(c, now) },
		func(ctx context.Context, c *commission.Commission) error {
			if err := s.assigner.Touch(ctx, c, now); err != nil {
				return err
			}
			return s.commissionRepo.SaveWithLock(ctx, c)
		},
	)
	if err != nil {
		return nil, err
	}

	transition.Flush(ctx, s.publisher, logger.For(ctx, s.logger), c)
	return c, nil
}

// ConfirmEligible confirms up to limit commissions whose hold period has elapsed.
// It is safe to run redundantly: a commission that is not yet eligible, or that a
// concurrent run already confirmed, is counted and skipped.
func (s *Service) ConfirmEligible(ctx context.Context, limit int) (ConfirmRunResult, error) {
	start := time.Now()
	log := logger.For(ctx, s.logger)

	candidates, err := s.commissionRepo.FindEligibleForConfirm(ctx, s.now(), limit)
	if err != nil {
		return ConfirmRunResult{}, err
	}

	result := ConfirmRunResult{Scanned: len(candidates)}
	for _, c := range candidates {
		_, err := s.Confirm(ctx, c.TenantID, c.ID, "system:confirm-trigger")
		switch {
		case err == nil:
			result.Confirmed++
		case errors.Is(err, shared.ErrHoldPeriodActive):
			result.NotYetEligible++
		case errors.Is(err, shared.ErrInvalidTransition), errors.Is(err, shared.ErrConcurrencyConflict):
			log.Info("commission changed during confirm sweep",
				zap.String("commission_id", c.ID.String()),
				zap.Error(err),
			)
		default:
			result.Failed++
			log.Error("failed to confirm commission",
				zap.String("commission_id", c.ID.String()),
				zap.String("tenant_id", c.TenantID.String()),
				zap.Error(err),
			)
		}
	}

	if s.metrics != nil {
		s.metrics.ObserveConfirmRun(time.Since(start), result.Confirmed, result.NotYetEligible, result.Failed)
	}
	log.Info("confirm sweep finished",
		zap.Int("scanned", result.Scanned),
		zap.Int("confirmed", result.Confirmed),
		zap.Int("not_yet_eligible", result.NotYetEligible),
		zap.Int("failed", result.Failed),
	)
	return result, nil
}

// GetByID returns one commission of a tenant
func (s *Service) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*commission.Commission, error) {
	return s.commissionRepo.FindByID(ctx, tenantID, id)
}

// List returns a page of commissions
func (s *Service) List(ctx context.Context, tenantID uuid.UUID, filter commission.ListFilter) (shared.Paginated[*commission.Commission], error) {
	filter.Filter = filter.Filter.Normalize()
	items, total, err := s.commissionRepo.List(ctx, tenantID, filter)
	if err != nil {
		return shared.Paginated[*commission.Commission]{}, err
	}
	return shared.NewPaginated(items, total, filter.Page, filter.PageSize), nil
}

// History returns the audit trail of a commission, oldest first
func (s *Service) History(ctx context.Context, tenantID, id uuid.UUID) ([]shared.AuditEntry, error) {
	if _, err := s.commissionRepo.FindByID(ctx, tenantID, id); err != nil {
		return nil, err
	}
	return s.engine.History(ctx, commission.EntityType, id)
}

// AllowedTransitions returns the statuses a commission may move to from status
func (s *Service) AllowedTransitions(status string) ([]string, error) {
	return commission.Transitions.AllowedFrom(status)
}
