package approval

import (
	"context"
	"strings"
	"time"

	"github.com/Renagang21/o4o-platform-sub111/internal/application/transition"
	"github.com/Renagang21/o4o-platform-sub111/internal/domain/approval"
	"github.com/Renagang21/o4o-platform-sub111/internal/domain/shared"
	"github.com/Renagang21/o4o-platform-sub111/internal/infrastructure/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestInput is a seller asking to sell a product
type RequestInput struct {
	TenantID  uuid.UUID
	SellerID  uuid.UUID
	ProductID uuid.UUID
	Actor     string
}

// AuthorizationService runs the seller authorization workflow
type AuthorizationService struct {
	repo         approval.AuthorizationRepository
	engine       *transition.Engine
	cooldownDays int
	logger       *zap.Logger
	now          func() time.Time
}

// Option configures the approval services
type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock overrides the wall clock
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

func applyOptions(opts []Option) options {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// NewAuthorizationService creates a new AuthorizationService. cooldownDays is applied
// to rejections that do not name their own cooldown.
func NewAuthorizationService(repo approval.AuthorizationRepository, engine *transition.Engine, cooldownDays int, logger *zap.Logger, opts ...Option) *AuthorizationService {
	o := applyOptions(opts)
	engine.Register(approval.AuthorizationTransitions)
	return &AuthorizationService{
		repo:         repo,
		engine:       engine,
		cooldownDays: cooldownDays,
		logger:       logger,
		now:          o.now,
	}
}

// Request creates the seller's authorization for a product. A seller who already has
// one re-requests it instead, which honours the rejection cooldown and fails for any
// status that cannot go back to REQUESTED.
func (s *AuthorizationService) Request(ctx context.Context, in RequestInput) (*approval.SellerAuthorization, error) {
	existing, err := s.repo.FindBySellerAndProduct(ctx, in.TenantID, in.SellerID, in.ProductID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		logger.For(ctx, s.logger).Debug("authorization exists, re-requesting",
			zap.String("authorization_id", existing.ID.String()),
			zap.String("status", string(existing.Status)),
		)
		return s.reRequest(ctx, existing, in.Actor)
	}

	a, err := approval.NewSellerAuthorization(in.TenantID, in.SellerID, in.ProductID, in.Actor, s.now())
	if err != nil {
		return nil, err
	}
	change := transition.Change{EntityType: approval.EntityTypeAuthorization, Action: "request", Actor: in.Actor}
	if err := transition.Record(ctx, s.engine, a, change, s.create); err != nil {
		return nil, err
	}
	return a, nil
}

// ReRequest moves a REJECTED authorization back to REQUESTED once its cooldown elapsed
func (s *AuthorizationService) ReRequest(ctx context.Context, tenantID, id uuid.UUID, actor string) (*approval.SellerAuthorization, error) {
	a, err := s.repo.FindByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	return s.reRequest(ctx, a, actor)
}

// Approve records one role's approval of a REQUESTED authorization. Each approval
// writes its own audit row; the second one moves the authorization to APPROVED.
func (s *AuthorizationService) Approve(ctx context.Context, tenantID, id uuid.UUID, role approval.ApproverRole, actor string) (*approval.SellerAuthorization, error) {
	action := "approve_" + strings.ToLower(string(role))
	return s.apply(ctx, tenantID, id, transition.Change{EntityType: approval.EntityTypeAuthorization, Action: action, Actor: actor},
		func(a *approval.SellerAuthorization, now time.Time) error { return a.Approve(role, actor, now) })
}

// Reject denies a REQUESTED authorization. A nil cooldownDays uses the configured default.
func (s *AuthorizationService) Reject(ctx context.Context, tenantID, id uuid.UUID, reason string, cooldownDays *int, actor string) (*approval.SellerAuthorization, error) {
	days := s.cooldownDays
	if cooldownDays != nil {
		days = *cooldownDays
	}
	cooldown := time.Duration(days) * 24 * time.Hour
	return s.apply(ctx, tenantID, id, transition.Change{EntityType: approval.EntityTypeAuthorization, Action: "reject", Actor: actor, Reason: reason},
		func(a *approval.SellerAuthorization, now time.Time) error {
			return a.Reject(reason, cooldown, actor, now)
		})
}

// Revoke permanently withdraws an APPROVED authorization
func (s *AuthorizationService) Revoke(ctx context.Context, tenantID, id uuid.UUID, reason, actor string) (*approval.SellerAuthorization, error) {
	return s.apply(ctx, tenantID, id, transition.Change{EntityType: approval.EntityTypeAuthorization, Action: "revoke", Actor: actor, Reason: reason},
		func(a *approval.SellerAuthorization, now time.Time) error { return a.Revoke(reason, actor, now) })
}

// Get returns one authorization
func (s *AuthorizationService) Get(ctx context.Context, tenantID, id uuid.UUID) (*approval.SellerAuthorization, error) {
	return s.repo.FindByID(ctx, tenantID, id)
}

// FindBySellerAndProduct returns ErrNotFound when the seller never requested the product
func (s *AuthorizationService) FindBySellerAndProduct(ctx context.Context, tenantID, sellerID, productID uuid.UUID) (*approval.SellerAuthorization, error) {
	a, err := s.repo.FindBySellerAndProduct(ctx, tenantID, sellerID, productID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, shared.NewNotFoundError(approval.EntityTypeAuthorization, sellerID.String()+"/"+productID.String())
	}
	return a, nil
}

// List returns a page of authorizations
func (s *AuthorizationService) List(ctx context.Context, tenantID uuid.UUID, filter approval.AuthorizationFilter) (shared.Paginated[*approval.SellerAuthorization], error) {
	filter.Filter = filter.Filter.Normalize()
	items, total, err := s.repo.List(ctx, tenantID, filter)
	if err != nil {
		return shared.Paginated[*approval.SellerAuthorization]{}, err
	}
	return shared.NewPaginated(items, total, filter.Page, filter.PageSize), nil
}

// History returns the audit trail of an authorization, oldest first
func (s *AuthorizationService) History(ctx context.Context, tenantID, id uuid.UUID) ([]shared.AuditEntry, error) {
	if _, err := s.repo.FindByID(ctx, tenantID, id); err != nil {
		return nil, err
	}
	return s.engine.History(ctx, approval.EntityTypeAuthorization, id)
}

func (s *AuthorizationService) reRequest(ctx context.Context, a *approval.SellerAuthorization, actor string) (*approval.SellerAuthorization, error) {
	now := s.now()
	change := transition.Change{EntityType: approval.EntityTypeAuthorization, Action: "re_request", Actor: actor}
	err := transition.Execute(ctx, s.engine, a, change,
		func(a *approval.SellerAuthorization) error { return a.ReRequest(actor, now) },
		s.save,
	)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (s *AuthorizationService) apply(ctx context.Context, tenantID, id uuid.UUID, change transition.Change, mutate func(*approval.SellerAuthorization, time.Time) error) (*approval.SellerAuthorization, error) {
	a, err := s.repo.FindByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	now := s.now()
	err = transition.Execute(ctx, s.engine, a, change,
		func(a *approval.SellerAuthorization) error { return mutate(a, now) },
		s.save,
	)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (s *AuthorizationService) create(ctx context.Context, a *approval.SellerAuthorization) error {
	return s.repo.Create(ctx, a)
}

func (s *AuthorizationService) save(ctx context.Context, a *approval.SellerAuthorization) error {
	return s.repo.SaveWithLock(ctx, a)
}
