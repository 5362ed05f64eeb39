package commission

import (
	"context"
	"strings"
	"time"

	"github.com/Renagang21/o4o-platform-sub111/internal/domain/commission"
	"github.com/Renagang21/o4o-platform-sub111/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// CreatePolicyInput describes a new commission policy
type CreatePolicyInput struct {
	TenantID        uuid.UUID
	Name            string
	PolicyType      string
	CalculationType commission.CalculationType
	RatePercent     *decimal.Decimal
	FixedAmount     *decimal.Decimal
	HoldDays        *int
}

// PolicyService manages commission policies. Rate caps come from configuration.
type PolicyService struct {
	policyRepo      commission.PolicyRepository
	rateCaps        commission.RateCaps
	defaultHoldDays int
	logger          *zap.Logger
	now             func() time.Time
}

// NewPolicyService creates a new policy service
func NewPolicyService(policyRepo commission.PolicyRepository, rateCaps commission.RateCaps, defaultHoldDays int, logger *zap.Logger) *PolicyService {
	return &PolicyService{
		policyRepo:      policyRepo,
		rateCaps:        rateCaps,
		defaultHoldDays: defaultHoldDays,
		logger:          logger,
		now:             time.Now,
	}
}

// Create validates and stores a policy
func (s *PolicyService) Create(ctx context.Context, in CreatePolicyInput) (*commission.Policy, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, shared.NewValidationError("name", "is required")
	}
	if strings.TrimSpace(in.PolicyType) == "" {
		return nil, shared.NewValidationError("policy_type", "is required")
	}
	holdDays := s.defaultHoldDays
	if in.HoldDays != nil {
		holdDays = *in.HoldDays
	}

	now := s.now()
	p := &commission.Policy{
		ID:              uuid.New(),
		TenantID:        in.TenantID,
		Name:            name,
		PolicyType:      strings.ToLower(in.PolicyType),
		CalculationType: in.CalculationType,
		RatePercent:     in.RatePercent,
		FixedAmount:     in.FixedAmount,
		HoldDays:        holdDays,
		Active:          true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := p.Snapshot(now).Validate(s.rateCaps); err != nil {
		return nil, err
	}
	if err := s.policyRepo.Save(ctx, p); err != nil {
		return nil, err
	}

	s.logger.Info("commission policy created",
		zap.String("policy_id", p.ID.String()),
		zap.String("policy_type", p.PolicyType),
		zap.Int("hold_days", p.HoldDays),
	)
	return p, nil
}

// Deactivate stops a policy from producing new commissions. Existing commissions keep their snapshot.
func (s *PolicyService) Deactivate(ctx context.Context, tenantID, id uuid.UUID) (*commission.Policy, error) {
	p, err := s.policyRepo.FindByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	p.Active = false
	p.UpdatedAt = s.now()
	if err := s.policyRepo.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Get returns one policy
func (s *PolicyService) Get(ctx context.Context, tenantID, id uuid.UUID) (*commission.Policy, error) {
	return s.policyRepo.FindByID(ctx, tenantID, id)
}
