package commission

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Renagang21/o4o-platform-sub111/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CalculationType defines how a policy derives the commission amount
type CalculationType string

const (
	CalculationRate  CalculationType = "RATE"
	CalculationFixed CalculationType = "FIXED"
)

var hundred = decimal.NewFromInt(100)

// Policy is a commission rule owned by the policy catalog.
// PolicyType is the business category a rate cap is looked up by.
type Policy struct {
	ID              uuid.UUID
	TenantID        uuid.UUID
	Name            string
	PolicyType      string
	CalculationType CalculationType
	RatePercent     *decimal.Decimal
	FixedAmount     *decimal.Decimal
	HoldDays        int
	Active          bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// PolicySnapshot is the immutable copy of a policy stored on each commission,
// so later policy edits never change history.
type PolicySnapshot struct {
	PolicyID        uuid.UUID        `json:"policy_id"`
	PolicyType      string           `json:"policy_type"`
	CalculationType CalculationType  `json:"calculation_type"`
	RatePercent     *decimal.Decimal `json:"rate_percent,omitempty"`
	FixedAmount     *decimal.Decimal `json:"fixed_amount,omitempty"`
	HoldDays        int              `json:"hold_days"`
	CapturedAt      time.Time        `json:"captured_at"`
}

// Snapshot copies the policy as of now
func (p *Policy) Snapshot(now time.Time) PolicySnapshot {
	snap := PolicySnapshot{
		PolicyID:        p.ID,
		PolicyType:      p.PolicyType,
		CalculationType: p.CalculationType,
		HoldDays:        p.HoldDays,
		CapturedAt:      now,
	}
	if p.RatePercent != nil {
		r := *p.RatePercent
		snap.RatePercent = &r
	}
	if p.FixedAmount != nil {
		f := *p.FixedAmount
		snap.FixedAmount = &f
	}
	return snap
}

// Validate checks the snapshot shape and the configured rate cap for its type
func (s PolicySnapshot) Validate(caps RateCaps) error {
	if s.HoldDays < 0 {
		return shared.NewValidationError("hold_days", "must not be negative")
	}
	switch s.CalculationType {
	case CalculationRate:
		if s.RatePercent == nil {
			return shared.NewValidationError("rate", "is required for rate policies")
		}
		if err := validateRate(*s.RatePercent); err != nil {
			return err
		}
		return caps.Check(s.PolicyType, *s.RatePercent)
	case CalculationFixed:
		if s.FixedAmount == nil {
			return shared.NewValidationError("fixed_amount", "is required for fixed policies")
		}
		if s.FixedAmount.IsNegative() {
			return shared.NewValidationError("fixed_amount", "must not be negative")
		}
		return nil
	default:
		return shared.NewValidationError("calculation_type", fmt.Sprintf("unknown calculation type %q", s.CalculationType))
	}
}

// Calculate derives the commission amount for an order amount, rounded to cents
func (s PolicySnapshot) Calculate(orderAmount decimal.Decimal) decimal.Decimal {
	switch s.CalculationType {
	case CalculationRate:
		if s.RatePercent == nil {
			return decimal.Zero
		}
		return orderAmount.Mul(*s.RatePercent).Div(hundred).Round(2)
	case CalculationFixed:
		if s.FixedAmount == nil {
			return decimal.Zero
		}
		return s.FixedAmount.Round(2)
	}
	return decimal.Zero
}

// HoldDuration returns the refund-risk window as a duration
func (s PolicySnapshot) HoldDuration() time.Duration {
	return time.Duration(s.HoldDays) * 24 * time.Hour
}

// RateCaps maps a policy type to its maximum rate in percent.
// Values come from configuration; types without an entry are only bound by [0,100].
type RateCaps map[string]decimal.Decimal

// Check fails when rate exceeds the cap configured for policyType
func (c RateCaps) Check(policyType string, rate decimal.Decimal) error {
	limit, ok := c[strings.ToLower(policyType)]
	if !ok {
		return nil
	}
	if rate.GreaterThan(limit) {
		return shared.NewValidationError("rate",
			fmt.Sprintf("%s%% exceeds the %s%% cap for policy type %s", rate.String(), limit.String(), policyType))
	}
	return nil
}

func validateRate(rate decimal.Decimal) error {
	if rate.IsNegative() || rate.GreaterThan(hundred) {
		return shared.NewValidationError("rate", "must be within [0,100]")
	}
	return nil
}

// PolicyRepository loads commission policies
type PolicyRepository interface {
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*Policy, error)
	Save(ctx context.Context, policy *Policy) error
}
