package commission

import (
	"fmt"
	"strings"
	"time"

	"github.com/Renagang21/o4o-platform-sub111/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AggregateTypeCommission is the aggregate type for commission events
const AggregateTypeCommission = "Commission"

// Conversion is the attributed sale a commission is created from
type Conversion struct {
	ConversionID    string
	TenantID        uuid.UUID
	BeneficiaryID   uuid.UUID
	BeneficiaryType BeneficiaryType
	ProductID       uuid.UUID
	OrderID         uuid.UUID
	OrderAmount     decimal.Decimal
	Currency        string
}

// Adjustment is one append-only entry of the amount history
type Adjustment struct {
	OldAmount  decimal.Decimal `json:"old_amount"`
	NewAmount  decimal.Decimal `json:"new_amount"`
	Reason     string          `json:"reason"`
	Actor      string          `json:"actor"`
	AdjustedAt time.Time       `json:"adjusted_at"`
}

// Commission is a money obligation created from exactly one conversion
type Commission struct {
	shared.TenantAggregateRoot
	ConversionID     string
	BeneficiaryID    uuid.UUID
	BeneficiaryType  BeneficiaryType
	ProductID        uuid.UUID
	OrderID          uuid.UUID
	OrderAmount      decimal.Decimal
	CommissionAmount decimal.Decimal
	Currency         string
	RatePercent      *decimal.Decimal
	Policy           PolicySnapshot
	Status           Status
	HoldUntil        time.Time
	ConfirmedAt      *time.Time
	PaidAt           *time.Time
	CancelledAt      *time.Time
	CancelReason     string
	CancelledBy      string
	PaymentMethod    string
	PaymentReference string
	BatchID          *uuid.UUID
	Adjustments      []Adjustment
	Metadata         map[string]string
}

// NewCommission creates a PENDING commission held until now + policy hold days
func NewCommission(conv Conversion, policy PolicySnapshot, caps RateCaps, now time.Time) (*Commission, error) {
	if strings.TrimSpace(conv.ConversionID) == "" {
		return nil, shared.NewValidationError("conversion_id", "is required")
	}
	if conv.TenantID == uuid.Nil {
		return nil, shared.NewValidationError("tenant_id", "is required")
	}
	if conv.BeneficiaryID == uuid.Nil {
		return nil, shared.NewValidationError("beneficiary_id", "is required")
	}
	if !conv.BeneficiaryType.IsValid() {
		return nil, shared.NewValidationError("beneficiary_type", fmt.Sprintf("unknown beneficiary type %q", conv.BeneficiaryType))
	}
	if conv.OrderID == uuid.Nil {
		return nil, shared.NewValidationError("order_id", "is required")
	}
	if err := policy.Validate(caps); err != nil {
		return nil, err
	}

	c := &Commission{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(conv.TenantID, now),
		ConversionID:        conv.ConversionID,
		BeneficiaryID:       conv.BeneficiaryID,
		BeneficiaryType:     conv.BeneficiaryType,
		ProductID:           conv.ProductID,
		OrderID:             conv.OrderID,
		OrderAmount:         conv.OrderAmount,
		CommissionAmount:    policy.Calculate(conv.OrderAmount),
		Currency:            strings.ToUpper(conv.Currency),
		RatePercent:         policy.RatePercent,
		Policy:              policy,
		Status:              StatusPending,
		HoldUntil:           now.Add(policy.HoldDuration()),
		Adjustments:         make([]Adjustment, 0),
		Metadata:            make(map[string]string),
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	c.AddDomainEvent(NewCommissionCreatedEvent(c))
	return c, nil
}

// Validate checks the invariants that must hold before every persist
func (c *Commission) Validate() error {
	if c.OrderAmount.LessThanOrEqual(decimal.Zero) {
		return shared.NewValidationError("order_amount", "must be greater than 0")
	}
	if c.CommissionAmount.IsNegative() {
		return shared.NewValidationError("commission_amount", "must not be negative")
	}
	if c.RatePercent != nil {
		if err := validateRate(*c.RatePercent); err != nil {
			return err
		}
	}
	if len(c.Currency) != 3 {
		return shared.NewValidationError("currency", "must be a 3-letter ISO code")
	}
	if !c.Status.IsValid() {
		return shared.NewValidationError("status", fmt.Sprintf("unknown status %q", c.Status))
	}
	return nil
}

// Confirm moves a PENDING commission to CONFIRMED once the hold period has elapsed.
// Before HoldUntil it fails with HoldPeriodActive and leaves the commission untouched.
func (c *Commission) Confirm(now time.Time) error {
	if err := Transitions.Check(c.Status, StatusConfirmed); err != nil {
		return err
	}
	if now.Before(c.HoldUntil) {
		return shared.NewHoldPeriodActiveError(c.HoldUntil, c.HoldUntil.Sub(now))
	}

	c.Status = StatusConfirmed
	c.ConfirmedAt = &now
	c.Touch(now)
	c.IncrementVersion()

	c.AddDomainEvent(NewCommissionConfirmedEvent(c))
	return nil
}

// IsEligibleForConfirm reports whether Confirm would succeed at now
func (c *Commission) IsEligibleForConfirm(now time.Time) bool {
	return c.Status == StatusPending && !now.Before(c.HoldUntil)
}

// MarkPaid records the payout of a CONFIRMED commission
func (c *Commission) MarkPaid(method, reference string, now time.Time) error {
	if err := Transitions.Check(c.Status, StatusPaid); err != nil {
		return err
	}
	if strings.TrimSpace(method) == "" {
		return shared.NewValidationError("payment_method", "is required")
	}

	c.Status = StatusPaid
	c.PaidAt = &now
	c.PaymentMethod = method
	c.PaymentReference = reference
	c.Touch(now)
	c.IncrementVersion()

	c.AddDomainEvent(NewCommissionPaidEvent(c))
	return nil
}

// Cancel irreversibly cancels a PENDING or CONFIRMED commission
func (c *Commission) Cancel(reason, actor string, now time.Time) error {
	if err := Transitions.Check(c.Status, StatusCancelled); err != nil {
		return err
	}
	if strings.TrimSpace(reason) == "" {
		return shared.NewValidationError("reason", "cancellation reason is required")
	}

	c.Status = StatusCancelled
	c.CancelledAt = &now
	c.CancelReason = reason
	c.CancelledBy = actor
	c.Touch(now)
	c.IncrementVersion()

	c.AddDomainEvent(NewCommissionCancelledEvent(c))
	return nil
}

// AdjustAmount replaces the commission amount and appends the change to the history.
// Prior history entries are never removed.
func (c *Commission) AdjustAmount(newAmount decimal.Decimal, reason, actor string, now time.Time) error {
	if c.Status.IsTerminal() {
		return shared.NewDomainErrorWithDetails(shared.CodeInvalidState,
			fmt.Sprintf("cannot adjust a %s commission", c.Status),
			map[string]any{"entity_type": EntityType, "current": string(c.Status), "action": "adjust"},
		)
	}
	if newAmount.IsNegative() {
		return shared.NewValidationError("commission_amount", "must not be negative")
	}
	if strings.TrimSpace(reason) == "" {
		return shared.NewValidationError("reason", "adjustment reason is required")
	}

	newAmount = newAmount.Round(2)
	c.Adjustments = append(c.Adjustments, Adjustment{
		OldAmount:  c.CommissionAmount,
		NewAmount:  newAmount,
		Reason:     reason,
		Actor:      actor,
		AdjustedAt: now,
	})
	c.CommissionAmount = newAmount
	c.Touch(now)
	c.IncrementVersion()

	c.AddDomainEvent(NewCommissionAdjustedEvent(c, c.Adjustments[len(c.Adjustments)-1]))
	return nil
}

// Enrich sets a metadata key. It is the only mutation allowed in every status.
func (c *Commission) Enrich(key, value string, now time.Time) error {
	if strings.TrimSpace(key) == "" {
		return shared.NewValidationError("metadata_key", "is required")
	}
	if c.Metadata == nil {
		c.Metadata = make(map[string]string)
	}
	c.Metadata[key] = value
	c.Touch(now)
	c.IncrementVersion()
	return nil
}

// AttachToBatch links a live commission to the settlement batch of its period.
// Commissions join while still PENDING so an unconfirmed one blocks the close.
// A commission belongs to at most one batch.
func (c *Commission) AttachToBatch(batchID uuid.UUID, now time.Time) error {
	if c.Status != StatusPending && c.Status != StatusConfirmed {
		return shared.NewDomainErrorWithDetails(shared.CodeInvalidState,
			fmt.Sprintf("a %s commission cannot join a batch", c.Status),
			map[string]any{"entity_type": EntityType, "current": string(c.Status), "action": "attach"},
		)
	}
	if c.BatchID != nil {
		if *c.BatchID == batchID {
			return nil
		}
		return shared.NewDomainErrorWithDetails(shared.CodeInvalidState,
			fmt.Sprintf("commission already belongs to batch %s", c.BatchID),
			map[string]any{"entity_type": EntityType, "batch_id": c.BatchID.String(), "action": "attach"},
		)
	}
	c.BatchID = &batchID
	c.Touch(now)
	c.IncrementVersion()
	return nil
}

// GetTenantID returns the owning tenant
func (c *Commission) GetTenantID() uuid.UUID {
	return c.TenantID
}

// StatusString returns the status for audit rows
func (c *Commission) StatusString() string {
	return string(c.Status)
}

// Snapshot returns the audit view of the commission
func (c *Commission) Snapshot() map[string]any {
	snap := map[string]any{
		"status":            string(c.Status),
		"commission_amount": c.CommissionAmount.String(),
		"order_amount":      c.OrderAmount.String(),
		"currency":          c.Currency,
		"hold_until":        c.HoldUntil.UTC().Format(time.RFC3339),
		"version":           c.Version,
	}
	if c.BatchID != nil {
		snap["batch_id"] = c.BatchID.String()
	}
	if c.CancelReason != "" {
		snap["cancel_reason"] = c.CancelReason
	}
	if c.PaymentReference != "" {
		snap["payment_reference"] = c.PaymentReference
	}
	return snap
}

var _ shared.Guarded = (*Commission)(nil)
