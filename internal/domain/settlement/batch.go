package settlement

import (
	"fmt"
	"strings"
	"time"

	"github.com/Renagang21/o4o-platform-sub111/internal/domain/commission"
	"github.com/Renagang21/o4o-platform-sub111/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EntityType names settlement batches in audit rows and transition introspection
const EntityType = "settlement_batch"

// AggregateTypeBatch is the aggregate type for batch events
const AggregateTypeBatch = "SettlementBatch"

// BatchStatus represents the status of a settlement batch
type BatchStatus string

const (
	BatchStatusOpen   BatchStatus = "OPEN"
	BatchStatusClosed BatchStatus = "CLOSED"
	BatchStatusPaid   BatchStatus = "PAID"
)

// BatchTransitions is the allowed-transition table for batches
var BatchTransitions = shared.NewTransitionTable(EntityType, map[BatchStatus][]BatchStatus{
	BatchStatusOpen:   {BatchStatusClosed},
	BatchStatusClosed: {BatchStatusPaid},
	BatchStatusPaid:   nil,
})

// IsValid checks if the status is known
func (s BatchStatus) IsValid() bool {
	return BatchTransitions.IsKnown(s)
}

// String returns the string representation
func (s BatchStatus) String() string {
	return string(s)
}

// SettlementType decides who the batch pays and how the net amount is derived
type SettlementType string

const (
	// SettlementPartnerCommission pays the commission itself to a referral partner
	SettlementPartnerCommission SettlementType = "PARTNER_COMMISSION"
	// SettlementSellerPayout pays the sales minus the platform commission to a seller
	SettlementSellerPayout SettlementType = "SELLER_PAYOUT"
	// SettlementSupplierPayout pays the sales minus the platform commission to a supplier
	SettlementSupplierPayout SettlementType = "SUPPLIER_PAYOUT"
)

// IsValid checks if the settlement type is known
func (t SettlementType) IsValid() bool {
	switch t {
	case SettlementPartnerCommission, SettlementSellerPayout, SettlementSupplierPayout:
		return true
	}
	return false
}

// Net derives the amount owed to the beneficiary from the batch sums
func (t SettlementType) Net(total, commissionAmount decimal.Decimal) decimal.Decimal {
	if t == SettlementPartnerCommission {
		return commissionAmount
	}
	return total.Sub(commissionAmount)
}

// SettlementTypeFor maps a beneficiary type to the settlement type its commissions land in
func SettlementTypeFor(b commission.BeneficiaryType) SettlementType {
	switch b {
	case commission.BeneficiarySeller:
		return SettlementSellerPayout
	case commission.BeneficiarySupplier:
		return SettlementSupplierPayout
	default:
		return SettlementPartnerCommission
	}
}

// Period is a half-open settlement interval [Start, End)
type Period struct {
	Start time.Time
	End   time.Time
}

// MonthlyPeriod returns the calendar month containing t, in t's location
func MonthlyPeriod(t time.Time) Period {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return Period{Start: start, End: start.AddDate(0, 1, 0)}
}

// Next returns the following calendar month
func (p Period) Next() Period {
	return Period{Start: p.End, End: p.End.AddDate(0, 1, 0)}
}

// Contains reports whether t falls inside the period
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.Start) && t.Before(p.End)
}

// Batch aggregates confirmed commissions for one beneficiary, settlement type and period.
// The sums are only ever recomputed from the attached commissions.
type Batch struct {
	shared.TenantAggregateRoot
	BeneficiaryID    uuid.UUID
	SettlementType   SettlementType
	PeriodStart      time.Time
	PeriodEnd        time.Time
	Currency         string
	Status           BatchStatus
	TotalAmount      decimal.Decimal
	CommissionAmount decimal.Decimal
	NetAmount        decimal.Decimal
	CommissionCount  int
	ClosedAt         *time.Time
	ClosedBy         string
	PaidAt           *time.Time
	PaidBy           string
}

// NewBatch opens a batch for a beneficiary and period
func NewBatch(tenantID, beneficiaryID uuid.UUID, settlementType SettlementType, period Period, currency string, now time.Time) (*Batch, error) {
	if tenantID == uuid.Nil {
		return nil, shared.NewValidationError("tenant_id", "is required")
	}
	if beneficiaryID == uuid.Nil {
		return nil, shared.NewValidationError("beneficiary_id", "is required")
	}
	if !settlementType.IsValid() {
		return nil, shared.NewValidationError("settlement_type", fmt.Sprintf("unknown settlement type %q", settlementType))
	}
	if !period.End.After(period.Start) {
		return nil, shared.NewValidationError("period_end", "must be after period_start")
	}
	if len(currency) != 3 {
		return nil, shared.NewValidationError("currency", "must be a 3-letter ISO code")
	}

	return &Batch{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID, now),
		BeneficiaryID:       beneficiaryID,
		SettlementType:      settlementType,
		PeriodStart:         period.Start,
		PeriodEnd:           period.End,
		Currency:            strings.ToUpper(currency),
		Status:              BatchStatusOpen,
		TotalAmount:         decimal.Zero,
		CommissionAmount:    decimal.Zero,
		NetAmount:           decimal.Zero,
	}, nil
}

// Accepts reports whether a commission may be attached to this batch
func (b *Batch) Accepts(c *commission.Commission) error {
	if b.Status != BatchStatusOpen {
		return shared.NewDomainErrorWithDetails(shared.CodeInvalidState,
			fmt.Sprintf("batch %s is %s and accepts no commissions", b.ID, b.Status),
			map[string]any{"entity_type": EntityType, "current": string(b.Status), "action": "attach"},
		)
	}
	if c.TenantID != b.TenantID || c.BeneficiaryID != b.BeneficiaryID || SettlementTypeFor(c.BeneficiaryType) != b.SettlementType {
		return shared.NewValidationError("beneficiary_id", "commission belongs to a different beneficiary or settlement type")
	}
	if c.Currency != b.Currency {
		return shared.NewValidationError("currency", fmt.Sprintf("commission currency %s does not match batch currency %s", c.Currency, b.Currency))
	}
	return nil
}

// NoteMembershipChange bumps the version of an OPEN batch whenever one of its commissions
// joins or changes, so a concurrent Close of the same batch fails its version check.
func (b *Batch) NoteMembershipChange(now time.Time) bool {
	if b.Status != BatchStatusOpen {
		return false
	}
	b.Touch(now)
	b.IncrementVersion()
	return true
}

// Close recomputes the sums from the attached commissions and moves the batch to CLOSED.
// Any PENDING commission blocks the close. Only CONFIRMED commissions are summed: cancelled
// ones owe nothing and ones already paid on their own are not paid again with the batch.
func (b *Batch) Close(attached []*commission.Commission, actor string, now time.Time) error {
	if err := BatchTransitions.Check(b.Status, BatchStatusClosed); err != nil {
		return err
	}

	var pending int64
	for _, c := range attached {
		if c.Status == commission.StatusPending {
			pending++
		}
	}
	if pending > 0 {
		return shared.NewOpenCommissionsRemainingError(b.ID.String(), pending)
	}

	b.recompute(attached)
	b.Status = BatchStatusClosed
	b.ClosedAt = &now
	b.ClosedBy = actor
	b.Touch(now)
	b.IncrementVersion()

	b.AddDomainEvent(NewSettlementClosedEvent(b))
	return nil
}

// MarkPaid records that the batch was paid out
func (b *Batch) MarkPaid(actor string, now time.Time) error {
	if err := BatchTransitions.Check(b.Status, BatchStatusPaid); err != nil {
		return err
	}

	b.Status = BatchStatusPaid
	b.PaidAt = &now
	b.PaidBy = actor
	b.Touch(now)
	b.IncrementVersion()

	b.AddDomainEvent(NewSettlementPaidEvent(b))
	return nil
}

func (b *Batch) recompute(attached []*commission.Commission) {
	total := decimal.Zero
	commissionSum := decimal.Zero
	count := 0
	for _, c := range attached {
		if c.Status != commission.StatusConfirmed {
			continue
		}
		total = total.Add(c.OrderAmount)
		commissionSum = commissionSum.Add(c.CommissionAmount)
		count++
	}
	b.TotalAmount = total
	b.CommissionAmount = commissionSum
	b.NetAmount = b.SettlementType.Net(total, commissionSum)
	b.CommissionCount = count
}

// Period returns the batch period
func (b *Batch) Period() Period {
	return Period{Start: b.PeriodStart, End: b.PeriodEnd}
}

// GetTenantID returns the owning tenant
func (b *Batch) GetTenantID() uuid.UUID {
	return b.TenantID
}

// StatusString returns the status for audit rows
func (b *Batch) StatusString() string {
	return string(b.Status)
}

// Snapshot returns the audit view of the batch
func (b *Batch) Snapshot() map[string]any {
	return map[string]any{
		"status":            string(b.Status),
		"total_amount":      b.TotalAmount.String(),
		"commission_amount": b.CommissionAmount.String(),
		"net_amount":        b.NetAmount.String(),
		"commission_count":  b.CommissionCount,
		"version":           b.Version,
	}
}

var _ shared.Guarded = (*Batch)(nil)
