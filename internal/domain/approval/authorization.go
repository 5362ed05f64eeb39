package approval

import (
	"strings"
	"time"

	"github.com/Renagang21/o4o-platform-sub111/internal/domain/shared"
	"github.com/google/uuid"
)

// EntityTypeAuthorization names seller authorizations in audit rows
const EntityTypeAuthorization = "seller_authorization"

// AuthorizationStatus is the status of a seller's request to sell a product
type AuthorizationStatus string

const (
	AuthorizationRequested AuthorizationStatus = "REQUESTED"
	AuthorizationApproved  AuthorizationStatus = "APPROVED"
	AuthorizationRejected  AuthorizationStatus = "REJECTED"
	AuthorizationRevoked   AuthorizationStatus = "REVOKED"
)

// AuthorizationTransitions is the allowed-transition table for seller authorizations.
// REVOKED is terminal: a revoked seller can never re-request the product.
var AuthorizationTransitions = shared.NewTransitionTable(EntityTypeAuthorization, map[AuthorizationStatus][]AuthorizationStatus{
	AuthorizationRequested: {AuthorizationApproved, AuthorizationRejected},
	AuthorizationRejected:  {AuthorizationRequested},
	AuthorizationApproved:  {AuthorizationRevoked},
	AuthorizationRevoked:   nil,
})

// ApproverRole is one of the two parties whose approval a seller needs
type ApproverRole string

const (
	ApproverSupplier ApproverRole = "SUPPLIER"
	ApproverPlatform ApproverRole = "PLATFORM"
)

// IsValid reports whether the role is known
func (r ApproverRole) IsValid() bool {
	return r == ApproverSupplier || r == ApproverPlatform
}

// SellerAuthorization grants a seller the right to sell a supplier's product.
// It becomes APPROVED only once the supplier and the platform have both approved,
// each by a different actor.
type SellerAuthorization struct {
	shared.TenantAggregateRoot
	SellerID     uuid.UUID
	ProductID    uuid.UUID
	Status       AuthorizationStatus
	RequestedAt  time.Time
	RequestedBy  string
	RequestCount int
	DecidedAt    *time.Time
	DecidedBy    string
	// per-role approvals of the current request
	SupplierApprovedBy string
	SupplierApprovedAt *time.Time
	PlatformApprovedBy string
	PlatformApprovedAt *time.Time
	RejectionReason    string
	CooldownUntil      *time.Time
	RevokedAt          *time.Time
	RevokeReason       string
}

// NewSellerAuthorization creates a REQUESTED authorization
func NewSellerAuthorization(tenantID, sellerID, productID uuid.UUID, actor string, now time.Time) (*SellerAuthorization, error) {
	if tenantID == uuid.Nil {
		return nil, shared.NewValidationError("tenant_id", "is required")
	}
	if sellerID == uuid.Nil {
		return nil, shared.NewValidationError("seller_id", "is required")
	}
	if productID == uuid.Nil {
		return nil, shared.NewValidationError("product_id", "is required")
	}
	return &SellerAuthorization{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID, now),
		SellerID:            sellerID,
		ProductID:           productID,
		Status:              AuthorizationRequested,
		RequestedAt:         now,
		RequestedBy:         actor,
		RequestCount:        1,
	}, nil
}

// Approve records the approval of one role. The request stays REQUESTED until the
// other role approves too; the same actor cannot give both approvals.
func (a *SellerAuthorization) Approve(role ApproverRole, actor string, now time.Time) error {
	if err := AuthorizationTransitions.Check(a.Status, AuthorizationApproved); err != nil {
		return err
	}
	if !role.IsValid() {
		return shared.NewValidationError("role", "must be SUPPLIER or PLATFORM")
	}
	if strings.TrimSpace(actor) == "" {
		return shared.NewValidationError("actor", "is required")
	}
	by, at, otherBy := &a.SupplierApprovedBy, &a.SupplierApprovedAt, a.PlatformApprovedBy
	if role == ApproverPlatform {
		by, at, otherBy = &a.PlatformApprovedBy, &a.PlatformApprovedAt, a.SupplierApprovedBy
	}
	if *by != "" {
		return shared.NewDomainErrorWithDetails(shared.CodeInvalidState,
			"authorization already approved for this role",
			map[string]any{"role": string(role), "approved_by": *by})
	}
	if otherBy == actor {
		return shared.NewValidationError("actor", "the second approval must come from a different approver")
	}

	*by = actor
	*at = &now
	if a.SupplierApprovedBy != "" && a.PlatformApprovedBy != "" {
		a.Status = AuthorizationApproved
		a.DecidedAt = &now
		a.DecidedBy = actor
		a.RejectionReason = ""
		a.CooldownUntil = nil
	}
	a.Touch(now)
	a.IncrementVersion()
	return nil
}

// PendingApprovals lists the roles that still have to approve a REQUESTED authorization
func (a *SellerAuthorization) PendingApprovals() []ApproverRole {
	if a.Status != AuthorizationRequested {
		return nil
	}
	var pending []ApproverRole
	if a.SupplierApprovedBy == "" {
		pending = append(pending, ApproverSupplier)
	}
	if a.PlatformApprovedBy == "" {
		pending = append(pending, ApproverPlatform)
	}
	return pending
}

// Reject denies the request and blocks re-requests until now + cooldown
func (a *SellerAuthorization) Reject(reason string, cooldown time.Duration, actor string, now time.Time) error {
	if err := AuthorizationTransitions.Check(a.Status, AuthorizationRejected); err != nil {
		return err
	}
	if strings.TrimSpace(reason) == "" {
		return shared.NewValidationError("reason", "rejection reason is required")
	}
	if cooldown < 0 {
		return shared.NewValidationError("cooldown_days", "must not be negative")
	}
	until := now.Add(cooldown)
	a.Status = AuthorizationRejected
	a.DecidedAt = &now
	a.DecidedBy = actor
	a.RejectionReason = reason
	a.CooldownUntil = &until
	a.Touch(now)
	a.IncrementVersion()
	return nil
}

// ReRequest moves a REJECTED authorization back to REQUESTED once the cooldown elapsed.
// Before that it fails with CooldownActive reporting the whole days left.
func (a *SellerAuthorization) ReRequest(actor string, now time.Time) error {
	if err := AuthorizationTransitions.Check(a.Status, AuthorizationRequested); err != nil {
		return err
	}
	if a.CooldownUntil != nil && now.Before(*a.CooldownUntil) {
		return shared.NewCooldownActiveError(*a.CooldownUntil, shared.DaysRemaining(a.CooldownUntil.Sub(now)))
	}
	a.Status = AuthorizationRequested
	a.RequestedAt = now
	a.RequestedBy = actor
	a.RequestCount++
	a.DecidedAt = nil
	a.DecidedBy = ""
	a.clearApprovals()
	a.Touch(now)
	a.IncrementVersion()
	return nil
}

// Revoke permanently withdraws an APPROVED authorization
func (a *SellerAuthorization) Revoke(reason, actor string, now time.Time) error {
	if err := AuthorizationTransitions.Check(a.Status, AuthorizationRevoked); err != nil {
		return err
	}
	if strings.TrimSpace(reason) == "" {
		return shared.NewValidationError("reason", "revoke reason is required")
	}
	a.Status = AuthorizationRevoked
	a.RevokedAt = &now
	a.RevokeReason = reason
	a.DecidedBy = actor
	a.Touch(now)
	a.IncrementVersion()
	return nil
}

func (a *SellerAuthorization) clearApprovals() {
	a.SupplierApprovedBy = ""
	a.SupplierApprovedAt = nil
	a.PlatformApprovedBy = ""
	a.PlatformApprovedAt = nil
}

// GetTenantID returns the owning tenant
func (a *SellerAuthorization) GetTenantID() uuid.UUID {
	return a.TenantID
}

// StatusString returns the status for audit rows
func (a *SellerAuthorization) StatusString() string {
	return string(a.Status)
}

// Snapshot returns the audit view of the authorization
func (a *SellerAuthorization) Snapshot() map[string]any {
	snap := map[string]any{
		"status":        string(a.Status),
		"seller_id":     a.SellerID.String(),
		"product_id":    a.ProductID.String(),
		"request_count": a.RequestCount,
		"version":       a.Version,
	}
	if a.SupplierApprovedBy != "" {
		snap["supplier_approved_by"] = a.SupplierApprovedBy
	}
	if a.PlatformApprovedBy != "" {
		snap["platform_approved_by"] = a.PlatformApprovedBy
	}
	if a.RejectionReason != "" {
		snap["rejection_reason"] = a.RejectionReason
	}
	if a.CooldownUntil != nil {
		snap["cooldown_until"] = a.CooldownUntil.UTC().Format(time.RFC3339)
	}
	if a.RevokeReason != "" {
		snap["revoke_reason"] = a.RevokeReason
	}
	return snap
}

var _ shared.Guarded = (*SellerAuthorization)(nil)
