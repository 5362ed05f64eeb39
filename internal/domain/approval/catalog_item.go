package approval

import (
	"strings"
	"time"

	"github.com/Renagang21/o4o-platform-sub111/internal/domain/shared"
	"github.com/google/uuid"
)

// EntityTypeCatalogItem names supplier catalog items in audit rows
const EntityTypeCatalogItem = "catalog_item"

// CatalogItemStatus is the approval status of a supplier catalog item
type CatalogItemStatus string

const (
	CatalogDraft    CatalogItemStatus = "draft"
	CatalogPending  CatalogItemStatus = "pending"
	CatalogApproved CatalogItemStatus = "approved"
	CatalogRejected CatalogItemStatus = "rejected"
	CatalogRetired  CatalogItemStatus = "retired"
)

// CatalogTransitions is the allowed-transition table for catalog items
var CatalogTransitions = shared.NewTransitionTable(EntityTypeCatalogItem, map[CatalogItemStatus][]CatalogItemStatus{
	CatalogDraft:    {CatalogPending},
	CatalogPending:  {CatalogApproved, CatalogRejected},
	CatalogApproved: {CatalogRetired},
	CatalogRejected: {CatalogDraft},
	CatalogRetired:  nil,
})

// CatalogItem is a supplier product offered to the platform for approval
type CatalogItem struct {
	shared.TenantAggregateRoot
	SupplierID      uuid.UUID
	ProductID       uuid.UUID
	Name            string
	Status          CatalogItemStatus
	SubmittedAt     *time.Time
	ReviewedAt      *time.Time
	ReviewedBy      string
	RejectionReason string
	RetiredAt       *time.Time
}

// NewCatalogItem creates a draft catalog item
func NewCatalogItem(tenantID, supplierID, productID uuid.UUID, name string, now time.Time) (*CatalogItem, error) {
	if tenantID == uuid.Nil {
		return nil, shared.NewValidationError("tenant_id", "is required")
	}
	if supplierID == uuid.Nil {
		return nil, shared.NewValidationError("supplier_id", "is required")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewValidationError("name", "is required")
	}
	if len(name) > 200 {
		return nil, shared.NewValidationError("name", "cannot exceed 200 characters")
	}
	return &CatalogItem{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID, now),
		SupplierID:          supplierID,
		ProductID:           productID,
		Name:                name,
		Status:              CatalogDraft,
	}, nil
}

// Submit sends a draft for review
func (i *CatalogItem) Submit(now time.Time) error {
	if err := i.move(CatalogPending, now); err != nil {
		return err
	}
	i.SubmittedAt = &now
	return nil
}

// Approve accepts a pending item
func (i *CatalogItem) Approve(actor string, now time.Time) error {
	if err := i.move(CatalogApproved, now); err != nil {
		return err
	}
	i.ReviewedAt = &now
	i.ReviewedBy = actor
	i.RejectionReason = ""
	return nil
}

// Reject declines a pending item
func (i *CatalogItem) Reject(reason, actor string, now time.Time) error {
	if err := CatalogTransitions.Check(i.Status, CatalogRejected); err != nil {
		return err
	}
	if strings.TrimSpace(reason) == "" {
		return shared.NewValidationError("reason", "rejection reason is required")
	}
	if err := i.move(CatalogRejected, now); err != nil {
		return err
	}
	i.ReviewedAt = &now
	i.ReviewedBy = actor
	i.RejectionReason = reason
	return nil
}

// ReturnToDraft reopens a rejected item for editing
func (i *CatalogItem) ReturnToDraft(now time.Time) error {
	return i.move(CatalogDraft, now)
}

// Retire withdraws an approved item permanently
func (i *CatalogItem) Retire(now time.Time) error {
	if err := i.move(CatalogRetired, now); err != nil {
		return err
	}
	i.RetiredAt = &now
	return nil
}

func (i *CatalogItem) move(to CatalogItemStatus, now time.Time) error {
	if err := CatalogTransitions.Check(i.Status, to); err != nil {
		return err
	}
	i.Status = to
	i.Touch(now)
	i.IncrementVersion()
	return nil
}

// GetTenantID returns the owning tenant
func (i *CatalogItem) GetTenantID() uuid.UUID {
	return i.TenantID
}

// StatusString returns the status for audit rows
func (i *CatalogItem) StatusString() string {
	return string(i.Status)
}

// Snapshot returns the audit view of the item
func (i *CatalogItem) Snapshot() map[string]any {
	snap := map[string]any{
		"status":      string(i.Status),
		"name":        i.Name,
		"supplier_id": i.SupplierID.String(),
		"version":     i.Version,
	}
	if i.RejectionReason != "" {
		snap["rejection_reason"] = i.RejectionReason
	}
	return snap
}

var _ shared.Guarded = (*CatalogItem)(nil)
