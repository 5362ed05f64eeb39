package commission

import (
	"context"
	"time"

	"github.com/Renagang21/o4o-platform-sub111/internal/domain/shared"
	"github.com/google/uuid"
)

// ListFilter narrows commission list queries
type ListFilter struct {
	shared.Filter
	BeneficiaryID   *uuid.UUID
	BeneficiaryType BeneficiaryType
	Status          Status
	BatchID         *uuid.UUID
}

// Repository persists commissions
type Repository interface {
	// Create inserts a new commission. A second commission for the same conversion
	// fails with DuplicateConversion through the storage uniqueness constraint.
	Create(ctx context.Context, c *Commission) error
	// FindByID returns ErrNotFound when the commission does not exist for the tenant
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*Commission, error)
	// FindByConversionID returns nil, nil when no commission references the conversion
	FindByConversionID(ctx context.Context, tenantID uuid.UUID, conversionID string) (*Commission, error)
	// SaveWithLock updates the commission only if the stored version is the one it was loaded with
	SaveWithLock(ctx context.Context, c *Commission) error
	List(ctx context.Context, tenantID uuid.UUID, filter ListFilter) ([]*Commission, int64, error)
	// FindEligibleForConfirm returns PENDING commissions whose hold period ended at or before now, across tenants
	FindEligibleForConfirm(ctx context.Context, now time.Time, limit int) ([]*Commission, error)
	FindByBatch(ctx context.Context, tenantID, batchID uuid.UUID) ([]*Commission, error)
	CountByBatchAndStatus(ctx context.Context, batchID uuid.UUID, status Status) (int64, error)
}
