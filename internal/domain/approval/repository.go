package approval

import (
	"context"

	"github.com/Renagang21/o4o-platform-sub111/internal/domain/shared"
	"github.com/google/uuid"
)

// AuthorizationFilter narrows authorization list queries
type AuthorizationFilter struct {
	shared.Filter
	SellerID  *uuid.UUID
	ProductID *uuid.UUID
	Status    AuthorizationStatus
}

// AuthorizationRepository persists seller authorizations
type AuthorizationRepository interface {
	// Create fails with ErrAlreadyExists when the seller already has a record for the product
	Create(ctx context.Context, a *SellerAuthorization) error
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*SellerAuthorization, error)
	// FindBySellerAndProduct returns nil, nil when the seller never requested the product
	FindBySellerAndProduct(ctx context.Context, tenantID, sellerID, productID uuid.UUID) (*SellerAuthorization, error)
	SaveWithLock(ctx context.Context, a *SellerAuthorization) error
	List(ctx context.Context, tenantID uuid.UUID, filter AuthorizationFilter) ([]*SellerAuthorization, int64, error)
}

// CatalogItemFilter narrows catalog item list queries
type CatalogItemFilter struct {
	shared.Filter
	SupplierID *uuid.UUID
	Status     CatalogItemStatus
}

// CatalogItemRepository persists catalog items
type CatalogItemRepository interface {
	Create(ctx context.Context, item *CatalogItem) error
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*CatalogItem, error)
	SaveWithLock(ctx context.Context, item *CatalogItem) error
	List(ctx context.Context, tenantID uuid.UUID, filter CatalogItemFilter) ([]*CatalogItem, int64, error)
}
