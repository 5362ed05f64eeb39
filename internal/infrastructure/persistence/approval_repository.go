package persistence

import (
	"context"
	"errors"

	"github.com/Renagang21/o4o-platform-sub111/internal/domain/approval"
	"github.com/Renagang21/o4o-platform-sub111/internal/domain/shared"
	"github.com/Renagang21/o4o-platform-sub111/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormAuthorizationRepository implements approval.AuthorizationRepository using GORM
type GormAuthorizationRepository struct {
	db *gorm.DB
}

// NewGormAuthorizationRepository creates a new GormAuthorizationRepository
func NewGormAuthorizationRepository(db *gorm.DB) *GormAuthorizationRepository {
	return &GormAuthorizationRepository{db: db}
}

// Create inserts an authorization; one record exists per seller and product
func (r *GormAuthorizationRepository) Create(ctx context.Context, a *approval.SellerAuthorization) error {
	if err := insert(ctx, r.db, models.SellerAuthorizationModelFromDomain(a)); err != nil {
		if isDuplicateKey(err) {
			return shared.NewDomainErrorWithDetails(shared.CodeAlreadyExists,
				"seller already has an authorization record for this product",
				map[string]any{"seller_id": a.SellerID.String(), "product_id": a.ProductID.String()},
			)
		}
		return err
	}
	a.MarkPersisted()
	return nil
}

// FindByID finds an authorization by ID within a tenant
func (r *GormAuthorizationRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*approval.SellerAuthorization, error) {
	var m models.SellerAuthorizationModel
	if err := conn(ctx, r.db).Where("tenant_id = ? AND id = ?", tenantID, id).First(&m).Error; err != nil {
		return nil, notFound(err, approval.EntityTypeAuthorization, id)
	}
	return m.ToDomain(), nil
}

// FindBySellerAndProduct finds the authorization record of a seller for a product
func (r *GormAuthorizationRepository) FindBySellerAndProduct(ctx context.Context, tenantID, sellerID, productID uuid.UUID) (*approval.SellerAuthorization, error) {
	var m models.SellerAuthorizationModel
	err := conn(ctx, r.db).
		Where("tenant_id = ? AND seller_id = ? AND product_id = ?", tenantID, sellerID, productID).
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return m.ToDomain(), nil
}

// SaveWithLock saves with optimistic locking
func (r *GormAuthorizationRepository) SaveWithLock(ctx context.Context, a *approval.SellerAuthorization) error {
	m := models.SellerAuthorizationModelFromDomain(a)
	if err := lockedUpdate(conn(ctx, r.db), m, a.TenantID, a.ID, a.StoredVersion(), approval.EntityTypeAuthorization); err != nil {
		return err
	}
	a.MarkPersisted()
	return nil
}

// List finds authorizations of a tenant matching the filter
func (r *GormAuthorizationRepository) List(ctx context.Context, tenantID uuid.UUID, filter approval.AuthorizationFilter) ([]*approval.SellerAuthorization, int64, error) {
	query := conn(ctx, r.db).Model(&models.SellerAuthorizationModel{}).Where("tenant_id = ?", tenantID)
	if filter.SellerID != nil {
		query = query.Where("seller_id = ?", *filter.SellerID)
	}
	if filter.ProductID != nil {
		query = query.Where("product_id = ?", *filter.ProductID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var rows []models.SellerAuthorizationModel
	total, err := listPage(query, filter.Filter, AuthorizationSortFields, "created_at", &rows)
	if err != nil {
		return nil, 0, err
	}
	out := make([]*approval.SellerAuthorization, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToDomain())
	}
	return out, total, nil
}

// GormCatalogItemRepository implements approval.CatalogItemRepository using GORM
type GormCatalogItemRepository struct {
	db *gorm.DB
}

// NewGormCatalogItemRepository creates a new GormCatalogItemRepository
func NewGormCatalogItemRepository(db *gorm.DB) *GormCatalogItemRepository {
	return &GormCatalogItemRepository{db: db}
}

// Create inserts a catalog item
func (r *GormCatalogItemRepository) Create(ctx context.Context, item *approval.CatalogItem) error {
	if err := insert(ctx, r.db, models.CatalogItemModelFromDomain(item)); err != nil {
		return err
	}
	item.MarkPersisted()
	return nil
}

// FindByID finds a catalog item by ID within a tenant
func (r *GormCatalogItemRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*approval.CatalogItem, error) {
	var m models.CatalogItemModel
	if err := conn(ctx, r.db).Where("tenant_id = ? AND id = ?", tenantID, id).First(&m).Error; err != nil {
		return nil, notFound(err, approval.EntityTypeCatalogItem, id)
	}
	return m.ToDomain(), nil
}

// SaveWithLock saves with optimistic locking
func (r *GormCatalogItemRepository) SaveWithLock(ctx context.Context, item *approval.CatalogItem) error {
	m := models.CatalogItemModelFromDomain(item)
	if err := lockedUpdate(conn(ctx, r.db), m, item.TenantID, item.ID, item.StoredVersion(), approval.EntityTypeCatalogItem); err != nil {
		return err
	}
	item.MarkPersisted()
	return nil
}

// List finds catalog items of a tenant matching the filter
func (r *GormCatalogItemRepository) List(ctx context.Context, tenantID uuid.UUID, filter approval.CatalogItemFilter) ([]*approval.CatalogItem, int64, error) {
	query := conn(ctx, r.db).Model(&models.CatalogItemModel{}).Where("tenant_id = ?", tenantID)
	if filter.SupplierID != nil {
		query = query.Where("supplier_id = ?", *filter.SupplierID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var rows []models.CatalogItemModel
	total, err := listPage(query, filter.Filter, CatalogItemSortFields, "created_at", &rows)
	if err != nil {
		return nil, 0, err
	}
	out := make([]*approval.CatalogItem, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToDomain())
	}
	return out, total, nil
}

var (
	_ approval.AuthorizationRepository = (*GormAuthorizationRepository)(nil)
	_ approval.CatalogItemRepository   = (*GormCatalogItemRepository)(nil)
)
