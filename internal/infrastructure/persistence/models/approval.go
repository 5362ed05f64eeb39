package models

import (
	"time"

	"github.com/Renagang21/o4o-platform-sub111/internal/domain/approval"
	"github.com/google/uuid"
)

// SellerAuthorizationModel is the persistence model for seller authorizations.
// One row per (tenant, seller, product); re-requests reuse it.
type SellerAuthorizationModel struct {
	BaseModel
	TenantID     uuid.UUID                    `gorm:"type:uuid;not null;uniqueIndex:idx_authorization_seller_product,priority:1"`
	Version      int                          `gorm:"not null;default:1"`
	SellerID     uuid.UUID                    `gorm:"type:uuid;not null;uniqueIndex:idx_authorization_seller_product,priority:2"`
	ProductID    uuid.UUID                    `gorm:"type:uuid;not null;uniqueIndex:idx_authorization_seller_product,priority:3"`
	Status       approval.AuthorizationStatus `gorm:"type:varchar(20);not null;index"`
	RequestedAt  time.Time                    `gorm:"not null"`
	RequestedBy  string                       `gorm:"type:varchar(100)"`
	RequestCount int                          `gorm:"not null;default:1"`
	DecidedAt    *time.Time
	DecidedBy    string `gorm:"type:varchar(100)"`

	SupplierApprovedBy string `gorm:"type:varchar(100)"`
	SupplierApprovedAt *time.Time
	PlatformApprovedBy string `gorm:"type:varchar(100)"`
	PlatformApprovedAt *time.Time

	RejectionReason string `gorm:"type:text"`
	CooldownUntil   *time.Time
	RevokedAt       *time.Time
	RevokeReason    string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (SellerAuthorizationModel) TableName() string {
	return "seller_authorizations"
}

// ToDomain converts the model to a domain authorization
func (m *SellerAuthorizationModel) ToDomain() *approval.SellerAuthorization {
	return &approval.SellerAuthorization{
		TenantAggregateRoot: tenantRoot(m.BaseModel, m.TenantID, m.Version),
		SellerID:            m.SellerID,
		ProductID:           m.ProductID,
		Status:              m.Status,
		RequestedAt:         m.RequestedAt,
		RequestedBy:         m.RequestedBy,
		RequestCount:        m.RequestCount,
		DecidedAt:           m.DecidedAt,
		DecidedBy:           m.DecidedBy,
		SupplierApprovedBy:  m.SupplierApprovedBy,
		SupplierApprovedAt:  m.SupplierApprovedAt,
		PlatformApprovedBy:  m.PlatformApprovedBy,
		PlatformApprovedAt:  m.PlatformApprovedAt,
		RejectionReason:     m.RejectionReason,
		CooldownUntil:       m.CooldownUntil,
		RevokedAt:           m.RevokedAt,
		RevokeReason:        m.RevokeReason,
	}
}

// SellerAuthorizationModelFromDomain converts a domain authorization to a model
func SellerAuthorizationModelFromDomain(a *approval.SellerAuthorization) *SellerAuthorizationModel {
	return &SellerAuthorizationModel{
		BaseModel:    BaseModel{ID: a.ID, CreatedAt: a.CreatedAt, UpdatedAt: a.UpdatedAt},
		TenantID:     a.TenantID,
		Version:      a.Version,
		SellerID:     a.SellerID,
		ProductID:    a.ProductID,
		Status:       a.Status,
		RequestedAt:  a.RequestedAt,
		RequestedBy:  a.RequestedBy,
		RequestCount: a.RequestCount,
		DecidedAt:    a.DecidedAt,
		DecidedBy:    a.DecidedBy,

		SupplierApprovedBy: a.SupplierApprovedBy,
		SupplierApprovedAt: a.SupplierApprovedAt,
		PlatformApprovedBy: a.PlatformApprovedBy,
		PlatformApprovedAt: a.PlatformApprovedAt,

		RejectionReason: a.RejectionReason,
		CooldownUntil:   a.CooldownUntil,
		RevokedAt:       a.RevokedAt,
		RevokeReason:    a.RevokeReason,
	}
}

// CatalogItemModel is the persistence model for catalog items
type CatalogItemModel struct {
	TenantAggregateModel
	SupplierID      uuid.UUID                  `gorm:"type:uuid;not null;index"`
	ProductID       uuid.UUID                  `gorm:"type:uuid;index"`
	Name            string                     `gorm:"type:varchar(200);not null"`
	Status          approval.CatalogItemStatus `gorm:"type:varchar(20);not null;index"`
	SubmittedAt     *time.Time
	ReviewedAt      *time.Time
	ReviewedBy      string `gorm:"type:varchar(100)"`
	RejectionReason string `gorm:"type:text"`
	RetiredAt       *time.Time
}

// TableName returns the table name for GORM
func (CatalogItemModel) TableName() string {
	return "catalog_items"
}

// ToDomain converts the model to a domain catalog item
func (m *CatalogItemModel) ToDomain() *approval.CatalogItem {
	return &approval.CatalogItem{
		TenantAggregateRoot: m.ToDomainTenantAggregateRoot(),
		SupplierID:          m.SupplierID,
		ProductID:           m.ProductID,
		Name:                m.Name,
		Status:              m.Status,
		SubmittedAt:         m.SubmittedAt,
		ReviewedAt:          m.ReviewedAt,
		ReviewedBy:          m.ReviewedBy,
		RejectionReason:     m.RejectionReason,
		RetiredAt:           m.RetiredAt,
	}
}

// CatalogItemModelFromDomain converts a domain catalog item to a model
func CatalogItemModelFromDomain(i *approval.CatalogItem) *CatalogItemModel {
	m := &CatalogItemModel{
		SupplierID:      i.SupplierID,
		ProductID:       i.ProductID,
		Name:            i.Name,
		Status:          i.Status,
		SubmittedAt:     i.SubmittedAt,
		ReviewedAt:      i.ReviewedAt,
		ReviewedBy:      i.ReviewedBy,
		RejectionReason: i.RejectionReason,
		RetiredAt:       i.RetiredAt,
	}
	m.FromDomainTenantAggregateRoot(i.TenantAggregateRoot)
	return m
}
