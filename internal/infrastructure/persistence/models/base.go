package models

import (
	"time"

	"github.com/Renagang21/o4o-platform-sub111/internal/domain/shared"
	"github.com/google/uuid"
)

// BaseModel provides common persistence fields for all models
type BaseModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TenantAggregateModel adds the optimistic-lock version and tenant to BaseModel
type TenantAggregateModel struct {
	BaseModel
	TenantID uuid.UUID `gorm:"type:uuid;not null;index"`
	Version  int       `gorm:"not null;default:1"`
}

// FromDomainTenantAggregateRoot populates the model from a domain aggregate root
func (m *TenantAggregateModel) FromDomainTenantAggregateRoot(t shared.TenantAggregateRoot) {
	m.ID = t.ID
	m.CreatedAt = t.CreatedAt
	m.UpdatedAt = t.UpdatedAt
	m.Version = t.Version
	m.TenantID = t.TenantID
}

// ToDomainTenantAggregateRoot rebuilds the domain aggregate root, marked as persisted
func (m *TenantAggregateModel) ToDomainTenantAggregateRoot() shared.TenantAggregateRoot {
	return tenantRoot(m.BaseModel, m.TenantID, m.Version)
}

func tenantRoot(base BaseModel, tenantID uuid.UUID, version int) shared.TenantAggregateRoot {
	root := shared.TenantAggregateRoot{
		BaseAggregateRoot: shared.BaseAggregateRoot{
			BaseEntity: shared.BaseEntity{
				ID:        base.ID,
				CreatedAt: base.CreatedAt,
				UpdatedAt: base.UpdatedAt,
			},
			Version: version,
		},
		TenantID: tenantID,
	}
	root.MarkPersisted()
	return root
}

// All returns every model for AutoMigrate
func All() []any {
	return []any{
		&CommissionPolicyModel{},
		&CommissionModel{},
		&SettlementBatchModel{},
		&SinkRecordModel{},
		&SellerAuthorizationModel{},
		&CatalogItemModel{},
		&AuditLogModel{},
		&EventLogModel{},
		&OrderPaymentModel{},
	}
}
