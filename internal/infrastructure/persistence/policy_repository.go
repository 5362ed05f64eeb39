package persistence

import (
	"context"

	"github.com/Renagang21/o4o-platform-sub111/internal/domain/commission"
	"github.com/Renagang21/o4o-platform-sub111/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormPolicyRepository implements commission.PolicyRepository using GORM
type GormPolicyRepository struct {
	db *gorm.DB
}

// NewGormPolicyRepository creates a new GormPolicyRepository
func NewGormPolicyRepository(db *gorm.DB) *GormPolicyRepository {
	return &GormPolicyRepository{db: db}
}

// FindByID finds a policy by ID within a tenant
func (r *GormPolicyRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*commission.Policy, error) {
	var m models.CommissionPolicyModel
	if err := conn(ctx, r.db).Where("tenant_id = ? AND id = ?", tenantID, id).First(&m).Error; err != nil {
		return nil, notFound(err, "commission_policy", id)
	}
	return m.ToDomain(), nil
}

// Save creates or updates a policy. Commissions keep their own snapshot, so edits never reach them.
func (r *GormPolicyRepository) Save(ctx context.Context, p *commission.Policy) error {
	return conn(ctx, r.db).Save(models.CommissionPolicyModelFromDomain(p)).Error
}

var _ commission.PolicyRepository = (*GormPolicyRepository)(nil)
