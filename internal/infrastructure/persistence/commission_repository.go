package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/Renagang21/o4o-platform-sub111/internal/domain/commission"
	"github.com/Renagang21/o4o-platform-sub111/internal/domain/shared"
	"github.com/Renagang21/o4o-platform-sub111/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormCommissionRepository implements commission.Repository using GORM
type GormCommissionRepository struct {
	db *gorm.DB
}

// NewGormCommissionRepository creates a new GormCommissionRepository
func NewGormCommissionRepository(db *gorm.DB) *GormCommissionRepository {
	return &GormCommissionRepository{db: db}
}

// Create inserts a commission; the conversion unique index turns a second insert into DuplicateConversion
func (r *GormCommissionRepository) Create(ctx context.Context, c *commission.Commission) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if err := insert(ctx, r.db, models.CommissionModelFromDomain(c)); err != nil {
		if isDuplicateKey(err) {
			return shared.NewDuplicateConversionError(c.ConversionID)
		}
		return err
	}
	c.MarkPersisted()
	return nil
}

// FindByID finds a commission by ID within a tenant
func (r *GormCommissionRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*commission.Commission, error) {
	var m models.CommissionModel
	if err := conn(ctx, r.db).Where("tenant_id = ? AND id = ?", tenantID, id).First(&m).Error; err != nil {
		return nil, notFound(err, commission.EntityType, id)
	}
	return m.ToDomain(), nil
}

// FindByConversionID finds the commission created from a conversion
func (r *GormCommissionRepository) FindByConversionID(ctx context.Context, tenantID uuid.UUID, conversionID string) (*commission.Commission, error) {
	var m models.CommissionModel
	err := conn(ctx, r.db).Where("tenant_id = ? AND conversion_id = ?", tenantID, conversionID).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return m.ToDomain(), nil
}

// SaveWithLock validates and saves with optimistic locking
func (r *GormCommissionRepository) SaveWithLock(ctx context.Context, c *commission.Commission) error {
	if err := c.Validate(); err != nil {
		return err
	}
	m := models.CommissionModelFromDomain(c)
	if err := lockedUpdate(conn(ctx, r.db), m, c.TenantID, c.ID, c.StoredVersion(), commission.EntityType); err != nil {
		return err
	}
	c.MarkPersisted()
	return nil
}

// List finds commissions of a tenant matching the filter
func (r *GormCommissionRepository) List(ctx context.Context, tenantID uuid.UUID, filter commission.ListFilter) ([]*commission.Commission, int64, error) {
	query := conn(ctx, r.db).Model(&models.CommissionModel{}).Where("tenant_id = ?", tenantID)
	if filter.BeneficiaryID != nil {
		query = query.Where("beneficiary_id = ?", *filter.BeneficiaryID)
	}
	if filter.BeneficiaryType != "" {
		query = query.Where("beneficiary_type = ?", filter.BeneficiaryType)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.BatchID != nil {
		query = query.Where("batch_id = ?", *filter.BatchID)
	}

	var rows []models.CommissionModel
	total, err := listPage(query, filter.Filter, CommissionSortFields, "created_at", &rows)
	if err != nil {
		return nil, 0, err
	}
	return commissionsToDomain(rows), total, nil
}

// FindEligibleForConfirm returns PENDING commissions whose hold period ended, oldest first
func (r *GormCommissionRepository) FindEligibleForConfirm(ctx context.Context, now time.Time, limit int) ([]*commission.Commission, error) {
	var rows []models.CommissionModel
	if err := conn(ctx, r.db).
		Where("status = ? AND hold_until <= ?", commission.StatusPending, now).
		Order("hold_until ASC").
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return commissionsToDomain(rows), nil
}

// FindByBatch returns every commission attached to a batch
func (r *GormCommissionRepository) FindByBatch(ctx context.Context, tenantID, batchID uuid.UUID) ([]*commission.Commission, error) {
	var rows []models.CommissionModel
	if err := conn(ctx, r.db).
		Where("tenant_id = ? AND batch_id = ?", tenantID, batchID).
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return commissionsToDomain(rows), nil
}

// CountByBatchAndStatus counts attached commissions in a status
func (r *GormCommissionRepository) CountByBatchAndStatus(ctx context.Context, batchID uuid.UUID, status commission.Status) (int64, error) {
	var count int64
	if err := conn(ctx, r.db).Model(&models.CommissionModel{}).
		Where("batch_id = ? AND status = ?", batchID, status).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func commissionsToDomain(rows []models.CommissionModel) []*commission.Commission {
	out := make([]*commission.Commission, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToDomain())
	}
	return out
}

var _ commission.Repository = (*GormCommissionRepository)(nil)
