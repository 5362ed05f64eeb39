package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/Renagang21/o4o-platform-sub111/internal/domain/settlement"
	"github.com/Renagang21/o4o-platform-sub111/internal/domain/shared"
	"github.com/Renagang21/o4o-platform-sub111/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormBatchRepository implements settlement.BatchRepository using GORM
type GormBatchRepository struct {
	db *gorm.DB
}

// NewGormBatchRepository creates a new GormBatchRepository
func NewGormBatchRepository(db *gorm.DB) *GormBatchRepository {
	return &GormBatchRepository{db: db}
}

// Create inserts a batch; the batch key unique index rejects a second batch for the same period
func (r *GormBatchRepository) Create(ctx context.Context, b *settlement.Batch) error {
	if err := insert(ctx, r.db, models.SettlementBatchModelFromDomain(b)); err != nil {
		if isDuplicateKey(err) {
			return shared.NewDomainErrorWithDetails(shared.CodeAlreadyExists,
				"a settlement batch already exists for this beneficiary and period",
				map[string]any{
					"beneficiary_id":  b.BeneficiaryID.String(),
					"settlement_type": string(b.SettlementType),
					"period_start":    b.PeriodStart,
				},
			)
		}
		return err
	}
	b.MarkPersisted()
	return nil
}

// FindByID finds a batch by ID within a tenant
func (r *GormBatchRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*settlement.Batch, error) {
	var m models.SettlementBatchModel
	if err := conn(ctx, r.db).Where("tenant_id = ? AND id = ?", tenantID, id).First(&m).Error; err != nil {
		return nil, notFound(err, settlement.EntityType, id)
	}
	return m.ToDomain(), nil
}

// FindByPeriod finds the batch for a beneficiary, settlement type, currency and period start
func (r *GormBatchRepository) FindByPeriod(ctx context.Context, tenantID, beneficiaryID uuid.UUID, settlementType settlement.SettlementType, currency string, periodStart time.Time) (*settlement.Batch, error) {
	var m models.SettlementBatchModel
	err := conn(ctx, r.db).
		Where("tenant_id = ? AND beneficiary_id = ? AND settlement_type = ? AND currency = ? AND period_start = ?",
			tenantID, beneficiaryID, settlementType, currency, periodStart).
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
func (r *GormBatchRepository) SaveWithLock(ctx context.Context, b *settlement.Batch) error {
	m := models.SettlementBatchModelFromDomain(b)
	if err := lockedUpdate(conn(ctx, r.db), m, b.TenantID, b.ID, b.StoredVersion(), settlement.EntityType); err != nil {
		return err
	}
	b.MarkPersisted()
	return nil
}

// List finds batches of a tenant matching the filter
func (r *GormBatchRepository) List(ctx context.Context, tenantID uuid.UUID, filter settlement.BatchFilter) ([]*settlement.Batch, int64, error) {
	query := conn(ctx, r.db).Model(&models.SettlementBatchModel{}).Where("tenant_id = ?", tenantID)
	if filter.BeneficiaryID != nil {
		query = query.Where("beneficiary_id = ?", *filter.BeneficiaryID)
	}
	if filter.SettlementType != "" {
		query = query.Where("settlement_type = ?", filter.SettlementType)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var rows []models.SettlementBatchModel
	total, err := listPage(query, filter.Filter, BatchSortFields, "created_at", &rows)
	if err != nil {
		return nil, 0, err
	}
	out := make([]*settlement.Batch, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToDomain())
	}
	return out, total, nil
}

var _ settlement.BatchRepository = (*GormBatchRepository)(nil)
