package persistence

import (
	"context"

	"github.com/Renagang21/o4o-platform-sub111/internal/domain/shared"
	"github.com/Renagang21/o4o-platform-sub111/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormAuditLogRepository implements shared.AuditLogRepository. Rows are only ever inserted.
type GormAuditLogRepository struct {
	db *gorm.DB
}

// NewGormAuditLogRepository creates a new GormAuditLogRepository
func NewGormAuditLogRepository(db *gorm.DB) *GormAuditLogRepository {
	return &GormAuditLogRepository{db: db}
}

// Append inserts one audit row
func (r *GormAuditLogRepository) Append(ctx context.Context, entry *shared.AuditEntry) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	return conn(ctx, r.db).Create(models.AuditLogModelFromDomain(entry)).Error
}

// ListByEntity returns every transition of an entity in the order it happened
func (r *GormAuditLogRepository) ListByEntity(ctx context.Context, entityType string, entityID uuid.UUID) ([]shared.AuditEntry, error) {
	var rows []models.AuditLogModel
	if err := conn(ctx, r.db).
		Where("entity_type = ? AND entity_id = ?", entityType, entityID).
		Order("occurred_at ASC, entity_version ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]shared.AuditEntry, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToDomain())
	}
	return out, nil
}

var _ shared.AuditLogRepository = (*GormAuditLogRepository)(nil)
