package persistence

import (
	"context"
	"errors"

	"github.com/Renagang21/o4o-platform-sub111/internal/domain/eventlog"
	"github.com/Renagang21/o4o-platform-sub111/internal/domain/shared"
	"github.com/Renagang21/o4o-platform-sub111/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormEventLogRepository implements eventlog.Repository using GORM
type GormEventLogRepository struct {
	db *gorm.DB
}

// NewGormEventLogRepository creates a new GormEventLogRepository
func NewGormEventLogRepository(db *gorm.DB) *GormEventLogRepository {
	return &GormEventLogRepository{db: db}
}

// Create records a received event; the dedup key is unique
func (r *GormEventLogRepository) Create(ctx context.Context, e *eventlog.Entry) error {
	if err := insert(ctx, r.db, models.EventLogModelFromDomain(e)); err != nil {
		if isDuplicateKey(err) {
			return shared.NewDomainErrorWithDetails(shared.CodeAlreadyExists,
				"event already recorded", map[string]any{"dedup_key": e.DedupKey})
		}
		return err
	}
	return nil
}

// FindByDedupKey finds the entry for a dedup key
func (r *GormEventLogRepository) FindByDedupKey(ctx context.Context, dedupKey string) (*eventlog.Entry, error) {
	var m models.EventLogModel
	err := conn(ctx, r.db).Where("dedup_key = ?", dedupKey).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return m.ToDomain(), nil
}

// Update stores the processing status of an entry
func (r *GormEventLogRepository) Update(ctx context.Context, e *eventlog.Entry) error {
	result := conn(ctx, r.db).Model(&models.EventLogModel{}).
		Where("id = ?", e.ID).
		Updates(map[string]any{
			"status":       e.Status,
			"attempts":     e.Attempts,
			"last_error":   e.LastError,
			"published_at": e.PublishedAt,
			"updated_at":   e.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.NewNotFoundError("event_log", e.ID.String())
	}
	return nil
}

// List finds entries matching the filter, newest first by default
func (r *GormEventLogRepository) List(ctx context.Context, filter eventlog.ListFilter) ([]*eventlog.Entry, int64, error) {
	query := conn(ctx, r.db).Model(&models.EventLogModel{})
	if filter.TenantID != nil {
		query = query.Where("tenant_id = ?", *filter.TenantID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.EventType != "" {
		query = query.Where("event_type = ?", filter.EventType)
	}
	if filter.OrderID != nil {
		query = query.Where("order_id = ?", *filter.OrderID)
	}

	var rows []models.EventLogModel
	total, err := listPage(query, filter.Filter, EventLogSortFields, "received_at", &rows)
	if err != nil {
		return nil, 0, err
	}
	out := make([]*eventlog.Entry, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToDomain())
	}
	return out, total, nil
}

// CountByStatus counts entries per processing status
func (r *GormEventLogRepository) CountByStatus(ctx context.Context) (map[eventlog.Status]int64, error) {
	var rows []struct {
		Status eventlog.Status
		Count  int64
	}
	if err := conn(ctx, r.db).Model(&models.EventLogModel{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[eventlog.Status]int64, len(rows))
	for _, row := range rows {
		out[row.Status] = row.Count
	}
	return out, nil
}

var _ eventlog.Repository = (*GormEventLogRepository)(nil)
