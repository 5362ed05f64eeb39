package persistence

import (
	"context"
	"time"

	"github.com/Renagang21/o4o-platform-sub111/internal/domain/settlement"
	"github.com/Renagang21/o4o-platform-sub111/internal/domain/shared"
	"github.com/Renagang21/o4o-platform-sub111/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormSinkRecordRepository implements settlement.SinkRecordRepository using GORM
type GormSinkRecordRepository struct {
	db *gorm.DB
}

// NewGormSinkRecordRepository creates a new GormSinkRecordRepository
func NewGormSinkRecordRepository(db *gorm.DB) *GormSinkRecordRepository {
	return &GormSinkRecordRepository{db: db}
}

// Claim inserts the pending records of a batch in one statement. The unique
// (batch_id, kind) index makes a second claim for the same batch fail as a whole.
func (r *GormSinkRecordRepository) Claim(ctx context.Context, recs []*settlement.SinkRecord) error {
	if len(recs) == 0 {
		return nil
	}
	rows := make([]*models.SinkRecordModel, 0, len(recs))
	for _, rec := range recs {
		rows = append(rows, models.SinkRecordModelFromDomain(rec))
	}
	if err := insert(ctx, r.db, &rows); err != nil {
		if isDuplicateKey(err) {
			return shared.NewDomainErrorWithDetails(shared.CodeAlreadyExists,
				"vouchers already claimed for this batch",
				map[string]any{"batch_id": recs[0].BatchID.String()},
			)
		}
		return err
	}
	return nil
}

// Update stores the latest submission outcome. The reference issued with the
// claim is never changed.
func (r *GormSinkRecordRepository) Update(ctx context.Context, rec *settlement.SinkRecord) error {
	result := conn(ctx, r.db).Model(&models.SinkRecordModel{}).
		Where("id = ?", rec.ID).
		Updates(map[string]any{
			"status":          rec.Status,
			"status_code":     rec.StatusCode,
			"response":        rec.Response,
			"external_id":     rec.ExternalID,
			"last_error":      rec.LastError,
			"attempts":        rec.Attempts,
			"last_attempt_at": rec.LastAttemptAt,
			"updated_at":      rec.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.NewNotFoundError("sink_record", rec.ID.String())
	}
	return nil
}

// FindByBatch lists the voucher outcomes of a batch
func (r *GormSinkRecordRepository) FindByBatch(ctx context.Context, tenantID, batchID uuid.UUID) ([]*settlement.SinkRecord, error) {
	var rows []models.SinkRecordModel
	if err := conn(ctx, r.db).
		Where("tenant_id = ? AND batch_id = ?", tenantID, batchID).
		Order("kind ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return sinkRecordsToDomain(rows), nil
}

// FindRetryable lists failed records and stale pending ones across tenants,
// least recently touched first. A pending record goes stale when the process
// that claimed it never stored an outcome.
func (r *GormSinkRecordRepository) FindRetryable(ctx context.Context, staleBefore time.Time, limit int) ([]*settlement.SinkRecord, error) {
	var rows []models.SinkRecordModel
	if err := conn(ctx, r.db).
		Where("status = ? OR (status = ? AND updated_at < ?)",
			settlement.SinkRecordFailed, settlement.SinkRecordPending, staleBefore).
		Order("updated_at ASC").
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return sinkRecordsToDomain(rows), nil
}

func sinkRecordsToDomain(rows []models.SinkRecordModel) []*settlement.SinkRecord {
	out := make([]*settlement.SinkRecord, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToDomain())
	}
	return out
}

var _ settlement.SinkRecordRepository = (*GormSinkRecordRepository)(nil)
