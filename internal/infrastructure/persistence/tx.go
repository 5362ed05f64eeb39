package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/Renagang21/o4o-platform-sub111/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type txKey struct{}

// GormTxManager implements shared.TransactionManager. The open transaction travels in
// the context so every repository called with it joins the same unit.
type GormTxManager struct {
	db *gorm.DB
}

// NewGormTxManager creates a new GormTxManager
func NewGormTxManager(db *gorm.DB) *GormTxManager {
	return &GormTxManager{db: db}
}

// InTransaction runs fn inside a transaction. A nested call runs inside a savepoint of
// the outer transaction, so its failure undoes only its own writes and leaves the outer
// transaction usable (postgres otherwise aborts it on the first error).
func (m *GormTxManager) InTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if outer, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return outer.Transaction(func(tx *gorm.DB) error {
			return fn(context.WithValue(ctx, txKey{}, tx))
		})
	}
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

var _ shared.TransactionManager = (*GormTxManager)(nil)

// conn returns the transaction bound to ctx, or db scoped to ctx
func conn(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return db.WithContext(ctx)
}

// insert creates model. Inside a transaction the insert gets its own savepoint, so a
// unique violation can be handled by the caller without aborting the transaction.
func insert(ctx context.Context, db *gorm.DB, model any) error {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx.Transaction(func(sp *gorm.DB) error {
			return sp.Create(model).Error
		})
	}
	return db.WithContext(ctx).Create(model).Error
}

// isDuplicateKey reports a unique constraint violation from postgres or sqlite
func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key value") ||
		strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "SQLSTATE 23505")
}

// notFound maps gorm's missing-row error to the shared sentinel
func notFound(err error, entityType string, id uuid.UUID) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return shared.NewNotFoundError(entityType, id.String())
	}
	return err
}

// lockedUpdate writes model only when the row still carries storedVersion.
// Zero rows affected means the row is gone (NotFound) or was changed by someone else.
func lockedUpdate(db *gorm.DB, model any, tenantID, id uuid.UUID, storedVersion int, entityType string) error {
	result := db.Model(model).
		Where("tenant_id = ? AND version = ?", tenantID, storedVersion).
		Select("*").
		Omit("created_at").
		UpdateColumns(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		return nil
	}

	var count int64
	if err := db.Model(model).Where("id = ? AND tenant_id = ?", id, tenantID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return shared.NewNotFoundError(entityType, id.String())
	}
	return shared.NewDomainErrorWithDetails(shared.CodeConcurrencyConflict,
		entityType+" "+id.String()+" was modified by another process",
		map[string]any{"entity_type": entityType, "id": id.String(), "expected_version": storedVersion},
	)
}

// listPage counts every row matching query, then loads one sorted page into dest
func listPage(query *gorm.DB, f shared.Filter, allowed map[string]bool, defaultField string, dest any) (int64, error) {
	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return 0, err
	}
	if err := paginate(query, f, allowed, defaultField).Find(dest).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// paginate applies sorting and paging from a normalized filter
func paginate(db *gorm.DB, f shared.Filter, allowed map[string]bool, defaultField string) *gorm.DB {
	f = f.Normalize()
	orderBy := ValidateSortField(f.OrderBy, allowed, defaultField)
	return db.Order(orderBy + " " + ValidateSortOrder(f.OrderDir)).
		Offset(f.Offset()).
		Limit(f.PageSize)
}
