package persistence

import (
	"context"

	"github.com/Renagang21/o4o-platform-sub111/internal/domain/payment"
	"github.com/Renagang21/o4o-platform-sub111/internal/domain/shared"
	"github.com/Renagang21/o4o-platform-sub111/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormOrderPaymentRepository implements payment.OrderPaymentRepository using GORM
type GormOrderPaymentRepository struct {
	db *gorm.DB
}

// NewGormOrderPaymentRepository creates a new GormOrderPaymentRepository
func NewGormOrderPaymentRepository(db *gorm.DB) *GormOrderPaymentRepository {
	return &GormOrderPaymentRepository{db: db}
}

// Create registers an order awaiting payment
func (r *GormOrderPaymentRepository) Create(ctx context.Context, o *payment.OrderPayment) error {
	if err := insert(ctx, r.db, models.OrderPaymentModelFromDomain(o)); err != nil {
		if isDuplicateKey(err) {
			return shared.NewDomainErrorWithDetails(shared.CodeAlreadyExists,
				"order payment already registered", map[string]any{"order_id": o.OrderID.String()})
		}
		return err
	}
	o.MarkPersisted()
	return nil
}

// FindByOrderID finds the payment state of an order
func (r *GormOrderPaymentRepository) FindByOrderID(ctx context.Context, tenantID, orderID uuid.UUID) (*payment.OrderPayment, error) {
	var m models.OrderPaymentModel
	if err := conn(ctx, r.db).Where("tenant_id = ? AND id = ?", tenantID, orderID).First(&m).Error; err != nil {
		return nil, notFound(err, payment.EntityTypeOrderPayment, orderID)
	}
	return m.ToDomain(), nil
}

// SaveWithLock saves with optimistic locking
func (r *GormOrderPaymentRepository) SaveWithLock(ctx context.Context, o *payment.OrderPayment) error {
	m := models.OrderPaymentModelFromDomain(o)
	if err := lockedUpdate(conn(ctx, r.db), m, o.TenantID, o.ID, o.StoredVersion(), payment.EntityTypeOrderPayment); err != nil {
		return err
	}
	o.MarkPersisted()
	return nil
}

var _ payment.OrderPaymentRepository = (*GormOrderPaymentRepository)(nil)
