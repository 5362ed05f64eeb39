package approval

import (
	"context"
	"time"

	"github.com/Renagang21/o4o-platform-sub111/internal/application/transition"
	"github.com/Renagang21/o4o-platform-sub111/internal/domain/approval"
	"github.com/Renagang21/o4o-platform-sub111/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateCatalogItemInput is a supplier offering a product to the catalog
type CreateCatalogItemInput struct {
	TenantID   uuid.UUID
	SupplierID uuid.UUID
	ProductID  uuid.UUID
	Name       string
	Actor      string
}

// CatalogService runs the catalog item approval workflow
type CatalogService struct {
	repo   approval.CatalogItemRepository
	engine *transition.Engine
	logger *zap.Logger
	now    func() time.Time
}

// NewCatalogService creates a new CatalogService
func NewCatalogService(repo approval.CatalogItemRepository, engine *transition.Engine, logger *zap.Logger, opts ...Option) *CatalogService {
	o := applyOptions(opts)
	engine.Register(approval.CatalogTransitions)
	return &CatalogService{
		repo:   repo,
		engine: engine,
		logger: logger,
		now:    o.now,
	}
}

// Create stores a new draft catalog item
func (s *CatalogService) Create(ctx context.Context, in CreateCatalogItemInput) (*approval.CatalogItem, error) {
	item, err := approval.NewCatalogItem(in.TenantID, in.SupplierID, in.ProductID, in.Name, s.now())
	if err != nil {
		return nil, err
	}
	change := transition.Change{EntityType: approval.EntityTypeCatalogItem, Action: "create", Actor: in.Actor}
	err = transition.Record(ctx, s.engine, item, change, func(ctx context.Context, item *approval.CatalogItem) error {
		return s.repo.Create(ctx, item)
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

// Submit sends a draft for review
func (s *CatalogService) Submit(ctx context.Context, tenantID, id uuid.UUID, actor string) (*approval.CatalogItem, error) {
	return s.apply(ctx, tenantID, id, s.change("submit", actor, ""),
		func(i *approval.CatalogItem, now time.Time) error { return i.Submit(now) })
}

// Approve accepts a pending item
func (s *CatalogService) Approve(ctx context.Context, tenantID, id uuid.UUID, actor string) (*approval.CatalogItem, error) {
	return s.apply(ctx, tenantID, id, s.change("approve", actor, ""),
		func(i *approval.CatalogItem, now time.Time) error { return i.Approve(actor, now) })
}

// Reject declines a pending item
func (s *CatalogService) Reject(ctx context.Context, tenantID, id uuid.UUID, reason, actor string) (*approval.CatalogItem, error) {
	return s.apply(ctx, tenantID, id, s.change("reject", actor, reason),
		func(i *approval.CatalogItem, now time.Time) error { return i.Reject(reason, actor, now) })
}

// ReturnToDraft reopens a rejected item
func (s *CatalogService) ReturnToDraft(ctx context.Context, tenantID, id uuid.UUID, actor string) (*approval.CatalogItem, error) {
	return s.apply(ctx, tenantID, id, s.change("return_to_draft", actor, ""),
		func(i *approval.CatalogItem, now time.Time) error { return i.ReturnToDraft(now) })
}

// Retire withdraws an approved item for good
func (s *CatalogService) Retire(ctx context.Context, tenantID, id uuid.UUID, reason, actor string) (*approval.CatalogItem, error) {
	return s.apply(ctx, tenantID, id, s.change("retire", actor, reason),
		func(i *approval.CatalogItem, now time.Time) error { return i.Retire(now) })
}

// Get returns one catalog item
func (s *CatalogService) Get(ctx context.Context, tenantID, id uuid.UUID) (*approval.CatalogItem, error) {
	return s.repo.FindByID(ctx, tenantID, id)
}

// List returns a page of catalog items
func (s *CatalogService) List(ctx context.Context, tenantID uuid.UUID, filter approval.CatalogItemFilter) (shared.Paginated[*approval.CatalogItem], error) {
	filter.Filter = filter.Filter.Normalize()
	items, total, err := s.repo.List(ctx, tenantID, filter)
	if err != nil {
		return shared.Paginated[*approval.CatalogItem]{}, err
	}
	return shared.NewPaginated(items, total, filter.Page, filter.PageSize), nil
}

// History returns the audit trail of a catalog item, oldest first
func (s *CatalogService) History(ctx context.Context, tenantID, id uuid.UUID) ([]shared.AuditEntry, error) {
	if _, err := s.repo.FindByID(ctx, tenantID, id); err != nil {
		return nil, err
	}
	return s.engine.History(ctx, approval.EntityTypeCatalogItem, id)
}

func (s *CatalogService) change(action, actor, reason string) transition.Change {
	return transition.Change{EntityType: approval.EntityTypeCatalogItem, Action: action, Actor: actor, Reason: reason}
}

func (s *CatalogService) apply(ctx context.Context, tenantID, id uuid.UUID, change transition.Change, mutate func(*approval.CatalogItem, time.Time) error) (*approval.CatalogItem, error) {
	item, err := s.repo.FindByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	now := s.now()
	err = transition.Execute(ctx, s.engine, item, change,
		func(i *approval.CatalogItem) error { return mutate(i, now) },
		func(ctx context.Context, i *approval.CatalogItem) error { return s.repo.SaveWithLock(ctx, i) },
	)
	if err != nil {
		return nil, err
	}
	return item, nil
}
