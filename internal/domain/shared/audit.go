package shared

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Guarded is an entity whose status is driven through a TransitionTable
type Guarded interface {
	GetID() uuid.UUID
	GetTenantID() uuid.UUID
	StatusString() string
	GetVersion() int
	// Snapshot returns the audit view of the entity's current state
	Snapshot() map[string]any
}

// AuditEntry is one append-only row describing a successful transition.
// It references the entity by id only and is owned by no business entity.
type AuditEntry struct {
	ID            uuid.UUID
	TenantID      uuid.UUID
	EntityType    string
	EntityID      uuid.UUID
	Action        string
	FromStatus    string
	ToStatus      string
	EntityVersion int
	Actor         string
	Reason        string
	Before        map[string]any
	After         map[string]any
	IPAddress     string
	UserAgent     string
	CorrelationID string
	OccurredAt    time.Time
}

// AuditLogRepository stores and lists audit entries
type AuditLogRepository interface {
	Append(ctx context.Context, entry *AuditEntry) error
	ListByEntity(ctx context.Context, entityType string, entityID uuid.UUID) ([]AuditEntry, error)
}

// RequestMeta carries caller network details into audit rows
type RequestMeta struct {
	IPAddress string
	UserAgent string
	RequestID string
}

type requestMetaKey struct{}

// WithRequestMeta attaches request metadata to ctx
func WithRequestMeta(ctx context.Context, meta RequestMeta) context.Context {
	return context.WithValue(ctx, requestMetaKey{}, meta)
}

// RequestMetaFrom extracts request metadata, returning the zero value if absent
func RequestMetaFrom(ctx context.Context) RequestMeta {
	if meta, ok := ctx.Value(requestMetaKey{}).(RequestMeta); ok {
		return meta
	}
	return RequestMeta{}
}

// TransactionManager runs fn as one atomic unit against storage.
// Repositories called with the ctx passed to fn take part in the same transaction.
type TransactionManager interface {
	InTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
