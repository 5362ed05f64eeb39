package eventlog

import (
	"context"
	"time"

	"github.com/Renagang21/o4o-platform-sub111/internal/domain/shared"
	"github.com/google/uuid"
)

// Status is the processing status of a received event
type Status string

const (
	StatusPending   Status = "pending"
	StatusPublished Status = "published"
	StatusFailed    Status = "failed"
)

// IsValid reports whether s is a known status
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusPublished, StatusFailed:
		return true
	}
	return false
}

// Entry is the durable record of one inbound event.
// It is the replay and audit source of truth; the in-memory dedup window only fronts it.
type Entry struct {
	ID            uuid.UUID
	TenantID      uuid.UUID
	EventID       uuid.UUID
	DedupKey      string
	EventType     string
	PaymentID     string
	TransactionID string
	OrderID       uuid.UUID
	Payload       []byte
	Status        Status
	Attempts      int
	LastError     string
	ReceivedAt    time.Time
	PublishedAt   *time.Time
	UpdatedAt     time.Time
}

// NewEntry records the receipt of event with its full payload snapshot
func NewEntry(event shared.DomainEvent, dedupKey, paymentID, transactionID string, orderID uuid.UUID, payload []byte, now time.Time) (*Entry, error) {
	if dedupKey == "" {
		return nil, shared.NewValidationError("dedup_key", "is required")
	}
	if len(payload) == 0 {
		return nil, shared.NewValidationError("payload", "is required")
	}
	return &Entry{
		ID:            uuid.New(),
		TenantID:      event.TenantID(),
		EventID:       event.EventID(),
		DedupKey:      dedupKey,
		EventType:     event.EventType(),
		PaymentID:     paymentID,
		TransactionID: transactionID,
		OrderID:       orderID,
		Payload:       payload,
		Status:        StatusPending,
		ReceivedAt:    now,
		UpdatedAt:     now,
	}, nil
}

// IsPublished reports whether the event already reached its handlers
func (e *Entry) IsPublished() bool {
	return e.Status == StatusPublished
}

// BeginAttempt counts one dispatch attempt
func (e *Entry) BeginAttempt(now time.Time) {
	e.Attempts++
	e.UpdatedAt = now
}

// MarkPublished marks the entry as dispatched without handler errors
func (e *Entry) MarkPublished(now time.Time) {
	e.Status = StatusPublished
	e.LastError = ""
	e.PublishedAt = &now
	e.UpdatedAt = now
}

// MarkFailed keeps the error text so the entry can be replayed later
func (e *Entry) MarkFailed(errMsg string, now time.Time) {
	e.Status = StatusFailed
	e.LastError = errMsg
	e.UpdatedAt = now
}

// ListFilter narrows event log queries
type ListFilter struct {
	shared.Filter
	TenantID  *uuid.UUID
	Status    Status
	EventType string
	OrderID   *uuid.UUID
}

// Repository persists event log entries
type Repository interface {
	// Create fails with ErrAlreadyExists when the dedup key was already recorded
	Create(ctx context.Context, e *Entry) error
	// FindByDedupKey returns nil, nil when the key was never recorded
	FindByDedupKey(ctx context.Context, dedupKey string) (*Entry, error)
	Update(ctx context.Context, e *Entry) error
	List(ctx context.Context, filter ListFilter) ([]*Entry, int64, error)
	CountByStatus(ctx context.Context) (map[Status]int64, error)
}
