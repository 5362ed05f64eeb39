package models

import (
	"time"

	"github.com/Renagang21/o4o-platform-sub111/internal/domain/eventlog"
	"github.com/google/uuid"
)

// EventLogModel is the persistence model for inbound event log entries
type EventLogModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	TenantID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	EventID       uuid.UUID       `gorm:"type:uuid;not null"`
	DedupKey      string          `gorm:"type:varchar(200);not null;uniqueIndex"`
	EventType     string          `gorm:"type:varchar(100);not null;index"`
	PaymentID     string          `gorm:"type:varchar(100);index"`
	TransactionID string          `gorm:"type:varchar(100)"`
	OrderID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	Payload       []byte          `gorm:"type:bytea;not null"`
	Status        eventlog.Status `gorm:"type:varchar(20);not null;index"`
	Attempts      int             `gorm:"not null;default:0"`
	LastError     string          `gorm:"type:text"`
	ReceivedAt    time.Time       `gorm:"not null;index"`
	PublishedAt   *time.Time
	UpdatedAt     time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (EventLogModel) TableName() string {
	return "event_log"
}

// ToDomain converts the model to a domain entry
func (m *EventLogModel) ToDomain() *eventlog.Entry {
	return &eventlog.Entry{
		ID:            m.ID,
		TenantID:      m.TenantID,
		EventID:       m.EventID,
		DedupKey:      m.DedupKey,
		EventType:     m.EventType,
		PaymentID:     m.PaymentID,
		TransactionID: m.TransactionID,
		OrderID:       m.OrderID,
		Payload:       m.Payload,
		Status:        m.Status,
		Attempts:      m.Attempts,
		LastError:     m.LastError,
		ReceivedAt:    m.ReceivedAt,
		PublishedAt:   m.PublishedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// EventLogModelFromDomain converts a domain entry to a model
func EventLogModelFromDomain(e *eventlog.Entry) *EventLogModel {
	return &EventLogModel{
		ID:            e.ID,
		TenantID:      e.TenantID,
		EventID:       e.EventID,
		DedupKey:      e.DedupKey,
		EventType:     e.EventType,
		PaymentID:     e.PaymentID,
		TransactionID: e.TransactionID,
		OrderID:       e.OrderID,
		Payload:       e.Payload,
		Status:        e.Status,
		Attempts:      e.Attempts,
		LastError:     e.LastError,
		ReceivedAt:    e.ReceivedAt,
		PublishedAt:   e.PublishedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}
