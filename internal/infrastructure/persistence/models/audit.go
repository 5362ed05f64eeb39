package models

import (
	"time"

	"github.com/Renagang21/o4o-platform-sub111/internal/domain/shared"
	"github.com/google/uuid"
)

// AuditLogModel is the persistence model for transition audit rows. Rows are never updated.
type AuditLogModel struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey"`
	TenantID      uuid.UUID      `gorm:"type:uuid;not null;index"`
	EntityType    string         `gorm:"type:varchar(50);not null;index:idx_audit_entity,priority:1"`
	EntityID      uuid.UUID      `gorm:"type:uuid;not null;index:idx_audit_entity,priority:2"`
	Action        string         `gorm:"type:varchar(50);not null"`
	FromStatus    string         `gorm:"type:varchar(30)"`
	ToStatus      string         `gorm:"type:varchar(30)"`
	EntityVersion int            `gorm:"not null;default:0"`
	Actor         string         `gorm:"type:varchar(100)"`
	Reason        string         `gorm:"type:text"`
	Before        map[string]any `gorm:"type:jsonb;serializer:json"`
	After         map[string]any `gorm:"type:jsonb;serializer:json"`
	IPAddress     string         `gorm:"type:varchar(64)"`
	UserAgent     string         `gorm:"type:varchar(500)"`
	CorrelationID string         `gorm:"type:varchar(64);index"`
	OccurredAt    time.Time      `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (AuditLogModel) TableName() string {
	return "transition_audit_log"
}

// ToDomain converts the model to a domain audit entry
func (m *AuditLogModel) ToDomain() shared.AuditEntry {
	return shared.AuditEntry{
		ID:            m.ID,
		TenantID:      m.TenantID,
		EntityType:    m.EntityType,
		EntityID:      m.EntityID,
		Action:        m.Action,
		FromStatus:    m.FromStatus,
		ToStatus:      m.ToStatus,
		EntityVersion: m.EntityVersion,
		Actor:         m.Actor,
		Reason:        m.Reason,
		Before:        m.Before,
		After:         m.After,
		IPAddress:     m.IPAddress,
		UserAgent:     m.UserAgent,
		CorrelationID: m.CorrelationID,
		OccurredAt:    m.OccurredAt,
	}
}

// AuditLogModelFromDomain converts a domain audit entry to a model
func AuditLogModelFromDomain(e *shared.AuditEntry) *AuditLogModel {
	return &AuditLogModel{
		ID:            e.ID,
		TenantID:      e.TenantID,
		EntityType:    e.EntityType,
		EntityID:      e.EntityID,
		Action:        e.Action,
		FromStatus:    e.FromStatus,
		ToStatus:      e.ToStatus,
		EntityVersion: e.EntityVersion,
		Actor:         e.Actor,
		Reason:        e.Reason,
		Before:        e.Before,
		After:         e.After,
		IPAddress:     e.IPAddress,
		UserAgent:     e.UserAgent,
		CorrelationID: e.CorrelationID,
		OccurredAt:    e.OccurredAt,
	}
}
