package models

import (
	"time"

	"github.com/Renagang21/o4o-platform-sub111/internal/domain/settlement"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SettlementBatchModel is the persistence model for settlement batches.
// The unique index allows one batch per beneficiary, settlement type, period and currency.
type SettlementBatchModel struct {
	BaseModel
	TenantID         uuid.UUID                 `gorm:"type:uuid;not null;uniqueIndex:idx_batch_key,priority:1"`
	Version          int                       `gorm:"not null;default:1"`
	BeneficiaryID    uuid.UUID                 `gorm:"type:uuid;not null;uniqueIndex:idx_batch_key,priority:2"`
	SettlementType   settlement.SettlementType `gorm:"type:varchar(30);not null;uniqueIndex:idx_batch_key,priority:3"`
	PeriodStart      time.Time                 `gorm:"not null;uniqueIndex:idx_batch_key,priority:4"`
	Currency         string                    `gorm:"type:varchar(3);not null;uniqueIndex:idx_batch_key,priority:5"`
	PeriodEnd        time.Time                 `gorm:"not null"`
	Status           settlement.BatchStatus    `gorm:"type:varchar(20);not null;index"`
	TotalAmount      decimal.Decimal           `gorm:"type:decimal(18,2);not null"`
	CommissionAmount decimal.Decimal           `gorm:"type:decimal(18,2);not null"`
	NetAmount        decimal.Decimal           `gorm:"type:decimal(18,2);not null"`
	CommissionCount  int                       `gorm:"not null;default:0"`
	ClosedAt         *time.Time
	ClosedBy         string `gorm:"type:varchar(100)"`
	PaidAt           *time.Time
	PaidBy           string `gorm:"type:varchar(100)"`
}

// TableName returns the table name for GORM
func (SettlementBatchModel) TableName() string {
	return "settlement_batches"
}

// ToDomain converts the model to a domain batch
func (m *SettlementBatchModel) ToDomain() *settlement.Batch {
	return &settlement.Batch{
		TenantAggregateRoot: tenantRoot(m.BaseModel, m.TenantID, m.Version),
		BeneficiaryID:       m.BeneficiaryID,
		SettlementType:      m.SettlementType,
		PeriodStart:         m.PeriodStart,
		PeriodEnd:           m.PeriodEnd,
		Currency:            m.Currency,
		Status:              m.Status,
		TotalAmount:         m.TotalAmount,
		CommissionAmount:    m.CommissionAmount,
		NetAmount:           m.NetAmount,
		CommissionCount:     m.CommissionCount,
		ClosedAt:            m.ClosedAt,
		ClosedBy:            m.ClosedBy,
		PaidAt:              m.PaidAt,
		PaidBy:              m.PaidBy,
	}
}

// SettlementBatchModelFromDomain converts a domain batch to a model
func SettlementBatchModelFromDomain(b *settlement.Batch) *SettlementBatchModel {
	return &SettlementBatchModel{
		BaseModel:        BaseModel{ID: b.ID, CreatedAt: b.CreatedAt, UpdatedAt: b.UpdatedAt},
		TenantID:         b.TenantID,
		Version:          b.Version,
		BeneficiaryID:    b.BeneficiaryID,
		SettlementType:   b.SettlementType,
		PeriodStart:      b.PeriodStart,
		PeriodEnd:        b.PeriodEnd,
		Currency:         b.Currency,
		Status:           b.Status,
		TotalAmount:      b.TotalAmount,
		CommissionAmount: b.CommissionAmount,
		NetAmount:        b.NetAmount,
		CommissionCount:  b.CommissionCount,
		ClosedAt:         b.ClosedAt,
		ClosedBy:         b.ClosedBy,
		PaidAt:           b.PaidAt,
		PaidBy:           b.PaidBy,
	}
}

// SinkRecordModel is the persistence model for voucher submission outcomes
type SinkRecordModel struct {
	BaseModel
	TenantID      uuid.UUID                   `gorm:"type:uuid;not null;index"`
	BatchID       uuid.UUID                   `gorm:"type:uuid;not null;uniqueIndex:idx_sink_batch_kind,priority:1"`
	Kind          settlement.VoucherKind      `gorm:"type:varchar(20);not null;uniqueIndex:idx_sink_batch_kind,priority:2"`
	Reference     string                      `gorm:"type:varchar(40);not null;uniqueIndex"`
	Amount        decimal.Decimal             `gorm:"type:decimal(18,2);not null"`
	Currency      string                      `gorm:"type:varchar(3);not null"`
	Status        settlement.SinkRecordStatus `gorm:"type:varchar(20);not null;index"`
	StatusCode    int
	Response      string             `gorm:"type:text"`
	ExternalID    string             `gorm:"type:varchar(100)"`
	LastError     string             `gorm:"type:text"`
	Attempts      int                `gorm:"not null;default:0"`
	Payload       settlement.Voucher `gorm:"type:jsonb;serializer:json;not null"`
	LastAttemptAt *time.Time
}

// TableName returns the table name for GORM
func (SinkRecordModel) TableName() string {
	return "settlement_sink_records"
}

// ToDomain converts the model to a domain sink record
func (m *SinkRecordModel) ToDomain() *settlement.SinkRecord {
	return &settlement.SinkRecord{
		ID:            m.ID,
		TenantID:      m.TenantID,
		BatchID:       m.BatchID,
		Kind:          m.Kind,
		Reference:     m.Reference,
		Amount:        m.Amount,
		Currency:      m.Currency,
		Status:        m.Status,
		StatusCode:    m.StatusCode,
		Response:      m.Response,
		ExternalID:    m.ExternalID,
		LastError:     m.LastError,
		Attempts:      m.Attempts,
		Payload:       m.Payload,
		LastAttemptAt: m.LastAttemptAt,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// SinkRecordModelFromDomain converts a domain sink record to a model
func SinkRecordModelFromDomain(r *settlement.SinkRecord) *SinkRecordModel {
	return &SinkRecordModel{
		BaseModel:     BaseModel{ID: r.ID, CreatedAt: r.CreatedAt, UpdatedAt: r.UpdatedAt},
		TenantID:      r.TenantID,
		BatchID:       r.BatchID,
		Kind:          r.Kind,
		Reference:     r.Reference,
		Amount:        r.Amount,
		Currency:      r.Currency,
		Status:        r.Status,
		StatusCode:    r.StatusCode,
		Response:      r.Response,
		ExternalID:    r.ExternalID,
		LastError:     r.LastError,
		Attempts:      r.Attempts,
		Payload:       r.Payload,
		LastAttemptAt: r.LastAttemptAt,
	}
}
