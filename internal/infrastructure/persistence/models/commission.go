package models

import (
	"time"

	"github.com/Renagang21/o4o-platform-sub111/internal/domain/commission"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CommissionPolicyModel is the persistence model for commission policies
type CommissionPolicyModel struct {
	BaseModel
	TenantID        uuid.UUID                  `gorm:"type:uuid;not null;index"`
	Name            string                     `gorm:"type:varchar(200);not null"`
	PolicyType      string                     `gorm:"type:varchar(50);not null;index"`
	CalculationType commission.CalculationType `gorm:"type:varchar(20);not null"`
	RatePercent     *decimal.Decimal           `gorm:"type:decimal(5,2)"`
	FixedAmount     *decimal.Decimal           `gorm:"type:decimal(18,2)"`
	HoldDays        int                        `gorm:"not null;default:0"`
	Active          bool                       `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (CommissionPolicyModel) TableName() string {
	return "commission_policies"
}

// ToDomain converts the model to a domain policy
func (m *CommissionPolicyModel) ToDomain() *commission.Policy {
	return &commission.Policy{
		ID:              m.ID,
		TenantID:        m.TenantID,
		Name:            m.Name,
		PolicyType:      m.PolicyType,
		CalculationType: m.CalculationType,
		RatePercent:     m.RatePercent,
		FixedAmount:     m.FixedAmount,
		HoldDays:        m.HoldDays,
		Active:          m.Active,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// CommissionPolicyModelFromDomain converts a domain policy to a model
func CommissionPolicyModelFromDomain(p *commission.Policy) *CommissionPolicyModel {
	return &CommissionPolicyModel{
		BaseModel:       BaseModel{ID: p.ID, CreatedAt: p.CreatedAt, UpdatedAt: p.UpdatedAt},
		TenantID:        p.TenantID,
		Name:            p.Name,
		PolicyType:      p.PolicyType,
		CalculationType: p.CalculationType,
		RatePercent:     p.RatePercent,
		FixedAmount:     p.FixedAmount,
		HoldDays:        p.HoldDays,
		Active:          p.Active,
	}
}

// CommissionModel is the persistence model for the Commission aggregate.
// The (tenant_id, conversion_id) unique index is what rejects a second commission
// for the same conversion, including under concurrent creation.
type CommissionModel struct {
	BaseModel
	TenantID         uuid.UUID                  `gorm:"type:uuid;not null;uniqueIndex:idx_commission_conversion,priority:1"`
	Version          int                        `gorm:"not null;default:1"`
	ConversionID     string                     `gorm:"type:varchar(100);not null;uniqueIndex:idx_commission_conversion,priority:2"`
	BeneficiaryID    uuid.UUID                  `gorm:"type:uuid;not null;index:idx_commission_beneficiary"`
	BeneficiaryType  commission.BeneficiaryType `gorm:"type:varchar(20);not null;index:idx_commission_beneficiary"`
	ProductID        uuid.UUID                  `gorm:"type:uuid;index"`
	OrderID          uuid.UUID                  `gorm:"type:uuid;not null;index"`
	OrderAmount      decimal.Decimal            `gorm:"type:decimal(18,2);not null"`
	CommissionAmount decimal.Decimal            `gorm:"type:decimal(18,2);not null"`
	Currency         string                     `gorm:"type:varchar(3);not null"`
	RatePercent      *decimal.Decimal           `gorm:"type:decimal(5,2)"`
	PolicyID         uuid.UUID                  `gorm:"type:uuid;index"`
	Policy           commission.PolicySnapshot  `gorm:"type:jsonb;serializer:json;not null"`
	Status           commission.Status          `gorm:"type:varchar(20);not null;index"`
	HoldUntil        time.Time                  `gorm:"not null;index"`
	ConfirmedAt      *time.Time
	PaidAt           *time.Time
	CancelledAt      *time.Time
	CancelReason     string                  `gorm:"type:text"`
	CancelledBy      string                  `gorm:"type:varchar(100)"`
	PaymentMethod    string                  `gorm:"type:varchar(50)"`
	PaymentReference string                  `gorm:"type:varchar(100)"`
	BatchID          *uuid.UUID              `gorm:"type:uuid;index"`
	Adjustments      []commission.Adjustment `gorm:"type:jsonb;serializer:json"`
	Metadata         map[string]string       `gorm:"type:jsonb;serializer:json"`
}

// TableName returns the table name for GORM
func (CommissionModel) TableName() string {
	return "commissions"
}

// ToDomain converts the model to a domain commission
func (m *CommissionModel) ToDomain() *commission.Commission {
	c := &commission.Commission{
		TenantAggregateRoot: tenantRoot(m.BaseModel, m.TenantID, m.Version),
		ConversionID:        m.ConversionID,
		BeneficiaryID:       m.BeneficiaryID,
		BeneficiaryType:     m.BeneficiaryType,
		ProductID:           m.ProductID,
		OrderID:             m.OrderID,
		OrderAmount:         m.OrderAmount,
		CommissionAmount:    m.CommissionAmount,
		Currency:            m.Currency,
		RatePercent:         m.RatePercent,
		Policy:              m.Policy,
		Status:              m.Status,
		HoldUntil:           m.HoldUntil,
		ConfirmedAt:         m.ConfirmedAt,
		PaidAt:              m.PaidAt,
		CancelledAt:         m.CancelledAt,
		CancelReason:        m.CancelReason,
		CancelledBy:         m.CancelledBy,
		PaymentMethod:       m.PaymentMethod,
		PaymentReference:    m.PaymentReference,
		BatchID:             m.BatchID,
		Adjustments:         m.Adjustments,
		Metadata:            m.Metadata,
	}
	if c.Adjustments == nil {
		c.Adjustments = make([]commission.Adjustment, 0)
	}
	if c.Metadata == nil {
		c.Metadata = make(map[string]string)
	}
	return c
}

// CommissionModelFromDomain converts a domain commission to a model
func CommissionModelFromDomain(c *commission.Commission) *CommissionModel {
	return &CommissionModel{
		BaseModel:        BaseModel{ID: c.ID, CreatedAt: c.CreatedAt, UpdatedAt: c.UpdatedAt},
		TenantID:         c.TenantID,
		Version:          c.Version,
		ConversionID:     c.ConversionID,
		BeneficiaryID:    c.BeneficiaryID,
		BeneficiaryType:  c.BeneficiaryType,
		ProductID:        c.ProductID,
		OrderID:          c.OrderID,
		OrderAmount:      c.OrderAmount,
		CommissionAmount: c.CommissionAmount,
		Currency:         c.Currency,
		RatePercent:      c.RatePercent,
		PolicyID:         c.Policy.PolicyID,
		Policy:           c.Policy,
		Status:           c.Status,
		HoldUntil:        c.HoldUntil,
		ConfirmedAt:      c.ConfirmedAt,
		PaidAt:           c.PaidAt,
		CancelledAt:      c.CancelledAt,
		CancelReason:     c.CancelReason,
		CancelledBy:      c.CancelledBy,
		PaymentMethod:    c.PaymentMethod,
		PaymentReference: c.PaymentReference,
		BatchID:          c.BatchID,
		Adjustments:      c.Adjustments,
		Metadata:         c.Metadata,
	}
}
