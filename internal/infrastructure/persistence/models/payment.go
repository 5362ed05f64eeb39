package models

import (
	"time"

	"github.com/Renagang21/o4o-platform-sub111/internal/domain/payment"
	"github.com/shopspring/decimal"
)

// OrderPaymentModel is the persistence model for order payment state; its id is the order id
type OrderPaymentModel struct {
	TenantAggregateModel
	Status             payment.OrderPaymentStatus `gorm:"type:varchar(20);not null;index"`
	Amount             decimal.Decimal            `gorm:"type:decimal(18,2);not null"`
	Currency           string                     `gorm:"type:varchar(3);not null"`
	PaidAmount         decimal.Decimal            `gorm:"type:decimal(18,2);not null"`
	PaymentID          string                     `gorm:"type:varchar(100);index"`
	TransactionID      string                     `gorm:"type:varchar(100)"`
	PaymentMethod      string                     `gorm:"type:varchar(50)"`
	PaidAt             *time.Time
	LastAttemptFailed  bool   `gorm:"not null;default:false"`
	FailedAttempts     int    `gorm:"not null;default:0"`
	LastFailureCode    string `gorm:"type:varchar(50)"`
	LastFailureMessage string `gorm:"type:text"`
	LastFailedAt       *time.Time
}

// TableName returns the table name for GORM
func (OrderPaymentModel) TableName() string {
	return "order_payments"
}

// ToDomain converts the model to a domain order payment
func (m *OrderPaymentModel) ToDomain() *payment.OrderPayment {
	return &payment.OrderPayment{
		TenantAggregateRoot: m.ToDomainTenantAggregateRoot(),
		OrderID:             m.ID,
		Status:              m.Status,
		Amount:              m.Amount,
		Currency:            m.Currency,
		PaidAmount:          m.PaidAmount,
		PaymentID:           m.PaymentID,
		TransactionID:       m.TransactionID,
		PaymentMethod:       m.PaymentMethod,
		PaidAt:              m.PaidAt,
		LastAttemptFailed:   m.LastAttemptFailed,
		FailedAttempts:      m.FailedAttempts,
		LastFailureCode:     m.LastFailureCode,
		LastFailureMessage:  m.LastFailureMessage,
		LastFailedAt:        m.LastFailedAt,
	}
}

// OrderPaymentModelFromDomain converts a domain order payment to a model
func OrderPaymentModelFromDomain(o *payment.OrderPayment) *OrderPaymentModel {
	m := &OrderPaymentModel{
		Status:             o.Status,
		Amount:             o.Amount,
		Currency:           o.Currency,
		PaidAmount:         o.PaidAmount,
		PaymentID:          o.PaymentID,
		TransactionID:      o.TransactionID,
		PaymentMethod:      o.PaymentMethod,
		PaidAt:             o.PaidAt,
		LastAttemptFailed:  o.LastAttemptFailed,
		FailedAttempts:     o.FailedAttempts,
		LastFailureCode:    o.LastFailureCode,
		LastFailureMessage: o.LastFailureMessage,
		LastFailedAt:       o.LastFailedAt,
	}
	m.FromDomainTenantAggregateRoot(o.TenantAggregateRoot)
	return m
}
