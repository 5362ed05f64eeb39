package dto

import (
	"time"

	"github.com/Renagang21/o4o-platform-sub111/internal/domain/approval"
	"github.com/Renagang21/o4o-platform-sub111/internal/domain/commission"
	"github.com/Renagang21/o4o-platform-sub111/internal/domain/eventlog"
	"github.com/Renagang21/o4o-platform-sub111/internal/domain/payment"
	"github.com/Renagang21/o4o-platform-sub111/internal/domain/settlement"
	"github.com/Renagang21/o4o-platform-sub111/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateCommissionRequest records the commission of an attributed sale
type CreateCommissionRequest struct {
	ConversionID    string `json:"conversion_id" binding:"required,max=100"`
	BeneficiaryID   string `json:"beneficiary_id" binding:"required,uuid"`
	BeneficiaryType string `json:"beneficiary_type" binding:"required,oneof=PARTNER SELLER SUPPLIER"`
	ProductID       string `json:"product_id" binding:"omitempty,uuid"`
	OrderID         string `json:"order_id" binding:"required,uuid"`
	OrderAmount     string `json:"order_amount" binding:"required,decimal"`
	Currency        string `json:"currency" binding:"required,len=3"`
	PolicyID        string `json:"policy_id" binding:"required,uuid"`
}

// ListCommissionsRequest filters the commission list
type ListCommissionsRequest struct {
	ListRequest
	BeneficiaryID   string `form:"beneficiary_id" binding:"omitempty,uuid"`
	BeneficiaryType string `form:"beneficiary_type" binding:"omitempty,oneof=PARTNER SELLER SUPPLIER"`
	Status          string `form:"status" binding:"omitempty,oneof=PENDING CONFIRMED PAID CANCELLED"`
	BatchID         string `form:"batch_id" binding:"omitempty,uuid"`
}

// ReasonRequest carries the mandatory reason of a transition
type ReasonRequest struct {
	Reason string `json:"reason" binding:"required,max=500"`
}

// OptionalReasonRequest carries an optional reason
type OptionalReasonRequest struct {
	Reason string `json:"reason" binding:"max=500"`
}

// AdjustCommissionRequest changes the amount of an unpaid commission
type AdjustCommissionRequest struct {
	Amount string `json:"amount" binding:"required,decimal"`
	Reason string `json:"reason" binding:"required,max=500"`
}

// EnrichCommissionRequest sets one metadata entry
type EnrichCommissionRequest struct {
	Key   string `json:"key" binding:"required,max=100"`
	Value string `json:"value" binding:"max=1000"`
}

// CreatePolicyRequest creates a commission policy
type CreatePolicyRequest struct {
	Name            string  `json:"name" binding:"required,max=200"`
	PolicyType      string  `json:"policy_type" binding:"required,max=50"`
	CalculationType string  `json:"calculation_type" binding:"required,oneof=RATE FIXED"`
	RatePercent     *string `json:"rate_percent" binding:"omitempty,decimal"`
	FixedAmount     *string `json:"fixed_amount" binding:"omitempty,decimal"`
	HoldDays        *int    `json:"hold_days" binding:"omitempty,gte=0,max=365"`
}

// SummaryRequest selects the settlement summary
type SummaryRequest struct {
	BeneficiaryID  string `form:"beneficiary_id" binding:"required,uuid"`
	SettlementType string `form:"settlement_type" binding:"required"`
	Currency       string `form:"currency" binding:"required,len=3"`
}

// ListBatchesRequest filters settlement batches
type ListBatchesRequest struct {
	ListRequest
	BeneficiaryID  string `form:"beneficiary_id" binding:"omitempty,uuid"`
	SettlementType string `form:"settlement_type"`
	Status         string `form:"status" binding:"omitempty,oneof=OPEN CLOSED PAID"`
}

// RequestAuthorizationRequest asks to sell a product
type RequestAuthorizationRequest struct {
	SellerID  string `json:"seller_id" binding:"required,uuid"`
	ProductID string `json:"product_id" binding:"required,uuid"`
}

// ApproveAuthorizationRequest records one role's approval
type ApproveAuthorizationRequest struct {
	Role string `json:"role" binding:"required,oneof=SUPPLIER PLATFORM"`
}

// RejectAuthorizationRequest rejects a seller request. A nil CooldownDays uses the configured default.
type RejectAuthorizationRequest struct {
	Reason       string `json:"reason" binding:"required,max=500"`
	CooldownDays *int   `json:"cooldown_days" binding:"omitempty,gte=0,max=365"`
}

// ListAuthorizationsRequest filters seller authorizations
type ListAuthorizationsRequest struct {
	ListRequest
	SellerID  string `form:"seller_id" binding:"omitempty,uuid"`
	ProductID string `form:"product_id" binding:"omitempty,uuid"`
	Status    string `form:"status" binding:"omitempty,oneof=REQUESTED APPROVED REJECTED REVOKED"`
}

// CreateCatalogItemRequest drafts a catalog item
type CreateCatalogItemRequest struct {
	SupplierID string `json:"supplier_id" binding:"required,uuid"`
	ProductID  string `json:"product_id" binding:"required,uuid"`
	Name       string `json:"name" binding:"required,max=200"`
}

// ListCatalogItemsRequest filters catalog items
type ListCatalogItemsRequest struct {
	ListRequest
	SupplierID string `form:"supplier_id" binding:"omitempty,uuid"`
	Status     string `form:"status" binding:"omitempty,oneof=draft pending approved rejected retired"`
}

// RegisterOrderPaymentRequest registers an order awaiting payment
type RegisterOrderPaymentRequest struct {
	OrderID  string `json:"order_id" binding:"required,uuid"`
	Amount   string `json:"amount" binding:"required,decimal"`
	Currency string `json:"currency" binding:"required,len=3"`
}

// PaymentEventRequest is an inbound payment.completed or payment.failed event
type PaymentEventRequest struct {
	EventID       string            `json:"event_id" binding:"max=100"`
	Type          string            `json:"type" binding:"required,oneof=payment.completed payment.failed"`
	Scope         string            `json:"scope" binding:"max=100"`
	PaymentID     string            `json:"payment_id" binding:"required,max=100"`
	TransactionID string            `json:"transaction_id" binding:"max=100"`
	OrderID       string            `json:"order_id" binding:"required,uuid"`
	Amount        string            `json:"amount" binding:"omitempty,decimal"`
	Method        string            `json:"method" binding:"max=50"`
	ApprovedAt    *time.Time        `json:"approved_at"`
	ErrorCode     string            `json:"error_code" binding:"max=100"`
	ErrorMessage  string            `json:"error_message" binding:"max=1000"`
	Metadata      map[string]string `json:"metadata"`
}

// ReplayRequest bounds one replay pass
type ReplayRequest struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=1000"`
}

// ListEventsRequest filters the payment event log
type ListEventsRequest struct {
	ListRequest
	Status    string `form:"status" binding:"omitempty,oneof=pending published failed"`
	EventType string `form:"event_type"`
	OrderID   string `form:"order_id" binding:"omitempty,uuid"`
}

// PolicySnapshotResponse is the policy copy stored on a commission
type PolicySnapshotResponse struct {
	PolicyID        uuid.UUID        `json:"policy_id"`
	PolicyType      string           `json:"policy_type"`
	CalculationType string           `json:"calculation_type"`
	RatePercent     *decimal.Decimal `json:"rate_percent,omitempty"`
	FixedAmount     *decimal.Decimal `json:"fixed_amount,omitempty"`
	HoldDays        int              `json:"hold_days"`
}

// CommissionResponse is the API view of a commission
type CommissionResponse struct {
	ID               uuid.UUID               `json:"id"`
	ConversionID     string                  `json:"conversion_id"`
	BeneficiaryID    uuid.UUID               `json:"beneficiary_id"`
	BeneficiaryType  string                  `json:"beneficiary_type"`
	ProductID        *uuid.UUID              `json:"product_id,omitempty"`
	OrderID          uuid.UUID               `json:"order_id"`
	OrderAmount      decimal.Decimal         `json:"order_amount"`
	CommissionAmount decimal.Decimal         `json:"commission_amount"`
	Currency         string                  `json:"currency"`
	Status           string                  `json:"status"`
	Policy           PolicySnapshotResponse  `json:"policy"`
	HoldUntil        time.Time               `json:"hold_until"`
	ConfirmedAt      *time.Time              `json:"confirmed_at,omitempty"`
	PaidAt           *time.Time              `json:"paid_at,omitempty"`
	CancelledAt      *time.Time              `json:"cancelled_at,omitempty"`
	CancelReason     string                  `json:"cancel_reason,omitempty"`
	PaymentMethod    string                  `json:"payment_method,omitempty"`
	PaymentReference string                  `json:"payment_reference,omitempty"`
	BatchID          *uuid.UUID              `json:"batch_id,omitempty"`
	Adjustments      []commission.Adjustment `json:"adjustments,omitempty"`
	Metadata         map[string]string       `json:"metadata,omitempty"`
	Version          int                     `json:"version"`
	CreatedAt        time.Time               `json:"created_at"`
	UpdatedAt        time.Time               `json:"updated_at"`
}

// NewCommissionResponse converts a commission
func NewCommissionResponse(c *commission.Commission) CommissionResponse {
	resp := CommissionResponse{
		ID:               c.ID,
		ConversionID:     c.ConversionID,
		BeneficiaryID:    c.BeneficiaryID,
		BeneficiaryType:  string(c.BeneficiaryType),
		OrderID:          c.OrderID,
		OrderAmount:      c.OrderAmount,
		CommissionAmount: c.CommissionAmount,
		Currency:         c.Currency,
		Status:           string(c.Status),
		Policy: PolicySnapshotResponse{
			PolicyID:        c.Policy.PolicyID,
			PolicyType:      c.Policy.PolicyType,
			CalculationType: string(c.Policy.CalculationType),
			RatePercent:     c.Policy.RatePercent,
			FixedAmount:     c.Policy.FixedAmount,
			HoldDays:        c.Policy.HoldDays,
		},
		HoldUntil:        c.HoldUntil,
		ConfirmedAt:      c.ConfirmedAt,
		PaidAt:           c.PaidAt,
		CancelledAt:      c.CancelledAt,
		CancelReason:     c.CancelReason,
		PaymentMethod:    c.PaymentMethod,
		PaymentReference: c.PaymentReference,
		BatchID:          c.BatchID,
		Adjustments:      c.Adjustments,
		Metadata:         c.Metadata,
		Version:          c.Version,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
	if c.ProductID != uuid.Nil {
		id := c.ProductID
		resp.ProductID = &id
	}
	return resp
}

// NewCommissionResponses converts a slice of commissions
func NewCommissionResponses(items []*commission.Commission) []CommissionResponse {
	out := make([]CommissionResponse, 0, len(items))
	for _, c := range items {
		out = append(out, NewCommissionResponse(c))
	}
	return out
}

// PolicyResponse is the API view of a commission policy
type PolicyResponse struct {
	ID              uuid.UUID        `json:"id"`
	Name            string           `json:"name"`
	PolicyType      string           `json:"policy_type"`
	CalculationType string           `json:"calculation_type"`
	RatePercent     *decimal.Decimal `json:"rate_percent,omitempty"`
	FixedAmount     *decimal.Decimal `json:"fixed_amount,omitempty"`
	HoldDays        int              `json:"hold_days"`
	Active          bool             `json:"active"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

// NewPolicyResponse converts a policy
func NewPolicyResponse(p *commission.Policy) PolicyResponse {
	return PolicyResponse{
		ID:              p.ID,
		Name:            p.Name,
		PolicyType:      p.PolicyType,
		CalculationType: string(p.CalculationType),
		RatePercent:     p.RatePercent,
		FixedAmount:     p.FixedAmount,
		HoldDays:        p.HoldDays,
		Active:          p.Active,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

// BatchResponse is the API view of a settlement batch
type BatchResponse struct {
	ID               uuid.UUID       `json:"id"`
	BeneficiaryID    uuid.UUID       `json:"beneficiary_id"`
	SettlementType   string          `json:"settlement_type"`
	PeriodStart      time.Time       `json:"period_start"`
	PeriodEnd        time.Time       `json:"period_end"`
	Currency         string          `json:"currency"`
	Status           string          `json:"status"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
	CommissionAmount decimal.Decimal `json:"commission_amount"`
	NetAmount        decimal.Decimal `json:"net_amount"`
	CommissionCount  int             `json:"commission_count"`
	ClosedAt         *time.Time      `json:"closed_at,omitempty"`
	ClosedBy         string          `json:"closed_by,omitempty"`
	PaidAt           *time.Time      `json:"paid_at,omitempty"`
	PaidBy           string          `json:"paid_by,omitempty"`
	Version          int             `json:"version"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// NewBatchResponse converts a settlement batch
func NewBatchResponse(b *settlement.Batch) BatchResponse {
	return BatchResponse{
		ID:               b.ID,
		BeneficiaryID:    b.BeneficiaryID,
		SettlementType:   string(b.SettlementType),
		PeriodStart:      b.PeriodStart,
		PeriodEnd:        b.PeriodEnd,
		Currency:         b.Currency,
		Status:           string(b.Status),
		TotalAmount:      b.TotalAmount,
		CommissionAmount: b.CommissionAmount,
		NetAmount:        b.NetAmount,
		CommissionCount:  b.CommissionCount,
		ClosedAt:         b.ClosedAt,
		ClosedBy:         b.ClosedBy,
		PaidAt:           b.PaidAt,
		PaidBy:           b.PaidBy,
		Version:          b.Version,
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.UpdatedAt,
	}
}

// SinkRecordResponse is the API view of one voucher submission
type SinkRecordResponse struct {
	ID            uuid.UUID       `json:"id"`
	BatchID       uuid.UUID       `json:"batch_id"`
	Kind          string          `json:"kind"`
	Reference     string          `json:"reference"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	Status        string          `json:"status"`
	StatusCode    int             `json:"status_code,omitempty"`
	ExternalID    string          `json:"external_id,omitempty"`
	LastError     string          `json:"last_error,omitempty"`
	Attempts      int             `json:"attempts"`
	LastAttemptAt *time.Time      `json:"last_attempt_at,omitempty"`
}

// NewSinkRecordResponses converts voucher submission records
func NewSinkRecordResponses(records []*settlement.SinkRecord) []SinkRecordResponse {
	out := make([]SinkRecordResponse, 0, len(records))
	for _, r := range records {
		out = append(out, SinkRecordResponse{
			ID:            r.ID,
			BatchID:       r.BatchID,
			Kind:          string(r.Kind),
			Reference:     r.Reference,
			Amount:        r.Amount,
			Currency:      r.Currency,
			Status:        string(r.Status),
			StatusCode:    r.StatusCode,
			ExternalID:    r.ExternalID,
			LastError:     r.LastError,
			Attempts:      r.Attempts,
			LastAttemptAt: r.LastAttemptAt,
		})
	}
	return out
}

// AuthorizationResponse is the API view of a seller authorization
type AuthorizationResponse struct {
	ID           uuid.UUID  `json:"id"`
	SellerID     uuid.UUID  `json:"seller_id"`
	ProductID    uuid.UUID  `json:"product_id"`
	Status       string     `json:"status"`
	RequestedAt  time.Time  `json:"requested_at"`
	RequestedBy  string     `json:"requested_by,omitempty"`
	RequestCount int        `json:"request_count"`
	DecidedAt    *time.Time `json:"decided_at,omitempty"`
	DecidedBy    string     `json:"decided_by,omitempty"`

	SupplierApprovedBy string     `json:"supplier_approved_by,omitempty"`
	SupplierApprovedAt *time.Time `json:"supplier_approved_at,omitempty"`
	PlatformApprovedBy string     `json:"platform_approved_by,omitempty"`
	PlatformApprovedAt *time.Time `json:"platform_approved_at,omitempty"`
	PendingApprovals   []string   `json:"pending_approvals,omitempty"`

	RejectionReason string     `json:"rejection_reason,omitempty"`
	CooldownUntil   *time.Time `json:"cooldown_until,omitempty"`
	RevokedAt       *time.Time `json:"revoked_at,omitempty"`
	RevokeReason    string     `json:"revoke_reason,omitempty"`
	Version         int        `json:"version"`
}

// NewAuthorizationResponse converts a seller authorization
func NewAuthorizationResponse(a *approval.SellerAuthorization) AuthorizationResponse {
	var pending []string
	for _, role := range a.PendingApprovals() {
		pending = append(pending, string(role))
	}
	return AuthorizationResponse{
		ID:           a.ID,
		SellerID:     a.SellerID,
		ProductID:    a.ProductID,
		Status:       string(a.Status),
		RequestedAt:  a.RequestedAt,
		RequestedBy:  a.RequestedBy,
		RequestCount: a.RequestCount,
		DecidedAt:    a.DecidedAt,
		DecidedBy:    a.DecidedBy,

		SupplierApprovedBy: a.SupplierApprovedBy,
		SupplierApprovedAt: a.SupplierApprovedAt,
		PlatformApprovedBy: a.PlatformApprovedBy,
		PlatformApprovedAt: a.PlatformApprovedAt,
		PendingApprovals:   pending,

		RejectionReason: a.RejectionReason,
		CooldownUntil:   a.CooldownUntil,
		RevokedAt:       a.RevokedAt,
		RevokeReason:    a.RevokeReason,
		Version:         a.Version,
	}
}

// CatalogItemResponse is the API view of a catalog item
type CatalogItemResponse struct {
	ID              uuid.UUID  `json:"id"`
	SupplierID      uuid.UUID  `json:"supplier_id"`
	ProductID       uuid.UUID  `json:"product_id"`
	Name            string     `json:"name"`
	Status          string     `json:"status"`
	SubmittedAt     *time.Time `json:"submitted_at,omitempty"`
	ReviewedAt      *time.Time `json:"reviewed_at,omitempty"`
	ReviewedBy      string     `json:"reviewed_by,omitempty"`
	RejectionReason string     `json:"rejection_reason,omitempty"`
	RetiredAt       *time.Time `json:"retired_at,omitempty"`
	Version         int        `json:"version"`
}

// NewCatalogItemResponse converts a catalog item
func NewCatalogItemResponse(i *approval.CatalogItem) CatalogItemResponse {
	return CatalogItemResponse{
		ID:              i.ID,
		SupplierID:      i.SupplierID,
		ProductID:       i.ProductID,
		Name:            i.Name,
		Status:          string(i.Status),
		SubmittedAt:     i.SubmittedAt,
		ReviewedAt:      i.ReviewedAt,
		ReviewedBy:      i.ReviewedBy,
		RejectionReason: i.RejectionReason,
		RetiredAt:       i.RetiredAt,
		Version:         i.Version,
	}
}

// OrderPaymentResponse is the API view of an order's payment state
type OrderPaymentResponse struct {
	OrderID            uuid.UUID       `json:"order_id"`
	Status             string          `json:"status"`
	Amount             decimal.Decimal `json:"amount"`
	Currency           string          `json:"currency"`
	PaidAmount         decimal.Decimal `json:"paid_amount"`
	PaymentID          string          `json:"payment_id,omitempty"`
	TransactionID      string          `json:"transaction_id,omitempty"`
	PaymentMethod      string          `json:"payment_method,omitempty"`
	PaidAt             *time.Time      `json:"paid_at,omitempty"`
	LastAttemptFailed  bool            `json:"last_attempt_failed"`
	FailedAttempts     int             `json:"failed_attempts"`
	LastFailureCode    string          `json:"last_failure_code,omitempty"`
	LastFailureMessage string          `json:"last_failure_message,omitempty"`
	LastFailedAt       *time.Time      `json:"last_failed_at,omitempty"`
	Version            int             `json:"version"`
}

// NewOrderPaymentResponse converts an order payment
func NewOrderPaymentResponse(o *payment.OrderPayment) OrderPaymentResponse {
	return OrderPaymentResponse{
		OrderID:            o.OrderID,
		Status:             string(o.Status),
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
		Version:            o.Version,
	}
}

// EventLogEntryResponse is the API view of a logged inbound event
type EventLogEntryResponse struct {
	ID          uuid.UUID  `json:"id"`
	DedupKey    string     `json:"dedup_key"`
	EventType   string     `json:"event_type"`
	PaymentID   string     `json:"payment_id"`
	OrderID     uuid.UUID  `json:"order_id"`
	Status      string     `json:"status"`
	Attempts    int        `json:"attempts"`
	LastError   string     `json:"last_error,omitempty"`
	ReceivedAt  time.Time  `json:"received_at"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
}

// NewEventLogEntryResponses converts event log entries
func NewEventLogEntryResponses(entries []*eventlog.Entry) []EventLogEntryResponse {
	out := make([]EventLogEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, EventLogEntryResponse{
			ID:          e.ID,
			DedupKey:    e.DedupKey,
			EventType:   e.EventType,
			PaymentID:   e.PaymentID,
			OrderID:     e.OrderID,
			Status:      string(e.Status),
			Attempts:    e.Attempts,
			LastError:   e.LastError,
			ReceivedAt:  e.ReceivedAt,
			PublishedAt: e.PublishedAt,
		})
	}
	return out
}

// AuditEntryResponse is one row of a transition history
type AuditEntryResponse struct {
	ID            uuid.UUID      `json:"id"`
	EntityType    string         `json:"entity_type"`
	EntityID      uuid.UUID      `json:"entity_id"`
	Action        string         `json:"action"`
	FromStatus    string         `json:"from_status"`
	ToStatus      string         `json:"to_status"`
	EntityVersion int            `json:"entity_version"`
	Actor         string         `json:"actor"`
	Reason        string         `json:"reason,omitempty"`
	Before        map[string]any `json:"before,omitempty"`
	After         map[string]any `json:"after,omitempty"`
	CorrelationID string         `json:"correlation_id"`
	OccurredAt    time.Time      `json:"occurred_at"`
}

// NewAuditEntryResponses converts a transition history
func NewAuditEntryResponses(entries []shared.AuditEntry) []AuditEntryResponse {
	out := make([]AuditEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, AuditEntryResponse{
			ID:            e.ID,
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
			CorrelationID: e.CorrelationID,
			OccurredAt:    e.OccurredAt,
		})
	}
	return out
}

// TransitionsResponse lists the statuses reachable from one status
type TransitionsResponse struct {
	EntityType string   `json:"entity_type"`
	Status     string   `json:"status,omitempty"`
	Allowed    []string `json:"allowed,omitempty"`
	States     []string `json:"states,omitempty"`
}
