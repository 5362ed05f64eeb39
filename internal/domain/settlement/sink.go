package settlement

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Renagang21/o4o-platform-sub111/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// VoucherKind identifies one of the two independent submissions per closed batch
type VoucherKind string

const (
	VoucherPurchase VoucherKind = "PURCHASE"
	VoucherPayment  VoucherKind = "PAYMENT"
)

// Voucher is the sink-facing record built from a closed batch
type Voucher struct {
	Reference     string          `json:"reference"`
	Kind          VoucherKind     `json:"kind"`
	TenantID      uuid.UUID       `json:"tenant_id"`
	BatchID       uuid.UUID       `json:"batch_id"`
	BeneficiaryID uuid.UUID       `json:"beneficiary_id"`
	AccountCode   string          `json:"account_code"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	PeriodStart   time.Time       `json:"period_start"`
	PeriodEnd     time.Time       `json:"period_end"`
	Description   string          `json:"description"`
	IssuedAt      time.Time       `json:"issued_at"`
}

// VoucherAccounts holds the ledger account codes the sink books vouchers against
type VoucherAccounts struct {
	PurchaseAccount string
	PaymentAccount  string
}

// BuildVouchers translates a settlement.closed event into the purchase and payment vouchers.
// newRef supplies a unique reference per voucher.
func BuildVouchers(evt *SettlementClosedEvent, accounts VoucherAccounts, newRef func() string, now time.Time) []Voucher {
	period := fmt.Sprintf("%s..%s", evt.PeriodStart.Format("2006-01-02"), evt.PeriodEnd.Format("2006-01-02"))
	base := Voucher{
		TenantID:      evt.TenantID(),
		BatchID:       evt.BatchID,
		BeneficiaryID: evt.BeneficiaryID,
		Amount:        evt.NetAmount,
		Currency:      evt.Currency,
		PeriodStart:   evt.PeriodStart,
		PeriodEnd:     evt.PeriodEnd,
		IssuedAt:      now,
	}

	purchase := base
	purchase.Reference = newRef()
	purchase.Kind = VoucherPurchase
	purchase.AccountCode = accounts.PurchaseAccount
	purchase.Description = fmt.Sprintf("%s settlement %s: sales %s, commission %s",
		evt.SettlementType, period, evt.TotalAmount.StringFixed(2), evt.CommissionAmount.StringFixed(2))

	payment := base
	payment.Reference = newRef()
	payment.Kind = VoucherPayment
	payment.AccountCode = accounts.PaymentAccount
	payment.Description = fmt.Sprintf("%s payout %s", evt.SettlementType, period)

	return []Voucher{purchase, payment}
}

// SinkResponse is what the external system answered
type SinkResponse struct {
	StatusCode int
	Body       string
	ExternalID string
}

// SinkAdapter submits vouchers to the external accounting system.
// Success is decided only by the sink's own response status.
type SinkAdapter interface {
	SubmitVoucher(ctx context.Context, v Voucher) (*SinkResponse, error)
}

// ExternalSinkError wraps the sink's raw response for one voucher
type ExternalSinkError struct {
	Kind       VoucherKind
	StatusCode int
	Body       string
	Err        error
}

// Error implements the error interface
func (e *ExternalSinkError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("external sink %s voucher failed: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("external sink %s voucher rejected with status %d: %s", e.Kind, e.StatusCode, e.Body)
}

// Unwrap returns the transport error, if any
func (e *ExternalSinkError) Unwrap() error {
	return e.Err
}

// Is matches the shared sink sentinel
func (e *ExternalSinkError) Is(target error) bool {
	return errors.Is(shared.ErrExternalSink, target)
}

// SinkRecordStatus is the recorded outcome of one voucher submission
type SinkRecordStatus string

const (
	SinkRecordPending   SinkRecordStatus = "PENDING"
	SinkRecordSucceeded SinkRecordStatus = "SUCCEEDED"
	SinkRecordFailed    SinkRecordStatus = "FAILED"
)

// SinkRecord is the durable outcome of submitting one voucher of a batch.
// Failures are recorded here instead of being thrown back through the close path.
type SinkRecord struct {
	ID            uuid.UUID
	TenantID      uuid.UUID
	BatchID       uuid.UUID
	Kind          VoucherKind
	Reference     string
	Amount        decimal.Decimal
	Currency      string
	Status        SinkRecordStatus
	StatusCode    int
	Response      string
	ExternalID    string
	LastError     string
	Attempts      int
	Payload       Voucher
	LastAttemptAt *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewSinkRecord creates a pending record for a voucher about to be submitted
func NewSinkRecord(v Voucher, now time.Time) *SinkRecord {
	return &SinkRecord{
		ID:        uuid.New(),
		TenantID:  v.TenantID,
		BatchID:   v.BatchID,
		Kind:      v.Kind,
		Reference: v.Reference,
		Amount:    v.Amount,
		Currency:  v.Currency,
		Status:    SinkRecordPending,
		Payload:   v,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// RecordSuccess stores a successful sink response
func (r *SinkRecord) RecordSuccess(resp *SinkResponse, now time.Time) {
	r.Attempts++
	r.Status = SinkRecordSucceeded
	r.StatusCode = resp.StatusCode
	r.Response = resp.Body
	r.ExternalID = resp.ExternalID
	r.LastError = ""
	r.LastAttemptAt = &now
	r.UpdatedAt = now
}

// RecordFailure stores a failed submission with whatever the sink returned
func (r *SinkRecord) RecordFailure(err error, now time.Time) {
	r.Attempts++
	r.Status = SinkRecordFailed
	r.LastError = err.Error()
	var sinkErr *ExternalSinkError
	if errors.As(err, &sinkErr) {
		r.StatusCode = sinkErr.StatusCode
		r.Response = sinkErr.Body
	}
	r.LastAttemptAt = &now
	r.UpdatedAt = now
}

// IsSucceeded reports whether the voucher was accepted
func (r *SinkRecord) IsSucceeded() bool {
	return r.Status == SinkRecordSucceeded
}

// SinkRecordRepository persists voucher submission outcomes
type SinkRecordRepository interface {
	// Claim inserts the pending records of a batch all at once. It returns an
	// ALREADY_EXISTS error when the batch has records, so only one delivery submits.
	Claim(ctx context.Context, records []*SinkRecord) error
	// Update stores the outcome of a submission on an existing record
	Update(ctx context.Context, r *SinkRecord) error
	FindByBatch(ctx context.Context, tenantID, batchID uuid.UUID) ([]*SinkRecord, error)
	// FindRetryable lists failed records and pending records untouched since
	// staleBefore, oldest first
	FindRetryable(ctx context.Context, staleBefore time.Time, limit int) ([]*SinkRecord, error)
}
