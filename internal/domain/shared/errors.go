package shared

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Error codes shared across bounded contexts
const (
	CodeNotFound                 = "NOT_FOUND"
	CodeAlreadyExists            = "ALREADY_EXISTS"
	CodeInvalidInput             = "INVALID_INPUT"
	CodeValidation               = "VALIDATION_ERROR"
	CodeConcurrencyConflict      = "CONCURRENCY_CONFLICT"
	CodeInvalidState             = "INVALID_STATE"
	CodeInvalidTransition        = "INVALID_TRANSITION"
	CodeHoldPeriodActive         = "HOLD_PERIOD_ACTIVE"
	CodeCooldownActive           = "COOLDOWN_ACTIVE"
	CodeDuplicateConversion      = "DUPLICATE_CONVERSION"
	CodeOpenCommissionsRemaining = "OPEN_COMMISSIONS_REMAINING"
	CodeExternalSink             = "EXTERNAL_SINK_ERROR"
)

// DomainError represents a domain-level error.
// Details carries the structured context a caller needs to act on the failure.
type DomainError struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// Is reports whether target carries the same code, so detailed instances
// match the package sentinels with errors.Is.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// Detail returns a detail value by key
func (e *DomainError) Detail(key string) (any, bool) {
	if e.Details == nil {
		return nil, false
	}
	v, ok := e.Details[key]
	return v, ok
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// NewDomainErrorWithDetails creates a new domain error carrying structured details
func NewDomainErrorWithDetails(code, message string, details map[string]any) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Details: details,
	}
}

// Common domain errors
var (
	ErrNotFound                 = NewDomainError(CodeNotFound, "Resource not found")
	ErrAlreadyExists            = NewDomainError(CodeAlreadyExists, "Resource already exists")
	ErrInvalidInput             = NewDomainError(CodeInvalidInput, "Invalid input provided")
	ErrValidation               = NewDomainError(CodeValidation, "Validation failed")
	ErrConcurrencyConflict      = NewDomainError(CodeConcurrencyConflict, "Resource was modified by another process")
	ErrInvalidState             = NewDomainError(CodeInvalidState, "Operation not allowed in current state")
	ErrInvalidTransition        = NewDomainError(CodeInvalidTransition, "Status transition not allowed")
	ErrHoldPeriodActive         = NewDomainError(CodeHoldPeriodActive, "Hold period has not elapsed")
	ErrCooldownActive           = NewDomainError(CodeCooldownActive, "Cooldown period has not elapsed")
	ErrDuplicateConversion      = NewDomainError(CodeDuplicateConversion, "Conversion already has a commission")
	ErrOpenCommissionsRemaining = NewDomainError(CodeOpenCommissionsRemaining, "Batch still contains pending commissions")
	ErrExternalSink             = NewDomainError(CodeExternalSink, "External sink rejected the submission")
)

// NewValidationError reports the specific field that violated an invariant
func NewValidationError(field, message string) *DomainError {
	return NewDomainErrorWithDetails(CodeValidation,
		fmt.Sprintf("%s: %s", field, message),
		map[string]any{"field": field},
	)
}

// NewNotFoundError reports a missing entity by type and id
func NewNotFoundError(entityType, id string) *DomainError {
	return NewDomainErrorWithDetails(CodeNotFound,
		fmt.Sprintf("%s %s not found", entityType, id),
		map[string]any{"entity_type": entityType, "id": id},
	)
}

// NewInvalidTransitionError reports an attempted transition together with the allowed set
func NewInvalidTransitionError(entityType, current, attempted string, allowed []string) *DomainError {
	allowedCopy := make([]string, len(allowed))
	copy(allowedCopy, allowed)
	allowedText := "none"
	if len(allowedCopy) > 0 {
		allowedText = strings.Join(allowedCopy, ", ")
	}
	return NewDomainErrorWithDetails(CodeInvalidTransition,
		fmt.Sprintf("cannot transition %s from %s to %s (allowed: %s)", entityType, current, attempted, allowedText),
		map[string]any{
			"entity_type": entityType,
			"current":     current,
			"attempted":   attempted,
			"allowed":     allowedCopy,
		},
	)
}

// NewHoldPeriodActiveError reports how long the hold period still runs
func NewHoldPeriodActiveError(holdUntil time.Time, remaining time.Duration) *DomainError {
	return NewDomainErrorWithDetails(CodeHoldPeriodActive,
		fmt.Sprintf("hold period active until %s (%s remaining)", holdUntil.Format(time.RFC3339), remaining.Round(time.Second)),
		map[string]any{
			"hold_until":        holdUntil,
			"remaining":         remaining,
			"remaining_seconds": int64(math.Ceil(remaining.Seconds())),
		},
	)
}

// NewCooldownActiveError reports the whole days left before a request may be resubmitted
func NewCooldownActiveError(cooldownUntil time.Time, daysRemaining int) *DomainError {
	return NewDomainErrorWithDetails(CodeCooldownActive,
		fmt.Sprintf("cooldown active until %s (%d days remaining)", cooldownUntil.Format(time.RFC3339), daysRemaining),
		map[string]any{
			"cooldown_until": cooldownUntil,
			"days_remaining": daysRemaining,
		},
	)
}

// NewDuplicateConversionError reports a second commission for the same conversion
func NewDuplicateConversionError(conversionID string) *DomainError {
	return NewDomainErrorWithDetails(CodeDuplicateConversion,
		fmt.Sprintf("conversion %s already has a commission", conversionID),
		map[string]any{"conversion_id": conversionID},
	)
}

// NewOpenCommissionsRemainingError reports pending commissions blocking a batch close
func NewOpenCommissionsRemainingError(batchID string, pending int64) *DomainError {
	return NewDomainErrorWithDetails(CodeOpenCommissionsRemaining,
		fmt.Sprintf("batch %s still has %d pending commissions", batchID, pending),
		map[string]any{"batch_id": batchID, "pending_count": pending},
	)
}

// DaysRemaining rounds a remaining duration up to whole days
func DaysRemaining(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	return int(math.Ceil(d.Hours() / 24))
}
