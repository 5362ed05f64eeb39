package persistence

import (
	"strings"
)

// ValidateSortOrder validates and normalizes the sort order to ASC or DESC.
// Returns "DESC" as the default if the input is invalid or empty.
func ValidateSortOrder(orderDir string) string {
	normalized := strings.ToUpper(strings.TrimSpace(orderDir))
	if normalized == "ASC" {
		return "ASC"
	}
	return "DESC"
}

// ValidateSortField validates the sort field against a whitelist of allowed fields.
// Returns the defaultField if the input is invalid, empty, or not in the whitelist.
func ValidateSortField(sortField string, allowedFields map[string]bool, defaultField string) string {
	trimmed := strings.TrimSpace(sortField)
	if trimmed == "" {
		return defaultField
	}
	if allowedFields[trimmed] {
		return trimmed
	}
	return defaultField
}

// CommissionSortFields contains allowed sort fields for commissions
var CommissionSortFields = map[string]bool{
	"id":                true,
	"created_at":        true,
	"updated_at":        true,
	"status":            true,
	"hold_until":        true,
	"confirmed_at":      true,
	"order_amount":      true,
	"commission_amount": true,
}

// BatchSortFields contains allowed sort fields for settlement batches
var BatchSortFields = map[string]bool{
	"id":           true,
	"created_at":   true,
	"updated_at":   true,
	"period_start": true,
	"status":       true,
	"net_amount":   true,
	"closed_at":    true,
}

// AuthorizationSortFields contains allowed sort fields for seller authorizations
var AuthorizationSortFields = map[string]bool{
	"id":           true,
	"created_at":   true,
	"updated_at":   true,
	"requested_at": true,
	"status":       true,
}

// CatalogItemSortFields contains allowed sort fields for catalog items
var CatalogItemSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"name":       true,
	"status":     true,
}

// EventLogSortFields contains allowed sort fields for event log entries
var EventLogSortFields = map[string]bool{
	"id":          true,
	"received_at": true,
	"updated_at":  true,
	"event_type":  true,
	"status":      true,
}
