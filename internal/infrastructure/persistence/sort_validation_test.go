package persistence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateSortOrder(t *testing.T) {
	for input, want := range map[string]string{
		"":              "DESC",
		"asc":           "ASC",
		" ASC ":         "ASC",
		"desc":          "DESC",
		"ascending":     "DESC",
		"ASC; DELETE 1": "DESC",
	} {
		t.Run("order "+input, func(t *testing.T) {
			assert.Equal(t, want, ValidateSortOrder(input))
		})
	}
}

func TestValidateSortField(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		whitelist map[string]bool
		fallback  string
		want      string
	}{
		{"commission hold date", "hold_until", CommissionSortFields, "created_at", "hold_until"},
		{"commission amount with padding", "  commission_amount ", CommissionSortFields, "created_at", "commission_amount"},
		{"batch period", "period_start", BatchSortFields, "period_start", "period_start"},
		{"batch does not sort by hold date", "hold_until", BatchSortFields, "period_start", "period_start"},
		{"event log receipt time", "received_at", EventLogSortFields, "received_at", "received_at"},
		{"column names are case sensitive", "STATUS", CatalogItemSortFields, "created_at", "created_at"},
		{"expression rejected", "net_amount desc, (select 1)", BatchSortFields, "period_start", "period_start"},
		{"quoted column rejected", "status'--", AuthorizationSortFields, "requested_at", "requested_at"},
		{"empty falls back", "", AuthorizationSortFields, "requested_at", "requested_at"},
		{"empty fallback is returned as is", "unknown", CommissionSortFields, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateSortField(tt.input, tt.whitelist, tt.fallback))
		})
	}
}

func TestSortFieldsWhitelists(t *testing.T) {
	entities := map[string]map[string]bool{
		"commission":    CommissionSortFields,
		"batch":         BatchSortFields,
		"authorization": AuthorizationSortFields,
		"catalog item":  CatalogItemSortFields,
	}
	for name, whitelist := range entities {
		t.Run(name, func(t *testing.T) {
			for _, field := range []string{"id", "created_at", "updated_at", "status"} {
				assert.True(t, whitelist[field], "%s should sort by %s", name, field)
			}
		})
	}

	t.Run("event log sorts by receipt time", func(t *testing.T) {
		assert.True(t, EventLogSortFields["received_at"])
		assert.False(t, EventLogSortFields["created_at"])
	})
}
