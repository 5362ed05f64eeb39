package sink

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Renagang21/o4o-platform-sub111/internal/domain/settlement"
	"github.com/Renagang21/o4o-platform-sub111/internal/domain/shared"
	"github.com/Renagang21/o4o-platform-sub111/internal/infrastructure/config"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testVoucher() settlement.Voucher {
	return settlement.Voucher{
		Reference:     "ref-1",
		Kind:          settlement.VoucherPurchase,
		TenantID:      uuid.New(),
		BatchID:       uuid.New(),
		BeneficiaryID: uuid.New(),
		AccountCode:   "5100",
		Amount:        decimal.NewFromInt(1500),
		Currency:      "KRW",
		IssuedAt:      time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestNewHTTPAdapter_RequiresBaseURL(t *testing.T) {
	_, err := NewHTTPAdapter(config.SinkConfig{})
	assert.Error(t, err)
}

func TestHTTPAdapter_SubmitVoucher_Success(t *testing.T) {
	var got settlement.Voucher
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/vouchers", r.URL.Path)
		assert.Equal(t, "secret", r.Header.Get("X-API-Key"))
		assert.Equal(t, "ref-1", r.Header.Get("Idempotency-Key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"ext-42"}`))
	}))
	defer server.Close()

	adapter, err := NewHTTPAdapter(config.SinkConfig{BaseURL: server.URL + "/", APIKey: "secret"})
	require.NoError(t, err)

	v := testVoucher()
	resp, err := adapter.SubmitVoucher(context.Background(), v)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "ext-42", resp.ExternalID)
	assert.Equal(t, v.BatchID, got.BatchID)
	assert.True(t, v.Amount.Equal(got.Amount))
}

func TestHTTPAdapter_SubmitVoucher_Rejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"error":"unknown account"}`))
	}))
	defer server.Close()

	adapter, err := NewHTTPAdapter(config.SinkConfig{BaseURL: server.URL})
	require.NoError(t, err)

	_, err = adapter.SubmitVoucher(context.Background(), testVoucher())
	require.Error(t, err)

	var sinkErr *settlement.ExternalSinkError
	require.True(t, errors.As(err, &sinkErr))
	assert.Equal(t, http.StatusUnprocessableEntity, sinkErr.StatusCode)
	assert.Contains(t, sinkErr.Body, "unknown account")
	assert.Equal(t, settlement.VoucherPurchase, sinkErr.Kind)
	assert.True(t, errors.Is(err, shared.ErrExternalSink))
}

func TestHTTPAdapter_SubmitVoucher_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	adapter, err := NewHTTPAdapter(config.SinkConfig{BaseURL: url, Timeout: time.Second})
	require.NoError(t, err)

	_, err = adapter.SubmitVoucher(context.Background(), testVoucher())
	require.Error(t, err)
	assert.True(t, errors.Is(err, shared.ErrExternalSink))
}
