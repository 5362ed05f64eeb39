package sink

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Renagang21/o4o-platform-sub111/internal/domain/settlement"
	"github.com/Renagang21/o4o-platform-sub111/internal/infrastructure/config"
)

const (
	vouchersPath    = "/vouchers"
	apiKeyHeader    = "X-API-Key"
	maxResponseBody = 64 * 1024
)

// HTTPAdapter submits vouchers to the accounting system over HTTP
type HTTPAdapter struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewHTTPAdapter creates a sink adapter from cfg
func NewHTTPAdapter(cfg config.SinkConfig) (*HTTPAdapter, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("sink: base_url is required")
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &HTTPAdapter{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

type voucherResponse struct {
	ID string `json:"id"`
}

// SubmitVoucher posts v and maps anything but a 2xx answer to an ExternalSinkError
func (a *HTTPAdapter) SubmitVoucher(ctx context.Context, v settlement.Voucher) (*settlement.SinkResponse, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("sink: failed to encode voucher: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+vouchersPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("sink: failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Idempotency-Key", v.Reference)
	if a.apiKey != "" {
		req.Header.Set(apiKeyHeader, a.apiKey)
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, &settlement.ExternalSinkError{Kind: v.Kind, Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return nil, &settlement.ExternalSinkError{Kind: v.Kind, StatusCode: resp.StatusCode, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &settlement.ExternalSinkError{
			Kind:       v.Kind,
			StatusCode: resp.StatusCode,
			Body:       string(respBody),
		}
	}

	out := &settlement.SinkResponse{
		StatusCode: resp.StatusCode,
		Body:       string(respBody),
	}
	var parsed voucherResponse
	if json.Unmarshal(respBody, &parsed) == nil {
		out.ExternalID = parsed.ID
	}
	return out, nil
}

var _ settlement.SinkAdapter = (*HTTPAdapter)(nil)
