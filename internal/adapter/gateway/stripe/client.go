package stripe

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"payment-lifecycle-service/internal/core/ports"
	"payment-lifecycle-service/pkg/apperror"

	"github.com/rs/zerolog"
)

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client implements ports.PayoutGateway over the provider's HTTP API.
// Every mutating call carries an Idempotency-Key header so duplicate
// dispatches collapse server-side.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient HTTPClient
	log        zerolog.Logger
}

// NewClient creates a new gateway client.
func NewClient(baseURL, apiKey string, httpClient HTTPClient, log zerolog.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: httpClient,
		log:        log,
	}
}

type payoutAPIResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Error  *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// SubmitPayout dispatches a payout keyed by the request's idempotency key.
func (c *Client) SubmitPayout(ctx context.Context, req ports.GatewayPayoutRequest) (*ports.GatewayPayoutResponse, error) {
	body, status, err := c.post(ctx, "/v1/payouts", req.IdempotencyKey, req)
	if err != nil {
		// Transport-level failures are retryable: the idempotency key
		// makes a re-dispatch safe.
		return nil, apperror.ErrGateway(true, err)
	}

	var parsed payoutAPIResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, apperror.ErrGateway(false, fmt.Errorf("decode payout response: %w", err))
	}

	if status >= http.StatusBadRequest {
		retryable := isRetryableStatus(status)
		msg := "payout rejected"
		if parsed.Error != nil {
			msg = parsed.Error.Message
		}
		c.log.Warn().
			Int("status", status).
			Bool("retryable", retryable).
			Str("idempotency_key", req.IdempotencyKey).
			Msg("payout submission failed")
		return nil, apperror.ErrGateway(retryable, fmt.Errorf("gateway status %d: %s", status, msg))
	}

	c.log.Info().
		Str("provider_id", parsed.ID).
		Str("idempotency_key", req.IdempotencyKey).
		Int64("amount", req.Amount).
		Msg("payout submitted")

	return &ports.GatewayPayoutResponse{
		Status:     parsed.Status,
		ProviderID: parsed.ID,
		Raw:        body,
		ReceivedAt: time.Now().UTC(),
	}, nil
}

// AdjustCharge changes the amount of a captured charge.
func (c *Client) AdjustCharge(ctx context.Context, idempotencyKey, chargeID string, newAmount int64) error {
	payload := map[string]any{"amount": newAmount}
	body, status, err := c.post(ctx, "/v1/charges/"+chargeID+"/adjust", idempotencyKey, payload)
	if err != nil {
		return apperror.ErrGateway(true, err)
	}

	if status >= http.StatusBadRequest {
		var parsed payoutAPIResponse
		msg := "adjustment rejected"
		if json.Unmarshal(body, &parsed) == nil && parsed.Error != nil {
			msg = parsed.Error.Message
		}
		return apperror.ErrGateway(isRetryableStatus(status), fmt.Errorf("gateway status %d: %s", status, msg))
	}

	c.log.Info().
		Str("charge_id", chargeID).
		Int64("new_amount", newAmount).
		Msg("charge adjusted")
	return nil
}

func (c *Client) post(ctx context.Context, path, idempotencyKey string, payload any) ([]byte, int, error) {
	buf, err := json.Marshal(payload)
	if err != nil {
		return nil, 0, fmt.Errorf("marshal gateway request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(buf))
	if err != nil {
		return nil, 0, fmt.Errorf("build gateway request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Idempotency-Key", idempotencyKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("gateway request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, 0, fmt.Errorf("read gateway response: %w", err)
	}
	return body, resp.StatusCode, nil
}

// isRetryableStatus classifies provider HTTP statuses: rate limits and
// server-side failures are retryable with the same idempotency key.
func isRetryableStatus(status int) bool {
	return status == http.StatusTooManyRequests || status >= http.StatusInternalServerError
}
