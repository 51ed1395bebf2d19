package stripe

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"payment-lifecycle-service/internal/core/ports"
	"payment-lifecycle-service/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, "sk_test_123", srv.Client(), zerolog.Nop())
}

func TestSubmitPayout_Success(t *testing.T) {
	var gotKey, gotAuth string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("Idempotency-Key")
		gotAuth = r.Header.Get("Authorization")
		assert.Equal(t, "/v1/payouts", r.URL.Path)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"id":"po_1ABC","status":"paid"}`))
	})

	resp, err := client.SubmitPayout(context.Background(), ports.GatewayPayoutRequest{
		IdempotencyKey: "transfer-submit-9f2d",
		Amount:         15000,
		Currency:       "usd",
		Destination:    "acct_123",
	})

	require.NoError(t, err)
	assert.Equal(t, "po_1ABC", resp.ProviderID)
	assert.Equal(t, "paid", resp.Status)
	assert.Equal(t, "transfer-submit-9f2d", gotKey)
	assert.Equal(t, "Bearer sk_test_123", gotAuth)
	assert.False(t, resp.ReceivedAt.IsZero())
}

func TestSubmitPayout_RateLimited(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"type":"rate_limit","message":"too many requests"}}`))
	})

	_, err := client.SubmitPayout(context.Background(), ports.GatewayPayoutRequest{
		IdempotencyKey: "transfer-submit-9f2d",
	})

	require.Error(t, err)
	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.True(t, appErr.Retryable)
	assert.Contains(t, appErr.Err.Error(), "too many requests")
}

func TestSubmitPayout_InvalidRequest(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"type":"invalid_request","message":"no such destination"}}`))
	})

	_, err := client.SubmitPayout(context.Background(), ports.GatewayPayoutRequest{
		IdempotencyKey: "transfer-submit-9f2d",
	})

	require.Error(t, err)
	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.False(t, appErr.Retryable)
}

func TestSubmitPayout_ServerError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`{}`))
	})

	_, err := client.SubmitPayout(context.Background(), ports.GatewayPayoutRequest{
		IdempotencyKey: "transfer-submit-9f2d",
	})

	require.Error(t, err)
	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.True(t, appErr.Retryable)
}

func TestSubmitPayout_TransportError(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", "sk_test_123", http.DefaultClient, zerolog.Nop())

	_, err := client.SubmitPayout(context.Background(), ports.GatewayPayoutRequest{
		IdempotencyKey: "transfer-submit-9f2d",
	})

	require.Error(t, err)
	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.True(t, appErr.Retryable)
}

func TestAdjustCharge_Success(t *testing.T) {
	var gotPath, gotKey string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("Idempotency-Key")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"id":"ch_1","status":"succeeded"}`))
	})

	err := client.AdjustCharge(context.Background(), "cart-adjust-abc", "ch_1", 12000)

	require.NoError(t, err)
	assert.Equal(t, "/v1/charges/ch_1/adjust", gotPath)
	assert.Equal(t, "cart-adjust-abc", gotKey)
}

func TestAdjustCharge_Rejected(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"error":{"type":"invalid_request","message":"charge already refunded"}}`))
	})

	err := client.AdjustCharge(context.Background(), "cart-adjust-abc", "ch_1", 12000)

	require.Error(t, err)
	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.False(t, appErr.Retryable)
}
