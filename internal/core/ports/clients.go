package ports

import (
	"context"
	"encoding/json"
	"time"

	"payment-lifecycle-service/internal/core/domain"

	"github.com/google/uuid"
)

// PayoutGateway abstracts the external money-movement provider. All calls
// are scoped by a caller-supplied idempotency key so duplicate invocations
// collapse into one external side effect.
type PayoutGateway interface {
	// SubmitPayout dispatches a payout. Failures are *apperror.AppError
	// values carrying the retryable classification.
	SubmitPayout(ctx context.Context, req GatewayPayoutRequest) (*GatewayPayoutResponse, error)
	// AdjustCharge changes the amount of a captured charge.
	AdjustCharge(ctx context.Context, idempotencyKey, chargeID string, newAmount int64) error
}

// GatewayPayoutRequest is the provider-facing payout submission.
type GatewayPayoutRequest struct {
	IdempotencyKey      string  `json:"-"`
	Amount              int64   `json:"amount"`
	Currency            string  `json:"currency"`
	Destination         string  `json:"destination"`
	StatementDescriptor string  `json:"statement_descriptor"`
	Method              string  `json:"method"`
	TargetType          *string `json:"target_type,omitempty"`
	TargetID            *string `json:"target_id,omitempty"`
	StripeAccountID     *string `json:"stripe_account_id,omitempty"`
}

// GatewayPayoutResponse is the provider's answer to a payout submission.
type GatewayPayoutResponse struct {
	Status     string          `json:"status"`
	ProviderID string          `json:"id"`
	Raw        json.RawMessage `json:"-"`
	ReceivedAt time.Time       `json:"-"`
}

// PaymentMethodLookup resolves a payment method and validates ownership.
type PaymentMethodLookup interface {
	// Resolve returns the method, or ErrPaymentMethodNotFound /
	// ErrPaymentMethodMismatch app errors.
	Resolve(ctx context.Context, paymentMethodID, payerID uuid.UUID) (*domain.PaymentMethodRef, error)
}

// IdempotencyCache is the Redis-layer idempotency check (fast path).
type IdempotencyCache interface {
	Get(ctx context.Context, key string) ([]byte, error) // Returns cached response JSON or nil
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
