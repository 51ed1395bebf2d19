package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Payout request lifecycle statuses, mirroring the gateway's view of the
// submission.
const (
	PayoutRequestStatusNew    = "new"
	PayoutRequestStatusPaid   = "paid"
	PayoutRequestStatusFailed = "failed"
)

// PayoutEvent is one entry in the ordered submission event log.
type PayoutEvent struct {
	Type       string    `json:"type"`
	Message    string    `json:"message,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// StripePayoutRequest records a single submission attempt for a transfer.
// At most one row exists per transfer and its idempotency key is never
// reused for a different transfer.
type StripePayoutRequest struct {
	ID              uuid.UUID       `json:"id"`
	TransferID      uuid.UUID       `json:"transfer_id"`
	IdempotencyKey  string          `json:"idempotency_key"`
	PayoutMethodID  int64           `json:"payout_method_id"`
	Request         json.RawMessage `json:"request,omitempty"`
	Response        json.RawMessage `json:"response,omitempty"`
	Status          string          `json:"status"`
	Events          []PayoutEvent   `json:"events,omitempty"`
	StripePayoutID  *string         `json:"stripe_payout_id,omitempty"`
	StripeAccountID *string         `json:"stripe_account_id,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	ReceivedAt      *time.Time      `json:"received_at,omitempty"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// BuildTransferSubmissionKey derives the idempotency key for submitting a
// transfer. It is deterministic in the transfer id so duplicate or retried
// submissions collapse into a single external side effect.
func BuildTransferSubmissionKey(transferID uuid.UUID) string {
	return "transfer-submit-" + transferID.String()
}

// BuildChargeAdjustmentKey derives the gateway idempotency key for a cart
// payment amount adjustment from the caller-supplied update key.
func BuildChargeAdjustmentKey(idempotencyKey string) string {
	return "cart-adjust-" + idempotencyKey
}
