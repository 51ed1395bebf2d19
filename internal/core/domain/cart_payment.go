package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// CaptureMethod controls when the underlying charge is captured.
type CaptureMethod string

const (
	CaptureMethodAuto   CaptureMethod = "AUTO"
	CaptureMethodManual CaptureMethod = "MANUAL"
)

// CartType classifies the cart a payment is attached to.
type CartType string

const (
	CartTypeOrderCart CartType = "ORDER_CART"
)

// CartMetadata ties a cart payment back to the originating cart/order.
type CartMetadata struct {
	ReferenceID   string   `json:"reference_id"`
	CtReferenceID string   `json:"ct_reference_id"`
	Type          CartType `json:"type"`
}

// LegacyPayment references a pre-migration payment record.
type LegacyPayment struct {
	ConsumerID       *int64  `json:"consumer_id,omitempty"`
	ChargeID         *string `json:"charge_id,omitempty"`
	StripeCustomerID *string `json:"stripe_customer_id,omitempty"`
}

// SplitPayment routes part of a cart payment's proceeds to a secondary
// payout account as an application fee.
type SplitPayment struct {
	PayoutAccountID      int64 `json:"payout_account_id"`
	ApplicationFeeAmount int64 `json:"application_fee_amount"`
}

// CartPayment is a payment intent tied to a cart/order. The id is immutable
// once created; the amount is in minor currency units and never negative.
type CartPayment struct {
	ID                        uuid.UUID      `json:"id"`
	PayerID                   uuid.UUID      `json:"payer_id"`
	Amount                    int64          `json:"amount"`
	Currency                  string         `json:"currency"`
	Country                   string         `json:"country"`
	PaymentMethodID           uuid.UUID      `json:"payment_method_id"`
	CaptureMethod             CaptureMethod  `json:"capture_method"`
	CartMetadata              CartMetadata   `json:"cart_metadata"`
	ClientDescription         *string        `json:"client_description,omitempty"`
	PayerStatementDescription *string        `json:"payer_statement_description,omitempty"`
	LegacyPayment             *LegacyPayment `json:"legacy_payment,omitempty"`
	SplitPayment              *SplitPayment  `json:"split_payment,omitempty"`
	CreatedAt                 time.Time      `json:"created_at"`
	UpdatedAt                 time.Time      `json:"updated_at"`
}

// Captured reports whether the underlying charge has already been captured,
// in which case an amount change needs a compensating gateway adjustment.
func (p *CartPayment) Captured() bool {
	return p.CaptureMethod == CaptureMethodAuto ||
		(p.LegacyPayment != nil && p.LegacyPayment.ChargeID != nil)
}

// cartPaymentIdentity is the normalized creation payload covered by the
// idempotency fingerprint. Every caller-settable creation field is included
// so a replayed key with any change in the payload is flagged as a conflict.
type cartPaymentIdentity struct {
	PayerID                   uuid.UUID      `json:"payer_id"`
	PaymentMethodID           uuid.UUID      `json:"payment_method_id"`
	Amount                    int64          `json:"amount"`
	Currency                  string         `json:"currency"`
	Country                   string         `json:"country"`
	CaptureMethod             CaptureMethod  `json:"capture_method"`
	CartMetadata              CartMetadata   `json:"cart_metadata"`
	ClientDescription         *string        `json:"client_description,omitempty"`
	PayerStatementDescription *string        `json:"payer_statement_description,omitempty"`
	LegacyPayment             *LegacyPayment `json:"legacy_payment,omitempty"`
	SplitPayment              *SplitPayment  `json:"split_payment,omitempty"`
}

// Fingerprint hashes the full creation payload. A replayed idempotency key
// whose fingerprint differs from the stored one is a conflict, not an
// idempotent replay.
func (p *CartPayment) Fingerprint() string {
	identity := cartPaymentIdentity{
		PayerID:                   p.PayerID,
		PaymentMethodID:           p.PaymentMethodID,
		Amount:                    p.Amount,
		Currency:                  p.Currency,
		Country:                   p.Country,
		CaptureMethod:             p.CaptureMethod,
		CartMetadata:              p.CartMetadata,
		ClientDescription:         p.ClientDescription,
		PayerStatementDescription: p.PayerStatementDescription,
		LegacyPayment:             p.LegacyPayment,
		SplitPayment:              p.SplitPayment,
	}
	canonical, _ := json.Marshal(identity)
	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:])
}

// PaymentMethodRef is the resolved payment method returned by the lookup
// collaborator.
type PaymentMethodRef struct {
	ID             uuid.UUID `json:"id"`
	PayerID        uuid.UUID `json:"payer_id"`
	ProviderCardID string    `json:"provider_card_id"`
}
