package dto

import (
	"encoding/json"
	"time"

	"payment-lifecycle-service/internal/core/domain"
)

// RegisterClientRequest is the request body for service client registration.
type RegisterClientRequest struct {
	Name string `json:"name" binding:"required,min=3,max=100,safe_id"`
}

// RegisterClientResponse is the response body for successful registration.
// The secret is returned exactly once.
type RegisterClientResponse struct {
	ClientID string `json:"client_id"`
	APIKey   string `json:"api_key"`
	Secret   string `json:"secret"`
}

// TokenRequest is the request body for the token exchange.
type TokenRequest struct {
	APIKey string `json:"api_key" binding:"required"`
	Secret string `json:"secret" binding:"required"`
}

// TokenResponse is the response body for a successful token exchange.
type TokenResponse struct {
	Token  string `json:"token"`
	Expiry int64  `json:"expiry"` // Unix timestamp
}

// CartMetadataDTO mirrors the cart metadata block of a cart payment.
type CartMetadataDTO struct {
	ReferenceID   string `json:"reference_id" binding:"required,max=100"`
	CtReferenceID string `json:"ct_reference_id" binding:"required,max=100"`
	Type          string `json:"type" binding:"required,oneof=ORDER_CART"`
}

// LegacyPaymentDTO mirrors the optional legacy payment block.
type LegacyPaymentDTO struct {
	ConsumerID       *int64  `json:"consumer_id,omitempty"`
	ChargeID         *string `json:"stripe_charge_id,omitempty"`
	StripeCustomerID *string `json:"stripe_customer_id,omitempty"`
}

// SplitPaymentDTO mirrors the optional split payment block.
type SplitPaymentDTO struct {
	PayoutAccountID      int64 `json:"payout_account_id" binding:"required,gt=0"`
	ApplicationFeeAmount int64 `json:"application_fee_amount" binding:"gte=0"`
}

// CreateCartPaymentRequest is the request body for cart payment creation.
type CreateCartPaymentRequest struct {
	IdempotencyKey            string            `json:"idempotency_key" binding:"required,max=100"`
	PayerID                   string            `json:"payer_id" binding:"required,uuid"`
	Amount                    int64             `json:"amount" binding:"gte=0"`
	Country                   string            `json:"country" binding:"required,len=2"`
	Currency                  string            `json:"currency" binding:"required,len=3"`
	PaymentMethodID           string            `json:"payment_method_id" binding:"required,uuid"`
	CaptureMethod             string            `json:"capture_method" binding:"required,oneof=AUTO MANUAL"`
	CartMetadata              CartMetadataDTO   `json:"cart_metadata" binding:"required"`
	ClientDescription         *string           `json:"client_description,omitempty" binding:"omitempty,max=255"`
	PayerStatementDescription *string           `json:"payer_statement_description,omitempty" binding:"omitempty,max=22"`
	LegacyPayment             *LegacyPaymentDTO `json:"legacy_payment,omitempty"`
	SplitPayment              *SplitPaymentDTO  `json:"split_payment,omitempty"`
}

// AdjustCartPaymentRequest is the request body for a cart payment adjustment.
// Absent fields leave the stored values unchanged.
type AdjustCartPaymentRequest struct {
	IdempotencyKey            string            `json:"idempotency_key" binding:"required,max=100"`
	PayerID                   string            `json:"payer_id" binding:"required,uuid"`
	Amount                    *int64            `json:"amount,omitempty" binding:"omitempty,gte=0"`
	ClientDescription         *string           `json:"client_description,omitempty" binding:"omitempty,max=255"`
	PayerStatementDescription *string           `json:"payer_statement_description,omitempty" binding:"omitempty,max=22"`
	LegacyPayment             *LegacyPaymentDTO `json:"legacy_payment,omitempty"`
	CartMetadata              *CartMetadataDTO  `json:"cart_metadata,omitempty"`
}

// CartPaymentResponse is the response body for cart payment results.
type CartPaymentResponse struct {
	ID                        string            `json:"id"`
	PayerID                   string            `json:"payer_id"`
	Amount                    int64             `json:"amount"`
	Currency                  string            `json:"currency"`
	Country                   string            `json:"country"`
	PaymentMethodID           string            `json:"payment_method_id"`
	CaptureMethod             string            `json:"capture_method"`
	CartMetadata              CartMetadataDTO   `json:"cart_metadata"`
	ClientDescription         *string           `json:"client_description,omitempty"`
	PayerStatementDescription *string           `json:"payer_statement_description,omitempty"`
	LegacyPayment             *LegacyPaymentDTO `json:"legacy_payment,omitempty"`
	SplitPayment              *SplitPaymentDTO  `json:"split_payment,omitempty"`
	CreatedAt                 string            `json:"created_at"`
	UpdatedAt                 string            `json:"updated_at"`
}

// CreateTransferRequest is the request body for transfer creation.
type CreateTransferRequest struct {
	PayoutAccountID  int64    `json:"payout_account_id" binding:"required,gt=0"`
	TransferType     string   `json:"transfer_type" binding:"required,oneof=SCHEDULED MANUAL"`
	StartTime        string   `json:"start_time" binding:"required"`
	EndTime          string   `json:"end_time" binding:"required"`
	TargetID         *string  `json:"target_id,omitempty"`
	TargetType       *string  `json:"target_type,omitempty"`
	TargetBusinessID *int64   `json:"target_business_id,omitempty"`
	PayoutCountries  []string `json:"payout_countries,omitempty" binding:"omitempty,dive,len=2"`
	Currency         string   `json:"currency" binding:"required,len=3"`
	CreatedByID      int64    `json:"created_by_id" binding:"required,gt=0"`
}

// SubmitTransferRequest is the request body for transfer submission.
type SubmitTransferRequest struct {
	Retry               bool    `json:"retry"`
	SubmittedBy         int64   `json:"submitted_by" binding:"required,gt=0"`
	StatementDescriptor string  `json:"statement_descriptor" binding:"required,max=22"`
	TargetType          *string `json:"target_type,omitempty"`
	TargetID            *string `json:"target_id,omitempty"`
	Method              string  `json:"method" binding:"required,oneof=standard instant"`
	PayoutMethodID      int64   `json:"payout_method_id" binding:"required,gt=0"`
	StripeAccountID     *string `json:"stripe_account_id,omitempty"`
}

// TransferResponse is the response body for transfer results.
type TransferResponse struct {
	ID               string   `json:"id"`
	PayoutAccountID  int64    `json:"payout_account_id"`
	TransferType     string   `json:"transfer_type"`
	Amount           int64    `json:"amount"`
	Currency         string   `json:"currency"`
	StartTime        string   `json:"start_time"`
	EndTime          string   `json:"end_time"`
	PayoutCountries  []string `json:"payout_countries,omitempty"`
	Status           string   `json:"status"`
	CreatedByID      int64    `json:"created_by_id"`
	SubmittedByID    *int64   `json:"submitted_by_id,omitempty"`
	TargetID         *string  `json:"target_id,omitempty"`
	TargetType       *string  `json:"target_type,omitempty"`
	TargetBusinessID *int64   `json:"target_business_id,omitempty"`
	CreatedAt        string   `json:"created_at"`
}

// PayoutEventDTO is one entry of a payout request's submission event log.
type PayoutEventDTO struct {
	Type       string `json:"type"`
	Message    string `json:"message,omitempty"`
	OccurredAt string `json:"occurred_at"`
}

// PayoutRequestResponse is the response body for a payout submission record.
type PayoutRequestResponse struct {
	ID              string           `json:"id"`
	TransferID      string           `json:"transfer_id"`
	IdempotencyKey  string           `json:"idempotency_key"`
	PayoutMethodID  int64            `json:"payout_method_id"`
	Status          string           `json:"status"`
	Events          []PayoutEventDTO `json:"events,omitempty"`
	StripePayoutID  *string          `json:"stripe_payout_id,omitempty"`
	StripeAccountID *string          `json:"stripe_account_id,omitempty"`
	ReceivedAt      *string          `json:"received_at,omitempty"`
	CreatedAt       string           `json:"created_at"`
}

// RecordBankUpdateRequest is the request body for appending a bank update
// entry to a payment account's edit history.
type RecordBankUpdateRequest struct {
	PaymentAccountID int64           `json:"payment_account_id" binding:"required,gt=0"`
	OwnerType        string          `json:"owner_type" binding:"required,oneof=STORE DSP"`
	Payload          json.RawMessage `json:"payload" binding:"required"`
}

// BankUpdateResponse is the response body for one edit history entry.
type BankUpdateResponse struct {
	ID               string          `json:"id"`
	PaymentAccountID int64           `json:"payment_account_id"`
	OwnerType        string          `json:"owner_type"`
	Payload          json.RawMessage `json:"payload,omitempty"`
	Timestamp        string          `json:"timestamp"`
}

// BankUpdateListResponse wraps an account's edit history entries.
type BankUpdateListResponse struct {
	Items []BankUpdateResponse `json:"items"`
	Total int                  `json:"total"`
}

// RecentlyUpdatedAccountsResponse lists account ids with recent bank updates.
type RecentlyUpdatedAccountsResponse struct {
	PaymentAccountIDs []int64 `json:"payment_account_ids"`
}

// FromCartPayment converts a domain cart payment to its DTO.
func FromCartPayment(p *domain.CartPayment) CartPaymentResponse {
	resp := CartPaymentResponse{
		ID:                        p.ID.String(),
		PayerID:                   p.PayerID.String(),
		Amount:                    p.Amount,
		Currency:                  p.Currency,
		Country:                   p.Country,
		PaymentMethodID:           p.PaymentMethodID.String(),
		CaptureMethod:             string(p.CaptureMethod),
		ClientDescription:         p.ClientDescription,
		PayerStatementDescription: p.PayerStatementDescription,
		CartMetadata: CartMetadataDTO{
			ReferenceID:   p.CartMetadata.ReferenceID,
			CtReferenceID: p.CartMetadata.CtReferenceID,
			Type:          string(p.CartMetadata.Type),
		},
		CreatedAt: p.CreatedAt.Format(time.RFC3339),
		UpdatedAt: p.UpdatedAt.Format(time.RFC3339),
	}
	if p.LegacyPayment != nil {
		resp.LegacyPayment = &LegacyPaymentDTO{
			ConsumerID:       p.LegacyPayment.ConsumerID,
			ChargeID:         p.LegacyPayment.ChargeID,
			StripeCustomerID: p.LegacyPayment.StripeCustomerID,
		}
	}
	if p.SplitPayment != nil {
		resp.SplitPayment = &SplitPaymentDTO{
			PayoutAccountID:      p.SplitPayment.PayoutAccountID,
			ApplicationFeeAmount: p.SplitPayment.ApplicationFeeAmount,
		}
	}
	return resp
}

// FromTransfer converts a domain transfer to its DTO.
func FromTransfer(t *domain.Transfer) TransferResponse {
	return TransferResponse{
		ID:               t.ID.String(),
		PayoutAccountID:  t.PayoutAccountID,
		TransferType:     string(t.TransferType),
		Amount:           t.Amount,
		Currency:         t.Currency,
		StartTime:        t.StartTime.Format(time.RFC3339),
		EndTime:          t.EndTime.Format(time.RFC3339),
		PayoutCountries:  t.PayoutCountries,
		Status:           string(t.Status),
		CreatedByID:      t.CreatedByID,
		SubmittedByID:    t.SubmittedByID,
		TargetID:         t.TargetID,
		TargetType:       t.TargetType,
		TargetBusinessID: t.TargetBusinessID,
		CreatedAt:        t.CreatedAt.Format(time.RFC3339),
	}
}

// FromPayoutRequest converts a domain payout request record to its DTO.
func FromPayoutRequest(pr *domain.StripePayoutRequest) PayoutRequestResponse {
	resp := PayoutRequestResponse{
		ID:              pr.ID.String(),
		TransferID:      pr.TransferID.String(),
		IdempotencyKey:  pr.IdempotencyKey,
		PayoutMethodID:  pr.PayoutMethodID,
		Status:          pr.Status,
		StripePayoutID:  pr.StripePayoutID,
		StripeAccountID: pr.StripeAccountID,
		CreatedAt:       pr.CreatedAt.Format(time.RFC3339),
	}
	for _, ev := range pr.Events {
		resp.Events = append(resp.Events, PayoutEventDTO{
			Type:       ev.Type,
			Message:    ev.Message,
			OccurredAt: ev.OccurredAt.Format(time.RFC3339),
		})
	}
	if pr.ReceivedAt != nil {
		s := pr.ReceivedAt.Format(time.RFC3339)
		resp.ReceivedAt = &s
	}
	return resp
}

// FromBankUpdate converts a domain edit history entry to its DTO.
func FromBankUpdate(e *domain.PaymentAccountEditHistory) BankUpdateResponse {
	return BankUpdateResponse{
		ID:               e.ID.String(),
		PaymentAccountID: e.PaymentAccountID,
		OwnerType:        string(e.OwnerType),
		Payload:          e.Payload,
		Timestamp:        e.Timestamp.Format(time.RFC3339),
	}
}
