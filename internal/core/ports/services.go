package ports

import (
	"context"
	"time"

	"payment-lifecycle-service/internal/core/domain"

	"github.com/google/uuid"
)

// --- Service Ports (Business Logic) ---

// CartPaymentProcessor drives the cart payment lifecycle.
type CartPaymentProcessor interface {
	SubmitPayment(ctx context.Context, req SubmitCartPaymentRequest) (*domain.CartPayment, error)
	UpdatePayment(ctx context.Context, req UpdateCartPaymentRequest) (*domain.CartPayment, error)
}

// SubmitCartPaymentRequest holds validated input for cart payment creation.
type SubmitCartPaymentRequest struct {
	IdempotencyKey            string
	PayerID                   uuid.UUID
	Amount                    int64
	Country                   string
	Currency                  string
	PaymentMethodID           uuid.UUID
	CaptureMethod             domain.CaptureMethod
	CartMetadata              domain.CartMetadata
	ClientDescription         *string
	PayerStatementDescription *string
	LegacyPayment             *domain.LegacyPayment
	SplitPayment              *domain.SplitPayment
}

// UpdateCartPaymentRequest holds validated input for a cart payment
// adjustment. Nil optional fields leave the stored values unchanged.
type UpdateCartPaymentRequest struct {
	IdempotencyKey            string
	CartPaymentID             uuid.UUID
	PayerID                   uuid.UUID
	Amount                    *int64
	ClientDescription         *string
	PayerStatementDescription *string
	LegacyPayment             *domain.LegacyPayment
	CartMetadata              *domain.CartMetadata
}

// TransferProcessor drives the transfer/payout lifecycle.
type TransferProcessor interface {
	CreateTransfer(ctx context.Context, req CreateTransferRequest) (*domain.Transfer, error)
	SubmitTransfer(ctx context.Context, req SubmitTransferRequest) (*domain.StripePayoutRequest, error)
}

// CreateTransferRequest holds validated input for transfer creation over a
// half-open window [StartTime, EndTime).
type CreateTransferRequest struct {
	PayoutAccountID  int64
	TransferType     domain.TransferType
	StartTime        time.Time
	EndTime          time.Time
	TargetID         *string
	TargetType       *string
	TargetBusinessID *int64
	PayoutCountries  []string
	Currency         string
	CreatedByID      int64
}

// SubmitTransferRequest holds validated input for transfer submission.
type SubmitTransferRequest struct {
	TransferID          uuid.UUID
	Retry               bool
	SubmittedBy         int64
	StatementDescriptor string
	TargetType          *string
	TargetID            *string
	Method              string
	PayoutMethodID      int64
	StripeAccountID     *string
}

// AccountHistoryService exposes the append-only payment account audit log.
type AccountHistoryService interface {
	RecordBankUpdate(ctx context.Context, paymentAccountID int64, ownerType domain.BankUpdateOwnerType, payload []byte) (*domain.PaymentAccountEditHistory, error)
	GetMostRecentBankUpdate(ctx context.Context, paymentAccountID int64, within *time.Duration) (*domain.PaymentAccountEditHistory, error)
	ListBankUpdates(ctx context.Context, paymentAccountID int64, start, end time.Time) ([]domain.PaymentAccountEditHistory, error)
	ListRecentlyUpdatedAccountIDs(ctx context.Context, since time.Time) ([]int64, error)
}

// AuthService authenticates service clients.
type AuthService interface {
	Register(ctx context.Context, name string) (*RegisterClientResponse, error)
	IssueToken(ctx context.Context, apiKey, secret string) (string, time.Time, error) // token, expiry, error
}

// RegisterClientResponse holds the credentials shown once at registration.
type RegisterClientResponse struct {
	ClientID uuid.UUID
	APIKey   string
	Secret   string // Plaintext, shown only at registration
}

// TokenService handles bearer token operations.
type TokenService interface {
	Generate(clientID uuid.UUID, apiKey string) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed token claims.
type TokenClaims struct {
	ClientID uuid.UUID
	APIKey   string
}

// HashService handles API secret hashing (Argon2id).
type HashService interface {
	Hash(secret string) (string, error)
	Verify(secret string, hash string) (bool, error)
}
