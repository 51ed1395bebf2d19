package ports

import (
	"context"
	"errors"
	"time"

	"payment-lifecycle-service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ErrUniqueViolation is returned by repositories when an insert collides
// with a uniqueness constraint. Processors treat it as "a concurrent call
// already won" and retry the operation as a read.
var ErrUniqueViolation = errors.New("unique constraint violation")

// CartPaymentRepository defines persistence for cart payments and their
// legacy/split sub-records. Methods accepting pgx.Tx run inside transaction
// blocks so the parent row and sub-records commit or roll back together.
type CartPaymentRepository interface {
	Create(ctx context.Context, tx pgx.Tx, payment *domain.CartPayment, idempotencyKey, fingerprint string) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.CartPayment, error)
	// GetByIdempotencyKey returns the stored payment and the request
	// fingerprint recorded at creation, or nil when the key is unknown.
	GetByIdempotencyKey(ctx context.Context, key string) (*domain.CartPayment, string, error)
	Update(ctx context.Context, tx pgx.Tx, update CartPaymentUpdate) error
}

// CartPaymentUpdate holds partial-update fields; nil pointers leave the
// stored value unchanged.
type CartPaymentUpdate struct {
	ID                        uuid.UUID
	Amount                    *int64
	ClientDescription         *string
	PayerStatementDescription *string
	LegacyPayment             *domain.LegacyPayment
	CartMetadata              *domain.CartMetadata
}

// TransferRepository defines persistence for transfers.
type TransferRepository interface {
	Create(ctx context.Context, tx pgx.Tx, transfer *domain.Transfer) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Transfer, error)
	// TransitionStatus performs a conditional status update guarded by the
	// expected current state. It returns false without error when the row
	// was not in the expected state, which callers surface as an invalid
	// state transition.
	TransitionStatus(ctx context.Context, id uuid.UUID, from, to domain.TransferStatus, submittedBy *int64) (bool, error)
}

// PayableItemRepository aggregates payable line items for payout.
type PayableItemRepository interface {
	Create(ctx context.Context, item *domain.PayableItem) error
	// SumUnattached locks and totals the payable items for an account
	// within [start, end) matching the country filter that are not yet
	// attached to any transfer. An empty country list means no filter.
	SumUnattached(ctx context.Context, tx pgx.Tx, accountID int64, start, end time.Time, countries []string) (int64, []uuid.UUID, error)
	AttachToTransfer(ctx context.Context, tx pgx.Tx, itemIDs []uuid.UUID, transferID uuid.UUID) error
}

// PayoutRequestRepository defines persistence for payout submission
// attempt records. TransferID is unique across rows.
type PayoutRequestRepository interface {
	Create(ctx context.Context, pr *domain.StripePayoutRequest) error
	GetByTransferID(ctx context.Context, transferID uuid.UUID) (*domain.StripePayoutRequest, error)
	// RecordOutcome persists the gateway's response for an attempt and
	// appends an event to the submission log.
	RecordOutcome(ctx context.Context, outcome PayoutOutcome) error
}

// PayoutOutcome is the result of one gateway submission attempt.
type PayoutOutcome struct {
	RequestID      uuid.UUID
	Status         string
	Response       []byte
	StripePayoutID *string
	ReceivedAt     *time.Time
	Event          domain.PayoutEvent
}

// AccountEditHistoryRepository is the append-only audit log for payment
// account edits. Implementations always assign the timestamp server-side.
type AccountEditHistoryRepository interface {
	RecordBankUpdate(ctx context.Context, entry *domain.PaymentAccountEditHistory) (*domain.PaymentAccountEditHistory, error)
	GetMostRecentBankUpdate(ctx context.Context, paymentAccountID int64, within *time.Duration) (*domain.PaymentAccountEditHistory, error)
	ListBankUpdates(ctx context.Context, paymentAccountID int64, start, end time.Time) ([]domain.PaymentAccountEditHistory, error)
	ListRecentlyUpdatedAccountIDs(ctx context.Context, since time.Time) ([]int64, error)
}

// ServiceClientRepository defines persistence for API service clients.
type ServiceClientRepository interface {
	Create(ctx context.Context, client *domain.ServiceClient) error
	GetByAPIKey(ctx context.Context, apiKey string) (*domain.ServiceClient, error)
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
