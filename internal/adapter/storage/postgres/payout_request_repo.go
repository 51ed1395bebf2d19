package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"payment-lifecycle-service/internal/core/domain"
	"payment-lifecycle-service/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// PayoutRequestRepo implements ports.PayoutRequestRepository.
type PayoutRequestRepo struct {
	pool Pool
}

// NewPayoutRequestRepo creates a new PayoutRequestRepo.
func NewPayoutRequestRepo(pool Pool) *PayoutRequestRepo {
	return &PayoutRequestRepo{pool: pool}
}

const payoutRequestColumns = `id, transfer_id, idempotency_key, payout_method_id, request, response,
	status, events, stripe_payout_id, stripe_account_id, created_at, received_at, updated_at`

// Create inserts a payout request. The unique constraint on transfer_id is
// what caps submissions at one in-flight attempt record per transfer; a
// collision maps to ports.ErrUniqueViolation.
func (r *PayoutRequestRepo) Create(ctx context.Context, pr *domain.StripePayoutRequest) error {
	events, err := json.Marshal(pr.Events)
	if err != nil {
		return fmt.Errorf("marshal payout events: %w", err)
	}

	query := fmt.Sprintf(`INSERT INTO stripe_payout_requests (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`, payoutRequestColumns)

	_, err = r.pool.Exec(ctx, query,
		pr.ID, pr.TransferID, pr.IdempotencyKey, pr.PayoutMethodID, pr.Request, pr.Response,
		pr.Status, events, pr.StripePayoutID, pr.StripeAccountID, pr.CreatedAt, pr.ReceivedAt, pr.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert payout request: %w", mapInsertError(err))
	}
	return nil
}

// GetByTransferID fetches the submission record for a transfer, or nil.
func (r *PayoutRequestRepo) GetByTransferID(ctx context.Context, transferID uuid.UUID) (*domain.StripePayoutRequest, error) {
	query := fmt.Sprintf(`SELECT %s FROM stripe_payout_requests WHERE transfer_id = $1`, payoutRequestColumns)

	pr := &domain.StripePayoutRequest{}
	var events []byte
	err := r.pool.QueryRow(ctx, query, transferID).Scan(
		&pr.ID, &pr.TransferID, &pr.IdempotencyKey, &pr.PayoutMethodID, &pr.Request, &pr.Response,
		&pr.Status, &events, &pr.StripePayoutID, &pr.StripeAccountID, &pr.CreatedAt, &pr.ReceivedAt, &pr.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payout request: %w", err)
	}

	if len(events) > 0 {
		if err := json.Unmarshal(events, &pr.Events); err != nil {
			return nil, fmt.Errorf("unmarshal payout events: %w", err)
		}
	}
	return pr, nil
}

// RecordOutcome persists the gateway response for an attempt and appends
// the attempt event to the ordered submission log.
func (r *PayoutRequestRepo) RecordOutcome(ctx context.Context, o ports.PayoutOutcome) error {
	event, err := json.Marshal(o.Event)
	if err != nil {
		return fmt.Errorf("marshal payout event: %w", err)
	}

	query := `UPDATE stripe_payout_requests
		SET status = $1, response = COALESCE($2, response),
			stripe_payout_id = COALESCE($3, stripe_payout_id),
			received_at = COALESCE($4, received_at),
			events = COALESCE(events, '[]'::jsonb) || $5::jsonb,
			updated_at = $6
		WHERE id = $7`

	tag, err := r.pool.Exec(ctx, query,
		o.Status, o.Response, o.StripePayoutID, o.ReceivedAt, event, time.Now().UTC(), o.RequestID,
	)
	if err != nil {
		return fmt.Errorf("record payout outcome: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("payout request not found: %s", o.RequestID)
	}
	return nil
}
