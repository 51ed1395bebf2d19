package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"payment-lifecycle-service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// TransferRepo implements ports.TransferRepository.
type TransferRepo struct {
	pool Pool
}

// NewTransferRepo creates a new TransferRepo.
func NewTransferRepo(pool Pool) *TransferRepo {
	return &TransferRepo{pool: pool}
}

const transferColumns = `id, payout_account_id, transfer_type, amount, currency, start_time, end_time,
	target_id, target_type, target_business_id, payout_countries, status, created_by_id,
	submitted_by_id, created_at, updated_at`

// Create inserts a transfer within a database transaction.
func (r *TransferRepo) Create(ctx context.Context, tx pgx.Tx, t *domain.Transfer) error {
	query := fmt.Sprintf(`INSERT INTO transfers (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`, transferColumns)

	_, err := tx.Exec(ctx, query,
		t.ID, t.PayoutAccountID, t.TransferType, t.Amount, t.Currency, t.StartTime, t.EndTime,
		t.TargetID, t.TargetType, t.TargetBusinessID, t.PayoutCountries, t.Status, t.CreatedByID,
		t.SubmittedByID, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert transfer: %w", mapInsertError(err))
	}
	return nil
}

// GetByID fetches a transfer by UUID.
func (r *TransferRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Transfer, error) {
	query := fmt.Sprintf(`SELECT %s FROM transfers WHERE id = $1`, transferColumns)

	t := &domain.Transfer{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.PayoutAccountID, &t.TransferType, &t.Amount, &t.Currency, &t.StartTime, &t.EndTime,
		&t.TargetID, &t.TargetType, &t.TargetBusinessID, &t.PayoutCountries, &t.Status, &t.CreatedByID,
		&t.SubmittedByID, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transfer by id: %w", err)
	}
	return t, nil
}

// TransitionStatus performs the conditional state transition. The WHERE
// guard on the current status is what serializes concurrent submitters:
// exactly one caller observes rows affected = 1.
func (r *TransferRepo) TransitionStatus(ctx context.Context, id uuid.UUID, from, to domain.TransferStatus, submittedBy *int64) (bool, error) {
	query := `UPDATE transfers SET status = $1, submitted_by_id = COALESCE($2, submitted_by_id), updated_at = $3
		WHERE id = $4 AND status = $5`

	tag, err := r.pool.Exec(ctx, query, to, submittedBy, time.Now().UTC(), id, from)
	if err != nil {
		return false, fmt.Errorf("transition transfer status: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}
