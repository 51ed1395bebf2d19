package postgres

import (
	"context"
	"fmt"
	"time"

	"payment-lifecycle-service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// PayableItemRepo implements ports.PayableItemRepository.
type PayableItemRepo struct {
	pool Pool
}

// NewPayableItemRepo creates a new PayableItemRepo.
func NewPayableItemRepo(pool Pool) *PayableItemRepo {
	return &PayableItemRepo{pool: pool}
}

// Create inserts a payable line item.
func (r *PayableItemRepo) Create(ctx context.Context, item *domain.PayableItem) error {
	query := `INSERT INTO payable_items (id, payout_account_id, amount, country, transfer_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.pool.Exec(ctx, query,
		item.ID, item.PayoutAccountID, item.Amount, item.Country, item.TransferID, item.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert payable item: %w", mapInsertError(err))
	}
	return nil
}

// SumUnattached locks and totals the account's unattached payable items in
// [start, end). The transfer_id IS NULL predicate plus the row locks are
// what prevent a line item from ever being counted into two transfers.
func (r *PayableItemRepo) SumUnattached(ctx context.Context, tx pgx.Tx, accountID int64, start, end time.Time, countries []string) (int64, []uuid.UUID, error) {
	query := `SELECT id, amount FROM payable_items
		WHERE payout_account_id = $1 AND created_at >= $2 AND created_at < $3
		AND transfer_id IS NULL`
	args := []any{accountID, start, end}

	if len(countries) > 0 {
		query += ` AND country = ANY($4)`
		args = append(args, countries)
	}
	query += ` FOR UPDATE`

	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return 0, nil, fmt.Errorf("sum payable items: %w", err)
	}
	defer rows.Close()

	var total int64
	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		var amount int64
		if err := rows.Scan(&id, &amount); err != nil {
			return 0, nil, fmt.Errorf("scan payable item: %w", err)
		}
		total += amount
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return 0, nil, fmt.Errorf("iterate payable items: %w", err)
	}
	return total, ids, nil
}

// AttachToTransfer marks items as paid out by the given transfer.
func (r *PayableItemRepo) AttachToTransfer(ctx context.Context, tx pgx.Tx, itemIDs []uuid.UUID, transferID uuid.UUID) error {
	if len(itemIDs) == 0 {
		return nil
	}

	query := `UPDATE payable_items SET transfer_id = $1 WHERE id = ANY($2) AND transfer_id IS NULL`
	tag, err := tx.Exec(ctx, query, transferID, itemIDs)
	if err != nil {
		return fmt.Errorf("attach payable items: %w", err)
	}
	if int(tag.RowsAffected()) != len(itemIDs) {
		return fmt.Errorf("attach payable items: expected %d rows, got %d", len(itemIDs), tag.RowsAffected())
	}
	return nil
}
