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

// AccountHistoryRepo implements ports.AccountEditHistoryRepository.
// The table is append-only; no update or delete statements exist here.
type AccountHistoryRepo struct {
	pool Pool
}

// NewAccountHistoryRepo creates a new AccountHistoryRepo.
func NewAccountHistoryRepo(pool Pool) *AccountHistoryRepo {
	return &AccountHistoryRepo{pool: pool}
}

const historyColumns = `id, payment_account_id, owner_type, payload, timestamp`

// RecordBankUpdate inserts an audit entry. The timestamp is assigned here,
// never taken from the caller, so the trail stays monotonic regardless of
// client clock skew.
func (r *AccountHistoryRepo) RecordBankUpdate(ctx context.Context, e *domain.PaymentAccountEditHistory) (*domain.PaymentAccountEditHistory, error) {
	query := fmt.Sprintf(`INSERT INTO payment_account_edit_history (%s)
		VALUES ($1, $2, $3, $4, $5) RETURNING %s`, historyColumns, historyColumns)

	stored := &domain.PaymentAccountEditHistory{}
	err := r.pool.QueryRow(ctx, query,
		uuid.New(), e.PaymentAccountID, e.OwnerType, e.Payload, time.Now().UTC(),
	).Scan(&stored.ID, &stored.PaymentAccountID, &stored.OwnerType, &stored.Payload, &stored.Timestamp)
	if err != nil {
		return nil, fmt.Errorf("record bank update: %w", err)
	}
	return stored, nil
}

// GetMostRecentBankUpdate returns the newest entry for an account, bounded
// to the trailing window when one is given.
func (r *AccountHistoryRepo) GetMostRecentBankUpdate(ctx context.Context, paymentAccountID int64, within *time.Duration) (*domain.PaymentAccountEditHistory, error) {
	query := fmt.Sprintf(`SELECT %s FROM payment_account_edit_history WHERE payment_account_id = $1`, historyColumns)
	args := []any{paymentAccountID}

	if within != nil {
		query += ` AND timestamp > $2`
		args = append(args, time.Now().UTC().Add(-*within))
	}
	query += ` ORDER BY timestamp DESC LIMIT 1`

	e := &domain.PaymentAccountEditHistory{}
	err := r.pool.QueryRow(ctx, query, args...).Scan(
		&e.ID, &e.PaymentAccountID, &e.OwnerType, &e.Payload, &e.Timestamp,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get most recent bank update: %w", err)
	}
	return e, nil
}

// ListBankUpdates returns the STORE-owned entries for an account within
// [start, end].
func (r *AccountHistoryRepo) ListBankUpdates(ctx context.Context, paymentAccountID int64, start, end time.Time) ([]domain.PaymentAccountEditHistory, error) {
	query := fmt.Sprintf(`SELECT %s FROM payment_account_edit_history
		WHERE payment_account_id = $1 AND owner_type = $2 AND timestamp >= $3 AND timestamp <= $4
		ORDER BY timestamp ASC`, historyColumns)

	rows, err := r.pool.Query(ctx, query, paymentAccountID, domain.BankUpdateOwnerTypeStore, start, end)
	if err != nil {
		return nil, fmt.Errorf("list bank updates: %w", err)
	}
	defer rows.Close()

	var entries []domain.PaymentAccountEditHistory
	for rows.Next() {
		e := domain.PaymentAccountEditHistory{}
		if err := rows.Scan(&e.ID, &e.PaymentAccountID, &e.OwnerType, &e.Payload, &e.Timestamp); err != nil {
			return nil, fmt.Errorf("scan bank update: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate bank updates: %w", err)
	}
	return entries, nil
}

// ListRecentlyUpdatedAccountIDs returns the distinct account ids touched at
// or after the given instant.
func (r *AccountHistoryRepo) ListRecentlyUpdatedAccountIDs(ctx context.Context, since time.Time) ([]int64, error) {
	query := `SELECT DISTINCT payment_account_id FROM payment_account_edit_history WHERE timestamp >= $1`

	rows, err := r.pool.Query(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("list recently updated accounts: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan account id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate account ids: %w", err)
	}
	return ids, nil
}
