package postgres

import (
	"context"
	"errors"
	"fmt"

	"payment-lifecycle-service/internal/core/domain"
	"payment-lifecycle-service/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// PaymentMethodRepo implements ports.PaymentMethodLookup against the
// payment_methods table.
type PaymentMethodRepo struct {
	pool Pool
}

// NewPaymentMethodRepo creates a new PaymentMethodRepo.
func NewPaymentMethodRepo(pool Pool) *PaymentMethodRepo {
	return &PaymentMethodRepo{pool: pool}
}

// Resolve fetches a payment method and validates it belongs to the payer.
func (r *PaymentMethodRepo) Resolve(ctx context.Context, paymentMethodID, payerID uuid.UUID) (*domain.PaymentMethodRef, error) {
	query := `SELECT id, payer_id, provider_card_id FROM payment_methods WHERE id = $1`

	m := &domain.PaymentMethodRef{}
	err := r.pool.QueryRow(ctx, query, paymentMethodID).Scan(&m.ID, &m.PayerID, &m.ProviderCardID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.ErrPaymentMethodNotFound()
		}
		return nil, fmt.Errorf("resolve payment method: %w", err)
	}

	if m.PayerID != payerID {
		return nil, apperror.ErrPaymentMethodMismatch()
	}
	return m, nil
}
