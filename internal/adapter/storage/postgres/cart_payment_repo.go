package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"payment-lifecycle-service/internal/core/domain"
	"payment-lifecycle-service/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CartPaymentRepo implements ports.CartPaymentRepository.
type CartPaymentRepo struct {
	pool Pool
}

// NewCartPaymentRepo creates a new CartPaymentRepo.
func NewCartPaymentRepo(pool Pool) *CartPaymentRepo {
	return &CartPaymentRepo{pool: pool}
}

const cartPaymentColumns = `cp.id, cp.payer_id, cp.amount, cp.currency, cp.country,
	cp.payment_method_id, cp.capture_method, cp.reference_id, cp.ct_reference_id, cp.cart_type,
	cp.client_description, cp.payer_statement_description, cp.created_at, cp.updated_at,
	lp.consumer_id, lp.charge_id, lp.stripe_customer_id,
	sp.payout_account_id, sp.application_fee_amount`

const cartPaymentJoins = `FROM cart_payments cp
	LEFT JOIN legacy_payments lp ON lp.cart_payment_id = cp.id
	LEFT JOIN split_payments sp ON sp.cart_payment_id = cp.id`

// Create inserts a cart payment and its legacy/split sub-records within a
// database transaction so all three commit or roll back together. A
// colliding idempotency key maps to ports.ErrUniqueViolation.
func (r *CartPaymentRepo) Create(ctx context.Context, tx pgx.Tx, p *domain.CartPayment, idempotencyKey, fingerprint string) error {
	query := `INSERT INTO cart_payments (id, payer_id, amount, currency, country, payment_method_id,
		capture_method, reference_id, ct_reference_id, cart_type, client_description,
		payer_statement_description, idempotency_key, request_fingerprint, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`

	_, err := tx.Exec(ctx, query,
		p.ID, p.PayerID, p.Amount, p.Currency, p.Country, p.PaymentMethodID,
		p.CaptureMethod, p.CartMetadata.ReferenceID, p.CartMetadata.CtReferenceID, p.CartMetadata.Type,
		p.ClientDescription, p.PayerStatementDescription, idempotencyKey, fingerprint,
		p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert cart payment: %w", mapInsertError(err))
	}

	if p.LegacyPayment != nil {
		_, err = tx.Exec(ctx,
			`INSERT INTO legacy_payments (cart_payment_id, consumer_id, charge_id, stripe_customer_id)
			VALUES ($1, $2, $3, $4)`,
			p.ID, p.LegacyPayment.ConsumerID, p.LegacyPayment.ChargeID, p.LegacyPayment.StripeCustomerID,
		)
		if err != nil {
			return fmt.Errorf("insert legacy payment: %w", mapInsertError(err))
		}
	}

	if p.SplitPayment != nil {
		_, err = tx.Exec(ctx,
			`INSERT INTO split_payments (cart_payment_id, payout_account_id, application_fee_amount)
			VALUES ($1, $2, $3)`,
			p.ID, p.SplitPayment.PayoutAccountID, p.SplitPayment.ApplicationFeeAmount,
		)
		if err != nil {
			return fmt.Errorf("insert split payment: %w", mapInsertError(err))
		}
	}

	return nil
}

// GetByID fetches a hydrated cart payment by UUID.
func (r *CartPaymentRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.CartPayment, error) {
	query := fmt.Sprintf(`SELECT %s %s WHERE cp.id = $1`, cartPaymentColumns, cartPaymentJoins)
	p, _, err := scanCartPayment(r.pool.QueryRow(ctx, query, id), false)
	return p, err
}

// GetByIdempotencyKey fetches a cart payment and its stored request
// fingerprint. Returns nil, "" when the key is unknown.
func (r *CartPaymentRepo) GetByIdempotencyKey(ctx context.Context, key string) (*domain.CartPayment, string, error) {
	query := fmt.Sprintf(`SELECT %s, cp.request_fingerprint %s WHERE cp.idempotency_key = $1`,
		cartPaymentColumns, cartPaymentJoins)
	return scanCartPayment(r.pool.QueryRow(ctx, query, key), true)
}

// Update applies a partial update. Nil fields keep the stored values.
func (r *CartPaymentRepo) Update(ctx context.Context, tx pgx.Tx, u ports.CartPaymentUpdate) error {
	sets := []string{}
	args := []any{}
	argIdx := 1

	add := func(col string, val any) {
		sets = append(sets, fmt.Sprintf("%s = $%d", col, argIdx))
		args = append(args, val)
		argIdx++
	}

	if u.Amount != nil {
		add("amount", *u.Amount)
	}
	if u.ClientDescription != nil {
		add("client_description", *u.ClientDescription)
	}
	if u.PayerStatementDescription != nil {
		add("payer_statement_description", *u.PayerStatementDescription)
	}
	if u.CartMetadata != nil {
		add("reference_id", u.CartMetadata.ReferenceID)
		add("ct_reference_id", u.CartMetadata.CtReferenceID)
		add("cart_type", u.CartMetadata.Type)
	}
	add("updated_at", time.Now().UTC())

	query := fmt.Sprintf("UPDATE cart_payments SET %s WHERE id = $%d", strings.Join(sets, ", "), argIdx)
	args = append(args, u.ID)

	tag, err := tx.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update cart payment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("cart payment not found: %s", u.ID)
	}

	if u.LegacyPayment != nil {
		_, err = tx.Exec(ctx,
			`INSERT INTO legacy_payments (cart_payment_id, consumer_id, charge_id, stripe_customer_id)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (cart_payment_id) DO UPDATE
			SET consumer_id = EXCLUDED.consumer_id, charge_id = EXCLUDED.charge_id,
				stripe_customer_id = EXCLUDED.stripe_customer_id`,
			u.ID, u.LegacyPayment.ConsumerID, u.LegacyPayment.ChargeID, u.LegacyPayment.StripeCustomerID,
		)
		if err != nil {
			return fmt.Errorf("upsert legacy payment: %w", err)
		}
	}

	return nil
}

// scanCartPayment scans the joined row. The legacy/split sub-records come
// back as nullable columns and are attached only when present.
func scanCartPayment(row pgx.Row, withFingerprint bool) (*domain.CartPayment, string, error) {
	p := &domain.CartPayment{}
	var (
		consumerID       *int64
		chargeID         *string
		stripeCustomerID *string
		payoutAccountID  *int64
		appFeeAmount     *int64
		fingerprint      string
	)

	dest := []any{
		&p.ID, &p.PayerID, &p.Amount, &p.Currency, &p.Country,
		&p.PaymentMethodID, &p.CaptureMethod, &p.CartMetadata.ReferenceID, &p.CartMetadata.CtReferenceID, &p.CartMetadata.Type,
		&p.ClientDescription, &p.PayerStatementDescription, &p.CreatedAt, &p.UpdatedAt,
		&consumerID, &chargeID, &stripeCustomerID,
		&payoutAccountID, &appFeeAmount,
	}
	if withFingerprint {
		dest = append(dest, &fingerprint)
	}

	if err := row.Scan(dest...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", nil
		}
		return nil, "", fmt.Errorf("scan cart payment: %w", err)
	}

	if consumerID != nil || chargeID != nil || stripeCustomerID != nil {
		p.LegacyPayment = &domain.LegacyPayment{
			ConsumerID:       consumerID,
			ChargeID:         chargeID,
			StripeCustomerID: stripeCustomerID,
		}
	}
	if payoutAccountID != nil {
		p.SplitPayment = &domain.SplitPayment{
			PayoutAccountID:      *payoutAccountID,
			ApplicationFeeAmount: *appFeeAmount,
		}
	}

	return p, fingerprint, nil
}
