package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"payment-lifecycle-service/internal/core/domain"
	"payment-lifecycle-service/internal/core/ports"
	"payment-lifecycle-service/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const idempotencyTTL = 24 * time.Hour

// CartPaymentServiceImpl implements ports.CartPaymentProcessor.
type CartPaymentServiceImpl struct {
	paymentRepo  ports.CartPaymentRepository
	methodLookup ports.PaymentMethodLookup
	gateway      ports.PayoutGateway
	idempCache   ports.IdempotencyCache
	transactor   ports.DBTransactor
	log          zerolog.Logger
}

// NewCartPaymentService creates a new CartPaymentServiceImpl.
func NewCartPaymentService(
	paymentRepo ports.CartPaymentRepository,
	methodLookup ports.PaymentMethodLookup,
	gateway ports.PayoutGateway,
	idempCache ports.IdempotencyCache,
	transactor ports.DBTransactor,
	log zerolog.Logger,
) *CartPaymentServiceImpl {
	return &CartPaymentServiceImpl{
		paymentRepo:  paymentRepo,
		methodLookup: methodLookup,
		gateway:      gateway,
		idempCache:   idempCache,
		transactor:   transactor,
		log:          log,
	}
}

// SubmitPayment creates a cart payment, or returns the previously created one
// when the idempotency key is replayed with an identical payload.
func (s *CartPaymentServiceImpl) SubmitPayment(ctx context.Context, req ports.SubmitCartPaymentRequest) (*domain.CartPayment, error) {
	if req.Amount < 0 {
		return nil, apperror.ErrInvalidAmount()
	}
	if req.IdempotencyKey == "" {
		return nil, apperror.Validation("idempotency key is required")
	}

	if _, err := s.methodLookup.Resolve(ctx, req.PaymentMethodID, req.PayerID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	payment := &domain.CartPayment{
		ID:                        uuid.New(),
		PayerID:                   req.PayerID,
		Amount:                    req.Amount,
		Currency:                  req.Currency,
		Country:                   req.Country,
		PaymentMethodID:           req.PaymentMethodID,
		CaptureMethod:             req.CaptureMethod,
		CartMetadata:              req.CartMetadata,
		ClientDescription:         req.ClientDescription,
		PayerStatementDescription: req.PayerStatementDescription,
		LegacyPayment:             req.LegacyPayment,
		SplitPayment:              req.SplitPayment,
		CreatedAt:                 now,
		UpdatedAt:                 now,
	}
	fingerprint := payment.Fingerprint()

	// Layer 1: Redis idempotency check
	cached, err := s.idempCache.Get(ctx, req.IdempotencyKey)
	if err != nil {
		s.log.Warn().Err(err).Str("key", req.IdempotencyKey).Msg("redis idempotency check failed, falling through to DB")
	}
	if cached != nil {
		return s.replayCached(cached, fingerprint)
	}

	// Layer 2: DB idempotency check
	existing, storedFP, err := s.paymentRepo.GetByIdempotencyKey(ctx, req.IdempotencyKey)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("db idempotency check: %w", err))
	}
	if existing != nil {
		if storedFP != fingerprint {
			return nil, apperror.ErrIdempotencyConflict()
		}
		return existing, nil
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := s.paymentRepo.Create(ctx, dbTx, payment, req.IdempotencyKey, fingerprint); err != nil {
		if errors.Is(err, ports.ErrUniqueViolation) {
			// A concurrent call with the same key won the race; re-read
			// and treat it as a replay.
			return s.replayFromDB(ctx, req.IdempotencyKey, fingerprint)
		}
		return nil, apperror.InternalError(fmt.Errorf("create cart payment: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	// Post-process: cache in Redis (best-effort)
	if respJSON, err := json.Marshal(payment); err == nil {
		if err := s.idempCache.Set(ctx, req.IdempotencyKey, respJSON, idempotencyTTL); err != nil {
			s.log.Warn().Err(err).Str("key", req.IdempotencyKey).Msg("failed to cache idempotency in redis")
		}
	}

	s.log.Info().
		Str("cart_payment_id", payment.ID.String()).
		Str("payer_id", req.PayerID.String()).
		Int64("amount", req.Amount).
		Str("currency", req.Currency).
		Msg("cart payment submitted")

	return payment, nil
}

// UpdatePayment adjusts a cart payment. When the amount changes on an already
// captured payment, the gateway adjustment runs before persisting so a failed
// adjustment never leaves the stored amount out of sync with the charge.
func (s *CartPaymentServiceImpl) UpdatePayment(ctx context.Context, req ports.UpdateCartPaymentRequest) (*domain.CartPayment, error) {
	payment, err := s.paymentRepo.GetByID(ctx, req.CartPaymentID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load cart payment: %w", err))
	}
	if payment == nil {
		return nil, apperror.ErrNotFound("cart payment")
	}
	if payment.PayerID != req.PayerID {
		return nil, apperror.ErrOwnershipMismatch("cart payment")
	}

	if req.Amount != nil {
		if *req.Amount < 0 {
			return nil, apperror.ErrInvalidAmount()
		}
		if *req.Amount != payment.Amount && payment.Captured() {
			chargeID := ""
			if payment.LegacyPayment != nil && payment.LegacyPayment.ChargeID != nil {
				chargeID = *payment.LegacyPayment.ChargeID
			}
			adjustKey := domain.BuildChargeAdjustmentKey(req.IdempotencyKey)
			if err := s.gateway.AdjustCharge(ctx, adjustKey, chargeID, *req.Amount); err != nil {
				return nil, err
			}
		}
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	update := ports.CartPaymentUpdate{
		ID:                        req.CartPaymentID,
		Amount:                    req.Amount,
		ClientDescription:         req.ClientDescription,
		PayerStatementDescription: req.PayerStatementDescription,
		LegacyPayment:             req.LegacyPayment,
		CartMetadata:              req.CartMetadata,
	}
	if err := s.paymentRepo.Update(ctx, dbTx, update); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update cart payment: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	updated, err := s.paymentRepo.GetByID(ctx, req.CartPaymentID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("reload cart payment: %w", err))
	}

	s.log.Info().
		Str("cart_payment_id", req.CartPaymentID.String()).
		Msg("cart payment updated")

	return updated, nil
}

// replayCached deserializes a cached payment and verifies the fingerprint of
// the replayed request against it.
func (s *CartPaymentServiceImpl) replayCached(data []byte, fingerprint string) (*domain.CartPayment, error) {
	payment := &domain.CartPayment{}
	if err := json.Unmarshal(data, payment); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("unmarshal cached payment: %w", err))
	}
	if payment.Fingerprint() != fingerprint {
		return nil, apperror.ErrIdempotencyConflict()
	}
	return payment, nil
}

func (s *CartPaymentServiceImpl) replayFromDB(ctx context.Context, key, fingerprint string) (*domain.CartPayment, error) {
	existing, storedFP, err := s.paymentRepo.GetByIdempotencyKey(ctx, key)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("re-read after unique violation: %w", err))
	}
	if existing == nil {
		return nil, apperror.InternalError(fmt.Errorf("idempotency row vanished for key %s", key))
	}
	if storedFP != fingerprint {
		return nil, apperror.ErrIdempotencyConflict()
	}
	return existing, nil
}
