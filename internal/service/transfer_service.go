package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"payment-lifecycle-service/internal/core/domain"
	"payment-lifecycle-service/internal/core/ports"
	"payment-lifecycle-service/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// TransferServiceImpl implements ports.TransferProcessor.
type TransferServiceImpl struct {
	transferRepo ports.TransferRepository
	itemRepo     ports.PayableItemRepository
	payoutRepo   ports.PayoutRequestRepository
	gateway      ports.PayoutGateway
	transactor   ports.DBTransactor
	minAmount    int64
	log          zerolog.Logger
}

// NewTransferService creates a new TransferServiceImpl. Transfers whose
// aggregated amount is at or below minAmount are created as SKIPPED and never
// reach the gateway.
func NewTransferService(
	transferRepo ports.TransferRepository,
	itemRepo ports.PayableItemRepository,
	payoutRepo ports.PayoutRequestRepository,
	gateway ports.PayoutGateway,
	transactor ports.DBTransactor,
	minAmount int64,
	log zerolog.Logger,
) *TransferServiceImpl {
	return &TransferServiceImpl{
		transferRepo: transferRepo,
		itemRepo:     itemRepo,
		payoutRepo:   payoutRepo,
		gateway:      gateway,
		transactor:   transactor,
		minAmount:    minAmount,
		log:          log,
	}
}

// CreateTransfer aggregates the account's unattached payable items over
// [StartTime, EndTime) into a new transfer. Items are locked for the duration
// of the transaction so concurrent creations cannot double-count them.
func (s *TransferServiceImpl) CreateTransfer(ctx context.Context, req ports.CreateTransferRequest) (*domain.Transfer, error) {
	if !req.StartTime.Before(req.EndTime) {
		return nil, apperror.ErrInvalidTimeWindow()
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	total, itemIDs, err := s.itemRepo.SumUnattached(ctx, dbTx, req.PayoutAccountID, req.StartTime, req.EndTime, req.PayoutCountries)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("aggregate payable items: %w", err))
	}

	now := time.Now().UTC()
	transfer := &domain.Transfer{
		ID:               uuid.New(),
		PayoutAccountID:  req.PayoutAccountID,
		TransferType:     req.TransferType,
		Amount:           total,
		Currency:         req.Currency,
		StartTime:        req.StartTime,
		EndTime:          req.EndTime,
		TargetID:         req.TargetID,
		TargetType:       req.TargetType,
		TargetBusinessID: req.TargetBusinessID,
		PayoutCountries:  req.PayoutCountries,
		Status:           domain.TransferStatusCreated,
		CreatedByID:      req.CreatedByID,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	// Below-threshold amounts are not worth a gateway round trip; the items
	// stay unattached and roll into the next window.
	if total <= s.minAmount {
		transfer.Status = domain.TransferStatusSkipped
	}

	if err := s.transferRepo.Create(ctx, dbTx, transfer); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create transfer: %w", err))
	}

	if transfer.Status != domain.TransferStatusSkipped && len(itemIDs) > 0 {
		if err := s.itemRepo.AttachToTransfer(ctx, dbTx, itemIDs, transfer.ID); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("attach payable items: %w", err))
		}
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("transfer_id", transfer.ID.String()).
		Int64("payout_account_id", req.PayoutAccountID).
		Int64("amount", total).
		Int("items", len(itemIDs)).
		Str("status", string(transfer.Status)).
		Msg("transfer created")

	return transfer, nil
}

// SubmitTransfer dispatches a transfer to the payout gateway, creating or
// reusing the per-transfer payout request record so the same idempotency key
// accompanies every attempt.
func (s *TransferServiceImpl) SubmitTransfer(ctx context.Context, req ports.SubmitTransferRequest) (*domain.StripePayoutRequest, error) {
	transfer, err := s.transferRepo.GetByID(ctx, req.TransferID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load transfer: %w", err))
	}
	if transfer == nil {
		return nil, apperror.ErrNotFound("transfer")
	}

	// Re-submitting an already submitted transfer is an idempotent no-op
	// unless an explicit retry was requested.
	if transfer.Status == domain.TransferStatusSubmitted && !req.Retry {
		record, err := s.payoutRepo.GetByTransferID(ctx, transfer.ID)
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("load payout request: %w", err))
		}
		if record == nil {
			return nil, apperror.ErrNotFound("payout request")
		}
		return record, nil
	}

	from := domain.TransferStatusCreated
	if req.Retry {
		if !transfer.CanRetry() {
			return nil, apperror.ErrInvalidStateTransition(string(transfer.Status), "retry")
		}
		from = domain.TransferStatusError
	} else if !transfer.CanSubmit() {
		return nil, apperror.ErrInvalidStateTransition(string(transfer.Status), "submit")
	}

	ok, err := s.transferRepo.TransitionStatus(ctx, transfer.ID, from, domain.TransferStatusSubmitting, &req.SubmittedBy)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("transition to submitting: %w", err))
	}
	if !ok {
		// Lost the race to a concurrent submitter.
		return nil, apperror.ErrInvalidStateTransition(string(transfer.Status), "submit")
	}

	// Per-submission target hints override the ones recorded at creation.
	targetType, targetID := transfer.TargetType, transfer.TargetID
	if req.TargetType != nil {
		targetType = req.TargetType
	}
	if req.TargetID != nil {
		targetID = req.TargetID
	}

	gatewayReq := ports.GatewayPayoutRequest{
		IdempotencyKey:      domain.BuildTransferSubmissionKey(transfer.ID),
		Amount:              transfer.Amount,
		Currency:            transfer.Currency,
		Destination:         strconv.FormatInt(transfer.PayoutAccountID, 10),
		StatementDescriptor: req.StatementDescriptor,
		Method:              req.Method,
		TargetType:          targetType,
		TargetID:            targetID,
		StripeAccountID:     req.StripeAccountID,
	}

	record, err := s.ensurePayoutRequest(ctx, transfer, req, gatewayReq)
	if err != nil {
		return nil, err
	}

	// The record's key wins over the freshly derived one in case an older
	// record carried a different key format.
	gatewayReq.IdempotencyKey = record.IdempotencyKey
	resp, gwErr := s.gateway.SubmitPayout(ctx, gatewayReq)
	if gwErr != nil {
		s.recordFailure(ctx, transfer, record, gwErr)
		return nil, gwErr
	}

	outcome := ports.PayoutOutcome{
		RequestID:      record.ID,
		Status:         domain.PayoutRequestStatusPaid,
		Response:       resp.Raw,
		StripePayoutID: &resp.ProviderID,
		ReceivedAt:     &resp.ReceivedAt,
		Event: domain.PayoutEvent{
			Type:       "payout.paid",
			OccurredAt: resp.ReceivedAt,
		},
	}
	// Bookkeeping failures after a successful dispatch must not strand the
	// transfer in SUBMITTING: move it to ERROR so an explicit retry stays
	// available. The payout already went out, and the record's idempotency
	// key makes the retry's re-dispatch a provider-side no-op.
	if err := s.payoutRepo.RecordOutcome(ctx, outcome); err != nil {
		s.markErrored(ctx, transfer)
		return nil, apperror.InternalError(fmt.Errorf("record payout outcome: %w", err))
	}

	if _, err := s.transferRepo.TransitionStatus(ctx, transfer.ID, domain.TransferStatusSubmitting, domain.TransferStatusSubmitted, &req.SubmittedBy); err != nil {
		s.markErrored(ctx, transfer)
		return nil, apperror.InternalError(fmt.Errorf("transition to submitted: %w", err))
	}

	s.log.Info().
		Str("transfer_id", transfer.ID.String()).
		Str("stripe_payout_id", resp.ProviderID).
		Int64("amount", transfer.Amount).
		Msg("transfer submitted")

	return s.payoutRepo.GetByTransferID(ctx, transfer.ID)
}

// ensurePayoutRequest returns the transfer's payout request record, creating
// it on first submission. The record's idempotency key is fixed at creation
// and reused verbatim on retries.
func (s *TransferServiceImpl) ensurePayoutRequest(
	ctx context.Context,
	transfer *domain.Transfer,
	req ports.SubmitTransferRequest,
	gatewayReq ports.GatewayPayoutRequest,
) (*domain.StripePayoutRequest, error) {
	existing, err := s.payoutRepo.GetByTransferID(ctx, transfer.ID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load payout request: %w", err))
	}
	if existing != nil {
		return existing, nil
	}

	reqJSON, err := json.Marshal(gatewayReq)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("marshal gateway request: %w", err))
	}

	now := time.Now().UTC()
	record := &domain.StripePayoutRequest{
		ID:              uuid.New(),
		TransferID:      transfer.ID,
		IdempotencyKey:  gatewayReq.IdempotencyKey,
		PayoutMethodID:  req.PayoutMethodID,
		Request:         reqJSON,
		Status:          domain.PayoutRequestStatusNew,
		StripeAccountID: req.StripeAccountID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.payoutRepo.Create(ctx, record); err != nil {
		if errors.Is(err, ports.ErrUniqueViolation) {
			return s.payoutRepo.GetByTransferID(ctx, transfer.ID)
		}
		return nil, apperror.InternalError(fmt.Errorf("create payout request: %w", err))
	}
	return record, nil
}

// recordFailure persists a failed attempt and moves the transfer to ERROR so
// an explicit retry can re-drive it. Bookkeeping failures here are logged,
// not surfaced: the gateway error is the one the caller needs.
func (s *TransferServiceImpl) recordFailure(ctx context.Context, transfer *domain.Transfer, record *domain.StripePayoutRequest, gwErr error) {
	outcome := ports.PayoutOutcome{
		RequestID: record.ID,
		Status:    domain.PayoutRequestStatusFailed,
		Event: domain.PayoutEvent{
			Type:       "payout.failed",
			Message:    gwErr.Error(),
			OccurredAt: time.Now().UTC(),
		},
	}
	if err := s.payoutRepo.RecordOutcome(ctx, outcome); err != nil {
		s.log.Error().Err(err).Str("transfer_id", transfer.ID.String()).Msg("failed to record payout failure")
	}
	s.markErrored(ctx, transfer)

	s.log.Warn().
		Err(gwErr).
		Str("transfer_id", transfer.ID.String()).
		Msg("transfer submission failed")
}

// markErrored moves a SUBMITTING transfer to ERROR, keeping the retry path
// open. Failures here are logged only; the caller's error already carries
// the root cause.
func (s *TransferServiceImpl) markErrored(ctx context.Context, transfer *domain.Transfer) {
	if _, err := s.transferRepo.TransitionStatus(ctx, transfer.ID, domain.TransferStatusSubmitting, domain.TransferStatusError, nil); err != nil {
		s.log.Error().Err(err).Str("transfer_id", transfer.ID.String()).Msg("failed to mark transfer as errored")
	}
}
