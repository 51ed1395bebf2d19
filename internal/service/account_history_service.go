package service

import (
	"context"
	"fmt"
	"time"

	"payment-lifecycle-service/internal/core/domain"
	"payment-lifecycle-service/internal/core/ports"
	"payment-lifecycle-service/pkg/apperror"

	"github.com/rs/zerolog"
)

// AccountHistoryServiceImpl implements ports.AccountHistoryService on top of
// the append-only edit history repository.
type AccountHistoryServiceImpl struct {
	historyRepo ports.AccountEditHistoryRepository
	log         zerolog.Logger
}

// NewAccountHistoryService creates a new AccountHistoryServiceImpl.
func NewAccountHistoryService(historyRepo ports.AccountEditHistoryRepository, log zerolog.Logger) *AccountHistoryServiceImpl {
	return &AccountHistoryServiceImpl{historyRepo: historyRepo, log: log}
}

// RecordBankUpdate appends a bank update entry. The stored timestamp is
// assigned by the repository, never by the caller.
func (s *AccountHistoryServiceImpl) RecordBankUpdate(ctx context.Context, paymentAccountID int64, ownerType domain.BankUpdateOwnerType, payload []byte) (*domain.PaymentAccountEditHistory, error) {
	if paymentAccountID <= 0 {
		return nil, apperror.Validation("payment account id must be positive")
	}
	if ownerType != domain.BankUpdateOwnerTypeStore && ownerType != domain.BankUpdateOwnerTypeDSP {
		return nil, apperror.Validation(fmt.Sprintf("unknown owner type %q", ownerType))
	}

	entry := &domain.PaymentAccountEditHistory{
		PaymentAccountID: paymentAccountID,
		OwnerType:        ownerType,
		Payload:          payload,
	}
	recorded, err := s.historyRepo.RecordBankUpdate(ctx, entry)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("record bank update: %w", err))
	}

	s.log.Info().
		Int64("payment_account_id", paymentAccountID).
		Str("owner_type", string(ownerType)).
		Msg("bank update recorded")

	return recorded, nil
}

// GetMostRecentBankUpdate returns the latest bank update for an account,
// optionally restricted to a trailing window.
func (s *AccountHistoryServiceImpl) GetMostRecentBankUpdate(ctx context.Context, paymentAccountID int64, within *time.Duration) (*domain.PaymentAccountEditHistory, error) {
	entry, err := s.historyRepo.GetMostRecentBankUpdate(ctx, paymentAccountID, within)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get most recent bank update: %w", err))
	}
	return entry, nil
}

// ListBankUpdates returns the store bank updates for an account within
// [start, end), newest first.
func (s *AccountHistoryServiceImpl) ListBankUpdates(ctx context.Context, paymentAccountID int64, start, end time.Time) ([]domain.PaymentAccountEditHistory, error) {
	if !start.Before(end) {
		return nil, apperror.ErrInvalidTimeWindow()
	}
	entries, err := s.historyRepo.ListBankUpdates(ctx, paymentAccountID, start, end)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list bank updates: %w", err))
	}
	return entries, nil
}

// ListRecentlyUpdatedAccountIDs returns the distinct accounts with any bank
// update since the given instant.
func (s *AccountHistoryServiceImpl) ListRecentlyUpdatedAccountIDs(ctx context.Context, since time.Time) ([]int64, error) {
	ids, err := s.historyRepo.ListRecentlyUpdatedAccountIDs(ctx, since)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list recently updated accounts: %w", err))
	}
	return ids, nil
}
