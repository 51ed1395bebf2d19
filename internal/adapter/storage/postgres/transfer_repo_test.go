package postgres

import (
	"context"
	"testing"
	"time"

	"payment-lifecycle-service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTransfer() *domain.Transfer {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &domain.Transfer{
		ID:              uuid.New(),
		PayoutAccountID: 42,
		TransferType:    domain.TransferTypeManual,
		Amount:          15000,
		Currency:        "USD",
		StartTime:       now.Add(-7 * 24 * time.Hour),
		EndTime:         now,
		PayoutCountries: []string{"US"},
		Status:          domain.TransferStatusCreated,
		CreatedByID:     7,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func TestTransferRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransferRepo(mock)
	tr := newTestTransfer()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO transfers").
		WithArgs(
			tr.ID, tr.PayoutAccountID, tr.TransferType, tr.Amount, tr.Currency, tr.StartTime, tr.EndTime,
			tr.TargetID, tr.TargetType, tr.TargetBusinessID, tr.PayoutCountries, tr.Status, tr.CreatedByID,
			tr.SubmittedByID, tr.CreatedAt, tr.UpdatedAt,
		).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	dbTx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.Create(context.Background(), dbTx, tr)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransferRepo_GetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransferRepo(mock)
	tr := newTestTransfer()

	rows := pgxmock.NewRows([]string{"id", "payout_account_id", "transfer_type", "amount", "currency",
		"start_time", "end_time", "target_id", "target_type", "target_business_id", "payout_countries",
		"status", "created_by_id", "submitted_by_id", "created_at", "updated_at"}).
		AddRow(tr.ID, tr.PayoutAccountID, tr.TransferType, tr.Amount, tr.Currency,
			tr.StartTime, tr.EndTime, tr.TargetID, tr.TargetType, tr.TargetBusinessID, tr.PayoutCountries,
			tr.Status, tr.CreatedByID, tr.SubmittedByID, tr.CreatedAt, tr.UpdatedAt)

	mock.ExpectQuery("SELECT (.+) FROM transfers WHERE id =").
		WithArgs(tr.ID).
		WillReturnRows(rows)

	got, err := repo.GetByID(context.Background(), tr.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, tr.Status, got.Status)
	assert.Equal(t, tr.PayoutAccountID, got.PayoutAccountID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransferRepo_GetByID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransferRepo(mock)

	mock.ExpectQuery("SELECT (.+) FROM transfers WHERE id =").
		WithArgs(pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"id"}))

	got, err := repo.GetByID(context.Background(), uuid.New())
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestTransferRepo_TransitionStatus(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransferRepo(mock)
	id := uuid.New()

	mock.ExpectExec("UPDATE transfers SET status =").
		WithArgs(domain.TransferStatusSubmitting, (*int64)(nil), pgxmock.AnyArg(), id, domain.TransferStatusCreated).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	ok, err := repo.TransitionStatus(context.Background(), id, domain.TransferStatusCreated, domain.TransferStatusSubmitting, nil)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransferRepo_TransitionStatus_LostRace(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransferRepo(mock)
	id := uuid.New()

	// Another submitter moved the row first; zero rows match the guard.
	mock.ExpectExec("UPDATE transfers SET status =").
		WithArgs(domain.TransferStatusSubmitting, (*int64)(nil), pgxmock.AnyArg(), id, domain.TransferStatusCreated).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	ok, err := repo.TransitionStatus(context.Background(), id, domain.TransferStatusCreated, domain.TransferStatusSubmitting, nil)
	require.NoError(t, err)
	assert.False(t, ok)
}
