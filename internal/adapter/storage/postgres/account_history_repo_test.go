package postgres

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"payment-lifecycle-service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func historyColumnNames() []string {
	return []string{"id", "payment_account_id", "owner_type", "payload", "timestamp"}
}

func TestAccountHistoryRepo_RecordBankUpdate_ServerTimestamp(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAccountHistoryRepo(mock)
	payload := json.RawMessage(`{"old_bank_last4":"1234","new_bank_last4":"5678"}`)
	serverNow := time.Now().UTC().Truncate(time.Microsecond)

	mock.ExpectQuery("INSERT INTO payment_account_edit_history").
		WithArgs(pgxmock.AnyArg(), int64(42), domain.BankUpdateOwnerTypeStore, payload, pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows(historyColumnNames()).
			AddRow(uuid.New(), int64(42), domain.BankUpdateOwnerTypeStore, []byte(payload), serverNow))

	// Caller-supplied timestamp is ignored; the insert assigns its own.
	stored, err := repo.RecordBankUpdate(context.Background(), &domain.PaymentAccountEditHistory{
		PaymentAccountID: 42,
		OwnerType:        domain.BankUpdateOwnerTypeStore,
		Payload:          payload,
		Timestamp:        time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Equal(t, serverNow, stored.Timestamp)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountHistoryRepo_GetMostRecentBankUpdate_WithWindow(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAccountHistoryRepo(mock)
	now := time.Now().UTC().Truncate(time.Microsecond)

	mock.ExpectQuery("SELECT (.+) FROM payment_account_edit_history WHERE payment_account_id = (.+) AND timestamp >").
		WithArgs(int64(42), pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows(historyColumnNames()).
			AddRow(uuid.New(), int64(42), domain.BankUpdateOwnerTypeStore, []byte(`{}`), now))

	within := 24 * time.Hour
	got, err := repo.GetMostRecentBankUpdate(context.Background(), 42, &within)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(42), got.PaymentAccountID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountHistoryRepo_GetMostRecentBankUpdate_None(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAccountHistoryRepo(mock)

	mock.ExpectQuery("SELECT (.+) FROM payment_account_edit_history").
		WithArgs(int64(42)).
		WillReturnRows(pgxmock.NewRows(historyColumnNames()))

	got, err := repo.GetMostRecentBankUpdate(context.Background(), 42, nil)
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestAccountHistoryRepo_ListBankUpdates(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAccountHistoryRepo(mock)
	start := time.Now().UTC().Add(-48 * time.Hour)
	end := time.Now().UTC()

	mock.ExpectQuery("SELECT (.+) FROM payment_account_edit_history").
		WithArgs(int64(42), domain.BankUpdateOwnerTypeStore, start, end).
		WillReturnRows(pgxmock.NewRows(historyColumnNames()).
			AddRow(uuid.New(), int64(42), domain.BankUpdateOwnerTypeStore, []byte(`{}`), start.Add(time.Hour)).
			AddRow(uuid.New(), int64(42), domain.BankUpdateOwnerTypeStore, []byte(`{}`), start.Add(2*time.Hour)))

	entries, err := repo.ListBankUpdates(context.Background(), 42, start, end)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
	assert.True(t, entries[0].Timestamp.Before(entries[1].Timestamp))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountHistoryRepo_ListRecentlyUpdatedAccountIDs(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAccountHistoryRepo(mock)
	since := time.Now().UTC().Add(-time.Hour)

	mock.ExpectQuery("SELECT DISTINCT payment_account_id FROM payment_account_edit_history").
		WithArgs(since).
		WillReturnRows(pgxmock.NewRows([]string{"payment_account_id"}).AddRow(int64(42)).AddRow(int64(43)))

	ids, err := repo.ListRecentlyUpdatedAccountIDs(context.Background(), since)
	require.NoError(t, err)
	assert.Equal(t, []int64{42, 43}, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}
