package postgres

import (
	"context"
	"errors"
	"testing"

	"payment-lifecycle-service/pkg/apperror"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentMethodRepo_Resolve(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPaymentMethodRepo(mock)
	methodID := uuid.New()
	payerID := uuid.New()

	mock.ExpectQuery("SELECT id, payer_id, provider_card_id FROM payment_methods").
		WithArgs(methodID).
		WillReturnRows(pgxmock.NewRows([]string{"id", "payer_id", "provider_card_id"}).
			AddRow(methodID, payerID, "card_123"))

	m, err := repo.Resolve(context.Background(), methodID, payerID)
	require.NoError(t, err)
	assert.Equal(t, "card_123", m.ProviderCardID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentMethodRepo_Resolve_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPaymentMethodRepo(mock)

	mock.ExpectQuery("SELECT id, payer_id, provider_card_id FROM payment_methods").
		WithArgs(pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"id"}))

	_, err = repo.Resolve(context.Background(), uuid.New(), uuid.New())
	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "PAYMENT_METHOD_GET_NOT_FOUND", appErr.Code)
}

func TestPaymentMethodRepo_Resolve_OwnershipMismatch(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPaymentMethodRepo(mock)
	methodID := uuid.New()

	mock.ExpectQuery("SELECT id, payer_id, provider_card_id FROM payment_methods").
		WithArgs(methodID).
		WillReturnRows(pgxmock.NewRows([]string{"id", "payer_id", "provider_card_id"}).
			AddRow(methodID, uuid.New(), "card_123"))

	_, err = repo.Resolve(context.Background(), methodID, uuid.New())
	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "PAYMENT_METHOD_GET_PAYER_PAYMENT_METHOD_MISMATCH", appErr.Code)
}
