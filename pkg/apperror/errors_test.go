package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	e := New("PAYIN_001", "Invalid amount", http.StatusBadRequest)
	assert.Equal(t, "[PAYIN_001] Invalid amount", e.Error())

	wrapped := Wrap("SYS_001", "Internal database error", http.StatusInternalServerError, errors.New("conn refused"))
	assert.Equal(t, "[SYS_001] Internal database error: conn refused", wrapped.Error())
}

func TestAppError_Unwrap(t *testing.T) {
	inner := errors.New("boom")
	e := InternalError(fmt.Errorf("commit tx: %w", inner))
	assert.True(t, errors.Is(e, inner))
}

func TestAppError_As(t *testing.T) {
	var appErr *AppError
	err := fmt.Errorf("handler: %w", ErrIdempotencyConflict())
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "PAYIN_004", appErr.Code)
	assert.Equal(t, http.StatusConflict, appErr.HTTPStatus)
	assert.False(t, appErr.Retryable)
}

func TestErrGateway_RetryableFlag(t *testing.T) {
	retryable := ErrGateway(true, errors.New("503 from provider"))
	assert.True(t, retryable.Retryable)
	assert.Equal(t, http.StatusBadGateway, retryable.HTTPStatus)

	terminal := ErrGateway(false, errors.New("account disabled"))
	assert.False(t, terminal.Retryable)
	assert.Equal(t, "PAYOUT_003", terminal.Code)
}

func TestPaymentMethodErrorCodes(t *testing.T) {
	assert.Equal(t, "PAYMENT_METHOD_GET_NOT_FOUND", ErrPaymentMethodNotFound().Code)
	assert.Equal(t, http.StatusBadRequest, ErrPaymentMethodNotFound().HTTPStatus)
	assert.Equal(t, "PAYMENT_METHOD_GET_PAYER_PAYMENT_METHOD_MISMATCH", ErrPaymentMethodMismatch().Code)
	assert.Equal(t, http.StatusForbidden, ErrPaymentMethodMismatch().HTTPStatus)
}

func TestErrInvalidStateTransition(t *testing.T) {
	e := ErrInvalidStateTransition("CREATED", "retry")
	assert.Equal(t, "PAYOUT_002", e.Code)
	assert.Contains(t, e.Message, "CREATED")
	assert.Contains(t, e.Message, "retry")
}
