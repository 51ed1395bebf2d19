package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Retryable  bool   `json:"retryable"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Cart Payment (PAYIN) ----

func ErrInvalidAmount() *AppError {
	return New("PAYIN_001", "Invalid amount", http.StatusBadRequest)
}

func ErrNotFound(entity string) *AppError {
	return New("PAYIN_002", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

func ErrOwnershipMismatch(entity string) *AppError {
	return New("PAYIN_003", fmt.Sprintf("%s does not belong to the caller", entity), http.StatusForbidden)
}

// ErrIdempotencyConflict signals an idempotency key replayed with a payload
// differing from the original request.
func ErrIdempotencyConflict() *AppError {
	return New("PAYIN_004", "Idempotency key reused with a different payload", http.StatusConflict)
}

func ErrPaymentMethodNotFound() *AppError {
	return New("PAYMENT_METHOD_GET_NOT_FOUND", "Payment method not found", http.StatusBadRequest)
}

func ErrPaymentMethodMismatch() *AppError {
	return New("PAYMENT_METHOD_GET_PAYER_PAYMENT_METHOD_MISMATCH",
		"Payment method does not belong to the payer", http.StatusForbidden)
}

// ---- Payout / Transfer (PAYOUT) ----

func ErrInvalidTimeWindow() *AppError {
	return New("PAYOUT_001", "Invalid time window", http.StatusBadRequest)
}

func ErrInvalidStateTransition(from string, op string) *AppError {
	return New("PAYOUT_002",
		fmt.Sprintf("transfer in state %s does not allow %s", from, op),
		http.StatusConflict)
}

// ErrGateway wraps a payout gateway failure. The retryable flag is surfaced
// to the caller so it can decide whether to re-invoke with the same
// idempotency key.
func ErrGateway(retryable bool, err error) *AppError {
	e := Wrap("PAYOUT_003", "Payout gateway error", http.StatusBadGateway, err)
	e.Retryable = retryable
	return e
}

// ---- Authentication (AUTH) ----

func ErrInvalidCredentials() *AppError {
	return New("AUTH_001", "Invalid credentials", http.StatusUnauthorized)
}

func ErrInvalidToken() *AppError {
	return New("AUTH_002", "Invalid or expired token", http.StatusUnauthorized)
}

func ErrClientSuspended() *AppError {
	return New("AUTH_003", "Service client is suspended", http.StatusForbidden)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_001", "Internal database error", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a PAYIN_001-style validation error.
func Validation(message string) *AppError {
	return New("PAYIN_001", message, http.StatusBadRequest)
}
