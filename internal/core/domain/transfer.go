package domain

import (
	"time"

	"github.com/google/uuid"
)

// TransferType classifies how a transfer was initiated.
type TransferType string

const (
	TransferTypeScheduled TransferType = "SCHEDULED"
	TransferTypeManual    TransferType = "MANUAL"
)

// TransferStatus is the transfer lifecycle state machine:
//
//	CREATED -> SUBMITTING -> SUBMITTED (terminal)
//	CREATED/SUBMITTING -> ERROR, retry moves ERROR -> SUBMITTING
//	SKIPPED is terminal and assigned at creation for below-threshold payouts.
type TransferStatus string

const (
	TransferStatusCreated    TransferStatus = "CREATED"
	TransferStatusSubmitting TransferStatus = "SUBMITTING"
	TransferStatusSubmitted  TransferStatus = "SUBMITTED"
	TransferStatusError      TransferStatus = "ERROR"
	TransferStatusSkipped    TransferStatus = "SKIPPED"
)

// Transfer is a movement of aggregated funds from the platform to a payout
// account over a half-open time window [StartTime, EndTime).
type Transfer struct {
	ID               uuid.UUID      `json:"id"`
	PayoutAccountID  int64          `json:"payout_account_id"`
	TransferType     TransferType   `json:"transfer_type"`
	Amount           int64          `json:"amount"`
	Currency         string         `json:"currency"`
	StartTime        time.Time      `json:"start_time"`
	EndTime          time.Time      `json:"end_time"`
	TargetID         *string        `json:"target_id,omitempty"`
	TargetType       *string        `json:"target_type,omitempty"`
	TargetBusinessID *int64         `json:"target_business_id,omitempty"`
	PayoutCountries  []string       `json:"payout_countries"`
	Status           TransferStatus `json:"status"`
	CreatedByID      int64          `json:"created_by_id"`
	SubmittedByID    *int64         `json:"submitted_by_id,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

// IsTerminal reports whether the transfer reached a final state.
func (t *Transfer) IsTerminal() bool {
	return t.Status == TransferStatusSubmitted || t.Status == TransferStatusSkipped
}

// CanSubmit reports whether a first-time submission is allowed.
func (t *Transfer) CanSubmit() bool {
	return t.Status == TransferStatusCreated
}

// CanRetry reports whether an explicit retry is allowed.
func (t *Transfer) CanRetry() bool {
	return t.Status == TransferStatusError
}

// PayableItem is a single payable line item owed to a payout account.
// Once attached to a transfer it is excluded from future aggregations.
type PayableItem struct {
	ID              uuid.UUID  `json:"id"`
	PayoutAccountID int64      `json:"payout_account_id"`
	Amount          int64      `json:"amount"`
	Country         string     `json:"country"`
	TransferID      *uuid.UUID `json:"transfer_id,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}
