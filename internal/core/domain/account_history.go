package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// BankUpdateOwnerType identifies what kind of owner a payment account
// belongs to.
type BankUpdateOwnerType string

const (
	BankUpdateOwnerTypeStore BankUpdateOwnerType = "STORE"
	BankUpdateOwnerTypeDSP   BankUpdateOwnerType = "DSP"
)

// PaymentAccountEditHistory is one append-only audit entry for a payment
// account edit. The timestamp is assigned server-side at insert; rows are
// never mutated or deleted.
type PaymentAccountEditHistory struct {
	ID               uuid.UUID           `json:"id"`
	PaymentAccountID int64               `json:"payment_account_id"`
	OwnerType        BankUpdateOwnerType `json:"owner_type"`
	Payload          json.RawMessage     `json:"payload"`
	Timestamp        time.Time           `json:"timestamp"`
}
