package domain

import (
	"time"

	"github.com/google/uuid"
)

// ServiceClientStatus represents the lifecycle state of a service client.
type ServiceClientStatus string

const (
	ServiceClientStatusActive    ServiceClientStatus = "ACTIVE"
	ServiceClientStatusSuspended ServiceClientStatus = "SUSPENDED"
)

// ServiceClient is an internal caller authorized to use the payment API.
// The secret is stored as an Argon2id hash and exchanged for a short-lived
// bearer token.
type ServiceClient struct {
	ID         uuid.UUID           `json:"id"`
	Name       string              `json:"name"`
	APIKey     string              `json:"api_key"`
	SecretHash string              `json:"-"`
	Status     ServiceClientStatus `json:"status"`
	CreatedAt  time.Time           `json:"created_at"`
	UpdatedAt  time.Time           `json:"updated_at"`
}

// IsActive reports whether the client may authenticate.
func (c *ServiceClient) IsActive() bool {
	return c.Status == ServiceClientStatusActive
}
