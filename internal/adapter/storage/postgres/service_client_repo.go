package postgres

import (
	"context"
	"errors"
	"fmt"

	"payment-lifecycle-service/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// ServiceClientRepo implements ports.ServiceClientRepository.
type ServiceClientRepo struct {
	pool Pool
}

// NewServiceClientRepo creates a new ServiceClientRepo.
func NewServiceClientRepo(pool Pool) *ServiceClientRepo {
	return &ServiceClientRepo{pool: pool}
}

// Create inserts a new service client.
func (r *ServiceClientRepo) Create(ctx context.Context, c *domain.ServiceClient) error {
	query := `INSERT INTO service_clients (id, name, api_key, secret_hash, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.pool.Exec(ctx, query,
		c.ID, c.Name, c.APIKey, c.SecretHash, c.Status, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert service client: %w", mapInsertError(err))
	}
	return nil
}

// GetByAPIKey fetches a service client by API key, or nil when unknown.
func (r *ServiceClientRepo) GetByAPIKey(ctx context.Context, apiKey string) (*domain.ServiceClient, error) {
	query := `SELECT id, name, api_key, secret_hash, status, created_at, updated_at
		FROM service_clients WHERE api_key = $1`

	c := &domain.ServiceClient{}
	err := r.pool.QueryRow(ctx, query, apiKey).Scan(
		&c.ID, &c.Name, &c.APIKey, &c.SecretHash, &c.Status, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get service client: %w", err)
	}
	return c, nil
}
