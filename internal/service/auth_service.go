package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"payment-lifecycle-service/internal/core/domain"
	"payment-lifecycle-service/internal/core/ports"
	"payment-lifecycle-service/pkg/apperror"

	"github.com/google/uuid"
)

// AuthServiceImpl implements ports.AuthService.
type AuthServiceImpl struct {
	clientRepo ports.ServiceClientRepository
	hashSvc    ports.HashService
	tokenSvc   ports.TokenService
}

// NewAuthService creates a new AuthServiceImpl.
func NewAuthService(
	clientRepo ports.ServiceClientRepository,
	hashSvc ports.HashService,
	tokenSvc ports.TokenService,
) *AuthServiceImpl {
	return &AuthServiceImpl{
		clientRepo: clientRepo,
		hashSvc:    hashSvc,
		tokenSvc:   tokenSvc,
	}
}

// Register creates a new service client. The plaintext secret is returned
// once and only its Argon2id hash is stored.
func (s *AuthServiceImpl) Register(ctx context.Context, name string) (*ports.RegisterClientResponse, error) {
	if name == "" {
		return nil, apperror.Validation("client name is required")
	}

	apiKey, err := generateRandomHex(32) // 64 hex chars
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("generate api key: %w", err))
	}

	secret, err := generateRandomHex(32)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("generate secret: %w", err))
	}

	secretHash, err := s.hashSvc.Hash(secret)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("hash secret: %w", err))
	}

	now := time.Now().UTC()
	client := &domain.ServiceClient{
		ID:         uuid.New(),
		Name:       name,
		APIKey:     apiKey,
		SecretHash: secretHash,
		Status:     domain.ServiceClientStatusActive,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.clientRepo.Create(ctx, client); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create service client: %w", err))
	}

	return &ports.RegisterClientResponse{
		ClientID: client.ID,
		APIKey:   apiKey,
		Secret:   secret,
	}, nil
}

// IssueToken validates the api key/secret pair and returns a bearer token.
func (s *AuthServiceImpl) IssueToken(ctx context.Context, apiKey, secret string) (string, time.Time, error) {
	client, err := s.clientRepo.GetByAPIKey(ctx, apiKey)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("find service client: %w", err))
	}
	if client == nil {
		return "", time.Time{}, apperror.ErrInvalidCredentials()
	}

	valid, err := s.hashSvc.Verify(secret, client.SecretHash)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("verify secret: %w", err))
	}
	if !valid {
		return "", time.Time{}, apperror.ErrInvalidCredentials()
	}

	if !client.IsActive() {
		return "", time.Time{}, apperror.ErrClientSuspended()
	}

	token, expiry, err := s.tokenSvc.Generate(client.ID, client.APIKey)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("generate token: %w", err))
	}

	return token, expiry, nil
}

// generateRandomHex generates a random hex string of n bytes.
func generateRandomHex(n int) (string, error) {
	bytes := make([]byte, n)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}
