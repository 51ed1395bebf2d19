package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"payment-lifecycle-service/config"
	stripeGateway "payment-lifecycle-service/internal/adapter/gateway/stripe"
	httpHandler "payment-lifecycle-service/internal/adapter/http/handler"
	pgStorage "payment-lifecycle-service/internal/adapter/storage/postgres"
	redisStorage "payment-lifecycle-service/internal/adapter/storage/redis"
	"payment-lifecycle-service/internal/core/ports"
	"payment-lifecycle-service/internal/service"
	"payment-lifecycle-service/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting Payment Lifecycle Service")

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize repositories
	cartPaymentRepo := pgStorage.NewCartPaymentRepo(pool)
	paymentMethodRepo := pgStorage.NewPaymentMethodRepo(pool)
	transferRepo := pgStorage.NewTransferRepo(pool)
	payableItemRepo := pgStorage.NewPayableItemRepo(pool)
	payoutRequestRepo := pgStorage.NewPayoutRequestRepo(pool)
	historyRepo := pgStorage.NewAccountHistoryRepo(pool)
	clientRepo := pgStorage.NewServiceClientRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	// Initialize Redis stores
	idempotencyCache := redisStorage.NewIdempotencyCache(rdb)

	// Initialize payout gateway client
	gateway := stripeGateway.NewClient(
		cfg.Gateway.BaseURL,
		cfg.Gateway.APIKey,
		&http.Client{Timeout: cfg.Gateway.Timeout},
		log,
	)

	// Initialize core services
	hashSvc := service.NewArgon2HashService()
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)

	// Initialize business services
	authSvc := service.NewAuthService(clientRepo, hashSvc, tokenSvc)
	cartPaymentSvc := service.NewCartPaymentService(
		cartPaymentRepo,
		paymentMethodRepo,
		gateway,
		idempotencyCache,
		transactor,
		log,
	)
	transferSvc := service.NewTransferService(
		transferRepo,
		payableItemRepo,
		payoutRequestRepo,
		gateway,
		transactor,
		cfg.Payout.MinAmount,
		log,
	)
	historySvc := service.NewAccountHistoryService(historyRepo, log)

	// Initialize rate limit store
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		AuthSvc:        authSvc,
		CartPaymentSvc: cartPaymentSvc,
		TransferSvc:    transferSvc,
		HistorySvc:     historySvc,
		TokenSvc:       tokenSvc,
		RateLimitStore: rateLimitStore,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
