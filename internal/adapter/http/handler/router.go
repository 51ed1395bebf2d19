package handler

import (
	"payment-lifecycle-service/internal/adapter/http/middleware"
	redisStore "payment-lifecycle-service/internal/adapter/storage/redis"
	"payment-lifecycle-service/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	AuthSvc        ports.AuthService
	CartPaymentSvc ports.CartPaymentProcessor
	TransferSvc    ports.TransferProcessor
	HistorySvc     ports.AccountHistoryService
	TokenSvc       ports.TokenService
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Deep health check, verifies PostgreSQL and Redis connectivity
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	// API v1 routes
	v1 := r.Group("/api/v1")

	// --- Public routes (no auth) ---
	authHandler := NewAuthHandler(deps.AuthSvc)
	auth := v1.Group("/auth")
	{
		auth.POST("/clients", rl("auth_register"), authHandler.Register)
		auth.POST("/token", rl("auth_token"), authHandler.Token)
	}

	// --- JWT-authenticated routes (service clients) ---
	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)

	cartPaymentHandler := NewCartPaymentHandler(deps.CartPaymentSvc)
	cartPayments := v1.Group("/cart_payments", jwtAuth)
	{
		cartPayments.POST("", rl("cart_payments"), cartPaymentHandler.Create)
		cartPayments.POST("/:id/adjust", rl("cart_payments"), cartPaymentHandler.Adjust)
	}

	transferHandler := NewTransferHandler(deps.TransferSvc)
	transfers := v1.Group("/transfers", jwtAuth)
	{
		transfers.POST("", rl("transfers"), transferHandler.Create)
		transfers.POST("/:id/submit", rl("transfers_submit"), transferHandler.Submit)
	}

	accountHandler := NewAccountHandler(deps.HistorySvc)
	accounts := v1.Group("/payment_accounts", jwtAuth)
	{
		accounts.POST("/bank_updates", rl("accounts"), accountHandler.RecordBankUpdate)
		accounts.GET("/bank_updates/recent", rl("accounts"), accountHandler.ListRecentlyUpdatedAccounts)
		accounts.GET("/:id/bank_updates", rl("accounts"), accountHandler.ListBankUpdates)
		accounts.GET("/:id/bank_updates/latest", rl("accounts"), accountHandler.GetMostRecentBankUpdate)
	}

	return r
}
