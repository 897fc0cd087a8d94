package handler

import (
	"net/http"

	"insurance-gateway/internal/adapter/http/middleware"
	"insurance-gateway/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const maxBodyBytes = 1 << 20 // 1 MB request body limit

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	PolicyRegistry ports.PolicyRegistry
	WalletRegistry ports.WalletRegistry
	ReportingSvc   ports.ReportingService
	TokenSvc       ports.TokenService
	NonceStore     ports.NonceStore     // nil = replay guard disabled
	RateLimitStore ports.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	AuditSvc       ports.AuditService // nil = audit logging disabled
	MetricsHandler http.Handler       // nil = no metrics endpoint
	MetricsPath    string
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(maxBodyBytes))

	// Audit logging (after response)
	if deps.AuditSvc != nil {
		r.Use(middleware.AuditLog(deps.AuditSvc))
	}

	// Health check (deep: PostgreSQL, plus Redis when enabled)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	if deps.MetricsHandler != nil {
		path := deps.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		r.GET(path, gin.WrapH(deps.MetricsHandler))
	}

	rules := middleware.DefaultRateLimitRules()
	noop := func(c *gin.Context) { c.Next() }

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return noop
		}
		rule, ok := rules[group]
		if !ok {
			return noop
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	replay := gin.HandlerFunc(noop)
	if deps.NonceStore != nil {
		replay = middleware.ReplayGuard(deps.NonceStore, deps.Logger)
	}

	v1 := r.Group("/api/v1", middleware.JWTAuth(deps.TokenSvc, deps.Logger))

	insuranceHandler := NewInsuranceHandler(deps.PolicyRegistry)
	insurance := v1.Group("/insurance")
	{
		insurance.POST("", rl(middleware.GroupRegistry), insuranceHandler.Create)
		insurance.GET("", rl(middleware.GroupReads), insuranceHandler.List)
		insurance.GET("/owners/:owner", rl(middleware.GroupReads), insuranceHandler.GetByOwner)
		insurance.GET("/:ref/verifier", rl(middleware.GroupReads), insuranceHandler.Verifier)
		insurance.GET("/:ref/users/:address", rl(middleware.GroupReads), insuranceHandler.Users)
		insurance.POST("/:ref/collateral", rl(middleware.GroupWrites), insuranceHandler.SetCollateralValue)
		insurance.PUT("/:ref/collateral/status", rl(middleware.GroupWrites), insuranceHandler.SetCollateralStatus)
		insurance.POST("/:ref/collateral/approve", rl(middleware.GroupWrites), insuranceHandler.ApproveCollateral)
		insurance.POST("/:ref/premiums/category-a", rl(middleware.GroupPayments), replay, insuranceHandler.PayPremiumCategoryA)
		insurance.POST("/:ref/premiums/category-b", rl(middleware.GroupPayments), replay, insuranceHandler.PayPremiumCategoryB)
	}

	walletHandler := NewWalletHandler(deps.WalletRegistry)
	wallets := v1.Group("/wallets")
	{
		wallets.POST("", rl(middleware.GroupRegistry), walletHandler.Create)
		wallets.GET("", rl(middleware.GroupReads), walletHandler.List)
		wallets.GET("/owners/:owner", rl(middleware.GroupReads), walletHandler.GetByOwner)
		wallets.GET("/:ref/verifier", rl(middleware.GroupReads), walletHandler.Verifier)
		wallets.GET("/:ref/users/:address", rl(middleware.GroupReads), walletHandler.Users)
		wallets.GET("/:ref/claims/:address", rl(middleware.GroupReads), walletHandler.Claims)
		wallets.POST("/:ref/package", rl(middleware.GroupPayments), replay, walletHandler.SelectPackage)
		wallets.POST("/:ref/premiums", rl(middleware.GroupPayments), replay, walletHandler.PayPremium)
		wallets.POST("/:ref/claims", rl(middleware.GroupWrites), walletHandler.SubmitClaim)
		wallets.POST("/:ref/claims/:target/approve", rl(middleware.GroupWrites), walletHandler.ApproveClaim)
		wallets.POST("/:ref/claims/:target/reject", rl(middleware.GroupWrites), walletHandler.RejectClaim)
		wallets.POST("/:ref/cancel", rl(middleware.GroupWrites), walletHandler.CancelInsurance)
	}

	ledgerHandler := NewLedgerHandler(deps.ReportingSvc)
	v1.GET("/accounts/:address/balance", rl(middleware.GroupReads), ledgerHandler.GetBalance)
	v1.GET("/transfers", rl(middleware.GroupReads), ledgerHandler.ListTransfers)

	return r
}
