package middleware

import (
	"strconv"
	"time"

	"insurance-gateway/internal/core/ports"
	"insurance-gateway/pkg/apperror"
	"insurance-gateway/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Rate limit groups.
const (
	GroupRegistry = "registry"
	GroupPayments = "payments"
	GroupWrites   = "writes"
	GroupReads    = "reads"
)

// RateLimitRule defines a rate limit for an endpoint group.
type RateLimitRule struct {
	Limit  int64
	Window time.Duration
}

// DefaultRateLimitRules returns the per-caller limits of each endpoint group.
func DefaultRateLimitRules() map[string]RateLimitRule {
	return map[string]RateLimitRule{
		GroupRegistry: {Limit: 10, Window: time.Minute},
		GroupPayments: {Limit: 30, Window: time.Minute},
		GroupWrites:   {Limit: 60, Window: time.Minute},
		GroupReads:    {Limit: 300, Window: time.Minute},
	}
}

// RateLimiter creates a rate-limiting middleware for a given endpoint group.
func RateLimiter(store ports.RateLimitStore, group string, rule RateLimitRule, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := extractIdentifier(c) + ":" + group

		result, err := store.Allow(c.Request.Context(), key, rule.Limit, rule.Window)
		if err != nil {
			log.Warn().Err(err).Str("group", group).Msg("rate limit check failed, allowing request (degraded mode)")
			c.Next()
			return
		}

		// Always set rate limit headers
		c.Header("X-RateLimit-Limit", strconv.FormatInt(result.Limit, 10))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(result.Remaining, 10))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt, 10))

		if !result.Allowed {
			retryAfter := result.ResetAt - time.Now().Unix()
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.FormatInt(retryAfter, 10))
			response.Error(c, apperror.ErrRateLimitExceeded())
			c.Abort()
			return
		}

		c.Next()
	}
}

// extractIdentifier keys limits by caller, falling back to the client IP.
func extractIdentifier(c *gin.Context) string {
	if caller, ok := CallerFrom(c); ok {
		return caller.Hex()
	}
	return c.ClientIP()
}
