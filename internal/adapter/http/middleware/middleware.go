package middleware

import (
	"net/http"
	"strings"
	"time"

	"insurance-gateway/internal/adapter/http/dto"
	"insurance-gateway/internal/core/ports"
	"insurance-gateway/pkg/apperror"
	"insurance-gateway/pkg/response"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	HeaderAuthorization = "Authorization"
	HeaderNonce         = "X-Nonce"
	HeaderRequestID     = "X-Request-ID"

	// Nonce TTL (120 seconds)
	nonceTTL = 120 * time.Second

	// Context keys
	CtxCaller = "caller"
)

// CallerFrom returns the authenticated caller set by JWTAuth.
func CallerFrom(c *gin.Context) (common.Address, bool) {
	v, ok := c.Get(CtxCaller)
	if !ok {
		return common.Address{}, false
	}
	caller, ok := v.(common.Address)
	return caller, ok
}

// JWTAuth validates the bearer token and binds the caller principal to the request.
func JWTAuth(tokenSvc ports.TokenService, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, ok := strings.CutPrefix(c.GetHeader(HeaderAuthorization), "Bearer ")
		if !ok || tokenStr == "" {
			response.Error(c, apperror.ErrInvalidToken())
			c.Abort()
			return
		}

		claims, err := tokenSvc.Validate(tokenStr)
		if err != nil {
			log.Debug().Err(err).Str("path", c.Request.URL.Path).Msg("token rejected")
			response.Error(c, apperror.ErrInvalidToken())
			c.Abort()
			return
		}

		c.Set(CtxCaller, claims.Caller)
		c.Next()
	}
}

// ReplayGuard rejects value-bearing requests whose X-Nonce was already used by the same caller.
// A failing nonce store lets the request through.
func ReplayGuard(nonceStore ports.NonceStore, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		nonce := c.GetHeader(HeaderNonce)
		if !dto.IsSafeID(nonce) {
			response.Error(c, apperror.Validation("X-Nonce header is required"))
			c.Abort()
			return
		}

		caller, ok := CallerFrom(c)
		if !ok {
			response.Error(c, apperror.ErrInvalidToken())
			c.Abort()
			return
		}

		isNew, err := nonceStore.CheckAndSet(c.Request.Context(), caller.Hex(), nonce, nonceTTL)
		if err != nil {
			log.Warn().Err(err).Msg("nonce store error, allowing request")
		} else if !isNew {
			response.Error(c, apperror.ErrNonceUsed())
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequestID propagates X-Request-ID, generating one when absent.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if !dto.IsSafeID(id) {
			id = uuid.New().String()
		}
		c.Set(response.CtxRequestID, id)
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}

// RequestLogger creates a middleware that logs every HTTP request.
func RequestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		status := c.Writer.Status()

		event := log.Info()
		if status >= http.StatusInternalServerError {
			event = log.Error()
		} else if status >= http.StatusBadRequest {
			event = log.Warn()
		}

		if caller, ok := CallerFrom(c); ok {
			event = event.Str("caller", caller.Hex())
		}
		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", latency).
			Str("client_ip", c.ClientIP()).
			Str("request_id", c.GetString(response.CtxRequestID)).
			Msg("http request")
	}
}

// Recovery creates a panic recovery middleware.
func Recovery(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().Interface("panic", r).Str("path", c.Request.URL.Path).Msg("panic recovered")
				response.Error(c, apperror.New(apperror.CodeInternal, "Internal server error", http.StatusInternalServerError))
				c.Abort()
			}
		}()
		c.Next()
	}
}
