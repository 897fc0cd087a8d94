package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"insurance-gateway/internal/core/ports"
	"insurance-gateway/internal/core/ports/mocks"
	"insurance-gateway/pkg/apperror"
	"insurance-gateway/pkg/response"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testCaller = common.HexToAddress("0x5B38Da6a701c568545dCfcB03FcB875f56beddC4")

func init() {
	gin.SetMode(gin.TestMode)
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) response.ErrorResponse {
	t.Helper()
	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

// withCaller stands in for JWTAuth in tests of downstream middleware.
func withCaller(caller common.Address) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(CtxCaller, caller)
		c.Next()
	}
}

func TestJWTAuth_MissingHeader(t *testing.T) {
	ctrl := gomock.NewController(t)
	tokenSvc := mocks.NewMockTokenService(ctrl)

	router := gin.New()
	router.GET("/test", JWTAuth(tokenSvc, zerolog.Nop()), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, apperror.CodeInvalidToken, decodeError(t, w).ErrorCode)
}

func TestJWTAuth_NotBearer(t *testing.T) {
	ctrl := gomock.NewController(t)
	tokenSvc := mocks.NewMockTokenService(ctrl)

	router := gin.New()
	router.GET("/test", JWTAuth(tokenSvc, zerolog.Nop()), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(HeaderAuthorization, "Basic dXNlcjpwYXNz")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_InvalidToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	tokenSvc := mocks.NewMockTokenService(ctrl)
	tokenSvc.EXPECT().Validate("bad-token").Return(nil, errors.New("signature is invalid"))

	router := gin.New()
	router.GET("/test", JWTAuth(tokenSvc, zerolog.Nop()), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(HeaderAuthorization, "Bearer bad-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, apperror.CategoryAuth, decodeError(t, w).Category)
}

func TestJWTAuth_SetsCaller(t *testing.T) {
	ctrl := gomock.NewController(t)
	tokenSvc := mocks.NewMockTokenService(ctrl)
	tokenSvc.EXPECT().Validate("good-token").Return(&ports.TokenClaims{Caller: testCaller}, nil)

	var got common.Address
	router := gin.New()
	router.GET("/test", JWTAuth(tokenSvc, zerolog.Nop()), func(c *gin.Context) {
		got, _ = CallerFrom(c)
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(HeaderAuthorization, "Bearer good-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, testCaller, got)
}

func TestCallerFrom_Missing(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	_, ok := CallerFrom(c)
	assert.False(t, ok)

	c.Set(CtxCaller, "not-an-address")
	_, ok = CallerFrom(c)
	assert.False(t, ok)
}

func setupReplayRouter(store ports.NonceStore) *gin.Engine {
	router := gin.New()
	router.POST("/test", withCaller(testCaller), ReplayGuard(store, zerolog.Nop()), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return router
}

func TestReplayGuard_MissingNonce(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockNonceStore(ctrl)

	w := httptest.NewRecorder()
	setupReplayRouter(store).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/test", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, apperror.CodeValidation, decodeError(t, w).ErrorCode)
}

func TestReplayGuard_UnsafeNonce(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockNonceStore(ctrl)

	req := httptest.NewRequest(http.MethodPost, "/test", nil)
	req.Header.Set(HeaderNonce, "abc;DROP TABLE")
	w := httptest.NewRecorder()
	setupReplayRouter(store).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReplayGuard_FreshNonce(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockNonceStore(ctrl)
	store.EXPECT().CheckAndSet(gomock.Any(), testCaller.Hex(), "nonce-001", nonceTTL).Return(true, nil)

	req := httptest.NewRequest(http.MethodPost, "/test", nil)
	req.Header.Set(HeaderNonce, "nonce-001")
	w := httptest.NewRecorder()
	setupReplayRouter(store).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestReplayGuard_ReusedNonce(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockNonceStore(ctrl)
	store.EXPECT().CheckAndSet(gomock.Any(), testCaller.Hex(), "nonce-001", nonceTTL).Return(false, nil)

	req := httptest.NewRequest(http.MethodPost, "/test", nil)
	req.Header.Set(HeaderNonce, "nonce-001")
	w := httptest.NewRecorder()
	setupReplayRouter(store).ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, apperror.CodeNonceUsed, decodeError(t, w).ErrorCode)
}

func TestReplayGuard_StoreErrorAllows(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockNonceStore(ctrl)
	store.EXPECT().CheckAndSet(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(false, errors.New("connection refused"))

	req := httptest.NewRequest(http.MethodPost, "/test", nil)
	req.Header.Set(HeaderNonce, "nonce-002")
	w := httptest.NewRecorder()
	setupReplayRouter(store).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestReplayGuard_NoCaller(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockNonceStore(ctrl)

	router := gin.New()
	router.POST("/test", ReplayGuard(store, zerolog.Nop()), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	req := httptest.NewRequest(http.MethodPost, "/test", nil)
	req.Header.Set(HeaderNonce, "nonce-003")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequestID(t *testing.T) {
	router := gin.New()
	router.Use(RequestID())
	router.GET("/test", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(response.CtxRequestID))
	})

	t.Run("propagates header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set(HeaderRequestID, "req-123")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, "req-123", w.Body.String())
		assert.Equal(t, "req-123", w.Header().Get(HeaderRequestID))
	})

	t.Run("generates when absent", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

		assert.Len(t, w.Body.String(), 36)
		assert.Equal(t, w.Body.String(), w.Header().Get(HeaderRequestID))
	})

	t.Run("replaces unsafe header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set(HeaderRequestID, "<script>")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.NotEqual(t, "<script>", w.Body.String())
	})
}

func TestRecovery(t *testing.T) {
	router := gin.New()
	router.Use(Recovery(zerolog.Nop()))
	router.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, apperror.CodeInternal, decodeError(t, w).ErrorCode)
}

func TestRequestLogger(t *testing.T) {
	router := gin.New()
	router.Use(RequestLogger(zerolog.Nop()))
	router.GET("/ok", withCaller(testCaller), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	router.GET("/fail", func(c *gin.Context) {
		time.Sleep(time.Millisecond)
		c.Status(http.StatusInternalServerError)
	})

	for path, code := range map[string]int{"/ok": http.StatusOK, "/fail": http.StatusInternalServerError} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, code, w.Code)
	}
}
