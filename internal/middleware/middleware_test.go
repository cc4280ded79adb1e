package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var secret = []byte("test-secret")

func newRouter(log *zap.Logger, secret []byte) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestLogger(log))
	r.GET("/open", func(c *gin.Context) { c.String(http.StatusOK, CorrelationIDFromContext(c.Request.Context())) })
	g := r.Group("/tenant", RequireTenant(), RequireTenantToken(secret))
	g.GET("", func(c *gin.Context) { c.String(http.StatusOK, TenantID(c)+"|"+UserID(c)) })
	return r
}

func sign(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	require.NoError(t, err)
	return token
}

func TestRequireTenant(t *testing.T) {
	r := newRouter(zap.NewNop(), nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/tenant", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "tenant-id header is required")

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/tenant", nil)
	req.Header.Set(TenantHeader, " T1 ")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "T1|", w.Body.String())
}

func TestRequireTenantToken(t *testing.T) {
	r := newRouter(zap.NewNop(), secret)

	tests := []struct {
		name   string
		auth   string
		status int
		body   string
	}{
		{"missing", "", http.StatusUnauthorized, ""},
		{"malformed", "Token abc", http.StatusUnauthorized, ""},
		{"bad signature", "Bearer " + func() string {
			tok, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"tenant_id": "T1"}).SignedString([]byte("other"))
			return tok
		}(), http.StatusUnauthorized, ""},
		{"other tenant", "Bearer " + sign(t, jwt.MapClaims{"tenant_id": "T2", "sub": "u1"}), http.StatusForbidden, ""},
		{"no tenant claim", "Bearer " + sign(t, jwt.MapClaims{"sub": "u1"}), http.StatusForbidden, ""},
		{"valid", "Bearer " + sign(t, jwt.MapClaims{"tenant_id": "T1", "sub": "u1"}), http.StatusOK, "T1|u1"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/tenant", nil)
			req.Header.Set(TenantHeader, "T1")
			if tc.auth != "" {
				req.Header.Set("Authorization", tc.auth)
			}
			r.ServeHTTP(w, req)
			assert.Equal(t, tc.status, w.Code)
			if tc.body != "" {
				assert.Equal(t, tc.body, w.Body.String())
			}
		})
	}
}

func TestRequestLogger(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	r := newRouter(zap.New(core), nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/open", nil)
	req.Header.Set(CorrelationIDHeader, "corr-123")
	r.ServeHTTP(w, req)

	assert.Equal(t, "corr-123", w.Header().Get(CorrelationIDHeader))
	assert.Equal(t, "corr-123", w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/tenant", nil))
	assert.NotEmpty(t, w.Header().Get(CorrelationIDHeader))

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, "corr-123", entries[0].ContextMap()["correlation_id"])
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, int64(http.StatusBadRequest), entries[1].ContextMap()["status"])
}
