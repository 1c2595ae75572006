package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testKey    = "test-signing-key"
	testIssuer = "edusight.test"
)

func protectedRouter(mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	group := router.Group("/", mw...)
	group.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	return router
}

func get(router *gin.Engine, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func signToken(t *testing.T, roles []string, issuer string, expires time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   "teacher@example.com",
		"roles": roles,
		"iss":   issuer,
		"exp":   expires.Unix(),
	})
	signed, err := token.SignedString([]byte(testKey))
	require.NoError(t, err)
	return signed
}

func TestAPIKeyAuth(t *testing.T) {
	router := protectedRouter(APIKeyAuth("secret"))

	assert.Equal(t, http.StatusUnauthorized, get(router, nil).Code)
	assert.Equal(t, http.StatusUnauthorized, get(router, map[string]string{"X-API-Key": "wrong"}).Code)
	assert.Equal(t, http.StatusOK, get(router, map[string]string{"X-API-Key": "secret"}).Code)

	// Empty configured key disables the check.
	open := protectedRouter(APIKeyAuth(""))
	assert.Equal(t, http.StatusOK, get(open, nil).Code)
}

func TestAuthMiddleware(t *testing.T) {
	router := protectedRouter(AuthMiddleware(testKey, testIssuer))

	t.Run("missing header", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, get(router, nil).Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		w := get(router, map[string]string{"Authorization": "Token abc"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		token := signToken(t, []string{"admin"}, testIssuer, time.Now().Add(time.Hour))
		w := get(router, map[string]string{"Authorization": "Bearer " + token})
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		token := signToken(t, []string{"admin"}, testIssuer, time.Now().Add(-time.Hour))
		w := get(router, map[string]string{"Authorization": "Bearer " + token})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		token := signToken(t, []string{"admin"}, "someone-else", time.Now().Add(time.Hour))
		w := get(router, map[string]string{"Authorization": "Bearer " + token})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRoleCheckMiddleware(t *testing.T) {
	auth := AuthMiddleware(testKey, testIssuer)

	t.Run("role present", func(t *testing.T) {
		router := protectedRouter(auth, RoleCheckMiddleware([]string{"admin", "teacher"}))
		token := signToken(t, []string{"teacher"}, testIssuer, time.Now().Add(time.Hour))
		w := get(router, map[string]string{"Authorization": "Bearer " + token})
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("role missing", func(t *testing.T) {
		router := protectedRouter(auth, RoleCheckMiddleware([]string{"admin"}))
		token := signToken(t, []string{"student"}, testIssuer, time.Now().Add(time.Hour))
		w := get(router, map[string]string{"Authorization": "Bearer " + token})
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
