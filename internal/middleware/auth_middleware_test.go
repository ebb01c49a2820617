package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/JohnrodSosmena1/SAL-SURE-Payroll-System/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

const testSecret = "unit-test-secret"

func signToken(t *testing.T, secret, username, role string, ttl time.Duration) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"username": username,
		"role":     role,
		"exp":      time.Now().Add(ttl).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func protectedRouter(extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	handlers := []gin.HandlerFunc{middleware.AuthRequired(testSecret)}
	handlers = append(handlers, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"username": c.GetString("username"),
			"role":     c.GetString("role"),
		})
	})

	r.GET("/protected", handlers...)
	return r
}

func get(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthRequired(t *testing.T) {
	t.Run("valid token populates the principal", func(t *testing.T) {
		r := protectedRouter()
		token := signToken(t, testSecret, "jane.doe", "employee", time.Hour)

		w := get(r, token)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"username":"jane.doe"`)
		assert.Contains(t, w.Body.String(), `"role":"employee"`)
	})

	t.Run("missing token is rejected", func(t *testing.T) {
		r := protectedRouter()
		w := get(r, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("token signed with another secret is rejected", func(t *testing.T) {
		r := protectedRouter()
		token := signToken(t, "another-secret", "jane.doe", "employee", time.Hour)

		w := get(r, token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		r := protectedRouter()
		token := signToken(t, testSecret, "jane.doe", "employee", -time.Minute)

		w := get(r, token)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "expired")
	})

	t.Run("token without username is rejected", func(t *testing.T) {
		r := protectedRouter()
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"role": "employee",
			"exp":  time.Now().Add(time.Hour).Unix(),
		})
		signed, err := token.SignedString([]byte(testSecret))
		require.NoError(t, err)

		w := get(r, signed)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRequireRole(t *testing.T) {
	t.Run("allowed role passes", func(t *testing.T) {
		r := protectedRouter(middleware.RequireRole("admin"))
		token := signToken(t, testSecret, "admin", "admin", time.Hour)

		w := get(r, token)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("other role is forbidden", func(t *testing.T) {
		r := protectedRouter(middleware.RequireRole("admin"))
		token := signToken(t, testSecret, "jane.doe", "employee", time.Hour)

		w := get(r, token)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestRateLimitByUser(t *testing.T) {
	t.Run("burst exhausted returns 429", func(t *testing.T) {
		r := protectedRouter(middleware.RateLimitByUser(rate.Limit(0.0001), 2))
		token := signToken(t, testSecret, "jane.doe", "employee", time.Hour)

		assert.Equal(t, http.StatusOK, get(r, token).Code)
		assert.Equal(t, http.StatusOK, get(r, token).Code)
		assert.Equal(t, http.StatusTooManyRequests, get(r, token).Code)
	})

	t.Run("buckets are per user", func(t *testing.T) {
		r := protectedRouter(middleware.RateLimitByUser(rate.Limit(0.0001), 1))
		jane := signToken(t, testSecret, "jane.doe", "employee", time.Hour)
		bob := signToken(t, testSecret, "bob.ray", "employee", time.Hour)

		assert.Equal(t, http.StatusOK, get(r, jane).Code)
		assert.Equal(t, http.StatusTooManyRequests, get(r, jane).Code)
		assert.Equal(t, http.StatusOK, get(r, bob).Code)
	})
}
