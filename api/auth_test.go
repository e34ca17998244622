package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const testJwtSecret = "test-secret"

func signedToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func runAuthMiddleware(t *testing.T, authHeader string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/portfolios", nil)
	if authHeader != "" {
		c.Request.Header.Set("Authorization", authHeader)
	}

	handler := ApiHandler{JwtSecret: testJwtSecret}
	handler.authMiddleware(c)
	return c, w
}

func TestAuthMiddleware(t *testing.T) {
	t.Run("valid token sets the caller's user id", func(t *testing.T) {
		userID := uuid.New()
		token := signedToken(t, testJwtSecret, jwt.MapClaims{"sub": userID.String()})

		c, _ := runAuthMiddleware(t, "Bearer "+token)

		require.False(t, c.IsAborted())
		callerID, ok := callerUserID(c)
		require.True(t, ok)
		require.Equal(t, userID, callerID)
	})

	t.Run("missing header", func(t *testing.T) {
		c, w := runAuthMiddleware(t, "")
		require.True(t, c.IsAborted())
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		c, w := runAuthMiddleware(t, "Token abc")
		require.True(t, c.IsAborted())
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token := signedToken(t, "other-secret", jwt.MapClaims{"sub": uuid.New().String()})
		c, w := runAuthMiddleware(t, "Bearer "+token)
		require.True(t, c.IsAborted())
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("subject is not a uuid", func(t *testing.T) {
		token := signedToken(t, testJwtSecret, jwt.MapClaims{"sub": "not-a-uuid"})
		c, w := runAuthMiddleware(t, "Bearer "+token)
		require.True(t, c.IsAborted())
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("missing subject", func(t *testing.T) {
		token := signedToken(t, testJwtSecret, jwt.MapClaims{})
		c, w := runAuthMiddleware(t, "Bearer "+token)
		require.True(t, c.IsAborted())
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRequireOwner(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("caller owns the resource", func(t *testing.T) {
		userID := uuid.New()
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Set(userAccountIDKey, userID)

		require.True(t, requireOwner(c, userID))
	})

	t.Run("caller does not own the resource", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Set(userAccountIDKey, uuid.New())

		require.False(t, requireOwner(c, uuid.New()))
		require.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("missing authentication context", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		require.False(t, requireOwner(c, uuid.New()))
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
