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

func signToken(t *testing.T, secret, userID string, expiry time.Duration) string {
	t.Helper()
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", JWTAuthMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userId": c.GetString("userId")})
	})
	return router
}

func TestJWTAuthMiddleware(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	router := testRouter()

	tests := []struct {
		name           string
		header         string
		query          string
		expectedStatus int
	}{
		{
			name:           "valid bearer token",
			header:         "Bearer " + signToken(t, "test-secret", "user-1", time.Hour),
			expectedStatus: http.StatusOK,
		},
		{
			name:           "token via query parameter",
			query:          "?token=" + signToken(t, "test-secret", "user-1", time.Hour),
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing token",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "malformed header",
			header:         "Token abc",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "wrong secret",
			header:         "Bearer " + signToken(t, "other-secret", "user-1", time.Hour),
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "expired token",
			header:         "Bearer " + signToken(t, "test-secret", "user-1", -time.Hour),
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected"+tt.query, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				assert.Contains(t, w.Body.String(), "user-1")
			}
		})
	}
}
