package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/italoandres/eshop-backend/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authTestRouter(security *config.SecurityConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/admin", AdminRequired(security), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"principal": Principal(c)})
	})
	return router
}

func signAdminJWT(t *testing.T, secret, principal, role string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, AdminClaims{
		Principal: principal,
		Role:      role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestAdminRequired(t *testing.T) {
	security := &config.SecurityConfig{
		AdminToken: "static-admin-token",
		JWTSecret:  "jwt-secret",
	}
	router := authTestRouter(security)

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{name: "missing header", authHeader: "", wantStatus: http.StatusUnauthorized},
		{name: "not a bearer token", authHeader: "Basic abc", wantStatus: http.StatusUnauthorized},
		{name: "empty bearer token", authHeader: "Bearer ", wantStatus: http.StatusUnauthorized},
		{name: "wrong token", authHeader: "Bearer nope", wantStatus: http.StatusForbidden},
		{name: "static admin token", authHeader: "Bearer static-admin-token", wantStatus: http.StatusOK},
		{
			name:       "signed admin jwt",
			authHeader: "Bearer " + signAdminJWT(t, "jwt-secret", "ops@example.com", "admin"),
			wantStatus: http.StatusOK,
		},
		{
			name:       "jwt without admin role",
			authHeader: "Bearer " + signAdminJWT(t, "jwt-secret", "user@example.com", "customer"),
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "jwt signed with wrong secret",
			authHeader: "Bearer " + signAdminJWT(t, "other-secret", "ops@example.com", "admin"),
			wantStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestAdminRequiredExpiredJWT(t *testing.T) {
	security := &config.SecurityConfig{JWTSecret: "jwt-secret"}
	router := authTestRouter(security)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, AdminClaims{
		Role: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	})
	signed, err := token.SignedString([]byte("jwt-secret"))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestPrincipalFromJWT(t *testing.T) {
	security := &config.SecurityConfig{JWTSecret: "jwt-secret"}
	router := authTestRouter(security)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+signAdminJWT(t, "jwt-secret", "ops@example.com", "admin"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ops@example.com")
}
