package middleware

import (
	"strings"

	"github.com/italoandres/eshop-backend/internal/config"
	"github.com/italoandres/eshop-backend/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AdminClaims are the claims carried by signed admin tokens.
type AdminClaims struct {
	Principal string `json:"principal"`
	Role      string `json:"role"`
	jwt.RegisteredClaims
}

// AdminRequired guards the admin surface. The bearer token is either the
// configured static admin token or a signed JWT with an admin role claim; the
// resolved principal lands in the request context for audit logging.
func AdminRequired(security *config.SecurityConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.UnauthorizedResponse(c)
			c.Abort()
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == authHeader || token == "" {
			utils.UnauthorizedResponse(c)
			c.Abort()
			return
		}

		if security.AdminToken != "" && token == security.AdminToken {
			c.Set("principal", "admin")
			c.Next()
			return
		}

		if security.JWTSecret != "" {
			if principal, ok := parseAdminJWT(token, security.JWTSecret); ok {
				c.Set("principal", principal)
				c.Next()
				return
			}
		}

		utils.ForbiddenResponse(c)
		c.Abort()
	}
}

func parseAdminJWT(tokenString, secret string) (string, bool) {
	token, err := jwt.ParseWithClaims(tokenString, &AdminClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return "", false
	}

	claims, ok := token.Claims.(*AdminClaims)
	if !ok || claims.Role != "admin" {
		return "", false
	}

	principal := claims.Principal
	if principal == "" {
		principal = claims.Subject
	}
	if principal == "" {
		principal = "admin"
	}

	return principal, true
}

// Principal returns the authenticated admin identity set by AdminRequired.
func Principal(c *gin.Context) string {
	if principal, exists := c.Get("principal"); exists {
		if s, ok := principal.(string); ok {
			return s
		}
	}
	return "admin"
}
