package middleware

import (
	"net/http"
	"strings"

	"taskmanager/internal/auth"

	"github.com/gin-gonic/gin"
)

// Context keys under which the guard stores verified claims.
const (
	UsernameKey = "username"
	RoleKey     = "role"
)

// RequireAuth verifies the bearer token before the handler runs. Missing
// token, bad signature and expiry all reject with 401; the handler never
// sees the request.
func RequireAuth(tm *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization header required"})
			return
		}

		tokenString, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "bearer token required"})
			return
		}

		claims, err := tm.Validate(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set(UsernameKey, claims.Username)
		c.Set(RoleKey, claims.Role)
		c.Next()
	}
}
