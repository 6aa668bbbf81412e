package middleware

import (
	"net/http"
	"strings"

	"github.com/isrcorgin/ISRC-Backend/internal/auth"

	"github.com/gin-gonic/gin"
)

// Context keys set by RequireToken for downstream handlers.
const (
	ContextUID  = "uid"
	ContextRole = "role"
)

// RequireToken rejects requests without a valid bearer token and stores the
// token's uid and role on the gin context.
func RequireToken(tokens *auth.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		raw, found := strings.CutPrefix(header, "Bearer ")
		if !found || raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "missing bearer token",
			})
			return
		}

		claims, err := tokens.Parse(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "invalid or expired token",
			})
			return
		}

		c.Set(ContextUID, claims.UID)
		c.Set(ContextRole, claims.Role)
		c.Next()
	}
}

// RequireRole gates a route group to one token role. Must run after
// RequireToken.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(ContextRole) != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "insufficient privileges",
			})
			return
		}
		c.Next()
	}
}

// UID returns the authenticated uid set by RequireToken.
func UID(c *gin.Context) string {
	return c.GetString(ContextUID)
}
