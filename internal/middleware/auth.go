// Package middleware holds the bearer-token gate shared by all protected
// routes. Role checks stay in the individual admin handlers.
package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"blackcoffee-backend/internal/auth"
)

// Context keys set for downstream handlers.
const (
	CtxUserID = "userId"
	CtxEmail  = "email"
	CtxRole   = "role"
)

// Auth rejects requests without a valid bearer token before any data access
// happens. On success the identity lands on the gin context.
func Auth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(401, gin.H{"error": "No token provided"})
			return
		}

		claims, err := auth.Verify(secret, strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(401, gin.H{"error": "Invalid token"})
			return
		}

		c.Set(CtxUserID, claims.UserID)
		c.Set(CtxEmail, claims.Email)
		c.Set(CtxRole, claims.Role)
		c.Next()
	}
}
