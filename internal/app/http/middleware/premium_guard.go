package middleware

import (
	"net/http"

	"focusdash-app/database"
	"focusdash-app/internal/domain/entitlement"

	"github.com/gin-gonic/gin"
)

// RequirePremium gates routes behind an active subscription. It re-reads the
// stored record on every request; client-cached entitlement flags are never
// trusted for access control.
func RequirePremium() gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString("email")
		if email == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		premium, _, err := entitlement.ResolveByEmail(database.DB, email)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve subscription"})
			return
		}
		if !premium {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Premium subscription required"})
			return
		}

		c.Next()
	}
}
