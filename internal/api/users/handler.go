package users

import (
	"net/http"

	"focusdash-app/database"
	"focusdash-app/internal/domain/entitlement"
	"focusdash-app/internal/domain/users"

	"github.com/gin-gonic/gin"
)

// GET /me
func GetCurrentUser(c *gin.Context) {
	email := c.GetString("email")
	if email == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var user users.User
	if err := database.DB.Where("email = ?", email).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	premium, status, err := entitlement.ResolveByEmail(database.DB, user.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve subscription"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
		},
		"subscription": gin.H{
			"premium": premium,
			"status":  status,
		},
	})
}
