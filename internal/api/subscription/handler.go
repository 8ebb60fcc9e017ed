package subscription

import (
	"net/http"
	"strconv"

	"focusdash-app/database"
	"focusdash-app/internal/domain/entitlement"

	"github.com/gin-gonic/gin"
)

// GET /subscription/status?userId=
//
// The server-side source of truth for entitlement. Clients may cache the
// flag for rendering, but privileged mutations are always re-checked against
// the stored record.
func GetStatus(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Query("userId"), 10, 64)
	if err != nil || userID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User ID required"})
		return
	}

	premium, status, err := entitlement.ResolveForUser(database.DB, uint(userID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"premium": premium, "status": status})
}
