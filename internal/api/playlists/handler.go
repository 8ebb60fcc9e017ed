package playlists

import (
	"net/http"
	"strconv"

	"focusdash-app/database"
	"focusdash-app/internal/domain/playlists"

	"github.com/gin-gonic/gin"
)

// GET /playlists?userId=
func ListPlaylists(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Query("userId"), 10, 64)
	if err != nil || userID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User ID required"})
		return
	}

	var rows []playlists.Playlist
	if err := database.DB.
		Where("user_id = ?", uint(userID)).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"playlists": rows})
}

// POST /playlists
func CreatePlaylist(c *gin.Context) {
	var body struct {
		UserID   uint   `json:"userId"`
		Name     string `json:"name"`
		URL      string `json:"url"`
		Platform string `json:"platform"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.UserID == 0 || body.Name == "" || body.URL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	platform := body.Platform
	if platform == "" {
		platform = playlists.DetectPlatform(body.URL)
	}

	row := playlists.Playlist{
		UserID:   body.UserID,
		Name:     body.Name,
		URL:      body.URL,
		Platform: platform,
	}
	if err := database.DB.Create(&row).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"playlist": row})
}

// DELETE /playlists/:id
func DeletePlaylist(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Playlist ID required"})
		return
	}

	if err := database.DB.Delete(&playlists.Playlist{}, uint(id)).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
