package tasks

import (
	"net/http"
	"strconv"
	"time"

	"focusdash-app/database"
	"focusdash-app/internal/domain/entitlement"
	"focusdash-app/internal/domain/tasks"

	"github.com/gin-gonic/gin"
)

// GET /tasks?userId=
func ListTasks(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Query("userId"), 10, 64)
	if err != nil || userID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User ID required"})
		return
	}

	var rows []tasks.Task
	if err := database.DB.
		Where("user_id = ?", uint(userID)).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"tasks": rows})
}

// POST /tasks
//
// Free-tier users may create at most tasks.FreeDailyLimit tasks per calendar
// day. The entitlement check happens here, server-side, on every mutation;
// whatever flag the client caches is only a render hint.
func CreateTask(c *gin.Context) {
	var body struct {
		UserID   uint   `json:"userId"`
		Text     string `json:"text"`
		Priority string `json:"priority"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.UserID == 0 || body.Text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	premium, _, err := entitlement.ResolveForUser(database.DB, body.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if !premium {
		startOfDay := time.Now().Truncate(24 * time.Hour)
		var count int64
		if err := database.DB.Model(&tasks.Task{}).
			Where("user_id = ? AND created_at >= ?", body.UserID, startOfDay).
			Count(&count).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if count >= tasks.FreeDailyLimit {
			c.JSON(http.StatusForbidden, gin.H{"error": "Free tier is limited to 3 tasks per day. Upgrade to premium for unlimited tasks."})
			return
		}
	}

	priority := body.Priority
	if priority == "" {
		priority = tasks.PriorityMedium
	}

	row := tasks.Task{
		UserID:   body.UserID,
		Text:     body.Text,
		Priority: priority,
	}
	if err := database.DB.Create(&row).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"task": row})
}

// PUT /tasks/:id
func UpdateTask(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Task ID required"})
		return
	}

	var body struct {
		Completed *bool `json:"completed"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Completed == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	updates := map[string]interface{}{"completed": *body.Completed}
	if *body.Completed {
		updates["completed_at"] = time.Now()
	} else {
		updates["completed_at"] = nil
	}

	res := database.DB.Model(&tasks.Task{}).Where("id = ?", uint(id)).Updates(updates)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": res.Error.Error()})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}

	var row tasks.Task
	if err := database.DB.First(&row, uint(id)).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"task": row})
}

// DELETE /tasks/:id
func DeleteTask(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Task ID required"})
		return
	}

	if err := database.DB.Delete(&tasks.Task{}, uint(id)).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
