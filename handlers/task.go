package handlers

import (
	"net/http"

	"shiftpoint-backend/models"
	"shiftpoint-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TaskHandler struct {
	DB *gorm.DB
}

func (h *TaskHandler) GetTasks(c *gin.Context) {
	var tasks []models.Task
	query := h.DB.Order("created_at")

	if restaurantID := c.Query("restaurant_id"); restaurantID != "" {
		query = query.Where("restaurant_id = ?", restaurantID)
	}
	if assigneeID := c.Query("assignee_id"); assigneeID != "" {
		query = query.Where("assignee_id = ?", assigneeID)
	}

	if err := query.Find(&tasks).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tasks"})
		return
	}

	c.JSON(http.StatusOK, tasks)
}

// GetMyTasks returns the tasks assigned to the authenticated user, oldest
// first. An employee with no assignments gets an empty list, not an error.
func (h *TaskHandler) GetMyTasks(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)

	var tasks []models.Task
	if err := h.DB.Where("assignee_id = ?", userID).Order("created_at").Find(&tasks).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tasks"})
		return
	}

	c.JSON(http.StatusOK, tasks)
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req struct {
		Description     string `json:"description"`
		AssigneeID      string `json:"assignee_id" binding:"required"`
		StartTime       string `json:"start_time"`
		EndTime         string `json:"end_time"`
		DeadlineMinutes *int   `json:"deadline_minutes"`
		Frequency       string `json:"frequency"`
		RestaurantID    string `json:"restaurant_id"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	assigneeID, err := uuid.Parse(req.AssigneeID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid assignee ID"})
		return
	}

	var assignee models.User
	if err := h.DB.Where("id = ?", assigneeID).First(&assignee).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Assignee not found"})
		return
	}

	if req.StartTime == "" {
		req.StartTime = "09:00"
	}
	if req.EndTime == "" {
		req.EndTime = "10:00"
	}
	if !utils.IsValidClockTime(req.StartTime) || !utils.IsValidClockTime(req.EndTime) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Task times must be in HH:MM format"})
		return
	}

	if req.Frequency == "" {
		req.Frequency = models.RecurrenceOnce
	}
	if !models.IsValidRecurrence(req.Frequency) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid frequency"})
		return
	}

	deadline := 60
	if req.DeadlineMinutes != nil {
		if *req.DeadlineMinutes < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Deadline must not be negative"})
			return
		}
		deadline = *req.DeadlineMinutes
	}

	var restaurantID *uuid.UUID
	if req.RestaurantID != "" {
		parsed, err := uuid.Parse(req.RestaurantID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid restaurant ID"})
			return
		}
		restaurantID = &parsed
	} else if assignee.RestaurantID != nil {
		restaurantID = assignee.RestaurantID
	}

	task := models.Task{
		ID:              uuid.New(),
		Description:     req.Description,
		AssigneeID:      assigneeID,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		DeadlineMinutes: deadline,
		Frequency:       req.Frequency,
		Completed:       false,
		RestaurantID:    restaurantID,
	}

	if err := h.DB.Create(&task).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create task"})
		return
	}

	c.JSON(http.StatusCreated, task)
}

// ToggleTask flips the completion flag of one of the caller's own tasks.
// A task assigned to someone else is off limits even for managers; they
// have the admin listing instead.
func (h *TaskHandler) ToggleTask(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)
	id := c.Param("id")

	var task models.Task
	if err := h.DB.Where("id = ?", id).First(&task).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}

	if task.AssigneeID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You can only update your own tasks"})
		return
	}

	task.Completed = !task.Completed
	if err := h.DB.Model(&task).Update("completed", task.Completed).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update task"})
		return
	}

	c.JSON(http.StatusOK, task)
}
