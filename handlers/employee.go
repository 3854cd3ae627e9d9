package handlers

import (
	"net/http"
	"strings"

	"shiftpoint-backend/models"
	"shiftpoint-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// EmployeeHandler manages staff accounts. Owner accounts are never created
// here; owner registration goes through the auth handler.
type EmployeeHandler struct {
	DB *gorm.DB
}

func (h *EmployeeHandler) GetEmployees(c *gin.Context) {
	var users []models.User
	query := h.DB.Where("role <> ?", models.RoleOwner).Order("created_at")

	if restaurantID := c.Query("restaurant_id"); restaurantID != "" {
		query = query.Where("restaurant_id = ?", restaurantID)
	}

	if err := query.Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch employees"})
		return
	}

	c.JSON(http.StatusOK, users)
}

func (h *EmployeeHandler) CreateEmployee(c *gin.Context) {
	var req struct {
		Name          string `json:"name" binding:"required"`
		Email         string `json:"email" binding:"required,email"`
		Password      string `json:"password" binding:"required,min=8"`
		Role          string `json:"role" binding:"omitempty,oneof=manager employee"`
		RestaurantID  string `json:"restaurant_id"`
		ScheduleStart string `json:"schedule_start"`
		ScheduleEnd   string `json:"schedule_end"`
		Recurrence    string `json:"recurrence"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	if req.Role == "" {
		req.Role = models.RoleEmployee
	}

	if req.ScheduleStart != "" && !utils.IsValidClockTime(req.ScheduleStart) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Schedule times must be in HH:MM format"})
		return
	}
	if req.ScheduleEnd != "" && !utils.IsValidClockTime(req.ScheduleEnd) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Schedule times must be in HH:MM format"})
		return
	}
	if req.Recurrence != "" && !models.IsValidRecurrence(req.Recurrence) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid recurrence"})
		return
	}

	var restaurantID *uuid.UUID
	if req.RestaurantID != "" {
		parsed, err := uuid.Parse(req.RestaurantID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid restaurant ID"})
			return
		}
		restaurantID = &parsed
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create employee"})
		return
	}

	user := models.User{
		ID:            uuid.New(),
		Name:          req.Name,
		Email:         strings.ToLower(strings.TrimSpace(req.Email)),
		Password:      string(hashed),
		Role:          req.Role,
		RestaurantID:  restaurantID,
		ScheduleStart: req.ScheduleStart,
		ScheduleEnd:   req.ScheduleEnd,
		Recurrence:    req.Recurrence,
	}

	if err := h.DB.Create(&user).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate") || strings.Contains(err.Error(), "UNIQUE") {
			c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create employee"})
		return
	}

	c.JSON(http.StatusCreated, user)
}

func (h *EmployeeHandler) UpdateEmployee(c *gin.Context) {
	id := c.Param("id")

	var user models.User
	if err := h.DB.Where("id = ? AND role <> ?", id, models.RoleOwner).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Employee not found"})
		return
	}

	var req struct {
		Name          *string `json:"name"`
		Email         *string `json:"email" binding:"omitempty,email"`
		Password      *string `json:"password" binding:"omitempty,min=8"`
		Role          *string `json:"role" binding:"omitempty,oneof=manager employee"`
		RestaurantID  *string `json:"restaurant_id"`
		ScheduleStart *string `json:"schedule_start"`
		ScheduleEnd   *string `json:"schedule_end"`
		Recurrence    *string `json:"recurrence"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Email != nil {
		user.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update employee"})
			return
		}
		user.Password = string(hashed)
	}
	if req.Role != nil {
		user.Role = *req.Role
	}
	if req.RestaurantID != nil {
		if *req.RestaurantID == "" {
			user.RestaurantID = nil
		} else {
			parsed, err := uuid.Parse(*req.RestaurantID)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid restaurant ID"})
				return
			}
			user.RestaurantID = &parsed
		}
	}
	if req.ScheduleStart != nil {
		if *req.ScheduleStart != "" && !utils.IsValidClockTime(*req.ScheduleStart) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Schedule times must be in HH:MM format"})
			return
		}
		user.ScheduleStart = *req.ScheduleStart
	}
	if req.ScheduleEnd != nil {
		if *req.ScheduleEnd != "" && !utils.IsValidClockTime(*req.ScheduleEnd) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Schedule times must be in HH:MM format"})
			return
		}
		user.ScheduleEnd = *req.ScheduleEnd
	}
	if req.Recurrence != nil {
		if *req.Recurrence != "" && !models.IsValidRecurrence(*req.Recurrence) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid recurrence"})
			return
		}
		user.Recurrence = *req.Recurrence
	}

	if err := h.DB.Save(&user).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate") || strings.Contains(err.Error(), "UNIQUE") {
			c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update employee"})
		return
	}

	c.JSON(http.StatusOK, user)
}
