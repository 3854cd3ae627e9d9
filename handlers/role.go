package handlers

import (
	"net/http"

	"shiftpoint-backend/models"
	"shiftpoint-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RoleHandler manages FunctionRole records: job titles within a restaurant.
type RoleHandler struct {
	DB *gorm.DB
}

func (h *RoleHandler) GetRoles(c *gin.Context) {
	var roles []models.FunctionRole
	query := h.DB.Order("created_at")

	if restaurantID := c.Query("restaurant_id"); restaurantID != "" {
		query = query.Where("restaurant_id = ?", restaurantID)
	}

	if err := query.Find(&roles).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch roles"})
		return
	}

	c.JSON(http.StatusOK, roles)
}

func (h *RoleHandler) CreateRole(c *gin.Context) {
	var req struct {
		Name         string `json:"name" binding:"required"`
		RestaurantID string `json:"restaurant_id" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	restaurantID, err := uuid.Parse(req.RestaurantID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid restaurant ID"})
		return
	}

	role := models.FunctionRole{
		ID:           uuid.New(),
		Name:         req.Name,
		RestaurantID: restaurantID,
	}

	if err := h.DB.Create(&role).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create role"})
		return
	}

	c.JSON(http.StatusCreated, role)
}

func (h *RoleHandler) UpdateRole(c *gin.Context) {
	id := c.Param("id")

	var role models.FunctionRole
	if err := h.DB.Where("id = ?", id).First(&role).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Role not found"})
		return
	}

	var req struct {
		Name         *string `json:"name"`
		RestaurantID *string `json:"restaurant_id"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	if req.Name != nil {
		role.Name = *req.Name
	}
	if req.RestaurantID != nil {
		restaurantID, err := uuid.Parse(*req.RestaurantID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid restaurant ID"})
			return
		}
		role.RestaurantID = restaurantID
	}

	if err := h.DB.Save(&role).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update role"})
		return
	}

	c.JSON(http.StatusOK, role)
}
