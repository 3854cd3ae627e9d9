package handlers

import (
	"net/http"

	"shiftpoint-backend/models"
	"shiftpoint-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RestaurantHandler struct {
	DB *gorm.DB
}

func (h *RestaurantHandler) GetRestaurants(c *gin.Context) {
	var restaurants []models.Restaurant
	if err := h.DB.Order("created_at").Find(&restaurants).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch restaurants"})
		return
	}

	c.JSON(http.StatusOK, restaurants)
}

func (h *RestaurantHandler) GetRestaurant(c *gin.Context) {
	id := c.Param("id")

	var restaurant models.Restaurant
	if err := h.DB.Where("id = ?", id).First(&restaurant).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}

	c.JSON(http.StatusOK, restaurant)
}

// CreateRestaurant registers a restaurant at the device's current position.
// The coordinates come from a successful geolocation read on the client; a
// request without them means the read failed and nothing is persisted.
func (h *RestaurantHandler) CreateRestaurant(c *gin.Context) {
	var req struct {
		Name      string   `json:"name" binding:"required"`
		Latitude  *float64 `json:"latitude"`
		Longitude *float64 `json:"longitude"`
		OpenTime  string   `json:"open_time"`
		CloseTime string   `json:"close_time"`
		DaysOpen  []string `json:"days_open" binding:"required,min=1"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	if req.Latitude == nil || req.Longitude == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Device location is required to register a restaurant"})
		return
	}

	if req.OpenTime == "" {
		req.OpenTime = "09:00"
	}
	if req.CloseTime == "" {
		req.CloseTime = "22:00"
	}

	if !utils.IsValidClockTime(req.OpenTime) || !utils.IsValidClockTime(req.CloseTime) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Opening hours must be in HH:MM format"})
		return
	}
	if req.CloseTime <= req.OpenTime {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Close time must be after open time"})
		return
	}

	restaurant := models.Restaurant{
		ID:        uuid.New(),
		Name:      req.Name,
		Latitude:  *req.Latitude,
		Longitude: *req.Longitude,
		OpenTime:  req.OpenTime,
		CloseTime: req.CloseTime,
		DaysOpen:  req.DaysOpen,
	}

	if err := h.DB.Create(&restaurant).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create restaurant"})
		return
	}

	c.JSON(http.StatusCreated, restaurant)
}

// UpdateRestaurant edits name, hours and open days. The location is fixed
// at creation; coordinates in the payload are ignored.
func (h *RestaurantHandler) UpdateRestaurant(c *gin.Context) {
	id := c.Param("id")

	var restaurant models.Restaurant
	if err := h.DB.Where("id = ?", id).First(&restaurant).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}

	var req struct {
		Name      *string   `json:"name"`
		OpenTime  *string   `json:"open_time"`
		CloseTime *string   `json:"close_time"`
		DaysOpen  *[]string `json:"days_open"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	if req.Name != nil {
		restaurant.Name = *req.Name
	}
	if req.OpenTime != nil {
		if !utils.IsValidClockTime(*req.OpenTime) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Opening hours must be in HH:MM format"})
			return
		}
		restaurant.OpenTime = *req.OpenTime
	}
	if req.CloseTime != nil {
		if !utils.IsValidClockTime(*req.CloseTime) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Opening hours must be in HH:MM format"})
			return
		}
		restaurant.CloseTime = *req.CloseTime
	}
	if restaurant.CloseTime <= restaurant.OpenTime {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Close time must be after open time"})
		return
	}
	if req.DaysOpen != nil {
		if len(*req.DaysOpen) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "At least one open day is required"})
			return
		}
		restaurant.DaysOpen = *req.DaysOpen
	}

	if err := h.DB.Save(&restaurant).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update restaurant"})
		return
	}

	c.JSON(http.StatusOK, restaurant)
}
