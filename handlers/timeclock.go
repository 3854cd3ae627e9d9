package handlers

import (
	"fmt"
	"math"
	"net/http"
	"time"

	"shiftpoint-backend/models"
	"shiftpoint-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProximityThresholdMeters is the maximum distance from the restaurant at
// which a clock event is accepted.
const ProximityThresholdMeters = 30.0

type TimeClockHandler struct {
	DB *gorm.DB
}

// CreateTimeRecord registers an arrival or departure for the authenticated
// user. The event is accepted only when the device coordinates fall within
// ProximityThresholdMeters of the user's restaurant; a rejection stores
// nothing.
func (h *TimeClockHandler) CreateTimeRecord(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)

	var req struct {
		Type      string   `json:"type" binding:"required,oneof=arrival departure"`
		Latitude  *float64 `json:"latitude"`
		Longitude *float64 `json:"longitude"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	if req.Latitude == nil || req.Longitude == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Device location unavailable. Enable location services and try again."})
		return
	}

	var user models.User
	if err := h.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if user.RestaurantID == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}

	var restaurant models.Restaurant
	if err := h.DB.Where("id = ?", *user.RestaurantID).First(&restaurant).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}

	distance := utils.Haversine(*req.Latitude, *req.Longitude, restaurant.Latitude, restaurant.Longitude)
	if distance > ProximityThresholdMeters {
		c.JSON(http.StatusForbidden, gin.H{
			"error":           fmt.Sprintf("You are %d meters away from %s. Clock-in is only allowed within %d meters.", int(math.Round(distance)), restaurant.Name, int(ProximityThresholdMeters)),
			"distance_meters": math.Round(distance),
		})
		return
	}

	record := models.TimeRecord{
		ID:         uuid.New(),
		EmployeeID: userID,
		Timestamp:  time.Now(),
		Type:       req.Type,
		Latitude:   *req.Latitude,
		Longitude:  *req.Longitude,
	}

	if err := h.DB.Create(&record).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record clock event"})
		return
	}

	c.JSON(http.StatusCreated, record)
}

func (h *TimeClockHandler) GetMyTimeRecords(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)

	var records []models.TimeRecord
	if err := h.DB.Where("employee_id = ?", userID).Order("timestamp").Find(&records).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch time records"})
		return
	}

	c.JSON(http.StatusOK, records)
}
