package middleware

import (
	"net/http"
	"strings"

	"shiftpoint-backend/models"
	"shiftpoint-backend/utils"

	"github.com/gin-gonic/gin"
)

func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		token := parts[1]
		claims, err := utils.ValidateToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("user_role", claims.Role)
		if claims.RestaurantID != nil {
			c.Set("restaurant_id", *claims.RestaurantID)
		}
		c.Next()
	}
}

// ManagementMiddleware requires the user to be the owner or a manager.
func ManagementMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("user_role")
		if !exists {
			c.JSON(http.StatusForbidden, gin.H{"error": "Management access required"})
			c.Abort()
			return
		}

		roleStr := role.(string)
		if roleStr != models.RoleOwner && roleStr != models.RoleManager {
			c.JSON(http.StatusForbidden, gin.H{"error": "Management access required"})
			c.Abort()
			return
		}

		c.Next()
	}
}

// OwnerMiddleware requires the user to be specifically the owner.
func OwnerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("user_role")
		if !exists || role != models.RoleOwner {
			c.JSON(http.StatusForbidden, gin.H{"error": "Owner access required"})
			c.Abort()
			return
		}
		c.Next()
	}
}
