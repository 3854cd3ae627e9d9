package routes

import (
	"net/http"
	"time"

	"shiftpoint-backend/gemini"
	"shiftpoint-backend/handlers"
	"shiftpoint-backend/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB, summary gemini.SummaryClient) {
	authHandler := &handlers.AuthHandler{DB: db}
	restaurantHandler := &handlers.RestaurantHandler{DB: db}
	roleHandler := &handlers.RoleHandler{DB: db}
	employeeHandler := &handlers.EmployeeHandler{DB: db}
	taskHandler := &handlers.TaskHandler{DB: db}
	timeClockHandler := &handlers.TimeClockHandler{DB: db}
	reportHandler := &handlers.ReportHandler{DB: db, Summary: summary}
	alertHandler := &handlers.AlertHandler{DB: db}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	loginLimiter := middleware.NewRateLimiter(10, time.Minute)

	auth := api.Group("/auth")
	{
		auth.GET("/owner-registered", authHandler.OwnerRegistered)
		auth.POST("/register-owner", loginLimiter.Middleware(), authHandler.RegisterOwner)
		auth.POST("/login", loginLimiter.Middleware(), authHandler.Login)
		auth.POST("/refresh", authHandler.Refresh)
		auth.GET("/profile", middleware.AuthMiddleware(), authHandler.GetProfile)
	}

	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.GET("/restaurants", restaurantHandler.GetRestaurants)
		protected.GET("/restaurants/:id", restaurantHandler.GetRestaurant)
		protected.GET("/roles", roleHandler.GetRoles)

		me := protected.Group("/me")
		{
			me.GET("/tasks", taskHandler.GetMyTasks)
			me.POST("/tasks/:id/toggle", taskHandler.ToggleTask)
			me.GET("/time-records", timeClockHandler.GetMyTimeRecords)
			me.POST("/time-records", timeClockHandler.CreateTimeRecord)
		}
	}

	admin := api.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.ManagementMiddleware())
	{
		admin.GET("/employees", employeeHandler.GetEmployees)
		admin.POST("/employees", employeeHandler.CreateEmployee)
		admin.PUT("/employees/:id", employeeHandler.UpdateEmployee)

		admin.GET("/tasks", taskHandler.GetTasks)
		admin.POST("/tasks", taskHandler.CreateTask)

		admin.GET("/reports", reportHandler.GetReport)
		admin.POST("/reports/summary", reportHandler.GenerateSummary)
		admin.GET("/alerts", alertHandler.GetAlerts)

		owner := admin.Group("")
		owner.Use(middleware.OwnerMiddleware())
		{
			owner.POST("/restaurants", restaurantHandler.CreateRestaurant)
			owner.PUT("/restaurants/:id", restaurantHandler.UpdateRestaurant)
			owner.POST("/roles", roleHandler.CreateRole)
			owner.PUT("/roles/:id", roleHandler.UpdateRole)
		}
	}
}
