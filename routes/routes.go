package routes

import (
	"github.com/gin-gonic/gin"

	"assetdesk/controllers"
	"assetdesk/middleware"
)

// SetupRoutes configures all application routes
func SetupRoutes(r *gin.Engine) {
	// Public routes (no authentication required)
	public := r.Group("/api")
	{
		auth := public.Group("/auth")
		{
			auth.POST("/login", controllers.Login)
		}
	}

	// Protected routes (authentication required)
	protected := r.Group("/api")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.POST("/auth/refresh", controllers.RefreshToken)

		// Assets
		assets := protected.Group("/assets")
		{
			assets.POST("", controllers.CreateAsset)
			assets.GET("", controllers.GetAssets)
			assets.GET("/:id", controllers.GetAssetByID)
			assets.PUT("/:id", controllers.UpdateAsset)
			assets.DELETE("/:id", controllers.DeleteAsset)
			assets.POST("/:id/restore", controllers.RestoreAsset)
			assets.GET("/:id/history", controllers.GetAssetHistory)
			assets.GET("/:id/recommendations", controllers.GetAssetRecommendations)
		}

		// Complaints
		complaints := protected.Group("/complaints")
		{
			complaints.POST("", controllers.CreateComplaint)
			complaints.GET("", controllers.GetComplaints)
			complaints.PUT("/:id", controllers.UpdateComplaint)
		}

		// Maintenance schedules
		maintenance := protected.Group("/maintenance")
		{
			maintenance.POST("", controllers.CreateMaintenance)
			maintenance.GET("", controllers.GetMaintenanceSchedules)
			maintenance.PUT("/:id", controllers.UpdateMaintenance)
		}

		// Users (admin only except listing)
		users := protected.Group("/users")
		{
			users.POST("", middleware.AdminAuthMiddleware(), controllers.CreateUser)
			users.GET("", controllers.GetUsers)
			users.GET("/:id", controllers.GetUserByID)
			users.PUT("/:id", middleware.AdminAuthMiddleware(), controllers.UpdateUser)
			users.DELETE("/:id", middleware.AdminAuthMiddleware(), controllers.DeleteUser)
		}

		protected.GET("/activity-logs", controllers.GetUserActivityLogs)
		protected.GET("/dashboard/stats", controllers.GetDashboardStats)
		protected.POST("/reports/generate", controllers.GenerateReport)
		protected.POST("/notifications/email", controllers.SendNotificationEmail)
	}
}
