package routes

import (
	"webdev-order-api/controllers"
	"webdev-order-api/middleware"
	"webdev-order-api/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine) {
	// API v1 group
	v1 := router.Group("/api/v1")
	{
		// Public routes
		public := v1.Group("")
		{
			// Authentication
			public.POST("/login", controllers.Login)

			// Health check
			public.GET("/health", func(c *gin.Context) {
				c.JSON(200, gin.H{
					"status":  "ok",
					"message": "Order Management API is running",
				})
			})
		}

		// Protected routes (require authentication)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			// User profile
			protected.GET("/profile", controllers.GetProfile)
			protected.PUT("/change-password", controllers.ChangePassword)

			// Applications
			applications := protected.Group("/applications")
			{
				applications.GET("", controllers.GetApplications)
				applications.GET("/:id", controllers.GetApplication)
				applications.GET("/:id/transitions", controllers.GetAvailableTransitions)
				applications.GET("/:id/history", controllers.GetApplicationHistory)

				// Only clients create and edit their own drafts
				applications.POST("", middleware.RequireRole(models.RoleClient), controllers.CreateApplication)
				applications.PUT("/:id", middleware.RequireRole(models.RoleClient), controllers.UpdateApplication)
				applications.DELETE("/:id", controllers.DeleteApplication)

				// Status workflow: role gating inside the transition executor
				applications.POST("/:id/status", controllers.UpdateApplicationStatus)
				applications.POST("/:id/reset", middleware.RequireRole(models.RoleAdmin), controllers.ResetApplicationToDraft)

				// Internal notes (staff only)
				applications.POST("/:id/notes", middleware.RequireRole(models.RoleManager, models.RoleAdmin), controllers.AddApplicationNote)
				applications.GET("/:id/notes", middleware.RequireRole(models.RoleManager, models.RoleAdmin), controllers.GetApplicationNotes)

				// Attachments
				applications.POST("/:id/files", controllers.UploadApplicationFile)
				applications.GET("/:id/files", controllers.GetApplicationFiles)
			}

			// Notes and files addressed by their own ids
			protected.DELETE("/notes/:note_id", middleware.RequireRole(models.RoleManager, models.RoleAdmin), controllers.DeleteApplicationNote)
			protected.GET("/files/:file_id/download", controllers.DownloadApplicationFile)
			protected.DELETE("/files/:file_id", controllers.DeleteApplicationFile)

			// Notifications
			notifications := protected.Group("/notifications")
			{
				notifications.GET("", controllers.GetNotifications)
				notifications.GET("/counter", controllers.GetNotificationCounter)
				notifications.PUT("/:id/read", controllers.MarkNotificationRead)
				notifications.PUT("/read-all", controllers.MarkAllNotificationsRead)
			}

			// Dashboard
			protected.GET("/dashboard/stats", controllers.GetDashboardStats)

			// Audit trail (admin only)
			protected.GET("/audit-logs", middleware.RequireRole(models.RoleAdmin), controllers.GetAuditLogs)
		}
	}
}
