package routes

import (
	"github.com/gin-gonic/gin"

	"lostfound-api/controllers"
	"lostfound-api/middleware"
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
			public.POST("/register", controllers.Register)

			// Health check
			public.GET("/health", func(c *gin.Context) {
				c.JSON(200, gin.H{
					"status":  "ok",
					"message": "Campus Lost & Found API is running",
				})
			})

			// Anyone can browse the catalog
			public.GET("/items", controllers.ListItems)
			public.GET("/items/:id", controllers.GetItem)
			public.GET("/browse", controllers.BrowseItems)
			public.GET("/categories", controllers.GetCategories)
		}

		// Protected routes (require authentication)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			// User profile
			protected.GET("/profile", controllers.GetProfile)
			protected.PUT("/change-password", controllers.ChangePassword)

			// Reporting found items
			protected.POST("/items", controllers.ReportItem)

			// Claims
			protected.POST("/claim/:item_id", controllers.SubmitClaim)
			protected.GET("/claims", controllers.GetMyClaims)

			// Notifications (listing marks everything read)
			protected.GET("/notifications", controllers.GetNotifications)
			protected.GET("/notifications/count", controllers.GetNotificationCounter)

			// Admin moderation
			admin := protected.Group("/admin")
			admin.Use(middleware.RequireAdmin())
			{
				admin.GET("/claims", controllers.GetClaims)
				admin.POST("/claims/:id/:action", controllers.DecideClaim)

				admin.POST("/items/:id/status", controllers.SetItemStatus)
				admin.GET("/items/:id/claims", controllers.GetItemClaims)

				admin.GET("/users", controllers.GetUsers)
				admin.PUT("/users/:id/active", controllers.SetUserActive)

				admin.POST("/categories", controllers.CreateCategory)
				admin.DELETE("/categories/:id", controllers.DeleteCategory)
			}
		}
	}
}
