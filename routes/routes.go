package routes

import (
	"offer-management-api/controllers"
	"offer-management-api/middleware"
	"offer-management-api/models"

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
			public.POST("/register", controllers.Register)

			// Health check
			public.GET("/health", func(c *gin.Context) {
				c.JSON(200, gin.H{
					"status":  "ok",
					"message": "Offer Management API is running",
				})
			})
		}

		// Protected routes (require authentication)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			staff := middleware.RequireRole(models.RoleAdmin, models.RoleEditor)
			admin := middleware.RequireRole(models.RoleAdmin)

			// Auth management
			protected.POST("/logout", controllers.Logout)
			protected.POST("/logout-all", controllers.LogoutAllDevices)
			protected.GET("/sessions", controllers.GetActiveSessions)
			protected.DELETE("/sessions/:id", controllers.RevokeSession)

			// User profile
			protected.GET("/profile", controllers.GetProfile)
			protected.PUT("/profile", controllers.UpdateProfile)
			protected.PUT("/change-password", controllers.ChangePassword)
			protected.GET("/profile/namespaces", controllers.GetMyNamespaceValues)
			protected.PUT("/profile/namespaces", controllers.SetMyNamespaceValues)

			// Offers
			offers := protected.Group("/offers")
			{
				offers.GET("", controllers.ListOffers)
				offers.GET("/:id", controllers.GetOffer)
				offers.POST("/:id/caption", controllers.PreviewCaption)
				offers.POST("/:id/share-email", controllers.ShareOfferByEmail)

				offers.POST("", staff, controllers.CreateOffer)
				offers.PUT("/:id", staff, controllers.UpdateOffer)
				offers.DELETE("/:id", staff, controllers.DeleteOffer)
			}

			// Products
			products := protected.Group("/products")
			{
				products.GET("", controllers.ListProducts)
				products.GET("/:id", controllers.GetProduct)

				products.POST("", staff, controllers.CreateProduct)
				products.PUT("/:id", staff, controllers.UpdateProduct)
				products.DELETE("/:id", staff, controllers.DeleteProduct)
			}

			// Coupons
			coupons := protected.Group("/coupons")
			{
				coupons.GET("", controllers.ListCoupons)
				coupons.GET("/:id", controllers.GetCoupon)

				coupons.POST("", staff, controllers.CreateCoupon)
				coupons.PUT("/:id", staff, controllers.UpdateCoupon)
				coupons.POST("/:id/toggle", staff, controllers.ToggleCoupon)
				coupons.DELETE("/:id", staff, controllers.DeleteCoupon)
			}

			// Templates and per-network overrides
			templates := protected.Group("/templates")
			{
				templates.GET("", controllers.ListTemplates)
				templates.GET("/:id", controllers.GetTemplate)

				templates.POST("", staff, controllers.CreateTemplate)
				templates.PUT("/:id", staff, controllers.UpdateTemplate)
				templates.DELETE("/:id", staff, controllers.DeleteTemplate)
				templates.GET("/:id/social-networks/:network", controllers.GetTemplateOverride)
				templates.PUT("/:id/social-networks/:network", staff, controllers.SetTemplateOverride)
				templates.DELETE("/:id/social-networks/:network", staff, controllers.DeleteTemplateOverride)
			}

			// Placeholder catalogue
			namespaces := protected.Group("/namespaces")
			{
				namespaces.GET("", controllers.ListNamespaces)
				namespaces.GET("/builtin", controllers.ListBuiltinPlaceholders)

				namespaces.POST("", admin, controllers.CreateNamespace)
				namespaces.PUT("/:id", admin, controllers.UpdateNamespace)
				namespaces.DELETE("/:id", admin, controllers.DeleteNamespace)
			}

			// Catalog entities
			sellers := protected.Group("/sellers")
			{
				sellers.GET("", controllers.ListSellers)
				sellers.GET("/:id", controllers.GetSeller)

				sellers.POST("", staff, controllers.CreateSeller)
				sellers.PUT("/:id", staff, controllers.UpdateSeller)
				sellers.DELETE("/:id", staff, controllers.DeleteSeller)
			}
			categories := protected.Group("/categories")
			{
				categories.GET("", controllers.ListCategories)
				categories.GET("/:id", controllers.GetCategory)

				categories.POST("", staff, controllers.CreateCategory)
				categories.PUT("/:id", staff, controllers.UpdateCategory)
				categories.DELETE("/:id", staff, controllers.DeleteCategory)
			}
			manufacturers := protected.Group("/manufacturers")
			{
				manufacturers.GET("", controllers.ListManufacturers)
				manufacturers.GET("/:id", controllers.GetManufacturer)

				manufacturers.POST("", staff, controllers.CreateManufacturer)
				manufacturers.PUT("/:id", staff, controllers.UpdateManufacturer)
				manufacturers.DELETE("/:id", staff, controllers.DeleteManufacturer)
			}

			// Social network decoration
			networks := protected.Group("/social-networks")
			{
				networks.GET("", controllers.ListSocialNetworks)

				networks.POST("", staff, controllers.CreateSocialNetwork)
				networks.PUT("/:id", staff, controllers.UpdateSocialNetwork)
				networks.DELETE("/:id", staff, controllers.DeleteSocialNetwork)
			}

			// Publications
			publications := protected.Group("/publications")
			{
				publications.GET("", controllers.ListPublications)
				publications.POST("", staff, controllers.CreatePublication)
			}

			// Wishlists
			wishlists := protected.Group("/wishlists")
			{
				wishlists.GET("", controllers.ListMyWishlists)
				wishlists.GET("/:id", controllers.GetWishlist)
				wishlists.POST("", controllers.CreateWishlist)
				wishlists.PUT("/:id", controllers.UpdateWishlist)
				wishlists.DELETE("/:id", controllers.DeleteWishlist)
				wishlists.POST("/:id/items", controllers.AddWishlistItem)
				wishlists.DELETE("/:id/items/:itemId", controllers.RemoveWishlistItem)
			}

			// Groups
			groups := protected.Group("/groups")
			{
				groups.GET("", controllers.ListGroups)
				groups.GET("/:id", controllers.GetGroup)
				groups.POST("/:id/join", controllers.JoinGroup)
				groups.POST("/:id/leave", controllers.LeaveGroup)

				groups.POST("", admin, controllers.CreateGroup)
				groups.DELETE("/:id", admin, controllers.DeleteGroup)
			}

			// Settings
			settings := protected.Group("/settings")
			{
				settings.GET("", controllers.GetSettings)
				settings.PUT("/:key", admin, controllers.UpdateSetting)
			}

			// Dashboard
			protected.GET("/dashboard/stats", staff, controllers.Dashboard)

			// User administration
			users := protected.Group("/users")
			users.Use(admin)
			{
				users.GET("", controllers.ListUsers)
				users.PUT("/:id/role", controllers.UpdateUserRole)
				users.PUT("/:id/active", controllers.SetUserActive)
				users.DELETE("/:id", controllers.DeleteUser)
			}
		}
	}
}
