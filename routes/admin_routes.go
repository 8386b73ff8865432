package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/apenara/cafe-menu-digital/controllers/admin/auth_controller"
	"github.com/apenara/cafe-menu-digital/controllers/admin/category_controller"
	"github.com/apenara/cafe-menu-digital/controllers/admin/product_controller"
	"github.com/apenara/cafe-menu-digital/middleware"
)

// SetupAdminRoutes registers the admin console API.
func SetupAdminRoutes(rg *gin.RouterGroup) {
	admin := rg.Group("/admin")

	// ════════════════════════════════════════════════════════════
	// Public Routes (No Auth Required)
	// ════════════════════════════════════════════════════════════

	admin.POST("/login", auth_controller.AdminLogin)

	// ════════════════════════════════════════════════════════════
	// Protected Routes (Auth Required)
	// ════════════════════════════════════════════════════════════

	protected := admin.Group("")
	protected.Use(middleware.AdminAuthMiddleware())
	{
		// Auth
		protected.POST("/logout", auth_controller.AdminLogout)
		protected.GET("/me", auth_controller.GetAdminMe)

		// Categories
		protected.GET("/categories", category_controller.GetCategories)
		protected.POST("/categories", category_controller.CreateCategory)
		protected.PUT("/categories/:id", category_controller.UpdateCategory)
		protected.DELETE("/categories/:id", category_controller.DeleteCategory)

		// Products
		protected.GET("/products", product_controller.GetProducts)
		protected.POST("/products", product_controller.CreateProduct)
		protected.PUT("/products/:id", product_controller.UpdateProduct)
		protected.DELETE("/products/:id", product_controller.DeleteProduct)
	}
}
