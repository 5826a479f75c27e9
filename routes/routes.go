package routes

import (
	"grocery-store-api/handlers"
	"grocery-store-api/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		// Auth
		public.POST("/auth/register", handlers.Register)
		public.POST("/auth/login", handlers.Login)

		// Storefront (no auth needed)
		public.GET("/store", handlers.GetStore)
		public.GET("/store/products/:slug", handlers.GetStoreProduct)

		// Guest order submission
		public.POST("/orders", handlers.PlaceOrder)
	}

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired())
	{
		auth.GET("/profile", handlers.GetProfile)
	}

	// ── Admin routes ───────────────────────────────────────────────
	admin := r.Group("/api/admin")
	admin.Use(middleware.AuthRequired())
	{
		admin.GET("/dashboard", handlers.AdminDashboard)

		// Products
		admin.GET("/products", handlers.AdminListProducts)
		admin.POST("/products", handlers.AdminCreateProduct)
		admin.GET("/products/:id", handlers.AdminGetProduct)
		admin.PUT("/products/:id", handlers.AdminUpdateProduct)
		admin.DELETE("/products/:id", handlers.AdminDeleteProduct)

		// Categories
		admin.GET("/categories", handlers.AdminListCategories)
		admin.POST("/categories", handlers.AdminCreateCategory)
		admin.GET("/categories/:id", handlers.AdminGetCategory)
		admin.PUT("/categories/:id", handlers.AdminUpdateCategory)
		admin.DELETE("/categories/:id", handlers.AdminDeleteCategory)

		// Orders (read + status updates only; items are write-once)
		admin.GET("/orders", handlers.AdminListOrders)
		admin.GET("/orders/:id", handlers.AdminGetOrder)
		admin.PATCH("/orders/:id/status", handlers.AdminUpdateOrderStatus)

		// Store settings
		admin.GET("/settings", handlers.AdminGetSettings)
		admin.PUT("/settings", handlers.AdminUpdateSettings)
	}
}
