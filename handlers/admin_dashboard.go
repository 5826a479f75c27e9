package handlers

import (
	"net/http"
	"time"

	"grocery-store-api/config"
	"grocery-store-api/models"

	"github.com/gin-gonic/gin"
)

// AdminDashboard returns back-office metrics: catalog and order totals,
// today's activity, the most recent orders, and products running low.
func AdminDashboard(c *gin.Context) {
	var (
		totalProducts   int64
		activeProducts  int64
		outOfStock      int64
		totalCategories int64
		totalOrders     int64
		pendingOrders   int64
		todayOrders     int64
		todayRevenue    float64
	)

	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	config.DB.Model(&models.Product{}).Count(&totalProducts)
	config.DB.Model(&models.Product{}).Where("is_active = ?", true).Count(&activeProducts)
	config.DB.Model(&models.Product{}).Where("stock = ?", 0).Count(&outOfStock)
	config.DB.Model(&models.Category{}).Count(&totalCategories)
	config.DB.Model(&models.Order{}).Count(&totalOrders)
	config.DB.Model(&models.Order{}).Where("status = ?", models.StatusPending).Count(&pendingOrders)
	config.DB.Model(&models.Order{}).Where("created_at >= ?", startOfDay).Count(&todayOrders)
	config.DB.Model(&models.Order{}).Where("created_at >= ?", startOfDay).
		Select("COALESCE(SUM(total), 0)").Scan(&todayRevenue)

	var recentOrders []models.Order
	config.DB.Preload("Items").Order("created_at desc").Order("id desc").Limit(5).Find(&recentOrders)

	var lowStock []models.Product
	config.DB.Preload("Category").
		Where("stock > 0 AND stock <= minimum_stock").
		Order("stock asc").Limit(10).
		Find(&lowStock)

	c.JSON(http.StatusOK, gin.H{
		"stats": gin.H{
			"total_products":   totalProducts,
			"active_products":  activeProducts,
			"out_of_stock":     outOfStock,
			"total_categories": totalCategories,
			"total_orders":     totalOrders,
			"pending_orders":   pendingOrders,
			"today_orders":     todayOrders,
			"today_revenue":    todayRevenue,
		},
		"recent_orders":      recentOrders,
		"low_stock_products": lowStock,
	})
}
