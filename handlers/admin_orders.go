package handlers

import (
	"net/http"
	"time"

	"grocery-store-api/config"
	"grocery-store-api/listing"
	"grocery-store-api/models"

	"github.com/gin-gonic/gin"
)

// AdminListOrders returns a page of orders, newest first.
func AdminListOrders(c *gin.Context) {
	query := config.DB.Model(&models.Order{}).Preload("Items")

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if date := c.Query("date"); date != "" {
		day, err := time.ParseInLocation("2006-01-02", date, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
			return
		}
		query = query.Where("created_at >= ? AND created_at < ?", day, day.AddDate(0, 0, 1))
	}

	params := listing.FromQuery(c, listing.AdminPageSize)
	params.SearchColumns = []string{"order_number", "customer_name", "customer_phone"}
	params.SortBy = []string{"created_at desc", "id desc"}

	page, err := listing.Paginate[models.Order](query, params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load orders"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"orders": page,
		"filters": gin.H{
			"search": c.Query("search"),
			"status": c.Query("status"),
			"date":   c.Query("date"),
		},
	})
}

// AdminGetOrder returns one order with its items (and surviving products).
func AdminGetOrder(c *gin.Context) {
	var order models.Order
	if err := config.DB.Preload("Items.Product.Category").First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}

type UpdateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

// AdminUpdateOrderStatus sets the order status. Any value from the enum is
// accepted regardless of the current status; the lifecycle is managed by
// people, not a transition graph.
func AdminUpdateOrderStatus(c *gin.Context) {
	var order models.Order
	if err := config.DB.First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !models.ValidOrderStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status. Must be: pending, confirmed, preparing, ready, completed, or cancelled"})
		return
	}

	prevStatus := order.Status
	if err := config.DB.Model(&order).Update("status", req.Status).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order status"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":         "Order status updated",
		"order_id":        order.ID,
		"previous_status": prevStatus,
		"current_status":  req.Status,
	})
}
