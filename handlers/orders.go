package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"grocery-store-api/config"
	"grocery-store-api/models"
	"grocery-store-api/whatsapp"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var (
	errEmptyCart       = errors.New("order must contain at least one item")
	errProductNotFound = errors.New("product not found")
)

type PlaceOrderItem struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

type PlaceOrderRequest struct {
	CustomerName    string              `json:"customer_name" binding:"required,max=255"`
	CustomerPhone   string              `json:"customer_phone" binding:"required,max=20"`
	CustomerAddress string              `json:"customer_address" binding:"max=500"`
	DeliveryType    models.DeliveryType `json:"delivery_type" binding:"required,oneof=pickup delivery"`
	Notes           string              `json:"notes" binding:"max=500"`
	Items           []PlaceOrderItem    `json:"items" binding:"required,min=1,dive"`
}

// PlaceOrder creates an order from a client-side cart and returns the WhatsApp
// deep link the customer uses to send the summary to the store.
func PlaceOrder(c *gin.Context) {
	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.DeliveryType == models.DeliveryDelivery && req.CustomerAddress == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Delivery address is required for delivery orders"})
		return
	}
	if req.DeliveryType == models.DeliveryPickup {
		req.CustomerAddress = ""
	}

	settings := models.LoadStoreSettings(config.DB)

	order, err := createOrder(config.DB, &req, settings)
	if err != nil {
		switch {
		case errors.Is(err, errProductNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, errEmptyCart):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
		}
		return
	}

	waSettings := whatsapp.Settings{StoreName: settings.StoreName, Number: settings.WhatsAppNumber}

	c.JSON(http.StatusCreated, gin.H{
		"message":          "Order placed successfully",
		"order":            order,
		"whatsapp_message": whatsapp.Message(order, waSettings),
		"whatsapp_url":     whatsapp.DeepLink(order, waSettings),
	})
}

// createOrder resolves the cart against current prices and persists the order
// with its items as one transaction. Nothing is written when any referenced
// product is missing. Stock is neither checked nor decremented; orders are
// confirmed manually over WhatsApp and stock is informational only.
func createOrder(db *gorm.DB, req *PlaceOrderRequest, settings models.StoreSettings) (*models.Order, error) {
	if len(req.Items) == 0 {
		return nil, errEmptyCart
	}

	var order models.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		var items []models.OrderItem
		var subtotal float64

		for _, line := range req.Items {
			var product models.Product
			if err := tx.First(&product, line.ProductID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("%w: id %d", errProductNotFound, line.ProductID)
				}
				return err
			}
			price := product.FinalPrice()
			items = append(items, models.OrderItem{
				ProductID:    product.ID,
				ProductName:  product.Name,
				ProductPrice: price,
				Quantity:     line.Quantity,
				Total:        price * float64(line.Quantity),
			})
			subtotal += price * float64(line.Quantity)
		}

		var deliveryFee float64
		if req.DeliveryType == models.DeliveryDelivery {
			deliveryFee = settings.DeliveryFee
		}

		order = models.Order{
			OrderNumber:     uniqueOrderNumber(tx),
			CustomerName:    req.CustomerName,
			CustomerPhone:   req.CustomerPhone,
			CustomerAddress: req.CustomerAddress,
			DeliveryType:    req.DeliveryType,
			Subtotal:        subtotal,
			DeliveryFee:     deliveryFee,
			Total:           subtotal + deliveryFee,
			Status:          models.StatusPending,
			Notes:           req.Notes,
			Items:           items,
		}
		return tx.Create(&order).Error
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// uniqueOrderNumber draws order numbers until one is unused. Collisions are
// rare (random suffix) so a handful of attempts is plenty; the unique index
// still backstops a race between two submissions.
func uniqueOrderNumber(tx *gorm.DB) string {
	for i := 0; i < 10; i++ {
		number := models.NewOrderNumber(time.Now())
		var count int64
		tx.Model(&models.Order{}).Where("order_number = ?", number).Count(&count)
		if count == 0 {
			return number
		}
	}
	return models.NewOrderNumber(time.Now())
}
