package handlers

import (
	"errors"
	"net/http"

	"grocery-store-api/config"
	"grocery-store-api/listing"
	"grocery-store-api/models"

	"github.com/gin-gonic/gin"
)

type ProductRequest struct {
	CategoryID    uint     `form:"category_id" json:"category_id" binding:"required"`
	Name          string   `form:"name" json:"name" binding:"required,max=255"`
	Slug          string   `form:"slug" json:"slug" binding:"max=255"`
	Description   string   `form:"description" json:"description" binding:"max=1000"`
	Price         float64  `form:"price" json:"price" binding:"gte=0"`
	DiscountPrice *float64 `form:"discount_price" json:"discount_price" binding:"omitempty,gte=0"`
	Unit          string   `form:"unit" json:"unit" binding:"required,max=20"`
	Stock         int      `form:"stock" json:"stock" binding:"gte=0"`
	MinimumStock  int      `form:"minimum_stock" json:"minimum_stock" binding:"gte=0"`
	IsActive      *bool    `form:"is_active" json:"is_active"`
	IsFeatured    *bool    `form:"is_featured" json:"is_featured"`
	SortOrder     int      `form:"sort_order" json:"sort_order" binding:"gte=0"`
}

// AdminListProducts returns a filtered page of products for the back office.
func AdminListProducts(c *gin.Context) {
	query := config.DB.Model(&models.Product{}).Preload("Category")

	if category := c.Query("category"); category != "" {
		query = query.Where("category_id = ?", category)
	}
	switch c.Query("status") {
	case "active":
		query = query.Where("is_active = ?", true)
	case "inactive":
		query = query.Where("is_active = ?", false)
	case "out_of_stock":
		query = query.Where("stock = ?", 0)
	case "low_stock":
		query = query.Where("stock > 0 AND stock <= minimum_stock")
	}

	params := listing.FromQuery(c, listing.AdminPageSize)
	params.SearchColumns = []string{"name", "description"}
	params.SortBy = []string{"sort_order asc", "name asc"}

	page, err := listing.Paginate[models.Product](query, params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load products"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"products": page,
		"filters": gin.H{
			"search":   c.Query("search"),
			"category": c.Query("category"),
			"status":   c.Query("status"),
		},
	})
}

// AdminGetProduct returns one product with its category and order history.
func AdminGetProduct(c *gin.Context) {
	var product models.Product
	if err := config.DB.Preload("Category").First(&product, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	var orderItems []models.OrderItem
	config.DB.Where("product_id = ?", product.ID).Order("id desc").Limit(20).Find(&orderItems)

	c.JSON(http.StatusOK, gin.H{"product": product, "order_items": orderItems})
}

// AdminCreateProduct creates a product, optionally with an uploaded image.
func AdminCreateProduct(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if msg := validateProductRequest(&req); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	var category models.Category
	if err := config.DB.First(&category, req.CategoryID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}

	slug := req.Slug
	if slug == "" {
		slug = models.Slugify(req.Name)
	}
	var existing models.Product
	if err := config.DB.Where("slug = ?", slug).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Slug already in use"})
		return
	}

	image, err := saveProductImage(c)
	if err != nil && !errors.Is(err, errNoImage) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product := models.Product{
		CategoryID:    req.CategoryID,
		Name:          req.Name,
		Slug:          slug,
		Description:   req.Description,
		Image:         image,
		Price:         req.Price,
		DiscountPrice: req.DiscountPrice,
		Unit:          req.Unit,
		Stock:         req.Stock,
		MinimumStock:  req.MinimumStock,
		IsActive:      req.IsActive == nil || *req.IsActive,
		IsFeatured:    req.IsFeatured != nil && *req.IsFeatured,
		SortOrder:     req.SortOrder,
	}
	if err := config.DB.Create(&product).Error; err != nil {
		removeProductImage(image)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Product created successfully", "product": product})
}

// AdminUpdateProduct updates a product; a newly uploaded image replaces and
// removes the previous file.
func AdminUpdateProduct(c *gin.Context) {
	var product models.Product
	if err := config.DB.First(&product, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	var req ProductRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if msg := validateProductRequest(&req); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	var category models.Category
	if err := config.DB.First(&category, req.CategoryID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}

	slug := req.Slug
	if slug == "" {
		slug = models.Slugify(req.Name)
	}
	var existing models.Product
	if err := config.DB.Where("slug = ? AND id != ?", slug, product.ID).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Slug already in use"})
		return
	}

	image, err := saveProductImage(c)
	if err != nil && !errors.Is(err, errNoImage) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if image != "" {
		removeProductImage(product.Image)
		product.Image = image
	}

	product.CategoryID = req.CategoryID
	product.Name = req.Name
	product.Slug = slug
	product.Description = req.Description
	product.Price = req.Price
	product.DiscountPrice = req.DiscountPrice
	product.Unit = req.Unit
	product.Stock = req.Stock
	product.MinimumStock = req.MinimumStock
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}
	if req.IsFeatured != nil {
		product.IsFeatured = *req.IsFeatured
	}
	product.SortOrder = req.SortOrder

	if err := config.DB.Save(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product updated successfully", "product": product})
}

// AdminDeleteProduct removes a product unless order history references it.
func AdminDeleteProduct(c *gin.Context) {
	var product models.Product
	if err := config.DB.First(&product, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	var ordered int64
	config.DB.Model(&models.OrderItem{}).Where("product_id = ?", product.ID).Count(&ordered)
	if ordered > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Cannot delete product that has been ordered"})
		return
	}

	if err := config.DB.Delete(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
		return
	}
	removeProductImage(product.Image)

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}

func validateProductRequest(req *ProductRequest) string {
	if req.DiscountPrice != nil && *req.DiscountPrice >= req.Price {
		return "Discount price must be lower than the regular price"
	}
	return ""
}
