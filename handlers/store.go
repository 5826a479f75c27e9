package handlers

import (
	"net/http"

	"grocery-store-api/config"
	"grocery-store-api/listing"
	"grocery-store-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetStore returns everything the storefront page needs: active categories
// with their sellable products, featured products, and a paged product listing.
func GetStore(c *gin.Context) {
	var categories []models.Category
	config.DB.Where("is_active = ?", true).
		Preload("Products", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_active = ? AND stock > 0", true).
				Order("sort_order asc").Order("name asc")
		}).
		Order("sort_order asc").Order("name asc").
		Find(&categories)

	var featured []models.Product
	config.DB.Preload("Category").
		Where("is_active = ? AND is_featured = ? AND stock > 0", true, true).
		Order("sort_order asc").Order("name asc").
		Limit(8).
		Find(&featured)

	query := config.DB.Model(&models.Product{}).Preload("Category").
		Where("is_active = ? AND stock > 0", true)
	if category := c.Query("category"); category != "" {
		query = query.Where("category_id = ?", category)
	}

	params := listing.FromQuery(c, listing.StorePageSize)
	params.SearchColumns = []string{"name", "description"}
	params.SortBy = []string{"is_featured desc", "sort_order asc", "name asc"}

	page, err := listing.Paginate[models.Product](query, params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load products"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"categories":        categories,
		"featured_products": featured,
		"products":          page,
		"filters": gin.H{
			"search":   c.Query("search"),
			"category": c.Query("category"),
		},
	})
}

// GetStoreProduct returns one product by slug with up to 4 related products
// from the same category.
func GetStoreProduct(c *gin.Context) {
	var product models.Product
	if err := config.DB.Preload("Category").
		Where("slug = ? AND is_active = ?", c.Param("slug"), true).
		First(&product).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	var related []models.Product
	config.DB.Preload("Category").
		Where("category_id = ? AND id != ? AND is_active = ? AND stock > 0",
			product.CategoryID, product.ID, true).
		Order("sort_order asc").Order("name asc").
		Limit(4).
		Find(&related)

	c.JSON(http.StatusOK, gin.H{
		"product":          product,
		"related_products": related,
	})
}
