package handlers

import (
	"net/http"

	"grocery-store-api/config"
	"grocery-store-api/listing"
	"grocery-store-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CategoryRequest struct {
	Name        string `form:"name" json:"name" binding:"required,max=255"`
	Slug        string `form:"slug" json:"slug" binding:"max=255"`
	Description string `form:"description" json:"description" binding:"max=1000"`
	Icon        string `form:"icon" json:"icon" binding:"max=10"`
	IsActive    *bool  `form:"is_active" json:"is_active"`
	SortOrder   int    `form:"sort_order" json:"sort_order" binding:"gte=0"`
}

// AdminListCategories returns a page of categories with product counts.
func AdminListCategories(c *gin.Context) {
	query := config.DB.Model(&models.Category{}).
		Select("categories.*, (SELECT COUNT(*) FROM products WHERE products.category_id = categories.id) AS products_count")

	params := listing.FromQuery(c, listing.AdminPageSize)
	params.SearchColumns = []string{"name", "description"}
	params.SortBy = []string{"sort_order asc", "name asc"}

	page, err := listing.Paginate[models.Category](query, params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load categories"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"categories": page,
		"filters":    gin.H{"search": c.Query("search")},
	})
}

// AdminGetCategory returns one category with its products in display order.
func AdminGetCategory(c *gin.Context) {
	var category models.Category
	err := config.DB.Preload("Products", func(db *gorm.DB) *gorm.DB {
		return db.Order("sort_order asc").Order("name asc")
	}).First(&category, c.Param("id")).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"category": category})
}

// AdminCreateCategory creates a category.
func AdminCreateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	slug := req.Slug
	if slug == "" {
		slug = models.Slugify(req.Name)
	}
	var existing models.Category
	if err := config.DB.Where("slug = ?", slug).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Slug already in use"})
		return
	}

	category := models.Category{
		Name:        req.Name,
		Slug:        slug,
		Description: req.Description,
		Icon:        req.Icon,
		IsActive:    req.IsActive == nil || *req.IsActive,
		SortOrder:   req.SortOrder,
	}
	if err := config.DB.Create(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Category created successfully", "category": category})
}

// AdminUpdateCategory updates a category.
func AdminUpdateCategory(c *gin.Context) {
	var category models.Category
	if err := config.DB.First(&category, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}

	var req CategoryRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	slug := req.Slug
	if slug == "" {
		slug = models.Slugify(req.Name)
	}
	var existing models.Category
	if err := config.DB.Where("slug = ? AND id != ?", slug, category.ID).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Slug already in use"})
		return
	}

	category.Name = req.Name
	category.Slug = slug
	category.Description = req.Description
	category.Icon = req.Icon
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}
	category.SortOrder = req.SortOrder

	if err := config.DB.Save(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update category"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Category updated successfully", "category": category})
}

// AdminDeleteCategory removes a category unless products still reference it.
func AdminDeleteCategory(c *gin.Context) {
	var category models.Category
	if err := config.DB.First(&category, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}

	var products int64
	config.DB.Model(&models.Product{}).Where("category_id = ?", category.ID).Count(&products)
	if products > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Cannot delete category with existing products"})
		return
	}

	if err := config.DB.Delete(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}
