package models

import (
	"regexp"
	"strings"
	"time"
)

type Category struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"not null"`
	Slug        string    `json:"slug" gorm:"uniqueIndex;not null"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	IsActive    bool      `json:"is_active" gorm:"default:true"`
	SortOrder   int       `json:"sort_order" gorm:"default:0"`
	Products    []Product `json:"products,omitempty" gorm:"foreignKey:CategoryID"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// populated by admin listings via a subquery select
	ProductsCount int64 `json:"products_count,omitempty" gorm:"-:migration;->"`
}

type Product struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	CategoryID    uint      `json:"category_id" gorm:"not null"`
	Category      *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Name          string    `json:"name" gorm:"not null"`
	Slug          string    `json:"slug" gorm:"uniqueIndex;not null"`
	Description   string    `json:"description"`
	Image         string    `json:"image"`
	Price         float64   `json:"price" gorm:"not null"`
	DiscountPrice *float64  `json:"discount_price"`
	Unit          string    `json:"unit" gorm:"not null"`
	Stock         int       `json:"stock" gorm:"default:0"`
	MinimumStock  int       `json:"minimum_stock" gorm:"default:0"`
	IsActive      bool      `json:"is_active" gorm:"default:true"`
	IsFeatured    bool      `json:"is_featured" gorm:"default:false"`
	SortOrder     int       `json:"sort_order" gorm:"default:0"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// FinalPrice is the price customers actually pay: the discount price when one
// is set, the list price otherwise.
func (p *Product) FinalPrice() float64 {
	if p.DiscountPrice != nil {
		return *p.DiscountPrice
	}
	return p.Price
}

// IsOnSale reports whether a discount price is set.
func (p *Product) IsOnSale() bool {
	return p.DiscountPrice != nil
}

// IsLowStock reports whether stock is positive but at or below the minimum.
func (p *Product) IsLowStock() bool {
	return p.Stock > 0 && p.Stock <= p.MinimumStock
}

// IsOutOfStock reports whether the product has no stock left.
func (p *Product) IsOutOfStock() bool {
	return p.Stock == 0
}

var slugCleaner = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify turns a display name into a URL-safe slug ("Apel Fuji" -> "apel-fuji").
func Slugify(name string) string {
	s := slugCleaner.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(s, "-")
}
