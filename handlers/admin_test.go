package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"grocery-store-api/config"
	"grocery-store-api/listing"
	"grocery-store-api/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func adminRouter(t *testing.T) *gin.Engine {
	r := setupTest(t)
	r.GET("/api/admin/products", AdminListProducts)
	r.POST("/api/admin/products", AdminCreateProduct)
	r.DELETE("/api/admin/products/:id", AdminDeleteProduct)
	r.DELETE("/api/admin/categories/:id", AdminDeleteCategory)
	r.GET("/api/admin/orders", AdminListOrders)
	r.PATCH("/api/admin/orders/:id/status", AdminUpdateOrderStatus)
	r.GET("/api/admin/settings", AdminGetSettings)
	r.PUT("/api/admin/settings", AdminUpdateSettings)
	r.GET("/api/admin/dashboard", AdminDashboard)
	return r
}

type productPageResponse struct {
	Products listing.Page[models.Product] `json:"products"`
}

func TestAdminListProducts_LowStockFilter(t *testing.T) {
	r := adminRouter(t)
	cat := seedCategory(t, "Sembako")

	mk := func(name string, stock, minimum, sortOrder int) {
		p := models.Product{
			CategoryID: cat.ID, Name: name, Slug: models.Slugify(name),
			Price: 1000, Unit: "pcs", Stock: stock, MinimumStock: minimum,
			IsActive: true, SortOrder: sortOrder,
		}
		require.NoError(t, config.DB.Create(&p).Error)
	}
	mk("Beras", 0, 5, 1)   // out of stock, not low
	mk("Gula", 3, 5, 3)    // low
	mk("Minyak", 5, 5, 2)  // low (boundary)
	mk("Tepung", 6, 5, 1)  // healthy
	mk("Kopi", 10, 0, 1)   // healthy, no minimum

	w := doJSON(t, r, "GET", "/api/admin/products?status=low_stock", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp productPageResponse
	decodeBody(t, w, &resp)

	require.Len(t, resp.Products.Data, 2)
	// ordered by sort_order then name
	assert.Equal(t, "Minyak", resp.Products.Data[0].Name)
	assert.Equal(t, "Gula", resp.Products.Data[1].Name)
	assert.Equal(t, int64(2), resp.Products.Total)
}

func TestAdminListProducts_StatusFilters(t *testing.T) {
	r := adminRouter(t)
	cat := seedCategory(t, "Sembako")
	seedProduct(t, cat.ID, "Aktif", 1000, 10)
	inactive := seedProduct(t, cat.ID, "Nonaktif", 1000, 10)
	require.NoError(t, config.DB.Model(&inactive).Update("is_active", false).Error)
	seedProduct(t, cat.ID, "Habis", 1000, 0)

	for status, want := range map[string]int{
		"active":       2, // "Aktif" and "Habis"
		"inactive":     1,
		"out_of_stock": 1,
	} {
		w := doJSON(t, r, "GET", "/api/admin/products?status="+status, nil)
		require.Equal(t, http.StatusOK, w.Code)
		var resp productPageResponse
		decodeBody(t, w, &resp)
		assert.Len(t, resp.Products.Data, want, "status=%s", status)
	}
}

func TestAdminListProducts_Pagination(t *testing.T) {
	r := adminRouter(t)
	cat := seedCategory(t, "Sembako")
	for i := 0; i < 20; i++ {
		seedProduct(t, cat.ID, fmt.Sprintf("Produk %02d", i), 1000, 10)
	}

	w := doJSON(t, r, "GET", "/api/admin/products?page=2", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp productPageResponse
	decodeBody(t, w, &resp)
	assert.Equal(t, int64(20), resp.Products.Total)
	assert.Equal(t, 2, resp.Products.Page)
	assert.Equal(t, listing.AdminPageSize, resp.Products.PerPage)
	assert.Equal(t, 2, resp.Products.LastPage)
	assert.Len(t, resp.Products.Data, 5)
}

func TestAdminCreateProduct_AutoSlugAndConflict(t *testing.T) {
	r := adminRouter(t)
	cat := seedCategory(t, "Buah")

	w := doJSON(t, r, "POST", "/api/admin/products", gin.H{
		"category_id": cat.ID,
		"name":        "Apel Fuji",
		"price":       12000,
		"unit":        "kg",
		"stock":       10,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Product models.Product `json:"product"`
	}
	decodeBody(t, w, &resp)
	assert.Equal(t, "apel-fuji", resp.Product.Slug)
	assert.True(t, resp.Product.IsActive)

	// same name again collides on the generated slug
	w = doJSON(t, r, "POST", "/api/admin/products", gin.H{
		"category_id": cat.ID,
		"name":        "Apel Fuji",
		"price":       12000,
		"unit":        "kg",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAdminCreateProduct_DiscountMustBeBelowPrice(t *testing.T) {
	r := adminRouter(t)
	cat := seedCategory(t, "Buah")

	w := doJSON(t, r, "POST", "/api/admin/products", gin.H{
		"category_id":    cat.ID,
		"name":           "Apel",
		"price":          10000,
		"discount_price": 10000,
		"unit":           "kg",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminDeleteProduct_ConflictWhenOrdered(t *testing.T) {
	r := adminRouter(t)
	cat := seedCategory(t, "Buah")
	apel := seedProduct(t, cat.ID, "Apel", 10000, 10)

	order := models.Order{
		OrderNumber: "ORD-20250101-TEST", CustomerName: "Budi", CustomerPhone: "0812",
		DeliveryType: models.DeliveryPickup, Subtotal: 10000, Total: 10000,
		Status: models.StatusPending,
		Items: []models.OrderItem{
			{ProductID: apel.ID, ProductName: "Apel", ProductPrice: 10000, Quantity: 1, Total: 10000},
		},
	}
	require.NoError(t, config.DB.Create(&order).Error)

	w := doJSON(t, r, "DELETE", fmt.Sprintf("/api/admin/products/%d", apel.ID), nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	var count int64
	config.DB.Model(&models.Product{}).Where("id = ?", apel.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestAdminDeleteProduct_Unordered(t *testing.T) {
	r := adminRouter(t)
	cat := seedCategory(t, "Buah")
	apel := seedProduct(t, cat.ID, "Apel", 10000, 10)

	w := doJSON(t, r, "DELETE", fmt.Sprintf("/api/admin/products/%d", apel.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var count int64
	config.DB.Model(&models.Product{}).Where("id = ?", apel.ID).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestAdminDeleteCategory_ConflictWithProducts(t *testing.T) {
	r := adminRouter(t)
	cat := seedCategory(t, "Buah")
	seedProduct(t, cat.ID, "Apel", 10000, 10)

	w := doJSON(t, r, "DELETE", fmt.Sprintf("/api/admin/categories/%d", cat.ID), nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	empty := seedCategory(t, "Kosong")
	w = doJSON(t, r, "DELETE", fmt.Sprintf("/api/admin/categories/%d", empty.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminUpdateOrderStatus(t *testing.T) {
	r := adminRouter(t)
	order := models.Order{
		OrderNumber: "ORD-20250101-AAAA", CustomerName: "Budi", CustomerPhone: "0812",
		DeliveryType: models.DeliveryPickup, Subtotal: 1000, Total: 1000,
		Status: models.StatusPending,
	}
	require.NoError(t, config.DB.Create(&order).Error)

	// any enum value is settable, even skipping states
	w := doJSON(t, r, "PATCH", fmt.Sprintf("/api/admin/orders/%d/status", order.ID),
		gin.H{"status": "completed"})
	require.Equal(t, http.StatusOK, w.Code)

	var got models.Order
	require.NoError(t, config.DB.First(&got, order.ID).Error)
	assert.Equal(t, models.StatusCompleted, got.Status)

	// values outside the enum are rejected
	w = doJSON(t, r, "PATCH", fmt.Sprintf("/api/admin/orders/%d/status", order.ID),
		gin.H{"status": "shipped"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, "PATCH", "/api/admin/orders/99999/status", gin.H{"status": "confirmed"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminSettingsRoundTrip(t *testing.T) {
	r := adminRouter(t)

	w := doJSON(t, r, "GET", "/api/admin/settings", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Settings models.StoreSettings `json:"settings"`
	}
	decodeBody(t, w, &resp)
	assert.Equal(t, 5000.0, resp.Settings.DeliveryFee) // default

	w = doJSON(t, r, "PUT", "/api/admin/settings", gin.H{
		"store_name":   "Toko Segar",
		"delivery_fee": "8000",
		"bogus_key":    "ignored",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, "GET", "/api/admin/settings", nil)
	decodeBody(t, w, &resp)
	assert.Equal(t, "Toko Segar", resp.Settings.StoreName)
	assert.Equal(t, 8000.0, resp.Settings.DeliveryFee)

	var bogus int64
	config.DB.Model(&models.Setting{}).Where("key = ?", "bogus_key").Count(&bogus)
	assert.Equal(t, int64(0), bogus)
}

func TestAdminDashboardStats(t *testing.T) {
	r := adminRouter(t)
	cat := seedCategory(t, "Buah")
	seedProduct(t, cat.ID, "Apel", 10000, 10)
	seedProduct(t, cat.ID, "Habis", 10000, 0)

	order := models.Order{
		OrderNumber: "ORD-20250101-BBBB", CustomerName: "Budi", CustomerPhone: "0812",
		DeliveryType: models.DeliveryPickup, Subtotal: 10000, Total: 10000,
		Status: models.StatusPending,
	}
	require.NoError(t, config.DB.Create(&order).Error)

	w := doJSON(t, r, "GET", "/api/admin/dashboard", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Stats struct {
			TotalProducts   int64   `json:"total_products"`
			OutOfStock      int64   `json:"out_of_stock"`
			TotalCategories int64   `json:"total_categories"`
			PendingOrders   int64   `json:"pending_orders"`
			TodayOrders     int64   `json:"today_orders"`
			TodayRevenue    float64 `json:"today_revenue"`
		} `json:"stats"`
	}
	decodeBody(t, w, &resp)
	assert.Equal(t, int64(2), resp.Stats.TotalProducts)
	assert.Equal(t, int64(1), resp.Stats.OutOfStock)
	assert.Equal(t, int64(1), resp.Stats.TotalCategories)
	assert.Equal(t, int64(1), resp.Stats.PendingOrders)
	assert.Equal(t, int64(1), resp.Stats.TodayOrders)
	assert.Equal(t, 10000.0, resp.Stats.TodayRevenue)
}
