package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"grocery-store-api/config"
	"grocery-store-api/models"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTest points the global DB at a fresh in-memory sqlite and returns a
// bare router; each test registers just the handlers it exercises.
func setupTest(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// a single connection keeps every query on the same in-memory database
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
		&models.Setting{},
	))

	config.DB = db
	config.UploadDir = t.TempDir()

	return gin.New()
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func seedCategory(t *testing.T, name string) models.Category {
	t.Helper()
	c := models.Category{Name: name, Slug: models.Slugify(name), IsActive: true}
	require.NoError(t, config.DB.Create(&c).Error)
	return c
}

func seedProduct(t *testing.T, categoryID uint, name string, price float64, stock int) models.Product {
	t.Helper()
	p := models.Product{
		CategoryID: categoryID,
		Name:       name,
		Slug:       models.Slugify(name),
		Price:      price,
		Unit:       "pcs",
		Stock:      stock,
		IsActive:   true,
	}
	require.NoError(t, config.DB.Create(&p).Error)
	return p
}
