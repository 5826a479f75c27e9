package config

import (
	"log"
	"os"
	"path/filepath"

	"grocery-store-api/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// JWTSecret used to sign tokens — read from env or fallback
var JWTSecret = []byte(getEnv("JWT_SECRET", "grocery_store_super_secret_2025"))

// UploadDir is the public-readable root for product images.
var UploadDir = getEnv("UPLOAD_DIR", "storage")

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func InitDB() {
	var err error
	DB, err = gorm.Open(sqlite.Open(getEnv("DB_PATH", "grocery_store.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate all models
	err = DB.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
		&models.Setting{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	if err := os.MkdirAll(filepath.Join(UploadDir, "products"), 0o755); err != nil {
		log.Fatal("Failed to create upload directory:", err)
	}

	log.Println("✅ Database connected and migrated successfully")
}
