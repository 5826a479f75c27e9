package models

import (
	"strconv"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Setting is a key/value row for store-level configuration editable from the
// admin panel.
type Setting struct {
	ID    uint   `json:"id" gorm:"primaryKey"`
	Key   string `json:"key" gorm:"uniqueIndex;not null"`
	Value string `json:"value"`
}

// SettingDefaults are used read-through when a key has no row yet.
var SettingDefaults = map[string]string{
	"store_name":      "Toko Sembako",
	"store_address":   "",
	"store_phone":     "",
	"whatsapp_number": "",
	"delivery_fee":    "5000",
}

// GetSetting returns the stored value for key, falling back to the compiled-in
// default when the row is absent.
func GetSetting(db *gorm.DB, key string) string {
	var s Setting
	if err := db.Where("key = ?", key).First(&s).Error; err != nil {
		return SettingDefaults[key]
	}
	return s.Value
}

// SetSetting upserts a setting row.
func SetSetting(db *gorm.DB, key, value string) error {
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&Setting{Key: key, Value: value}).Error
}

// StoreSettings is the read-only snapshot of store configuration injected into
// order creation and the WhatsApp formatter.
type StoreSettings struct {
	StoreName      string  `json:"store_name"`
	StoreAddress   string  `json:"store_address"`
	StorePhone     string  `json:"store_phone"`
	WhatsAppNumber string  `json:"whatsapp_number"`
	DeliveryFee    float64 `json:"delivery_fee"`
}

// LoadStoreSettings reads the full settings snapshot from the database.
func LoadStoreSettings(db *gorm.DB) StoreSettings {
	fee, err := strconv.ParseFloat(GetSetting(db, "delivery_fee"), 64)
	if err != nil {
		fee, _ = strconv.ParseFloat(SettingDefaults["delivery_fee"], 64)
	}
	return StoreSettings{
		StoreName:      GetSetting(db, "store_name"),
		StoreAddress:   GetSetting(db, "store_address"),
		StorePhone:     GetSetting(db, "store_phone"),
		WhatsAppNumber: GetSetting(db, "whatsapp_number"),
		DeliveryFee:    fee,
	}
}
