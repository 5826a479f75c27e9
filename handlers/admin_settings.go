package handlers

import (
	"net/http"

	"grocery-store-api/config"
	"grocery-store-api/models"

	"github.com/gin-gonic/gin"
)

// AdminGetSettings returns the store settings snapshot with defaults applied.
func AdminGetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"settings": models.LoadStoreSettings(config.DB)})
}

// AdminUpdateSettings upserts the provided settings keys. Unknown keys are
// ignored so the endpoint can't be used to stash arbitrary data.
func AdminUpdateSettings(c *gin.Context) {
	var req map[string]string
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	for key, value := range req {
		if _, known := models.SettingDefaults[key]; !known {
			continue
		}
		if err := models.SetSetting(config.DB, key, value); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save settings"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Settings updated",
		"settings": models.LoadStoreSettings(config.DB),
	})
}
