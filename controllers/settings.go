// controllers/settings.go
package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"

	"rentpro-backend/config"
	"rentpro-backend/models"
	"rentpro-backend/services"
	"rentpro-backend/utils"
)

// SettingsController reads and updates engine settings. Schedule updates
// reschedule the affected cron entries immediately.
type SettingsController struct {
	Engine *services.Engine
}

// GetSettings returns every setting row.
// GET /api/settings
func (sc *SettingsController) GetSettings(c *gin.Context) {
	var settings []models.Setting
	if err := config.DB.Order("key").Find(&settings).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve settings")
		return
	}
	c.JSON(http.StatusOK, settings)
}

type UpdateSettingInput struct {
	Value string `json:"value" binding:"required"`
}

// UpdateSetting updates one setting by key.
// PUT /api/settings/:key
func (sc *SettingsController) UpdateSetting(c *gin.Context) {
	key := c.Param("key")

	var input UpdateSettingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	value := strings.TrimSpace(input.Value)

	if err := validateSetting(key, value); err != "" {
		utils.RespondWithError(c, http.StatusBadRequest, err)
		return
	}

	var setting models.Setting
	if err := config.DB.Where("key = ?", key).First(&setting).Error; err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Unknown setting: "+key)
		return
	}

	setting.Value = value
	if err := config.DB.Save(&setting).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update setting")
		return
	}

	// Schedule changes take effect right away, everything else is read
	// fresh on the next tick anyway.
	if strings.HasPrefix(key, "schedule.") {
		if err := sc.Engine.Scheduler.Reload(); err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Setting saved but reschedule failed: "+err.Error())
			return
		}
	}

	c.JSON(http.StatusOK, setting)
}

func validateSetting(key, value string) string {
	switch {
	case key == models.SettingDeadlineThresholdDays:
		threshold, err := strconv.Atoi(value)
		if err != nil || threshold <= 0 || threshold > 60 {
			return "Threshold must be a number of days between 1 and 60"
		}
	case key == models.SettingSmsLanguage:
		if value != "" && value != models.LanguageEnglish && value != models.LanguageAmharic {
			return "Language must be 'en', 'am' or empty"
		}
	case strings.HasPrefix(key, "schedule."):
		if _, err := cron.ParseStandard(value); err != nil {
			return "Invalid cron expression: " + err.Error()
		}
	}
	return ""
}
