package services

import (
	"strconv"
	"strings"

	"gorm.io/gorm"

	"rentpro-backend/models"
)

const defaultThresholdDays = 5

// Fallback cron specs used when a schedule setting is missing or blank.
var defaultSchedules = map[string]string{
	models.SettingSchedulePaymentScanner:         "0 8 * * *",
	models.SettingScheduleContractScanner:        "15 8 * * *",
	models.SettingScheduleDisplayPaymentScanner:  "30 8 * * *",
	models.SettingScheduleDisplayContractScanner: "45 8 * * *",
	models.SettingScheduleJobExecutor:            "*/5 * * * *",
}

// SettingsProvider supplies the runtime-mutable engine settings. Values are
// re-read on every use so database edits take effect on the next tick.
type SettingsProvider interface {
	DeadlineThresholdDays() int
	Schedule(key string) string
	SmsLanguage() string
}

type GormSettings struct {
	db *gorm.DB
}

func NewGormSettings(db *gorm.DB) *GormSettings {
	return &GormSettings{db: db}
}

func (s *GormSettings) get(key string) string {
	var setting models.Setting
	if err := s.db.Where("key = ?", key).First(&setting).Error; err != nil {
		return ""
	}
	return strings.TrimSpace(setting.Value)
}

func (s *GormSettings) DeadlineThresholdDays() int {
	value := s.get(models.SettingDeadlineThresholdDays)
	threshold, err := strconv.Atoi(value)
	if err != nil || threshold <= 0 {
		return defaultThresholdDays
	}
	return threshold
}

func (s *GormSettings) Schedule(key string) string {
	if spec := s.get(key); spec != "" {
		return spec
	}
	return defaultSchedules[key]
}

// SmsLanguage returns the forced SMS language, or "" when notifications
// should follow each customer's preference.
func (s *GormSettings) SmsLanguage() string {
	language := s.get(models.SettingSmsLanguage)
	if language == models.LanguageEnglish || language == models.LanguageAmharic {
		return language
	}
	return ""
}
