package config

import (
	"errors"

	"gorm.io/gorm"

	"rentpro-backend/models"
)

// SeedDefaults inserts the settings, SMS templates and penalty periods the
// engine needs to run. Existing rows are left untouched, so operators can
// edit any of them without the next restart reverting the change.
func SeedDefaults() {
	seedSettings()
	seedTemplates()
	seedPenaltyPeriods()
}

func seedSettings() {
	defaults := map[string]string{
		models.SettingDeadlineThresholdDays:          "5",
		models.SettingSmsLanguage:                    "", // empty: follow customer preference
		models.SettingSchedulePaymentScanner:         "0 8 * * *",
		models.SettingScheduleContractScanner:        "15 8 * * *",
		models.SettingScheduleDisplayPaymentScanner:  "30 8 * * *",
		models.SettingScheduleDisplayContractScanner: "45 8 * * *",
		models.SettingScheduleJobExecutor:            "*/5 * * * *",
	}

	for key, value := range defaults {
		var existing models.Setting
		err := DB.Where("key = ?", key).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := DB.Create(&models.Setting{Key: key, Value: value}).Error; err != nil {
				Log.Errorf("Failed to seed setting %s: %v", key, err)
			}
		}
	}
}

type templateSeed struct {
	category string
	variant  string
	english  string
	amharic  string
}

func seedTemplates() {
	seeds := []templateSeed{
		{
			category: models.TemplateCategoryPayment,
			variant:  models.TemplateVariantApproaching,
			english:  "Dear {customer_name}, your rent payment of {amount} for {spaces} is due {when} ({due_date}). Please settle it on time.",
			amharic:  "ውድ {customer_name}፣ የ{spaces} የኪራይ ክፍያዎ {amount} መክፈያ ቀን {when} ({due_date}) ነው። እባክዎ በወቅቱ ይክፈሉ።",
		},
		{
			category: models.TemplateCategoryPayment,
			variant:  models.TemplateVariantPassed,
			english:  "Dear {customer_name}, your rent payment of {amount} for {spaces} was due {when} ({due_date}). Please settle it immediately.",
			amharic:  "ውድ {customer_name}፣ የ{spaces} የኪራይ ክፍያዎ {amount} መክፈያ ቀን {when} ({due_date}) አልፏል። እባክዎ በአስቸኳይ ይክፈሉ።",
		},
		{
			category: models.TemplateCategoryContract,
			variant:  models.TemplateVariantApproaching,
			english:  "Dear {customer_name}, your rental contract for {spaces} expires {when} ({due_date}). Please visit our office to renew it.",
			amharic:  "ውድ {customer_name}፣ የ{spaces} የኪራይ ውልዎ {when} ({due_date}) ያበቃል። ለማደስ እባክዎ ቢሮአችን ይምጡ።",
		},
		{
			category: models.TemplateCategoryContract,
			variant:  models.TemplateVariantPassed,
			english:  "Dear {customer_name}, your rental contract for {spaces} expired {when} ({due_date}). Please visit our office to renew it.",
			amharic:  "ውድ {customer_name}፣ የ{spaces} የኪራይ ውልዎ {when} ({due_date}) አብቅቷል። ለማደስ እባክዎ ቢሮአችን ይምጡ።",
		},
		{
			category: models.TemplateCategoryDisplayPayment,
			variant:  models.TemplateVariantApproaching,
			english:  "Dear {customer_name}, your display rent payment of {amount} for {spaces} is due {when} ({due_date}). Please settle it on time.",
			amharic:  "ውድ {customer_name}፣ የ{spaces} የማስታወቂያ ሰሌዳ ኪራይ ክፍያዎ {amount} መክፈያ ቀን {when} ({due_date}) ነው። እባክዎ በወቅቱ ይክፈሉ።",
		},
		{
			category: models.TemplateCategoryDisplayPayment,
			variant:  models.TemplateVariantPassed,
			english:  "Dear {customer_name}, your display rent payment of {amount} for {spaces} was due {when} ({due_date}). Please settle it immediately.",
			amharic:  "ውድ {customer_name}፣ የ{spaces} የማስታወቂያ ሰሌዳ ኪራይ ክፍያዎ {amount} መክፈያ ቀን {when} ({due_date}) አልፏል። እባክዎ በአስቸኳይ ይክፈሉ።",
		},
		{
			category: models.TemplateCategoryDisplayContract,
			variant:  models.TemplateVariantApproaching,
			english:  "Dear {customer_name}, your display rental contract for {spaces} expires {when} ({due_date}). Please visit our office to renew it.",
			amharic:  "ውድ {customer_name}፣ የ{spaces} የማስታወቂያ ሰሌዳ ኪራይ ውልዎ {when} ({due_date}) ያበቃል። ለማደስ እባክዎ ቢሮአችን ይምጡ።",
		},
		{
			category: models.TemplateCategoryDisplayContract,
			variant:  models.TemplateVariantPassed,
			english:  "Dear {customer_name}, your display rental contract for {spaces} expired {when} ({due_date}). Please visit our office to renew it.",
			amharic:  "ውድ {customer_name}፣ የ{spaces} የማስታወቂያ ሰሌዳ ኪራይ ውልዎ {when} ({due_date}) አብቅቷል። ለማደስ እባክዎ ቢሮአችን ይምጡ።",
		},
	}

	for _, seed := range seeds {
		var existing models.SmsTemplate
		err := DB.Where("category = ? AND variant = ?", seed.category, seed.variant).
			First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			template := models.SmsTemplate{
				Category:       seed.category,
				Variant:        seed.variant,
				MessageEnglish: seed.english,
				MessageAmharic: seed.amharic,
				IsActive:       true,
			}
			if err := DB.Create(&template).Error; err != nil {
				Log.Errorf("Failed to seed template %s/%s: %v", seed.category, seed.variant, err)
			}
		}
	}
}

func seedPenaltyPeriods() {
	var count int64
	DB.Model(&models.PenaltyPeriod{}).Count(&count)
	if count > 0 {
		return
	}

	periods := []models.PenaltyPeriod{
		{FromDay: 1, ToDay: 10, RatePerDayPercent: 0.5},
		{FromDay: 11, ToDay: 30, RatePerDayPercent: 1.0},
		{FromDay: 31, ToDay: 90, RatePerDayPercent: 1.5},
	}
	for _, period := range periods {
		if err := DB.Create(&period).Error; err != nil {
			Log.Errorf("Failed to seed penalty period %d-%d: %v", period.FromDay, period.ToDay, err)
		}
	}
}
