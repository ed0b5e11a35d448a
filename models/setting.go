package models

import "time"

// Setting is a runtime-mutable key/value pair. The notification engine reads
// its threshold, cron schedules and language from here on every tick, so
// updates take effect without a restart.
type Setting struct {
	Key   string `gorm:"primary_key;type:varchar(80)"`
	Value string `gorm:"type:text;not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Setting keys used by the engine.
const (
	SettingDeadlineThresholdDays = "deadline_threshold_days"
	SettingSmsLanguage           = "sms_language"

	SettingSchedulePaymentScanner         = "schedule.payment_scanner"
	SettingScheduleContractScanner        = "schedule.contract_scanner"
	SettingScheduleDisplayPaymentScanner  = "schedule.display_payment_scanner"
	SettingScheduleDisplayContractScanner = "schedule.display_contract_scanner"
	SettingScheduleJobExecutor            = "schedule.job_executor"
)
