package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SmsHistory is the audit record appended by the job executor after a
// successful dispatch. The dedup guard reads it to suppress repeat
// notifications for a checkpoint already notified.
type SmsHistory struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key"`
	Phone   string    `gorm:"not null;index"`
	Message string    `gorm:"type:text;not null"`
	JobType string    `gorm:"type:varchar(40);not null;index"`
	SmsType string    `gorm:"type:varchar(20)"`

	CustomerID   *uuid.UUID `gorm:"type:uuid;index"`
	CustomerType string     `gorm:"type:varchar(20)"`
	SentAt       time.Time  `gorm:"index;not null"`

	gorm.Model
}

func (h *SmsHistory) BeforeCreate(tx *gorm.DB) (err error) {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	return
}
