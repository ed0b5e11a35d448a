package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PenaltyPeriod defines the daily penalty rate applied to a payment while
// it is between FromDay and ToDay days overdue (inclusive). Periods are
// reference data maintained by administrators.
type PenaltyPeriod struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key"`
	FromDay           int       `gorm:"not null"`
	ToDay             int       `gorm:"not null"`
	RatePerDayPercent float64   `gorm:"type:decimal(6,3);not null"`

	gorm.Model
}

func (p *PenaltyPeriod) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return
}
