package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Space types. Rooms are ordinary rentable units; displays are advertising
// surfaces rented under their own payment and contract terms.
const (
	SpaceTypeRoom    = "room"
	SpaceTypeDisplay = "display"
)

type Space struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	Label     string    `gorm:"not null;uniqueIndex"` // e.g. "A-101", "D-12"
	SpaceType string    `gorm:"type:varchar(20);not null;index"`
	Floor     string
	IsActive  bool `gorm:"default:true"`

	gorm.Model
}

func (s *Space) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}
