package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Customer types. Individuals and companies come from different intake flows
// and carry separate ID spaces, so the type travels with every customer
// reference.
const (
	CustomerTypeIndividual = "individual"
	CustomerTypeCompany    = "company"
)

// Supported SMS languages.
const (
	LanguageEnglish = "en"
	LanguageAmharic = "am"
)

type Customer struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key"`
	CustomerType string    `gorm:"type:varchar(20);not null;index"` // individual, company

	NameEnglish string
	NameAmharic string
	Phone       string `gorm:"index"`
	Email       string

	PreferredLanguage string `gorm:"type:varchar(5);default:'am'"` // en, am
	IsActive          bool   `gorm:"default:true"`
	LastNotifiedAt    *time.Time

	Payments  []Payment  `gorm:"foreignKey:CustomerID"`
	Contracts []Contract `gorm:"foreignKey:CustomerID"`

	gorm.Model
}

func (c *Customer) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return
}
