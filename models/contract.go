package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Contract statuses. Only active contracts are eligible for deadline
// notifications.
const (
	ContractStatusActive     = "active"
	ContractStatusExpired    = "expired"
	ContractStatusTerminated = "terminated"
)

// Contract is a rental contract for one space. Its deadline is the contract
// end date and its amount is the monthly rent under renewal.
type Contract struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key"`
	CustomerID   uuid.UUID `gorm:"type:uuid;index;not null"`
	CustomerType string    `gorm:"type:varchar(20);not null"`
	SpaceID      uuid.UUID `gorm:"type:uuid;index;not null"`

	MonthlyRent float64   `gorm:"type:decimal(12,2);not null"`
	StartDate   time.Time `gorm:"not null"`
	EndDate     time.Time `gorm:"index;not null"`
	Status      string    `gorm:"type:varchar(20);default:'active';index"`
	Notes       string

	Customer Customer `gorm:"foreignKey:CustomerID"`
	Space    Space    `gorm:"foreignKey:SpaceID"`

	gorm.Model
}

func (c *Contract) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return
}

func (c *Contract) ObligationID() uuid.UUID { return c.ID }
func (c *Contract) DueDate() time.Time      { return c.EndDate }
func (c *Contract) Amount() float64         { return c.MonthlyRent }
func (c *Contract) SpaceLabel() string      { return c.Space.Label }

func (c *Contract) CustomerKey() (uuid.UUID, string) {
	return c.CustomerID, c.CustomerType
}
