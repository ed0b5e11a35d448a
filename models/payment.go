package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Payment statuses. Only unpaid payments are eligible for deadline
// notifications.
const (
	PaymentStatusUnpaid = "unpaid"
	PaymentStatusPaid   = "paid"
	PaymentStatusWaived = "waived"
)

// Payment is a single rent payment falling due for one space.
type Payment struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key"`
	CustomerID   uuid.UUID `gorm:"type:uuid;index;not null"`
	CustomerType string    `gorm:"type:varchar(20);not null"`
	SpaceID      uuid.UUID `gorm:"type:uuid;index;not null"`

	PaymentAmount float64   `gorm:"type:decimal(12,2);not null"`
	PaymentDue    time.Time `gorm:"index;not null"`
	Status        string    `gorm:"type:varchar(20);default:'unpaid';index"`
	PaidAt        *time.Time
	Notes         string

	Customer Customer `gorm:"foreignKey:CustomerID"`
	Space    Space    `gorm:"foreignKey:SpaceID"`

	gorm.Model
}

func (p *Payment) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return
}

func (p *Payment) ObligationID() uuid.UUID { return p.ID }
func (p *Payment) DueDate() time.Time      { return p.PaymentDue }
func (p *Payment) Amount() float64         { return p.PaymentAmount }
func (p *Payment) SpaceLabel() string      { return p.Space.Label }

func (p *Payment) CustomerKey() (uuid.UUID, string) {
	return p.CustomerID, p.CustomerType
}
