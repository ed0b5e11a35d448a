package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Job statuses. pending is the only non-terminal state; a job moves to
// completed or failed exactly once and never transitions out of either.
const (
	JobStatusPending   = "pending"
	JobStatusCompleted = "completed"
	JobStatusFailed    = "failed"
)

// Job types, one per scanner kind.
const (
	JobTypePaymentDeadline         = "payment_deadline"
	JobTypeContractDeadline        = "contract_deadline"
	JobTypeDisplayPaymentDeadline  = "display_payment_deadline"
	JobTypeDisplayContractDeadline = "display_contract_deadline"
)

// SMS types classify a notification as sent at the threshold crossing versus
// after the deadline has passed.
const (
	SmsTypeBeforeDeadline = "before_deadline"
	SmsTypeAfterDeadline  = "after_deadline"
)

// NotificationJob is a queued SMS created by a deadline scanner and
// dispatched by the job executor.
type NotificationJob struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	Phone     string    `gorm:"not null;index"`
	Message   string    `gorm:"type:text;not null"`
	ExecuteAt time.Time `gorm:"index;not null"`
	Status    string    `gorm:"type:varchar(20);default:'pending';index"`
	JobType   string    `gorm:"type:varchar(40);not null;index"`
	SmsType   string    `gorm:"type:varchar(20)"` // before_deadline, after_deadline

	CustomerID   *uuid.UUID `gorm:"type:uuid;index"`
	CustomerType string     `gorm:"type:varchar(20)"`
	ErrorMessage string     `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (j *NotificationJob) BeforeCreate(tx *gorm.DB) (err error) {
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	return
}

// IsTerminal reports whether the job has reached a final state.
func (j *NotificationJob) IsTerminal() bool {
	return j.Status == JobStatusCompleted || j.Status == JobStatusFailed
}
