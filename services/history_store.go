package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"rentpro-backend/models"
)

// HistoryStore is the audit trail of sent notifications.
type HistoryStore interface {
	Append(record *models.SmsHistory) error
	// HasSentByCustomerSince reports whether a notification with the given
	// dedup key was sent at or after the given time. The time bound keeps
	// the guard scoped to the current deadline window instead of
	// suppressing the customer forever.
	HasSentByCustomerSince(customerID uuid.UUID, customerType, jobType, smsType string, since time.Time) (bool, error)
}

type GormHistoryStore struct {
	db *gorm.DB
}

func NewGormHistoryStore(db *gorm.DB) *GormHistoryStore {
	return &GormHistoryStore{db: db}
}

func (s *GormHistoryStore) Append(record *models.SmsHistory) error {
	if err := s.db.Create(record).Error; err != nil {
		return fmt.Errorf("append sms history: %w", err)
	}
	return nil
}

func (s *GormHistoryStore) HasSentByCustomerSince(customerID uuid.UUID, customerType, jobType, smsType string, since time.Time) (bool, error) {
	var count int64
	err := s.db.Model(&models.SmsHistory{}).
		Where("customer_id = ? AND customer_type = ? AND job_type = ? AND sms_type = ? AND sent_at >= ?",
			customerID, customerType, jobType, smsType, since).
		Count(&count).Error
	return count > 0, err
}
