package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"rentpro-backend/models"
)

// ErrJobNotPending is returned when a finalize hits a job that already
// reached a terminal state. Terminal states are never overwritten.
var ErrJobNotPending = errors.New("notification job is not pending")

// JobStore holds notification jobs and enforces their lifecycle:
// pending -> completed|failed, both terminal.
type JobStore interface {
	Create(job *models.NotificationJob) error
	GetByID(id uuid.UUID) (*models.NotificationJob, error)
	DuePending(now time.Time) ([]models.NotificationJob, error)
	HasPendingByPhone(phone, jobType string) (bool, error)
	HasPendingByCustomer(customerID uuid.UUID, customerType, jobType, smsType string) (bool, error)
	MarkCompleted(id uuid.UUID) error
	MarkFailed(id uuid.UUID, errorMessage string) error
	CountByStatus() (map[string]int64, error)
}

type GormJobStore struct {
	db *gorm.DB
}

func NewGormJobStore(db *gorm.DB) *GormJobStore {
	return &GormJobStore{db: db}
}

func (s *GormJobStore) Create(job *models.NotificationJob) error {
	if err := s.db.Create(job).Error; err != nil {
		return fmt.Errorf("create notification job: %w", err)
	}
	return nil
}

func (s *GormJobStore) GetByID(id uuid.UUID) (*models.NotificationJob, error) {
	var job models.NotificationJob
	if err := s.db.Where("id = ?", id).First(&job).Error; err != nil {
		return nil, err
	}
	return &job, nil
}

func (s *GormJobStore) DuePending(now time.Time) ([]models.NotificationJob, error) {
	var jobs []models.NotificationJob
	err := s.db.
		Where("status = ? AND execute_at <= ?", models.JobStatusPending, now).
		Order("execute_at asc").
		Find(&jobs).Error
	if err != nil {
		return nil, fmt.Errorf("query due pending jobs: %w", err)
	}
	return jobs, nil
}

func (s *GormJobStore) HasPendingByPhone(phone, jobType string) (bool, error) {
	var count int64
	err := s.db.Model(&models.NotificationJob{}).
		Where("phone = ? AND job_type = ? AND status = ?", phone, jobType, models.JobStatusPending).
		Count(&count).Error
	return count > 0, err
}

func (s *GormJobStore) HasPendingByCustomer(customerID uuid.UUID, customerType, jobType, smsType string) (bool, error) {
	var count int64
	err := s.db.Model(&models.NotificationJob{}).
		Where("customer_id = ? AND customer_type = ? AND job_type = ? AND sms_type = ? AND status = ?",
			customerID, customerType, jobType, smsType, models.JobStatusPending).
		Count(&count).Error
	return count > 0, err
}

// MarkCompleted finalizes a pending job as completed. The status guard in
// the WHERE clause is what makes terminal states immutable.
func (s *GormJobStore) MarkCompleted(id uuid.UUID) error {
	return s.finalize(id, models.JobStatusCompleted, "")
}

// MarkFailed finalizes a pending job as failed. No automatic retry follows;
// a failed job stays failed until an administrator re-triggers manually.
func (s *GormJobStore) MarkFailed(id uuid.UUID, errorMessage string) error {
	return s.finalize(id, models.JobStatusFailed, errorMessage)
}

func (s *GormJobStore) finalize(id uuid.UUID, status, errorMessage string) error {
	updates := map[string]interface{}{"status": status}
	if errorMessage != "" {
		updates["error_message"] = errorMessage
	}
	result := s.db.Model(&models.NotificationJob{}).
		Where("id = ? AND status = ?", id, models.JobStatusPending).
		Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("finalize job %s: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrJobNotPending
	}
	return nil
}

func (s *GormJobStore) CountByStatus() (map[string]int64, error) {
	type row struct {
		Status string
		Total  int64
	}
	var rows []row
	err := s.db.Model(&models.NotificationJob{}).
		Select("status, count(*) as total").
		Group("status").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("count jobs by status: %w", err)
	}

	counts := map[string]int64{
		models.JobStatusPending:   0,
		models.JobStatusCompleted: 0,
		models.JobStatusFailed:    0,
	}
	for _, r := range rows {
		counts[r.Status] = r.Total
	}
	return counts, nil
}
