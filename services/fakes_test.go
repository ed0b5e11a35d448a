package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"rentpro-backend/models"
)

// In-memory fakes for the engine's store and transport interfaces.

type fakeJobStore struct {
	jobs      map[uuid.UUID]*models.NotificationJob
	createErr map[string]error // keyed by phone
}

func newFakeJobStore() *fakeJobStore {
	return &fakeJobStore{
		jobs:      make(map[uuid.UUID]*models.NotificationJob),
		createErr: make(map[string]error),
	}
}

func (f *fakeJobStore) Create(job *models.NotificationJob) error {
	if err := f.createErr[job.Phone]; err != nil {
		return err
	}
	if job.ID == uuid.Nil {
		job.ID = uuid.New()
	}
	copied := *job
	f.jobs[job.ID] = &copied
	return nil
}

func (f *fakeJobStore) GetByID(id uuid.UUID) (*models.NotificationJob, error) {
	job, ok := f.jobs[id]
	if !ok {
		return nil, errors.New("job not found")
	}
	copied := *job
	return &copied, nil
}

func (f *fakeJobStore) DuePending(now time.Time) ([]models.NotificationJob, error) {
	var due []models.NotificationJob
	for _, job := range f.jobs {
		if job.Status == models.JobStatusPending && !job.ExecuteAt.After(now) {
			due = append(due, *job)
		}
	}
	return due, nil
}

func (f *fakeJobStore) HasPendingByPhone(phone, jobType string) (bool, error) {
	for _, job := range f.jobs {
		if job.Phone == phone && job.JobType == jobType && job.Status == models.JobStatusPending {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeJobStore) HasPendingByCustomer(customerID uuid.UUID, customerType, jobType, smsType string) (bool, error) {
	for _, job := range f.jobs {
		if job.CustomerID != nil && *job.CustomerID == customerID &&
			job.CustomerType == customerType && job.JobType == jobType &&
			job.SmsType == smsType && job.Status == models.JobStatusPending {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeJobStore) MarkCompleted(id uuid.UUID) error {
	return f.finalize(id, models.JobStatusCompleted, "")
}

func (f *fakeJobStore) MarkFailed(id uuid.UUID, errorMessage string) error {
	return f.finalize(id, models.JobStatusFailed, errorMessage)
}

func (f *fakeJobStore) finalize(id uuid.UUID, status, errorMessage string) error {
	job, ok := f.jobs[id]
	if !ok || job.Status != models.JobStatusPending {
		return ErrJobNotPending
	}
	job.Status = status
	job.ErrorMessage = errorMessage
	return nil
}

func (f *fakeJobStore) CountByStatus() (map[string]int64, error) {
	counts := map[string]int64{}
	for _, job := range f.jobs {
		counts[job.Status]++
	}
	return counts, nil
}

func (f *fakeJobStore) pendingCount() int {
	n := 0
	for _, job := range f.jobs {
		if job.Status == models.JobStatusPending {
			n++
		}
	}
	return n
}

type fakeHistoryStore struct {
	records []models.SmsHistory
}

func (f *fakeHistoryStore) Append(record *models.SmsHistory) error {
	f.records = append(f.records, *record)
	return nil
}

func (f *fakeHistoryStore) HasSentByCustomerSince(customerID uuid.UUID, customerType, jobType, smsType string, since time.Time) (bool, error) {
	for _, r := range f.records {
		if r.CustomerID != nil && *r.CustomerID == customerID &&
			r.CustomerType == customerType && r.JobType == jobType &&
			r.SmsType == smsType && !r.SentAt.Before(since) {
			return true, nil
		}
	}
	return false, nil
}

type fakeObligationStore struct {
	snapshots []ObligationSnapshot
	err       error
	calls     int
	onFind    func() // invoked inside FindNearDeadline, before returning
}

func (f *fakeObligationStore) FindNearDeadline(kind models.ObligationKind, thresholdDays int) ([]ObligationSnapshot, error) {
	f.calls++
	if f.onFind != nil {
		f.onFind()
	}
	return f.snapshots, f.err
}

func (f *fakeObligationStore) FindNearDeadlineGroupedByCustomer(kind models.ObligationKind, thresholdDays int) ([]CustomerGroup, error) {
	snapshots, err := f.FindNearDeadline(kind, thresholdDays)
	if err != nil {
		return nil, err
	}
	return GroupByCustomer(snapshots), nil
}

func (f *fakeObligationStore) FindNearDeadlineGroupedByCustomerAndDate(kind models.ObligationKind, thresholdDays int) ([]CustomerGroup, error) {
	snapshots, err := f.FindNearDeadline(kind, thresholdDays)
	if err != nil {
		return nil, err
	}
	return GroupByCustomerAndDate(snapshots), nil
}

type fakeSettings struct {
	threshold int
	language  string
	schedules map[string]string
}

func (f *fakeSettings) DeadlineThresholdDays() int {
	if f.threshold == 0 {
		return defaultThresholdDays
	}
	return f.threshold
}

func (f *fakeSettings) Schedule(key string) string {
	if spec, ok := f.schedules[key]; ok {
		return spec
	}
	return "@every 1h"
}

func (f *fakeSettings) SmsLanguage() string { return f.language }

type fakeTemplateStore struct {
	templates map[string]*models.SmsTemplate
}

func newFakeTemplateStore() *fakeTemplateStore {
	return &fakeTemplateStore{templates: make(map[string]*models.SmsTemplate)}
}

func (f *fakeTemplateStore) add(category, variant, english, amharic string) {
	f.templates[category+"/"+variant] = &models.SmsTemplate{
		Category:       category,
		Variant:        variant,
		MessageEnglish: english,
		MessageAmharic: amharic,
		IsActive:       true,
	}
}

func (f *fakeTemplateStore) FindActive(category, variant string) (*models.SmsTemplate, error) {
	template, ok := f.templates[category+"/"+variant]
	if !ok {
		return nil, fmt.Errorf("%w: %s/%s", ErrTemplateNotFound, category, variant)
	}
	return template, nil
}

type sentSMS struct {
	phone string
	body  string
}

type fakeTransport struct {
	sent       []sentSMS
	failPhones map[string]error
}

func newFakeTransport() *fakeTransport {
	return &fakeTransport{failPhones: make(map[string]error)}
}

func (f *fakeTransport) Send(phone, body string) error {
	if err := f.failPhones[phone]; err != nil {
		return err
	}
	f.sent = append(f.sent, sentSMS{phone: phone, body: body})
	return nil
}
