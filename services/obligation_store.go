package services

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"rentpro-backend/models"
	"rentpro-backend/utils"
)

// ObligationStore reads obligations near or over their deadline. Implemented
// against Postgres; scanners only see snapshots.
type ObligationStore interface {
	FindNearDeadline(kind models.ObligationKind, thresholdDays int) ([]ObligationSnapshot, error)
	FindNearDeadlineGroupedByCustomer(kind models.ObligationKind, thresholdDays int) ([]CustomerGroup, error)
	FindNearDeadlineGroupedByCustomerAndDate(kind models.ObligationKind, thresholdDays int) ([]CustomerGroup, error)
}

type GormObligationStore struct {
	db  *gorm.DB
	now func() time.Time
}

func NewGormObligationStore(db *gorm.DB) *GormObligationStore {
	return &GormObligationStore{db: db, now: time.Now}
}

// FindNearDeadline returns snapshots of unfinalized obligations whose due
// date lies within [-N, +N] days of today.
func (s *GormObligationStore) FindNearDeadline(kind models.ObligationKind, thresholdDays int) ([]ObligationSnapshot, error) {
	today := utils.BeginningOfDay(s.now())
	windowStart := today.AddDate(0, 0, -thresholdDays)
	windowEnd := today.AddDate(0, 0, thresholdDays+1) // exclusive

	if kind.IsContract() {
		return s.contractSnapshots(kind, today, windowStart, windowEnd)
	}
	return s.paymentSnapshots(kind, today, windowStart, windowEnd)
}

func (s *GormObligationStore) paymentSnapshots(kind models.ObligationKind, today, windowStart, windowEnd time.Time) ([]ObligationSnapshot, error) {
	var payments []models.Payment
	err := s.db.
		Preload("Customer").Preload("Space").
		Joins("JOIN spaces ON spaces.id = payments.space_id").
		Joins("JOIN customers ON customers.id = payments.customer_id").
		Where("payments.status = ?", models.PaymentStatusUnpaid).
		Where("spaces.space_type = ? AND spaces.is_active = true", kind.SpaceType()).
		Where("customers.is_active = true").
		Where("payments.payment_due >= ? AND payments.payment_due < ?", windowStart, windowEnd).
		Find(&payments).Error
	if err != nil {
		return nil, fmt.Errorf("query %s obligations: %w", kind, err)
	}

	snapshots := make([]ObligationSnapshot, 0, len(payments))
	for i := range payments {
		snapshots = append(snapshots, s.snapshot(&payments[i], kind, payments[i].Customer, today))
	}
	return snapshots, nil
}

func (s *GormObligationStore) contractSnapshots(kind models.ObligationKind, today, windowStart, windowEnd time.Time) ([]ObligationSnapshot, error) {
	var contracts []models.Contract
	err := s.db.
		Preload("Customer").Preload("Space").
		Joins("JOIN spaces ON spaces.id = contracts.space_id").
		Joins("JOIN customers ON customers.id = contracts.customer_id").
		Where("contracts.status = ?", models.ContractStatusActive).
		Where("spaces.space_type = ? AND spaces.is_active = true", kind.SpaceType()).
		Where("customers.is_active = true").
		Where("contracts.end_date >= ? AND contracts.end_date < ?", windowStart, windowEnd).
		Find(&contracts).Error
	if err != nil {
		return nil, fmt.Errorf("query %s obligations: %w", kind, err)
	}

	snapshots := make([]ObligationSnapshot, 0, len(contracts))
	for i := range contracts {
		snapshots = append(snapshots, s.snapshot(&contracts[i], kind, contracts[i].Customer, today))
	}
	return snapshots, nil
}

func (s *GormObligationStore) snapshot(o models.Obligation, kind models.ObligationKind, customer models.Customer, today time.Time) ObligationSnapshot {
	customerID, customerType := o.CustomerKey()
	return ObligationSnapshot{
		ID:             o.ObligationID(),
		Kind:           kind,
		CustomerID:     customerID,
		CustomerType:   customerType,
		SpaceLabel:     o.SpaceLabel(),
		Amount:         o.Amount(),
		DueDate:        o.DueDate(),
		DaysToDeadline: utils.DaysBetween(today, o.DueDate()),

		CustomerNameEnglish: customer.NameEnglish,
		CustomerNameAmharic: customer.NameAmharic,
		CustomerPhone:       customer.Phone,
		CustomerLanguage:    customer.PreferredLanguage,
	}
}

func (s *GormObligationStore) FindNearDeadlineGroupedByCustomer(kind models.ObligationKind, thresholdDays int) ([]CustomerGroup, error) {
	snapshots, err := s.FindNearDeadline(kind, thresholdDays)
	if err != nil {
		return nil, err
	}
	return GroupByCustomer(snapshots), nil
}

func (s *GormObligationStore) FindNearDeadlineGroupedByCustomerAndDate(kind models.ObligationKind, thresholdDays int) ([]CustomerGroup, error) {
	snapshots, err := s.FindNearDeadline(kind, thresholdDays)
	if err != nil {
		return nil, err
	}
	return GroupByCustomerAndDate(snapshots), nil
}
