package services

import (
	"fmt"
	"time"

	"rentpro-backend/models"
)

// SmsTypeFor maps a group's most urgent days-to-deadline onto a notification
// checkpoint. Notifications fire only at the threshold crossing
// (before_deadline) and once the deadline is behind (after_deadline); any
// other day inside the window is intentionally silent.
func SmsTypeFor(earliestDaysToDeadline, thresholdDays int) (string, bool) {
	switch {
	case earliestDaysToDeadline == thresholdDays:
		return models.SmsTypeBeforeDeadline, true
	case earliestDaysToDeadline < 0:
		return models.SmsTypeAfterDeadline, true
	default:
		return "", false
	}
}

// DedupGuard decides whether a group still needs a notification. The dedup
// key is (customerID, customerType, jobType, smsType); a group is suppressed
// while a pending job exists for the key, or once a notification for the key
// was sent inside the current deadline window.
type DedupGuard struct {
	jobs    JobStore
	history HistoryStore
	now     func() time.Time
}

func NewDedupGuard(jobs JobStore, history HistoryStore) *DedupGuard {
	return &DedupGuard{jobs: jobs, history: history, now: time.Now}
}

// ShouldNotify returns false when the group was already notified for this
// checkpoint or a notification is still queued.
func (g *DedupGuard) ShouldNotify(group *CustomerGroup, jobType, smsType string, thresholdDays int) (bool, error) {
	pending, err := g.jobs.HasPendingByCustomer(group.CustomerID, group.CustomerType, jobType, smsType)
	if err != nil {
		return false, fmt.Errorf("check pending jobs: %w", err)
	}
	if pending {
		return false, nil
	}

	// The window spans 2N+1 days, so anything sent within the last
	// 2N+1 days for the same checkpoint belongs to this deadline.
	since := g.now().AddDate(0, 0, -(2*thresholdDays + 1))
	sent, err := g.history.HasSentByCustomerSince(group.CustomerID, group.CustomerType, jobType, smsType, since)
	if err != nil {
		return false, fmt.Errorf("check sent history: %w", err)
	}
	return !sent, nil
}
