package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentpro-backend/models"
)

func TestSmsTypeFor_Checkpoints(t *testing.T) {
	threshold := 5

	smsType, ok := SmsTypeFor(5, threshold)
	assert.True(t, ok)
	assert.Equal(t, models.SmsTypeBeforeDeadline, smsType)

	smsType, ok = SmsTypeFor(-1, threshold)
	assert.True(t, ok)
	assert.Equal(t, models.SmsTypeAfterDeadline, smsType)

	smsType, ok = SmsTypeFor(-4, threshold)
	assert.True(t, ok)
	assert.Equal(t, models.SmsTypeAfterDeadline, smsType)

	// Inside the window but between the two checkpoints: silent.
	for _, days := range []int{0, 1, 2, 3, 4} {
		_, ok := SmsTypeFor(days, threshold)
		assert.False(t, ok, "days=%d", days)
	}
	// Beyond the threshold is not a checkpoint either.
	_, ok = SmsTypeFor(6, threshold)
	assert.False(t, ok)
}

func dedupGroup() *CustomerGroup {
	return &CustomerGroup{
		CustomerID:   uuid.New(),
		CustomerType: models.CustomerTypeIndividual,
		Phone:        "+251911000001",
	}
}

func TestShouldNotify_FreshCustomer(t *testing.T) {
	guard := NewDedupGuard(newFakeJobStore(), &fakeHistoryStore{})

	notify, err := guard.ShouldNotify(dedupGroup(), models.JobTypePaymentDeadline, models.SmsTypeBeforeDeadline, 5)
	require.NoError(t, err)
	assert.True(t, notify)
}

func TestShouldNotify_SuppressedByPendingJob(t *testing.T) {
	jobs := newFakeJobStore()
	group := dedupGroup()
	customerID := group.CustomerID
	require.NoError(t, jobs.Create(&models.NotificationJob{
		Phone:        group.Phone,
		Message:      "queued",
		Status:       models.JobStatusPending,
		JobType:      models.JobTypePaymentDeadline,
		SmsType:      models.SmsTypeBeforeDeadline,
		CustomerID:   &customerID,
		CustomerType: group.CustomerType,
	}))

	guard := NewDedupGuard(jobs, &fakeHistoryStore{})

	notify, err := guard.ShouldNotify(group, models.JobTypePaymentDeadline, models.SmsTypeBeforeDeadline, 5)
	require.NoError(t, err)
	assert.False(t, notify)

	// A different checkpoint of the same job type is not suppressed.
	notify, err = guard.ShouldNotify(group, models.JobTypePaymentDeadline, models.SmsTypeAfterDeadline, 5)
	require.NoError(t, err)
	assert.True(t, notify)
}

func TestShouldNotify_SuppressedByRecentHistory(t *testing.T) {
	group := dedupGroup()
	customerID := group.CustomerID
	history := &fakeHistoryStore{}
	require.NoError(t, history.Append(&models.SmsHistory{
		Phone:        group.Phone,
		JobType:      models.JobTypePaymentDeadline,
		SmsType:      models.SmsTypeBeforeDeadline,
		CustomerID:   &customerID,
		CustomerType: group.CustomerType,
		SentAt:       time.Now().AddDate(0, 0, -2),
	}))

	guard := NewDedupGuard(newFakeJobStore(), history)

	notify, err := guard.ShouldNotify(group, models.JobTypePaymentDeadline, models.SmsTypeBeforeDeadline, 5)
	require.NoError(t, err)
	assert.False(t, notify)
}

// History older than the deadline window belongs to a previous deadline and
// must not suppress the next one.
func TestShouldNotify_OldHistoryIgnored(t *testing.T) {
	group := dedupGroup()
	customerID := group.CustomerID
	history := &fakeHistoryStore{}
	require.NoError(t, history.Append(&models.SmsHistory{
		JobType:      models.JobTypePaymentDeadline,
		SmsType:      models.SmsTypeBeforeDeadline,
		CustomerID:   &customerID,
		CustomerType: group.CustomerType,
		SentAt:       time.Now().AddDate(0, 0, -30),
	}))

	guard := NewDedupGuard(newFakeJobStore(), history)

	notify, err := guard.ShouldNotify(group, models.JobTypePaymentDeadline, models.SmsTypeBeforeDeadline, 5)
	require.NoError(t, err)
	assert.True(t, notify)
}
