package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentpro-backend/models"
)

type fakeRunnable struct {
	runs       int
	inProgress bool
}

func (f *fakeRunnable) Run()             { f.runs++ }
func (f *fakeRunnable) InProgress() bool { return f.inProgress }

func TestScheduler_StatusReflectsEntries(t *testing.T) {
	settings := &fakeSettings{schedules: map[string]string{
		models.SettingSchedulePaymentScanner:  "0 9 * * *",
		models.SettingScheduleJobExecutor: "@every 1m",
	}}
	scheduler := NewScheduler(settings, testLogger())
	scanner := &fakeRunnable{inProgress: true}
	executor := &fakeRunnable{}
	scheduler.Register(SchedulerPaymentScanner, models.SettingSchedulePaymentScanner, scanner)
	scheduler.Register(SchedulerJobExecutor, models.SettingScheduleJobExecutor, executor)

	scheduler.Start()
	defer scheduler.Stop()

	statuses := scheduler.Status()
	require.Len(t, statuses, 2)

	byName := map[string]EntryStatus{}
	for _, s := range statuses {
		byName[s.Name] = s
	}
	assert.True(t, byName[SchedulerPaymentScanner].Scheduled)
	assert.True(t, byName[SchedulerPaymentScanner].Running)
	assert.Equal(t, "0 9 * * *", byName[SchedulerPaymentScanner].CronExpression)
	assert.True(t, byName[SchedulerJobExecutor].Scheduled)
	assert.False(t, byName[SchedulerJobExecutor].Running)
	assert.Equal(t, "@every 1m", byName[SchedulerJobExecutor].CronExpression)
}

func TestScheduler_InvalidSpecLeavesEntryUnscheduled(t *testing.T) {
	settings := &fakeSettings{schedules: map[string]string{
		models.SettingSchedulePaymentScanner: "not a cron spec",
	}}
	scheduler := NewScheduler(settings, testLogger())
	scheduler.Register(SchedulerPaymentScanner, models.SettingSchedulePaymentScanner, &fakeRunnable{})

	scheduler.Start()
	defer scheduler.Stop()

	statuses := scheduler.Status()
	require.Len(t, statuses, 1)
	assert.False(t, statuses[0].Scheduled)
}

func TestScheduler_ReloadReschedulesChangedSpec(t *testing.T) {
	settings := &fakeSettings{schedules: map[string]string{
		models.SettingSchedulePaymentScanner: "0 9 * * *",
	}}
	scheduler := NewScheduler(settings, testLogger())
	scheduler.Register(SchedulerPaymentScanner, models.SettingSchedulePaymentScanner, &fakeRunnable{})
	scheduler.Start()
	defer scheduler.Stop()

	settings.schedules[models.SettingSchedulePaymentScanner] = "0 18 * * *"
	require.NoError(t, scheduler.Reload())

	statuses := scheduler.Status()
	require.Len(t, statuses, 1)
	assert.Equal(t, "0 18 * * *", statuses[0].CronExpression)
	assert.True(t, statuses[0].Scheduled)
}
