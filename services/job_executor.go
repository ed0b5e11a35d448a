package services

import (
	"errors"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"rentpro-backend/models"
)

// JobExecutor dispatches due pending notification jobs through the
// transport and finalizes their state. It runs on its own schedule,
// independent of every scanner.
type JobExecutor struct {
	jobs      JobStore
	history   HistoryStore
	transport Transport
	log       *logrus.Logger

	inProgress atomic.Bool
	now        func() time.Time
}

func NewJobExecutor(jobs JobStore, history HistoryStore, transport Transport, log *logrus.Logger) *JobExecutor {
	return &JobExecutor{
		jobs:      jobs,
		history:   history,
		transport: transport,
		log:       log,
		now:       time.Now,
	}
}

// InProgress reports whether a tick is currently running.
func (e *JobExecutor) InProgress() bool { return e.inProgress.Load() }

// Run executes one dispatch tick over all due pending jobs. Jobs are
// processed sequentially; one job's failure never halts the rest.
func (e *JobExecutor) Run() {
	if !e.inProgress.CompareAndSwap(false, true) {
		e.log.Info("job execution still running, skipping tick")
		return
	}
	defer e.inProgress.Store(false)

	due, err := e.jobs.DuePending(e.now())
	if err != nil {
		e.log.Errorf("job execution: %v", err)
		return
	}
	if len(due) == 0 {
		return
	}
	e.log.Infof("job execution: %d due job(s)", len(due))

	for i := range due {
		e.dispatch(due[i].ID)
	}
}

// dispatch sends a single job. The job is re-fetched and re-checked first:
// a manual trigger or a second executor may have finalized it since the
// due-jobs query ran.
func (e *JobExecutor) dispatch(id uuid.UUID) {
	job, err := e.jobs.GetByID(id)
	if err != nil {
		e.log.Errorf("job %s: re-fetch failed: %v", id, err)
		return
	}
	if job.Status != models.JobStatusPending {
		e.log.Infof("job %s: no longer pending (%s), skipping", job.ID, job.Status)
		return
	}
	if job.ExecuteAt.After(e.now()) {
		e.log.Infof("job %s: not yet due, skipping", job.ID)
		return
	}

	if err := e.transport.Send(job.Phone, job.Message); err != nil {
		e.log.Errorf("job %s: send to %s failed: %v", job.ID, job.Phone, err)
		if err := e.jobs.MarkFailed(job.ID, err.Error()); err != nil && !errors.Is(err, ErrJobNotPending) {
			e.log.Errorf("job %s: mark failed: %v", job.ID, err)
		}
		return
	}

	if err := e.jobs.MarkCompleted(job.ID); err != nil {
		if errors.Is(err, ErrJobNotPending) {
			e.log.Warnf("job %s: finalized by someone else after send", job.ID)
		} else {
			e.log.Errorf("job %s: mark completed: %v", job.ID, err)
		}
		return
	}

	record := &models.SmsHistory{
		Phone:        job.Phone,
		Message:      job.Message,
		JobType:      job.JobType,
		SmsType:      job.SmsType,
		CustomerID:   job.CustomerID,
		CustomerType: job.CustomerType,
		SentAt:       e.now(),
	}
	if err := e.history.Append(record); err != nil {
		e.log.Errorf("job %s: history append: %v", job.ID, err)
	}
	e.log.Infof("job %s: sent to %s", job.ID, job.Phone)
}
