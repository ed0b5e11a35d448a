package services

import (
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"rentpro-backend/models"
)

// DeadlineScanner discovers obligations of one kind near or over their
// deadline and enqueues notification jobs for them. One instance runs per
// obligation kind, each on its own schedule.
type DeadlineScanner struct {
	kind     models.ObligationKind
	jobType  string
	store    ObligationStore
	grouping GroupingPolicy
	settings SettingsProvider
	dedup    *DedupGuard
	renderer *MessageRenderer
	jobs     JobStore
	log      *logrus.Logger

	inProgress atomic.Bool
	now        func() time.Time
}

func NewDeadlineScanner(
	kind models.ObligationKind,
	store ObligationStore,
	grouping GroupingPolicy,
	settings SettingsProvider,
	dedup *DedupGuard,
	renderer *MessageRenderer,
	jobs JobStore,
	log *logrus.Logger,
) *DeadlineScanner {
	return &DeadlineScanner{
		kind:     kind,
		jobType:  JobTypeForKind(kind),
		store:    store,
		grouping: grouping,
		settings: settings,
		dedup:    dedup,
		renderer: renderer,
		jobs:     jobs,
		log:      log,
		now:      time.Now,
	}
}

// JobTypeForKind maps a scanner kind to its notification job type.
func JobTypeForKind(kind models.ObligationKind) string {
	switch kind {
	case models.KindContract:
		return models.JobTypeContractDeadline
	case models.KindDisplayPayment:
		return models.JobTypeDisplayPaymentDeadline
	case models.KindDisplayContract:
		return models.JobTypeDisplayContractDeadline
	default:
		return models.JobTypePaymentDeadline
	}
}

// Kind returns the obligation kind this scanner covers.
func (s *DeadlineScanner) Kind() models.ObligationKind { return s.kind }

// InProgress reports whether a tick is currently running.
func (s *DeadlineScanner) InProgress() bool { return s.inProgress.Load() }

// Run executes one scan tick. A tick that fires while the previous one is
// still running is skipped entirely, not queued.
func (s *DeadlineScanner) Run() {
	if !s.inProgress.CompareAndSwap(false, true) {
		s.log.Infof("%s scan still running, skipping tick", s.kind)
		return
	}
	defer s.inProgress.Store(false)

	threshold := s.settings.DeadlineThresholdDays()

	obligations, err := s.store.FindNearDeadline(s.kind, threshold)
	if err != nil {
		s.log.Errorf("%s scan: %v", s.kind, err)
		return
	}

	groups := s.grouping(obligations)
	s.log.Debugf("%s scan: %d obligations in %d groups (threshold %d days)",
		s.kind, len(obligations), len(groups), threshold)

	created := 0
	for i := range groups {
		ok, err := s.processGroup(&groups[i], threshold)
		if err != nil {
			// One group's failure never aborts the rest of the scan.
			s.log.Errorf("%s scan: customer %s: %v", s.kind, groups[i].CustomerID, err)
			continue
		}
		if ok {
			created++
		}
	}
	if created > 0 {
		s.log.Infof("%s scan: queued %d notification job(s)", s.kind, created)
	}
}

func (s *DeadlineScanner) processGroup(group *CustomerGroup, threshold int) (bool, error) {
	if group.CustomerID == uuid.Nil {
		s.log.Infof("%s scan: group without customer linkage, skipping", s.kind)
		return false, nil
	}
	if group.Phone == "" {
		s.log.Infof("%s scan: customer %s has no phone number, skipping", s.kind, group.CustomerID)
		return false, nil
	}

	smsType, atCheckpoint := SmsTypeFor(group.EarliestDaysToDeadline(), threshold)
	if !atCheckpoint {
		s.log.Debugf("%s scan: customer %s at %d day(s) is between checkpoints, skipping",
			s.kind, group.CustomerID, group.EarliestDaysToDeadline())
		return false, nil
	}

	notify, err := s.dedup.ShouldNotify(group, s.jobType, smsType, threshold)
	if err != nil {
		return false, err
	}
	if !notify {
		s.log.Infof("%s scan: customer %s already notified for %s, skipping",
			s.kind, group.CustomerID, smsType)
		return false, nil
	}

	language := s.settings.SmsLanguage()
	if language == "" {
		language = group.PreferredLanguage
	}
	if language == "" {
		language = models.LanguageAmharic
	}

	message, err := s.renderer.Render(group, s.kind, language)
	if err != nil {
		return false, err
	}

	customerID := group.CustomerID
	job := &models.NotificationJob{
		Phone:        group.Phone,
		Message:      message,
		ExecuteAt:    s.now(),
		Status:       models.JobStatusPending,
		JobType:      s.jobType,
		SmsType:      smsType,
		CustomerID:   &customerID,
		CustomerType: group.CustomerType,
	}
	if err := s.jobs.Create(job); err != nil {
		return false, err
	}
	return true, nil
}
