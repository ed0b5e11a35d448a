package services

import (
	"fmt"
	"sort"
	"sync"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Runnable is one schedulable unit: a deadline scanner or the job executor.
type Runnable interface {
	Run()
	InProgress() bool
}

// EntryStatus is the control-surface view of one scheduled unit.
type EntryStatus struct {
	Name           string `json:"name"`
	Running        bool   `json:"running"`
	Scheduled      bool   `json:"scheduled"`
	CronExpression string `json:"cronExpression"`
}

type scheduledEntry struct {
	settingKey string
	runner     Runnable
	entryID    cron.EntryID
	spec       string
	scheduled  bool
}

// Scheduler owns the cron engine and keeps every scanner and the executor
// on its own independent cadence. Cron specs come from the settings table
// and can be re-applied at runtime via Reload.
type Scheduler struct {
	cron     *cron.Cron
	settings SettingsProvider
	log      *logrus.Logger

	mu      sync.Mutex
	entries map[string]*scheduledEntry
	order   []string
	started bool
}

func NewScheduler(settings SettingsProvider, log *logrus.Logger) *Scheduler {
	return &Scheduler{
		cron:     cron.New(),
		settings: settings,
		log:      log,
		entries:  make(map[string]*scheduledEntry),
	}
}

// Register adds a runnable under a name whose cron spec lives at the given
// settings key. Must be called before Start.
func (s *Scheduler) Register(name, settingKey string, runner Runnable) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[name] = &scheduledEntry{settingKey: settingKey, runner: runner}
	s.order = append(s.order, name)
}

// Start schedules every registered entry and starts the cron engine.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, name := range s.order {
		if err := s.schedule(name); err != nil {
			s.log.Errorf("scheduler: %s: %v", name, err)
		}
	}
	s.cron.Start()
	s.started = true
	s.log.Info("notification scheduler started")
}

// schedule (re)adds one entry with the current cron spec. Caller holds mu.
func (s *Scheduler) schedule(name string) error {
	entry := s.entries[name]
	spec := s.settings.Schedule(entry.settingKey)

	if entry.scheduled {
		if spec == entry.spec {
			return nil
		}
		s.cron.Remove(entry.entryID)
		entry.scheduled = false
	}

	runner := entry.runner
	id, err := s.cron.AddFunc(spec, runner.Run)
	if err != nil {
		return fmt.Errorf("invalid cron spec %q: %w", spec, err)
	}
	entry.entryID = id
	entry.spec = spec
	entry.scheduled = true
	s.log.Infof("scheduler: %s scheduled with %q", name, spec)
	return nil
}

// Reload re-reads every cron spec from settings and reschedules entries
// whose spec changed.
func (s *Scheduler) Reload() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var firstErr error
	for _, name := range s.order {
		if err := s.schedule(name); err != nil {
			s.log.Errorf("scheduler: reload %s: %v", name, err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

// Stop stops the cron engine and waits for in-flight ticks to finish.
// An in-flight tick always runs to completion.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.started {
		return
	}
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.started = false
	s.log.Info("notification scheduler stopped")
}

// Status reports every entry in registration order.
func (s *Scheduler) Status() []EntryStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	statuses := make([]EntryStatus, 0, len(s.entries))
	for _, name := range s.order {
		entry := s.entries[name]
		statuses = append(statuses, EntryStatus{
			Name:           name,
			Running:        entry.runner.InProgress(),
			Scheduled:      entry.scheduled && s.started,
			CronExpression: entry.spec,
		})
	}
	sort.SliceStable(statuses, func(i, j int) bool { return statuses[i].Name < statuses[j].Name })
	return statuses
}
