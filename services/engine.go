package services

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"rentpro-backend/models"
)

// Scheduler entry names, also used by the admin control surface.
const (
	SchedulerPaymentScanner         = "payment_scanner"
	SchedulerContractScanner        = "contract_scanner"
	SchedulerDisplayPaymentScanner  = "display_payment_scanner"
	SchedulerDisplayContractScanner = "display_contract_scanner"
	SchedulerJobExecutor            = "job_executor"
)

// Engine wires the whole notification pipeline: four deadline scanners, the
// job executor and the scheduler that drives them.
type Engine struct {
	Scanners  map[models.ObligationKind]*DeadlineScanner
	Executor  *JobExecutor
	Scheduler *Scheduler
	Jobs      JobStore
	History   HistoryStore
	Settings  SettingsProvider
}

// NewEngine builds the engine against the given database. The transport is
// injected so tests and dry-run setups can swap Twilio out.
func NewEngine(db *gorm.DB, transport Transport, log *logrus.Logger) *Engine {
	obligations := NewGormObligationStore(db)
	jobs := NewGormJobStore(db)
	history := NewGormHistoryStore(db)
	templates := NewGormTemplateStore(db)
	settings := NewGormSettings(db)

	dedup := NewDedupGuard(jobs, history)
	renderer := NewMessageRenderer(templates)

	// Legacy kinds group per customer; the display kinds group per
	// customer and due date. The split is historical, see DESIGN.md.
	scanners := map[models.ObligationKind]*DeadlineScanner{
		models.KindPayment:         NewDeadlineScanner(models.KindPayment, obligations, GroupByCustomer, settings, dedup, renderer, jobs, log),
		models.KindContract:        NewDeadlineScanner(models.KindContract, obligations, GroupByCustomer, settings, dedup, renderer, jobs, log),
		models.KindDisplayPayment:  NewDeadlineScanner(models.KindDisplayPayment, obligations, GroupByCustomerAndDate, settings, dedup, renderer, jobs, log),
		models.KindDisplayContract: NewDeadlineScanner(models.KindDisplayContract, obligations, GroupByCustomerAndDate, settings, dedup, renderer, jobs, log),
	}

	executor := NewJobExecutor(jobs, history, transport, log)

	scheduler := NewScheduler(settings, log)
	scheduler.Register(SchedulerPaymentScanner, models.SettingSchedulePaymentScanner, scanners[models.KindPayment])
	scheduler.Register(SchedulerContractScanner, models.SettingScheduleContractScanner, scanners[models.KindContract])
	scheduler.Register(SchedulerDisplayPaymentScanner, models.SettingScheduleDisplayPaymentScanner, scanners[models.KindDisplayPayment])
	scheduler.Register(SchedulerDisplayContractScanner, models.SettingScheduleDisplayContractScanner, scanners[models.KindDisplayContract])
	scheduler.Register(SchedulerJobExecutor, models.SettingScheduleJobExecutor, executor)

	return &Engine{
		Scanners:  scanners,
		Executor:  executor,
		Scheduler: scheduler,
		Jobs:      jobs,
		History:   history,
		Settings:  settings,
	}
}

// TriggerScan runs one scanner synchronously. Used by the admin control
// surface for manual re-triggers.
func (e *Engine) TriggerScan(kind models.ObligationKind) error {
	scanner, ok := e.Scanners[kind]
	if !ok {
		return fmt.Errorf("unknown obligation kind %q", kind)
	}
	scanner.Run()
	return nil
}

// TriggerExecution runs the job executor synchronously.
func (e *Engine) TriggerExecution() {
	e.Executor.Run()
}
