package reporting

import (
	"context"
	"fmt"
	"time"

	"placement_portal_backend/internal/analytics"
	"placement_portal_backend/internal/events"
	"placement_portal_backend/platform/config"
	"placement_portal_backend/platform/logger"

	"github.com/robfig/cron/v3"
)

// Scheduler owns the cron instance that fires the daily and weekly reports.
// Cron computes the exact next trigger instant in the configured location,
// so there is no per-minute polling and no drift; a slow report simply
// delays that one run. Stop waits for any in-flight run to finish.
type Scheduler struct {
	cron *cron.Cron
	svc  *Service
	bus  events.Bus
	log  *logger.Logger
}

// NewScheduler registers the report jobs against the configured cron specs.
// It fails when the timezone or either spec does not parse; a scheduler
// that would silently never fire is worse than a refused start.
func NewScheduler(cfg config.ReportConfig, svc *Service, bus events.Bus, log *logger.Logger) (*Scheduler, error) {
	location, err := time.LoadLocation(cfg.GetReportTimezone())
	if err != nil {
		return nil, fmt.Errorf("load report timezone: %w", err)
	}

	s := &Scheduler{
		cron: cron.New(cron.WithLocation(location)),
		svc:  svc,
		bus:  bus,
		log:  log,
	}

	if _, err := s.cron.AddFunc(cfg.GetDailyReportSpec(), s.runDaily); err != nil {
		return nil, fmt.Errorf("register daily report job: %w", err)
	}
	if _, err := s.cron.AddFunc(cfg.GetWeeklyReportSpec(), s.runWeekly); err != nil {
		return nil, fmt.Errorf("register weekly report job: %w", err)
	}

	return s, nil
}

// Start begins the schedule. Jobs fire on their own goroutines managed by
// cron; each job is idempotent, so a skipped or delayed tick needs no
// recovery.
func (s *Scheduler) Start() {
	s.cron.Start()
	for _, entry := range s.cron.Entries() {
		s.log.SchedulerEvent("report_job_scheduled", entry.Schedule.Next(time.Now()).Format(time.RFC3339))
	}
}

// Stop halts the schedule and blocks until running jobs complete.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.log.SchedulerEvent("report_scheduler_stopped", "")
}

func (s *Scheduler) runDaily() {
	s.publish(s.svc.Daily())
}

func (s *Scheduler) runWeekly() {
	s.publish(s.svc.Weekly())
}

func (s *Scheduler) publish(report analytics.Report) {
	s.log.ReportGenerated(string(report.Type), int64(report.NewLeads), report.Snapshot.Conversions)
	s.bus.Publish(context.Background(), events.ReportGenerated{
		BaseEvent:   events.NewBaseEvent(),
		ReportType:  string(report.Type),
		PeriodStart: report.PeriodStart,
		PeriodEnd:   report.PeriodEnd,
		TotalLeads:  int64(report.NewLeads),
		Conversions: report.Snapshot.Conversions,
	})
}
