// Command scheduler is the long-running reporting daemon: it composes the
// analytics engine and the report scheduler on one in-process event bus and
// runs until interrupted. The collaborators that produce domain events
// (intake, messaging adapters) embed their publishers into this
// composition; standalone it keeps the report cadence and the
// clean-teardown wiring honest.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"placement_portal_backend/internal/analytics"
	"placement_portal_backend/internal/events"
	"placement_portal_backend/internal/reporting"
	"placement_portal_backend/platform/config"
	"placement_portal_backend/platform/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.New(cfg.Env)
	log.Info("starting scheduler", "env", cfg.Env)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	eventBus := events.NewInMemoryBus(log)

	analyticsModule := analytics.NewModule(cfg, eventBus, log)
	defer analyticsModule.Close()

	reportingService := reporting.NewService(analyticsModule.Engine())
	scheduler, err := reporting.NewScheduler(cfg, reportingService, eventBus, log)
	if err != nil {
		log.Error("failed to initialize report scheduler", "error", err)
		panic("failed to initialize report scheduler: " + err.Error())
	}

	scheduler.Start()
	log.Info("scheduler running", "daily", cfg.DailyReportSpec, "weekly", cfg.WeeklyReportSpec)

	<-ctx.Done()
	log.Info("shutting down scheduler")

	scheduler.Stop()
	eventBus.Wait()
	log.Info("scheduler stopped")
}
