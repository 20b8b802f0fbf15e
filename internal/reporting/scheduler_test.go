package reporting

import (
	"testing"
	"time"

	"placement_portal_backend/internal/events"
	"placement_portal_backend/platform/logger"

	"github.com/robfig/cron/v3"
)

type reportConfig struct {
	timezone string
	daily    string
	weekly   string
}

func (c reportConfig) GetReportTimezone() string   { return c.timezone }
func (c reportConfig) GetDailyReportSpec() string  { return c.daily }
func (c reportConfig) GetWeeklyReportSpec() string { return c.weekly }

func TestReportCronSpecsNextRun(t *testing.T) {
	// Reference instant: Sunday 2026-08-23 08:00 UTC.
	sunday8 := time.Date(2026, 8, 23, 8, 0, 0, 0, time.UTC)

	daily, err := cron.ParseStandard("0 9 * * *")
	if err != nil {
		t.Fatalf("parse daily spec: %v", err)
	}
	weekly, err := cron.ParseStandard("0 9 * * 1")
	if err != nil {
		t.Fatalf("parse weekly spec: %v", err)
	}

	if got, want := daily.Next(sunday8), sunday8.Add(time.Hour); !got.Equal(want) {
		t.Errorf("daily next from Sunday 08:00 = %v, want %v", got, want)
	}
	monday9 := time.Date(2026, 8, 24, 9, 0, 0, 0, time.UTC)
	if got := weekly.Next(sunday8); !got.Equal(monday9) {
		t.Errorf("weekly next from Sunday 08:00 = %v, want Monday 09:00 (%v)", got, monday9)
	}
}

func TestNewSchedulerRejectsBadConfig(t *testing.T) {
	log := logger.New("development")
	bus := events.NewInMemoryBus(log)
	svc := NewService(nil)

	tests := []struct {
		name string
		cfg  reportConfig
	}{
		{"bad timezone", reportConfig{timezone: "Mars/Olympus_Mons", daily: "0 9 * * *", weekly: "0 9 * * 1"}},
		{"bad daily spec", reportConfig{timezone: "UTC", daily: "not a cron", weekly: "0 9 * * 1"}},
		{"bad weekly spec", reportConfig{timezone: "UTC", daily: "0 9 * * *", weekly: "9"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewScheduler(tc.cfg, svc, bus, log); err == nil {
				t.Error("expected constructor error")
			}
		})
	}
}

func TestSchedulerStartStop(t *testing.T) {
	log := logger.New("development")
	bus := events.NewInMemoryBus(log)

	scheduler, err := NewScheduler(
		reportConfig{timezone: "UTC", daily: "0 9 * * *", weekly: "0 9 * * 1"},
		NewService(nil),
		bus,
		log,
	)
	if err != nil {
		t.Fatalf("NewScheduler: %v", err)
	}

	scheduler.Start()
	scheduler.Stop()
}
