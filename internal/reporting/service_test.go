package reporting

import (
	"context"
	"testing"
	"time"

	"placement_portal_backend/internal/analytics"
	"placement_portal_backend/internal/events"
	"placement_portal_backend/internal/leads/domain"
	"placement_portal_backend/platform/logger"
)

type analyticsConfig struct{}

func (analyticsConfig) GetAnalyticsLeadCap() int               { return 100 }
func (analyticsConfig) GetAnalyticsConversationCap() int       { return 100 }
func (analyticsConfig) GetAnalyticsEmailCap() int              { return 100 }
func (analyticsConfig) GetResponseBufferSize() int             { return 100 }
func (analyticsConfig) GetMemorySampleInterval() time.Duration { return 0 }
func (analyticsConfig) GetMemorySampleWindow() time.Duration   { return 24 * time.Hour }

func newTestReporting(t *testing.T) (*Service, events.Bus) {
	t.Helper()
	log := logger.New("development")
	bus := events.NewInMemoryBus(log)
	module := analytics.NewModule(analyticsConfig{}, bus, log)
	t.Cleanup(module.Close)
	return NewService(module.Engine()), bus
}

func TestServiceViewsOverBusFedEngine(t *testing.T) {
	svc, bus := newTestReporting(t)
	ctx := context.Background()

	if err := bus.PublishSync(ctx, events.LeadCreated{
		BaseEvent: events.NewBaseEvent(),
		LeadID:    "lead-1",
		Source:    "website",
		Name:      "Robin Vale",
		CreatedAt: time.Now().Add(-time.Hour),
	}); err != nil {
		t.Fatalf("publish: %v", err)
	}

	if got := svc.Funnel("7d").TotalLeads; got != 1 {
		t.Errorf("funnel total = %d, want 1", got)
	}
	if got := svc.Sources("7d")["website"].Leads; got != 1 {
		t.Errorf("website leads = %d, want 1", got)
	}
	if got := svc.Dashboard().LeadsToday; got != 1 {
		t.Errorf("leads today = %d, want 1", got)
	}
	if got := len(svc.TimeOfDay("7d")); got != 1 {
		t.Errorf("time-of-day buckets = %d, want 1", got)
	}
}

// Unknown timeframe tags fall back to the 30 day window rather than failing.
func TestServiceUnknownTimeframeDefaults(t *testing.T) {
	svc, _ := newTestReporting(t)

	funnel := svc.Funnel("fortnight")
	if funnel.Timeframe != domain.Timeframe30Days {
		t.Errorf("resolved timeframe = %s, want 30d", funnel.Timeframe)
	}
}
