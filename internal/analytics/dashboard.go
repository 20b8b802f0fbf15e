package analytics

import (
	"math"
	"time"
)

// activeConversationWindow bounds how recently a conversation must have seen
// a message to count as active.
const activeConversationWindow = 5 * time.Minute

// DashboardSnapshot is the real-time operations view.
type DashboardSnapshot struct {
	GeneratedAt time.Time `json:"generated_at"`

	// Lead volume, derived from creation timestamps against calendar
	// boundaries, so the counts roll over without a reset job.
	LeadsToday     int `json:"leads_today"`
	LeadsThisWeek  int `json:"leads_this_week"`
	LeadsThisMonth int `json:"leads_this_month"`

	// Conversion counters and the rate against today's lead volume.
	Conversions        int64   `json:"conversions"`
	Revenue            float64 `json:"revenue"`
	LeadConversionRate float64 `json:"lead_conversion_rate"`

	// Email engagement.
	EmailsSent     int64   `json:"emails_sent"`
	EmailsOpened   int64   `json:"emails_opened"`
	EmailsClicked  int64   `json:"emails_clicked"`
	EmailOpenRate  float64 `json:"email_open_rate"`
	EmailClickRate float64 `json:"email_click_rate"`

	// Conversation activity.
	TotalConversations  int64   `json:"total_conversations"`
	ActiveConversations int     `json:"active_conversations"`
	AvgResponseTimeMs   float64 `json:"avg_response_time_ms"`

	// Process health.
	UptimeSeconds float64 `json:"uptime_seconds"`
	MemoryAllocMB float64 `json:"memory_alloc_mb"`
}

// Dashboard builds the current snapshot. Rates are percentages rounded to
// one decimal; every division guards a zero denominator.
func (e *Engine) Dashboard() DashboardSnapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.dashboardLocked()
}

// dashboardLocked builds the snapshot. Callers must hold the engine mutex.
func (e *Engine) dashboardLocked() DashboardSnapshot {
	now := e.now()
	today, week, month := e.leadVolume(now)
	currentMB, _, _ := e.memoryStats()

	return DashboardSnapshot{
		GeneratedAt:         now,
		LeadsToday:          today,
		LeadsThisWeek:       week,
		LeadsThisMonth:      month,
		Conversions:         e.counters.Conversions,
		Revenue:             e.counters.Revenue,
		LeadConversionRate:  percentage(float64(e.counters.Conversions), float64(today)),
		EmailsSent:          e.counters.EmailsSent,
		EmailsOpened:        e.counters.EmailsOpened,
		EmailsClicked:       e.counters.EmailsClicked,
		EmailOpenRate:       percentage(float64(e.counters.EmailsOpened), float64(e.counters.EmailsSent)),
		EmailClickRate:      percentage(float64(e.counters.EmailsClicked), float64(e.counters.EmailsOpened)),
		TotalConversations:  e.counters.TotalConversations,
		ActiveConversations: e.activeConversations(now),
		AvgResponseTimeMs:   round1(e.responseTimes.average()),
		UptimeSeconds:       now.Sub(e.startedAt).Seconds(),
		MemoryAllocMB:       round1(currentMB),
	}
}

// leadVolume counts registered leads created since the start of the current
// day, week (Monday), and month. Callers must hold the engine mutex.
func (e *Engine) leadVolume(now time.Time) (today, week, month int) {
	dayStart := startOfDay(now)
	weekStart := startOfWeek(now)
	monthStart := startOfMonth(now)

	for _, record := range e.leads {
		if record.createdAt.IsZero() {
			continue // never saw a "created" event
		}
		if !record.createdAt.Before(dayStart) {
			today++
		}
		if !record.createdAt.Before(weekStart) {
			week++
		}
		if !record.createdAt.Before(monthStart) {
			month++
		}
	}
	return today, week, month
}

// activeConversations counts conversations whose latest message falls within
// the trailing activity window. Callers must hold the engine mutex.
func (e *Engine) activeConversations(now time.Time) int {
	cutoff := now.Add(-activeConversationWindow)
	active := 0
	for _, record := range e.conversations {
		if record.lastAt.After(cutoff) && !record.lastAt.After(now) {
			active++
		}
	}
	return active
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// startOfWeek returns the most recent Monday midnight.
func startOfWeek(t time.Time) time.Time {
	day := startOfDay(t)
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// percentage computes part/whole as a percent rounded to one decimal,
// returning 0 when the denominator is zero.
func percentage(part, whole float64) float64 {
	if whole == 0 {
		return 0
	}
	return round1(part / whole * 100)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
