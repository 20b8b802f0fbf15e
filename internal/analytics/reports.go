package analytics

import (
	"fmt"
	"time"
)

// ReportType distinguishes the scheduled report cadences.
type ReportType string

const (
	ReportDaily  ReportType = "daily"
	ReportWeekly ReportType = "weekly"
)

// Highlight and recommendation thresholds. The weekly volume bar stretches
// the daily one across seven days.
const (
	strongDailyVolume  = 10
	strongWeeklyVolume = 70
	strongOpenRatePct  = 30.0
	weakOpenRatePct    = 20.0
	slowResponseMs     = 5000.0
	dailyReportWindow  = 24 * time.Hour
	weeklyReportWindow = 7 * 24 * time.Hour
)

// Report is a periodic operations summary: the dashboard snapshot at
// generation time, the period's lead volume, memory pressure over the sample
// window, and qualitative highlights and recommendations.
type Report struct {
	Type        ReportType        `json:"type"`
	GeneratedAt time.Time         `json:"generated_at"`
	PeriodStart time.Time         `json:"period_start"`
	PeriodEnd   time.Time         `json:"period_end"`
	NewLeads    int               `json:"new_leads"`
	Snapshot    DashboardSnapshot `json:"snapshot"`

	MemoryAvgMB  float64 `json:"memory_avg_mb"`
	MemoryPeakMB float64 `json:"memory_peak_mb"`

	Highlights      []string `json:"highlights"`
	Recommendations []string `json:"recommendations"`
}

// DailyReport summarizes the trailing 24 hours.
func (e *Engine) DailyReport() Report {
	return e.buildReport(ReportDaily, dailyReportWindow, strongDailyVolume)
}

// WeeklyReport summarizes the trailing 7 days. The trailing window is
// deliberate: the schedule fires Monday morning, when a calendar
// week-to-date count would cover only a few hours.
func (e *Engine) WeeklyReport() Report {
	return e.buildReport(ReportWeekly, weeklyReportWindow, strongWeeklyVolume)
}

func (e *Engine) buildReport(kind ReportType, window time.Duration, volumeBar int) Report {
	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.now()
	start := now.Add(-window)
	newLeads := e.leadsCreatedSince(start)
	snapshot := e.dashboardLocked()
	_, avgMB, peakMB := e.memoryStats()

	report := Report{
		Type:         kind,
		GeneratedAt:  now,
		PeriodStart:  start,
		PeriodEnd:    now,
		NewLeads:     newLeads,
		Snapshot:     snapshot,
		MemoryAvgMB:  round1(avgMB),
		MemoryPeakMB: round1(peakMB),
	}

	if newLeads > volumeBar {
		report.Highlights = append(report.Highlights,
			fmt.Sprintf("Strong lead volume: %d new leads this period", newLeads))
	}
	if snapshot.EmailsSent > 0 && snapshot.EmailOpenRate > strongOpenRatePct {
		report.Highlights = append(report.Highlights,
			fmt.Sprintf("Email engagement above target: %.1f%% open rate", snapshot.EmailOpenRate))
	}

	if snapshot.EmailsSent > 0 && snapshot.EmailOpenRate < weakOpenRatePct {
		report.Recommendations = append(report.Recommendations,
			fmt.Sprintf("Open rate is %.1f%%; test alternative subject lines", snapshot.EmailOpenRate))
	}
	if snapshot.AvgResponseTimeMs > slowResponseMs {
		report.Recommendations = append(report.Recommendations,
			fmt.Sprintf("Average response time is %.0fms; investigate response latency", snapshot.AvgResponseTimeMs))
	}

	return report
}

// leadsCreatedSince counts registered leads created strictly after the
// cutoff. Callers must hold the engine mutex.
func (e *Engine) leadsCreatedSince(cutoff time.Time) int {
	count := 0
	for _, record := range e.leads {
		if !record.createdAt.IsZero() && record.createdAt.After(cutoff) {
			count++
		}
	}
	return count
}
