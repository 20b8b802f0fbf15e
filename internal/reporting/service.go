// Package reporting is the reporting workflow: on-demand analytics views
// for dashboard collaborators plus the scheduled daily and weekly report
// generation.
package reporting

import (
	"placement_portal_backend/internal/analytics"
	"placement_portal_backend/internal/leads/domain"
)

// Service serves derived analytics views on demand. All methods are
// read-only pass-throughs into the engine; timeframe tags arrive as raw
// strings from callers and unknown tags fall back to the 30 day window.
type Service struct {
	engine *analytics.Engine
}

// NewService creates the reporting service over the given engine.
func NewService(engine *analytics.Engine) *Service {
	return &Service{engine: engine}
}

// Dashboard returns the current operations snapshot.
func (s *Service) Dashboard() analytics.DashboardSnapshot {
	return s.engine.Dashboard()
}

// Sources returns the per-source ROI analysis for the timeframe.
func (s *Service) Sources(timeframe string) map[string]analytics.SourcePerformance {
	return s.engine.SourceAnalysis(resolveTimeframe(timeframe))
}

// Funnel returns the conversion funnel for the timeframe.
func (s *Service) Funnel(timeframe string) analytics.Funnel {
	return s.engine.ConversionFunnel(resolveTimeframe(timeframe))
}

// TimeOfDay returns the weekday/hour creation distribution for the
// timeframe.
func (s *Service) TimeOfDay(timeframe string) map[string]int {
	return s.engine.TimeOfDayAnalysis(resolveTimeframe(timeframe))
}

// Daily builds the trailing-24-hour report.
func (s *Service) Daily() analytics.Report {
	return s.engine.DailyReport()
}

// Weekly builds the trailing-7-day report.
func (s *Service) Weekly() analytics.Report {
	return s.engine.WeeklyReport()
}

// resolveTimeframe maps a raw tag to a known timeframe, defaulting to 30d.
func resolveTimeframe(raw string) domain.Timeframe {
	if tf, ok := domain.ParseTimeframe(raw); ok {
		return tf
	}
	return domain.Timeframe30Days
}
