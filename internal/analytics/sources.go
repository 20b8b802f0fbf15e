package analytics

import (
	"placement_portal_backend/internal/leads/domain"
)

// unknownSource buckets leads whose record carried no source tag.
const unknownSource = "unknown"

// SourcePerformance is the ROI summary for one lead source within a window.
type SourcePerformance struct {
	Source         string  `json:"source"`
	Leads          int     `json:"leads"`
	TotalValue     float64 `json:"total_value"`
	Conversions    int     `json:"conversions"`
	ConversionRate float64 `json:"conversion_rate"`
	AvgValue       float64 `json:"avg_value"`
}

// SourceAnalysis groups leads created inside the timeframe window by source
// tag. A lead converts for this view when its event log contains a
// "converted" entry anywhere.
func (e *Engine) SourceAnalysis(timeframe domain.Timeframe) map[string]SourcePerformance {
	e.mu.Lock()
	defer e.mu.Unlock()

	cutoff := timeframe.CutoffFrom(e.now())
	bySource := make(map[string]SourcePerformance)

	for _, record := range e.leads {
		if record.createdAt.IsZero() || !record.createdAt.After(cutoff) {
			continue
		}

		source := record.source
		if source == "" {
			source = unknownSource
		}

		perf := bySource[source]
		perf.Source = source
		perf.Leads++
		perf.TotalValue += record.value
		if record.hasEvent(domain.LeadEventConverted) {
			perf.Conversions++
		}
		bySource[source] = perf
	}

	for source, perf := range bySource {
		perf.ConversionRate = percentage(float64(perf.Conversions), float64(perf.Leads))
		perf.AvgValue = round1(perf.TotalValue / float64(perf.Leads))
		bySource[source] = perf
	}

	return bySource
}
