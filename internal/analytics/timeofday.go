package analytics

import (
	"fmt"

	"placement_portal_backend/internal/leads/domain"
)

// TimeOfDayAnalysis buckets lead creation instants by weekday and hour for
// leads created inside the timeframe window. Keys look like "Monday_09";
// hours use the creation timestamp's own location.
func (e *Engine) TimeOfDayAnalysis(timeframe domain.Timeframe) map[string]int {
	e.mu.Lock()
	defer e.mu.Unlock()

	cutoff := timeframe.CutoffFrom(e.now())
	buckets := make(map[string]int)

	for _, record := range e.leads {
		if record.createdAt.IsZero() || !record.createdAt.After(cutoff) {
			continue
		}
		key := fmt.Sprintf("%s_%02d", record.createdAt.Weekday(), record.createdAt.Hour())
		buckets[key]++
	}

	return buckets
}
