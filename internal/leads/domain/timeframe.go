package domain

import "time"

// Timeframe is a reporting window tag. Time-scoped analytics views map it to
// a cutoff instant and include only entities created after the cutoff.
type Timeframe string

const (
	Timeframe24Hours Timeframe = "24h"
	Timeframe7Days   Timeframe = "7d"
	Timeframe30Days  Timeframe = "30d"
	Timeframe90Days  Timeframe = "90d"
)

var knownTimeframes = map[Timeframe]struct{}{
	Timeframe24Hours: {},
	Timeframe7Days:   {},
	Timeframe30Days:  {},
	Timeframe90Days:  {},
}

// IsKnownTimeframe reports whether tf is one of the closed window tags.
func IsKnownTimeframe(tf Timeframe) bool {
	_, ok := knownTimeframes[tf]
	return ok
}

// ParseTimeframe converts a raw string into a Timeframe.
// The second return is false for unknown values.
func ParseTimeframe(s string) (Timeframe, bool) {
	tf := Timeframe(s)
	_, ok := knownTimeframes[tf]
	return tf, ok
}

// CutoffFrom returns the window start this timeframe selects, measured back
// from now. Unrecognized tags fall back to the 30 day window.
func (tf Timeframe) CutoffFrom(now time.Time) time.Time {
	switch tf {
	case Timeframe24Hours:
		return now.Add(-24 * time.Hour)
	case Timeframe7Days:
		return now.AddDate(0, 0, -7)
	case Timeframe90Days:
		return now.AddDate(0, 0, -90)
	default:
		return now.AddDate(0, 0, -30)
	}
}
