package domain

// IncomeLevel is the self-reported household income band.
type IncomeLevel string

const (
	IncomeVeryLow  IncomeLevel = "very_low"
	IncomeLow      IncomeLevel = "low"
	IncomeModerate IncomeLevel = "moderate"
	IncomeOther    IncomeLevel = "other"
)

var knownIncomeLevels = map[IncomeLevel]struct{}{
	IncomeVeryLow:  {},
	IncomeLow:      {},
	IncomeModerate: {},
	IncomeOther:    {},
}

// IsKnownIncomeLevel reports whether lvl is one of the closed income bands.
func IsKnownIncomeLevel(lvl IncomeLevel) bool {
	_, ok := knownIncomeLevels[lvl]
	return ok
}

// ParseIncomeLevel converts a raw string into an IncomeLevel.
// The second return is false for unknown values.
func ParseIncomeLevel(s string) (IncomeLevel, bool) {
	lvl := IncomeLevel(s)
	_, ok := knownIncomeLevels[lvl]
	return lvl, ok
}
