package analytics

import "placement_portal_backend/internal/leads/domain"

// Lead value components, in whole dollars. The value is an outreach
// prioritization weight for source ROI analysis, not a billed amount.
const (
	valueBase     = 100.0
	valueVeteran  = 50.0
	valueHomeless = 75.0

	valueIncomeVeryLow  = 100.0
	valueIncomeLow      = 75.0
	valueIncomeModerate = 50.0
	valueIncomeOther    = 25.0
)

// estimateLeadValue computes the projected placement value fixed at
// "created" time. Income tiers stack cumulatively: each band earns its own
// bonus plus every band below it, so very_low adds 100+75+50+25. The
// stacking is deliberate and pinned by test; change it only together with
// the downstream source-ROI expectations.
func estimateLeadValue(lead domain.Lead) float64 {
	value := valueBase
	if lead.IsVeteran {
		value += valueVeteran
	}
	if lead.CurrentlyHomeless {
		value += valueHomeless
	}

	switch lead.IncomeLevel {
	case domain.IncomeVeryLow:
		value += valueIncomeVeryLow
		fallthrough
	case domain.IncomeLow:
		value += valueIncomeLow
		fallthrough
	case domain.IncomeModerate:
		value += valueIncomeModerate
		fallthrough
	default:
		value += valueIncomeOther
	}

	return value
}
