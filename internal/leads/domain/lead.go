// Package domain provides core business rules for the leads bounded context.
package domain

import "time"

// Lead is a prospective client record. Leads are created once by the intake
// workflow and re-scored any number of times; the scoring and analytics
// engines only ever read them. Absent fields mean "flag not set" and
// contribute nothing to scoring.
type Lead struct {
	ID     string `json:"id,omitempty"`
	Name   string `json:"name"`
	Email  string `json:"email,omitempty"`
	Phone  string `json:"phone,omitempty"`
	Source string `json:"source,omitempty"`

	// Demographic and qualification flags
	IsVeteran              bool             `json:"is_veteran,omitempty"`
	InRecovery             bool             `json:"in_recovery,omitempty"`
	IsReentry              bool             `json:"is_reentry,omitempty"`
	HasFamily              bool             `json:"has_family,omitempty"`
	HouseholdSize          int              `json:"household_size,omitempty"`
	EmploymentStatus       EmploymentStatus `json:"employment_status,omitempty"`
	IncomeLevel            IncomeLevel      `json:"income_level,omitempty"`
	IncomeVerified         bool             `json:"income_verified,omitempty"`
	ReferencesProvided     bool             `json:"references_provided,omitempty"`
	BackgroundCheckConsent bool             `json:"background_check_consent,omitempty"`

	// Urgency flags
	CurrentlyHomeless bool       `json:"currently_homeless,omitempty"`
	EvictionRisk      bool       `json:"eviction_risk,omitempty"`
	MoveInDate        *time.Time `json:"move_in_date,omitempty"`

	// Contact channel health
	EmailBounced bool `json:"email_bounced,omitempty"`
	PhoneInvalid bool `json:"phone_invalid,omitempty"`
	OptedOut     bool `json:"opted_out,omitempty"`

	CreatedAt time.Time `json:"created_at,omitempty"`
}

// HasHousehold reports whether the lead has dependents: either an explicit
// family flag or a household larger than one person.
func (l Lead) HasHousehold() bool {
	return l.HasFamily || l.HouseholdSize > 1
}

// IsEmployed reports whether the lead's employment status is employed.
func (l Lead) IsEmployed() bool {
	return l.EmploymentStatus == EmploymentEmployed
}
