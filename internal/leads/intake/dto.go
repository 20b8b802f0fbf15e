package intake

import "time"

// CreateLeadRequest is the intake payload for a new lead. Validation tags
// enforce input shape here, at the boundary; the scoring and analytics
// engines downstream receive only well-formed records.
type CreateLeadRequest struct {
	ID     string `json:"id" validate:"omitempty,uuid4"`
	Name   string `json:"name" validate:"required,min=1,max=200"`
	Email  string `json:"email" validate:"omitempty,email"`
	Phone  string `json:"phone" validate:"omitempty,min=4,max=32"`
	Source string `json:"source" validate:"omitempty,max=100"`

	IsVeteran              bool `json:"is_veteran"`
	InRecovery             bool `json:"in_recovery"`
	IsReentry              bool `json:"is_reentry"`
	HasFamily              bool `json:"has_family"`
	HouseholdSize          int  `json:"household_size" validate:"omitempty,min=0,max=30"`
	IncomeVerified         bool `json:"income_verified"`
	ReferencesProvided     bool `json:"references_provided"`
	BackgroundCheckConsent bool `json:"background_check_consent"`

	CurrentlyHomeless bool       `json:"currently_homeless"`
	EvictionRisk      bool       `json:"eviction_risk"`
	MoveInDate        *time.Time `json:"move_in_date"`

	EmploymentStatus string `json:"employment_status" validate:"omitempty,oneof=employed seeking other"`
	IncomeLevel      string `json:"income_level" validate:"omitempty,oneof=very_low low moderate other"`

	OptedOut bool `json:"opted_out"`
}

// RecordInteractionRequest is the intake payload for one lead touchpoint.
// An absent OccurredAt means "now".
type RecordInteractionRequest struct {
	Type       string            `json:"type" validate:"required"`
	OccurredAt *time.Time        `json:"occurred_at"`
	Data       map[string]string `json:"data"`
}
