package domain

import "time"

// Interaction is an immutable, timestamped touchpoint tied to a lead.
// Interactions accumulate append-only; nothing in the core deletes them.
type Interaction struct {
	Type      InteractionType   `json:"type"`
	CreatedAt time.Time         `json:"created_at"`
	Data      map[string]string `json:"data,omitempty"`
}

// InteractionType identifies the kind of touchpoint. The set is closed:
// callers submitting an unknown type are rejected at the intake boundary.
type InteractionType string

const (
	InteractionEmailSent            InteractionType = "email_sent"
	InteractionSMSSent              InteractionType = "sms_sent"
	InteractionEmailOpened          InteractionType = "email_opened"
	InteractionEmailClicked         InteractionType = "email_clicked"
	InteractionPhoneContact         InteractionType = "phone_contact"
	InteractionFormCompleted        InteractionType = "form_completed"
	InteractionAppointmentScheduled InteractionType = "appointment_scheduled"
	InteractionDocumentSubmitted    InteractionType = "document_submitted"
	InteractionEmailBounced         InteractionType = "email_bounced"
	InteractionInvalidPhone         InteractionType = "invalid_phone"
)

var knownInteractionTypes = map[InteractionType]struct{}{
	InteractionEmailSent:            {},
	InteractionSMSSent:              {},
	InteractionEmailOpened:          {},
	InteractionEmailClicked:         {},
	InteractionPhoneContact:         {},
	InteractionFormCompleted:        {},
	InteractionAppointmentScheduled: {},
	InteractionDocumentSubmitted:    {},
	InteractionEmailBounced:         {},
	InteractionInvalidPhone:         {},
}

// IsKnownInteractionType reports whether t is one of the closed interaction types.
func IsKnownInteractionType(t InteractionType) bool {
	_, ok := knownInteractionTypes[t]
	return ok
}

// ParseInteractionType converts a raw string into an InteractionType.
// The second return is false for unknown values.
func ParseInteractionType(s string) (InteractionType, bool) {
	t := InteractionType(s)
	_, ok := knownInteractionTypes[t]
	return t, ok
}
