package domain

// LeadEvent is a lead lifecycle milestone recorded by the analytics engine.
// The set is closed: unrecognized identifiers are dropped at ingestion and
// logged, never stored.
type LeadEvent string

const (
	LeadEventCreated       LeadEvent = "created"
	LeadEventContacted     LeadEvent = "contacted"
	LeadEventInterested    LeadEvent = "interested"
	LeadEventTourScheduled LeadEvent = "tour_scheduled"
	LeadEventToured        LeadEvent = "toured"
	LeadEventApplied       LeadEvent = "applied"
	LeadEventApproved      LeadEvent = "approved"
	LeadEventLeased        LeadEvent = "leased"
	LeadEventConverted     LeadEvent = "converted"
)

var knownLeadEvents = map[LeadEvent]struct{}{
	LeadEventCreated:       {},
	LeadEventContacted:     {},
	LeadEventInterested:    {},
	LeadEventTourScheduled: {},
	LeadEventToured:        {},
	LeadEventApplied:       {},
	LeadEventApproved:      {},
	LeadEventLeased:        {},
	LeadEventConverted:     {},
}

// IsKnownLeadEvent reports whether e is one of the closed lifecycle events.
func IsKnownLeadEvent(e LeadEvent) bool {
	_, ok := knownLeadEvents[e]
	return ok
}

// ParseLeadEvent converts a raw string into a LeadEvent.
// The second return is false for unknown values.
func ParseLeadEvent(s string) (LeadEvent, bool) {
	e := LeadEvent(s)
	_, ok := knownLeadEvents[e]
	return e, ok
}

// EmailEvent is an email lifecycle transition recorded by the analytics
// engine.
type EmailEvent string

const (
	EmailEventSent         EmailEvent = "sent"
	EmailEventOpened       EmailEvent = "opened"
	EmailEventClicked      EmailEvent = "clicked"
	EmailEventBounced      EmailEvent = "bounced"
	EmailEventUnsubscribed EmailEvent = "unsubscribed"
)

var knownEmailEvents = map[EmailEvent]struct{}{
	EmailEventSent:         {},
	EmailEventOpened:       {},
	EmailEventClicked:      {},
	EmailEventBounced:      {},
	EmailEventUnsubscribed: {},
}

// IsKnownEmailEvent reports whether e is one of the closed email events.
func IsKnownEmailEvent(e EmailEvent) bool {
	_, ok := knownEmailEvents[e]
	return ok
}

// ParseEmailEvent converts a raw string into an EmailEvent.
// The second return is false for unknown values.
func ParseEmailEvent(s string) (EmailEvent, bool) {
	e := EmailEvent(s)
	_, ok := knownEmailEvents[e]
	return e, ok
}
