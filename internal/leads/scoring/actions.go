package scoring

import (
	"fmt"
	"time"

	"placement_portal_backend/internal/leads/domain"
)

// ActionKind identifies the next outreach action for a lead.
type ActionKind string

const (
	ActionCallNow          ActionKind = "CALL_NOW"
	ActionScheduleTour     ActionKind = "SCHEDULE_TOUR"
	ActionFollowUp         ActionKind = "FOLLOW_UP"
	ActionBookConsultation ActionKind = "BOOK_CONSULTATION"
	ActionContinueNurture  ActionKind = "CONTINUE_NURTURE"
)

// NextAction is the outreach directive attached to every score result.
// Template references a message template or call script by name.
type NextAction struct {
	Action   ActionKind `json:"action"`
	Priority Priority   `json:"priority"`
	Template string     `json:"template,omitempty"`
}

// followUpCapDays caps the follow-up template key so very stale leads all
// share the final re-engagement template.
const followUpCapDays = 30

// nextAction applies the outreach decision procedure top to bottom, first
// match wins:
//  1. urgent lead never reached by phone: call immediately
//  2. urgent lead already reached: schedule a tour
//  3. last interaction more than three days ago: follow up, template keyed
//     by days since contact (capped at followUpCapDays)
//  4. no appointment on record: book a consultation
//  5. otherwise: keep nurturing
func (s *Service) nextAction(priority Priority, interactions []domain.Interaction, now time.Time) NextAction {
	if priority == PriorityUrgent {
		if !hasInteraction(interactions, domain.InteractionPhoneContact) {
			return NextAction{
				Action:   ActionCallNow,
				Priority: PriorityUrgent,
				Template: s.catalog.scriptFor(ActionCallNow),
			}
		}
		return NextAction{
			Action:   ActionScheduleTour,
			Priority: PriorityHigh,
			Template: s.catalog.scriptFor(ActionScheduleTour),
		}
	}

	if last, ok := latestInteraction(interactions); ok {
		days := int(now.Sub(last).Hours() / 24)
		if days > 3 {
			if days > followUpCapDays {
				days = followUpCapDays
			}
			return NextAction{
				Action:   ActionFollowUp,
				Priority: PriorityMedium,
				Template: fmt.Sprintf("%s_%d", s.catalog.FollowUpTemplatePrefix, days),
			}
		}
	}

	if !hasInteraction(interactions, domain.InteractionAppointmentScheduled) {
		return NextAction{
			Action:   ActionBookConsultation,
			Priority: PriorityMedium,
			Template: s.catalog.scriptFor(ActionBookConsultation),
		}
	}

	return NextAction{
		Action:   ActionContinueNurture,
		Priority: PriorityLow,
		Template: s.catalog.scriptFor(ActionContinueNurture),
	}
}

// hasInteraction reports whether any interaction in the history has the
// given type.
func hasInteraction(interactions []domain.Interaction, t domain.InteractionType) bool {
	for _, interaction := range interactions {
		if interaction.Type == t {
			return true
		}
	}
	return false
}
