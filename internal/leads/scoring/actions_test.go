package scoring

import (
	"testing"
	"time"

	"placement_portal_backend/internal/leads/domain"
)

func TestNextActionUrgentWithoutPhoneContact(t *testing.T) {
	svc := newTestService(t)

	action := svc.nextAction(PriorityUrgent, nil, testNow)

	if action.Action != ActionCallNow {
		t.Fatalf("expected CALL_NOW, got %s", action.Action)
	}
	if action.Priority != PriorityUrgent {
		t.Errorf("expected priority URGENT, got %s", action.Priority)
	}
	if action.Template != "urgent_outreach_call" {
		t.Errorf("unexpected template %q", action.Template)
	}
}

func TestNextActionUrgentAlreadyCalled(t *testing.T) {
	svc := newTestService(t)
	interactions := []domain.Interaction{
		interactionAt(domain.InteractionPhoneContact, testNow.Add(-1*time.Hour)),
	}

	action := svc.nextAction(PriorityUrgent, interactions, testNow)

	if action.Action != ActionScheduleTour {
		t.Fatalf("expected SCHEDULE_TOUR, got %s", action.Action)
	}
	if action.Priority != PriorityHigh {
		t.Errorf("expected priority HIGH, got %s", action.Priority)
	}
	if action.Template != "tour_scheduling" {
		t.Errorf("unexpected template %q", action.Template)
	}
}

func TestNextActionFollowUpAfterQuietDays(t *testing.T) {
	svc := newTestService(t)

	tests := []struct {
		name         string
		last         time.Duration
		wantTemplate string
	}{
		{"five quiet days", 5 * 24 * time.Hour, "follow_up_day_5"},
		{"ten quiet days", 10 * 24 * time.Hour, "follow_up_day_10"},
		{"template capped at thirty", 45 * 24 * time.Hour, "follow_up_day_30"},
	}

	for _, tc := range tests {
		interactions := []domain.Interaction{
			interactionAt(domain.InteractionEmailSent, testNow.Add(-tc.last)),
		}
		action := svc.nextAction(PriorityMedium, interactions, testNow)
		if action.Action != ActionFollowUp {
			t.Errorf("%s: expected FOLLOW_UP, got %s", tc.name, action.Action)
			continue
		}
		if action.Priority != PriorityMedium {
			t.Errorf("%s: expected priority MEDIUM, got %s", tc.name, action.Priority)
		}
		if action.Template != tc.wantTemplate {
			t.Errorf("%s: expected template %q, got %q", tc.name, tc.wantTemplate, action.Template)
		}
	}
}

func TestNextActionFollowUpBeatsConsultation(t *testing.T) {
	svc := newTestService(t)

	// An appointment on record does not matter once the lead has gone
	// quiet; the follow-up branch is evaluated first.
	interactions := []domain.Interaction{
		interactionAt(domain.InteractionAppointmentScheduled, testNow.Add(-45*24*time.Hour)),
	}

	action := svc.nextAction(PriorityLow, interactions, testNow)
	if action.Action != ActionFollowUp {
		t.Fatalf("expected FOLLOW_UP for a quiet lead with an old appointment, got %s", action.Action)
	}
}

func TestNextActionBookConsultation(t *testing.T) {
	svc := newTestService(t)

	tests := []struct {
		name         string
		interactions []domain.Interaction
	}{
		{"no interactions at all", nil},
		{"recent contact, three days is not quiet", []domain.Interaction{
			interactionAt(domain.InteractionEmailSent, testNow.Add(-3*24*time.Hour)),
		}},
	}

	for _, tc := range tests {
		action := svc.nextAction(PriorityMedium, tc.interactions, testNow)
		if action.Action != ActionBookConsultation {
			t.Errorf("%s: expected BOOK_CONSULTATION, got %s", tc.name, action.Action)
			continue
		}
		if action.Template != "consultation_booking" {
			t.Errorf("%s: unexpected template %q", tc.name, action.Template)
		}
	}
}

func TestNextActionContinueNurture(t *testing.T) {
	svc := newTestService(t)
	interactions := []domain.Interaction{
		interactionAt(domain.InteractionAppointmentScheduled, testNow.Add(-24*time.Hour)),
	}

	action := svc.nextAction(PriorityLow, interactions, testNow)

	if action.Action != ActionContinueNurture {
		t.Fatalf("expected CONTINUE_NURTURE, got %s", action.Action)
	}
	if action.Priority != PriorityLow {
		t.Errorf("expected priority LOW, got %s", action.Priority)
	}
	if action.Template != "nurture_sequence" {
		t.Errorf("unexpected template %q", action.Template)
	}
}
