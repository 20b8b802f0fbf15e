package scoring

import (
	"testing"
	"time"

	"placement_portal_backend/internal/leads/domain"
	"placement_portal_backend/platform/logger"
)

var testNow = time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) *Service {
	t.Helper()
	catalog, err := LoadCatalog("")
	if err != nil {
		t.Fatalf("LoadCatalog failed: %v", err)
	}
	svc := New(catalog, 4, logger.New("test"))
	svc.now = func() time.Time { return testNow }
	return svc
}

func interactionAt(typ domain.InteractionType, at time.Time) domain.Interaction {
	return domain.Interaction{Type: typ, CreatedAt: at}
}

func TestScoreVeteranHomelessEndToEnd(t *testing.T) {
	svc := newTestService(t)
	lead := domain.Lead{ID: "lead-1", Name: "Test Veteran", IsVeteran: true, CurrentlyHomeless: true}

	result := svc.Score(lead, nil)

	if result.Score != 55 {
		t.Fatalf("expected score 55, got %d", result.Score)
	}
	if result.Grade != GradeC {
		t.Errorf("expected grade C, got %s", result.Grade)
	}
	if result.Priority != PriorityMedium {
		t.Errorf("expected priority MEDIUM, got %s", result.Priority)
	}
	if result.NextAction.Action != ActionBookConsultation {
		t.Errorf("expected next action BOOK_CONSULTATION, got %s", result.NextAction.Action)
	}

	want := Breakdown{Demographic: 25, Urgency: 30}
	if result.Breakdown != want {
		t.Errorf("unexpected breakdown: %+v", result.Breakdown)
	}
}

func TestScoreClampCeiling(t *testing.T) {
	svc := newTestService(t)

	// Maximal positive flags with an opt-out: raw = 263 - 100 = 163,
	// clamped to 100.
	moveIn := testNow.Add(10 * 24 * time.Hour)
	lead := domain.Lead{
		IsVeteran:              true,
		InRecovery:             true,
		IsReentry:              true,
		HouseholdSize:          4,
		EmploymentStatus:       domain.EmploymentEmployed,
		CurrentlyHomeless:      true,
		EvictionRisk:           true,
		MoveInDate:             &moveIn,
		IncomeVerified:         true,
		ReferencesProvided:     true,
		BackgroundCheckConsent: true,
		OptedOut:               true,
	}
	interactions := []domain.Interaction{
		interactionAt(domain.InteractionEmailSent, testNow.Add(-2*time.Hour)),
		interactionAt(domain.InteractionEmailOpened, testNow.Add(-90*time.Minute)),
		interactionAt(domain.InteractionAppointmentScheduled, testNow.Add(-1*time.Hour)),
		interactionAt(domain.InteractionAppointmentScheduled, testNow.Add(-50*time.Minute)),
		interactionAt(domain.InteractionFormCompleted, testNow.Add(-40*time.Minute)),
	}

	result := svc.Score(lead, interactions)

	if got := result.Breakdown.Total(); got != 163 {
		t.Fatalf("expected raw score 163, got %d (breakdown %+v)", got, result.Breakdown)
	}
	if result.Score != 100 {
		t.Errorf("expected clamped score 100, got %d", result.Score)
	}
	if result.Grade != GradeA {
		t.Errorf("expected grade A, got %s", result.Grade)
	}
}

func TestScoreClampFloorOnDominantPenalty(t *testing.T) {
	svc := newTestService(t)

	// Only +10 employed against the -100 opt-out: raw = -90, floor at 0.
	lead := domain.Lead{
		EmploymentStatus: domain.EmploymentEmployed,
		OptedOut:         true,
	}

	result := svc.Score(lead, nil)

	if got := result.Breakdown.Total(); got != -90 {
		t.Fatalf("expected raw score -90, got %d", got)
	}
	if result.Score != 0 {
		t.Errorf("expected clamped score 0, got %d", result.Score)
	}
	if result.Grade != GradeF {
		t.Errorf("expected grade F, got %s", result.Grade)
	}
	if result.Priority != PriorityMinimal {
		t.Errorf("expected priority MINIMAL, got %s", result.Priority)
	}
}

func TestScoreAlwaysWithinBounds(t *testing.T) {
	svc := newTestService(t)
	moveIn := testNow.Add(5 * 24 * time.Hour)

	leads := []domain.Lead{
		{},
		{OptedOut: true, EmailBounced: true, PhoneInvalid: true},
		{IsVeteran: true, InRecovery: true, IsReentry: true, CurrentlyHomeless: true, EvictionRisk: true, MoveInDate: &moveIn, IncomeVerified: true, ReferencesProvided: true, BackgroundCheckConsent: true, HasFamily: true, EmploymentStatus: domain.EmploymentEmployed},
		{Name: "partial", IncomeLevel: domain.IncomeVeryLow},
		{EmailBounced: true},
	}
	histories := [][]domain.Interaction{
		nil,
		{interactionAt(domain.InteractionEmailSent, testNow.Add(-30*24*time.Hour))},
		{
			interactionAt(domain.InteractionAppointmentScheduled, testNow.Add(-1*time.Hour)),
			interactionAt(domain.InteractionAppointmentScheduled, testNow.Add(-2*time.Hour)),
			interactionAt(domain.InteractionAppointmentScheduled, testNow.Add(-3*time.Hour)),
			interactionAt(domain.InteractionDocumentSubmitted, testNow.Add(-4*time.Hour)),
		},
		{},
		nil,
	}

	for i, lead := range leads {
		for j, history := range histories {
			result := svc.Score(lead, history)
			if result.Score < 0 || result.Score > 100 {
				t.Errorf("lead %d history %d: score %d out of [0,100]", i, j, result.Score)
			}
		}
	}
}

func TestScoreMonotonicity(t *testing.T) {
	svc := newTestService(t)
	moveIn := testNow.Add(20 * 24 * time.Hour)

	base := domain.Lead{Name: "baseline"}
	baseRaw := svc.Score(base, nil).Breakdown.Total()

	variants := []struct {
		name string
		lead domain.Lead
	}{
		{"veteran", domain.Lead{Name: "baseline", IsVeteran: true}},
		{"in_recovery", domain.Lead{Name: "baseline", InRecovery: true}},
		{"reentry", domain.Lead{Name: "baseline", IsReentry: true}},
		{"has_family", domain.Lead{Name: "baseline", HasFamily: true}},
		{"household_of_three", domain.Lead{Name: "baseline", HouseholdSize: 3}},
		{"employed", domain.Lead{Name: "baseline", EmploymentStatus: domain.EmploymentEmployed}},
		{"currently_homeless", domain.Lead{Name: "baseline", CurrentlyHomeless: true}},
		{"eviction_risk", domain.Lead{Name: "baseline", EvictionRisk: true}},
		{"move_in_date", domain.Lead{Name: "baseline", MoveInDate: &moveIn}},
		{"income_verified", domain.Lead{Name: "baseline", IncomeVerified: true}},
		{"references", domain.Lead{Name: "baseline", ReferencesProvided: true}},
		{"background_check", domain.Lead{Name: "baseline", BackgroundCheckConsent: true}},
	}

	for _, tc := range variants {
		raw := svc.Score(tc.lead, nil).Breakdown.Total()
		if raw < baseRaw {
			t.Errorf("%s: adding flag decreased raw score from %d to %d", tc.name, baseRaw, raw)
		}
	}
}

func TestEngagementCappedAtFifty(t *testing.T) {
	svc := newTestService(t)

	// Ten scheduled appointments would sum to 250 uncapped.
	var interactions []domain.Interaction
	for i := 0; i < 10; i++ {
		interactions = append(interactions, interactionAt(domain.InteractionAppointmentScheduled, testNow.Add(-time.Duration(i+1)*time.Hour)))
	}

	result := svc.Score(domain.Lead{}, interactions)

	if result.Breakdown.Engagement != 50 {
		t.Fatalf("expected engagement capped at 50, got %d", result.Breakdown.Engagement)
	}
}

func TestEngagementWeights(t *testing.T) {
	svc := newTestService(t)

	tests := []struct {
		typ  domain.InteractionType
		want int
	}{
		{domain.InteractionEmailOpened, 5},
		{domain.InteractionEmailClicked, 10},
		{domain.InteractionPhoneContact, 15},
		{domain.InteractionFormCompleted, 20},
		{domain.InteractionAppointmentScheduled, 25},
		{domain.InteractionDocumentSubmitted, 20},
		{domain.InteractionEmailSent, 0},
		{domain.InteractionEmailBounced, 0},
	}

	for _, tc := range tests {
		result := svc.Score(domain.Lead{}, []domain.Interaction{
			interactionAt(tc.typ, testNow.Add(-1*time.Hour)),
		})
		if result.Breakdown.Engagement != tc.want {
			t.Errorf("%s: expected engagement %d, got %d", tc.typ, tc.want, result.Breakdown.Engagement)
		}
	}
}

func TestBehavioralResponseTiers(t *testing.T) {
	svc := newTestService(t)
	outreachAt := testNow.Add(-24 * time.Hour)

	tests := []struct {
		name     string
		response time.Duration // elapsed after outreach
		want     int
	}{
		{"within the hour", 30 * time.Minute, 15},
		{"exactly one hour", time.Hour, 15},
		{"within six hours", 3 * time.Hour, 10},
		{"within a day", 20 * time.Hour, 5},
		{"within three days", 50 * time.Hour, 2},
		{"after three days", 100 * time.Hour, 0},
	}

	for _, tc := range tests {
		interactions := []domain.Interaction{
			interactionAt(domain.InteractionEmailSent, outreachAt),
			interactionAt(domain.InteractionEmailOpened, outreachAt.Add(tc.response)),
		}
		result := svc.Score(domain.Lead{}, interactions)
		if result.Breakdown.Behavioral != tc.want {
			t.Errorf("%s: expected behavioral %d, got %d", tc.name, tc.want, result.Breakdown.Behavioral)
		}
	}
}

func TestBehavioralRequiresQualifyingPair(t *testing.T) {
	svc := newTestService(t)

	tests := []struct {
		name         string
		interactions []domain.Interaction
	}{
		{"no outreach", []domain.Interaction{
			interactionAt(domain.InteractionEmailOpened, testNow.Add(-1*time.Hour)),
		}},
		{"no response", []domain.Interaction{
			interactionAt(domain.InteractionEmailSent, testNow.Add(-1*time.Hour)),
		}},
		{"response before outreach", []domain.Interaction{
			interactionAt(domain.InteractionEmailOpened, testNow.Add(-3*time.Hour)),
			interactionAt(domain.InteractionEmailSent, testNow.Add(-1*time.Hour)),
		}},
	}

	for _, tc := range tests {
		result := svc.Score(domain.Lead{}, tc.interactions)
		if result.Breakdown.Behavioral != 0 {
			t.Errorf("%s: expected behavioral 0, got %d", tc.name, result.Breakdown.Behavioral)
		}
	}
}

func TestBehavioralUsesEarliestPair(t *testing.T) {
	svc := newTestService(t)

	// Two outreaches and two responses, out of order in the slice. The
	// earliest outreach is at -10h; the earliest response after it is at
	// -7h, a 3 hour gap (+10), not the -30m one that would score +15.
	interactions := []domain.Interaction{
		interactionAt(domain.InteractionEmailOpened, testNow.Add(-30*time.Minute)),
		interactionAt(domain.InteractionEmailSent, testNow.Add(-1*time.Hour)),
		interactionAt(domain.InteractionSMSSent, testNow.Add(-10*time.Hour)),
		interactionAt(domain.InteractionFormCompleted, testNow.Add(-7*time.Hour)),
	}

	result := svc.Score(domain.Lead{}, interactions)
	if result.Breakdown.Behavioral != 10 {
		t.Fatalf("expected behavioral 10 from earliest pair, got %d", result.Breakdown.Behavioral)
	}
}

func TestStalenessPenalties(t *testing.T) {
	svc := newTestService(t)

	tests := []struct {
		name string
		last time.Duration // age of the most recent interaction
		want int
	}{
		{"fresh contact", 24 * time.Hour, 0},
		{"six days", 6 * 24 * time.Hour, 0},
		{"seven days", 7 * 24 * time.Hour, -10},
		{"thirteen days", 13 * 24 * time.Hour, -10},
		{"fourteen days", 14 * 24 * time.Hour, -20},
		{"two months", 60 * 24 * time.Hour, -20},
	}

	for _, tc := range tests {
		interactions := []domain.Interaction{
			interactionAt(domain.InteractionPhoneContact, testNow.Add(-tc.last)),
		}
		result := svc.Score(domain.Lead{}, interactions)
		if result.Breakdown.Penalties != tc.want {
			t.Errorf("%s: expected penalty %d, got %d", tc.name, tc.want, result.Breakdown.Penalties)
		}
	}
}

func TestNoStalenessPenaltyWithoutInteractions(t *testing.T) {
	svc := newTestService(t)

	result := svc.Score(domain.Lead{Name: "never contacted"}, nil)
	if result.Breakdown.Penalties != 0 {
		t.Fatalf("expected no penalty for a lead with no interactions, got %d", result.Breakdown.Penalties)
	}
}

func TestContactChannelPenalties(t *testing.T) {
	svc := newTestService(t)

	tests := []struct {
		name string
		lead domain.Lead
		want int
	}{
		{"bounced email", domain.Lead{EmailBounced: true}, -15},
		{"invalid phone", domain.Lead{PhoneInvalid: true}, -10},
		{"opted out", domain.Lead{OptedOut: true}, -100},
		{"all three", domain.Lead{EmailBounced: true, PhoneInvalid: true, OptedOut: true}, -125},
	}

	for _, tc := range tests {
		result := svc.Score(tc.lead, nil)
		if result.Breakdown.Penalties != tc.want {
			t.Errorf("%s: expected penalty %d, got %d", tc.name, tc.want, result.Breakdown.Penalties)
		}
	}
}

func TestMoveInWindowBuckets(t *testing.T) {
	svc := newTestService(t)

	tests := []struct {
		name string
		in   time.Duration // offset of the move-in date from now
		want int
	}{
		{"ten days out", 10 * 24 * time.Hour, 20},
		{"forty-five days out", 45 * 24 * time.Hour, 15},
		{"seventy-five days out", 75 * 24 * time.Hour, 10},
		{"four months out", 120 * 24 * time.Hour, 0},
		{"already past", -5 * 24 * time.Hour, 20},
	}

	for _, tc := range tests {
		moveIn := testNow.Add(tc.in)
		result := svc.Score(domain.Lead{MoveInDate: &moveIn}, nil)
		if result.Breakdown.Urgency != tc.want {
			t.Errorf("%s: expected urgency %d, got %d", tc.name, tc.want, result.Breakdown.Urgency)
		}
	}
}

func TestScoreResultMetadata(t *testing.T) {
	svc := newTestService(t)

	result := svc.Score(domain.Lead{ID: "lead-42"}, nil)

	if result.LeadID != "lead-42" {
		t.Errorf("expected lead id carried through, got %q", result.LeadID)
	}
	if result.Version != scoreVersion {
		t.Errorf("expected version %q, got %q", scoreVersion, result.Version)
	}
	if !result.ScoredAt.Equal(testNow) {
		t.Errorf("expected scored_at %v, got %v", testNow, result.ScoredAt)
	}
	if len(result.Recommendations) == 0 {
		t.Error("expected at least one recommendation")
	}
}
