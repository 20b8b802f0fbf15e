package scoring

import (
	"math"
	"time"

	"placement_portal_backend/internal/leads/domain"
	"placement_portal_backend/platform/logger"
)

const (
	// scoreVersion tracks the scoring model for debugging and analysis.
	// Bump this when changing scoring logic significantly.
	scoreVersion = "2026-v1"

	// maxEngagementContribution caps the engagement category independently,
	// before the category sums are combined and clamped to 0-100.
	maxEngagementContribution = 50.0
)

// Demographic factor points. These describe WHO the lead is.
// Veterans, people in recovery, and reentry candidates are priority
// populations for placement programs.
const (
	pointsVeteran    = 25.0
	pointsInRecovery = 20.0
	pointsReentry    = 18.0
	pointsHousehold  = 15.0 // family flag or household larger than one
	pointsEmployed   = 10.0
)

// Urgency factor points. These describe how soon housing is needed.
// The move-in buckets are mutually exclusive, tightest first.
const (
	pointsHomeless     = 30.0
	pointsEvictionRisk = 25.0
	pointsMoveIn30     = 20.0 // move-in within 30 days
	pointsMoveIn60     = 15.0 // within 60 days
	pointsMoveIn90     = 10.0 // within 90 days
)

// engagementWeights award points per interaction, summed over the whole
// history and capped at maxEngagementContribution.
var engagementWeights = map[domain.InteractionType]float64{
	domain.InteractionEmailOpened:          5,
	domain.InteractionEmailClicked:         10,
	domain.InteractionPhoneContact:         15,
	domain.InteractionFormCompleted:        20,
	domain.InteractionAppointmentScheduled: 25,
	domain.InteractionDocumentSubmitted:    20,
}

// Qualification factor points. Paperwork completeness signals a lead that
// can move through placement quickly.
const (
	pointsIncomeVerified  = 15.0
	pointsReferences      = 10.0
	pointsBackgroundCheck = 10.0
)

// Behavioral response-time tiers: a single bonus for how quickly the lead
// responded to the first outreach, fastest tier first.
const (
	pointsResponse1h  = 15.0
	pointsResponse6h  = 10.0
	pointsResponse24h = 5.0
	pointsResponse72h = 2.0
)

// Penalty points. Contributions from this category are never positive.
const (
	penaltyStale14d     = -20.0 // no interaction for 14+ days
	penaltyStale7d      = -10.0 // no interaction for 7+ days
	penaltyEmailBounced = -15.0
	penaltyPhoneInvalid = -10.0
	penaltyOptedOut     = -100.0 // dominant: opted-out leads sink to F
)

// Result holds scoring output and factor details.
type Result struct {
	LeadID          string             `json:"lead_id,omitempty"`
	Score           int                `json:"score"`
	Grade           Grade              `json:"grade"`
	Priority        Priority           `json:"priority"`
	Breakdown       Breakdown          `json:"breakdown"`
	Factors         map[string]float64 `json:"factors,omitempty"`
	Recommendations []string           `json:"recommendations"`
	NextAction      NextAction         `json:"next_action"`
	Version         string             `json:"version"`
	ScoredAt        time.Time          `json:"scored_at"`
}

// Breakdown is the per-category sub-score decomposition. The raw pre-clamp
// score is the sum of all six categories; Penalties is never positive.
type Breakdown struct {
	Demographic   int `json:"demographic"`
	Urgency       int `json:"urgency"`
	Engagement    int `json:"engagement"`
	Qualification int `json:"qualification"`
	Behavioral    int `json:"behavioral"`
	Penalties     int `json:"penalties"`
}

// Total returns the raw pre-clamp score.
func (b Breakdown) Total() int {
	return b.Demographic + b.Urgency + b.Engagement + b.Qualification + b.Behavioral + b.Penalties
}

// Service computes lead scores. It holds no mutable state and is safe to
// call concurrently from any number of callers.
type Service struct {
	catalog     *Catalog
	concurrency int
	log         *logger.Logger
	now         func() time.Time
}

// New creates a new scoring service. bulkConcurrency bounds the worker
// fan-out in ScoreAll.
func New(catalog *Catalog, bulkConcurrency int, log *logger.Logger) *Service {
	if bulkConcurrency < 1 {
		bulkConcurrency = 1
	}
	return &Service{
		catalog:     catalog,
		concurrency: bulkConcurrency,
		log:         log,
		now:         time.Now,
	}
}

// Score computes the full result for one lead and its interaction history.
// It is total: partially-populated leads never fail, absent fields simply
// contribute nothing. Interactions may arrive in any order; every scan
// works off timestamps, not slice position.
func (s *Service) Score(lead domain.Lead, interactions []domain.Interaction) Result {
	now := s.now()
	factors := map[string]float64{}

	demographic := s.scoreDemographic(lead, factors)
	urgency := s.scoreUrgency(lead, now, factors)
	engagement := s.scoreEngagement(interactions, factors)
	qualification := s.scoreQualification(lead, factors)
	behavioral := s.scoreBehavioral(interactions, factors)
	penalties := s.scorePenalties(lead, interactions, now, factors)

	raw := demographic + urgency + engagement + qualification + behavioral + penalties
	score := clampScore(raw)
	grade, priority := gradeFor(score)

	return Result{
		LeadID:   lead.ID,
		Score:    score,
		Grade:    grade,
		Priority: priority,
		Breakdown: Breakdown{
			Demographic:   int(math.Round(demographic)),
			Urgency:       int(math.Round(urgency)),
			Engagement:    int(math.Round(engagement)),
			Qualification: int(math.Round(qualification)),
			Behavioral:    int(math.Round(behavioral)),
			Penalties:     int(math.Round(penalties)),
		},
		Factors:         factors,
		Recommendations: s.catalog.recommendationsFor(grade, lead),
		NextAction:      s.nextAction(priority, interactions, now),
		Version:         scoreVersion,
		ScoredAt:        now,
	}
}

// ========== DEMOGRAPHIC FACTORS (max 88 points) ==========

// scoreDemographic awards fixed points for who the lead is.
func (s *Service) scoreDemographic(lead domain.Lead, factors map[string]float64) float64 {
	score := 0.0
	if lead.IsVeteran {
		score += s.addFactor(factors, "veteran", pointsVeteran)
	}
	if lead.InRecovery {
		score += s.addFactor(factors, "in_recovery", pointsInRecovery)
	}
	if lead.IsReentry {
		score += s.addFactor(factors, "reentry", pointsReentry)
	}
	if lead.HasHousehold() {
		score += s.addFactor(factors, "household", pointsHousehold)
	}
	if lead.IsEmployed() {
		score += s.addFactor(factors, "employed", pointsEmployed)
	}
	return score
}

// ========== URGENCY FACTORS (max 75 points) ==========

// scoreUrgency awards points for housing urgency. The move-in bonus is a
// single bucket keyed by days until the target date.
func (s *Service) scoreUrgency(lead domain.Lead, now time.Time, factors map[string]float64) float64 {
	score := 0.0
	if lead.CurrentlyHomeless {
		score += s.addFactor(factors, "currently_homeless", pointsHomeless)
	}
	if lead.EvictionRisk {
		score += s.addFactor(factors, "eviction_risk", pointsEvictionRisk)
	}
	if lead.MoveInDate != nil {
		score += s.addFactor(factors, "move_in_window", scoreMoveInWindow(*lead.MoveInDate, now))
	}
	return score
}

// scoreMoveInWindow buckets whole days until the desired move-in date,
// tightest bucket first. A date already in the past lands in the tightest
// bucket: the need is immediate.
func scoreMoveInWindow(moveIn, now time.Time) float64 {
	days := int(moveIn.Sub(now).Hours() / 24)
	switch {
	case days <= 30:
		return pointsMoveIn30
	case days <= 60:
		return pointsMoveIn60
	case days <= 90:
		return pointsMoveIn90
	default:
		return 0
	}
}

// ========== ENGAGEMENT FACTORS (capped at 50 points) ==========

// scoreEngagement sums per-type interaction weights over the full history.
// The cap applies to the running sum, not per interaction: ten scheduled
// appointments still contribute 50, not 250.
func (s *Service) scoreEngagement(interactions []domain.Interaction, factors map[string]float64) float64 {
	total := 0.0
	for _, interaction := range interactions {
		if weight, ok := engagementWeights[interaction.Type]; ok {
			total += weight
		}
	}
	return s.addFactor(factors, "engagement", clampFloat(total, 0, maxEngagementContribution))
}

// ========== QUALIFICATION FACTORS (max 35 points) ==========

// scoreQualification awards points for completed placement paperwork.
func (s *Service) scoreQualification(lead domain.Lead, factors map[string]float64) float64 {
	score := 0.0
	if lead.IncomeVerified {
		score += s.addFactor(factors, "income_verified", pointsIncomeVerified)
	}
	if lead.ReferencesProvided {
		score += s.addFactor(factors, "references", pointsReferences)
	}
	if lead.BackgroundCheckConsent {
		score += s.addFactor(factors, "background_check", pointsBackgroundCheck)
	}
	return score
}

// ========== BEHAVIORAL FACTORS (max 15 points) ==========

// scoreBehavioral awards a single tiered bonus for how quickly the lead
// responded to the first outreach. The pair examined is the earliest
// outreach (email or SMS sent) and the earliest response strictly after it
// (open, click, or completed form). No qualifying pair contributes zero.
func (s *Service) scoreBehavioral(interactions []domain.Interaction, factors map[string]float64) float64 {
	outreach, ok := earliestOfTypes(interactions, outreachTypes, time.Time{})
	if !ok {
		return 0
	}
	response, ok := earliestOfTypes(interactions, responseTypes, outreach)
	if !ok {
		return 0
	}

	hours := response.Sub(outreach).Hours()
	return s.addFactor(factors, "response_time", responseTierBonus(hours))
}

var outreachTypes = map[domain.InteractionType]struct{}{
	domain.InteractionEmailSent: {},
	domain.InteractionSMSSent:   {},
}

var responseTypes = map[domain.InteractionType]struct{}{
	domain.InteractionEmailOpened:   {},
	domain.InteractionEmailClicked:  {},
	domain.InteractionFormCompleted: {},
}

// earliestOfTypes returns the earliest timestamp among interactions of the
// given types occurring strictly after the given instant.
func earliestOfTypes(interactions []domain.Interaction, types map[domain.InteractionType]struct{}, after time.Time) (time.Time, bool) {
	var best time.Time
	found := false
	for _, interaction := range interactions {
		if _, ok := types[interaction.Type]; !ok {
			continue
		}
		if !interaction.CreatedAt.After(after) {
			continue
		}
		if !found || interaction.CreatedAt.Before(best) {
			best = interaction.CreatedAt
			found = true
		}
	}
	return best, found
}

// responseTierBonus maps elapsed response hours to a bonus, fastest first.
func responseTierBonus(hours float64) float64 {
	switch {
	case hours <= 1:
		return pointsResponse1h
	case hours <= 6:
		return pointsResponse6h
	case hours <= 24:
		return pointsResponse24h
	case hours <= 72:
		return pointsResponse72h
	default:
		return 0
	}
}

// ========== PENALTIES (never positive) ==========

// scorePenalties subtracts for neglect and dead contact channels. The
// staleness buckets are mutually exclusive, most severe first. A lead with
// no interactions yet carries no staleness penalty: it is new, not stale.
func (s *Service) scorePenalties(lead domain.Lead, interactions []domain.Interaction, now time.Time, factors map[string]float64) float64 {
	score := 0.0

	if last, ok := latestInteraction(interactions); ok {
		days := now.Sub(last).Hours() / 24
		switch {
		case days >= 14:
			score += s.addFactor(factors, "stale_14d", penaltyStale14d)
		case days >= 7:
			score += s.addFactor(factors, "stale_7d", penaltyStale7d)
		}
	}

	if lead.EmailBounced {
		score += s.addFactor(factors, "email_bounced", penaltyEmailBounced)
	}
	if lead.PhoneInvalid {
		score += s.addFactor(factors, "phone_invalid", penaltyPhoneInvalid)
	}
	if lead.OptedOut {
		score += s.addFactor(factors, "opted_out", penaltyOptedOut)
	}

	return score
}

// latestInteraction returns the most recent interaction timestamp.
func latestInteraction(interactions []domain.Interaction) (time.Time, bool) {
	var latest time.Time
	found := false
	for _, interaction := range interactions {
		if !found || interaction.CreatedAt.After(latest) {
			latest = interaction.CreatedAt
			found = true
		}
	}
	return latest, found
}

func (s *Service) addFactor(factors map[string]float64, key string, value float64) float64 {
	if math.Abs(value) < 0.01 {
		return 0
	}
	// Round to 1 decimal place for cleaner factor display
	factors[key] = math.Round(value*10) / 10
	return value
}

func clampScore(value float64) int {
	rounded := int(math.Round(value))
	if rounded < 0 {
		return 0
	}
	if rounded > 100 {
		return 100
	}
	return rounded
}

func clampFloat(value float64, min float64, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
