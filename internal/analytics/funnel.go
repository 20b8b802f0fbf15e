package analytics

import (
	"time"

	"placement_portal_backend/internal/leads/domain"
)

// Funnel is the conversion pipeline view for one timeframe window. Stage
// counts are independent presence checks over each lead's event log: a lead
// with a "leased" event but no "toured" event counts in Leased and not in
// Toured. Stages are not subsets of their predecessors.
type Funnel struct {
	Timeframe  domain.Timeframe `json:"timeframe"`
	Cutoff     time.Time        `json:"cutoff"`
	TotalLeads int              `json:"total_leads"`
	Contacted  int              `json:"contacted"`
	Interested int              `json:"interested"`
	Toured     int              `json:"toured"`
	Applied    int              `json:"applied"`
	Approved   int              `json:"approved"`
	Leased     int              `json:"leased"`
}

// ConversionFunnel counts stage membership for leads created inside the
// timeframe window. The toured stage accepts either a scheduled tour or a
// completed one.
func (e *Engine) ConversionFunnel(timeframe domain.Timeframe) Funnel {
	e.mu.Lock()
	defer e.mu.Unlock()

	cutoff := timeframe.CutoffFrom(e.now())
	funnel := Funnel{Timeframe: timeframe, Cutoff: cutoff}

	for _, record := range e.leads {
		if record.createdAt.IsZero() || !record.createdAt.After(cutoff) {
			continue
		}

		funnel.TotalLeads++
		if record.hasEvent(domain.LeadEventContacted) {
			funnel.Contacted++
		}
		if record.hasEvent(domain.LeadEventInterested) {
			funnel.Interested++
		}
		if record.hasEvent(domain.LeadEventTourScheduled) || record.hasEvent(domain.LeadEventToured) {
			funnel.Toured++
		}
		if record.hasEvent(domain.LeadEventApplied) {
			funnel.Applied++
		}
		if record.hasEvent(domain.LeadEventApproved) {
			funnel.Approved++
		}
		if record.hasEvent(domain.LeadEventLeased) {
			funnel.Leased++
		}
	}

	return funnel
}
