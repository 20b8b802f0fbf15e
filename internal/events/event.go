// Package events provides domain event definitions for decoupled,
// event-driven communication between modules.
// Infrastructure (Bus, Handler) is in platform/events.
package events

import (
	"time"

	"placement_portal_backend/platform/events"
)

// Re-export platform types for convenience
type (
	Event       = events.Event
	Bus         = events.Bus
	Handler     = events.Handler
	HandlerFunc = events.HandlerFunc
	BaseEvent   = events.BaseEvent
)

// Re-export platform functions
var NewBaseEvent = events.NewBaseEvent

// =============================================================================
// Leads Domain Events
// =============================================================================

// LeadCreated is published when a new lead enters the system.
type LeadCreated struct {
	BaseEvent
	LeadID            string    `json:"leadId"`
	Source            string    `json:"source,omitempty"`
	Name              string    `json:"name"`
	Email             string    `json:"email,omitempty"`
	Phone             string    `json:"phone,omitempty"`
	IsVeteran         bool      `json:"isVeteran"`
	CurrentlyHomeless bool      `json:"currentlyHomeless"`
	InRecovery        bool      `json:"inRecovery"`
	IncomeLevel       string    `json:"incomeLevel,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
}

func (e LeadCreated) EventName() string { return "leads.lead.created" }

// LeadRescored is published after every scoring pass for a lead.
type LeadRescored struct {
	BaseEvent
	LeadID     string `json:"leadId"`
	Score      int    `json:"score"`
	Grade      string `json:"grade"`
	Priority   string `json:"priority"`
	NextAction string `json:"nextAction"`
	Version    string `json:"version"`
}

func (e LeadRescored) EventName() string { return "leads.lead.rescored" }

// InteractionRecorded is published when an interaction is appended to a
// lead's history.
type InteractionRecorded struct {
	BaseEvent
	LeadID          string    `json:"leadId"`
	InteractionType string    `json:"interactionType"`
	OccurredOn      time.Time `json:"occurredOn"`
}

func (e InteractionRecorded) EventName() string { return "leads.interaction.recorded" }

// LeadStageReached is published when a lead hits a pipeline milestone
// (contacted, interested, tour scheduled, toured, applied, approved,
// leased). The analytics module folds these into the conversion funnel.
type LeadStageReached struct {
	BaseEvent
	LeadID     string    `json:"leadId"`
	Stage      string    `json:"stage"`
	OccurredOn time.Time `json:"occurredOn"`
}

func (e LeadStageReached) EventName() string { return "leads.lead.stage_reached" }

// LeadConverted is published when a lead converts (signs a lease or
// completes placement). Value is the revenue attributed to the conversion.
type LeadConverted struct {
	BaseEvent
	LeadID         string    `json:"leadId"`
	ConversionType string    `json:"conversionType"`
	Value          float64   `json:"value"`
	ConvertedAt    time.Time `json:"convertedAt"`
}

func (e LeadConverted) EventName() string { return "leads.lead.converted" }

// =============================================================================
// Engagement Domain Events
// =============================================================================

// EmailActivity is published for every email lifecycle transition
// (sent, opened, clicked, bounced, unsubscribed).
type EmailActivity struct {
	BaseEvent
	EmailID    string    `json:"emailId"`
	LeadID     string    `json:"leadId,omitempty"`
	Activity   string    `json:"activity"`
	Subject    string    `json:"subject,omitempty"`
	OccurredOn time.Time `json:"occurredOn"`
}

func (e EmailActivity) EventName() string { return "engagement.email.activity" }

// ConversationActivity is published when a conversation starts or receives
// a message. ResponseTimeMs is zero when the turn carries no measured
// response latency.
type ConversationActivity struct {
	BaseEvent
	ConversationID string    `json:"conversationId"`
	LeadID         string    `json:"leadId,omitempty"`
	Channel        string    `json:"channel,omitempty"`
	Message        string    `json:"message,omitempty"`
	Response       string    `json:"response,omitempty"`
	ResponseTimeMs int64     `json:"responseTimeMs,omitempty"`
	OccurredOn     time.Time `json:"occurredOn"`
}

func (e ConversationActivity) EventName() string { return "engagement.conversation.activity" }

// =============================================================================
// Reporting Domain Events
// =============================================================================

// ReportGenerated is published when a scheduled or on-demand report is built.
type ReportGenerated struct {
	BaseEvent
	ReportType  string    `json:"reportType"`
	PeriodStart time.Time `json:"periodStart"`
	PeriodEnd   time.Time `json:"periodEnd"`
	TotalLeads  int64     `json:"totalLeads"`
	Conversions int64     `json:"conversions"`
}

func (e ReportGenerated) EventName() string { return "reports.report.generated" }
