package analytics

import (
	"context"

	"placement_portal_backend/internal/events"
	"placement_portal_backend/internal/leads/domain"
	"placement_portal_backend/platform/config"
	"placement_portal_backend/platform/logger"
)

// Module wires the analytics engine to the domain event bus. Intake and the
// engagement collaborators publish; the engine consumes. Handlers run on
// the publisher's goroutine for synchronously published events, so the
// per-entity ordering guarantee carries through the bus.
type Module struct {
	engine *Engine
}

// NewModule creates the engine and registers its event subscriptions.
func NewModule(cfg config.AnalyticsConfig, eventBus events.Bus, log *logger.Logger) *Module {
	engine := New(cfg, log)

	eventBus.Subscribe(events.LeadCreated{}.EventName(), events.HandlerFunc(func(_ context.Context, event events.Event) error {
		e, ok := event.(events.LeadCreated)
		if !ok {
			return nil
		}
		engine.TrackLead(domain.Lead{
			ID:                e.LeadID,
			Source:            e.Source,
			IsVeteran:         e.IsVeteran,
			CurrentlyHomeless: e.CurrentlyHomeless,
			InRecovery:        e.InRecovery,
			IncomeLevel:       domain.IncomeLevel(e.IncomeLevel),
			CreatedAt:         e.CreatedAt,
		}, domain.LeadEventCreated)
		return nil
	}))

	eventBus.Subscribe(events.LeadStageReached{}.EventName(), events.HandlerFunc(func(_ context.Context, event events.Event) error {
		e, ok := event.(events.LeadStageReached)
		if !ok {
			return nil
		}
		// Unknown stages fall through to the engine, which drops and logs
		// them; the bus layer does not second-guess event payloads.
		engine.TrackLead(domain.Lead{ID: e.LeadID}, domain.LeadEvent(e.Stage))
		return nil
	}))

	eventBus.Subscribe(events.LeadConverted{}.EventName(), events.HandlerFunc(func(_ context.Context, event events.Event) error {
		e, ok := event.(events.LeadConverted)
		if !ok {
			return nil
		}
		engine.TrackConversion(e.LeadID, e.ConversionType, e.Value)
		return nil
	}))

	eventBus.Subscribe(events.EmailActivity{}.EventName(), events.HandlerFunc(func(_ context.Context, event events.Event) error {
		e, ok := event.(events.EmailActivity)
		if !ok {
			return nil
		}
		data := map[string]string{}
		if e.LeadID != "" {
			data["lead_id"] = e.LeadID
		}
		if e.Subject != "" {
			data["subject"] = e.Subject
		}
		engine.TrackEmail(e.EmailID, domain.EmailEvent(e.Activity), data)
		return nil
	}))

	eventBus.Subscribe(events.ConversationActivity{}.EventName(), events.HandlerFunc(func(_ context.Context, event events.Event) error {
		e, ok := event.(events.ConversationActivity)
		if !ok {
			return nil
		}
		engine.TrackConversation(e.ConversationID, e.Message, e.Response, e.ResponseTimeMs)
		return nil
	}))

	return &Module{engine: engine}
}

// Engine exposes the underlying engine for the reporting workflow and for
// direct ingestion by offline drivers.
func (m *Module) Engine() *Engine {
	return m.engine
}

// Close stops the engine's background sampler.
func (m *Module) Close() {
	m.engine.Close()
}
