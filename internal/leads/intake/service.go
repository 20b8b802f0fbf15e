// Package intake is the lead-intake workflow: it validates and normalizes
// incoming lead data, persists it to the lead store, scores it synchronously,
// and publishes the domain events the analytics module feeds on. It is the
// only place unvalidated input crosses into the leads bounded context.
package intake

import (
	"context"
	"errors"
	"strings"
	"time"

	"placement_portal_backend/internal/events"
	"placement_portal_backend/internal/leads/domain"
	"placement_portal_backend/internal/leads/scoring"
	"placement_portal_backend/internal/leads/store"
	"placement_portal_backend/platform/apperr"
	"placement_portal_backend/platform/logger"
	"placement_portal_backend/platform/phone"
	"placement_portal_backend/platform/validator"

	"github.com/google/uuid"
)

// Store is the consumer-driven slice of the lead store the workflow needs.
type Store interface {
	store.LeadReader
	store.LeadWriter
	store.InteractionReader
	store.InteractionAppender
}

// Service orchestrates lead intake and re-scoring.
type Service struct {
	store       Store
	scorer      *scoring.Service
	bus         events.Bus
	val         *validator.Validator
	phoneRegion string
	log         *logger.Logger
	now         func() time.Time
}

// New creates the intake workflow. phoneRegion is the default region for
// numbers submitted without a country prefix.
func New(st Store, scorer *scoring.Service, bus events.Bus, val *validator.Validator, phoneRegion string, log *logger.Logger) *Service {
	return &Service{
		store:       st,
		scorer:      scorer,
		bus:         bus,
		val:         val,
		phoneRegion: phoneRegion,
		log:         log,
		now:         time.Now,
	}
}

// CreateLeadResult pairs the stored lead with its initial score.
type CreateLeadResult struct {
	Lead  domain.Lead    `json:"lead"`
	Score scoring.Result `json:"score"`
}

// CreateLead validates and normalizes the request, stores the lead, scores
// it, and publishes leads.lead.created. The created event is published
// synchronously so the analytics module registers the lead before any later
// event for it can arrive (per-entity ordering).
//
// A phone number that fails E.164 validation does not reject the lead; it
// flips the phone_invalid flag so scoring penalizes the dead channel.
func (s *Service) CreateLead(ctx context.Context, req CreateLeadRequest) (CreateLeadResult, error) {
	if err := s.val.Struct(req); err != nil {
		return CreateLeadResult{}, apperr.Wrap(apperr.KindValidation, "invalid lead payload", err).
			WithOp("intake.CreateLead").
			WithDetails(validator.FieldErrors(err))
	}

	now := s.now()
	lead := domain.Lead{
		ID:                     req.ID,
		Name:                   strings.TrimSpace(req.Name),
		Email:                  strings.ToLower(strings.TrimSpace(req.Email)),
		Source:                 strings.TrimSpace(req.Source),
		IsVeteran:              req.IsVeteran,
		InRecovery:             req.InRecovery,
		IsReentry:              req.IsReentry,
		HasFamily:              req.HasFamily,
		HouseholdSize:          req.HouseholdSize,
		EmploymentStatus:       domain.EmploymentStatus(req.EmploymentStatus),
		IncomeLevel:            domain.IncomeLevel(req.IncomeLevel),
		IncomeVerified:         req.IncomeVerified,
		ReferencesProvided:     req.ReferencesProvided,
		BackgroundCheckConsent: req.BackgroundCheckConsent,
		CurrentlyHomeless:      req.CurrentlyHomeless,
		EvictionRisk:           req.EvictionRisk,
		MoveInDate:             req.MoveInDate,
		OptedOut:               req.OptedOut,
		CreatedAt:              now,
	}
	if lead.ID == "" {
		lead.ID = uuid.NewString()
	}

	if req.Phone != "" {
		normalized, valid := phone.NormalizeRegion(req.Phone, s.phoneRegion)
		lead.Phone = normalized
		lead.PhoneInvalid = !valid
	}

	created, err := s.store.Create(ctx, lead)
	if err != nil {
		if errors.Is(err, store.ErrConflict) {
			return CreateLeadResult{}, apperr.Conflict("lead already exists").WithOp("intake.CreateLead")
		}
		s.log.StoreError("create_lead", err)
		return CreateLeadResult{}, err
	}

	result := s.scorer.Score(created, nil)
	s.log.LeadScored(created.ID, result.Score, string(result.Grade), string(result.Priority))

	if err := s.bus.PublishSync(ctx, events.LeadCreated{
		BaseEvent:         events.NewBaseEvent(),
		LeadID:            created.ID,
		Source:            created.Source,
		Name:              created.Name,
		Email:             created.Email,
		Phone:             created.Phone,
		IsVeteran:         created.IsVeteran,
		CurrentlyHomeless: created.CurrentlyHomeless,
		InRecovery:        created.InRecovery,
		IncomeLevel:       string(created.IncomeLevel),
		CreatedAt:         created.CreatedAt,
	}); err != nil {
		s.log.Error("lead created handlers failed", "error", err, "leadId", created.ID)
	}
	s.publishRescored(ctx, created.ID, result)

	return CreateLeadResult{Lead: created, Score: result}, nil
}

// RecordInteraction appends a touchpoint to the lead's history and
// re-scores. Interactions that prove a contact channel dead (bounced email,
// invalid phone) also flip the matching lead flag so the penalty persists
// across future scoring passes.
func (s *Service) RecordInteraction(ctx context.Context, leadID string, req RecordInteractionRequest) (scoring.Result, error) {
	if err := s.val.Struct(req); err != nil {
		return scoring.Result{}, apperr.Wrap(apperr.KindValidation, "invalid interaction payload", err).
			WithOp("intake.RecordInteraction").
			WithDetails(validator.FieldErrors(err))
	}

	interactionType, ok := domain.ParseInteractionType(req.Type)
	if !ok {
		return scoring.Result{}, apperr.Validation("unknown interaction type: " + req.Type).
			WithOp("intake.RecordInteraction")
	}

	occurredAt := s.now()
	if req.OccurredAt != nil {
		occurredAt = *req.OccurredAt
	}

	interaction := domain.Interaction{
		Type:      interactionType,
		CreatedAt: occurredAt,
		Data:      req.Data,
	}
	if err := s.store.AppendInteraction(ctx, leadID, interaction); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return scoring.Result{}, apperr.NotFound("lead not found").WithOp("intake.RecordInteraction")
		}
		s.log.StoreError("append_interaction", err)
		return scoring.Result{}, err
	}

	if err := s.applyChannelFlags(ctx, leadID, interactionType); err != nil {
		return scoring.Result{}, err
	}

	if err := s.bus.PublishSync(ctx, events.InteractionRecorded{
		BaseEvent:       events.NewBaseEvent(),
		LeadID:          leadID,
		InteractionType: string(interactionType),
		OccurredOn:      occurredAt,
	}); err != nil {
		s.log.Error("interaction handlers failed", "error", err, "leadId", leadID)
	}

	return s.Rescore(ctx, leadID)
}

// applyChannelFlags mirrors channel-failure interactions onto the lead
// record's flags.
func (s *Service) applyChannelFlags(ctx context.Context, leadID string, interactionType domain.InteractionType) error {
	if interactionType != domain.InteractionEmailBounced && interactionType != domain.InteractionInvalidPhone {
		return nil
	}

	lead, err := s.store.GetByID(ctx, leadID)
	if err != nil {
		return err
	}
	switch interactionType {
	case domain.InteractionEmailBounced:
		lead.EmailBounced = true
	case domain.InteractionInvalidPhone:
		lead.PhoneInvalid = true
	}
	_, err = s.store.Update(ctx, lead)
	return err
}

// Rescore recomputes the score for one lead from its current record and
// full interaction history.
func (s *Service) Rescore(ctx context.Context, leadID string) (scoring.Result, error) {
	lead, err := s.store.GetByID(ctx, leadID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return scoring.Result{}, apperr.NotFound("lead not found").WithOp("intake.Rescore")
		}
		return scoring.Result{}, err
	}
	interactions, err := s.store.ListInteractions(ctx, leadID)
	if err != nil {
		return scoring.Result{}, err
	}

	result := s.scorer.Score(lead, interactions)
	s.log.LeadScored(lead.ID, result.Score, string(result.Grade), string(result.Priority))
	s.publishRescored(ctx, lead.ID, result)
	return result, nil
}

// RescoreAll scores every stored lead and returns the results ranked by
// score descending; equal scores keep store order.
func (s *Service) RescoreAll(ctx context.Context) ([]scoring.Result, error) {
	leads, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	interactions, err := s.store.ListAllInteractions(ctx)
	if err != nil {
		return nil, err
	}
	return s.scorer.ScoreAll(ctx, leads, interactions)
}

// RecordStage publishes a pipeline milestone for the lead (contacted,
// interested, tour scheduled, toured, applied, approved, leased). Creation
// and conversion have their own entry points and are rejected here.
func (s *Service) RecordStage(ctx context.Context, leadID, stage string) error {
	event, ok := domain.ParseLeadEvent(stage)
	if !ok || event == domain.LeadEventCreated || event == domain.LeadEventConverted {
		return apperr.Validation("unknown pipeline stage: " + stage).WithOp("intake.RecordStage")
	}
	if _, err := s.store.GetByID(ctx, leadID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return apperr.NotFound("lead not found").WithOp("intake.RecordStage")
		}
		return err
	}

	return s.bus.PublishSync(ctx, events.LeadStageReached{
		BaseEvent:  events.NewBaseEvent(),
		LeadID:     leadID,
		Stage:      string(event),
		OccurredOn: s.now(),
	})
}

// RecordConversion publishes a conversion (lease signed, placement
// completed) with the revenue attributed to it.
func (s *Service) RecordConversion(ctx context.Context, leadID, conversionType string, value float64) error {
	if _, err := s.store.GetByID(ctx, leadID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return apperr.NotFound("lead not found").WithOp("intake.RecordConversion")
		}
		return err
	}

	return s.bus.PublishSync(ctx, events.LeadConverted{
		BaseEvent:      events.NewBaseEvent(),
		LeadID:         leadID,
		ConversionType: conversionType,
		Value:          value,
		ConvertedAt:    s.now(),
	})
}

func (s *Service) publishRescored(ctx context.Context, leadID string, result scoring.Result) {
	s.bus.Publish(ctx, events.LeadRescored{
		BaseEvent:  events.NewBaseEvent(),
		LeadID:     leadID,
		Score:      result.Score,
		Grade:      string(result.Grade),
		Priority:   string(result.Priority),
		NextAction: string(result.NextAction.Action),
		Version:    result.Version,
	})
}
