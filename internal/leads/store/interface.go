// Package store provides the lead store the intake and reporting workflows
// compose against. Leads and their interaction histories live only in
// process memory; durability, if wanted, is an external concern.
package store

import (
	"context"
	"errors"

	"placement_portal_backend/internal/leads/domain"
)

var (
	ErrNotFound = errors.New("lead not found")
	ErrConflict = errors.New("lead already exists")
)

// =====================================
// Segregated Interfaces (Interface Segregation Principle)
// =====================================

// LeadReader provides read-only access to lead records.
type LeadReader interface {
	GetByID(ctx context.Context, id string) (domain.Lead, error)
	List(ctx context.Context) ([]domain.Lead, error)
}

// LeadWriter provides write operations for lead records.
type LeadWriter interface {
	Create(ctx context.Context, lead domain.Lead) (domain.Lead, error)
	Update(ctx context.Context, lead domain.Lead) (domain.Lead, error)
}

// InteractionReader provides read-only access to a lead's interaction history.
type InteractionReader interface {
	ListInteractions(ctx context.Context, leadID string) ([]domain.Interaction, error)
	ListAllInteractions(ctx context.Context) (map[string][]domain.Interaction, error)
}

// InteractionAppender records touchpoints on a lead's history.
// Interactions are append-only; nothing removes or rewrites them.
type InteractionAppender interface {
	AppendInteraction(ctx context.Context, leadID string, interaction domain.Interaction) error
}

// =====================================
// Composite Interface
// =====================================

// LeadStore is the complete store contract, composed of the focused
// interfaces so consumers can depend on only what they need.
type LeadStore interface {
	LeadReader
	LeadWriter
	InteractionReader
	InteractionAppender
}

// Ensure Memory implements LeadStore
var _ LeadStore = (*Memory)(nil)
