package store

import (
	"context"
	"sync"

	"placement_portal_backend/internal/leads/domain"
)

// Memory is the in-process LeadStore implementation. All access is guarded
// by a single RWMutex; reads return copies so callers can never mutate
// stored state through a returned slice.
type Memory struct {
	mu           sync.RWMutex
	leads        map[string]domain.Lead
	order        []string // lead ids in creation order, drives List
	interactions map[string][]domain.Interaction
}

// NewMemory creates an empty in-memory lead store.
func NewMemory() *Memory {
	return &Memory{
		leads:        make(map[string]domain.Lead),
		interactions: make(map[string][]domain.Interaction),
	}
}

// Create stores a new lead. The lead must already carry an identifier;
// generating one is the intake workflow's job. Creating a duplicate id
// fails with ErrConflict.
func (m *Memory) Create(_ context.Context, lead domain.Lead) (domain.Lead, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.leads[lead.ID]; exists {
		return domain.Lead{}, ErrConflict
	}

	m.leads[lead.ID] = lead
	m.order = append(m.order, lead.ID)
	return lead, nil
}

// Update replaces a stored lead record.
func (m *Memory) Update(_ context.Context, lead domain.Lead) (domain.Lead, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.leads[lead.ID]; !exists {
		return domain.Lead{}, ErrNotFound
	}

	m.leads[lead.ID] = lead
	return lead, nil
}

// GetByID returns the lead with the given id.
func (m *Memory) GetByID(_ context.Context, id string) (domain.Lead, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	lead, ok := m.leads[id]
	if !ok {
		return domain.Lead{}, ErrNotFound
	}
	return lead, nil
}

// List returns every stored lead in creation order.
func (m *Memory) List(_ context.Context) ([]domain.Lead, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	leads := make([]domain.Lead, 0, len(m.order))
	for _, id := range m.order {
		leads = append(leads, m.leads[id])
	}
	return leads, nil
}

// AppendInteraction records a touchpoint on the lead's history. The history
// is append-only and kept in insertion order; timestamp ordering is the
// caller's contract, scoring scans work off timestamps regardless.
func (m *Memory) AppendInteraction(_ context.Context, leadID string, interaction domain.Interaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.leads[leadID]; !exists {
		return ErrNotFound
	}

	m.interactions[leadID] = append(m.interactions[leadID], interaction)
	return nil
}

// ListInteractions returns a copy of the lead's interaction history in
// insertion order.
func (m *Memory) ListInteractions(_ context.Context, leadID string) ([]domain.Interaction, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if _, exists := m.leads[leadID]; !exists {
		return nil, ErrNotFound
	}

	history := m.interactions[leadID]
	out := make([]domain.Interaction, len(history))
	copy(out, history)
	return out, nil
}

// ListAllInteractions returns a copy of every lead's interaction history,
// keyed by lead id. Used by bulk scoring.
func (m *Memory) ListAllInteractions(_ context.Context) (map[string][]domain.Interaction, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	all := make(map[string][]domain.Interaction, len(m.interactions))
	for id, history := range m.interactions {
		out := make([]domain.Interaction, len(history))
		copy(out, history)
		all[id] = out
	}
	return all, nil
}
