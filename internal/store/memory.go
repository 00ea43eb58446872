package store

import (
	"context"
	"sync"

	"github.com/turiniq/agent-platform/internal/agent"
)

// Memory is an in-memory Store used by tests and local development.
type Memory struct {
	mu       sync.RWMutex
	business map[string]agent.BusinessData
	tickets  map[string][]agent.Ticket
	leads    map[string][]agent.Lead
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		business: make(map[string]agent.BusinessData),
		tickets:  make(map[string][]agent.Ticket),
		leads:    make(map[string][]agent.Lead),
	}
}

func (m *Memory) FindBusinessData(_ context.Context, businessID string) (*agent.BusinessData, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.business[businessID]
	if !ok {
		return nil, nil
	}
	return &data, nil
}

func (m *Memory) UpsertBusinessData(_ context.Context, businessID string, data agent.BusinessData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.business[businessID] = data
	return nil
}

func (m *Memory) InsertTicket(_ context.Context, ticket agent.Ticket) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tickets[ticket.BusinessID] = append(m.tickets[ticket.BusinessID], ticket)
	return nil
}

func (m *Memory) InsertLead(_ context.Context, lead agent.Lead) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.leads[lead.BusinessID] = append(m.leads[lead.BusinessID], lead)
	return nil
}

func (m *Memory) ListTickets(_ context.Context, businessID string) ([]agent.Ticket, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]agent.Ticket, len(m.tickets[businessID]))
	copy(out, m.tickets[businessID])
	return out, nil
}

func (m *Memory) ListLeads(_ context.Context, businessID string) ([]agent.Lead, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]agent.Lead, len(m.leads[businessID]))
	copy(out, m.leads[businessID])
	return out, nil
}

var _ Store = (*Memory)(nil)
