package store

import (
	"context"

	"github.com/turiniq/agent-platform/internal/agent"
)

// Store is the full persistence surface the service wires once: the session
// contract plus the onboarding upsert and the read endpoints.
type Store interface {
	agent.Store

	UpsertBusinessData(ctx context.Context, businessID string, data agent.BusinessData) error
	ListTickets(ctx context.Context, businessID string) ([]agent.Ticket, error)
	ListLeads(ctx context.Context, businessID string) ([]agent.Lead, error)
}
