// Package records serves the tickets and leads a business has accumulated.
package records

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/turiniq/agent-platform/internal/agent"
	"github.com/turiniq/agent-platform/pkg/logging"
)

// Store lists the persisted records for a business.
type Store interface {
	ListTickets(ctx context.Context, businessID string) ([]agent.Ticket, error)
	ListLeads(ctx context.Context, businessID string) ([]agent.Lead, error)
}

// Handler handles HTTP requests for tickets and leads
type Handler struct {
	store  Store
	logger *logging.Logger
}

// NewHandler creates a new records handler
func NewHandler(store Store, logger *logging.Logger) *Handler {
	return &Handler{store: store, logger: logger}
}

// ListTicketsResponse is the response for listing tickets
type ListTicketsResponse struct {
	Status  string         `json:"status"`
	Tickets []agent.Ticket `json:"tickets"`
}

// ListLeadsResponse is the response for listing leads
type ListLeadsResponse struct {
	Status string       `json:"status"`
	Leads  []agent.Lead `json:"leads"`
}

// ListTickets handles GET /tickets/{businessID} requests
func (h *Handler) ListTickets(w http.ResponseWriter, r *http.Request) {
	businessID := chi.URLParam(r, "businessID")
	if businessID == "" {
		http.Error(w, "missing business_id", http.StatusBadRequest)
		return
	}

	tickets, err := h.store.ListTickets(r.Context(), businessID)
	if err != nil {
		h.logger.Error("failed to list tickets", "error", err, "business_id", businessID)
		http.Error(w, "failed to fetch tickets", http.StatusInternalServerError)
		return
	}
	if tickets == nil {
		tickets = []agent.Ticket{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ListTicketsResponse{Status: "success", Tickets: tickets})
}

// ListLeads handles GET /leads/{businessID} requests
func (h *Handler) ListLeads(w http.ResponseWriter, r *http.Request) {
	businessID := chi.URLParam(r, "businessID")
	if businessID == "" {
		http.Error(w, "missing business_id", http.StatusBadRequest)
		return
	}

	leads, err := h.store.ListLeads(r.Context(), businessID)
	if err != nil {
		h.logger.Error("failed to list leads", "error", err, "business_id", businessID)
		http.Error(w, "failed to fetch leads", http.StatusInternalServerError)
		return
	}
	if leads == nil {
		leads = []agent.Lead{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ListLeadsResponse{Status: "success", Leads: leads})
}
