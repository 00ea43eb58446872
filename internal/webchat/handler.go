// Package webchat exposes the customer-facing WebSocket endpoint and runs
// one conversational session per connection.
package webchat

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/turiniq/agent-platform/internal/agent"
	"github.com/turiniq/agent-platform/pkg/logging"
)

// Runner drives one conversational session over a channel.
type Runner interface {
	Run(ctx context.Context, ch agent.Channel) error
}

// SessionFactory builds a session for one connected visitor.
type SessionFactory func(businessID string) Runner

// Handler manages customer WebSocket connections.
type Handler struct {
	newSession SessionFactory
	upgrader   websocket.Upgrader
	logger     *logging.Logger
}

// NewHandler creates a webchat handler.
func NewHandler(newSession SessionFactory, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		newSession: newSession,
		logger:     logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// The widget is embedded on arbitrary business sites.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// HandleCustomerSocket handles GET /ws/customer/{businessID} upgrades.
func (h *Handler) HandleCustomerSocket(w http.ResponseWriter, r *http.Request) {
	businessID := chi.URLParam(r, "businessID")
	if businessID == "" {
		http.Error(w, "missing business_id", http.StatusBadRequest)
		return
	}

	ws, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error("websocket upgrade failed", "error", err, "business_id", businessID)
		return
	}

	conn := NewConn(ws)
	defer conn.Close()

	h.logger.Info("customer connected", "business_id", businessID)

	session := h.newSession(businessID)
	if err := session.Run(r.Context(), conn); err != nil {
		h.logger.Error("session terminated", "error", err, "business_id", businessID)
		return
	}
	h.logger.Info("customer disconnected", "business_id", businessID)
}
