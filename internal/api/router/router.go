// Package router assembles the HTTP surface of the agent platform.
package router

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	httpmiddleware "github.com/turiniq/agent-platform/internal/http/middleware"
	"github.com/turiniq/agent-platform/internal/onboarding"
	"github.com/turiniq/agent-platform/internal/records"
	"github.com/turiniq/agent-platform/internal/webchat"
	"github.com/turiniq/agent-platform/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger             *logging.Logger
	OnboardingHandler  *onboarding.Handler
	RecordsHandler     *records.Handler
	WebchatHandler     *webchat.Handler
	MetricsHandler     http.Handler
	CORSAllowedOrigins []string
}

// New creates a new Chi router with all routes configured
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	r.Get("/", handleRoot)
	r.Get("/health", handleHealth)

	if cfg.OnboardingHandler != nil {
		r.Post("/configure-agent", cfg.OnboardingHandler.ConfigureAgent)
	}
	if cfg.WebchatHandler != nil {
		r.Get("/ws/customer/{businessID}", cfg.WebchatHandler.HandleCustomerSocket)
		r.Get("/{businessID}", cfg.WebchatHandler.HandleChatPage)
	}
	if cfg.RecordsHandler != nil {
		r.Get("/tickets/{businessID}", cfg.RecordsHandler.ListTickets)
		r.Get("/leads/{businessID}", cfg.RecordsHandler.ListLeads)
	}
	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	return r
}

func handleRoot(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Server is running"})
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
