package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/turiniq/agent-platform/internal/llm"
	"github.com/turiniq/agent-platform/internal/observability/metrics"
	"github.com/turiniq/agent-platform/pkg/logging"
)

const (
	defaultGreeting       = "Hello! Welcome to our support! How can I assist you today?"
	defaultSupportContext = "You are a TurinIQ support agent. Be friendly and concise."
	defaultSalesContext   = "You are a TurinIQ sales agent. Be friendly and engaging to assist potential customers."

	escalationClosureMessage = "Your request has been escalated. A support ticket has been created."
	turnApologyMessage       = "Sorry, I encountered an issue. Please try again."
	sessionApologyMessage    = "Sorry, an error occurred. Please try again later."
	salesFallbackResponse    = "Sorry, I couldn't process your request."
	salesFallbackReason      = "General inquiry"
)

// SessionConfig wires a session's collaborators.
type SessionConfig struct {
	BusinessID string
	Client     llm.Client
	Store      Store
	Logger     *logging.Logger
	Metrics    *metrics.AgentMetrics

	// RetryPolicy applies to every live-chat gateway call.
	RetryPolicy llm.RetryPolicy

	// KnowledgeBaseLimit caps knowledge-base characters per prompt.
	// Zero means the 1000-character default.
	KnowledgeBaseLimit int
}

// Session drives one conversation over one channel: classify the opener,
// branch to support or sales, and run that branch until escalation, channel
// closure, or an internal error. A session never switches branches.
type Session struct {
	cfg        SessionConfig
	logger     *logging.Logger
	classifier *Classifier
	collector  *DetailCollector
	evaluator  *EscalationEvaluator

	conv    Conversation
	profile CustomerProfile
}

// NewSession builds a session for one channel connection.
func NewSession(cfg SessionConfig) *Session {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	logger = logger.With("business_id", cfg.BusinessID)
	if cfg.KnowledgeBaseLimit <= 0 {
		cfg.KnowledgeBaseLimit = 1000
	}
	return &Session{
		cfg:        cfg,
		logger:     logger,
		classifier: NewClassifier(cfg.Client, cfg.RetryPolicy, logger),
		collector:  NewDetailCollector(cfg.Client, logger),
		evaluator:  NewEscalationEvaluator(cfg.Client, cfg.RetryPolicy, logger),
	}
}

// Run executes the session until it terminates. Any internal error ends the
// whole conversation with a generic apology; errors never cross the session
// boundary except as the returned value for logging by the caller.
func (s *Session) Run(ctx context.Context, ch Channel) error {
	err := s.run(ctx, ch)
	if err != nil {
		s.logger.Error("session ended with error", "error", err)
		// Best effort: the channel may already be gone.
		_ = ch.Send(ctx, sessionApologyMessage)
	}
	return err
}

func (s *Session) run(ctx context.Context, ch Channel) error {
	data, err := s.businessData(ctx)
	if err != nil {
		return err
	}

	greeting := defaultGreeting
	if strings.TrimSpace(data.ContextPrompt) != "" {
		greeting = firstLine(data.ContextPrompt)
	}
	if err := ch.Send(ctx, greeting); err != nil {
		return fmt.Errorf("agent: sending greeting: %w", err)
	}

	opener, err := ch.Receive(ctx)
	if err != nil {
		return fmt.Errorf("agent: waiting for opener: %w", err)
	}
	s.conv.AddUser(opener)

	result := s.classifier.Identify(ctx, opener, s.cfg.BusinessID)
	s.profile = result.Profile
	s.logger.Info("customer classified", "customer_type", result.Type)

	if result.Type == CustomerTypeExisting {
		s.cfg.Metrics.ObserveSession("support")
		return s.runSupport(ctx, ch, data)
	}
	s.cfg.Metrics.ObserveSession("sales")
	return s.runSales(ctx, ch, data)
}

// runSupport loops: receive, evaluate escalation, then either cut a ticket
// and terminate or answer from the knowledge base and continue.
func (s *Session) runSupport(ctx context.Context, ch Channel, data BusinessData) error {
	contextPrompt := data.ContextPrompt
	if strings.TrimSpace(contextPrompt) == "" {
		contextPrompt = defaultSupportContext
	}
	knowledge := truncate(data.KnowledgeBase, s.cfg.KnowledgeBaseLimit)

	for {
		message, err := ch.Receive(ctx)
		if err != nil {
			return nil // channel closed; nothing persisted mid-turn
		}
		s.conv.AddUser(message)
		s.cfg.Metrics.ObserveTurn("support")

		decision := s.evaluator.Evaluate(ctx, contextPrompt, message)
		if decision.Escalate {
			s.profile, err = s.collector.Collect(ctx, s.profile, &s.conv, ch)
			if err != nil {
				return err
			}

			ticket := NewTicket(s.cfg.BusinessID, s.profile, s.conv, decision.Reason)
			if err := s.cfg.Store.InsertTicket(ctx, ticket); err != nil {
				return fmt.Errorf("agent: persisting ticket: %w", err)
			}
			s.cfg.Metrics.ObserveTicket()
			s.logger.Info("ticket created", "reason", ticket.Reason)

			if err := ch.Send(ctx, escalationClosureMessage); err != nil {
				return fmt.Errorf("agent: sending closure: %w", err)
			}
			return nil
		}

		reply, err := llm.Retry(ctx, s.cfg.RetryPolicy, func(ctx context.Context) (string, error) {
			return s.cfg.Client.Generate(ctx, supportPrompt(contextPrompt, knowledge, message))
		})
		if err != nil {
			s.logger.Error("support response exhausted retries", "error", err)
			if err := ch.Send(ctx, turnApologyMessage); err != nil {
				return fmt.Errorf("agent: sending turn apology: %w", err)
			}
			continue
		}

		if LooksFenced(reply) {
			reply = CleanJSON(reply, s.logger)
		}
		if err := ch.Send(ctx, reply); err != nil {
			return fmt.Errorf("agent: sending support reply: %w", err)
		}
		s.conv.AddAgent(reply)
	}
}

type salesPayload struct {
	Response string `json:"response"`
	Reason   string `json:"reason"`
}

// runSales collects the full profile upfront, then answers every message
// with a structured sales response and persists a fresh lead snapshot per
// turn. The loop only ends with the channel.
func (s *Session) runSales(ctx context.Context, ch Channel, data BusinessData) error {
	contextPrompt := data.ContextPrompt
	if strings.TrimSpace(contextPrompt) == "" {
		contextPrompt = defaultSalesContext
	}
	knowledge := truncate(data.KnowledgeBase, s.cfg.KnowledgeBaseLimit)

	var err error
	s.profile, err = s.collector.Collect(ctx, s.profile, &s.conv, ch)
	if err != nil {
		return err
	}

	for {
		message, err := ch.Receive(ctx)
		if err != nil {
			return nil
		}
		s.conv.AddUser(message)
		s.cfg.Metrics.ObserveTurn("sales")

		fallback := salesPayload{Response: salesFallbackResponse, Reason: salesFallbackReason}
		payload := llm.RetryWithFallback(ctx, s.cfg.RetryPolicy, s.logger, "sales_response", fallback, func(ctx context.Context) (salesPayload, error) {
			raw, err := s.cfg.Client.Generate(ctx, salesPrompt(contextPrompt, knowledge, message))
			if err != nil {
				return salesPayload{}, err
			}
			var p salesPayload
			DecodeJSON(raw, s.logger, &p)
			if p.Response == "" {
				p.Response = salesFallbackResponse
			}
			return p, nil
		})

		if err := ch.Send(ctx, payload.Response); err != nil {
			return fmt.Errorf("agent: sending sales reply: %w", err)
		}
		s.conv.AddAgent(payload.Response)

		lead := NewLead(s.cfg.BusinessID, s.profile, s.conv, payload.Reason)
		if err := s.cfg.Store.InsertLead(ctx, lead); err != nil {
			return fmt.Errorf("agent: persisting lead: %w", err)
		}
		s.cfg.Metrics.ObserveLead()
		s.logger.Info("lead saved", "reason", lead.Reason, "turns", len(lead.Conversation))
	}
}

func (s *Session) businessData(ctx context.Context) (BusinessData, error) {
	data, err := s.cfg.Store.FindBusinessData(ctx, s.cfg.BusinessID)
	if err != nil {
		return BusinessData{}, fmt.Errorf("agent: loading business data: %w", err)
	}
	if data == nil {
		return BusinessData{}, nil
	}
	return *data, nil
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return strings.TrimSpace(s[:i])
	}
	return strings.TrimSpace(s)
}

func truncate(s string, limit int) string {
	if limit > 0 && len(s) > limit {
		return s[:limit]
	}
	return s
}
