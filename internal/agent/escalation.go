package agent

import (
	"context"

	"github.com/turiniq/agent-platform/internal/llm"
	"github.com/turiniq/agent-platform/pkg/logging"
)

// EscalationEvaluator decides, per support turn, whether the message needs
// human handover. The refund rule lives in the prompt itself: the model is
// instructed to escalate refund language with the fixed reason
// "Refund request escalation".
type EscalationEvaluator struct {
	client llm.Client
	policy llm.RetryPolicy
	logger *logging.Logger
}

// NewEscalationEvaluator creates an evaluator using the shared retry policy.
func NewEscalationEvaluator(client llm.Client, policy llm.RetryPolicy, logger *logging.Logger) *EscalationEvaluator {
	if logger == nil {
		logger = logging.Default()
	}
	return &EscalationEvaluator{client: client, policy: policy, logger: logger}
}

// Evaluate checks one message against the business context. On retry
// exhaustion it fails open: the conversation continues un-escalated rather
// than creating tickets for every provider hiccup.
func (e *EscalationEvaluator) Evaluate(ctx context.Context, contextPrompt, message string) EscalationDecision {
	prompt := escalationPrompt(contextPrompt, message)

	return llm.RetryWithFallback(ctx, e.policy, e.logger, "escalation_check", EscalationDecision{}, func(ctx context.Context) (EscalationDecision, error) {
		raw, err := e.client.Generate(ctx, prompt)
		if err != nil {
			return EscalationDecision{}, err
		}
		var decision EscalationDecision
		DecodeJSON(raw, e.logger, &decision)
		return decision, nil
	})
}
