package agent

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/turiniq/agent-platform/internal/llm"
	"github.com/turiniq/agent-platform/pkg/logging"
)

func TestEvaluateEscalates(t *testing.T) {
	client := staticClient(`{"escalate": true, "reason": "Refund request escalation"}`)
	e := NewEscalationEvaluator(client, testPolicy(), logging.New("error"))

	decision := e.Evaluate(context.Background(), "ctx", "I want a refund for order 123")

	assert.True(t, decision.Escalate)
	assert.Equal(t, "Refund request escalation", decision.Reason)
}

func TestEvaluatePromptCarriesRefundMandate(t *testing.T) {
	// The refund rule is model-side business logic: the contract is that
	// every evaluation prompt instructs the model to escalate refund
	// language with the fixed reason.
	var captured string
	client := llm.Func(func(_ context.Context, prompt string) (string, error) {
		captured = prompt
		return `{"escalate": false, "reason": ""}`, nil
	})
	e := NewEscalationEvaluator(client, testPolicy(), logging.New("error"))

	e.Evaluate(context.Background(), "business context", "any message")

	assert.True(t, strings.Contains(captured, `"Refund request escalation"`))
	assert.True(t, strings.Contains(captured, "refunds"))
	assert.True(t, strings.Contains(captured, "business context"))
}

func TestEvaluateFailsOpenOnExhaustion(t *testing.T) {
	calls := 0
	client := llm.Func(func(context.Context, string) (string, error) {
		calls++
		return "", llm.ErrTransient
	})
	e := NewEscalationEvaluator(client, testPolicy(), logging.New("error"))

	decision := e.Evaluate(context.Background(), "ctx", "please escalate me")

	assert.False(t, decision.Escalate)
	assert.Empty(t, decision.Reason)
	assert.Equal(t, 3, calls)
}

func TestEvaluateMalformedOutputFailsOpen(t *testing.T) {
	client := staticClient("Hmm, probably needs a human?")
	e := NewEscalationEvaluator(client, testPolicy(), logging.New("error"))

	decision := e.Evaluate(context.Background(), "ctx", "weird message")

	assert.False(t, decision.Escalate)
	assert.Empty(t, decision.Reason)
}
