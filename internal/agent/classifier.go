package agent

import (
	"context"

	"github.com/turiniq/agent-platform/internal/llm"
	"github.com/turiniq/agent-platform/pkg/logging"
)

// Classifier labels the conversation opener as an existing or new customer
// and captures any identity fields volunteered in it.
type Classifier struct {
	client llm.Client
	policy llm.RetryPolicy
	logger *logging.Logger
}

// NewClassifier creates a classifier using the shared gateway retry policy.
func NewClassifier(client llm.Client, policy llm.RetryPolicy, logger *logging.Logger) *Classifier {
	if logger == nil {
		logger = logging.Default()
	}
	return &Classifier{client: client, policy: policy, logger: logger}
}

type classifierPayload struct {
	CustomerType string `json:"customer_type"`
	CustomerInfo struct {
		CustomerID string `json:"customer_id"`
		Name       string `json:"name"`
		Email      string `json:"email"`
		Phone      string `json:"phone"`
	} `json:"customer_info"`
}

// Identify classifies the opening message. An uncertain or failed
// classification always lands on the new-customer (sales) path: mislabeling
// an existing customer as new loses a support shortcut, while mislabeling a
// prospect as existing strands them in the wrong flow.
func (c *Classifier) Identify(ctx context.Context, message, businessID string) ClassificationResult {
	prompt := classifierPrompt(businessID, message)

	fallback := ClassificationResult{Type: CustomerTypeNew}
	return llm.RetryWithFallback(ctx, c.policy, c.logger, "identify_customer", fallback, func(ctx context.Context) (ClassificationResult, error) {
		raw, err := c.client.Generate(ctx, prompt)
		if err != nil {
			return ClassificationResult{}, err
		}

		var payload classifierPayload
		DecodeJSON(raw, c.logger, &payload)

		result := ClassificationResult{Type: CustomerTypeNew}
		if payload.CustomerType == string(CustomerTypeExisting) {
			result.Type = CustomerTypeExisting
		}
		result.Profile = CustomerProfile{
			CustomerID: payload.CustomerInfo.CustomerID,
			Name:       payload.CustomerInfo.Name,
			Email:      payload.CustomerInfo.Email,
			Phone:      payload.CustomerInfo.Phone,
		}
		return result, nil
	})
}
