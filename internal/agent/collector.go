package agent

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/turiniq/agent-platform/internal/llm"
	"github.com/turiniq/agent-platform/pkg/logging"
)

// unknownField is stored for any identity field the user never supplied.
// Leads require every field populated, so gaps are filled with this literal.
const unknownField = "Unknown"

// requiredFields is the fixed order in which missing details are requested.
var requiredFields = []string{"name", "email", "phone"}

// DetailCollector fills missing identity fields by asking the user over the
// channel and extracting each answer from free-form text.
type DetailCollector struct {
	client llm.Client
	logger *logging.Logger
}

// NewDetailCollector creates a collector.
func NewDetailCollector(client llm.Client, logger *logging.Logger) *DetailCollector {
	if logger == nil {
		logger = logging.Default()
	}
	return &DetailCollector{client: client, logger: logger}
}

// Collect asks for each missing required field in order, appending both the
// prompt and the reply to the conversation. Fields already present are never
// asked for again. Extraction is single-shot: if it fails or yields nothing,
// the field stays unset and is defaulted to "Unknown" after the loop.
// The only errors returned are channel failures; those end the session.
func (d *DetailCollector) Collect(ctx context.Context, profile CustomerProfile, conv *Conversation, ch Channel) (CustomerProfile, error) {
	for _, field := range requiredFields {
		if profileField(&profile, field) != "" {
			continue
		}

		ask := fmt.Sprintf("Please provide your %s to proceed.", field)
		if err := ch.Send(ctx, ask); err != nil {
			return profile, fmt.Errorf("agent: sending %s prompt: %w", field, err)
		}
		conv.AddAgent(ask)

		reply, err := ch.Receive(ctx)
		if err != nil {
			return profile, fmt.Errorf("agent: waiting for %s: %w", field, err)
		}
		conv.AddUser(reply)
		d.logger.Info("received detail reply", "field", field)

		if value := d.extractField(ctx, field, reply); value != "" {
			setProfileField(&profile, field, value)
		}
	}

	for _, field := range requiredFields {
		if profileField(&profile, field) == "" {
			setProfileField(&profile, field, unknownField)
		}
	}
	return profile, nil
}

func (d *DetailCollector) extractField(ctx context.Context, field, message string) string {
	raw, err := d.client.Generate(ctx, fieldExtractPrompt(field, message))
	if err != nil {
		d.logger.Error("field extraction failed", "field", field, "error", err)
		return ""
	}

	var values map[string]*string
	if err := json.Unmarshal([]byte(CleanJSON(raw, d.logger)), &values); err != nil {
		return ""
	}
	if v := values[field]; v != nil {
		return *v
	}
	return ""
}

func profileField(p *CustomerProfile, field string) string {
	switch field {
	case "name":
		return p.Name
	case "email":
		return p.Email
	case "phone":
		return p.Phone
	}
	return ""
}

func setProfileField(p *CustomerProfile, field, value string) {
	switch field {
	case "name":
		p.Name = value
	case "email":
		p.Email = value
	case "phone":
		p.Phone = value
	}
}
