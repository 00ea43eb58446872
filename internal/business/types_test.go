package business

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() Input {
	return Input{
		BusinessType:         TypeTech,
		Domain:               "https://example.com",
		AgentGoal:            GoalCustomerSupport,
		Tonality:             TonalityFriendly,
		CommunicationStyle:   []CommunicationStyle{StyleConcise, StyleEmpathy},
		ContextClarity:       []ContextClarity{ClarifyBrief},
		HandoverEscalation:   []HandoverEscalation{EscalateRefunds},
		DataToCapture:        []DataToCapture{CaptureName, CaptureEmail},
		CustomOpeningMessage: "Hi! How can I help?",
	}
}

func TestValidateAccepts(t *testing.T) {
	in := validInput()
	require.NoError(t, in.Validate())
}

func TestValidateAcceptsNoGuaranteesStyle(t *testing.T) {
	// The form sends this value with a typographic apostrophe (U+2019).
	in := validInput()
	in.CommunicationStyle = []CommunicationStyle{"Don’t guarantee outcomes"}
	require.NoError(t, in.Validate())

	// The ASCII-apostrophe spelling is not part of the vocabulary.
	in.CommunicationStyle = []CommunicationStyle{"Don't guarantee outcomes"}
	assert.Error(t, in.Validate())
}

func TestValidateRejectsUnknownValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Input)
	}{
		{"business type", func(in *Input) { in.BusinessType = "crypto" }},
		{"agent goal", func(in *Input) { in.AgentGoal = "World domination" }},
		{"tonality", func(in *Input) { in.Tonality = "sarcastic" }},
		{"communication style", func(in *Input) { in.CommunicationStyle = append(in.CommunicationStyle, "Use emoji everywhere") }},
		{"context clarity", func(in *Input) { in.ContextClarity = []ContextClarity{"Clarify everything"} }},
		{"handover escalation", func(in *Input) { in.HandoverEscalation = []HandoverEscalation{"Never escalate"} }},
		{"data to capture", func(in *Input) { in.DataToCapture = []DataToCapture{"social_security_number"} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)
			assert.Error(t, in.Validate())
		})
	}
}

func TestValidateRejectsMissingRequiredFields(t *testing.T) {
	in := validInput()
	in.Domain = "  "
	assert.Error(t, in.Validate())

	in = validInput()
	in.CustomOpeningMessage = ""
	assert.Error(t, in.Validate())
}

func TestBusinessID(t *testing.T) {
	in := validInput()
	assert.Equal(t, "tech_https://example.com", in.BusinessID())
}
