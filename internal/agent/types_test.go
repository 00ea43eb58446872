package agent

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConversationSnapshotIsIndependent(t *testing.T) {
	var conv Conversation
	conv.AddUser("first")
	conv.AddAgent("second")

	ticket := NewTicket("b1", CustomerProfile{}, conv, "reason")
	conv.AddUser("after the ticket")

	assert.Len(t, ticket.Conversation, 2)
	assert.Len(t, conv, 3)
}

func TestNewTicketDefaultsReason(t *testing.T) {
	ticket := NewTicket("b1", CustomerProfile{}, nil, "  ")
	assert.Equal(t, "Escalation requested", ticket.Reason)
	assert.Equal(t, "open", ticket.Status)
	assert.False(t, ticket.CreatedAt.IsZero())
}

func TestNewLeadDefaultsReason(t *testing.T) {
	lead := NewLead("b1", CustomerProfile{Name: "Sam"}, nil, "")
	assert.Equal(t, "General inquiry", lead.Reason)
	assert.Equal(t, "Sam", lead.CustomerName)
}

func TestTicketRoundTripPreservesConversationAndReason(t *testing.T) {
	var conv Conversation
	conv.AddUser("I want a refund for order 123")
	conv.AddAgent("Please provide your name to proceed.")
	conv.AddUser("Sam")

	ticket := NewTicket("tech_example.com", CustomerProfile{Name: "Sam"}, conv, "Refund request escalation")

	raw, err := json.Marshal(ticket)
	require.NoError(t, err)

	var restored Ticket
	require.NoError(t, json.Unmarshal(raw, &restored))

	assert.Equal(t, ticket.Reason, restored.Reason)
	require.Len(t, restored.Conversation, len(ticket.Conversation))
	for i, turn := range ticket.Conversation {
		assert.Equal(t, turn.Role, restored.Conversation[i].Role)
		assert.Equal(t, turn.Text, restored.Conversation[i].Text)
		assert.True(t, turn.Timestamp.Equal(restored.Conversation[i].Timestamp))
	}
}
