package agent

import (
	"context"
	"strings"
	"time"
)

// CustomerType labels the caller after the opening message.
type CustomerType string

const (
	CustomerTypeExisting CustomerType = "existing"
	CustomerTypeNew      CustomerType = "new"
)

// Turn is one utterance in a conversation.
type Turn struct {
	Role      string    `json:"role" bson:"role"` // "user" or "agent"
	Text      string    `json:"text" bson:"text"`
	Timestamp time.Time `json:"timestamp" bson:"timestamp"`
}

const (
	RoleUser  = "user"
	RoleAgent = "agent"
)

// Conversation is the append-only turn history owned by one session.
type Conversation []Turn

// AddUser appends a user utterance.
func (c *Conversation) AddUser(text string) {
	*c = append(*c, Turn{Role: RoleUser, Text: text, Timestamp: time.Now().UTC()})
}

// AddAgent appends an agent utterance.
func (c *Conversation) AddAgent(text string) {
	*c = append(*c, Turn{Role: RoleAgent, Text: text, Timestamp: time.Now().UTC()})
}

// Snapshot returns an independent copy for persistence. Tickets and leads
// must hold the conversation as it was at creation time, not a view that
// later turns mutate.
func (c Conversation) Snapshot() Conversation {
	out := make(Conversation, len(c))
	copy(out, c)
	return out
}

// CustomerProfile holds the identity fields collected during a session.
// Fields are only ever set, never rolled back.
type CustomerProfile struct {
	CustomerID string `json:"customer_id,omitempty" bson:"customer_id,omitempty"`
	Name       string `json:"name,omitempty" bson:"name,omitempty"`
	Email      string `json:"email,omitempty" bson:"email,omitempty"`
	Phone      string `json:"phone,omitempty" bson:"phone,omitempty"`
}

// ClassificationResult is produced once per session from the opening message.
type ClassificationResult struct {
	Type    CustomerType
	Profile CustomerProfile
}

// EscalationDecision is recomputed for every support turn.
type EscalationDecision struct {
	Escalate bool   `json:"escalate"`
	Reason   string `json:"reason"`
}

// Ticket is the terminal artifact of an escalated support session.
type Ticket struct {
	BusinessID    string       `json:"business_id" bson:"business_id"`
	CustomerID    string       `json:"customer_id,omitempty" bson:"customer_id,omitempty"`
	CustomerName  string       `json:"customer_name,omitempty" bson:"customer_name,omitempty"`
	CustomerEmail string       `json:"customer_email,omitempty" bson:"customer_email,omitempty"`
	CustomerPhone string       `json:"customer_phone,omitempty" bson:"customer_phone,omitempty"`
	Conversation  Conversation `json:"conversation" bson:"conversation"`
	Reason        string       `json:"reason" bson:"reason"`
	Status        string       `json:"status" bson:"status"`
	CreatedAt     time.Time    `json:"created_at" bson:"created_at"`
}

// Lead is the contact record captured on every sales turn. Identity fields
// are mandatory; the detail collector guarantees they are never empty.
type Lead struct {
	BusinessID    string       `json:"business_id" bson:"business_id"`
	CustomerName  string       `json:"customer_name" bson:"customer_name"`
	CustomerEmail string       `json:"customer_email" bson:"customer_email"`
	CustomerPhone string       `json:"customer_phone" bson:"customer_phone"`
	Conversation  Conversation `json:"conversation" bson:"conversation"`
	Reason        string       `json:"reason" bson:"reason"`
	Status        string       `json:"status" bson:"status"`
	CreatedAt     time.Time    `json:"created_at" bson:"created_at"`
}

// NewTicket builds an immutable ticket from the session state.
func NewTicket(businessID string, profile CustomerProfile, conv Conversation, reason string) Ticket {
	if strings.TrimSpace(reason) == "" {
		reason = "Escalation requested"
	}
	return Ticket{
		BusinessID:    businessID,
		CustomerID:    profile.CustomerID,
		CustomerName:  profile.Name,
		CustomerEmail: profile.Email,
		CustomerPhone: profile.Phone,
		Conversation:  conv.Snapshot(),
		Reason:        reason,
		Status:        "open",
		CreatedAt:     time.Now().UTC(),
	}
}

// NewLead builds a lead snapshot from the session state.
func NewLead(businessID string, profile CustomerProfile, conv Conversation, reason string) Lead {
	if strings.TrimSpace(reason) == "" {
		reason = "General inquiry"
	}
	return Lead{
		BusinessID:    businessID,
		CustomerName:  profile.Name,
		CustomerEmail: profile.Email,
		CustomerPhone: profile.Phone,
		Conversation:  conv.Snapshot(),
		Reason:        reason,
		Status:        "open",
		CreatedAt:     time.Now().UTC(),
	}
}

// BusinessData is the onboarding output a session reads, never mutates.
type BusinessData struct {
	ContextPrompt string `json:"context_prompt" bson:"context_prompt"`
	KnowledgeBase string `json:"knowledge_base" bson:"knowledge_base"`
}

// Channel is the bidirectional text connection between the end user and the
// session. Closing the underlying connection surfaces as a Receive error.
type Channel interface {
	Send(ctx context.Context, text string) error
	Receive(ctx context.Context) (string, error)
}

// Store is the persistence collaborator a session depends on.
type Store interface {
	FindBusinessData(ctx context.Context, businessID string) (*BusinessData, error)
	InsertTicket(ctx context.Context, ticket Ticket) error
	InsertLead(ctx context.Context, lead Lead) error
}
