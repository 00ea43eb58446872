package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/turiniq/agent-platform/internal/agent"
	"github.com/turiniq/agent-platform/pkg/logging"
)

const (
	businessCollection = "business_data"
	ticketsCollection  = "tickets"
	leadsCollection    = "leads"
)

// Mongo is the document store backing business data, tickets, and leads.
type Mongo struct {
	client *mongo.Client
	db     *mongo.Database
	logger *logging.Logger
}

// NewMongo connects to MongoDB and verifies the connection.
func NewMongo(ctx context.Context, uri, database string, logger *logging.Logger) (*Mongo, error) {
	if uri == "" {
		return nil, errors.New("store: mongodb uri is required")
	}
	if logger == nil {
		logger = logging.Default()
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("store: connecting to mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("store: pinging mongodb: %w", err)
	}

	return &Mongo{
		client: client,
		db:     client.Database(database),
		logger: logger,
	}, nil
}

// Close disconnects the underlying client.
func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

// FindBusinessData returns the onboarding output for a business, or nil when
// the business has not been configured.
func (m *Mongo) FindBusinessData(ctx context.Context, businessID string) (*agent.BusinessData, error) {
	var data agent.BusinessData
	err := m.db.Collection(businessCollection).
		FindOne(ctx, bson.M{"business_id": businessID}).
		Decode(&data)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("store: finding business data: %w", err)
	}
	return &data, nil
}

// UpsertBusinessData writes the knowledge base and context prompt for a
// business, keyed by business_id. Last write wins.
func (m *Mongo) UpsertBusinessData(ctx context.Context, businessID string, data agent.BusinessData) error {
	_, err := m.db.Collection(businessCollection).UpdateOne(ctx,
		bson.M{"business_id": businessID},
		bson.M{"$set": bson.M{
			"knowledge_base": data.KnowledgeBase,
			"context_prompt": data.ContextPrompt,
		}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("store: upserting business data: %w", err)
	}
	return nil
}

// InsertTicket appends a ticket document.
func (m *Mongo) InsertTicket(ctx context.Context, ticket agent.Ticket) error {
	if _, err := m.db.Collection(ticketsCollection).InsertOne(ctx, ticket); err != nil {
		return fmt.Errorf("store: inserting ticket: %w", err)
	}
	return nil
}

// InsertLead appends a lead document.
func (m *Mongo) InsertLead(ctx context.Context, lead agent.Lead) error {
	if _, err := m.db.Collection(leadsCollection).InsertOne(ctx, lead); err != nil {
		return fmt.Errorf("store: inserting lead: %w", err)
	}
	return nil
}

// ListTickets returns every ticket for a business, storage identifier
// stripped.
func (m *Mongo) ListTickets(ctx context.Context, businessID string) ([]agent.Ticket, error) {
	cursor, err := m.db.Collection(ticketsCollection).Find(ctx,
		bson.M{"business_id": businessID},
		options.Find().SetProjection(bson.M{"_id": 0}),
	)
	if err != nil {
		return nil, fmt.Errorf("store: listing tickets: %w", err)
	}
	var tickets []agent.Ticket
	if err := cursor.All(ctx, &tickets); err != nil {
		return nil, fmt.Errorf("store: decoding tickets: %w", err)
	}
	return tickets, nil
}

// ListLeads returns every lead for a business, storage identifier stripped.
func (m *Mongo) ListLeads(ctx context.Context, businessID string) ([]agent.Lead, error) {
	cursor, err := m.db.Collection(leadsCollection).Find(ctx,
		bson.M{"business_id": businessID},
		options.Find().SetProjection(bson.M{"_id": 0}),
	)
	if err != nil {
		return nil, fmt.Errorf("store: listing leads: %w", err)
	}
	var leads []agent.Lead
	if err := cursor.All(ctx, &leads); err != nil {
		return nil, fmt.Errorf("store: decoding leads: %w", err)
	}
	return leads, nil
}

var _ Store = (*Mongo)(nil)
