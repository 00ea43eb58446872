package store

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/turiniq/agent-platform/internal/agent"
	"github.com/turiniq/agent-platform/pkg/logging"
)

// Cached layers a Redis read-through cache over business data reads. Chat
// sessions hit FindBusinessData once per connection, so a short TTL keeps
// the hot path off the database without staleness concerns; onboarding
// upserts invalidate the key.
type Cached struct {
	next   Store
	client *redis.Client
	ttl    time.Duration
	logger *logging.Logger
}

// NewCached wraps next with a Redis cache.
func NewCached(next Store, client *redis.Client, ttl time.Duration, logger *logging.Logger) *Cached {
	if logger == nil {
		logger = logging.Default()
	}
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &Cached{next: next, client: client, ttl: ttl, logger: logger}
}

func cacheKey(businessID string) string {
	return "business_data:" + businessID
}

func (c *Cached) FindBusinessData(ctx context.Context, businessID string) (*agent.BusinessData, error) {
	key := cacheKey(businessID)

	raw, err := c.client.Get(ctx, key).Result()
	if err == nil {
		var data agent.BusinessData
		if err := json.Unmarshal([]byte(raw), &data); err == nil {
			return &data, nil
		}
		// Corrupt entry: drop it and fall through to the source.
		_ = c.client.Del(ctx, key).Err()
	} else if !errors.Is(err, redis.Nil) {
		c.logger.Warn("business data cache read failed", "error", err, "business_id", businessID)
	}

	data, err := c.next.FindBusinessData(ctx, businessID)
	if err != nil || data == nil {
		return data, err
	}

	if encoded, err := json.Marshal(data); err == nil {
		if err := c.client.Set(ctx, key, encoded, c.ttl).Err(); err != nil {
			c.logger.Warn("business data cache write failed", "error", err, "business_id", businessID)
		}
	}
	return data, nil
}

func (c *Cached) UpsertBusinessData(ctx context.Context, businessID string, data agent.BusinessData) error {
	if err := c.next.UpsertBusinessData(ctx, businessID, data); err != nil {
		return err
	}
	if err := c.client.Del(ctx, cacheKey(businessID)).Err(); err != nil {
		c.logger.Warn("business data cache invalidation failed", "error", err, "business_id", businessID)
	}
	return nil
}

func (c *Cached) InsertTicket(ctx context.Context, ticket agent.Ticket) error {
	return c.next.InsertTicket(ctx, ticket)
}

func (c *Cached) InsertLead(ctx context.Context, lead agent.Lead) error {
	return c.next.InsertLead(ctx, lead)
}

func (c *Cached) ListTickets(ctx context.Context, businessID string) ([]agent.Ticket, error) {
	return c.next.ListTickets(ctx, businessID)
}

func (c *Cached) ListLeads(ctx context.Context, businessID string) ([]agent.Lead, error) {
	return c.next.ListLeads(ctx, businessID)
}

var _ Store = (*Cached)(nil)
