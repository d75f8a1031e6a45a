package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"padelhub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// AvailabilityCache is a read-through day cache over Redis. Every failure is
// logged and treated as a miss; Redis being down must never take the
// availability endpoint with it.
type AvailabilityCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewAvailabilityCache(client *redis.Client, ttl time.Duration, logger *slog.Logger) *AvailabilityCache {
	return &AvailabilityCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func availKey(courtID uuid.UUID, date string) string {
	return "avail:" + courtID.String() + ":" + date
}

func (c *AvailabilityCache) Get(ctx context.Context, courtID uuid.UUID, date string) ([]queries.SlotView, bool) {
	raw, err := c.client.Get(ctx, availKey(courtID, date)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("availability cache get failed", "error", err, "court_id", courtID)
		}
		return nil, false
	}

	var slots []queries.SlotView
	if err := json.Unmarshal(raw, &slots); err != nil {
		c.logger.Warn("availability cache entry corrupt, dropping", "error", err, "court_id", courtID)
		c.client.Del(ctx, availKey(courtID, date))
		return nil, false
	}
	return slots, true
}

func (c *AvailabilityCache) Set(ctx context.Context, courtID uuid.UUID, date string, slots []queries.SlotView) {
	raw, err := json.Marshal(slots)
	if err != nil {
		c.logger.Warn("availability cache marshal failed", "error", err, "court_id", courtID)
		return
	}
	if err := c.client.Set(ctx, availKey(courtID, date), raw, c.ttl).Err(); err != nil {
		c.logger.Warn("availability cache set failed", "error", err, "court_id", courtID)
	}
}

// Invalidate drops cached days for a court. With explicit dates only those
// keys go; with none the whole court prefix is scanned away (rule changes
// touch every future day).
func (c *AvailabilityCache) Invalidate(ctx context.Context, courtID uuid.UUID, dates ...string) {
	if len(dates) > 0 {
		keys := make([]string, len(dates))
		for i, d := range dates {
			keys[i] = availKey(courtID, d)
		}
		if err := c.client.Del(ctx, keys...).Err(); err != nil {
			c.logger.Warn("availability cache invalidation failed", "error", err, "court_id", courtID)
		}
		return
	}

	pattern := "avail:" + courtID.String() + ":*"
	iter := c.client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			c.logger.Warn("availability cache invalidation failed", "error", err, "key", iter.Val())
		}
	}
	if err := iter.Err(); err != nil {
		c.logger.Warn("availability cache scan failed", "error", err, "court_id", courtID)
	}
}

// NoopAvailabilityCache satisfies the cache and invalidator ports when
// caching is disabled by config.
type NoopAvailabilityCache struct{}

func (NoopAvailabilityCache) Get(context.Context, uuid.UUID, string) ([]queries.SlotView, bool) {
	return nil, false
}

func (NoopAvailabilityCache) Set(context.Context, uuid.UUID, string, []queries.SlotView) {}

func (NoopAvailabilityCache) Invalidate(context.Context, uuid.UUID, ...string) {}
