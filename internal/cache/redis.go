// Package cache provides a redis-backed read cache for event listings and
// details. The cache is optional: with no configured address every lookup is
// a miss and writes are no-ops.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/wb-go/wbf/logger"

	"github.com/JAL-Virtual/jal-bookings-events-sub000/internal/domain"
)

const (
	listKey       = "events:list"
	detailsPrefix = "events:details:"
)

type EventCache struct {
	client *redis.Client
	ttl    time.Duration
	logger logger.Logger
}

// New connects to redis; an empty addr returns a disabled cache.
func New(ctx context.Context, addr, password string, db int, ttl time.Duration, log logger.Logger) (*EventCache, error) {
	if addr == "" {
		log.Warn("redis addr is empty, event cache disabled")
		return &EventCache{client: nil, ttl: ttl, logger: log}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &EventCache{client: client, ttl: ttl, logger: log}, nil
}

func (c *EventCache) GetList(ctx context.Context) ([]*domain.Event, bool) {
	var events []*domain.Event
	if !c.get(ctx, listKey, &events) {
		return nil, false
	}
	return events, true
}

func (c *EventCache) SetList(ctx context.Context, events []*domain.Event) {
	c.set(ctx, listKey, events)
}

func (c *EventCache) GetDetails(ctx context.Context, eventID string) (*domain.EventDetails, bool) {
	var details domain.EventDetails
	if !c.get(ctx, detailsPrefix+eventID, &details) {
		return nil, false
	}
	return &details, true
}

func (c *EventCache) SetDetails(ctx context.Context, details *domain.EventDetails) {
	c.set(ctx, detailsPrefix+details.Event.ID, details)
}

// Invalidate drops the listing key and the details keys for the given events.
func (c *EventCache) Invalidate(ctx context.Context, eventIDs ...string) {
	if c.client == nil {
		return
	}

	keys := make([]string, 0, len(eventIDs)+1)
	keys = append(keys, listKey)
	for _, id := range eventIDs {
		keys = append(keys, detailsPrefix+id)
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.logger.Error("cache invalidate failed",
			logger.String("error", err.Error()),
		)
	}
}

func (c *EventCache) Close() error {
	if c.client == nil {
		return nil
	}
	return c.client.Close()
}

func (c *EventCache) get(ctx context.Context, key string, dst any) bool {
	if c.client == nil {
		return false
	}

	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Error("cache get failed",
				logger.String("key", key),
				logger.String("error", err.Error()),
			)
		}
		return false
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		c.logger.Error("cache unmarshal failed",
			logger.String("key", key),
			logger.String("error", err.Error()),
		)
		return false
	}

	return true
}

func (c *EventCache) set(ctx context.Context, key string, val any) {
	if c.client == nil {
		return
	}

	raw, err := json.Marshal(val)
	if err != nil {
		c.logger.Error("cache marshal failed",
			logger.String("key", key),
			logger.String("error", err.Error()),
		)
		return
	}

	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.logger.Error("cache set failed",
			logger.String("key", key),
			logger.String("error", err.Error()),
		)
	}
}
