package reasoning

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Gobusters/ectologger"

	"github.com/john-carroll-sw/supply-chain-reasoning-engine/pkg/fingerprint"
	"github.com/john-carroll-sw/supply-chain-reasoning-engine/pkg/models"
	"github.com/john-carroll-sw/supply-chain-reasoning-engine/pkg/redis"
)

const cacheKeyPrefix = "reasoning:advice:"

// Cache stores advice keyed by a fingerprint of the exact (state,
// disruptions, priority) it was produced for. Entirely best-effort: every
// cache failure degrades to a normal upstream call. A nil client disables
// caching.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
	logger ectologger.Logger
}

// NewCache creates an advice cache
func NewCache(client *redis.Client, ttl time.Duration, logger ectologger.Logger) *Cache {
	return &Cache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

// Key computes the cache key for a reasoning request
func (c *Cache) Key(state *models.SupplyChainState, disruptions []models.Disruption, priority string) string {
	input, _ := json.Marshal(map[string]any{
		"state":       state,
		"disruptions": disruptions,
		"priority":    priority,
	})

	fp, err := fingerprint.GenerateFromJSON(input)
	if err != nil {
		return ""
	}
	return cacheKeyPrefix + fp
}

// Get returns the cached advice for the key, or nil on miss or error
func (c *Cache) Get(ctx context.Context, key string) *Advice {
	if c == nil || c.client == nil || key == "" {
		return nil
	}

	raw, err := c.client.Get(ctx, key)
	if err != nil {
		if !redis.IsNil(err) {
			c.logger.WithContext(ctx).WithError(err).Warn("Advice cache read failed")
		}
		return nil
	}

	var advice Advice
	if err := json.Unmarshal([]byte(raw), &advice); err != nil {
		c.logger.WithContext(ctx).WithError(err).Warn("Advice cache entry is unreadable")
		return nil
	}
	return &advice
}

// Set stores advice under the key
func (c *Cache) Set(ctx context.Context, key string, advice *Advice) {
	if c == nil || c.client == nil || key == "" {
		return
	}

	raw, err := json.Marshal(advice)
	if err != nil {
		return
	}

	if err := c.client.Set(ctx, key, string(raw), c.ttl); err != nil {
		c.logger.WithContext(ctx).WithError(err).Warn("Advice cache write failed")
	}
}
