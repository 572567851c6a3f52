package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const searchCacheTTL = 5 * time.Minute

// SearchCache stores serialized search results keyed by normalized criteria.
type SearchCache struct {
	client *redis.Client
}

// NewSearchCache creates a SearchCache wrapping the given Redis client.
func NewSearchCache(client *redis.Client) *SearchCache {
	return &SearchCache{client: client}
}

// GetJSON loads the value at key into out. The boolean reports a cache hit.
func (c *SearchCache) GetJSON(ctx context.Context, key string, out any) (bool, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("cache get: %w", err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, fmt.Errorf("cache decode: %w", err)
	}
	return true, nil
}

// SetJSON stores value at key. A non-positive ttl falls back to the default.
func (c *SearchCache) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = searchCacheTTL
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	return c.client.Set(ctx, key, raw, ttl).Err()
}
