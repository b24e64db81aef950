package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	setCacheValue = Set
	getCacheValue = Get
)

// StatsCache is a small JSON read-through cache for aggregate views that are
// expensive to recompute on every admin page load.
type StatsCache struct {
	ttl time.Duration
}

// NewStatsCache creates a stats cache with the given entry lifetime
func NewStatsCache(ttl time.Duration) *StatsCache {
	return &StatsCache{ttl: ttl}
}

// Get loads a cached entry into dest. The second return is false on a miss.
func (c *StatsCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	raw, err := getCacheValue(ctx, "stats:"+key)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}

	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		// A corrupt entry behaves like a miss; the caller recomputes.
		return false, nil
	}
	return true, nil
}

// Put stores an entry under the cache TTL
func (c *StatsCache) Put(ctx context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return setCacheValue(ctx, "stats:"+key, string(raw), c.ttl)
}
