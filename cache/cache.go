package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// ResponseCache memoizes analysis responses keyed by a hash of the
// request body. Identical input produces identical analysis, so a cache
// hit skips both the model call and the aggregation work.
type ResponseCache struct {
	client *redis.Client
	ttl    time.Duration
}

// New returns a disabled cache when addr is empty. All methods are safe
// to call on the disabled (nil-client) cache.
func New(addr, password string, dbNum int, ttl time.Duration) *ResponseCache {
	if addr == "" {
		return &ResponseCache{}
	}
	return &ResponseCache{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
			DB:       dbNum,
		}),
		ttl: ttl,
	}
}

// Enabled reports whether a backing Redis client exists.
func (c *ResponseCache) Enabled() bool {
	return c != nil && c.client != nil
}

// Key derives a stable cache key from the analysis type and raw request
// body.
func Key(analysisType string, body []byte) string {
	sum := sha256.Sum256(body)
	return "analysis:" + analysisType + ":" + hex.EncodeToString(sum[:])
}

// Get returns the cached response body, or (nil, false) on a miss or
// any Redis error. Cache failures must never fail the request.
func (c *ResponseCache) Get(ctx context.Context, key string) (json.RawMessage, bool) {
	if !c.Enabled() {
		return nil, false
	}
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return data, true
}

// Set stores the response body under the key with the configured TTL.
func (c *ResponseCache) Set(ctx context.Context, key string, body json.RawMessage) error {
	if !c.Enabled() {
		return nil
	}
	return c.client.Set(ctx, key, []byte(body), c.ttl).Err()
}

// Ping checks connectivity for health reporting. A disabled cache is
// healthy by definition.
func (c *ResponseCache) Ping(ctx context.Context) error {
	if !c.Enabled() {
		return nil
	}
	if err := c.client.Ping(ctx).Err(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
