package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"

	"github.com/nutrirx/DrugFood-Intelligence/internal/infrastructure/monitoring/logging"
)

// ErrCacheMiss is returned by Get when the key is absent.
var ErrCacheMiss = errors.New("redis: cache miss")

// Observer receives cache operation outcomes ("hit", "miss", "set",
// "error").
type Observer interface {
	ObserveCache(kind string)
}

// Cache is a JSON-serializing cache with key prefixing and TTL jitter.
// Jitter spreads expirations so a burst of lookups stored together does not
// expire together.
type Cache struct {
	client *goredis.Client
	prefix string
	ttl    time.Duration
	log    logging.Logger
	obs    Observer
	group  singleflight.Group
}

// NewCache wraps client with the given key prefix and default TTL.
// A zero ttl stores entries without expiration.  log and obs may be nil.
func NewCache(client *goredis.Client, prefix string, ttl time.Duration, log logging.Logger, obs Observer) *Cache {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &Cache{client: client, prefix: prefix, ttl: ttl, log: log.Named("cache"), obs: obs}
}

func (c *Cache) observe(kind string) {
	if c.obs != nil {
		c.obs.ObserveCache(kind)
	}
}

func (c *Cache) key(k string) string {
	if c.prefix == "" {
		return k
	}
	return c.prefix + ":" + k
}

// jitteredTTL returns the default TTL plus up to 10% random slack.
func (c *Cache) jitteredTTL() time.Duration {
	if c.ttl <= 0 {
		return 0
	}
	slack := time.Duration(rand.Int64N(int64(c.ttl) / 10))
	return c.ttl + slack
}

// Get retrieves the value at key and unmarshals it into dest.
// Returns ErrCacheMiss when the key does not exist.
func (c *Cache) Get(ctx context.Context, key string, dest interface{}) error {
	raw, err := c.client.Get(ctx, c.key(key)).Bytes()
	if errors.Is(err, goredis.Nil) {
		c.observe("miss")
		return ErrCacheMiss
	}
	if err != nil {
		c.observe("error")
		return fmt.Errorf("redis: get %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		c.observe("error")
		return fmt.Errorf("redis: decode %s: %w", key, err)
	}
	c.observe("hit")
	return nil
}

// Set stores value at key with the cache's jittered default TTL.
func (c *Cache) Set(ctx context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("redis: encode %s: %w", key, err)
	}
	if err := c.client.Set(ctx, c.key(key), raw, c.jitteredTTL()).Err(); err != nil {
		c.observe("error")
		return fmt.Errorf("redis: set %s: %w", key, err)
	}
	c.observe("set")
	return nil
}

// Delete removes key from the cache.  Deleting an absent key is not an error.
func (c *Cache) Delete(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, c.key(key)).Err(); err != nil {
		return fmt.Errorf("redis: del %s: %w", key, err)
	}
	return nil
}

// GetOrSet returns the cached value at key, or invokes loader, stores its
// result and returns it.  Concurrent callers for the same key share a single
// loader invocation via singleflight.  Cache failures never fail the call:
// an unreadable entry or an unreachable backend is logged and answered from
// the loader, and a write failure still returns the loaded value.
func (c *Cache) GetOrSet(ctx context.Context, key string, dest interface{}, loader func(ctx context.Context) (interface{}, error)) error {
	if err := c.Get(ctx, key, dest); err == nil {
		return nil
	} else if !errors.Is(err, ErrCacheMiss) {
		c.log.Warn("cache read failed, loading from source", logging.String("key", key), logging.Err(err))
	}

	val, err, _ := c.group.Do(key, func() (interface{}, error) {
		loaded, err := loader(ctx)
		if err != nil {
			return nil, err
		}
		_ = c.Set(ctx, key, loaded)
		return loaded, nil
	})
	if err != nil {
		return err
	}

	// Round-trip through JSON so dest is populated identically whether the
	// value came from the cache or from the loader.
	raw, err := json.Marshal(val)
	if err != nil {
		return fmt.Errorf("redis: encode loaded value for %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("redis: decode loaded value for %s: %w", key, err)
	}
	return nil
}

// Ping verifies connectivity to the backend.
func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
