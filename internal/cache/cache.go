package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"StageSentinel/internal/model"
)

// Cache stores fetched price series keyed by ticker, interval, and span.
// A miss returns (nil, nil).
type Cache interface {
	Get(ctx context.Context, key string) (model.PriceSeries, error)
	Put(ctx context.Context, key string, series model.PriceSeries) error
	Invalidate(ctx context.Context, key string) error
	Close() error
}

// Key builds the canonical cache key for a fetched series.
func Key(symbol, interval string, span int) string {
	return fmt.Sprintf("series:%s:%s:%d", symbol, interval, span)
}

// MemoryCache is a TTL map cache used when Redis is not configured.
type MemoryCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]memoryEntry
}

type memoryEntry struct {
	series  model.PriceSeries
	expires time.Time
}

// NewMemoryCache creates an in-process cache with the given TTL.
func NewMemoryCache(ttl time.Duration) *MemoryCache {
	return &MemoryCache{ttl: ttl, entries: make(map[string]memoryEntry)}
}

func (c *MemoryCache) Get(_ context.Context, key string) (model.PriceSeries, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		return nil, nil
	}
	if time.Now().After(e.expires) {
		delete(c.entries, key)
		return nil, nil
	}
	return e.series, nil
}

func (c *MemoryCache) Put(_ context.Context, key string, series model.PriceSeries) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = memoryEntry{series: series, expires: time.Now().Add(c.ttl)}
	return nil
}

func (c *MemoryCache) Invalidate(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
	return nil
}

func (c *MemoryCache) Close() error { return nil }
