package mocks

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/cmlabs-hris/attendance-portal/internal/pkg/cache"
)

// MemoryCache is an in-process cache.Cache for tests. It round-trips values through JSON
// like the redis implementation does.
type MemoryCache struct {
	mu      sync.Mutex
	entries map[string][]byte
	Deleted []string
}

var _ cache.Cache = (*MemoryCache)(nil)

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: make(map[string][]byte)}
}

func (c *MemoryCache) Get(_ context.Context, key string, dest any) (bool, error) {
	c.mu.Lock()
	data, ok := c.entries[key]
	c.mu.Unlock()
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(data, dest)
}

func (c *MemoryCache) Set(_ context.Context, key string, value any, _ time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.entries[key] = data
	c.mu.Unlock()
	return nil
}

func (c *MemoryCache) Delete(_ context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.entries, k)
		c.Deleted = append(c.Deleted, k)
	}
	return nil
}

func (c *MemoryCache) Has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.entries[key]
	return ok
}

func (c *MemoryCache) Close() error { return nil }
