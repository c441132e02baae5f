package mocks

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// MemoryCache is an in-process Cacher that round-trips values through JSON
// like the redis-backed cache does. Missing keys report redis.Nil.
type MemoryCache struct {
	mu      sync.Mutex
	data    map[string][]byte
	GetErr  error
	SetErr  error
	Gets    int
	Sets    int
	LastTTL time.Duration
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{data: make(map[string][]byte)}
}

func (c *MemoryCache) Get(ctx context.Context, key string, dest any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Gets++
	if c.GetErr != nil {
		return c.GetErr
	}
	raw, ok := c.data[key]
	if !ok {
		return redis.Nil
	}
	return json.Unmarshal(raw, dest)
}

func (c *MemoryCache) Set(ctx context.Context, key string, value any, expiration time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Sets++
	c.LastTTL = expiration
	if c.SetErr != nil {
		return c.SetErr
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.data[key] = raw
	return nil
}

func (c *MemoryCache) Put(key string, raw []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = raw
}

// Counts returns the number of Get and Set calls so far.
func (c *MemoryCache) Counts() (gets, sets int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.Gets, c.Sets
}

func (c *MemoryCache) Close() error { return nil }
