// v2
// internal/cache/cache.go
package cache

import (
	"sync"
	"time"
)

// Observer is notified of cache activity, typically backed by the
// observability metrics.
type Observer interface {
	CacheHit()
	CacheMiss()
}

type entry[T any] struct {
	val T
	exp time.Time
}

// Cache is a TTL cache with at-most-one concurrent computation per key.
// Evaluations are pure and idempotent, so the only coordination the
// engine needs is "don't score the same entity twice at the same time".
type Cache[T any] struct {
	mu    sync.RWMutex
	m     map[string]entry[T]
	locks map[string]*sync.Mutex
	ttl   time.Duration
	obs   Observer
}

// New creates a cache. ttl <= 0 keeps entries until force-refresh.
func New[T any](ttl time.Duration, obs Observer) *Cache[T] {
	return &Cache[T]{
		m:     make(map[string]entry[T]),
		locks: make(map[string]*sync.Mutex),
		ttl:   ttl,
		obs:   obs,
	}
}

// Get returns the live entry for key.
func (c *Cache[T]) Get(key string) (T, bool) {
	var zero T
	c.mu.RLock()
	e, ok := c.m[key]
	c.mu.RUnlock()
	if !ok || c.expired(e) {
		if c.obs != nil {
			c.obs.CacheMiss()
		}
		return zero, false
	}
	if c.obs != nil {
		c.obs.CacheHit()
	}
	return e.val, true
}

// Set stores a value under key.
func (c *Cache[T]) Set(key string, v T) {
	c.mu.Lock()
	c.m[key] = entry[T]{val: v, exp: c.deadline()}
	c.mu.Unlock()
}

// GetOrCompute returns the cached value for key, or runs compute exactly
// once per key at a time and caches its result. force bypasses the
// cached value but still serializes concurrent computations of the same
// key.
func (c *Cache[T]) GetOrCompute(key string, force bool, compute func() T) T {
	if !force {
		if v, ok := c.Get(key); ok {
			return v
		}
	}

	lock := c.keyLock(key)
	lock.Lock()
	defer lock.Unlock()

	// A concurrent caller may have filled the entry while we waited.
	if !force {
		if v, ok := c.Get(key); ok {
			return v
		}
	}
	v := compute()
	c.Set(key, v)
	return v
}

func (c *Cache[T]) keyLock(key string) *sync.Mutex {
	c.mu.Lock()
	defer c.mu.Unlock()
	lock, ok := c.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		c.locks[key] = lock
	}
	return lock
}

func (c *Cache[T]) expired(e entry[T]) bool {
	return !e.exp.IsZero() && time.Now().After(e.exp)
}

func (c *Cache[T]) deadline() time.Time {
	if c.ttl <= 0 {
		return time.Time{}
	}
	return time.Now().Add(c.ttl)
}
