// Package cache is an in-memory TTL store shared by the product detail
// responses and the session carts.
package cache

import (
	"sync"
	"time"
)

// DefaultCleanupInterval is how often expired items are swept.
const DefaultCleanupInterval = 5 * time.Minute

type item struct {
	value      any
	expiration int64
}

func (i item) expired(now int64) bool {
	return now > i.expiration
}

// Cache holds values until their TTL elapses.
type Cache struct {
	items map[string]item
	mu    sync.RWMutex
	ttl   time.Duration
	now   func() time.Time
	stop  chan struct{}
	once  sync.Once
}

// New creates a cache and starts its janitor. Call Close to stop it.
func New(defaultTTL, cleanupInterval time.Duration) *Cache {
	c := &Cache{
		items: make(map[string]item),
		ttl:   defaultTTL,
		now:   time.Now,
		stop:  make(chan struct{}),
	}
	if cleanupInterval > 0 {
		go c.cleanupExpired(cleanupInterval)
	}
	return c
}

func (c *Cache) expiry(ttl []time.Duration) int64 {
	d := c.ttl
	if len(ttl) > 0 {
		d = ttl[0]
	}
	return c.now().Add(d).UnixNano()
}

// Set stores value under key, using the default TTL unless one is given.
func (c *Cache) Set(key string, value any, ttl ...time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = item{value: value, expiration: c.expiry(ttl)}
}

// GetValue returns the value for key if it has not expired.
func (c *Cache) GetValue(key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	it, found := c.items[key]
	if !found || it.expired(c.now().UnixNano()) {
		return nil, false
	}
	return it.value, true
}

// Touch returns the live value for key and renews its TTL.
func (c *Cache) Touch(key string, ttl ...time.Duration) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	it, found := c.items[key]
	if !found || it.expired(c.now().UnixNano()) {
		return nil, false
	}
	it.expiration = c.expiry(ttl)
	c.items[key] = it
	return it.value, true
}

// GetOrCreate returns the live value for key, storing create() first if
// there is none. The entry's TTL is renewed either way.
func (c *Cache) GetOrCreate(key string, create func() any, ttl ...time.Duration) any {
	c.mu.Lock()
	defer c.mu.Unlock()

	exp := c.expiry(ttl)
	it, found := c.items[key]
	if !found || it.expired(c.now().UnixNano()) {
		it = item{value: create()}
	}
	it.expiration = exp
	c.items[key] = it
	return it.value
}

// Delete removes key.
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, key)
}

// Close stops the janitor.
func (c *Cache) Close() {
	c.once.Do(func() { close(c.stop) })
}

func (c *Cache) deleteExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now().UnixNano()
	for key, it := range c.items {
		if it.expired(now) {
			delete(c.items, key)
		}
	}
}

func (c *Cache) cleanupExpired(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.deleteExpired()
		case <-c.stop:
			return
		}
	}
}

// Get returns the value for key as a T. A value of another type counts as a miss.
func Get[T any](c *Cache, key string) (T, bool) {
	var zero T
	v, ok := c.GetValue(key)
	if !ok {
		return zero, false
	}
	t, ok := v.(T)
	if !ok {
		return zero, false
	}
	return t, true
}
