package jupiter

import (
	"sync"
	"time"
)

// ttlCache is a minimal in-memory cache with per-entry expiry, checked
// on read. No background sweeper: the working set is a handful of
// mints per session.
type ttlCache[K comparable, V any] struct {
	mu    sync.RWMutex
	items map[K]cacheItem[V]
}

type cacheItem[V any] struct {
	value     V
	expiresAt time.Time
}

func newTTLCache[K comparable, V any]() *ttlCache[K, V] {
	return &ttlCache[K, V]{items: make(map[K]cacheItem[V])}
}

func (c *ttlCache[K, V]) get(key K) (V, bool) {
	c.mu.RLock()
	item, ok := c.items[key]
	c.mu.RUnlock()
	if !ok || time.Now().After(item.expiresAt) {
		var zero V
		return zero, false
	}
	return item.value, true
}

func (c *ttlCache[K, V]) set(key K, value V, ttl time.Duration) {
	c.mu.Lock()
	c.items[key] = cacheItem[V]{value: value, expiresAt: time.Now().Add(ttl)}
	c.mu.Unlock()
}
