package mem

import (
	"sync"
	"time"
)

// ListingCache is a single-value cache with a freshness window, used for the
// remote blob listing. The clock is injected so staleness is testable.
type ListingCache[T any] struct {
	mu        sync.RWMutex
	value     []T
	fetchedAt time.Time
	filled    bool

	ttl time.Duration
	now func() time.Time
}

func NewListingCache[T any](ttl time.Duration, now func() time.Time) *ListingCache[T] {
	if now == nil {
		now = time.Now
	}
	return &ListingCache[T]{ttl: ttl, now: now}
}

// Get returns the cached value if it is present and younger than the TTL.
func (c *ListingCache[T]) Get() ([]T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.filled || c.now().Sub(c.fetchedAt) > c.ttl {
		return nil, false
	}
	return c.value, true
}

func (c *ListingCache[T]) Set(value []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.value = value
	c.fetchedAt = c.now()
	c.filled = true
}

// Invalidate empties the cache; the next Get misses. Called when the storage
// token changes.
func (c *ListingCache[T]) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.value = nil
	c.filled = false
}
