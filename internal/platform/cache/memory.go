package cache

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/lamiamustafa/CurrencyConverterAPI/internal/core/ports"
)

type entry struct {
	value     any
	expiresAt time.Time
}

// MemoryCache is a process-wide string-keyed store with per-entry expiry.
// Expiry is lazy: stale entries are treated as absent on the next lookup and
// overwritten by the fresh fetch.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]entry
	log     *slog.Logger

	// now is swapped out in tests to cross expiry boundaries.
	now func() time.Time
}

// NewMemoryCache creates an empty MemoryCache.
func NewMemoryCache(log *slog.Logger) *MemoryCache {
	return &MemoryCache{
		entries: make(map[string]entry),
		log:     log,
		now:     time.Now,
	}
}

// GetOrFetch returns the cached value for key if present and unexpired.
// Otherwise it invokes fetch, stores the result until the instant computed
// by expiry, and returns it. Fetch errors are propagated and nothing is
// stored. Concurrent misses for the same key may each invoke fetch; the last
// writer wins.
func (c *MemoryCache) GetOrFetch(ctx context.Context, key string, expiry ports.ExpiryFunc, fetch ports.FetchFunc) (any, error) {
	c.mu.RLock()
	e, found := c.entries[key]
	c.mu.RUnlock()

	if found && c.now().Before(e.expiresAt) {
		c.log.Debug("Cache hit", slog.String("key", key))
		return e.value, nil
	}

	c.log.Debug("Cache miss", slog.String("key", key))
	value, err := fetch(ctx)
	if err != nil {
		return nil, err
	}

	fetchedAt := c.now()
	c.mu.Lock()
	c.entries[key] = entry{value: value, expiresAt: expiry(fetchedAt)}
	c.mu.Unlock()

	return value, nil
}

// Len reports the number of entries currently stored, expired or not.
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

var _ ports.RateCache = (*MemoryCache)(nil)
