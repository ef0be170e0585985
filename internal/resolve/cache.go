package resolve

import (
	"sync"

	"github.com/tintlab/tint/internal/theme"
	"github.com/tintlab/tint/internal/token"
)

// cacheKey identifies one memoized resolution. Theme identity and override
// fingerprint are part of the key, so a stale entry can never be confused
// with current state even before the wholesale clear lands.
type cacheKey struct {
	token       string
	themeID     string
	fingerprint uint64
}

// CacheStats is a snapshot of cache counters.
type CacheStats struct {
	Hits        uint64
	Misses      uint64
	Invalidated uint64
}

// Cache memoizes engine resolutions. Entries are cleared wholesale on any
// override or theme mutation; a partially stale cache is a correctness bug,
// not a performance one.
type Cache struct {
	engine *Engine

	mu      sync.Mutex
	entries map[cacheKey]token.Value
	stats   CacheStats
}

// NewCache wraps an engine.
func NewCache(engine *Engine) *Cache {
	return &Cache{
		engine:  engine,
		entries: make(map[cacheKey]token.Value),
	}
}

// GetOrResolve returns the cached value for (token, theme identity,
// override fingerprint), resolving and storing on miss.
func (c *Cache) GetOrResolve(tok string, th *theme.Theme, ov OverrideSource) token.Value {
	key := cacheKey{token: tok}
	if th != nil {
		key.themeID = th.ID()
	}
	if ov != nil {
		key.fingerprint = ov.Fingerprint()
	}

	c.mu.Lock()
	if v, ok := c.entries[key]; ok {
		c.stats.Hits++
		c.mu.Unlock()
		return v
	}
	c.stats.Misses++
	c.mu.Unlock()

	// Resolution is cheap and deterministic for fixed inputs, so a
	// concurrent duplicate compute is harmless.
	v := c.engine.Resolve(tok, th, ov)

	c.mu.Lock()
	c.entries[key] = v
	c.mu.Unlock()
	return v
}

// InvalidateAll drops every entry. Called on every override mutation and
// theme swap.
func (c *Cache) InvalidateAll() {
	c.mu.Lock()
	c.entries = make(map[cacheKey]token.Value)
	c.stats.Invalidated++
	c.mu.Unlock()
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Stats returns a counters snapshot.
func (c *Cache) Stats() CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}
