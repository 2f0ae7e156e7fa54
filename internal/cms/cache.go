package cms

import (
	"sync"
	"time"
)

// QueryCache is a process-wide read-through cache of raw query results keyed
// by query+params. Entries are tagged with the document kinds a query touches
// so the revalidation webhook can drop exactly the affected results.
//
// Freshness is decided per read: a caller passing a 60s window may share an
// entry with a caller demanding a tighter one.
type QueryCache struct {
	mu      sync.RWMutex
	entries map[string]*cacheEntry
}

type cacheEntry struct {
	raw     []byte
	kinds   []string
	fetched time.Time
}

// NewQueryCache creates an empty cache.
func NewQueryCache() *QueryCache {
	return &QueryCache{entries: make(map[string]*cacheEntry)}
}

// Get returns the cached raw result for key if it was fetched within maxAge.
func (c *QueryCache) Get(key string, maxAge time.Duration) ([]byte, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[key]
	if !ok || time.Since(e.fetched) >= maxAge {
		return nil, false
	}
	return e.raw, true
}

// Set stores a raw result under key, tagged with the given document kinds.
func (c *QueryCache) Set(key string, raw []byte, kinds []string) {
	c.mu.Lock()
	c.entries[key] = &cacheEntry{raw: raw, kinds: kinds, fetched: time.Now()}
	c.mu.Unlock()
}

// InvalidateKind drops every entry tagged with the given document kind, so the
// next fetch for any affected query observes fresh data.
func (c *QueryCache) InvalidateKind(kind string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	dropped := 0
	for key, e := range c.entries {
		for _, k := range e.kinds {
			if k == kind {
				delete(c.entries, key)
				dropped++
				break
			}
		}
	}
	return dropped
}

// InvalidateAll clears the whole cache.
func (c *QueryCache) InvalidateAll() {
	c.mu.Lock()
	c.entries = make(map[string]*cacheEntry)
	c.mu.Unlock()
}

// Len reports the number of live entries.
func (c *QueryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
