package generation

import (
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// cacheEntry is one cached generation result.
type cacheEntry struct {
	result *Result
	built  time.Time
	ttl    time.Duration
}

// IsExpired returns true if the entry has outlived its TTL.
func (e *cacheEntry) IsExpired() bool {
	if e.ttl == 0 {
		return true // No caching
	}
	return time.Since(e.built) > e.ttl
}

// resultCache holds generation results keyed by request fingerprint.
type resultCache struct {
	mu      sync.RWMutex
	entries map[string]*cacheEntry
	sf      singleflight.Group
	ttl     time.Duration
}

func newResultCache(ttl time.Duration) *resultCache {
	return &resultCache{entries: make(map[string]*cacheEntry), ttl: ttl}
}

func (c *resultCache) lookup(key string) (*Result, bool) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()
	if ok && !entry.IsExpired() {
		return entry.result, true
	}
	return nil, false
}

// getOrRun returns the cached result for key, or runs run once for all
// concurrent callers and caches its result. The bool reports a fast-path
// cache hit.
func (c *resultCache) getOrRun(key string, run func() (*Result, error)) (*Result, bool, error) {
	if res, ok := c.lookup(key); ok {
		return res, true, nil
	}

	v, err, _ := c.sf.Do(key, func() (any, error) {
		// Double-check after acquiring singleflight lock
		if res, ok := c.lookup(key); ok {
			return res, nil
		}

		res, err := run()
		if err != nil {
			return nil, err
		}

		if c.ttl > 0 {
			c.mu.Lock()
			c.entries[key] = &cacheEntry{result: res, built: time.Now(), ttl: c.ttl}
			c.mu.Unlock()
		}
		return res, nil
	})
	if err != nil {
		return nil, false, err
	}
	return v.(*Result), false, nil
}

// invalidate drops every entry whose result has id.
func (c *resultCache) invalidate(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key, entry := range c.entries {
		if entry.result.ID.String() == id {
			delete(c.entries, key)
		}
	}
}

// sweep drops expired entries and returns how many were removed.
func (c *resultCache) sweep() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for key, entry := range c.entries {
		if entry.IsExpired() {
			delete(c.entries, key)
			n++
		}
	}
	return n
}
