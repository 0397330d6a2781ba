package debuginfo

import "sync"

// CacheKey identifies a cache entry. Dialect is part of the key: the same
// token decodes differently per dialect, and a new method version is a new
// key rather than an invalidation of an old one.
type CacheKey struct {
	ID      MethodID
	Dialect Dialect
}

// Cache holds decoded MethodDebugInfo values keyed by (token, version,
// dialect). A cached value answers a new instruction offset only while the
// offset stays inside the value's reuse span. Safe for concurrent use.
type Cache struct {
	mu sync.RWMutex
	m  map[CacheKey]*MethodDebugInfo
}

func NewCache() *Cache {
	return &Cache{m: make(map[CacheKey]*MethodDebugInfo)}
}

// Lookup returns the cached info when present and still valid at ilOffset.
func (c *Cache) Lookup(key CacheKey, ilOffset uint32) (*MethodDebugInfo, bool) {
	c.mu.RLock()
	info, ok := c.m[key]
	c.mu.RUnlock()
	if !ok || !info.ReuseSpan.Contains(ilOffset) {
		return nil, false
	}
	return info, true
}

// Put stores info, replacing any entry for the key.
func (c *Cache) Put(key CacheKey, info *MethodDebugInfo) {
	c.mu.Lock()
	c.m[key] = info
	c.mu.Unlock()
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.m)
}
