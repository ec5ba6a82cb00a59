package dataflows

import (
	"crypto/md5"
	"encoding/json"
	"fmt"
	"sync"
	"time"
)

// memoryCache is a process-local TTL cache for fetched market data. State is
// never written to disk; a restart starts cold.
type memoryCache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
	ttl     time.Duration
	enabled bool
}

type cacheEntry struct {
	value    interface{}
	storedAt time.Time
}

func newMemoryCache(ttl time.Duration, enabled bool) *memoryCache {
	return &memoryCache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
		enabled: enabled,
	}
}

func cacheKey(source, method string, params interface{}) string {
	data, _ := json.Marshal(params)
	return fmt.Sprintf("%s_%s_%x", source, method, md5.Sum(data))
}

func (c *memoryCache) get(key string) (interface{}, bool) {
	if !c.enabled {
		return nil, false
	}

	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}

	if time.Since(entry.storedAt) > c.ttl {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		return nil, false
	}
	return entry.value, true
}

func (c *memoryCache) set(key string, value interface{}) {
	if !c.enabled {
		return
	}
	c.mu.Lock()
	c.entries[key] = cacheEntry{value: value, storedAt: time.Now()}
	c.mu.Unlock()
}
