package cache

import (
	"sync"
	"time"

	"github.com/awheeler/frontier/internal/models"
)

// MemoryCache provides an in-memory L1 cache for catalog snapshots
type MemoryCache struct {
	mu        sync.RWMutex
	snapshot  *models.CatalogSnapshot
	fetchedAt time.Time
	ttl       time.Duration
}

// NewMemoryCache creates a new in-memory cache
func NewMemoryCache(ttl time.Duration) *MemoryCache {
	return &MemoryCache{ttl: ttl}
}

// GetSnapshot retrieves the cached catalog snapshot if present and fresh
func (c *MemoryCache) GetSnapshot() (*models.CatalogSnapshot, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.snapshot == nil {
		return nil, false
	}
	if c.ttl > 0 && time.Since(c.fetchedAt) > c.ttl {
		return nil, false
	}
	return c.snapshot, true
}

// SetSnapshot caches a catalog snapshot
func (c *MemoryCache) SetSnapshot(snapshot *models.CatalogSnapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.snapshot = snapshot
	c.fetchedAt = time.Now()
}

// Invalidate drops the cached snapshot
func (c *MemoryCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.snapshot = nil
}
