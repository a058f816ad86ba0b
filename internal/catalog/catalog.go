package catalog

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/awheeler/frontier/internal/cache"
	"github.com/awheeler/frontier/internal/models"
)

// Source supplies a catalog snapshot: the full asset list and the
// correlation matrix over those assets.
type Source interface {
	Load(ctx context.Context) (*models.CatalogSnapshot, error)
}

// Catalog fronts a Source with a TTL cache, so repeated optimization
// requests do not re-read the underlying files or database.
type Catalog struct {
	source Source
	cache  *cache.MemoryCache
}

// New creates a Catalog over source using c for snapshot caching.
func New(source Source, c *cache.MemoryCache) *Catalog {
	return &Catalog{source: source, cache: c}
}

// Snapshot returns the current catalog snapshot, loading from the source
// when the cached copy is missing or expired.
func (c *Catalog) Snapshot(ctx context.Context) (*models.CatalogSnapshot, error) {
	if snap, ok := c.cache.GetSnapshot(); ok {
		return snap, nil
	}

	snap, err := c.source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	log.Debugf("catalog loaded: %d asset classes", len(snap.Assets))

	c.cache.SetSnapshot(snap)
	return snap, nil
}
