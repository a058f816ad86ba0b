package cache

import (
	"testing"
	"time"

	"github.com/awheeler/frontier/internal/models"
)

func TestMemoryCache_SetAndGet(t *testing.T) {
	c := NewMemoryCache(time.Minute)

	if _, ok := c.GetSnapshot(); ok {
		t.Error("expected empty cache to miss")
	}

	snap := &models.CatalogSnapshot{Assets: []models.AssetClass{{Name: "CASH"}}}
	c.SetSnapshot(snap)

	got, ok := c.GetSnapshot()
	if !ok {
		t.Fatal("expected cache hit after set")
	}
	if got != snap {
		t.Error("expected the same snapshot back")
	}
}

func TestMemoryCache_TTLExpiry(t *testing.T) {
	c := NewMemoryCache(10 * time.Millisecond)
	c.SetSnapshot(&models.CatalogSnapshot{})

	if _, ok := c.GetSnapshot(); !ok {
		t.Fatal("expected hit before TTL expiry")
	}

	time.Sleep(25 * time.Millisecond)
	if _, ok := c.GetSnapshot(); ok {
		t.Error("expected miss after TTL expiry")
	}
}

func TestMemoryCache_Invalidate(t *testing.T) {
	c := NewMemoryCache(time.Minute)
	c.SetSnapshot(&models.CatalogSnapshot{})
	c.Invalidate()

	if _, ok := c.GetSnapshot(); ok {
		t.Error("expected miss after invalidation")
	}
}
