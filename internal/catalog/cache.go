package catalog

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// CacheSchemaVersion is bumped when the cached catalog shape changes
const CacheSchemaVersion = "1.0"

const catalogKey = "catalog"

type cachedCatalogEntry struct {
	Version  string
	Catalog  *Catalog
	CachedAt time.Time
}

// catalogCache keeps the last fetched catalog until its TTL expires
type catalogCache struct {
	lru *expirable.LRU[string, *cachedCatalogEntry]
}

func newCatalogCache(ttl time.Duration) *catalogCache {
	return &catalogCache{
		lru: expirable.NewLRU[string, *cachedCatalogEntry](1, nil, ttl),
	}
}

// Get returns the cached catalog if present, unexpired and of the current version
func (c *catalogCache) Get() (*Catalog, bool) {
	entry, found := c.lru.Get(catalogKey)
	if !found {
		return nil, false
	}
	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(catalogKey)
		return nil, false
	}
	return entry.Catalog, true
}

func (c *catalogCache) Set(cat *Catalog) {
	c.lru.Add(catalogKey, &cachedCatalogEntry{
		Version:  CacheSchemaVersion,
		Catalog:  cat,
		CachedAt: time.Now(),
	})
}

func (c *catalogCache) Clear() {
	c.lru.Purge()
}
