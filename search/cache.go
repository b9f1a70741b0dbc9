package search

import (
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	defaultCacheSize = 256
	defaultCacheTTL  = 300 * time.Second
)

// resultCache keeps recent search results keyed by the full request shape,
// so repeated queries skip the fan-out entirely until the TTL expires.
type resultCache struct {
	lru *expirable.LRU[string, *SearchResult]
}

func newResultCache(size int, ttl time.Duration) *resultCache {
	if size <= 0 {
		size = defaultCacheSize
	}
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &resultCache{
		lru: expirable.NewLRU[string, *SearchResult](size, nil, ttl),
	}
}

func cacheKey(identifier string, topK int, threshold float64, filters Filters) string {
	capLimit := -1.0
	if filters.MaxMarketCapCny != nil {
		capLimit = *filters.MaxMarketCapCny
	}
	volLimit := -1.0
	if filters.MaxAvgVolume5Day != nil {
		volLimit = *filters.MaxAvgVolume5Day
	}
	return fmt.Sprintf("%s|%d|%.4f|%.0f|%.0f", identifier, topK, threshold, capLimit, volLimit)
}

func (c *resultCache) get(key string) (*SearchResult, bool) {
	return c.lru.Get(key)
}

func (c *resultCache) put(key string, result *SearchResult) {
	c.lru.Add(key, result)
}
