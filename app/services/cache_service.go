package services

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/address-parser/usaddress/address"
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize is used when a non-positive size is configured
const DefaultCacheSize = 10000

// CacheService is an in-memory LRU cache of parsed addresses. Parsed
// addresses are immutable, so cached values are shared between callers.
type CacheService struct {
	cache *lru.Cache[string, *address.Address]
	hits  int64
	miss  int64
}

// NewCacheService creates a new CacheService holding up to size entries
func NewCacheService(size int) (*CacheService, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	cache, err := lru.New[string, *address.Address](size)
	if err != nil {
		return nil, fmt.Errorf("create LRU cache: %w", err)
	}
	return &CacheService{cache: cache}, nil
}

// Get returns the cached address for key
func (cs *CacheService) Get(ctx context.Context, key string) (*address.Address, bool, error) {
	if result, ok := cs.cache.Get(key); ok {
		atomic.AddInt64(&cs.hits, 1)
		return result, true, nil
	}
	atomic.AddInt64(&cs.miss, 1)
	return nil, false, nil
}

// Set stores result under key, evicting the least recently used entry
// when full
func (cs *CacheService) Set(ctx context.Context, key string, result *address.Address) error {
	cs.cache.Add(key, result)
	return nil
}

// Delete removes key
func (cs *CacheService) Delete(ctx context.Context, key string) error {
	cs.cache.Remove(key)
	return nil
}

// Clear removes every entry and resets the counters
func (cs *CacheService) Clear(ctx context.Context) error {
	cs.cache.Purge()
	atomic.StoreInt64(&cs.hits, 0)
	atomic.StoreInt64(&cs.miss, 0)
	return nil
}

// Size returns the number of cached entries
func (cs *CacheService) Size() int {
	return cs.cache.Len()
}

// GetStats reports hits, misses and size
func (cs *CacheService) GetStats(ctx context.Context) (*CacheStats, error) {
	hits := atomic.LoadInt64(&cs.hits)
	miss := atomic.LoadInt64(&cs.miss)

	stats := &CacheStats{
		TotalHits:  hits,
		TotalMiss:  miss,
		TotalItems: int64(cs.cache.Len()),
	}
	if total := hits + miss; total > 0 {
		stats.HitRate = float64(hits) / float64(total)
	}
	return stats, nil
}

// Exists reports whether key is cached without touching its recency
func (cs *CacheService) Exists(ctx context.Context, key string) (bool, error) {
	return cs.cache.Contains(key), nil
}

// Close is a no-op for the in-memory cache
func (cs *CacheService) Close() error {
	return nil
}
