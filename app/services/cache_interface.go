package services

import (
	"context"

	"github.com/address-parser/usaddress/address"
)

// CacheStats summarizes cache usage
type CacheStats struct {
	HitRate    float64 `json:"hit_rate"`
	TotalHits  int64   `json:"total_hits"`
	TotalMiss  int64   `json:"total_miss"`
	TotalItems int64   `json:"total_items"`
}

// ICacheService stores parsed addresses by input fingerprint
type ICacheService interface {
	// Get returns the cached address for key
	Get(ctx context.Context, key string) (*address.Address, bool, error)

	// Set stores an address under key
	Set(ctx context.Context, key string, result *address.Address) error

	// Delete removes key
	Delete(ctx context.Context, key string) error

	// Clear removes every entry
	Clear(ctx context.Context) error

	// GetStats reports hits, misses and size
	GetStats(ctx context.Context) (*CacheStats, error)

	// Exists reports whether key is cached, without counting a hit
	Exists(ctx context.Context, key string) (bool, error)

	// Close releases resources held by the cache
	Close() error
}
