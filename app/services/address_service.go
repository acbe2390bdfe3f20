package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/address-parser/usaddress/address"
	"go.uber.org/zap"
)

// AddressService parses addresses through a cache
type AddressService struct {
	parser    *address.Parser
	cache     ICacheService
	logger    *zap.Logger
	startTime time.Time
}

// NewAddressService creates a new AddressService. A nil cache disables
// caching.
func NewAddressService(parser *address.Parser, cache ICacheService, logger *zap.Logger) *AddressService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AddressService{
		parser:    parser,
		cache:     cache,
		logger:    logger,
		startTime: time.Now(),
	}
}

// Parse parses one input, serving repeated inputs from the cache
func (as *AddressService) Parse(ctx context.Context, in address.Input) (*address.Address, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	key, ok := as.fingerprint(in)
	if !ok {
		return nil, address.ErrNoInput
	}

	if as.cache != nil {
		cached, found, err := as.cache.Get(ctx, key)
		if err != nil {
			as.logger.Warn("Cache lookup failed", zap.String("key", key), zap.Error(err))
		} else if found {
			return cached, nil
		}
	}

	result, err := as.parser.Parse(in)
	if err != nil {
		return nil, fmt.Errorf("parse address: %w", err)
	}

	if as.cache != nil {
		if err := as.cache.Set(ctx, key, result); err != nil {
			as.logger.Warn("Cache store failed", zap.String("key", key), zap.Error(err))
		}
	}
	return result, nil
}

// ParseBatch parses every input in order. errs[i] is set when inputs[i]
// could not be parsed; once ctx is done the remaining entries carry its
// error.
func (as *AddressService) ParseBatch(ctx context.Context, inputs []string) ([]*address.Address, []error) {
	results := make([]*address.Address, len(inputs))
	errs := make([]error, len(inputs))
	failed := 0

	for i, input := range inputs {
		if err := ctx.Err(); err != nil {
			for j := i; j < len(inputs); j++ {
				errs[j] = err
			}
			failed += len(inputs) - i
			as.logger.Warn("Batch parse interrupted",
				zap.Int("index", i),
				zap.Int("total", len(inputs)),
				zap.Error(err))
			break
		}

		result, err := as.Parse(ctx, address.Text(input))
		if err != nil {
			as.logger.Warn("Failed to parse address in batch",
				zap.Int("index", i),
				zap.String("address", input),
				zap.Error(err))
			errs[i] = err
			failed++
			continue
		}
		results[i] = result
	}

	as.logger.Info("Completed batch parsing",
		zap.Int("total", len(inputs)),
		zap.Int("failed", failed))

	return results, errs
}

// Clear empties the cache
func (as *AddressService) Clear(ctx context.Context) error {
	if as.cache == nil {
		return nil
	}
	return as.cache.Clear(ctx)
}

// GetStartTime returns when the service was created
func (as *AddressService) GetStartTime() time.Time {
	return as.startTime
}

// GetStats returns uptime and cache statistics
func (as *AddressService) GetStats(ctx context.Context) map[string]interface{} {
	stats := map[string]interface{}{
		"uptime_seconds": int64(time.Since(as.startTime).Seconds()),
		"start_time":     as.startTime.Format(time.RFC3339),
		"expand_streets": as.parser.ExpandStreets(),
	}
	if as.cache == nil {
		return stats
	}

	cacheStats, err := as.cache.GetStats(ctx)
	if err != nil {
		as.logger.Warn("Cache stats unavailable", zap.Error(err))
		return stats
	}
	stats["cache_hits"] = cacheStats.TotalHits
	stats["cache_miss"] = cacheStats.TotalMiss
	stats["cache_items"] = cacheStats.TotalItems
	stats["cache_hit_rate"] = cacheStats.HitRate
	return stats
}

// fingerprint derives the cache key of an input:
// SHA256(kind \x1F expand \x1F cleaned fields...). ok is false when there
// is nothing to parse.
func (as *AddressService) fingerprint(in address.Input) (string, bool) {
	var parts []string
	switch v := in.(type) {
	case address.Text:
		text := address.Clean(string(v))
		if text == "" {
			return "", false
		}
		parts = []string{"text", text}
	case address.Fields:
		parts = []string{"fields",
			address.Clean(v.Street), address.Clean(v.City), address.Clean(v.State),
			address.Clean(v.Region), address.Clean(v.PostalCode), address.Clean(v.Number),
			address.Clean(v.Country), address.Clean(v.Address),
		}
		if strings.Join(parts[1:], "") == "" {
			return "", false
		}
	case *address.Fields:
		if v == nil {
			return "", false
		}
		return as.fingerprint(*v)
	default:
		return "", false
	}

	parts = append(parts, strconv.FormatBool(as.parser.ExpandStreets()))
	sum := sha256.Sum256([]byte(strings.Join(parts, "\x1F")))
	return "sha256:" + hex.EncodeToString(sum[:]), true
}
