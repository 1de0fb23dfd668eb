package bin

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/paybr/cielo_facade/internal/result"
)

const cachePrefix = "cardbin:v1:"

// CachedFetcher puts a Redis cache in front of a Fetcher, keyed by the
// BIN string. Only successful lookups are cached; cache failures degrade
// to a direct fetch rather than failing the request.
type CachedFetcher struct {
	inner  Fetcher
	cache  *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewCachedFetcher wraps a fetcher with a Redis cache.
func NewCachedFetcher(inner Fetcher, cache *redis.Client, ttl time.Duration, logger *slog.Logger) *CachedFetcher {
	return &CachedFetcher{inner: inner, cache: cache, ttl: ttl, logger: logger}
}

// FetchBin serves the record from cache when present, otherwise fetches
// through the inner collaborator and stores the result.
func (f *CachedFetcher) FetchBin(ctx context.Context, bin string) result.Result[Record] {
	key := cachePrefix + bin

	cached, err := f.cache.Get(ctx, key).Result()
	if err == nil {
		var record Record
		if err := json.Unmarshal([]byte(cached), &record); err == nil {
			return result.OK(record)
		}
		if f.logger != nil {
			f.logger.Warn("discarding undecodable cached bin record", "bin", bin)
		}
	} else if err != redis.Nil && f.logger != nil {
		f.logger.Warn("bin cache lookup failed", "bin", bin, "error", err)
	}

	res := f.inner.FetchBin(ctx, bin)
	if !res.Success {
		return res
	}

	payload, err := json.Marshal(res.Data)
	if err == nil {
		if err := f.cache.Set(ctx, key, payload, f.ttl).Err(); err != nil && f.logger != nil {
			f.logger.Warn("bin cache store failed", "bin", bin, "error", err)
		}
	}
	return res
}
