// Package cache memoizes /compare results. simulate() is deterministic and
// side-effect-free (SPEC_FULL.md §5), so identical requests always produce
// identical output — caching here never risks staleness, only saves
// repeated CPU work for popular comparisons. Shaped after the teacher's
// SummaryService: a Redis-backed TTL cache with singleflight collapsing
// concurrent identical requests, degrading gracefully to "always compute"
// when Redis is unreachable.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/edirooss/zmux-server/internal/api/dto"
)

const keyPrefix = "schedsim:compare:"

// CompareOptions controls TTL and graceful degrade behavior.
type CompareOptions struct {
	TTL time.Duration // default 30s
}

func (o *CompareOptions) setDefaults() {
	if o.TTL <= 0 {
		o.TTL = 30 * time.Second
	}
}

// CompareCache memoizes CompareRequest -> []dto.CompareRow. rdb may be nil,
// in which case Get always misses and compute always runs — the cache is
// an optimization, not a correctness dependency.
type CompareCache struct {
	log  *zap.Logger
	rdb  *redis.Client
	opts CompareOptions
	sg   singleflight.Group
}

func NewCompareCache(log *zap.Logger, rdb *redis.Client, opts CompareOptions) *CompareCache {
	if log == nil {
		log = zap.NewNop()
	}
	opts.setDefaults()
	return &CompareCache{log: log.Named("compare-cache"), rdb: rdb, opts: opts}
}

// Get returns the cached rows for req, computing and caching them via
// compute on a miss. Concurrent identical requests are coalesced into a
// single compute call.
func (c *CompareCache) Get(ctx context.Context, req dto.CompareRequest, compute func() ([]dto.CompareRow, error)) ([]dto.CompareRow, error) {
	if c.rdb == nil {
		return compute()
	}

	key, err := cacheKey(req)
	if err != nil {
		// Cache key derivation failing is not fatal — just skip the cache.
		c.log.Warn("compare cache key derivation failed; bypassing cache", zap.Error(err))
		return compute()
	}

	if rows, ok := c.lookup(ctx, key); ok {
		return rows, nil
	}

	v, err, _ := c.sg.Do(key, func() (any, error) {
		if rows, ok := c.lookup(ctx, key); ok {
			return rows, nil
		}

		rows, err := compute()
		if err != nil {
			return nil, err
		}

		c.store(ctx, key, rows)
		return rows, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]dto.CompareRow), nil
}

func (c *CompareCache) lookup(ctx context.Context, key string) ([]dto.CompareRow, bool) {
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn("compare cache lookup failed; computing fresh", zap.Error(err))
		}
		return nil, false
	}
	var rows []dto.CompareRow
	if err := json.Unmarshal(raw, &rows); err != nil {
		c.log.Warn("compare cache entry corrupt; computing fresh", zap.Error(err))
		return nil, false
	}
	return rows, true
}

func (c *CompareCache) store(ctx context.Context, key string, rows []dto.CompareRow) {
	raw, err := json.Marshal(rows)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, key, raw, c.opts.TTL).Err(); err != nil {
		c.log.Warn("compare cache store failed", zap.Error(err))
	}
}

// cacheKey hashes the normalized request so unordered-but-equivalent
// requests (e.g. field order in the original JSON) share a cache entry.
func cacheKey(req dto.CompareRequest) (string, error) {
	raw, err := json.Marshal(req)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(raw)
	return keyPrefix + hex.EncodeToString(sum[:]), nil
}
