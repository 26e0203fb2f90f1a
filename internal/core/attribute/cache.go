// Copyright (c) 2026 Modena. All rights reserved.
// Author: b.petkov.dev@gmail.com

package attribute

import (
	stdctx "context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/bpetkov/modena/internal/platform/constants"
)

// CachedRepository is a read-through Redis decorator over a [Repository].
//
// The catalogue changes rarely but is read on every resolution, so the full
// definition list is cached as one JSON blob with a short TTL. Cache failures
// degrade to the inner repository; they never fail the request.
type CachedRepository struct {
	inner  Repository
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewCachedRepository(inner Repository, client *redis.Client, ttl time.Duration, logger *slog.Logger) *CachedRepository {
	return &CachedRepository{
		inner:  inner,
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func (repository *CachedRepository) ListDefinitions(context stdctx.Context) ([]*Definition, error) {

	// 1. Try the cache first.
	cached, err := repository.client.Get(context, constants.RedisKeyAttributeDefinitions).Bytes()
	if err == nil {
		definitions := make([]*Definition, 0)
		if err := json.Unmarshal(cached, &definitions); err == nil {
			return definitions, nil
		}
		// A corrupt entry falls through to a fresh load below.
		repository.logger.Warn("attribute_cache_corrupt_entry",
			slog.String("key", constants.RedisKeyAttributeDefinitions))
	} else if err != redis.Nil {
		repository.logger.Warn("attribute_cache_read_failed", slog.Any("error", err))
	}

	// 2. Load from the source of truth.
	definitions, err := repository.inner.ListDefinitions(context)
	if err != nil {
		return nil, err
	}

	// 3. Populate the cache best-effort.
	if encoded, err := json.Marshal(definitions); err == nil {
		if err := repository.client.Set(context, constants.RedisKeyAttributeDefinitions, encoded, repository.ttl).Err(); err != nil {
			repository.logger.Warn("attribute_cache_write_failed", slog.Any("error", err))
		}
	}

	return definitions, nil
}

// Invalidate drops the cached definition list, forcing the next read to hit
// PostgreSQL. Called after catalogue administration edits.
func (repository *CachedRepository) Invalidate(context stdctx.Context) {
	if err := repository.client.Del(context, constants.RedisKeyAttributeDefinitions).Err(); err != nil {
		repository.logger.Warn("attribute_cache_invalidate_failed", slog.Any("error", err))
	}
}
