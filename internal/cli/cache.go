package cli

import (
	"context"
	"errors"
	"log/slog"

	"github.com/aretw0/boolmin/pkg/adapters/redis"
)

// ErrNoSharedCache is returned by cache maintenance when no Redis address is configured.
var ErrNoSharedCache = errors.New("no shared cache configured (set --redis-addr)")

// PurgeCache removes every cached result from the Redis cache in opts.
func PurgeCache(ctx context.Context, opts Options, logger *slog.Logger) (int, error) {
	if opts.RedisAddr == "" {
		return 0, ErrNoSharedCache
	}

	cache := redis.New(opts.RedisAddr, "", 0)
	defer func() {
		if err := cache.Close(); err != nil {
			logger.Warn("Cache close failed", "error", err)
		}
	}()

	removed, err := cache.Purge(ctx)
	if err != nil {
		return removed, err
	}
	logger.Info("Cache Purged", "addr", opts.RedisAddr, "removed", removed)
	return removed, nil
}
