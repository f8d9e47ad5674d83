package cli

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/aretw0/boolmin"
	"github.com/aretw0/boolmin/internal/logging"
	"github.com/aretw0/boolmin/pkg/adapters/memory"
	"github.com/aretw0/boolmin/pkg/adapters/process"
	"github.com/aretw0/boolmin/pkg/adapters/redis"
	"github.com/aretw0/boolmin/pkg/config"
)

// Options are the settings shared by every command.
type Options struct {
	ConfigPath string
	Debug      bool
	RedisAddr  string
	CacheTTL   time.Duration
	// MemoryCache keeps results for the lifetime of the process (servers only).
	MemoryCache bool
	Timeout     time.Duration
	Hooks       []process.Hooks
}

// CreateLogger configures the application logger.
// In debug mode, it writes to Stderr (to separate from Stdout results).
func CreateLogger(debug bool) *slog.Logger {
	if debug {
		return logging.New(slog.LevelDebug)
	}
	return logging.NewNop()
}

// NewMinimizer loads the settings file and builds a Minimizer with standard CLI conventions.
// The returned close function releases the cache connection, if any.
func NewMinimizer(opts Options, logger *slog.Logger) (*boolmin.Minimizer, func() error, error) {
	settings, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, nil, fmt.Errorf("error loading settings: %w", err)
	}
	logger.Debug("Settings Loaded", "path", settings.Path, "eqntott", settings.Executables.Eqntott, "espresso", settings.Executables.Espresso)

	mOpts := []boolmin.Option{boolmin.WithLogger(logger)}
	for _, h := range opts.Hooks {
		mOpts = append(mOpts, boolmin.WithHooks(h))
	}
	if opts.Debug {
		mOpts = append(mOpts, boolmin.WithHooks(debugHooks(logger)))
	}

	closer := func() error { return nil }
	switch {
	case opts.RedisAddr != "":
		cache := redis.New(opts.RedisAddr, "", 0, redis.WithTTL(opts.CacheTTL))
		mOpts = append(mOpts, boolmin.WithCache(cache))
		closer = cache.Close
		logger.Debug("Result Cache", "backend", "redis", "addr", opts.RedisAddr, "ttl", opts.CacheTTL)
	case opts.MemoryCache:
		mOpts = append(mOpts, boolmin.WithCache(memory.NewCache()))
		logger.Debug("Result Cache", "backend", "memory")
	}

	m, err := boolmin.New(settings, mOpts...)
	if err != nil {
		_ = closer()
		return nil, nil, fmt.Errorf("error initializing minimizer: %w", err)
	}
	return m, closer, nil
}
