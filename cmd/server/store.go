package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mmynk/recipelist/internal/config"
	"github.com/mmynk/recipelist/internal/metrics"
	"github.com/mmynk/recipelist/internal/storage"
	"github.com/mmynk/recipelist/internal/storage/memory"
	"github.com/mmynk/recipelist/internal/storage/redis"
	"github.com/mmynk/recipelist/internal/storage/sqlite"
)

// openStore builds the configured backend, then adds retries and instrumentation.
func openStore(ctx context.Context, cfg config.StoreConfig, m *metrics.Metrics) (storage.Store, error) {
	var (
		backend storage.Store
		err     error
	)

	switch cfg.Driver {
	case config.DriverSQLite:
		backend, err = sqlite.New(cfg.DBPath)
	case config.DriverRedis:
		backend, err = redis.New(ctx, cfg.RedisAddr, cfg.RedisPrefix)
	case config.DriverMemory:
		backend = memory.New()
		slog.Warn("In-memory storage loses all data on restart")
	default:
		err = fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	slog.Info("Storage initialized", "driver", cfg.Driver, "database", cfg.DBPath, "redis_addr", cfg.RedisAddr)

	retryCfg := storage.DefaultRetryConfig
	retryCfg.MaxTries = cfg.StoreRetries
	return m.InstrumentStore(storage.Retrying(backend, retryCfg)), nil
}
