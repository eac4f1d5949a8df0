package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/guardian-sec/guardian-console/config"
	"github.com/guardian-sec/guardian-console/internal/cache"
	"github.com/guardian-sec/guardian-console/internal/observability/statsd"
)

// NewMetricsSink creates the StatsD client from config. A disabled config
// yields a client that swallows every emission.
func NewMetricsSink(cfg config.ObservabilityMetricsConfig, logger *slog.Logger) (*statsd.Client, error) {
	client, err := statsd.NewClient(statsd.Config{
		Enabled: cfg.IsEnabled(),
		Address: cfg.StatsdAddress,
		Prefix:  cfg.Prefix,
		Logger:  logger,
	})
	if err != nil {
		return nil, fmt.Errorf("init statsd: %w", err)
	}
	return client, nil
}

// ConnectRedis connects to Redis when an address is configured and verifies
// the connection with a ping. Returns nil when Redis is not configured.
//
//nolint:ireturn // returning redis.UniversalClient keeps sentinel/cluster support flexible.
func ConnectRedis(ctx context.Context, cfg config.CacheConfig) (redis.UniversalClient, error) {
	if !cfg.UseRedis() {
		return nil, nil
	}

	client := redis.NewUniversalClient(&redis.UniversalOptions{
		Addrs:    []string{cfg.RedisAddr},
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect redis %s: %w", cfg.RedisAddr, err)
	}
	return client, nil
}

// NewReportCache selects the shared Redis cache when available, otherwise
// the in-process one.
//
//nolint:ireturn // callers program against the ReportCache interface.
func NewReportCache(cfg config.CacheConfig, redisClient redis.UniversalClient) cache.ReportCache {
	if redisClient != nil {
		return cache.NewRedisReportCache(redisClient, cfg.ReportTTL)
	}
	return cache.NewMemoryReportCache(cfg.ReportTTL, nil)
}
