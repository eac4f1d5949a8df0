package config

import (
	"testing"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppConfig_DefaultsFromEnv(t *testing.T) {
	var cfg AppConfig
	require.NoError(t, env.Parse(&cfg))
	cfg.Sanitize()

	assert.False(t, cfg.IsDev)
	assert.Equal(t, "http://localhost:8000", cfg.API.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.API.Timeout)
	assert.Equal(t, 3*time.Second, cfg.Poller.ListInterval)
	assert.Equal(t, 3*time.Second, cfg.Poller.LogInterval)
	assert.Equal(t, time.Second, cfg.Poller.RenderInterval)
	assert.False(t, cfg.Cache.UseRedis())
	assert.Equal(t, 30*time.Second, cfg.Cache.ReportTTL)
	assert.False(t, cfg.Observability.Metrics.IsEnabled())
	assert.Equal(t, "info", cfg.Observability.LogLevel)
}

func TestAppConfig_EnvOverrides(t *testing.T) {
	t.Setenv("GUARDIAN_API_URL", "https://pipeline.internal:9443/")
	t.Setenv("GUARDIAN_POLL_LIST_INTERVAL", "5s")
	t.Setenv("GUARDIAN_REDIS_ADDR", "redis.internal:6379")
	t.Setenv("GUARDIAN_LOG_LEVEL", "DEBUG")

	var cfg AppConfig
	require.NoError(t, env.Parse(&cfg))
	cfg.Sanitize()

	assert.Equal(t, "https://pipeline.internal:9443", cfg.API.BaseURL, "trailing slash is trimmed")
	assert.Equal(t, 5*time.Second, cfg.Poller.ListInterval)
	assert.True(t, cfg.Cache.UseRedis())
	assert.Equal(t, "debug", cfg.Observability.LogLevel)
}

func TestAppConfig_DetectDevMode(t *testing.T) {
	t.Setenv("GUARDIAN_ENV", "development")

	var cfg AppConfig
	require.NoError(t, env.Parse(&cfg))
	cfg.Sanitize()

	assert.True(t, cfg.IsDev)
}

func TestPollerConfig_ClampsAggressiveCadences(t *testing.T) {
	cfg := PollerConfig{
		ListInterval:   100 * time.Millisecond,
		LogInterval:    -time.Second,
		RenderInterval: 0,
	}
	cfg.Sanitize()

	assert.Equal(t, 3*time.Second, cfg.ListInterval)
	assert.Equal(t, 3*time.Second, cfg.LogInterval)
	assert.Equal(t, time.Second, cfg.RenderInterval)
}

func TestAPIConfig_SanitizeGuardrails(t *testing.T) {
	cfg := APIConfig{BaseURL: "  ", Timeout: -1}
	cfg.Sanitize()

	assert.Equal(t, "http://localhost:8000", cfg.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
}

func TestObservabilityMetricsConfig_DisabledWithoutAddress(t *testing.T) {
	cfg := ObservabilityMetricsConfig{Enabled: true, StatsdAddress: "   "}
	cfg.Sanitize()

	assert.False(t, cfg.IsEnabled())
	assert.Equal(t, "guardian_console", cfg.Prefix)
}

func TestObservabilityConfig_UnknownLogLevelFallsBack(t *testing.T) {
	cfg := ObservabilityConfig{LogLevel: "verbose"}
	cfg.Sanitize()

	assert.Equal(t, "info", cfg.LogLevel)
}
