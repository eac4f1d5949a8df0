package config

import (
	"strings"
	"time"
)

// CacheConfig controls the report cache. With a Redis address configured the
// cache is shared across console instances; without one an in-process cache
// is used.
type CacheConfig struct {
	// RedisAddr is the optional Redis host:port. Empty selects the
	// in-process cache.
	RedisAddr string `env:"GUARDIAN_REDIS_ADDR"`

	// RedisPassword authenticates against Redis when set.
	RedisPassword string `env:"GUARDIAN_REDIS_PASSWORD"`

	// RedisDB selects the Redis logical database.
	RedisDB int `env:"GUARDIAN_REDIS_DB" envDefault:"0"`

	// ReportTTL bounds how long a fetched report envelope is reused.
	ReportTTL time.Duration `env:"GUARDIAN_REPORT_CACHE_TTL" envDefault:"30s"`
}

// Sanitize normalises the Redis address and enforces a short, positive TTL.
func (c *CacheConfig) Sanitize() {
	c.RedisAddr = strings.TrimSpace(c.RedisAddr)
	if c.RedisDB < 0 {
		c.RedisDB = 0
	}
	if c.ReportTTL <= 0 {
		c.ReportTTL = 30 * time.Second
	}
}

// UseRedis reports whether a shared Redis cache is configured.
func (c *CacheConfig) UseRedis() bool {
	return c.RedisAddr != ""
}
