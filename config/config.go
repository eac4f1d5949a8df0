package config

import (
	"os"
	"strings"
)

// AppConfig is the main application configuration struct that composes
// domain-specific configuration from separate files.
//
// Configuration is loaded from environment variables using the
// github.com/caarlos0/env library. See individual domain config
// files for details on available environment variables:
//   - api.go: Pipeline API client configuration
//   - poller.go: Polling cadence configuration
//   - cache.go: Report cache configuration
//   - observability.go: Metrics and logging configuration
type AppConfig struct {
	// IsDev controls development mode behavior (verbose logging, relaxed
	// guardrails). Set DEV=true for development mode.
	IsDev bool `env:"DEV" envDefault:"false"`

	// Pipeline API client configuration
	API APIConfig

	// Polling cadence configuration
	Poller PollerConfig

	// Report cache configuration
	Cache CacheConfig

	// Observability configuration
	Observability ObservabilityConfig
}

// Sanitize applies guardrails to configuration values loaded from env.
// This should be called after loading configuration from environment
// variables.
func (c *AppConfig) Sanitize() {
	c.API.Sanitize()
	c.Poller.Sanitize()
	c.Cache.Sanitize()
	c.Observability.Sanitize()

	c.detectDevMode()
}

// detectDevMode checks both DEV and GUARDIAN_ENV environment variables.
// This is called by Sanitize() to ensure IsDev is set correctly.
func (c *AppConfig) detectDevMode() {
	if !c.IsDev {
		guardianEnv := strings.ToLower(os.Getenv("GUARDIAN_ENV"))
		c.IsDev = guardianEnv == "development" || guardianEnv == "dev"
	}
}
