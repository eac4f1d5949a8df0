package config

import (
	"strings"
	"time"
)

const defaultAPIBaseURL = "http://localhost:8000"

// APIConfig controls how the console reaches the scan pipeline's HTTP API.
type APIConfig struct {
	// BaseURL is the pipeline API root, e.g. http://localhost:8000.
	BaseURL string `env:"GUARDIAN_API_URL" envDefault:"http://localhost:8000"`

	// Timeout bounds each individual API request.
	Timeout time.Duration `env:"GUARDIAN_API_TIMEOUT" envDefault:"10s"`
}

// Sanitize normalises the base URL and enforces a sane request timeout.
func (c *APIConfig) Sanitize() {
	c.BaseURL = strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if c.BaseURL == "" {
		c.BaseURL = defaultAPIBaseURL
	}
	if c.Timeout <= 0 {
		c.Timeout = 10 * time.Second
	}
}
