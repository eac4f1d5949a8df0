package config

import "time"

// PollerConfig controls the console's polling cadences. The scan table and
// the watched scan's logs poll the pipeline; the render tick only redraws
// durations locally.
type PollerConfig struct {
	// ListInterval is the background cadence for the scan table.
	ListInterval time.Duration `env:"GUARDIAN_POLL_LIST_INTERVAL" envDefault:"3s"`

	// LogInterval is the cadence for the inspected scan's phase logs.
	LogInterval time.Duration `env:"GUARDIAN_POLL_LOG_INTERVAL" envDefault:"3s"`

	// RenderInterval drives local redraws of elapsed durations.
	RenderInterval time.Duration `env:"GUARDIAN_RENDER_INTERVAL" envDefault:"1s"`
}

// Sanitize clamps the cadences so a misconfigured environment cannot hammer
// the pipeline or freeze the display.
func (c *PollerConfig) Sanitize() {
	if c.ListInterval < time.Second {
		c.ListInterval = 3 * time.Second
	}
	if c.LogInterval < time.Second {
		c.LogInterval = 3 * time.Second
	}
	if c.RenderInterval < 100*time.Millisecond {
		c.RenderInterval = time.Second
	}
}
