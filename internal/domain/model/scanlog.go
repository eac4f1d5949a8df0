package model

import "time"

// ScanLog is one phase-level telemetry entry for a scan. The pipeline emits
// one entry per executed phase; duplicate steps are possible and the display
// layer resolves them last-seen-wins.
//
// A zero token count means "not reported yet", not "zero cost": the token
// ledger substitutes per-step estimates until real numbers arrive.
type ScanLog struct {
	ScanID       int       `json:"scan_id"`
	Step         string    `json:"step"`
	TokensInput  int       `json:"tokens_input"`
	TokensOutput int       `json:"tokens_output"`
	TokensTotal  int       `json:"tokens_total"`
	Model        string    `json:"model"`
	Message      string    `json:"message"`
	Timestamp    time.Time `json:"timestamp"`
}
