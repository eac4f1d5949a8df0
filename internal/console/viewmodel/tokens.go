package viewmodel

import (
	"fmt"

	"github.com/guardian-sec/guardian-console/internal/domain/model"
)

// tokenEstimate is the fixed fallback shown for a phase before the pipeline
// reports authoritative counts.
type tokenEstimate struct {
	input  int
	output int
}

// stepEstimates keys fallback figures by exact phase name. Phases without an
// entry fall back to zero until real telemetry arrives.
var stepEstimates = map[string]tokenEstimate{
	"Ecosystem Detection": {input: 4000, output: 1500},
	"Remediation":         {input: 12000, output: 6000},
}

// Rendering markers for the job-table token column.
const (
	// TokensUnknownMarker renders while a scan is still in flight and no
	// authoritative total exists yet.
	TokensUnknownMarker = "—"
	// TokensUnreportedPlaceholder renders for terminal scans whose pipeline
	// never reported a total (older runs).
	TokensUnreportedPlaceholder = "n/a"
)

// EffectiveInput returns the input token count for a phase log, preferring
// the authoritative figure and falling back to the per-phase estimate. The
// switch from estimate to authoritative is silent: callers get one number
// and never learn which source produced it.
func EffectiveInput(log model.ScanLog) int {
	if log.TokensInput > 0 {
		return log.TokensInput
	}
	return stepEstimates[log.Step].input
}

// EffectiveOutput returns the output token count for a phase log, with the
// same authoritative-then-estimate rule as EffectiveInput.
func EffectiveOutput(log model.ScanLog) int {
	if log.TokensOutput > 0 {
		return log.TokensOutput
	}
	return stepEstimates[log.Step].output
}

// EffectiveTotal is always EffectiveInput + EffectiveOutput.
func EffectiveTotal(log model.ScanLog) int {
	return EffectiveInput(log) + EffectiveOutput(log)
}

// TotalTokens sums EffectiveTotal over all phase logs for one scan.
func TotalTokens(logs []model.ScanLog) int {
	total := 0
	for _, log := range logs {
		total += EffectiveTotal(log)
	}
	return total
}

// TokenSummary renders the job-table token figure: the scan's authoritative
// running total when it has one, a placeholder once the scan is terminal, an
// empty-value marker while still in flight.
func TokenSummary(scan model.ScanResult) string {
	if scan.TokensUsed > 0 {
		return FormatTokenCount(scan.TokensUsed)
	}
	if scan.Status.IsTerminal() {
		return TokensUnreportedPlaceholder
	}
	return TokensUnknownMarker
}

// FormatTokenCount renders a token count compactly ("950", "48.1k", "1.2M").
func FormatTokenCount(n int) string {
	switch {
	case n >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(n)/1_000_000)
	case n >= 1_000:
		return fmt.Sprintf("%.1fk", float64(n)/1_000)
	default:
		return fmt.Sprintf("%d", n)
	}
}

// LatestSteps collapses duplicate phase entries last-seen-wins while keeping
// first-occurrence order, which is how the log view displays a scan that
// re-ran a phase.
func LatestSteps(logs []model.ScanLog) []model.ScanLog {
	if len(logs) == 0 {
		return nil
	}
	index := make(map[string]int, len(logs))
	out := make([]model.ScanLog, 0, len(logs))
	for _, log := range logs {
		if i, seen := index[log.Step]; seen {
			out[i] = log
			continue
		}
		index[log.Step] = len(out)
		out = append(out, log)
	}
	return out
}
