// Package metrics holds shared metric names and tag conventions for the
// console's pollers.
package metrics

// Result constants for metric tagging.
const (
	ResultSuccess = "success"
	ResultError   = "error"
	ResultStale   = "stale"
)

// Metric names emitted by the pollers.
const (
	ListPollTick     = "list_poll.tick"
	ListPollDuration = "list_poll.duration"
	LogPollTick      = "log_poll.tick"
	ReportLoad       = "report.load"
	ScanCancel       = "scan.cancel"
)

// CloneTags creates a shallow copy of a tag map so a second emission cannot
// observe mutations made after the first.
func CloneTags(src map[string]string) map[string]string {
	if len(src) == 0 {
		return nil
	}
	out := make(map[string]string, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}
