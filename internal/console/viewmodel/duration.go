// Package viewmodel derives everything the console renders from snapshots of
// pipeline state. Every function here is pure: time is an argument, never a
// side effect, so the render loop can recompute on each clock tick and tests
// run without real timers.
package viewmodel

import (
	"fmt"
	"time"

	"github.com/guardian-sec/guardian-console/internal/domain/model"
)

// Elapsed computes how long a scan has been running at the given instant.
// Terminal scans freeze at ended-created; active scans grow with now; a
// terminal scan with no end timestamp (legacy rows) reads as zero. Clock skew
// never produces a negative duration.
func Elapsed(scan model.ScanResult, now time.Time) time.Duration {
	var d time.Duration
	switch {
	case scan.EndedAt != nil:
		d = scan.EndedAt.Sub(scan.CreatedAt)
	case scan.Status.IsActive():
		d = now.Sub(scan.CreatedAt)
	default:
		return 0
	}
	if d < 0 {
		return 0
	}
	return d
}

// Duration renders the elapsed time for a scan as zero-padded HH:MM:SS.
func Duration(scan model.ScanResult, now time.Time) string {
	return FormatElapsed(Elapsed(scan, now))
}

// FormatElapsed formats a duration as HH:MM:SS. Hours are not capped and can
// exceed 24.
func FormatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Second)
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}
