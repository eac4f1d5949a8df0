// Package model defines the data types mirrored from the guardian scan pipeline.
//
// The console never owns these records: every value is a snapshot of what the
// remote pipeline reported on the last poll, replaced wholesale on each tick.
package model

import (
	"strings"
	"time"
)

// ScanStatus represents the lifecycle state of a scan as reported by the
// pipeline. The pipeline writes free-form strings; the console normalises
// them to lowercase and treats anything outside the known set as neither
// active nor terminal.
type ScanStatus string

const (
	// ScanStatusPending indicates the scan has been accepted but not picked up.
	ScanStatusPending ScanStatus = "pending"
	// ScanStatusQueued indicates the scan is waiting on a worker slot.
	ScanStatusQueued ScanStatus = "queued"
	// ScanStatusRunning indicates the pipeline is actively executing the scan.
	ScanStatusRunning ScanStatus = "running"
	// ScanStatusFinished indicates the pipeline completed all phases.
	ScanStatusFinished ScanStatus = "finished"
	// ScanStatusFailed indicates the pipeline aborted with an error.
	ScanStatusFailed ScanStatus = "failed"
	// ScanStatusCancelled indicates the scan was cancelled by an operator.
	ScanStatusCancelled ScanStatus = "cancelled"
)

// ParseScanStatus normalises a pipeline-reported status string. Unknown
// values are preserved (lowercased) rather than rejected so a newer pipeline
// does not break the console.
func ParseScanStatus(s string) ScanStatus {
	return ScanStatus(strings.ToLower(strings.TrimSpace(s)))
}

// UnmarshalText implements encoding.TextUnmarshaler so JSON decoding
// normalises status strings in place.
func (s *ScanStatus) UnmarshalText(text []byte) error {
	*s = ParseScanStatus(string(text))
	return nil
}

// Valid returns true if the status is one of the known pipeline states.
func (s ScanStatus) Valid() bool {
	switch s {
	case ScanStatusPending, ScanStatusQueued, ScanStatusRunning,
		ScanStatusFinished, ScanStatusFailed, ScanStatusCancelled:
		return true
	default:
		return false
	}
}

// IsActive returns true while the pipeline may still transition the scan.
func (s ScanStatus) IsActive() bool {
	return s == ScanStatusPending || s == ScanStatusQueued || s == ScanStatusRunning
}

// IsTerminal returns true once no further transitions can occur.
func (s ScanStatus) IsTerminal() bool {
	return s == ScanStatusFinished || s == ScanStatusFailed || s == ScanStatusCancelled
}

// Cancellable returns true while a cancel request is meaningful.
func (s ScanStatus) Cancellable() bool {
	return s == ScanStatusPending || s == ScanStatusQueued
}

// ScanResult is one scan run tracked by the pipeline.
//
// Invariant (owned by the pipeline, relied on here): EndedAt is nil while the
// status is non-terminal, and fixed forever once the status turns terminal.
type ScanResult struct {
	ID         int        `json:"id"`
	Repo       string     `json:"repo"`
	Status     ScanStatus `json:"status"`
	CreatedAt  time.Time  `json:"created_at"`
	EndedAt    *time.Time `json:"ended_at,omitempty"`
	TokensUsed int        `json:"tokens_used"`
}
