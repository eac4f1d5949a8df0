// Package testutil provides builders and clock helpers shared by the
// console's tests.
package testutil

import (
	"time"

	"github.com/guardian-sec/guardian-console/internal/domain/model"
)

// BaseTime returns a fixed reference instant tests build timelines from.
func BaseTime() time.Time {
	return time.Date(2026, 2, 22, 4, 7, 3, 0, time.UTC)
}

// ScanResultBuilder provides a fluent interface for building ScanResult
// snapshots for testing.
type ScanResultBuilder struct {
	scan model.ScanResult
}

// NewScanResult creates a builder with sensible defaults: a pending scan
// created at BaseTime with no telemetry yet.
func NewScanResult() *ScanResultBuilder {
	return &ScanResultBuilder{
		scan: model.ScanResult{
			ID:        1,
			Repo:      "https://github.com/acme/shop",
			Status:    model.ScanStatusPending,
			CreatedAt: BaseTime(),
		},
	}
}

// WithID sets the scan id.
func (b *ScanResultBuilder) WithID(id int) *ScanResultBuilder {
	b.scan.ID = id
	return b
}

// WithRepo sets the source repository identifier.
func (b *ScanResultBuilder) WithRepo(repo string) *ScanResultBuilder {
	b.scan.Repo = repo
	return b
}

// WithStatus sets the scan status.
func (b *ScanResultBuilder) WithStatus(status model.ScanStatus) *ScanResultBuilder {
	b.scan.Status = status
	return b
}

// WithCreatedAt sets the creation timestamp.
func (b *ScanResultBuilder) WithCreatedAt(t time.Time) *ScanResultBuilder {
	b.scan.CreatedAt = t
	return b
}

// WithEndedAt sets the end timestamp.
func (b *ScanResultBuilder) WithEndedAt(t time.Time) *ScanResultBuilder {
	b.scan.EndedAt = &t
	return b
}

// WithTokensUsed sets the authoritative running token total.
func (b *ScanResultBuilder) WithTokensUsed(tokens int) *ScanResultBuilder {
	b.scan.TokensUsed = tokens
	return b
}

// Build returns the constructed scan.
func (b *ScanResultBuilder) Build() model.ScanResult {
	return b.scan
}

// ScanLogBuilder provides a fluent interface for building ScanLog entries.
type ScanLogBuilder struct {
	log model.ScanLog
}

// NewScanLog creates a builder with defaults: an unreported Scanner phase.
func NewScanLog() *ScanLogBuilder {
	return &ScanLogBuilder{
		log: model.ScanLog{
			ScanID:    1,
			Step:      "Scanner",
			Model:     "gemini-2.5-flash",
			Timestamp: BaseTime(),
		},
	}
}

// WithScanID sets the owning scan id.
func (b *ScanLogBuilder) WithScanID(id int) *ScanLogBuilder {
	b.log.ScanID = id
	return b
}

// WithStep sets the phase name.
func (b *ScanLogBuilder) WithStep(step string) *ScanLogBuilder {
	b.log.Step = step
	return b
}

// WithTokens sets the authoritative input/output counts. Zero means the
// pipeline has not reported yet.
func (b *ScanLogBuilder) WithTokens(input, output int) *ScanLogBuilder {
	b.log.TokensInput = input
	b.log.TokensOutput = output
	b.log.TokensTotal = input + output
	return b
}

// WithMessage sets the free-text message.
func (b *ScanLogBuilder) WithMessage(message string) *ScanLogBuilder {
	b.log.Message = message
	return b
}

// WithTimestamp sets the entry timestamp.
func (b *ScanLogBuilder) WithTimestamp(t time.Time) *ScanLogBuilder {
	b.log.Timestamp = t
	return b
}

// Build returns the constructed log entry.
func (b *ScanLogBuilder) Build() model.ScanLog {
	return b.log
}
