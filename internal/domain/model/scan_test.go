package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScanStatus_Normalises(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected ScanStatus
	}{
		{name: "lowercase passthrough", input: "pending", expected: ScanStatusPending},
		{name: "uppercase", input: "FINISHED", expected: ScanStatusFinished},
		{name: "mixed case with spaces", input: "  Queued ", expected: ScanStatusQueued},
		{name: "unknown preserved", input: "Paused", expected: ScanStatus("paused")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseScanStatus(tt.input))
		})
	}
}

func TestScanStatus_Classification(t *testing.T) {
	active := []ScanStatus{ScanStatusPending, ScanStatusQueued, ScanStatusRunning}
	terminal := []ScanStatus{ScanStatusFinished, ScanStatusFailed, ScanStatusCancelled}

	for _, s := range active {
		assert.True(t, s.IsActive(), "%s should be active", s)
		assert.False(t, s.IsTerminal(), "%s should not be terminal", s)
		assert.True(t, s.Valid())
	}
	for _, s := range terminal {
		assert.True(t, s.IsTerminal(), "%s should be terminal", s)
		assert.False(t, s.IsActive(), "%s should not be active", s)
		assert.True(t, s.Valid())
	}

	unknown := ScanStatus("paused")
	assert.False(t, unknown.IsActive())
	assert.False(t, unknown.IsTerminal())
	assert.False(t, unknown.Valid())
}

func TestScanStatus_Cancellable(t *testing.T) {
	assert.True(t, ScanStatusPending.Cancellable())
	assert.True(t, ScanStatusQueued.Cancellable())
	assert.False(t, ScanStatusRunning.Cancellable())
	assert.False(t, ScanStatusFinished.Cancellable())
}

func TestScanResult_UnmarshalNormalisesStatus(t *testing.T) {
	payload := `{
		"id": 7,
		"repo": "https://github.com/acme/shop",
		"status": "Pending",
		"created_at": "2026-02-22T04:07:03Z",
		"tokens_used": 0
	}`

	var scan ScanResult
	require.NoError(t, json.Unmarshal([]byte(payload), &scan))

	assert.Equal(t, 7, scan.ID)
	assert.Equal(t, ScanStatusPending, scan.Status)
	assert.Nil(t, scan.EndedAt)
	assert.Equal(t, time.Date(2026, 2, 22, 4, 7, 3, 0, time.UTC), scan.CreatedAt)
}
