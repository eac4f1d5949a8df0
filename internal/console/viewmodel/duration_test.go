package viewmodel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/guardian-sec/guardian-console/internal/domain/model"
	"github.com/guardian-sec/guardian-console/internal/testutil"
)

func TestDuration_PendingScanTracksClock(t *testing.T) {
	created := testutil.BaseTime()
	scan := testutil.NewScanResult().
		WithStatus(model.ScanStatusPending).
		WithCreatedAt(created).
		Build()

	assert.Equal(t, "00:01:05", Duration(scan, created.Add(65*time.Second)))
	assert.Equal(t, "00:00:00", Duration(scan, created))
}

func TestDuration_TerminalScanIgnoresNow(t *testing.T) {
	created := testutil.BaseTime()
	ended := created.Add(9*time.Minute + 30*time.Second)
	scan := testutil.NewScanResult().
		WithStatus(model.ScanStatusFinished).
		WithCreatedAt(created).
		WithEndedAt(ended).
		Build()

	frozen := Duration(scan, ended)
	assert.Equal(t, "00:09:30", frozen)
	assert.Equal(t, frozen, Duration(scan, ended.Add(48*time.Hour)))
	assert.Equal(t, frozen, Duration(scan, created))
}

func TestDuration_NonDecreasingWhileActive(t *testing.T) {
	created := testutil.BaseTime()
	scan := testutil.NewScanResult().
		WithStatus(model.ScanStatusQueued).
		WithCreatedAt(created).
		Build()

	prev := Elapsed(scan, created)
	for i := 1; i <= 10; i++ {
		now := created.Add(time.Duration(i) * 7 * time.Second)
		cur := Elapsed(scan, now)
		assert.GreaterOrEqual(t, cur, prev)
		assert.GreaterOrEqual(t, cur, time.Duration(0))
		prev = cur
	}
}

func TestDuration_ClockSkewClampsToZero(t *testing.T) {
	created := testutil.BaseTime()
	scan := testutil.NewScanResult().
		WithStatus(model.ScanStatusPending).
		WithCreatedAt(created).
		Build()

	assert.Equal(t, "00:00:00", Duration(scan, created.Add(-5*time.Second)))
}

func TestDuration_TerminalWithoutEndReadsZero(t *testing.T) {
	scan := testutil.NewScanResult().
		WithStatus(model.ScanStatusFailed).
		WithCreatedAt(testutil.BaseTime()).
		Build()

	assert.Equal(t, "00:00:00", Duration(scan, testutil.BaseTime().Add(time.Hour)))
}

func TestFormatElapsed_HoursUncapped(t *testing.T) {
	assert.Equal(t, "27:04:09", FormatElapsed(27*time.Hour+4*time.Minute+9*time.Second))
	assert.Equal(t, "00:00:00", FormatElapsed(-time.Second))
}
