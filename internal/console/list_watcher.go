// Package console holds the client-side state-synchronisation layer: the
// pollers that mirror pipeline state, the cancel controller, and the report
// loader. Each watcher exclusively owns its state and replaces it wholesale
// on every successful fetch. There is no field-level merging, so the mirror
// can lag the pipeline but never diverge from it.
package console

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/guardian-sec/guardian-console/internal/api"
	"github.com/guardian-sec/guardian-console/internal/domain/model"
	"github.com/guardian-sec/guardian-console/internal/observability/metrics"
	"github.com/guardian-sec/guardian-console/internal/observability/statsd"
)

// DefaultListInterval is the background cadence for the scan table.
const DefaultListInterval = 3 * time.Second

// ListSnapshot is a point-in-time copy of the watcher's state for rendering.
type ListSnapshot struct {
	Scans []model.ScanResult
	// Loading is set only during a user-initiated refresh.
	Loading bool
	// Err holds the outcome of the last user-initiated refresh. Background
	// refresh failures never surface here.
	Err error
}

// ListWatcherOptions holds the dependencies for creating a ListWatcher.
type ListWatcherOptions struct {
	Pipeline api.Pipeline
	Interval time.Duration
	Logger   *slog.Logger
	Metrics  statsd.Sink
}

// ListWatcher maintains the authoritative in-memory scan table by polling
// GET /scans. A scan absent from a later fetch is gone from the table.
type ListWatcher struct {
	pipeline api.Pipeline
	interval time.Duration
	logger   *slog.Logger
	metrics  statsd.Sink

	// seq orders fetches so a slow response can never overwrite the result
	// of a later one.
	seq atomic.Uint64

	mu      sync.RWMutex
	applied uint64
	scans   []model.ScanResult
	loading bool
	lastErr error
}

// NewListWatcher creates a list watcher. The pipeline is required.
func NewListWatcher(opts ListWatcherOptions) *ListWatcher {
	if opts.Pipeline == nil {
		panic("console: pipeline is required")
	}
	interval := opts.Interval
	if interval <= 0 {
		interval = DefaultListInterval
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &ListWatcher{
		pipeline: opts.Pipeline,
		interval: interval,
		logger:   logger,
		metrics:  opts.Metrics,
	}
}

// Refresh fetches the scan table once. A non-silent refresh drives the
// loading flag and records the outcome for the operator; a silent refresh
// touches neither flag and swallows failures, keeping the last good table.
func (w *ListWatcher) Refresh(ctx context.Context, silent bool) error {
	seq := w.seq.Add(1)

	if !silent {
		w.mu.Lock()
		w.loading = true
		w.mu.Unlock()
	}

	start := time.Now()
	scans, err := w.pipeline.ListScans(ctx)
	w.emitTick(time.Since(start), seq, err)

	w.mu.Lock()
	defer w.mu.Unlock()

	// A newer fetch was issued while this one was in flight: its result is
	// stale no matter what it says. The user-facing flags still resolve; only
	// the table data is discarded.
	if seq < w.seq.Load() || seq <= w.applied {
		if !silent {
			w.loading = false
		}
		return nil
	}
	w.applied = seq

	if err != nil {
		if !silent {
			w.loading = false
			w.lastErr = err
		}
		return err
	}

	w.scans = scans
	if !silent {
		w.loading = false
		w.lastErr = nil
	}
	return nil
}

// Run performs an initial user-visible refresh and then polls silently at
// the configured interval until the context is cancelled.
func (w *ListWatcher) Run(ctx context.Context) error {
	if err := w.Refresh(ctx, false); err != nil {
		w.logger.DebugContext(ctx, "initial scan list refresh failed", "error", err)
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.Canceled) {
				return nil
			}
			return ctx.Err()
		case <-ticker.C:
			if err := w.Refresh(ctx, true); err != nil {
				w.logger.DebugContext(ctx, "background scan list refresh failed", "error", err)
			}
		}
	}
}

// Snapshot returns a copy of the current table and refresh state.
func (w *ListWatcher) Snapshot() ListSnapshot {
	w.mu.RLock()
	defer w.mu.RUnlock()

	scans := make([]model.ScanResult, len(w.scans))
	copy(scans, w.scans)
	return ListSnapshot{Scans: scans, Loading: w.loading, Err: w.lastErr}
}

// Scan looks up one scan from the current table.
func (w *ListWatcher) Scan(id int) (model.ScanResult, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	for _, scan := range w.scans {
		if scan.ID == id {
			return scan, true
		}
	}
	return model.ScanResult{}, false
}

func (w *ListWatcher) emitTick(elapsed time.Duration, seq uint64, err error) {
	if w.metrics == nil {
		return
	}
	result := metrics.ResultSuccess
	switch {
	case err != nil:
		result = metrics.ResultError
	case seq < w.seq.Load():
		result = metrics.ResultStale
	}
	tags := map[string]string{"result": result}
	w.metrics.Count(metrics.ListPollTick, 1, tags)
	w.metrics.Timing(metrics.ListPollDuration, elapsed, metrics.CloneTags(tags))
}
