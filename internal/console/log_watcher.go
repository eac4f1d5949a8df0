package console

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/guardian-sec/guardian-console/internal/api"
	"github.com/guardian-sec/guardian-console/internal/domain/model"
	"github.com/guardian-sec/guardian-console/internal/observability/metrics"
	"github.com/guardian-sec/guardian-console/internal/observability/statsd"
)

// DefaultLogInterval is the polling cadence for the inspected scan's logs.
const DefaultLogInterval = 3 * time.Second

// LogSnapshot is a point-in-time copy of the watched scan's phase logs.
type LogSnapshot struct {
	// ScanID is the currently inspected scan, 0 when nothing is watched.
	ScanID int
	Logs   []model.ScanLog
}

// LogWatcherOptions holds the dependencies for creating a LogWatcher.
type LogWatcherOptions struct {
	Pipeline api.Pipeline
	Interval time.Duration
	Logger   *slog.Logger
	Metrics  statsd.Sink
}

// LogWatcher polls phase-level telemetry for exactly one inspected scan.
// Switching scans cancels the previous poll loop before starting a new one;
// unwatching stops polling entirely.
type LogWatcher struct {
	pipeline api.Pipeline
	interval time.Duration
	logger   *slog.Logger
	metrics  statsd.Sink

	mu      sync.RWMutex
	watched int
	cancel  context.CancelFunc
	logs    []model.ScanLog
}

// NewLogWatcher creates a log watcher. The pipeline is required.
func NewLogWatcher(opts LogWatcherOptions) *LogWatcher {
	if opts.Pipeline == nil {
		panic("console: pipeline is required")
	}
	interval := opts.Interval
	if interval <= 0 {
		interval = DefaultLogInterval
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &LogWatcher{
		pipeline: opts.Pipeline,
		interval: interval,
		logger:   logger,
		metrics:  opts.Metrics,
	}
}

// Watch starts polling logs for the given scan, replacing any previous
// watch. The initial fetch happens before Watch returns so the first render
// after selecting a scan sees either its logs or an explicit empty state.
func (w *LogWatcher) Watch(ctx context.Context, scanID int) {
	w.Unwatch()

	watchCtx, cancel := context.WithCancel(ctx)

	w.mu.Lock()
	w.watched = scanID
	w.cancel = cancel
	w.logs = nil
	w.mu.Unlock()

	w.poll(watchCtx, scanID, true)

	go w.run(watchCtx, scanID)
}

// Unwatch stops polling and clears the log list.
func (w *LogWatcher) Unwatch() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.watched = 0
	w.logs = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}

// Snapshot returns the inspected scan id and a copy of its logs.
func (w *LogWatcher) Snapshot() LogSnapshot {
	w.mu.RLock()
	defer w.mu.RUnlock()

	logs := make([]model.ScanLog, len(w.logs))
	copy(logs, w.logs)
	return LogSnapshot{ScanID: w.watched, Logs: logs}
}

func (w *LogWatcher) run(ctx context.Context, scanID int) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.poll(ctx, scanID, false)
		}
	}
}

// poll fetches the watched scan's logs once. The initial fetch clears the
// list on failure so the operator sees "no logs" instead of another scan's
// stale entries; later failures keep the last good list.
func (w *LogWatcher) poll(ctx context.Context, scanID int, initial bool) {
	logs, err := w.pipeline.ScanLogs(ctx, scanID)
	w.emitTick(err)

	w.mu.Lock()
	defer w.mu.Unlock()

	// The watch moved on while this fetch was in flight.
	if w.watched != scanID {
		return
	}

	if err != nil {
		if initial {
			w.logs = nil
		}
		w.logger.Debug("scan log poll failed", "scan_id", scanID, "initial", initial, "error", err)
		return
	}
	w.logs = logs
}

func (w *LogWatcher) emitTick(err error) {
	if w.metrics == nil {
		return
	}
	result := metrics.ResultSuccess
	if err != nil {
		result = metrics.ResultError
	}
	w.metrics.Count(metrics.LogPollTick, 1, map[string]string{"result": result})
}
