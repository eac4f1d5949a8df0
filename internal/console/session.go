package console

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/guardian-sec/guardian-console/internal/api"
	"github.com/guardian-sec/guardian-console/internal/cache"
	"github.com/guardian-sec/guardian-console/internal/domain/model"
	"github.com/guardian-sec/guardian-console/internal/observability/statsd"
)

// SessionConfig groups the polling cadences for one console session.
type SessionConfig struct {
	ListInterval time.Duration
	LogInterval  time.Duration
}

// SessionOptions holds the dependencies for creating a Session.
type SessionOptions struct {
	Pipeline api.Pipeline
	Config   SessionConfig
	Clock    Clock
	Cache    cache.ReportCache
	Logger   *slog.Logger
	Metrics  statsd.Sink
}

// Session owns all mutable console state for one view instance: the scan
// table, the single watched scan, and the report loader. Nothing here is
// process-global, so two sessions against different pipelines never share
// state.
type Session struct {
	pipeline api.Pipeline
	clock    Clock
	logger   *slog.Logger

	List    *ListWatcher
	Logs    *LogWatcher
	Reports *ReportLoader
	Cancels *CancelController
	Filter  *FindingsFilter
}

// NewSession wires a session from its options. The pipeline is required;
// everything else has working defaults.
func NewSession(opts SessionOptions) *Session {
	if opts.Pipeline == nil {
		panic("console: pipeline is required")
	}
	clock := opts.Clock
	if clock == nil {
		clock = RealClock{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	list := NewListWatcher(ListWatcherOptions{
		Pipeline: opts.Pipeline,
		Interval: opts.Config.ListInterval,
		Logger:   logger,
		Metrics:  opts.Metrics,
	})

	return &Session{
		pipeline: opts.Pipeline,
		clock:    clock,
		logger:   logger,
		List:     list,
		Logs: NewLogWatcher(LogWatcherOptions{
			Pipeline: opts.Pipeline,
			Interval: opts.Config.LogInterval,
			Logger:   logger,
			Metrics:  opts.Metrics,
		}),
		Reports: NewReportLoader(ReportLoaderOptions{
			Pipeline: opts.Pipeline,
			Cache:    opts.Cache,
			Logger:   logger,
			Metrics:  opts.Metrics,
		}),
		Cancels: NewCancelController(CancelControllerOptions{
			Pipeline: opts.Pipeline,
			List:     list,
			Logger:   logger,
			Metrics:  opts.Metrics,
		}),
		Filter: NewFindingsFilter(nil),
	}
}

// Now returns the session clock's current instant for duration rendering.
func (s *Session) Now() time.Time {
	return s.clock.Now()
}

// Run drives the session's background polling until the context is
// cancelled. The log watcher is driven separately by Watch/Unwatch.
func (s *Session) Run(ctx context.Context) error {
	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error { return s.List.Run(ctx) })
	return group.Wait()
}

// Close stops any per-scan polling still running.
func (s *Session) Close() {
	s.Logs.Unwatch()
}

// StartScan submits a new scan and immediately refreshes the table silently
// so the new row appears without waiting for the next tick.
func (s *Session) StartScan(ctx context.Context, req api.StartScanRequest) (*api.StartScanResponse, error) {
	resp, err := s.pipeline.StartScan(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("start scan: %w", err)
	}
	if rerr := s.List.Refresh(ctx, true); rerr != nil {
		// Next poll tick picks the new row up instead.
		s.logger.DebugContext(ctx, "post-submit refresh failed", "error", rerr)
	}
	return resp, nil
}

// Settings fetches the pipeline's key/value configuration.
func (s *Session) Settings(ctx context.Context) ([]model.ConfigEntry, error) {
	return s.pipeline.Settings(ctx)
}

// UpdateSetting writes one key/value setting.
func (s *Session) UpdateSetting(ctx context.Context, entry model.ConfigEntry) error {
	return s.pipeline.UpdateSetting(ctx, entry)
}
