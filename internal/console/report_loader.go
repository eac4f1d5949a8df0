package console

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"golang.org/x/sync/singleflight"

	"github.com/guardian-sec/guardian-console/internal/api"
	"github.com/guardian-sec/guardian-console/internal/cache"
	"github.com/guardian-sec/guardian-console/internal/domain/model"
	"github.com/guardian-sec/guardian-console/internal/observability/metrics"
	"github.com/guardian-sec/guardian-console/internal/observability/statsd"
)

// ReportLoaderOptions holds the dependencies for creating a ReportLoader.
type ReportLoaderOptions struct {
	Pipeline api.Pipeline
	Cache    cache.ReportCache
	Logger   *slog.Logger
	Metrics  statsd.Sink
}

// ReportLoader fetches report envelopes on demand. Reports are never polled:
// one fetch per open, collapsed across concurrent opens of the same scan,
// with an optional short-TTL cache in front.
type ReportLoader struct {
	pipeline api.Pipeline
	cache    cache.ReportCache
	logger   *slog.Logger
	metrics  statsd.Sink
	group    singleflight.Group
}

// NewReportLoader creates a report loader. The pipeline is required; the
// cache is optional.
func NewReportLoader(opts ReportLoaderOptions) *ReportLoader {
	if opts.Pipeline == nil {
		panic("console: pipeline is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &ReportLoader{
		pipeline: opts.Pipeline,
		cache:    opts.Cache,
		logger:   logger,
		metrics:  opts.Metrics,
	}
}

// Load fetches one scan's report envelope. On failure the report is nil and
// the error describes why; the view layer renders nil as "not generated
// yet" plus the error surface for user-initiated opens.
func (l *ReportLoader) Load(ctx context.Context, scanID int) (*model.ScanReport, error) {
	if l.cache != nil {
		if report, ok := l.cache.Get(ctx, scanID); ok {
			l.emitLoad("cache")
			return report, nil
		}
	}

	v, err, _ := l.group.Do(strconv.Itoa(scanID), func() (any, error) {
		return l.pipeline.ScanReport(ctx, scanID)
	})
	if err != nil {
		l.emitLoad("error")
		return nil, fmt.Errorf("load report for scan %d: %w", scanID, err)
	}

	report, _ := v.(*model.ScanReport)
	if l.cache != nil && report != nil {
		l.cache.Set(ctx, scanID, report)
	}
	l.emitLoad("fetch")
	return report, nil
}

func (l *ReportLoader) emitLoad(source string) {
	if l.metrics == nil {
		return
	}
	l.metrics.Count(metrics.ReportLoad, 1, map[string]string{"source": source})
}
