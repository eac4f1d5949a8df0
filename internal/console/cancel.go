package console

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/guardian-sec/guardian-console/internal/api"
	"github.com/guardian-sec/guardian-console/internal/observability/metrics"
	"github.com/guardian-sec/guardian-console/internal/observability/statsd"
)

// CancelControllerOptions holds the dependencies for creating a
// CancelController.
type CancelControllerOptions struct {
	Pipeline api.Pipeline
	List     *ListWatcher
	Logger   *slog.Logger
	Metrics  statsd.Sink
}

// CancelController issues cancel requests and makes the table reflect the
// new status without waiting for the next poll tick.
type CancelController struct {
	pipeline api.Pipeline
	list     *ListWatcher
	logger   *slog.Logger
	metrics  statsd.Sink
}

// NewCancelController creates a cancel controller. Pipeline and list watcher
// are required.
func NewCancelController(opts CancelControllerOptions) *CancelController {
	if opts.Pipeline == nil {
		panic("console: pipeline is required")
	}
	if opts.List == nil {
		panic("console: list watcher is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &CancelController{
		pipeline: opts.Pipeline,
		list:     opts.List,
		logger:   logger,
		metrics:  opts.Metrics,
	}
}

// Cancel asks the pipeline to cancel a scan. Callers only offer this while
// the scan is pending or queued; the controller does not re-check that
// precondition. On success the scan table is silently refreshed right away;
// on failure the error is returned for a blocking surface and no state
// changes.
func (c *CancelController) Cancel(ctx context.Context, scanID int) error {
	if err := c.pipeline.CancelScan(ctx, scanID); err != nil {
		c.emit(metrics.ResultError)
		return fmt.Errorf("cancel scan %d: %w", scanID, err)
	}

	c.emit(metrics.ResultSuccess)
	c.logger.InfoContext(ctx, "scan cancelled", "scan_id", scanID)

	// Immediate silent refresh; a failure here just means the next poll tick
	// picks the status change up instead.
	if err := c.list.Refresh(ctx, true); err != nil {
		c.logger.DebugContext(ctx, "post-cancel refresh failed", "scan_id", scanID, "error", err)
	}
	return nil
}

func (c *CancelController) emit(result string) {
	if c.metrics == nil {
		return
	}
	c.metrics.Count(metrics.ScanCancel, 1, map[string]string{"result": result})
}
