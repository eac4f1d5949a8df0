// Command guardian-console is a terminal console for the guardian scan
// pipeline. It mirrors pipeline state read-only: a live scan table by
// default, plus one-shot subcommand-style flags for logs, reports,
// submission, cancellation, and pipeline settings.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/guardian-sec/guardian-console/config"
	"github.com/guardian-sec/guardian-console/internal/api"
	"github.com/guardian-sec/guardian-console/internal/bootstrap"
	"github.com/guardian-sec/guardian-console/internal/console"
	"github.com/guardian-sec/guardian-console/internal/domain/model"
)

type cliFlags struct {
	logsScan   int
	reportScan int
	filter     string
	cancelScan int
	scanRepo   string
	targetURL  string
	token      string
	settings   bool
	set        string
	secret     bool
}

func parseFlags() cliFlags {
	var f cliFlags
	flag.IntVar(&f.logsScan, "logs", 0, "follow phase logs for the given scan id")
	flag.IntVar(&f.reportScan, "report", 0, "print the report for the given scan id and exit")
	flag.StringVar(&f.filter, "filter", "", "JMESPath expression applied to report findings, e.g. [?severity=='HIGH']")
	flag.IntVar(&f.cancelScan, "cancel", 0, "cancel the given scan id and exit")
	flag.StringVar(&f.scanRepo, "scan", "", "submit a scan for the given repository URL and exit")
	flag.StringVar(&f.targetURL, "target", "", "optional deployed-site URL for a submitted scan")
	flag.StringVar(&f.token, "token", "", "optional GitHub token passed through to the pipeline")
	flag.BoolVar(&f.settings, "settings", false, "list pipeline settings and exit")
	flag.StringVar(&f.set, "set", "", "update one pipeline setting as key=value and exit")
	flag.BoolVar(&f.secret, "secret", false, "mark the -set value as a secret")
	flag.Parse()
	return f
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "guardian-console:", err)
		os.Exit(1)
	}
	logger := bootstrap.InitLogger(cfg.Observability.LogLevel)

	if err := run(ctx, logger, cfg, parseFlags()); err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		logger.ErrorContext(ctx, "fatal error", "error", err)
		os.Exit(1) //nolint:forbidigo // Main entrypoint should exit with non-zero status on fatal errors.
	}
}

func run(ctx context.Context, logger *slog.Logger, cfg config.AppConfig, flags cliFlags) error {
	sink, err := bootstrap.NewMetricsSink(cfg.Observability.Metrics, logger)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := sink.Close(); cerr != nil {
			logger.ErrorContext(ctx, "close statsd failed", "error", cerr)
		}
	}()

	redisClient, err := bootstrap.ConnectRedis(ctx, cfg.Cache)
	if err != nil {
		return err
	}
	if redisClient != nil {
		defer func() {
			if cerr := redisClient.Close(); cerr != nil {
				logger.ErrorContext(ctx, "close redis failed", "error", cerr)
			}
		}()
	}

	pipeline, err := api.NewClient(api.Config{
		BaseURL: cfg.API.BaseURL,
		Timeout: cfg.API.Timeout,
		Logger:  logger,
	})
	if err != nil {
		return err
	}

	session := console.NewSession(console.SessionOptions{
		Pipeline: pipeline,
		Config: console.SessionConfig{
			ListInterval: cfg.Poller.ListInterval,
			LogInterval:  cfg.Poller.LogInterval,
		},
		Cache:   bootstrap.NewReportCache(cfg.Cache, redisClient),
		Logger:  logger,
		Metrics: sink,
	})
	defer session.Close()

	switch {
	case flags.scanRepo != "":
		return submitScan(ctx, session, flags)
	case flags.cancelScan > 0:
		return session.Cancels.Cancel(ctx, flags.cancelScan)
	case flags.reportScan > 0:
		return printReport(ctx, session, flags.reportScan, flags.filter)
	case flags.settings:
		return printSettings(ctx, session)
	case flags.set != "":
		return updateSetting(ctx, session, flags.set, flags.secret)
	case flags.logsScan > 0:
		return followLogs(ctx, session, cfg.Poller.RenderInterval, flags.logsScan)
	default:
		return followTable(ctx, session, cfg.Poller.RenderInterval)
	}
}

func submitScan(ctx context.Context, session *console.Session, flags cliFlags) error {
	resp, err := session.StartScan(ctx, api.StartScanRequest{
		RepoURL:     flags.scanRepo,
		TargetURL:   flags.targetURL,
		GithubToken: flags.token,
	})
	if err != nil {
		return err
	}
	fmt.Printf("scan %d submitted (%s)\n", resp.ScanID, resp.Status)
	return nil
}

func updateSetting(ctx context.Context, session *console.Session, kv string, secret bool) error {
	key, value, ok := strings.Cut(kv, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return errors.New("-set expects key=value")
	}
	entry := model.ConfigEntry{Key: key, Value: value, IsSecret: secret}
	if err := session.UpdateSetting(ctx, entry); err != nil {
		return err
	}
	fmt.Printf("setting %s updated\n", key)
	return nil
}

// followTable runs the list poller and redraws the scan table until
// interrupted.
func followTable(ctx context.Context, session *console.Session, interval time.Duration) error {
	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error { return session.Run(ctx) })
	group.Go(func() error { return renderLoop(ctx, interval, func() { renderTable(os.Stdout, session) }) })
	return group.Wait()
}

// followLogs watches one scan's phase logs and redraws them until
// interrupted.
func followLogs(ctx context.Context, session *console.Session, interval time.Duration, scanID int) error {
	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error { return session.Run(ctx) })
	session.Logs.Watch(ctx, scanID)
	group.Go(func() error { return renderLoop(ctx, interval, func() { renderLogs(os.Stdout, session, scanID) }) })
	return group.Wait()
}
