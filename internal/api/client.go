// Package api implements the HTTP client for the guardian scan pipeline.
//
// The pipeline is the single source of truth for scans, phase logs, and
// reports; this client only reads that state and issues the two write
// operations the console supports (start and cancel).
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/guardian-sec/guardian-console/internal/domain/model"
	apperrors "github.com/guardian-sec/guardian-console/internal/errors"
)

// DefaultBaseURL is the pipeline origin used when none is configured.
const DefaultBaseURL = "http://localhost:8000"

const maxErrorBodyBytes = 2048

// Pipeline describes the remote job system the console observes. Services
// depend on this interface, never on the concrete client.
type Pipeline interface {
	StartScan(ctx context.Context, req StartScanRequest) (*StartScanResponse, error)
	ListScans(ctx context.Context) ([]model.ScanResult, error)
	CancelScan(ctx context.Context, id int) error
	ScanLogs(ctx context.Context, id int) ([]model.ScanLog, error)
	ScanReport(ctx context.Context, id int) (*model.ScanReport, error)
	Settings(ctx context.Context) ([]model.ConfigEntry, error)
	UpdateSetting(ctx context.Context, entry model.ConfigEntry) error
}

// StartScanRequest carries the parameters for submitting a new scan. The
// GitHub token is an opaque pass-through; the console never stores it.
type StartScanRequest struct {
	RepoURL     string
	TargetURL   string
	GithubToken string
}

// StartScanResponse is the pipeline's acknowledgement of a submitted scan.
type StartScanResponse struct {
	ScanID int    `json:"scan_id"`
	Status string `json:"status"`
}

// Config captures runtime configuration for the pipeline client.
type Config struct {
	BaseURL string
	Timeout time.Duration
	Client  *http.Client
	Logger  *slog.Logger
}

// Client talks to the pipeline API over HTTP.
type Client struct {
	baseURL string
	client  *http.Client
	logger  *slog.Logger
}

var _ Pipeline = (*Client)(nil)

// NewClient constructs a pipeline client from config.
func NewClient(cfg Config) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		base = DefaultBaseURL
	}
	if _, err := url.Parse(base); err != nil {
		return nil, fmt.Errorf("parse pipeline base url: %w", err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	hc := cfg.Client
	if hc == nil {
		hc = &http.Client{Timeout: timeout}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{baseURL: base, client: hc, logger: logger}, nil
}

// StartScan submits a new scan run.
func (c *Client) StartScan(ctx context.Context, req StartScanRequest) (*StartScanResponse, error) {
	repo := strings.TrimSpace(req.RepoURL)
	if repo == "" {
		return nil, apperrors.Validation("repo url is required")
	}

	query := url.Values{}
	query.Set("repo_url", repo)
	if req.TargetURL != "" {
		query.Set("target_url", req.TargetURL)
	}
	if req.GithubToken != "" {
		query.Set("github_token", req.GithubToken)
	}

	var out StartScanResponse
	if err := c.do(ctx, http.MethodPost, "/scan", query, &out); err != nil {
		return nil, fmt.Errorf("start scan: %w", err)
	}
	return &out, nil
}

// ListScans fetches the full scan table.
func (c *Client) ListScans(ctx context.Context) ([]model.ScanResult, error) {
	var out []model.ScanResult
	if err := c.do(ctx, http.MethodGet, "/scans", nil, &out); err != nil {
		return nil, fmt.Errorf("list scans: %w", err)
	}
	return out, nil
}

// CancelScan asks the pipeline to cancel a scan. Only meaningful while the
// scan is still pending or queued; callers enforce that precondition.
func (c *Client) CancelScan(ctx context.Context, id int) error {
	path := "/scans/" + strconv.Itoa(id) + "/cancel"
	if err := c.do(ctx, http.MethodPost, path, nil, nil); err != nil {
		return fmt.Errorf("cancel scan %d: %w", id, err)
	}
	return nil
}

// ScanLogs fetches the phase-level telemetry log for one scan.
func (c *Client) ScanLogs(ctx context.Context, id int) ([]model.ScanLog, error) {
	var out []model.ScanLog
	path := "/scans/" + strconv.Itoa(id) + "/logs"
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, fmt.Errorf("scan %d logs: %w", id, err)
	}
	return out, nil
}

// ScanReport fetches the report envelope for one scan. A JSON null body
// decodes to nil, which the view layer renders as "not generated yet".
func (c *Client) ScanReport(ctx context.Context, id int) (*model.ScanReport, error) {
	var out *model.ScanReport
	path := "/scans/" + strconv.Itoa(id) + "/report"
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, fmt.Errorf("scan %d report: %w", id, err)
	}
	return out, nil
}

// Settings fetches the pipeline's key/value configuration.
func (c *Client) Settings(ctx context.Context) ([]model.ConfigEntry, error) {
	var out []model.ConfigEntry
	if err := c.do(ctx, http.MethodGet, "/config", nil, &out); err != nil {
		return nil, fmt.Errorf("settings: %w", err)
	}
	return out, nil
}

// UpdateSetting writes one key/value setting.
func (c *Client) UpdateSetting(ctx context.Context, entry model.ConfigEntry) error {
	if strings.TrimSpace(entry.Key) == "" {
		return apperrors.Validation("setting key is required")
	}

	query := url.Values{}
	query.Set("key", entry.Key)
	query.Set("value", entry.Value)
	query.Set("is_secret", strconv.FormatBool(entry.IsSecret))

	if err := c.do(ctx, http.MethodPost, "/config", query, nil); err != nil {
		return fmt.Errorf("update setting %q: %w", entry.Key, err)
	}
	return nil
}

// do performs one request and decodes a JSON response into out (when out is
// non-nil). Non-2xx responses and transport failures map onto the AppError
// taxonomy so callers can tell transient failures from hard ones.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, http.NoBody)
	if err != nil {
		return apperrors.Internal("build request", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return apperrors.Canceled("request canceled", ctx.Err())
		}
		return apperrors.Transient("pipeline unreachable", err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBodyBytes))
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return c.statusError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return apperrors.Internal("decode response", err)
	}
	return nil
}

func (c *Client) statusError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
	detail := strings.TrimSpace(string(body))
	c.logger.Debug("pipeline request failed",
		"status", resp.StatusCode,
		"url", resp.Request.URL.Path,
		"body", detail)

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return apperrors.NotFoundf("pipeline returned 404 for %s", resp.Request.URL.Path)
	case resp.StatusCode == http.StatusBadRequest ||
		resp.StatusCode == http.StatusUnprocessableEntity:
		return apperrors.Validationf("pipeline rejected request: %s", firstLine(detail))
	case resp.StatusCode >= http.StatusInternalServerError:
		return apperrors.Transient(
			fmt.Sprintf("pipeline error %d", resp.StatusCode),
			errors.New(firstLine(detail)))
	default:
		return apperrors.Internal(
			fmt.Sprintf("unexpected pipeline status %d", resp.StatusCode), nil)
	}
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
