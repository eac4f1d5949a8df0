// Package cache provides short-lived caching for fetched scan reports so
// re-opening a report view does not refetch the full envelope. Caching is
// best-effort: every failure degrades to a miss.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/guardian-sec/guardian-console/internal/domain/model"
)

// ReportCache stores report envelopes keyed by scan id.
type ReportCache interface {
	Get(ctx context.Context, scanID int) (*model.ScanReport, bool)
	Set(ctx context.Context, scanID int, report *model.ScanReport)
}

func reportKey(scanID int) string {
	return fmt.Sprintf("guardian:report:%d", scanID)
}

// RedisReportCache caches reports in Redis with a TTL, so several console
// instances pointed at the same pipeline share fetched reports.
type RedisReportCache struct {
	client redis.UniversalClient
	ttl    time.Duration
}

var _ ReportCache = (*RedisReportCache)(nil)

// NewRedisReportCache creates a Redis-backed report cache.
func NewRedisReportCache(client redis.UniversalClient, ttl time.Duration) *RedisReportCache {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &RedisReportCache{client: client, ttl: ttl}
}

// Get retrieves a cached report. Any Redis or decode failure is a miss.
func (c *RedisReportCache) Get(ctx context.Context, scanID int) (*model.ScanReport, bool) {
	raw, err := c.client.Get(ctx, reportKey(scanID)).Bytes()
	if err != nil {
		// redis.Nil and an unreachable cache read the same way: a miss.
		return nil, false
	}

	var report model.ScanReport
	if err := json.Unmarshal(raw, &report); err != nil {
		return nil, false
	}
	return &report, true
}

// Set stores a report with the configured TTL. Nil reports are not cached so
// a "not generated yet" result is re-checked on the next open.
func (c *RedisReportCache) Set(ctx context.Context, scanID int, report *model.ScanReport) {
	if report == nil {
		return
	}
	raw, err := json.Marshal(report)
	if err != nil {
		return
	}
	_ = c.client.Set(ctx, reportKey(scanID), raw, c.ttl).Err()
}

type memoryEntry struct {
	report  *model.ScanReport
	expires time.Time
}

// MemoryReportCache is the in-process fallback used when no Redis address is
// configured. Safe for concurrent use.
type MemoryReportCache struct {
	ttl time.Duration
	now func() time.Time

	mu      sync.Mutex
	entries map[int]memoryEntry
}

var _ ReportCache = (*MemoryReportCache)(nil)

// NewMemoryReportCache creates an in-memory report cache. The now function is
// injectable for tests; nil defaults to time.Now.
func NewMemoryReportCache(ttl time.Duration, now func() time.Time) *MemoryReportCache {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	if now == nil {
		now = time.Now
	}
	return &MemoryReportCache{
		ttl:     ttl,
		now:     now,
		entries: make(map[int]memoryEntry),
	}
}

// Get retrieves a cached report, expiring stale entries lazily.
func (c *MemoryReportCache) Get(_ context.Context, scanID int) (*model.ScanReport, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[scanID]
	if !ok {
		return nil, false
	}
	if c.now().After(entry.expires) {
		delete(c.entries, scanID)
		return nil, false
	}
	return entry.report, true
}

// Set stores a report until its TTL lapses.
func (c *MemoryReportCache) Set(_ context.Context, scanID int, report *model.ScanReport) {
	if report == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[scanID] = memoryEntry{report: report, expires: c.now().Add(c.ttl)}
}
