package application

import (
	"context"
	"log/slog"

	"github.com/patrickmn/go-cache"

	"github.com/ericfisherdev/guestwifi/internal/domain/model"
	"github.com/ericfisherdev/guestwifi/internal/domain/port/driven"
)

type cacheEntry struct {
	records []model.PasswordRecord
	info    model.SourceInfo
}

// RecordCache memoizes parsed password tables keyed by source identifier and
// invalidated by the source's modification stamp. Entries never expire on a
// timer; a failed reload leaves the previous entry in place.
type RecordCache struct {
	source  driven.RecordSource
	name    string
	entries *cache.Cache
	metrics driven.MetricsRecorder
	logger  *slog.Logger
}

// NewRecordCache creates a RecordCache in front of source. name labels the
// source kind in metrics and logs. metrics may be nil.
func NewRecordCache(source driven.RecordSource, name string, metrics driven.MetricsRecorder, logger *slog.Logger) *RecordCache {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	return &RecordCache{
		source:  source,
		name:    name,
		entries: cache.New(cache.NoExpiration, 0),
		metrics: metrics,
		logger:  logger,
	}
}

// GetRecords returns the records of the currently resolved source, reloading
// them only when the source identifier or modification stamp changed. The
// returned slice is shared with the cache and must not be modified.
func (c *RecordCache) GetRecords(ctx context.Context) ([]model.PasswordRecord, error) {
	info, err := c.source.Resolve(ctx)
	if err != nil {
		return nil, err
	}

	if v, ok := c.entries.Get(info.Identifier); ok {
		if entry := v.(cacheEntry); entry.info.Same(info) {
			c.metrics.CacheHit(c.name)
			return entry.records, nil
		}
	}
	c.metrics.CacheMiss(c.name)

	c.metrics.SourceRead(c.name)
	result, err := c.source.Load(ctx, info)
	if err != nil {
		return nil, err
	}

	if len(result.Warnings) > 0 {
		c.metrics.ParseWarnings(c.name, len(result.Warnings))
		c.logger.Warn("password table has invalid rows",
			"source", info.Identifier,
			"skipped", len(result.Warnings),
			"warnings", result.Warnings,
		)
	}

	c.entries.Set(info.Identifier, cacheEntry{records: result.Records, info: info}, cache.NoExpiration)
	c.logger.Info("password table loaded",
		"source", info.Identifier,
		"records", len(result.Records),
		"modified_at", info.ModifiedAt,
	)

	return result.Records, nil
}

// Clear drops every memoized table so the next call reloads from the source.
func (c *RecordCache) Clear() {
	c.entries.Flush()
}

type nopMetrics struct{}

func (nopMetrics) CacheHit(string) {}
func (nopMetrics) CacheMiss(string) {}
func (nopMetrics) SourceRead(string) {}
func (nopMetrics) ParseWarnings(string, int) {}
func (nopMetrics) Lookup(model.ErrorState) {}
