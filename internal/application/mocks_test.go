package application_test

import (
	"context"
	"log/slog"
	"sync"

	"github.com/ericfisherdev/guestwifi/internal/domain/model"
)

var discardLogger = slog.New(slog.DiscardHandler)

// mockRecordSource is an in-memory driven.RecordSource whose freshness stamp
// and contents can be changed between calls.
type mockRecordSource struct {
	mu         sync.Mutex
	info       model.SourceInfo
	resolveErr error
	result     model.ParseResult
	loadErr    error
	loads      int
}

func (m *mockRecordSource) Resolve(_ context.Context) (model.SourceInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.info, m.resolveErr
}

func (m *mockRecordSource) Load(_ context.Context, _ model.SourceInfo) (model.ParseResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loads++
	if m.loadErr != nil {
		return model.ParseResult{}, m.loadErr
	}
	return m.result, nil
}

func (m *mockRecordSource) loadCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loads
}

// mockRecordProvider returns fixed records or a fixed error.
type mockRecordProvider struct {
	records []model.PasswordRecord
	err     error
}

func (m *mockRecordProvider) GetRecords(_ context.Context) ([]model.PasswordRecord, error) {
	return m.records, m.err
}

// mockMetrics counts calls to the driven.MetricsRecorder port.
type mockMetrics struct {
	mu       sync.Mutex
	hits     int
	misses   int
	reads    int
	warnings int
	lookups  map[model.ErrorState]int
}

func (m *mockMetrics) CacheHit(string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hits++
}

func (m *mockMetrics) CacheMiss(string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.misses++
}

func (m *mockMetrics) SourceRead(string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reads++
}

func (m *mockMetrics) ParseWarnings(_ string, n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.warnings += n
}

func (m *mockMetrics) Lookup(state model.ErrorState) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.lookups == nil {
		m.lookups = make(map[model.ErrorState]int)
	}
	m.lookups[state]++
}
