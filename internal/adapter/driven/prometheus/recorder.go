// Package prometheus implements the MetricsRecorder port with Prometheus
// counters.
package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/ericfisherdev/guestwifi/internal/domain/model"
	"github.com/ericfisherdev/guestwifi/internal/domain/port/driven"
)

const namespace = "guestwifi"

// Compile-time interface satisfaction check.
var _ driven.MetricsRecorder = (*Recorder)(nil)

// Recorder counts cache activity, source reads and lookup outcomes.
type Recorder struct {
	cacheHits     *prometheus.CounterVec
	cacheMisses   *prometheus.CounterVec
	sourceReads   *prometheus.CounterVec
	parseWarnings *prometheus.CounterVec
	lookups       *prometheus.CounterVec
}

// NewRecorder registers the counters on reg. Pass a fresh
// prometheus.NewRegistry() in tests to avoid duplicate registration.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	factory := promauto.With(reg)

	return &Recorder{
		cacheHits: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "record_cache_hits_total",
			Help:      "Lookups served from the parsed password table cache",
		}, []string{"source"}),
		cacheMisses: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "record_cache_misses_total",
			Help:      "Lookups that found no cached table for the current source revision",
		}, []string{"source"}),
		sourceReads: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "source_reads_total",
			Help:      "Times the password table was read and parsed",
		}, []string{"source"}),
		parseWarnings: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "parse_warnings_total",
			Help:      "Password table rows skipped because of missing values or invalid dates",
		}, []string{"source"}),
		lookups: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lookups_total",
			Help:      "Password lookups by outcome",
		}, []string{"result"}),
	}
}

func (r *Recorder) CacheHit(source string) {
	r.cacheHits.WithLabelValues(source).Inc()
}

func (r *Recorder) CacheMiss(source string) {
	r.cacheMisses.WithLabelValues(source).Inc()
}

func (r *Recorder) SourceRead(source string) {
	r.sourceReads.WithLabelValues(source).Inc()
}

func (r *Recorder) ParseWarnings(source string, n int) {
	r.parseWarnings.WithLabelValues(source).Add(float64(n))
}

// Lookup records a lookup outcome; successful lookups are labelled "found".
func (r *Recorder) Lookup(state model.ErrorState) {
	result := string(state)
	if state == model.ErrorStateNone {
		result = "found"
	}
	r.lookups.WithLabelValues(result).Inc()
}
