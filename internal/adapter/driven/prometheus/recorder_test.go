package prometheus_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	promadapter "github.com/ericfisherdev/guestwifi/internal/adapter/driven/prometheus"
	"github.com/ericfisherdev/guestwifi/internal/domain/model"
)

func TestRecorder_CountsByLabel(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec := promadapter.NewRecorder(reg)

	rec.CacheHit("csv")
	rec.CacheHit("csv")
	rec.CacheMiss("csv")
	rec.SourceRead("csv")
	rec.ParseWarnings("csv", 3)
	rec.Lookup(model.ErrorStateNone)
	rec.Lookup(model.ErrorStateNoPasswordForDate)

	families, err := reg.Gather()
	require.NoError(t, err)
	values := counterValues(families)

	assert.Equal(t, 2.0, values["guestwifi_record_cache_hits_total{source=csv}"])
	assert.Equal(t, 1.0, values["guestwifi_record_cache_misses_total{source=csv}"])
	assert.Equal(t, 1.0, values["guestwifi_source_reads_total{source=csv}"])
	assert.Equal(t, 3.0, values["guestwifi_parse_warnings_total{source=csv}"])
	assert.Equal(t, 1.0, values["guestwifi_lookups_total{result=found}"])
	assert.Equal(t, 1.0, values["guestwifi_lookups_total{result=no-password-for-date}"])
}

func TestRecorder_CollectsSourceReads(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec := promadapter.NewRecorder(reg)
	rec.SourceRead("sqlite")

	assert.Equal(t, 1, testutil.CollectAndCount(reg, "guestwifi_source_reads_total"))
}

// counterValues flattens gathered counters into "name{label=value}" keys.
func counterValues(families []*dto.MetricFamily) map[string]float64 {
	values := map[string]float64{}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			key := mf.GetName()
			for _, lp := range m.GetLabel() {
				key += "{" + lp.GetName() + "=" + lp.GetValue() + "}"
			}
			values[key] = m.GetCounter().GetValue()
		}
	}
	return values
}
