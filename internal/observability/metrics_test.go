package observability

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// counterValue extracts the current value of a counter.
func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, c.Write(&m))
	return m.GetCounter().GetValue()
}

func TestNewMetrics_RegistersAll(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	m.AuthorsCreated.Inc()
	m.PapersCreated.Inc()
	m.PapersDeduplicated.Inc()
	m.ValidationFailures.WithLabelValues("author").Inc()
	m.ListRowsSkipped.WithLabelValues("author").Inc()
	m.RequestDuration.WithLabelValues("GET", "/api/papers/", "200").Observe(0.02)

	families, err := reg.Gather()
	require.NoError(t, err)

	names := make(map[string]bool, len(families))
	for _, f := range families {
		names[f.GetName()] = true
	}

	assert.True(t, names["paper_catalog_authors_created_total"])
	assert.True(t, names["paper_catalog_papers_created_total"])
	assert.True(t, names["paper_catalog_papers_deduplicated_total"])
	assert.True(t, names["paper_catalog_validation_failures_total"])
	assert.True(t, names["paper_catalog_list_rows_skipped_total"])
	assert.True(t, names["paper_catalog_http_request_duration_seconds"])
}

func TestMetrics_CounterIncrements(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	assert.Equal(t, 0.0, counterValue(t, m.PapersDeduplicated))
	m.PapersDeduplicated.Inc()
	m.PapersDeduplicated.Inc()
	assert.Equal(t, 2.0, counterValue(t, m.PapersDeduplicated))
}
