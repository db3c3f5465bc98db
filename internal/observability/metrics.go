package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics contains all Prometheus metrics for the paper catalog service.
// All counters and histograms are registered via promauto with the provided
// registerer, or the default registry when nil is passed.
type Metrics struct {
	// AuthorsCreated counts the total number of authors persisted.
	AuthorsCreated prometheus.Counter

	// AuthorsRejected counts author creations rejected for a duplicate email.
	AuthorsRejected prometheus.Counter

	// PapersCreated counts the total number of papers persisted.
	PapersCreated prometheus.Counter

	// PapersDeduplicated counts paper creations that resolved to an existing
	// record through the duplicate-DOI tie-break.
	PapersDeduplicated prometheus.Counter

	// ValidationFailures counts requests rejected by the validation layer,
	// labeled by entity ("author", "paper").
	ValidationFailures *prometheus.CounterVec

	// ListRowsSkipped counts stored rows dropped from listings because they
	// failed output-shape validation, labeled by entity.
	ListRowsSkipped *prometheus.CounterVec

	// RequestDuration observes HTTP request duration in seconds, labeled by
	// method, route pattern, and status code.
	RequestDuration *prometheus.HistogramVec
}

// NewMetrics creates and registers all service metrics.
// Passing nil uses the default Prometheus registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		AuthorsCreated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "paper_catalog",
			Name:      "authors_created_total",
			Help:      "Total number of authors persisted.",
		}),
		AuthorsRejected: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "paper_catalog",
			Name:      "authors_rejected_total",
			Help:      "Total number of author creations rejected for a duplicate email.",
		}),
		PapersCreated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "paper_catalog",
			Name:      "papers_created_total",
			Help:      "Total number of papers persisted.",
		}),
		PapersDeduplicated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "paper_catalog",
			Name:      "papers_deduplicated_total",
			Help:      "Total number of paper creations resolved to an existing record by DOI.",
		}),
		ValidationFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "paper_catalog",
			Name:      "validation_failures_total",
			Help:      "Total number of requests rejected by the validation layer.",
		}, []string{"entity"}),
		ListRowsSkipped: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "paper_catalog",
			Name:      "list_rows_skipped_total",
			Help:      "Total number of stored rows skipped during listing for failing output validation.",
		}, []string{"entity"}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "paper_catalog",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
}
