package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	storeRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "document_store",
		Name:      "operations_total",
		Help:      "Count of document store operations.",
	}, []string{"backend", "operation", "collection", "status"})
	storeRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "document_store",
		Name:      "operation_duration_seconds",
		Help:      "Duration of document store operations.",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 15, 20, 30},
	}, []string{"backend", "operation", "collection", "status"})
)

// DocumentStore tracks metrics for one document store backend.
type DocumentStore struct {
	backend string
}

// NewDocumentStore creates a DocumentStore metrics collector for the named backend.
func NewDocumentStore(backend string) *DocumentStore {
	return &DocumentStore{backend: orUnknown(backend)}
}

// Observe records duration and status of a store operation.
func (m DocumentStore) Observe(operation, collection string, err error, started time.Time) {
	s := status(err)
	collection = orUnknown(collection)
	storeRequestsTotal.WithLabelValues(m.backend, operation, collection, s).Inc()
	storeRequestDuration.WithLabelValues(m.backend, operation, collection, s).Observe(time.Since(started).Seconds())
}
