package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	leaseOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "lease",
		Name:      "operations_total",
		Help:      "Count of writer lease operations.",
	}, []string{"operation", "status"})
	leaseOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "lease",
		Name:      "operation_duration_seconds",
		Help:      "Duration of writer lease operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "status"})
)

// Lease tracks metrics for the single-writer lease.
type Lease struct{}

// NewLease creates a Lease metrics collector.
func NewLease() *Lease {
	return &Lease{}
}

// Observe records a lease operation.
func (Lease) Observe(operation string, err error, started time.Time) {
	s := status(err)
	leaseOperationsTotal.WithLabelValues(operation, s).Inc()
	leaseOperationDuration.WithLabelValues(operation, s).Observe(time.Since(started).Seconds())
}
