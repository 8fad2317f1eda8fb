package metrics

import (
	"time"

	"github.com/goodnatureofminers/chainmirror/internal/evm/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	syncerFetchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "syncer",
		Name:      "fetch_height_total",
		Help:      "Count of block fetch attempts by outcome.",
	}, []string{"network", "status"})

	syncerFetchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "syncer",
		Name:      "fetch_height_duration_seconds",
		Help:      "Duration of fetching a single block with its transactions.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	syncerCommitTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "syncer",
		Name:      "commit_total",
		Help:      "Count of document store writes by mode and outcome.",
	}, []string{"network", "mode", "status"})

	syncerCommitDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "syncer",
		Name:      "commit_duration_seconds",
		Help:      "Duration of document store writes.",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
	}, []string{"network", "mode", "status"})

	syncerCommitDocuments = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "syncer",
		Name:      "commit_documents",
		Help:      "Number of documents per store write.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 11), // 1..1024
	}, []string{"network", "mode"})

	syncerBulkFallbackTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "syncer",
		Name:      "bulk_fallback_total",
		Help:      "Count of bulk writes that fell back to per-record writes.",
	}, []string{"network"})

	syncerCheckpointTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "syncer",
		Name:      "checkpoint_operations_total",
		Help:      "Count of checkpoint reads and writes by outcome.",
	}, []string{"network", "operation", "status"})

	syncerBatchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "syncer",
		Name:      "batch_total",
		Help:      "Count of processed batches by phase and outcome.",
	}, []string{"network", "phase", "status"})

	syncerBatchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "syncer",
		Name:      "batch_duration_seconds",
		Help:      "Duration of processing a batch of heights.",
		Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60, 120},
	}, []string{"network", "phase", "status"})

	syncerBlocksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "syncer",
		Name:      "blocks_total",
		Help:      "Count of heights by phase and result (indexed or failed).",
	}, []string{"network", "phase", "result"})

	syncerCheckpointHeight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "syncer",
		Name:      "checkpoint_height",
		Help:      "Last height recorded in the checkpoint.",
	}, []string{"network"})

	syncerChainHead = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "syncer",
		Name:      "chain_head_height",
		Help:      "Latest chain head observed from the provider.",
	}, []string{"network"})

	syncerBackfillProcessed = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "syncer",
		Name:      "backfill_processed_blocks",
		Help:      "Heights covered so far by the running backfill.",
	}, []string{"network"})

	syncerBackfillTotal = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "syncer",
		Name:      "backfill_total_blocks",
		Help:      "Heights the running backfill has to cover.",
	}, []string{"network"})

	syncerBackfillRate = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "syncer",
		Name:      "backfill_blocks_per_second",
		Help:      "Average backfill throughput.",
	}, []string{"network"})

	syncerBackfillETA = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "syncer",
		Name:      "backfill_eta_seconds",
		Help:      "Estimated time until the backfill reaches the head it started with.",
	}, []string{"network"})

	syncerLiveLag = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "syncer",
		Name:      "live_lag_blocks",
		Help:      "Distance between the chain head and the checkpoint at the start of a live cycle.",
	}, []string{"network"})
)

// Syncer tracks metrics of the historical and live sync phases.
type Syncer struct {
	network string
}

// NewSyncer constructs syncer metrics labeled with the network.
func NewSyncer(network model.Network) *Syncer {
	return &Syncer{network: orUnknown(string(network))}
}

// ObserveFetchHeight records one block fetch.
func (m Syncer) ObserveFetchHeight(err error, started time.Time) {
	s := status(err)
	syncerFetchTotal.WithLabelValues(m.network, s).Inc()
	syncerFetchDuration.WithLabelValues(m.network, s).Observe(time.Since(started).Seconds())
}

// ObserveCommit records a bulk or single-record store write.
func (m Syncer) ObserveCommit(mode string, err error, documents int, started time.Time) {
	s := status(err)
	syncerCommitTotal.WithLabelValues(m.network, mode, s).Inc()
	syncerCommitDuration.WithLabelValues(m.network, mode, s).Observe(time.Since(started).Seconds())
	syncerCommitDocuments.WithLabelValues(m.network, mode).Observe(float64(documents))
}

// ObserveBulkFallback counts a bulk write retried record by record.
func (m Syncer) ObserveBulkFallback() {
	syncerBulkFallbackTotal.WithLabelValues(m.network).Inc()
}

// ObserveCheckpoint records a checkpoint read or write.
func (m Syncer) ObserveCheckpoint(operation string, err error) {
	syncerCheckpointTotal.WithLabelValues(m.network, operation, status(err)).Inc()
}

// ObserveBatch records one batch (historical) or cycle (live).
// A batch with failed heights is reported as "partial".
func (m Syncer) ObserveBatch(phase string, indexed, failed int, started time.Time) {
	s := "success"
	if failed > 0 {
		s = "partial"
	}
	syncerBatchTotal.WithLabelValues(m.network, phase, s).Inc()
	syncerBatchDuration.WithLabelValues(m.network, phase, s).Observe(time.Since(started).Seconds())
	syncerBlocksTotal.WithLabelValues(m.network, phase, "indexed").Add(float64(indexed))
	syncerBlocksTotal.WithLabelValues(m.network, phase, "failed").Add(float64(failed))
}

// SetCheckpoint exports the current checkpoint height.
func (m Syncer) SetCheckpoint(height uint64) {
	syncerCheckpointHeight.WithLabelValues(m.network).Set(float64(height))
}

// SetChainHead exports the latest observed chain head.
func (m Syncer) SetChainHead(height uint64) {
	syncerChainHead.WithLabelValues(m.network).Set(float64(height))
}

// SetBackfillProgress exports the derived progress of the running backfill.
func (m Syncer) SetBackfillProgress(processed, total uint64, blocksPerSecond float64, eta time.Duration) {
	syncerBackfillProcessed.WithLabelValues(m.network).Set(float64(processed))
	syncerBackfillTotal.WithLabelValues(m.network).Set(float64(total))
	syncerBackfillRate.WithLabelValues(m.network).Set(blocksPerSecond)
	syncerBackfillETA.WithLabelValues(m.network).Set(eta.Seconds())
}

// SetLiveLag exports how many heights the live poller is behind the head.
func (m Syncer) SetLiveLag(lag uint64) {
	syncerLiveLag.WithLabelValues(m.network).Set(float64(lag))
}
