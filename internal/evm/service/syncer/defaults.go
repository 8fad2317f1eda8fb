package syncer

import "time"

const (
	defaultBatchSize    uint64 = 1000
	defaultConcurrency         = 10
	defaultChunkSize           = 100
	defaultPollInterval        = 2 * time.Second
	defaultBatchDelay          = 10 * time.Millisecond

	releaseTimeout = 5 * time.Second

	// four waits of ttl/3 outlast a stale lease
	leaseAcquireRetries = 4

	phaseHistorical = "historical"
	phaseLive       = "live"

	commitBulk   = "bulk"
	commitSingle = "single"

	checkpointRead  = "read"
	checkpointWrite = "write"
)
