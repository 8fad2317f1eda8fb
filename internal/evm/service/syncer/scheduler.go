package syncer

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/chainmirror/internal/clock"
	"github.com/goodnatureofminers/chainmirror/internal/evm/model"
	"github.com/goodnatureofminers/chainmirror/internal/evm/normalizer"
	"github.com/goodnatureofminers/chainmirror/pkg/batcher"
	"go.uber.org/zap"
)

// rangeScheduler drains [resume height, chain head] batch by batch.
type rangeScheduler struct {
	floor       uint64
	batchSize   uint64
	batchDelay  time.Duration
	source      ChainSource
	fetcher     *blockFetcher
	committer   *batchCommitter
	checkpoints *checkpointManager
	metrics     Metrics
	logger      *zap.Logger
	sleep       clock.SleepFunc
	now         clock.NowFunc
}

type batchOutcome struct {
	indexed int
	failed  int
}

// Run processes the backlog that exists when it is called and returns once it is covered.
func (s *rangeScheduler) Run(ctx context.Context) error {
	start := s.checkpoints.ResolveStart(ctx, s.floor)
	head, err := s.source.CurrentHeight(ctx)
	if err != nil {
		return fmt.Errorf("get chain head: %w", err)
	}
	s.metrics.SetChainHead(head)

	if start >= head {
		s.logger.Info("already up to date", zap.Uint64("start", start), zap.Uint64("head", head))
		return nil
	}

	ranges := batcher.Ranges(start, head, s.batchSize)
	total := head - start + 1
	s.logger.Info("starting historical sync",
		zap.Uint64("start", start),
		zap.Uint64("head", head),
		zap.Uint64("blocks", total),
		zap.Int("batches", len(ranges)),
	)

	prog := newProgress(total, s.now)
	var indexed, failed int
	for i, r := range ranges {
		outcome, err := s.processBatch(ctx, r)
		if err != nil {
			return err
		}
		indexed += outcome.indexed
		failed += outcome.failed

		snap := prog.Add(r.Len())
		s.metrics.SetBackfillProgress(snap.Processed, snap.Total, snap.Rate, snap.ETA)
		s.logger.Info("batch complete",
			zap.Uint64("from", r.From),
			zap.Uint64("to", r.To),
			zap.String("progress", fmt.Sprintf("%d/%d", snap.Processed, snap.Total)),
			zap.String("percent", fmt.Sprintf("%.2f%%", snap.Percent)),
			zap.String("speed", fmt.Sprintf("%.2f blocks/sec", snap.Rate)),
			zap.String("eta", formatETA(snap.ETA)),
		)

		if i < len(ranges)-1 {
			if err := s.sleep(ctx, s.batchDelay); err != nil {
				return err
			}
		}
	}

	snap := prog.Snapshot()
	s.logger.Info("historical sync complete",
		zap.Uint64("blocks", snap.Processed),
		zap.Int("indexed", indexed),
		zap.Int("failed", failed),
		zap.Duration("elapsed", snap.Elapsed),
		zap.String("speed", fmt.Sprintf("%.2f blocks/sec", snap.Rate)),
	)
	return nil
}

// processBatch fetches, orders, normalizes and commits one range, then advances the
// checkpoint to the range's upper bound even when some heights failed.
func (s *rangeScheduler) processBatch(ctx context.Context, r batcher.Range) (batchOutcome, error) {
	started := time.Now()

	blocks, fetchFailed := s.fetcher.FetchRange(ctx, r.Heights())
	if err := ctx.Err(); err != nil {
		return batchOutcome{}, err
	}
	if len(fetchFailed) > 0 {
		s.logger.Warn("heights dropped from batch",
			zap.Uint64("from", r.From),
			zap.Uint64("to", r.To),
			zap.Uint64s("heights", fetchFailed),
		)
	}

	indexedAt := s.now()
	records := make([]model.IndexedBlock, 0, len(blocks))
	for _, h := range ascendingHeights(blocks) {
		records = append(records, normalizer.Normalize(*blocks[h], indexedAt))
	}

	report := s.committer.Commit(ctx, records)
	if err := ctx.Err(); err != nil {
		return batchOutcome{}, err
	}

	if err := s.checkpoints.Advance(ctx, r.To); err != nil {
		s.logger.Error("checkpoint advance failed", zap.Uint64("height", r.To), zap.Error(err))
	}

	outcome := batchOutcome{indexed: report.Succeeded, failed: len(fetchFailed) + report.Failed}
	s.metrics.ObserveBatch(phaseHistorical, outcome.indexed, outcome.failed, started)
	if report.Failed > 0 {
		s.logger.Warn("batch committed with failures",
			zap.Uint64("from", r.From),
			zap.Uint64("to", r.To),
			zap.Int("succeeded", report.Succeeded),
			zap.Int("failed", report.Failed),
			zap.Int("bulk_fallbacks", report.BulkFallbacks),
		)
	}
	return outcome, nil
}
