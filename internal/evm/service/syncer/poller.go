package syncer

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/chainmirror/internal/clock"
	"github.com/goodnatureofminers/chainmirror/internal/evm/normalizer"
	"go.uber.org/zap"
)

// livePoller indexes newly produced heights one at a time on a fixed interval.
type livePoller struct {
	floor       uint64
	interval    time.Duration
	source      ChainSource
	fetcher     *blockFetcher
	committer   *batchCommitter
	checkpoints *checkpointManager
	metrics     Metrics
	logger      *zap.Logger
	sleep       clock.SleepFunc
	now         clock.NowFunc
}

// Run polls until ctx is canceled. Cycle failures are logged and retried next interval.
func (p *livePoller) Run(ctx context.Context) error {
	p.logger.Info("starting live sync", zap.Duration("interval", p.interval))
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := p.cycle(ctx); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			p.logger.Warn("live cycle failed", zap.Error(err), zap.Duration("sleep", p.interval))
		}
		if err := p.sleep(ctx, p.interval); err != nil {
			return err
		}
	}
}

// cycle indexes (checkpoint, head] in ascending order. After a failed height the
// remaining heights are still indexed but the checkpoint stays below the failure.
func (p *livePoller) cycle(ctx context.Context) error {
	started := time.Now()

	persisted, err := p.checkpoints.Current(ctx)
	if err != nil {
		return err
	}
	last := max(persisted, p.floor)

	head, err := p.source.CurrentHeight(ctx)
	if err != nil {
		return fmt.Errorf("get chain head: %w", err)
	}
	p.metrics.SetChainHead(head)
	if head <= last {
		p.metrics.SetLiveLag(0)
		return nil
	}
	p.metrics.SetLiveLag(head - last)
	p.logger.Debug("new blocks", zap.Uint64("from", last+1), zap.Uint64("to", head))

	var indexed, failed int
	advancing := true
	for h := last + 1; h <= head; h++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := p.index(ctx, h); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			p.logger.Error("index block failed", zap.Uint64("height", h), zap.Error(err))
			failed++
			advancing = false
			continue
		}
		indexed++
		p.logger.Debug("block indexed", zap.Uint64("height", h))

		if advancing {
			if err := p.checkpoints.Advance(ctx, h); err != nil {
				p.logger.Error("checkpoint advance failed", zap.Uint64("height", h), zap.Error(err))
			}
		}
	}

	p.metrics.ObserveBatch(phaseLive, indexed, failed, started)
	return nil
}

func (p *livePoller) index(ctx context.Context, height uint64) error {
	raw, err := p.fetcher.get(ctx, height)
	if err != nil {
		return fmt.Errorf("fetch block %d: %w", height, err)
	}
	return p.committer.CommitOne(ctx, normalizer.Normalize(*raw, p.now()))
}
