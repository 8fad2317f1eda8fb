package syncer

import (
	"context"
	"sort"
	"time"

	"github.com/goodnatureofminers/chainmirror/internal/evm/model"
	"github.com/goodnatureofminers/chainmirror/pkg/workerpool"
	"go.uber.org/zap"
)

type blockFetcher struct {
	source      ChainSource
	concurrency int
	metrics     Metrics
	logger      *zap.Logger
}

// FetchRange attempts every height once with at most concurrency requests in flight.
// Failed heights are logged and reported in ascending order; they are absent from blocks.
func (f *blockFetcher) FetchRange(ctx context.Context, heights []uint64) (map[uint64]*model.RawBlock, []uint64) {
	results := workerpool.Collect(ctx, f.concurrency, heights, f.fetch)

	blocks := make(map[uint64]*model.RawBlock, len(results))
	var failed []uint64
	for height, res := range results {
		if res.Err != nil {
			failed = append(failed, height)
			continue
		}
		blocks[height] = res.Value
	}
	sort.Slice(failed, func(i, j int) bool { return failed[i] < failed[j] })
	return blocks, failed
}

func (f *blockFetcher) fetch(ctx context.Context, height uint64) (*model.RawBlock, error) {
	block, err := f.get(ctx, height)
	if err != nil && ctx.Err() == nil {
		f.logger.Error("fetch block failed", zap.Uint64("height", height), zap.Error(err))
	}
	return block, err
}

// get fetches one height and records the attempt. Logging is left to the caller.
func (f *blockFetcher) get(ctx context.Context, height uint64) (*model.RawBlock, error) {
	started := time.Now()
	block, err := f.source.BlockWithTransactions(ctx, height)
	f.metrics.ObserveFetchHeight(err, started)
	if err != nil {
		return nil, err
	}
	return block, nil
}

// ascendingHeights returns the keys of blocks in ascending order.
func ascendingHeights(blocks map[uint64]*model.RawBlock) []uint64 {
	heights := make([]uint64, 0, len(blocks))
	for h := range blocks {
		heights = append(heights, h)
	}
	sort.Slice(heights, func(i, j int) bool { return heights[i] < heights[j] })
	return heights
}
