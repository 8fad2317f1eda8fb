package syncer

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/chainmirror/internal/evm/model"
	"github.com/goodnatureofminers/chainmirror/pkg/batcher"
	"go.uber.org/zap"
)

// CommitReport tallies one Commit call. It feeds logs and metrics only.
type CommitReport struct {
	Succeeded     int
	Failed        int
	BulkFallbacks int
}

func (r *CommitReport) add(other CommitReport) {
	r.Succeeded += other.Succeeded
	r.Failed += other.Failed
	r.BulkFallbacks += other.BulkFallbacks
}

type batchCommitter struct {
	store      DocumentStore
	collection string
	chunkSize  int
	metrics    Metrics
	logger     *zap.Logger
}

// Commit writes blocks in order, one bulk request per chunk. A failed chunk is retried
// record by record; record failures are logged and do not stop the remaining records.
func (c *batchCommitter) Commit(ctx context.Context, blocks []model.IndexedBlock) CommitReport {
	var report CommitReport

	docs := make([]model.Document, 0, len(blocks))
	for _, b := range blocks {
		doc, err := model.NewBlockDocument(b)
		if err != nil {
			c.logger.Error("encode block failed", zap.Uint64("height", b.Number), zap.Error(err))
			report.Failed++
			continue
		}
		docs = append(docs, doc)
	}

	for _, chunk := range batcher.Chunk(docs, c.chunkSize) {
		report.add(c.commitChunk(ctx, chunk))
	}
	return report
}

func (c *batchCommitter) commitChunk(ctx context.Context, chunk []model.Document) CommitReport {
	started := time.Now()
	err := c.store.BulkUpsert(ctx, c.collection, chunk)
	c.metrics.ObserveCommit(commitBulk, err, len(chunk), started)
	if err == nil {
		return CommitReport{Succeeded: len(chunk)}
	}

	c.metrics.ObserveBulkFallback()
	c.logger.Warn("bulk commit failed, falling back to single writes",
		zap.Int("documents", len(chunk)),
		zap.String("first", chunk[0].Key),
		zap.String("last", chunk[len(chunk)-1].Key),
		zap.Error(err),
	)

	report := CommitReport{BulkFallbacks: 1}
	for _, doc := range chunk {
		if err := c.upsert(ctx, doc); err != nil {
			c.logger.Error("commit block failed", zap.String("height", doc.Key), zap.Error(err))
			report.Failed++
			continue
		}
		report.Succeeded++
	}
	return report
}

// CommitOne writes a single block without the bulk path.
func (c *batchCommitter) CommitOne(ctx context.Context, block model.IndexedBlock) error {
	doc, err := model.NewBlockDocument(block)
	if err != nil {
		return fmt.Errorf("encode block %d: %w", block.Number, err)
	}
	if err := c.upsert(ctx, doc); err != nil {
		return fmt.Errorf("commit block %d: %w", block.Number, err)
	}
	return nil
}

func (c *batchCommitter) upsert(ctx context.Context, doc model.Document) error {
	started := time.Now()
	err := c.store.Upsert(ctx, c.collection, doc)
	c.metrics.ObserveCommit(commitSingle, err, 1, started)
	return err
}
