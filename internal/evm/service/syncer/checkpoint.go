package syncer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/chainmirror/internal/evm/model"
	"go.uber.org/zap"
)

type checkpointManager struct {
	store      DocumentStore
	collection string
	metrics    Metrics
	logger     *zap.Logger
	now        func() time.Time
}

// Current returns the persisted checkpoint, or 0 when none was ever written.
func (m *checkpointManager) Current(ctx context.Context) (uint64, error) {
	doc, err := m.store.Get(ctx, m.collection, model.CheckpointKey)
	if errors.Is(err, model.ErrNotFound) {
		m.metrics.ObserveCheckpoint(checkpointRead, nil)
		return 0, nil
	}
	if err != nil {
		m.metrics.ObserveCheckpoint(checkpointRead, err)
		return 0, fmt.Errorf("read checkpoint: %w", err)
	}

	cp, err := model.DecodeCheckpoint(doc)
	m.metrics.ObserveCheckpoint(checkpointRead, err)
	if err != nil {
		return 0, err
	}
	return cp.LastIndexedBlock, nil
}

// ResolveStart returns max(persisted checkpoint, floor). An unreadable checkpoint counts as 0.
func (m *checkpointManager) ResolveStart(ctx context.Context, floor uint64) uint64 {
	persisted, err := m.Current(ctx)
	if err != nil {
		m.logger.Warn("checkpoint unreadable, starting from floor", zap.Uint64("floor", floor), zap.Error(err))
		persisted = 0
	}
	return max(persisted, floor)
}

// Advance overwrites the checkpoint with height.
func (m *checkpointManager) Advance(ctx context.Context, height uint64) error {
	doc, err := model.NewCheckpoint(height, m.now()).Document()
	if err == nil {
		err = m.store.Upsert(ctx, m.collection, doc)
	}
	m.metrics.ObserveCheckpoint(checkpointWrite, err)
	if err != nil {
		return fmt.Errorf("write checkpoint %d: %w", height, err)
	}

	m.metrics.SetCheckpoint(height)
	m.logger.Debug("checkpoint saved", zap.Uint64("height", height))
	return nil
}
