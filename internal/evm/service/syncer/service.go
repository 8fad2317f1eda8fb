package syncer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/chainmirror/internal/clock"
	"github.com/goodnatureofminers/chainmirror/internal/evm/lease"
	"github.com/goodnatureofminers/chainmirror/internal/evm/model"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Service runs a bounded historical backfill followed by unbounded live polling.
type Service struct {
	cfg         Config
	store       DocumentStore
	lease       Lease
	logger      *zap.Logger
	sleep       clock.SleepFunc
	checkpoints *checkpointManager
	scheduler   *rangeScheduler
	poller      *livePoller
}

// NewService validates cfg and wires the sync components.
func NewService(
	cfg Config,
	source ChainSource,
	store DocumentStore,
	writerLease Lease,
	metrics Metrics,
	logger *zap.Logger,
) (*Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid syncer config: %w", err)
	}
	if source == nil {
		return nil, errors.New("chain source is required")
	}
	if store == nil {
		return nil, errors.New("document store is required")
	}
	if metrics == nil {
		return nil, errors.New("syncer metrics is required")
	}
	if writerLease == nil {
		return nil, errors.New("lease is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.With(zap.String("network", string(cfg.Network)))

	now := time.Now
	checkpoints := &checkpointManager{
		store:      store,
		collection: cfg.Collections.Meta,
		metrics:    metrics,
		logger:     logger.Named("checkpoint"),
		now:        now,
	}
	fetcher := &blockFetcher{
		source:      source,
		concurrency: cfg.Concurrency,
		metrics:     metrics,
		logger:      logger.Named("fetcher"),
	}
	committer := &batchCommitter{
		store:      store,
		collection: cfg.Collections.Blocks,
		chunkSize:  cfg.ChunkSize,
		metrics:    metrics,
		logger:     logger.Named("committer"),
	}

	return &Service{
		cfg:         cfg,
		store:       store,
		lease:       writerLease,
		logger:      logger,
		sleep:       clock.SleepWithContext,
		checkpoints: checkpoints,
		scheduler: &rangeScheduler{
			floor:       cfg.StartHeight,
			batchSize:   cfg.BatchSize,
			batchDelay:  cfg.BatchDelay,
			source:      source,
			fetcher:     fetcher,
			committer:   committer,
			checkpoints: checkpoints,
			metrics:     metrics,
			logger:      logger.Named("historical"),
			sleep:       clock.SleepWithContext,
			now:         now,
		},
		poller: &livePoller{
			floor:       cfg.StartHeight,
			interval:    cfg.PollInterval,
			source:      source,
			fetcher:     fetcher,
			committer:   committer,
			checkpoints: checkpoints,
			metrics:     metrics,
			logger:      logger.Named("live"),
			sleep:       clock.SleepWithContext,
			now:         now,
		},
	}, nil
}

// Bootstrap creates the blocks and checkpoint collections if they are absent.
func (s *Service) Bootstrap(ctx context.Context) error {
	schemas := []model.Schema{
		model.BlocksSchema(s.cfg.Collections.Blocks),
		model.MetaSchema(s.cfg.Collections.Meta),
	}
	for _, schema := range schemas {
		if err := s.store.EnsureSchema(ctx, schema); err != nil {
			return fmt.Errorf("ensure schema %s: %w", schema.Name, err)
		}
	}
	s.logger.Info("store schemas ready",
		zap.String("blocks", s.cfg.Collections.Blocks),
		zap.String("meta", s.cfg.Collections.Meta),
	)
	return nil
}

// Run takes the writer lease, then syncs until ctx is canceled or the lease is lost.
func (s *Service) Run(ctx context.Context) error {
	ttl := s.lease.TTL()
	if err := s.acquireLease(ctx, ttl); err != nil {
		return fmt.Errorf("acquire writer lease: %w", err)
	}
	defer func() {
		releaseCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), releaseTimeout)
		defer cancel()
		if err := s.lease.Release(releaseCtx); err != nil {
			s.logger.Warn("release writer lease failed", zap.Error(err))
		}
	}()

	g, gctx := errgroup.WithContext(ctx)
	if ttl > 0 {
		g.Go(func() error {
			return s.keepLease(gctx, ttl)
		})
	}
	g.Go(func() error {
		return s.sync(gctx)
	})
	return g.Wait()
}

func (s *Service) sync(ctx context.Context) error {
	for {
		err := s.SyncHistorical(ctx)
		if err == nil {
			break
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		s.logger.Warn("historical sync failed, backing off", zap.Error(err), zap.Duration("sleep", s.cfg.PollInterval))
		if sleepErr := s.sleep(ctx, s.cfg.PollInterval); sleepErr != nil {
			return sleepErr
		}
	}

	if err := s.store.Refresh(ctx, s.cfg.Collections.Blocks); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		s.logger.Warn("refresh blocks collection failed", zap.Error(err))
	}

	return s.SyncLive(ctx)
}

// SyncHistorical covers the backlog between the resume height and the current head.
func (s *Service) SyncHistorical(ctx context.Context) error {
	return s.scheduler.Run(ctx)
}

// SyncLive polls for new heights until ctx is canceled.
func (s *Service) SyncLive(ctx context.Context) error {
	return s.poller.Run(ctx)
}

// acquireLease retries every ttl/3 for one full ttl, so a lease left behind by a
// crashed predecessor expires before the process gives up.
func (s *Service) acquireLease(ctx context.Context, ttl time.Duration) error {
	err := s.lease.Acquire(ctx)
	if err == nil || ttl <= 0 {
		return err
	}

	interval := ttl / 3
	for attempt := 1; attempt <= leaseAcquireRetries; attempt++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		s.logger.Warn("writer lease unavailable, retrying",
			zap.Int("attempt", attempt),
			zap.Duration("sleep", interval),
			zap.Error(err),
		)
		if sleepErr := s.sleep(ctx, interval); sleepErr != nil {
			return sleepErr
		}
		if err = s.lease.Acquire(ctx); err == nil {
			return nil
		}
	}
	return err
}

// keepLease renews every ttl/3. It fails when the lease changed owner or no renewal
// succeeded for a full ttl.
func (s *Service) keepLease(ctx context.Context, ttl time.Duration) error {
	interval := ttl / 3
	lastRenewed := time.Now()
	for {
		if err := s.sleep(ctx, interval); err != nil {
			return err
		}
		err := s.lease.Renew(ctx)
		if err == nil {
			lastRenewed = time.Now()
			continue
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if errors.Is(err, lease.ErrLeaseLost) || time.Since(lastRenewed) >= ttl {
			return fmt.Errorf("writer lease lost: %w", err)
		}
		s.logger.Warn("renew writer lease failed", zap.Error(err))
	}
}
