package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goodnatureofminers/chainmirror/internal/evm/ethereum"
	"github.com/goodnatureofminers/chainmirror/internal/evm/model"
	"github.com/goodnatureofminers/chainmirror/internal/evm/service/syncer"
	"github.com/goodnatureofminers/chainmirror/internal/metrics"
	"github.com/goodnatureofminers/chainmirror/internal/pkg/ethrpc"
	"github.com/goodnatureofminers/chainmirror/internal/pkg/retry"
	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type config struct {
	RPCURL          string        `long:"rpc-url" env:"RPC_HTTP_URL" description:"chain JSON-RPC endpoint" required:"true"`
	RPCRateLimit    int           `long:"rpc-rate-limit" env:"RPC_RATE_LIMIT" description:"max RPC calls per second, 0 disables the limit" default:"0"`
	Network         model.Network `long:"network" env:"NETWORK" description:"network label for metrics and logs" default:"mainnet"`
	Store           string        `long:"store" env:"STORE" description:"document store backend" choice:"elasticsearch" choice:"clickhouse" choice:"memory" default:"elasticsearch"`
	ESURL           string        `long:"es-url" env:"ES_URL" description:"Elasticsearch URL" default:"http://localhost:9200"`
	ESUsername      string        `long:"es-username" env:"ES_USERNAME" description:"Elasticsearch username"`
	ESPassword      string        `long:"es-password" env:"ES_PASSWORD" description:"Elasticsearch password"`
	ClickhouseDSN   string        `long:"clickhouse-dsn" env:"CLICKHOUSE_DSN" description:"ClickHouse DSN"`
	IndexPrefix     string        `long:"index-prefix" env:"INDEX_PREFIX" description:"prefix for the blocks and meta collections" default:"workqueue"`
	BatchSize       uint64        `long:"batch-size" env:"BATCH_SIZE" description:"heights per historical batch" default:"1000"`
	StartBlock      uint64        `long:"start-block" env:"START_BLOCK" description:"lowest height to sync" default:"0"`
	SyncIntervalSec int           `long:"sync-interval-secs" env:"SYNC_INTERVAL_SECS" description:"live poll interval in seconds" default:"2"`
	Concurrency     int           `long:"concurrency" env:"CONCURRENCY" description:"max in-flight block requests" default:"10"`
	BulkSize        int           `long:"bulk-size" env:"ES_BULK_SIZE" description:"documents per bulk write" default:"100"`
	BatchDelay      time.Duration `long:"batch-delay" env:"BATCH_DELAY" description:"pause between historical batches" default:"10ms"`
	RedisAddr       string        `long:"redis-addr" env:"REDIS_ADDR" description:"Redis address for the writer lease, empty disables the lease"`
	RedisPassword   string        `long:"redis-password" env:"REDIS_PASSWORD" description:"Redis password"`
	RedisDB         int           `long:"redis-db" env:"REDIS_DB" description:"Redis database" default:"0"`
	LeaseTTL        time.Duration `long:"lease-ttl" env:"LEASE_TTL" description:"writer lease TTL" default:"30s"`
	StartupAttempts uint          `long:"startup-attempts" env:"STARTUP_ATTEMPTS" description:"connection attempts before giving up at startup" default:"5"`
	MetricsAddr     string        `long:"metrics-addr" env:"METRICS_ADDR" description:"address for metrics server" default:":2112"`
	Dev             bool          `long:"dev" env:"DEV" description:"human readable development logging"`
}

func (c config) syncerConfig() syncer.Config {
	cfg := syncer.DefaultConfig(c.IndexPrefix)
	cfg.StartHeight = c.StartBlock
	cfg.BatchSize = c.BatchSize
	cfg.Concurrency = c.Concurrency
	cfg.ChunkSize = c.BulkSize
	cfg.PollInterval = time.Duration(c.SyncIntervalSec) * time.Second
	cfg.BatchDelay = c.BatchDelay
	cfg.Network = c.Network
	return cfg
}

func main() {
	// A missing .env file is fine; the environment may already be populated.
	_ = godotenv.Load()

	cfg := config{}
	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		fmt.Fprintf(os.Stderr, "failed to parse flags: %v\n", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := newLogger(cfg.Dev)
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if err := run(ctx, cfg, logger); err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Info("evm syncer stopped")
			return
		}
		logger.Fatal("evm syncer failed", zap.Error(err))
	}
}

func newLogger(dev bool) (*zap.Logger, error) {
	if dev {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	startMetricsServer(ctx, cfg.MetricsAddr, logger)

	startup := retry.New(
		retry.WithAttempts(cfg.StartupAttempts),
		retry.WithDelay(time.Second),
		retry.WithMaxDelay(10*time.Second),
		retry.WithOnRetry(func(attempt uint, err error) {
			logger.Warn("startup step failed, retrying", zap.Uint("attempt", attempt+1), zap.Error(err))
		}),
	)

	var rpc *ethrpc.ObservedClient
	err := startup.Execute(ctx, func() error {
		client, err := ethrpc.Dial(ctx, cfg.RPCURL, cfg.RPCRateLimit, metrics.NewRPCClient(cfg.Network))
		if err != nil {
			return err
		}
		head, err := client.BlockNumber(ctx)
		if err != nil {
			client.Close()
			return fmt.Errorf("probe chain head: %w", err)
		}
		logger.Info("connected to chain", zap.String("network", string(cfg.Network)), zap.Uint64("head", head))
		rpc = client
		return nil
	})
	if err != nil {
		return fmt.Errorf("init rpc client: %w", err)
	}
	defer rpc.Close()

	store, closeStore, err := newStore(cfg)
	if err != nil {
		return fmt.Errorf("init document store: %w", err)
	}
	defer closeStore()

	writerLease, closeLease, err := newLease(ctx, cfg)
	if err != nil {
		return fmt.Errorf("init writer lease: %w", err)
	}
	defer closeLease()

	svc, err := syncer.NewService(
		cfg.syncerConfig(),
		ethereum.NewSource(rpc),
		store,
		writerLease,
		metrics.NewSyncer(cfg.Network),
		logger,
	)
	if err != nil {
		return err
	}

	if err := startup.Execute(ctx, func() error { return svc.Bootstrap(ctx) }); err != nil {
		return fmt.Errorf("bootstrap store: %w", err)
	}
	return svc.Run(ctx)
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}
