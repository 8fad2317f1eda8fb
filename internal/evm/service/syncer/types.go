package syncer

import (
	"context"
	"time"

	"github.com/goodnatureofminers/chainmirror/internal/evm/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	ChainSource interface {
		CurrentHeight(ctx context.Context) (uint64, error)
		BlockWithTransactions(ctx context.Context, height uint64) (*model.RawBlock, error)
	}

	DocumentStore interface {
		EnsureSchema(ctx context.Context, schema model.Schema) error
		Upsert(ctx context.Context, collection string, doc model.Document) error
		BulkUpsert(ctx context.Context, collection string, docs []model.Document) error
		Get(ctx context.Context, collection, key string) (model.Document, error)
		Refresh(ctx context.Context, collection string) error
	}

	// Lease guards the checkpoint against concurrent writers. A zero TTL disables renewal.
	Lease interface {
		Acquire(ctx context.Context) error
		Renew(ctx context.Context) error
		Release(ctx context.Context) error
		TTL() time.Duration
	}

	Metrics interface {
		ObserveFetchHeight(err error, started time.Time)
		ObserveCommit(mode string, err error, documents int, started time.Time)
		ObserveBulkFallback()
		ObserveCheckpoint(operation string, err error)
		ObserveBatch(phase string, indexed, failed int, started time.Time)
		SetCheckpoint(height uint64)
		SetChainHead(height uint64)
		SetBackfillProgress(processed, total uint64, blocksPerSecond float64, eta time.Duration)
		SetLiveLag(lag uint64)
	}
)
