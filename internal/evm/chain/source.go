// Package chain defines the provider contract consumed by the sync engine.
package chain

import (
	"context"
	"errors"

	"github.com/goodnatureofminers/chainmirror/internal/evm/model"
)

// ErrBlockNotFound is returned when the provider has no block at a height.
var ErrBlockNotFound = errors.New("block not found")

// Source provides chain head and full blocks by height.
type Source interface {
	CurrentHeight(ctx context.Context) (uint64, error)
	BlockWithTransactions(ctx context.Context, height uint64) (*model.RawBlock, error)
}
