// Package ethereum implements the chain source for EVM JSON-RPC endpoints.
package ethereum

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/goodnatureofminers/chainmirror/internal/evm/chain"
	"github.com/goodnatureofminers/chainmirror/internal/evm/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// RPCClient is the subset of JSON-RPC calls the source depends on.
	RPCClient interface {
		BlockNumber(ctx context.Context) (uint64, error)
		BlockByNumber(ctx context.Context, height uint64) (json.RawMessage, error)
	}
)

// Source implements chain.Source for EVM nodes.
type Source struct {
	rpc RPCClient
}

var _ chain.Source = (*Source)(nil)

// NewSource creates a Source backed by the given RPC client.
func NewSource(rpc RPCClient) *Source {
	return &Source{rpc: rpc}
}

// CurrentHeight returns the latest block height reported by the node.
func (s *Source) CurrentHeight(ctx context.Context) (uint64, error) {
	height, err := s.rpc.BlockNumber(ctx)
	if err != nil {
		return 0, fmt.Errorf("get block number: %w", err)
	}
	return height, nil
}

// BlockWithTransactions fetches the block at height with its full transaction objects.
func (s *Source) BlockWithTransactions(ctx context.Context, height uint64) (*model.RawBlock, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw, err := s.rpc.BlockByNumber(ctx, height)
	if err != nil {
		return nil, fmt.Errorf("get block %d: %w", height, err)
	}
	if len(raw) == 0 || string(raw) == "null" {
		return nil, fmt.Errorf("block %d: %w", height, chain.ErrBlockNotFound)
	}

	var src rpcBlock
	if err := json.Unmarshal(raw, &src); err != nil {
		return nil, fmt.Errorf("decode block %d: %w", height, err)
	}
	return buildRawBlock(src, height)
}

func buildRawBlock(src rpcBlock, height uint64) (*model.RawBlock, error) {
	if src.Number == nil || src.Hash == nil {
		return nil, fmt.Errorf("block %d is pending: %w", height, chain.ErrBlockNotFound)
	}
	if uint64(*src.Number) != height {
		return nil, fmt.Errorf("block number mismatch: requested %d, got %d", height, uint64(*src.Number))
	}

	block := &model.RawBlock{
		Number:          uint64(*src.Number),
		Hash:            *src.Hash,
		ParentHash:      src.ParentHash,
		Timestamp:       uint64(src.Timestamp),
		GasLimit:        uint64(src.GasLimit),
		GasUsed:         uint64(src.GasUsed),
		Miner:           src.Miner,
		Difficulty:      toBig(src.Difficulty),
		TotalDifficulty: toBig(src.TotalDifficulty),
		Uncles:          src.Uncles,
		Transactions:    make([]model.RawTransaction, 0, len(src.Transactions)),
	}
	if src.Size != nil {
		size := uint64(*src.Size)
		block.Size = &size
	}

	for _, tx := range src.Transactions {
		block.Transactions = append(block.Transactions, model.RawTransaction{
			Hash:     tx.Hash,
			From:     tx.From,
			To:       tx.To,
			Value:    toBig(tx.Value),
			Gas:      uint64(tx.Gas),
			GasPrice: toBig(tx.GasPrice),
			Input:    tx.Input,
			Nonce:    uint64(tx.Nonce),
		})
	}
	return block, nil
}

func toBig(v *hexutil.Big) *big.Int {
	if v == nil {
		return nil
	}
	return v.ToInt()
}
