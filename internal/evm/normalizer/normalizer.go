// Package normalizer converts provider blocks into store-ready documents.
package normalizer

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/goodnatureofminers/chainmirror/internal/evm/model"
	"github.com/goodnatureofminers/chainmirror/pkg/safe"
)

// Normalize flattens a raw block into an IndexedBlock stamped with indexedAt.
// Wide integers are rendered as decimal strings; transaction positions are preserved.
func Normalize(block model.RawBlock, indexedAt time.Time) model.IndexedBlock {
	txs := make([]model.IndexedTransaction, 0, len(block.Transactions))
	for i, tx := range block.Transactions {
		txs = append(txs, normalizeTransaction(tx, i))
	}

	var size uint64
	if block.Size != nil {
		size = *block.Size
	}

	return model.IndexedBlock{
		Number:           block.Number,
		Hash:             block.Hash.Hex(),
		ParentHash:       block.ParentHash.Hex(),
		Timestamp:        block.Timestamp,
		GasLimit:         block.GasLimit,
		GasUsed:          block.GasUsed,
		Miner:            address(block.Miner),
		Difficulty:       decimal(block.Difficulty),
		TotalDifficulty:  decimal(block.TotalDifficulty),
		Size:             size,
		Transactions:     txs,
		TransactionCount: unsigned(len(txs)),
		Uncles:           unsigned(len(block.Uncles)),
		IndexedAt:        unsigned(indexedAt.Unix()),
	}
}

func normalizeTransaction(tx model.RawTransaction, position int) model.IndexedTransaction {
	index := unsigned(position)
	return model.IndexedTransaction{
		Hash:             tx.Hash.Hex(),
		From:             hexutil.Encode(tx.From.Bytes()),
		To:               address(tx.To),
		Value:            decimal(tx.Value),
		Gas:              tx.Gas,
		GasPrice:         decimal(tx.GasPrice),
		Input:            common.Bytes2Hex(tx.Input),
		Nonce:            tx.Nonce,
		TransactionIndex: &index,
	}
}

// address renders lowercase 0x-prefixed hex, never the checksummed form.
func address(a *common.Address) *string {
	if a == nil {
		return nil
	}
	s := hexutil.Encode(a.Bytes())
	return &s
}

func decimal(v *big.Int) string {
	if v == nil {
		return "0"
	}
	return v.String()
}

// unsigned clamps negative values to zero.
func unsigned[T ~int | ~int64](n T) uint64 {
	v, err := safe.Uint64(n)
	if err != nil {
		return 0
	}
	return v
}
