// Package model defines domain models for EVM chain mirroring.
package model

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// RawBlock is a block header with its full transaction list as supplied by the provider.
type RawBlock struct {
	Number          uint64
	Hash            common.Hash
	ParentHash      common.Hash
	Timestamp       uint64
	GasLimit        uint64
	GasUsed         uint64
	Miner           *common.Address
	Difficulty      *big.Int
	TotalDifficulty *big.Int
	Size            *uint64
	Uncles          []common.Hash
	Transactions    []RawTransaction
}

// RawTransaction is a transaction embedded in a RawBlock.
type RawTransaction struct {
	Hash     common.Hash
	From     common.Address
	To       *common.Address
	Value    *big.Int
	Gas      uint64
	GasPrice *big.Int
	Input    []byte
	Nonce    uint64
}

// IndexedBlock is the document persisted for every height.
type IndexedBlock struct {
	Number           uint64               `json:"number"`
	Hash             string               `json:"hash"`
	ParentHash       string               `json:"parent_hash"`
	Timestamp        uint64               `json:"timestamp"`
	GasLimit         uint64               `json:"gas_limit"`
	GasUsed          uint64               `json:"gas_used"`
	Miner            *string              `json:"miner,omitempty"`
	Difficulty       string               `json:"difficulty"`
	TotalDifficulty  string               `json:"total_difficulty"`
	Size             uint64               `json:"size"`
	Transactions     []IndexedTransaction `json:"transactions"`
	TransactionCount uint64               `json:"transaction_count"`
	Uncles           uint64               `json:"uncles"`
	IndexedAt        uint64               `json:"indexed_at"`
}

// IndexedTransaction is a transaction embedded in an IndexedBlock. A nil To marks contract creation.
type IndexedTransaction struct {
	Hash             string  `json:"hash"`
	From             string  `json:"from"`
	To               *string `json:"to,omitempty"`
	Value            string  `json:"value"`
	Gas              uint64  `json:"gas"`
	GasPrice         string  `json:"gas_price"`
	Input            string  `json:"input"`
	Nonce            uint64  `json:"nonce"`
	TransactionIndex *uint64 `json:"transaction_index,omitempty"`
}

// Key returns the store identity of the block.
func (b IndexedBlock) Key() string {
	return HeightKey(b.Number)
}
