package ethereum

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

type rpcBlock struct {
	Number          *hexutil.Uint64  `json:"number"`
	Hash            *common.Hash     `json:"hash"`
	ParentHash      common.Hash      `json:"parentHash"`
	Timestamp       hexutil.Uint64   `json:"timestamp"`
	GasLimit        hexutil.Uint64   `json:"gasLimit"`
	GasUsed         hexutil.Uint64   `json:"gasUsed"`
	Miner           *common.Address  `json:"miner"`
	Difficulty      *hexutil.Big     `json:"difficulty"`
	TotalDifficulty *hexutil.Big     `json:"totalDifficulty"`
	Size            *hexutil.Uint64  `json:"size"`
	Uncles          []common.Hash    `json:"uncles"`
	Transactions    []rpcTransaction `json:"transactions"`
}

type rpcTransaction struct {
	Hash     common.Hash     `json:"hash"`
	From     common.Address  `json:"from"`
	To       *common.Address `json:"to"`
	Value    *hexutil.Big    `json:"value"`
	Gas      hexutil.Uint64  `json:"gas"`
	GasPrice *hexutil.Big    `json:"gasPrice"`
	Input    hexutil.Bytes   `json:"input"`
	Nonce    hexutil.Uint64  `json:"nonce"`
}
