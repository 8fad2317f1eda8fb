// Package ethrpc wraps a go-ethereum JSON-RPC client with rate limiting and metrics.
package ethrpc

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
	"go.uber.org/ratelimit"
)

type (
	RPCMetrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

type ObservedClient struct {
	rpc        *rpc.Client
	eth        *ethclient.Client
	limiter    ratelimit.Limiter
	rpcMetrics RPCMetrics
}

// Dial connects to an HTTP or websocket JSON-RPC endpoint. A non-positive rps disables rate limiting.
func Dial(ctx context.Context, url string, rps int, rpcMetrics RPCMetrics) (*ObservedClient, error) {
	client, err := rpc.DialContext(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("dial rpc: %w", err)
	}
	return NewObservedClient(client, newLimiter(rps), rpcMetrics), nil
}

func NewObservedClient(client *rpc.Client, limiter ratelimit.Limiter, rpcMetrics RPCMetrics) *ObservedClient {
	if limiter == nil {
		limiter = ratelimit.NewUnlimited()
	}
	return &ObservedClient{
		rpc:        client,
		eth:        ethclient.NewClient(client),
		limiter:    limiter,
		rpcMetrics: rpcMetrics,
	}
}

// BlockNumber returns the most recent block height.
func (c *ObservedClient) BlockNumber(ctx context.Context) (height uint64, err error) {
	started := time.Now()
	defer func() {
		c.observe("eth_blockNumber", err, started)
	}()
	c.limiter.Take()
	return c.eth.BlockNumber(ctx)
}

// BlockByNumber returns the raw eth_getBlockByNumber result with full transactions.
// A missing block yields a nil message and no error.
func (c *ObservedClient) BlockByNumber(ctx context.Context, height uint64) (raw json.RawMessage, err error) {
	started := time.Now()
	defer func() {
		c.observe("eth_getBlockByNumber", err, started)
	}()
	c.limiter.Take()
	if err = c.rpc.CallContext(ctx, &raw, "eth_getBlockByNumber", hexutil.EncodeUint64(height), true); err != nil {
		return nil, err
	}
	return raw, nil
}

func (c *ObservedClient) Close() {
	c.rpc.Close()
}

func (c *ObservedClient) observe(operation string, err error, started time.Time) {
	if c.rpcMetrics == nil {
		return
	}
	c.rpcMetrics.Observe(operation, err, started)
}

func newLimiter(rps int) ratelimit.Limiter {
	if rps <= 0 {
		return ratelimit.NewUnlimited()
	}
	return ratelimit.New(rps)
}
