package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/goodnatureofminers/chainmirror/internal/evm/lease"
	"github.com/goodnatureofminers/chainmirror/internal/evm/repository/clickhouse"
	"github.com/goodnatureofminers/chainmirror/internal/evm/repository/elasticsearch"
	"github.com/goodnatureofminers/chainmirror/internal/evm/repository/memory"
	"github.com/goodnatureofminers/chainmirror/internal/evm/service/syncer"
	"github.com/goodnatureofminers/chainmirror/internal/metrics"
)

const (
	storeElasticsearch = "elasticsearch"
	storeClickhouse    = "clickhouse"
	storeMemory        = "memory"
)

func newStore(cfg config) (syncer.DocumentStore, func(), error) {
	noop := func() {}
	switch cfg.Store {
	case storeElasticsearch:
		repo, err := elasticsearch.NewRepository(elasticsearch.Config{
			URL:      cfg.ESURL,
			Username: cfg.ESUsername,
			Password: cfg.ESPassword,
		}, metrics.NewDocumentStore(storeElasticsearch))
		if err != nil {
			return nil, noop, err
		}
		return repo, noop, nil
	case storeClickhouse:
		if cfg.ClickhouseDSN == "" {
			return nil, noop, errors.New("clickhouse DSN is required")
		}
		repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewDocumentStore(storeClickhouse))
		if err != nil {
			return nil, noop, err
		}
		return repo, func() { _ = repo.Close() }, nil
	case storeMemory:
		return memory.NewRepository(metrics.NewDocumentStore(storeMemory)), noop, nil
	default:
		return nil, noop, fmt.Errorf("unknown store %q", cfg.Store)
	}
}

func leaseKey(prefix string) string {
	return "chainmirror:" + prefix + ":writer"
}

func newLease(ctx context.Context, cfg config) (syncer.Lease, func(), error) {
	if cfg.RedisAddr == "" {
		return lease.Noop{}, func() {}, nil
	}
	client, err := lease.Dial(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		return nil, func() {}, err
	}
	return lease.NewRedis(client, leaseKey(cfg.IndexPrefix), cfg.LeaseTTL, metrics.NewLease()), func() { _ = client.Close() }, nil
}
