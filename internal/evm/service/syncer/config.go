package syncer

import (
	"time"

	"github.com/goodnatureofminers/chainmirror/internal/evm/model"
	"github.com/goodnatureofminers/chainmirror/internal/pkg/validator"
)

// Collections names the store collections the syncer writes to.
type Collections struct {
	Blocks string `validate:"required"`
	Meta   string `validate:"required"`
}

// Config is read once at startup and passed to every component.
type Config struct {
	// StartHeight is the resume floor; the checkpoint never moves the start below it.
	StartHeight  uint64
	BatchSize    uint64        `validate:"gt=0"`
	Concurrency  int           `validate:"gt=0"`
	ChunkSize    int           `validate:"gt=0"`
	PollInterval time.Duration `validate:"gt=0"`
	BatchDelay   time.Duration
	Collections  Collections
	Network      model.Network
}

// DefaultConfig returns the stock settings for collections under prefix.
func DefaultConfig(prefix string) Config {
	return Config{
		BatchSize:    defaultBatchSize,
		Concurrency:  defaultConcurrency,
		ChunkSize:    defaultChunkSize,
		PollInterval: defaultPollInterval,
		BatchDelay:   defaultBatchDelay,
		Collections: Collections{
			Blocks: model.BlocksCollection(prefix),
			Meta:   model.MetaCollection(prefix),
		},
	}
}

// Validate reports every field that violates its constraint.
func (c Config) Validate() error {
	return validator.Validate(c)
}
