package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// CheckpointKey is the key of the singleton checkpoint document.
const CheckpointKey = "checkpoint"

// Checkpoint records the last height committed to the store.
type Checkpoint struct {
	LastIndexedBlock uint64 `json:"last_indexed_block"`
	UpdatedAt        int64  `json:"updated_at"`
}

// NewCheckpoint builds a checkpoint stamped with the given time in unix milliseconds.
func NewCheckpoint(height uint64, now time.Time) Checkpoint {
	return Checkpoint{LastIndexedBlock: height, UpdatedAt: now.UnixMilli()}
}

// Document encodes the checkpoint into its singleton document.
func (c Checkpoint) Document() (Document, error) {
	body, err := json.Marshal(c)
	if err != nil {
		return Document{}, fmt.Errorf("encode checkpoint: %w", err)
	}
	return Document{Key: CheckpointKey, Source: body}, nil
}

// DecodeCheckpoint parses a checkpoint document body.
func DecodeCheckpoint(doc Document) (Checkpoint, error) {
	var c Checkpoint
	if err := json.Unmarshal(doc.Source, &c); err != nil {
		return Checkpoint{}, fmt.Errorf("decode checkpoint: %w", err)
	}
	return c, nil
}
