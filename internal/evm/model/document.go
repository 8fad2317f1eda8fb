package model

import (
	"encoding/json"
	"errors"
	"strconv"
)

// ErrNotFound is returned by document stores when a key is absent.
var ErrNotFound = errors.New("document not found")

// Document is a keyed JSON body stored in a collection.
type Document struct {
	Key    string
	Source json.RawMessage
}

// HeightKey renders a height as a document key.
func HeightKey(height uint64) string {
	return strconv.FormatUint(height, 10)
}

// NewBlockDocument encodes a block into a document keyed by its height.
func NewBlockDocument(b IndexedBlock) (Document, error) {
	body, err := json.Marshal(b)
	if err != nil {
		return Document{}, err
	}
	return Document{Key: b.Key(), Source: body}, nil
}
