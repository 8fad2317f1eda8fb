// Package memory implements the document store in process memory.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/goodnatureofminers/chainmirror/internal/evm/model"
)

type Metrics interface {
	Observe(operation, collection string, err error, started time.Time)
}

type Repository struct {
	mu          sync.RWMutex
	collections map[string]map[string][]byte
	schemas     map[string]model.Schema
	metrics     Metrics
}

func NewRepository(metrics Metrics) *Repository {
	return &Repository{
		collections: make(map[string]map[string][]byte),
		schemas:     make(map[string]model.Schema),
		metrics:     metrics,
	}
}

func (r *Repository) observe(operation, collection string, err error, started time.Time) {
	if r.metrics == nil {
		return
	}
	r.metrics.Observe(operation, collection, err, started)
}

// EnsureSchema registers the collection. Repeated calls keep the first schema.
func (r *Repository) EnsureSchema(ctx context.Context, schema model.Schema) error {
	start := time.Now()
	err := ctx.Err()
	defer func() { r.observe("ensure_schema", schema.Name, err, start) }()
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.schemas[schema.Name]; !ok {
		r.schemas[schema.Name] = schema
	}
	r.collection(schema.Name)
	return nil
}

func (r *Repository) Upsert(ctx context.Context, collection string, doc model.Document) error {
	start := time.Now()
	err := ctx.Err()
	defer func() { r.observe("upsert", collection, err, start) }()
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.collection(collection)[doc.Key] = clone(doc.Source)
	return nil
}

func (r *Repository) BulkUpsert(ctx context.Context, collection string, docs []model.Document) error {
	start := time.Now()
	err := ctx.Err()
	defer func() { r.observe("bulk_upsert", collection, err, start) }()
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	c := r.collection(collection)
	for _, doc := range docs {
		c[doc.Key] = clone(doc.Source)
	}
	return nil
}

func (r *Repository) Get(ctx context.Context, collection, key string) (model.Document, error) {
	start := time.Now()
	err := ctx.Err()
	defer func() { r.observe("get", collection, err, start) }()
	if err != nil {
		return model.Document{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	body, ok := r.collections[collection][key]
	if !ok {
		return model.Document{}, model.ErrNotFound
	}
	return model.Document{Key: key, Source: clone(body)}, nil
}

// Refresh is a no-op: writes are visible immediately.
func (r *Repository) Refresh(ctx context.Context, collection string) error {
	start := time.Now()
	err := ctx.Err()
	r.observe("refresh", collection, err, start)
	return err
}

// Keys lists the keys stored in a collection in lexical order.
func (r *Repository) Keys(collection string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]string, 0, len(r.collections[collection]))
	for k := range r.collections[collection] {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len reports the number of documents in a collection.
func (r *Repository) Len(collection string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.collections[collection])
}

func (r *Repository) collection(name string) map[string][]byte {
	c, ok := r.collections[name]
	if !ok {
		c = make(map[string][]byte)
		r.collections[name] = c
	}
	return c
}

func clone(b []byte) []byte {
	return append([]byte(nil), b...)
}
