package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/chainmirror/internal/evm/model"
)

const insertDocuments = `
INSERT INTO documents (
	collection,
	key,
	document,
	updated_at
) VALUES`

// Upsert writes a single document. A later write of the same key replaces it.
func (r *Repository) Upsert(ctx context.Context, collection string, doc model.Document) error {
	start := time.Now()
	var err error
	defer func() {
		r.observe("upsert", collection, err, start)
	}()

	err = r.insert(ctx, collection, []model.Document{doc})
	return err
}

// BulkUpsert writes documents in one insert block, which ClickHouse applies atomically.
func (r *Repository) BulkUpsert(ctx context.Context, collection string, docs []model.Document) error {
	start := time.Now()
	var err error
	defer func() {
		r.observe("bulk_upsert", collection, err, start)
	}()

	if len(docs) == 0 {
		return nil
	}
	err = r.insert(ctx, collection, docs)
	return err
}

func (r *Repository) insert(ctx context.Context, collection string, docs []model.Document) error {
	batch, err := r.conn.PrepareBatch(ctx, insertDocuments)
	if err != nil {
		return fmt.Errorf("prepare documents batch: %w", err)
	}

	updatedAt := r.now().UTC()
	for _, doc := range docs {
		if err := batch.Append(collection, doc.Key, string(doc.Source), updatedAt); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("append document %s: %w", doc.Key, err)
		}
	}

	if err := batch.Send(); err != nil {
		return fmt.Errorf("insert documents into %s: %w", collection, err)
	}
	return nil
}
