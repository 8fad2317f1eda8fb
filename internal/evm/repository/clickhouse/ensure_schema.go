package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/chainmirror/internal/evm/model"
)

const createDocumentsTable = `
CREATE TABLE IF NOT EXISTS documents
(
	collection LowCardinality(String),
	key        String,
	document   String,
	updated_at DateTime64(9, 'UTC')
)
ENGINE = ReplacingMergeTree(updated_at)
ORDER BY (collection, key)`

// EnsureSchema makes sure the shared documents table exists.
// Collections are partitions of that table, so the field mapping is not applied.
func (r *Repository) EnsureSchema(ctx context.Context, schema model.Schema) error {
	start := time.Now()
	var err error
	defer func() {
		r.observe("ensure_schema", schema.Name, err, start)
	}()

	if err = r.conn.Exec(ctx, createDocumentsTable); err != nil {
		return fmt.Errorf("create documents table for %s: %w", schema.Name, err)
	}
	return nil
}
