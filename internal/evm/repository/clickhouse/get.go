package clickhouse

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/chainmirror/internal/evm/model"
)

const selectDocument = `
SELECT argMax(document, updated_at)
FROM documents
WHERE collection = ? AND key = ?
GROUP BY key`

// Get returns the latest version of a document or model.ErrNotFound.
func (r *Repository) Get(ctx context.Context, collection, key string) (model.Document, error) {
	start := time.Now()
	var err error
	defer func() {
		// a missing key is a normal outcome, not a store failure
		observed := err
		if errors.Is(observed, model.ErrNotFound) {
			observed = nil
		}
		r.observe("get", collection, observed, start)
	}()

	var body string
	if err = r.conn.QueryRow(ctx, selectDocument, collection, key).Scan(&body); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = model.ErrNotFound
			return model.Document{}, err
		}
		err = fmt.Errorf("select document %s/%s: %w", collection, key, err)
		return model.Document{}, err
	}

	return model.Document{Key: key, Source: []byte(body)}, nil
}
