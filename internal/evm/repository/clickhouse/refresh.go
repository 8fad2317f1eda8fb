package clickhouse

import (
	"context"
	"fmt"
	"time"
)

const optimizeDocuments = `OPTIMIZE TABLE documents FINAL`

// Refresh merges pending parts so superseded versions are collapsed.
func (r *Repository) Refresh(ctx context.Context, collection string) error {
	start := time.Now()
	var err error
	defer func() {
		r.observe("refresh", collection, err, start)
	}()

	if err = r.conn.Exec(ctx, optimizeDocuments); err != nil {
		return fmt.Errorf("optimize documents table: %w", err)
	}
	return nil
}
