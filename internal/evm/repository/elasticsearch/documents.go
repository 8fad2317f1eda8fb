package elasticsearch

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/goodnatureofminers/chainmirror/internal/evm/model"
)

// Upsert indexes a single document under its key, replacing any previous version.
func (r *Repository) Upsert(ctx context.Context, collection string, doc model.Document) error {
	start := time.Now()
	var err error
	defer func() {
		r.observe("upsert", collection, err, start)
	}()

	res, err := r.client.Index(collection, bytes.NewReader(doc.Source),
		r.client.Index.WithDocumentID(doc.Key),
		r.client.Index.WithContext(ctx),
	)
	if err != nil {
		err = fmt.Errorf("index document %s/%s: %w", collection, doc.Key, err)
		return err
	}
	defer res.Body.Close()

	if res.IsError() {
		err = fmt.Errorf("index document %s/%s: %w", collection, doc.Key, responseError(res))
		return err
	}
	return nil
}

type bulkResponse struct {
	Errors bool `json:"errors"`
	Items  []map[string]struct {
		ID     string `json:"_id"`
		Status int    `json:"status"`
		Error  struct {
			Type   string `json:"type"`
			Reason string `json:"reason"`
		} `json:"error"`
	} `json:"items"`
}

// BulkUpsert indexes all documents in one request. Any rejected item fails the whole call.
func (r *Repository) BulkUpsert(ctx context.Context, collection string, docs []model.Document) error {
	start := time.Now()
	var err error
	defer func() {
		r.observe("bulk_upsert", collection, err, start)
	}()

	if len(docs) == 0 {
		return nil
	}

	body, err := encodeBulk(docs)
	if err != nil {
		return err
	}

	res, err := r.client.Bulk(bytes.NewReader(body),
		r.client.Bulk.WithIndex(collection),
		r.client.Bulk.WithContext(ctx),
	)
	if err != nil {
		err = fmt.Errorf("bulk index into %s: %w", collection, err)
		return err
	}
	defer res.Body.Close()

	if res.IsError() {
		err = fmt.Errorf("bulk index into %s: %w", collection, responseError(res))
		return err
	}

	var parsed bulkResponse
	if err = json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		err = fmt.Errorf("decode bulk response of %s: %w", collection, err)
		return err
	}
	if parsed.Errors {
		err = fmt.Errorf("bulk index into %s: %w", collection, firstItemError(parsed))
		return err
	}
	return nil
}

func encodeBulk(docs []model.Document) ([]byte, error) {
	var buf bytes.Buffer
	for _, doc := range docs {
		meta, err := json.Marshal(map[string]map[string]string{"index": {"_id": doc.Key}})
		if err != nil {
			return nil, fmt.Errorf("encode bulk action for %s: %w", doc.Key, err)
		}
		buf.Write(meta)
		buf.WriteByte('\n')
		if err := json.Compact(&buf, doc.Source); err != nil {
			return nil, fmt.Errorf("encode bulk source for %s: %w", doc.Key, err)
		}
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}

func firstItemError(res bulkResponse) error {
	failed := 0
	var first *ResponseError
	for _, item := range res.Items {
		for _, result := range item {
			if result.Status < http.StatusBadRequest {
				continue
			}
			failed++
			if first == nil {
				first = &ResponseError{
					Status: result.Status,
					Type:   result.Error.Type,
					Reason: fmt.Sprintf("document %s: %s", result.ID, result.Error.Reason),
				}
			}
		}
	}
	if first == nil {
		return errors.New("bulk response reported errors without failed items")
	}
	return fmt.Errorf("%d of %d items rejected, first: %w", failed, len(res.Items), first)
}

// Get fetches a document body by key or returns model.ErrNotFound.
func (r *Repository) Get(ctx context.Context, collection, key string) (model.Document, error) {
	start := time.Now()
	var err error
	defer func() {
		observed := err
		if errors.Is(err, model.ErrNotFound) {
			observed = nil
		}
		r.observe("get", collection, observed, start)
	}()

	res, err := r.client.Get(collection, key, r.client.Get.WithContext(ctx))
	if err != nil {
		err = fmt.Errorf("get document %s/%s: %w", collection, key, err)
		return model.Document{}, err
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusNotFound {
		err = model.ErrNotFound
		return model.Document{}, err
	}
	if res.IsError() {
		err = fmt.Errorf("get document %s/%s: %w", collection, key, responseError(res))
		return model.Document{}, err
	}

	var parsed struct {
		Found  bool            `json:"found"`
		Source json.RawMessage `json:"_source"`
	}
	if err = json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		err = fmt.Errorf("decode document %s/%s: %w", collection, key, err)
		return model.Document{}, err
	}
	if !parsed.Found {
		err = model.ErrNotFound
		return model.Document{}, err
	}
	return model.Document{Key: key, Source: parsed.Source}, nil
}
