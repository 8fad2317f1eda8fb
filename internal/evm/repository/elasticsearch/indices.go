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

const alreadyExists = "resource_already_exists_exception"

// EnsureSchema creates the index with its mapping unless it already exists.
func (r *Repository) EnsureSchema(ctx context.Context, schema model.Schema) error {
	start := time.Now()
	var err error
	defer func() {
		r.observe("ensure_schema", schema.Name, err, start)
	}()

	err = r.ensureIndex(ctx, schema)
	return err
}

func (r *Repository) ensureIndex(ctx context.Context, schema model.Schema) error {
	exists, err := r.client.Indices.Exists([]string{schema.Name}, r.client.Indices.Exists.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("check index %s: %w", schema.Name, err)
	}
	defer exists.Body.Close()

	switch exists.StatusCode {
	case http.StatusOK:
		return nil
	case http.StatusNotFound:
	default:
		return fmt.Errorf("check index %s: %w", schema.Name, responseError(exists))
	}

	body, err := json.Marshal(schema.Mapping)
	if err != nil {
		return fmt.Errorf("encode mapping of %s: %w", schema.Name, err)
	}

	res, err := r.client.Indices.Create(schema.Name,
		r.client.Indices.Create.WithBody(bytes.NewReader(body)),
		r.client.Indices.Create.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("create index %s: %w", schema.Name, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		createErr := responseError(res)
		var respErr *ResponseError
		// another instance created it between the check and the create
		if errors.As(createErr, &respErr) && respErr.Type == alreadyExists {
			return nil
		}
		return fmt.Errorf("create index %s: %w", schema.Name, createErr)
	}
	return nil
}

// Refresh makes recent writes to the index visible to search.
func (r *Repository) Refresh(ctx context.Context, collection string) error {
	start := time.Now()
	var err error
	defer func() {
		r.observe("refresh", collection, err, start)
	}()

	res, err := r.client.Indices.Refresh(
		r.client.Indices.Refresh.WithIndex(collection),
		r.client.Indices.Refresh.WithContext(ctx),
	)
	if err != nil {
		err = fmt.Errorf("refresh index %s: %w", collection, err)
		return err
	}
	defer res.Body.Close()

	if res.IsError() {
		err = fmt.Errorf("refresh index %s: %w", collection, responseError(res))
		return err
	}
	return nil
}
