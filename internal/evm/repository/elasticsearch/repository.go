// Package elasticsearch implements the document store on Elasticsearch indices.
package elasticsearch

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	es "github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type Metrics interface {
	Observe(operation, collection string, err error, started time.Time)
}

// Config holds the connection settings of the cluster.
type Config struct {
	URL      string
	Username string
	Password string
}

type Repository struct {
	client  *es.Client
	metrics Metrics
}

func NewRepository(cfg Config, metrics Metrics) (*Repository, error) {
	if cfg.URL == "" {
		return nil, errors.New("elasticsearch url is required")
	}

	esCfg := es.Config{Addresses: []string{normalizeURL(cfg.URL)}}
	// basic auth only when the pair is complete
	if cfg.Username != "" && cfg.Password != "" {
		esCfg.Username = cfg.Username
		esCfg.Password = cfg.Password
	}

	client, err := es.NewClient(esCfg)
	if err != nil {
		return nil, fmt.Errorf("create elasticsearch client: %w", err)
	}
	return &Repository{client: client, metrics: metrics}, nil
}

func normalizeURL(raw string) string {
	if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") {
		return raw
	}
	return "http://" + raw
}

func (r *Repository) observe(operation, collection string, err error, started time.Time) {
	if r.metrics == nil {
		return
	}
	r.metrics.Observe(operation, collection, err, started)
}

// ResponseError is a non-2xx answer from the cluster.
type ResponseError struct {
	Status int
	Type   string
	Reason string
}

func (e *ResponseError) Error() string {
	if e.Type == "" {
		return fmt.Sprintf("elasticsearch status %d: %s", e.Status, e.Reason)
	}
	return fmt.Sprintf("elasticsearch status %d: %s: %s", e.Status, e.Type, e.Reason)
}

func responseError(res *esapi.Response) error {
	body, err := io.ReadAll(res.Body)
	if err != nil {
		return &ResponseError{Status: res.StatusCode, Reason: fmt.Sprintf("read error body: %v", err)}
	}

	var parsed struct {
		Error struct {
			Type   string `json:"type"`
			Reason string `json:"reason"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Error.Type != "" {
		return &ResponseError{Status: res.StatusCode, Type: parsed.Error.Type, Reason: parsed.Error.Reason}
	}
	return &ResponseError{Status: res.StatusCode, Reason: strings.TrimSpace(string(body))}
}
