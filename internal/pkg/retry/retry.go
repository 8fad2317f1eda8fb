// Package retry runs operations with exponential backoff on top of avast/retry-go.
package retry

import (
	"context"
	"errors"
	"time"

	retrygo "github.com/avast/retry-go/v4"
)

// Retry executes an operation until it succeeds, attempts run out or ctx ends.
type Retry interface {
	Execute(ctx context.Context, operation func() error) error
}

// Option configures a Retry.
type Option func(*config)

type config struct {
	attempts uint
	delay    time.Duration
	maxDelay time.Duration
	onRetry  func(attempt uint, err error)
}

type retrier struct {
	cfg config
}

var _ Retry = (*retrier)(nil)

// New returns a Retry with 3 attempts, 1s base delay and 5s max delay unless overridden.
func New(opts ...Option) Retry {
	cfg := config{
		attempts: 3,
		delay:    time.Second,
		maxDelay: 5 * time.Second,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.attempts == 0 {
		cfg.attempts = 1
	}
	return &retrier{cfg: cfg}
}

// Execute returns nil on the first successful attempt, otherwise the last error.
// Context errors returned by the operation stop retrying.
func (r *retrier) Execute(ctx context.Context, operation func() error) error {
	options := []retrygo.Option{
		retrygo.Attempts(r.cfg.attempts),
		retrygo.Delay(r.cfg.delay),
		retrygo.MaxDelay(r.cfg.maxDelay),
		retrygo.DelayType(retrygo.BackOffDelay),
		retrygo.LastErrorOnly(true),
		retrygo.Context(ctx),
		retrygo.RetryIf(func(err error) bool {
			return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
		}),
	}
	if r.cfg.onRetry != nil {
		options = append(options, retrygo.OnRetry(r.cfg.onRetry))
	}
	return retrygo.Do(operation, options...)
}

// WithAttempts sets the total number of attempts, including the first one.
func WithAttempts(n uint) Option {
	return func(c *config) { c.attempts = n }
}

// WithDelay sets the base backoff delay.
func WithDelay(d time.Duration) Option {
	return func(c *config) { c.delay = d }
}

// WithMaxDelay caps the backoff delay.
func WithMaxDelay(d time.Duration) Option {
	return func(c *config) { c.maxDelay = d }
}

// WithOnRetry registers a callback invoked after each failed attempt that will be retried.
func WithOnRetry(fn func(attempt uint, err error)) Option {
	return func(c *config) { c.onRetry = fn }
}
