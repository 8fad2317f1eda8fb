// Package lease guards the checkpoint with a single-writer lease.
package lease

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

var (
	// ErrLeaseHeld is returned by Acquire when another owner holds the lease.
	ErrLeaseHeld = errors.New("lease held by another owner")
	// ErrLeaseLost is returned by Renew when the lease expired or changed owner.
	ErrLeaseLost = errors.New("lease lost")
)

const (
	renewScript = `if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("PEXPIRE", KEYS[1], ARGV[2])
end
return 0`

	releaseScript = `if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0`
)

type (
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}

	// Client is the subset of the Redis client the lease needs.
	Client interface {
		SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
		Get(ctx context.Context, key string) *redis.StringCmd
		Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd
	}
)

// Redis is a lease stored as a single expiring key holding the owner token.
type Redis struct {
	client  Client
	key     string
	token   string
	ttl     time.Duration
	metrics Metrics
}

// NewRedis returns a lease on key owned by a fresh random token.
func NewRedis(client Client, key string, ttl time.Duration, metrics Metrics) *Redis {
	return newRedis(client, key, uuid.NewString(), ttl, metrics)
}

func newRedis(client Client, key, token string, ttl time.Duration, metrics Metrics) *Redis {
	return &Redis{client: client, key: key, token: token, ttl: ttl, metrics: metrics}
}

// Dial connects to Redis and verifies the connection.
func Dial(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis %s: %w", addr, err)
	}
	return client, nil
}

// TTL is the lease lifetime; holders renew well before it elapses.
func (l *Redis) TTL() time.Duration {
	return l.ttl
}

// Acquire takes the lease. Acquiring a lease this owner already holds succeeds.
func (l *Redis) Acquire(ctx context.Context) error {
	start := time.Now()
	var err error
	defer func() { l.observe("acquire", err, start) }()

	ok, err := l.client.SetNX(ctx, l.key, l.token, l.ttl).Result()
	if err != nil {
		err = fmt.Errorf("acquire lease %s: %w", l.key, err)
		return err
	}
	if ok {
		return nil
	}

	owner, err := l.client.Get(ctx, l.key).Result()
	switch {
	case errors.Is(err, redis.Nil):
		// expired between SETNX and GET, next attempt decides
		err = ErrLeaseHeld
	case err != nil:
		err = fmt.Errorf("read lease owner %s: %w", l.key, err)
	case owner != l.token:
		err = ErrLeaseHeld
	}
	return err
}

// Renew extends the lease if this owner still holds it.
func (l *Redis) Renew(ctx context.Context) error {
	start := time.Now()
	var err error
	defer func() { l.observe("renew", err, start) }()

	n, err := l.client.Eval(ctx, renewScript, []string{l.key}, l.token, l.ttl.Milliseconds()).Int64()
	if err != nil {
		err = fmt.Errorf("renew lease %s: %w", l.key, err)
		return err
	}
	if n == 0 {
		err = ErrLeaseLost
	}
	return err
}

// Release drops the lease if this owner still holds it.
func (l *Redis) Release(ctx context.Context) error {
	start := time.Now()
	var err error
	defer func() { l.observe("release", err, start) }()

	if err = l.client.Eval(ctx, releaseScript, []string{l.key}, l.token).Err(); err != nil {
		err = fmt.Errorf("release lease %s: %w", l.key, err)
	}
	return err
}

func (l *Redis) observe(operation string, err error, started time.Time) {
	if l.metrics == nil {
		return
	}
	l.metrics.Observe(operation, err, started)
}

// Noop is used when a single instance is guaranteed by deployment.
type Noop struct{}

func (Noop) Acquire(context.Context) error { return nil }
func (Noop) Renew(context.Context) error   { return nil }
func (Noop) Release(context.Context) error { return nil }

// TTL of zero disables renewal.
func (Noop) TTL() time.Duration { return 0 }
