package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis is a [Store] backed by a Redis instance. Token and user are kept
// under two prefix-scoped keys so multiple gateway processes (or a redis-cli
// operator) can inspect them independently.
type Redis struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

// NewRedis returns a redis-backed store. prefix scopes the keys
// ("<prefix>:token", "<prefix>:user"); ttl bounds how long a persisted
// session outlives its last Save (0 means no expiry — invalidation on 401
// remains the authoritative teardown path either way).
func NewRedis(client redis.UniversalClient, prefix string, ttl time.Duration) (*Redis, error) {
	if client == nil {
		return nil, fmt.Errorf("store: redis client required")
	}
	if prefix == "" {
		prefix = "riskgate"
	}
	return &Redis{client: client, prefix: prefix, ttl: ttl}, nil
}

func (r *Redis) tokenKey() string { return r.prefix + ":token" }
func (r *Redis) userKey() string  { return r.prefix + ":user" }

// Load implements [Store].
func (r *Redis) Load(ctx context.Context) (Entry, error) {
	vals, err := r.client.MGet(ctx, r.tokenKey(), r.userKey()).Result()
	if err != nil {
		return Entry{}, fmt.Errorf("store: %w: %v", ErrUnavailable, err)
	}

	var entry Entry
	if len(vals) > 0 {
		if s, ok := vals[0].(string); ok {
			entry.Token = s
		}
	}
	if len(vals) > 1 {
		if s, ok := vals[1].(string); ok && s != "" {
			entry.User = []byte(s)
		}
	}
	return entry, nil
}

// Save implements [Store]. Both keys are written in one pipeline so a reader
// never observes a token without its user record.
func (r *Redis) Save(ctx context.Context, entry Entry) error {
	pipe := r.client.TxPipeline()
	pipe.Set(ctx, r.tokenKey(), entry.Token, r.ttl)
	if len(entry.User) > 0 {
		pipe.Set(ctx, r.userKey(), string(entry.User), r.ttl)
	} else {
		pipe.Del(ctx, r.userKey())
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("store: %w: %v", ErrUnavailable, err)
	}
	return nil
}

// Clear implements [Store]. Deleting absent keys is not an error, which
// keeps repeated teardowns idempotent.
func (r *Redis) Clear(ctx context.Context) error {
	if err := r.client.Del(ctx, r.tokenKey(), r.userKey()).Err(); err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("store: %w: %v", ErrUnavailable, err)
	}
	return nil
}
