package models

import (
	"context"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/sharedcode/redismodels/redis"
)

// Condition restricts when String.Set writes.
type Condition int

const (
	// Always writes regardless of whether the key exists.
	Always Condition = iota
	// IfExists only overwrites an existing key (SET XX).
	IfExists
	// IfNotExists only creates a missing key (SET NX).
	IfNotExists
)

// SetOptions tunes String.Set.
type SetOptions struct {
	// Timeout expires the key after the given duration; zero keeps it forever.
	Timeout time.Duration
	// Condition defaults to Always.
	Condition Condition
}

// String is a Redis string.
type String struct {
	Key
}

// NewString returns a String view of key.
func NewString(c *redis.Client, key string) *String {
	return &String{Key: *NewKey(c, key)}
}

// Length returns the length of the stored value.
func (s *String) Length(ctx context.Context) *redis.Deferred[int64] {
	conn := s.Connection()
	return redis.Defer[int64](conn, conn.StrLen(ctx, s.key))
}

// Get returns the stored value, or redis.Nil when the key does not exist.
func (s *String) Get(ctx context.Context) *redis.Deferred[string] {
	conn := s.Connection()
	return redis.Defer[string](conn, conn.Get(ctx, s.key))
}

// Set stores value. Resolves to whether it was written, which is false only when
// opts.Condition prevented the write.
func (s *String) Set(ctx context.Context, value any, opts SetOptions) *redis.Deferred[bool] {
	args := goredis.SetArgs{TTL: opts.Timeout}
	switch opts.Condition {
	case IfExists:
		args.Mode = "XX"
	case IfNotExists:
		args.Mode = "NX"
	}
	conn := s.Connection()
	return redis.Then(redis.Defer[string](conn, conn.SetArgs(ctx, s.key, value, args)), func(_ string, err error) (bool, error) {
		if redis.IsNil(err) {
			return false, nil
		}
		return err == nil, err
	})
}
