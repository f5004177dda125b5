package models

import (
	"context"

	"github.com/sharedcode/redismodels/redis"
)

// Key is a Redis key of any type. It is the base of the typed structures.
type Key struct {
	Model
	key string
}

// NewKey returns a Key view of key.
func NewKey(c *redis.Client, key string) *Key {
	return &Key{
		Model: NewModel(c),
		key:   key,
	}
}

// Name returns the Redis key.
func (k *Key) Name() string {
	return k.key
}

// Delete removes the key. Resolves to the number of keys removed.
func (k *Key) Delete(ctx context.Context) *redis.Deferred[int64] {
	conn := k.Connection()
	return redis.Defer[int64](conn, conn.Del(ctx, k.key))
}

// Exists reports whether the key exists.
func (k *Key) Exists(ctx context.Context) *redis.Deferred[bool] {
	conn := k.Connection()
	return redis.Then(redis.Defer[int64](conn, conn.Exists(ctx, k.key)), func(n int64, err error) (bool, error) {
		return n > 0, err
	})
}
