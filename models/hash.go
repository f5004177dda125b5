package models

import (
	"context"
	"sort"

	"github.com/sharedcode/redismodels/redis"
)

// Hash is a Redis hash of string fields and values.
type Hash struct {
	Key
}

// NewHash returns a Hash view of key.
func NewHash(c *redis.Client, key string) *Hash {
	return &Hash{Key: *NewKey(c, key)}
}

// Length returns the number of fields.
func (h *Hash) Length(ctx context.Context) *redis.Deferred[int64] {
	conn := h.Connection()
	return redis.Defer[int64](conn, conn.HLen(ctx, h.key))
}

// FieldLength returns the length of the value of field.
func (h *Hash) FieldLength(ctx context.Context, field string) *redis.Deferred[int64] {
	conn := h.Connection()
	cmd := conn.Do(ctx, "HSTRLEN", h.key, field)
	return redis.Then(redis.Defer[any](conn, cmd), func(_ any, err error) (int64, error) {
		if err != nil {
			return 0, err
		}
		return cmd.Int64()
	})
}

// FieldExists reports whether field is set.
func (h *Hash) FieldExists(ctx context.Context, field string) *redis.Deferred[bool] {
	conn := h.Connection()
	return redis.Defer[bool](conn, conn.HExists(ctx, h.key, field))
}

// Fields returns all field names.
func (h *Hash) Fields(ctx context.Context) *redis.Deferred[[]string] {
	conn := h.Connection()
	return redis.Defer[[]string](conn, conn.HKeys(ctx, h.key))
}

// GetAll returns the whole hash.
func (h *Hash) GetAll(ctx context.Context) *redis.Deferred[map[string]string] {
	conn := h.Connection()
	return redis.Defer[map[string]string](conn, conn.HGetAll(ctx, h.key))
}

// Get returns the value of field, or redis.Nil when it is not set.
func (h *Hash) Get(ctx context.Context, field string) *redis.Deferred[string] {
	conn := h.Connection()
	return redis.Defer[string](conn, conn.HGet(ctx, h.key, field))
}

// Enumerate calls fn for every field matching match (a glob, empty for all) using HSCAN,
// fetching about count entries per round trip (0 lets Redis decide), until fn returns false.
// It always runs on the direct connection: a scan is not atomic and cannot be part of a
// transaction.
func (h *Hash) Enumerate(ctx context.Context, match string, count int64, fn func(field, value string) bool) error {
	it := h.Direct().HScan(ctx, h.key, 0, match, count).Iterator()
	for it.Next(ctx) {
		field := it.Val()
		if !it.Next(ctx) {
			break
		}
		if !fn(field, it.Val()) {
			return nil
		}
	}
	return it.Err()
}

// SetAll sets every field of values. Resolves to the number of fields added; an empty map
// is a no-op.
func (h *Hash) SetAll(ctx context.Context, values map[string]string) *redis.Deferred[int64] {
	if len(values) == 0 {
		return redis.Resolved[int64](0)
	}
	fields := make([]string, 0, len(values))
	for f := range values {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	args := make([]any, 0, 2*len(fields))
	for _, f := range fields {
		args = append(args, f, values[f])
	}
	conn := h.Connection()
	return redis.Defer[int64](conn, conn.HSet(ctx, h.key, args...))
}

// Set sets field to value. Resolves to 1 if the field is new, 0 if it was updated; an
// empty value is a no-op.
func (h *Hash) Set(ctx context.Context, field, value string) *redis.Deferred[int64] {
	if value == "" {
		return redis.Resolved[int64](0)
	}
	conn := h.Connection()
	return redis.Defer[int64](conn, conn.HSet(ctx, h.key, field, value))
}

// Remove deletes field. Resolves to the number of fields removed.
func (h *Hash) Remove(ctx context.Context, field string) *redis.Deferred[int64] {
	conn := h.Connection()
	return redis.Defer[int64](conn, conn.HDel(ctx, h.key, field))
}
