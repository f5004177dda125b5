package models

import (
	"context"

	"github.com/sharedcode/redismodels/redis"
)

// Set is a Redis set of strings.
type Set struct {
	Key
}

// NewSet returns a Set view of key.
func NewSet(c *redis.Client, key string) *Set {
	return &Set{Key: *NewKey(c, key)}
}

// Size returns the number of members.
func (s *Set) Size(ctx context.Context) *redis.Deferred[int64] {
	conn := s.Connection()
	return redis.Defer[int64](conn, conn.SCard(ctx, s.key))
}

// Members returns all members, in no particular order.
func (s *Set) Members(ctx context.Context) *redis.Deferred[[]string] {
	conn := s.Connection()
	return redis.Defer[[]string](conn, conn.SMembers(ctx, s.key))
}

// Contains reports whether value is a member.
func (s *Set) Contains(ctx context.Context, value string) *redis.Deferred[bool] {
	conn := s.Connection()
	return redis.Defer[bool](conn, conn.SIsMember(ctx, s.key, value))
}

// Add adds value. Resolves to the number of members added. The empty string is a
// valid member.
func (s *Set) Add(ctx context.Context, value string) *redis.Deferred[int64] {
	conn := s.Connection()
	return redis.Defer[int64](conn, conn.SAdd(ctx, s.key, value))
}

// Remove removes value. Resolves to the number of members removed.
func (s *Set) Remove(ctx context.Context, value string) *redis.Deferred[int64] {
	conn := s.Connection()
	return redis.Defer[int64](conn, conn.SRem(ctx, s.key, value))
}
