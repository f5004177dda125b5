package models

import (
	"context"
	"time"

	"github.com/sharedcode/redismodels/redis"
)

// List is a Redis list of strings. Push and Pop work on the head, the Back variants on
// the tail. As a queue, items are enqueued at the head and dequeued from the tail.
type List struct {
	Key
}

// NewList returns a List view of key.
func NewList(c *redis.Client, key string) *List {
	return &List{Key: *NewKey(c, key)}
}

// Length returns the number of items.
func (l *List) Length(ctx context.Context) *redis.Deferred[int64] {
	conn := l.Connection()
	return redis.Defer[int64](conn, conn.LLen(ctx, l.key))
}

// Range returns the items between start and stop, both inclusive. Negative indices count
// from the tail, so Range(ctx, 0, -1) returns the whole list.
func (l *List) Range(ctx context.Context, start, stop int64) *redis.Deferred[[]string] {
	conn := l.Connection()
	return redis.Defer[[]string](conn, conn.LRange(ctx, l.key, start, stop))
}

// Push inserts values at the head, one after the other, so the last value ends up first.
// Empty values are skipped. Resolves to the new length, or 0 if nothing was pushed.
func (l *List) Push(ctx context.Context, values ...string) *redis.Deferred[int64] {
	return l.push(ctx, false, values)
}

// PushBack appends values at the tail. Empty values are skipped.
func (l *List) PushBack(ctx context.Context, values ...string) *redis.Deferred[int64] {
	return l.push(ctx, true, values)
}

func (l *List) push(ctx context.Context, back bool, values []string) *redis.Deferred[int64] {
	items := make([]any, 0, len(values))
	for _, v := range values {
		if v != "" {
			items = append(items, v)
		}
	}
	if len(items) == 0 {
		return redis.Resolved[int64](0)
	}
	conn := l.Connection()
	if back {
		return redis.Defer[int64](conn, conn.RPush(ctx, l.key, items...))
	}
	return redis.Defer[int64](conn, conn.LPush(ctx, l.key, items...))
}

// Enqueue adds values to the queue.
func (l *List) Enqueue(ctx context.Context, values ...string) *redis.Deferred[int64] {
	return l.Push(ctx, values...)
}

// Dequeue takes the oldest value off the queue, or redis.Nil when it is empty.
func (l *List) Dequeue(ctx context.Context) *redis.Deferred[string] {
	return l.PopBack(ctx)
}

// Pop removes and returns the head, or redis.Nil when the list is empty.
func (l *List) Pop(ctx context.Context) *redis.Deferred[string] {
	conn := l.Connection()
	return redis.Defer[string](conn, conn.LPop(ctx, l.key))
}

// PopBack removes and returns the tail, or redis.Nil when the list is empty.
func (l *List) PopBack(ctx context.Context) *redis.Deferred[string] {
	conn := l.Connection()
	return redis.Defer[string](conn, conn.RPop(ctx, l.key))
}

// BlockingPop is Pop waiting up to timeout for an item; zero waits forever.
// Resolves to redis.Nil on timeout. Inside a transaction Redis never blocks.
func (l *List) BlockingPop(ctx context.Context, timeout time.Duration) *redis.Deferred[string] {
	conn := l.Connection()
	return popped(redis.Defer[[]string](conn, conn.BLPop(ctx, timeout, l.key)))
}

// BlockingPopBack is PopBack waiting up to timeout for an item; zero waits forever.
func (l *List) BlockingPopBack(ctx context.Context, timeout time.Duration) *redis.Deferred[string] {
	conn := l.Connection()
	return popped(redis.Defer[[]string](conn, conn.BRPop(ctx, timeout, l.key)))
}

// popped extracts the value from a [key, value] blocking pop reply.
func popped(d *redis.Deferred[[]string]) *redis.Deferred[string] {
	return redis.Then(d, func(reply []string, err error) (string, error) {
		if err != nil {
			return "", err
		}
		if len(reply) < 2 {
			return "", redis.Nil
		}
		return reply[1], nil
	})
}

// Move pops the tail of this list and pushes it onto the head of the list at destination.
// Resolves to the moved value, or redis.Nil when this list is empty.
func (l *List) Move(ctx context.Context, destination string) *redis.Deferred[string] {
	conn := l.Connection()
	return redis.Defer[string](conn, conn.RPopLPush(ctx, l.key, destination))
}

// BlockingMove is Move waiting up to timeout for an item; zero waits forever.
func (l *List) BlockingMove(ctx context.Context, destination string, timeout time.Duration) *redis.Deferred[string] {
	conn := l.Connection()
	return redis.Defer[string](conn, conn.BRPopLPush(ctx, l.key, destination, timeout))
}

// Requeue moves the tail of the list back to its head.
func (l *List) Requeue(ctx context.Context) *redis.Deferred[string] {
	return l.Move(ctx, l.key)
}

// BlockingRequeue is Requeue waiting up to timeout for an item.
func (l *List) BlockingRequeue(ctx context.Context, timeout time.Duration) *redis.Deferred[string] {
	return l.BlockingMove(ctx, l.key, timeout)
}

// Remove removes occurrences of value: the first count from the head when count > 0, the
// last -count when count < 0, all of them when count is 0. Resolves to the number removed.
func (l *List) Remove(ctx context.Context, value string, count int64) *redis.Deferred[int64] {
	conn := l.Connection()
	return redis.Defer[int64](conn, conn.LRem(ctx, l.key, count, value))
}

// FindIndex returns the index of the first occurrence of value between start and stop,
// or -1 when there is none.
func (l *List) FindIndex(ctx context.Context, value string, start, stop int64) *redis.Deferred[int64] {
	return redis.Then(l.Range(ctx, start, stop), func(items []string, err error) (int64, error) {
		if err != nil {
			return -1, err
		}
		for i, item := range items {
			if item == value {
				return int64(i) + start, nil
			}
		}
		return -1, nil
	})
}
