package redis

import (
	"context"
	"sync/atomic"

	"github.com/redis/go-redis/v9"

	"github.com/sharedcode/redismodels"
)

// Connection is what models issue their commands against. It is either the live client,
// where a command runs as soon as it is called, or the MULTI/EXEC batch of an open
// transaction, where commands are queued until the batch is executed or discarded.
//
// Only this package implements Connection; get one from Client.Connection or Client.Direct.
type Connection interface {
	redis.Cmdable
	// Do issues a command that has no typed helper.
	Do(ctx context.Context, args ...any) *redis.Cmd
	// InTransaction reports whether commands issued here are buffered instead of sent.
	InTransaction() bool

	// settled is closed once the results of commands issued here are final.
	settled() <-chan struct{}
	// discarded reports whether the buffered commands were dropped without running.
	discarded() bool
}

var closedChan = func() chan struct{} {
	c := make(chan struct{})
	close(c)
	return c
}()

// directConnection sends every command right away.
type directConnection struct {
	redis.UniversalClient
}

func (directConnection) InTransaction() bool      { return false }
func (directConnection) settled() <-chan struct{} { return closedChan }
func (directConnection) discarded() bool          { return false }

const (
	batchPending int32 = iota
	batchExecuted
	batchDiscarded
)

// batch buffers commands in a go-redis TxPipeline.
type batch struct {
	redis.Pipeliner
	id    redismodels.UUID
	done  chan struct{}
	state atomic.Int32
}

func newBatch(p redis.Pipeliner, id redismodels.UUID) *batch {
	return &batch{
		Pipeliner: p,
		id:        id,
		done:      make(chan struct{}),
	}
}

func (b *batch) InTransaction() bool      { return true }
func (b *batch) settled() <-chan struct{} { return b.done }
func (b *batch) discarded() bool          { return b.state.Load() == batchDiscarded }

func (b *batch) settle(state int32) {
	if b.state.CompareAndSwap(batchPending, state) {
		close(b.done)
	}
}

// exec sends the buffered commands wrapped in MULTI/EXEC. Results are final even on error.
func (b *batch) exec(ctx context.Context) ([]redis.Cmder, error) {
	defer b.settle(batchExecuted)
	return b.Pipeliner.Exec(ctx)
}

func (b *batch) discard() {
	b.Pipeliner.Discard()
	b.settle(batchDiscarded)
}
