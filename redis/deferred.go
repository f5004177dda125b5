package redis

import (
	"context"
	"sync"
)

// resulter is satisfied by every typed go-redis command (*IntCmd, *StringCmd, *StringSliceCmd, ...).
type resulter[T any] interface {
	Result() (T, error)
}

// pending is the settlement and cancel state shared by a Deferred and everything derived from it.
type pending struct {
	// nil when the value was known up front.
	conn       Connection
	cancelOnce sync.Once
	canceled   chan struct{}
}

func newPending(conn Connection) *pending {
	return &pending{
		conn:     conn,
		canceled: make(chan struct{}),
	}
}

func (p *pending) isCanceled() bool {
	select {
	case <-p.canceled:
		return true
	default:
		return false
	}
}

func (p *pending) settled() <-chan struct{} {
	if p.conn == nil {
		return closedChan
	}
	return p.conn.settled()
}

// resolved reports whether the command ran and its result is final.
func (p *pending) resolved() bool {
	select {
	case <-p.settled():
		return p.conn == nil || !p.conn.discarded()
	default:
		return false
	}
}

// Deferred is a handle to the eventual result of a store command. Commands issued on the
// direct connection have already run when the Deferred is returned; commands issued on a
// transaction's batch resolve only after the batch is executed.
type Deferred[T any] struct {
	p      *pending
	result func() (T, error)
}

// Defer wraps cmd, which was issued on conn.
func Defer[T any](conn Connection, cmd resulter[T]) *Deferred[T] {
	return &Deferred[T]{
		p:      newPending(conn),
		result: cmd.Result,
	}
}

// Resolved returns a Deferred already resolved to v. Nothing is sent to the store.
func Resolved[T any](v T) *Deferred[T] {
	return &Deferred[T]{
		p: newPending(nil),
		result: func() (T, error) {
			return v, nil
		},
	}
}

// Then derives a Deferred whose result is fn applied to d's result. Both share settlement
// and cancellation: canceling either one cancels the other.
func Then[T, U any](d *Deferred[T], fn func(T, error) (U, error)) *Deferred[U] {
	return &Deferred[U]{
		p: d.p,
		result: func() (U, error) {
			return fn(d.result())
		},
	}
}

// Await blocks until the result is final, the Deferred is canceled or ctx is done.
//
// It returns an error with code OperationCanceled if the Deferred was canceled and one with
// code TransactionDiscarded if its batch was discarded. Nil from the store is returned as is.
func (d *Deferred[T]) Await(ctx context.Context) (T, error) {
	var zero T
	select {
	case <-d.p.settled():
	case <-d.p.canceled:
	default:
		select {
		case <-d.p.settled():
		case <-d.p.canceled:
		case <-ctx.Done():
			return zero, ctx.Err()
		}
	}
	if d.p.isCanceled() {
		return zero, errCanceled
	}
	if d.p.conn != nil && d.p.conn.discarded() {
		return zero, errDiscarded
	}
	return d.result()
}

// Resolve is Await with the value boxed, so a Deferred can be added to a Transaction.
func (d *Deferred[T]) Resolve(ctx context.Context) (any, error) {
	v, err := d.Await(ctx)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// Cancel marks the Deferred as canceled and reports whether it now is. It is a no-op
// returning false once the command ran. It must not race with the execution of the batch,
// which holds as long as the owning Client is used by one task at a time.
func (d *Deferred[T]) Cancel() bool {
	if d.p.resolved() {
		return false
	}
	d.p.cancelOnce.Do(func() {
		close(d.p.canceled)
	})
	return true
}

// Canceled reports whether Cancel took effect.
func (d *Deferred[T]) Canceled() bool {
	return d.p.isCanceled()
}
