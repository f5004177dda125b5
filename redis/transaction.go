package redis

import (
	"context"
	"errors"

	log "log/slog"

	"github.com/sharedcode/redismodels"
)

// Operation is a pending result collected by a Transaction. *Deferred[T] implements it.
type Operation interface {
	// Resolve waits for the result and returns it boxed.
	Resolve(ctx context.Context) (any, error)
	// Cancel abandons the result; a no-op once it is resolved.
	Cancel() bool
}

// Transaction collects the operations issued while its Client's batch is open and, when it
// ends, either commits them as one MULTI/EXEC or discards them all.
//
// Typical use goes through Client.WithTransaction. Driving it by hand looks like:
//
//	tx, err := client.BeginTransaction()
//	if err != nil {
//		return err
//	}
//	err = tx.AddOperation(list.Push(ctx, "a"), list.Length(ctx))
//	results, err := tx.End(ctx, err)
type Transaction struct {
	id       redismodels.UUID
	client   *Client
	ops      []Operation
	callback func(results ...any)
	ended    bool
}

// ID identifies the transaction in logs.
func (t *Transaction) ID() redismodels.UUID {
	return t.id
}

// Len returns the number of operations added so far.
func (t *Transaction) Len() int {
	return len(t.ops)
}

// Ended reports whether the transaction was committed or discarded.
func (t *Transaction) Ended() bool {
	return t.ended
}

// AddOperation appends ops, in order, to the results of the transaction. It may be called
// any number of times before the transaction ends; afterwards it cancels ops and fails
// with ErrTransactionEnded.
func (t *Transaction) AddOperation(ops ...Operation) error {
	if t.ended {
		for _, op := range ops {
			op.Cancel()
		}
		return precondition(ErrTransactionEnded, t.id.String())
	}
	t.ops = append(t.ops, ops...)
	return nil
}

// SetResultCallback registers fn to be called with the ordered results after a successful
// commit. Only one callback is kept; the last one registered wins.
func (t *Transaction) SetResultCallback(fn func(results ...any)) {
	t.callback = fn
}

// Commit executes the transaction and resolves every added operation in the order it was
// added. A Nil result (e.g. GET of a missing key) is reported as a nil entry.
func (t *Transaction) Commit(ctx context.Context) ([]any, error) {
	if t.ended {
		return nil, precondition(ErrTransactionEnded, t.id.String())
	}
	t.ended = true

	if _, err := t.client.ExecuteTransaction(ctx); err != nil {
		return nil, err
	}
	results := make([]any, len(t.ops))
	for i, op := range t.ops {
		r, err := op.Resolve(ctx)
		if err != nil && !IsNil(err) {
			return nil, err
		}
		results[i] = r
	}
	if t.callback != nil {
		t.callback(results...)
	}
	return results, nil
}

// Discard drops the transaction and cancels every added operation. All operations are
// canceled even when discarding fails; the discard error is returned.
func (t *Transaction) Discard() error {
	if t.ended {
		return precondition(ErrTransactionEnded, t.id.String())
	}
	t.ended = true

	err := t.client.DiscardTransaction()
	for _, op := range t.ops {
		op.Cancel()
	}
	return err
}

// End closes the scope of the transaction: with a nil failure it commits, otherwise it
// discards and returns failure, joined with the discard error if there was one.
func (t *Transaction) End(ctx context.Context, failure error) ([]any, error) {
	if failure == nil {
		return t.Commit(ctx)
	}
	log.Warn("Discarding transaction", "id", t.id, "cause", failure)
	if err := t.Discard(); err != nil {
		return nil, errors.Join(failure, err)
	}
	return nil, failure
}
