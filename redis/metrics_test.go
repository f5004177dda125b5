package redis

import (
	"context"
	"errors"
	"testing"
)

func TestTransactionMetrics(t *testing.T) {
	c, _ := newTestClient(t)
	ctx := context.Background()

	begun := transactionsBegun.Get()
	executed := transactionsExecuted.Get()
	discarded := transactionsDiscarded.Get()

	if _, err := c.WithTransaction(ctx, func(tx *Transaction) error { return nil }); err != nil {
		t.Fatal(err)
	}
	c.WithTransaction(ctx, func(tx *Transaction) error { return errors.New("abort") })

	if got := transactionsBegun.Get() - begun; got != 2 {
		t.Errorf("begun counter moved by %d, want 2", got)
	}
	if got := transactionsExecuted.Get() - executed; got != 1 {
		t.Errorf("executed counter moved by %d, want 1", got)
	}
	if got := transactionsDiscarded.Get() - discarded; got != 1 {
		t.Errorf("discarded counter moved by %d, want 1", got)
	}
}
