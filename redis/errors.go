package redis

import (
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/sharedcode/redismodels"
)

// Nil is the go-redis reply for "no such value" (missing key, empty pop, failed NX/XX set).
// It passes through Deferred.Await unchanged.
var Nil = redis.Nil

// IsNil reports whether err is, or wraps, Nil.
func IsNil(err error) bool {
	return errors.Is(err, redis.Nil)
}

var (
	// ErrTransactionInProgress is returned when a transaction is begun while another one is active.
	ErrTransactionInProgress = errors.New("a transaction is already in progress")
	// ErrNoTransaction is returned when executing or discarding with no active transaction.
	ErrNoTransaction = errors.New("no transaction in progress")
	// ErrTransactionEnded is returned when a Transaction is used after it was committed or discarded.
	ErrTransactionEnded = errors.New("transaction has already ended")
	// ErrTransactionDiscarded is reported by deferred results whose batch was discarded.
	ErrTransactionDiscarded = errors.New("transaction was discarded")
	// ErrOperationCanceled is reported by deferred results that were canceled.
	ErrOperationCanceled = errors.New("operation was canceled")
)

func precondition(err error, userData any) error {
	return redismodels.Error{
		Code:     redismodels.PreconditionViolation,
		Err:      err,
		UserData: userData,
	}
}

var (
	errDiscarded = redismodels.Error{Code: redismodels.TransactionDiscarded, Err: ErrTransactionDiscarded}
	errCanceled  = redismodels.Error{Code: redismodels.OperationCanceled, Err: ErrOperationCanceled}
)
