package redis

import (
	"time"

	"github.com/VictoriaMetrics/metrics"
)

var (
	transactionsBegun     = metrics.NewCounter(`redismodels_transactions_begun_total`)
	transactionsExecuted  = metrics.NewCounter(`redismodels_transactions_executed_total`)
	transactionsDiscarded = metrics.NewCounter(`redismodels_transactions_discarded_total`)
	transactionsFailed    = metrics.NewCounter(`redismodels_transactions_failed_total`)

	transactionCommands = metrics.NewHistogram(`redismodels_transaction_commands`)
	transactionDuration = metrics.NewHistogram(`redismodels_transaction_exec_duration_seconds`)
)

// observeExecution records one EXEC round trip of n buffered commands.
func observeExecution(n int, start time.Time, err error) {
	transactionDuration.UpdateDuration(start)
	transactionCommands.Update(float64(n))
	if err != nil {
		transactionsFailed.Inc()
		return
	}
	transactionsExecuted.Inc()
}
