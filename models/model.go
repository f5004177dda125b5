// Package models provides typed views of Redis data structures built on a redis.Client.
//
// Every method that talks to Redis returns a *redis.Deferred. Outside a transaction the
// command has already run and Await returns at once; inside one (see
// redis.Client.WithTransaction) the command is buffered and the Deferred can be added to
// the transaction, resolving when it commits.
package models

import (
	"github.com/sharedcode/redismodels/redis"
)

// Model is the base of all models. It embeds the Client the model issues its commands
// through, so transactions can be controlled from any model:
//
//	tx, err := list.BeginTransaction()
//
// Models sharing a Client share its transaction.
type Model struct {
	*redis.Client
}

// NewModel returns a Model bound to c.
func NewModel(c *redis.Client) Model {
	return Model{Client: c}
}
