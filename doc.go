// Package redismodels models Redis data structures as typed Go values.
//
// The redis subpackage holds the connection and transaction plumbing: a Client (the
// coordinator) routes every command either to the live go-redis client or to the
// MULTI/EXEC batch of an open Transaction, and every command comes back as a Deferred
// result that is awaited right away or once the batch executes.
//
// The models subpackage builds typed wrappers on top of a Client: Key, String, List,
// Hash, Set and DoubleHash, a two-way index of Redis sets that keeps every
// field -> value association mirrored as value -> field.
//
// Typical use:
//
//	c := redis.Open(redis.DefaultOptions())
//	defer c.Close()
//	dh := models.NewDoubleHash(c, "user:groups", "group:users")
//	if err := dh.Set(ctx, "alice", "admins"); err != nil {
//		...
//	}
//
// Several model operations can be committed as one unit:
//
//	results, err := c.WithTransaction(ctx, func(tx *redis.Transaction) error {
//		return tx.AddOperation(list.Push(ctx, "a"), str.Set(ctx, "b", models.SetOptions{}))
//	})
package redismodels
