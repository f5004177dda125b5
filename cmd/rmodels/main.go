// Command rmodels inspects and edits Redis data through the redismodels models: double
// hashes, strings, lists, hashes and sets.
//
//	rmodels --address localhost:6379 dhash set --key users --inverse-key groups alice admins
//	rmodels dhash get-inverted --key users --inverse-key groups admins
//
// Every flag can also be given as an RMODELS_* environment variable (e.g. RMODELS_ADDRESS),
// read from the process environment or from .env and .env.local in the working directory.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sharedcode/redismodels"
)

func main() {
	redismodels.ConfigureLogging()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
