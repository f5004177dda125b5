package redismodels

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sethvargo/go-retry"
)

// UUID identifies a transaction in log lines and precondition errors.
type UUID uuid.UUID

// NilUUID is the zero value, never handed out by NewUUID.
var NilUUID UUID

// NewUUID returns a random (version 4) UUID. Reading the random source is retried a few
// times; NewUUID panics if it keeps failing.
func NewUUID() UUID {
	var id uuid.UUID
	err := retry.Do(context.Background(), retry.WithMaxRetries(9, retry.NewConstant(time.Millisecond)), func(context.Context) error {
		var err error
		if id, err = uuid.NewRandom(); err != nil {
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		panic(err)
	}
	return UUID(id)
}

// ParseUUID parses the canonical text form produced by String.
func ParseUUID(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	return UUID(id), err
}

// IsNil reports whether id is NilUUID.
func (id UUID) IsNil() bool {
	return id == NilUUID
}

func (id UUID) String() string {
	return uuid.UUID(id).String()
}
