package models

import (
	"context"
	"sort"
	"strings"

	log "log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/sharedcode/redismodels/redis"
)

// scanCount is the COUNT hint of the SCAN round trips that enumerate a side.
const scanCount = 256

// DoubleHash is a two-way map stored in Redis. Each field maps to a set of values and
// each value maps back to the set of fields it is associated with; values are therefore
// also called inverted fields.
//
// Every field is a Redis set named "{key}:{field}" holding its values, and every value is a
// set named "{inverseKey}:{value}" holding its fields. Set and Unset update both sides in one
// transaction. Remove and Delete read first and write in a second step, so a concurrent
// writer slipping in between can leave a dangling back-reference; scans are not atomic at all.
//
// Mutating methods open their own transaction and fail with redis.ErrTransactionInProgress
// when the Client already has one open.
type DoubleHash struct {
	Model
	key        string
	inverseKey string
}

// NewDoubleHash returns a DoubleHash whose forward sets live under key and inverse sets
// under inverseKey.
func NewDoubleHash(c *redis.Client, key, inverseKey string) *DoubleHash {
	return &DoubleHash{
		Model:      NewModel(c),
		key:        key,
		inverseKey: inverseKey,
	}
}

// Key returns the prefix of the forward sets.
func (d *DoubleHash) Key() string {
	return d.key
}

// InverseKey returns the prefix of the inverse sets.
func (d *DoubleHash) InverseKey() string {
	return d.inverseKey
}

// Fields returns every field, sorted.
func (d *DoubleHash) Fields(ctx context.Context) ([]string, error) {
	return d.fields(ctx, d.key)
}

// FieldsInverted returns every value (inverted field), sorted.
func (d *DoubleHash) FieldsInverted(ctx context.Context) ([]string, error) {
	return d.fields(ctx, d.inverseKey)
}

// Get returns the values associated with field.
func (d *DoubleHash) Get(ctx context.Context, field string) *redis.Deferred[[]string] {
	return d.subset(d.key, field).Members(ctx)
}

// GetInverted returns the fields associated with value.
func (d *DoubleHash) GetInverted(ctx context.Context, value string) *redis.Deferred[[]string] {
	return d.subset(d.inverseKey, value).Members(ctx)
}

// Set associates value with field on both sides. An empty value is a no-op; an empty
// field is stored like any other.
func (d *DoubleHash) Set(ctx context.Context, field, value string) error {
	if value == "" {
		return nil
	}
	return d.associate(ctx, field, value)
}

// SetInverted associates field with the inverted field value. An empty value is a no-op.
func (d *DoubleHash) SetInverted(ctx context.Context, field, value string) error {
	if value == "" {
		return nil
	}
	return d.associate(ctx, value, field)
}

// Unset dissociates value from field on both sides. An empty value is a no-op; an empty
// field is removed like any other.
func (d *DoubleHash) Unset(ctx context.Context, field, value string) error {
	if value == "" {
		return nil
	}
	_, err := d.WithTransaction(ctx, func(tx *redis.Transaction) error {
		return tx.AddOperation(
			d.subset(d.key, field).Remove(ctx, value),
			d.subset(d.inverseKey, value).Remove(ctx, field),
		)
	})
	return err
}

// Remove drops field and removes it from the inverse set of every value it was associated with.
func (d *DoubleHash) Remove(ctx context.Context, field string) error {
	return d.remove(ctx, d.key, d.inverseKey, field)
}

// RemoveInverted drops the inverted field value and removes it from every field it was
// associated with.
func (d *DoubleHash) RemoveInverted(ctx context.Context, value string) error {
	return d.remove(ctx, d.inverseKey, d.key, value)
}

// Delete removes every mapping on both sides.
func (d *DoubleHash) Delete(ctx context.Context) error {
	if err := d.RequireIdle(); err != nil {
		return err
	}

	var forward, inverse []string
	eg, ectx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		forward, err = d.scan(ectx, d.key)
		return err
	})
	eg.Go(func() error {
		var err error
		inverse, err = d.scan(ectx, d.inverseKey)
		return err
	})
	if err := eg.Wait(); err != nil {
		return err
	}

	keys := distinct(append(forward, inverse...))
	if len(keys) == 0 {
		return nil
	}
	log.Debug("Deleting double hash", "key", d.key, "inverse_key", d.inverseKey, "keys", len(keys))
	_, err := d.WithTransaction(ctx, func(tx *redis.Transaction) error {
		for _, k := range keys {
			if err := tx.AddOperation(NewKey(d.Client, k).Delete(ctx)); err != nil {
				return err
			}
		}
		return nil
	})
	return err
}

// associate adds value to field and field to value in one transaction.
func (d *DoubleHash) associate(ctx context.Context, field, value string) error {
	_, err := d.WithTransaction(ctx, func(tx *redis.Transaction) error {
		return tx.AddOperation(
			d.subset(d.key, field).Add(ctx, value),
			d.subset(d.inverseKey, value).Add(ctx, field),
		)
	})
	return err
}

func (d *DoubleHash) remove(ctx context.Context, key, inverseKey, field string) error {
	if err := d.RequireIdle(); err != nil {
		return err
	}
	values, err := d.Direct().SMembers(ctx, fieldName(key, field)).Result()
	if err != nil {
		return err
	}
	_, err = d.WithTransaction(ctx, func(tx *redis.Transaction) error {
		if err := tx.AddOperation(d.subset(key, field).Delete(ctx)); err != nil {
			return err
		}
		for _, v := range values {
			if err := tx.AddOperation(d.subset(inverseKey, v).Remove(ctx, field)); err != nil {
				return err
			}
		}
		return nil
	})
	return err
}

func (d *DoubleHash) fields(ctx context.Context, key string) ([]string, error) {
	keys, err := d.scan(ctx, key)
	if err != nil {
		return nil, err
	}
	prefix := key + ":"
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = strings.TrimPrefix(k, prefix)
	}
	return distinct(names), nil
}

// scan lists the Redis keys of every set under key. SCAN may report a key more than once.
func (d *DoubleHash) scan(ctx context.Context, key string) ([]string, error) {
	var keys []string
	it := d.Direct().Scan(ctx, 0, fieldName(escapePattern(key), "*"), scanCount).Iterator()
	for it.Next(ctx) {
		keys = append(keys, it.Val())
	}
	if err := it.Err(); err != nil {
		return nil, err
	}
	return keys, nil
}

func (d *DoubleHash) subset(key, field string) *Set {
	return NewSet(d.Client, fieldName(key, field))
}

func fieldName(key, field string) string {
	return key + ":" + field
}

var patternEscaper = strings.NewReplacer(`\`, `\\`, `*`, `\*`, `?`, `\?`, `[`, `\[`, `]`, `\]`)

// escapePattern quotes the glob metacharacters of a key so it only matches itself.
func escapePattern(key string) string {
	return patternEscaper.Replace(key)
}

// distinct returns the sorted unique elements of s.
func distinct(s []string) []string {
	if len(s) == 0 {
		return []string{}
	}
	sort.Strings(s)
	out := s[:1]
	for _, v := range s[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}
