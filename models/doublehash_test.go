package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sharedcode/redismodels/redis"
)

func newTestDoubleHash(t *testing.T) (*DoubleHash, *redis.Client) {
	t.Helper()
	c, _ := newTestClient(t)
	return NewDoubleHash(c, "dh", "dhinv"), c
}

func members(t *testing.T, d *redis.Deferred[[]string]) []string {
	t.Helper()
	v, err := d.Await(ctx)
	require.NoError(t, err)
	return v
}

func TestDoubleHashSet(t *testing.T) {
	dh, _ := newTestDoubleHash(t)

	require.NoError(t, dh.Set(ctx, "foo", "bar"))
	require.NoError(t, dh.Set(ctx, "foo", "bat"))

	assert.ElementsMatch(t, []string{"bar", "bat"}, members(t, dh.Get(ctx, "foo")))
	assert.Equal(t, []string{"foo"}, members(t, dh.GetInverted(ctx, "bar")))
	assert.Equal(t, []string{"foo"}, members(t, dh.GetInverted(ctx, "bat")))

	fields, err := dh.Fields(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"foo"}, fields)
	inverted, err := dh.FieldsInverted(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"bar", "bat"}, inverted)
}

func TestDoubleHashSetIsIdempotent(t *testing.T) {
	dh, _ := newTestDoubleHash(t)

	require.NoError(t, dh.Set(ctx, "foo", "bar"))
	require.NoError(t, dh.Set(ctx, "foo", "bar"))

	assert.Equal(t, []string{"bar"}, members(t, dh.Get(ctx, "foo")))
	assert.Equal(t, []string{"foo"}, members(t, dh.GetInverted(ctx, "bar")))
}

func TestDoubleHashSetInverted(t *testing.T) {
	dh, _ := newTestDoubleHash(t)

	require.NoError(t, dh.SetInverted(ctx, "bar", "foo"))

	assert.Equal(t, []string{"bar"}, members(t, dh.Get(ctx, "foo")))
	assert.Equal(t, []string{"foo"}, members(t, dh.GetInverted(ctx, "bar")))
}

func TestDoubleHashEmptyValueIsNoop(t *testing.T) {
	dh, _ := newTestDoubleHash(t)

	require.NoError(t, dh.Set(ctx, "foo", ""))
	require.NoError(t, dh.SetInverted(ctx, "bar", ""))
	require.NoError(t, dh.Unset(ctx, "foo", ""))

	fields, err := dh.Fields(ctx)
	require.NoError(t, err)
	assert.Empty(t, fields)
	inverted, err := dh.FieldsInverted(ctx)
	require.NoError(t, err)
	assert.Empty(t, inverted)
}

func TestDoubleHashUnset(t *testing.T) {
	dh, _ := newTestDoubleHash(t)

	require.NoError(t, dh.Set(ctx, "foo", "bar"))
	require.NoError(t, dh.Set(ctx, "foo", "bat"))
	require.NoError(t, dh.Unset(ctx, "foo", "bar"))

	assert.Equal(t, []string{"bat"}, members(t, dh.Get(ctx, "foo")))
	assert.Empty(t, members(t, dh.GetInverted(ctx, "bar")))

	inverted, err := dh.FieldsInverted(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"bat"}, inverted)
}

func TestDoubleHashRemove(t *testing.T) {
	dh, _ := newTestDoubleHash(t)

	require.NoError(t, dh.Set(ctx, "foo", "bar"))
	require.NoError(t, dh.Set(ctx, "foo", "bat"))
	require.NoError(t, dh.Set(ctx, "baz", "bar"))
	require.NoError(t, dh.Remove(ctx, "foo"))

	assert.Empty(t, members(t, dh.Get(ctx, "foo")))
	assert.Equal(t, []string{"baz"}, members(t, dh.GetInverted(ctx, "bar")))
	assert.Empty(t, members(t, dh.GetInverted(ctx, "bat")))

	fields, err := dh.Fields(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"baz"}, fields)
	inverted, err := dh.FieldsInverted(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"bar"}, inverted)
}

func TestDoubleHashRemoveInverted(t *testing.T) {
	dh, _ := newTestDoubleHash(t)

	require.NoError(t, dh.Set(ctx, "foo", "bar"))
	require.NoError(t, dh.Set(ctx, "foo", "bat"))
	require.NoError(t, dh.Set(ctx, "baz", "bar"))
	require.NoError(t, dh.RemoveInverted(ctx, "bar"))

	assert.Equal(t, []string{"bat"}, members(t, dh.Get(ctx, "foo")))
	assert.Empty(t, members(t, dh.Get(ctx, "baz")))
	assert.Empty(t, members(t, dh.GetInverted(ctx, "bar")))

	fields, err := dh.Fields(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"foo"}, fields)
}

func TestDoubleHashRemoveMissingField(t *testing.T) {
	dh, _ := newTestDoubleHash(t)

	require.NoError(t, dh.Set(ctx, "foo", "bar"))
	require.NoError(t, dh.Remove(ctx, "nope"))

	assert.Equal(t, []string{"bar"}, members(t, dh.Get(ctx, "foo")))
}

func TestDoubleHashDelete(t *testing.T) {
	dh, c := newTestDoubleHash(t)
	other := NewString(c, "unrelated")
	_, err := other.Set(ctx, "keep", SetOptions{}).Await(ctx)
	require.NoError(t, err)

	require.NoError(t, dh.Set(ctx, "foo", "bar"))
	require.NoError(t, dh.Set(ctx, "baz", "bat"))
	require.NoError(t, dh.Delete(ctx))

	fields, err := dh.Fields(ctx)
	require.NoError(t, err)
	assert.Empty(t, fields)
	inverted, err := dh.FieldsInverted(ctx)
	require.NoError(t, err)
	assert.Empty(t, inverted)

	v, err := other.Get(ctx).Await(ctx)
	require.NoError(t, err)
	assert.Equal(t, "keep", v)

	// Deleting an empty double hash is a no-op.
	require.NoError(t, dh.Delete(ctx))
}

func TestDoubleHashPrefixesDoNotOverlap(t *testing.T) {
	c, _ := newTestClient(t)
	a := NewDoubleHash(c, "a", "ainv")
	ab := NewDoubleHash(c, "ab", "abinv")

	require.NoError(t, a.Set(ctx, "x", "1"))
	require.NoError(t, ab.Set(ctx, "y", "2"))

	fields, err := a.Fields(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, fields)

	require.NoError(t, a.Delete(ctx))
	fields, err = ab.Fields(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"y"}, fields)
}

func TestDoubleHashFailsInsideTransaction(t *testing.T) {
	dh, c := newTestDoubleHash(t)

	tx, err := c.BeginTransaction()
	require.NoError(t, err)
	defer tx.Discard()

	assert.ErrorIs(t, dh.Set(ctx, "foo", "bar"), redis.ErrTransactionInProgress)
	assert.ErrorIs(t, dh.Unset(ctx, "foo", "bar"), redis.ErrTransactionInProgress)
	assert.ErrorIs(t, dh.Remove(ctx, "foo"), redis.ErrTransactionInProgress)
	assert.ErrorIs(t, dh.RemoveInverted(ctx, "bar"), redis.ErrTransactionInProgress)
	assert.ErrorIs(t, dh.Delete(ctx), redis.ErrTransactionInProgress)
}

func TestDoubleHashGetInsideTransaction(t *testing.T) {
	dh, c := newTestDoubleHash(t)
	require.NoError(t, dh.Set(ctx, "foo", "bar"))

	results, err := c.WithTransaction(ctx, func(tx *redis.Transaction) error {
		return tx.AddOperation(dh.Get(ctx, "foo"), dh.GetInverted(ctx, "bar"))
	})
	require.NoError(t, err)
	assert.Equal(t, []any{[]string{"bar"}, []string{"foo"}}, results)
}

func TestEscapePattern(t *testing.T) {
	assert.Equal(t, `a\*b\?c\[d\]\\`, escapePattern(`a*b?c[d]\`))
	assert.Equal(t, "plain", escapePattern("plain"))
}

func TestDistinct(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, distinct([]string{"c", "a", "b", "a", "c"}))
	assert.Equal(t, []string{}, distinct(nil))
}

// assertMirrored checks that every value of every field lists the field back, and the
// other way round.
func assertMirrored(t *testing.T, dh *DoubleHash) {
	t.Helper()
	fields, err := dh.Fields(ctx)
	require.NoError(t, err)
	for _, f := range fields {
		for _, v := range members(t, dh.Get(ctx, f)) {
			assert.Contains(t, members(t, dh.GetInverted(ctx, v)), f, "field %q missing from inverse of %q", f, v)
		}
	}
	inverted, err := dh.FieldsInverted(ctx)
	require.NoError(t, err)
	for _, v := range inverted {
		for _, f := range members(t, dh.GetInverted(ctx, v)) {
			assert.Contains(t, members(t, dh.Get(ctx, f)), v, "value %q missing from field %q", v, f)
		}
	}
}

func TestDoubleHashEmptyFieldStaysMirrored(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(dh *DoubleHash) error
		forward map[string][]string
		inverse map[string][]string
	}{
		{
			name: "set",
			mutate: func(dh *DoubleHash) error {
				return dh.Set(ctx, "", "x")
			},
			forward: map[string][]string{"": {"x"}},
			inverse: map[string][]string{"x": {""}},
		},
		{
			name: "set inverted",
			mutate: func(dh *DoubleHash) error {
				return dh.SetInverted(ctx, "", "x")
			},
			forward: map[string][]string{"x": {""}},
			inverse: map[string][]string{"": {"x"}},
		},
		{
			name: "unset",
			mutate: func(dh *DoubleHash) error {
				if err := dh.Set(ctx, "", "x"); err != nil {
					return err
				}
				if err := dh.Set(ctx, "", "y"); err != nil {
					return err
				}
				return dh.Unset(ctx, "", "x")
			},
			forward: map[string][]string{"": {"y"}},
			inverse: map[string][]string{"x": {}, "y": {""}},
		},
		{
			name: "remove",
			mutate: func(dh *DoubleHash) error {
				if err := dh.Set(ctx, "", "x"); err != nil {
					return err
				}
				if err := dh.Set(ctx, "a", "x"); err != nil {
					return err
				}
				return dh.Remove(ctx, "")
			},
			forward: map[string][]string{"": {}, "a": {"x"}},
			inverse: map[string][]string{"x": {"a"}},
		},
		{
			name: "remove inverted",
			mutate: func(dh *DoubleHash) error {
				if err := dh.SetInverted(ctx, "", "x"); err != nil {
					return err
				}
				return dh.RemoveInverted(ctx, "")
			},
			forward: map[string][]string{"x": {}},
			inverse: map[string][]string{"": {}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dh, _ := newTestDoubleHash(t)
			require.NoError(t, tt.mutate(dh))

			for f, want := range tt.forward {
				assert.ElementsMatch(t, want, members(t, dh.Get(ctx, f)), "forward %q", f)
			}
			for v, want := range tt.inverse {
				assert.ElementsMatch(t, want, members(t, dh.GetInverted(ctx, v)), "inverse %q", v)
			}
			assertMirrored(t, dh)
		})
	}
}

func TestDoubleHashFieldsListEmptyField(t *testing.T) {
	dh, _ := newTestDoubleHash(t)
	require.NoError(t, dh.Set(ctx, "", "x"))
	require.NoError(t, dh.Set(ctx, "a", "x"))

	fields, err := dh.Fields(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"", "a"}, fields)
	inverted, err := dh.FieldsInverted(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, inverted)
}
