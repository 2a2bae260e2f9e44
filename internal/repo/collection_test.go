package repo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fooddash-app/fooddash-backend/pkg/kv"
)

type widget struct {
	ID    string `json:"id"`
	Count int    `json:"count"`
}

func newTestCollection(t *testing.T) Collection[widget] {
	t.Helper()
	return NewCollection[widget](kv.NewMemory(), kv.Namespace+"widgets")
}

func TestAllOnUninitializedKeyIsEmpty(t *testing.T) {
	coll := newTestCollection(t)

	items, err := coll.All(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestAppendPreservesInsertionOrder(t *testing.T) {
	ctx := context.Background()
	coll := newTestCollection(t)

	require.NoError(t, coll.Append(ctx, widget{ID: "a"}))
	require.NoError(t, coll.Append(ctx, widget{ID: "b"}))
	require.NoError(t, coll.Append(ctx, widget{ID: "c"}))

	items, err := coll.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, []widget{{ID: "a"}, {ID: "b"}, {ID: "c"}}, items)
}

func TestUpdateMissIsSilentNoOp(t *testing.T) {
	ctx := context.Background()
	coll := newTestCollection(t)
	require.NoError(t, coll.Append(ctx, widget{ID: "a", Count: 1}))

	changed, err := coll.Update(ctx,
		func(w widget) bool { return w.ID == "missing" },
		func(w widget) widget { w.Count = 99; return w },
	)
	require.NoError(t, err)
	assert.False(t, changed)

	items, err := coll.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, []widget{{ID: "a", Count: 1}}, items, "a miss must leave the collection unchanged")
}

func TestUpdateRewritesMatchingElement(t *testing.T) {
	ctx := context.Background()
	coll := newTestCollection(t)
	require.NoError(t, coll.Append(ctx, widget{ID: "a", Count: 1}))
	require.NoError(t, coll.Append(ctx, widget{ID: "b", Count: 2}))

	changed, err := coll.Update(ctx,
		func(w widget) bool { return w.ID == "b" },
		func(w widget) widget { w.Count = 20; return w },
	)
	require.NoError(t, err)
	assert.True(t, changed)

	items, err := coll.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, []widget{{ID: "a", Count: 1}, {ID: "b", Count: 20}}, items)
}

func TestRemoveFiltersOutElement(t *testing.T) {
	ctx := context.Background()
	coll := newTestCollection(t)
	require.NoError(t, coll.Append(ctx, widget{ID: "a"}))
	require.NoError(t, coll.Append(ctx, widget{ID: "b"}))

	removed, err := coll.Remove(ctx, func(w widget) bool { return w.ID == "a" })
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = coll.Remove(ctx, func(w widget) bool { return w.ID == "a" })
	require.NoError(t, err)
	assert.False(t, removed)

	items, err := coll.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, []widget{{ID: "b"}}, items)
}

func TestFilterMatchesExactly(t *testing.T) {
	ctx := context.Background()
	coll := newTestCollection(t)
	require.NoError(t, coll.Replace(ctx, []widget{{ID: "a", Count: 1}, {ID: "b", Count: 2}, {ID: "c", Count: 1}}))

	items, err := coll.Filter(ctx, func(w widget) bool { return w.Count == 1 })
	require.NoError(t, err)
	assert.Equal(t, []widget{{ID: "a", Count: 1}, {ID: "c", Count: 1}}, items)
}
