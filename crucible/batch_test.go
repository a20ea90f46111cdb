package crucible_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crucible/crucible"
	"github.com/katalvlaran/crucible/grid"
)

// TestFindMany_SharesGrid runs several goals over one grid concurrently and
// compares each with a sequential search.
func TestFindMany_SharesGrid(t *testing.T) {
	g := mustParse(t, canonical)
	var queries []crucible.Query
	for _, goal := range []grid.Coord{g.Corner(), grid.C(6, 6), grid.C(12, 0), grid.C(0, 12)} {
		queries = append(queries, crucible.Query{Start: grid.C(0, 0), Goal: crucible.AtCoord(goal)})
	}
	queries = append(queries, crucible.Query{
		Start:   grid.C(0, 0),
		Goal:    crucible.AtCorner(g),
		Options: []crucible.Option{crucible.WithPolicy(crucible.UltraPolicy())},
	})

	results, err := crucible.FindMany(context.Background(), g, queries, 2)
	require.NoError(t, err)
	require.Len(t, results, len(queries))

	assert.Equal(t, int64(102), results[0].Cost)
	assert.Equal(t, int64(94), results[4].Cost)
	for i, q := range queries {
		want, err := crucible.FindCheapestPath(g, q.Start, q.Goal, q.Options...)
		require.NoError(t, err)
		assert.Equal(t, want.Cost, results[i].Cost, "query %d", i)
	}
}

// TestFindMany_SharedOptions applies the shared options to every query.
func TestFindMany_SharedOptions(t *testing.T) {
	g := mustParse(t, "1111111\n1119111")
	queries := []crucible.Query{{Start: grid.C(0, 0), Goal: crucible.AtCorner(g)}}

	results, err := crucible.FindMany(context.Background(), g, queries, 0, crucible.WithMaxRun(10))
	require.NoError(t, err)
	assert.Equal(t, int64(7), results[0].Cost)
}

// TestFindMany_Failure surfaces the failing query's error.
func TestFindMany_Failure(t *testing.T) {
	g := mustParse(t, "123\n456\n789")
	queries := []crucible.Query{
		{Start: grid.C(0, 0), Goal: crucible.AtCorner(g)},
		{Start: grid.C(0, 0), Goal: crucible.AtCoord(grid.C(9, 9))},
	}

	results, err := crucible.FindMany(context.Background(), g, queries, 1)
	assert.Nil(t, results)
	assert.ErrorIs(t, err, crucible.ErrNoPathFound)
	assert.Contains(t, err.Error(), "query 1")

	_, err = crucible.FindMany(context.Background(), nil, queries, 1)
	assert.ErrorIs(t, err, crucible.ErrNilGrid)
}

// TestFindMany_Empty returns an empty result set.
func TestFindMany_Empty(t *testing.T) {
	g := mustParse(t, "1")
	results, err := crucible.FindMany(context.Background(), g, nil, 4)
	require.NoError(t, err)
	assert.Empty(t, results)
}

// TestFindMany_NilContext treats a nil context as context.Background().
func TestFindMany_NilContext(t *testing.T) {
	g := mustParse(t, "123\n456\n789")
	queries := []crucible.Query{{Start: grid.C(0, 0), Goal: crucible.AtCorner(g)}}

	var ctx context.Context
	results, err := crucible.FindMany(ctx, g, queries, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(20), results[0].Cost)
}

// TestFindMany_ContextOverridesQuery runs under the FindMany context even
// when a query brings its own.
func TestFindMany_ContextOverridesQuery(t *testing.T) {
	g := mustParse(t, "123\n456\n789")
	cancelled, cancel := context.WithCancel(context.Background())
	cancel()
	queries := []crucible.Query{{
		Start:   grid.C(0, 0),
		Goal:    crucible.AtCorner(g),
		Options: []crucible.Option{crucible.WithContext(cancelled)},
	}}

	results, err := crucible.FindMany(context.Background(), g, queries, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(20), results[0].Cost)
}
