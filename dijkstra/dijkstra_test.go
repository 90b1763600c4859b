// Package dijkstra_test validates the shortest-path searches: input
// validation, the reference square graph from the package docs, lazy
// decrease-key behavior with parallel edges, structural-edge handling,
// and the label-driven and exhaustive variants.
package dijkstra_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/digraph/core"
	"github.com/katalvlaran/digraph/dijkstra"
)

// buildSquare constructs the reference graph:
//
//	A(0)→B(1) w=1, B(1)→C(2) w=2, A(0)→C(2) w=5, C(2)→D(3) w=1.
//
// Shortest A→D is 4 via A→B→C→D, not 6 via A→C→D.
func buildSquare(t *testing.T) *core.Graph[string, string] {
	t.Helper()
	g := core.FromLabels[string, string]([]string{"A", "B", "C", "D"})
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(1, 2, 2))
	require.NoError(t, g.AddEdge(0, 2, 5))
	require.NoError(t, g.AddEdge(2, 3, 1))

	return g
}

// TestValidation covers the error taxonomy shared by all searches.
func TestValidation(t *testing.T) {
	_, err := dijkstra.Between[string, string](nil, 0, 1)
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)

	g := buildSquare(t)
	_, err = dijkstra.Between(g, 0, 9)
	assert.ErrorIs(t, err, dijkstra.ErrVertexOutOfRange)

	_, err = dijkstra.Between(g, -1, 0)
	assert.ErrorIs(t, err, dijkstra.ErrVertexOutOfRange)

	_, err = dijkstra.Closest(g, 7, "A")
	assert.ErrorIs(t, err, dijkstra.ErrVertexOutOfRange)

	_, err = dijkstra.AllDistances(g, 4)
	assert.ErrorIs(t, err, dijkstra.ErrVertexOutOfRange)
}

// TestBetween_Square verifies distance and path on the reference graph.
func TestBetween_Square(t *testing.T) {
	g := buildSquare(t)

	res, err := dijkstra.Between(g, 0, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(4), res.Distance())

	path, ok := res.Path()
	require.True(t, ok)
	assert.Equal(t, []int{0, 1, 2, 3}, path)

	entry := res.Entry()
	assert.Equal(t, 3, entry.Vertex)
	assert.Equal(t, 2, entry.Prev, "D's predecessor on the shortest path is C")
}

// TestBetween_OriginIsTarget verifies the degenerate search.
func TestBetween_OriginIsTarget(t *testing.T) {
	g := buildSquare(t)

	res, err := dijkstra.Between(g, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(0), res.Distance())

	path, ok := res.Path()
	require.True(t, ok)
	assert.Equal(t, []int{2}, path)
}

// TestBetween_Unreachable verifies the Infinity sentinel for an isolated
// vertex and for a vertex upstream of the origin.
func TestBetween_Unreachable(t *testing.T) {
	g := buildSquare(t)
	e := g.AddVertex("E") // no edges at all

	res, err := dijkstra.Between(g, 0, e)
	require.NoError(t, err)
	assert.Equal(t, core.Infinity, res.Distance())

	_, ok := res.Path()
	assert.False(t, ok)

	// Edges are directed: nothing leads back to A from D.
	res, err = dijkstra.Between(g, 3, 0)
	require.NoError(t, err)
	assert.Equal(t, core.Infinity, res.Distance())
}

// TestBetween_ParallelEdges verifies that the cheapest of several
// parallel edges wins under lazy decrease-key.
func TestBetween_ParallelEdges(t *testing.T) {
	g := core.NewSized[string, string](2)
	require.NoError(t, g.AddEdge(0, 1, 8))
	require.NoError(t, g.AddEdge(0, 1, 3))
	require.NoError(t, g.AddEdge(0, 1, 5))

	res, err := dijkstra.Between(g, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(3), res.Distance())
}

// TestBetween_StructuralEdgesImpassable verifies that Infinity-weight
// edges never yield a finite distance.
func TestBetween_StructuralEdgesImpassable(t *testing.T) {
	g := core.NewSized[string, string](3)
	require.NoError(t, g.AddUnweightedEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 2, 1))

	res, err := dijkstra.Between(g, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, core.Infinity, res.Distance(), "structural edge must not be relaxed")
}

// TestAllDistances_Square verifies the exhaustive variant, isolated
// vertex included.
func TestAllDistances_Square(t *testing.T) {
	g := buildSquare(t)
	g.AddVertex("E")

	dist, err := dijkstra.AllDistances(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 1, 3, 4, core.Infinity}, dist)
}

// TestClosest verifies nearest-by-label search, including the origin
// itself and duplicate labels at different distances.
func TestClosest(t *testing.T) {
	g := buildSquare(t)

	// The origin's own label matches first at distance zero.
	idx, err := dijkstra.Closest(g, 0, "A")
	require.NoError(t, err)
	assert.Equal(t, 0, idx)

	idx, err = dijkstra.Closest(g, 0, "D")
	require.NoError(t, err)
	assert.Equal(t, 3, idx)

	// Two vertices labeled "X": one at distance 1, one at distance 4.
	g2 := core.FromLabels[string, string]([]string{"start", "X", "mid", "X"})
	require.NoError(t, g2.AddEdge(0, 2, 1))
	require.NoError(t, g2.AddEdge(2, 3, 3))
	require.NoError(t, g2.AddEdge(0, 1, 1))
	idx, err = dijkstra.Closest(g2, 0, "X")
	require.NoError(t, err)
	assert.Equal(t, 1, idx, "nearer duplicate must win")

	// No reachable match.
	idx, err = dijkstra.Closest(g, 3, "A")
	require.NoError(t, err)
	assert.Equal(t, core.NotFound, idx)
}

// TestFurthest verifies the furthest-point search and that isolated
// vertices are ignored.
func TestFurthest(t *testing.T) {
	g := buildSquare(t)
	g.AddVertex("E") // isolated: must not be reported

	idx, err := dijkstra.Furthest(g, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, idx, "D at distance 4 is the furthest reachable vertex")

	// From a leaf nothing else is reachable.
	idx, err = dijkstra.Furthest(g, 3)
	require.NoError(t, err)
	assert.Equal(t, core.NotFound, idx)
}

// TestBetween_MinimalityProperty cross-checks Dijkstra against a brute
// enumeration on a small fixed graph with several competing routes.
func TestBetween_MinimalityProperty(t *testing.T) {
	// 0→1(2), 0→2(4), 1→2(1), 1→3(7), 2→4(3), 3→5(1), 4→3(2), 4→5(5).
	g := core.NewSized[int, int](6)
	type edge struct {
		from, to int
		w        int64
	}
	for _, e := range []edge{
		{0, 1, 2}, {0, 2, 4}, {1, 2, 1}, {1, 3, 7},
		{2, 4, 3}, {3, 5, 1}, {4, 3, 2}, {4, 5, 5},
	} {
		require.NoError(t, g.AddEdge(e.from, e.to, e.w))
	}

	// Hand-checked shortest distances from 0.
	want := []int64{0, 2, 3, 8, 6, 9}
	dist, err := dijkstra.AllDistances(g, 0)
	require.NoError(t, err)
	assert.Equal(t, want, dist)

	// Targeted search agrees with the exhaustive one per vertex.
	for v, d := range want {
		res, err := dijkstra.Between(g, 0, v)
		require.NoError(t, err)
		assert.Equal(t, d, res.Distance(), "distance to %d", v)
	}
}
