// File: dfs.go
// Role: stack-based depth-first traversal: Distances (unit distances to
//       every vertex) and Path (early-exit path reconstruction).

package dfs

import (
	"fmt"

	"github.com/katalvlaran/digraph/core"
)

// Distances runs an iterative depth-first traversal from origin and
// returns a unit distance per vertex, indexed by vertex, with
// core.Infinity where unreached. Distances follow DFS tree discovery: a
// neighbor's distance is assigned whenever it is pushed while still
// unvisited (see the package doc for the discovery-order quirk), so the
// values are edge counts along the DFS tree, not shortest distances.
//
// Complexity: O(V + E).
func Distances[V, E comparable](g *core.Graph[V, E], origin int) ([]int64, error) {
	if err := validate(g, origin); err != nil {
		return nil, err
	}

	n := g.VertexCount()
	discovered := make([]bool, n)
	dist := make([]int64, n)
	for i := range dist {
		dist[i] = core.Infinity
	}
	dist[origin] = 0

	stack := make([]int, 0, n)
	stack = append(stack, origin)

	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if discovered[current] {
			continue
		}
		discovered[current] = true

		edges, err := g.OutEdges(current)
		if err != nil {
			return nil, fmt.Errorf("dfs: out-edges of %d: %w", current, err)
		}
		for _, e := range edges {
			// Unconditional push: duplicates are filtered at pop time.
			stack = append(stack, e.To)
			if !discovered[e.To] {
				dist[e.To] = dist[current] + 1
			}
		}
	}

	return dist, nil
}

// Path runs an iterative depth-first traversal from origin, stopping as
// soon as target is popped, and reconstructs the discovered path as
// vertex indices from origin to target. The path follows DFS tree edges
// and is generally not the shortest one. The boolean is false when the
// target was never reached; reachability is tracked through the
// Infinity-initialized distance slice, never through zero defaults.
// Path(origin, origin) is the single-element path [origin].
//
// Complexity: O(V + E).
func Path[V, E comparable](g *core.Graph[V, E], origin, target int) ([]int, bool, error) {
	if err := validate(g, origin, target); err != nil {
		return nil, false, err
	}

	n := g.VertexCount()
	discovered := make([]bool, n)
	dist := make([]int64, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = core.Infinity
		prev[i] = core.NotFound
	}
	dist[origin] = 0

	stack := make([]int, 0, n)
	stack = append(stack, origin)

	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if current == target {
			break
		}
		if discovered[current] {
			continue
		}
		discovered[current] = true

		edges, err := g.OutEdges(current)
		if err != nil {
			return nil, false, fmt.Errorf("dfs: out-edges of %d: %w", current, err)
		}
		for _, e := range edges {
			stack = append(stack, e.To)
			if !discovered[e.To] {
				dist[e.To] = dist[current] + 1
				prev[e.To] = current
			}
		}
	}

	if dist[target] == core.Infinity {
		return nil, false, nil
	}

	path := make([]int, dist[target]+1)
	index := target
	for i := len(path) - 1; i >= 0; i-- {
		path[i] = index
		index = prev[index]
	}

	return path, true, nil
}
