package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/digraph/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("bfs: graph is nil")

	// ErrVertexOutOfRange is returned when origin or target is negative
	// or not smaller than the graph's vertex count.
	ErrVertexOutOfRange = errors.New("bfs: vertex index out of range")
)

// validate checks the graph pointer and each index in idx.
func validate[V, E comparable](g *core.Graph[V, E], idx ...int) error {
	if g == nil {
		return ErrNilGraph
	}
	for _, i := range idx {
		if i < 0 || i >= g.VertexCount() {
			return fmt.Errorf("%w: %d", ErrVertexOutOfRange, i)
		}
	}

	return nil
}

// Distances runs a breadth-first traversal from origin and returns the
// accumulated distance to every vertex, indexed by vertex. Each vertex is
// marked visited on first enqueue; its distance is the predecessor's
// distance plus the weight of the discovering edge (infinity-aware, so a
// structural edge propagates core.Infinity). Unreached vertices carry
// core.Infinity; the origin is always zero.
//
// Complexity: O(V + E).
func Distances[V, E comparable](g *core.Graph[V, E], origin int) ([]int64, error) {
	if err := validate(g, origin); err != nil {
		return nil, err
	}

	n := g.VertexCount()
	visited := make([]bool, n)
	dist := make([]int64, n)
	for i := range dist {
		dist[i] = core.Infinity
	}
	dist[origin] = 0
	visited[origin] = true

	queue := make([]int, 0, n)
	queue = append(queue, origin)

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		edges, err := g.OutEdges(current)
		if err != nil {
			return nil, fmt.Errorf("bfs: out-edges of %d: %w", current, err)
		}
		for _, e := range edges {
			if !visited[e.To] {
				visited[e.To] = true
				dist[e.To] = core.SumWeights(dist[current], e.Weight)
				queue = append(queue, e.To)
			}
		}
	}

	return dist, nil
}

// Path runs a unit-distance breadth-first traversal from origin and
// reconstructs the path to target as an ordered slice of vertex indices,
// origin first. Edge weights are ignored: every edge counts one step, so
// the result is a fewest-edges path. The traversal stops early once the
// target is dequeued. The boolean is false when the target was never
// reached; Path(origin, origin) is the single-element path [origin].
//
// Complexity: O(V + E).
func Path[V, E comparable](g *core.Graph[V, E], origin, target int) ([]int, bool, error) {
	if err := validate(g, origin, target); err != nil {
		return nil, false, err
	}

	n := g.VertexCount()
	visited := make([]bool, n)
	dist := make([]int64, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = core.Infinity
		prev[i] = core.NotFound
	}
	dist[origin] = 0
	visited[origin] = true

	queue := make([]int, 0, n)
	queue = append(queue, origin)

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if current == target {
			break
		}

		edges, err := g.OutEdges(current)
		if err != nil {
			return nil, false, fmt.Errorf("bfs: out-edges of %d: %w", current, err)
		}
		for _, e := range edges {
			if !visited[e.To] {
				visited[e.To] = true
				dist[e.To] = dist[current] + 1
				prev[e.To] = current
				queue = append(queue, e.To)
			}
		}
	}

	if dist[target] == core.Infinity {
		return nil, false, nil
	}

	// Walk the predecessor slice backward from target; dist[target] edges
	// means dist[target]+1 vertices.
	path := make([]int, dist[target]+1)
	index := target
	for i := len(path) - 1; i >= 0; i-- {
		path[i] = index
		index = prev[index]
	}

	return path, true, nil
}
