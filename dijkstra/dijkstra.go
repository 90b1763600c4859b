// File: dijkstra.go
// Role: the relaxation runner shared by every search in this package,
//       and the public entry points Between, Closest, AllDistances and
//       Furthest.

package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/digraph/core"
)

// runner holds the mutable state of a single search invocation.
type runner[V, E comparable] struct {
	g       *core.Graph[V, E] // read-only within the search
	entries []DistanceEntry   // arena, indexed by vertex
	pq      nodePQ            // lazy-decrease-key min-heap
}

// newRunner allocates the entry arena (every vertex at Infinity with no
// predecessor), seeds the origin at distance zero and enqueues it alone.
// All other vertices enter the queue only once discovered by relaxation.
func newRunner[V, E comparable](g *core.Graph[V, E], origin int) *runner[V, E] {
	n := g.VertexCount()
	entries := make([]DistanceEntry, n)
	for i := range entries {
		entries[i] = DistanceEntry{Vertex: i, Dist: core.Infinity, Prev: core.NotFound}
	}
	entries[origin].Dist = 0

	r := &runner[V, E]{g: g, entries: entries, pq: make(nodePQ, 0, n)}
	heap.Init(&r.pq)
	heap.Push(&r.pq, nodeItem{vertex: origin, dist: 0})

	return r
}

// pop returns the next authoritative vertex: it discards stale entries
// (distance snapshot worse than the vertex's recorded best) until the
// queue yields a live one or empties.
func (r *runner[V, E]) pop() (int, bool) {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(nodeItem)
		if item.dist > r.entries[item.vertex].Dist {
			continue
		}

		return item.vertex, true
	}

	return core.NotFound, false
}

// relax examines every outgoing edge of u and improves neighbor entries.
// A candidate distance is the infinity-aware, overflow-guarded sum of
// u's settled distance and the edge weight; structural (Infinity-weight)
// edges therefore never improve anything. Each improvement rewrites the
// neighbor's entry and pushes a fresh heap item.
func (r *runner[V, E]) relax(u int) error {
	edges, err := r.g.OutEdges(u)
	if err != nil {
		return fmt.Errorf("dijkstra: out-edges of %d: %w", u, err)
	}

	du := r.entries[u].Dist
	for _, e := range edges {
		alt := core.SumWeights(du, e.Weight)
		if alt < r.entries[e.To].Dist {
			r.entries[e.To].Dist = alt
			r.entries[e.To].Prev = u
			heap.Push(&r.pq, nodeItem{vertex: e.To, dist: alt})
		}
	}

	return nil
}

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

// Between computes the shortest path from origin toward target, stopping
// as soon as the target is settled. The returned Result carries the
// target's DistanceEntry (Dist == core.Infinity when unreachable) and the
// arena for path reconstruction via Result.Path.
//
// Complexity: O((V + E) log V); often far less thanks to the early exit.
func Between[V, E comparable](g *core.Graph[V, E], origin, target int) (*Result, error) {
	if err := validate(g, origin, target); err != nil {
		return nil, err
	}

	r := newRunner(g, origin)
	for {
		u, ok := r.pop()
		if !ok {
			break
		}
		// Target settled, or the frontier is exhausted with no path.
		if u == target || r.entries[u].Dist == core.Infinity {
			break
		}
		if err := r.relax(u); err != nil {
			return nil, err
		}
	}

	return &Result{Origin: origin, Target: target, Entries: r.entries}, nil
}

// Closest returns the index of the nearest vertex (by shortest-path
// distance from origin) whose label equals target, or core.NotFound if
// no reachable vertex matches. The origin itself is considered first.
//
// Complexity: O((V + E) log V) worst case.
func Closest[V, E comparable](g *core.Graph[V, E], origin int, target V) (int, error) {
	if err := validate(g, origin); err != nil {
		return core.NotFound, err
	}

	r := newRunner(g, origin)
	for {
		u, ok := r.pop()
		if !ok {
			break
		}
		label, err := g.VertexLabel(u)
		if err != nil {
			return core.NotFound, fmt.Errorf("dijkstra: label of %d: %w", u, err)
		}
		if label == target {
			return u, nil
		}
		if r.entries[u].Dist == core.Infinity {
			break
		}
		if err = r.relax(u); err != nil {
			return core.NotFound, err
		}
	}

	return core.NotFound, nil
}

// AllDistances runs the relaxation loop to exhaustion and returns the
// settled distance, indexed by vertex, from origin to every vertex.
// Unreachable vertices carry core.Infinity.
//
// Complexity: O((V + E) log V).
func AllDistances[V, E comparable](g *core.Graph[V, E], origin int) ([]int64, error) {
	if err := validate(g, origin); err != nil {
		return nil, err
	}

	r := newRunner(g, origin)
	for {
		u, ok := r.pop()
		if !ok {
			break
		}
		if err := r.relax(u); err != nil {
			return nil, err
		}
	}

	dist := make([]int64, len(r.entries))
	for i := range r.entries {
		dist[i] = r.entries[i].Dist
	}

	return dist, nil
}

// Furthest returns the index of the reachable vertex with the greatest
// finite shortest-path distance from origin. Vertices at distance zero
// (the origin itself) and unreachable vertices are ignored; if nothing
// else is reachable, Furthest returns core.NotFound.
//
// Complexity: O((V + E) log V).
func Furthest[V, E comparable](g *core.Graph[V, E], origin int) (int, error) {
	dist, err := AllDistances(g, origin)
	if err != nil {
		return core.NotFound, err
	}

	var max int64
	maxI := core.NotFound
	for i, d := range dist {
		if d != core.Infinity && d > max {
			max = d
			maxI = i
		}
	}

	return maxI, nil
}
