// Package dijkstra defines the search-record types and sentinel errors
// for the shortest-path searches in this package.
package dijkstra

import (
	"errors"

	"github.com/katalvlaran/digraph/core"
)

// Sentinel errors returned by the searches in this package.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed in.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexOutOfRange indicates that an origin or target index is
	// negative or not smaller than the graph's vertex count.
	ErrVertexOutOfRange = errors.New("dijkstra: vertex index out of range")
)

// DistanceEntry is the per-vertex search record of a single invocation.
//
// Entries live in an arena slice indexed by vertex; Prev is an index into
// that arena (equivalently, a vertex index) rather than a pointer, so the
// whole search state is trivially disposable when the call returns.
type DistanceEntry struct {
	// Vertex is the index of the vertex this entry tracks.
	Vertex int

	// Dist is the best known distance from the origin, core.Infinity
	// until the vertex is discovered.
	Dist int64

	// Prev is the arena index of the predecessor that achieved Dist, or
	// core.NotFound for the origin and for undiscovered vertices.
	Prev int
}

// Result is the outcome of a targeted search (Between). It retains the
// full entry arena so the shortest path can be reconstructed by walking
// predecessor indices backward from the target.
type Result struct {
	// Origin is the index the search started from.
	Origin int

	// Target is the index the search ran toward.
	Target int

	// Entries is the per-vertex arena, indexed by vertex. Entries for
	// vertices beyond the early-exit frontier may be unsettled; the
	// target's entry and its predecessor chain are always authoritative.
	Entries []DistanceEntry
}

// Entry returns the target's distance entry.
func (r *Result) Entry() DistanceEntry {
	return r.Entries[r.Target]
}

// Distance returns the shortest distance from origin to target, or
// core.Infinity if the target is unreachable.
func (r *Result) Distance() int64 {
	return r.Entries[r.Target].Dist
}

// Path reconstructs the shortest path as vertex indices from origin to
// target by walking the predecessor chain backward. The boolean is false
// when the target is unreachable.
func (r *Result) Path() ([]int, bool) {
	if r.Entries[r.Target].Dist == core.Infinity {
		return nil, false
	}

	path := make([]int, 0)
	for v := r.Target; v != core.NotFound; v = r.Entries[v].Prev {
		path = append(path, v)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, true
}

// nodeItem is one priority-queue entry: a vertex index and the distance
// snapshot it was pushed with. Stale items (snapshot greater than the
// vertex's current best) are skipped when popped.
type nodeItem struct {
	vertex int
	dist   int64
}

// nodePQ is a min-heap of nodeItem ordered by dist ascending, used with
// container/heap. Ties are broken by the heap's internal pop order, which
// is deterministic for a fixed push sequence.
type nodePQ []nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
