// Package dijkstra implements Dijkstra's shortest-path search over a
// core.Graph, plus the searches built on the same relaxation loop:
// closest-vertex-by-label, all-distances and furthest-point.
//
// The search processes vertices in order of increasing distance from the
// origin using a binary min-heap priority queue. Improvements push a new
// queue entry instead of decreasing a key in place ("lazy decrease-key"),
// so the queue may hold several stale entries per vertex; only the first
// pop of a vertex (the one carrying its minimal distance) is
// authoritative, and later stale pops are skipped.
//
// Per-search state is an arena of DistanceEntry records, one slot per
// vertex, indexed by vertex. Predecessors are recorded as indices into
// that arena rather than pointers, so the whole search state is a single
// disposable slice.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each vertex is settled at most once: V authoritative pops.
//   - Each edge relaxation may push one new heap entry: up to E pushes.
//   - Space: O(V + E): O(V) for the entry arena, O(E) worst-case heap
//     occupancy under lazy decrease-key.
//
// Preconditions:
//
//   - Edge weights must be non-negative. Negative weights are out of
//     scope and unchecked: results are undefined, not a guarded error.
//   - Edges carrying the core.Infinity sentinel are structural and never
//     relaxed (SumWeights keeps their candidate distance infinite).
//
// Errors:
//
//   - ErrNilGraph          if the graph pointer is nil.
//   - ErrVertexOutOfRange  if origin or target is not a valid index.
//
// Unreachable targets are not errors: the returned entry carries
// core.Infinity, Closest and Furthest return core.NotFound.
package dijkstra
