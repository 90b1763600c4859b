// Package dfs provides iterative, stack-based depth-first traversal over
// a core.Graph, plus a DFS-based topological sort.
//
// Both traversal variants use an explicit stack rather than recursion, so
// call depth never limits graph size. Neighbors of a newly processed
// vertex are pushed unconditionally (the stack may hold duplicate
// pending entries for a vertex) and a vertex is processed only the first
// time it is popped while still unvisited.
//
// Distance quirk: unit distance is recorded when a neighbor is pushed
// while still unvisited, not when it is popped. A vertex pushed several
// times before its first pop keeps the distance of the latest such push,
// so discovery order, not processing order, fixes the recorded distance.
// This mirrors long-standing behavior that downstream consumers depend
// on; use bfs.Path for fewest-edges distances.
//
// TopologicalSort is a separate visit with temporary/permanent marks: it
// walks every vertex in ascending index order, pushes each vertex onto
// the result on completion of its descendants, and returns the reverse of
// that completion order. Meeting a temporarily-marked vertex during
// descent means the graph has a directed cycle and the whole sort fails
// with ErrCycleDetected; no partial order is returned.
//
// Complexity:
//
//   - Time:  O(V + E) for every operation in this package.
//   - Space: O(V + E) for the explicit stacks and per-call mark slices,
//     all discarded on return.
//
// Errors:
//
//   - ErrNilGraph          if the graph pointer is nil.
//   - ErrVertexOutOfRange  if origin or target is not a valid index.
//   - ErrCycleDetected     if TopologicalSort meets a directed cycle.
package dfs
