// Package bfs provides queue-based breadth-first traversal over a
// core.Graph, in two variants:
//
//   - Distances accumulates edge weights along BFS tree edges and returns
//     a per-vertex distance slice. Vertices are marked visited on first
//     enqueue, so each vertex's distance is fixed by the tree edge that
//     discovered it. Under uniform (or structural) weights this is the
//     true shortest distance; under arbitrary weights it is the distance
//     along the BFS tree, which is not guaranteed minimal.
//   - Path ignores weights entirely, counts unit distance per edge,
//     records predecessors, stops early once the target is dequeued, and
//     reconstructs the origin→target path from the predecessor slice.
//
// Complexity:
//
//   - Time:  O(V + E): each vertex enqueued at most once, each edge
//     scanned at most once.
//   - Space: O(V) for the queue, visited marks and distance/predecessor
//     slices, all allocated per call and discarded on return.
//
// Errors:
//
//   - ErrNilGraph          if the graph pointer is nil.
//   - ErrVertexOutOfRange  if origin or target is not a valid index.
//
// Unreached vertices are not errors: Distances reports core.Infinity and
// Path reports ok == false.
package bfs
