// Package digraph is a small, dependency-light toolkit for building and
// querying in-memory directed graphs with generic vertex and edge labels.
//
// What's inside?
//
//	A graph container plus the standard library of algorithms most
//	embedding applications need:
//		• core     — index-addressed Graph, labeled vertices and edges,
//		             adjacency queries, leaves, label-directed FollowPath
//		• bfs      — breadth-first distances and fewest-edges paths
//		• dfs      — iterative depth-first traversal and topological sort
//		• dijkstra — shortest paths, closest-vertex-by-label,
//		             all-distances and furthest-point searches
//
// Why digraph?
//
//   - Plain integer indices — vertices are 0..N-1, stable for the graph's
//     lifetime, so per-call algorithm state is just slices
//   - Generic labels — vertex and edge values are comparable type
//     parameters, matched by value equality, no reflection
//   - Explicit sentinels — core.Infinity for "no path", core.NotFound for
//     "no such vertex"; unreachable is a result, not an error
//   - Single-threaded by design — no internal locking, no hidden state
//     retained between calls; wrap the graph in your own lock to share it
//
// Quick example: vertices {A,B,C,D} with directed edges A→B(1), B→C(2),
// A→C(5), C→D(1). Dijkstra from A to D costs 4 via A→B→C→D, not 6 via
// A→C→D.
//
// See each subpackage's doc.go and runnable examples for details.
//
//	go get github.com/katalvlaran/digraph
package digraph
