// Package core provides a compact, index-addressed, in-memory directed
// graph with generic vertex and edge labels.
//
// The Graph G = (V,E) is built around a few deliberate choices:
//
//   - Vertices are identified by a zero-based integer index assigned at
//     insertion and stable for the lifetime of the graph. Vertices are
//     append-only; there is no vertex removal.
//   - Edges are directed, owned by their source vertex, and stored as an
//     insertion-ordered slice. Parallel edges between the same ordered
//     pair are permitted and independently addressable.
//   - Edge and vertex labels are generic (`comparable` type parameters),
//     so lookup-by-label (EdgeLabel, IndexOf, FollowPath) uses plain
//     value equality, without reflection or dynamic typing.
//   - A reserved sentinel weight, Infinity, marks an edge as structural
//     (unweighted) and a distance as "no path". SumWeights performs
//     infinity-aware, overflow-guarded addition so finite sums can never
//     collide with the sentinel.
//
// Adjacency is a slice, not a hash set: edge lookup, adjacency tests and
// removal are O(out-degree of the source vertex). This trades O(1) lookup
// for low memory overhead, preserved insertion order and edge
// multiplicity.
//
// Concurrency: core.Graph is an exclusively-owned mutable structure with
// no internal synchronization. Concurrent read-only access to an
// unchanging graph is safe; any interleaved mutation requires external
// locking by the caller.
//
// Errors:
//
//	ErrIndexOutOfRange - a vertex index is negative or ≥ VertexCount().
//
// "No result" conditions (missing edge, label not present, no matching
// path step) are not errors: they are reported through the NotFound index
// sentinel or an ok-bool, and callers must check them explicitly.
package core
