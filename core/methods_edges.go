// File: methods_edges.go
// Role: edge lifecycle and adjacency queries: AddEdge/AddUnweightedEdge,
//       EdgeLabel, HasEdge, RemoveEdge, AdjacentIndices, OutEdges.
// Determinism:
//   - Outgoing edges keep insertion order; "first edge" in EdgeLabel and
//     RemoveEdge always means first by insertion.
// Complexity note:
//   - Per-pair queries are O(out-degree of the source vertex): adjacency
//     is a slice, not a hash set, to preserve multiplicity and order.

package core

// AddEdge appends a directed edge from→to with the given weight.
// Parallel edges between the same ordered pair are permitted and kept
// distinct; self-loops are permitted. The edge is unlabeled unless
// WithLabel is supplied.
// Returns ErrIndexOutOfRange if either endpoint is not a valid index.
// Complexity: O(1) amortized.
func (g *Graph[V, E]) AddEdge(from, to int, weight int64, opts ...EdgeOption[E]) error {
	if err := g.checkIndex(from); err != nil {
		return err
	}
	if err := g.checkIndex(to); err != nil {
		return err
	}

	e := Edge[E]{Weight: weight, To: to}
	for _, opt := range opts {
		opt(&e)
	}
	g.vertices[from].edges = append(g.vertices[from].edges, e)

	return nil
}

// AddUnweightedEdge appends a structural edge from→to carrying the
// Infinity weight sentinel. Structural edges express pure connectivity
// (adjacency, FollowPath, BFS/DFS reachability); they are impassable for
// Dijkstra, whose relaxation treats Infinity as "no finite cost".
// Complexity: O(1) amortized.
func (g *Graph[V, E]) AddUnweightedEdge(from, to int, opts ...EdgeOption[E]) error {
	return g.AddEdge(from, to, Infinity, opts...)
}

// EdgeLabel returns the label of the first edge from→to by insertion
// order. The boolean is false when no such edge exists.
// Returns ErrIndexOutOfRange if either endpoint is not a valid index.
// Complexity: O(out-degree of from).
func (g *Graph[V, E]) EdgeLabel(from, to int) (E, bool, error) {
	var zero E
	if err := g.checkIndex(from); err != nil {
		return zero, false, err
	}
	if err := g.checkIndex(to); err != nil {
		return zero, false, err
	}

	for _, e := range g.vertices[from].edges {
		if e.To == to {
			return e.Label, true, nil
		}
	}

	return zero, false, nil
}

// HasEdge reports whether at least one edge from→to exists.
// Returns ErrIndexOutOfRange if either endpoint is not a valid index.
// Complexity: O(out-degree of from).
func (g *Graph[V, E]) HasEdge(from, to int) (bool, error) {
	if err := g.checkIndex(from); err != nil {
		return false, err
	}
	if err := g.checkIndex(to); err != nil {
		return false, err
	}

	for _, e := range g.vertices[from].edges {
		if e.To == to {
			return true, nil
		}
	}

	return false, nil
}

// RemoveEdge deletes the first edge from→to by insertion order and
// returns its label. The boolean is false (and nothing is removed) when
// no such edge exists; any parallel duplicates stay in place.
// Returns ErrIndexOutOfRange if either endpoint is not a valid index.
// Complexity: O(out-degree of from).
func (g *Graph[V, E]) RemoveEdge(from, to int) (E, bool, error) {
	var zero E
	if err := g.checkIndex(from); err != nil {
		return zero, false, err
	}
	if err := g.checkIndex(to); err != nil {
		return zero, false, err
	}

	edges := g.vertices[from].edges
	for i, e := range edges {
		if e.To == to {
			g.vertices[from].edges = append(edges[:i], edges[i+1:]...)

			return e.Label, true, nil
		}
	}

	return zero, false, nil
}

// AdjacentIndices returns the destination index of every outgoing edge of
// from, in insertion order. Parallel edges produce repeated indices.
// Returns ErrIndexOutOfRange if from is not a valid index.
// Complexity: O(out-degree of from).
func (g *Graph[V, E]) AdjacentIndices(from int) ([]int, error) {
	if err := g.checkIndex(from); err != nil {
		return nil, err
	}

	edges := g.vertices[from].edges
	adj := make([]int, len(edges))
	for i, e := range edges {
		adj[i] = e.To
	}

	return adj, nil
}

// OutEdges returns a copy of the outgoing edge records of from, in
// insertion order. Mutating the returned slice does not affect the graph.
// Returns ErrIndexOutOfRange if from is not a valid index.
// Complexity: O(out-degree of from).
func (g *Graph[V, E]) OutEdges(from int) ([]Edge[E], error) {
	if err := g.checkIndex(from); err != nil {
		return nil, err
	}

	edges := make([]Edge[E], len(g.vertices[from].edges))
	copy(edges, g.vertices[from].edges)

	return edges, nil
}
