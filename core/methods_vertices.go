// File: methods_vertices.go
// Role: vertex lifecycle and queries: AddVertex/AddEmptyVertex/AddVertices,
//       VertexLabel/SetVertexLabel, IndexOf, VertexCount, Leaves.
// Determinism:
//   - Indices are assigned in insertion order and never reused.
//   - IndexOf and Leaves scan indices ascending.

package core

// AddVertex appends a vertex carrying the given label and returns its
// index. Indices are assigned sequentially and remain stable for the
// lifetime of the graph.
// Complexity: O(1) amortized.
func (g *Graph[V, E]) AddVertex(label V) int {
	g.vertices = append(g.vertices, vertex[V, E]{label: label})

	return len(g.vertices) - 1
}

// AddEmptyVertex appends an unlabeled vertex (zero value of V) and
// returns its index.
// Complexity: O(1) amortized.
func (g *Graph[V, E]) AddEmptyVertex() int {
	var zero V

	return g.AddVertex(zero)
}

// AddVertices appends one vertex per label, in order.
// Complexity: O(len(labels)) amortized.
func (g *Graph[V, E]) AddVertices(labels []V) {
	for _, label := range labels {
		g.AddVertex(label)
	}
}

// VertexLabel returns the label of the vertex at index i, or
// ErrIndexOutOfRange if i is not a valid index.
// Complexity: O(1).
func (g *Graph[V, E]) VertexLabel(i int) (V, error) {
	if err := g.checkIndex(i); err != nil {
		var zero V

		return zero, err
	}

	return g.vertices[i].label, nil
}

// SetVertexLabel replaces the label of the vertex at index i, or returns
// ErrIndexOutOfRange if i is not a valid index.
// Complexity: O(1).
func (g *Graph[V, E]) SetVertexLabel(i int, label V) error {
	if err := g.checkIndex(i); err != nil {
		return err
	}
	g.vertices[i].label = label

	return nil
}

// IndexOf returns the index of the first vertex whose label equals label,
// scanning ascending from index 0, or NotFound if no vertex matches.
// Complexity: O(V).
func (g *Graph[V, E]) IndexOf(label V) int {
	for i := range g.vertices {
		if g.vertices[i].label == label {
			return i
		}
	}

	return NotFound
}

// VertexCount returns the number of vertices in the graph.
// Complexity: O(1).
func (g *Graph[V, E]) VertexCount() int {
	return len(g.vertices)
}

// Leaves returns the indices of all vertices with no outgoing edges, in
// ascending index order. Note that "leaf" is defined by out-degree only;
// incoming edges do not matter.
// Complexity: O(V).
func (g *Graph[V, E]) Leaves() []int {
	leaves := make([]int, 0)
	for i := range g.vertices {
		if len(g.vertices[i].edges) == 0 {
			leaves = append(leaves, i)
		}
	}

	return leaves
}
