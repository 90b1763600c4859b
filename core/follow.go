// File: follow.go
// Role: label-directed walking: FollowPath resolves a sequence of edge
//       labels to the vertex it leads to.

package core

// FollowPath walks the graph from start, consuming labels in order: at
// each step the current vertex's outgoing edges are scanned in insertion
// order for the first edge whose label equals the next element of labels,
// and the walk moves to its destination. If any step has no matching
// edge, FollowPath returns NotFound immediately; there is no partial
// result. On success it returns the index of the final vertex reached;
// an empty labels sequence returns start itself.
//
// FollowPath never mutates the graph: repeated calls with the same
// arguments and no intervening mutation yield the same result.
//
// Returns ErrIndexOutOfRange if start is not a valid index.
// Complexity: O(len(labels) · max out-degree).
func (g *Graph[V, E]) FollowPath(start int, labels []E) (int, error) {
	if err := g.checkIndex(start); err != nil {
		return NotFound, err
	}

	current := start
steps:
	for _, label := range labels {
		for _, e := range g.vertices[current].edges {
			if e.Label == label {
				current = e.To
				continue steps
			}
		}

		return NotFound, nil
	}

	return current, nil
}
