// Package dfs defines the sentinel errors and shared validation for the
// depth-first traversals and the topological sort.
package dfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/digraph/core"
)

// Sentinel errors for DFS execution.
var (
	// ErrNilGraph is returned when a nil *core.Graph is passed to
	// Distances, Path or TopologicalSort.
	ErrNilGraph = errors.New("dfs: graph is nil")

	// ErrVertexOutOfRange indicates that an origin or target index is
	// negative or not smaller than the graph's vertex count.
	ErrVertexOutOfRange = errors.New("dfs: vertex index out of range")

	// ErrCycleDetected indicates that TopologicalSort encountered a
	// directed cycle: the graph is not a DAG and no order exists.
	ErrCycleDetected = errors.New("dfs: cycle detected: graph is not a DAG")
)

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
