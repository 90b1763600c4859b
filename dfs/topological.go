// File: topological.go
// Role: DFS-based topological sort with an explicit work stack.

package dfs

import (
	"fmt"

	"github.com/katalvlaran/digraph/core"
)

// frame is one explicit-stack entry of the topological visit: a vertex
// and a cursor into its adjacency snapshot.
type frame struct {
	v    int
	adj  []int
	next int
}

// topoSorter carries the per-call state of one TopologicalSort run.
type topoSorter[V, E comparable] struct {
	g *core.Graph[V, E]

	// temp marks vertices on the current descent path; meeting one again
	// during descent proves a directed cycle.
	temp []bool

	// perm marks fully processed vertices.
	perm []bool

	// completed records vertices in completion order (every descendant
	// processed); the topological order is its reverse.
	completed []int
}

// TopologicalSort computes a linear ordering of all vertices such that
// for every directed edge u→v, u appears before v. Vertices are visited
// in ascending index order, so the result is deterministic for a given
// insertion sequence. If the graph contains any directed cycle,
// including a self-loop, the whole sort aborts with ErrCycleDetected
// and no partial order is returned.
//
// Complexity: O(V + E) time, O(V + E) space for the explicit stack.
func TopologicalSort[V, E comparable](g *core.Graph[V, E]) ([]int, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	n := g.VertexCount()
	s := &topoSorter[V, E]{
		g:         g,
		temp:      make([]bool, n),
		perm:      make([]bool, n),
		completed: make([]int, 0, n),
	}

	for i := 0; i < n; i++ {
		if s.perm[i] {
			continue
		}
		if err := s.visit(i); err != nil {
			return nil, err
		}
	}

	// Reverse completion order: last completed comes first.
	order := make([]int, n)
	for i, v := range s.completed {
		order[n-1-i] = v
	}

	return order, nil
}

// visit explores the DFS tree rooted at root with an explicit stack of
// (vertex, child cursor) frames, preserving the completion-order
// semantics of the recursive formulation without recursion-depth limits.
func (s *topoSorter[V, E]) visit(root int) error {
	adj, err := s.g.AdjacentIndices(root)
	if err != nil {
		return fmt.Errorf("dfs: adjacency of %d: %w", root, err)
	}
	s.temp[root] = true
	stack := []frame{{v: root, adj: adj}}

	for len(stack) > 0 {
		f := &stack[len(stack)-1]

		if f.next == len(f.adj) {
			// Every descendant processed: mark permanent and record.
			s.perm[f.v] = true
			s.completed = append(s.completed, f.v)
			stack = stack[:len(stack)-1]
			continue
		}

		w := f.adj[f.next]
		f.next++
		if s.perm[w] {
			continue
		}
		if s.temp[w] {
			return fmt.Errorf("%w: at vertex %d", ErrCycleDetected, w)
		}

		adj, err = s.g.AdjacentIndices(w)
		if err != nil {
			return fmt.Errorf("dfs: adjacency of %d: %w", w, err)
		}
		s.temp[w] = true
		stack = append(stack, frame{v: w, adj: adj})
	}

	return nil
}
