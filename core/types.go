// Package core defines the central Graph, vertex and Edge types together
// with the weight and index sentinels shared by every algorithm package.
//
// This file declares Edge, the Graph container, EdgeOption, the sentinel
// constants Infinity and NotFound, sentinel errors, SumWeights, and the
// constructors New, NewSized and FromLabels.
package core

import (
	"errors"
	"math"
)

// Infinity is the reserved "infinite" weight and distance sentinel.
//
// It is the maximum representable signed 64-bit value, so no sum of real
// (non-negative, finite) edge weights can reach it: SumWeights saturates
// at Infinity instead of overflowing into the sentinel's value space.
// An edge carrying Infinity is a structural (unweighted) edge; a distance
// equal to Infinity means "no path".
const Infinity int64 = math.MaxInt64

// NotFound is the sentinel index returned by lookups that locate no
// vertex: IndexOf, FollowPath, dijkstra.Closest and friends.
const NotFound = -1

// ErrIndexOutOfRange indicates an operation referenced a vertex index
// that is negative or not smaller than VertexCount().
var ErrIndexOutOfRange = errors.New("core: vertex index out of range")

// Edge is a directed connection to the vertex at index To.
//
// An Edge is owned exclusively by its source vertex and is immutable
// after construction. Label may be the zero value for unlabeled edges;
// Weight is Infinity for structural edges.
type Edge[E comparable] struct {
	// Label is the edge's value, matched by equality in EdgeLabel and
	// FollowPath lookups.
	Label E

	// Weight is the non-negative traversal cost, or Infinity for a
	// structural edge.
	Weight int64

	// To is the index of the destination vertex.
	To int
}

// vertex holds one label and the insertion-ordered outgoing edge list.
// Vertices are owned exclusively by their Graph and addressed by index.
type vertex[V, E comparable] struct {
	label V
	edges []Edge[E]
}

// Graph is an index-addressed directed multigraph with generic labels.
//
// V is the vertex label type, E the edge label type; both must be
// comparable so label lookups can use value equality. The zero value of
// Graph is ready to use, but prefer the constructors for capacity hints.
type Graph[V, E comparable] struct {
	vertices []vertex[V, E]
}

// EdgeOption configures properties of an individual edge when added.
type EdgeOption[E comparable] func(*Edge[E])

// WithLabel sets the edge's label. Without it the edge carries the zero
// value of E.
func WithLabel[E comparable](label E) EdgeOption[E] {
	return func(e *Edge[E]) { e.Label = label }
}

// New creates an empty Graph.
// Complexity: O(1).
func New[V, E comparable]() *Graph[V, E] {
	return &Graph[V, E]{}
}

// NewSized creates a Graph with n unlabeled vertices (indices 0..n-1),
// each carrying the zero value of V. A non-positive n yields an empty
// graph.
// Complexity: O(n).
func NewSized[V, E comparable](n int) *Graph[V, E] {
	g := &Graph[V, E]{}
	if n > 0 {
		g.vertices = make([]vertex[V, E], n)
	}

	return g
}

// FromLabels creates a Graph with one vertex per label, in order, so that
// vertex i carries labels[i].
// Complexity: O(len(labels)).
func FromLabels[V, E comparable](labels []V) *Graph[V, E] {
	g := &Graph[V, E]{vertices: make([]vertex[V, E], 0, len(labels))}
	g.AddVertices(labels)

	return g
}

// SumWeights returns a+b under the Infinity sentinel: if either operand
// is Infinity, or the finite sum would reach or exceed Infinity, the
// result saturates at Infinity. Operands are assumed non-negative
// (Dijkstra's precondition); negative inputs are out of scope.
// Complexity: O(1).
func SumWeights(a, b int64) int64 {
	if a == Infinity || b == Infinity {
		return Infinity
	}
	if a > Infinity-b {
		return Infinity
	}

	return a + b
}

// checkIndex validates a single vertex index against the current size.
func (g *Graph[V, E]) checkIndex(i int) error {
	if i < 0 || i >= len(g.vertices) {
		return ErrIndexOutOfRange
	}

	return nil
}
