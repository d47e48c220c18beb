// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Labeled graph model: Comparer capability, Arrow kinds, Node, Edge, Graph,
//       GraphOption and sentinel errors.
// Policy:
//   - Graphs are immutable once built (see builder.go); all getters are read-only.
//   - Node and Edge ids are namespaced by the owning graph id.

package core

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mcsgraph/points"
)

// Sentinel errors for graph construction.
var (
	// ErrMalformedEdge indicates an edge with a nil endpoint, an endpoint owned by
	// another graph, or an unknown arrow kind.
	ErrMalformedEdge = errors.New("core: malformed edge")

	// ErrUnknownArrow indicates an arrow literal ParseArrow does not recognize.
	ErrUnknownArrow = errors.New("core: unknown arrow")

	// ErrAlreadyBuilt indicates a mutation or a second Build on a finished Builder.
	ErrAlreadyBuilt = errors.New("core: builder already built")

	// ErrNegativeGraphID indicates a graph id below zero.
	ErrNegativeGraphID = errors.New("core: graph id must be >= 0")
)

// Comparer is the single domain hook of the library: it scores how similar the
// receiver is to other. Implementations must be pure and return points built
// with points.New (so 0 ≤ value ≤ max holds).
//
// Node labels implement Comparer[N], edge labels Comparer[E].
type Comparer[T any] interface {
	Compare(other T) (points.Points, error)
}

// Unlabeled is a label for pure-topology graphs: every comparison is perfect.
type Unlabeled struct{}

// Compare always returns 1/1.
func (Unlabeled) Compare(Unlabeled) (points.Points, error) { return points.Perfect(), nil }

// Arrow is the direction kind of an edge.
type Arrow uint8

const (
	// Undirected edges connect both endpoints without orientation ("-").
	Undirected Arrow = iota
	// Directed edges point from From to To ("→").
	Directed
	// Bidirectional edges point both ways ("←→").
	Bidirectional
)

// Symbol returns the glyph used inside edge ids.
func (a Arrow) Symbol() string {
	switch a {
	case Undirected:
		return "-"
	case Directed:
		return "→"
	case Bidirectional:
		return "←→"
	default:
		return "?"
	}
}

// String implements fmt.Stringer.
func (a Arrow) String() string {
	switch a {
	case Undirected:
		return "undirected"
	case Directed:
		return "directed"
	case Bidirectional:
		return "bidirectional"
	default:
		return fmt.Sprintf("Arrow(%d)", uint8(a))
	}
}

// Valid reports whether a is one of the three known kinds.
func (a Arrow) Valid() bool { return a <= Bidirectional }

// ParseArrow maps textual arrows to Arrow. Accepted literals:
//
//	Undirected:    "", "-", "--", "none"
//	Directed:      "->", "→", "to"
//	Bidirectional: "<->", "←→", "both", "to,from"
func ParseArrow(s string) (Arrow, error) {
	switch s {
	case "", "-", "--", "none":
		return Undirected, nil
	case "->", "→", "to":
		return Directed, nil
	case "<->", "←→", "both", "to,from":
		return Bidirectional, nil
	}

	return Undirected, fmt.Errorf("%w: %q", ErrUnknownArrow, s)
}

// Node is a vertex of a labeled graph.
//
// ID() is "<graphID>.<index>", so nodes of two graphs with different ids never collide.
type Node[N any] struct {
	graphID int
	index   int
	id      string
	label   N
}

// ID returns the globally scoped node id.
func (n *Node[N]) ID() string { return n.id }

// Index returns the insertion index of the node inside its graph.
func (n *Node[N]) Index() int { return n.index }

// GraphID returns the id of the owning graph.
func (n *Node[N]) GraphID() int { return n.graphID }

// Label returns the caller-supplied label.
func (n *Node[N]) Label() N { return n.label }

// String implements fmt.Stringer.
func (n *Node[N]) String() string { return n.id }

// Edge connects two nodes of the same graph.
//
// ID() is From.ID + Arrow.Symbol + To.ID; equal edges therefore share an id.
type Edge[N, E any] struct {
	from  *Node[N]
	to    *Node[N]
	arrow Arrow
	id    string
	label E
}

// ID returns the derived edge id.
func (e *Edge[N, E]) ID() string { return e.id }

// From returns the source endpoint (or first endpoint for non-directed edges).
func (e *Edge[N, E]) From() *Node[N] { return e.from }

// To returns the target endpoint (or second endpoint for non-directed edges).
func (e *Edge[N, E]) To() *Node[N] { return e.to }

// Arrow returns the direction kind.
func (e *Edge[N, E]) Arrow() Arrow { return e.arrow }

// Label returns the caller-supplied label.
func (e *Edge[N, E]) Label() E { return e.label }

// IsLoop reports whether both endpoints are the same node.
func (e *Edge[N, E]) IsLoop() bool { return e.from == e.to }

// Touches reports whether n is one of the endpoints.
func (e *Edge[N, E]) Touches(n *Node[N]) bool { return e.from == n || e.to == n }

// String implements fmt.Stringer.
func (e *Edge[N, E]) String() string { return e.id }

// Graph is an immutable labeled graph produced by Builder.Build.
//
// nodes and edges keep insertion order; incident[i] lists the edges touching
// nodes[i] in edge insertion order (a self-loop appears once).
type Graph[N Comparer[N], E Comparer[E]] struct {
	id       int
	name     string
	nodes    []*Node[N]
	edges    []*Edge[N, E]
	incident [][]*Edge[N, E]
}

// GraphOption configures a Builder before any node is added.
type GraphOption func(o *graphOptions)

type graphOptions struct {
	name string
}

// WithName sets the human-readable graph name.
func WithName(name string) GraphOption {
	return func(o *graphOptions) { o.name = name }
}
