// SPDX-License-Identifier: MIT
//
// File: graph.go
// Role: Read-only queries on a built Graph.
// Determinism:
//   - Nodes(), Edges() and IncidentEdges() follow insertion order.
//   - Returned slices are independent copies; callers may modify them freely.

package core

import (
	"fmt"

	"github.com/katalvlaran/mcsgraph/points"
)

// ID returns the graph id.
func (g *Graph[N, E]) ID() int { return g.id }

// Name returns the graph name (may be empty).
func (g *Graph[N, E]) Name() string { return g.name }

// Nodes returns the nodes in insertion order.
// Complexity: O(V).
func (g *Graph[N, E]) Nodes() []*Node[N] {
	out := make([]*Node[N], len(g.nodes))
	copy(out, g.nodes)

	return out
}

// Edges returns the edges in insertion order.
// Complexity: O(E).
func (g *Graph[N, E]) Edges() []*Edge[N, E] {
	out := make([]*Edge[N, E], len(g.edges))
	copy(out, g.edges)

	return out
}

// NodeCount returns |V|.
func (g *Graph[N, E]) NodeCount() int { return len(g.nodes) }

// EdgeCount returns |E|.
func (g *Graph[N, E]) EdgeCount() int { return len(g.edges) }

// Size returns |V| + |E|, the number of comparable elements.
func (g *Graph[N, E]) Size() int { return len(g.nodes) + len(g.edges) }

// Node returns the node at insertion index idx.
func (g *Graph[N, E]) Node(idx int) (*Node[N], bool) {
	if idx < 0 || idx >= len(g.nodes) {
		return nil, false
	}

	return g.nodes[idx], true
}

// HasNode reports whether n belongs to g.
func (g *Graph[N, E]) HasNode(n *Node[N]) bool {
	return n != nil && n.graphID == g.id && n.index < len(g.nodes) && g.nodes[n.index] == n
}

// IncidentEdges returns every edge having n as an endpoint, in edge insertion
// order. Nodes of other graphs yield nil.
// Complexity: O(deg(n)).
func (g *Graph[N, E]) IncidentEdges(n *Node[N]) []*Edge[N, E] {
	if !g.HasNode(n) {
		return nil
	}
	src := g.incident[n.index]
	out := make([]*Edge[N, E], len(src))
	copy(out, src)

	return out
}

// MaxPoints sums the self-comparison of every node and edge: the highest score
// any comparison against g can reach.
//
// Errors:
//   - any error returned by a label's Compare, wrapped with the element id.
//
// Complexity: O(V + E) Compare calls.
func (g *Graph[N, E]) MaxPoints() (points.Points, error) {
	total := points.Zero()
	for _, n := range g.nodes {
		p, err := n.label.Compare(n.label)
		if err != nil {
			return points.Zero(), fmt.Errorf("core: self-compare node %s: %w", n.id, err)
		}
		total = total.Plus(p)
	}
	for _, e := range g.edges {
		p, err := e.label.Compare(e.label)
		if err != nil {
			return points.Zero(), fmt.Errorf("core: self-compare edge %s: %w", e.id, err)
		}
		total = total.Plus(p)
	}

	return total, nil
}

// String implements fmt.Stringer.
func (g *Graph[N, E]) String() string {
	return fmt.Sprintf("Graph(%d %q: %d nodes, %d edges)", g.id, g.name, len(g.nodes), len(g.edges))
}
