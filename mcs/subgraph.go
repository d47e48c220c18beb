package mcs

import (
	"fmt"

	"github.com/katalvlaran/mcsgraph/core"
	"github.com/katalvlaran/mcsgraph/points"
)

// subgraph is the value accumulated by a walk. Its slices are never written
// after creation: every extension copies, so branches may share prefixes.
type subgraph[N, E any] struct {
	nodes []CommonNode[N]
	edges []CommonEdge[N, E]
}

func (s subgraph[N, E]) withNode(cn CommonNode[N]) subgraph[N, E] {
	return subgraph[N, E]{nodes: append(s.nodes[:len(s.nodes):len(s.nodes)], cn), edges: s.edges}
}

func (s subgraph[N, E]) withEdge(ce CommonEdge[N, E]) subgraph[N, E] {
	return subgraph[N, E]{nodes: s.nodes, edges: append(s.edges[:len(s.edges):len(s.edges)], ce)}
}

func (s subgraph[N, E]) size() int { return len(s.nodes) + len(s.edges) }

func (s subgraph[N, E]) empty() bool { return s.size() == 0 }

// pointsSum adds the recorded node points and edge points.
func (s subgraph[N, E]) pointsSum() points.Points {
	total := points.Zero()
	for _, cn := range s.nodes {
		total = total.Plus(cn.Points)
	}
	for _, ce := range s.edges {
		total = total.Plus(ce.Points)
	}

	return total
}

// sharesNode reports whether any pair already uses a node of cn.
func (s subgraph[N, E]) sharesNode(cn CommonNode[N]) bool {
	a, b := cn.Node1.ID(), cn.Node2.ID()
	for _, have := range s.nodes {
		h1, h2 := have.Node1.ID(), have.Node2.ID()
		if h1 == a || h1 == b || h2 == a || h2 == b {
			return true
		}
	}

	return false
}

// containsNode reports whether n appears on either side of a pair.
func (s subgraph[N, E]) containsNode(id string) bool {
	for _, have := range s.nodes {
		if have.Node1.ID() == id || have.Node2.ID() == id {
			return true
		}
	}

	return false
}

// sharesEdge reports whether any pair already uses an edge of ce.
func (s subgraph[N, E]) sharesEdge(ce CommonEdge[N, E]) bool {
	a, b := ce.Edge1.ID(), ce.Edge2.ID()
	for _, have := range s.edges {
		h1, h2 := have.Edge1.ID(), have.Edge2.ID()
		if h1 == a || h1 == b || h2 == a || h2 == b {
			return true
		}
	}

	return false
}

// covers reports whether both endpoints of e are matched, either in s or on
// the walk path recorded by seen.
func (s subgraph[N, E]) covers(e *core.Edge[N, E], seen *visited) bool {
	from, to := e.From().ID(), e.To().ID()

	return (s.containsNode(from) || seen.has(from)) && (s.containsNode(to) || seen.has(to))
}

// CommonSubgraph is the result of ConstructMCS: node and edge correspondences
// between graph A and graph B, plus what is needed to normalize its score.
//
// A CommonSubgraph is read-only; accessors return copies.
type CommonSubgraph[N core.Comparer[N], E core.Comparer[E]] struct {
	found  subgraph[N, E]
	graphA *core.Graph[N, E]
	graphB *core.Graph[N, E]
	maxA   points.Points
	maxB   points.Points
}

// Nodes returns the node pairs in the order they were matched.
func (cs *CommonSubgraph[N, E]) Nodes() []CommonNode[N] {
	out := make([]CommonNode[N], len(cs.found.nodes))
	copy(out, cs.found.nodes)

	return out
}

// Edges returns the edge pairs in the order they were matched.
func (cs *CommonSubgraph[N, E]) Edges() []CommonEdge[N, E] {
	out := make([]CommonEdge[N, E], len(cs.found.edges))
	copy(out, cs.found.edges)

	return out
}

// NodeCount returns the number of node pairs.
func (cs *CommonSubgraph[N, E]) NodeCount() int { return len(cs.found.nodes) }

// EdgeCount returns the number of edge pairs.
func (cs *CommonSubgraph[N, E]) EdgeCount() int { return len(cs.found.edges) }

// Size returns NodeCount + EdgeCount.
func (cs *CommonSubgraph[N, E]) Size() int { return cs.found.size() }

// Empty reports whether no pair was found.
func (cs *CommonSubgraph[N, E]) Empty() bool { return cs.found.empty() }

// GraphA returns the first compared graph.
func (cs *CommonSubgraph[N, E]) GraphA() *core.Graph[N, E] { return cs.graphA }

// GraphB returns the second compared graph.
func (cs *CommonSubgraph[N, E]) GraphB() *core.Graph[N, E] { return cs.graphB }

// PointsSum returns the sum of every matched pair's points.
// Complexity: O(size).
func (cs *CommonSubgraph[N, E]) PointsSum() points.Points { return cs.found.pointsSum() }

// Similarity normalizes PointsSum().Value() to [0,1], rounded to 4 digits.
//
// averaged == true divides by the mean of the two graphs' MaxPoints().Max();
// otherwise it divides by MaxPoints().Max() of the graph with fewer elements
// (nodes+edges, A on ties). An empty result or a zero denominator yields 0.
func (cs *CommonSubgraph[N, E]) Similarity(averaged bool) float64 {
	if cs.Empty() {
		return 0
	}
	var denom float64
	if averaged {
		denom = (cs.maxA.Max() + cs.maxB.Max()) / 2
	} else if cs.graphA.Size() <= cs.graphB.Size() {
		denom = cs.maxA.Max()
	} else {
		denom = cs.maxB.Max()
	}
	if denom == 0 {
		return 0
	}

	return points.Round(cs.PointsSum().Value()/denom, 4)
}

// Counterpart returns the id matched with the given node or edge id, looking
// at both sides of every pair.
func (cs *CommonSubgraph[N, E]) Counterpart(id string) (string, bool) {
	for _, cn := range cs.found.nodes {
		switch id {
		case cn.Node1.ID():
			return cn.Node2.ID(), true
		case cn.Node2.ID():
			return cn.Node1.ID(), true
		}
	}
	for _, ce := range cs.found.edges {
		switch id {
		case ce.Edge1.ID():
			return ce.Edge2.ID(), true
		case ce.Edge2.ID():
			return ce.Edge1.ID(), true
		}
	}

	return "", false
}

// String implements fmt.Stringer.
func (cs *CommonSubgraph[N, E]) String() string {
	return fmt.Sprintf("CommonSubgraph(%d nodes, %d edges, %v)", cs.NodeCount(), cs.EdgeCount(), cs.PointsSum())
}

// TotalPossible returns the maximum points achievable against g: the sum of
// every node's and edge's self-comparison.
func TotalPossible[N core.Comparer[N], E core.Comparer[E]](g *core.Graph[N, E]) (points.Points, error) {
	if g == nil {
		return points.Zero(), ErrNilGraph
	}

	return g.MaxPoints()
}
