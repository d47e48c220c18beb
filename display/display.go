// Package display projects a finished common subgraph into plain data for
// rendering: both input graphs in a vis-network friendly shape, the matched id
// pairs, and the similarity. Every field carries JSON and YAML tags.
package display

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mcsgraph/core"
	"github.com/katalvlaran/mcsgraph/mcs"
)

// ErrEmptyResult is returned by Project when the common subgraph has no pairs.
var ErrEmptyResult = errors.New("display: common subgraph is empty")

// Data is the projection of one comparison.
type Data struct {
	Graph1     Graph   `json:"graph1" yaml:"graph1"`
	Graph2     Graph   `json:"graph2" yaml:"graph2"`
	MCS        Pairs   `json:"mcs" yaml:"mcs"`
	Similarity float64 `json:"similarity" yaml:"similarity"`
}

// Graph lists the nodes and edges of one input graph.
type Graph struct {
	ID    int    `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Nodes []Node `json:"nodes" yaml:"nodes"`
	Edges []Edge `json:"edges" yaml:"edges"`
}

// Node is one vertex. Matched holds the counterpart id, empty when unmatched.
type Node struct {
	ID      string `json:"id" yaml:"id"`
	Label   string `json:"label" yaml:"label"`
	Matched string `json:"matched,omitempty" yaml:"matched,omitempty"`
}

// Edge is one edge. Arrows uses the vis-network vocabulary: "", "to", "to,from".
type Edge struct {
	ID      string `json:"id" yaml:"id"`
	From    string `json:"from" yaml:"from"`
	To      string `json:"to" yaml:"to"`
	Arrows  string `json:"arrows" yaml:"arrows"`
	Label   string `json:"label" yaml:"label"`
	Matched string `json:"matched,omitempty" yaml:"matched,omitempty"`
}

// Pairs lists the matched ids, graph A first.
type Pairs struct {
	Nodes []Pair `json:"nodes" yaml:"nodes"`
	Edges []Pair `json:"edges" yaml:"edges"`
}

// Pair is one correspondence with its recorded score.
type Pair struct {
	A     string  `json:"a" yaml:"a"`
	B     string  `json:"b" yaml:"b"`
	Score float64 `json:"score" yaml:"score"`
}

// Options configures Project.
type Options struct {
	// Averaged selects the similarity normalization, see CommonSubgraph.Similarity. Default true.
	Averaged bool
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns Options{Averaged: true}.
func DefaultOptions() Options { return Options{Averaged: true} }

// WithAveraged sets the similarity normalization.
func WithAveraged(averaged bool) Option {
	return func(o *Options) { o.Averaged = averaged }
}

// Project builds the display data of cs.
//
// Labels are rendered with fmt.Stringer when the label type implements it,
// otherwise the element id is used.
// Complexity: O(V + E) per graph plus O(size) for the pairs.
func Project[N core.Comparer[N], E core.Comparer[E]](cs *mcs.CommonSubgraph[N, E], opts ...Option) (Data, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if cs == nil || cs.Empty() {
		return Data{}, ErrEmptyResult
	}

	var pairs Pairs
	for _, cn := range cs.Nodes() {
		pairs.Nodes = append(pairs.Nodes, Pair{A: cn.Node1.ID(), B: cn.Node2.ID(), Score: cn.Points.Score()})
	}
	for _, ce := range cs.Edges() {
		pairs.Edges = append(pairs.Edges, Pair{A: ce.Edge1.ID(), B: ce.Edge2.ID(), Score: ce.Points.Score()})
	}

	return Data{
		Graph1:     project(cs.GraphA(), cs),
		Graph2:     project(cs.GraphB(), cs),
		MCS:        pairs,
		Similarity: cs.Similarity(o.Averaged),
	}, nil
}

func project[N core.Comparer[N], E core.Comparer[E]](g *core.Graph[N, E], cs *mcs.CommonSubgraph[N, E]) Graph {
	out := Graph{
		ID:    g.ID(),
		Name:  g.Name(),
		Nodes: make([]Node, 0, g.NodeCount()),
		Edges: make([]Edge, 0, g.EdgeCount()),
	}
	for _, n := range g.Nodes() {
		matched, _ := cs.Counterpart(n.ID())
		out.Nodes = append(out.Nodes, Node{ID: n.ID(), Label: labelOf(n.Label(), n.ID()), Matched: matched})
	}
	for _, e := range g.Edges() {
		matched, _ := cs.Counterpart(e.ID())
		out.Edges = append(out.Edges, Edge{
			ID:      e.ID(),
			From:    e.From().ID(),
			To:      e.To().ID(),
			Arrows:  visArrows(e.Arrow()),
			Label:   labelOf(e.Label(), e.ID()),
			Matched: matched,
		})
	}

	return out
}

// labelOf renders l through fmt.Stringer, falling back to the element id.
func labelOf(l any, id string) string {
	if s, ok := l.(fmt.Stringer); ok {
		return s.String()
	}

	return id
}

func visArrows(a core.Arrow) string {
	switch a {
	case core.Directed:
		return "to"
	case core.Bidirectional:
		return "to,from"
	default:
		return ""
	}
}
