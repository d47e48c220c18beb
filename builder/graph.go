// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/mcsgraph/core"
)

// Option configures BuildGraph.
type Option func(*options)

type options struct {
	arrow core.Arrow
	name  string
}

// WithArrow sets the arrow of every edge. Default core.Undirected.
func WithArrow(a core.Arrow) Option {
	return func(o *options) { o.arrow = a }
}

// WithName sets the graph name.
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// BuildGraph materializes t as graph id. Node i gets label node(i); the edge
// (u, v) gets label edge(u, v). Node indexes in the graph equal topology indexes.
// Complexity: O(V + E).
func BuildGraph[N core.Comparer[N], E core.Comparer[E]](id int, t Topology, node func(i int) N, edge func(u, v int) E, opts ...Option) (*core.Graph[N, E], error) {
	if node == nil || edge == nil {
		return nil, ErrNilLabelFn
	}
	o := options{arrow: core.Undirected}
	for _, fn := range opts {
		fn(&o)
	}

	b, err := core.NewBuilder[N, E](id, core.WithName(o.name))
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}
	nodes := make([]*core.Node[N], t.order)
	for i := range nodes {
		if nodes[i], err = b.AddNode(node(i)); err != nil {
			return nil, fmt.Errorf("BuildGraph: node %d: %w", i, err)
		}
	}
	for _, e := range t.edges {
		if _, err = b.AddEdge(nodes[e.From], nodes[e.To], o.arrow, edge(e.From, e.To)); err != nil {
			return nil, fmt.Errorf("BuildGraph: edge %d-%d: %w", e.From, e.To, err)
		}
	}

	return b.Build()
}

// TopologyGraph is BuildGraph with core.Unlabeled nodes and edges.
func TopologyGraph(id int, t Topology, opts ...Option) (*core.Graph[core.Unlabeled, core.Unlabeled], error) {
	return BuildGraph(id, t,
		func(int) core.Unlabeled { return core.Unlabeled{} },
		func(int, int) core.Unlabeled { return core.Unlabeled{} },
		opts...)
}
