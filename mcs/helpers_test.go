package mcs_test

import (
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mcsgraph/core"
	"github.com/katalvlaran/mcsgraph/mcs"
	"github.com/katalvlaran/mcsgraph/points"
)

// label is a kind/group tag: equal kinds score 1/1, equal groups 0.5/1, else 0/1.
type label struct {
	kind  string
	group string
}

func (l label) Compare(o label) (points.Points, error) {
	switch {
	case l.kind == o.kind:
		return points.Perfect(), nil
	case l.group != "" && l.group == o.group:
		return points.New(0.5, 1)
	default:
		return points.New(0, 1)
	}
}

func k(kind string) label { return label{kind: kind} }

// edgeSpec describes an edge by node indexes.
type edgeSpec struct {
	from, to int
	arrow    core.Arrow
	lbl      label
}

// build creates a graph with the given node labels and edges.
func build(t testing.TB, id int, nodes []label, edges []edgeSpec) *core.Graph[label, label] {
	t.Helper()

	b, err := core.NewBuilder[label, label](id)
	require.NoError(t, err)
	ns := make([]*core.Node[label], len(nodes))
	for i, l := range nodes {
		ns[i], err = b.AddNode(l)
		require.NoError(t, err)
	}
	for _, e := range edges {
		_, err = b.AddEdge(ns[e.from], ns[e.to], e.arrow, e.lbl)
		require.NoError(t, err)
	}
	g, err := b.Build()
	require.NoError(t, err)

	return g
}

// ring5 is a 5-node graph mixing every arrow kind, with a cycle and a pendant:
//
//	C0 ── N1 → O2 ←→ S3 → C0,   S3 ── P4
func ring5(t testing.TB, id int) *core.Graph[label, label] {
	return build(t, id,
		[]label{k("C"), k("N"), k("O"), k("S"), k("P")},
		[]edgeSpec{
			{0, 1, core.Undirected, k("single")},
			{1, 2, core.Directed, k("single")},
			{2, 3, core.Bidirectional, k("double")},
			{3, 0, core.Directed, k("single")},
			{3, 4, core.Undirected, k("single")},
		})
}

// assertConnected checks that every common edge has both endpoints of both
// edges among the common nodes.
func assertConnected(t *testing.T, cs *mcs.CommonSubgraph[label, label]) {
	t.Helper()

	matched := map[string]bool{}
	for _, cn := range cs.Nodes() {
		matched[cn.Node1.ID()] = true
		matched[cn.Node2.ID()] = true
	}
	for _, ce := range cs.Edges() {
		for _, e := range []*core.Edge[label, label]{ce.Edge1, ce.Edge2} {
			require.True(t, matched[e.From().ID()], "edge %s: endpoint %s not matched", e.ID(), e.From().ID())
			require.True(t, matched[e.To().ID()], "edge %s: endpoint %s not matched", e.ID(), e.To().ID())
		}
	}
}

// nodePairs renders node pairs as "a=b" for order-sensitive comparisons.
func nodePairs(cs *mcs.CommonSubgraph[label, label]) []string {
	out := make([]string, 0, cs.NodeCount())
	for _, cn := range cs.Nodes() {
		out = append(out, cn.Node1.ID()+"="+cn.Node2.ID())
	}

	return out
}

// edgePairs renders edge pairs as "a=b".
func edgePairs(cs *mcs.CommonSubgraph[label, label]) []string {
	out := make([]string, 0, cs.EdgeCount())
	for _, ce := range cs.Edges() {
		out = append(out, ce.Edge1.ID()+"="+ce.Edge2.ID())
	}

	return out
}

// countingObserver counts events atomically.
type countingObserver struct {
	walks, finished, nodeCmp, edgeCmp, accepted atomic.Int64
}

func (c *countingObserver) WalkStarted() { c.walks.Add(1) }

func (c *countingObserver) Compared(kind mcs.ElementKind, ok bool) {
	if kind == mcs.NodeKind {
		c.nodeCmp.Add(1)
	} else {
		c.edgeCmp.Add(1)
	}
	if ok {
		c.accepted.Add(1)
	}
}

func (c *countingObserver) WalkFinished(int) { c.finished.Add(1) }

var errCompare = errors.New("compare failed")

// faulty fails whenever it is compared with a different value.
type faulty string

func (f faulty) Compare(o faulty) (points.Points, error) {
	if f != o {
		return points.Zero(), errCompare
	}

	return points.Perfect(), nil
}

// overflow returns an impossible score on self-comparison.
type overflow struct{}

func (overflow) Compare(overflow) (points.Points, error) { return points.New(3, 1) }
