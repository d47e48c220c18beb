// Package convert adapts core graphs and common subgraphs to gonum graphs so
// gonum's algorithms (connectivity, traversal, layout) can run on them.
//
// gonum's simple graphs reject self-loops and parallel edges; both are skipped
// during conversion. Arrows are dropped: every edge becomes undirected.
package convert

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/mcsgraph/core"
	"github.com/katalvlaran/mcsgraph/mcs"
)

var (
	// ErrNilGraph is returned when the input graph or result is nil.
	ErrNilGraph = errors.New("convert: graph is nil")

	// ErrUnknownSide is returned for a Side other than SideA or SideB.
	ErrUnknownSide = errors.New("convert: unknown side")
)

// Side selects one graph of a comparison.
type Side uint8

const (
	// SideA is the first compared graph (CommonNode.Node1, CommonEdge.Edge1).
	SideA Side = iota
	// SideB is the second compared graph (CommonNode.Node2, CommonEdge.Edge2).
	SideB
)

// String implements fmt.Stringer.
func (s Side) String() string {
	switch s {
	case SideA:
		return "A"
	case SideB:
		return "B"
	default:
		return fmt.Sprintf("Side(%d)", uint8(s))
	}
}

// Mapping translates between core node ids and gonum node ids.
type Mapping struct {
	ids   []string
	index map[string]int64
}

func newMapping(capacity int) *Mapping {
	return &Mapping{ids: make([]string, 0, capacity), index: make(map[string]int64, capacity)}
}

// add assigns the next gonum id to id, or returns the one already assigned.
func (m *Mapping) add(id string) int64 {
	if gid, ok := m.index[id]; ok {
		return gid
	}
	gid := int64(len(m.ids))
	m.ids = append(m.ids, id)
	m.index[id] = gid

	return gid
}

// ID returns the core node id behind gonum id gid.
func (m *Mapping) ID(gid int64) (string, bool) {
	if gid < 0 || gid >= int64(len(m.ids)) {
		return "", false
	}

	return m.ids[gid], true
}

// GonumID returns the gonum id assigned to core node id.
func (m *Mapping) GonumID(id string) (int64, bool) {
	gid, ok := m.index[id]

	return gid, ok
}

// Len returns the number of mapped nodes.
func (m *Mapping) Len() int { return len(m.ids) }

// ToUndirected converts g into a gonum undirected graph. Node i of g becomes
// gonum node i. Complexity: O(V + E).
func ToUndirected[N core.Comparer[N], E core.Comparer[E]](g *core.Graph[N, E]) (*simple.UndirectedGraph, *Mapping, error) {
	if g == nil {
		return nil, nil, ErrNilGraph
	}

	out := simple.NewUndirectedGraph()
	m := newMapping(g.NodeCount())
	for _, n := range g.Nodes() {
		out.AddNode(simple.Node(m.add(n.ID())))
	}
	for _, e := range g.Edges() {
		setEdge(out, m.add(e.From().ID()), m.add(e.To().ID()))
	}

	return out, m, nil
}

// CommonSide projects one side of cs into a gonum undirected graph: the
// matched nodes of that side, joined by the matched edges of that side.
// Complexity: O(size).
func CommonSide[N core.Comparer[N], E core.Comparer[E]](cs *mcs.CommonSubgraph[N, E], side Side) (*simple.UndirectedGraph, *Mapping, error) {
	if cs == nil {
		return nil, nil, ErrNilGraph
	}
	if side != SideA && side != SideB {
		return nil, nil, fmt.Errorf("%w: %v", ErrUnknownSide, side)
	}

	out := simple.NewUndirectedGraph()
	m := newMapping(cs.NodeCount())
	for _, cn := range cs.Nodes() {
		n := cn.Node1
		if side == SideB {
			n = cn.Node2
		}
		out.AddNode(simple.Node(m.add(n.ID())))
	}
	for _, ce := range cs.Edges() {
		e := ce.Edge1
		if side == SideB {
			e = ce.Edge2
		}
		setEdge(out, m.add(e.From().ID()), m.add(e.To().ID()))
	}

	return out, m, nil
}

// Components counts the connected components of one side of cs.
// An empty result has 0 components; any non-empty ConstructMCS result has 1.
func Components[N core.Comparer[N], E core.Comparer[E]](cs *mcs.CommonSubgraph[N, E], side Side) (int, error) {
	g, _, err := CommonSide(cs, side)
	if err != nil {
		return 0, err
	}

	return len(topo.ConnectedComponents(g)), nil
}

// GraphComponents counts the connected components of g, ignoring arrows.
func GraphComponents[N core.Comparer[N], E core.Comparer[E]](g *core.Graph[N, E]) (int, error) {
	ug, _, err := ToUndirected(g)
	if err != nil {
		return 0, err
	}

	return len(topo.ConnectedComponents(ug)), nil
}

// setEdge adds u-v unless it is a loop or already present.
func setEdge(g *simple.UndirectedGraph, u, v int64) {
	if u == v || g.HasEdgeBetween(u, v) {
		return
	}
	g.SetEdge(simple.Edge{F: simple.Node(u), T: simple.Node(v)})
}
