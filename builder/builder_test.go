// SPDX-License-Identifier: MIT

package builder_test

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mcsgraph/builder"
	"github.com/katalvlaran/mcsgraph/core"
	"github.com/katalvlaran/mcsgraph/points"
)

func TestTopologies_Size(t *testing.T) {
	tests := []struct {
		name         string
		make         func() (builder.Topology, error)
		order, edges int
	}{
		{"Path5", func() (builder.Topology, error) { return builder.Path(5) }, 5, 4},
		{"Cycle5", func() (builder.Topology, error) { return builder.Cycle(5) }, 5, 5},
		{"Star6", func() (builder.Topology, error) { return builder.Star(6) }, 6, 5},
		{"Wheel5", func() (builder.Topology, error) { return builder.Wheel(5) }, 5, 8},
		{"Complete4", func() (builder.Topology, error) { return builder.Complete(4) }, 4, 6},
		{"Grid2x3", func() (builder.Topology, error) { return builder.Grid(2, 3) }, 6, 7},
		{"Sparse-p0", func() (builder.Topology, error) { return builder.RandomSparse(6, 0, 1) }, 6, 0},
		{"Sparse-p1", func() (builder.Topology, error) { return builder.RandomSparse(6, 1, 1) }, 6, 15},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			topo, err := tc.make()
			require.NoError(t, err)
			assert.Equal(t, tc.order, topo.Order())
			assert.Len(t, topo.Edges(), tc.edges)
		})
	}
}

func TestTopologies_EmissionOrder(t *testing.T) {
	c, err := builder.Cycle(3)
	require.NoError(t, err)
	assert.Equal(t, []builder.Pair{{0, 1}, {1, 2}, {2, 0}}, c.Edges())

	g, err := builder.Grid(2, 2)
	require.NoError(t, err)
	assert.Equal(t, []builder.Pair{{0, 1}, {0, 2}, {1, 3}, {2, 3}}, g.Edges())

	w, err := builder.Wheel(4)
	require.NoError(t, err)
	assert.Equal(t, []builder.Pair{{1, 2}, {2, 3}, {3, 1}, {0, 1}, {0, 2}, {0, 3}}, w.Edges())
}

func TestTopologies_Errors(t *testing.T) {
	_, err := builder.Path(1)
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
	_, err = builder.Cycle(2)
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
	_, err = builder.Star(1)
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
	_, err = builder.Wheel(3)
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
	_, err = builder.Complete(0)
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
	_, err = builder.Grid(0, 3)
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
	_, err = builder.RandomSparse(0, 0.5, 1)
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
	for _, p := range []float64{-0.1, 1.1, math.NaN()} {
		_, err = builder.RandomSparse(4, p, 1)
		assert.ErrorIs(t, err, builder.ErrInvalidProbability)
	}
}

func TestRandomSparse_Deterministic(t *testing.T) {
	a, err := builder.RandomSparse(20, 0.2, 42)
	require.NoError(t, err)
	b, err := builder.RandomSparse(20, 0.2, 42)
	require.NoError(t, err)
	assert.Equal(t, a.Edges(), b.Edges())
	for _, e := range a.Edges() {
		assert.Less(t, e.From, e.To)
	}
}

func TestDisjoint(t *testing.T) {
	p, _ := builder.Path(2)
	c, _ := builder.Cycle(3)
	d := builder.Disjoint(p, c)

	assert.Equal(t, 5, d.Order())
	assert.Equal(t, []builder.Pair{{0, 1}, {2, 3}, {3, 4}, {4, 2}}, d.Edges())
	assert.Zero(t, builder.Disjoint().Order())
}

func TestTopology_EdgesIsCopy(t *testing.T) {
	p, _ := builder.Path(3)
	e := p.Edges()
	e[0] = builder.Pair{9, 9}
	assert.Equal(t, builder.Pair{0, 1}, p.Edges()[0])
}

// digit labels nodes by index parity.
type digit int

func (d digit) Compare(o digit) (points.Points, error) {
	if d%2 == o%2 {
		return points.Perfect(), nil
	}

	return points.New(0, 1)
}

func TestBuildGraph(t *testing.T) {
	topo, err := builder.Cycle(4)
	require.NoError(t, err)

	g, err := builder.BuildGraph(3, topo,
		func(i int) digit { return digit(i) },
		func(u, v int) digit { return digit(u + v) },
		builder.WithArrow(core.Directed), builder.WithName("square"))
	require.NoError(t, err)

	assert.Equal(t, "square", g.Name())
	assert.Equal(t, 4, g.NodeCount())
	require.Equal(t, 4, g.EdgeCount())
	assert.Equal(t, "3.3→3.0", g.Edges()[3].ID())
	n, ok := g.Node(2)
	require.True(t, ok)
	assert.Equal(t, digit(2), n.Label())
	assert.Equal(t, digit(1), g.Edges()[0].Label())

	_, err = builder.BuildGraph[digit, digit](1, topo, nil, func(int, int) digit { return 0 })
	assert.ErrorIs(t, err, builder.ErrNilLabelFn)

	_, err = builder.TopologyGraph(-1, topo)
	assert.ErrorIs(t, err, core.ErrNegativeGraphID)
}

func TestTopologyGraph(t *testing.T) {
	topo, err := builder.Star(4)
	require.NoError(t, err)
	g, err := builder.TopologyGraph(7, topo)
	require.NoError(t, err)

	for i, e := range g.Edges() {
		assert.Equal(t, core.Undirected, e.Arrow())
		assert.Equal(t, "7.0-7."+strconv.Itoa(i+1), e.ID())
	}
}
