package display_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mcsgraph/core"
	"github.com/katalvlaran/mcsgraph/display"
	"github.com/katalvlaran/mcsgraph/mcs"
	"github.com/katalvlaran/mcsgraph/points"
)

type elem string

func (e elem) Compare(o elem) (points.Points, error) {
	if e == o {
		return points.Perfect(), nil
	}

	return points.New(0, 1)
}

func (e elem) String() string { return string(e) }

func pair(t *testing.T, id int, name string, second elem) *core.Graph[elem, elem] {
	b, err := core.NewBuilder[elem, elem](id, core.WithName(name))
	require.NoError(t, err)
	a, _ := b.AddNode("A")
	c, _ := b.AddNode(second)
	_, err = b.AddEdge(a, c, core.Directed, "bond")
	require.NoError(t, err)
	g, err := b.Build()
	require.NoError(t, err)

	return g
}

func TestProject(t *testing.T) {
	cs, err := mcs.ConstructMCS(pair(t, 1, "left", "B"), pair(t, 2, "right", "B"))
	require.NoError(t, err)

	d, err := display.Project(cs)
	require.NoError(t, err)

	assert.Equal(t, 1.0, d.Similarity)
	assert.Equal(t, "left", d.Graph1.Name)
	assert.Equal(t, 2, d.Graph2.ID)
	require.Len(t, d.Graph1.Nodes, 2)
	assert.Equal(t, display.Node{ID: "1.0", Label: "A", Matched: "2.0"}, d.Graph1.Nodes[0])
	require.Len(t, d.Graph2.Edges, 1)
	assert.Equal(t, display.Edge{
		ID: "2.0→2.1", From: "2.0", To: "2.1", Arrows: "to", Label: "bond", Matched: "1.0→1.1",
	}, d.Graph2.Edges[0])
	assert.Equal(t, []display.Pair{{A: "1.0", B: "2.0", Score: 1}, {A: "1.1", B: "2.1", Score: 1}}, d.MCS.Nodes)
	assert.Equal(t, []display.Pair{{A: "1.0→1.1", B: "2.0→2.1", Score: 1}}, d.MCS.Edges)
}

func TestProject_Unmatched(t *testing.T) {
	cs, err := mcs.ConstructMCS(pair(t, 1, "left", "B"), pair(t, 2, "right", "Z"))
	require.NoError(t, err)

	d, err := display.Project(cs, display.WithAveraged(false))
	require.NoError(t, err)
	assert.Empty(t, d.Graph1.Nodes[1].Matched)
	assert.Empty(t, d.Graph1.Edges[0].Matched)
	assert.Empty(t, d.MCS.Edges)
	// One node of three elements in each graph.
	assert.Equal(t, 0.3333, d.Similarity)
}

func TestProject_Empty(t *testing.T) {
	_, err := display.Project[elem, elem](nil)
	assert.ErrorIs(t, err, display.ErrEmptyResult)

	b, _ := core.NewBuilder[elem, elem](3)
	_, _ = b.AddNode("X")
	lone, err := b.Build()
	require.NoError(t, err)
	empty, err := mcs.ConstructMCS(lone, pair(t, 2, "right", "B"))
	require.NoError(t, err)
	_, err = display.Project(empty)
	assert.ErrorIs(t, err, display.ErrEmptyResult)
}

func TestProject_UnlabeledUsesIDs(t *testing.T) {
	build := func(id int) *core.Graph[core.Unlabeled, core.Unlabeled] {
		b, _ := core.NewTopologyBuilder(id)
		x, _ := b.AddNode(core.Unlabeled{})
		y, _ := b.AddNode(core.Unlabeled{})
		_, _ = b.AddEdge(x, y, core.Bidirectional, core.Unlabeled{})
		g, _ := b.Build()
		return g
	}
	cs, err := mcs.ConstructMCS(build(1), build(2))
	require.NoError(t, err)

	d, err := display.Project(cs)
	require.NoError(t, err)
	assert.Equal(t, "1.1", d.Graph1.Nodes[1].Label)
	assert.Equal(t, "1.0←→1.1", d.Graph1.Edges[0].Label)
	assert.Equal(t, "to,from", d.Graph1.Edges[0].Arrows)
}

func TestData_Encoding(t *testing.T) {
	cs, err := mcs.ConstructMCS(pair(t, 1, "left", "B"), pair(t, 2, "right", "B"))
	require.NoError(t, err)
	d, err := display.Project(cs)
	require.NoError(t, err)

	js, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Contains(t, string(js), `"arrows":"to"`)
	assert.Contains(t, string(js), `"similarity":1`)

	ys, err := yaml.Marshal(d)
	require.NoError(t, err)
	var back display.Data
	require.NoError(t, yaml.Unmarshal(ys, &back))
	assert.Equal(t, d, back)
}
