package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mcsgraph/core"
	"github.com/katalvlaran/mcsgraph/points"
)

// kind is a test label scoring 1/1 on equal strings and 0/1 otherwise.
type kind string

func (k kind) Compare(other kind) (points.Points, error) {
	if k == other {
		return points.Perfect(), nil
	}

	return points.New(0, 1)
}

// broken always reports an impossible score.
type broken struct{}

func (broken) Compare(broken) (points.Points, error) { return points.New(2, 1) }

// buildPath builds a directed path over the given kinds: k0→k1→…
func buildPath(t *testing.T, id int, kinds ...kind) *core.Graph[kind, kind] {
	t.Helper()

	b, err := core.NewBuilder[kind, kind](id)
	require.NoError(t, err)

	var prev *core.Node[kind]
	for _, k := range kinds {
		n, err := b.AddNode(k)
		require.NoError(t, err)
		if prev != nil {
			_, err = b.AddEdge(prev, n, core.Directed, "next")
			require.NoError(t, err)
		}
		prev = n
	}
	g, err := b.Build()
	require.NoError(t, err)

	return g
}
