package mcs

import "github.com/katalvlaran/mcsgraph/core"

// Visited builds a visited set from ids for direction tests.
func Visited(ids ...string) *visited { return (*visited)(nil).with(ids...) }

// DirectionsMatch exposes directionsMatch.
func DirectionsMatch[N, E any](e1, e2 *core.Edge[N, E], seen *visited) (bool, error) {
	return directionsMatch(e1, e2, seen)
}

// NextNode exposes nextNode.
func NextNode[N, E any](e *core.Edge[N, E], seen *visited) *core.Node[N] {
	return nextNode(e, seen)
}
