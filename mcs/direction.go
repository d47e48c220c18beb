package mcs

import (
	"fmt"

	"github.com/katalvlaran/mcsgraph/core"
)

// directionsMatch reports whether e1 and e2 may be traversed together from
// the current walk position.
//
//	e1 \ e2        Undirected  Directed     Bidirectional
//	Undirected     match       no           match
//	Directed       no          same sense   match
//	Bidirectional  match       match        match
//
// For two directed edges the walk must cross both downstream (coming from
// From) or both upstream (coming from To).
func directionsMatch[N, E any](e1, e2 *core.Edge[N, E], seen *visited) (bool, error) {
	a1, a2 := e1.Arrow(), e2.Arrow()
	switch {
	case a1 == core.Directed && a2 == core.Directed:
		down1, err := downstream(e1, seen)
		if err != nil {
			return false, err
		}
		down2, err := downstream(e2, seen)
		if err != nil {
			return false, err
		}

		return down1 == down2, nil
	case a1 == core.Directed || a2 == core.Directed:
		// Directed against Bidirectional matches, against Undirected it does not.
		return a1 == core.Bidirectional || a2 == core.Bidirectional, nil
	default:
		return true, nil
	}
}

// downstream reports whether the walk crosses e from From towards To.
// From is checked first, so a loop or an edge closing a cycle counts as downstream.
func downstream[N, E any](e *core.Edge[N, E], seen *visited) (bool, error) {
	switch {
	case seen.has(e.From().ID()):
		return true, nil
	case seen.has(e.To().ID()):
		return false, nil
	default:
		return false, fmt.Errorf("%w: %s", ErrUnreachableEdge, e.ID())
	}
}

// nextNode returns the endpoint of e the walk moves to: From when only To
// has been visited, To otherwise.
func nextNode[N, E any](e *core.Edge[N, E], seen *visited) *core.Node[N] {
	if !seen.has(e.From().ID()) && seen.has(e.To().ID()) {
		return e.From()
	}

	return e.To()
}
