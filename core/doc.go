// Package core provides the labeled graph model compared by mcsgraph: nodes and
// edges carrying caller-defined labels, and an immutable Graph built once by a Builder.
//
// The domain lives entirely in the labels. A label type implements
//
//	Compare(other T) (points.Points, error)
//
// and the engine never looks further than that. Unlabeled gives a label whose
// every comparison is perfect, so pure-topology graphs need no custom types.
//
// Identity:
//
//   - Node.ID()  = "<graphID>.<index>"              e.g. "1.0", "1.1"
//   - Edge.ID()  = From.ID + Arrow.Symbol + To.ID   e.g. "1.0→1.1", "1.0-1.2", "1.2←→1.3"
//
// Two graphs compared against each other must therefore have different ids;
// the engine checks this before traversing.
//
// Arrows:
//
//	Undirected     "-"    no orientation
//	Directed       "→"    From → To
//	Bidirectional  "←→"   both ways
//
// Lifecycle:
//
//	b, _ := core.NewBuilder[Atom, core.Unlabeled](1, core.WithName("serotonin"))
//	c, _ := b.AddNode(Atom{Type: "C"})
//	o, _ := b.AddNode(Atom{Type: "O"})
//	_, err := b.AddEdge(c, o, core.Undirected, core.Unlabeled{})
//	g, err := b.Build() // g is read-only from here on
//
// Errors:
//
//	ErrMalformedEdge   - nil endpoint, foreign endpoint, or unknown arrow.
//	ErrUnknownArrow    - ParseArrow received an unknown literal.
//	ErrAlreadyBuilt    - Builder used after Build.
//	ErrNegativeGraphID - graph id below zero.
//
// Complexity: AddNode/AddEdge O(1) amortized, Build O(V+E), IncidentEdges O(deg).
package core
