// Package points defines Points, the score produced by every comparison in
// mcsgraph (node vs node, edge vs edge, graph vs graph).
//
// A Points value is a pair (value, max):
//
//	value: the points actually reached by the comparison;
//	max  : the maximum points that comparison could have produced.
//
// Score() = value/max, or 0 when max == 0, and always lies in [0,1].
// The max component doubles as a weight: elements with a larger max weigh
// more when points are aggregated over a whole common subgraph.
//
// Invariants:
//
//   - 0 ≤ value ≤ max, enforced by New (ErrInvalidScore otherwise).
//   - Points are immutable; Plus returns a new value.
//   - Plus is commutative and associative on each component.
//
// Example:
//
//	p, err := points.New(1, 2)
//	if err != nil {
//		// handle ErrInvalidScore
//	}
//	fmt.Println(p.Plus(points.Perfect())) // Points:2/3=0.6666666666666666
package points
