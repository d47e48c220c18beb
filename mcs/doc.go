// Package mcs computes an approximate Maximum Common Subgraph (MCS) of two
// labeled core.Graph values: the largest connected set of node and edge pairs
// whose comparisons all reach a tolerance.
//
// The search is a greedy, non-backtracking tree walk:
//
//  1. Seeding: every (node of A, node of B) pair starts an independent walk
//     with an empty visited set.
//  2. Node step: a pair is matched when neither node was visited and
//     Compare(...).Score() >= tolerance; matching marks both ids visited.
//  3. Branch expansion: every pair of edges incident to the matched nodes is
//     tried as the root of a branch. Branches are sorted by PointsSum().Max()
//     (stable), then picked greedily so that no two picked branches share a root
//     edge, then merged; earlier branches win conflicts.
//  4. Edge step: an edge pair is matched when neither edge was visited, the
//     arrows agree with the walk direction, the far endpoints already reach the
//     tolerance, and the edges themselves do too. The walk continues at the far
//     endpoints.
//  5. Final selection: the non-empty seed result with the highest
//     PointsSum().Max() wins; the earliest seed breaks ties.
//
// Direction compatibility:
//
//	e1 \ e2        Undirected  Directed     Bidirectional
//	Undirected     match       no           match
//	Directed       no          same sense   match
//	Bidirectional  match       match        match
//
// Two directed edges match only if the walk crosses both downstream (arriving
// at From) or both upstream (arriving at To).
//
// The result is not an exact MCS: neither the branch filter nor the single
// best seed explore alternatives. Results are deterministic and depend only on
// the node and edge insertion order of the inputs.
//
// Options:
//
//   - WithTolerance(t)   least element similarity, 0 < t <= 1 (default 1).
//   - WithWorkers(n)     evaluate seed walks on n goroutines; same result as n = 1.
//   - WithContext(ctx)   cancellation, checked at every node step.
//   - WithLogger(l)      zap logger receiving a Debug entry per comparison.
//   - WithObserver(obs)  walk/comparison hooks (see the metrics package).
//
// Errors:
//
//   - ErrNilGraph, ErrDuplicateGraphID, ErrInvalidTolerance, ErrInvalidWorkers
//     are returned before any traversal.
//   - points.ErrInvalidScore (wrapped) when a Compare returns an invalid score.
//   - ErrUnreachableEdge signals an engine defect.
//
// Similarity:
//
//	averaged:     round4(PointsSum.Value / mean(maxA, maxB))
//	not averaged: round4(PointsSum.Value / max of the graph with fewer elements)
//
// where maxX is the sum of self-comparisons of every element of graph X.
package mcs
