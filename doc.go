// Package mcsgraph finds how much two labeled graphs have in common: an
// approximate Maximum Common Subgraph (MCS) plus a similarity in [0,1].
//
// 🚀 What is mcsgraph?
//
//	A generic, label-agnostic engine that brings together:
//		• Score values: Points (value/max), addition, rounding
//		• Graph model: immutable graphs with typed node and edge labels
//		• The engine: greedy seeded walks, direction-aware edge matching, tolerance
//		• Outputs: display projection (JSON/YAML), gonum adapters, Prometheus metrics
//		• Tooling: YAML graph files and the `mcs` command
//
// ✨ Why choose mcsgraph?
//
//   - You own the domain – implement Compare(other) (points.Points, error) on your labels
//   - Deterministic – the same inputs give the same result, sequential or parallel
//   - Graded matches – partial scores and a tolerance instead of all-or-nothing equality
//   - Immutable – graphs and results never change after construction
//
// Packages:
//
//	points/   : Points score values and rounding
//	core/     : Node, Edge, Graph, Arrow, Builder, the Comparer contract
//	mcs/      : ConstructMCS, CommonSubgraph, options, observer hooks
//	display/  : projection of a result for rendering (vis-network shape)
//	convert/  : gonum graphs and connectivity of results
//	graphfile/: YAML graph definitions
//	metrics/  : Prometheus observer
//	cmd/mcs   : compare and watch graph files from the shell
//
// Quick ASCII example:
//
//	A:          C───C───O
//	B:      C───C───C───O
//	common:     C───C───O    3 nodes, 2 edges
//
// The result is approximate: each seed grows greedily and the best seed wins,
// so a larger common subgraph may exist. See the mcs package for the exact rules.
//
//	go get github.com/katalvlaran/mcsgraph
package mcsgraph
