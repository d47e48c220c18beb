// SPDX-License-Identifier: MIT

// Package builder generates deterministic graph topologies and turns them
// into core graphs with caller-chosen labels.
//
// It is the fixture factory of mcsgraph: tests, benchmarks and examples build
// paths, cycles, stars, wheels, grids, complete and random sparse graphs here
// instead of wiring nodes by hand.
//
// Two steps:
//
//	t, err := builder.Cycle(6)                         // Topology: order + index pairs
//	g, err := builder.BuildGraph(1, t, atomAt, bondAt, // *core.Graph[N, E]
//		builder.WithArrow(core.Directed), builder.WithName("ring"))
//
// Topologies are plain values; Disjoint places several side by side.
//
// Guarantees:
//   - Determinism: equal parameters (and seed) give equal topologies, with
//     nodes numbered 0..n-1 and edges emitted in a documented order.
//   - Safety: never panic; invalid sizes and probabilities return sentinel errors.
package builder
