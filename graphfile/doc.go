// Package graphfile reads labeled graphs from YAML definitions.
//
// A definition names every node by a key unique within the file; edges refer
// to those keys:
//
//	id: 1
//	name: serotonin
//	nodes:
//	  - {key: c1, type: C}
//	  - {key: n1, type: N, weight: 2}
//	edges:
//	  - {from: c1, to: n1, arrow: "-", type: single}
//
// Definitions are decoded with gopkg.in/yaml.v3 (unknown fields rejected) and
// checked with go-playground/validator before Build turns them into an
// immutable *core.Graph[Label, Label]. Node order in the file is node index
// order in the graph, so ids are stable across loads.
package graphfile
