package mcs_test

import (
	"fmt"

	"github.com/katalvlaran/mcsgraph/core"
	"github.com/katalvlaran/mcsgraph/mcs"
	"github.com/katalvlaran/mcsgraph/points"
)

// atom is an element symbol; equal symbols match perfectly.
type atom string

func (a atom) Compare(o atom) (points.Points, error) {
	if a == o {
		return points.Perfect(), nil
	}

	return points.New(0, 1)
}

func molecule(id int, symbols ...atom) *core.Graph[atom, atom] {
	b, _ := core.NewBuilder[atom, atom](id)
	var prev *core.Node[atom]
	for _, s := range symbols {
		n, _ := b.AddNode(s)
		if prev != nil {
			_, _ = b.AddEdge(prev, n, core.Undirected, "single")
		}
		prev = n
	}
	g, _ := b.Build()

	return g
}

// ExampleConstructMCS compares two chains that share a C-C-O fragment.
func ExampleConstructMCS() {
	ethanol := molecule(1, "C", "C", "O")
	propanol := molecule(2, "C", "C", "C", "O")

	cs, err := mcs.ConstructMCS(ethanol, propanol)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, cn := range cs.Nodes() {
		fmt.Println(cn.Node1.ID(), "=", cn.Node2.ID())
	}
	fmt.Println(cs.NodeCount(), cs.EdgeCount(), cs.Similarity(false))
	// Output:
	// 1.0 = 2.1
	// 1.1 = 2.2
	// 1.2 = 2.3
	// 3 2 1
}
