package core_test

import (
	"fmt"

	"github.com/katalvlaran/lvbap/core"
)

// ExampleGraph demonstrates building a small mixed road network.
func ExampleGraph() {
	// 1) Two-way streets by default, one-way streets by override.
	g := core.NewMixedGraph(core.WithWeighted())
	_, _ = g.AddEdge("depot", "a", 4)
	_, _ = g.AddEdge("a", "b", 2)
	oneWay, _ := g.AddEdge("b", "depot", 3, core.WithEdgeDirected(true))

	// 2) Inspect the model.
	fmt.Println("Vertices:", g.Vertices())
	fmt.Println("b→depot:", g.HasEdge("b", "depot"), "depot→b:", g.HasEdge("depot", "b"))

	// 3) Close the one-way street and reopen it again.
	closed, _ := g.RemoveEdge(oneWay)
	fmt.Println("after close:", g.HasEdge("b", "depot"))
	_ = g.InsertEdge(closed)
	fmt.Println("after reopen:", g.HasEdge("b", "depot"))

	// Output:
	// Vertices: [a b depot]
	// b→depot: true depot→b: false
	// after close: false
	// after reopen: true
}
