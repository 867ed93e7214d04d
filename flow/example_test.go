package flow_test

import (
	"fmt"

	"github.com/katalvlaran/lvbap/flow"
)

// ExampleNewCutter computes a minimum cut on a small undirected network and
// re-solves it after a capacity refresh.
func ExampleNewCutter() {
	// 1) Path 0-1-2 plus a weak shortcut 0-2.
	nw := flow.NewNetwork(3, flow.DefaultOptions())
	left, _ := nw.AddEdge(0, 1, 1)
	_, _ = nw.AddEdge(1, 2, 1)
	_, _ = nw.AddEdge(0, 2, 0.5)

	// 2) Solve with Dinic.
	cutter, _ := flow.NewCutter(flow.AlgoDinic, nw)
	value, side, _ := cutter.MinCut(0, 2)
	fmt.Printf("value=%.2f side=%v\n", value, side)

	// 3) Weaken the left edge and solve again on the same network.
	_ = nw.SetCapacity(left, 0.25)
	value, side, _ = cutter.MinCut(0, 2)
	fmt.Printf("value=%.2f side=%v\n", value, side)

	// Output:
	// value=1.50 side=[0]
	// value=0.75 side=[0]
}
