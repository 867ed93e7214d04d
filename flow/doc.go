// Package flow implements maximum-flow / minimum s-t cut algorithms over an
// index-based residual Network that is built once and re-solved many times.
//
// The Network keeps a flat arc arena: every edge owns two arcs (forward and
// reciprocal). An undirected edge gives both arcs its capacity, a directed
// arc gives its reciprocal zero. Capacities can be refreshed with
// SetCapacity between solves; every Cutter resets residuals before it runs,
// so one Network serves any number of (source, sink) pairs.
//
// The algorithms offered are:
//
//   - Dinic (AlgoDinic, default)
//     Level graph + blocking flows. O(V²·E), fast in practice.
//
//   - Edmonds–Karp (AlgoEdmondsKarp)
//     BFS shortest augmenting paths. O(V·E²).
//
//   - Ford–Fulkerson (AlgoFordFulkerson)
//     DFS augmenting paths. O(E·F) on integral capacities.
//
//   - Push–relabel (AlgoPushRelabel)
//     Highest-label discharge with current-arc pointers. O(V²·√E).
//
// # API
//
//	nw := flow.NewNetwork(n, flow.DefaultOptions())
//	e, _ := nw.AddEdge(0, 1, 0.5)     // undirected
//	_, _ = nw.AddArc(1, 2, 1.0)       // directed
//	_ = nw.SetCapacity(e, 0.75)
//
//	cutter, _ := flow.NewCutter(flow.AlgoDinic, nw)
//	value, sourceSide, err := cutter.MinCut(0, 2)
//
// For one-off computations on a *core.Graph use MaxFlow, which builds the
// Network with FromGraph and maps the cut back to vertex IDs.
//
// Capacities ≤ Options.Epsilon are stored as zero.
//
// # Errors
//
//	ErrSourceNotFound   - source index/ID is not in the network.
//	ErrSinkNotFound     - sink index/ID is not in the network.
//	ErrSourceIsSink     - source and sink coincide.
//	ErrEdgeNotFound     - SetCapacity with an unknown edge index.
//	ErrUnknownAlgorithm - NewCutter/ParseAlgorithm with an unsupported strategy.
//	EdgeError           - negative capacity (beyond Epsilon).
package flow
