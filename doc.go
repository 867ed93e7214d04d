// Package lvbap collects the building blocks of a branch-and-price solver
// for routing problems: subtour elimination cut separation and the
// bookkeeping that moves a solver between nodes of its search tree.
//
// Packages:
//
//	core/        — thread-safe Graph of vertices and (mixed) edges
//	flow/        — index-based network with Dinic, Edmonds–Karp, Ford–Fulkerson
//	               and push-relabel minimum s-t cuts
//	mincut/      — Stoer–Wagner global minimum cut
//	separation/  — CutGraph and Separator: violated subtour cuts x(δ(S)) < 2
//	bap/         — search Tree, StateManager with decision listeners, Frontier
//	tsp/         — edge fixing/removal decisions and the pricing-graph listener
//	config/      — TOML runtime configuration
//	instance/    — YAML instances and branching scripts
//	cmd/lvbap    — command-line front end
//
// Quick example, two disjoint triangles in the LP support graph:
//
//	A───B   D───E
//	 \ /     \ /
//	  C       F
//
// Every vertex has degree 2, yet {D,E,F} is cut off from the rest with
// x(δ(S)) = 0, so the separator reports it as the most violated subtour.
//
//	go install github.com/katalvlaran/lvbap/cmd/lvbap@latest
package lvbap
