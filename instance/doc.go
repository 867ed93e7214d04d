// Package instance loads YAML problem files for the lvbap command.
//
// An instance file describes a support graph and a fractional LP solution:
//
//	name: two-triangles
//	edges:
//	  - {from: A, to: B, cost: 1, x: 1}
//	  - {from: B, to: C, cost: 1, x: 1}
//
// Edges receive IDs "e1", "e2", … in declaration order. Setting a per-edge
// `directed` flag turns the graph into a mixed graph. A `tour` list replaces
// the x values with the 0/1 incidence vector of that tour.
//
// A script file records a branch-and-price tree over an instance graph.
// Decisions address edges by endpoints and resolve to tsp.FixEdge or
// tsp.RemoveEdge; the resulting Replay can be driven through a
// bap.StateManager.
package instance
