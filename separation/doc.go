// Package separation detects violated subtour elimination constraints (SECs)
// in fractional TSP/routing relaxations.
//
// For a vertex subset S (∅ ≠ S ≠ V) every tour satisfies x(δ(S)) ≥ 2. Given a
// fractional assignment x, the Separator searches for cuts with
// x(δ(S)) < 2 - Epsilon (Epsilon = 1e-6) using minimum cuts over a CutGraph:
// the undirected simple graph derived once from the input graph, in which
// parallel and antiparallel edges share one working edge and loops vanish.
//
// Operations:
//
//	SeparateSubtour(values)                       // global min cut (Stoer–Wagner), *SubtourCut or nil
//	SeparateSubtours(values, maxCount)            // s-t scan, stops at maxCount
//	SeparateMostViolatedSubtours(values, maxCount) // full s-t scan, best maxCount by value
//
// values is sparse: edges absent from the map, or with x ≤ Epsilon, count as
// zero. The s-t scans fix the first vertex as source and try every other
// vertex as sink on one flow.Network whose capacities are refreshed per call;
// the max-flow strategy is chosen with WithMaxFlow.
//
// A cut and its complement are the same constraint, so every SubtourCut
// reports the shore that does not contain the first vertex. Identity is the
// vertex set alone (Key, Equal).
//
// Fewer than two vertices or no edges yields no candidate cuts. maxCount < 0
// is rejected with ErrNegativeMaxCount; a value for an edge the input graph
// did not have yields ErrUnknownEdge. Both are checked before any weight
// changes.
//
// A Separator is single-threaded. Parallel searches build one per worker,
// which costs O(V + E).
package separation
