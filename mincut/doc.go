// Package mincut computes global minimum cuts of undirected weighted graphs
// with the Stoer–Wagner algorithm.
//
// Vertices are dense indices 0..n-1; edges are given as a slice of Edge.
// Parallel edges are summed and loops ignored, so the input can be a raw
// support graph of an LP solution.
//
//	r, err := mincut.StoerWagner(n, edges)
//	// r.Weight – total weight crossing the cut
//	// r.Side   – one shore, ascending
//
// Complexity: O(V·(E + V)·log V) with a lazy binary heap.
//
// Errors:
//
//	ErrTooFewVertices   – n < 2
//	ErrVertexOutOfRange – endpoint outside [0, n)
//	ErrNegativeWeight   – weight < 0
package mincut
