package mincut

import (
	"container/heap"
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrTooFewVertices is returned when a global cut is requested on fewer than two vertices.
	ErrTooFewVertices = errors.New("mincut: at least two vertices are required")
	// ErrVertexOutOfRange is returned when an edge endpoint is not in [0, n).
	ErrVertexOutOfRange = errors.New("mincut: edge endpoint out of range")
	// ErrNegativeWeight is returned for an edge with negative weight.
	ErrNegativeWeight = errors.New("mincut: negative edge weight")
)

// Edge is an undirected weighted edge between vertex indices U and V.
type Edge struct {
	U, V   int
	Weight float64
}

// Result is a global minimum cut: its Weight and the vertices of one shore
// in ascending order. The other shore is the complement.
type Result struct {
	Weight float64
	Side   []int
}

// StoerWagner computes a global minimum cut of the undirected graph on
// vertices 0..n-1. Parallel edges are summed and loops ignored.
//
// Steps:
//  1. Build a sparse symmetric weight map and a singleton group per vertex.
//  2. Repeat n-1 phases:
//     a. Grow a maximum-adjacency ordering from the lowest active vertex,
//     using a lazy max-heap keyed by attachment weight (ties: lower index).
//     b. The last vertex t's attachment weight is the cut-of-the-phase; keep
//     the lightest seen together with t's group.
//     c. Merge t into the second-to-last vertex s.
//
// The result is deterministic for a given edge list. Disconnected inputs
// yield Weight 0 and one connected component as Side.
//
// Complexity: O(V·(E + V)·log V).
// Memory: O(V + E).
func StoerWagner(n int, edges []Edge) (Result, error) {
	if n < 2 {
		return Result{}, ErrTooFewVertices
	}

	// 1) Sparse weights.
	w := make([]map[int]float64, n)
	for i := range w {
		w[i] = make(map[int]float64)
	}
	for _, e := range edges {
		if e.U < 0 || e.U >= n || e.V < 0 || e.V >= n {
			return Result{}, fmt.Errorf("%w: (%d,%d)", ErrVertexOutOfRange, e.U, e.V)
		}
		if e.Weight < 0 {
			return Result{}, fmt.Errorf("%w: (%d,%d)=%g", ErrNegativeWeight, e.U, e.V, e.Weight)
		}
		if e.U == e.V {
			continue
		}
		w[e.U][e.V] += e.Weight
		w[e.V][e.U] += e.Weight
	}
	groups := make([][]int, n)
	for i := range groups {
		groups[i] = []int{i}
	}
	active := make([]bool, n)
	for i := range active {
		active[i] = true
	}

	best := Result{Weight: -1}
	key := make([]float64, n)
	added := make([]bool, n)
	for remaining := n; remaining > 1; remaining-- {
		// 2a) Maximum-adjacency ordering.
		pq := &attachHeap{}
		for v := 0; v < n; v++ {
			key[v], added[v] = 0, false
			if active[v] {
				heap.Push(pq, attach{v: v})
			}
		}
		prev, last := -1, -1
		for pq.Len() > 0 {
			top := heap.Pop(pq).(attach)
			if added[top.v] || top.key != key[top.v] {
				continue
			}
			added[top.v] = true
			prev, last = last, top.v
			for x, wx := range w[top.v] {
				if !added[x] {
					key[x] += wx
					heap.Push(pq, attach{v: x, key: key[x]})
				}
			}
		}

		// 2b) Cut of the phase.
		if best.Weight < 0 || key[last] < best.Weight {
			best.Weight = key[last]
			best.Side = append(best.Side[:0], groups[last]...)
		}

		// 2c) Merge last into prev.
		for x, wx := range w[last] {
			delete(w[x], last)
			if x == prev {
				continue
			}
			w[prev][x] += wx
			w[x][prev] += wx
		}
		w[last] = nil
		groups[prev] = append(groups[prev], groups[last]...)
		groups[last] = nil
		active[last] = false
	}
	sort.Ints(best.Side)

	return best, nil
}

type attach struct {
	v   int
	key float64
}

// attachHeap is a max-heap on key, lower vertex index first on ties.
type attachHeap []attach

func (h attachHeap) Len() int { return len(h) }
func (h attachHeap) Less(i, j int) bool {
	if h[i].key != h[j].key {
		return h[i].key > h[j].key
	}

	return h[i].v < h[j].v
}
func (h attachHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *attachHeap) Push(x any)   { *h = append(*h, x.(attach)) }
func (h *attachHeap) Pop() any {
	old := *h
	x := old[len(old)-1]
	*h = old[:len(old)-1]

	return x
}
