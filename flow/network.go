package flow

import (
	"fmt"
	"sort"
	"strconv"
)

// arc is one direction of a network edge. Arcs come in pairs: arcs[a.rev]
// is the reciprocal of a. For an undirected edge both arcs carry the edge
// capacity; for a directed arc the reciprocal has capacity zero.
type arc struct {
	to       int
	rev      int
	capacity float64
	residual float64
}

// Network is an index-based flow network that is built once and then
// re-solved many times. Vertices are 0..Order()-1. Edge capacities may be
// changed between solves with SetCapacity; every Cutter calls Reset before
// computing a cut, so residual state never leaks between (source, sink) pairs.
//
// A Network is not safe for concurrent use.
type Network struct {
	eps   float64
	arcs  []arc
	adj   [][]int // adj[u] = indices into arcs leaving u
	edges []int   // edge index → forward arc index
	undir []bool  // edge index → undirected?
}

// NewNetwork allocates a network with n vertices and no edges.
// Complexity: O(n).
func NewNetwork(n int, opts Options) *Network {
	opts.normalize()

	return &Network{
		eps: opts.Epsilon,
		adj: make([][]int, n),
	}
}

// Order returns the number of vertices.
func (nw *Network) Order() int { return len(nw.adj) }

// Size returns the number of edges (undirected edges and directed arcs).
func (nw *Network) Size() int { return len(nw.edges) }

// Epsilon returns the saturation threshold of the network.
func (nw *Network) Epsilon() float64 { return nw.eps }

// AddEdge adds an undirected edge u–v with the given capacity in both
// directions and returns its edge index.
func (nw *Network) AddEdge(u, v int, capacity float64) (int, error) {
	return nw.add(u, v, capacity, true)
}

// AddArc adds a directed arc u→v and returns its edge index.
func (nw *Network) AddArc(u, v int, capacity float64) (int, error) {
	return nw.add(u, v, capacity, false)
}

func (nw *Network) add(u, v int, capacity float64, undirected bool) (int, error) {
	if u < 0 || u >= nw.Order() {
		return 0, fmt.Errorf("flow: vertex %d: %w", u, errSourceNotFound)
	}
	if v < 0 || v >= nw.Order() {
		return 0, fmt.Errorf("flow: vertex %d: %w", v, errSinkNotFound)
	}
	c, err := nw.clamp(u, v, capacity)
	if err != nil {
		return 0, err
	}
	back := 0.0
	if undirected {
		back = c
	}
	fwd := len(nw.arcs)
	nw.arcs = append(nw.arcs,
		arc{to: v, rev: fwd + 1, capacity: c, residual: c},
		arc{to: u, rev: fwd, capacity: back, residual: back},
	)
	nw.adj[u] = append(nw.adj[u], fwd)
	nw.adj[v] = append(nw.adj[v], fwd+1)
	nw.edges = append(nw.edges, fwd)
	nw.undir = append(nw.undir, undirected)

	return len(nw.edges) - 1, nil
}

// SetCapacity replaces the capacity of an edge. Residuals are not touched
// until the next Reset.
func (nw *Network) SetCapacity(edge int, capacity float64) error {
	if edge < 0 || edge >= len(nw.edges) {
		return ErrEdgeNotFound
	}
	fwd := nw.edges[edge]
	a := &nw.arcs[fwd]
	r := &nw.arcs[a.rev]
	c, err := nw.clamp(r.to, a.to, capacity)
	if err != nil {
		return err
	}
	a.capacity = c
	if nw.undir[edge] {
		r.capacity = c
	}

	return nil
}

// Capacity returns the current capacity of an edge.
func (nw *Network) Capacity(edge int) float64 {
	if edge < 0 || edge >= len(nw.edges) {
		return 0
	}

	return nw.arcs[nw.edges[edge]].capacity
}

// clamp rejects negative capacities and folds values ≤ Epsilon to zero.
func (nw *Network) clamp(u, v int, capacity float64) (float64, error) {
	if capacity < -nw.eps {
		return 0, EdgeError{From: strconv.Itoa(u), To: strconv.Itoa(v), Cap: capacity}
	}
	if capacity <= nw.eps {
		return 0, nil
	}

	return capacity, nil
}

// Reset restores every residual capacity to the arc capacity (zero flow).
// Complexity: O(E).
func (nw *Network) Reset() {
	for i := range nw.arcs {
		nw.arcs[i].residual = nw.arcs[i].capacity
	}
}

// SourceSide returns, in ascending order, the vertices reachable from s
// through arcs with residual capacity > Epsilon.
// Complexity: O(V + E).
func (nw *Network) SourceSide(s int) []int {
	seen := make([]bool, nw.Order())
	seen[s] = true
	queue := []int{s}
	for i := 0; i < len(queue); i++ {
		u := queue[i]
		for _, ai := range nw.adj[u] {
			a := nw.arcs[ai]
			if a.residual > nw.eps && !seen[a.to] {
				seen[a.to] = true
				queue = append(queue, a.to)
			}
		}
	}
	sort.Ints(queue)

	return queue
}

// SinkSide returns, in ascending order, the vertices that can reach t
// through arcs with residual capacity > Epsilon.
// Complexity: O(V + E).
func (nw *Network) SinkSide(t int) []int {
	seen := make([]bool, nw.Order())
	seen[t] = true
	queue := []int{t}
	for i := 0; i < len(queue); i++ {
		x := queue[i]
		for _, ai := range nw.adj[x] {
			// adj[x] holds x→y; its reciprocal is y→x.
			a := nw.arcs[ai]
			if nw.arcs[a.rev].residual > nw.eps && !seen[a.to] {
				seen[a.to] = true
				queue = append(queue, a.to)
			}
		}
	}
	sort.Ints(queue)

	return queue
}

// CutCapacity returns the total capacity of arcs leaving the vertex set.
// For an undirected edge crossing the cut its capacity is counted once.
// Complexity: O(V + E).
func (nw *Network) CutCapacity(side []int) float64 {
	in := make([]bool, nw.Order())
	for _, v := range side {
		in[v] = true
	}
	var total float64
	for _, u := range side {
		for _, ai := range nw.adj[u] {
			a := nw.arcs[ai]
			if !in[a.to] {
				total += a.capacity
			}
		}
	}

	return total
}

// complement returns the vertices not contained in side, ascending.
func (nw *Network) complement(side []int) []int {
	in := make([]bool, nw.Order())
	for _, v := range side {
		in[v] = true
	}
	out := make([]int, 0, nw.Order()-len(side))
	for v := range in {
		if !in[v] {
			out = append(out, v)
		}
	}

	return out
}

func (nw *Network) validate(source, sink int) error {
	if source < 0 || source >= nw.Order() {
		return ErrSourceNotFound
	}
	if sink < 0 || sink >= nw.Order() {
		return ErrSinkNotFound
	}
	if source == sink {
		return ErrSourceIsSink
	}

	return nil
}
