package flow

import "container/heap"

// PushRelabel computes minimum s-t cuts with the highest-label push/relabel
// method using node "discharge" operations and current-arc pointers.
//
// Steps of MinCut:
//  1. Reset residuals, set height(source) = V, saturate every source arc.
//  2. Pop the highest active vertex and discharge it: push along admissible
//     arcs (height(u) = height(v)+1), relabel when none remain.
//  3. When no active vertex remains, the vertices that cannot reach the sink
//     in the residual graph form the source side of a minimum cut.
//
// Complexity: O(V²·√E) for highest-label selection.
type PushRelabel struct {
	nw     *Network
	height []int
	excess []float64
	next   []int
	active heightHeap
	queued []bool
}

// NewPushRelabel binds a push/relabel cutter to nw.
func NewPushRelabel(nw *Network) *PushRelabel {
	n := nw.Order()
	pr := &PushRelabel{
		nw:     nw,
		height: make([]int, n),
		excess: make([]float64, n),
		next:   make([]int, n),
		queued: make([]bool, n),
	}
	pr.active.height = pr.height

	return pr
}

// MinCut returns the max-flow value from source to sink and the source side
// of a minimum cut.
func (pr *PushRelabel) MinCut(source, sink int) (float64, []int, error) {
	if err := pr.nw.validate(source, sink); err != nil {
		return 0, nil, err
	}
	pr.nw.Reset()
	n := pr.nw.Order()
	for v := 0; v < n; v++ {
		pr.height[v], pr.excess[v], pr.next[v], pr.queued[v] = 0, 0, 0, false
	}
	pr.active.nodes = pr.active.nodes[:0]
	pr.height[source] = n

	for _, ai := range pr.nw.adj[source] {
		a := &pr.nw.arcs[ai]
		if a.residual <= pr.nw.eps {
			continue
		}
		d := a.residual
		a.residual = 0
		pr.nw.arcs[a.rev].residual += d
		pr.excess[source] -= d
		pr.excess[a.to] += d
		pr.activate(a.to, source, sink)
	}

	for pr.active.Len() > 0 {
		u := heap.Pop(&pr.active).(int)
		pr.queued[u] = false
		pr.discharge(u, source, sink)
	}

	return pr.excess[sink], pr.nw.complement(pr.nw.SinkSide(sink)), nil
}

func (pr *PushRelabel) activate(v, source, sink int) {
	if v == source || v == sink || pr.queued[v] || pr.excess[v] <= pr.nw.eps {
		return
	}
	pr.queued[v] = true
	heap.Push(&pr.active, v)
}

// discharge pushes all excess from u, relabeling as required. Heights are
// bounded by 2V; a vertex whose excess cannot move below that bound keeps
// the remainder, which never affects the sink side of the residual graph.
func (pr *PushRelabel) discharge(u, source, sink int) {
	adj := pr.nw.adj[u]
	limit := 2 * pr.nw.Order()
	for pr.excess[u] > pr.nw.eps {
		if pr.next[u] == len(adj) {
			lowest := limit
			for _, ai := range adj {
				a := pr.nw.arcs[ai]
				if a.residual > pr.nw.eps && pr.height[a.to] < lowest {
					lowest = pr.height[a.to]
				}
			}
			if lowest+1 >= limit {
				return
			}
			pr.height[u] = lowest + 1
			pr.next[u] = 0

			continue
		}

		a := &pr.nw.arcs[adj[pr.next[u]]]
		if a.residual > pr.nw.eps && pr.height[u] == pr.height[a.to]+1 {
			d := min(pr.excess[u], a.residual)
			a.residual -= d
			pr.nw.arcs[a.rev].residual += d
			pr.excess[u] -= d
			pr.excess[a.to] += d
			pr.activate(a.to, source, sink)
			if a.residual > pr.nw.eps {
				continue
			}
		}
		pr.next[u]++
	}
}

// heightHeap orders active vertices by descending height.
type heightHeap struct {
	nodes  []int
	height []int
}

func (h heightHeap) Len() int           { return len(h.nodes) }
func (h heightHeap) Less(i, j int) bool { return h.height[h.nodes[i]] > h.height[h.nodes[j]] }
func (h heightHeap) Swap(i, j int)      { h.nodes[i], h.nodes[j] = h.nodes[j], h.nodes[i] }
func (h *heightHeap) Push(x any)        { h.nodes = append(h.nodes, x.(int)) }
func (h *heightHeap) Pop() any {
	old := h.nodes
	x := old[len(old)-1]
	h.nodes = old[:len(old)-1]

	return x
}
