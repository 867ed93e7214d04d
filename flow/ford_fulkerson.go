package flow

// FordFulkerson computes minimum s-t cuts by augmenting along any residual
// path found with an iterative DFS.
//
// Complexity: O(E·F) on integral networks where F is the max-flow value.
// Fractional capacities terminate because every augmentation saturates an
// arc above Epsilon, but Dinic should be preferred for large instances.
type FordFulkerson struct {
	nw     *Network
	parent []int
	stack  []int
}

// NewFordFulkerson binds a Ford–Fulkerson cutter to nw.
func NewFordFulkerson(nw *Network) *FordFulkerson {
	return &FordFulkerson{
		nw:     nw,
		parent: make([]int, nw.Order()),
		stack:  make([]int, 0, nw.Order()),
	}
}

// MinCut returns the max-flow value from source to sink and the source side
// of a minimum cut.
func (ff *FordFulkerson) MinCut(source, sink int) (float64, []int, error) {
	if err := ff.nw.validate(source, sink); err != nil {
		return 0, nil, err
	}
	ff.nw.Reset()

	var total float64
	for ff.anyPath(source, sink) {
		bottleneck := inf
		for v := sink; v != source; {
			a := ff.nw.arcs[ff.parent[v]]
			bottleneck = min(bottleneck, a.residual)
			v = ff.nw.arcs[a.rev].to
		}
		for v := sink; v != source; {
			a := &ff.nw.arcs[ff.parent[v]]
			a.residual -= bottleneck
			ff.nw.arcs[a.rev].residual += bottleneck
			v = ff.nw.arcs[a.rev].to
		}
		total += bottleneck
	}

	return total, ff.nw.SourceSide(source), nil
}

func (ff *FordFulkerson) anyPath(source, sink int) bool {
	for i := range ff.parent {
		ff.parent[i] = -1
	}
	ff.stack = append(ff.stack[:0], source)
	for len(ff.stack) > 0 {
		u := ff.stack[len(ff.stack)-1]
		ff.stack = ff.stack[:len(ff.stack)-1]
		for _, ai := range ff.nw.adj[u] {
			a := ff.nw.arcs[ai]
			if a.residual <= ff.nw.eps || a.to == source || ff.parent[a.to] >= 0 {
				continue
			}
			ff.parent[a.to] = ai
			if a.to == sink {
				return true
			}
			ff.stack = append(ff.stack, a.to)
		}
	}

	return false
}
