package flow

// EdmondsKarp computes minimum s-t cuts by repeatedly augmenting along
// shortest (fewest-arc) residual paths found with BFS.
//
// Complexity: O(V·E²).
// Memory: O(V) for the parent-arc array and BFS queue.
type EdmondsKarp struct {
	nw     *Network
	parent []int // parent[v] = arc index used to reach v, -1 if unseen
	queue  []int
}

// NewEdmondsKarp binds an Edmonds–Karp cutter to nw.
func NewEdmondsKarp(nw *Network) *EdmondsKarp {
	return &EdmondsKarp{
		nw:     nw,
		parent: make([]int, nw.Order()),
		queue:  make([]int, 0, nw.Order()),
	}
}

// MinCut returns the max-flow value from source to sink and the source side
// of a minimum cut.
func (ek *EdmondsKarp) MinCut(source, sink int) (float64, []int, error) {
	if err := ek.nw.validate(source, sink); err != nil {
		return 0, nil, err
	}
	ek.nw.Reset()

	var total float64
	for ek.shortestPath(source, sink) {
		// Bottleneck along the parent chain.
		bottleneck := inf
		for v := sink; v != source; {
			a := ek.nw.arcs[ek.parent[v]]
			bottleneck = min(bottleneck, a.residual)
			v = ek.nw.arcs[a.rev].to
		}
		for v := sink; v != source; {
			ai := ek.parent[v]
			a := &ek.nw.arcs[ai]
			a.residual -= bottleneck
			ek.nw.arcs[a.rev].residual += bottleneck
			v = ek.nw.arcs[a.rev].to
		}
		total += bottleneck
	}

	return total, ek.nw.SourceSide(source), nil
}

func (ek *EdmondsKarp) shortestPath(source, sink int) bool {
	for i := range ek.parent {
		ek.parent[i] = -1
	}
	ek.queue = append(ek.queue[:0], source)
	for i := 0; i < len(ek.queue); i++ {
		u := ek.queue[i]
		for _, ai := range ek.nw.adj[u] {
			a := ek.nw.arcs[ai]
			if a.residual <= ek.nw.eps || a.to == source || ek.parent[a.to] >= 0 {
				continue
			}
			ek.parent[a.to] = ai
			if a.to == sink {
				return true
			}
			ek.queue = append(ek.queue, a.to)
		}
	}

	return false
}
