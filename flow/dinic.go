package flow

// Dinic computes minimum s-t cuts with Dinic’s algorithm (level graph +
// blocking flows) on a shared Network.
//
// Steps of MinCut:
//  1. Validate endpoints and Reset residuals (O(E)).
//  2. Repeat until the sink is unreachable:
//     a. BFS from source builds the level graph (O(V + E)).
//     b. Repeated DFS with per-vertex arc iterators pushes a blocking flow.
//  3. The source side is every vertex still reachable in the residual graph.
//
// Complexity: O(V²·E) worst case, much faster on the sparse support graphs
// produced by LP relaxations.
// Memory: O(V) for level, iterator and queue buffers, reused between calls.
type Dinic struct {
	nw    *Network
	level []int
	iter  []int
	queue []int
}

// NewDinic binds a Dinic cutter to nw.
func NewDinic(nw *Network) *Dinic {
	n := nw.Order()

	return &Dinic{
		nw:    nw,
		level: make([]int, n),
		iter:  make([]int, n),
		queue: make([]int, 0, n),
	}
}

// MinCut returns the max-flow value from source to sink and the source side
// of a minimum cut.
func (d *Dinic) MinCut(source, sink int) (float64, []int, error) {
	if err := d.nw.validate(source, sink); err != nil {
		return 0, nil, err
	}
	d.nw.Reset()

	var total float64
	for d.buildLevels(source, sink) {
		for i := range d.iter {
			d.iter[i] = 0
		}
		for {
			pushed := d.augment(source, sink, inf)
			if pushed <= d.nw.eps {
				break
			}
			total += pushed
		}
	}

	return total, d.nw.SourceSide(source), nil
}

// buildLevels labels BFS distances over residual arcs; reports whether sink
// was reached.
func (d *Dinic) buildLevels(source, sink int) bool {
	for i := range d.level {
		d.level[i] = -1
	}
	d.level[source] = 0
	d.queue = append(d.queue[:0], source)
	for i := 0; i < len(d.queue); i++ {
		u := d.queue[i]
		for _, ai := range d.nw.adj[u] {
			a := d.nw.arcs[ai]
			if a.residual > d.nw.eps && d.level[a.to] < 0 {
				d.level[a.to] = d.level[u] + 1
				d.queue = append(d.queue, a.to)
			}
		}
	}

	return d.level[sink] >= 0
}

// augment pushes one path of flow along strictly increasing levels.
func (d *Dinic) augment(u, sink int, limit float64) float64 {
	if u == sink {
		return limit
	}
	adj := d.nw.adj[u]
	for ; d.iter[u] < len(adj); d.iter[u]++ {
		ai := adj[d.iter[u]]
		a := &d.nw.arcs[ai]
		if a.residual <= d.nw.eps || d.level[a.to] != d.level[u]+1 {
			continue
		}
		pushed := d.augment(a.to, sink, min(limit, a.residual))
		if pushed > 0 {
			a.residual -= pushed
			d.nw.arcs[a.rev].residual += pushed

			return pushed
		}
	}

	return 0
}
