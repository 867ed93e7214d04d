package separation

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lvbap/core"
	"github.com/katalvlaran/lvbap/mincut"
)

// InputGraph is the read-only view a separator needs from the routing model:
// its vertex set and its edge set with endpoints. *core.Graph satisfies it.
type InputGraph interface {
	Vertices() []string
	Edges() []*core.Edge
}

var _ InputGraph = (*core.Graph)(nil)

// CutGraph is the undirected simple weighted graph derived from an
// InputGraph. Parallel and antiparallel input edges between the same pair
// collapse into one working edge; loops are dropped. Topology is fixed at
// construction, only weights change.
type CutGraph struct {
	ids    []string
	index  map[string]int
	ends   [][2]int       // working edge → (u, v), u < v
	weight []float64      // working edge → accumulated value
	pairs  map[[2]int]int // (u, v), u < v → working edge
	edgeOf map[string]int // input edge ID → working edge
}

// NewCutGraph derives the working graph from g.
// Complexity: O(V + E).
func NewCutGraph(g InputGraph) *CutGraph {
	ids := g.Vertices()
	cg := &CutGraph{
		ids:    append([]string(nil), ids...),
		index:  make(map[string]int, len(ids)),
		pairs:  make(map[[2]int]int),
		edgeOf: make(map[string]int),
	}
	for i, id := range cg.ids {
		cg.index[id] = i
	}
	for _, e := range g.Edges() {
		u, okU := cg.index[e.From]
		v, okV := cg.index[e.To]
		if !okU || !okV || u == v {
			continue
		}
		if u > v {
			u, v = v, u
		}
		key := [2]int{u, v}
		w, ok := cg.pairs[key]
		if !ok {
			w = len(cg.ends)
			cg.pairs[key] = w
			cg.ends = append(cg.ends, key)
			cg.weight = append(cg.weight, 0)
		}
		cg.edgeOf[e.ID] = w
	}

	return cg
}

// Order returns the number of vertices.
func (cg *CutGraph) Order() int { return len(cg.ids) }

// Size returns the number of working edges.
func (cg *CutGraph) Size() int { return len(cg.ends) }

// Vertices returns the vertex IDs in working-graph index order.
func (cg *CutGraph) Vertices() []string { return append([]string(nil), cg.ids...) }

// Weight returns the current weight of the working edge between a and b,
// or 0 if there is none.
func (cg *CutGraph) Weight(a, b string) float64 {
	u, okU := cg.index[a]
	v, okV := cg.index[b]
	if !okU || !okV {
		return 0
	}
	if u > v {
		u, v = v, u
	}
	if w, ok := cg.pairs[[2]int{u, v}]; ok {
		return cg.weight[w]
	}

	return 0
}

// Refresh resets every working weight to zero, then adds each value > Epsilon
// to the working edge of its input edge. Entries at or below Epsilon are
// ignored. The mapping is validated before any weight changes.
// Complexity: O(E + len(values)).
func (cg *CutGraph) Refresh(values map[string]float64) error {
	for id, x := range values {
		if x <= Epsilon {
			continue
		}
		if _, ok := cg.edgeOf[id]; !ok {
			return fmt.Errorf("%w: %q", ErrUnknownEdge, id)
		}
	}
	for i := range cg.weight {
		cg.weight[i] = 0
	}
	for id, x := range values {
		if x > Epsilon {
			cg.weight[cg.edgeOf[id]] += x
		}
	}

	return nil
}

// CutValue returns the total weight of working edges with exactly one
// endpoint in set. Unknown IDs are ignored.
func (cg *CutGraph) CutValue(set []string) float64 {
	in := make([]bool, cg.Order())
	for _, id := range set {
		if i, ok := cg.index[id]; ok {
			in[i] = true
		}
	}

	return cg.crossing(in)
}

func (cg *CutGraph) crossing(in []bool) float64 {
	var total float64
	for i, uv := range cg.ends {
		if in[uv[0]] != in[uv[1]] {
			total += cg.weight[i]
		}
	}

	return total
}

// certificate turns one shore into a SubtourCut. The reported set is the
// shore that excludes vertex 0, so a cut and its complement share one Key.
func (cg *CutGraph) certificate(side []int) SubtourCut {
	in := make([]bool, cg.Order())
	for _, v := range side {
		in[v] = true
	}
	if in[0] {
		for i := range in {
			in[i] = !in[i]
		}
	}
	set := make([]string, 0, len(in))
	for i, ok := range in {
		if ok {
			set = append(set, cg.ids[i])
		}
	}
	sort.Strings(set)

	return SubtourCut{Set: set, Value: cg.crossing(in)}
}

func (cg *CutGraph) mincutEdges() []mincut.Edge {
	edges := make([]mincut.Edge, len(cg.ends))
	for i, uv := range cg.ends {
		edges[i] = mincut.Edge{U: uv[0], V: uv[1], Weight: cg.weight[i]}
	}

	return edges
}
