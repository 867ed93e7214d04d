package flow

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvbap/core"
)

var inf = math.Inf(1)

// Cutter computes a minimum s-t cut on the Network it was built for.
// value is the max-flow value, sourceSide lists (ascending) the vertices on
// the source side of a minimum cut. Implementations reset residuals on every
// call and are not safe for concurrent use.
type Cutter interface {
	MinCut(source, sink int) (value float64, sourceSide []int, err error)
}

var (
	_ Cutter = (*Dinic)(nil)
	_ Cutter = (*EdmondsKarp)(nil)
	_ Cutter = (*FordFulkerson)(nil)
	_ Cutter = (*PushRelabel)(nil)
)

// NewCutter returns the Cutter implementing alg over nw.
func NewCutter(alg Algorithm, nw *Network) (Cutter, error) {
	switch alg {
	case AlgoDinic:
		return NewDinic(nw), nil
	case AlgoEdmondsKarp:
		return NewEdmondsKarp(nw), nil
	case AlgoFordFulkerson:
		return NewFordFulkerson(nw), nil
	case AlgoPushRelabel:
		return NewPushRelabel(nw), nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownAlgorithm, alg)
	}
}

// FromGraph builds a Network from g: undirected edges become symmetric
// edges, directed edges become arcs, loops are skipped. Edge weights are the
// capacities. The returned index maps vertex IDs to network vertices.
//
// Complexity: O(V log V + E log E) for the sorted snapshots of g.
func FromGraph(g *core.Graph, opts Options) (*Network, map[string]int, error) {
	ids := g.Vertices()
	index := make(map[string]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}
	nw := NewNetwork(len(ids), opts)
	for _, e := range g.Edges() {
		if e.From == e.To {
			continue
		}
		u, v := index[e.From], index[e.To]
		var err error
		if e.Directed {
			_, err = nw.AddArc(u, v, e.Weight)
		} else {
			_, err = nw.AddEdge(u, v, e.Weight)
		}
		if err != nil {
			if ee, ok := err.(EdgeError); ok {
				ee.From, ee.To = e.From, e.To

				return nil, nil, ee
			}

			return nil, nil, err
		}
	}

	return nw, index, nil
}

// MaxFlow is a convenience wrapper: it builds a Network from g and returns
// the max-flow value from source to sink together with the vertex IDs on
// the source side of a minimum cut.
func MaxFlow(g *core.Graph, source, sink string, alg Algorithm, opts Options) (float64, []string, error) {
	nw, index, err := FromGraph(g, opts)
	if err != nil {
		return 0, nil, err
	}
	s, ok := index[source]
	if !ok {
		return 0, nil, ErrSourceNotFound
	}
	t, ok := index[sink]
	if !ok {
		return 0, nil, ErrSinkNotFound
	}
	cutter, err := NewCutter(alg, nw)
	if err != nil {
		return 0, nil, err
	}
	value, side, err := cutter.MinCut(s, t)
	if err != nil {
		return 0, nil, err
	}
	ids := g.Vertices()
	names := make([]string, len(side))
	for i, v := range side {
		names[i] = ids[v]
	}

	return value, names, nil
}
