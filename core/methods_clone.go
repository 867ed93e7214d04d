// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Deep copies of graph instances.
// Determinism:
//   - Clone carries nextEdgeID so IDs generated on the clone never collide
//     with copied edges.

package core

import "sync/atomic"

// Clone returns a deep copy of the Graph: configuration, vertices, edges and
// adjacency. Vertex Metadata maps are shared.
//
// Pricing subproblems take a Clone of the model graph and then mutate it as
// branching decisions restrict the edge set.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	clone := &Graph{
		directed:   g.directed,
		weighted:   g.weighted,
		allowMulti: g.allowMulti,
		allowLoops: g.allowLoops,
		allowMixed: g.allowMixed,
		vertices:   make(map[string]*Vertex, len(g.vertices)),
		edges:      make(map[string]*Edge, len(g.edges)),
		adjacency:  make(map[string]map[string]map[string]struct{}, len(g.adjacency)),
	}
	atomic.StoreUint64(&clone.nextEdgeID, atomic.LoadUint64(&g.nextEdgeID))

	for id, v := range g.vertices {
		clone.vertices[id] = &Vertex{ID: v.ID, Metadata: v.Metadata}
		clone.ensureAdjID(id)
	}
	for eid, e := range g.edges {
		ne := *e
		clone.edges[eid] = &ne
		clone.linkEdge(&ne)
	}

	return clone
}
