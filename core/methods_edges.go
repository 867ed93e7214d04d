// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle and queries: AddEdge/InsertEdge/RemoveEdge/HasEdge/
//       Edge/Endpoints/Edges/EdgeCount, plus nextEdgeID().
// Determinism:
//   - Edges() returns edges sorted by ID with numeric-aware ordering
//     ("e2" before "e10").
//   - nextEdgeID() is monotonic ("e" + decimal).
// Concurrency:
//   - Mutations under muEdgeAdj write lock, queries under its read lock.

package core

import (
	"sort"
	"strconv"
	"strings"
	"sync/atomic"
)

// edgeIDPrefix is the textual prefix of generated edge identifiers.
const edgeIDPrefix = 'e'

// AddEdge creates a new edge from 'from' to 'to' and returns its ID.
// Missing endpoints are added. A per-edge WithEdgeDirected override is only
// accepted in mixed graphs.
//
// Steps:
//  1. Validate IDs, weight and loop policy.
//  2. Reject per-edge options without mixed mode.
//  3. Ensure both endpoints exist.
//  4. Under muEdgeAdj: check the multi-edge policy, allocate the ID, link.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight float64, opts ...EdgeOption) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if !g.Weighted() && weight != 0 {
		return "", ErrBadWeight
	}
	g.muVert.RLock()
	loops, mixed, directed := g.allowLoops, g.allowMixed, g.directed
	g.muVert.RUnlock()
	if from == to && !loops {
		return "", ErrLoopNotAllowed
	}
	if len(opts) > 0 && !mixed {
		return "", ErrMixedEdgesNotAllowed
	}
	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	e := &Edge{From: from, To: to, Weight: weight, Directed: directed}
	for _, opt := range opts {
		opt(e)
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	if !g.allowMulti && g.hasPairLocked(from, to) {
		return "", ErrMultiEdgeNotAllowed
	}
	e.ID = nextEdgeID(g)
	g.edges[e.ID] = e
	g.linkEdge(e)

	return e.ID, nil
}

// InsertEdge re-inserts a previously removed edge under its original ID.
// The edge keeps its own Directed flag. Endpoints must exist.
// Returns ErrEdgeExists if the ID is taken.
// Complexity: O(1).
func (g *Graph) InsertEdge(e Edge) error {
	if e.ID == "" || e.From == "" || e.To == "" {
		return ErrEmptyVertexID
	}
	if !g.HasVertex(e.From) || !g.HasVertex(e.To) {
		return ErrVertexNotFound
	}
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	if _, taken := g.edges[e.ID]; taken {
		return ErrEdgeExists
	}
	stored := e
	g.edges[e.ID] = &stored
	g.linkEdge(&stored)

	return nil
}

// RemoveEdge deletes the edge with the given ID and returns a copy of it.
// Complexity: O(1).
func (g *Graph) RemoveEdge(eid string) (Edge, error) {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	e, ok := g.edges[eid]
	if !ok {
		return Edge{}, ErrEdgeNotFound
	}
	delete(g.edges, eid)
	g.unlinkEdge(e)

	return *e, nil
}

// HasEdge reports whether at least one edge can be traversed from 'from' to 'to'.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return g.hasPairLocked(from, to)
}

// Edge returns the edge with the given ID (read-only by convention).
// Complexity: O(1).
func (g *Graph) Edge(eid string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	e, ok := g.edges[eid]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// Endpoints returns the source and target vertex of an edge.
func (g *Graph) Endpoints(eid string) (from, to string, err error) {
	e, err := g.Edge(eid)
	if err != nil {
		return "", "", err
	}

	return e.From, e.To, nil
}

// Edges returns all edges sorted by ID.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sortEdges(out)

	return out
}

// EdgeCount returns the number of edges. O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// nextEdgeID returns a new unique textual edge ID. Caller holds muEdgeAdj;
// IDs taken by InsertEdge are skipped.
func nextEdgeID(g *Graph) string {
	for {
		n := atomic.AddUint64(&g.nextEdgeID, 1)
		buf := make([]byte, 0, 1+20)
		buf = append(buf, edgeIDPrefix)
		buf = strconv.AppendUint(buf, n, 10)
		if _, taken := g.edges[string(buf)]; !taken {
			return string(buf)
		}
	}
}

// sortEdges orders edges by ID, comparing generated IDs numerically.
func sortEdges(edges []*Edge) {
	sort.Slice(edges, func(i, j int) bool { return lessEdgeID(edges[i].ID, edges[j].ID) })
}

// lessEdgeID compares "e<digits>" IDs by number; everything else lexically.
func lessEdgeID(a, b string) bool {
	na, okA := generatedSeq(a)
	nb, okB := generatedSeq(b)
	switch {
	case okA && okB:
		return na < nb
	case okA != okB:
		return okA
	default:
		return a < b
	}
}

func generatedSeq(id string) (uint64, bool) {
	if len(id) < 2 || id[0] != edgeIDPrefix {
		return 0, false
	}
	digits := strings.TrimPrefix(id, string(edgeIDPrefix))
	n, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		return 0, false
	}

	return n, true
}

//–– adjacency helpers (caller holds muEdgeAdj) ––––––––––––––––––––––––––––––

func (g *Graph) ensureAdjID(id string) {
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = make(map[string]map[string]struct{})
	}
}

func (g *Graph) ensureAdjPair(from, to string) {
	g.ensureAdjID(from)
	if g.adjacency[from][to] == nil {
		g.adjacency[from][to] = make(map[string]struct{})
	}
}

func (g *Graph) hasPairLocked(from, to string) bool {
	for eid := range g.adjacency[from][to] {
		if e := g.edges[eid]; !e.Directed || e.From == from {
			return true
		}
	}

	return false
}

// linkEdge adds e to adjacency, mirroring undirected non-loop edges.
func (g *Graph) linkEdge(e *Edge) {
	g.ensureAdjPair(e.From, e.To)
	g.adjacency[e.From][e.To][e.ID] = struct{}{}
	if e.From != e.To {
		// Directed edges are mirrored too so HasEdge/Neighbors can filter by
		// orientation while RemoveVertex finds incoming edges in O(1).
		g.ensureAdjPair(e.To, e.From)
		g.adjacency[e.To][e.From][e.ID] = struct{}{}
	}
}

// unlinkEdge removes e from both adjacency buckets and drops empty buckets.
func (g *Graph) unlinkEdge(e *Edge) {
	drop := func(u, v string) {
		bucket := g.adjacency[u][v]
		if bucket == nil {
			return
		}
		delete(bucket, e.ID)
		if len(bucket) == 0 {
			delete(g.adjacency[u], v)
		}
	}
	drop(e.From, e.To)
	drop(e.To, e.From)
}
