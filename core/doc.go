// Package core provides the thread-safe in-memory Graph that models routing
// instances: cities are vertices, road links are edges.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Per-edge orientation in mixed graphs (WithMixedEdges + WithEdgeDirected)
//   - Weighted edges with float64 weights (WithWeighted)
//   - Parallel edges (WithMultiEdges) and self-loops (WithLoops)
//   - Atomic, monotonic edge IDs ("e1", "e2", …)
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency
//     (muEdgeAdj) to minimize lock contention
//
// Core Methods:
//
//	AddVertex(id string) error
//	HasVertex(id string) bool
//	RemoveVertex(id string) error
//	AddEdge(from, to string, weight float64, opts ...EdgeOption) (string, error)
//	InsertEdge(e Edge) error             // re-insert a removed edge under its ID
//	RemoveEdge(id string) (Edge, error)  // returns the removed edge
//	HasEdge(from, to string) bool
//	Edge(id string) (*Edge, error)
//	Endpoints(id string) (from, to string, err error)
//	Neighbors(id string) ([]*Edge, error)
//	Vertices() []string                  // sorted
//	Edges() []*Edge                      // sorted by ID, "e2" < "e10"
//	VertexCount() int
//	EdgeCount() int
//	Clone() *Graph
//
// A Graph satisfies separation.InputGraph, so it can be handed directly to a
// subtour separator. The separator reads the topology once; mutating the
// graph afterwards is a caller contract violation.
//
// Errors:
//
//	ErrEmptyVertexID        – zero-length vertex ID
//	ErrVertexNotFound       – missing vertex
//	ErrEdgeNotFound         – missing edge
//	ErrEdgeExists           – InsertEdge with an ID already present
//	ErrBadWeight            – non-zero weight on unweighted graph
//	ErrLoopNotAllowed       – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed  – parallel edge when multi-edges disabled
//	ErrMixedEdgesNotAllowed – per-edge override without mixed mode
package core
