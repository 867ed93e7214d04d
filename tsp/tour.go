package tsp

import (
	"fmt"

	"github.com/katalvlaran/lvbap/core"
)

// ValidateTour checks that tour visits every vertex of g exactly once. The
// tour may be open [v0 … vn-1] or closed [v0 … vn-1 v0].
//
// Complexity: O(n) time, O(n) space.
func ValidateTour(g *core.Graph, tour []string) error {
	n := g.VertexCount()
	if len(tour) == n+1 && n > 0 && tour[0] == tour[n] {
		tour = tour[:n]
	}
	if n == 0 || len(tour) != n {
		return ErrDimensionMismatch
	}
	seen := make(map[string]struct{}, n)
	for _, v := range tour {
		if !g.HasVertex(v) {
			return fmt.Errorf("%w: unknown vertex %q", ErrDimensionMismatch, v)
		}
		if _, dup := seen[v]; dup {
			return fmt.Errorf("%w: vertex %q repeated", ErrDimensionMismatch, v)
		}
		seen[v] = struct{}{}
	}

	return nil
}

// TourValues converts a Hamiltonian tour into the integral edge assignment
// x_e = 1 on its n edges, keyed by edge ID, the format the separator takes.
// For a pair joined by several edges the lowest ID is used.
//
// Complexity: O(E log E + n).
func TourValues(g *core.Graph, tour []string) (map[string]float64, error) {
	if err := ValidateTour(g, tour); err != nil {
		return nil, err
	}
	n := g.VertexCount()
	tour = tour[:n]

	between := make(map[[2]string]string, g.EdgeCount())
	for _, e := range g.Edges() {
		for _, key := range [][2]string{{e.From, e.To}, {e.To, e.From}} {
			if e.Directed && key[0] != e.From {
				continue
			}
			if _, ok := between[key]; !ok {
				between[key] = e.ID
			}
		}
	}

	values := make(map[string]float64, n)
	for i := range tour {
		from, to := tour[i], tour[(i+1)%n]
		eid, ok := between[[2]string{from, to}]
		if !ok {
			return nil, fmt.Errorf("%w: %s→%s", ErrMissingEdge, from, to)
		}
		values[eid] += 1
	}

	return values, nil
}
