package tsp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvbap/bap"
	"github.com/katalvlaran/lvbap/core"
	"github.com/katalvlaran/lvbap/separation"
)

// SelectBranchingEdge returns the edge of g whose value is closest to 0.5.
// Values within separation.Epsilon of an integer do not qualify; edges are
// scanned in ID order, so ties go to the lowest ID. It returns
// ErrNothingToBranch when the solution is integral on g.
//
// Complexity: O(E log E) for the sorted edge snapshot.
func SelectBranchingEdge(g *core.Graph, values map[string]float64) (core.Edge, error) {
	var (
		best    core.Edge
		bestGap = math.Inf(1)
	)
	for _, e := range g.Edges() {
		x := values[e.ID]
		if math.Abs(x-math.Round(x)) <= separation.Epsilon {
			continue
		}
		if gap := math.Abs(0.5 - x); gap < bestGap {
			best, bestGap = *e, gap
		}
	}
	if math.IsInf(bestGap, 1) {
		return core.Edge{}, ErrNothingToBranch
	}

	return best, nil
}

// BranchOnEdge picks the branching edge for values and creates two children
// of parent: one that removes the edge and one that fixes it, in that order.
// Both children inherit bound as their initial bound.
func BranchOnEdge(
	tree *bap.Tree[*Restrictions],
	parent *bap.Node[*Restrictions],
	g *core.Graph,
	values map[string]float64,
	bound float64,
) (remove, fix *bap.Node[*Restrictions], err error) {
	e, err := SelectBranchingEdge(g, values)
	if err != nil {
		return nil, nil, err
	}
	if remove, err = tree.Branch(parent, bound, RemoveEdge{Edge: e}); err != nil {
		return nil, nil, fmt.Errorf("tsp: branch on %s: %w", e.ID, err)
	}
	if fix, err = tree.Branch(parent, bound, FixEdge{Edge: e}); err != nil {
		return nil, nil, fmt.Errorf("tsp: branch on %s: %w", e.ID, err)
	}

	return remove, fix, nil
}
