package tsp

import (
	"fmt"

	"github.com/katalvlaran/lvbap/bap"
	"github.com/katalvlaran/lvbap/core"
)

// FixEdge forces an edge into every tour of the subtree.
type FixEdge struct {
	Edge core.Edge
}

// RemoveEdge bans an edge from every tour of the subtree.
type RemoveEdge struct {
	Edge core.Edge
}

var (
	_ bap.Decision[*Restrictions] = FixEdge{}
	_ bap.Decision[*Restrictions] = RemoveEdge{}
)

func (d FixEdge) Apply(r *Restrictions) error  { return r.Fix(d.Edge.ID) }
func (d FixEdge) Revert(r *Restrictions) error { return r.Unfix(d.Edge.ID) }

func (d FixEdge) String() string {
	return fmt.Sprintf("fix %s(%s-%s)", d.Edge.ID, d.Edge.From, d.Edge.To)
}

func (d RemoveEdge) Apply(r *Restrictions) error  { return r.Forbid(d.Edge.ID) }
func (d RemoveEdge) Revert(r *Restrictions) error { return r.Unforbid(d.Edge.ID) }

func (d RemoveEdge) String() string {
	return fmt.Sprintf("remove %s(%s-%s)", d.Edge.ID, d.Edge.From, d.Edge.To)
}
