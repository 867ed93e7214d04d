package tsp

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrConflict is returned when an edge would be both fixed and forbidden.
	ErrConflict = errors.New("tsp: edge is both fixed and forbidden")
	// ErrNotRestricted is returned when undoing a restriction that is not active.
	ErrNotRestricted = errors.New("tsp: edge restriction not active")
	// ErrNothingToBranch is returned when every edge value is integral.
	ErrNothingToBranch = errors.New("tsp: no fractional edge to branch on")
	// ErrDimensionMismatch is returned when a tour does not visit every vertex exactly once.
	ErrDimensionMismatch = errors.New("tsp: tour does not match vertex set")
	// ErrMissingEdge is returned when consecutive tour vertices are not adjacent.
	ErrMissingEdge = errors.New("tsp: tour uses a missing edge")
)

// Restrictions is the branch-and-price state for edge branching: the edges
// the current node forces into every tour and the edges it bans. Counts
// allow the same restriction to be stacked along a path.
type Restrictions struct {
	fixed     map[string]int
	forbidden map[string]int
}

// NewRestrictions returns an empty restriction set (the root node's state).
func NewRestrictions() *Restrictions {
	return &Restrictions{
		fixed:     make(map[string]int),
		forbidden: make(map[string]int),
	}
}

// Fix forces edge eid into every tour.
func (r *Restrictions) Fix(eid string) error {
	if r.forbidden[eid] > 0 {
		return fmt.Errorf("%w: %s", ErrConflict, eid)
	}
	r.fixed[eid]++

	return nil
}

// Unfix undoes one Fix.
func (r *Restrictions) Unfix(eid string) error {
	return release(r.fixed, eid)
}

// Forbid bans edge eid from every tour.
func (r *Restrictions) Forbid(eid string) error {
	if r.fixed[eid] > 0 {
		return fmt.Errorf("%w: %s", ErrConflict, eid)
	}
	r.forbidden[eid]++

	return nil
}

// Unforbid undoes one Forbid.
func (r *Restrictions) Unforbid(eid string) error {
	return release(r.forbidden, eid)
}

// IsFixed reports whether eid is forced into every tour.
func (r *Restrictions) IsFixed(eid string) bool { return r.fixed[eid] > 0 }

// IsForbidden reports whether eid is banned.
func (r *Restrictions) IsForbidden(eid string) bool { return r.forbidden[eid] > 0 }

// Bounds returns the [lo, hi] bounds of x_eid implied by the restrictions,
// ready to be pushed into a master LP.
func (r *Restrictions) Bounds(eid string) (lo, hi float64) {
	switch {
	case r.IsFixed(eid):
		return 1, 1
	case r.IsForbidden(eid):
		return 0, 0
	default:
		return 0, 1
	}
}

// Fixed returns the fixed edge IDs, sorted.
func (r *Restrictions) Fixed() []string { return keys(r.fixed) }

// Forbidden returns the forbidden edge IDs, sorted.
func (r *Restrictions) Forbidden() []string { return keys(r.forbidden) }

// Empty reports whether no restriction is active.
func (r *Restrictions) Empty() bool { return len(r.fixed) == 0 && len(r.forbidden) == 0 }

func release(counts map[string]int, eid string) error {
	n := counts[eid]
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrNotRestricted, eid)
	}
	if n == 1 {
		delete(counts, eid)
	} else {
		counts[eid] = n - 1
	}

	return nil
}

func keys(counts map[string]int) []string {
	out := make([]string, 0, len(counts))
	for k := range counts {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}
