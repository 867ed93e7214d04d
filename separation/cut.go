package separation

import (
	"fmt"
	"strings"
)

// SubtourCut certifies a subtour elimination constraint x(δ(Set)) ≥ 2.
// Set is a sorted, non-empty, proper subset of the vertices; Value is the
// fractional weight crossing it. Two cuts are the same cut iff their sets
// are equal.
type SubtourCut struct {
	Set   []string
	Value float64
}

// Key returns a string identifying the cut set, usable as a map key.
func (c SubtourCut) Key() string {
	return strings.Join(c.Set, "\x00")
}

// Equal reports whether c and o have the same cut set. Values are ignored.
func (c SubtourCut) Equal(o SubtourCut) bool {
	if len(c.Set) != len(o.Set) {
		return false
	}
	for i := range c.Set {
		if c.Set[i] != o.Set[i] {
			return false
		}
	}

	return true
}

// Violated reports whether the cut value lies below 2 - Epsilon.
func (c SubtourCut) Violated() bool { return violated(c.Value) }

func (c SubtourCut) String() string {
	return fmt.Sprintf("%v: %.6g", c.Set, c.Value)
}

func violated(value float64) bool { return value < 2-Epsilon }
