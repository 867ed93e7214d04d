package bap

import (
	"cmp"
	"container/heap"
)

// Comparator orders nodes for exploration: negative if a goes first.
type Comparator[S any] func(a, b *Node[S]) int

// BestBound explores the node with the lowest bound first (minimisation),
// ties broken by lower ID.
func BestBound[S any](a, b *Node[S]) int {
	if c := cmp.Compare(a.bound, b.bound); c != 0 {
		return c
	}

	return cmp.Compare(a.id, b.id)
}

// BreadthFirst explores nodes in creation order, which is level order when
// children are created as their parents are processed.
func BreadthFirst[S any](a, b *Node[S]) int {
	return cmp.Compare(a.id, b.id)
}

// DepthFirst explores the deepest node first, the most recent among equals.
func DepthFirst[S any](a, b *Node[S]) int {
	if c := cmp.Compare(b.depth, a.depth); c != 0 {
		return c
	}

	return cmp.Compare(b.id, a.id)
}

// Frontier is a priority queue of open nodes under a Comparator.
type Frontier[S any] struct {
	h nodeHeap[S]
}

// NewFrontier returns an empty frontier ordered by order.
func NewFrontier[S any](order Comparator[S]) *Frontier[S] {
	return &Frontier[S]{h: nodeHeap[S]{order: order}}
}

// Push adds n. Complexity: O(log N).
func (f *Frontier[S]) Push(n *Node[S]) { heap.Push(&f.h, n) }

// Pop removes and returns the first node, or nil when empty. Complexity: O(log N).
func (f *Frontier[S]) Pop() *Node[S] {
	if len(f.h.nodes) == 0 {
		return nil
	}

	return heap.Pop(&f.h).(*Node[S])
}

// Peek returns the first node without removing it, or nil.
func (f *Frontier[S]) Peek() *Node[S] {
	if len(f.h.nodes) == 0 {
		return nil
	}

	return f.h.nodes[0]
}

// Len returns the number of open nodes.
func (f *Frontier[S]) Len() int { return len(f.h.nodes) }

// PruneAbove drops every node whose bound is ≥ incumbent and returns how
// many were removed. Complexity: O(N).
func (f *Frontier[S]) PruneAbove(incumbent float64) int {
	kept := f.h.nodes[:0]
	for _, n := range f.h.nodes {
		if n.bound < incumbent {
			kept = append(kept, n)
		}
	}
	removed := len(f.h.nodes) - len(kept)
	for i := len(kept); i < len(f.h.nodes); i++ {
		f.h.nodes[i] = nil
	}
	f.h.nodes = kept
	heap.Init(&f.h)

	return removed
}

type nodeHeap[S any] struct {
	nodes []*Node[S]
	order Comparator[S]
}

func (h nodeHeap[S]) Len() int           { return len(h.nodes) }
func (h nodeHeap[S]) Less(i, j int) bool { return h.order(h.nodes[i], h.nodes[j]) < 0 }
func (h nodeHeap[S]) Swap(i, j int)      { h.nodes[i], h.nodes[j] = h.nodes[j], h.nodes[i] }
func (h *nodeHeap[S]) Push(x any)        { h.nodes = append(h.nodes, x.(*Node[S])) }
func (h *nodeHeap[S]) Pop() any {
	old := h.nodes
	x := old[len(old)-1]
	old[len(old)-1] = nil
	h.nodes = old[:len(old)-1]

	return x
}
