package bap

import (
	"errors"
	"fmt"
)

// ErrForeignNode is returned when a node from another Tree is passed in.
var ErrForeignNode = errors.New("bap: node belongs to a different tree")

// Node is an immutable branch-and-price tree node. It stores only its own
// decisions and its parent's ID; paths are reconstructed through the Tree.
type Node[S any] struct {
	tree    *Tree[S]
	id      int
	parent  int // -1 for the root
	local   []Decision[S]
	bound   float64
	depth   int
	pathLen int // decisions from the root up to and including local
}

// ID returns the node identifier. The root is 0; IDs grow in creation order.
func (n *Node[S]) ID() int { return n.id }

// ParentID returns the parent identifier, or -1 for the root.
func (n *Node[S]) ParentID() int { return n.parent }

// Bound returns the relaxation bound recorded at creation.
func (n *Node[S]) Bound() float64 { return n.bound }

// Depth returns the number of edges from the root.
func (n *Node[S]) Depth() int { return n.depth }

// Decisions returns the node's own decisions, in application order.
func (n *Node[S]) Decisions() []Decision[S] { return append([]Decision[S](nil), n.local...) }

// PathLen returns len(BranchingDecisions(n)) without building the slice.
func (n *Node[S]) PathLen() int { return n.pathLen }

func (n *Node[S]) String() string {
	return fmt.Sprintf("node %d (parent %d, depth %d, bound %g)", n.id, n.parent, n.depth, n.bound)
}

// Tree is an append-only arena of nodes. It is not safe for concurrent use.
type Tree[S any] struct {
	nodes []*Node[S]
}

// NewTree creates a tree holding a root node without decisions.
func NewTree[S any](rootBound float64) *Tree[S] {
	t := &Tree[S]{}
	t.nodes = append(t.nodes, &Node[S]{tree: t, id: 0, parent: -1, bound: rootBound})

	return t
}

// Root returns the root node.
func (t *Tree[S]) Root() *Node[S] { return t.nodes[0] }

// Len returns the number of nodes created so far.
func (t *Tree[S]) Len() int { return len(t.nodes) }

// Node returns the node with the given ID.
func (t *Tree[S]) Node(id int) (*Node[S], bool) {
	if id < 0 || id >= len(t.nodes) {
		return nil, false
	}

	return t.nodes[id], true
}

// Branch creates a child of parent carrying the given decisions.
// Complexity: O(len(decisions)).
func (t *Tree[S]) Branch(parent *Node[S], bound float64, decisions ...Decision[S]) (*Node[S], error) {
	if parent == nil || parent.tree != t {
		return nil, ErrForeignNode
	}
	n := &Node[S]{
		tree:    t,
		id:      len(t.nodes),
		parent:  parent.id,
		local:   append([]Decision[S](nil), decisions...),
		bound:   bound,
		depth:   parent.depth + 1,
		pathLen: parent.pathLen + len(decisions),
	}
	t.nodes = append(t.nodes, n)

	return n, nil
}

// RootPath returns the IDs of n's ancestors from the root to its parent.
// Complexity: O(depth).
func (t *Tree[S]) RootPath(n *Node[S]) []int {
	path := make([]int, n.depth)
	for i, cur := n.depth-1, n; i >= 0; i-- {
		path[i] = cur.parent
		cur = t.nodes[cur.parent]
	}

	return path
}

// BranchingDecisions returns every decision from the root to n, in order.
// Complexity: O(depth + PathLen).
func (t *Tree[S]) BranchingDecisions(n *Node[S]) []Decision[S] {
	return t.suffix(n, 0)
}

// CommonPrefix returns the length of the longest common prefix of the
// decision paths of a and b, which is the path length of their nearest
// common ancestor.
// Complexity: O(depth(a) + depth(b)).
func (t *Tree[S]) CommonPrefix(a, b *Node[S]) int {
	return t.ancestor(a, b).pathLen
}

// ancestor walks both nodes up to their nearest common ancestor.
func (t *Tree[S]) ancestor(a, b *Node[S]) *Node[S] {
	for a.depth > b.depth {
		a = t.nodes[a.parent]
	}
	for b.depth > a.depth {
		b = t.nodes[b.parent]
	}
	for a.id != b.id {
		a, b = t.nodes[a.parent], t.nodes[b.parent]
	}

	return a
}

// suffix returns the decisions of n's path at positions [from, PathLen),
// visiting only the nodes that contribute to it.
func (t *Tree[S]) suffix(n *Node[S], from int) []Decision[S] {
	if from >= n.pathLen {
		return nil
	}
	out := make([]Decision[S], n.pathLen-from)
	for cur := n; cur.pathLen > from; {
		start := cur.pathLen - len(cur.local)
		for i, d := range cur.local {
			if pos := start + i; pos >= from {
				out[pos-from] = d
			}
		}
		if cur.parent < 0 {
			break
		}
		cur = t.nodes[cur.parent]
	}

	return out
}
