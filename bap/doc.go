// Package bap manages search-tree state for branch-and-price.
//
// A Tree is an append-only arena of immutable Nodes. Each node stores its
// parent's ID and the branching decisions it adds; the full decision path of
// a node (BranchingDecisions), its ancestor IDs (RootPath) and the common
// prefix of two paths (CommonPrefix, via the nearest common ancestor) are
// reconstructed by parent walks.
//
// A StateManager materialises exactly one node at a time on a caller-owned
// state handle S:
//
//	tree := bap.NewTree[*Model](rootBound)
//	mgr := bap.NewStateManager(tree, model)
//	mgr.AddListener(pricingSync)
//	_ = mgr.Transition(child)   // revert divergent suffix (LIFO), apply new suffix (root-to-leaf)
//	_ = mgr.Restore()           // back to the root state
//
// Transitions pay only for the decisions that differ between the two paths.
// Listeners see every apply and revert synchronously, in registration order.
//
// Any failing Decision or Listener latches the manager: the returned
// *DecisionError matches ErrInconsistentState and every later call returns
// it. Abort the search in that case.
//
// Node ordering for search drivers: BestBound, BreadthFirst and DepthFirst
// comparators, and a Frontier priority queue built on container/heap.
package bap
