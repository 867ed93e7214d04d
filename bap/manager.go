package bap

import (
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// Operations reported in DecisionError.
const (
	OpApply  = "apply"
	OpRevert = "revert"
)

// ErrInconsistentState marks a StateManager whose history no longer matches
// the state, because a decision or listener failed. It is fatal: the search
// must be aborted.
var ErrInconsistentState = errors.New("bap: inconsistent state")

// DecisionError reports the decision or listener failure that left the
// manager inconsistent. errors.Is(err, ErrInconsistentState) holds.
type DecisionError struct {
	Op       string // OpApply or OpRevert
	Node     int    // transition target
	Position int    // index of the decision in the root-to-leaf path
	Err      error
}

func (e *DecisionError) Error() string {
	return fmt.Sprintf("bap: %s decision %d towards node %d: %v", e.Op, e.Position, e.Node, e.Err)
}

func (e *DecisionError) Unwrap() error { return e.Err }

// Is reports ErrInconsistentState as a match.
func (e *DecisionError) Is(target error) bool { return target == ErrInconsistentState }

// StateManager materialises the decisions of one tree node at a time on a
// state handle and moves between nodes with the minimal number of reverts
// and applies. Its history always equals the current node's branching
// decisions.
//
// A StateManager is not safe for concurrent use; parallel searches need one
// manager (and state) per worker.
type StateManager[S any] struct {
	tree      *Tree[S]
	state     S
	current   *Node[S]
	history   []Decision[S]
	listeners []Listener[S]
	failed    error
	log       logrus.FieldLogger
	metrics   *Metrics
}

// NewStateManager returns a manager positioned at the tree root with an
// empty history. state is the handle passed to every Decision.
func NewStateManager[S any](tree *Tree[S], state S, opts ...Option) *StateManager[S] {
	o := options{log: logrus.StandardLogger()}
	for _, opt := range opts {
		opt(&o)
	}

	return &StateManager[S]{
		tree:    tree,
		state:   state,
		current: tree.Root(),
		log:     o.log,
		metrics: o.metrics,
	}
}

// Transition moves the materialised state from the current node to next.
//
// Steps:
//  1. k = CommonPrefix(current, next).
//  2. While len(history) > k: pop, Revert, notify listeners (LIFO).
//  3. For each decision of next at positions [len(history), PathLen):
//     push, Apply, notify listeners (root-to-leaf).
//  4. current = next.
//
// Decisions shared by both paths are never touched. The first failure
// stops the transition and latches the manager: this and every later call
// return a *DecisionError.
//
// Complexity: O(depth(current) + depth(next)) plus one call per divergent decision.
func (m *StateManager[S]) Transition(next *Node[S]) error {
	if m.failed != nil {
		return m.failed
	}
	if next == nil || next.tree != m.tree {
		return ErrForeignNode
	}
	start := time.Now()
	defer m.metrics.transition(start)

	// 1) Divergence point.
	k := m.tree.CommonPrefix(m.current, next)
	from := m.current.id
	reverts := len(m.history) - k

	// 2) Revert down to the common ancestor.
	for len(m.history) > k {
		if err := m.revertTop(next.id); err != nil {
			return err
		}
	}

	// 3) Apply the divergent suffix of next.
	suffix := m.tree.suffix(next, len(m.history))
	for _, d := range suffix {
		if err := m.apply(d, next.id); err != nil {
			return err
		}
	}

	// 4) Commit.
	m.current = next
	m.log.WithFields(logrus.Fields{
		"from":     from,
		"to":       next.id,
		"common":   k,
		"reverted": reverts,
		"applied":  len(suffix),
	}).Debug("bap transition")

	return nil
}

// Restore reverts every applied decision in LIFO order and positions the
// manager at the root.
func (m *StateManager[S]) Restore() error {
	if m.failed != nil {
		return m.failed
	}
	root := m.tree.Root()
	for len(m.history) > 0 {
		if err := m.revertTop(root.id); err != nil {
			return err
		}
	}
	m.current = root
	m.log.Debug("bap state restored to root")

	return nil
}

// AddListener registers l. No deduplication is performed.
func (m *StateManager[S]) AddListener(l Listener[S]) {
	m.listeners = append(m.listeners, l)
}

// RemoveListener unregisters the first registration of l and reports
// whether one was found. Listeners are compared with ==, so register
// pointers or other comparable values.
func (m *StateManager[S]) RemoveListener(l Listener[S]) bool {
	for i, cur := range m.listeners {
		if cur == l {
			m.listeners = append(m.listeners[:i], m.listeners[i+1:]...)

			return true
		}
	}

	return false
}

// History returns a copy of the applied decisions, oldest first.
func (m *StateManager[S]) History() []Decision[S] {
	return append([]Decision[S](nil), m.history...)
}

// Current returns the node whose decisions are materialised.
func (m *StateManager[S]) Current() *Node[S] { return m.current }

// State returns the state handle.
func (m *StateManager[S]) State() S { return m.state }

// Err returns the latched failure, or nil.
func (m *StateManager[S]) Err() error { return m.failed }

func (m *StateManager[S]) apply(d Decision[S], target int) error {
	pos := len(m.history)
	m.history = append(m.history, d)
	if err := d.Apply(m.state); err != nil {
		return m.fail(OpApply, target, pos, err)
	}
	for _, l := range m.listeners {
		if err := l.DecisionPerformed(d); err != nil {
			return m.fail(OpApply, target, pos, err)
		}
	}
	m.metrics.decision(OpApply)
	m.log.WithFields(logrus.Fields{"position": pos, "decision": d}).Trace("decision applied")

	return nil
}

func (m *StateManager[S]) revertTop(target int) error {
	pos := len(m.history) - 1
	d := m.history[pos]
	m.history = m.history[:pos]
	if err := d.Revert(m.state); err != nil {
		return m.fail(OpRevert, target, pos, err)
	}
	for _, l := range m.listeners {
		if err := l.DecisionReversed(d); err != nil {
			return m.fail(OpRevert, target, pos, err)
		}
	}
	m.metrics.decision(OpRevert)
	m.log.WithFields(logrus.Fields{"position": pos, "decision": d}).Trace("decision reverted")

	return nil
}

func (m *StateManager[S]) fail(op string, target, pos int, err error) error {
	m.failed = &DecisionError{Op: op, Node: target, Position: pos, Err: err}
	m.metrics.failure(op)
	m.log.WithFields(logrus.Fields{
		"op":       op,
		"node":     target,
		"position": pos,
	}).WithError(err).Error("branching decision failed, state is inconsistent")

	return m.failed
}
