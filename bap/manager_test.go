package bap_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvbap/bap"
)

// journal is the mutable state: the stack of applied marks plus a log of
// every call made on it.
type journal struct {
	applied []string
	calls   []string
}

// mark pushes its name on apply and pops it on revert.
type mark struct {
	name string
	fail string // "apply" or "revert" to inject a failure
}

var errInjected = errors.New("injected")

func (m *mark) Apply(j *journal) error {
	j.calls = append(j.calls, "+"+m.name)
	if m.fail == bap.OpApply {
		return errInjected
	}
	j.applied = append(j.applied, m.name)

	return nil
}

func (m *mark) Revert(j *journal) error {
	j.calls = append(j.calls, "-"+m.name)
	if m.fail == bap.OpRevert {
		return errInjected
	}
	if n := len(j.applied); n == 0 || j.applied[n-1] != m.name {
		return errors.New("revert out of LIFO order: " + m.name)
	}
	j.applied = j.applied[:len(j.applied)-1]

	return nil
}

func d(name string) bap.Decision[*journal] { return &mark{name: name} }

func names(ds []bap.Decision[*journal]) []string {
	out := make([]string, len(ds))
	for i, x := range ds {
		out[i] = x.(*mark).name
	}

	return out
}

// ManagerSuite exercises transitions, restoration and failure latching.
type ManagerSuite struct {
	suite.Suite
	tree  *bap.Tree[*journal]
	state *journal
	mgr   *bap.StateManager[*journal]
}

func TestManagerSuite(t *testing.T) {
	suite.Run(t, new(ManagerSuite))
}

func (s *ManagerSuite) SetupTest() {
	s.tree = bap.NewTree[*journal](0)
	s.state = &journal{}
	s.mgr = bap.NewStateManager(s.tree, s.state)
}

func (s *ManagerSuite) branch(parent *bap.Node[*journal], ds ...string) *bap.Node[*journal] {
	decisions := make([]bap.Decision[*journal], len(ds))
	for i, n := range ds {
		decisions[i] = d(n)
	}
	n, err := s.tree.Branch(parent, 0, decisions...)
	require.NoError(s.T(), err)

	return n
}

// TestSiblingTransition verifies A→B reverts d1 then applies d2.
func (s *ManagerSuite) TestSiblingTransition() {
	root := s.tree.Root()
	a := s.branch(root, "d1")
	b := s.branch(root, "d2")

	require.NoError(s.T(), s.mgr.Transition(a))
	require.Equal(s.T(), []string{"+d1"}, s.state.calls)

	s.state.calls = nil
	require.NoError(s.T(), s.mgr.Transition(b))
	require.Equal(s.T(), []string{"-d1", "+d2"}, s.state.calls)
	require.Equal(s.T(), []string{"d2"}, names(s.mgr.History()))
	require.Equal(s.T(), b, s.mgr.Current())
	require.Equal(s.T(), []string{"d2"}, s.state.applied)
}

// TestDeepTransitionTouchesOnlyDivergence verifies shared prefixes stay applied.
func (s *ManagerSuite) TestDeepTransitionTouchesOnlyDivergence() {
	root := s.tree.Root()
	x := s.branch(root, "x")
	y := s.branch(x, "y1", "y2")
	left := s.branch(y, "l")
	leftDeep := s.branch(left, "ll")
	right := s.branch(y, "r")

	require.NoError(s.T(), s.mgr.Transition(leftDeep))
	require.Equal(s.T(), []string{"x", "y1", "y2", "l", "ll"}, s.state.applied)

	s.state.calls = nil
	require.NoError(s.T(), s.mgr.Transition(right))
	require.Equal(s.T(), []string{"-ll", "-l", "+r"}, s.state.calls)
	require.Equal(s.T(), names(s.tree.BranchingDecisions(right)), names(s.mgr.History()))

	// Transition to an ancestor only reverts.
	s.state.calls = nil
	require.NoError(s.T(), s.mgr.Transition(x))
	require.Equal(s.T(), []string{"-r", "-y2", "-y1"}, s.state.calls)

	// Transition to the same node is a no-op.
	s.state.calls = nil
	require.NoError(s.T(), s.mgr.Transition(x))
	require.Empty(s.T(), s.state.calls)
}

// TestRestore verifies the manager returns to the root state.
func (s *ManagerSuite) TestRestore() {
	n := s.branch(s.branch(s.tree.Root(), "a"), "b", "c")
	require.NoError(s.T(), s.mgr.Transition(n))

	s.state.calls = nil
	require.NoError(s.T(), s.mgr.Restore())
	require.Equal(s.T(), []string{"-c", "-b", "-a"}, s.state.calls)
	require.Empty(s.T(), s.mgr.History())
	require.Empty(s.T(), s.state.applied)
	require.Equal(s.T(), s.tree.Root(), s.mgr.Current())
}

// TestListenersInRegistrationOrder verifies notification order and removal.
func (s *ManagerSuite) TestListenersInRegistrationOrder() {
	var seen []string
	first := &bap.ListenerFuncs[*journal]{
		Performed: func(x bap.Decision[*journal]) error {
			seen = append(seen, "first+"+x.(*mark).name)
			return nil
		},
		Reversed: func(x bap.Decision[*journal]) error {
			seen = append(seen, "first-"+x.(*mark).name)
			return nil
		},
	}
	second := &bap.ListenerFuncs[*journal]{
		Performed: func(x bap.Decision[*journal]) error {
			seen = append(seen, "second+"+x.(*mark).name)
			return nil
		},
	}
	s.mgr.AddListener(first)
	s.mgr.AddListener(second)

	a := s.branch(s.tree.Root(), "a")
	require.NoError(s.T(), s.mgr.Transition(a))
	require.NoError(s.T(), s.mgr.Restore())
	require.Equal(s.T(), []string{"first+a", "second+a", "first-a"}, seen)

	require.True(s.T(), s.mgr.RemoveListener(first))
	require.False(s.T(), s.mgr.RemoveListener(first))
	seen = nil
	require.NoError(s.T(), s.mgr.Transition(a))
	require.Equal(s.T(), []string{"second+a"}, seen)
}

// TestFailureLatches verifies that a failed decision poisons the manager.
func (s *ManagerSuite) TestFailureLatches() {
	bad, err := s.tree.Branch(s.tree.Root(), 0, d("ok"), &mark{name: "boom", fail: bap.OpApply})
	require.NoError(s.T(), err)

	err = s.mgr.Transition(bad)
	require.ErrorIs(s.T(), err, bap.ErrInconsistentState)
	require.ErrorIs(s.T(), err, errInjected)
	var de *bap.DecisionError
	require.ErrorAs(s.T(), err, &de)
	require.Equal(s.T(), bap.OpApply, de.Op)
	require.Equal(s.T(), 1, de.Position)
	require.Equal(s.T(), bad.ID(), de.Node)

	require.ErrorIs(s.T(), s.mgr.Transition(s.tree.Root()), bap.ErrInconsistentState)
	require.ErrorIs(s.T(), s.mgr.Restore(), bap.ErrInconsistentState)
	require.Equal(s.T(), err, s.mgr.Err())
}

// TestListenerFailureLatches verifies listener errors are fatal too.
func (s *ManagerSuite) TestListenerFailureLatches() {
	s.mgr.AddListener(&bap.ListenerFuncs[*journal]{
		Reversed: func(bap.Decision[*journal]) error { return errInjected },
	})
	a := s.branch(s.tree.Root(), "a")
	require.NoError(s.T(), s.mgr.Transition(a))

	err := s.mgr.Restore()
	var de *bap.DecisionError
	require.ErrorAs(s.T(), err, &de)
	require.Equal(s.T(), bap.OpRevert, de.Op)
	require.ErrorIs(s.T(), err, bap.ErrInconsistentState)
}

// TestForeignNode verifies nodes of another tree are rejected.
func (s *ManagerSuite) TestForeignNode() {
	other := bap.NewTree[*journal](0)
	require.ErrorIs(s.T(), s.mgr.Transition(other.Root()), bap.ErrForeignNode)
	_, err := s.tree.Branch(other.Root(), 0)
	require.ErrorIs(s.T(), err, bap.ErrForeignNode)
	require.NoError(s.T(), s.mgr.Err(), "foreign nodes do not latch")
}

// TestRandomWalkEditDistance checks the history invariant and call counts
// over random transitions in a random tree.
func TestRandomWalkEditDistance(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	tree := bap.NewTree[*journal](0)
	state := &journal{}
	mgr := bap.NewStateManager(tree, state)

	for i := 0; i < 60; i++ {
		parent, _ := tree.Node(rng.Intn(tree.Len()))
		ds := make([]bap.Decision[*journal], rng.Intn(3))
		for j := range ds {
			ds[j] = d(string(rune('a'+i%26)) + string(rune('0'+j)))
		}
		_, err := tree.Branch(parent, 0, ds...)
		require.NoError(t, err)
	}

	for step := 0; step < 200; step++ {
		next, _ := tree.Node(rng.Intn(tree.Len()))
		prev := mgr.Current()
		k := tree.CommonPrefix(prev, next)
		want := (prev.PathLen() - k) + (next.PathLen() - k)

		state.calls = nil
		require.NoError(t, mgr.Transition(next))
		require.Len(t, state.calls, want)
		require.Equal(t, names(tree.BranchingDecisions(next)), names(mgr.History()))
		require.Equal(t, names(tree.BranchingDecisions(next)), append([]string{}, state.applied...))
	}

	require.NoError(t, mgr.Restore())
	require.Empty(t, state.applied)
}
