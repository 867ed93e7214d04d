package bap

// Decision is a reversible branching decision over a mutable state handle S
// (typically a pointer). Apply and Revert must be exact inverses when called
// in LIFO order.
type Decision[S any] interface {
	Apply(state S) error
	Revert(state S) error
}

// Listener observes decisions as a StateManager performs and reverses them,
// e.g. to keep pricing graphs or master constraints in sync. Listeners are
// invoked synchronously, in registration order, right after the decision
// itself was applied or reverted.
type Listener[S any] interface {
	DecisionPerformed(d Decision[S]) error
	DecisionReversed(d Decision[S]) error
}

// ListenerFuncs adapts a pair of functions to a Listener. Use a pointer to it
// when registering, so RemoveListener can find it again.
type ListenerFuncs[S any] struct {
	Performed func(d Decision[S]) error
	Reversed  func(d Decision[S]) error
}

// DecisionPerformed calls f.Performed if set.
func (f *ListenerFuncs[S]) DecisionPerformed(d Decision[S]) error {
	if f.Performed == nil {
		return nil
	}

	return f.Performed(d)
}

// DecisionReversed calls f.Reversed if set.
func (f *ListenerFuncs[S]) DecisionReversed(d Decision[S]) error {
	if f.Reversed == nil {
		return nil
	}

	return f.Reversed(d)
}
