package game

import "golang.org/x/exp/constraints"

// State is a position in a game. States are immutable: a Problem derives new
// states through Transition and never modifies an existing one.
type State interface {
	PlayerToMove() int
}

// Problem is a game in a form convenient for adversarial search. Any game that
// implements it can be searched by every algorithm in package searcher.
//
// Actions are ordered so that searches can enumerate them in a canonical order
// and break ties between equally valued actions reproducibly.
type Problem[S State, A constraints.Ordered] interface {
	// StartState produces the state from which to search.
	StartState() S
	// Actions returns the set of actions available to the player to move.
	// It is empty if and only if state is terminal.
	Actions(state S) []A
	// Transition returns the state that results from taking action in state.
	// It panics with a *PreconditionError if state is terminal or action is
	// not available in state.
	Transition(state S, action A) S
	IsTerminal(state S) bool
	// Evaluate returns one value per player for a terminal state, where the
	// i'th entry is how good the state is for player i. It panics with a
	// *PreconditionError if state is not terminal.
	Evaluate(state S) []float64
}

// StartStateSetter is implemented by problems whose start state can be
// replaced between searches. Only harness code (e.g. a game engine running a
// match) uses it; searches never do.
type StartStateSetter[S State] interface {
	SetStartState(state S)
}

// Heuristic estimates how favorable a non-terminal state is for the player who
// started the search. It must be a pure function of the state.
type Heuristic[S State] func(S) float64
