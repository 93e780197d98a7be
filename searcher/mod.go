package searcher

import (
	"fmt"

	"adsearch/game"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Result is the outcome of a search: either the action chosen at the start
// state or, if the start state was already terminal, its evaluation vector.
type Result[A constraints.Ordered] struct {
	action     A
	evaluation []float64
	terminal   bool
}

func chose[A constraints.Ordered](action A) Result[A] {
	return Result[A]{action: action}
}

func terminalValue[A constraints.Ordered](evaluation []float64) Result[A] {
	return Result[A]{evaluation: evaluation, terminal: true}
}

// Action returns the chosen action, or false if the start state was terminal.
func (r Result[A]) Action() (A, bool) {
	return r.action, !r.terminal
}

// Evaluation returns the start state's evaluation vector, or false if an
// action was chosen instead.
func (r Result[A]) Evaluation() ([]float64, bool) {
	if !r.terminal {
		return nil, false
	}
	return slices.Clone(r.evaluation), true
}

func (r Result[A]) IsTerminal() bool {
	return r.terminal
}

func (r Result[A]) String() string {
	if r.terminal {
		return fmt.Sprintf("terminal %v", r.evaluation)
	}
	return fmt.Sprintf("action %v", r.action)
}

// orderedActions enumerates the actions of state in ascending order so that
// ties are always broken in favor of the smallest action.
func orderedActions[S game.State, A constraints.Ordered](problem game.Problem[S, A], state S) []A {
	actions := slices.Clone(problem.Actions(state))
	slices.Sort(actions)
	return slices.Compact(actions)
}

// rootActions is orderedActions for the start state, which must have at least
// one action since it is not terminal.
func rootActions[S game.State, A constraints.Ordered](problem game.Problem[S, A], start S) []A {
	actions := orderedActions(problem, start)
	if len(actions) == 0 {
		panic(&game.PreconditionError{Op: "search", Msg: "non-terminal start state has no actions"})
	}
	return actions
}

// bestAction returns the first root action whose child has the strictly
// greatest value. If no child beats -Inf the first action is returned.
func bestAction[S game.State, A constraints.Ordered](problem game.Problem[S, A], start S, value func(child S) float64) Result[A] {
	actions := rootActions(problem, start)
	best := 0
	bestValue := negInf
	for i, action := range actions {
		if v := value(problem.Transition(start, action)); v > bestValue {
			best, bestValue = i, v
		}
	}
	return chose(actions[best])
}
