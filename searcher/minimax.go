package searcher

import (
	"math"

	"adsearch/experiments/metrics"
	"adsearch/game"

	"golang.org/x/exp/constraints"
)

var (
	negInf = math.Inf(-1)
	posInf = math.Inf(1)
)

// Minimax chooses an action for the player to move at the problem's start
// state, assuming a two-player constant-sum game.
//
// Players are assumed to alternate: the start player maximizes its own entry
// of the terminal evaluations and the opponent minimizes it. If the start
// state is terminal, the result carries its evaluation vector instead of an
// action.
func Minimax[S game.State, A constraints.Ordered](problem game.Problem[S, A]) Result[A] {
	return minimax(problem, metrics.NewDummyCollector())
}

func minimax[S game.State, A constraints.Ordered](problem game.Problem[S, A], m metrics.Collector) Result[A] {
	start := problem.StartState()
	player := start.PlayerToMove()
	if problem.IsTerminal(start) {
		return terminalValue[A](problem.Evaluate(start))
	}

	var maxValue, minValue func(state S) float64

	maxValue = func(state S) float64 {
		m.AddVisit()
		if problem.IsTerminal(state) {
			return problem.Evaluate(state)[player]
		}
		v := negInf
		for _, action := range orderedActions(problem, state) {
			v = max(v, minValue(problem.Transition(state, action)))
		}
		return v
	}

	minValue = func(state S) float64 {
		m.AddVisit()
		if problem.IsTerminal(state) {
			return problem.Evaluate(state)[player]
		}
		v := posInf
		for _, action := range orderedActions(problem, state) {
			v = min(v, maxValue(problem.Transition(state, action)))
		}
		return v
	}

	return bestAction(problem, start, minValue)
}
