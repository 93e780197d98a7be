package searcher

import (
	"adsearch/experiments/metrics"
	"adsearch/game"

	"golang.org/x/exp/constraints"
)

// AlphaBeta chooses the same action as Minimax while skipping subtrees that
// cannot change the decision. Like Minimax it assumes a two-player
// constant-sum game and returns the evaluation vector for a terminal start.
func AlphaBeta[S game.State, A constraints.Ordered](problem game.Problem[S, A]) Result[A] {
	return alphaBeta(problem, metrics.NewDummyCollector())
}

func alphaBeta[S game.State, A constraints.Ordered](problem game.Problem[S, A], m metrics.Collector) Result[A] {
	start := problem.StartState()
	player := start.PlayerToMove()
	if problem.IsTerminal(start) {
		return terminalValue[A](problem.Evaluate(start))
	}

	var maxValue, minValue func(state S, alpha, beta float64) float64

	maxValue = func(state S, alpha, beta float64) float64 {
		m.AddVisit()
		if problem.IsTerminal(state) {
			return problem.Evaluate(state)[player]
		}
		v := negInf
		for _, action := range orderedActions(problem, state) {
			v = max(v, minValue(problem.Transition(state, action), alpha, beta))
			if v >= beta {
				m.AddPrune()
				return v
			}
			alpha = max(alpha, v)
		}
		return v
	}

	minValue = func(state S, alpha, beta float64) float64 {
		m.AddVisit()
		if problem.IsTerminal(state) {
			return problem.Evaluate(state)[player]
		}
		v := posInf
		for _, action := range orderedActions(problem, state) {
			v = min(v, maxValue(problem.Transition(state, action), alpha, beta))
			if v <= alpha {
				m.AddPrune()
				return v
			}
			beta = min(beta, v)
		}
		return v
	}

	// The root is a single max node: beta stays +Inf and alpha rises as
	// better root actions are found.
	actions := rootActions(problem, start)
	alpha, beta := negInf, posInf
	best := 0
	bestValue := negInf
	for i, action := range actions {
		if v := minValue(problem.Transition(start, action), alpha, beta); v > bestValue {
			best, bestValue = i, v
		}
		alpha = max(alpha, bestValue)
	}
	return chose(actions[best])
}
