package searcher

import (
	"adsearch/experiments/metrics"
	"adsearch/game"

	"golang.org/x/exp/constraints"
)

// AlphaBetaCutoff is AlphaBeta limited to cutoffPly plies below the start
// state. Children of the start state are at ply 1; a non-terminal state
// reached at the cutoff ply is scored by evaluate, from the start player's
// perspective, instead of being expanded. With cutoffPly 1 only the states
// resulting from the start player's move are scored.
//
// cutoffPly must be positive. This is not checked: the ply counter never
// equals a non-positive cutoff, so the search runs to the terminal states.
func AlphaBetaCutoff[S game.State, A constraints.Ordered](problem game.Problem[S, A], cutoffPly int, evaluate game.Heuristic[S]) Result[A] {
	return alphaBetaCutoff(problem, cutoffPly, evaluate, metrics.NewDummyCollector())
}

func alphaBetaCutoff[S game.State, A constraints.Ordered](problem game.Problem[S, A], cutoffPly int, evaluate game.Heuristic[S], m metrics.Collector) Result[A] {
	start := problem.StartState()
	player := start.PlayerToMove()
	if problem.IsTerminal(start) {
		return terminalValue[A](problem.Evaluate(start))
	}

	var maxValue, minValue func(state S, alpha, beta float64, ply int) float64

	maxValue = func(state S, alpha, beta float64, ply int) float64 {
		m.AddVisit()
		if problem.IsTerminal(state) {
			return problem.Evaluate(state)[player]
		}
		if ply == cutoffPly {
			m.AddCutoff()
			return evaluate(state)
		}
		v := negInf
		for _, action := range orderedActions(problem, state) {
			v = max(v, minValue(problem.Transition(state, action), alpha, beta, ply+1))
			if v >= beta {
				m.AddPrune()
				return v
			}
			alpha = max(alpha, v)
		}
		return v
	}

	minValue = func(state S, alpha, beta float64, ply int) float64 {
		m.AddVisit()
		if problem.IsTerminal(state) {
			return problem.Evaluate(state)[player]
		}
		if ply == cutoffPly {
			m.AddCutoff()
			return evaluate(state)
		}
		v := posInf
		for _, action := range orderedActions(problem, state) {
			v = min(v, maxValue(problem.Transition(state, action), alpha, beta, ply+1))
			if v <= alpha {
				m.AddPrune()
				return v
			}
			beta = min(beta, v)
		}
		return v
	}

	actions := rootActions(problem, start)
	alpha, beta := negInf, posInf
	best := 0
	bestValue := negInf
	for i, action := range actions {
		if v := minValue(problem.Transition(start, action), alpha, beta, 1); v > bestValue {
			best, bestValue = i, v
		}
		alpha = max(alpha, bestValue)
	}
	return chose(actions[best])
}
