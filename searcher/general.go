package searcher

import (
	"adsearch/experiments/metrics"
	"adsearch/game"

	"golang.org/x/exp/constraints"
)

// GeneralMinimax generalizes Minimax to any number of players and any payoffs,
// with turns taken in any order.
//
// Only the start player is modeled as self-interested. Whenever another player
// moves, that player is assumed to minimize the start player's value rather
// than maximize its own; the start player is thus playing against a coalition
// of everyone else. For two-player constant-sum games this is exactly Minimax.
// With more players it is a pessimistic approximation, not an equilibrium.
func GeneralMinimax[S game.State, A constraints.Ordered](problem game.Problem[S, A]) Result[A] {
	return generalMinimax(problem, metrics.NewDummyCollector())
}

func generalMinimax[S game.State, A constraints.Ordered](problem game.Problem[S, A], m metrics.Collector) Result[A] {
	start := problem.StartState()
	player := start.PlayerToMove()
	if problem.IsTerminal(start) {
		return terminalValue[A](problem.Evaluate(start))
	}

	var value func(state S) float64
	value = func(state S) float64 {
		m.AddVisit()
		if problem.IsTerminal(state) {
			return problem.Evaluate(state)[player]
		}
		maximizing := state.PlayerToMove() == player
		v := posInf
		if maximizing {
			v = negInf
		}
		for _, action := range orderedActions(problem, state) {
			child := value(problem.Transition(state, action))
			if maximizing {
				v = max(v, child)
			} else {
				v = min(v, child)
			}
		}
		return v
	}

	return bestAction(problem, start, value)
}
