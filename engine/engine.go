package engine

import (
	"adsearch/experiments/metrics"
	"adsearch/game"
	"adsearch/searcher"

	"golang.org/x/exp/constraints"
)

// Game is a problem whose start state the engine can advance as moves are played.
type Game[S game.State, A constraints.Ordered] interface {
	game.Problem[S, A]
	game.StartStateSetter[S]
}

// Agent chooses an action at the problem's start state.
type Agent[S game.State, A constraints.Ordered] interface {
	FindMove(problem game.Problem[S, A]) (A, metrics.SearchMetric)
}

// SearchAgent plays the moves chosen by a Searcher.
type SearchAgent[S game.State, A constraints.Ordered] struct {
	Searcher *searcher.Searcher
	Evaluate game.Heuristic[S] // Only needed by alphabeta-cutoff
}

func (a SearchAgent[S, A]) FindMove(problem game.Problem[S, A]) (A, metrics.SearchMetric) {
	result, metric := searcher.FindNextMove(a.Searcher, problem, a.Evaluate)
	action, ok := result.Action()
	if !ok {
		panic("agent asked to move from a terminal state")
	}
	return action, metric
}
