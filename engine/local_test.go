package engine

import (
	"testing"

	"adsearch/game"
	"adsearch/searcher"

	"github.com/stretchr/testify/require"
)

func exampleAgents(algorithm searcher.Algorithm, players int) []Agent[game.DAGState, int] {
	agents := make([]Agent[game.DAGState, int], players)
	for p := range agents {
		agents[p] = SearchAgent[game.DAGState, int]{
			Searcher: searcher.NewSearcher(algorithm, searcher.WithCutoff(1)),
			Evaluate: game.ExampleHeuristic(),
		}
	}
	return agents
}

func TestEngine(t *testing.T) {
	for _, algorithm := range searcher.Algorithms() {
		t.Run("playing the example dag with "+string(algorithm), func(t *testing.T) {
			dag := game.ExampleDAG()
			e := NewLocalEngine(dag, exampleAgents(algorithm, 2))

			evaluation, gameMetric, moveMetrics := e.Run()

			require.Equal(t, []float64{-2, 2}, evaluation)
			require.Equal(t, 2, gameMetric.TotalMoves)
			require.Equal(t, 0, gameMetric.StartingPlayer)
			require.Len(t, moveMetrics, 2)
			require.Equal(t, 0, moveMetrics[0].Player)
			require.Equal(t, 1, moveMetrics[1].Player)
			for _, move := range moveMetrics {
				require.Equal(t, string(algorithm), move.Algorithm)
				require.Positive(t, move.Visits, "Default searchers should count visits")
				require.False(t, move.StartTime.IsZero())
			}
			if algorithm == searcher.AlphaBetaCutoffAlgorithm {
				require.Equal(t, 1, moveMetrics[0].Cutoff)
			}
		})
	}

	t.Run("restoring the start state", func(t *testing.T) {
		dag := game.ExampleDAG()
		e := NewLocalEngine(dag, exampleAgents(searcher.MinimaxAlgorithm, 2))

		e.Run()

		require.Equal(t, game.NewDAGState(0, 0), dag.StartState())
	})

	t.Run("ending immediately at a terminal start state", func(t *testing.T) {
		dag := game.ExampleDAG()
		dag.SetStartState(game.NewDAGState(3, 0))
		e := NewLocalEngine(dag, exampleAgents(searcher.MinimaxAlgorithm, 2))

		evaluation, gameMetric, moveMetrics := e.Run()

		require.Equal(t, []float64{-1, 1}, evaluation)
		require.Zero(t, gameMetric.TotalMoves)
		require.Empty(t, moveMetrics)
	})

	t.Run("stopping at the turn limit", func(t *testing.T) {
		dag := game.ExampleDAG()
		e := NewLocalEngine(dag, exampleAgents(searcher.AlphaBetaAlgorithm, 2))
		e.maxTurns = 1

		evaluation, gameMetric, _ := e.Run()

		require.Nil(t, evaluation)
		require.Equal(t, 1, gameMetric.TotalMoves)
		require.Equal(t, game.NewDAGState(0, 0), dag.StartState())
	})

	t.Run("panicking when a player has no agent", func(t *testing.T) {
		e := NewLocalEngine(game.ExampleDAG(), exampleAgents(searcher.MinimaxAlgorithm, 1))
		require.Panics(t, func() { e.Run() })
	})

	t.Run("panicking without agents", func(t *testing.T) {
		require.Panics(t, func() { NewLocalEngine[game.DAGState, int](game.ExampleDAG(), nil) })
	})
}
