package game

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func requirePrecondition(t *testing.T, f func()) {
	t.Helper()
	defer func() {
		err, ok := recover().(error)
		require.True(t, ok, "Should panic with an error")
		require.ErrorIs(t, err, ErrPrecondition)
		var pe *PreconditionError
		require.True(t, errors.As(err, &pe), "Should panic with a *PreconditionError")
	}()
	f()
}

func requireConfiguration(t *testing.T, err error, msg string) {
	t.Helper()
	require.ErrorIs(t, err, ErrConfiguration)
	var ce *ConfigurationError
	require.True(t, errors.As(err, &ce), "Should return a *ConfigurationError")
	require.Contains(t, ce.Msg, msg)
}

func TestNewGameDAG(t *testing.T) {
	square := [][]bool{
		{false, true, true},
		{false, false, false},
		{false, false, false},
	}
	evals := map[int][]float64{1: {1, -1}, 2: {-1, 1}}

	t.Run("building a consistent dag", func(t *testing.T) {
		dag, err := NewGameDAG(square, NewDAGState(0, 0), []int{1, 2}, evals, []int{0, 1, 1})

		require.NoError(t, err)
		require.Equal(t, 3, dag.Vertices())
		require.Equal(t, 2, dag.Players())
		require.Equal(t, 1, dag.Depth())
		require.Equal(t, NewDAGState(0, 0), dag.StartState())
	})

	t.Run("rejecting an empty matrix", func(t *testing.T) {
		_, err := NewGameDAG(nil, NewDAGState(0, 0), nil, nil, nil)
		requireConfiguration(t, err, "empty")
	})

	t.Run("rejecting a non-square matrix", func(t *testing.T) {
		matrix := [][]bool{{false, true}, {false}}
		_, err := NewGameDAG(matrix, NewDAGState(0, 0), []int{1}, map[int][]float64{1: {0, 0}}, []int{0, 1})
		requireConfiguration(t, err, "row 1")
	})

	t.Run("rejecting a turn assignment shorter than the vertex count", func(t *testing.T) {
		_, err := NewGameDAG(square, NewDAGState(0, 0), []int{1, 2}, evals, []int{0, 1})
		requireConfiguration(t, err, "turn assignment")
	})

	t.Run("rejecting a start vertex out of range", func(t *testing.T) {
		_, err := NewGameDAG(square, NewDAGState(3, 0), []int{1, 2}, evals, []int{0, 1, 1})
		requireConfiguration(t, err, "start vertex")
	})

	t.Run("rejecting a terminal vertex without an evaluation", func(t *testing.T) {
		_, err := NewGameDAG(square, NewDAGState(0, 0), []int{1, 2}, map[int][]float64{1: {1, -1}}, []int{0, 1, 1})
		requireConfiguration(t, err, "terminal vertex 2 has no evaluation")
	})

	t.Run("rejecting an evaluation of a non-terminal vertex", func(t *testing.T) {
		_, err := NewGameDAG(square, NewDAGState(0, 0), []int{1}, evals, []int{0, 1, 1})
		requireConfiguration(t, err, "non-terminal vertex 2")
	})

	t.Run("rejecting evaluations of different lengths", func(t *testing.T) {
		_, err := NewGameDAG(square, NewDAGState(0, 0), []int{1, 2}, map[int][]float64{1: {1, -1}, 2: {0, 0, 0}}, []int{0, 1, 1})
		requireConfiguration(t, err, "evaluates 3 players")
	})

	t.Run("rejecting a non-terminal vertex without successors", func(t *testing.T) {
		_, err := NewGameDAG(square, NewDAGState(0, 0), []int{1}, map[int][]float64{1: {1, -1}}, []int{0, 1, 1})
		requireConfiguration(t, err, "vertex 2 is neither terminal nor has successors")
	})

	t.Run("rejecting a cycle", func(t *testing.T) {
		matrix := [][]bool{
			{false, true, true},
			{true, false, false},
			{false, false, false},
		}
		_, err := NewGameDAG(matrix, NewDAGState(0, 0), []int{2}, map[int][]float64{2: {0, 0}}, []int{0, 1, 0})
		requireConfiguration(t, err, "cycle: 0 -> 1 -> 0")
	})

	t.Run("ignoring edges out of terminal vertices", func(t *testing.T) {
		// 1 -> 0 would close a cycle, but 1 is terminal
		matrix := [][]bool{
			{false, true, true},
			{true, false, true},
			{false, false, false},
		}
		dag, err := NewGameDAG(matrix, NewDAGState(0, 0), []int{1, 2}, evals, []int{0, 1, 1})

		require.NoError(t, err)
		require.Empty(t, dag.Actions(NewDAGState(1, 1)), "Terminal vertex should have no actions")
	})

	t.Run("copying its inputs", func(t *testing.T) {
		matrix := [][]bool{
			{false, true, true},
			{false, false, false},
			{false, false, false},
		}
		turns := []int{0, 1, 1}
		dag, err := NewGameDAG(matrix, NewDAGState(0, 0), []int{1, 2}, evals, turns)
		require.NoError(t, err)

		matrix[0][1] = false
		turns[2] = 0

		require.Equal(t, []int{1, 2}, dag.Actions(dag.StartState()))
		require.Equal(t, NewDAGState(2, 1), dag.Transition(dag.StartState(), 2))
	})
}

func TestGameDAGActions(t *testing.T) {
	dag := ExampleDAG()

	t.Run("listing successors in ascending order", func(t *testing.T) {
		require.Equal(t, []int{1, 2}, dag.Actions(NewDAGState(0, 0)))
		require.Equal(t, []int{5, 6}, dag.Actions(NewDAGState(2, 1)))
	})

	t.Run("listing nothing at a terminal vertex", func(t *testing.T) {
		require.Empty(t, dag.Actions(NewDAGState(4, 0)))
	})
}

func TestGameDAGTransition(t *testing.T) {
	dag := ExampleDAG()

	t.Run("moving to the destination vertex with its assigned mover", func(t *testing.T) {
		require.Equal(t, NewDAGState(1, 1), dag.Transition(NewDAGState(0, 0), 1))
		require.Equal(t, NewDAGState(6, 0), dag.Transition(NewDAGState(2, 1), 6))
	})

	t.Run("panicking from a terminal state", func(t *testing.T) {
		requirePrecondition(t, func() { dag.Transition(NewDAGState(3, 0), 4) })
	})

	t.Run("panicking on an unavailable action", func(t *testing.T) {
		requirePrecondition(t, func() { dag.Transition(NewDAGState(0, 0), 3) })
		requirePrecondition(t, func() { dag.Transition(NewDAGState(0, 0), 7) })
		requirePrecondition(t, func() { dag.Transition(NewDAGState(0, 0), -1) })
	})

	t.Run("panicking on a vertex out of range", func(t *testing.T) {
		requirePrecondition(t, func() { dag.Transition(NewDAGState(9, 0), 1) })
	})
}

func TestGameDAGEvaluate(t *testing.T) {
	dag := ExampleDAG()

	t.Run("looking up a terminal evaluation", func(t *testing.T) {
		require.Equal(t, []float64{-2, 2}, dag.Evaluate(NewDAGState(4, 0)))
	})

	t.Run("returning a copy", func(t *testing.T) {
		eval := dag.Evaluate(NewDAGState(4, 0))
		eval[0] = 100

		require.Equal(t, []float64{-2, 2}, dag.Evaluate(NewDAGState(4, 0)))
	})

	t.Run("panicking on a non-terminal state", func(t *testing.T) {
		requirePrecondition(t, func() { dag.Evaluate(NewDAGState(1, 1)) })
	})
}

func TestGameDAGStartState(t *testing.T) {
	dag := ExampleDAG()
	require.Equal(t, 2, dag.Depth())

	dag.SetStartState(NewDAGState(2, 1))

	require.Equal(t, NewDAGState(2, 1), dag.StartState())
	require.Equal(t, 1, dag.Depth(), "Depth should be measured from the new start state")
}

func TestExampleHeuristic(t *testing.T) {
	h := ExampleHeuristic()

	require.Equal(t, -2.0, h(NewDAGState(1, 1)))
	require.Equal(t, -4.0, h(NewDAGState(2, 1)))
	require.Equal(t, -5.0, h(NewDAGState(0, 0)), "Unlisted vertices should score the fallback")
}
