package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResult(t *testing.T) {
	t.Run("carrying an action", func(t *testing.T) {
		r := chose("left")

		action, ok := r.Action()
		require.True(t, ok)
		require.Equal(t, "left", action)
		_, ok = r.Evaluation()
		require.False(t, ok)
		require.False(t, r.IsTerminal())
		require.Equal(t, "action left", r.String())
	})

	t.Run("carrying a terminal evaluation", func(t *testing.T) {
		r := terminalValue[int]([]float64{1, -1})

		_, ok := r.Action()
		require.False(t, ok)
		eval, ok := r.Evaluation()
		require.True(t, ok)
		require.Equal(t, []float64{1, -1}, eval)
		require.True(t, r.IsTerminal())
		require.Equal(t, "terminal [1 -1]", r.String())
	})

	t.Run("handing out copies of the evaluation", func(t *testing.T) {
		r := terminalValue[int]([]float64{1, -1})

		eval, _ := r.Evaluation()
		eval[0] = 5

		again, _ := r.Evaluation()
		require.Equal(t, []float64{1, -1}, again)
	})
}

func TestOrderedActions(t *testing.T) {
	problem := &treeProblem{
		root:     "root",
		movers:   map[string]int{"root": 0},
		children: map[string][]string{"root": {"c", "a", "b", "a"}},
		leaves:   map[string][]float64{"a": {0, 0}, "b": {0, 0}, "c": {0, 0}},
	}

	require.Equal(t, []string{"a", "b", "c"}, orderedActions[treeState, string](problem, problem.StartState()))
	require.Equal(t, []string{"c", "a", "b", "a"}, problem.children["root"], "The problem's actions should not be modified")
}
