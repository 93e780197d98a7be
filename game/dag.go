package game

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"
)

// DAGState is a vertex of a GameDAG together with the player who moves there.
type DAGState struct {
	index  int
	player int
}

func NewDAGState(index, player int) DAGState {
	return DAGState{index: index, player: player}
}

func (s DAGState) Index() int { return s.index }

func (s DAGState) PlayerToMove() int { return s.player }

func (s DAGState) String() string {
	return fmt.Sprintf("v%d/p%d", s.index, s.player)
}

// GameDAG is a game played on a finite directed acyclic graph. Vertices are
// numbered 0..n-1, an action is the index of the destination vertex, and the
// game ends on any declared terminal vertex.
type GameDAG struct {
	matrix      [][]bool
	start       DAGState
	terminal    []bool
	evaluations map[int][]float64
	turns       []int
	players     int
}

// NewGameDAG builds a GameDAG.
//
// matrix[i][j] states whether the player at vertex i can move to vertex j.
// terminals lists the terminal vertices, evaluations holds one value per
// player for each of them, and turns[i] is the player who moves at vertex i.
// The inputs are copied. A *ConfigurationError is returned if they are
// inconsistent or describe a cyclic graph.
func NewGameDAG(matrix [][]bool, start DAGState, terminals []int, evaluations map[int][]float64, turns []int) (*GameDAG, error) {
	n := len(matrix)
	if n == 0 {
		return nil, configurationf("adjacency matrix is empty")
	}

	g := &GameDAG{
		matrix:      make([][]bool, n),
		start:       start,
		terminal:    make([]bool, n),
		evaluations: make(map[int][]float64, len(evaluations)),
		turns:       slices.Clone(turns),
	}

	for i, row := range matrix {
		if len(row) != n {
			return nil, configurationf("adjacency matrix row %d has %d entries, want %d", i, len(row), n)
		}
		g.matrix[i] = slices.Clone(row)
	}
	if len(turns) < n {
		return nil, configurationf("turn assignment covers %d vertices, want %d", len(turns), n)
	}
	if start.index < 0 || start.index >= n {
		return nil, configurationf("start vertex %d out of range [0, %d)", start.index, n)
	}

	for _, t := range terminals {
		if t < 0 || t >= n {
			return nil, configurationf("terminal vertex %d out of range [0, %d)", t, n)
		}
		g.terminal[t] = true
	}
	for v := range evaluations {
		if v < 0 || v >= n || !g.terminal[v] {
			return nil, configurationf("evaluation given for non-terminal vertex %d", v)
		}
	}
	for v := 0; v < n; v++ {
		if !g.terminal[v] {
			continue
		}
		eval, ok := evaluations[v]
		if !ok {
			return nil, configurationf("terminal vertex %d has no evaluation", v)
		}
		if len(eval) == 0 {
			return nil, configurationf("terminal vertex %d has an empty evaluation", v)
		}
		if g.players == 0 {
			g.players = len(eval)
		} else if len(eval) != g.players {
			return nil, configurationf("terminal vertex %d evaluates %d players, want %d", v, len(eval), g.players)
		}
		g.evaluations[v] = slices.Clone(eval)
	}
	if g.players == 0 {
		return nil, configurationf("no terminal vertices")
	}

	for v := 0; v < n; v++ {
		if !g.terminal[v] && len(g.successors(v)) == 0 {
			return nil, configurationf("vertex %d is neither terminal nor has successors", v)
		}
	}
	if cycle := g.findCycle(); cycle != nil {
		return nil, cycleError(cycle)
	}

	return g, nil
}

func (g *GameDAG) StartState() DAGState { return g.start }

// SetStartState replaces the start state. It exists for harness code that
// plays a game out move by move and must not be called during a search.
func (g *GameDAG) SetStartState(state DAGState) { g.start = state }

// Actions returns the destination vertices reachable from state in ascending
// order, or none if state is terminal.
func (g *GameDAG) Actions(state DAGState) []int {
	if g.IsTerminal(state) {
		return nil
	}
	return g.successors(state.index)
}

func (g *GameDAG) Transition(state DAGState, action int) DAGState {
	if g.IsTerminal(state) {
		panic(preconditionf("transition", "state %s is terminal", state))
	}
	if action < 0 || action >= len(g.matrix) || !g.matrix[state.index][action] {
		panic(preconditionf("transition", "action %d is not available in state %s", action, state))
	}
	return DAGState{index: action, player: g.turns[action]}
}

// IsTerminal reports whether state is a declared terminal vertex, regardless
// of the vertex's row in the adjacency matrix.
func (g *GameDAG) IsTerminal(state DAGState) bool {
	g.checkVertex(state)
	return g.terminal[state.index]
}

func (g *GameDAG) Evaluate(state DAGState) []float64 {
	if !g.IsTerminal(state) {
		panic(preconditionf("evaluate", "state %s is not terminal", state))
	}
	return slices.Clone(g.evaluations[state.index])
}

// Vertices returns the number of vertices.
func (g *GameDAG) Vertices() int { return len(g.matrix) }

// Players returns the length of the evaluation vectors.
func (g *GameDAG) Players() int { return g.players }

// Depth returns the number of plies on the longest path from the start state
// to a terminal vertex.
func (g *GameDAG) Depth() int {
	depths := make(map[int]int)
	var longest func(v int) int
	longest = func(v int) int {
		if g.terminal[v] {
			return 0
		}
		if d, ok := depths[v]; ok {
			return d
		}
		d := 0
		for _, w := range g.successors(v) {
			d = max(d, longest(w)+1)
		}
		depths[v] = d
		return d
	}
	return longest(g.start.index)
}

func (g *GameDAG) successors(v int) []int {
	var out []int
	for w, edge := range g.matrix[v] {
		if edge {
			out = append(out, w)
		}
	}
	return out
}

func (g *GameDAG) checkVertex(state DAGState) {
	if state.index < 0 || state.index >= len(g.matrix) {
		panic(preconditionf("lookup", "vertex %d out of range [0, %d)", state.index, len(g.matrix)))
	}
}

// findCycle looks for a cycle among the edges that can actually be taken
// (terminal rows are ignored) and returns one as a vertex path, or nil.
func (g *GameDAG) findCycle() []int {
	const (
		white = iota
		gray
		black
	)
	color := make([]int, len(g.matrix))
	var stack []int

	var visit func(v int) []int
	visit = func(v int) []int {
		color[v] = gray
		stack = append(stack, v)
		if !g.terminal[v] {
			for _, w := range g.successors(v) {
				switch color[w] {
				case gray:
					start := slices.Index(stack, w)
					return append(slices.Clone(stack[start:]), w)
				case white:
					if cycle := visit(w); cycle != nil {
						return cycle
					}
				}
			}
		}
		stack = stack[:len(stack)-1]
		color[v] = black
		return nil
	}

	for v := range g.matrix {
		if color[v] == white {
			if cycle := visit(v); cycle != nil {
				return cycle
			}
		}
	}
	return nil
}

func cycleError(path []int) error {
	parts := make([]string, len(path))
	for i, v := range path {
		parts[i] = strconv.Itoa(v)
	}
	return configurationf("cycle: %s", strings.Join(parts, " -> "))
}
