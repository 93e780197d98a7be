package searcher

import (
	"fmt"

	"adsearch/game"

	"golang.org/x/exp/slices"
)

// recordingProblem wraps a GameDAG and records how a search drives it.
type recordingProblem struct {
	*game.GameDAG
	visited      map[game.DAGState]bool
	transitions  int
	actionsCalls int
	reversed     bool // Enumerate actions in descending order
}

func newRecordingProblem(dag *game.GameDAG) *recordingProblem {
	return &recordingProblem{GameDAG: dag, visited: make(map[game.DAGState]bool)}
}

func (p *recordingProblem) Actions(state game.DAGState) []int {
	p.actionsCalls++
	actions := p.GameDAG.Actions(state)
	if p.reversed {
		slices.Reverse(actions)
	}
	return actions
}

func (p *recordingProblem) Transition(state game.DAGState, action int) game.DAGState {
	p.transitions++
	next := p.GameDAG.Transition(state, action)
	p.visited[next] = true
	return next
}

// extraActionProblem offers an action at its start state that the underlying
// GameDAG rejects.
type extraActionProblem struct {
	*game.GameDAG
	extra int
}

func (p *extraActionProblem) Actions(state game.DAGState) []int {
	actions := p.GameDAG.Actions(state)
	if state == p.StartState() {
		actions = append(actions, p.extra)
	}
	return actions
}

type treeState struct {
	name   string
	player int
}

func (s treeState) PlayerToMove() int { return s.player }

// treeProblem is a game tree spelled out by node name. Actions are child
// names in the order they were declared.
type treeProblem struct {
	root     string
	movers   map[string]int
	children map[string][]string
	leaves   map[string][]float64
}

func (p *treeProblem) StartState() treeState {
	return treeState{name: p.root, player: p.movers[p.root]}
}

func (p *treeProblem) Actions(state treeState) []string {
	return slices.Clone(p.children[state.name])
}

func (p *treeProblem) Transition(state treeState, action string) treeState {
	if p.IsTerminal(state) || !slices.Contains(p.children[state.name], action) {
		panic(&game.PreconditionError{Op: "transition", Msg: fmt.Sprintf("%s from %s", action, state.name)})
	}
	return treeState{name: action, player: p.movers[action]}
}

func (p *treeProblem) IsTerminal(state treeState) bool {
	_, ok := p.leaves[state.name]
	return ok
}

func (p *treeProblem) Evaluate(state treeState) []float64 {
	eval, ok := p.leaves[state.name]
	if !ok {
		panic(&game.PreconditionError{Op: "evaluate", Msg: state.name})
	}
	return eval
}
