package engine

import (
	"fmt"
	"time"

	"adsearch/experiments/metrics"
	"adsearch/game"
	"adsearch/meta"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/constraints"
)

// Engine plays a game to completion, asking the agent of the player to move
// for an action at every turn.
type Engine[S game.State, A constraints.Ordered] struct {
	problem  Game[S, A]
	agents   []Agent[S, A] // Indexed by player
	maxTurns int
}

func NewLocalEngine[S game.State, A constraints.Ordered](problem Game[S, A], agents []Agent[S, A]) *Engine[S, A] {
	if len(agents) == 0 {
		panic("need at least one agent")
	}
	return &Engine[S, A]{
		problem:  problem,
		agents:   agents,
		maxTurns: meta.MaxTurns,
	}
}

// Run plays from the problem's current start state until a terminal state or
// the turn limit, and returns the terminal evaluation (nil if the limit was
// hit first). The problem's start state is advanced before every search and
// restored when Run returns.
func (e *Engine[S, A]) Run() ([]float64, metrics.GameMetric, []metrics.MoveMetric) {
	initial := e.problem.StartState()
	defer e.problem.SetStartState(initial)

	gameMetric := metrics.GameMetric{
		StartingPlayer: initial.PlayerToMove(),
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("player %d is starting", initial.PlayerToMove())

	state := initial
	turn := 1
	for !e.problem.IsTerminal(state) && turn <= e.maxTurns {
		player := state.PlayerToMove()
		if player < 0 || player >= len(e.agents) {
			panic(fmt.Sprintf("no agent for player %d", player))
		}

		e.problem.SetStartState(state)
		action, metric := e.agents[player].FindMove(e.problem)
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         turn,
			Player:       player,
			SearchMetric: metric,
		})

		log.Debug().Msgf("turn %d: player %d plays %v", turn, player, action)

		state = e.problem.Transition(state, action)
		turn++
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)

	if !e.problem.IsTerminal(state) {
		log.Warn().Msgf("stopped after %d turns without reaching a terminal state", e.maxTurns)
		return nil, gameMetric, moveMetrics
	}

	evaluation := e.problem.Evaluate(state)
	gameMetric.Evaluation = evaluation
	log.Info().Msgf("game over after %d moves with evaluation %v", len(moveMetrics), evaluation)
	return evaluation, gameMetric, moveMetrics
}
