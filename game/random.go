package game

import "golang.org/x/exp/rand"

// RandomDAGConfig shapes the layered games produced by RandomDAG.
type RandomDAGConfig struct {
	Depth     int // Plies from the root to the last layer
	Branching int // Maximum number of children per vertex
	Players   int
	// Probability that a child edge reuses a vertex already created in the
	// next layer instead of creating a new one
	Sharing float64
	// Probability that a non-root vertex ends the game early
	EarlyTerminal float64
}

// RandomDAG generates a layered game rooted at vertex 0 in which edges only go
// from one layer to the next, so the graph is always acyclic. Player l mod
// Players moves in layer l. Two-player games are constant-sum, with terminal
// evaluations [v, -v]; games with more players get independent values.
func RandomDAG(rng *rand.Rand, cfg RandomDAGConfig) *GameDAG {
	if cfg.Depth < 1 || cfg.Branching < 1 || cfg.Players < 2 {
		panic("random dag needs depth >= 1, branching >= 1 and players >= 2")
	}

	layers := [][]int{{0}}
	turns := []int{0}
	edges := make(map[int][]int)
	terminal := make(map[int]bool)
	next := 1

	for l := 0; l < cfg.Depth; l++ {
		var layer []int
		for _, v := range layers[l] {
			if l > 0 && rng.Float64() < cfg.EarlyTerminal {
				terminal[v] = true
				continue
			}
			children := 1 + rng.Intn(cfg.Branching)
			for c := 0; c < children; c++ {
				if len(layer) > 0 && rng.Float64() < cfg.Sharing {
					edges[v] = append(edges[v], layer[rng.Intn(len(layer))])
					continue
				}
				layer = append(layer, next)
				turns = append(turns, (l+1)%cfg.Players)
				edges[v] = append(edges[v], next)
				next++
			}
		}
		layers = append(layers, layer)
	}
	for _, v := range layers[cfg.Depth] {
		terminal[v] = true
	}

	matrix := make([][]bool, next)
	for i := range matrix {
		matrix[i] = make([]bool, next)
	}
	for from, tos := range edges {
		for _, to := range tos {
			matrix[from][to] = true
		}
	}

	var terminals []int
	evaluations := make(map[int][]float64)
	for v := 0; v < next; v++ {
		if !terminal[v] {
			continue
		}
		terminals = append(terminals, v)
		eval := make([]float64, cfg.Players)
		if cfg.Players == 2 {
			eval[0] = float64(rng.Intn(21) - 10)
			eval[1] = -eval[0]
		} else {
			for p := range eval {
				eval[p] = float64(rng.Intn(21) - 10)
			}
		}
		evaluations[v] = eval
	}

	dag, err := NewGameDAG(matrix, NewDAGState(0, 0), terminals, evaluations, turns)
	if err != nil {
		panic(err)
	}
	return dag
}
