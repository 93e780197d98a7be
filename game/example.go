package game

// ExampleDAG returns a small two-player game used throughout the tests and as
// the CLI default:
//
//	        0 (p0)
//	       /      \
//	   1 (p1)    2 (p1)
//	   /   \      /   \
//	  3     4    5     6
//	[-1,1][-2,2][-3,3][-4,4]
//
// Player 0 should move to vertex 1, where player 1 can at best hold player 0
// to -2 (versus -4 under vertex 2).
func ExampleDAG() *GameDAG {
	matrix := [][]bool{
		{false, true, true, false, false, false, false},
		{false, false, false, true, true, false, false},
		{false, false, false, false, false, true, true},
		{false, false, false, false, false, false, false},
		{false, false, false, false, false, false, false},
		{false, false, false, false, false, false, false},
		{false, false, false, false, false, false, false},
	}
	evaluations := map[int][]float64{
		3: {-1, 1},
		4: {-2, 2},
		5: {-3, 3},
		6: {-4, 4},
	}
	turns := []int{0, 1, 1, 0, 0, 0, 0}

	dag, err := NewGameDAG(matrix, NewDAGState(0, 0), []int{3, 4, 5, 6}, evaluations, turns)
	if err != nil {
		panic(err)
	}
	return dag
}

// ExampleHeuristic scores the vertices of ExampleDAG for player 0.
func ExampleHeuristic() Heuristic[DAGState] {
	return TableHeuristic(map[int]float64{
		1: -2,
		2: -4,
		3: -1,
		4: -2,
		5: -3,
		6: -4,
	}, -5)
}
