// File: maze/example_test.go
package maze_test

import (
	"fmt"

	"github.com/katalvlaran/keymaze/maze"
)

// ExampleProblem_Transitions demonstrates legal-move enumeration.
// Scenario:
//
//   - 5×5 walled grid, start at (1,1), goal at (2,3).
//   - From the start, Up and Left hit walls; Down and Right remain.
//   - Moves always come back in the fixed order U, D, L, R.
func ExampleProblem_Transitions() {
	p, _ := maze.New([]string{
		"XXXXX",
		"XI..X",
		"X.X.X",
		"X.G.X",
		"XXXXX",
	})

	for _, mv := range p.Transitions(p.Start()) {
		fmt.Printf("%s -> %s\n", mv.Action, mv.To)
	}

	// Output:
	// D -> (1, 2)
	// R -> (2, 1)
}

// ExampleProblem_Validate demonstrates total route validation.
// Scenario:
//
//   - Same grid plus a key at (2,1).
//   - [R D D] grabs the key, then lands on the goal: solved, cost 3.
//   - [D D R] reaches the goal without the key: rejected with cost -1.
func ExampleProblem_Validate() {
	p, _ := maze.New([]string{
		"XXXXX",
		"XIK.X",
		"X...X",
		"X.G.X",
		"XXXXX",
	})

	withKey := p.Validate([]maze.Action{maze.Right, maze.Down, maze.Down})
	fmt.Printf("solved=%v cost=%d\n", withKey.Solved, withKey.Cost)

	without := p.Validate([]maze.Action{maze.Down, maze.Down, maze.Right})
	fmt.Printf("solved=%v cost=%d\n", without.Solved, without.Cost)

	// Output:
	// solved=true cost=3
	// solved=false cost=-1
}
