package maze_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/keymaze/maze"
)

func TestPosition_Add(t *testing.T) {
	p := maze.Position{Col: 2, Row: 3}
	q := p.Add(maze.Position{Col: -1, Row: 1})
	assert.Equal(t, maze.Position{Col: 1, Row: 4}, q, "Add must translate both axes")
	assert.Equal(t, maze.Position{Col: 2, Row: 3}, p, "Add must not mutate the receiver")
}

func TestPosition_ManhattanTo(t *testing.T) {
	a := maze.Position{Col: 1, Row: 1}
	b := maze.Position{Col: 4, Row: 3}
	assert.Equal(t, 5, a.ManhattanTo(b), "|Δcol|+|Δrow| = 3+2")
	assert.Equal(t, 5, b.ManhattanTo(a), "Manhattan distance is symmetric")
	assert.Equal(t, 0, a.ManhattanTo(a), "distance to self is zero")
}

func TestPosition_String(t *testing.T) {
	assert.Equal(t, "(2, 5)", maze.Position{Col: 2, Row: 5}.String())
}

func TestAction_Offset(t *testing.T) {
	cases := []struct {
		action maze.Action
		offset maze.Position
	}{
		{maze.Up, maze.Position{Col: 0, Row: -1}},
		{maze.Down, maze.Position{Col: 0, Row: 1}},
		{maze.Left, maze.Position{Col: -1, Row: 0}},
		{maze.Right, maze.Position{Col: 1, Row: 0}},
	}
	for _, tc := range cases {
		off, ok := tc.action.Offset()
		assert.True(t, ok, "action %q must be known", tc.action)
		assert.Equal(t, tc.offset, off, "offset of %q", tc.action)
	}

	_, ok := maze.Action("Z").Offset()
	assert.False(t, ok, "unknown action must report ok=false")
}

func TestActions_OrderAndCopy(t *testing.T) {
	got := maze.Actions()
	assert.Equal(t, []maze.Action{maze.Up, maze.Down, maze.Left, maze.Right}, got,
		"enumeration order is U, D, L, R")

	got[0] = maze.Down
	assert.Equal(t, maze.Up, maze.Actions()[0], "Actions must return a fresh copy")
}
