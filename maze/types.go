// Package maze defines core types, options, and sentinel errors
// for the maze subpackage of github.com/katalvlaran/keymaze.
package maze

import (
	"errors"
	"fmt"
)

// Sentinel errors for Problem construction.
var (
	// ErrEmptyMaze indicates the input grid has no rows or no columns.
	ErrEmptyMaze = errors.New("maze: grid must have at least one row and one column")

	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("maze: all rows must have the same length")

	// ErrBadSymbol indicates a cell symbol outside the recognized set.
	ErrBadSymbol = errors.New("maze: unrecognized cell symbol")

	// ErrNoStart indicates the grid defines no 'I' cell.
	ErrNoStart = errors.New("maze: grid defines no start cell")

	// ErrDuplicateStart indicates more than one 'I' cell.
	ErrDuplicateStart = errors.New("maze: grid defines more than one start cell")

	// ErrDuplicateKey indicates more than one 'K' cell.
	ErrDuplicateKey = errors.New("maze: grid defines more than one key cell")

	// ErrNoGoal indicates the grid defines no 'G' cell.
	ErrNoGoal = errors.New("maze: grid defines no goal cell")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("maze: invalid option supplied")
)

// Cell classifies a single grid symbol.
type Cell byte

// Recognized cell symbols. Any other byte fails construction with ErrBadSymbol.
const (
	// CellWall is impassable and never entered.
	CellWall Cell = 'X'
	// CellOpen is ordinary ground, entered at OpenCost.
	CellOpen Cell = '.'
	// CellRough is difficult terrain, entered at RoughCost.
	CellRough Cell = 'M'
	// CellStart marks the unique initial position.
	CellStart Cell = 'I'
	// CellKey marks the optional key position.
	CellKey Cell = 'K'
	// CellGoal marks a goal position.
	CellGoal Cell = 'G'
)

// Position is a grid coordinate. Row 0, Col 0 is the upper-left corner;
// Row grows downward, Col grows rightward. Position is a comparable
// value type, so it can be used directly as a map key.
type Position struct {
	Col, Row int
}

// Add returns p translated by off. The receiver is unchanged.
func (p Position) Add(off Position) Position {
	return Position{Col: p.Col + off.Col, Row: p.Row + off.Row}
}

// ManhattanTo returns |Δcol| + |Δrow| between p and q.
func (p Position) ManhattanTo(q Position) int {
	return abs(p.Col-q.Col) + abs(p.Row-q.Row)
}

// String renders p as "(col, row)".
func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.Col, p.Row)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

// Action is one of the four directional moves.
type Action string

// The four directional actions and their fixed offsets.
const (
	Up    Action = "U" // (0, -1)
	Down  Action = "D" // (0, +1)
	Left  Action = "L" // (-1, 0)
	Right Action = "R" // (+1, 0)
)

// offsets is the process-wide constant action table; never mutated.
var offsets = map[Action]Position{
	Up:    {Col: 0, Row: -1},
	Down:  {Col: 0, Row: 1},
	Left:  {Col: -1, Row: 0},
	Right: {Col: 1, Row: 0},
}

// actionOrder fixes the enumeration order of Transitions. Keeping it a
// slice (not a map walk) is what makes expansion order reproducible.
var actionOrder = [...]Action{Up, Down, Left, Right}

// Actions returns the four directional actions in enumeration order
// (U, D, L, R). The returned slice is a copy.
func Actions() []Action {
	out := make([]Action, len(actionOrder))
	copy(out, actionOrder[:])

	return out
}

// Offset returns the translation for a, with ok=false for unknown actions.
func (a Action) Offset() (Position, bool) {
	off, ok := offsets[a]

	return off, ok
}

// Move pairs an Action with the Position it leads to.
type Move struct {
	Action Action
	To     Position
}

// Result is the outcome of Problem.Validate: whether the sequence
// solves the maze, and its total cost (-1 for broken sequences).
type Result struct {
	Solved bool
	Cost   int
}

// Options contains tunable terrain parameters for a Problem.
//
// OpenCost  – entry cost of '.', 'I', 'K', and 'G' cells. Must be > 0.
// RoughCost – entry cost of 'M' cells. Must be > 0.
type Options struct {
	OpenCost  int
	RoughCost int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with the default terrain costs:
// OpenCost=1, RoughCost=3.
func DefaultOptions() Options {
	return Options{OpenCost: 1, RoughCost: 3}
}

// Option configures Problem construction via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when New is invoked.
type Option func(*Options)

// WithOpenCost sets the entry cost of ordinary cells. Must be positive.
func WithOpenCost(c int) Option {
	return func(o *Options) {
		if c <= 0 {
			o.err = fmt.Errorf("%w: OpenCost must be positive (%d)", ErrOptionViolation, c)

			return
		}
		o.OpenCost = c
	}
}

// WithRoughCost sets the entry cost of rough-terrain cells. Must be positive.
func WithRoughCost(c int) Option {
	return func(o *Options) {
		if c <= 0 {
			o.err = fmt.Errorf("%w: RoughCost must be positive (%d)", ErrOptionViolation, c)

			return
		}
		o.RoughCost = c
	}
}
