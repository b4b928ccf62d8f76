package maze

import "fmt"

// Problem is an immutable maze pathfinding problem: the grid, its
// dimensions, the start position, the optional key position, and the
// set of goal positions. A Problem never changes after New returns, so
// it is safe to share across any number of sequential searches.
type Problem struct {
	grid    []string
	width   int
	height  int
	start   Position
	key     Position
	hasKey  bool
	goals   []Position
	goalSet map[Position]struct{}
	opts    Options
}

// New parses a []string grid into a Problem.
//
// Validation order:
//  1. invalid Option            → ErrOptionViolation
//  2. no rows / no columns      → ErrEmptyMaze
//  3. ragged rows               → ErrNonRectangular
//  4. unknown symbol            → ErrBadSymbol (with position context)
//  5. second 'I' / second 'K'   → ErrDuplicateStart / ErrDuplicateKey
//  6. no 'I' / no 'G'           → ErrNoStart / ErrNoGoal
//
// The row slice is copied, so later mutation of the caller's slice does
// not affect the Problem. Complexity: O(W×H) time and memory.
func New(rows []string, opts ...Option) (*Problem, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyMaze
	}
	h, w := len(rows), len(rows[0])

	grid := make([]string, h)
	copy(grid, rows)

	var (
		start, key     Position
		hasStart, hasK bool
		goals          []Position
	)
	for r := 0; r < h; r++ {
		if len(grid[r]) != w {
			return nil, ErrNonRectangular
		}
		for c := 0; c < w; c++ {
			pos := Position{Col: c, Row: r}
			switch Cell(grid[r][c]) {
			case CellStart:
				if hasStart {
					return nil, fmt.Errorf("%w: second 'I' at %s", ErrDuplicateStart, pos)
				}
				start, hasStart = pos, true
			case CellKey:
				if hasK {
					return nil, fmt.Errorf("%w: second 'K' at %s", ErrDuplicateKey, pos)
				}
				key, hasK = pos, true
			case CellGoal:
				goals = append(goals, pos)
			case CellWall, CellOpen, CellRough:
				// passable or impassable ground, nothing to record
			default:
				return nil, fmt.Errorf("%w: %q at %s", ErrBadSymbol, grid[r][c], pos)
			}
		}
	}
	if !hasStart {
		return nil, ErrNoStart
	}
	if len(goals) == 0 {
		return nil, ErrNoGoal
	}

	goalSet := make(map[Position]struct{}, len(goals))
	for _, g := range goals {
		goalSet[g] = struct{}{}
	}

	return &Problem{
		grid:    grid,
		width:   w,
		height:  h,
		start:   start,
		key:     key,
		hasKey:  hasK,
		goals:   goals,
		goalSet: goalSet,
		opts:    o,
	}, nil
}

// Width returns the number of columns.
func (p *Problem) Width() int { return p.width }

// Height returns the number of rows.
func (p *Problem) Height() int { return p.height }

// Start returns the initial position.
func (p *Problem) Start() Position { return p.start }

// Key returns the key position and whether the maze defines one.
func (p *Problem) Key() (Position, bool) { return p.key, p.hasKey }

// Goals returns the goal positions in row-major grid order.
// The returned slice is a copy.
func (p *Problem) Goals() []Position {
	out := make([]Position, len(p.goals))
	copy(out, p.goals)

	return out
}

// IsGoal reports whether state is a goal position.
func (p *Problem) IsGoal(state Position) bool {
	_, ok := p.goalSet[state]

	return ok
}

// InBounds reports whether state lies within the grid.
func (p *Problem) InBounds(state Position) bool {
	return state.Col >= 0 && state.Col < p.width &&
		state.Row >= 0 && state.Row < p.height
}

// cellAt returns the classification of the cell at state.
// Caller guarantees state is in bounds.
func (p *Problem) cellAt(state Position) Cell {
	return Cell(p.grid[state.Row][state.Col])
}

// Cost returns the entry cost of state: RoughCost for 'M' cells,
// OpenCost for everything else. Walls and out-of-bounds positions are
// never queried (Transitions already excludes them).
func (p *Problem) Cost(state Position) int {
	if p.cellAt(state) == CellRough {
		return p.opts.RoughCost
	}

	return p.opts.OpenCost
}

// Transitions returns the legal moves out of state, in the fixed order
// U, D, L, R. A move is legal iff its destination is in bounds and not
// a wall. Complexity: O(1).
func (p *Problem) Transitions(state Position) []Move {
	moves := make([]Move, 0, len(actionOrder))
	for _, a := range actionOrder {
		to := state.Add(offsets[a])
		if !p.InBounds(to) || p.cellAt(to) == CellWall {
			continue
		}
		moves = append(moves, Move{Action: a, To: to})
	}

	return moves
}

// Validate replays actions from the start position and reports whether
// the sequence solves the maze, and its total cost.
//
// Validate is total: it never returns an error.
//   - nil/empty sequence, an unknown action, or any step that leaves the
//     grid or lands on a wall → {Solved: false, Cost: -1}.
//   - a maze with a key whose key cell is never entered → {Solved: false, Cost: -1}.
//   - any other legal walk → Cost is the accumulated entry cost of every
//     visited cell, Solved iff the walk ends on a goal cell.
func (p *Problem) Validate(actions []Action) Result {
	if len(actions) == 0 {
		return Result{Solved: false, Cost: -1}
	}

	cur := p.start
	cost := 0
	gotKey := !p.hasKey
	for _, a := range actions {
		off, ok := a.Offset()
		if !ok {
			return Result{Solved: false, Cost: -1}
		}
		cur = cur.Add(off)
		if !p.InBounds(cur) || p.cellAt(cur) == CellWall {
			return Result{Solved: false, Cost: -1}
		}
		if p.cellAt(cur) == CellKey {
			gotKey = true
		}
		cost += p.Cost(cur)
	}
	if !gotKey {
		return Result{Solved: false, Cost: -1}
	}

	return Result{Solved: p.IsGoal(cur), Cost: cost}
}
