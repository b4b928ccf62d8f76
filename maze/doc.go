// Package maze models a rectangular grid pathfinding problem with a
// start cell, an optional key cell, and one or more goal cells.
//
// What
//
//   - Parse a []string grid into an immutable Problem
//     (symbols: 'X' wall, '.' open, 'M' rough terrain, 'I' start,
//     'K' key, 'G' goal).
//   - Enumerate legal moves from any cell: the four orthogonal
//     directions, filtered by grid bounds and walls.
//   - Charge a per-cell entry cost: rough terrain costs more than open
//     ground (3 vs 1 by default, tunable via Options).
//   - Validate an arbitrary action sequence end to end, reporting
//     whether it solves the maze and what it costs.
//
// Why
//
//   - A Problem is the transition model consumed by package astar; it
//     answers "what moves are legal here and what do they cost" without
//     exposing the grid itself.
//   - Validation is independent of search: any candidate route, however
//     produced, can be checked against the same rules.
//
// Determinism
//
//	Transitions returns moves in the fixed order U, D, L, R, so every
//	consumer observes the same expansion order on every run.
//
// Errors
//
//	Malformed grids fail fast at construction: ErrEmptyMaze,
//	ErrNonRectangular, ErrBadSymbol, ErrNoStart, ErrDuplicateStart,
//	ErrDuplicateKey, ErrNoGoal. Validate never fails — it is total over
//	all inputs and reports {Solved: false, Cost: -1} for broken routes.
//
// Complexity (W = width, H = height)
//
//   - Construction: O(W×H) time and memory (one scan, one copy).
//   - Transitions / Cost / IsGoal: O(1).
//   - Validate: O(len(actions)).
package maze
