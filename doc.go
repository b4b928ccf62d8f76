// Package keymaze is an embeddable two-objective grid pathfinding core:
// collect a key, then reach the nearest goal, at minimum traversal cost.
//
// 🚀 What is keymaze?
//
//	A small, focused library that brings together:
//		• maze:  the problem model — grid parsing, legal moves, terrain
//		         costs, and total validation of candidate routes
//		• astar: the engine — a two-phase, Manhattan-guided best-first
//		         search with backpointer path reconstruction
//
// ✨ Why choose keymaze?
//
//   - Embeddable – pure in-process API, no CLI, no I/O, no persistence
//   - Deterministic – fixed expansion order and FIFO tie-breaking make
//     every run reproducible
//   - Rock-solid guarantees – immutable problems, sentinel errors,
//     total validation over arbitrary action sequences
//   - Pure Go – no cgo, a single test-only dependency
//
// Quick ASCII example:
//
//	XXXXX
//	XIK.X        I = start, K = key, G = goal,
//	X...X        X = wall,  . = open, M = rough terrain
//	X.G.X
//	XXXXX
//
//	p, _ := maze.New([]string{"XXXXX", "XIK.X", "X...X", "X.G.X", "XXXXX"})
//	route, err := astar.Solve(p)       // → [R D D], visits K before G
//	res := p.Validate(route)           // → {Solved: true, Cost: 3}
//
// The search reaches the key first (when the maze defines one), then
// continues to the cheapest reachable goal; if either leg is impossible
// the whole search reports astar.ErrNoSolution.
package keymaze
