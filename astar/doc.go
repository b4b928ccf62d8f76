// Package astar implements the two-phase informed search at the heart
// of keymaze: reach the key first (when the maze defines one), then
// continue to the cheapest reachable goal.
//
// What
//
//   - Phase 1 runs a best-first tree search from the start position to
//     the key, guided by the Manhattan distance to the key.
//   - Phase 2 restarts from the key node (or directly from the start
//     when no key exists), guided by the minimum Manhattan distance
//     over all goal positions.
//   - The frontier and the graveyard (visited set) are cleared between
//     phases; accumulated cost and parent links carry over, so a single
//     backward walk from the terminal node yields the combined route.
//   - Each successor is evaluated at priority = costSoFar + entryCost +
//     heuristic; the frontier is a min-heap over that priority.
//
// Why
//
//   - Sequencing two single-objective searches is the simplest correct
//     treatment of the key-then-goal constraint, and the Manhattan
//     guidance keeps expansions close to the straight-line corridor.
//
// Determinism
//
//	maze.Transitions enumerates moves in the fixed order U, D, L, R, and
//	the frontier breaks priority ties FIFO (by insertion sequence), so
//	Solve returns the same route on every run.
//
// Known redundancy
//
//	A position enters the graveyard only while its predecessor is being
//	expanded, not when it is first pushed. A state already sitting in
//	the frontier can therefore be pushed again under a different parent
//	before its first pop. Stale duplicates expand to no new successors
//	and drain without effect; the timing is kept because it decides
//	which paths get explored, not just how fast.
//
// Complexity (W = width, H = height, cells N = W×H)
//
//   - Time:  O(N log N) per phase — each cell expands at most a few
//     times, every push/pop costs O(log frontier).
//   - Space: O(N) for the graveyard plus the live search-tree nodes.
package astar
