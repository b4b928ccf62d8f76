// Package astar implements the two-phase Manhattan-guided best-first
// search over a maze.Problem, with backpointer path reconstruction.
package astar

import (
	"container/heap"

	"github.com/katalvlaran/keymaze/maze"
)

// heuristic estimates the remaining cost from a position to the
// current phase's objective.
type heuristic func(maze.Position) int

// Solve searches p for the cheapest route that collects the key (when
// the maze defines one) and then reaches a goal cell.
//
// Returns:
//
//   - the action sequence (key-phase actions followed by goal-phase
//     actions) on success;
//   - ErrNoSolution when either phase exhausts its frontier — the key
//     is walled off, or no goal is reachable;
//   - ErrNilProblem / ErrOptionViolation / ErrBudgetExhausted for
//     invalid input, invalid options, or an exceeded expansion budget.
//
// Solve never returns an empty, non-nil sequence: the phase targets are
// tested on generated successors only, so every solution contains at
// least one action.
func Solve(p *maze.Problem, opts ...Option) ([]maze.Action, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 2) Validate the problem.
	if p == nil {
		return nil, ErrNilProblem
	}

	r := &runner{problem: p, maxExpand: cfg.MaxExpansions}

	// 3) Phase 1: start → key, guided by distance to the key.
	//    Skipped entirely when the maze has no key.
	root := &node{state: p.Start()}
	seed := root
	if key, ok := p.Key(); ok {
		r.reset()
		r.visited[root.state] = true
		r.push(root)
		keyNode, err := r.run(toTarget(key), equals(key))
		if err != nil {
			return nil, err
		}
		seed = keyNode
	}

	// 4) Phase 2: key (or start) → nearest goal. The seed keeps its
	//    accumulated cost and parent chain from phase 1, so the final
	//    reconstruction walks the combined route in one pass.
	r.reset()
	r.push(seed)
	goal, err := r.run(toNearestGoal(p), p.IsGoal)
	if err != nil {
		return nil, err
	}

	return unwind(goal), nil
}

// runner holds the mutable state of a single Solve execution. The
// frontier and graveyard are cleared between phases; the expansion
// counter is not, so the budget spans the whole search.
type runner struct {
	problem   *maze.Problem
	pq        frontier
	visited   map[maze.Position]bool // the graveyard
	seq       int
	expanded  int
	maxExpand int
}

// reset clears the frontier and the graveyard for the next phase.
func (r *runner) reset() {
	r.pq = frontier{}
	heap.Init(&r.pq)
	r.visited = make(map[maze.Position]bool)
}

// push stamps n with the next insertion sequence and enqueues it.
func (r *runner) push(n *node) {
	n.seq = r.seq
	r.seq++
	heap.Push(&r.pq, n)
}

// run drains the frontier for one phase. It pops the lowest-priority
// node, generates its unvisited successors, and returns the first
// successor satisfying done. The expanding node's own state enters the
// graveyard only while its successors are generated — never earlier —
// which decides which alternative parents remain explorable.
//
// Returns ErrNoSolution when the frontier empties, ErrBudgetExhausted
// when the expansion budget runs out.
func (r *runner) run(h heuristic, done func(maze.Position) bool) (*node, error) {
	for r.pq.Len() > 0 {
		if r.maxExpand > 0 && r.expanded == r.maxExpand {
			return nil, ErrBudgetExhausted
		}
		e := heap.Pop(&r.pq).(*node)
		r.expanded++

		for _, mv := range r.problem.Transitions(e.state) {
			if r.visited[mv.To] {
				continue
			}
			r.visited[e.state] = true

			// priority = g + h, with g = parent cost + entry cost.
			g := e.costSoFar + r.problem.Cost(mv.To)
			child := &node{
				state:     mv.To,
				action:    mv.Action,
				parent:    e,
				costSoFar: g,
				priority:  g + h(mv.To),
			}

			if done(child.state) {
				return child, nil
			}
			r.push(child)
		}
	}

	return nil, ErrNoSolution
}

// toTarget returns the Manhattan-distance heuristic toward a single
// target position (phase 1).
func toTarget(t maze.Position) heuristic {
	return func(s maze.Position) int {
		return s.ManhattanTo(t)
	}
}

// toNearestGoal returns the minimum Manhattan distance over all goal
// positions (phase 2).
func toNearestGoal(p *maze.Problem) heuristic {
	goals := p.Goals()

	return func(s maze.Position) int {
		best := 0
		for i, g := range goals {
			if d := s.ManhattanTo(g); i == 0 || d < best {
				best = d
			}
		}

		return best
	}
}

// equals returns the phase-1 target predicate.
func equals(t maze.Position) func(maze.Position) bool {
	return func(s maze.Position) bool {
		return s == t
	}
}

// unwind walks parent links from the terminal node to the root,
// collecting actions, then reverses in place to yield start-to-goal
// order. Iterative on purpose: route length is bounded only by the
// grid, not the call stack.
func unwind(n *node) []maze.Action {
	var actions []maze.Action
	for cur := n; cur.parent != nil; cur = cur.parent {
		actions = append(actions, cur.action)
	}
	for i, j := 0, len(actions)-1; i < j; i, j = i+1, j-1 {
		actions[i], actions[j] = actions[j], actions[i]
	}

	return actions
}
