// Package astar defines tunable options, sentinel errors, and the
// frontier structures for the two-phase keymaze search.
package astar

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/keymaze/maze"
)

// Sentinel errors for Solve.
var (
	// ErrNilProblem is returned if a nil *maze.Problem is passed.
	ErrNilProblem = errors.New("astar: problem is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("astar: invalid option supplied")

	// ErrNoSolution is returned when a phase exhausts its frontier:
	// the key is unreachable, or no goal is reachable from the key.
	// This is a normal outcome, distinct from configuration errors.
	ErrNoSolution = errors.New("astar: no solution exists")

	// ErrBudgetExhausted is returned when the expansion budget set via
	// WithMaxExpansions runs out before the search finishes.
	ErrBudgetExhausted = errors.New("astar: expansion budget exhausted")
)

// Options holds parameters to customize Solve.
//
// MaxExpansions – optional cap on node expansions (frontier pops),
// counted across both phases. 0 means no limit.
type Options struct {
	MaxExpansions int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with no expansion limit.
func DefaultOptions() Options {
	return Options{MaxExpansions: 0}
}

// Option configures Solve via functional arguments. An invalid Option
// is recorded internally and surfaced as ErrOptionViolation when Solve
// is invoked.
type Option func(*Options)

// WithMaxExpansions caps the total number of node expansions.
//
//	n > 0:  stop with ErrBudgetExhausted after n expansions
//	n == 0: explicit no limit
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)

			return
		}
		o.MaxExpansions = n
	}
}

// node is one vertex of the search tree. It holds the reached state,
// the action that produced it, a parent-ward link for reconstruction,
// the accumulated cost, and the frontier priority. Parent links are
// fixed at construction and never reassigned, so the tree is acyclic
// and a backward walk always terminates at the root.
type node struct {
	state     maze.Position
	action    maze.Action // empty for the root
	parent    *node       // nil for the root
	costSoFar int
	priority  int
	seq       int // insertion sequence, breaks priority ties FIFO
}

// frontier is a min-heap of *node ordered by priority ascending, with
// the insertion sequence as a strict tie-break. The secondary key makes
// the ordering a strict weak order and equal-priority pops FIFO.
type frontier []*node

// Len returns the number of queued nodes.
func (f frontier) Len() int { return len(f) }

// Less orders by priority, then by insertion sequence.
func (f frontier) Less(i, j int) bool {
	if f[i].priority != f[j].priority {
		return f[i].priority < f[j].priority
	}

	return f[i].seq < f[j].seq
}

// Swap swaps two queued nodes.
func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

// Push adds x onto the heap. Called by heap.Push; x must be *node.
func (f *frontier) Push(x interface{}) { *f = append(*f, x.(*node)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	item := old[n-1]
	old[n-1] = nil // release the slot for GC
	*f = old[:n-1]

	return item
}
