// Package bfs provides tunable options and error definitions
// for breadth-first search over implicit graphs.
package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrNilNeighbors is returned when the neighbors callback is nil.
	ErrNilNeighbors = errors.New("bfs: neighbors function is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrVisitLimit is returned when the search exceeds MaxVisits states.
	ErrVisitLimit = errors.New("bfs: visit limit exceeded")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*Options)

// Options holds parameters to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// MaxVisits, if > 0, caps the number of distinct states enqueued.
	MaxVisits int

	// Parents enables recording of the BFS tree in Result.Parent.
	Parents bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - Context.Background()
//   - no depth limit, no visit limit
//   - no parent tracking.
func DefaultOptions() Options {
	return Options{
		Ctx: context.Background(),
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithMaxVisits aborts the search once more than n states were discovered.
// n == 0 disables the limit; n < 0 is an option violation.
func WithMaxVisits(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxVisits cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxVisits = n
	}
}

// WithParents records the predecessor of every state so PathTo works.
func WithParents() Option {
	return func(o *Options) {
		o.Parents = true
	}
}

// Result holds the outcome of a BFS traversal:
//   - Order: states visited, in visit sequence.
//   - Depth: map from state to its distance (in edges) from the start.
//   - Parent: map from state to its predecessor in the BFS tree (nil unless WithParents).
type Result[S comparable] struct {
	Order  []S
	Depth  map[S]int
	Parent map[S]S
}

// MaxDepth returns the largest depth reached.
func (r *Result[S]) MaxDepth() int {
	deepest := 0
	for _, d := range r.Depth {
		if d > deepest {
			deepest = d
		}
	}
	return deepest
}

// PathTo reconstructs the path from the start state to dest.
// Returns an error if dest was not reached or parents were not recorded.
func (r *Result[S]) PathTo(dest S) ([]S, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("bfs: no path to %v", dest)
	}
	if r.Parent == nil {
		return nil, fmt.Errorf("%w: parents not recorded", ErrOptionViolation)
	}
	// build reversed path
	path := []S{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
