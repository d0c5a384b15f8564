// Package dijkstra defines core types and configuration options
// for uniform-cost search over implicit graphs.
//
// Options:
//
//	– MaxDistance: optional cap on costs to explore; states beyond it are not expanded.
//	– MaxStates:   optional cap on distinct states held in the cost table.
//	– OnSettle:    hook called once for every expanded state.
//
// Example usage:
//
//	res, err := dijkstra.Dijkstra(start, expand, isGoal,
//	    dijkstra.WithMaxStates(1_000_000),
//	)
//	if errors.Is(err, dijkstra.ErrNoPath) {
//	    // unsolvable
//	}
//	fmt.Println(res.Cost)
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilExpand indicates that a nil expand callback was passed.
	ErrNilExpand = errors.New("dijkstra: expand function is nil")

	// ErrNilGoal indicates that a nil goal predicate was passed.
	ErrNilGoal = errors.New("dijkstra: goal predicate is nil")

	// ErrNoPath indicates that no goal state is reachable from the source
	// (within MaxDistance, if set).
	ErrNoPath = errors.New("dijkstra: no goal state reachable")

	// ErrNegativeWeight indicates that the expand callback produced a negative edge cost.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrStateLimit indicates that the cost table outgrew MaxStates.
	ErrStateLimit = errors.New("dijkstra: state limit exceeded")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadMaxStates indicates that MaxStates was set to a negative value.
	ErrBadMaxStates = errors.New("dijkstra: MaxStates must be non-negative")
)

// Edge is one outgoing transition produced by an expand callback.
type Edge[S comparable] struct {
	To   S     // successor state
	Cost int64 // non-negative cost of the transition
}

// Stats counts the work done by one search.
type Stats struct {
	Settled int // states expanded (popped and not stale)
	Pushed  int // heap pushes, including the source
	Stale   int // heap entries discarded because a cheaper cost was already known
	Relaxed int // edges examined
	States  int // distinct states in the cost table at the end
}

// Result is the outcome of a successful search.
type Result[S comparable] struct {
	Cost  int64 // minimal cost from the source to Goal
	Goal  S     // the goal state reached
	Stats Stats
}

// Options configures the behavior of the Dijkstra algorithm.
//
// MaxDistance – states with an accumulated cost above this value are not expanded.
//
//	Must be ≥ 0. Default is math.MaxInt64 (no cap).
//
// MaxStates – maximum number of distinct states in the cost table.
//
//	Must be ≥ 0. Default is 0 (no cap).
//
// OnSettle – called with the running count of expanded states and the cost of
// the state being expanded. Default is a no-op.
type Options struct {
	MaxDistance int64
	MaxStates   int
	OnSettle    func(settled int, cost int64)
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithMaxDistance sets a maximum cost threshold.
// States whose cost would exceed this value are not explored.
// Must pass a non-negative value; negative values cause ErrBadMaxDistance.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			// Panic to signal invalid configuration early.
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithMaxStates caps the number of distinct states the search may record.
// Zero means unlimited; negative values cause ErrBadMaxStates.
func WithMaxStates(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(ErrBadMaxStates.Error())
		}
		o.MaxStates = n
	}
}

// WithOnSettle registers a hook called every time a state is expanded.
func WithOnSettle(fn func(settled int, cost int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSettle = fn
		}
	}
}

// DefaultOptions returns an Options struct initialized with sensible defaults.
//
// Defaults:
//   - MaxDistance: math.MaxInt64 (no distance limit).
//   - MaxStates:   0 (no state limit).
//   - OnSettle:    no-op.
func DefaultOptions() Options {
	return Options{
		MaxDistance: math.MaxInt64,
		MaxStates:   0,
		OnSettle:    func(int, int64) {},
	}
}
