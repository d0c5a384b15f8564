// Package solver finds the minimum total cost of sorting a burrow Layout:
// every token walked into its target room, the corridor left empty.
//
// Solve runs a uniform-cost search (package dijkstra) over the implicit graph
// whose vertices are Layouts and whose edges are the legal moves of package
// moves. Census enumerates the reachable state space breadth-first
// (package bfs). Both report to the default Prometheus registry.
//
// An unreachable goal is a normal outcome, not an error: Result.Solved is
// false and Result.Cost is NoSolution.
package solver

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/burrow/dijkstra"
)

// NoSolution is the Cost of an unsolved Result.
const NoSolution int64 = -1

var (
	// ErrNoGeometry indicates a zero Layout was passed.
	ErrNoGeometry = errors.New("solver: layout has no geometry")

	// ErrStateLimit indicates the search recorded more than MaxStates layouts.
	ErrStateLimit = dijkstra.ErrStateLimit

	// ErrBadOption indicates an invalid option value.
	ErrBadOption = errors.New("solver: invalid option")
)

// Options configures Solve and Census.
type Options struct {
	// Logger receives run-level records; progress records are emitted at Debug.
	Logger *slog.Logger

	// MaxStates caps the number of distinct layouts held in memory. 0 means no cap.
	MaxStates int

	// ProgressEvery emits a progress record every N expanded layouts. 0 disables.
	ProgressEvery int

	err error
}

// Option represents a functional option for Solve and Census.
type Option func(*Options)

// DefaultOptions returns Options with slog.Default(), no state cap and no
// progress records.
func DefaultOptions() Options {
	return Options{Logger: slog.Default()}
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMaxStates caps the number of distinct layouts. n < 0 is an option violation.
func WithMaxStates(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: max states %d", ErrBadOption, n)
			return
		}
		o.MaxStates = n
	}
}

// WithProgressEvery emits a Debug progress record every n expanded layouts.
func WithProgressEvery(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: progress interval %d", ErrBadOption, n)
			return
		}
		o.ProgressEvery = n
	}
}

// Result is the outcome of one Solve call.
type Result struct {
	RunID   string
	Cost    int64 // minimal total cost, or NoSolution
	Solved  bool
	Stats   dijkstra.Stats
	Elapsed time.Duration
}

// CensusResult describes the state space reachable from a Layout.
type CensusResult struct {
	Layouts  int // distinct reachable layouts, the start included
	Goals    int // reachable goal layouts (0 or 1)
	MaxMoves int // largest fewest-move distance from the start
	Elapsed  time.Duration
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o, o.err
}
