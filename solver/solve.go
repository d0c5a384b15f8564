package solver

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/burrow/burrow"
	"github.com/katalvlaran/burrow/dijkstra"
	"github.com/katalvlaran/burrow/moves"
)

// Solve returns the minimum total cost of moving every token of start into
// its target room. Each call owns its cost table and frontier; nothing is
// retained between calls.
//
// Returns a Result with Solved == false and Cost == NoSolution when no goal
// is reachable. err is non-nil only for invalid input or options, or when
// MaxStates is exceeded (ErrStateLimit).
func Solve(start burrow.Layout, opts ...Option) (Result, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return Result{Cost: NoSolution}, err
	}
	if start.Geometry() == nil {
		return Result{Cost: NoSolution}, ErrNoGeometry
	}

	res := Result{RunID: uuid.NewString(), Cost: NoSolution}
	log := o.Logger.With(
		slog.String("run_id", res.RunID),
		slog.String("layout", fmt.Sprintf("%016x", start.Hash())),
	)
	log.Info("solve started", slog.Int("depth", start.Geometry().Depth()))

	began := time.Now()
	found, err := dijkstra.Dijkstra(start, expand, burrow.Layout.IsGoal, searchOptions(o, log)...)
	res.Elapsed = time.Since(began)
	res.Stats = found.Stats

	solveDuration.Observe(res.Elapsed.Seconds())
	layoutsSettled.Add(float64(found.Stats.Settled))

	switch {
	case err == nil:
		res.Cost = found.Cost
		res.Solved = true
		solveTotal.WithLabelValues("solved").Inc()
	case errors.Is(err, dijkstra.ErrNoPath):
		solveTotal.WithLabelValues("unsolvable").Inc()
	default:
		solveTotal.WithLabelValues("error").Inc()
		log.Error("solve failed",
			slog.String("error", err.Error()),
			slog.Int("states", found.Stats.States))
		return res, fmt.Errorf("solver: %w", err)
	}

	log.Info("solve finished",
		slog.Bool("solved", res.Solved),
		slog.Int64("cost", res.Cost),
		slog.Int("settled", res.Stats.Settled),
		slog.Int("states", res.Stats.States),
		slog.Int("stale", res.Stats.Stale),
		slog.Duration("elapsed", res.Elapsed))

	return res, nil
}

// expand adapts the move generator to the search engine.
func expand(l burrow.Layout) []dijkstra.Edge[burrow.Layout] {
	ms := moves.Successors(l)
	edges := make([]dijkstra.Edge[burrow.Layout], len(ms))
	for i, m := range ms {
		edges[i] = dijkstra.Edge[burrow.Layout]{To: m.Next, Cost: m.Cost}
	}
	return edges
}

func searchOptions(o Options, log *slog.Logger) []dijkstra.Option {
	var opts []dijkstra.Option
	if o.MaxStates > 0 {
		opts = append(opts, dijkstra.WithMaxStates(o.MaxStates))
	}
	if every := o.ProgressEvery; every > 0 {
		opts = append(opts, dijkstra.WithOnSettle(func(settled int, cost int64) {
			if settled%every == 0 {
				log.Debug("solve progress", slog.Int("settled", settled), slog.Int64("cost", cost))
			}
		}))
	}
	return opts
}
