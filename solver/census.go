package solver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/burrow/bfs"
	"github.com/katalvlaran/burrow/burrow"
	"github.com/katalvlaran/burrow/moves"
)

// Census enumerates every Layout reachable from start, ignoring costs.
// ctx cancels the walk; MaxStates bounds it (ErrStateLimit).
func Census(ctx context.Context, start burrow.Layout, opts ...Option) (CensusResult, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return CensusResult{}, err
	}
	if start.Geometry() == nil {
		return CensusResult{}, ErrNoGeometry
	}

	began := time.Now()
	walk, err := bfs.BFS(start, neighbors, bfs.WithContext(ctx), bfs.WithMaxVisits(o.MaxStates))
	if err != nil {
		return CensusResult{}, fmt.Errorf("solver: census: %w", censusErr(err))
	}

	res := CensusResult{
		Layouts:  len(walk.Order),
		MaxMoves: walk.MaxDepth(),
		Elapsed:  time.Since(began),
	}
	for _, l := range walk.Order {
		if l.IsGoal() {
			res.Goals++
		}
	}
	censusLayouts.Set(float64(res.Layouts))

	o.Logger.Info("census finished",
		slog.Int("layouts", res.Layouts),
		slog.Int("goals", res.Goals),
		slog.Int("max_moves", res.MaxMoves),
		slog.Duration("elapsed", res.Elapsed))

	return res, nil
}

// censusErr maps the bfs visit limit onto ErrStateLimit.
func censusErr(err error) error {
	if errors.Is(err, bfs.ErrVisitLimit) {
		return fmt.Errorf("%w (%v)", ErrStateLimit, err)
	}
	return err
}

func neighbors(l burrow.Layout) []burrow.Layout {
	ms := moves.Successors(l)
	out := make([]burrow.Layout, len(ms))
	for i, m := range ms {
		out[i] = m.Next
	}
	return out
}
