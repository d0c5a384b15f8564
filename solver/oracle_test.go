package solver_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/burrow/bfs"
	"github.com/katalvlaran/burrow/burrow"
	"github.com/katalvlaran/burrow/moves"
	"github.com/katalvlaran/burrow/solver"
)

// oracle computes the minimal cost to a goal by enumerating every reachable
// layout and relaxing all moves until nothing changes. It returns -1 when no
// goal is reachable.
func oracle(t *testing.T, start burrow.Layout) int64 {
	t.Helper()
	walk, err := bfs.BFS(start, func(l burrow.Layout) []burrow.Layout {
		var out []burrow.Layout
		for _, m := range moves.Successors(l) {
			out = append(out, m.Next)
		}
		return out
	})
	require.NoError(t, err)

	edges := make(map[burrow.Layout][]moves.Move, len(walk.Order))
	for _, l := range walk.Order {
		edges[l] = moves.Successors(l)
	}
	dist := map[burrow.Layout]int64{start: 0}
	for changed := true; changed; {
		changed = false
		for _, u := range walk.Order {
			du, ok := dist[u]
			if !ok {
				continue
			}
			for _, m := range edges[u] {
				if dv, seen := dist[m.Next]; !seen || du+m.Cost < dv {
					dist[m.Next] = du + m.Cost
					changed = true
				}
			}
		}
	}

	best := int64(-1)
	for l, d := range dist {
		if l.IsGoal() && (best < 0 || d < best) {
			best = d
		}
	}
	return best
}

// arrangements returns every distinct filling of rooms×depth slots with depth
// tokens of each type, listed room by room, top to bottom.
func arrangements(rooms, depth int) [][][]burrow.Token {
	left := make([]int, rooms)
	for i := range left {
		left[i] = depth
	}
	flat := make([]burrow.Token, 0, rooms*depth)

	var out [][][]burrow.Token
	var fill func()
	fill = func() {
		if len(flat) == rooms*depth {
			rs := make([][]burrow.Token, rooms)
			for r := range rs {
				rs[r] = append([]burrow.Token(nil), flat[r*depth:(r+1)*depth]...)
			}
			out = append(out, rs)
			return
		}
		for typ := range left {
			if left[typ] == 0 {
				continue
			}
			left[typ]--
			flat = append(flat, burrow.TokenOf(typ))
			fill()
			flat = flat[:len(flat)-1]
			left[typ]++
		}
	}
	fill()
	return out
}

// TestSolve_MatchesOracle compares Solve against exhaustive relaxation for
// every full-room start of a few small geometries.
func TestSolve_MatchesOracle(t *testing.T) {
	geometries := []struct {
		corridor  int
		entrances []int
		depth     int
		starts    int
	}{
		{corridor: 5, entrances: []int{1, 3}, depth: 1, starts: 2},
		{corridor: 7, entrances: []int{1, 3, 5}, depth: 1, starts: 6},
		{corridor: 5, entrances: []int{1, 3}, depth: 2, starts: 6},
		{corridor: 4, entrances: []int{0, 3}, depth: 1, starts: 2},
	}
	for _, tc := range geometries {
		g, err := burrow.NewGeometry(tc.corridor, tc.entrances, tc.depth, burrow.DecimalCosts(len(tc.entrances)))
		require.NoError(t, err)

		starts := arrangements(len(tc.entrances), tc.depth)
		require.Len(t, starts, tc.starts)
		for _, rooms := range starts {
			start, err := burrow.NewLayout(g, make([]burrow.Token, tc.corridor), rooms)
			require.NoError(t, err)

			t.Run(fmt.Sprintf("%d/%v/%s", tc.corridor, tc.entrances, start.Key()), func(t *testing.T) {
				want := oracle(t, start)
				res, err := solver.Solve(start, quiet())
				require.NoError(t, err)
				assert.Equal(t, want, res.Cost)
				assert.Equal(t, want >= 0, res.Solved)
			})
		}
	}
}
