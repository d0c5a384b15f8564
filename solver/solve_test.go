package solver_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/burrow/burrow"
	"github.com/katalvlaran/burrow/solver"
)

const example = `#############
#...........#
###B#C#B#D###
  #A#D#C#A#
  #########
`

const sorted = `#############
#...........#
###A#B#C#D###
  #A#B#C#D#
  #########
`

// D and A face each other in the corridor; neither can pass.
const deadlock = `#############
#.....D.A...#
###.#B#C#.###
  #A#B#C#D#
  #########
`

// Two rooms under corridor cells 1 and 3, A costs 1 per step, B costs 10.
const twoRooms = `#######
#.....#
##B#A##
 #A#B#
 #####
`

func mustParse(t testing.TB, s string, opts ...burrow.ParseOption) burrow.Layout {
	t.Helper()
	l, err := burrow.ParseString(s, opts...)
	require.NoError(t, err)
	return l
}

func quiet() solver.Option {
	return solver.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestSolve_TwoRooms(t *testing.T) {
	// A out to 4 (2), B out to 2 (20), B home (20), A home (4).
	res, err := solver.Solve(mustParse(t, twoRooms), quiet())
	require.NoError(t, err)
	assert.True(t, res.Solved)
	assert.Equal(t, int64(46), res.Cost)
	assert.NotEmpty(t, res.RunID)
	assert.Positive(t, res.Stats.Settled)
}

func TestSolve_Example(t *testing.T) {
	res, err := solver.Solve(mustParse(t, example), quiet())
	require.NoError(t, err)
	assert.True(t, res.Solved)
	assert.Equal(t, int64(12521), res.Cost)
}

func TestSolve_ExampleUnfolded(t *testing.T) {
	if testing.Short() {
		t.Skip("depth-4 search skipped in short mode")
	}
	res, err := solver.Solve(mustParse(t, example, burrow.WithUnfold(true)), quiet())
	require.NoError(t, err)
	assert.True(t, res.Solved)
	assert.Equal(t, int64(44169), res.Cost)
}

func TestSolve_GoalCostsNothing(t *testing.T) {
	res, err := solver.Solve(mustParse(t, sorted), quiet())
	require.NoError(t, err)
	assert.True(t, res.Solved)
	assert.Zero(t, res.Cost)
	assert.Zero(t, res.Stats.Settled)
}

func TestSolve_Unsolvable(t *testing.T) {
	res, err := solver.Solve(mustParse(t, deadlock), quiet())
	require.NoError(t, err)
	assert.False(t, res.Solved)
	assert.Equal(t, solver.NoSolution, res.Cost)
	assert.Equal(t, 1, res.Stats.Settled)
}

func TestSolve_StateLimit(t *testing.T) {
	_, err := solver.Solve(mustParse(t, example), quiet(), solver.WithMaxStates(50))
	assert.ErrorIs(t, err, solver.ErrStateLimit)
}

func TestSolve_Errors(t *testing.T) {
	_, err := solver.Solve(burrow.Layout{}, quiet())
	assert.ErrorIs(t, err, solver.ErrNoGeometry)

	res, err := solver.Solve(mustParse(t, example), solver.WithMaxStates(-1))
	assert.ErrorIs(t, err, solver.ErrBadOption)
	assert.Equal(t, solver.NoSolution, res.Cost)

	_, err = solver.Solve(mustParse(t, example), solver.WithProgressEvery(-3))
	assert.ErrorIs(t, err, solver.ErrBadOption)
}

// TestSolve_Independent checks that repeated and interleaved calls do not
// share search state.
func TestSolve_Independent(t *testing.T) {
	a := mustParse(t, twoRooms)
	b := mustParse(t, example)
	for i := 0; i < 3; i++ {
		ra, err := solver.Solve(a, quiet())
		require.NoError(t, err)
		rb, err := solver.Solve(b, quiet())
		require.NoError(t, err)
		assert.Equal(t, int64(46), ra.Cost)
		assert.Equal(t, int64(12521), rb.Cost)
		assert.NotEqual(t, ra.RunID, rb.RunID)
	}
}

func TestSolve_Logging(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	res, err := solver.Solve(mustParse(t, twoRooms), solver.WithLogger(log), solver.WithProgressEvery(1))
	require.NoError(t, err)

	var msgs []string
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var rec map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &rec))
		assert.Equal(t, res.RunID, rec["run_id"])
		msgs = append(msgs, rec["msg"].(string))
	}
	require.GreaterOrEqual(t, len(msgs), 3)
	assert.Equal(t, "solve started", msgs[0])
	assert.Equal(t, "solve finished", msgs[len(msgs)-1])
	assert.Contains(t, msgs, "solve progress")
}
