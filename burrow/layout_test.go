package burrow_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/burrow/burrow"
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

// A, B, C, D as tokens.
var (
	tA = burrow.TokenOf(0)
	tB = burrow.TokenOf(1)
	tC = burrow.TokenOf(2)
	tD = burrow.TokenOf(3)
	__ = burrow.Empty
)

func mustParse(t *testing.T, s string, opts ...burrow.ParseOption) burrow.Layout {
	t.Helper()
	l, err := burrow.ParseString(s, opts...)
	require.NoError(t, err)
	return l
}

func emptyCorridor(n int) []burrow.Token { return make([]burrow.Token, n) }

func TestToken(t *testing.T) {
	assert.Equal(t, byte('.'), burrow.Empty.Byte())
	assert.Equal(t, "C", tC.String())
	assert.Equal(t, 3, tD.Type())
	assert.Equal(t, -1, burrow.Empty.Type())

	for _, b := range []byte(".ABCD") {
		tok, err := burrow.ParseToken(b)
		require.NoError(t, err)
		assert.Equal(t, b, tok.Byte())
	}
	_, err := burrow.ParseToken('E')
	assert.ErrorIs(t, err, burrow.ErrUnknownToken)
}

// TestNewGeometry_Errors verifies that NewGeometry rejects every malformed configuration.
func TestNewGeometry_Errors(t *testing.T) {
	cases := []struct {
		name      string
		corridor  int
		entrances []int
		depth     int
		costs     []int64
	}{
		{"CorridorTooLong", 12, []int{2}, 1, []int64{1}},
		{"NoRooms", 5, nil, 1, nil},
		{"TooManyRooms", 11, []int{1, 3, 5, 7, 9}, 1, []int64{1, 2, 3, 4, 5}},
		{"DepthZero", 5, []int{1, 3}, 0, []int64{1, 10}},
		{"DepthTooLarge", 5, []int{1, 3}, 5, []int64{1, 10}},
		{"CostCount", 5, []int{1, 3}, 1, []int64{1}},
		{"EntranceOutside", 5, []int{1, 5}, 1, []int64{1, 10}},
		{"EntrancesUnordered", 5, []int{3, 1}, 1, []int64{1, 10}},
		{"CostNotIncreasing", 5, []int{1, 3}, 1, []int64{10, 10}},
		{"CostNotPositive", 5, []int{1, 3}, 1, []int64{0, 10}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := burrow.NewGeometry(tc.corridor, tc.entrances, tc.depth, tc.costs)
			assert.ErrorIs(t, err, burrow.ErrGeometry)
		})
	}
}

func TestGeometry_StandardAndInterning(t *testing.T) {
	g := burrow.MustStandard(2)
	assert.Equal(t, 11, g.CorridorLen())
	assert.Equal(t, 4, g.Rooms())
	assert.Equal(t, 2, g.Depth())
	for r, e := range []int{2, 4, 6, 8} {
		assert.Equal(t, e, g.Entrance(r))
		assert.True(t, g.IsEntrance(e))
		assert.Equal(t, burrow.TokenOf(r), g.Target(r))
	}
	assert.False(t, g.IsEntrance(3))
	assert.Equal(t, []int64{1, 10, 100, 1000},
		[]int64{g.Cost(tA), g.Cost(tB), g.Cost(tC), g.Cost(tD)})

	same, err := burrow.NewGeometry(11, []int{2, 4, 6, 8}, 2, []int64{1, 10, 100, 1000})
	require.NoError(t, err)
	assert.Same(t, g, same)
	assert.NotSame(t, g, burrow.MustStandard(4))

	assert.Panics(t, func() { burrow.MustStandard(0) })
}

// TestNewLayout_Errors checks every precondition NewLayout enforces.
func TestNewLayout_Errors(t *testing.T) {
	g, err := burrow.NewGeometry(5, []int{1, 3}, 2, []int64{1, 10})
	require.NoError(t, err)

	cases := []struct {
		name     string
		corridor []burrow.Token
		rooms    [][]burrow.Token
		err      error
	}{
		{"ShortCorridor", emptyCorridor(4), [][]burrow.Token{{tA, tA}, {tB, tB}}, burrow.ErrShape},
		{"MissingRoom", emptyCorridor(5), [][]burrow.Token{{tA, tA}}, burrow.ErrShape},
		{"ShallowRoom", emptyCorridor(5), [][]burrow.Token{{tA}, {tB, tB}}, burrow.ErrShape},
		{"TypeWithoutRoom", emptyCorridor(5), [][]burrow.Token{{tA, tC}, {tB, tB}}, burrow.ErrUnknownToken},
		{"TooFewOfAType", emptyCorridor(5), [][]burrow.Token{{tA, tB}, {tB, tB}}, burrow.ErrConservation},
		{"Floating", []burrow.Token{tA, __, __, __, __}, [][]burrow.Token{{tA, __}, {tB, tB}}, burrow.ErrFloatingToken},
		{"OnEntrance", []burrow.Token{__, tA, __, __, __}, [][]burrow.Token{{__, tA}, {tB, tB}}, burrow.ErrBlockedEntrance},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := burrow.NewLayout(g, tc.corridor, tc.rooms)
			assert.ErrorIs(t, err, tc.err)
		})
	}

	_, err = burrow.NewLayout(nil, nil, nil)
	assert.ErrorIs(t, err, burrow.ErrGeometry)
}

func TestLayout_Accessors(t *testing.T) {
	l := mustParse(t, example)

	assert.Equal(t, tB, l.Room(0, 0))
	assert.Equal(t, tA, l.Room(0, 1))
	assert.Equal(t, tD, l.Room(3, 0))
	assert.Equal(t, 0, l.Top(2))
	assert.Equal(t, []int{2, 2, 2, 2}, l.Counts())
	assert.Equal(t, "...........BACDBCDA", l.Key())

	moved := l.WithRoom(2, 0, burrow.Empty).WithCorridor(3, tB)
	assert.Equal(t, tB, moved.Corridor(3))
	assert.Equal(t, 1, moved.Top(2))
	assert.Equal(t, []int{2, 2, 2, 2}, moved.Counts())

	// the original is untouched
	assert.Equal(t, burrow.Empty, l.Corridor(3))
	assert.Equal(t, tB, l.Room(2, 0))

	emptied := moved.WithRoom(2, 1, burrow.Empty)
	assert.Equal(t, -1, emptied.Top(2))
}

func TestLayout_CloneEqualHash(t *testing.T) {
	l := mustParse(t, example)
	c := l.Clone()
	require.True(t, l.Equal(c))
	assert.Equal(t, l.Hash(), c.Hash())

	c = c.WithRoom(0, 0, burrow.Empty).WithCorridor(0, tB)
	assert.False(t, l.Equal(c))
	assert.Equal(t, tB, l.Room(0, 0), "clone must not alias the original")
	assert.NotEqual(t, l.Hash(), c.Hash())

	// separately parsed layouts share the interned geometry and compare equal
	again := mustParse(t, example)
	assert.True(t, l == again)
	seen := map[burrow.Layout]int{l: 1}
	assert.Equal(t, 1, seen[again])
}

func TestLayout_IsGoal(t *testing.T) {
	goal := mustParse(t, sorted)
	assert.True(t, goal.IsGoal())
	assert.True(t, goal.Settled(2, 0))

	assert.False(t, mustParse(t, example).IsGoal())

	// a token in the corridor is never a goal
	out := goal.WithRoom(1, 0, burrow.Empty).WithCorridor(5, tB)
	assert.False(t, out.IsGoal())

	// rooms with swapped tops are never a goal
	swapped := goal.WithRoom(0, 0, tB).WithRoom(1, 0, tA)
	assert.False(t, swapped.IsGoal())
	assert.True(t, swapped.Settled(0, 1))
	assert.False(t, swapped.Settled(0, 0))
}

func TestLayout_StringRoundTrip(t *testing.T) {
	for _, s := range []string{example, sorted} {
		l := mustParse(t, s)
		if diff := cmp.Diff(s, l.String()); diff != "" {
			t.Errorf("String() mismatch (-want +got):\n%s", diff)
		}
	}
}
