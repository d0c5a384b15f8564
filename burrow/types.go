package burrow

import (
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors for burrow construction and parsing.
var (
	// ErrGeometry indicates an invalid Geometry configuration.
	ErrGeometry = errors.New("burrow: invalid geometry")

	// ErrShape indicates corridor or room slices that do not match the Geometry.
	ErrShape = errors.New("burrow: layout shape does not match geometry")

	// ErrUnknownToken indicates a token type that has no target room.
	ErrUnknownToken = errors.New("burrow: unknown token type")

	// ErrConservation indicates a token type that does not occur exactly Depth times.
	ErrConservation = errors.New("burrow: token counts violate conservation")

	// ErrFloatingToken indicates a room slot that is empty below an occupied one.
	ErrFloatingToken = errors.New("burrow: room is not packed from the bottom")

	// ErrBlockedEntrance indicates a token resting on a room entrance.
	ErrBlockedEntrance = errors.New("burrow: token rests on a room entrance")

	// ErrParse indicates malformed diagram text.
	ErrParse = errors.New("burrow: cannot parse diagram")
)

// Hard limits of the model. They bound the fixed-capacity cell array of Layout.
const (
	MaxCorridor = 11
	MaxRooms    = 4
	MaxDepth    = 4

	maxCells = MaxCorridor + MaxRooms*MaxDepth
)

// Token is the content of one cell: Empty or a token type.
// Type A is Token(1), type B is Token(2), and so on.
type Token uint8

// Empty marks a free cell.
const Empty Token = 0

// TokenOf returns the token of the given type index (0 for A).
func TokenOf(typ int) Token { return Token(typ + 1) }

// Type returns the zero-based type index of t, which is also the index of its
// target room. Type of Empty is -1.
func (t Token) Type() int { return int(t) - 1 }

// Byte returns the diagram character of t: '.' for Empty, 'A'.. otherwise.
func (t Token) Byte() byte {
	if t == Empty {
		return '.'
	}
	return 'A' + byte(t) - 1
}

// String implements fmt.Stringer.
func (t Token) String() string { return string(t.Byte()) }

// ParseToken converts a diagram character into a Token.
func ParseToken(b byte) (Token, error) {
	switch {
	case b == '.':
		return Empty, nil
	case b >= 'A' && b < 'A'+MaxRooms:
		return Token(b-'A') + 1, nil
	default:
		return Empty, fmt.Errorf("%w: %q", ErrUnknownToken, b)
	}
}

// Geometry holds the fixed domain constants of a burrow. It is immutable and
// interned: NewGeometry returns the same pointer for equal arguments, so
// Layouts built from separately constructed but equal geometries compare equal.
type Geometry struct {
	corridorLen int
	rooms       int
	depth       int
	entrances   [MaxRooms]int
	costs       [MaxRooms]int64
	isEntrance  [MaxCorridor]bool
}

// geometryKey identifies an interned Geometry.
type geometryKey struct {
	corridorLen int
	rooms       int
	depth       int
	entrances   [MaxRooms]int
	costs       [MaxRooms]int64
}

var (
	internMu sync.Mutex
	interned = make(map[geometryKey]*Geometry)
)

// NewGeometry validates and returns the Geometry with the given corridor length,
// room entrances (one per room, strictly increasing corridor indices), room depth
// and per-type step costs (one per room, positive, strictly increasing).
//
// Every distinct Geometry is kept in a process-wide table for the life of the
// process and never evicted. Callers that build many distinct geometries grow
// that table without bound.
func NewGeometry(corridorLen int, entrances []int, depth int, costs []int64) (*Geometry, error) {
	rooms := len(entrances)
	switch {
	case corridorLen < 1 || corridorLen > MaxCorridor:
		return nil, fmt.Errorf("%w: corridor length %d not in [1,%d]", ErrGeometry, corridorLen, MaxCorridor)
	case rooms < 1 || rooms > MaxRooms:
		return nil, fmt.Errorf("%w: %d rooms not in [1,%d]", ErrGeometry, rooms, MaxRooms)
	case depth < 1 || depth > MaxDepth:
		return nil, fmt.Errorf("%w: depth %d not in [1,%d]", ErrGeometry, depth, MaxDepth)
	case len(costs) != rooms:
		return nil, fmt.Errorf("%w: %d costs for %d rooms", ErrGeometry, len(costs), rooms)
	}

	key := geometryKey{corridorLen: corridorLen, rooms: rooms, depth: depth}
	for i, e := range entrances {
		if e < 0 || e >= corridorLen {
			return nil, fmt.Errorf("%w: entrance %d outside corridor", ErrGeometry, e)
		}
		if i > 0 && e <= entrances[i-1] {
			return nil, fmt.Errorf("%w: entrances must be strictly increasing", ErrGeometry)
		}
		if costs[i] <= 0 || (i > 0 && costs[i] <= costs[i-1]) {
			return nil, fmt.Errorf("%w: costs must be positive and strictly increasing", ErrGeometry)
		}
		key.entrances[i] = e
		key.costs[i] = costs[i]
	}

	internMu.Lock()
	defer internMu.Unlock()
	if g, ok := interned[key]; ok {
		return g, nil
	}
	g := &Geometry{
		corridorLen: corridorLen,
		rooms:       rooms,
		depth:       depth,
		entrances:   key.entrances,
		costs:       key.costs,
	}
	for _, e := range entrances {
		g.isEntrance[e] = true
	}
	interned[key] = g

	return g, nil
}

// Standard returns the canonical geometry: an 11-cell corridor, rooms under
// cells 2, 4, 6 and 8, and step costs 1, 10, 100 and 1000 for A through D.
func Standard(depth int) (*Geometry, error) {
	return NewGeometry(MaxCorridor, []int{2, 4, 6, 8}, depth, DecimalCosts(MaxRooms))
}

// MustStandard is like Standard but panics on an invalid depth.
func MustStandard(depth int) *Geometry {
	g, err := Standard(depth)
	if err != nil {
		panic(err)
	}
	return g
}

// DecimalCosts returns the cost table 1, 10, 100, ... for n token types.
func DecimalCosts(n int) []int64 {
	costs := make([]int64, n)
	c := int64(1)
	for i := range costs {
		costs[i] = c
		c *= 10
	}
	return costs
}

// CorridorLen returns the number of corridor cells.
func (g *Geometry) CorridorLen() int { return g.corridorLen }

// Rooms returns the number of rooms, which is also the number of token types.
func (g *Geometry) Rooms() int { return g.rooms }

// Depth returns the number of slots in every room.
func (g *Geometry) Depth() int { return g.depth }

// Entrance returns the corridor index above room r.
func (g *Geometry) Entrance(r int) int { return g.entrances[r] }

// IsEntrance reports whether corridor index i is a room entrance.
func (g *Geometry) IsEntrance(i int) bool { return g.isEntrance[i] }

// Cost returns the per-step cost of token t. t must not be Empty.
func (g *Geometry) Cost(t Token) int64 { return g.costs[t.Type()] }

// Target returns the token type that belongs in room r.
func (g *Geometry) Target(r int) Token { return TokenOf(r) }

// cell maps room r, slot d to its index in the Layout cell array.
func (g *Geometry) cell(r, d int) int { return g.corridorLen + r*g.depth + d }
