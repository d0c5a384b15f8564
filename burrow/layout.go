package burrow

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Layout is one configuration of tokens across the corridor and the rooms of
// a Geometry. Cells are stored in one fixed-capacity array: corridor first,
// then every room top to bottom, in room order. Unused trailing cells are
// always Empty, so == on two Layouts is the structural equality of their
// corridors and rooms.
//
// Layouts are values: copying one copies its cells, and the With* methods
// return modified copies. The zero Layout has no Geometry and must not be used.
type Layout struct {
	geo   *Geometry
	cells [maxCells]Token
}

// NewLayout builds a Layout from a corridor and rooms listed top to bottom.
// It validates shape, token types, conservation, gravity and entrance rules.
func NewLayout(g *Geometry, corridor []Token, rooms [][]Token) (Layout, error) {
	if g == nil {
		return Layout{}, fmt.Errorf("%w: nil geometry", ErrGeometry)
	}
	if len(corridor) != g.corridorLen {
		return Layout{}, fmt.Errorf("%w: corridor has %d cells, want %d", ErrShape, len(corridor), g.corridorLen)
	}
	if len(rooms) != g.rooms {
		return Layout{}, fmt.Errorf("%w: %d rooms, want %d", ErrShape, len(rooms), g.rooms)
	}

	l := Layout{geo: g}
	for i, t := range corridor {
		if int(t) > g.rooms {
			return Layout{}, fmt.Errorf("%w: %d in corridor cell %d", ErrUnknownToken, t, i)
		}
		if t != Empty && g.isEntrance[i] {
			return Layout{}, fmt.Errorf("%w: %s at %d", ErrBlockedEntrance, t, i)
		}
		l.cells[i] = t
	}
	for r, room := range rooms {
		if len(room) != g.depth {
			return Layout{}, fmt.Errorf("%w: room %d has %d slots, want %d", ErrShape, r, len(room), g.depth)
		}
		for d, t := range room {
			if int(t) > g.rooms {
				return Layout{}, fmt.Errorf("%w: %d in room %d slot %d", ErrUnknownToken, t, r, d)
			}
			if t == Empty && d > 0 && room[d-1] != Empty {
				return Layout{}, fmt.Errorf("%w: room %d slot %d", ErrFloatingToken, r, d)
			}
			l.cells[g.cell(r, d)] = t
		}
	}
	for typ, n := range l.Counts() {
		if n != g.depth {
			return Layout{}, fmt.Errorf("%w: %d tokens of type %s, want %d", ErrConservation, n, TokenOf(typ), g.depth)
		}
	}

	return l, nil
}

// Geometry returns the geometry l was built for.
func (l Layout) Geometry() *Geometry { return l.geo }

// Corridor returns the token at corridor index i.
func (l Layout) Corridor(i int) Token { return l.cells[i] }

// Room returns the token at slot d of room r (slot 0 is the top).
func (l Layout) Room(r, d int) Token { return l.cells[l.geo.cell(r, d)] }

// WithCorridor returns a copy of l with corridor index i set to t.
func (l Layout) WithCorridor(i int, t Token) Layout {
	l.cells[i] = t
	return l
}

// WithRoom returns a copy of l with slot d of room r set to t.
func (l Layout) WithRoom(r, d int, t Token) Layout {
	l.cells[l.geo.cell(r, d)] = t
	return l
}

// Top returns the index of the topmost occupied slot of room r,
// or -1 if the room is empty.
func (l Layout) Top(r int) int {
	for d := 0; d < l.geo.depth; d++ {
		if l.Room(r, d) != Empty {
			return d
		}
	}
	return -1
}

// Settled reports whether every slot of room r from index from down to the
// bottom holds the room's target type.
func (l Layout) Settled(r, from int) bool {
	want := l.geo.Target(r)
	for d := from; d < l.geo.depth; d++ {
		if l.Room(r, d) != want {
			return false
		}
	}
	return true
}

// IsGoal reports whether the corridor is empty and every room holds only its
// target type.
func (l Layout) IsGoal() bool {
	for i := 0; i < l.geo.corridorLen; i++ {
		if l.cells[i] != Empty {
			return false
		}
	}
	for r := 0; r < l.geo.rooms; r++ {
		if !l.Settled(r, 0) {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of l. Layout is a value type, so this is
// a plain copy; it exists to make the intent explicit at call sites.
func (l Layout) Clone() Layout { return l }

// Equal reports whether l and o have the same geometry, corridor and rooms.
func (l Layout) Equal(o Layout) bool { return l == o }

// Key returns the flattened diagram characters of l: the corridor, then every
// room top to bottom in room order.
func (l Layout) Key() string {
	n := l.geo.corridorLen + l.geo.rooms*l.geo.depth
	b := make([]byte, n)
	for i := 0; i < n; i++ {
		b[i] = l.cells[i].Byte()
	}
	return string(b)
}

// Hash returns a 64-bit hash of Key. Equal Layouts hash equally.
func (l Layout) Hash() uint64 { return xxhash.Sum64String(l.Key()) }

// Counts returns the number of tokens of each type, indexed by type.
func (l Layout) Counts() []int {
	counts := make([]int, l.geo.rooms)
	n := l.geo.corridorLen + l.geo.rooms*l.geo.depth
	for i := 0; i < n; i++ {
		if t := l.cells[i]; t != Empty && t.Type() < len(counts) {
			counts[t.Type()]++
		}
	}
	return counts
}

// String renders l as a diagram that Parse reads back.
func (l Layout) String() string {
	g := l.geo
	width := g.corridorLen + 2
	// Room walls span from the column left of room 0 to the column right of the last room.
	left := g.entrances[0]
	right := g.entrances[g.rooms-1] + 2

	var sb strings.Builder
	sb.WriteString(strings.Repeat("#", width))
	sb.WriteByte('\n')
	sb.WriteByte('#')
	for i := 0; i < g.corridorLen; i++ {
		sb.WriteByte(l.cells[i].Byte())
	}
	sb.WriteString("#\n")

	row := make([]byte, width)
	for d := 0; d < g.depth; d++ {
		end := right + 1
		for c := range row {
			switch {
			case d == 0:
				row[c] = '#'
			case c >= left && c <= right:
				row[c] = '#'
			default:
				row[c] = ' '
			}
		}
		if d == 0 {
			end = width
		}
		for r := 0; r < g.rooms; r++ {
			row[g.entrances[r]+1] = l.Room(r, d).Byte()
		}
		sb.Write(row[:end])
		sb.WriteByte('\n')
	}
	sb.WriteString(strings.Repeat(" ", left))
	sb.WriteString(strings.Repeat("#", right-left+1))
	sb.WriteByte('\n')

	return sb.String()
}
