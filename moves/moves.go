// Package moves generates the legal single-token moves of a burrow Layout.
//
// Two rule families exist and no others: a token leaves a room for a free
// corridor stop (Exits), or a token in the corridor walks into its target
// room (Entries). Tokens never move corridor to corridor and never go room to
// room in one move. Every move costs (steps × per-step cost of the token),
// where steps counts room slots traversed plus corridor cells walked.
package moves

import "github.com/katalvlaran/burrow/burrow"

// Move is one successor Layout with the cost of reaching it.
type Move struct {
	Next burrow.Layout
	Cost int64
}

// Successors returns every legal move from l: exits first, in room order,
// then entries, in corridor order. A goal Layout has no successors.
func Successors(l burrow.Layout) []Move {
	out := make([]Move, 0, 2*l.Geometry().CorridorLen())
	out = appendExits(out, l)
	out = appendEntries(out, l)
	return out
}

// Exits returns the room-to-corridor moves of l.
func Exits(l burrow.Layout) []Move { return appendExits(nil, l) }

// Entries returns the corridor-to-room moves of l.
func Entries(l burrow.Layout) []Move { return appendEntries(nil, l) }

func appendExits(out []Move, l burrow.Layout) []Move {
	g := l.Geometry()
	for r := 0; r < g.Rooms(); r++ {
		t := l.Top(r)
		if t < 0 {
			continue
		}
		tok := l.Room(r, t)
		// nothing to gain from moving a token out of a room settled below it
		if tok.Type() == r && l.Settled(r, t) {
			continue
		}

		entrance := g.Entrance(r)
		from := l.WithRoom(r, t, burrow.Empty)
		for _, pos := range FreeStops(l, entrance) {
			steps := t + 1 + abs(pos-entrance)
			out = append(out, Move{
				Next: from.WithCorridor(pos, tok),
				Cost: int64(steps) * g.Cost(tok),
			})
		}
	}
	return out
}

func appendEntries(out []Move, l burrow.Layout) []Move {
	g := l.Geometry()
	for c := 0; c < g.CorridorLen(); c++ {
		tok := l.Corridor(c)
		if tok == burrow.Empty {
			continue
		}
		r := tok.Type()
		entrance := g.Entrance(r)
		if Blocked(l, c, entrance) || !accepts(l, r, tok) {
			continue
		}

		p := deepestFree(l, r)
		if p < 0 {
			continue
		}
		steps := p + 1 + abs(c-entrance)
		out = append(out, Move{
			Next: l.WithCorridor(c, burrow.Empty).WithRoom(r, p, tok),
			Cost: int64(steps) * g.Cost(tok),
		})
	}
	return out
}

// accepts reports whether room r holds nothing but tok and empty slots.
func accepts(l burrow.Layout, r int, tok burrow.Token) bool {
	for d := 0; d < l.Geometry().Depth(); d++ {
		if t := l.Room(r, d); t != burrow.Empty && t != tok {
			return false
		}
	}
	return true
}

// deepestFree returns the lowest empty slot of room r, or -1 if it is full.
func deepestFree(l burrow.Layout, r int) int {
	for d := l.Geometry().Depth() - 1; d >= 0; d-- {
		if l.Room(r, d) == burrow.Empty {
			return d
		}
	}
	return -1
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
