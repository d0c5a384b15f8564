package moves

import "github.com/katalvlaran/burrow/burrow"

// Blocked reports whether any corridor cell strictly between start and end is
// occupied. The walk steps from start towards end; both ends are excluded.
// Complexity: O(|end-start|).
func Blocked(l burrow.Layout, start, end int) bool {
	if start == end {
		return false
	}
	dir := 1
	if end < start {
		dir = -1
	}
	for i := start + dir; i != end; i += dir {
		if l.Corridor(i) != burrow.Empty {
			return true
		}
	}
	return false
}

// FreeStops returns the corridor cells a token leaving the room under entrance
// can wait on: walking outward in both directions until the wall or the first
// occupied cell (exclusive), skipping every entrance. Cells are returned in
// ascending order.
// Complexity: O(CorridorLen).
func FreeStops(l burrow.Layout, entrance int) []int {
	g := l.Geometry()
	stops := make([]int, 0, g.CorridorLen())

	// left, collected nearest-first and reversed below
	for i := entrance - 1; i >= 0 && l.Corridor(i) == burrow.Empty; i-- {
		if !g.IsEntrance(i) {
			stops = append(stops, i)
		}
	}
	for i, j := 0, len(stops)-1; i < j; i, j = i+1, j-1 {
		stops[i], stops[j] = stops[j], stops[i]
	}

	for i := entrance + 1; i < g.CorridorLen() && l.Corridor(i) == burrow.Empty; i++ {
		if !g.IsEntrance(i) {
			stops = append(stops, i)
		}
	}

	return stops
}
