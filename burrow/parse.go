package burrow

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// unfoldRows are inserted below the first room row when unfolding a
// four-room diagram.
var unfoldRows = [][]Token{
	{TokenOf(3), TokenOf(2), TokenOf(1), TokenOf(0)}, // #D#C#B#A#
	{TokenOf(3), TokenOf(1), TokenOf(0), TokenOf(2)}, // #D#B#A#C#
}

// ParseOptions configures Parse.
type ParseOptions struct {
	// Unfold inserts the rows #D#C#B#A# and #D#B#A#C# below the first room
	// row. Only valid for four-room diagrams.
	Unfold bool

	// Costs overrides the per-type step costs. Nil means DecimalCosts.
	Costs []int64
}

// ParseOption configures Parse via functional arguments.
type ParseOption func(*ParseOptions)

// WithUnfold enables unfolding of a four-room diagram.
func WithUnfold(on bool) ParseOption {
	return func(o *ParseOptions) {
		o.Unfold = on
	}
}

// WithCosts sets explicit per-type step costs.
func WithCosts(costs []int64) ParseOption {
	return func(o *ParseOptions) {
		o.Costs = costs
	}
}

// ParseString is Parse over a string.
func ParseString(s string, opts ...ParseOption) (Layout, error) {
	return Parse(strings.NewReader(s), opts...)
}

// Parse reads a burrow diagram and derives both its Geometry and its Layout.
// The corridor is the text between the walls of the second line; every column
// holding a token or '.' in the first room row is a room, and its entrance is
// the corridor cell right above it.
func Parse(r io.Reader, opts ...ParseOption) (Layout, error) {
	o := ParseOptions{}
	for _, opt := range opts {
		opt(&o)
	}

	lines, err := readLines(r)
	if err != nil {
		return Layout{}, err
	}
	if len(lines) < 4 {
		return Layout{}, fmt.Errorf("%w: need at least 4 lines, got %d", ErrParse, len(lines))
	}

	top := strings.TrimRight(lines[0], " ")
	width := len(top)
	if width < 3 || strings.Trim(top, "#") != "" {
		return Layout{}, fmt.Errorf("%w: line 1: top wall expected", ErrParse)
	}
	hall := strings.TrimRight(lines[1], " ")
	if len(hall) != width || hall[0] != '#' || hall[width-1] != '#' {
		return Layout{}, fmt.Errorf("%w: line 2: corridor must be %d wide and walled", ErrParse, width)
	}
	corridor := make([]Token, width-2)
	for i := range corridor {
		if corridor[i], err = ParseToken(hall[i+1]); err != nil {
			return Layout{}, fmt.Errorf("%w: line 2: %v", ErrParse, err)
		}
	}

	bottom := strings.TrimSpace(lines[len(lines)-1])
	if bottom == "" || strings.Trim(bottom, "#") != "" {
		return Layout{}, fmt.Errorf("%w: line %d: bottom wall expected", ErrParse, len(lines))
	}

	roomLines := lines[2 : len(lines)-1]
	var cols []int
	for c := 1; c < len(roomLines[0]) && c < width-1; c++ {
		if ch := roomLines[0][c]; ch != '#' && ch != ' ' {
			cols = append(cols, c)
		}
	}
	if len(cols) == 0 {
		return Layout{}, fmt.Errorf("%w: line 3: no rooms found", ErrParse)
	}

	rows := make([][]Token, 0, len(roomLines)+len(unfoldRows))
	for n, line := range roomLines {
		row, err := parseRoomRow(line, cols)
		if err != nil {
			return Layout{}, fmt.Errorf("%w: line %d: %v", ErrParse, n+3, err)
		}
		rows = append(rows, row)
		if n == 0 && o.Unfold {
			if len(cols) != len(unfoldRows[0]) {
				return Layout{}, fmt.Errorf("%w: unfold needs %d rooms, got %d", ErrParse, len(unfoldRows[0]), len(cols))
			}
			rows = append(rows, unfoldRows...)
		}
	}

	entrances := make([]int, len(cols))
	for i, c := range cols {
		entrances[i] = c - 1
	}
	costs := o.Costs
	if costs == nil {
		costs = DecimalCosts(len(cols))
	}
	g, err := NewGeometry(len(corridor), entrances, len(rows), costs)
	if err != nil {
		return Layout{}, err
	}

	// rows are indexed [depth][room]; NewLayout wants [room][depth].
	rooms := make([][]Token, len(cols))
	for r := range rooms {
		rooms[r] = make([]Token, len(rows))
		for d, row := range rows {
			rooms[r][d] = row[r]
		}
	}

	return NewLayout(g, corridor, rooms)
}

// parseRoomRow extracts the tokens at the room columns of one room row and
// rejects anything but walls and blanks elsewhere.
func parseRoomRow(line string, cols []int) ([]Token, error) {
	row := make([]Token, len(cols))
	next := 0
	for c := 0; c < len(line); c++ {
		if next < len(cols) && c == cols[next] {
			t, err := ParseToken(line[c])
			if err != nil {
				return nil, err
			}
			row[next] = t
			next++
			continue
		}
		if ch := line[c]; ch != '#' && ch != ' ' {
			return nil, fmt.Errorf("unexpected %q at column %d", ch, c+1)
		}
	}
	if next != len(cols) {
		return nil, fmt.Errorf("row has %d rooms, want %d", next, len(cols))
	}
	return row, nil
}

// readLines returns the lines of r without leading and trailing blank lines.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("burrow: read diagram: %w", err)
	}
	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines, nil
}
