package grid

import "strings"

// Grid is a sequence of rows of text cells. Rows may differ in length
// until the grid is normalized.
type Grid [][]string

// New returns a rows×cols grid filled with empty cells.
func New(rows, cols int) Grid {
	if rows <= 0 || cols < 0 {
		return Grid{}
	}
	cells := make([]string, rows*cols)
	g := make(Grid, rows)
	for y := range g {
		g[y] = cells[y*cols : (y+1)*cols : (y+1)*cols]
	}
	return g
}

// FromRows builds a grid from row literals. Each row is copied so the
// caller keeps ownership of its slices.
func FromRows(rows ...[]string) Grid {
	g := make(Grid, len(rows))
	for i, r := range rows {
		g[i] = append([]string(nil), r...)
	}
	return g
}

// Height returns the number of rows.
func (g Grid) Height() int { return len(g) }

// Width returns the length of the longest row.
func (g Grid) Width() int {
	w := 0
	for _, row := range g {
		w = max(w, len(row))
	}
	return w
}

// Size returns the side length of the square that can hold g.
func (g Grid) Size() int { return max(g.Height(), g.Width()) }

// IsRectangular reports whether all rows have the same length.
// An empty grid is rectangular.
func (g Grid) IsRectangular() bool {
	if len(g) == 0 {
		return true
	}
	w := len(g[0])
	for _, row := range g[1:] {
		if len(row) != w {
			return false
		}
	}
	return true
}

// IsSquare reports whether g is rectangular with as many rows as columns.
// An empty grid is square.
func (g Grid) IsSquare() bool {
	return g.IsRectangular() && (len(g) == 0 || len(g[0]) == len(g))
}

// Clone returns a deep copy of g.
func (g Grid) Clone() Grid {
	if g == nil {
		return nil
	}
	out := make(Grid, len(g))
	for i, row := range g {
		out[i] = append([]string(nil), row...)
	}
	return out
}

// Equal reports whether g and o have identical shape and cells.
// Nil and empty grids are equal.
func (g Grid) Equal(o Grid) bool {
	if len(g) != len(o) {
		return false
	}
	for y := range g {
		if len(g[y]) != len(o[y]) {
			return false
		}
		for x := range g[y] {
			if g[y][x] != o[y][x] {
				return false
			}
		}
	}
	return true
}

// NonEmpty counts the cells that are not the empty string.
func (g Grid) NonEmpty() int {
	n := 0
	for _, row := range g {
		for _, c := range row {
			if c != "" {
				n++
			}
		}
	}
	return n
}

// String renders g one row per line with cells separated by a single
// space. Empty cells render as "·" so padding stays visible; it is meant
// for debugging and test failure messages.
func (g Grid) String() string {
	var b strings.Builder
	for y, row := range g {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x, c := range row {
			if x > 0 {
				b.WriteByte(' ')
			}
			if c == "" {
				c = "·"
			}
			b.WriteString(c)
		}
	}
	return b.String()
}
