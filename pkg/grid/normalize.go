package grid

// Rectangularize returns a copy of g in which every row is right-padded
// with empty cells to the length of the longest row.
func Rectangularize(g Grid) Grid {
	return pad(g, len(g), g.Width())
}

// Squarize returns a copy of g padded to size×size, size being the larger
// of its height and width. Empty rows are appended first and only then are
// all rows right-padded, so cells never move.
func Squarize(g Grid) Grid {
	size := g.Size()
	return pad(g, size, size)
}

// pad copies g into a rows×cols grid. rows and cols must be at least the
// current height and width.
func pad(g Grid, rows, cols int) Grid {
	out := make(Grid, rows)
	for y := range out {
		row := make([]string, cols)
		if y < len(g) {
			copy(row, g[y])
		}
		out[y] = row
	}
	return out
}
