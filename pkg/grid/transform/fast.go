package transform

import "github.com/matzehuels/transpose/pkg/grid"

// Transpose swaps rows and columns. g must be rectangular.
func Transpose(g grid.Grid) (grid.Grid, error) {
	if err := requireRectangular("transpose", g); err != nil {
		return nil, err
	}
	h, w := g.Height(), g.Width()
	out := grid.New(w, h)
	for y, row := range g {
		for x, c := range row {
			out[x][y] = c
		}
	}
	return out, nil
}

// FlipH mirrors g left to right by reversing every row. Rows are reversed
// independently, so ragged grids keep their row lengths.
func FlipH(g grid.Grid) grid.Grid {
	out := make(grid.Grid, len(g))
	for y, row := range g {
		r := make([]string, len(row))
		for x, c := range row {
			r[len(row)-1-x] = c
		}
		out[y] = r
	}
	return out
}

// FlipV mirrors g top to bottom by reversing the row order. This is what
// tac(1) does to lines.
func FlipV(g grid.Grid) grid.Grid {
	out := make(grid.Grid, len(g))
	for y, row := range g {
		out[len(g)-1-y] = append([]string(nil), row...)
	}
	return out
}
