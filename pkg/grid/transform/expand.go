package transform

import "github.com/matzehuels/transpose/pkg/grid"

// ExpandDiamond lays the anti-diagonals of the n×n grid g out as the rows
// of a (2n-1)×(2n-1) grid, spacing cells two columns apart so the result
// is diamond shaped.
func ExpandDiamond(g grid.Grid) (grid.Grid, error) {
	if err := requireSquare("diamond", g); err != nil {
		return nil, err
	}
	n := g.Height()
	return expand(g, 2*n-1, func(x, y int) int { return 2*x + y - n }), nil
}

// ExpandSkew is ExpandDiamond without the horizontal spread: the cells of
// each anti-diagonal are packed to the left, giving a (2n-1)×n
// parallelogram.
func ExpandSkew(g grid.Grid) (grid.Grid, error) {
	if err := requireSquare("skew", g); err != nil {
		return nil, err
	}
	n := g.Height()
	return expand(g, n, func(x, _ int) int { return x }), nil
}

// expand walks the anti-diagonals of the square grid g. Diagonal y (1 to
// 2n-1) becomes output row 2n-y-1; along it, x indexes the source row and
// y+x-n the source column. col picks the destination column.
func expand(g grid.Grid, cols int, col func(x, y int) int) grid.Grid {
	n := g.Height()
	if n == 0 {
		return grid.Grid{}
	}
	out := grid.New(2*n-1, cols)
	for y := 1; y < 2*n; y++ {
		for x := 0; x < n; x++ {
			src := y + x - n
			if src < 0 || src >= n {
				continue
			}
			out[2*n-y-1][col(x, y)] = g[x][src]
		}
	}
	return out
}
