package transform

import (
	"github.com/matzehuels/transpose/pkg/errors"
	"github.com/matzehuels/transpose/pkg/grid"
	"github.com/matzehuels/transpose/pkg/grid/symmetry"
)

// Apply returns the grid obtained by moving every cell of g through m,
// centered on g's midpoint.
//
// The output has g's width as its height when m swaps axes. g must be
// rectangular; if m negates an axis it must also be square, because the
// reflection is taken about the center of the common extent.
func Apply(m symmetry.Matrix, g grid.Grid) (grid.Grid, error) {
	if m.Dim() != 2 || !m.IsSignedPermutation() {
		return nil, errors.New(errors.ErrCodeInvalidInput, "apply: %v is not a 2x2 signed permutation matrix", m)
	}
	if err := requireRectangular("apply", g); err != nil {
		return nil, err
	}
	if m.Reflects() {
		if err := requireSquare("apply", g); err != nil {
			return nil, err
		}
	}

	h := g.Height()
	w := g.Width()
	outRows, outCols := h, w
	if m.SwapsAxes() {
		outRows, outCols = w, h
	}
	out := grid.New(outRows, outCols)
	if h == 0 || w == 0 {
		return out, nil
	}

	extent := max(w, h) - 1
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			p := symmetry.Map(m, symmetry.Point{X: x, Y: y}, extent)
			out[p.Y][p.X] = g[y][x]
		}
	}
	return out, nil
}

// ApplyOp applies op to g, using the dedicated implementation for
// transpose and the two flips and [Apply] for everything else.
func ApplyOp(op symmetry.Op, g grid.Grid) (grid.Grid, error) {
	switch op {
	case symmetry.Transpose:
		return Transpose(g)
	case symmetry.FlipH:
		return FlipH(g), nil
	case symmetry.FlipV:
		return FlipV(g), nil
	case symmetry.Identity:
		if err := requireRectangular("identity", g); err != nil {
			return nil, err
		}
		return g.Clone(), nil
	}
	if !op.Valid() {
		return nil, errors.New(errors.ErrCodeInternal, "apply: unknown op %d", int(op))
	}
	return Apply(op.Matrix(), g)
}

func requireRectangular(op string, g grid.Grid) error {
	if !g.IsRectangular() {
		return errors.New(errors.ErrCodeNotRectangular, "%s: ragged grid (%d rows, longest %d)", op, g.Height(), g.Width())
	}
	return nil
}

func requireSquare(op string, g grid.Grid) error {
	if err := requireRectangular(op, g); err != nil {
		return err
	}
	if !g.IsSquare() {
		return errors.New(errors.ErrCodeNotSquare, "%s: grid is %dx%d, want square", op, g.Height(), g.Width())
	}
	return nil
}
