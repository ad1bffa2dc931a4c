package rotate

import (
	"fmt"

	"github.com/matzehuels/transpose/pkg/grid"
	"github.com/matzehuels/transpose/pkg/grid/transform"
)

// Rotate applies r to g and returns a new grid. g is not modified.
func Rotate(r Request, g grid.Grid) (grid.Grid, error) {
	p, err := NewPlan(r)
	if err != nil {
		return nil, err
	}
	return p.Run(g)
}

// Run executes the plan on g.
func (p Plan) Run(g grid.Grid) (grid.Grid, error) {
	switch p.Shape {
	case ShapeRectangle:
		g = grid.Rectangularize(g)
	case ShapeSquare:
		g = grid.Squarize(g)
	}

	out, err := transform.ApplyOp(p.Op, g)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p.Op, err)
	}

	switch p.Expand {
	case ExpandDiamond:
		return transform.ExpandDiamond(out)
	case ExpandSkew:
		return transform.ExpandSkew(out)
	}
	return out, nil
}
