package rotate

import (
	"github.com/matzehuels/transpose/pkg/errors"
	"github.com/matzehuels/transpose/pkg/grid/symmetry"
)

// Expansion selects the 45° layout applied after the symmetry.
type Expansion int

const (
	ExpandNone Expansion = iota
	ExpandDiamond
	ExpandSkew
)

func (e Expansion) String() string {
	switch e {
	case ExpandDiamond:
		return "diamond"
	case ExpandSkew:
		return "skew"
	}
	return "none"
}

// Shape is the normalization applied before the symmetry.
type Shape int

const (
	ShapeAsIs Shape = iota
	ShapeRectangle
	ShapeSquare
)

// Plan is the sequence of grid operations for one request.
type Plan struct {
	Shape  Shape
	Op     symmetry.Op
	Expand Expansion
}

func (p Plan) String() string {
	if p.Expand == ExpandNone {
		return p.Op.String()
	}
	return p.Op.String() + "+" + p.Expand.String()
}

// NewPlan selects the operations for r.
func NewPlan(r Request) (Plan, error) {
	switch r.Mode {
	case ModeFlipX:
		return Plan{Shape: ShapeAsIs, Op: symmetry.FlipV}, nil
	case ModeFlipY:
		return Plan{Shape: ShapeAsIs, Op: symmetry.FlipH}, nil
	case ModeTranspose:
		return Plan{Shape: ShapeRectangle, Op: symmetry.Transpose}, nil
	case ModeAngle:
	default:
		return Plan{}, errors.New(errors.ErrCodeInternal, "unknown rotation mode %d", int(r.Mode))
	}

	if err := errors.ValidateAngle(r.Angle); err != nil {
		return Plan{}, err
	}

	p := Plan{Shape: ShapeSquare}
	angle := r.Angle
	if angle%90 != 0 {
		angle -= 45
		p.Expand = ExpandDiamond
		if r.Skew {
			p.Expand = ExpandSkew
		}
	}

	switch mod(angle, 360) {
	case 0:
		p.Op = symmetry.Identity
	case 90:
		p.Op = symmetry.Rotate90CCW
	case 180:
		p.Op = symmetry.Rotate180
	case 270:
		p.Op = symmetry.Rotate90CW
	default:
		return Plan{}, errors.New(errors.ErrCodeInternal, "no symmetry for rotation %d", r.Angle)
	}
	return p, nil
}

// mod returns a modulo b in [0, b).
func mod(a, b int) int {
	r := a % b
	if r < 0 {
		r += b
	}
	return r
}
