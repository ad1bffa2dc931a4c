package symmetry

import (
	"fmt"
	"strings"
)

// Op names one of the eight symmetries of a square grid.
type Op int

const (
	Identity Op = iota
	Rotate90CW
	Rotate90CCW
	Rotate180
	FlipH // mirror left-right: each row reversed
	FlipV // mirror top-bottom: row order reversed
	Transpose
	AntiTranspose
)

var opNames = [...]string{
	Identity:      "identity",
	Rotate90CW:    "rotate90cw",
	Rotate90CCW:   "rotate90ccw",
	Rotate180:     "rotate180",
	FlipH:         "fliph",
	FlipV:         "flipv",
	Transpose:     "transpose",
	AntiTranspose: "antitranspose",
}

// generatorIndex records where each op appears in Generate(2). It is the
// only place that knows the positional layout.
var generatorIndex = [...]int{
	Rotate180:     0,
	FlipV:         1,
	FlipH:         2,
	Identity:      3,
	AntiTranspose: 4,
	Rotate90CCW:   5,
	Rotate90CW:    6,
	Transpose:     7,
}

var square = Generate(2)

// Ops returns all eight ops in declaration order.
func Ops() []Op {
	out := make([]Op, len(opNames))
	for i := range out {
		out[i] = Op(i)
	}
	return out
}

// Valid reports whether op is one of the declared constants.
func (op Op) Valid() bool { return op >= 0 && int(op) < len(opNames) }

func (op Op) String() string {
	if !op.Valid() {
		return fmt.Sprintf("Op(%d)", int(op))
	}
	return opNames[op]
}

// Matrix returns the 2×2 matrix for op. The result is a fresh copy.
// It panics if op is not valid.
func (op Op) Matrix() Matrix {
	if !op.Valid() {
		panic(fmt.Sprintf("symmetry: invalid op %d", int(op)))
	}
	m := square[generatorIndex[op]]
	return Matrix{{m[0][0], m[0][1]}, {m[1][0], m[1][1]}}
}

// Inverse returns the op that undoes op.
func (op Op) Inverse() Op {
	switch op {
	case Rotate90CW:
		return Rotate90CCW
	case Rotate90CCW:
		return Rotate90CW
	default:
		return op
	}
}

// ParseOp parses an op name as returned by String. Matching ignores case
// and dashes, so "Rotate-90-CW" is accepted.
func ParseOp(s string) (Op, error) {
	key := strings.ToLower(strings.ReplaceAll(s, "-", ""))
	for i, name := range opNames {
		if name == key {
			return Op(i), nil
		}
	}
	return 0, fmt.Errorf("unknown symmetry %q", s)
}

// Classify returns the op whose matrix equals m.
func Classify(m Matrix) (Op, bool) {
	for _, op := range Ops() {
		if op.Matrix().Equal(m) {
			return op, true
		}
	}
	return 0, false
}
