package rotate

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/matzehuels/transpose/pkg/errors"
)

// Mode selects the kind of transformation a Request asks for.
type Mode int

const (
	// ModeTranspose swaps rows and columns. It is the zero value.
	ModeTranspose Mode = iota
	// ModeFlipX mirrors about the x axis: the order of rows is reversed.
	ModeFlipX
	// ModeFlipY mirrors about the y axis: every row is reversed.
	ModeFlipY
	// ModeAngle rotates by Request.Angle degrees.
	ModeAngle
)

func (m Mode) String() string {
	switch m {
	case ModeTranspose:
		return "transpose"
	case ModeFlipX:
		return "xflip"
	case ModeFlipY:
		return "yflip"
	case ModeAngle:
		return "rotate"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode returns the Mode named by s, as printed by Mode.String.
// "tac" is accepted for ModeFlipX.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "transpose":
		return ModeTranspose, nil
	case "xflip", "tac":
		return ModeFlipX, nil
	case "yflip":
		return ModeFlipY, nil
	case "rotate":
		return ModeAngle, nil
	}
	return 0, errors.New(errors.ErrCodeInvalidInput, "unknown operation %q (want transpose, xflip, yflip or rotate)", s)
}

// Request describes the transformation to perform.
type Request struct {
	Mode  Mode
	Angle int  // degrees, counter-clockwise positive; only for ModeAngle
	Skew  bool // render odd multiples of 45 skewed instead of as a diamond
}

// Transpose returns the default request.
func Transpose() Request { return Request{Mode: ModeTranspose} }

// FlipX returns a request that reverses the order of rows.
func FlipX() Request { return Request{Mode: ModeFlipX} }

// FlipY returns a request that reverses every row.
func FlipY() Request { return Request{Mode: ModeFlipY} }

// Angle returns a request to rotate by deg degrees.
func Angle(deg int, skew bool) Request {
	return Request{Mode: ModeAngle, Angle: deg, Skew: skew}
}

// Validate checks the request's angle.
func (r Request) Validate() error {
	if r.Mode == ModeAngle {
		return errors.ValidateAngle(r.Angle)
	}
	return nil
}

func (r Request) String() string {
	if r.Mode != ModeAngle {
		return r.Mode.String()
	}
	s := fmt.Sprintf("rotate %+d", r.Angle)
	if r.Skew {
		s += " (skew)"
	}
	return s
}

// ParseAngle parses a signed angle such as "+90", "-45" or "135" and
// checks that it is a multiple of 45.
func ParseAngle(s string) (int, error) {
	deg, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeInvalidAngle, err, "invalid rotation %q", s)
	}
	if err := errors.ValidateAngle(deg); err != nil {
		return 0, err
	}
	return deg, nil
}
