package rotate

import (
	"testing"

	"github.com/matzehuels/transpose/pkg/errors"
)

func TestParseAngle(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"90", 90, false},
		{"+90", 90, false},
		{"-45", -45, false},
		{" 135 ", 135, false},
		{"0", 0, false},
		{"-720", -720, false},

		{"30", 0, true},
		{"ninety", 0, true},
		{"", 0, true},
		{"45.0", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAngle(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseAngle(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, errors.ErrCodeInvalidAngle) {
					t.Errorf("ParseAngle(%q) code = %s, want %s", tt.in, errors.GetCode(err), errors.ErrCodeInvalidAngle)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseAngle(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestRequestString(t *testing.T) {
	tests := []struct {
		req  Request
		want string
	}{
		{Transpose(), "transpose"},
		{FlipX(), "xflip"},
		{FlipY(), "yflip"},
		{Angle(90, false), "rotate +90"},
		{Angle(-45, true), "rotate -45 (skew)"},
		{Request{Mode: Mode(7)}, "Mode(7)"},
	}
	for _, tt := range tests {
		if got := tt.req.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestRequestValidate(t *testing.T) {
	if err := Angle(135, false).Validate(); err != nil {
		t.Errorf("Validate(135) = %v", err)
	}
	if err := Angle(10, false).Validate(); !errors.Is(err, errors.ErrCodeInvalidAngle) {
		t.Errorf("Validate(10) = %v, want %s", err, errors.ErrCodeInvalidAngle)
	}
	if err := FlipX().Validate(); err != nil {
		t.Errorf("Validate(FlipX) = %v", err)
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in   string
		want Mode
	}{
		{"", ModeTranspose},
		{"transpose", ModeTranspose},
		{"XFlip", ModeFlipX},
		{"tac", ModeFlipX},
		{" yflip ", ModeFlipY},
		{"rotate", ModeAngle},
	}
	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseMode(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
	for _, m := range []Mode{ModeTranspose, ModeFlipX, ModeFlipY, ModeAngle} {
		if got, err := ParseMode(m.String()); err != nil || got != m {
			t.Errorf("ParseMode(%q) = %v, %v; want %v", m.String(), got, err, m)
		}
	}
	if _, err := ParseMode("spin"); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("ParseMode(spin) error = %v, want INVALID_INPUT", err)
	}
}
