package rotate

import (
	"fmt"
	"testing"

	"github.com/matzehuels/transpose/pkg/grid"
)

var abc = grid.Grid{
	{"a", "b", "c"},
	{"d", "e", "f"},
	{"g", "h", "i"},
}

func mustRotate(t *testing.T, r Request, g grid.Grid) grid.Grid {
	t.Helper()
	out, err := Rotate(r, g)
	if err != nil {
		t.Fatalf("Rotate(%v) error = %v", r, err)
	}
	return out
}

func TestRotateScenarios(t *testing.T) {
	tests := []struct {
		name string
		req  Request
		in   grid.Grid
		want grid.Grid
	}{
		{
			name: "simple transpose",
			req:  Transpose(),
			in:   grid.Grid{{"a", "b", "c"}, {"d", "e", "f"}},
			want: grid.Grid{{"a", "d"}, {"b", "e"}, {"c", "f"}},
		},
		{
			name: "ragged transpose pads",
			req:  Transpose(),
			in:   grid.Grid{{"a", "b", "c"}, {"d"}},
			want: grid.Grid{{"a", "d"}, {"b", ""}, {"c", ""}},
		},
		{
			name: "plus 90 is counter-clockwise",
			req:  Angle(90, false),
			in:   grid.Grid{{"a", "b"}, {"c", "d"}},
			want: grid.Grid{{"b", "d"}, {"a", "c"}},
		},
		{
			name: "minus 90 is clockwise",
			req:  Angle(-90, false),
			in:   grid.Grid{{"a", "b"}, {"c", "d"}},
			want: grid.Grid{{"c", "a"}, {"d", "b"}},
		},
		{
			name: "180",
			req:  Angle(180, false),
			in:   abc,
			want: grid.Grid{{"i", "h", "g"}, {"f", "e", "d"}, {"c", "b", "a"}},
		},
		{
			name: "zero squarizes only",
			req:  Angle(0, false),
			in:   grid.Grid{{"a", "b"}},
			want: grid.Grid{{"a", "b"}, {"", ""}},
		},
		{
			name: "minus 45 diamond",
			req:  Angle(-45, false),
			in:   abc,
			want: grid.Grid{
				{"", "", "a", "", ""},
				{"", "d", "", "b", ""},
				{"g", "", "e", "", "c"},
				{"", "h", "", "f", ""},
				{"", "", "i", "", ""},
			},
		},
		{
			name: "minus 45 skew",
			req:  Angle(-45, true),
			in:   abc,
			want: grid.Grid{
				{"a", "", ""},
				{"d", "b", ""},
				{"g", "e", "c"},
				{"", "h", "f"},
				{"", "", "i"},
			},
		},
		{
			name: "plus 45 diamond",
			req:  Angle(45, false),
			in:   abc,
			want: grid.Grid{
				{"", "", "c", "", ""},
				{"", "b", "", "f", ""},
				{"a", "", "e", "", "i"},
				{"", "d", "", "h", ""},
				{"", "", "g", "", ""},
			},
		},
		{
			name: "xflip reverses rows",
			req:  FlipX(),
			in:   grid.Grid{{"a", "b"}, {"c"}},
			want: grid.Grid{{"c"}, {"a", "b"}},
		},
		{
			name: "yflip reverses lines",
			req:  FlipY(),
			in:   grid.Grid{{"a", "b"}, {"c"}},
			want: grid.Grid{{"b", "a"}, {"c"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mustRotate(t, tt.req, tt.in)
			if !got.Equal(tt.want) {
				t.Errorf("Rotate(%v) =\n%v\nwant\n%v", tt.req, got, tt.want)
			}
		})
	}
}

func TestRotateFullTurn(t *testing.T) {
	inputs := []grid.Grid{
		abc,
		{{"a", "b"}, {"c", "d"}},
		{{"1", "2", "3", "4"}, {"5", "6", "7", "8"}, {"9", "10", "11", "12"}, {"13", "14", "15", "16"}},
	}
	for _, k := range []int{0, 90, 180, 270, -90, 450} {
		for _, in := range inputs {
			t.Run(fmt.Sprintf("%d/%dx%d", k, in.Height(), in.Width()), func(t *testing.T) {
				once := mustRotate(t, Angle(k, false), in)
				back := mustRotate(t, Angle(360-k, false), once)
				if !back.Equal(in) {
					t.Errorf("rotating %d then %d =\n%v\nwant\n%v", k, 360-k, back, in)
				}
			})
		}
	}
}

func TestRotateFullTurnNonSquare(t *testing.T) {
	in := grid.Grid{{"a", "b", "c"}, {"d", "e"}}
	back := mustRotate(t, Angle(-90, false), mustRotate(t, Angle(90, false), in))
	// Padding from squarize remains; the original cells are back in place.
	for y, row := range in {
		for x, c := range row {
			if back[y][x] != c {
				t.Errorf("cell (%d,%d) = %q, want %q", x, y, back[y][x], c)
			}
		}
	}
	if back.NonEmpty() != 5 {
		t.Errorf("NonEmpty() = %d, want 5", back.NonEmpty())
	}
}

func TestRotateFlipInvolution(t *testing.T) {
	in := grid.Grid{{"a", "b", "c"}, {"d"}, {"e", "f"}}
	for _, r := range []Request{FlipX(), FlipY()} {
		if got := mustRotate(t, r, mustRotate(t, r, in)); !got.Equal(in) {
			t.Errorf("%v twice =\n%v\nwant\n%v", r, got, in)
		}
	}
}

func TestRotateEmpty(t *testing.T) {
	for _, r := range []Request{Transpose(), FlipX(), FlipY(), Angle(90, false), Angle(-45, false), Angle(45, true)} {
		got := mustRotate(t, r, grid.Grid{})
		if got.Height() != 0 {
			t.Errorf("Rotate(%v, empty) height = %d, want 0", r, got.Height())
		}
	}
}

func TestRotateDoesNotModifyInput(t *testing.T) {
	in := grid.Grid{{"a", "b", "c"}, {"d"}}
	orig := in.Clone()
	for _, r := range []Request{Transpose(), Angle(90, false), Angle(45, false), FlipY()} {
		mustRotate(t, r, in)
		if !in.Equal(orig) {
			t.Fatalf("Rotate(%v) modified its input: %v", r, in)
		}
	}
}

func TestRotateInvalidAngle(t *testing.T) {
	if _, err := Rotate(Angle(60, false), abc); err == nil {
		t.Error("Rotate(60) succeeded, want error")
	}
}
