package transform

import (
	"testing"

	"github.com/matzehuels/transpose/pkg/errors"
	"github.com/matzehuels/transpose/pkg/grid"
	"github.com/matzehuels/transpose/pkg/grid/symmetry"
)

func TestExpandDiamondIdentity(t *testing.T) {
	want := grid.Grid{
		{"", "", "c", "", ""},
		{"", "b", "", "f", ""},
		{"a", "", "e", "", "i"},
		{"", "d", "", "h", ""},
		{"", "", "g", "", ""},
	}
	got, err := ExpandDiamond(abc)
	if err != nil {
		t.Fatalf("ExpandDiamond() error = %v", err)
	}
	if !got.Equal(want) {
		t.Errorf("ExpandDiamond() =\n%v\nwant\n%v", got, want)
	}
}

func TestExpandDiamondAfterClockwise(t *testing.T) {
	// The worked example: -45° is a clockwise quarter turn plus a diamond.
	turned, err := Apply(symmetry.Rotate90CW.Matrix(), abc)
	if err != nil {
		t.Fatal(err)
	}
	want := grid.Grid{
		{"", "", "a", "", ""},
		{"", "d", "", "b", ""},
		{"g", "", "e", "", "c"},
		{"", "h", "", "f", ""},
		{"", "", "i", "", ""},
	}
	got, err := ExpandDiamond(turned)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(want) {
		t.Errorf("got\n%v\nwant\n%v", got, want)
	}
	for y, c := range []string{"a", "", "e", "", "i"} {
		if got[y][2] != c {
			t.Errorf("center column row %d = %q, want %q", y, got[y][2], c)
		}
	}
}

func TestExpandSkew(t *testing.T) {
	want := grid.Grid{
		{"c", "", ""},
		{"b", "f", ""},
		{"a", "e", "i"},
		{"", "d", "h"},
		{"", "", "g"},
	}
	got, err := ExpandSkew(abc)
	if err != nil {
		t.Fatalf("ExpandSkew() error = %v", err)
	}
	if !got.Equal(want) {
		t.Errorf("ExpandSkew() =\n%v\nwant\n%v", got, want)
	}
}

func TestExpandCounts(t *testing.T) {
	for n := 1; n <= 8; n++ {
		in := distinct(n)

		d, err := ExpandDiamond(in)
		if err != nil {
			t.Fatal(err)
		}
		if d.Height() != 2*n-1 || d.Width() != 2*n-1 || !d.IsRectangular() {
			t.Errorf("n=%d diamond shape %dx%d, want %dx%d", n, d.Height(), d.Width(), 2*n-1, 2*n-1)
		}
		if got := d.NonEmpty(); got != n*n {
			t.Errorf("n=%d diamond has %d cells, want %d", n, got, n*n)
		}
		if empty := (2*n-1)*(2*n-1) - d.NonEmpty(); empty != (2*n-1)*(2*n-1)-n*n {
			t.Errorf("n=%d diamond has %d empty cells", n, empty)
		}

		s, err := ExpandSkew(in)
		if err != nil {
			t.Fatal(err)
		}
		if s.Height() != 2*n-1 || s.Width() != n || !s.IsRectangular() {
			t.Errorf("n=%d skew shape %dx%d, want %dx%d", n, s.Height(), s.Width(), 2*n-1, n)
		}
		if got := s.NonEmpty(); got != n*n {
			t.Errorf("n=%d skew has %d cells, want %d", n, got, n*n)
		}

		for _, out := range []grid.Grid{d, s} {
			seen := make(map[string]bool)
			for _, row := range out {
				filled := 0
				for _, c := range row {
					if c == "" {
						continue
					}
					filled++
					if seen[c] {
						t.Errorf("n=%d cell %q appears twice", n, c)
					}
					seen[c] = true
				}
				if filled > n {
					t.Errorf("n=%d row has %d cells, want at most %d", n, filled, n)
				}
			}
		}
	}
}

func TestExpandPreconditions(t *testing.T) {
	for name, fn := range map[string]func(grid.Grid) (grid.Grid, error){
		"diamond": ExpandDiamond,
		"skew":    ExpandSkew,
	} {
		t.Run(name, func(t *testing.T) {
			if _, err := fn(grid.Grid{{"a", "b"}}); !errors.Is(err, errors.ErrCodeNotSquare) {
				t.Errorf("non-square error = %v, want %s", err, errors.ErrCodeNotSquare)
			}
			if _, err := fn(grid.Grid{{"a", "b"}, {"c"}}); !errors.Is(err, errors.ErrCodeNotRectangular) {
				t.Errorf("ragged error = %v, want %s", err, errors.ErrCodeNotRectangular)
			}
			out, err := fn(grid.Grid{})
			if err != nil || out.Height() != 0 {
				t.Errorf("empty input = %v, %v; want empty grid", out, err)
			}
		})
	}
}
