package symmetry

import (
	"fmt"
	"testing"
)

func TestOpMatrixMatchesGenerator(t *testing.T) {
	seen := make(map[string]Op)
	for _, op := range Ops() {
		m := op.Matrix()
		key := m.String()
		if prev, ok := seen[key]; ok {
			t.Errorf("%s and %s share matrix %s", prev, op, key)
		}
		seen[key] = op

		found := false
		for _, g := range Generate(2) {
			if g.Equal(m) {
				found = true
			}
		}
		if !found {
			t.Errorf("%s matrix %v not produced by Generate(2)", op, m)
		}
	}
	if len(seen) != 8 {
		t.Errorf("got %d distinct op matrices, want 8", len(seen))
	}
}

func TestOpMatrixIsCopy(t *testing.T) {
	m := Identity.Matrix()
	m[0][0] = 7
	if Identity.Matrix()[0][0] != 1 {
		t.Error("mutating a returned matrix changed the op table")
	}
}

func TestOpInverse(t *testing.T) {
	for _, op := range Ops() {
		t.Run(op.String(), func(t *testing.T) {
			got := op.Matrix().Mul(op.Inverse().Matrix())
			if !got.Equal(Identity.Matrix()) {
				t.Errorf("%s · %s = %v, want identity", op, op.Inverse(), got)
			}
		})
	}
}

func TestRotationComposition(t *testing.T) {
	cw := Rotate90CW.Matrix()
	if got := cw.Mul(cw); !got.Equal(Rotate180.Matrix()) {
		t.Errorf("cw·cw = %v, want rotate180", got)
	}
	if got := cw.Mul(cw).Mul(cw); !got.Equal(Rotate90CCW.Matrix()) {
		t.Errorf("cw³ = %v, want rotate90ccw", got)
	}
	if got := FlipH.Matrix().Mul(FlipV.Matrix()); !got.Equal(Rotate180.Matrix()) {
		t.Errorf("fliph·flipv = %v, want rotate180", got)
	}
	if got := Transpose.Matrix().Mul(Rotate180.Matrix()); !got.Equal(AntiTranspose.Matrix()) {
		t.Errorf("transpose·rotate180 = %v, want antitranspose", got)
	}
}

func TestParseOp(t *testing.T) {
	tests := []struct {
		in      string
		want    Op
		wantErr bool
	}{
		{"identity", Identity, false},
		{"Rotate-90-CW", Rotate90CW, false},
		{"rotate90ccw", Rotate90CCW, false},
		{"TRANSPOSE", Transpose, false},
		{"anti-transpose", AntiTranspose, false},
		{"spin", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseOp(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseOp(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseOp(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	for _, op := range Ops() {
		got, ok := Classify(op.Matrix())
		if !ok || got != op {
			t.Errorf("Classify(%s matrix) = %s, %v", op, got, ok)
		}
	}
	if _, ok := Classify(Matrix{{2, 0}, {0, 2}}); ok {
		t.Error("Classify accepted a scaling matrix")
	}
}

func TestOpStringInvalid(t *testing.T) {
	if got := Op(42).String(); got != "Op(42)" {
		t.Errorf("String() = %q, want %q", got, "Op(42)")
	}
	defer func() {
		if recover() == nil {
			t.Error("Matrix() on invalid op did not panic")
		}
	}()
	_ = Op(-1).Matrix()
}

func ExampleOp_Matrix() {
	for _, op := range []Op{Identity, Rotate90CCW, FlipH} {
		fmt.Println(op, op.Matrix())
	}
	// Output:
	// identity [[1 0] [0 1]]
	// rotate90ccw [[0 1] [-1 0]]
	// fliph [[-1 0] [0 1]]
}
