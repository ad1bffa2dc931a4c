package symmetry

// Point is a grid coordinate: X is the column, Y the row.
type Point struct {
	X, Y int
}

// Map sends p through the 2×2 matrix m, centered on a square whose
// largest index on each axis is extent (side length minus one).
func Map(m Matrix, p Point, extent int) Point {
	v := MapN(m, []int{p.X, p.Y}, extent)
	return Point{X: v[0], Y: v[1]}
}

// MapN is Map for any dimension. It computes a such that
//
//	2a - e·1 = M·(2b - e·1)
//
// using only integer arithmetic.
func MapN(m Matrix, b []int, extent int) []int {
	c := make([]int, len(b))
	for j, v := range b {
		c[j] = 2*v - extent
	}
	a := m.Apply(c)
	for i, v := range a {
		a[i] = floorDiv(v+extent, 2)
	}
	return a
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
