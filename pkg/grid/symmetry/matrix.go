package symmetry

import (
	"fmt"
	"strings"
)

// Matrix is a square integer matrix. The matrices this package produces
// are signed permutation matrices.
type Matrix [][]int

// Dim returns the dimension of m.
func (m Matrix) Dim() int { return len(m) }

// Apply returns m·v. v must have length m.Dim().
func (m Matrix) Apply(v []int) []int {
	out := make([]int, len(m))
	for i, row := range m {
		s := 0
		for j, a := range row {
			s += a * v[j]
		}
		out[i] = s
	}
	return out
}

// Mul returns the product m·o, the transform that applies o first and
// then m.
func (m Matrix) Mul(o Matrix) Matrix {
	n := len(m)
	out := make(Matrix, n)
	for i := range out {
		out[i] = make([]int, n)
		for j := 0; j < n; j++ {
			s := 0
			for k := 0; k < n; k++ {
				s += m[i][k] * o[k][j]
			}
			out[i][j] = s
		}
	}
	return out
}

// Transpose returns mᵀ. For a signed permutation matrix this is also its
// inverse.
func (m Matrix) Transpose() Matrix {
	n := len(m)
	out := make(Matrix, n)
	for i := range out {
		out[i] = make([]int, n)
		for j := range out[i] {
			out[i][j] = m[j][i]
		}
	}
	return out
}

// Equal reports whether m and o have the same entries.
func (m Matrix) Equal(o Matrix) bool {
	if len(m) != len(o) {
		return false
	}
	for i := range m {
		if len(m[i]) != len(o[i]) {
			return false
		}
		for j := range m[i] {
			if m[i][j] != o[i][j] {
				return false
			}
		}
	}
	return true
}

// IsSignedPermutation reports whether m is square and every row and column
// holds exactly one entry, equal to +1 or -1, with all others zero.
func (m Matrix) IsSignedPermutation() bool {
	n := len(m)
	colSeen := make([]bool, n)
	for _, row := range m {
		if len(row) != n {
			return false
		}
		found := false
		for j, a := range row {
			switch a {
			case 0:
			case 1, -1:
				if found || colSeen[j] {
					return false
				}
				found, colSeen[j] = true, true
			default:
				return false
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// SwapsAxes reports whether m moves axis 0 onto another axis, i.e. whether
// its permutation part is not the identity. For 2×2 matrices this means the
// output grid has the input's width as its height.
func (m Matrix) SwapsAxes() bool {
	for i, row := range m {
		if row[i] == 0 {
			return true
		}
	}
	return false
}

// Reflects reports whether any axis is negated.
func (m Matrix) Reflects() bool {
	for _, row := range m {
		for _, a := range row {
			if a < 0 {
				return true
			}
		}
	}
	return false
}

// Det returns the determinant of a signed permutation matrix: the product
// of its signs times the parity of its permutation.
func (m Matrix) Det() int {
	n := len(m)
	perm := make([]int, n)
	det := 1
	for i, row := range m {
		for j, a := range row {
			if a != 0 {
				perm[i] = j
				det *= a
			}
		}
	}
	// count inversions for the parity
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if perm[i] > perm[j] {
				det = -det
			}
		}
	}
	return det
}

// String formats m as nested brackets, e.g. "[[0 1] [-1 0]]".
func (m Matrix) String() string {
	rows := make([]string, len(m))
	for i, row := range m {
		rows[i] = fmt.Sprint(row)
	}
	return "[" + strings.Join(rows, " ") + "]"
}

// Generate returns every n×n signed permutation matrix, n!·2^n in total.
//
// The order is fixed: permutations of the axes in lexicographic order form
// the outer loop, sign bitmasks 0..2^n-1 the inner loop. Bit j of the mask
// gives row j a +1 when set and a -1 when clear. Row j of the matrix has
// its entry in column perm[j].
func Generate(n int) []Matrix {
	if n <= 0 {
		return nil
	}
	var out []Matrix
	for _, perm := range permutations(n) {
		for mask := 0; mask < 1<<n; mask++ {
			m := make(Matrix, n)
			for j := range m {
				m[j] = make([]int, n)
				m[j][perm[j]] = 2*((mask>>j)&1) - 1
			}
			out = append(out, m)
		}
	}
	return out
}

// permutations returns all orderings of 0..n-1 in lexicographic order.
func permutations(n int) [][]int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	out := [][]int{append([]int(nil), p...)}
	for nextPermutation(p) {
		out = append(out, append([]int(nil), p...))
	}
	return out
}

// nextPermutation rearranges p into its lexicographic successor and reports
// whether one existed.
func nextPermutation(p []int) bool {
	i := len(p) - 2
	for i >= 0 && p[i] >= p[i+1] {
		i--
	}
	if i < 0 {
		return false
	}
	j := len(p) - 1
	for p[j] <= p[i] {
		j--
	}
	p[i], p[j] = p[j], p[i]
	for l, r := i+1, len(p)-1; l < r; l, r = l+1, r-1 {
		p[l], p[r] = p[r], p[l]
	}
	return true
}
