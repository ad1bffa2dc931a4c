// Package symmetry enumerates the symmetries of a square grid and maps
// coordinates through them.
//
// # Overview
//
// Every reflection, rotation by a multiple of 90°, and transposition of an
// n-dimensional square grid is a signed permutation matrix: each row and
// each column holds exactly one non-zero entry, and that entry is +1 or -1.
// [Generate] produces all n!·2^n of them in a fixed order. For n = 2 that
// is the dihedral group of the square, eight elements:
//
//	index  op              matrix
//	0      rotate180       [[-1 0] [0 -1]]
//	1      flipv           [[ 1 0] [0 -1]]
//	2      fliph           [[-1 0] [0  1]]
//	3      identity        [[ 1 0] [0  1]]
//	4      antitranspose   [[0 -1] [-1 0]]
//	5      rotate90ccw     [[0  1] [-1 0]]
//	6      rotate90cw      [[0 -1] [ 1 0]]
//	7      transpose       [[0  1] [ 1 0]]
//
// Callers should not index into that sequence. [Op] names each element and
// [Op.Matrix] looks it up, so dispatch happens on the tag.
//
// # Centered Mapping
//
// A matrix acts on coordinates relative to the grid's center, not its
// corner. The center of an axis with indices 0..e lies at e/2, which is a
// half-integer when the side length is even. [Map] therefore works in
// doubled units:
//
//	c = 2*p - e        // centered, always an integer
//	c' = M * c
//	p' = floor((c' + e) / 2)
//
// The floor division rounds toward negative infinity; Go's / truncates, so
// the package uses its own floorDiv. For every matrix from [Generate] the
// map is a bijection of [0,e]² onto itself.
package symmetry
