// Package transform reshapes grids: it applies symmetry matrices and
// expands quarter-turned squares into the sparse layouts that stand in for
// 45° rotations.
//
// # Overview
//
// [Apply] is the generic path. It sends every source cell through
// [symmetry.Map] and writes it to the destination coordinate. The output is
// always a fresh grid; the input is never modified or aliased.
//
// Three operations are common enough to get their own code:
//
//   - [Transpose] swaps rows and columns of any rectangular grid
//   - [FlipH] reverses each row (and tolerates ragged rows)
//   - [FlipV] reverses the order of the rows (and tolerates ragged rows)
//
// On square input each produces exactly what [Apply] produces with the
// corresponding [symmetry.Op] matrix. [ApplyOp] picks the fast path when
// there is one.
//
// # Diamond and Skew Expansion
//
// A 45° rotation has no exact representation on a square lattice. Instead
// the grid is first turned by a multiple of 90° and then each of its
// anti-diagonals is laid out as an output row:
//
//	                 c             c
//	a b c           b f            b f
//	d e f   ->     a e i    or     a e i
//	g h i           d h              d h
//	                 g                   g
//
//	             ExpandDiamond     ExpandSkew
//
// [ExpandDiamond] spreads each row across (2n-1) columns, leaving a gap
// between neighbours, so the result is symmetric about its vertical axis.
// [ExpandSkew] packs the same cells to the left in n columns.
//
// # Preconditions
//
// Operations that need a square or rectangular grid return an error coded
// NOT_SQUARE or NOT_RECTANGULAR instead of truncating. Normalize input with
// [grid.Squarize] or [grid.Rectangularize] first. Empty grids are valid and
// produce empty grids.
//
// [symmetry.Map]: github.com/matzehuels/transpose/pkg/grid/symmetry.Map
// [symmetry.Op]: github.com/matzehuels/transpose/pkg/grid/symmetry.Op
// [grid.Squarize]: github.com/matzehuels/transpose/pkg/grid.Squarize
// [grid.Rectangularize]: github.com/matzehuels/transpose/pkg/grid.Rectangularize
package transform
