// Package grid provides the two-dimensional cell grid that transpose
// reshapes, together with the normalizers that pad ragged input.
//
// # Overview
//
// A [Grid] is an ordered slice of rows, each row an ordered slice of text
// cells. Cells are opaque: nothing in this package or its subpackages
// inspects their content, they are only moved around. The empty string is
// the padding value.
//
// Grids built from real text input are usually ragged. Two normalizers
// bring them into the shape the transforms need:
//
//   - [Rectangularize] right-pads every row to the longest row's length.
//     The plain transpose path only needs a rectangle.
//   - [Squarize] first appends empty rows until there are at least as many
//     rows as columns, then rectangularizes. The result is size×size with
//     size = max(height, width). Rotations and flips need a square because
//     they map both axes through one common extent.
//
// Normalization never removes or reorders cells; it only appends.
//
// # Coordinates
//
// Cell (x, y) is column x of row y, zero based. This matches the
// [symmetry.Point] convention used by the coordinate mapper.
//
// # Subpackages
//
//   - [symmetry]: signed permutation matrices and the centered mapper
//   - [transform]: applying a matrix to a grid and the 45° expanders
//
// [symmetry]: github.com/matzehuels/transpose/pkg/grid/symmetry
// [symmetry.Point]: github.com/matzehuels/transpose/pkg/grid/symmetry.Point
// [transform]: github.com/matzehuels/transpose/pkg/grid/transform
package grid
