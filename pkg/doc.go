// Package pkg holds the libraries behind the transpose command.
//
// transpose reads text tables and writes them transposed, flipped, or
// rotated by any multiple of 45 degrees. The libraries are layered:
//
//  1. [grid] - the cell grid and its normalization to rectangles and squares
//  2. [grid/symmetry] - the eight symmetries of a square as signed
//     permutation matrices, and the coordinate mapper
//  3. [grid/transform] - applying a symmetry to a grid, fast paths, and the
//     diamond and skew layouts for 45 degree turns
//  4. [rotate] - turning a request (transpose, flip, angle) into a plan
//  5. [columns] - splitting lines into cells by separator, pattern, fixed
//     width or quoting
//  6. [io] - text and JSON grid encodings
//  7. [pipeline] - read, split, transform and format for many inputs, with
//     an optional [cache]
//
// Supporting packages: [errors] for coded errors, [observability] for hooks
// and Prometheus metrics, [buildinfo] for version data.
//
// # Data Flow
//
//	text or JSON input
//	         ↓
//	    [columns] split lines into cells
//	         ↓
//	    [rotate] plan: normalize → symmetry → expand
//	         ↓
//	    [io] join cells or encode JSON
//
// # Quick Start
//
//	g := grid.FromRows([]string{"a", "b"}, []string{"c", "d"})
//	out, err := rotate.Rotate(rotate.Angle(90, false), g)
//	// out: [[b d] [a c]]
package pkg
