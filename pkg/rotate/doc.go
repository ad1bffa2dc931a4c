// Package rotate turns a user's rotation request into grid operations.
//
// # Overview
//
// A [Request] says what the user asked for: a plain transpose (the
// default), a flip about the x or y axis, or a rotation by a multiple of
// 45 degrees, optionally rendered skewed instead of as a diamond. [Rotate]
// normalizes the grid, applies the selected symmetry, and expands the
// result when the angle is an odd multiple of 45.
//
// # Selection
//
// [NewPlan] is a pure decision table:
//
//	request                       op             expansion
//	flip x (tac)                  flipv          none
//	flip y (reverse lines)        fliph          none
//	no angle                      transpose      none
//	angle ≡ 0   (mod 360)         identity       none
//	angle ≡ 90  (mod 360)         rotate90ccw    none
//	angle ≡ 180 (mod 360)         rotate180      none
//	angle ≡ 270 (mod 360)         rotate90cw     none
//
// An odd multiple of 45 is first reduced by 45, which lands it on a
// multiple of 90, and the plan is marked for expansion: diamond unless
// skew was requested. So +45 is the identity followed by a diamond, and
// -45 a clockwise quarter turn followed by a diamond.
//
// Angles that are not multiples of 45 are rejected with INVALID_ANGLE;
// they are never rounded.
//
// # Shapes
//
// Transpose needs a rectangle, so the grid is rectangularized first.
// Angles need a square and the grid is squarized. Flips work row by row
// and leave ragged input alone.
package rotate
