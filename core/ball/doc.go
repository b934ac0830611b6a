// Package ball implements arbitrary-precision ball arithmetic: every value is a
// midpoint with an error radius, and every operation returns a ball that
// contains the exact result for all points of its operands.
//
// Midpoints are math/big Floats at a caller-chosen precision (bits). Radii are
// 64-bit Floats rounded away from zero, so they only ever grow.
//
// Values follow the math/big receiver convention:
//
//	z := ball.NewReal(100).Add(x, y)
//
// A receiver with precision 0 adopts the largest operand precision. Results never
// share mutable state with operands, so a returned ball can be passed around
// freely. The zero value of Real is the exact number 0.
//
// This package has no app/output deps; digamma and the CLIs import it.
package ball
