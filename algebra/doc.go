// Package algebra defines the coordinate abstraction shared by every curve
// in this module.
//
// The elliptic-curve group law only needs a small arithmetic capability set
// from its coordinate type: addition, subtraction, multiplication, division,
// equality, and ordering. [Element] captures exactly that set, so the same
// chord-and-tangent code serves both illustrative curves over the integers or
// rationals and cryptographically meaningful curves over a prime field.
//
// This package provides two exact implementations:
//
//   - [Int]: arbitrary-precision integers. Division is exact division in ℤ
//     and fails when the quotient is not an integer, which is how a chord
//     slope that does not exist over ℤ surfaces.
//   - [Rat]: arbitrary-precision rationals. Division fails only for a zero
//     divisor.
//
// The prime-field implementation lives in the field package.
//
// # Design Philosophy
//
// Elements are immutable values: every operation returns a new Element and
// never modifies an operand. Operations that can be undefined for a given
// implementation return an error rather than panicking, so a caller combining
// untrusted values can always recover.
//
// Two Elements may only be combined when they belong to the same structure.
// For Int and Rat any two values qualify; implementations with per-value
// structure (a field element's modulus) report a mismatch as an error.
package algebra
