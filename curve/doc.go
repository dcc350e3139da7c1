// Package curve implements the group of points on a short Weierstrass curve
//
//	y² = x³ + a·x + b
//
// over any coordinate type satisfying [algebra.Element]. The same group law
// serves illustrative curves over the integers or rationals and finite-field
// curves built from the field package.
//
// A [Curve] is an immutable descriptor of the coefficients (a, b),
// constructed once and shared by reference among every [Point] on it. Points
// are either the identity (the point at infinity) or an affine pair that was
// validated against the curve equation at construction time.
//
// # The Group Law
//
// [Point.Add] implements chord-and-tangent addition case by case:
//
//  1. The identity is neutral: O + P = P + O = P.
//  2. A vertical chord (equal x, different y) joins a point and its inverse;
//     the sum is the identity.
//  3. Doubling a point with y = 0 meets a vertical tangent; the sum is the
//     identity.
//  4. Doubling with y ≠ 0 uses the tangent slope s = (3x² + a) / (2y).
//  5. Distinct x uses the chord slope s = (y₂ − y₁) / (x₂ − x₁).
//
// In both slope cases the sum is (s² − x₁ − x₂, s·(x₁ − x₃) − y₁). Cases 2
// and 3 are distinct: doubling is the identity only when y is zero, not for
// every pair with equal x.
//
// # Errors
//
// Adding points whose curves have different coefficients fails with
// [ErrCurveMismatch]; constructing a point off the curve fails with
// [ErrNotOnCurve]. When the coordinate type cannot compute a slope (for
// example a non-integral chord slope over ℤ), Add propagates the coordinate
// type's division error — it never silently substitutes an operand.
//
// # Usage
//
//	c := curve.New(algebra.NewInt(5), algebra.NewInt(7))
//	p, _ := curve.NewAffine(c, algebra.NewInt(-1), algebra.NewInt(-1))
//	q, _ := curve.NewAffine(c, algebra.NewInt(-1), algebra.NewInt(1))
//	sum, _ := p.Add(q) // the identity
package curve
