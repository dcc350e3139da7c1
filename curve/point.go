package curve

import (
	"errors"
	"fmt"

	"github.com/quarkfield/ec/algebra"
)

var (
	// ErrNotOnCurve is returned by NewAffine when the coordinates do not
	// satisfy the curve equation.
	ErrNotOnCurve = errors.New("curve: point is not on the curve")

	// ErrCurveMismatch is returned by Add when the operands lie on curves
	// with different coefficients.
	ErrCurveMismatch = errors.New("curve: points are on different curves")
)

// Point is an element of the group defined by a [Curve]: either the
// identity (the point at infinity) or an affine coordinate pair validated
// against the curve equation at construction. Points are immutable; group
// operations return new points.
type Point struct {
	curve *Curve
	x, y  algebra.Element // both nil iff the point is the identity
}

// Identity returns the group identity (the point at infinity) on c.
func Identity(c *Curve) *Point {
	return &Point{curve: c}
}

// NewAffine returns the point (x, y) on c, or [ErrNotOnCurve] if the
// coordinates do not satisfy the curve equation. Arithmetic failures during
// the membership check (mismatched fields, for instance) are reported as
// ErrNotOnCurve with the underlying cause attached.
func NewAffine(c *Curve, x, y algebra.Element) (*Point, error) {
	ok, err := c.Contains(x, y)
	if err != nil {
		return nil, fmt.Errorf("%w: (%s, %s) on %s: %v", ErrNotOnCurve, x, y, c, err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: (%s, %s) on %s", ErrNotOnCurve, x, y, c)
	}
	return &Point{curve: c, x: x, y: y}, nil
}

// IsIdentity reports whether p is the point at infinity.
func (p *Point) IsIdentity() bool { return p.x == nil }

// X returns the x-coordinate, or nil for the identity.
func (p *Point) X() algebra.Element { return p.x }

// Y returns the y-coordinate, or nil for the identity.
func (p *Point) Y() algebra.Element { return p.y }

// Curve returns the curve descriptor the point was constructed against.
func (p *Point) Curve() *Curve { return p.curve }

// Equal reports whether p and q are the same group element on curves with
// equal coefficients.
func (p *Point) Equal(q *Point) bool {
	if !p.curve.Equal(q.curve) {
		return false
	}
	if p.IsIdentity() || q.IsIdentity() {
		return p.IsIdentity() && q.IsIdentity()
	}
	return p.x.Equal(q.x) && p.y.Equal(q.y)
}

// Add returns p+q under the chord-and-tangent group law. It fails with
// [ErrCurveMismatch] when the operands' curves have different coefficients,
// and propagates the coordinate type's division error when a slope is not
// computable.
func (p *Point) Add(q *Point) (*Point, error) {
	if !p.curve.Equal(q.curve) {
		return nil, fmt.Errorf("%w: %s vs %s", ErrCurveMismatch, p.curve, q.curve)
	}
	if p.IsIdentity() {
		return q, nil
	}
	if q.IsIdentity() {
		return p, nil
	}
	if p.x.Equal(q.x) {
		if !p.y.Equal(q.y) {
			// Vertical chord: q is p's additive inverse.
			return Identity(p.curve), nil
		}
		return p.Double()
	}

	// Chord slope s = (y2 - y1) / (x2 - x1).
	num, err := q.y.Sub(p.y)
	if err != nil {
		return nil, err
	}
	den, err := q.x.Sub(p.x)
	if err != nil {
		return nil, err
	}
	s, err := num.Div(den)
	if err != nil {
		return nil, fmt.Errorf("chord slope of %s and %s: %w", p, q, err)
	}
	return p.complete(s, q.x)
}

// Double returns p+p. Doubling a point with y = 0 meets a vertical tangent
// and yields the identity; otherwise the tangent slope is (3x² + a) / (2y).
func (p *Point) Double() (*Point, error) {
	if p.IsIdentity() {
		return p, nil
	}
	if p.y.IsZero() {
		return Identity(p.curve), nil
	}

	xx, err := p.x.Mul(p.x)
	if err != nil {
		return nil, err
	}
	num, err := xx.Add(xx)
	if err != nil {
		return nil, err
	}
	if num, err = num.Add(xx); err != nil { // 3x²
		return nil, err
	}
	if num, err = num.Add(p.curve.a); err != nil {
		return nil, err
	}
	den, err := p.y.Add(p.y)
	if err != nil {
		return nil, err
	}
	s, err := num.Div(den)
	if err != nil {
		return nil, fmt.Errorf("tangent slope at %s: %w", p, err)
	}
	return p.complete(s, p.x)
}

// complete finishes both slope cases: x3 = s² - x1 - x2 and
// y3 = s·(x1 - x3) - y1. The result satisfies the curve equation by
// construction, so no membership re-check is needed.
func (p *Point) complete(s, x2 algebra.Element) (*Point, error) {
	x3, err := s.Mul(s)
	if err != nil {
		return nil, err
	}
	if x3, err = x3.Sub(p.x); err != nil {
		return nil, err
	}
	if x3, err = x3.Sub(x2); err != nil {
		return nil, err
	}
	y3, err := p.x.Sub(x3)
	if err != nil {
		return nil, err
	}
	if y3, err = s.Mul(y3); err != nil {
		return nil, err
	}
	if y3, err = y3.Sub(p.y); err != nil {
		return nil, err
	}
	return &Point{curve: p.curve, x: x3, y: y3}, nil
}

func (p *Point) String() string {
	if p.IsIdentity() {
		return "O"
	}
	return fmt.Sprintf("(%s, %s)", p.x, p.y)
}
