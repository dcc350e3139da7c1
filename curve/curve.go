package curve

import (
	"fmt"

	"github.com/quarkfield/ec/algebra"
)

// Curve describes a short Weierstrass curve y² = x³ + a·x + b by its
// coefficients. A Curve is immutable once built and is shared read-only by
// every point constructed against it.
//
// The coefficients are not validated beyond their type: a degenerate curve
// (zero discriminant) is the caller's responsibility.
type Curve struct {
	a, b algebra.Element
}

// New returns the curve with coefficients a and b. Both coefficients must
// belong to the same structure as the coordinates of any point later placed
// on the curve; a mismatch surfaces as an error from [NewAffine].
func New(a, b algebra.Element) *Curve {
	return &Curve{a: a, b: b}
}

// A returns the coefficient a.
func (c *Curve) A() algebra.Element { return c.a }

// B returns the coefficient b.
func (c *Curve) B() algebra.Element { return c.b }

// Contains reports whether (x, y) satisfies y² = x³ + a·x + b in the
// coordinate type's own arithmetic. It returns an error when the arithmetic
// itself is undefined, such as coordinates from a different field than the
// coefficients.
func (c *Curve) Contains(x, y algebra.Element) (bool, error) {
	lhs, err := y.Mul(y)
	if err != nil {
		return false, err
	}
	xx, err := x.Mul(x)
	if err != nil {
		return false, err
	}
	rhs, err := xx.Mul(x)
	if err != nil {
		return false, err
	}
	ax, err := c.a.Mul(x)
	if err != nil {
		return false, err
	}
	if rhs, err = rhs.Add(ax); err != nil {
		return false, err
	}
	if rhs, err = rhs.Add(c.b); err != nil {
		return false, err
	}
	return lhs.Equal(rhs), nil
}

// Equal reports whether two curves have equal coefficients. Points on equal
// curves may be added even when the descriptors are distinct values.
func (c *Curve) Equal(o *Curve) bool {
	return c.a.Equal(o.a) && c.b.Equal(o.b)
}

func (c *Curve) String() string {
	return fmt.Sprintf("y² = x³ + %s·x + %s", c.a, c.b)
}
