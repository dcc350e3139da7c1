package algebra

import "math/big"

// Rat is an [Element] over the field of rationals ℚ. Unlike [Int], every
// nonzero element is invertible, so curves over Rat coordinates support the
// full group law without finite-field arithmetic.
type Rat struct {
	v *big.Rat
}

// NewRat returns the rational element num/den. It panics if den is zero,
// mirroring big.NewRat.
func NewRat(num, den int64) Rat {
	return Rat{v: big.NewRat(num, den)}
}

// NewRatFromBig returns the rational element holding a copy of v.
func NewRatFromBig(v *big.Rat) Rat {
	return Rat{v: new(big.Rat).Set(v)}
}

// Big returns a copy of the underlying rational.
func (a Rat) Big() *big.Rat {
	return new(big.Rat).Set(a.v)
}

// Add returns a+b.
func (a Rat) Add(b Element) (Element, error) {
	br, ok := b.(Rat)
	if !ok {
		return nil, ErrMismatch
	}
	return Rat{v: new(big.Rat).Add(a.v, br.v)}, nil
}

// Sub returns a-b.
func (a Rat) Sub(b Element) (Element, error) {
	br, ok := b.(Rat)
	if !ok {
		return nil, ErrMismatch
	}
	return Rat{v: new(big.Rat).Sub(a.v, br.v)}, nil
}

// Mul returns a*b.
func (a Rat) Mul(b Element) (Element, error) {
	br, ok := b.(Rat)
	if !ok {
		return nil, ErrMismatch
	}
	return Rat{v: new(big.Rat).Mul(a.v, br.v)}, nil
}

// Div returns a/b, or [ErrZeroDivisor] if b is zero.
func (a Rat) Div(b Element) (Element, error) {
	br, ok := b.(Rat)
	if !ok {
		return nil, ErrMismatch
	}
	if br.v.Sign() == 0 {
		return nil, ErrZeroDivisor
	}
	return Rat{v: new(big.Rat).Quo(a.v, br.v)}, nil
}

// Equal reports whether b is a Rat with the same value.
func (a Rat) Equal(b Element) bool {
	br, ok := b.(Rat)
	return ok && a.v.Cmp(br.v) == 0
}

// Cmp compares two rational elements.
func (a Rat) Cmp(b Element) int {
	return a.v.Cmp(b.(Rat).v)
}

// IsZero reports whether a is zero.
func (a Rat) IsZero() bool {
	return a.v.Sign() == 0
}

func (a Rat) String() string {
	return a.v.RatString()
}
