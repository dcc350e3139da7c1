package algebra

import "math/big"

// Int is an [Element] over the ring of integers ℤ. It is the natural
// coordinate type for illustrative curves where exactness matters more than
// a finite structure.
//
// Division is exact division: a/b exists only when b is nonzero and divides
// a without remainder.
type Int struct {
	v *big.Int
}

// NewInt returns the integer element v.
func NewInt(v int64) Int {
	return Int{v: big.NewInt(v)}
}

// NewIntFromBig returns the integer element holding a copy of v.
func NewIntFromBig(v *big.Int) Int {
	return Int{v: new(big.Int).Set(v)}
}

// Big returns a copy of the underlying integer.
func (a Int) Big() *big.Int {
	return new(big.Int).Set(a.v)
}

// Add returns a+b.
func (a Int) Add(b Element) (Element, error) {
	bi, ok := b.(Int)
	if !ok {
		return nil, ErrMismatch
	}
	return Int{v: new(big.Int).Add(a.v, bi.v)}, nil
}

// Sub returns a-b.
func (a Int) Sub(b Element) (Element, error) {
	bi, ok := b.(Int)
	if !ok {
		return nil, ErrMismatch
	}
	return Int{v: new(big.Int).Sub(a.v, bi.v)}, nil
}

// Mul returns a*b.
func (a Int) Mul(b Element) (Element, error) {
	bi, ok := b.(Int)
	if !ok {
		return nil, ErrMismatch
	}
	return Int{v: new(big.Int).Mul(a.v, bi.v)}, nil
}

// Div returns a/b. It returns [ErrZeroDivisor] if b is zero and
// [ErrInexactQuotient] if b does not divide a.
func (a Int) Div(b Element) (Element, error) {
	bi, ok := b.(Int)
	if !ok {
		return nil, ErrMismatch
	}
	if bi.v.Sign() == 0 {
		return nil, ErrZeroDivisor
	}
	q, r := new(big.Int).QuoRem(a.v, bi.v, new(big.Int))
	if r.Sign() != 0 {
		return nil, ErrInexactQuotient
	}
	return Int{v: q}, nil
}

// Equal reports whether b is an Int with the same value.
func (a Int) Equal(b Element) bool {
	bi, ok := b.(Int)
	return ok && a.v.Cmp(bi.v) == 0
}

// Cmp compares two integer elements.
func (a Int) Cmp(b Element) int {
	return a.v.Cmp(b.(Int).v)
}

// IsZero reports whether a is zero.
func (a Int) IsZero() bool {
	return a.v.Sign() == 0
}

func (a Int) String() string {
	return a.v.String()
}
