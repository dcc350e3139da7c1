package field

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/quarkfield/ec/algebra"
)

var (
	// ErrOutOfRange is returned by New when the value does not lie in
	// [0, modulus).
	ErrOutOfRange = errors.New("field: value outside [0, modulus)")

	// ErrInvalidModulus is returned by New when the modulus is not a
	// positive integer.
	ErrInvalidModulus = errors.New("field: modulus must be positive")

	// ErrModulusMismatch is returned when two elements with different
	// moduli are combined.
	ErrModulusMismatch = errors.New("field: moduli differ")
)

var one = big.NewInt(1)

// Element is a residue modulo a prime, implementing [algebra.Element].
// The zero Element is not valid; use [New].
type Element struct {
	value   *big.Int
	modulus *big.Int
}

// New returns the field element value mod modulus. The value must already
// lie in [0, modulus); out-of-range values are rejected rather than reduced
// so that a corrupted coordinate surfaces at the boundary instead of being
// silently folded into the field.
func New(value, modulus *big.Int) (*Element, error) {
	if modulus.Sign() <= 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidModulus, modulus)
	}
	if value.Sign() < 0 || value.Cmp(modulus) >= 0 {
		return nil, fmt.Errorf("%w: %s not in [0, %s)", ErrOutOfRange, value, modulus)
	}
	return &Element{
		value:   new(big.Int).Set(value),
		modulus: new(big.Int).Set(modulus),
	}, nil
}

// Value returns a copy of the residue.
func (e *Element) Value() *big.Int {
	return new(big.Int).Set(e.value)
}

// Modulus returns a copy of the modulus.
func (e *Element) Modulus() *big.Int {
	return new(big.Int).Set(e.modulus)
}

// sameField asserts b into *Element and checks the moduli match.
func (e *Element) sameField(b algebra.Element) (*Element, error) {
	o, ok := b.(*Element)
	if !ok {
		return nil, fmt.Errorf("%w: %T is not a field element", algebra.ErrMismatch, b)
	}
	if e.modulus.Cmp(o.modulus) != 0 {
		return nil, fmt.Errorf("%w: %s vs %s", ErrModulusMismatch, e.modulus, o.modulus)
	}
	return o, nil
}

func (e *Element) reduced(v *big.Int) *Element {
	// big.Int.Mod is Euclidean for a positive modulus, so negative
	// intermediates from Sub land back in [0, modulus).
	return &Element{value: v.Mod(v, e.modulus), modulus: e.modulus}
}

// Add returns e+b mod the shared modulus.
func (e *Element) Add(b algebra.Element) (algebra.Element, error) {
	o, err := e.sameField(b)
	if err != nil {
		return nil, err
	}
	return e.reduced(new(big.Int).Add(e.value, o.value)), nil
}

// Sub returns e-b mod the shared modulus.
func (e *Element) Sub(b algebra.Element) (algebra.Element, error) {
	o, err := e.sameField(b)
	if err != nil {
		return nil, err
	}
	return e.reduced(new(big.Int).Sub(e.value, o.value)), nil
}

// Mul returns e*b mod the shared modulus.
func (e *Element) Mul(b algebra.Element) (algebra.Element, error) {
	o, err := e.sameField(b)
	if err != nil {
		return nil, err
	}
	return e.reduced(new(big.Int).Mul(e.value, o.value)), nil
}

// Pow returns e^exp mod the modulus, computed by square-and-multiply.
// A negative exponent is first reduced modulo modulus−1, which by Fermat's
// little theorem yields the inverse power for a prime modulus and a nonzero
// base.
func (e *Element) Pow(exp *big.Int) *Element {
	n := exp
	if exp.Sign() < 0 {
		n = new(big.Int).Mod(exp, new(big.Int).Sub(e.modulus, one))
	}
	return &Element{
		value:   new(big.Int).Exp(e.value, n, e.modulus),
		modulus: e.modulus,
	}
}

// Div returns e/b, defined as e*b^(modulus−2) mod the shared modulus.
//
// Preconditions (not checked): the modulus is prime and b is nonzero.
// Dividing by the zero element yields the zero element, a meaningless
// result; callers handling untrusted input must check b.IsZero first.
func (e *Element) Div(b algebra.Element) (algebra.Element, error) {
	o, err := e.sameField(b)
	if err != nil {
		return nil, err
	}
	inv := new(big.Int).Exp(o.value, new(big.Int).Sub(e.modulus, big.NewInt(2)), e.modulus)
	return e.reduced(inv.Mul(e.value, inv)), nil
}

// Equal reports whether b is a field element with the same value and modulus.
func (e *Element) Equal(b algebra.Element) bool {
	o, ok := b.(*Element)
	return ok && e.value.Cmp(o.value) == 0 && e.modulus.Cmp(o.modulus) == 0
}

// Cmp orders elements lexicographically by (value, modulus). It panics if b
// is not a field element.
func (e *Element) Cmp(b algebra.Element) int {
	o := b.(*Element)
	if c := e.value.Cmp(o.value); c != 0 {
		return c
	}
	return e.modulus.Cmp(o.modulus)
}

// IsZero reports whether e is the zero element.
func (e *Element) IsZero() bool {
	return e.value.Sign() == 0
}

func (e *Element) String() string {
	return fmt.Sprintf("%s mod %s", e.value, e.modulus)
}
