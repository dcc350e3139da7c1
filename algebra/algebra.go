package algebra

import "errors"

// Errors shared by Element implementations.
var (
	// ErrMismatch is returned when two elements that belong to different
	// structures are combined.
	ErrMismatch = errors.New("algebra: elements belong to different structures")

	// ErrZeroDivisor is returned by Div when the divisor is zero.
	ErrZeroDivisor = errors.New("algebra: zero divisor")

	// ErrInexactQuotient is returned by [Int.Div] when the quotient does
	// not exist in the integers.
	ErrInexactQuotient = errors.New("algebra: quotient is not an integer")
)

// Element is a value in an algebraic structure offering the capability set
// required by the elliptic-curve group law: ring arithmetic, division,
// equality, and a total order.
//
// Elements are immutable. Every arithmetic method returns a new Element and
// leaves both operands untouched, so values may be freely shared across
// goroutines once published.
//
// Arithmetic methods fail when the operands belong to different structures
// (for example, prime-field elements with different moduli). Div additionally
// fails when the quotient is undefined in the structure; see each
// implementation for its division semantics.
type Element interface {
	// Add returns the sum of the receiver and b.
	Add(b Element) (Element, error)
	// Sub returns the difference of the receiver and b.
	Sub(b Element) (Element, error)
	// Mul returns the product of the receiver and b.
	Mul(b Element) (Element, error)
	// Div returns the quotient of the receiver and b, or an error if the
	// quotient is undefined in the receiver's structure.
	Div(b Element) (Element, error)
	// Equal reports whether the receiver and b are the same value of the
	// same structure.
	Equal(b Element) bool
	// Cmp compares the receiver with b and returns -1, 0, or +1. It is
	// intended for sorted collections and panics if b does not belong to
	// the receiver's implementation.
	Cmp(b Element) int
	// IsZero reports whether the receiver is the additive identity.
	IsZero() bool
	// String returns a human-readable rendering of the element.
	String() string
}
