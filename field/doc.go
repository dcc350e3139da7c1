// Package field implements arithmetic in a prime field: the residues
// {0, …, p−1} under addition and multiplication modulo p.
//
// [Element] pairs a value with its modulus and implements [algebra.Element],
// so prime-field values plug directly into the generic curve group law. The
// modulus is intended to be prime but is not verified; primality is what
// makes every nonzero element invertible, and [Element.Div] and negative
// exponents in [Element.Pow] silently assume it.
//
// # Design Philosophy
//
// Elements are immutable values. Every operation re-reduces its result into
// [0, modulus) before returning — subtraction uses a Euclidean remainder, so
// a negative intermediate never escapes. Two elements combine only when
// their moduli are equal; a mismatch is reported as [ErrModulusMismatch],
// never a panic, so protocol layers can reject malformed input gracefully.
//
// Exponentiation is square-and-multiply via big.Int.Exp, logarithmic in the
// exponent. Division multiplies by the Fermat inverse b^(p−2) mod p.
//
// # Caller Obligations
//
// Division by the zero element is not detected: 0^(p−2) is 0, so the result
// is a meaningless zero. Callers dividing by untrusted values must check
// [Element.IsZero] first.
//
// # Usage
//
//	p := big.NewInt(19)
//	a, _ := field.New(big.NewInt(7), p)
//	b, _ := field.New(big.NewInt(8), p)
//	sum, _ := a.Add(b) // 15 mod 19
package field
