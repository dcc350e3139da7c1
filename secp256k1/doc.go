// Package secp256k1 assembles the secp256k1 curve from the generic field
// and curve packages and layers double-and-add scalar multiplication on top
// of the group law.
//
// secp256k1 is the short Weierstrass curve
//
//	y² = x³ + 7
//
// over the prime field of
//
//	p = 2²⁵⁶ − 2³² − 977
//
// used by Bitcoin and many other systems. The parameters follow SEC 2.
//
// # Design Philosophy
//
// This package is deliberately a consumer of the algebra core: it touches
// only the public API of field and curve, the same way any protocol layer
// would. It exists to exercise the group law at cryptographic size, not to
// compete with hand-optimized implementations — the arithmetic here is
// generic big-integer arithmetic, with none of the fixed-prime reductions a
// production secp256k1 library uses, and it is not constant-time.
//
// # Usage
//
//	pub, err := secp256k1.ScalarBaseMult(priv)   // priv * G
//	shared, err := secp256k1.ScalarMult(pub, k)  // k * pub
package secp256k1
