package secp256k1

import (
	"fmt"
	"math/big"

	"github.com/quarkfield/ec/curve"
	"github.com/quarkfield/ec/field"
)

// SEC 2 parameters: base field prime, group order, generator.
var (
	p, _  = new(big.Int).SetString("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFC2F", 16)
	n, _  = new(big.Int).SetString("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364141", 16)
	gx, _ = new(big.Int).SetString("79BE667EF9DCBBAC55A06295CE870B07029BFCDB2DCE28D959F2815B16F81798", 16)
	gy, _ = new(big.Int).SetString("483ADA7726A3C4655DA4FBFC0E1108A8FD17B448A68554199C47D08FFB10D4B8", 16)
)

var (
	s256      *curve.Curve
	generator *curve.Point
)

func init() {
	a, err := field.New(new(big.Int), p)
	if err != nil {
		panic(err)
	}
	b, err := field.New(big.NewInt(7), p)
	if err != nil {
		panic(err)
	}
	s256 = curve.New(a, b)

	x, err := field.New(gx, p)
	if err != nil {
		panic(err)
	}
	y, err := field.New(gy, p)
	if err != nil {
		panic(err)
	}
	generator, err = curve.NewAffine(s256, x, y)
	if err != nil {
		panic(err)
	}
}

// S256 returns the secp256k1 curve descriptor. The descriptor is shared;
// callers must treat it as read-only.
func S256() *curve.Curve {
	return s256
}

// Generator returns the base point G.
func Generator() *curve.Point {
	return generator
}

// P returns a copy of the base field prime.
func P() *big.Int {
	return new(big.Int).Set(p)
}

// N returns a copy of the group order.
func N() *big.Int {
	return new(big.Int).Set(n)
}

// NewPoint returns the point (x, y) on secp256k1, rejecting coordinates
// outside the base field or off the curve.
func NewPoint(x, y *big.Int) (*curve.Point, error) {
	xe, err := field.New(x, p)
	if err != nil {
		return nil, err
	}
	ye, err := field.New(y, p)
	if err != nil {
		return nil, err
	}
	return curve.NewAffine(s256, xe, ye)
}

// ScalarMult returns k*q computed by double-and-add over the group law.
// The scalar is reduced modulo the group order first.
func ScalarMult(q *curve.Point, k *big.Int) (*curve.Point, error) {
	if !q.Curve().Equal(s256) {
		return nil, fmt.Errorf("%w: %s", curve.ErrCurveMismatch, q.Curve())
	}
	e := new(big.Int).Mod(k, n)

	result := curve.Identity(s256)
	addend := q
	var err error
	for i := 0; i < e.BitLen(); i++ {
		if e.Bit(i) == 1 {
			if result, err = result.Add(addend); err != nil {
				return nil, err
			}
		}
		if addend, err = addend.Double(); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// ScalarBaseMult returns k*G.
func ScalarBaseMult(k *big.Int) (*curve.Point, error) {
	return ScalarMult(generator, k)
}
