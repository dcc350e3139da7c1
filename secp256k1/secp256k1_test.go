package secp256k1

import (
	"crypto/rand"
	"errors"
	"math/big"
	"testing"

	dcr "github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/quarkfield/ec/curve"
	"github.com/quarkfield/ec/field"
)

// coords unpacks an affine point into big.Int coordinates for comparison
// with the reference implementation.
func coords(t *testing.T, p *curve.Point) (*big.Int, *big.Int) {
	t.Helper()
	if p.IsIdentity() {
		t.Fatal("unexpected identity point")
	}
	return p.X().(*field.Element).Value(), p.Y().(*field.Element).Value()
}

func randScalar(t *testing.T) *big.Int {
	t.Helper()
	k, err := rand.Int(rand.Reader, N())
	if err != nil {
		t.Fatal(err)
	}
	if k.Sign() == 0 {
		k.SetInt64(1)
	}
	return k
}

func TestParamsMatchReference(t *testing.T) {
	params := dcr.S256().Params()

	if P().Cmp(params.P) != 0 {
		t.Error("base field prime disagrees with reference")
	}
	if N().Cmp(params.N) != 0 {
		t.Error("group order disagrees with reference")
	}

	gx, gy := coords(t, Generator())
	if gx.Cmp(params.Gx) != 0 || gy.Cmp(params.Gy) != 0 {
		t.Error("generator disagrees with reference")
	}

	ok, err := S256().Contains(Generator().X(), Generator().Y())
	if err != nil || !ok {
		t.Errorf("generator not on curve: ok=%v err=%v", ok, err)
	}
}

func TestScalarBaseMultMatchesReference(t *testing.T) {
	scalars := []*big.Int{
		big.NewInt(1),
		big.NewInt(2),
		big.NewInt(3),
		big.NewInt(0xdeadbeef),
		new(big.Int).Sub(N(), big.NewInt(1)),
	}
	for i := 0; i < 8; i++ {
		scalars = append(scalars, randScalar(t))
	}

	for _, k := range scalars {
		got, err := ScalarBaseMult(k)
		if err != nil {
			t.Fatalf("ScalarBaseMult(%s): %v", k, err)
		}
		gx, gy := coords(t, got)
		wx, wy := dcr.S256().ScalarBaseMult(k.Bytes())
		if gx.Cmp(wx) != 0 || gy.Cmp(wy) != 0 {
			t.Errorf("k=%s: (%s, %s), reference disagrees", k, gx, gy)
		}
	}
}

func TestAddMatchesReference(t *testing.T) {
	for i := 0; i < 8; i++ {
		p, err := ScalarBaseMult(randScalar(t))
		if err != nil {
			t.Fatal(err)
		}
		q, err := ScalarBaseMult(randScalar(t))
		if err != nil {
			t.Fatal(err)
		}
		if p.Equal(q) {
			continue // doubling is covered below
		}

		sum, err := p.Add(q)
		if err != nil {
			t.Fatal(err)
		}
		px, py := coords(t, p)
		qx, qy := coords(t, q)
		sx, sy := coords(t, sum)
		wx, wy := dcr.S256().Add(px, py, qx, qy)
		if sx.Cmp(wx) != 0 || sy.Cmp(wy) != 0 {
			t.Error("point addition disagrees with reference")
		}
	}
}

func TestDoubleMatchesReference(t *testing.T) {
	for i := 0; i < 8; i++ {
		p, err := ScalarBaseMult(randScalar(t))
		if err != nil {
			t.Fatal(err)
		}
		d, err := p.Double()
		if err != nil {
			t.Fatal(err)
		}
		px, py := coords(t, p)
		dx, dy := coords(t, d)
		wx, wy := dcr.S256().Double(px, py)
		if dx.Cmp(wx) != 0 || dy.Cmp(wy) != 0 {
			t.Error("point doubling disagrees with reference")
		}
	}
}

func TestScalarMultMatchesReference(t *testing.T) {
	base, err := ScalarBaseMult(big.NewInt(0xcafe))
	if err != nil {
		t.Fatal(err)
	}
	bx, by := coords(t, base)

	for i := 0; i < 8; i++ {
		k := randScalar(t)
		got, err := ScalarMult(base, k)
		if err != nil {
			t.Fatal(err)
		}
		gx, gy := coords(t, got)
		wx, wy := dcr.S256().ScalarMult(bx, by, k.Bytes())
		if gx.Cmp(wx) != 0 || gy.Cmp(wy) != 0 {
			t.Errorf("k=%s: scalar multiplication disagrees with reference", k)
		}
	}
}

func TestOrderAnnihilates(t *testing.T) {
	got, err := ScalarBaseMult(N())
	if err != nil {
		t.Fatal(err)
	}
	if !got.IsIdentity() {
		t.Errorf("N*G = %s, want O", got)
	}

	// (N-1)*G + G must also be the identity.
	almost, err := ScalarBaseMult(new(big.Int).Sub(N(), big.NewInt(1)))
	if err != nil {
		t.Fatal(err)
	}
	sum, err := almost.Add(Generator())
	if err != nil {
		t.Fatal(err)
	}
	if !sum.IsIdentity() {
		t.Errorf("(N-1)*G + G = %s, want O", sum)
	}
}

func TestNewPoint(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		x, y := coords(t, Generator())
		p, err := NewPoint(x, y)
		if err != nil {
			t.Fatal(err)
		}
		if !p.Equal(Generator()) {
			t.Error("reconstructed generator differs")
		}
	})

	t.Run("RejectsOffCurve", func(t *testing.T) {
		if _, err := NewPoint(big.NewInt(1), big.NewInt(1)); !errors.Is(err, curve.ErrNotOnCurve) {
			t.Errorf("NewPoint(1, 1) = %v, want ErrNotOnCurve", err)
		}
	})

	t.Run("RejectsOutOfRangeCoordinate", func(t *testing.T) {
		if _, err := NewPoint(P(), big.NewInt(1)); !errors.Is(err, field.ErrOutOfRange) {
			t.Errorf("NewPoint(p, 1) = %v, want ErrOutOfRange", err)
		}
	})

	t.Run("RejectsForeignPointInScalarMult", func(t *testing.T) {
		other := curve.New(algebraZero(t), algebraZero(t))
		if _, err := ScalarMult(curve.Identity(other), big.NewInt(2)); !errors.Is(err, curve.ErrCurveMismatch) {
			t.Errorf("foreign point = %v, want ErrCurveMismatch", err)
		}
	})
}

// algebraZero builds a coefficient from a different field so the descriptor
// cannot equal secp256k1's.
func algebraZero(t *testing.T) *field.Element {
	t.Helper()
	e, err := field.New(big.NewInt(0), big.NewInt(19))
	if err != nil {
		t.Fatal(err)
	}
	return e
}
