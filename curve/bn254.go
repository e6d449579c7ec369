// Package curve wraps BN254 G1/G2 group arithmetic and the optimal-ate
// pairing from github.com/consensys/gnark-crypto/ecc/bn254, exposing only
// the primitives the KZG engine needs: point construction/validation,
// group operations, scalar multiplication, and a batched pairing check.
package curve

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/weijiekoh/libkzg/field"
)

// G1Point is a point on BN254's G1, stored in affine coordinates.
type G1Point struct {
	inner bn254.G1Affine
}

// G2Point is a point on BN254's twist, G2, stored in affine coordinates.
type G2Point struct {
	inner bn254.G2Affine
}

// G1Generator returns the canonical BN254 G1 generator, (1, 2).
func G1Generator() G1Point {
	_, _, g1, _ := bn254.Generators()
	return G1Point{inner: g1}
}

// G2Generator returns the canonical BN254 G2 generator.
func G2Generator() G2Point {
	_, _, _, g2 := bn254.Generators()
	return G2Point{inner: g2}
}

// G1Identity returns the point at infinity of G1.
func G1Identity() G1Point {
	return G1Point{}
}

// G2Identity returns the point at infinity of G2.
func G2Identity() G2Point {
	return G2Point{}
}

// NewG1Point builds a G1 point from affine coordinates and validates it:
// it must lie on the curve and in the prime-order subgroup.
func NewG1Point(x, y *big.Int) (G1Point, error) {
	var p bn254.G1Affine
	p.X.SetBigInt(x)
	p.Y.SetBigInt(y)
	if !p.IsOnCurve() {
		return G1Point{}, ErrNotOnCurve
	}
	if !p.IsInSubGroup() {
		return G1Point{}, ErrNotInSubgroup
	}
	return G1Point{inner: p}, nil
}

// NewG2Point builds a G2 point from affine coordinates (x = x0 + x1*u,
// y = y0 + y1*u) and validates it against the curve and the subgroup.
func NewG2Point(x0, x1, y0, y1 *big.Int) (G2Point, error) {
	var p bn254.G2Affine
	p.X.A0.SetBigInt(x0)
	p.X.A1.SetBigInt(x1)
	p.Y.A0.SetBigInt(y0)
	p.Y.A1.SetBigInt(y1)
	if !p.IsOnCurve() {
		return G2Point{}, ErrNotOnCurve
	}
	if !p.IsInSubGroup() {
		return G2Point{}, ErrNotInSubgroup
	}
	return G2Point{inner: p}, nil
}

// IsOnCurve reports whether p satisfies the G1 curve equation.
func (p G1Point) IsOnCurve() bool { return p.inner.IsOnCurve() }

// IsInSubgroup reports whether p is in BN254's prime-order G1 subgroup.
func (p G1Point) IsInSubgroup() bool { return p.inner.IsInSubGroup() }

// IsOnCurve reports whether p satisfies the twist curve equation.
func (p G2Point) IsOnCurve() bool { return p.inner.IsOnCurve() }

// IsInSubgroup reports whether p is in BN254's prime-order G2 subgroup.
func (p G2Point) IsInSubgroup() bool { return p.inner.IsInSubGroup() }

// Equal reports whether p and o are the same point.
func (p G1Point) Equal(o G1Point) bool { return p.inner.Equal(&o.inner) }

// Equal reports whether p and o are the same point.
func (p G2Point) Equal(o G2Point) bool { return p.inner.Equal(&o.inner) }

// Add returns p + o.
func (p G1Point) Add(o G1Point) G1Point {
	var a, b bn254.G1Jac
	a.FromAffine(&p.inner)
	b.FromAffine(&o.inner)
	a.AddAssign(&b)
	var res bn254.G1Affine
	res.FromJacobian(&a)
	return G1Point{inner: res}
}

// Neg returns -p.
func (p G1Point) Neg() G1Point {
	var res bn254.G1Affine
	res.Neg(&p.inner)
	return G1Point{inner: res}
}

// Sub returns p - o.
func (p G1Point) Sub(o G1Point) G1Point {
	return p.Add(o.Neg())
}

// ScalarMul returns s*p.
func (p G1Point) ScalarMul(s field.Element) G1Point {
	var res bn254.G1Affine
	res.ScalarMultiplication(&p.inner, s.BigInt())
	return G1Point{inner: res}
}

// Add returns p + o.
func (p G2Point) Add(o G2Point) G2Point {
	var a, b bn254.G2Jac
	a.FromAffine(&p.inner)
	b.FromAffine(&o.inner)
	a.AddAssign(&b)
	var res bn254.G2Affine
	res.FromJacobian(&a)
	return G2Point{inner: res}
}

// Neg returns -p.
func (p G2Point) Neg() G2Point {
	var res bn254.G2Affine
	res.Neg(&p.inner)
	return G2Point{inner: res}
}

// Sub returns p - o.
func (p G2Point) Sub(o G2Point) G2Point {
	return p.Add(o.Neg())
}

// ScalarMul returns s*p.
func (p G2Point) ScalarMul(s field.Element) G2Point {
	var res bn254.G2Affine
	res.ScalarMultiplication(&p.inner, s.BigInt())
	return G2Point{inner: res}
}

// XY returns the affine coordinates of p as canonical big-endian integers.
func (p G1Point) XY() (x, y *big.Int) {
	var bx, by big.Int
	p.inner.X.BigInt(&bx)
	p.inner.Y.BigInt(&by)
	return &bx, &by
}

// Coordinates returns the affine coordinates of p, x = x0+x1*u, y = y0+y1*u.
func (p G2Point) Coordinates() (x0, x1, y0, y1 *big.Int) {
	var bx0, bx1, by0, by1 big.Int
	p.inner.X.A0.BigInt(&bx0)
	p.inner.X.A1.BigInt(&bx1)
	p.inner.Y.A0.BigInt(&by0)
	p.inner.Y.A1.BigInt(&by1)
	return &bx0, &bx1, &by0, &by1
}

// Inner exposes the wrapped gnark-crypto point for packages (srs,
// commitment) that hand slices of points directly to gnark-crypto's
// multi-scalar-multiplication routines.
func (p G1Point) Inner() bn254.G1Affine { return p.inner }

// Inner exposes the wrapped gnark-crypto point; see G1Point.Inner.
func (p G2Point) Inner() bn254.G2Affine { return p.inner }

// FromInnerG1 wraps a gnark-crypto point produced by commitment/srs code.
func FromInnerG1(p bn254.G1Affine) G1Point { return G1Point{inner: p} }

// FromInnerG2 wraps a gnark-crypto point produced by commitment/srs code.
func FromInnerG2(p bn254.G2Affine) G2Point { return G2Point{inner: p} }

// Pair is one (G1, G2) factor of a pairing product.
type Pair struct {
	G1 G1Point
	G2 G2Point
}

// PairingCheck returns true iff the product of e(A_i, B_i) over all pairs
// equals the identity of the target group GT. All inputs are affine
// already. An empty slice fails with ErrEmptyPairing.
func PairingCheck(pairs []Pair) (bool, error) {
	if len(pairs) == 0 {
		return false, ErrEmptyPairing
	}
	g1s := make([]bn254.G1Affine, len(pairs))
	g2s := make([]bn254.G2Affine, len(pairs))
	for i, pr := range pairs {
		g1s[i] = pr.G1.inner
		g2s[i] = pr.G2.inner
	}
	return bn254.PairingCheck(g1s, g2s)
}

// PairEqual reports whether e(a1, b1) == e(a2, b2), i.e. whether
// e(a1, b1) . e(-a2, b2) == 1. It is the "pair-and-compare" primitive from
// spec.md §4.3(ii).
func PairEqual(a1 G1Point, b1 G2Point, a2 G1Point, b2 G2Point) (bool, error) {
	return PairingCheck([]Pair{{a1, b1}, {a2.Neg(), b2}})
}
