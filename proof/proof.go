// Package proof implements the KZG single- and multi-point prover and
// verifier: building the quotient polynomial that attests an evaluation
// claim, committing it, and reducing the check to a pairing equation.
package proof

import (
	"math/big"

	"github.com/weijiekoh/libkzg/commitment"
	"github.com/weijiekoh/libkzg/curve"
	"github.com/weijiekoh/libkzg/field"
	"github.com/weijiekoh/libkzg/poly"
	"github.com/weijiekoh/libkzg/srs"
)

// Proof is a single-point opening proof: the commitment to the quotient
// q(x) = (p(x) - p(z)) / (x - z).
type Proof struct {
	curve.G1Point
}

// MultiProof is a multi-point opening proof. It lives in G2, not G1,
// deliberately: the multi-point verifier equation pairs the vanishing
// polynomial's commitment (G1) against the quotient (G2) so the
// variable-degree quotient term stays on the opposite side of the pairing
// from the fixed-degree main commitment.
type MultiProof struct {
	curve.G2Point
}

// GenCoefficients computes the polynomial p of degree < len(values) with
// p(i) = values[i] for i = 0..len(values)-1.
func GenCoefficients(values []field.Element) (poly.Polynomial, error) {
	return poly.GenCoefficients(values)
}

// Prove builds a single-point opening proof for p at z: y = p(z), and the
// proof is the commitment to q(x) = (p(x) - y) / (x - z). The division is
// always exact because z is a root of p(x) - y.
func Prove(s *srs.SRS, p poly.Polynomial, z field.Element) (Proof, error) {
	y := p.Eval(z)

	numerator := poly.Sub(p, poly.Polynomial{y})
	divisor := poly.Polynomial{z.Neg(), field.One()}

	q, err := poly.Div(numerator, divisor)
	if err != nil {
		return Proof{}, err
	}

	c, err := commitment.CommitG1(s, q)
	if err != nil {
		return Proof{}, err
	}
	return Proof{c}, nil
}

// Verify checks a single-point opening: commitment C to p, proof π, claim
// p(z) = y. It uses the rearranged form
//
//	e(z·π + (C - y·G1), G2) · e(-π, [τ]_2) == 1
//
// which avoids subtracting in G2 (whose scalar, τ, is unknown). The inner
// products against the degree-0/1 SRS terms (G2 and [τ]_2) are inlined
// rather than routed through the general MSM, since they are fixed, tiny
// linear combinations.
func Verify(s *srs.SRS, c curve.G1Point, p Proof, z, y field.Element) (bool, error) {
	if s.NbG2() < 2 {
		return false, nil
	}

	lhsG1 := p.ScalarMul(z).Add(c).Sub(curve.G1Generator().ScalarMul(y))
	ok, err := curve.PairingCheck([]curve.Pair{
		{G1: lhsG1, G2: s.G2[0]},
		{G1: p.Neg(), G2: s.G2[1]},
	})
	if err != nil {
		return false, nil
	}
	return ok, nil
}

// VerifyRaw is the verifier-boundary entry point for a smart-contract-style
// caller: it accepts the six 256-bit integers of a single-point claim —
// (Cx, Cy, πx, πy, z, y), the inverse of PackVerifierParams — straight off
// the wire, with no assumption that they are already-reduced field
// elements or even valid curve coordinates. Every failure mode (a
// coordinate or scalar not strictly less than r, a point off-curve or
// outside its subgroup, an otherwise malformed claim) returns (false, nil),
// never an error: the verifier must be total over adversary-supplied
// bytes, exactly as an on-chain caller needs it to be.
func VerifyRaw(s *srs.SRS, cx, cy, px, py, z, y *big.Int) (bool, error) {
	r := field.Modulus()
	for _, v := range []*big.Int{cx, cy, px, py, z, y} {
		if v == nil || v.Sign() < 0 || v.Cmp(r) >= 0 {
			return false, nil
		}
	}

	c, err := curve.NewG1Point(cx, cy)
	if err != nil {
		return false, nil
	}
	pi, err := curve.NewG1Point(px, py)
	if err != nil {
		return false, nil
	}

	return Verify(s, c, Proof{pi}, field.FromBigInt(z), field.FromBigInt(y))
}

// VerifyEIP197 checks the same single-point opening via the pairing form
// used at the EIP-197 precompile boundary:
//
//	pairing_check([(z·π + C - y·G1, G2), (-π, [τ]_2)])
//
// Algebraically identical to Verify; kept distinct because a
// contract-facing caller packs its inputs through curve.EncodeEIP197
// rather than calling curve.PairingCheck directly.
func VerifyEIP197(s *srs.SRS, c curve.G1Point, p Proof, z, y field.Element) (bool, []byte, error) {
	if s.NbG2() < 2 {
		return false, nil, nil
	}

	lhsG1 := p.ScalarMul(z).Add(c).Sub(curve.G1Generator().ScalarMul(y))
	pairs := []curve.Pair{
		{G1: lhsG1, G2: s.G2[0]},
		{G1: p.Neg(), G2: s.G2[1]},
	}
	ok, err := curve.PairingCheck(pairs)
	if err != nil {
		return false, nil, nil
	}
	return ok, curve.EncodeEIP197(pairs), nil
}

// ProveMulti builds a multi-point opening proof for p at the distinct
// points in zs: i(x) interpolates (zs[j], p(zs[j])), z(x) is the monic
// vanishing polynomial for zs, and the proof commits
// q(x) = (p(x) - i(x)) / z(x) in G2.
func ProveMulti(s *srs.SRS, p poly.Polynomial, zs []field.Element) (MultiProof, error) {
	ys := make([]field.Element, len(zs))
	for j, z := range zs {
		ys[j] = p.Eval(z)
	}

	i, err := poly.Interpolate(zs, ys)
	if err != nil {
		return MultiProof{}, err
	}
	z := poly.ZeroPolynomial(zs)

	q, err := poly.Div(poly.Sub(p, i), z)
	if err != nil {
		return MultiProof{}, err
	}

	c, err := commitment.CommitG2(s, q)
	if err != nil {
		return MultiProof{}, err
	}
	return MultiProof{c}, nil
}

// VerifyMulti checks a multi-point opening: commitment C to p, proof π,
// claims p(zs[j]) = ys[j]. It recomputes i(x) and z(x) itself (never
// trusting caller-supplied coefficients — that trust boundary belongs to
// the on-chain variant, see PackMultiVerifierParams) and checks
//
//	e(-[z]_1, π) · e(C - [i]_1, G2) == 1
//
// equivalently e([z]_1, π) == e(C - [i]_1, G2).
func VerifyMulti(s *srs.SRS, c curve.G1Point, p MultiProof, zs, ys []field.Element) (bool, error) {
	if len(zs) != len(ys) || len(zs) == 0 {
		return false, nil
	}

	i, err := poly.Interpolate(zs, ys)
	if err != nil {
		return false, nil
	}
	z := poly.ZeroPolynomial(zs)

	iC, err := commitment.CommitG1(s, i)
	if err != nil {
		return false, nil
	}
	zC, err := commitment.CommitG1(s, z)
	if err != nil {
		return false, nil
	}

	ok, err := curve.PairingCheck([]curve.Pair{
		{G1: zC.Neg(), G2: p.G2Point},
		{G1: c.Sub(iC), G2: curve.G2Generator()},
	})
	if err != nil {
		return false, nil
	}
	return ok, nil
}

// PackVerifierParams serialises a single-point claim as the six 256-bit
// integers a smart-contract verifier expects: (Cx, Cy, πx, πy, z, y), each
// checked to be strictly less than the BN254 scalar field modulus.
func PackVerifierParams(c curve.G1Point, p Proof, z, y field.Element) (cx, cy, px, py, zOut, yOut *big.Int, err error) {
	cx, cy = c.XY()
	px, py = p.XY()
	zOut, yOut = z.BigInt(), y.BigInt()

	r := field.Modulus()
	for _, v := range []*big.Int{cx, cy, px, py, zOut, yOut} {
		if v.Cmp(r) >= 0 {
			return nil, nil, nil, nil, nil, nil, ErrOutOfRange
		}
	}
	return cx, cy, px, py, zOut, yOut, nil
}

// MultiVerifierParams is the packed contract-facing representation of a
// multi-point opening: the claim (C, π, Z, Y) plus the interpolating and
// vanishing polynomials for Z, in canonical (trailing-zero-trimmed)
// coefficient form, each coefficient reduced mod r. A contract consuming
// these treats iCoeffs/zCoeffs as untrusted and must itself check
// z(Z[j]) = 0 and i(Z[j]) = Y[j] before using them; the off-chain verifier
// in VerifyMulti recomputes them instead of trusting this packing.
type MultiVerifierParams struct {
	Cx, Cy     *big.Int
	Pi         [2][2]*big.Int // G2 point, [x0,x1],[y0,y1]
	Z          []*big.Int
	Y          []*big.Int
	ICoeffs    []*big.Int
	ZCoeffs    []*big.Int
}

// PackMultiVerifierParams builds a MultiVerifierParams for commitment C,
// proof p, and claims (zs[j], ys[j]).
func PackMultiVerifierParams(c curve.G1Point, p MultiProof, zs, ys []field.Element) (MultiVerifierParams, error) {
	if len(zs) != len(ys) || len(zs) == 0 {
		return MultiVerifierParams{}, ErrOutOfRange
	}

	i, err := poly.Interpolate(zs, ys)
	if err != nil {
		return MultiVerifierParams{}, err
	}
	z := poly.ZeroPolynomial(zs)

	r := field.Modulus()
	checkRange := func(vs []*big.Int) error {
		for _, v := range vs {
			if v.Cmp(r) >= 0 {
				return ErrOutOfRange
			}
		}
		return nil
	}

	cx, cy := c.XY()
	px0, px1, py0, py1 := p.Coordinates()

	zOut := make([]*big.Int, len(zs))
	yOut := make([]*big.Int, len(ys))
	for j := range zs {
		zOut[j] = zs[j].BigInt()
		yOut[j] = ys[j].BigInt()
	}
	iCoeffs := canonicalCoeffs(i)
	zCoeffs := canonicalCoeffs(z)

	if err := checkRange([]*big.Int{cx, cy, px0, px1, py0, py1}); err != nil {
		return MultiVerifierParams{}, err
	}
	if err := checkRange(zOut); err != nil {
		return MultiVerifierParams{}, err
	}
	if err := checkRange(yOut); err != nil {
		return MultiVerifierParams{}, err
	}

	return MultiVerifierParams{
		Cx: cx, Cy: cy,
		Pi:      [2][2]*big.Int{{px0, px1}, {py0, py1}},
		Z:       zOut,
		Y:       yOut,
		ICoeffs: iCoeffs,
		ZCoeffs: zCoeffs,
	}, nil
}

// canonicalCoeffs returns p's coefficients as big.Ints with trailing zero
// coefficients trimmed, per the canonical on-chain encoding.
func canonicalCoeffs(p poly.Polynomial) []*big.Int {
	deg := -1
	for i := len(p) - 1; i >= 0; i-- {
		if !p[i].IsZero() {
			deg = i
			break
		}
	}
	out := make([]*big.Int, deg+1)
	for i := 0; i <= deg; i++ {
		out[i] = p[i].BigInt()
	}
	return out
}
