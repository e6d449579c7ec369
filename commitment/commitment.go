// Package commitment computes KZG commitments: a polynomial's coefficients
// folded against the SRS's powers of τ via multi-scalar multiplication,
// collapsing an arbitrary-degree polynomial into a single curve point.
package commitment

import (
	"fmt"
	"runtime"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/weijiekoh/libkzg/curve"
	"github.com/weijiekoh/libkzg/field"
	"github.com/weijiekoh/libkzg/poly"
	"github.com/weijiekoh/libkzg/srs"
)

// CommitG1 returns ∑ᵢ coeffs[i]·srs.G1[i], the KZG commitment to p in G1.
// An empty polynomial commits to the identity. CommitG1 fails if p has more
// coefficients than the SRS has G1 powers.
func CommitG1(s *srs.SRS, p poly.Polynomial) (curve.G1Point, error) {
	if len(p) > s.NbG1() {
		return curve.G1Point{}, fmt.Errorf("%w: degree+1=%d, SRS has %d G1 powers", ErrTooManyCoefficients, len(p), s.NbG1())
	}
	if len(p) == 0 {
		return curve.G1Identity(), nil
	}

	points := make([]bn254.G1Affine, len(p))
	scalars := make([]fr.Element, len(p))
	for i, c := range p {
		points[i] = s.G1[i].Inner()
		scalars[i] = c.Fr()
	}

	var res bn254.G1Affine
	if _, err := res.MultiExp(points, scalars, ecc.MultiExpConfig{NbTasks: runtime.NumCPU()}); err != nil {
		return curve.G1Point{}, fmt.Errorf("commitment: MultiExp: %w", err)
	}
	return curve.FromInnerG1(res), nil
}

// CommitG2 returns ∑ᵢ coeffs[i]·srs.G2[i], the same fold carried out in G2.
// Used for the quotient commitment in multi-point openings, where the
// spec's verifier equation requires the opposite group from the main
// commitment.
func CommitG2(s *srs.SRS, p poly.Polynomial) (curve.G2Point, error) {
	if len(p) > s.NbG2() {
		return curve.G2Point{}, fmt.Errorf("%w: degree+1=%d, SRS has %d G2 powers", ErrTooManyCoefficients, len(p), s.NbG2())
	}
	if len(p) == 0 {
		return curve.G2Identity(), nil
	}

	points := make([]bn254.G2Affine, len(p))
	scalars := make([]fr.Element, len(p))
	for i, c := range p {
		points[i] = s.G2[i].Inner()
		scalars[i] = c.Fr()
	}

	var res bn254.G2Affine
	if _, err := res.MultiExp(points, scalars, ecc.MultiExpConfig{NbTasks: runtime.NumCPU()}); err != nil {
		return curve.G2Point{}, fmt.Errorf("commitment: MultiExp: %w", err)
	}
	return curve.FromInnerG2(res), nil
}

// CommitCoeffsG1 commits raw coefficients directly, for callers that
// already hold a []field.Element rather than a poly.Polynomial.
func CommitCoeffsG1(s *srs.SRS, coeffs []field.Element) (curve.G1Point, error) {
	return CommitG1(s, poly.Polynomial(coeffs))
}
