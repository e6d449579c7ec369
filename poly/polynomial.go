// Package poly implements dense polynomial algebra over the BN254 scalar
// field (see package field). A Polynomial is a coefficient vector, index i
// holding the coefficient of x^i; trailing zero coefficients are permitted
// and are not trimmed automatically, since the logical degree bound (not
// the trimmed degree) is what callers in commitment and proof depend on.
package poly

import (
	"github.com/weijiekoh/libkzg/field"
	"github.com/weijiekoh/libkzg/internal/parallel"
)

// parallelThreshold is the smallest size (Mul's output length,
// Interpolate's number of points) at which Mul and Interpolate bother
// splitting work across goroutines; below it the scheduling overhead
// outweighs the savings.
const parallelThreshold = 256

// Polynomial is a dense coefficient vector over field.Element.
type Polynomial []field.Element

// New copies coeffs into a new Polynomial.
func New(coeffs []field.Element) Polynomial {
	p := make(Polynomial, len(coeffs))
	copy(p, coeffs)
	return p
}

// Degree returns the logical degree bound, len(p)-1 for a nonempty p. The
// zero polynomial (len 0) has degree -1 by convention.
func (p Polynomial) Degree() int {
	return len(p) - 1
}

// Eval returns p(x) via Horner's method.
func (p Polynomial) Eval(x field.Element) field.Element {
	if len(p) == 0 {
		return field.Zero()
	}
	acc := p[len(p)-1]
	for i := len(p) - 2; i >= 0; i-- {
		acc = acc.Mul(x).Add(p[i])
	}
	return acc
}

// Add returns a + b, padding the shorter operand with zeros.
func Add(a, b Polynomial) Polynomial {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	out := make(Polynomial, n)
	for i := 0; i < n; i++ {
		var av, bv field.Element
		if i < len(a) {
			av = a[i]
		}
		if i < len(b) {
			bv = b[i]
		}
		out[i] = av.Add(bv)
	}
	return out
}

// Sub returns a - b, padding the shorter operand with zeros.
func Sub(a, b Polynomial) Polynomial {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	out := make(Polynomial, n)
	for i := 0; i < n; i++ {
		var av, bv field.Element
		if i < len(a) {
			av = a[i]
		}
		if i < len(b) {
			bv = b[i]
		}
		out[i] = av.Sub(bv)
	}
	return out
}

// Scale returns c * p, coefficient-wise.
func Scale(p Polynomial, c field.Element) Polynomial {
	out := make(Polynomial, len(p))
	for i := range p {
		out[i] = p[i].Mul(c)
	}
	return out
}

// Mul returns a * b via schoolbook O(len(a)*len(b)) convolution. Above
// parallelThreshold output coefficients, the output range is split across
// goroutines; each goroutine computes a disjoint set of output indices
// independently, so the result is identical regardless of GOMAXPROCS.
func Mul(a, b Polynomial) Polynomial {
	if len(a) == 0 || len(b) == 0 {
		return Polynomial{}
	}
	out := make(Polynomial, len(a)+len(b)-1)

	compute := func(lo, hi int) {
		for k := lo; k < hi; k++ {
			var sum field.Element
			jlo, jhi := 0, k
			if k >= len(a) {
				jlo = k - len(a) + 1
			}
			if jhi > len(b)-1 {
				jhi = len(b) - 1
			}
			for j := jlo; j <= jhi; j++ {
				sum = sum.Add(a[k-j].Mul(b[j]))
			}
			out[k] = sum
		}
	}

	if len(out) < parallelThreshold {
		compute(0, len(out))
	} else {
		parallel.Execute(0, len(out), compute)
	}
	return out
}

// Div computes the exact quotient q = p / d by high-to-low long division.
// It fails with ErrInexactDivision if a nonzero remainder remains. d must be
// nonzero (a nonzero leading coefficient after trimming trailing zeros).
func Div(p, d Polynomial) (Polynomial, error) {
	dDeg := trimmedDegree(d)
	if dDeg < 0 {
		return nil, ErrInexactDivision
	}
	pDeg := trimmedDegree(p)
	if pDeg < dDeg {
		for _, c := range p {
			if !c.IsZero() {
				return nil, ErrInexactDivision
			}
		}
		return Polynomial{}, nil
	}

	remainder := make(Polynomial, pDeg+1)
	copy(remainder, p[:pDeg+1])

	lead := d[dDeg]
	leadInv, err := lead.Inverse()
	if err != nil {
		return nil, ErrInexactDivision
	}

	qLen := pDeg - dDeg + 1
	quotient := make(Polynomial, qLen)

	for k := pDeg; k >= dDeg; k-- {
		coeff := remainder[k].Mul(leadInv)
		quotient[k-dDeg] = coeff
		if coeff.IsZero() {
			continue
		}
		for j := 0; j <= dDeg; j++ {
			remainder[k-dDeg+j] = remainder[k-dDeg+j].Sub(coeff.Mul(d[j]))
		}
	}

	for i := 0; i <= pDeg-dDeg; i++ {
		if !remainder[i].IsZero() {
			return nil, ErrInexactDivision
		}
	}
	return quotient, nil
}

// trimmedDegree returns the degree of p after disregarding trailing zero
// coefficients, or -1 if p is the zero polynomial.
func trimmedDegree(p Polynomial) int {
	for i := len(p) - 1; i >= 0; i-- {
		if !p[i].IsZero() {
			return i
		}
	}
	return -1
}

// Interpolate returns the unique polynomial of degree < len(xs) with
// p(xs[i]) = ys[i], via Lagrange interpolation in coefficient form. xs must
// be pairwise distinct, else ErrDuplicateAbscissa.
func Interpolate(xs, ys []field.Element) (Polynomial, error) {
	n := len(xs)
	if n != len(ys) {
		panic("poly: Interpolate requires len(xs) == len(ys)")
	}
	if n == 0 {
		return Polynomial{}, nil
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if xs[i].Equal(xs[j]) {
				return nil, ErrDuplicateAbscissa
			}
		}
	}

	terms := make([]Polynomial, n)
	compute := func(lo, hi int) {
		for i := lo; i < hi; i++ {
			// numerator: product over j != i of (x - xs[j])
			numerator := Polynomial{field.One()}
			denom := field.One()
			for j := 0; j < n; j++ {
				if j == i {
					continue
				}
				numerator = Mul(numerator, Polynomial{xs[j].Neg(), field.One()})
				denom = denom.Mul(xs[i].Sub(xs[j]))
			}
			denomInv, err := denom.Inverse()
			if err != nil {
				// unreachable: xs pairwise distinct implies denom != 0
				panic("poly: Interpolate hit a zero denominator with distinct abscissae")
			}
			terms[i] = Scale(numerator, ys[i].Mul(denomInv))
		}
	}

	if n < parallelThreshold {
		compute(0, n)
	} else {
		parallel.Execute(0, n, compute)
	}

	result := Polynomial(make([]field.Element, n))
	for _, t := range terms {
		result = Add(result, t)
	}
	return result, nil
}

// GenCoefficients returns the polynomial p of degree < len(values) with
// p(i) = values[i] for i = 0..len(values)-1.
func GenCoefficients(values []field.Element) (Polynomial, error) {
	xs := make([]field.Element, len(values))
	for i := range xs {
		xs[i] = field.FromUint64(uint64(i))
	}
	return Interpolate(xs, values)
}

// ZeroPolynomial returns the monic vanishing polynomial Π (x - indices[i]),
// of degree len(indices).
func ZeroPolynomial(indices []field.Element) Polynomial {
	result := Polynomial{field.One()}
	for _, idx := range indices {
		result = Mul(result, Polynomial{idx.Neg(), field.One()})
	}
	return result
}
