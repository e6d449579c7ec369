// Package field implements arithmetic over the BN254 scalar field
//
//	r = 21888242871839275222246405745257275088548364400416034343698204186575808495617
//
// Element wraps github.com/consensys/gnark-crypto/ecc/bn254/fr.Element, which
// stores values in Montgomery form; every constructor below reduces its
// input into [0, r).
package field

import (
	"crypto/rand"
	"io"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Element is a value in [0, r), the BN254 scalar field.
type Element struct {
	inner fr.Element
}

// Modulus returns r, the BN254 scalar field prime.
func Modulus() *big.Int {
	return fr.Modulus()
}

// Zero returns the additive identity.
func Zero() Element {
	return Element{}
}

// One returns the multiplicative identity.
func One() Element {
	var e Element
	e.inner.SetOne()
	return e
}

// FromUint64 reduces v mod r.
func FromUint64(v uint64) Element {
	var e Element
	e.inner.SetUint64(v)
	return e
}

// FromBigInt reduces v mod r. v is not mutated.
func FromBigInt(v *big.Int) Element {
	var e Element
	e.inner.SetBigInt(v)
	return e
}

// FromFr wraps an already-reduced gnark-crypto element, the inverse of Fr.
func FromFr(v fr.Element) Element {
	return Element{inner: v}
}

// Fr returns the underlying gnark-crypto representation, for packages
// (commitment) that hand scalars directly to gnark-crypto's
// multi-scalar-multiplication routines.
func (e Element) Fr() fr.Element {
	return e.inner
}

// BigInt returns the canonical representative of e in [0, r).
func (e Element) BigInt() *big.Int {
	var z big.Int
	e.inner.BigInt(&z)
	return &z
}

// IsZero reports whether e is the additive identity.
func (e Element) IsZero() bool {
	return e.inner.IsZero()
}

// Add returns e + o.
func (e Element) Add(o Element) Element {
	var z Element
	z.inner.Add(&e.inner, &o.inner)
	return z
}

// Sub returns e - o.
func (e Element) Sub(o Element) Element {
	var z Element
	z.inner.Sub(&e.inner, &o.inner)
	return z
}

// Neg returns -e.
func (e Element) Neg() Element {
	var z Element
	z.inner.Neg(&e.inner)
	return z
}

// Mul returns e * o.
func (e Element) Mul(o Element) Element {
	var z Element
	z.inner.Mul(&e.inner, &o.inner)
	return z
}

// Inverse returns 1/e. It fails with ErrNoInverse when e is zero.
func (e Element) Inverse() (Element, error) {
	if e.inner.IsZero() {
		return Element{}, ErrNoInverse
	}
	var z Element
	z.inner.Inverse(&e.inner)
	return z, nil
}

// Pow returns e^k, k interpreted as a non-negative big-endian exponent.
func (e Element) Pow(k *big.Int) Element {
	var z Element
	z.inner.Exp(e.inner, k)
	return z
}

// Equal reports whether e and o represent the same field element.
func (e Element) Equal(o Element) bool {
	return e.inner.Equal(&o.inner)
}

// String renders the canonical decimal representation, for logging and test
// failure messages.
func (e Element) String() string {
	return e.inner.String()
}

// Random samples an element uniformly from [0, r) using r as the entropy
// source. Pass crypto/rand.Reader in production; tests may pass a seeded
// math/rand.Rand (which also implements io.Reader) for reproducibility.
func Random(r io.Reader) (Element, error) {
	n, err := rand.Int(r, Modulus())
	if err != nil {
		return Element{}, err
	}
	return FromBigInt(n), nil
}
