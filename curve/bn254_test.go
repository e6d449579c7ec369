package curve_test

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/weijiekoh/libkzg/curve"
	"github.com/weijiekoh/libkzg/field"
)

func randScalar(t *testing.T) field.Element {
	t.Helper()
	s, err := field.Random(rand.Reader)
	require.NoError(t, err)
	return s
}

func TestGeneratorsOnCurveAndInSubgroup(t *testing.T) {
	g1 := curve.G1Generator()
	require.True(t, g1.IsOnCurve())
	require.True(t, g1.IsInSubgroup())

	g2 := curve.G2Generator()
	require.True(t, g2.IsOnCurve())
	require.True(t, g2.IsInSubgroup())
}

func TestG1AddNegSub(t *testing.T) {
	g1 := curve.G1Generator()
	s := randScalar(t)
	p := g1.ScalarMul(s)

	sum := p.Add(p.Neg())
	require.True(t, sum.Equal(curve.G1Identity()))

	require.True(t, p.Sub(p).Equal(curve.G1Identity()))
}

func TestScalarMulDistributesOverAdd(t *testing.T) {
	g1 := curve.G1Generator()
	a := randScalar(t)
	b := randScalar(t)

	lhs := g1.ScalarMul(a.Add(b))
	rhs := g1.ScalarMul(a).Add(g1.ScalarMul(b))
	require.True(t, lhs.Equal(rhs))
}

// TestPairingSanity checks e(P,Q)*e(-P,Q) = 1 and e(P,Q+R) = e(P,Q)*e(P,R),
// the literal pairing sanity scenario from the testable properties.
func TestPairingSanity(t *testing.T) {
	g1 := curve.G1Generator()
	g2 := curve.G2Generator()

	p := g1.ScalarMul(randScalar(t))
	q := g2.ScalarMul(randScalar(t))
	r := g2.ScalarMul(randScalar(t))

	ok, err := curve.PairingCheck([]curve.Pair{{G1: p, G2: q}, {G1: p.Neg(), G2: q}})
	require.NoError(t, err)
	require.True(t, ok)

	// e(p, q+r) . e(-p, q) . e(-p, r) == 1, i.e. e(p, q+r) == e(p,q).e(p,r).
	qr := q.Add(r)
	ok, err = curve.PairingCheck([]curve.Pair{
		{G1: p, G2: qr},
		{G1: p.Neg(), G2: q},
		{G1: p.Neg(), G2: r},
	})
	require.NoError(t, err)
	require.True(t, ok)
}

func TestPairingCheckEmptyFails(t *testing.T) {
	_, err := curve.PairingCheck(nil)
	require.ErrorIs(t, err, curve.ErrEmptyPairing)
}

func TestEIP197RoundTrip(t *testing.T) {
	g1 := curve.G1Generator()
	g2 := curve.G2Generator()
	p := g1.ScalarMul(randScalar(t))
	q := g2.ScalarMul(randScalar(t))

	pairs := []curve.Pair{{G1: p, G2: q}}
	encoded := curve.EncodeEIP197(pairs)
	require.Len(t, encoded, 192)

	decoded, err := curve.DecodeEIP197(encoded)
	require.NoError(t, err)
	require.Len(t, decoded, 1)
	require.True(t, decoded[0].G1.Equal(p))
	require.True(t, decoded[0].G2.Equal(q))
}

func TestNewG1PointRejectsOffCurve(t *testing.T) {
	x, y := curve.G1Generator().XY()
	y.Add(y, y) // (x, 2y) is (almost certainly) not on the curve
	_, err := curve.NewG1Point(x, y)
	require.Error(t, err)
}
