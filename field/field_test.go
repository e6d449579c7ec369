package field_test

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/weijiekoh/libkzg/field"
)

func TestAddSubNeg(t *testing.T) {
	a := field.FromUint64(5)
	b := field.FromUint64(7)

	require.True(t, a.Add(b).Equal(field.FromUint64(12)))
	require.True(t, a.Sub(b).Equal(b.Sub(a).Neg()))
	require.True(t, a.Add(a.Neg()).Equal(field.Zero()))
}

func TestMulInverse(t *testing.T) {
	a := field.FromUint64(12345)
	inv, err := a.Inverse()
	require.NoError(t, err)
	require.True(t, a.Mul(inv).Equal(field.One()))
}

func TestInverseOfZeroFails(t *testing.T) {
	_, err := field.Zero().Inverse()
	require.ErrorIs(t, err, field.ErrNoInverse)
}

func TestPow(t *testing.T) {
	a := field.FromUint64(3)
	require.True(t, a.Pow(big.NewInt(4)).Equal(field.FromUint64(81)))
	require.True(t, a.Pow(big.NewInt(0)).Equal(field.One()))
}

func TestFromBigIntReduces(t *testing.T) {
	r := field.Modulus()
	over := new(big.Int).Add(r, big.NewInt(41))
	got := field.FromBigInt(over)
	require.True(t, got.Equal(field.FromUint64(41)))
}

func TestRandomIsReducedAndVaries(t *testing.T) {
	src := rand.New(rand.NewSource(1))
	a, err := field.Random(src)
	require.NoError(t, err)
	b, err := field.Random(src)
	require.NoError(t, err)
	require.False(t, a.Equal(b))
	require.True(t, a.BigInt().Cmp(field.Modulus()) < 0)
}

func TestBigIntRoundTrip(t *testing.T) {
	n := big.NewInt(987654321)
	e := field.FromBigInt(n)
	require.Equal(t, 0, n.Cmp(e.BigInt()))
}
