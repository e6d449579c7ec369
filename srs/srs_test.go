package srs_test

import (
	"crypto/rand"
	"encoding/json"
	"math/big"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/weijiekoh/libkzg/curve"
	"github.com/weijiekoh/libkzg/field"
	"github.com/weijiekoh/libkzg/srs"
)

// writeSRSFiles materializes a valid powers-of-tau SRS of n G1 powers and 2
// G2 powers into JSON files in the format srs.Load expects, returning their
// paths. The points are computed with real curve arithmetic (not hardcoded
// constants), so this doubles as a round-trip check of the on-disk format.
func writeSRSFiles(t *testing.T, dir string, n int) (g1Path, g2Path string) {
	t.Helper()

	tau, err := field.Random(rand.Reader)
	require.NoError(t, err)

	g1 := curve.G1Generator()
	g2 := curve.G2Generator()

	g1Rows := make([][2]string, n)
	acc := field.One()
	for i := 0; i < n; i++ {
		x, y := g1.ScalarMul(acc).XY()
		g1Rows[i] = [2]string{hexOf(x), hexOf(y)}
		acc = acc.Mul(tau)
	}

	g2Points := []struct{ x0, x1, y0, y1 *big.Int }{}
	for _, p := range []curve.G2Point{g2, g2.ScalarMul(tau)} {
		x0, x1, y0, y1 := p.Coordinates()
		g2Points = append(g2Points, struct{ x0, x1, y0, y1 *big.Int }{x0, x1, y0, y1})
	}
	g2Rows := make([][4]string, len(g2Points))
	for i, p := range g2Points {
		g2Rows[i] = [4]string{hexOf(p.x0), hexOf(p.x1), hexOf(p.y0), hexOf(p.y1)}
	}

	g1Path = filepath.Join(dir, "g1.json")
	g2Path = filepath.Join(dir, "g2.json")
	writeJSON(t, g1Path, g1Rows)
	writeJSON(t, g2Path, g2Rows)
	return g1Path, g2Path
}

func hexOf(v *big.Int) string { return "0x" + v.Text(16) }

func writeJSON(t *testing.T, path string, v any) {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o644))
}

func TestLoadValidSRS(t *testing.T) {
	dir := t.TempDir()
	g1Path, g2Path := writeSRSFiles(t, dir, 5)

	s, err := srs.Load(g1Path, g2Path, 5, 2)
	require.NoError(t, err)
	require.Equal(t, 5, s.NbG1())
	require.Equal(t, 2, s.NbG2())
	require.True(t, s.G1[0].Equal(curve.G1Generator()))
	require.True(t, s.G2[0].Equal(curve.G2Generator()))
}

func TestLoadCapTooLargeFails(t *testing.T) {
	dir := t.TempDir()
	g1Path, g2Path := writeSRSFiles(t, dir, 3)

	_, err := srs.Load(g1Path, g2Path, 10, 2)
	require.ErrorIs(t, err, srs.ErrMalformed)
}

func TestLoadCapZeroFails(t *testing.T) {
	dir := t.TempDir()
	g1Path, g2Path := writeSRSFiles(t, dir, 3)

	_, err := srs.Load(g1Path, g2Path, 0, 2)
	require.ErrorIs(t, err, srs.ErrMalformed)
}

func TestLoadRejectsWrongGenerator(t *testing.T) {
	dir := t.TempDir()
	g1Path, g2Path := writeSRSFiles(t, dir, 3)

	// corrupt g1[0] so it is no longer the canonical generator.
	raw, err := os.ReadFile(g1Path)
	require.NoError(t, err)
	var rows [][2]string
	require.NoError(t, json.Unmarshal(raw, &rows))
	rows[0][1] = hexOf(big.NewInt(999999937)) // a y that is not 2, and (1,y) is off-curve
	writeJSON(t, g1Path, rows)

	_, err = srs.Load(g1Path, g2Path, 3, 2)
	require.ErrorIs(t, err, srs.ErrMalformed)
}

func TestNewTestSRS(t *testing.T) {
	s, err := srs.NewTestSRS(8, rand.Reader)
	require.NoError(t, err)
	require.Equal(t, 8, s.NbG1())
	require.Equal(t, 2, s.NbG2())
	require.True(t, s.G1[0].Equal(curve.G1Generator()))
	require.True(t, s.G2[0].Equal(curve.G2Generator()))
}

func TestNewTestSRSRejectsZeroSize(t *testing.T) {
	_, err := srs.NewTestSRS(0, rand.Reader)
	require.ErrorIs(t, err, srs.ErrMalformed)
}
