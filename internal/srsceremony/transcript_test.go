package srsceremony_test

import (
	"encoding/binary"
	"encoding/json"
	"math/big"
	"os"
	"path/filepath"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/blake2b"

	"github.com/weijiekoh/libkzg/internal/srsceremony"
)

// writeTranscript materializes a single-file, single-transcript ceremony
// directory (n G1 powers of a random tau, plus G2 and tau*G2) and returns
// its path. The points are produced with real curve arithmetic, not
// hardcoded constants.
func writeTranscript(t *testing.T, n int) string {
	t.Helper()
	dir := t.TempDir()

	var tau fr.Element
	tau.SetRandom()

	_, _, g1Gen, g2Gen := bn254.Generators()

	g1 := make([]bn254.G1Affine, n)
	var acc fr.Element
	acc.SetOne()
	for i := 0; i < n; i++ {
		var scalar big.Int
		acc.BigInt(&scalar)
		g1[i].ScalarMultiplication(&g1Gen, &scalar)
		acc.Mul(&acc, &tau)
	}

	var tauBig big.Int
	tau.BigInt(&tauBig)
	var g2Tau bn254.G2Affine
	g2Tau.ScalarMultiplication(&g2Gen, &tauBig)

	manifest := map[string]any{
		"name":                "test-ceremony",
		"numG1Points":         n,
		"numG2Points":         2,
		"pointsPerTranscript": n,
		"network":             "test",
	}
	mb, err := json.Marshal(manifest)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "manifest.json"), mb, 0o644))

	var buf []byte
	header := make([]byte, 28)
	binary.BigEndian.PutUint32(header[0:4], 0)
	binary.BigEndian.PutUint32(header[4:8], 1)
	binary.BigEndian.PutUint32(header[8:12], uint32(n))
	binary.BigEndian.PutUint32(header[12:16], 2)
	binary.BigEndian.PutUint32(header[16:20], uint32(n))
	binary.BigEndian.PutUint32(header[20:24], 2)
	binary.BigEndian.PutUint32(header[24:28], 0)
	buf = append(buf, header...)

	for i := range g1 {
		raw := g1[i].RawBytes()
		buf = append(buf, raw[:]...)
	}
	g2rawA := g2Gen.RawBytes()
	g2rawB := g2Tau.RawBytes()
	buf = append(buf, g2rawA[:]...)
	buf = append(buf, g2rawB[:]...)

	sum := blake2b.Sum512(buf)
	buf = append(buf, sum[:]...)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "transcript00.dat"), buf, 0o644))
	return dir
}

func TestReadValidTranscript(t *testing.T) {
	dir := writeTranscript(t, 4)

	tr, err := srsceremony.Read(dir)
	require.NoError(t, err)
	require.Len(t, tr.G1, 4)

	_, _, g1Gen, g2Gen := bn254.Generators()
	require.True(t, tr.G1[0].Equal(&g1Gen))
	require.True(t, tr.G2[0].Equal(&g2Gen))
}

func TestReadRejectsCorruptedChecksum(t *testing.T) {
	dir := writeTranscript(t, 3)

	path := filepath.Join(dir, "transcript00.dat")
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	b[len(b)-1] ^= 0xff
	require.NoError(t, os.WriteFile(path, b, 0o644))

	_, err = srsceremony.Read(dir)
	require.Error(t, err)
}

func TestReadMissingManifestFails(t *testing.T) {
	dir := t.TempDir()
	_, err := srsceremony.Read(dir)
	require.Error(t, err)
}
