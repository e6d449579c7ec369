// Package srs loads and validates the KZG structured reference string: the
// sequence of powers of a secret τ in both G1 and G2, generated once during
// a trusted-setup ceremony. The SRS is treated as an injected, validated
// resource — this package never performs the ceremony, only checks that
// what it is handed is internally consistent.
package srs

import (
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"os"

	"github.com/weijiekoh/libkzg/curve"
	"github.com/weijiekoh/libkzg/field"
	"github.com/weijiekoh/libkzg/internal/srsceremony"
	"github.com/weijiekoh/libkzg/logger"
)

// SRS holds the powers-of-τ commitment key in both groups:
// G1[i] = τ^i·G1, G2[i] = τ^i·G2. It is immutable after construction and
// safe to share across any number of concurrent prover/verifier calls.
type SRS struct {
	G1 []curve.G1Point
	G2 []curve.G2Point
}

// NbG1 returns the number of available G1 powers, i.e. the largest
// polynomial degree bound + 1 this SRS can commit to in G1.
func (s *SRS) NbG1() int { return len(s.G1) }

// NbG2 returns the number of available G2 powers.
func (s *SRS) NbG2() int { return len(s.G2) }

type hexG1 [2]string   // [x, y]
type hexG2 [4]string   // [x0, x1, y0, y1]

// Load reads g1Path (array of [x_hex, y_hex]) and g2Path (array of
// [x0_hex, x1_hex, y0_hex, y1_hex]), keeps the first capG1/capG2 entries of
// each, and validates the result per spec: both caps at least 1 and no
// larger than what the files provide, g1[0]/g2[0] must be the canonical
// generators, and every point must lie on its curve and in its subgroup.
func Load(g1Path, g2Path string, capG1, capG2 int) (*SRS, error) {
	g1Hex, err := readHexList[hexG1](g1Path)
	if err != nil {
		return nil, fmt.Errorf("srs: reading G1 file: %w", err)
	}
	g2Hex, err := readHexList[hexG2](g2Path)
	if err != nil {
		return nil, fmt.Errorf("srs: reading G2 file: %w", err)
	}

	if capG1 < 1 || capG1 > len(g1Hex) {
		return nil, fmt.Errorf("%w: capG1=%d out of range [1,%d]", ErrMalformed, capG1, len(g1Hex))
	}
	if capG2 < 1 || capG2 > len(g2Hex) {
		return nil, fmt.Errorf("%w: capG2=%d out of range [1,%d]", ErrMalformed, capG2, len(g2Hex))
	}

	g1Points := make([]curve.G1Point, capG1)
	for i := 0; i < capG1; i++ {
		x, err := parseHexBigInt(g1Hex[i][0])
		if err != nil {
			return nil, fmt.Errorf("%w: G1[%d].x: %v", ErrMalformed, i, err)
		}
		y, err := parseHexBigInt(g1Hex[i][1])
		if err != nil {
			return nil, fmt.Errorf("%w: G1[%d].y: %v", ErrMalformed, i, err)
		}
		p, err := curve.NewG1Point(x, y)
		if err != nil {
			return nil, fmt.Errorf("%w: G1[%d]: %v", ErrMalformed, i, err)
		}
		g1Points[i] = p
	}
	if !g1Points[0].Equal(curve.G1Generator()) {
		return nil, fmt.Errorf("%w: G1[0] is not the canonical generator", ErrMalformed)
	}

	g2Points := make([]curve.G2Point, capG2)
	for i := 0; i < capG2; i++ {
		coords := [4]*big.Int{}
		for j := 0; j < 4; j++ {
			v, err := parseHexBigInt(g2Hex[i][j])
			if err != nil {
				return nil, fmt.Errorf("%w: G2[%d][%d]: %v", ErrMalformed, i, j, err)
			}
			coords[j] = v
		}
		p, err := curve.NewG2Point(coords[0], coords[1], coords[2], coords[3])
		if err != nil {
			return nil, fmt.Errorf("%w: G2[%d]: %v", ErrMalformed, i, err)
		}
		g2Points[i] = p
	}
	if !g2Points[0].Equal(curve.G2Generator()) {
		return nil, fmt.Errorf("%w: G2[0] is not the canonical generator", ErrMalformed)
	}

	log := logger.Logger()
	log.Info().
		Int("capG1", capG1).
		Int("capG2", capG2).
		Msg("srs: loaded and validated structured reference string")

	return &SRS{G1: g1Points, G2: g2Points}, nil
}

// LoadFromCeremony reads a ceremony transcript directory (manifest.json
// plus transcriptNN.dat files, see internal/srsceremony) and builds an SRS
// from its first capG1 G1 powers and capG2 G2 powers, applying the same
// generator and range checks as Load.
func LoadFromCeremony(transcriptDir string, capG1, capG2 int) (*SRS, error) {
	t, err := srsceremony.Read(transcriptDir)
	if err != nil {
		return nil, fmt.Errorf("srs: reading ceremony transcript: %w", err)
	}

	if capG1 < 1 || capG1 > len(t.G1) {
		return nil, fmt.Errorf("%w: capG1=%d out of range [1,%d]", ErrMalformed, capG1, len(t.G1))
	}
	if capG2 < 1 || capG2 > len(t.G2) {
		return nil, fmt.Errorf("%w: capG2=%d out of range [1,%d]", ErrMalformed, capG2, len(t.G2))
	}

	g1Points := make([]curve.G1Point, capG1)
	for i := 0; i < capG1; i++ {
		g1Points[i] = curve.FromInnerG1(t.G1[i])
	}
	if !g1Points[0].Equal(curve.G1Generator()) {
		return nil, fmt.Errorf("%w: G1[0] is not the canonical generator", ErrMalformed)
	}

	g2Points := make([]curve.G2Point, capG2)
	for i := 0; i < capG2; i++ {
		g2Points[i] = curve.FromInnerG2(t.G2[i])
	}
	if !g2Points[0].Equal(curve.G2Generator()) {
		return nil, fmt.Errorf("%w: G2[0] is not the canonical generator", ErrMalformed)
	}

	log := logger.Logger()
	log.Info().
		Str("transcriptDir", transcriptDir).
		Int("capG1", capG1).
		Int("capG2", capG2).
		Msg("srs: loaded and validated structured reference string from ceremony transcript")

	return &SRS{G1: g1Points, G2: g2Points}, nil
}

func readHexList[T any](path string) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []T
	if err := json.NewDecoder(f).Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}

func parseHexBigInt(s string) (*big.Int, error) {
	trimmed := s
	if len(trimmed) >= 2 && trimmed[0] == '0' && (trimmed[1] == 'x' || trimmed[1] == 'X') {
		trimmed = trimmed[2:]
	}
	v, ok := new(big.Int).SetString(trimmed, 16)
	if !ok {
		return nil, fmt.Errorf("invalid hex integer %q", s)
	}
	return v, nil
}

// NewTestSRS builds an SRS of size n (n G1 powers, 2 G2 powers) from a
// randomly sampled τ read from r. It is for unit tests only: production
// callers must use Load against a real trusted-setup output (the Perpetual
// Powers of Tau challenge #46 transcript, Blake2b hash
// 939038cd...444dfbed), never a locally generated τ.
func NewTestSRS(n int, r io.Reader) (*SRS, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: n=%d must be >= 1", ErrMalformed, n)
	}
	tau, err := field.Random(r)
	if err != nil {
		return nil, err
	}

	g1Points := make([]curve.G1Point, n)
	g1 := curve.G1Generator()
	acc := field.One()
	for i := 0; i < n; i++ {
		g1Points[i] = g1.ScalarMul(acc)
		acc = acc.Mul(tau)
	}

	g2 := curve.G2Generator()
	g2Points := []curve.G2Point{g2, g2.ScalarMul(tau)}

	return &SRS{G1: g1Points, G2: g2Points}, nil
}
