package srsceremony

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"golang.org/x/crypto/blake2b"

	"github.com/weijiekoh/libkzg/internal/parallel"
)

const transcriptHeaderSize = 28
const checksumSize = 64

// Transcript holds the powers of τ recovered from a ceremony's transcript
// files: g1[i] = τ^i·G1 for i in [0, NumG1Points), and the two G2 points
// G2 and τ·G2.
type Transcript struct {
	G1 []bn254.G1Affine
	G2 [2]bn254.G2Affine
}

// Read loads every transcriptNN.dat file under dir, in order, validating
// each file's trailing Blake2b-512 checksum and every recovered point's
// curve/subgroup membership. It has no notion of a participant or a chain
// of prior contributions: a local transcript directory is either the
// ceremony's published output or it isn't, and this function only checks
// internal consistency, exactly as srs.Load does for the JSON SRS format.
func Read(dir string) (Transcript, error) {
	m, err := ReadManifest(dir)
	if err != nil {
		return Transcript{}, err
	}

	t := Transcript{G1: make([]bn254.G1Affine, m.NumG1Points)}

	for i := 0; ; i++ {
		path := filepath.Join(dir, fmt.Sprintf("transcript%02d.dat", i))
		b, err := os.ReadFile(path)
		if os.IsNotExist(err) {
			break
		}
		if err != nil {
			return Transcript{}, fmt.Errorf("srsceremony: reading %s: %w", path, err)
		}
		if len(b) < transcriptHeaderSize {
			return Transcript{}, fmt.Errorf("srsceremony: %s: truncated header", path)
		}

		h := parseTranscriptHeader(b)
		if int(h.TotalTranscripts) > 64 {
			return Transcript{}, fmt.Errorf("srsceremony: %s: implausible transcript count %d", path, h.TotalTranscripts)
		}

		offset := transcriptHeaderSize
		end := int(h.StartFrom) + int(h.NumG1Points)
		if end > len(t.G1) {
			return Transcript{}, fmt.Errorf("srsceremony: %s: points [%d,%d) exceed manifest size %d", path, h.StartFrom, end, len(t.G1))
		}
		n, err := readG1Points(b[offset:], t.G1[h.StartFrom:end])
		if err != nil {
			return Transcript{}, fmt.Errorf("srsceremony: %s: %w", path, err)
		}
		offset += n

		if i == 0 {
			n, err := readG2Points(b[offset:], &t.G2)
			if err != nil {
				return Transcript{}, fmt.Errorf("srsceremony: %s: %w", path, err)
			}
			offset += n
			if !t.G2[0].IsInSubGroup() || !t.G2[1].IsInSubGroup() {
				return Transcript{}, fmt.Errorf("srsceremony: %s: G2 point not in subgroup", path)
			}
		}

		if len(b) < offset+checksumSize {
			return Transcript{}, fmt.Errorf("srsceremony: %s: truncated checksum", path)
		}
		sum := blake2b.Sum512(b[:offset])
		if !bytes.Equal(b[offset:offset+checksumSize], sum[:]) {
			return Transcript{}, fmt.Errorf("srsceremony: %s: checksum mismatch", path)
		}

		if int(h.TranscriptNumber)+1 >= int(h.TotalTranscripts) {
			break
		}
	}

	var nbErrs uint64
	parallel.Execute(0, len(t.G1), func(start, end int) {
		for i := start; i < end; i++ {
			if !t.G1[i].IsInSubGroup() {
				atomic.AddUint64(&nbErrs, 1)
			}
		}
	})
	if nbErrs > 0 {
		return Transcript{}, fmt.Errorf("srsceremony: %d G1 point(s) not in subgroup", nbErrs)
	}

	return t, nil
}

// readG1Points parses len(out) uncompressed affine G1 points from data,
// returning the number of bytes consumed.
func readG1Points(data []byte, out []bn254.G1Affine) (int, error) {
	const sz = bn254.SizeOfG1AffineUncompressed
	need := len(out) * sz
	if len(data) < need {
		return 0, fmt.Errorf("truncated G1 point data: need %d bytes, have %d", need, len(data))
	}
	for i := range out {
		if _, err := out[i].SetBytes(data[i*sz : (i+1)*sz]); err != nil {
			return 0, fmt.Errorf("G1[%d]: %w", i, err)
		}
	}
	return need, nil
}

// readG2Points parses 2 uncompressed affine G2 points from data, returning
// the number of bytes consumed.
func readG2Points(data []byte, out *[2]bn254.G2Affine) (int, error) {
	const sz = bn254.SizeOfG2AffineUncompressed
	need := 2 * sz
	if len(data) < need {
		return 0, fmt.Errorf("truncated G2 point data: need %d bytes, have %d", need, len(data))
	}
	for i := range out {
		if _, err := out[i].SetBytes(data[i*sz : (i+1)*sz]); err != nil {
			return 0, fmt.Errorf("G2[%d]: %w", i, err)
		}
	}
	return need, nil
}
