// Package srsceremony reads the raw binary transcript files produced by a
// powers-of-tau ceremony and turns them into validated BN254 points, ready
// for srs.LoadFromCeremony to wrap into an SRS. Adapted from
// gnark/internal/ignition, which reads the AZTEC Ignition Ceremony's
// participant transcripts over HTTP; this package instead reads a local
// directory of transcripts already on disk (e.g. a Perpetual Powers of Tau
// export) and has no network dependency and no participant chain-of-custody
// verification to perform, since a PPOT transcript carries no per-address
// signature chain.
package srsceremony

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// ReadManifest loads manifest.json from dir, describing how many transcript
// files make up the ceremony output and how many points each contains.
func ReadManifest(dir string) (Manifest, error) {
	b, err := os.ReadFile(filepath.Join(dir, "manifest.json"))
	if err != nil {
		return Manifest{}, fmt.Errorf("srsceremony: reading manifest: %w", err)
	}

	var m Manifest
	if err := json.Unmarshal(b, &m); err != nil {
		return Manifest{}, fmt.Errorf("srsceremony: parsing manifest: %w", err)
	}
	return m, nil
}

// transcriptHeader is the first 28 bytes of a transcript*.dat file:
// byte index	description
// 0-3	transcript number (starting from 0)
// 4-7	total number of transcripts
// 8-11	total number of G1 points across all transcripts
// 12-15	total number of G2 points across all transcripts
// 16-19	number of G1 points in this transcript
// 20-23	number of G2 points in this transcript (2 for the first, 0 otherwise)
// 24-27	index of this transcript's first G1 point within the full sequence
type transcriptHeader struct {
	TranscriptNumber,
	TotalTranscripts,
	TotalG1Points,
	TotalG2Points,
	NumG1Points,
	NumG2Points,
	StartFrom uint32
}

func parseTranscriptHeader(data []byte) transcriptHeader {
	return transcriptHeader{
		TranscriptNumber: binary.BigEndian.Uint32(data[:4]),
		TotalTranscripts: binary.BigEndian.Uint32(data[4:8]),
		TotalG1Points:    binary.BigEndian.Uint32(data[8:12]),
		TotalG2Points:    binary.BigEndian.Uint32(data[12:16]),
		NumG1Points:      binary.BigEndian.Uint32(data[16:20]),
		NumG2Points:      binary.BigEndian.Uint32(data[20:24]),
		StartFrom:        binary.BigEndian.Uint32(data[24:28]),
	}
}

// Manifest describes a ceremony's output shape. Most fields survive purely
// as diagnostic metadata; only NumG1Points is used to size the read (the G2
// side is always the fixed pair G2, τ·G2).
type Manifest struct {
	Name                string `json:"name"`
	NumG1Points         int    `json:"numG1Points"`
	NumG2Points         int    `json:"numG2Points"`
	PointsPerTranscript int    `json:"pointsPerTranscript"`
	Network             string `json:"network"`
}
