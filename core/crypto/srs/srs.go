// Copyright 2025 The jamcrypto Authors. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package srs loads the structured reference string backing the polynomial
// commitment scheme. The group elements are embedded at build time
// (generated by scripts/gen_srs.py; the trapdoor is discarded at generation
// time) and deserialized exactly once per process; a malformed blob is a
// build/packaging defect and aborts the process.
package srs

import (
	"bytes"
	"crypto/sha256"
	_ "embed"
	"encoding/binary"
	"errors"
	"fmt"
	"sync"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr/kzg"
)

//go:embed data/srs-2-14.bin
var srsBlob []byte

// Blob layout, all big-endian:
//
//	8    magic
//	4    uint32 G1 point count
//	48N  compressed G1 powers of tau
//	192  compressed G2 pair [G2, tau·G2]
//	32   sha256 over everything above
const (
	blobMagic  = "JAMPCS01"
	blobHeader = 8 + 4

	minPoints = 1 << 8
	maxPoints = 1 << 16
)

var errMalformedBlob = errors.New("srs: malformed reference string blob")

// PcsParams bundles the deserialized polynomial-commitment parameters. It is
// immutable and shared read-only by every ring context derived from it.
type PcsParams struct {
	// SRS is the KZG setup over BLS12-381.
	SRS *kzg.SRS
	// MaxDegree is the largest polynomial length the setup supports.
	MaxDegree uint64
}

var (
	loadOnce sync.Once
	loaded   *PcsParams
)

// Load returns the process-wide reference string parameters, deserializing
// the embedded blob on first use. It panics if the blob does not validate:
// the blob is immutable and embedded, so no retry is meaningful.
func Load() *PcsParams {
	loadOnce.Do(func() {
		p, err := parseBlob(srsBlob)
		if err != nil {
			panic(fmt.Sprintf("srs: embedded reference string is invalid: %v", err))
		}
		loaded = p
	})
	return loaded
}

// Warm forces the one-time deserialization so callers can pay the cost at a
// controlled time rather than on the first cryptographic operation.
func Warm() {
	Load()
}

func parseBlob(b []byte) (*PcsParams, error) {
	if len(b) < blobHeader {
		return nil, errMalformedBlob
	}
	if !bytes.Equal(b[:8], []byte(blobMagic)) {
		return nil, errMalformedBlob
	}
	count := uint64(binary.BigEndian.Uint32(b[8:12]))
	if count < minPoints || count > maxPoints || count&(count-1) != 0 {
		return nil, errMalformedBlob
	}
	want := blobHeader + int(count)*bls12381.SizeOfG1AffineCompressed +
		2*bls12381.SizeOfG2AffineCompressed + sha256.Size
	if len(b) != want {
		return nil, errMalformedBlob
	}
	body, sum := b[:want-sha256.Size], b[want-sha256.Size:]
	digest := sha256.Sum256(body)
	if !bytes.Equal(digest[:], sum) {
		return nil, errMalformedBlob
	}

	// SetBytes rejects points off the curve or outside the prime-order
	// subgroup, so a doctored blob cannot smuggle in bad group elements.
	g1 := make([]bls12381.G1Affine, count)
	off := blobHeader
	for i := range g1 {
		if _, err := g1[i].SetBytes(b[off : off+bls12381.SizeOfG1AffineCompressed]); err != nil {
			return nil, fmt.Errorf("srs: G1 point %d: %v", i, err)
		}
		off += bls12381.SizeOfG1AffineCompressed
	}
	var g2 [2]bls12381.G2Affine
	for i := range g2 {
		if _, err := g2[i].SetBytes(b[off : off+bls12381.SizeOfG2AffineCompressed]); err != nil {
			return nil, fmt.Errorf("srs: G2 point %d: %v", i, err)
		}
		off += bls12381.SizeOfG2AffineCompressed
	}

	var s kzg.SRS
	s.Pk.G1 = g1
	s.Vk.G1 = g1[0]
	s.Vk.G2 = g2
	return &PcsParams{SRS: &s, MaxDegree: count}, nil
}
