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

package srs

import (
	"crypto/sha256"
	"encoding/binary"
	"testing"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

func TestLoad(t *testing.T) {
	a := Load()
	if a == nil || a.SRS == nil {
		t.Fatalf("Load() = %v, want expanded parameters", a)
	}
	if a.MaxDegree&(a.MaxDegree-1) != 0 {
		t.Errorf("MaxDegree = %v, want a power of two", a.MaxDegree)
	}
	if got := uint64(len(a.SRS.Pk.G1)); got < a.MaxDegree {
		t.Errorf("len(Pk.G1) = %v, want >= %v", got, a.MaxDegree)
	}
	if b := Load(); b != a {
		t.Errorf("Load() returned a different instance on the second call")
	}
}

func TestEmbeddedBlobValid(t *testing.T) {
	if _, err := parseBlob(srsBlob); err != nil {
		t.Fatalf("parseBlob(embedded) = %v, want nil", err)
	}
}

func TestEmbeddedBlobPowersOfTau(t *testing.T) {
	p := Load()
	_, _, g1, g2 := bls12381.Generators()
	if !p.SRS.Pk.G1[0].Equal(&g1) {
		t.Fatalf("Pk.G1[0] is not the canonical G1 generator")
	}
	if !p.SRS.Vk.G2[0].Equal(&g2) {
		t.Fatalf("Vk.G2[0] is not the canonical G2 generator")
	}
	// The two groups must share the same tau, and the G1 sequence must be
	// consecutive powers of it: e([tau^k]G1, G2) == e([tau^(k-1)]G1, [tau]G2).
	for _, k := range []int{1, 2, len(p.SRS.Pk.G1) - 1} {
		left, err := bls12381.Pair(
			[]bls12381.G1Affine{p.SRS.Pk.G1[k]},
			[]bls12381.G2Affine{g2})
		if err != nil {
			t.Fatalf("Pair: %v", err)
		}
		right, err := bls12381.Pair(
			[]bls12381.G1Affine{p.SRS.Pk.G1[k-1]},
			[]bls12381.G2Affine{p.SRS.Vk.G2[1]})
		if err != nil {
			t.Fatalf("Pair: %v", err)
		}
		if !left.Equal(&right) {
			t.Errorf("power %d is not tau times power %d", k, k-1)
		}
	}
}

// resealed returns a copy of the embedded blob with f applied to the body
// and the checksum recomputed, so tests reach the checks behind it.
func resealed(f func(b []byte)) []byte {
	b := make([]byte, len(srsBlob))
	copy(b, srsBlob)
	f(b)
	sum := sha256.Sum256(b[:len(b)-sha256.Size])
	copy(b[len(b)-sha256.Size:], sum[:])
	return b
}

func TestParseBlobRejects(t *testing.T) {
	for _, tc := range []struct {
		desc string
		b    []byte
	}{
		{"empty", nil},
		{"truncated", srsBlob[:len(srsBlob)-1]},
		{"oversized", append(append([]byte{}, srsBlob...), 0)},
		{"corrupted checksum", func() []byte {
			b := make([]byte, len(srsBlob))
			copy(b, srsBlob)
			b[len(b)-1] ^= 0xff
			return b
		}()},
		{"wrong magic", resealed(func(b []byte) { b[0] = 'X' })},
		{"count zero", resealed(func(b []byte) { binary.BigEndian.PutUint32(b[8:12], 0) })},
		{"count not a power of two", resealed(func(b []byte) { binary.BigEndian.PutUint32(b[8:12], minPoints+1) })},
		{"count too large", resealed(func(b []byte) { binary.BigEndian.PutUint32(b[8:12], maxPoints<<1) })},
		{"invalid G1 point", resealed(func(b []byte) {
			// An all-ones first point carries an invalid flag mask.
			for i := blobHeader; i < blobHeader+48; i++ {
				b[i] = 0xff
			}
		})},
		{"invalid G2 point", resealed(func(b []byte) {
			off := len(b) - sha256.Size - 2*96
			for i := off; i < off+96; i++ {
				b[i] = 0xff
			}
		})},
	} {
		if _, err := parseBlob(tc.b); err == nil {
			t.Errorf("parseBlob(%v): err = nil, want error", tc.desc)
		}
	}
}
