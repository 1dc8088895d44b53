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

package ringproof

import (
	"errors"
	"math/big"
	"sync"
	"testing"

	curve "github.com/consensys/gnark-crypto/ecc/bls12-381/bandersnatch"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr/kzg"

	"github.com/boymaas/jamcrypto/core/crypto/bandersnatch"
)

const testRingSize = 4

var (
	paramsOnce sync.Once
	testSetup  *Params
	setupErr   error
)

// testParams derives shared parameters over a throwaway test setup. The
// trapdoor is fixed, which is fine for tests and keeps them deterministic.
func testParams(t *testing.T) *Params {
	t.Helper()
	paramsOnce.Do(func() {
		srs, err := kzg.NewSRS(4096, big.NewInt(4217))
		if err != nil {
			setupErr = err
			return
		}
		testSetup, setupErr = NewParams(srs, testRingSize)
	})
	if setupErr != nil {
		t.Fatalf("test setup: %v", setupErr)
	}
	return testSetup
}

func testRing(t *testing.T, p *Params) ([]*bandersnatch.PublicKey, Commitment) {
	t.Helper()
	ring := make([]*bandersnatch.PublicKey, testRingSize)
	for i := range ring {
		ring[i] = bandersnatch.SecretKeyFromSeed([]byte{'r', byte(i)}).Public()
	}
	c, err := CommitRing(p, ring)
	if err != nil {
		t.Fatalf("CommitRing: %v", err)
	}
	return ring, c
}

func testBlind(t *testing.T) *bandersnatch.Scalar {
	t.Helper()
	var s bandersnatch.Scalar
	if _, err := s.SetRandom(); err != nil {
		t.Fatalf("SetRandom: %v", err)
	}
	return &s
}

// blindedKey computes pk + blind·H, the point the Pedersen proof publishes.
func blindedKey(pk *bandersnatch.PublicKey, blind *bandersnatch.Scalar) curve.PointAffine {
	var p curve.PointAffine
	p.X, p.Y = pk.Coordinates()
	var s big.Int
	var h curve.PointAffine
	base := bandersnatch.BlindingBase()
	h.ScalarMultiplication(&base, blind.BigInt(&s))
	p.Add(&p, &h)
	return p
}

func TestProveVerify(t *testing.T) {
	p := testParams(t)
	ring, commit := testRing(t, p)
	transcript := []byte("membership transcript")
	for index := 0; index < testRingSize; index++ {
		blind := testBlind(t)
		proof, err := Prove(p, commit, ring, index, blind, transcript)
		if err != nil {
			t.Fatalf("Prove(index=%d): %v", index, err)
		}
		if err := Verify(p, commit, blindedKey(ring[index], blind), proof, transcript); err != nil {
			t.Errorf("Verify(index=%d): %v, want nil", index, err)
		}
	}
}

func TestVerifyWrongTranscript(t *testing.T) {
	p := testParams(t)
	ring, commit := testRing(t, p)
	blind := testBlind(t)
	proof, err := Prove(p, commit, ring, 3, blind, []byte("transcript a"))
	if err != nil {
		t.Fatal(err)
	}
	if err := Verify(p, commit, blindedKey(ring[3], blind), proof, []byte("transcript b")); !errors.Is(err, ErrProof) {
		t.Errorf("Verify with wrong transcript: err = %v, want ErrProof", err)
	}
}

// TestVerifyRejectsForeignBlindedKey pins the binding between the argument
// and the blinded key it speaks about: a structurally valid proof for one
// ring row must not verify against a blinded key derived from any other key,
// in or outside the ring. Without that binding an outsider could pair an
// honest-looking membership argument with a Pedersen proof under their own
// secret and sign without holding a ring key.
func TestVerifyRejectsForeignBlindedKey(t *testing.T) {
	p := testParams(t)
	ring, commit := testRing(t, p)
	blind := testBlind(t)
	transcript := []byte("t")
	proof, err := Prove(p, commit, ring, 0, blind, transcript)
	if err != nil {
		t.Fatal(err)
	}

	outsider := bandersnatch.SecretKeyFromSeed([]byte("definitely not in the ring")).Public()
	if err := Verify(p, commit, blindedKey(outsider, blind), proof, transcript); !errors.Is(err, ErrProof) {
		t.Errorf("Verify with outsider blinded key: err = %v, want ErrProof", err)
	}
	// Another ring member with the same blinding scalar is just as foreign.
	if err := Verify(p, commit, blindedKey(ring[1], blind), proof, transcript); !errors.Is(err, ErrProof) {
		t.Errorf("Verify with wrong member's blinded key: err = %v, want ErrProof", err)
	}
	// And the right key under a different blinding scalar.
	if err := Verify(p, commit, blindedKey(ring[0], testBlind(t)), proof, transcript); !errors.Is(err, ErrProof) {
		t.Errorf("Verify with wrong blinding scalar: err = %v, want ErrProof", err)
	}
}

func TestVerifyWrongCommitment(t *testing.T) {
	p := testParams(t)
	ring, commit := testRing(t, p)
	blind := testBlind(t)
	proof, err := Prove(p, commit, ring, 3, blind, []byte("t"))
	if err != nil {
		t.Fatal(err)
	}
	other := make([]*bandersnatch.PublicKey, testRingSize)
	copy(other, ring)
	other[0] = bandersnatch.SecretKeyFromSeed([]byte("replacement")).Public()
	otherCommit, err := CommitRing(p, other)
	if err != nil {
		t.Fatal(err)
	}
	if err := Verify(p, otherCommit, blindedKey(ring[3], blind), proof, []byte("t")); !errors.Is(err, ErrProof) {
		t.Errorf("Verify with wrong ring commitment: err = %v, want ErrProof", err)
	}
}

func TestProveBadWitness(t *testing.T) {
	p := testParams(t)
	ring, commit := testRing(t, p)
	blind := testBlind(t)
	for _, tc := range []struct {
		desc  string
		ring  []*bandersnatch.PublicKey
		index int
	}{
		{"negative index", ring, -1},
		{"index past ring", ring, testRingSize},
		{"short ring", ring[:testRingSize-1], 0},
	} {
		if _, err := Prove(p, commit, tc.ring, tc.index, blind, nil); !errors.Is(err, ErrWitness) {
			t.Errorf("Prove(%v): err = %v, want ErrWitness", tc.desc, err)
		}
	}
}

func TestProofRoundTrip(t *testing.T) {
	p := testParams(t)
	ring, commit := testRing(t, p)
	blind := testBlind(t)
	proof, err := Prove(p, commit, ring, 2, blind, []byte("t"))
	if err != nil {
		t.Fatal(err)
	}
	enc := proof.Bytes()
	parsed, err := ParseProof(enc[:])
	if err != nil {
		t.Fatalf("ParseProof: %v", err)
	}
	if got := parsed.Bytes(); got != enc {
		t.Errorf("round trip changed proof bytes")
	}
	if err := Verify(p, commit, blindedKey(ring[2], blind), parsed, []byte("t")); err != nil {
		t.Errorf("parsed proof fails verification: %v", err)
	}
}

func TestProofCorruption(t *testing.T) {
	p := testParams(t)
	ring, commit := testRing(t, p)
	blind := testBlind(t)
	proof, err := Prove(p, commit, ring, 1, blind, []byte("t"))
	if err != nil {
		t.Fatal(err)
	}
	bk := blindedKey(ring[1], blind)
	enc := proof.Bytes()
	for i := 0; i < ProofSize; i++ {
		bad := enc
		bad[i] ^= 0x01
		parsed, err := ParseProof(bad[:])
		if err != nil {
			continue
		}
		if err := Verify(p, commit, bk, parsed, []byte("t")); err == nil {
			t.Fatalf("corrupting byte %d still verifies", i)
		}
	}
}

func TestParseProofLength(t *testing.T) {
	for _, n := range []int{0, ProofSize - 1, ProofSize + 1} {
		if _, err := ParseProof(make([]byte, n)); !errors.Is(err, ErrEncoding) {
			t.Errorf("ParseProof(len=%d): err = %v, want ErrEncoding", n, err)
		}
	}
}

func TestNewParamsRejects(t *testing.T) {
	srs, err := kzg.NewSRS(64, big.NewInt(4217))
	if err != nil {
		t.Fatal(err)
	}
	for _, size := range []int{-1, 0} {
		if _, err := NewParams(srs, size); err == nil {
			t.Errorf("NewParams(ringSize=%d): err = nil, want error", size)
		}
	}
	// Even one key needs a 512-row domain and 2564 setup points.
	if _, err := NewParams(srs, 1); err == nil {
		t.Errorf("NewParams with undersized setup: err = nil, want error")
	}
}

func TestCommitRingLength(t *testing.T) {
	p := testParams(t)
	ring, _ := testRing(t, p)
	if _, err := CommitRing(p, ring[:testRingSize-1]); !errors.Is(err, ErrWitness) {
		t.Errorf("CommitRing with short ring: err = %v, want ErrWitness", err)
	}
}
