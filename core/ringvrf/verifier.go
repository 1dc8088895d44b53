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

package ringvrf

import (
	"github.com/boymaas/jamcrypto/core/crypto/bandersnatch"
	"github.com/boymaas/jamcrypto/core/crypto/ringproof"
)

// RingCommitment is the compact digest pair standing in for a full ring
// during verification. It is deterministic in the ring's content and order.
type RingCommitment = ringproof.Commitment

// RingCommitmentSize is the serialized commitment length: the two
// coordinate-column commitments.
const RingCommitmentSize = 96

// MarshalRingCommitment returns the canonical commitment encoding.
func MarshalRingCommitment(c RingCommitment) [RingCommitmentSize]byte {
	var out [RingCommitmentSize]byte
	x := c.KeysX.Bytes()
	y := c.KeysY.Bytes()
	copy(out[:], x[:])
	copy(out[len(x):], y[:])
	return out
}

// ParseRingCommitment decodes a commitment produced by
// MarshalRingCommitment.
func ParseRingCommitment(b []byte) (RingCommitment, error) {
	var c RingCommitment
	if len(b) != RingCommitmentSize {
		return c, ErrDeserialization
	}
	if _, err := c.KeysX.SetBytes(b[:RingCommitmentSize/2]); err != nil {
		return c, ErrDeserialization
	}
	if _, err := c.KeysY.SetBytes(b[RingCommitmentSize/2:]); err != nil {
		return c, ErrDeserialization
	}
	return c, nil
}

// outputHash truncates the canonical output-point hash to the externally
// visible 32-byte VRF output value.
func outputHash(out bandersnatch.Output) [OutputSize]byte {
	h := out.Hash()
	var v [OutputSize]byte
	copy(v[:], h[:OutputSize])
	return v
}

// ringVerify is the shared ring-mode verification path: the verifying key is
// reconstructed from the stored commitment, never from the full ring, so
// repeated verifications against a stable ring pay the commitment cost once.
func ringVerify(cache *ContextCache, commitment RingCommitment, ringSize int, inputData, auxData, signature []byte) ([OutputSize]byte, error) {
	var zero [OutputSize]byte
	sig, err := ParseRingVrfSignature(signature)
	if err != nil {
		return zero, err
	}
	in, err := bandersnatch.NewInput(inputData)
	if err != nil {
		return zero, err
	}
	ctx, err := cache.GetOrCreate(ringSize)
	if err != nil {
		return zero, err
	}

	transcript := signTranscript(commitment, in, sig.Output, auxData)
	if err := bandersnatch.VerifyPedersen(sig.Pedersen, in, sig.Output, transcript); err != nil {
		return zero, ErrVerificationFailed
	}
	if err := ringproof.Verify(ctx.params, commitment, sig.Pedersen.B, &sig.Membership,
		membershipTranscript(transcript, &sig.Pedersen)); err != nil {
		return zero, ErrVerificationFailed
	}
	return outputHash(sig.Output), nil
}

// Verifier verifies both signature modes against a full ring. The ring
// commitment is computed eagerly at construction: once per ring change
// rather than once per verification.
type Verifier struct {
	ring       []*bandersnatch.PublicKey
	commitment RingCommitment
	cache      *ContextCache
}

// NewVerifier constructs a verifier over the process-wide context cache.
func NewVerifier(ring []*bandersnatch.PublicKey) (*Verifier, error) {
	return NewVerifierWithCache(DefaultCache(), ring)
}

// NewVerifierWithCache is NewVerifier over an explicit context cache.
func NewVerifierWithCache(cache *ContextCache, ring []*bandersnatch.PublicKey) (*Verifier, error) {
	ctx, err := cache.GetOrCreate(len(ring))
	if err != nil {
		return nil, err
	}
	commitment, err := ringproof.CommitRing(ctx.params, ring)
	if err != nil {
		return nil, err
	}
	return &Verifier{ring: ring, commitment: commitment, cache: cache}, nil
}

// Commitment returns the verifier's ring commitment, reusable with
// NewCommitmentVerifier for repeated verification against the same ring.
func (v *Verifier) Commitment() RingCommitment {
	return v.commitment
}

// RingVrfVerify checks an anonymous ring signature and returns the 32-byte
// VRF output hash on success.
func (v *Verifier) RingVrfVerify(inputData, auxData, signature []byte) ([OutputSize]byte, error) {
	return ringVerify(v.cache, v.commitment, len(v.ring), inputData, auxData, signature)
}

// IetfVrfVerify checks a non-anonymous signature against the ring member at
// signerKeyIndex and returns the 32-byte VRF output hash on success. The
// hash matches the ring-mode value for the same input data, whatever the
// auxiliary data of either signature.
func (v *Verifier) IetfVrfVerify(inputData, auxData, signature []byte, signerKeyIndex int) ([OutputSize]byte, error) {
	var zero [OutputSize]byte
	if signerKeyIndex < 0 || signerKeyIndex >= len(v.ring) {
		return zero, ErrInvalidSignerKeyIndex
	}
	sig, err := ParseIetfVrfSignature(signature)
	if err != nil {
		return zero, err
	}
	in, err := bandersnatch.NewInput(inputData)
	if err != nil {
		return zero, err
	}
	if err := v.ring[signerKeyIndex].IetfVerify(in, sig.Output, auxData, sig.Proof); err != nil {
		return zero, ErrVerificationFailed
	}
	return outputHash(sig.Output), nil
}

// CommitmentVerifier verifies ring signatures from a precomputed commitment
// and a ring size, skipping commitment recomputation entirely. IETF
// verification needs an actual ring member and is only available on the
// full Verifier.
type CommitmentVerifier struct {
	commitment RingCommitment
	ringSize   int
	cache      *ContextCache
}

// NewCommitmentVerifier constructs a commitment verifier over the
// process-wide context cache.
func NewCommitmentVerifier(commitment RingCommitment, ringSize int) *CommitmentVerifier {
	return NewCommitmentVerifierWithCache(DefaultCache(), commitment, ringSize)
}

// NewCommitmentVerifierWithCache is NewCommitmentVerifier over an explicit
// context cache.
func NewCommitmentVerifierWithCache(cache *ContextCache, commitment RingCommitment, ringSize int) *CommitmentVerifier {
	return &CommitmentVerifier{commitment: commitment, ringSize: ringSize, cache: cache}
}

// RingVrfVerify checks an anonymous ring signature and returns the 32-byte
// VRF output hash on success.
func (v *CommitmentVerifier) RingVrfVerify(inputData, auxData, signature []byte) ([OutputSize]byte, error) {
	return ringVerify(v.cache, v.commitment, v.ringSize, inputData, auxData, signature)
}
