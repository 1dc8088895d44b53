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

// Package ringvrf implements the Bandersnatch VRF signature engine: an
// anonymous ring mode proving membership in a set of public keys, and a
// non-anonymous IETF mode over a single key. Both modes derive the same
// VRF output value for the same secret key and input data.
package ringvrf

import (
	"bytes"
	"encoding/binary"

	"github.com/boymaas/jamcrypto/core/crypto/bandersnatch"
	"github.com/boymaas/jamcrypto/core/crypto/ringproof"
)

// signTranscript binds everything both proof components must agree on:
// the ring commitment, the input and output points and the auxiliary data.
// Auxiliary data is authenticated context only; it never contributes to the
// VRF output value.
func signTranscript(commitment RingCommitment, in bandersnatch.Input, out bandersnatch.Output, aux []byte) []byte {
	var b bytes.Buffer
	b.WriteString("jamcrypto/ringvrf:transcript")
	cb := MarshalRingCommitment(commitment)
	ib := in.Bytes()
	ob := out.Bytes()
	b.Write(cb[:])
	b.Write(ib[:])
	b.Write(ob[:])
	binary.Write(&b, binary.BigEndian, uint32(len(aux)))
	b.Write(aux)
	return b.Bytes()
}

// membershipTranscript extends the sign transcript with the Pedersen proof,
// binding the membership argument to the blinded key.
func membershipTranscript(transcript []byte, ped *bandersnatch.PedersenProof) []byte {
	pb := ped.Bytes()
	out := make([]byte, 0, len(transcript)+len(pb))
	out = append(out, transcript...)
	out = append(out, pb[:]...)
	return out
}

// Prover holds a secret key together with the ring it signs within and its
// position in that ring. Construction is cheap apart from the ring-context
// lookup triggered on first sign.
type Prover struct {
	ring   []*bandersnatch.PublicKey
	secret *bandersnatch.SecretKey
	index  int
	cache  *ContextCache
}

// NewProver constructs a prover over the process-wide context cache. The
// prover index is checked against the ring: ring[index] must be the secret's
// public key, otherwise ErrInvalidProverIndex is returned. An unchecked
// index would yield a syntactically valid but unverifiable signature, which
// is strictly worse than failing here.
func NewProver(ring []*bandersnatch.PublicKey, secret *bandersnatch.SecretKey, index int) (*Prover, error) {
	return NewProverWithCache(DefaultCache(), ring, secret, index)
}

// NewProverWithCache is NewProver over an explicit context cache, for
// callers that manage their own reference-string lifetime.
func NewProverWithCache(cache *ContextCache, ring []*bandersnatch.PublicKey, secret *bandersnatch.SecretKey, index int) (*Prover, error) {
	if index < 0 || index >= len(ring) || !ring[index].Equal(secret.Public()) {
		return nil, ErrInvalidProverIndex
	}
	return &Prover{ring: ring, secret: secret, index: index, cache: cache}, nil
}

// RingVrfSign produces the anonymous ring signature over the input data,
// authenticating aux without affecting the VRF output. The result is exactly
// RingSignatureSize bytes.
func (p *Prover) RingVrfSign(inputData, auxData []byte) ([]byte, error) {
	in, err := bandersnatch.NewInput(inputData)
	if err != nil {
		return nil, err
	}
	out := p.secret.VrfOutput(in)

	ctx, err := p.cache.GetOrCreate(len(p.ring))
	if err != nil {
		return nil, err
	}

	commitment, err := ringproof.CommitRing(ctx.params, p.ring)
	if err != nil {
		return nil, err
	}

	// One blinding scalar shared by the Pedersen proof and the membership
	// argument: the argument decomposes exactly the scalar that blinds B.
	var blind bandersnatch.Scalar
	if _, err := blind.SetRandom(); err != nil {
		return nil, err
	}

	transcript := signTranscript(commitment, in, out, auxData)
	ped, err := p.secret.PedersenProve(in, out, &blind, transcript)
	if err != nil {
		return nil, err
	}

	membership, err := ringproof.Prove(ctx.params, commitment, p.ring, p.index,
		&blind, membershipTranscript(transcript, &ped))
	if err != nil {
		return nil, err
	}

	sig := RingVrfSignature{Output: out, Pedersen: ped, Membership: *membership}
	b := sig.Bytes()
	return b[:], nil
}

// IetfVrfSign produces the non-anonymous signature: a direct proof under the
// prover's own key. No ring context is involved.
func (p *Prover) IetfVrfSign(inputData, auxData []byte) ([]byte, error) {
	in, err := bandersnatch.NewInput(inputData)
	if err != nil {
		return nil, err
	}
	out := p.secret.VrfOutput(in)
	sig := IetfVrfSignature{Output: out, Proof: p.secret.IetfProve(in, out, auxData)}
	b := sig.Bytes()
	return b[:], nil
}
