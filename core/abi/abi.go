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

// Package abi is the flat byte-buffer surface behind the C ABI. Each
// function performs one validation pass over its untrusted inputs, then
// hands safe values to the engine; the richer internal error taxonomy is
// collapsed into a boolean (or the 0/-1 sentinel for ed25519) by design.
// Callers needing distinguishable errors use package ringvrf directly.
package abi

import (
	"crypto/ed25519"

	"github.com/golang/glog"
	"github.com/hdevalence/ed25519consensus"

	"github.com/boymaas/jamcrypto/core/crypto/bandersnatch"
	"github.com/boymaas/jamcrypto/core/ringvrf"
)

const (
	// PublicKeySize is a compressed Bandersnatch public key.
	PublicKeySize = bandersnatch.PointSize
	// KeyPairSize is the serialized {secret ‖ public} pair.
	KeyPairSize = bandersnatch.ScalarSize + bandersnatch.PointSize
	// RingSignatureSize is the exact ring signature length.
	RingSignatureSize = ringvrf.RingSignatureSize
	// VrfOutputSize is the VRF output hash length.
	VrfOutputSize = ringvrf.OutputSize

	// Ed25519Ok and Ed25519Invalid are the ed25519_verify sentinels.
	Ed25519Ok      = 0
	Ed25519Invalid = -1
)

// InitializeRingContext warms the reference string and the context for the
// largest supported ring size, reporting whether derivation succeeded.
// Idempotent; later calls are cheap.
func InitializeRingContext() bool {
	if _, err := ringvrf.DefaultCache().GetOrCreate(ringvrf.MaxRingSize); err != nil {
		glog.Errorf("ring context initialization failed: %v", err)
		return false
	}
	return true
}

// PaddingPoint returns the canonical encoding of the fixed padding public
// key used to pad short rings to a supported size.
func PaddingPoint() ([PublicKeySize]byte, bool) {
	return bandersnatch.PaddingPoint().Bytes(), true
}

// CreateKeyPairFromSeed deterministically derives {secret ‖ public} from an
// arbitrary-length seed.
func CreateKeyPairFromSeed(seed []byte) ([KeyPairSize]byte, bool) {
	var out [KeyPairSize]byte
	sk := bandersnatch.SecretKeyFromSeed(seed)
	sb := sk.Bytes()
	pb := sk.Public().Bytes()
	copy(out[:], sb[:])
	copy(out[bandersnatch.ScalarSize:], pb[:])
	return out, true
}

// parseKeyPair decodes a {secret ‖ public} pair, rejecting pairs whose
// public half does not match the secret.
func parseKeyPair(b []byte) (*bandersnatch.SecretKey, bool) {
	if len(b) != KeyPairSize {
		return nil, false
	}
	sk, err := bandersnatch.NewSecretKey(b[:bandersnatch.ScalarSize])
	if err != nil {
		return nil, false
	}
	pk, err := bandersnatch.NewPublicKey(b[bandersnatch.ScalarSize:])
	if err != nil || !pk.Equal(sk.Public()) {
		return nil, false
	}
	return sk, true
}

// parseRing decodes a packed sequence of compressed public keys.
func parseRing(packed []byte, count int) ([]*bandersnatch.PublicKey, bool) {
	if count <= 0 || len(packed) != count*PublicKeySize {
		return nil, false
	}
	ring := make([]*bandersnatch.PublicKey, count)
	for i := 0; i < count; i++ {
		pk, err := bandersnatch.NewPublicKey(packed[i*PublicKeySize : (i+1)*PublicKeySize])
		if err != nil {
			return nil, false
		}
		ring[i] = pk
	}
	return ring, true
}

// GenerateRingSignature signs vrfInput/aux at proverIdx within the packed
// ring using the given {secret ‖ public} pair. The prover index is validated
// against the ring before signing.
func GenerateRingSignature(packedKeys []byte, keyCount int, vrfInput, aux []byte, proverIdx int, proverKey []byte) ([RingSignatureSize]byte, bool) {
	var out [RingSignatureSize]byte
	ring, ok := parseRing(packedKeys, keyCount)
	if !ok {
		return out, false
	}
	secret, ok := parseKeyPair(proverKey)
	if !ok {
		return out, false
	}
	prover, err := ringvrf.NewProver(ring, secret, proverIdx)
	if err != nil {
		return out, false
	}
	sig, err := prover.RingVrfSign(vrfInput, aux)
	if err != nil || len(sig) != RingSignatureSize {
		return out, false
	}
	copy(out[:], sig)
	return out, true
}

// VerifyRingSignature checks a candidate ring signature against the packed
// ring; on success it returns the 32-byte VRF output hash.
func VerifyRingSignature(packedKeys []byte, keyCount int, vrfInput, aux, signature []byte) ([VrfOutputSize]byte, bool) {
	var out [VrfOutputSize]byte
	ring, ok := parseRing(packedKeys, keyCount)
	if !ok {
		return out, false
	}
	verifier, err := ringvrf.NewVerifier(ring)
	if err != nil {
		return out, false
	}
	hash, err := verifier.RingVrfVerify(vrfInput, aux, signature)
	if err != nil {
		return out, false
	}
	return hash, true
}

// Ed25519Verify applies ZIP-215 validation rules, consistent with batch
// verification. It returns Ed25519Ok for a valid signature and
// Ed25519Invalid for anything else, including malformed inputs.
func Ed25519Verify(publicKey, signature, message []byte) int {
	if len(publicKey) != ed25519.PublicKeySize || len(signature) != ed25519.SignatureSize {
		return Ed25519Invalid
	}
	if ed25519consensus.Verify(ed25519.PublicKey(publicKey), message, signature) {
		return Ed25519Ok
	}
	return Ed25519Invalid
}
