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

package bandersnatch

import (
	"crypto/sha512"

	curve "github.com/consensys/gnark-crypto/ecc/bls12-381/bandersnatch"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// PublicKey is a point of the prime-order subgroup in compressed form.
type PublicKey struct {
	p curve.PointAffine
}

// NewPublicKey parses a compressed public key. Non-canonical encodings,
// points outside the prime-order subgroup and the identity are rejected.
func NewPublicKey(b []byte) (*PublicKey, error) {
	p, err := decodePoint(b)
	if err != nil {
		return nil, err
	}
	if identity(&p) || !inSubgroup(&p) {
		return nil, ErrInvalidPoint
	}
	return &PublicKey{p: p}, nil
}

// Bytes returns the canonical compressed encoding.
func (pk *PublicKey) Bytes() [PointSize]byte {
	return encodePoint(&pk.p)
}

// Equal reports whether two public keys are the same point.
func (pk *PublicKey) Equal(o *PublicKey) bool {
	return pk.p.Equal(&o.p)
}

// Coordinates returns the affine coordinates of the key point. Bandersnatch
// is defined over the BLS12-381 scalar field, so the coordinates are directly
// usable as polynomial-commitment field elements.
func (pk *PublicKey) Coordinates() (x, y fr.Element) {
	return pk.p.X, pk.p.Y
}

// PaddingPoint returns the fixed public key used to pad short rings up to a
// supported ring size. No secret key for it is known.
func PaddingPoint() *PublicKey {
	return &PublicKey{p: paddingPoint}
}

// SecretKey is a scalar derived deterministically from a seed, together with
// its public key.
type SecretKey struct {
	scalar Scalar
	public PublicKey
}

// SecretKeyFromSeed derives a secret key from an arbitrary-length seed.
// Identical seeds always yield the identical key pair.
func SecretKeyFromSeed(seed []byte) *SecretKey {
	h := sha512.Sum512(seed)
	s := hashToScalar("jamcrypto/bandersnatch:secret", h[:])
	for s.IsZero() {
		// Unreachable for any practical seed; keeps the scalar invertible.
		h = sha512.Sum512(h[:])
		s = hashToScalar("jamcrypto/bandersnatch:secret", h[:])
	}
	sk := &SecretKey{scalar: s}
	sk.public.p.ScalarMultiplication(&params.Base, scalarBig(&s))
	return sk
}

// NewSecretKey parses a canonical 32-byte secret scalar.
func NewSecretKey(b []byte) (*SecretKey, error) {
	s, err := decodeScalar(b)
	if err != nil {
		return nil, err
	}
	if s.IsZero() {
		return nil, ErrInvalidScalar
	}
	sk := &SecretKey{scalar: s}
	sk.public.p.ScalarMultiplication(&params.Base, scalarBig(&s))
	return sk, nil
}

// Public returns the corresponding public key.
func (sk *SecretKey) Public() *PublicKey {
	return &sk.public
}

// Bytes returns the canonical scalar encoding of the secret.
func (sk *SecretKey) Bytes() [ScalarSize]byte {
	return sk.scalar.Bytes()
}

// Input is a VRF input point derived deterministically from input data.
type Input struct {
	p curve.PointAffine
}

// NewInput maps arbitrary input data to a curve point. The mapping is
// deterministic: identical data always yields the identical point.
func NewInput(data []byte) (Input, error) {
	m := make([]byte, 0, len(data)+32)
	m = append(m, []byte("jamcrypto/bandersnatch:input")...)
	m = append(m, data...)
	p, err := mapToCurve(m)
	if err != nil {
		return Input{}, err
	}
	return Input{p: p}, nil
}

// Bytes returns the canonical compressed encoding.
func (in Input) Bytes() [PointSize]byte {
	return encodePoint(&in.p)
}

// Output is a VRF output point.
type Output struct {
	p curve.PointAffine
}

// VrfOutput computes the output point for an input: secret · input.
func (sk *SecretKey) VrfOutput(in Input) Output {
	var o Output
	o.p.ScalarMultiplication(&in.p, scalarBig(&sk.scalar))
	return o
}

// NewOutput parses a compressed output point. The identity is rejected: no
// non-zero secret produces it, and accepting it would let a ring proof bind
// to an empty key selection.
func NewOutput(b []byte) (Output, error) {
	p, err := decodePoint(b)
	if err != nil {
		return Output{}, err
	}
	if identity(&p) || !inSubgroup(&p) {
		return Output{}, ErrInvalidPoint
	}
	return Output{p: p}, nil
}

// Bytes returns the canonical compressed encoding.
func (o Output) Bytes() [PointSize]byte {
	return encodePoint(&o.p)
}

// Hash returns the canonical output hash. The engine truncates it to 32
// bytes to obtain the externally visible VRF output value, so the hash is a
// function of the output point alone: two proof modes over the same secret
// and input agree on it by construction.
func (o Output) Hash() [64]byte {
	h := sha512.New()
	h.Write([]byte("jamcrypto/bandersnatch:output-hash"))
	b := encodePoint(&o.p)
	h.Write(b[:])
	var out [64]byte
	copy(out[:], h.Sum(nil))
	return out
}
