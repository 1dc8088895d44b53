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

// Canonical binary formats for the two signature variants. Both are the
// fixed-length concatenation {output ‖ proof}; deserialization rejects wrong
// lengths and any non-canonical component encoding.

import (
	"github.com/boymaas/jamcrypto/core/crypto/bandersnatch"
	"github.com/boymaas/jamcrypto/core/crypto/ringproof"
)

const (
	// PublicKeySize is a compressed public key.
	PublicKeySize = bandersnatch.PointSize
	// OutputSize is the externally visible VRF output hash.
	OutputSize = 32
	// RingSignatureSize is the exact ring signature length.
	RingSignatureSize = bandersnatch.PointSize + bandersnatch.PedersenProofSize + ringproof.ProofSize
	// IetfSignatureSize is the exact IETF signature length.
	IetfSignatureSize = bandersnatch.PointSize + bandersnatch.IetfProofSize
)

// RingVrfSignature bundles a VRF output point with the anonymous ring proof
// (Pedersen key-blinding part plus membership argument).
type RingVrfSignature struct {
	Output     bandersnatch.Output
	Pedersen   bandersnatch.PedersenProof
	Membership ringproof.Proof
}

// Bytes returns the canonical 784-byte encoding.
func (s *RingVrfSignature) Bytes() [RingSignatureSize]byte {
	var out [RingSignatureSize]byte
	o := 0
	ob := s.Output.Bytes()
	copy(out[o:], ob[:])
	o += bandersnatch.PointSize
	pb := s.Pedersen.Bytes()
	copy(out[o:], pb[:])
	o += bandersnatch.PedersenProofSize
	mb := s.Membership.Bytes()
	copy(out[o:], mb[:])
	return out
}

// ParseRingVrfSignature decodes a ring signature. Truncated input, trailing
// bytes and malformed component encodings all fail with ErrDeserialization.
func ParseRingVrfSignature(b []byte) (*RingVrfSignature, error) {
	if len(b) != RingSignatureSize {
		return nil, ErrDeserialization
	}
	var s RingVrfSignature
	var err error
	o := 0
	if s.Output, err = bandersnatch.NewOutput(b[o : o+bandersnatch.PointSize]); err != nil {
		return nil, ErrDeserialization
	}
	o += bandersnatch.PointSize
	if s.Pedersen, err = bandersnatch.ParsePedersenProof(b[o : o+bandersnatch.PedersenProofSize]); err != nil {
		return nil, ErrDeserialization
	}
	o += bandersnatch.PedersenProofSize
	m, err := ringproof.ParseProof(b[o:])
	if err != nil {
		return nil, ErrDeserialization
	}
	s.Membership = *m
	return &s, nil
}

// IetfVrfSignature bundles a VRF output point with the non-anonymous proof.
type IetfVrfSignature struct {
	Output bandersnatch.Output
	Proof  bandersnatch.IetfProof
}

// Bytes returns the canonical 96-byte encoding.
func (s *IetfVrfSignature) Bytes() [IetfSignatureSize]byte {
	var out [IetfSignatureSize]byte
	ob := s.Output.Bytes()
	pb := s.Proof.Bytes()
	copy(out[:], ob[:])
	copy(out[bandersnatch.PointSize:], pb[:])
	return out
}

// ParseIetfVrfSignature decodes an IETF signature with the same strictness
// as the ring codec.
func ParseIetfVrfSignature(b []byte) (*IetfVrfSignature, error) {
	if len(b) != IetfSignatureSize {
		return nil, ErrDeserialization
	}
	var s IetfVrfSignature
	var err error
	if s.Output, err = bandersnatch.NewOutput(b[:bandersnatch.PointSize]); err != nil {
		return nil, ErrDeserialization
	}
	if s.Proof, err = bandersnatch.ParseIetfProof(b[bandersnatch.PointSize:]); err != nil {
		return nil, ErrDeserialization
	}
	return &s, nil
}
