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

// Pedersen VRF proof: the anonymous half of a ring signature. The signer's
// public key is blinded as B = pk + b·H and a Schnorr proof ties the blinded
// key to the VRF output without revealing pk. The accompanying membership
// argument (package ringproof) ties the hidden key to the ring commitment.

import (
	"bytes"

	curve "github.com/consensys/gnark-crypto/ecc/bls12-381/bandersnatch"
)

// PedersenProofSize is the serialized proof length:
// B ‖ R1 ‖ R2 ‖ s1 ‖ s2.
const PedersenProofSize = 3*PointSize + 2*ScalarSize

// PedersenProof proves knowledge of (x, b) with B = x·G + b·H and
// output = x·input.
type PedersenProof struct {
	B  curve.PointAffine
	R1 curve.PointAffine
	R2 curve.PointAffine
	S1 Scalar
	S2 Scalar
}

func pedersenChallenge(b, r1, r2 *curve.PointAffine, in Input, out Output, transcript []byte) Scalar {
	var buf bytes.Buffer
	buf.Write(transcript)
	bb := encodePoint(b)
	r1b := encodePoint(r1)
	r2b := encodePoint(r2)
	ib := in.Bytes()
	ob := out.Bytes()
	buf.Write(bb[:])
	buf.Write(r1b[:])
	buf.Write(r2b[:])
	buf.Write(ib[:])
	buf.Write(ob[:])
	return hashToScalar("jamcrypto/bandersnatch:pedersen-challenge", buf.Bytes())
}

// PedersenProve blinds the signer's key with the given scalar and proves the
// blinded key consistent with the VRF output. The blinding scalar is supplied
// by the caller because the ring membership argument must decompose the very
// same scalar; standalone callers draw it with SetRandom. The transcript
// binds the proof to the surrounding signature context.
func (sk *SecretKey) PedersenProve(in Input, out Output, blind *Scalar, transcript []byte) (PedersenProof, error) {
	var k1, k2 Scalar
	if _, err := k1.SetRandom(); err != nil {
		return PedersenProof{}, err
	}
	if _, err := k2.SetRandom(); err != nil {
		return PedersenProof{}, err
	}

	var proof PedersenProof
	var t curve.PointAffine

	// B = pk + b·H
	t.ScalarMultiplication(&blindingBase, scalarBig(blind))
	proof.B.Add(&sk.public.p, &t)

	// R1 = k1·G + k2·H, R2 = k1·input
	proof.R1.ScalarMultiplication(&params.Base, scalarBig(&k1))
	t.ScalarMultiplication(&blindingBase, scalarBig(&k2))
	proof.R1.Add(&proof.R1, &t)
	proof.R2.ScalarMultiplication(&in.p, scalarBig(&k1))

	c := pedersenChallenge(&proof.B, &proof.R1, &proof.R2, in, out, transcript)

	// s1 = k1 + c·x, s2 = k2 + c·b
	proof.S1.Mul(&c, &sk.scalar)
	proof.S1.Add(&proof.S1, &k1)
	proof.S2.Mul(&c, blind)
	proof.S2.Add(&proof.S2, &k2)
	return proof, nil
}

// VerifyPedersen checks the proof against (input, output) and the transcript.
func VerifyPedersen(proof PedersenProof, in Input, out Output, transcript []byte) error {
	c := pedersenChallenge(&proof.B, &proof.R1, &proof.R2, in, out, transcript)
	cb := scalarBig(&c)

	// s1·G + s2·H == R1 + c·B
	var lhs, rhs, t curve.PointAffine
	lhs.ScalarMultiplication(&params.Base, scalarBig(&proof.S1))
	t.ScalarMultiplication(&blindingBase, scalarBig(&proof.S2))
	lhs.Add(&lhs, &t)
	rhs.ScalarMultiplication(&proof.B, cb)
	rhs.Add(&rhs, &proof.R1)
	if !lhs.Equal(&rhs) {
		return ErrInvalidProof
	}

	// s1·input == R2 + c·output
	lhs.ScalarMultiplication(&in.p, scalarBig(&proof.S1))
	rhs.ScalarMultiplication(&out.p, cb)
	rhs.Add(&rhs, &proof.R2)
	if !lhs.Equal(&rhs) {
		return ErrInvalidProof
	}
	return nil
}

// Bytes returns the canonical proof encoding.
func (p PedersenProof) Bytes() [PedersenProofSize]byte {
	var out [PedersenProofSize]byte
	o := 0
	for _, pt := range []*curve.PointAffine{&p.B, &p.R1, &p.R2} {
		b := encodePoint(pt)
		copy(out[o:], b[:])
		o += PointSize
	}
	s1 := p.S1.Bytes()
	s2 := p.S2.Bytes()
	copy(out[o:], s1[:])
	copy(out[o+ScalarSize:], s2[:])
	return out
}

// ParsePedersenProof parses a canonical proof encoding. Points are required
// to be canonical and on the curve; small-order components would fall out of
// the verification equations, so subgroup checks are applied here as well.
func ParsePedersenProof(b []byte) (PedersenProof, error) {
	var p PedersenProof
	if len(b) != PedersenProofSize {
		return p, ErrInvalidPoint
	}
	o := 0
	for _, pt := range []*curve.PointAffine{&p.B, &p.R1, &p.R2} {
		dec, err := decodePoint(b[o : o+PointSize])
		if err != nil {
			return PedersenProof{}, err
		}
		if !inSubgroup(&dec) {
			return PedersenProof{}, ErrInvalidPoint
		}
		pt.Set(&dec)
		o += PointSize
	}
	var err error
	if p.S1, err = decodeScalar(b[o : o+ScalarSize]); err != nil {
		return PedersenProof{}, err
	}
	if p.S2, err = decodeScalar(b[o+ScalarSize:]); err != nil {
		return PedersenProof{}, err
	}
	return p, nil
}
